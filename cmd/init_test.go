package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitCmd_WritesConfigFile(t *testing.T) {
	tempDir := t.TempDir()
	t.Chdir(tempDir)

	cmd := newInitCmd()
	err := cmd.Execute()
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(tempDir, configFileName))
	require.NoError(t, err)
	assert.Contains(t, string(content), "log:")
}

func TestInitCmd_RefusesToOverwrite(t *testing.T) {
	tempDir := t.TempDir()
	t.Chdir(tempDir)

	existing := filepath.Join(tempDir, configFileName)
	require.NoError(t, os.WriteFile(existing, []byte("version: 1\n"), 0o600))

	cmd := newInitCmd()
	err := cmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write config file")
	content, readErr := os.ReadFile(existing)
	require.NoError(t, readErr)
	assert.Equal(t, "version: 1\n", string(content))
}
