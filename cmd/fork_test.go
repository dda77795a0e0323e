package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"imgfork.dev/pkg/imgfork/internal/version"
)

func resetSelectionFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		contextDirFlag = ""
		sourceFlag = ""
		targetFlag = ""
		matchFlag = ""
	})
}

func TestForkCmd_RequiresSelectionFlags(t *testing.T) {
	resetSelectionFlags(t)

	cmd := newForkCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	err := cmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "--source is required")
	assert.Contains(t, err.Error(), "--target is required")
	assert.Contains(t, err.Error(), "--match is required")
}

func TestForkCmd_RejectsMalformedVersion(t *testing.T) {
	resetSelectionFlags(t)

	cmd := newForkCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{
		"--source", "3.9.1",
		"--target", "3.11",
		"--match", "alpine",
	})

	err := cmd.Execute()

	require.Error(t, err)
	assert.ErrorIs(t, err, version.ErrInvalidFormat)
}

func TestForkCmd_RejectsEqualVersions(t *testing.T) {
	resetSelectionFlags(t)

	cmd := newForkCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{
		"--source", "3.9",
		"--target", "3.9",
		"--match", "alpine",
	})

	err := cmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "different")
}
