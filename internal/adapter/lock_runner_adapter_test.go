package adapter

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "imgfork.dev/pkg/imgfork/internal/model"
)

func TestNewLocalLockRunner(t *testing.T) {
	runner := NewLocalLockRunner()
	assert.Equal(t, "pipenv", runner.binary)
}

func TestLocalLockRunner_RegenerateLock(t *testing.T) {
	root := t.TempDir()
	manifest := m.Path(filepath.Join(root, "Pipfile"))
	writeTestFile(t, string(manifest), "[packages]\n")

	t.Run("zero exit succeeds", func(t *testing.T) {
		runner := &LocalLockRunner{binary: "true"}

		_, err := runner.RegenerateLock(context.Background(), manifest, "3.11")
		require.NoError(t, err)
	})

	t.Run("non-zero exit fails", func(t *testing.T) {
		runner := &LocalLockRunner{binary: "false"}

		_, err := runner.RegenerateLock(context.Background(), manifest, "3.11")
		require.Error(t, err)
	})

	t.Run("missing binary fails", func(t *testing.T) {
		runner := &LocalLockRunner{binary: "imgfork-no-such-tool"}

		_, err := runner.RegenerateLock(context.Background(), manifest, "3.11")
		require.Error(t, err)
	})

	t.Run("passes target version and captures output", func(t *testing.T) {
		runner := &LocalLockRunner{binary: "echo"}

		output, err := runner.RegenerateLock(context.Background(), manifest, "3.11")
		require.NoError(t, err)
		assert.True(t, strings.Contains(output, "--python 3.11"), "output = %q", output)
	})
}
