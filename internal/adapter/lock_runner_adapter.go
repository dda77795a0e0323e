package adapter

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"

	m "imgfork.dev/pkg/imgfork/internal/model"
)

// pipfileEnv names the manifest file for the lock tool, so manifests
// with non-default names (e.g. "Pipfile-dev") are picked up.
const pipfileEnv = "PIPENV_PIPFILE"

// LockRunner abstracts the external lock-generation command so the
// regeneration stage can be tested without invoking real tooling.
type LockRunner interface {
	// RegenerateLock re-resolves the lock file for the manifest at the
	// given path against targetVersion. It returns the combined
	// stdout/stderr output and a non-nil error on non-zero exit.
	RegenerateLock(ctx context.Context, manifest m.Path, targetVersion string) (output string, err error)
}

// LocalLockRunner provides a concrete implementation using os/exec,
// invoking `pipenv lock` in the manifest's directory.
type LocalLockRunner struct {
	binary string
}

// NewLocalLockRunner constructs a LocalLockRunner that shells out to
// pipenv.
func NewLocalLockRunner() *LocalLockRunner {
	return &LocalLockRunner{
		binary: "pipenv",
	}
}

// RegenerateLock runs the lock command for a single manifest. The
// command inherits the process environment with the manifest base name
// exported, and is scoped to the manifest's directory.
func (r *LocalLockRunner) RegenerateLock(ctx context.Context, manifest m.Path, targetVersion string) (string, error) {
	dir := filepath.Dir(string(manifest))
	base := filepath.Base(string(manifest))

	cmd := exec.CommandContext(ctx, r.binary, "lock", "--python", targetVersion)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), pipfileEnv+"="+base)

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	output := stdout.String() + stderr.String()

	return output, err
}
