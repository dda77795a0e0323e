package domain

import (
	"context"
	"log/slog"
	"strings"

	"imgfork.dev/pkg/imgfork/internal/adapter"
	m "imgfork.dev/pkg/imgfork/internal/model"
	"imgfork.dev/pkg/imgfork/pkg"
)

// manifestPrefix identifies dependency manifests. Files whose name
// contains "lock" are existing lock artifacts, not manifests.
const manifestPrefix = "Pipfile"

// LockRegenerator re-resolves dependency lock files for processed
// destination trees.
type LockRegenerator interface {
	// RegenerateLocks finds every manifest under the processed roots
	// and re-invokes the lock command against targetVersion, recording
	// each manifest as succeeded or failed. The batch never aborts.
	RegenerateLocks(ctx context.Context, roots []m.Path, targetVersion string) *pkg.Partition[m.Path]
}

type lockRegenerator struct {
	fs     adapter.ContextFS
	runner adapter.LockRunner
}

// NewLockRegenerator constructs a LockRegenerator backed by the
// provided filesystem adapter and lock command runner.
func NewLockRegenerator(fs adapter.ContextFS, runner adapter.LockRunner) LockRegenerator {
	return &lockRegenerator{
		fs:     fs,
		runner: runner,
	}
}

func (l *lockRegenerator) RegenerateLocks(ctx context.Context, roots []m.Path, targetVersion string) *pkg.Partition[m.Path] {
	result := pkg.NewPartition[m.Path]()

	for _, root := range roots {
		if !l.fs.Exists(root) {
			slog.Warn("processed path does not exist", "path", root)
			continue
		}

		for _, manifest := range l.findManifests(root) {
			slog.Info("regenerating lock file", "manifest", manifest, "python", targetVersion)

			output, err := l.runner.RegenerateLock(ctx, manifest, targetVersion)
			if err != nil {
				slog.Debug("lock regeneration failed", "manifest", manifest, "error", err, "output", output)
				result.Fail(manifest)

				continue
			}

			slog.Debug("lock regenerated", "manifest", manifest, "output", output)
			result.Succeed(manifest)
		}
	}

	return result
}

// findManifests walks root and collects files named with the manifest
// prefix, excluding existing lock artifacts.
func (l *lockRegenerator) findManifests(root m.Path) []m.Path {
	var manifests []m.Path

	var walk func(dir m.Path)
	walk = func(dir m.Path) {
		entries, err := l.fs.ReadDir(dir)
		if err != nil {
			slog.Debug("skipping unreadable directory", "path", dir, "error", err)
			return
		}

		for _, entry := range entries {
			path := l.fs.JoinPath(string(dir), entry.Name())

			if entry.IsDir() {
				walk(path)
				continue
			}

			name := entry.Name()
			if strings.HasPrefix(name, manifestPrefix) && !strings.Contains(name, "lock") {
				manifests = append(manifests, path)
			}
		}
	}

	walk(root)

	return manifests
}
