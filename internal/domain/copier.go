package domain

import (
	"log/slog"
	"path/filepath"

	"imgfork.dev/pkg/imgfork/internal/adapter"
	m "imgfork.dev/pkg/imgfork/internal/model"
	"imgfork.dev/pkg/imgfork/pkg"
)

// Copier duplicates source build contexts to their mapped destinations.
type Copier interface {
	// CopyAll copies each mapping in order, recording the destination
	// as succeeded or failed. A pre-existing destination is a failure
	// and is left untouched. The batch never aborts; a failed copy may
	// leave a partial destination tree behind (no rollback).
	CopyAll(mappings []m.Mapping) *pkg.Partition[m.Path]
}

type copier struct {
	fs adapter.ContextFS
}

// NewCopier constructs a Copier backed by the provided filesystem
// adapter.
func NewCopier(fs adapter.ContextFS) Copier {
	return &copier{fs: fs}
}

func (c *copier) CopyAll(mappings []m.Mapping) *pkg.Partition[m.Path] {
	result := pkg.NewPartition[m.Path]()

	for _, mapping := range mappings {
		if c.fs.Exists(mapping.Destination) {
			slog.Warn("destination already exists", "path", mapping.Destination)
			result.Fail(mapping.Destination)

			continue
		}

		parent := m.Path(filepath.Dir(string(mapping.Destination)))
		if err := c.fs.MkdirAll(parent, 0o750); err != nil {
			slog.Error("failed to create destination parent", "path", parent, "error", err)
			result.Fail(mapping.Destination)

			continue
		}

		if err := c.fs.CopyDir(mapping.Source, mapping.Destination); err != nil {
			slog.Error("failed to copy build context", "source", mapping.Source, "destination", mapping.Destination, "error", err)
			result.Fail(mapping.Destination)

			continue
		}

		slog.Debug("copied build context", "source", mapping.Source, "destination", mapping.Destination)
		result.Succeed(mapping.Destination)
	}

	return result
}
