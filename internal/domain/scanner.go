// Package domain implements the imgfork pipeline: discovering source
// build contexts, deriving their target paths, copying them, rewriting
// version markers, and regenerating dependency locks.
package domain

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"imgfork.dev/pkg/imgfork/internal/adapter"
	m "imgfork.dev/pkg/imgfork/internal/model"
)

// buildDescriptor marks a directory as a buildable context. Its
// content is never inspected during scanning; later stages treat it
// like any other file.
const buildDescriptor = "Dockerfile"

// excludedSegments are subtrees that are never descended into,
// anchored at the scan root.
var excludedSegments = []string{
	".git",
	".github",
	"ci",
	"docs",
	"manifests",
	"scripts",
	"tests",
}

// Scanner discovers source build contexts under a context root.
type Scanner interface {
	// Scan returns every directory under root whose path contains both
	// sourceVersion and match and which carries the build descriptor.
	// Subtrees below a match are not re-examined.
	Scan(root m.Path, sourceVersion, match string) ([]m.Candidate, error)
}

type scanner struct {
	fs adapter.ContextFS
}

// NewScanner constructs a Scanner backed by the provided filesystem
// adapter.
func NewScanner(fs adapter.ContextFS) Scanner {
	return &scanner{fs: fs}
}

func (s *scanner) Scan(root m.Path, sourceVersion, match string) ([]m.Candidate, error) {
	if _, err := s.fs.Stat(root); err != nil {
		return nil, fmt.Errorf("context root: %w", err)
	}

	blocked := make([]m.Path, 0, len(excludedSegments))
	for _, segment := range excludedSegments {
		blocked = append(blocked, s.fs.JoinPath(string(root), segment))
	}

	var candidates []m.Candidate

	seen := make(map[m.Path]struct{})

	var walk func(dir m.Path)
	walk = func(dir m.Path) {
		if s.isBlocked(dir, blocked) {
			slog.Debug("skipping blocked directory", "path", dir)
			return
		}

		entries, err := s.fs.ReadDir(dir)
		if err != nil {
			slog.Debug("skipping unreadable directory", "path", dir, "error", err)
			return
		}

		path := string(dir)
		if strings.Contains(path, sourceVersion) && strings.Contains(path, match) {
			// Matching directories end the descent whether or not they
			// qualify: nested matches are never re-examined.
			if _, ok := seen[dir]; !ok && hasFile(entries, buildDescriptor) {
				slog.Debug("found matching build context", "path", dir)
				seen[dir] = struct{}{}
				candidates = append(candidates, m.Candidate{Path: dir})
			} else {
				slog.Debug("skipping match without build descriptor", "path", dir)
			}

			return
		}

		for _, entry := range entries {
			if entry.IsDir() {
				walk(s.fs.JoinPath(path, entry.Name()))
			}
		}
	}

	walk(root)

	// Defensive re-filter: only paths still carrying the source
	// version are accepted, whatever the descent logic produced.
	filtered := make([]m.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if strings.Contains(string(c.Path), sourceVersion) {
			filtered = append(filtered, c)
		}
	}

	return filtered, nil
}

func (s *scanner) isBlocked(dir m.Path, blocked []m.Path) bool {
	for _, b := range blocked {
		if dir == b || strings.HasPrefix(string(dir), string(b)+string(filepath.Separator)) {
			return true
		}
	}

	return false
}

func hasFile(entries []os.DirEntry, name string) bool {
	for _, entry := range entries {
		if !entry.IsDir() && entry.Name() == name {
			return true
		}
	}

	return false
}
