// Package adapter contains infrastructure adapters for the imgfork CLI.
package adapter

import (
	"io"
	"os"
	"path/filepath"

	m "imgfork.dev/pkg/imgfork/internal/model"
)

// ContextFS abstracts the filesystem operations the pipeline performs
// on build-context trees. It hides direct `os` access so scanning,
// copying and rewriting logic can be tested against temp trees without
// touching global state.
type ContextFS interface {
	// ReadDir returns the directory entries of path. The listing is
	// fully materialized, so callers may rename entries while
	// iterating over it.
	ReadDir(path m.Path) ([]os.DirEntry, error)

	// Stat returns metadata for a path.
	Stat(path m.Path) (os.FileInfo, error)

	// Exists reports whether path exists on disk.
	Exists(path m.Path) bool

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile writes content to a file with the given permissions.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// MkdirAll creates a directory and any missing parents.
	MkdirAll(path m.Path, perm os.FileMode) error

	// Rename moves a file or directory to a new path.
	Rename(oldPath, newPath m.Path) error

	// CopyDir recursively copies a directory tree, merging into any
	// partially existing destination.
	CopyDir(src, dst m.Path) error

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// LocalContextFS is the os/filepath backed implementation of ContextFS.
type LocalContextFS struct{}

// NewLocalContextFS constructs a LocalContextFS instance ready to be
// wired into the workflow.
func NewLocalContextFS() *LocalContextFS {
	return &LocalContextFS{}
}

// ReadDir returns the entries of a directory.
func (a *LocalContextFS) ReadDir(path m.Path) ([]os.DirEntry, error) {
	return os.ReadDir(string(path))
}

// Stat returns os.FileInfo metadata for the given path.
func (a *LocalContextFS) Stat(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// Exists reports whether the path exists.
func (a *LocalContextFS) Exists(path m.Path) bool {
	_, err := os.Stat(string(path))
	return err == nil
}

// ReadFile loads file contents from disk.
func (a *LocalContextFS) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalContextFS) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	return os.WriteFile(string(path), content, perm)
}

// MkdirAll creates a directory along with any missing parents.
func (a *LocalContextFS) MkdirAll(path m.Path, perm os.FileMode) error {
	return os.MkdirAll(string(path), perm)
}

// Rename moves a file or directory in place.
func (a *LocalContextFS) Rename(oldPath, newPath m.Path) error {
	return os.Rename(string(oldPath), string(newPath))
}

// CopyDir recursively copies a directory tree. Existing directories at
// the destination are merged into; file permissions are carried over
// best-effort.
func (a *LocalContextFS) CopyDir(src, dst m.Path) error {
	return filepath.Walk(string(src), func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(string(src), path)
		if err != nil {
			return err
		}

		targetPath := filepath.Join(string(dst), relPath)

		if info.IsDir() {
			return os.MkdirAll(targetPath, info.Mode())
		}

		return a.copyFile(path, targetPath, info.Mode())
	})
}

// copyFile copies a single file.
func (a *LocalContextFS) copyFile(src, dst string, mode os.FileMode) error {
	// #nosec G304 - src is a discovered build-context path, not user input
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}

	defer func() { _ = sourceFile.Close() }()

	if err := os.MkdirAll(filepath.Dir(dst), 0o750); err != nil {
		return err
	}

	// #nosec G304 - dst is a derived destination path, not user input
	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}

	defer func() { _ = destFile.Close() }()

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		return err
	}

	return os.Chmod(dst, mode)
}

// JoinPath joins path elements into a single path.
func (a *LocalContextFS) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
