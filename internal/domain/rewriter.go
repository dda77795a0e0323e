package domain

import (
	"log/slog"
	"os"

	"imgfork.dev/pkg/imgfork/internal/adapter"
	m "imgfork.dev/pkg/imgfork/internal/model"
	"imgfork.dev/pkg/imgfork/internal/version"
)

// Rewriter migrates a copied destination tree to the target version:
// every file and directory name containing a version token is renamed,
// and file contents are rewritten in place.
type Rewriter interface {
	// RewriteTree walks root bottom-up. Children are processed while
	// their parent's original path is still valid; the parent is
	// renamed only afterwards, so the post-order is a correctness
	// requirement, not an optimization. Individual failures are logged
	// and skipped.
	RewriteTree(root m.Path, source, target version.Spec)
}

type rewriter struct {
	fs adapter.ContextFS
}

// NewRewriter constructs a Rewriter backed by the provided filesystem
// adapter.
func NewRewriter(fs adapter.ContextFS) Rewriter {
	return &rewriter{fs: fs}
}

func (r *rewriter) RewriteTree(root m.Path, source, target version.Spec) {
	slog.Debug("rewriting version markers", "path", root)
	r.walk(root, source, target)
}

// walk recurses over a pre-enumerated listing. ReadDir materializes
// the entries up front, so renaming while iterating cannot invalidate
// the traversal.
func (r *rewriter) walk(dir m.Path, source, target version.Spec) {
	entries, err := r.fs.ReadDir(dir)
	if err != nil {
		slog.Debug("skipping unreadable directory", "path", dir, "error", err)
		return
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		child := r.fs.JoinPath(string(dir), entry.Name())
		r.walk(child, source, target)
		r.renameEntry(dir, entry.Name(), source, target)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		renamed := r.renameEntry(dir, entry.Name(), source, target)
		r.rewriteFile(renamed, entry, source, target)
	}
}

// renameEntry renames a file or directory in place within dir when its
// name carries a version token, and returns the entry's current path.
func (r *rewriter) renameEntry(dir m.Path, name string, source, target version.Spec) m.Path {
	oldPath := r.fs.JoinPath(string(dir), name)

	newName := version.Rewrite(name, source, target)
	if newName == name {
		return oldPath
	}

	newPath := r.fs.JoinPath(string(dir), newName)
	if err := r.fs.Rename(oldPath, newPath); err != nil {
		slog.Debug("failed to rename", "from", oldPath, "to", newPath, "error", err)
		return oldPath
	}

	slog.Debug("renamed", "from", oldPath, "to", newPath)

	return newPath
}

// rewriteFile rewrites version markers in a file's content. Read or
// write failures are best-effort: logged at debug level and skipped.
func (r *rewriter) rewriteFile(path m.Path, entry os.DirEntry, source, target version.Spec) {
	content, err := r.fs.ReadFile(path)
	if err != nil {
		slog.Debug("skipping unreadable file", "path", path, "error", err)
		return
	}

	rewritten := version.Rewrite(string(content), source, target)
	if rewritten == string(content) {
		return
	}

	perm := os.FileMode(0o644)
	if info, err := entry.Info(); err == nil {
		perm = info.Mode().Perm()
	}

	if err := r.fs.WriteFile(path, []byte(rewritten), perm); err != nil {
		slog.Debug("failed to rewrite file", "path", path, "error", err)
		return
	}

	slog.Debug("rewrote version markers", "path", path)
}
