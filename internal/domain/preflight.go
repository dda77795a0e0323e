package domain

import (
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"

	"imgfork.dev/pkg/imgfork/internal/version"
)

// Preflight validates the runtime environment before any filesystem
// mutation. Every failure here is fatal; the pipeline never starts on
// a host that cannot finish the run.
type Preflight struct {
	lookPath func(file string) (string, error)
	goos     string
}

// NewPreflight constructs a Preflight bound to the real host.
func NewPreflight() *Preflight {
	return &Preflight{
		lookPath: exec.LookPath,
		goos:     runtime.GOOS,
	}
}

// Check verifies the host OS, the version pair, and the presence of
// the target Python interpreter. The pipenv check only applies when
// lock regeneration will run.
func (p *Preflight) Check(source, target version.Spec, needLock bool) error {
	slog.Debug("running preflight checks", "os", p.goos, "source", source.Dotted(), "target", target.Dotted())

	if p.goos != "linux" {
		return fmt.Errorf("unsupported operating system %q, only linux is supported", p.goos)
	}

	if source == target {
		return fmt.Errorf("source and target versions must be different, both are %s", source.Dotted())
	}

	interpreter := "python" + target.Dotted()
	if _, err := p.lookPath(interpreter); err != nil {
		return fmt.Errorf("python %s is not installed: %w", target.Dotted(), err)
	}

	if needLock {
		if _, err := p.lookPath("pipenv"); err != nil {
			return fmt.Errorf("pipenv is not installed: %w", err)
		}
	}

	return nil
}
