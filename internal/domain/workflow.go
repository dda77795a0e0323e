package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"imgfork.dev/pkg/imgfork/internal/adapter"
	"imgfork.dev/pkg/imgfork/internal/controller"
	m "imgfork.dev/pkg/imgfork/internal/model"
	"imgfork.dev/pkg/imgfork/internal/version"
)

// ErrNoCandidates indicates that scanning found nothing to copy.
var ErrNoCandidates = errors.New("no matching build contexts found")

// ForkArgs carries the validated inputs of a fork run.
type ForkArgs struct {
	ContextDir m.Path
	Source     string
	Target     string
	Match      string
	SkipLock   bool
}

// PlanArgs carries the inputs of a dry-run scan.
type PlanArgs struct {
	ContextDir m.Path
	Source     string
	Target     string
	Match      string
}

// Workflow orchestrates the scaffold pipeline end to end.
type Workflow interface {
	// Plan discovers source build contexts and derives their
	// destinations without mutating the filesystem.
	Plan(args PlanArgs) ([]m.Mapping, error)

	// Fork runs the full pipeline: preflight, scan, copy, rewrite,
	// lock regeneration, summary. It returns an error when nothing was
	// found or when any copy or lock regeneration failed.
	Fork(ctx context.Context, args ForkArgs) error
}

type workflow struct {
	preflight *Preflight
	scanner   Scanner
	copier    Copier
	rewriter  Rewriter
	locker    LockRegenerator
	ui        controller.UI
}

// NewWorkflow creates a Workflow wired to the provided adapters and UI.
func NewWorkflow(fs adapter.ContextFS, runner adapter.LockRunner, ui controller.UI) Workflow {
	return &workflow{
		preflight: NewPreflight(),
		scanner:   NewScanner(fs),
		copier:    NewCopier(fs),
		rewriter:  NewRewriter(fs),
		locker:    NewLockRegenerator(fs, runner),
		ui:        ui,
	}
}

func (w *workflow) Plan(args PlanArgs) ([]m.Mapping, error) {
	source, target, err := parseVersionPair(args.Source, args.Target)
	if err != nil {
		return nil, err
	}

	candidates, err := w.scanner.Scan(args.ContextDir, args.Source, args.Match)
	if err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}

	return MapPaths(candidates, source, target), nil
}

func (w *workflow) Fork(ctx context.Context, args ForkArgs) error {
	source, target, err := parseVersionPair(args.Source, args.Target)
	if err != nil {
		return err
	}

	if err := w.preflight.Check(source, target, !args.SkipLock); err != nil {
		return fmt.Errorf("preflight: %w", err)
	}

	done := w.stage("Finding build contexts matching %q with Python %s...", args.Match, source.Dotted())

	candidates, err := w.scanner.Scan(args.ContextDir, args.Source, args.Match)
	if err != nil {
		return fmt.Errorf("scan: %w", err)
	}

	done()

	mappings := MapPaths(candidates, source, target)
	if len(mappings) == 0 {
		w.ui.Warn("No build contexts found to copy.")
		return ErrNoCandidates
	}

	w.ui.Info("New build context(s) based on the input:")
	w.ui.DisplayPlan(mappings)

	done = w.stage("Copying %d build context(s)...", len(mappings))

	copied := w.copier.CopyAll(mappings)
	w.ui.DisplayBatchSummary("copy", copied)

	for _, root := range copied.Succeeded() {
		w.rewriter.RewriteTree(root, source, target)
	}

	done()

	failed := copied.HasFailures()

	if !args.SkipLock && len(copied.Succeeded()) > 0 {
		done = w.stage("Regenerating lock files with Python %s...", target.Dotted())

		locks := w.locker.RegenerateLocks(ctx, copied.Succeeded(), target.Dotted())
		if locks.Len() > 0 {
			w.ui.DisplayBatchSummary("lock regeneration", locks)
		}

		done()

		failed = failed || locks.HasFailures()
	}

	w.ui.DisplayChecklist(manualChecks())

	if failed {
		slog.Warn("run completed with failures")
		return errors.New("completed with failures")
	}

	return nil
}

// stage prints the opening banner of a pipeline stage and returns the
// closer that repeats the banner with a Done marker.
func (w *workflow) stage(format string, args ...any) func() {
	banner := fmt.Sprintf(format, args...)
	w.ui.Info("%s", banner)

	return func() {
		w.ui.Info("%s Done.", banner)
	}
}

func parseVersionPair(sourceVersion, targetVersion string) (version.Spec, version.Spec, error) {
	source, err := version.ParseSpec(sourceVersion)
	if err != nil {
		return version.Spec{}, version.Spec{}, fmt.Errorf("source version: %w", err)
	}

	target, err := version.ParseSpec(targetVersion)
	if err != nil {
		return version.Spec{}, version.Spec{}, fmt.Errorf("target version: %w", err)
	}

	if source == target {
		return version.Spec{}, version.Spec{}, errors.New("source and target versions must be different")
	}

	return source, target, nil
}

// manualChecks lists the follow-up actions that remain out of scope
// for the tool itself.
func manualChecks() []string {
	return []string{
		"Check the issues reported during the run, if any, and fix them manually.",
		"Check that the version replacements were performed correctly on the new files.",
		"Review and make the appropriate changes in the Makefile and CI-related files.",
		"Push the changes to a new branch on your fork to build the new images with the CI workflows.",
		"Test the new images.",
	}
}
