// Package controller provides output adapters for displaying scaffold
// pipeline progress and results.
package controller

import (
	m "imgfork.dev/pkg/imgfork/internal/model"
	"imgfork.dev/pkg/imgfork/pkg"
)

// UI defines the interface for user-facing pipeline output.
// Implementations can use different output methods; the pipeline only
// talks to this interface.
type UI interface {
	// Info prints a plain informational line.
	Info(format string, args ...any)

	// Warn prints a warning line.
	Warn(format string, args ...any)

	// DisplayPlan renders the source to destination mapping before any
	// copy is attempted.
	DisplayPlan(mappings []m.Mapping)

	// DisplayBatchSummary renders the succeeded/failed partition of a
	// batch stage.
	DisplayBatchSummary(stage string, result *pkg.Partition[m.Path])

	// DisplayChecklist renders the manual follow-up actions.
	DisplayChecklist(items []string)
}
