package controller

import (
	"bytes"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "imgfork.dev/pkg/imgfork/internal/model"
	"imgfork.dev/pkg/imgfork/pkg"
)

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// SimpleUI implements UI using cobra Command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Info prints a plain informational line.
func (s *SimpleUI) Info(format string, args ...any) {
	s.printf(format+"\n", args...)
}

// Warn prints a highlighted warning line.
func (s *SimpleUI) Warn(format string, args ...any) {
	s.printf("%s\n", warnStyle.Render(fmt.Sprintf(format, args...)))
}

// DisplayPlan renders the enumerated source to destination mapping.
func (s *SimpleUI) DisplayPlan(mappings []m.Mapping) {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"#", "Source", "Destination"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for i, mapping := range mappings {
		table.Append([]string{
			fmt.Sprintf("%d", i+1),
			string(mapping.Source),
			string(mapping.Destination),
		})
	}

	table.Render()

	s.printf("\n%s\n", tableBuffer.String())
}

// DisplayBatchSummary renders the per-path outcome of a batch stage
// followed by a one-line count summary.
func (s *SimpleUI) DisplayBatchSummary(stage string, result *pkg.Partition[m.Path]) {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Status"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	for _, path := range result.Succeeded() {
		table.Append([]string{string(path), okStyle.Render("ok")})
	}

	for _, path := range result.Failed() {
		table.Append([]string{string(path), failStyle.Render("failed")})
	}

	table.Render()

	s.printf("\n%s\n", tableBuffer.String())
	s.printf("%s: %d succeeded, %d failed\n", stage, len(result.Succeeded()), len(result.Failed()))
}

// DisplayChecklist renders the manual follow-up actions as an
// enumerated list.
func (s *SimpleUI) DisplayChecklist(items []string) {
	s.printf("\nManual checks to perform after the run:\n")

	for i, item := range items {
		s.printf("%d. %s\n", i+1, item)
	}
}

func (s *SimpleUI) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
