package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"imgfork.dev/pkg/imgfork/internal/domain"
	m "imgfork.dev/pkg/imgfork/internal/model"
)

var scanFormatFlag string

// scanCmd represents the scan command.
var scanCmd = newScanCmd()

func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan --source <version> --target <version> --match <token>",
		Short: "List matching build contexts without copying",
		Long:  scanLongDescription,
		Args:  cobra.ExactArgs(0),
		PreRunE: func(_ *cobra.Command, _ []string) error {
			return validateSelection()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			mappings, err := workflow.Plan(domain.PlanArgs{
				ContextDir: m.Path(contextDirFlag),
				Source:     sourceFlag,
				Target:     targetFlag,
				Match:      matchFlag,
			})
			if err != nil {
				return err
			}

			switch scanFormatFlag {
			case "yaml":
				return writeMappingsYAML(cmd.OutOrStdout(), mappings)
			case "table":
				if len(mappings) == 0 {
					ui.Warn("No build contexts found.")
					return nil
				}

				ui.DisplayPlan(mappings)

				return nil
			default:
				return fmt.Errorf("unknown format %q, expected 'table' or 'yaml'", scanFormatFlag)
			}
		},
	}

	configureSelectionFlags(cmd)
	cmd.Flags().StringVarP(&scanFormatFlag, formatFlagName, "f", "table", "output format: 'table' or 'yaml'")

	return cmd
}

type mappingDoc struct {
	Source      string `yaml:"source"`
	Destination string `yaml:"destination"`
}

func writeMappingsYAML(w io.Writer, mappings []m.Mapping) error {
	docs := make([]mappingDoc, 0, len(mappings))
	for _, mapping := range mappings {
		docs = append(docs, mappingDoc{
			Source:      string(mapping.Source),
			Destination: string(mapping.Destination),
		})
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer func() { _ = encoder.Close() }()

	return encoder.Encode(docs)
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
