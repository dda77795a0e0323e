package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"imgfork.dev/pkg/imgfork/internal/domain"
	m "imgfork.dev/pkg/imgfork/internal/model"
)

var forkSkipLockFlag bool

// forkCmd represents the fork command.
var forkCmd = newForkCmd()

func newForkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fork --source <version> --target <version> --match <token>",
		Short: "Copy matching build contexts to a new Python version",
		Long:  forkLongDescription,
		Args:  cobra.ExactArgs(0),
		PreRunE: func(_ *cobra.Command, _ []string) error {
			return validateSelection()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			if timeout := viper.GetDuration(lockTimeoutKey); timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			return workflow.Fork(ctx, domain.ForkArgs{
				ContextDir: m.Path(contextDirFlag),
				Source:     sourceFlag,
				Target:     targetFlag,
				Match:      matchFlag,
				SkipLock:   forkSkipLockFlag,
			})
		},
	}

	configureSelectionFlags(cmd)
	cmd.Flags().BoolVar(&forkSkipLockFlag, skipLockFlagName, viper.GetBool(skipLockKey), "skip Pipfile lock regeneration")

	return cmd
}

func init() {
	rootCmd.AddCommand(forkCmd)
}
