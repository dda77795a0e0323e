// Package cmd provides the root command and CLI setup for imgfork.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"imgfork.dev/pkg/imgfork/internal/adapter"
	"imgfork.dev/pkg/imgfork/internal/controller"
	"imgfork.dev/pkg/imgfork/internal/domain"
)

var fsAdapter adapter.ContextFS
var lockRunner adapter.LockRunner
var ui controller.UI
var workflow domain.Workflow

// Selection flags shared by the fork and scan commands. Both commands
// register their own flag instances over the same variables; only the
// executed command parses them.
var (
	contextDirFlag string
	sourceFlag     string
	targetFlag     string
	matchFlag      string
)

var verboseFlag bool
var logFileFlag string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewSimpleUI(rootCmd)
	fsAdapter = adapter.NewLocalContextFS()
	lockRunner = adapter.NewLocalLockRunner()
	workflow = domain.NewWorkflow(fsAdapter, lockRunner, ui)
}

const rootLongDescription = `Imgfork scaffolds a new Python version variant of a repository of
Docker build contexts. It finds every context directory matching a
source version and a path token, copies it under the target version,
rewrites version markers in file names and contents, and regenerates
Pipfile locks against the new interpreter.

Building and testing the generated images remains a manual follow-up.`

const forkLongDescription = `Copy every matching build context to the target Python version.

A directory qualifies when its path contains both the source version
and the match token and it carries a Dockerfile. Copies never overwrite
an existing destination; failed items are reported and the remaining
batch continues.`

const scanLongDescription = `List the build contexts that a fork run would copy, together with
their derived destination paths. No filesystem changes are made.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "imgfork",
		Short: "Scaffold Python version variants of Docker build contexts",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVar(&verboseFlag, verboseFlagName, viper.GetBool(logVerboseKey), "enable debug logging")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

// configureSelectionFlags registers the flags that select which build
// contexts a command operates on.
func configureSelectionFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&contextDirFlag, contextDirFlagName, "C", viper.GetString(contextDirKey), "root directory of the build context tree")
	cmd.Flags().StringVar(&sourceFlag, sourceFlagName, viper.GetString(sourceFlagName), "Python version to base the new contexts on (e.g. 3.9)")
	cmd.Flags().StringVar(&targetFlag, targetFlagName, viper.GetString(targetFlagName), "Python version for the new contexts (e.g. 3.11)")
	cmd.Flags().StringVarP(&matchFlag, matchFlagName, "m", viper.GetString(matchFlagName), "substring the context path must contain")
}

// validateSelection rejects empty selection inputs before any domain
// logic runs.
func validateSelection() error {
	var errs []error

	if sourceFlag == "" {
		errs = append(errs, fmt.Errorf("--%s is required (the Python version to base the new contexts on)", sourceFlagName))
	}

	if targetFlag == "" {
		errs = append(errs, fmt.Errorf("--%s is required (the Python version for the new contexts)", targetFlagName))
	}

	if matchFlag == "" {
		errs = append(errs, fmt.Errorf("--%s is required (the substring the context path must contain)", matchFlagName))
	}

	return errors.Join(errs...)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
