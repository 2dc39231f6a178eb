// Package cli implements the peakfinder command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-peaks/internal/app"
	"github.com/cwbudde/algo-peaks/internal/config"
	"github.com/cwbudde/algo-peaks/internal/logging"
)

// rootState carries flag values and the application handle shared by the
// subcommands of one command tree.
type rootState struct {
	cfgFile   string
	logLevel  string
	appHandle *app.App
}

// NewRootCommand builds the peakfinder command tree.
func NewRootCommand() *cobra.Command {
	state := &rootState{}

	rootCmd := &cobra.Command{
		Use:           "peakfinder",
		Short:         "Find threshold-bounded peaks in three-axis sensor recordings",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if state.appHandle != nil {
				return nil
			}

			cfg, err := config.Load(state.cfgFile)
			if err != nil {
				return err
			}

			if state.logLevel != "" {
				cfg.Logging.Level = state.logLevel
			}

			logger := logging.NewLogger(cfg.Logging, cmd.ErrOrStderr())
			state.appHandle = app.NewApp(cfg, logger, cmd.OutOrStdout())
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&state.cfgFile, "config", "", "Path to configuration file")
	rootCmd.PersistentFlags().StringVar(&state.logLevel, "log-level", "", "Override log level defined in config")

	rootCmd.AddCommand(newDetectCmd(state))
	rootCmd.AddCommand(newPlotCmd(state))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (s *rootState) getApp() *app.App {
	if s.appHandle == nil {
		panic("application not initialized; PersistentPreRunE not executed")
	}
	return s.appHandle
}

// thresholdFlags registers --threshold and --sigmas on cmd.
type thresholdFlags struct {
	threshold float64
	sigmas    float64
}

func (f *thresholdFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.threshold, "threshold", 0, "Fixed threshold; peaks must reach this value")
	cmd.Flags().Float64Var(&f.sigmas, "sigmas", 1, "Derive the threshold as mean + sigmas * standard deviation")
	cmd.MarkFlagsMutuallyExclusive("threshold", "sigmas")
}

// options returns only the flags the user actually set so that config
// defaults apply otherwise.
func (f *thresholdFlags) options(cmd *cobra.Command) app.ThresholdOptions {
	var opts app.ThresholdOptions
	if cmd.Flags().Changed("threshold") {
		v := f.threshold
		opts.Threshold = &v
	}
	if cmd.Flags().Changed("sigmas") {
		v := f.sigmas
		opts.Sigmas = &v
	}
	return opts
}
