package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-peaks/internal/app"
	"github.com/cwbudde/algo-peaks/internal/config"
)

func newDetectCmd(state *rootState) *cobra.Command {
	var (
		thresholds thresholdFlags
		csvPath    string
		channels   []string
		format     string
		precision  int
	)

	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Print the peaks of each channel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := app.DetectOptions{
				ThresholdOptions: thresholds.options(cmd),
				CSVPath:          csvPath,
				Channels:         channels,
				Format:           format,
			}

			if cmd.Flags().Changed("precision") {
				if precision < 0 || precision > config.MaxPrecision {
					return fmt.Errorf("--precision must be between 0 and %d, got %d", config.MaxPrecision, precision)
				}
				opts.Precision = &precision
			}

			return state.getApp().Detect(cmd.Context(), opts)
		},
	}

	thresholds.register(cmd)
	cmd.Flags().StringVar(&csvPath, "csv", "", "CSV file in the format of timestamp, x, y, z")
	cmd.Flags().StringSliceVar(&channels, "channels", nil, "Channels to analyze (x, y, z, magnitude)")
	cmd.Flags().StringVar(&format, "format", "", "Output format: text or json")
	cmd.Flags().IntVar(&precision, "precision", 3, "Decimals in text output")

	return cmd
}
