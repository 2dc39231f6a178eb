package cli

import (
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-peaks/internal/app"
)

func newPlotCmd(state *rootState) *cobra.Command {
	var (
		thresholds thresholdFlags
		opts       app.PlotOptions
	)

	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Render a channel with its threshold and peaks as PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.ThresholdOptions = thresholds.options(cmd)
			return state.getApp().Plot(cmd.Context(), opts)
		},
	}

	thresholds.register(cmd)
	cmd.Flags().StringVar(&opts.CSVPath, "csv", "", "CSV file in the format of timestamp, x, y, z")
	cmd.Flags().StringVar(&opts.PNGPath, "png", "", "Output PNG path")
	cmd.Flags().StringVar(&opts.Channel, "channel", "x", "Channel to plot (x, y, z, magnitude)")
	cmd.Flags().IntVar(&opts.Width, "width", 0, "Image width in pixels (default from config)")
	cmd.Flags().IntVar(&opts.Height, "height", 0, "Image height in pixels (default from config)")

	return cmd
}
