package app

import (
	"context"
	"fmt"

	"github.com/cwbudde/algo-peaks/internal/config"
	"github.com/cwbudde/algo-peaks/internal/report"
)

// DetectOptions configures a detect run. Zero values fall back to config.
type DetectOptions struct {
	ThresholdOptions

	CSVPath   string
	Channels  []string
	Format    string
	Precision *int
}

// Detect finds the peaks of every selected channel and writes the reports.
func (a *App) Detect(ctx context.Context, opts DetectOptions) error {
	strategy, err := a.Strategy(opts.ThresholdOptions)
	if err != nil {
		return err
	}
	logStrategy(a.Logger, strategy)

	channels := opts.Channels
	if len(channels) == 0 {
		channels = a.Config.Detect.Channels
	}

	format := opts.Format
	if format == "" {
		format = a.Config.Output.Format
	}
	if format != config.FormatText && format != config.FormatJSON {
		return fmt.Errorf("unknown output format %q", format)
	}

	precision := a.Config.Output.Precision
	if opts.Precision != nil {
		precision = *opts.Precision
	}

	rec, err := a.load(opts.CSVPath)
	if err != nil {
		return err
	}

	reports := make([]report.ChannelReport, 0, len(channels))
	for _, name := range channels {
		if err := ctx.Err(); err != nil {
			return err
		}

		samples, err := rec.Channel(name)
		if err != nil {
			return err
		}

		r, err := report.Analyze(name, samples, strategy)
		if err != nil {
			return err
		}

		a.Logger.Info().
			Str("channel", name).
			Float64("threshold", r.Threshold).
			Int("regions", len(r.Regions)).
			Msg("detected peaks")

		reports = append(reports, r)
	}

	if format == config.FormatJSON {
		return report.WriteJSON(a.Out, reports)
	}
	return report.WriteText(a.Out, reports, precision)
}
