package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cwbudde/algo-peaks/internal/plot"
	"github.com/cwbudde/algo-peaks/internal/report"
)

// PlotOptions configures a plot run.
type PlotOptions struct {
	ThresholdOptions

	CSVPath string
	PNGPath string
	Channel string
	Width   int
	Height  int
}

// Plot renders one channel with its threshold and detected peaks to a PNG file.
func (a *App) Plot(ctx context.Context, opts PlotOptions) error {
	if opts.PNGPath == "" {
		return errors.New("--png must be provided")
	}
	if opts.Channel == "" {
		return errors.New("--channel must be provided")
	}

	strategy, err := a.Strategy(opts.ThresholdOptions)
	if err != nil {
		return err
	}
	logStrategy(a.Logger, strategy)

	rec, err := a.load(opts.CSVPath)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	samples, err := rec.Channel(opts.Channel)
	if err != nil {
		return err
	}

	r, err := report.Analyze(opts.Channel, samples, strategy)
	if err != nil {
		return err
	}

	width, height := opts.Width, opts.Height
	if width <= 0 {
		width = a.Config.Plot.Width
	}
	if height <= 0 {
		height = a.Config.Plot.Height
	}

	if err := ensureDir(opts.PNGPath); err != nil {
		return err
	}

	file, err := os.Create(opts.PNGPath)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := plot.Render(file, r, samples, plot.Options{Width: width, Height: height}); err != nil {
		return err
	}

	a.Logger.Info().
		Str("channel", opts.Channel).
		Int("regions", len(r.Regions)).
		Str("png", opts.PNGPath).
		Msg("rendered plot")

	return file.Close()
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	return nil
}
