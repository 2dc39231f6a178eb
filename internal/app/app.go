// Package app wires recordings, threshold strategies, detection and output.
package app

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/rs/zerolog"

	"github.com/cwbudde/algo-peaks/dsp/peaks"
	"github.com/cwbudde/algo-peaks/internal/config"
	"github.com/cwbudde/algo-peaks/internal/recording"
)

// ErrConflictingThreshold is returned when both a fixed threshold and a sigma
// multiplier are requested.
var ErrConflictingThreshold = errors.New("threshold and sigmas are mutually exclusive")

// ErrNonFinite is returned when a threshold or sigma multiplier is NaN or
// infinite.
var ErrNonFinite = errors.New("threshold and sigmas must be finite")

// App bundles configuration, logger and output stream.
type App struct {
	Config *config.Config
	Logger zerolog.Logger
	Out    io.Writer
}

// NewApp creates an App writing results to out.
func NewApp(cfg *config.Config, logger zerolog.Logger, out io.Writer) *App {
	return &App{
		Config: cfg,
		Logger: logger,
		Out:    out,
	}
}

// ThresholdOptions selects a threshold strategy. Nil fields fall back to the
// configured detect.mode.
type ThresholdOptions struct {
	Threshold *float64
	Sigmas    *float64
}

// Strategy resolves the threshold strategy from explicit options and config.
func (a *App) Strategy(opts ThresholdOptions) (peaks.Threshold, error) {
	switch {
	case opts.Threshold != nil && opts.Sigmas != nil:
		return nil, ErrConflictingThreshold
	case opts.Threshold != nil:
		if !isFinite(*opts.Threshold) {
			return nil, fmt.Errorf("%w: threshold %v", ErrNonFinite, *opts.Threshold)
		}
		return peaks.Fixed(*opts.Threshold), nil
	case opts.Sigmas != nil:
		if !isFinite(*opts.Sigmas) {
			return nil, fmt.Errorf("%w: sigmas %v", ErrNonFinite, *opts.Sigmas)
		}
		return peaks.StdDev{Sigmas: *opts.Sigmas}, nil
	}

	if a.Config.Detect.Mode == config.ModeStdDev {
		return peaks.StdDev{Sigmas: a.Config.Detect.Sigmas}, nil
	}
	return peaks.Fixed(a.Config.Detect.Threshold), nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func (a *App) load(path string) (*recording.Recording, error) {
	if path == "" {
		path = a.Config.Input.Path
	}
	if path == "" {
		return nil, errors.New("no input file: pass --csv or set input.path")
	}

	opts := []recording.Option{recording.WithComma(a.Config.Comma())}
	if a.Config.Input.Header {
		opts = append(opts, recording.WithHeader())
	}

	rec, err := recording.Load(path, opts...)
	if err != nil {
		return nil, err
	}

	a.Logger.Info().Str("path", path).Int("rows", rec.Len()).Msg("loaded recording")

	return rec, nil
}

func logStrategy(logger zerolog.Logger, t peaks.Threshold) {
	switch s := t.(type) {
	case peaks.Fixed:
		logger.Debug().Float64("threshold", float64(s)).Msg("using fixed threshold")
	case peaks.StdDev:
		logger.Debug().Float64("sigmas", s.Sigmas).Msg("using standard deviation threshold")
	default:
		logger.Debug().Str("strategy", fmt.Sprintf("%T", t)).Msg("using custom threshold")
	}
}
