package peaks

import (
	"errors"
	"fmt"
	"math"

	timestats "github.com/cwbudde/algo-peaks/stats/time"
)

// ErrInvalidInput is returned when a threshold cannot be derived from the
// given samples or parameters.
var ErrInvalidInput = errors.New("peaks: invalid input")

// Threshold resolves the level a signal is compared against during detection.
type Threshold interface {
	Level(samples []float64) (float64, error)
}

// Fixed is a caller-supplied threshold used verbatim.
type Fixed float64

// Level returns the fixed value regardless of samples.
func (f Fixed) Level([]float64) (float64, error) {
	return float64(f), nil
}

// StdDev derives the threshold from the signal itself as
// mean + Sigmas * population standard deviation.
type StdDev struct {
	Sigmas float64
}

// Level computes the statistical threshold of samples. At least two samples
// are required.
func (s StdDev) Level(samples []float64) (float64, error) {
	if len(samples) < 2 {
		return 0, fmt.Errorf("%w: standard deviation needs at least 2 samples, got %d", ErrInvalidInput, len(samples))
	}

	if math.IsNaN(s.Sigmas) || math.IsInf(s.Sigmas, 0) {
		return 0, fmt.Errorf("%w: sigmas must be finite, got %v", ErrInvalidInput, s.Sigmas)
	}

	mean, stddev := timestats.MeanStdDev(samples)

	level := mean + s.Sigmas*stddev
	if math.IsNaN(level) || math.IsInf(level, 0) {
		return 0, fmt.Errorf("%w: threshold overflows for %d samples (mean %v, stddev %v)", ErrInvalidInput, len(samples), mean, stddev)
	}

	return level, nil
}

// DetectWith resolves the threshold of samples with t and runs [Detect].
// The resolved level is returned alongside the regions.
func DetectWith(samples []float64, t Threshold) ([]Region, float64, error) {
	level, err := t.Level(samples)
	if err != nil {
		return nil, 0, err
	}

	return Detect(samples, level), level, nil
}

// DetectOverStdDev returns the peaks of samples that rise above
// mean + sigmas * standard deviation.
func DetectOverStdDev(samples []float64, sigmas float64) ([]Region, error) {
	regions, _, err := DetectWith(samples, StdDev{Sigmas: sigmas})
	return regions, err
}
