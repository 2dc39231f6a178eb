// Package time computes time-domain statistics of sampled signals.
package time

import "math"

// Stats holds time-domain signal statistics.
type Stats struct {
	Length        int     `json:"length"`
	Mean          float64 `json:"mean"`
	Variance      float64 `json:"variance"` // population variance
	StdDev        float64 `json:"stddev"`   // population standard deviation
	RMS           float64 `json:"rms"`
	Max           float64 `json:"max"`
	MaxPos        int     `json:"max_pos"`
	Min           float64 `json:"min"`
	MinPos        int     `json:"min_pos"`
	Range         float64 `json:"range"` // max - min
	ZeroCrossings int     `json:"zero_crossings"`
}

// Calculate computes all statistics in a single pass, using Welford's online
// algorithm for the mean and variance.
func Calculate(signal []float64) Stats {
	n := len(signal)
	if n == 0 {
		return Stats{}
	}

	var (
		mean          float64
		m2            float64
		sumSq         float64
		maxVal        = signal[0]
		maxPos        int
		minVal        = signal[0]
		minPos        int
		zeroCrossings int
	)

	for i, x := range signal {
		delta := x - mean
		mean += delta / float64(i+1)
		m2 += delta * (x - mean)

		sumSq += x * x

		if x > maxVal {
			maxVal = x
			maxPos = i
		}

		if x < minVal {
			minVal = x
			minPos = i
		}

		if i > 0 && signal[i-1]*x < 0 {
			zeroCrossings++
		}
	}

	nf := float64(n)
	variance := m2 / nf

	return Stats{
		Length:        n,
		Mean:          mean,
		Variance:      variance,
		StdDev:        math.Sqrt(variance),
		RMS:           math.Sqrt(sumSq / nf),
		Max:           maxVal,
		MaxPos:        maxPos,
		Min:           minVal,
		MinPos:        minPos,
		Range:         maxVal - minVal,
		ZeroCrossings: zeroCrossings,
	}
}

// MeanStdDev returns the mean and population standard deviation of the
// signal. Both are 0 for an empty signal.
func MeanStdDev(signal []float64) (mean, stddev float64) {
	if len(signal) == 0 {
		return 0, 0
	}

	var m2 float64

	for i, x := range signal {
		delta := x - mean
		mean += delta / float64(i+1)
		m2 += delta * (x - mean)
	}

	return mean, math.Sqrt(m2 / float64(len(signal)))
}
