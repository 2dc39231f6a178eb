// Package report summarizes and renders the peaks found in recording channels.
package report

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-peaks/dsp/peaks"
	timestats "github.com/cwbudde/algo-peaks/stats/time"
)

// ErrNonFiniteThreshold is returned when a threshold strategy resolves to NaN
// or an infinite level.
var ErrNonFiniteThreshold = errors.New("report: threshold is not finite")

// RegionStats summarizes the regions of one channel.
type RegionStats struct {
	Count      int     `json:"count"`
	MeanArea   float64 `json:"mean_area"`
	StdDevArea float64 `json:"stddev_area"`
	MedianPeak float64 `json:"median_peak"`
	MeanWidth  float64 `json:"mean_width"`
}

// ChannelReport is the analysis of a single channel.
type ChannelReport struct {
	Channel   string          `json:"channel"`
	Threshold float64         `json:"threshold"`
	Signal    timestats.Stats `json:"signal"`
	Regions   []peaks.Region  `json:"regions"`
	Summary   RegionStats     `json:"summary"`
}

// Analyze resolves the threshold of samples, detects its peaks and
// summarizes them.
func Analyze(channel string, samples []float64, threshold peaks.Threshold) (ChannelReport, error) {
	regions, level, err := peaks.DetectWith(samples, threshold)
	if err != nil {
		return ChannelReport{}, fmt.Errorf("channel %s: %w", channel, err)
	}
	if math.IsNaN(level) || math.IsInf(level, 0) {
		return ChannelReport{}, fmt.Errorf("channel %s: %w: %v", channel, ErrNonFiniteThreshold, level)
	}
	if regions == nil {
		regions = []peaks.Region{}
	}

	return ChannelReport{
		Channel:   channel,
		Threshold: level,
		Signal:    timestats.Calculate(samples),
		Regions:   regions,
		Summary:   Summarize(regions),
	}, nil
}

// Summarize computes area, height and width statistics over regions.
// The area standard deviation is the sample (n-1) form and is 0 for fewer
// than two regions. MedianPeak is the empirical (lower) median.
func Summarize(regions []peaks.Region) RegionStats {
	n := len(regions)
	if n == 0 {
		return RegionStats{}
	}

	areas := make([]float64, n)
	heights := make([]float64, n)
	widths := make([]float64, n)
	for i, r := range regions {
		areas[i] = r.Area
		heights[i] = r.Peak.Value
		widths[i] = float64(r.Width())
	}

	s := RegionStats{Count: n}
	if n > 1 {
		s.MeanArea, s.StdDevArea = stat.MeanStdDev(areas, nil)
	} else {
		s.MeanArea = areas[0]
	}

	slices.Sort(heights)
	s.MedianPeak = stat.Quantile(0.5, stat.Empirical, heights, nil)
	s.MeanWidth = stat.Mean(widths, nil)

	return s
}
