// Package plot renders a channel and its detected peaks as a PNG chart.
package plot

import (
	"errors"
	"fmt"
	"io"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/cwbudde/algo-peaks/internal/report"
)

// ErrNoSamples is returned when there is nothing to draw.
var ErrNoSamples = errors.New("plot: channel has fewer than 2 samples")

// Default chart size in pixels.
const (
	DefaultWidth  = 1280
	DefaultHeight = 720
)

// Options controls the rendered image size. Non-positive values select the
// defaults.
type Options struct {
	Width  int
	Height int
}

func (o Options) size() (int, int) {
	w, h := o.Width, o.Height
	if w <= 0 {
		w = DefaultWidth
	}
	if h <= 0 {
		h = DefaultHeight
	}
	return w, h
}

// Render draws samples, the report's threshold and the troughs and peaks of
// its regions to w as PNG.
func Render(w io.Writer, r report.ChannelReport, samples []float64, opts Options) error {
	graph, err := Chart(r, samples, opts)
	if err != nil {
		return err
	}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("plot: render %s: %w", r.Channel, err)
	}

	return nil
}

// Chart builds the chart drawn by Render without rendering it.
func Chart(r report.ChannelReport, samples []float64, opts Options) (*chart.Chart, error) {
	if len(samples) < 2 {
		return nil, ErrNoSamples
	}

	xs := make([]float64, len(samples))
	for i := range xs {
		xs[i] = float64(i)
	}

	last := float64(len(samples) - 1)

	var peakX, peakY, troughX, troughY []float64
	for _, region := range r.Regions {
		peakX = append(peakX, float64(region.Peak.Index))
		peakY = append(peakY, region.Peak.Value)
		troughX = append(troughX, float64(region.LeftTrough.Index), float64(region.RightTrough.Index))
		troughY = append(troughY, region.LeftTrough.Value, region.RightTrough.Value)
	}

	series := []chart.Series{
		chart.ContinuousSeries{
			Name:    report.Heading(r.Channel),
			XValues: xs,
			YValues: samples,
		},
		chart.ContinuousSeries{
			Name:    "Threshold",
			XValues: []float64{0, last},
			YValues: []float64{r.Threshold, r.Threshold},
			Style: chart.Style{
				StrokeDashArray: []float64{5, 5},
			},
		},
	}

	if len(peakX) > 0 {
		series = append(series,
			markers("Peaks", peakX, peakY),
			markers("Troughs", troughX, troughY),
		)
	}

	width, height := opts.size()
	graph := &chart.Chart{
		Width:  width,
		Height: height,
		XAxis: chart.XAxis{
			Name: "Sample",
		},
		YAxis: chart.YAxis{
			Name: "Value",
			ValueFormatter: func(v interface{}) string {
				return chart.FloatValueFormatterWithFormat(v, "%.2f")
			},
		},
		Series: series,
	}

	// go-chart rejects a zero-height value range.
	if lo, hi := valueBounds(samples, r.Threshold); lo == hi {
		graph.YAxis.Range = &chart.ContinuousRange{Min: lo - 1, Max: hi + 1}
	}
	graph.Elements = []chart.Renderable{chart.Legend(graph)}

	return graph, nil
}

func valueBounds(samples []float64, threshold float64) (lo, hi float64) {
	lo, hi = threshold, threshold
	for _, v := range samples {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return lo, hi
}

func markers(name string, xs, ys []float64) chart.ContinuousSeries {
	return chart.ContinuousSeries{
		Name:    name,
		XValues: xs,
		YValues: ys,
		Style: chart.Style{
			StrokeWidth: chart.Disabled,
			DotWidth:    4,
		},
	}
}
