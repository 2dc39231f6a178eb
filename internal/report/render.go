package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"github.com/cwbudde/algo-peaks/dsp/peaks"
)

// DefaultPrecision is the number of decimals used by WriteText when the
// caller passes a negative precision.
const DefaultPrecision = 3

// Heading returns the title printed above a channel's regions, e.g.
// "X-Axis Peaks" or "Magnitude Peaks".
func Heading(channel string) string {
	if channel == "" {
		return "Peaks"
	}
	title := strings.ToUpper(channel[:1]) + channel[1:]
	if len(channel) == 1 {
		return title + "-Axis Peaks"
	}
	return title + " Peaks"
}

// FormatRegion renders r as "{ (lx, ly), (px, py), (rx, ry), area }" with
// values fixed to the given number of decimals.
func FormatRegion(r peaks.Region, precision int) string {
	return fmt.Sprintf("{ %s, %s, %s, %s }",
		formatPoint(r.LeftTrough, precision),
		formatPoint(r.Peak, precision),
		formatPoint(r.RightTrough, precision),
		fixed(r.Area, precision),
	)
}

func formatPoint(p peaks.Point, precision int) string {
	return fmt.Sprintf("(%d, %s)", p.Index, fixed(p.Value, precision))
}

func fixed(v float64, precision int) string {
	return decimal.NewFromFloat(v).StringFixed(int32(precision))
}

// WriteText writes a heading, one line per region and a summary line for
// every report, separated by blank lines.
func WriteText(w io.Writer, reports []ChannelReport, precision int) error {
	if precision < 0 {
		precision = DefaultPrecision
	}

	for i, r := range reports {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintln(w, Heading(r.Channel)); err != nil {
			return err
		}

		for _, region := range r.Regions {
			if _, err := fmt.Fprintln(w, FormatRegion(region, precision)); err != nil {
				return err
			}
		}

		s := r.Summary
		if _, err := fmt.Fprintf(w, "threshold %s, %d peaks, mean area %s (sd %s), median peak %s, mean width %s\n",
			fixed(r.Threshold, precision),
			s.Count,
			fixed(s.MeanArea, precision),
			fixed(s.StdDevArea, precision),
			fixed(s.MedianPeak, precision),
			fixed(s.MeanWidth, 1),
		); err != nil {
			return err
		}
	}

	return nil
}

// WriteJSON writes reports as an indented JSON array.
func WriteJSON(w io.Writer, reports []ChannelReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(reports); err != nil {
		return fmt.Errorf("report: encode json: %w", err)
	}

	return nil
}
