package peaks

// phase tracks which parts of the in-progress region have been pinned.
type phase uint8

const (
	seeking                 phase = iota // nothing pinned
	hasLeftTrough                        // left trough pinned, no peak yet
	hasPeak                              // left trough and peak pinned
	hasTentativeRightTrough              // right trough candidate still descending
)

func (p phase) String() string {
	switch p {
	case seeking:
		return "seeking"
	case hasLeftTrough:
		return "left-trough"
	case hasPeak:
		return "peak"
	case hasTentativeRightTrough:
		return "tentative-right-trough"
	default:
		return "unknown"
	}
}

// detector is the scanner state between two samples. It is a plain value:
// step returns the successor state and never mutates its receiver.
type detector struct {
	phase phase
	left  Point
	peak  Point
	right Point
}

// step advances the state by one sample. When the sample confirms a right
// trough, closed is true and region holds the bounds of the finished peak
// (without area).
func (d detector) step(x int, y, threshold float64) (next detector, region Region, closed bool) {
	p := Point{Index: x, Value: y}

	if y < threshold {
		switch d.phase {
		case hasTentativeRightTrough:
			if y <= d.right.Value {
				d.right = p
				return d, Region{}, false
			}

			region = Region{LeftTrough: d.left, Peak: d.peak, RightTrough: d.right}
			return detector{}, region, true
		case seeking:
			return detector{phase: hasLeftTrough, left: p}, Region{}, false
		case hasPeak:
			d.right = p
			d.phase = hasTentativeRightTrough
			return d, Region{}, false
		default:
			// Still looking for a peak: let the left trough slide down.
			d.left = p
			return d, Region{}, false
		}
	}

	if d.phase == seeking {
		return detector{phase: hasLeftTrough, left: p}, Region{}, false
	}

	if d.phase == hasLeftTrough || y >= d.peak.Value {
		d.peak = p
		d.right = Point{}
		d.phase = hasPeak
	}

	return d, Region{}, false
}

// DetectSeries scans s once and returns the peak regions found relative to
// threshold, ordered left to right.
//
// A sample below the threshold can become a trough; a sample at or above it
// can become a peak. A region is reported only once its right trough is
// confirmed by a rising sample that is still below the threshold, so a peak
// that has not closed by the end of s is dropped. Ties move the peak and the
// right trough to the later sample.
func DetectSeries(s Series, threshold float64) []Region {
	var (
		regions []Region
		d       detector
	)

	for x := range s.Len() {
		var (
			region Region
			closed bool
		)

		d, region, closed = d.step(x, s.At(x), threshold)
		if closed {
			region.Area = TrapezoidArea(s, region.LeftTrough.Index, region.RightTrough.Index)
			regions = append(regions, region)
		}
	}

	return regions
}

// Detect returns the peak regions of samples relative to threshold.
// See [DetectSeries] for the detection rules.
func Detect(samples []float64, threshold float64) []Region {
	return DetectSeries(Samples(samples), threshold)
}
