package peaks

import (
	"fmt"
	"math"
)

// Point is a sample position and its value.
type Point struct {
	Index int     `json:"index"`
	Value float64 `json:"value"`
}

// String renders the point as "(index, value)".
func (p Point) String() string {
	return fmt.Sprintf("(%d, %g)", p.Index, p.Value)
}

// Region is a peak bounded by a left and a right trough.
//
// Regions returned by Detect always satisfy
// LeftTrough.Index < Peak.Index < RightTrough.Index. The peak value is at
// least both trough values unless the left trough was pinned at or above the
// threshold, which happens when a scan starts above it.
type Region struct {
	LeftTrough  Point   `json:"left_trough"`
	Peak        Point   `json:"peak"`
	RightTrough Point   `json:"right_trough"`
	Area        float64 `json:"area"` // trapezoidal area between the troughs
}

// String renders the region as "{ (lx, ly), (px, py), (rx, ry), area }".
func (r Region) String() string {
	return fmt.Sprintf("{ %s, %s, %s, %g }", r.LeftTrough, r.Peak, r.RightTrough, r.Area)
}

// Width returns the distance in samples between the two troughs.
func (r Region) Width() int {
	return r.RightTrough.Index - r.LeftTrough.Index
}

// Prominence returns the height of the peak above the higher trough.
func (r Region) Prominence() float64 {
	return r.Peak.Value - math.Max(r.LeftTrough.Value, r.RightTrough.Value)
}

// Valid reports whether the region's troughs and peak are correctly ordered.
func (r Region) Valid() bool {
	return r.LeftTrough.Index < r.Peak.Index &&
		r.Peak.Index < r.RightTrough.Index &&
		r.Peak.Value >= r.LeftTrough.Value &&
		r.Peak.Value >= r.RightTrough.Value
}
