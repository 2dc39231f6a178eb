package peaks

// Series is a read-only, index-addressed view of a signal.
//
// Detection and area computation are written against Series so that raw
// sample slices and explicit index/value pairs are handled by the same code.
type Series interface {
	Len() int
	At(i int) float64
}

// Samples adapts a []float64 as [Series].
type Samples []float64

// Len returns the sample count.
func (s Samples) Len() int { return len(s) }

// At returns the sample at index i.
func (s Samples) At(i int) float64 { return s[i] }

// Points adapts a []Point as [Series]. The i-th element supplies the value at
// position i; its Index field is not consulted.
type Points []Point

// Len returns the point count.
func (p Points) Len() int { return len(p) }

// At returns the value of the i-th point.
func (p Points) At(i int) float64 { return p[i].Value }
