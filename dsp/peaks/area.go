package peaks

// TrapezoidArea returns the area under the piecewise-linear curve through
// s between indices left and right (inclusive) using the trapezoidal rule
// with unit sample spacing.
//
// The area is signed: samples below zero contribute negatively. Returns 0
// when left >= right or either bound lies outside the series.
func TrapezoidArea(s Series, left, right int) float64 {
	if left >= right || left < 0 || right >= s.Len() {
		return 0
	}

	var area float64

	prev := s.At(left)
	for i := left + 1; i <= right; i++ {
		curr := s.At(i)
		area += 0.5 * (curr + prev)
		prev = curr
	}

	return area
}
