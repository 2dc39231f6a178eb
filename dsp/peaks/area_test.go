package peaks

import (
	"testing"

	"github.com/cwbudde/algo-peaks/internal/testutil"
)

func TestTrapezoidArea(t *testing.T) {
	tests := []struct {
		name        string
		samples     []float64
		left, right int
		want        float64
	}{
		{"single peak", []float64{0, 0, 5, 0, 0}, 1, 3, 5},
		{"one interval", []float64{1, 3}, 0, 1, 2},
		{"constant", []float64{2, 2, 2, 2}, 0, 3, 6},
		{"ramp", []float64{0, 1, 2, 3, 4}, 0, 4, 8},
		{"signed", []float64{-1, -3, -1}, 0, 2, -4},
		{"sub range", []float64{9, 1, 2, 1, 9}, 1, 3, 3},
		{"equal bounds", []float64{1, 2, 3}, 1, 1, 0},
		{"reversed bounds", []float64{1, 2, 3}, 2, 0, 0},
		{"negative left", []float64{1, 2, 3}, -1, 2, 0},
		{"right past end", []float64{1, 2, 3}, 0, 3, 0},
		{"empty", nil, 0, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TrapezoidArea(Samples(tt.samples), tt.left, tt.right)
			testutil.RequireNearlyEqual(t, "area", got, tt.want, 1e-12)
		})
	}
}

func TestTrapezoidAreaPointsMatchSamples(t *testing.T) {
	samples := testutil.DeterministicNoise(7, 3, 257)
	points := make(Points, len(samples))
	for i, v := range samples {
		points[i] = Point{Index: i, Value: v}
	}

	for _, bounds := range [][2]int{{0, 256}, {3, 17}, {100, 101}, {50, 50}} {
		want := TrapezoidArea(Samples(samples), bounds[0], bounds[1])
		got := TrapezoidArea(points, bounds[0], bounds[1])
		if got != want {
			t.Fatalf("bounds %v: Points area %v, Samples area %v", bounds, got, want)
		}
	}
}

func TestTrapezoidAreaAdditive(t *testing.T) {
	s := Samples(testutil.DeterministicNoise(11, 1, 64))
	whole := TrapezoidArea(s, 4, 60)
	split := TrapezoidArea(s, 4, 30) + TrapezoidArea(s, 30, 60)
	testutil.RequireNearlyEqual(t, "area", split, whole, 1e-12)
}
