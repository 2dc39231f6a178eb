package testutil

import "math/rand"

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// TrianglePulses generates count triangular pulses of the given height on a
// constant base. Pulse k climbs from the base in rise equal steps to its apex
// at index k*(gap+2*rise)+gap+rise and falls back symmetrically, so pulses
// are separated by gap+1 base samples. The result has count*(gap+2*rise)+gap
// samples.
func TrianglePulses(base, height float64, rise, gap, count int) []float64 {
	if rise < 1 {
		rise = 1
	}
	if gap < 0 {
		gap = 0
	}

	period := gap + 2*rise
	out := DC(base, count*period+gap)
	step := height / float64(rise)

	for k := range count {
		apex := k*period + gap + rise
		for j := 1; j <= rise; j++ {
			v := base + float64(j)*step
			out[apex-rise+j] = v
			if j < rise {
				out[apex+rise-j] = v
			}
		}
	}

	return out
}
