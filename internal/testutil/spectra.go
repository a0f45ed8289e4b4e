package testutil

import "math/rand"

// RedshiftedWavelengths scales rest-frame wavelengths by (1+z), producing the
// observed positions of the same lines at redshift z.
func RedshiftedWavelengths(rest []float64, z float64) []float64 {
	out := make([]float64, len(rest))
	for i, w := range rest {
		out[i] = w * (1 + z)
	}
	return out
}

// Constant returns a flux slice of length n filled with value.
func Constant(value float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}
	return out
}

// NoisyExposures builds count copies of the base flux with deterministic
// uniform noise of the given amplitude added, for reproducible combination
// tests.
func NoisyExposures(seed int64, base []float64, count int, amplitude float64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))

	out := make([][]float64, count)
	for k := range out {
		flux := make([]float64, len(base))
		for i, v := range base {
			flux[i] = v + (rng.Float64()*2-1)*amplitude
		}
		out[k] = flux
	}

	return out
}
