package testutil

import "testing"

func TestRedshiftedWavelengths(t *testing.T) {
	out := RedshiftedWavelengths([]float64{4000, 5000}, 0.5)

	RequireSliceNearlyEqual(t, out, []float64{6000, 7500}, 1e-9)
}

func TestNoisyExposures_Deterministic(t *testing.T) {
	base := Constant(10, 8)

	a := NoisyExposures(42, base, 3, 0.5)
	b := NoisyExposures(42, base, 3, 0.5)

	if len(a) != 3 || len(b) != 3 {
		t.Fatalf("exposure counts: %d, %d", len(a), len(b))
	}
	for k := range a {
		RequireSliceNearlyEqual(t, a[k], b[k], 0)
		RequireFinite(t, a[k])
	}
}

func TestNoisyExposures_BoundedNoise(t *testing.T) {
	base := Constant(10, 32)

	for _, flux := range NoisyExposures(7, base, 2, 0.5) {
		for i, v := range flux {
			if v < 9.5 || v > 10.5 {
				t.Errorf("sample %d = %v outside noise bounds", i, v)
			}
		}
	}
}
