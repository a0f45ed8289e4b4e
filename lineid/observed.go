package lineid

// ObservedPair is the wavelength ratio between two observed features.
// IndexA and IndexB are the 1-based positions of the features in the caller's
// observed list, kept stable for diagnostics.
type ObservedPair struct {
	IndexA      int
	IndexB      int
	WavelengthA float64
	WavelengthB float64
	Ratio       float64
}

// ObservedPairs enumerates all C(m,2) observed pair ratios in lexicographic
// (i, j) index order with i < j. Ratio is wavelengths[j]/wavelengths[i],
// following the same positional convention as [Catalog.RatioPairs].
func ObservedPairs(wavelengths []float64) []ObservedPair {
	m := len(wavelengths)
	if m < 2 {
		return nil
	}

	pairs := make([]ObservedPair, 0, m*(m-1)/2)
	for i := 0; i < m-1; i++ {
		for j := i + 1; j < m; j++ {
			pairs = append(pairs, ObservedPair{
				IndexA:      i + 1,
				IndexB:      j + 1,
				WavelengthA: wavelengths[i],
				WavelengthB: wavelengths[j],
				Ratio:       wavelengths[j] / wavelengths[i],
			})
		}
	}

	return pairs
}
