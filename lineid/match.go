package lineid

import "math"

// Candidate records one observed pair whose wavelength ratio agrees with one
// calibration pair's ratio within the matching tolerance. A single observed
// pair may appear in several candidates (and vice versa); ambiguity is
// surfaced, never resolved here.
type Candidate struct {
	IndexA           int
	IndexB           int
	WavelengthA      float64
	WavelengthB      float64
	LabelA           string
	LabelB           string
	ObservedRatio    float64
	CalibrationRatio float64
	RelativeError    float64
}

// MatchRatios cross-compares every calibration pair ratio against every
// observed pair ratio and returns all combinations whose relative error
// |obs - cal| / cal is at most offset, in discovery order (calibration pairs
// outer, observed pairs inner). The full cross product is evaluated; no
// pruning or magnitude sorting is applied. An offset of zero admits only
// bit-exact ratio equality.
func MatchRatios(cal []RatioPair, obs []ObservedPair, offset float64) []Candidate {
	var out []Candidate

	for _, c := range cal {
		for _, o := range obs {
			relErr := math.Abs(o.Ratio-c.Ratio) / c.Ratio
			if relErr > offset {
				continue
			}

			out = append(out, Candidate{
				IndexA:           o.IndexA,
				IndexB:           o.IndexB,
				WavelengthA:      o.WavelengthA,
				WavelengthB:      o.WavelengthB,
				LabelA:           c.LabelA,
				LabelB:           c.LabelB,
				ObservedRatio:    o.Ratio,
				CalibrationRatio: c.Ratio,
				RelativeError:    relErr,
			})
		}
	}

	return out
}
