package lineid

// Identification is a single named line matched to an observed wavelength.
// Z is zero until populated by [Estimate].
type Identification struct {
	Name     string
	Observed float64
	Rest     float64
	Z        float64
}

type identificationKey struct {
	name     string
	observed float64
	rest     float64
}

// Aggregate resolves candidate matches into an ordered, deduplicated list of
// line identifications. Each candidate contributes two records, one per
// calibration label, pairing the label's first-occurrence rest wavelength
// with the corresponding observed wavelength. A record structurally equal to
// an earlier one (same name, observed, and rest wavelength) is skipped, so
// the first occurrence wins and insertion order is preserved. Aggregation is
// idempotent over the candidate list.
func Aggregate(cands []Candidate, cat *Catalog) []Identification {
	var out []Identification

	seen := make(map[identificationKey]struct{}, 2*len(cands))

	insert := func(name string, observed float64) {
		rest, ok := cat.RestByName(name)
		if !ok {
			return
		}

		k := identificationKey{name: name, observed: observed, rest: rest}
		if _, dup := seen[k]; dup {
			return
		}

		seen[k] = struct{}{}
		out = append(out, Identification{Name: name, Observed: observed, Rest: rest})
	}

	for _, m := range cands {
		insert(m.LabelA, m.WavelengthA)
		insert(m.LabelB, m.WavelengthB)
	}

	return out
}
