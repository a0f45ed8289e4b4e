package lineid

import (
	"fmt"

	"github.com/cwbudde/algo-astro/stats/robust"
)

// Outcome is the result of a full identification run.
type Outcome struct {
	// Candidates lists all ratio matches in discovery order.
	Candidates []Candidate
	// Identifications is the deduplicated line list. With redshift
	// estimation enabled it contains only the survivors of the rejection
	// pass, with Z populated.
	Identifications []Identification
	// Rejections lists every failed rejection predicate. Empty when
	// redshift estimation is disabled.
	Rejections []Rejection
	// Summary holds the aggregate redshift statistics over the survivors.
	// Undefined (Count 0) when redshift estimation is disabled or when all
	// identifications were rejected.
	Summary robust.Summary
}

// Identify runs the full ratio-matching pipeline: pair enumeration on both
// sides, tolerance cross-matching, aggregation, and (when enabled via
// [WithRedshift]) redshift estimation with outlier rejection.
//
// offset is the fractional ratio tolerance, e.g. 0.003 for 0.3%. Zero
// candidate matches is not an error; the outcome simply carries empty
// sequences and an undefined summary. With [WithDiagnostics] set, the ordered
// diagnostic text is rendered to the sink as the stages complete.
func Identify(cat *Catalog, observed []float64, offset float64, opts ...Option) (*Outcome, error) {
	if cat == nil {
		return nil, ErrNilCatalog
	}

	for i, w := range observed {
		if w <= 0 {
			return nil, fmt.Errorf("%w: %g (observed index %d)", ErrNonPositiveWavelength, w, i)
		}
	}

	cfg := applyOptions(opts)

	cands := MatchRatios(cat.RatioPairs(), ObservedPairs(observed), offset)
	ids := Aggregate(cands, cat)

	var rep *Reporter
	if cfg.diagnostics != nil {
		rep = NewReporter(cfg.diagnostics)
		rep.Matches(cands, offset)
	}

	out := &Outcome{
		Candidates:      cands,
		Identifications: ids,
	}

	if !cfg.redshift {
		return out, nil
	}

	res := Estimate(ids, cfg.estimator)
	out.Identifications = res.Survivors
	out.Rejections = res.Rejections
	out.Summary = res.Summary

	if rep != nil {
		rep.Redshifts(res.Lines)
		rep.Rejections(res.Rejections, res.Baseline.Median, cfg.estimator)
		rep.Summary(res)
	}

	return out, nil
}
