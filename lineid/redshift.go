package lineid

import "github.com/cwbudde/algo-astro/stats/robust"

// Config holds redshift estimation parameters.
type Config struct {
	// ZMin and ZMax bound the physically acceptable redshift range.
	ZMin float64
	ZMax float64
	// Clip is the maximum acceptable deviation from the baseline median.
	Clip float64
}

// DefaultConfig returns the default estimation parameters: redshifts in
// [0, 10], median-clip radius 0.1.
func DefaultConfig() Config {
	return Config{ZMin: 0, ZMax: 10, Clip: 0.1}
}

// RejectReason identifies which predicate excluded an identification.
type RejectReason int

const (
	// RejectClip marks a redshift outside the baseline-median clip window.
	RejectClip RejectReason = iota
	// RejectRange marks a redshift outside the configured [ZMin, ZMax] range.
	RejectRange
)

// String returns a short reason label.
func (r RejectReason) String() string {
	switch r {
	case RejectClip:
		return "median clip"
	case RejectRange:
		return "range"
	default:
		return "unknown"
	}
}

// Rejection records one failed predicate for one identification. An
// identification failing both predicates produces two rejections.
type Rejection struct {
	Line   Identification
	Reason RejectReason
}

// Result holds the output of a redshift estimation run.
type Result struct {
	// Lines is the complete input sequence with Z populated, before any
	// rejection.
	Lines []Identification
	// Survivors is the subsequence remaining after the rejection pass.
	Survivors []Identification
	// Rejections lists every failed predicate in evaluation order.
	Rejections []Rejection
	// Baseline holds the pre-rejection statistics; its median drives the
	// clip predicate and is frozen before any removal.
	Baseline robust.Summary
	// Summary holds the authoritative post-rejection statistics. A Count of
	// zero is the distinct "no surviving redshift estimate" outcome.
	Summary robust.Summary
}

// Estimate computes per-line redshifts, rejects outliers in a single pass,
// and summarizes the survivors.
//
// For each identification, in sequence order, z = observed/rest - 1. The
// baseline median over the complete redshift set is frozen before rejection
// and is not recomputed afterwards. Each identification is then tested
// against two independent predicates: deviation from the baseline median
// beyond cfg.Clip, and the absolute range [cfg.ZMin, cfg.ZMax]. Every failed
// predicate yields its own Rejection entry. Marked records are removed by
// index, so distinct identifications sharing an identical redshift value can
// never cause the wrong record to be dropped. Final statistics cover only the
// survivors; with zero survivors the summary is undefined rather than NaN.
func Estimate(ids []Identification, cfg Config) Result {
	lines := make([]Identification, len(ids))
	copy(lines, ids)

	zs := make([]float64, len(lines))
	for i := range lines {
		lines[i].Z = lines[i].Observed/lines[i].Rest - 1
		zs[i] = lines[i].Z
	}

	baseline := robust.Summarize(zs)

	clipped := robust.ClipMask(zs, baseline.Median, cfg.Clip)

	var rejections []Rejection

	drop := make([]bool, len(lines))
	for i, ln := range lines {
		if clipped[i] {
			rejections = append(rejections, Rejection{Line: ln, Reason: RejectClip})
			drop[i] = true
		}

		if ln.Z < cfg.ZMin || ln.Z > cfg.ZMax {
			rejections = append(rejections, Rejection{Line: ln, Reason: RejectRange})
			drop[i] = true
		}
	}

	var (
		survivors []Identification
		survZ     []float64
	)

	for i, ln := range lines {
		if drop[i] {
			continue
		}

		survivors = append(survivors, ln)
		survZ = append(survZ, zs[i])
	}

	return Result{
		Lines:      lines,
		Survivors:  survivors,
		Rejections: rejections,
		Baseline:   baseline,
		Summary:    robust.Summarize(survZ),
	}
}
