package lineid

import (
	"fmt"
	"io"
)

// Reporter renders the ordered diagnostic stream of an identification run as
// human-readable text. The line order and content are part of the package's
// observable contract: candidate matches in discovery order, per-line
// redshifts in aggregation order, one rejection line per failed predicate,
// then the final summary with values at 4 decimal places.
type Reporter struct {
	w io.Writer
}

// NewReporter creates a reporter writing to w.
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Matches renders the candidate match section. Observed features are referred
// to by their 1-based positions in the caller's observed list.
func (r *Reporter) Matches(cands []Candidate, offset float64) {
	fmt.Fprintf(r.w, "candidate matches (tolerance %.2f%%):\n", offset*100)
	for _, m := range cands {
		fmt.Fprintf(r.w, "  obs %d/%d ratio %.4f ~ %s/%s ratio %.4f\n",
			m.IndexA, m.IndexB, m.ObservedRatio, m.LabelA, m.LabelB, m.CalibrationRatio)
	}
}

// Redshifts renders one line per identification, in sequence order, with the
// computed redshift.
func (r *Reporter) Redshifts(lines []Identification) {
	fmt.Fprintf(r.w, "redshifts:\n")
	for _, ln := range lines {
		fmt.Fprintf(r.w, "  %s: observed %g rest %g z %.4f\n", ln.Name, ln.Observed, ln.Rest, ln.Z)
	}
}

// Rejections renders one line per failed predicate, in evaluation order.
func (r *Reporter) Rejections(rejs []Rejection, baselineMedian float64, cfg Config) {
	for _, rej := range rejs {
		switch rej.Reason {
		case RejectClip:
			fmt.Fprintf(r.w, "rejected %s z %.4f: outside median %.4f +/- %.4f\n",
				rej.Line.Name, rej.Line.Z, baselineMedian, cfg.Clip)
		case RejectRange:
			fmt.Fprintf(r.w, "rejected %s z %.4f: outside range [%.4f, %.4f]\n",
				rej.Line.Name, rej.Line.Z, cfg.ZMin, cfg.ZMax)
		}
	}
}

// Summary renders the surviving redshifts and the final aggregate statistics.
// A run with no survivors prints a distinct no-estimate line instead of
// undefined numbers.
func (r *Reporter) Summary(res Result) {
	if !res.Summary.Defined() {
		fmt.Fprintf(r.w, "summary: no surviving redshift estimate\n")
		return
	}

	fmt.Fprintf(r.w, "surviving redshifts:\n")
	for _, ln := range res.Survivors {
		fmt.Fprintf(r.w, "  %s %.4f\n", ln.Name, ln.Z)
	}

	fmt.Fprintf(r.w, "summary: n=%d mean=%.4f median=%.4f std=%.4f\n",
		res.Summary.Count, res.Summary.Mean, res.Summary.Median, res.Summary.StdDev)
}
