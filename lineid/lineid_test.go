package lineid

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/cwbudde/algo-astro/internal/testutil"
)

var obsBasic = []float64{5419.57, 7067.71, 7209.96, 7279.55, 9538.86}

func TestIdentify_BasicScenario(t *testing.T) {
	out, err := Identify(VacuumBasic(), obsBasic, 0.003, WithRedshift(true))
	if err != nil {
		t.Fatalf("Identify: %v", err)
	}

	if len(out.Candidates) != 10 {
		t.Errorf("candidates = %d, want 10", len(out.Candidates))
	}
	if len(out.Identifications) != 5 {
		t.Fatalf("identifications = %d, want 5", len(out.Identifications))
	}

	wantZ := []float64{0.4545, 0.4539, 0.4539, 0.4539, 0.4534}
	for i, id := range out.Identifications {
		if math.Abs(id.Z-wantZ[i]) > 5e-5 {
			t.Errorf("id %d (%s) z = %v, want %v at 4 decimals", i, id.Name, id.Z, wantZ[i])
		}
	}

	s := out.Summary
	if s.Count != 5 {
		t.Errorf("summary count = %d, want 5", s.Count)
	}
	if math.Abs(s.Mean-0.4539) > 5e-5 {
		t.Errorf("mean = %v, want 0.4539", s.Mean)
	}
	if math.Abs(s.Median-0.4539) > 5e-5 {
		t.Errorf("median = %v, want 0.4539", s.Median)
	}
	if math.Abs(s.StdDev-0.0003) > 5e-5 {
		t.Errorf("std = %v, want 0.0003", s.StdDev)
	}
}

func TestIdentify_ComprehensiveCatalogRejections(t *testing.T) {
	// The comprehensive catalog adds chance ratio coincidences (Ca K/Ca H
	// near z=0.83, S II pairs near z=0.08) that the clip pass must remove
	// from the summary while keeping them visible as rejections.
	var buf strings.Builder

	out, err := Identify(Vacuum(), obsBasic, 0.003,
		WithRedshift(true),
		WithDiagnostics(&buf),
	)
	if err != nil {
		t.Fatalf("Identify: %v", err)
	}

	if len(out.Candidates) != 15 {
		t.Errorf("candidates = %d, want 15", len(out.Candidates))
	}
	if len(out.Rejections) != 7 {
		t.Fatalf("rejections = %d, want 7", len(out.Rejections))
	}

	foundCaK := false
	for _, rej := range out.Rejections {
		if rej.Reason != RejectClip {
			t.Errorf("rejection %s reason = %v, want median clip", rej.Line.Name, rej.Reason)
		}
		if rej.Line.Name == "Ca K" && math.Abs(rej.Line.Z-0.8329) < 5e-5 {
			foundCaK = true
		}
	}
	if !foundCaK {
		t.Error("Ca K z=0.8329 missing from rejections")
	}

	if len(out.Identifications) != 7 {
		t.Fatalf("survivors = %d, want 7", len(out.Identifications))
	}

	s := out.Summary
	if s.Count != 7 {
		t.Errorf("summary count = %d, want 7", s.Count)
	}
	if math.Abs(s.Mean-0.4287) > 5e-5 {
		t.Errorf("mean = %v, want 0.4287", s.Mean)
	}
	if math.Abs(s.Median-0.4539) > 5e-5 {
		t.Errorf("median = %v, want 0.4539", s.Median)
	}
	if math.Abs(s.StdDev-0.0399) > 5e-5 {
		t.Errorf("std = %v, want 0.0399", s.StdDev)
	}

	// Rejected lines stay visible in the diagnostic stream.
	if !strings.Contains(buf.String(), "rejected Ca K z 0.8329") {
		t.Errorf("diagnostics missing Ca K rejection:\n%s", buf.String())
	}
}

func TestIdentify_RedshiftDisabled(t *testing.T) {
	out, err := Identify(VacuumBasic(), obsBasic, 0.003)
	if err != nil {
		t.Fatalf("Identify: %v", err)
	}

	if len(out.Identifications) != 5 {
		t.Fatalf("identifications = %d, want 5", len(out.Identifications))
	}
	for i, id := range out.Identifications {
		if id.Z != 0 {
			t.Errorf("id %d carries z = %v with estimation disabled", i, id.Z)
		}
	}
	if out.Summary.Defined() {
		t.Error("summary defined with estimation disabled")
	}
	if len(out.Rejections) != 0 {
		t.Errorf("rejections = %+v, want none", out.Rejections)
	}
}

func TestIdentify_CustomRangeAndClip(t *testing.T) {
	// A clip radius wide enough to keep everything, and a range that
	// excludes the whole z~0.45 system.
	out, err := Identify(VacuumBasic(), obsBasic, 0.003,
		WithRedshift(true),
		WithClip(100),
		WithZRange(1, 10),
	)
	if err != nil {
		t.Fatalf("Identify: %v", err)
	}

	if len(out.Identifications) != 0 {
		t.Errorf("survivors = %d, want 0", len(out.Identifications))
	}
	if out.Summary.Defined() {
		t.Error("summary defined with zero survivors")
	}
	if len(out.Rejections) != 5 {
		t.Fatalf("rejections = %d, want 5", len(out.Rejections))
	}
	for _, rej := range out.Rejections {
		if rej.Reason != RejectRange {
			t.Errorf("rejection %s reason = %v, want range", rej.Line.Name, rej.Reason)
		}
	}
}

func TestIdentify_EmptyInputs(t *testing.T) {
	out, err := Identify(VacuumBasic(), nil, 0.003, WithRedshift(true))
	if err != nil {
		t.Fatalf("Identify with no observed lines: %v", err)
	}
	if len(out.Candidates) != 0 || len(out.Identifications) != 0 {
		t.Errorf("non-empty outcome for empty observed list: %+v", out)
	}
	if out.Summary.Defined() {
		t.Error("summary defined for empty observed list")
	}

	empty, err := NewCatalog(nil)
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	out, err = Identify(empty, obsBasic, 0.003, WithRedshift(true))
	if err != nil {
		t.Fatalf("Identify with empty catalog: %v", err)
	}
	if len(out.Candidates) != 0 {
		t.Errorf("candidates = %d for empty catalog, want 0", len(out.Candidates))
	}
}

func TestIdentify_ZeroOffset(t *testing.T) {
	// Bit-exact ratio equality only; empty for real measurements.
	out, err := Identify(VacuumBasic(), obsBasic, 0, WithRedshift(true))
	if err != nil {
		t.Fatalf("Identify: %v", err)
	}
	if len(out.Candidates) != 0 {
		t.Errorf("candidates = %d at zero offset, want 0", len(out.Candidates))
	}
}

func TestIdentify_RecoversInjectedRedshift(t *testing.T) {
	// Shifting every catalog line by the same (1+z) preserves all pair
	// ratios, so identification must recover every line with the injected
	// redshift.
	cat := VacuumBasic()

	rest := make([]float64, cat.Len())
	for i := range rest {
		rest[i] = cat.Line(i).Rest
	}

	for _, z := range []float64{0, 0.1234, 1.5, 4.2} {
		observed := testutil.RedshiftedWavelengths(rest, z)

		out, err := Identify(cat, observed, 1e-9, WithRedshift(true))
		if err != nil {
			t.Fatalf("z=%g: Identify: %v", z, err)
		}

		if len(out.Identifications) != cat.Len() {
			t.Fatalf("z=%g: survivors = %d, want %d", z, len(out.Identifications), cat.Len())
		}
		for _, id := range out.Identifications {
			if math.Abs(id.Z-z) > 1e-9 {
				t.Errorf("z=%g: %s recovered z = %v", z, id.Name, id.Z)
			}
		}
		if math.Abs(out.Summary.Median-z) > 1e-9 {
			t.Errorf("z=%g: summary median = %v", z, out.Summary.Median)
		}
	}
}

func TestIdentify_InputValidation(t *testing.T) {
	if _, err := Identify(nil, obsBasic, 0.003); !errors.Is(err, ErrNilCatalog) {
		t.Errorf("nil catalog err = %v, want ErrNilCatalog", err)
	}

	_, err := Identify(VacuumBasic(), []float64{5419.57, -1}, 0.003)
	if !errors.Is(err, ErrNonPositiveWavelength) {
		t.Errorf("negative observed err = %v, want ErrNonPositiveWavelength", err)
	}
}
