package lineid

import (
	"reflect"
	"testing"
)

func basicCandidates(t *testing.T) ([]Candidate, *Catalog) {
	t.Helper()

	cat := VacuumBasic()
	obs := ObservedPairs([]float64{5419.57, 7067.71, 7209.96, 7279.55, 9538.86})

	return MatchRatios(cat.RatioPairs(), obs, 0.003), cat
}

func TestAggregate_DeduplicatesTriples(t *testing.T) {
	cands, cat := basicCandidates(t)
	if len(cands) != 10 {
		t.Fatalf("candidates = %d, want 10", len(cands))
	}

	ids := Aggregate(cands, cat)
	if len(ids) != 5 {
		t.Fatalf("identifications = %d, want 5", len(ids))
	}

	want := []Identification{
		{Name: "O II", Observed: 5419.57, Rest: 3726.03},
		{Name: "Hbeta", Observed: 7067.71, Rest: 4861.33},
		{Name: "O III-1", Observed: 7209.96, Rest: 4958.92},
		{Name: "O III-2", Observed: 7279.55, Rest: 5006.84},
		{Name: "Halpha", Observed: 9538.86, Rest: 6563.00},
	}

	if !reflect.DeepEqual(ids, want) {
		t.Errorf("ids = %+v\nwant %+v", ids, want)
	}
}

func TestAggregate_Idempotent(t *testing.T) {
	cands, cat := basicCandidates(t)

	once := Aggregate(cands, cat)
	twice := Aggregate(append(append([]Candidate(nil), cands...), cands...), cat)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("aggregation not idempotent:\nonce  %+v\ntwice %+v", once, twice)
	}
}

func TestAggregate_FirstOccurrenceResolution(t *testing.T) {
	// With duplicate catalog names, both halves of a candidate resolve to
	// the first occurrence; the second entry is unreachable by name.
	cat, err := NewCatalog([]Line{
		{Name: "S II", Rest: 6716.47},
		{Name: "S II", Rest: 6730.85},
	})
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}

	cands := []Candidate{{
		IndexA:      1,
		IndexB:      2,
		WavelengthA: 6716.47,
		WavelengthB: 6730.85,
		LabelA:      "S II",
		LabelB:      "S II",
	}}

	ids := Aggregate(cands, cat)
	if len(ids) != 2 {
		t.Fatalf("identifications = %d, want 2", len(ids))
	}
	for i, id := range ids {
		if id.Rest != 6716.47 {
			t.Errorf("id %d rest = %g, want first occurrence 6716.47", i, id.Rest)
		}
	}
}

func TestAggregate_UnknownLabelSkipped(t *testing.T) {
	cat := VacuumBasic()
	cands := []Candidate{{
		WavelengthA: 5000,
		WavelengthB: 6000,
		LabelA:      "nonsense",
		LabelB:      "Hbeta",
	}}

	ids := Aggregate(cands, cat)
	if len(ids) != 1 || ids[0].Name != "Hbeta" {
		t.Errorf("ids = %+v, want single Hbeta record", ids)
	}
}

func TestAggregate_Empty(t *testing.T) {
	if ids := Aggregate(nil, VacuumBasic()); len(ids) != 0 {
		t.Errorf("ids = %+v, want empty", ids)
	}
}
