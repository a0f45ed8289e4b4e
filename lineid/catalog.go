package lineid

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch indicates name and wavelength slices of different lengths.
	ErrLengthMismatch = errors.New("lineid: mismatched name/wavelength lengths")
	// ErrNonPositiveWavelength indicates a zero or negative wavelength.
	ErrNonPositiveWavelength = errors.New("lineid: non-positive wavelength")
	// ErrNilCatalog indicates a missing calibration catalog.
	ErrNilCatalog = errors.New("lineid: nil catalog")
)

// Line is a named rest-frame wavelength.
type Line struct {
	Name string
	Rest float64
}

// Catalog is an ordered, read-only list of calibration lines.
//
// Names may repeat; name-based lookup resolves to the first occurrence in
// list order, so later entries with the same name are reachable only by
// position. The first-occurrence index is built once at construction.
type Catalog struct {
	lines []Line
	first map[string]int
}

// NewCatalog validates the line list and builds a catalog from it.
// Every rest wavelength must be positive.
func NewCatalog(lines []Line) (*Catalog, error) {
	for i, ln := range lines {
		if ln.Rest <= 0 {
			return nil, fmt.Errorf("%w: %g (%q at index %d)", ErrNonPositiveWavelength, ln.Rest, ln.Name, i)
		}
	}

	c := &Catalog{
		lines: append([]Line(nil), lines...),
		first: make(map[string]int, len(lines)),
	}

	for i, ln := range c.lines {
		if _, ok := c.first[ln.Name]; !ok {
			c.first[ln.Name] = i
		}
	}

	return c, nil
}

// NewCatalogFromSlices builds a catalog from positionally paired name and
// wavelength slices of equal length.
func NewCatalogFromSlices(names []string, rests []float64) (*Catalog, error) {
	if len(names) != len(rests) {
		return nil, fmt.Errorf("%w: %d names, %d wavelengths", ErrLengthMismatch, len(names), len(rests))
	}

	lines := make([]Line, len(names))
	for i := range names {
		lines[i] = Line{Name: names[i], Rest: rests[i]}
	}

	return NewCatalog(lines)
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.lines)
}

// Line returns the catalog entry at index i.
func (c *Catalog) Line(i int) Line {
	return c.lines[i]
}

// RestByName returns the rest wavelength of the first catalog entry with the
// given name. The second return value is false when the name is absent.
func (c *Catalog) RestByName(name string) (float64, bool) {
	i, ok := c.first[name]
	if !ok {
		return 0, false
	}

	return c.lines[i].Rest, true
}

// RatioPair is the wavelength ratio between two catalog entries.
type RatioPair struct {
	LabelA string
	LabelB string
	Ratio  float64
}

// RatioPairs enumerates all C(n,2) catalog pair ratios in lexicographic
// (i, j) index order with i < j. Ratio is rest[j]/rest[i], taken positionally:
// a catalog that is not wavelength-sorted legitimately yields ratios below 1.
func (c *Catalog) RatioPairs() []RatioPair {
	n := len(c.lines)
	if n < 2 {
		return nil
	}

	pairs := make([]RatioPair, 0, n*(n-1)/2)
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, RatioPair{
				LabelA: c.lines[i].Name,
				LabelB: c.lines[j].Name,
				Ratio:  c.lines[j].Rest / c.lines[i].Rest,
			})
		}
	}

	return pairs
}
