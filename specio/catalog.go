package specio

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/cwbudde/algo-astro/lineid"
)

// catalogDoc mirrors the TOML catalog layout:
//
//	[[line]]
//	name = "O II"
//	wavelength = 3726.03
type catalogDoc struct {
	Line []catalogLine `toml:"line"`
}

type catalogLine struct {
	Name       string  `toml:"name"`
	Wavelength float64 `toml:"wavelength"`
}

// ReadCatalog parses a TOML line-catalog document. Entry order in the file
// is the catalog order, which fixes the pair-enumeration and
// first-occurrence lookup semantics downstream.
func ReadCatalog(r io.Reader) (*lineid.Catalog, error) {
	var doc catalogDoc
	if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("specio: %w", err)
	}

	lines := make([]lineid.Line, len(doc.Line))
	for i, ln := range doc.Line {
		lines[i] = lineid.Line{Name: ln.Name, Rest: ln.Wavelength}
	}

	return lineid.NewCatalog(lines)
}

// ReadCatalogFile reads a TOML line-catalog file from disk.
func ReadCatalogFile(path string) (*lineid.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("specio: %w", err)
	}
	defer f.Close()

	return ReadCatalog(f)
}
