package specio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-astro/spectrum"
)

// ReadSpectrum parses a two-column wavelength/flux text stream. Blank lines
// and lines starting with '#' are skipped; each remaining line must begin
// with two numeric fields (extra columns are ignored).
func ReadSpectrum(r io.Reader) (*spectrum.Spectrum, error) {
	var wavelength, flux []float64

	sc := bufio.NewScanner(r)

	lineNo := 0
	for sc.Scan() {
		lineNo++

		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) < 2 {
			return nil, fmt.Errorf("specio: line %d: expected wavelength and flux, got %q", lineNo, text)
		}

		w, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("specio: line %d: bad wavelength %q: %w", lineNo, fields[0], err)
		}

		f, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("specio: line %d: bad flux %q: %w", lineNo, fields[1], err)
		}

		wavelength = append(wavelength, w)
		flux = append(flux, f)
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("specio: %w", err)
	}

	return spectrum.New(wavelength, flux)
}

// ReadSpectrumFile reads a two-column spectrum file from disk.
func ReadSpectrumFile(path string) (*spectrum.Spectrum, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("specio: %w", err)
	}
	defer f.Close()

	return ReadSpectrum(f)
}

// ReadWavelengths reads only the wavelength column of a two-column spectrum
// stream, for feeding observed line positions straight into identification.
func ReadWavelengths(r io.Reader) ([]float64, error) {
	s, err := ReadSpectrum(r)
	if err != nil {
		return nil, err
	}

	return s.Wavelength, nil
}
