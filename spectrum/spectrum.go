package spectrum

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

var (
	// ErrLengthMismatch indicates wavelength and flux slices of different lengths.
	ErrLengthMismatch = errors.New("spectrum: mismatched wavelength/flux lengths")
	// ErrNotIncreasing indicates a wavelength grid that is not strictly increasing.
	ErrNotIncreasing = errors.New("spectrum: wavelengths not strictly increasing")
	// ErrEmpty indicates an operation on a spectrum with no samples.
	ErrEmpty = errors.New("spectrum: empty spectrum")
	// ErrGridMismatch indicates spectra sampled on different wavelength grids.
	ErrGridMismatch = errors.New("spectrum: wavelength grids differ")
)

// Spectrum is a sampled spectrum: positionally paired wavelength and flux
// values. Wavelengths are in the caller's unit (Angstroms throughout this
// repository's own tooling).
type Spectrum struct {
	Wavelength []float64
	Flux       []float64
}

// New builds a spectrum from equal-length wavelength and flux slices.
// The slices are not copied.
func New(wavelength, flux []float64) (*Spectrum, error) {
	if len(wavelength) != len(flux) {
		return nil, fmt.Errorf("%w: %d wavelengths, %d fluxes", ErrLengthMismatch, len(wavelength), len(flux))
	}

	return &Spectrum{Wavelength: wavelength, Flux: flux}, nil
}

// Len returns the number of samples.
func (s *Spectrum) Len() int {
	return len(s.Wavelength)
}

// Clone returns a deep copy of the spectrum.
func (s *Spectrum) Clone() *Spectrum {
	return &Spectrum{
		Wavelength: append([]float64(nil), s.Wavelength...),
		Flux:       append([]float64(nil), s.Flux...),
	}
}

// checkIncreasing verifies the grid is non-empty and strictly increasing.
func (s *Spectrum) checkIncreasing() error {
	if s.Len() == 0 {
		return ErrEmpty
	}

	for i := 1; i < len(s.Wavelength); i++ {
		if s.Wavelength[i] <= s.Wavelength[i-1] {
			return fmt.Errorf("%w: index %d", ErrNotIncreasing, i)
		}
	}

	return nil
}

// sameGrid reports whether two spectra share a bit-identical wavelength grid.
func sameGrid(a, b *Spectrum) bool {
	if a.Len() != b.Len() {
		return false
	}

	for i := range a.Wavelength {
		if a.Wavelength[i] != b.Wavelength[i] {
			return false
		}
	}

	return true
}

// Scale multiplies every flux sample by factor, in place.
func (s *Spectrum) Scale(factor float64) {
	vecmath.ScaleBlockInPlace(s.Flux, factor)
}

// ApplyResponse multiplies the flux by a per-pixel response curve in place,
// e.g. a flat-field or instrument throughput correction. The response must
// have one sample per spectrum sample.
func (s *Spectrum) ApplyResponse(response []float64) error {
	if len(response) != s.Len() {
		return fmt.Errorf("%w: %d response samples for %d pixels", ErrLengthMismatch, len(response), s.Len())
	}

	vecmath.MulBlockInPlace(s.Flux, response)

	return nil
}
