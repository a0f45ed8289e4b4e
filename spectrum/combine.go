package spectrum

import (
	"errors"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-astro/stats/robust"
)

// ErrNoSpectra indicates a combination call with no input spectra.
var ErrNoSpectra = errors.New("spectrum: no spectra to combine")

// CombineOptions controls exposure combination.
type CombineOptions struct {
	// SigmaClip rejects per-pixel samples deviating from the column median
	// by more than SigmaClip times the column standard deviation before the
	// final estimate. Zero disables clipping.
	SigmaClip float64
	// MaxIter bounds the number of clipping iterations. Values below 1 are
	// treated as 1.
	MaxIter int
}

// CombineMean averages repeated exposures pixel by pixel. All spectra must
// share a bit-identical wavelength grid. Without sigma clipping the mean is
// computed with vectorized block accumulation.
func CombineMean(specs []*Spectrum, opts CombineOptions) (*Spectrum, error) {
	if err := checkCombinable(specs); err != nil {
		return nil, err
	}

	out := &Spectrum{
		Wavelength: append([]float64(nil), specs[0].Wavelength...),
		Flux:       make([]float64, specs[0].Len()),
	}

	if opts.SigmaClip <= 0 {
		for _, s := range specs {
			vecmath.AddBlockInPlace(out.Flux, s.Flux)
		}
		vecmath.ScaleBlockInPlace(out.Flux, 1/float64(len(specs)))

		return out, nil
	}

	combineColumns(out.Flux, specs, opts, robust.Mean)

	return out, nil
}

// CombineMedian median-combines repeated exposures pixel by pixel, with the
// same grid requirement and optional sigma clipping as [CombineMean].
func CombineMedian(specs []*Spectrum, opts CombineOptions) (*Spectrum, error) {
	if err := checkCombinable(specs); err != nil {
		return nil, err
	}

	out := &Spectrum{
		Wavelength: append([]float64(nil), specs[0].Wavelength...),
		Flux:       make([]float64, specs[0].Len()),
	}

	combineColumns(out.Flux, specs, opts, robust.Median)

	return out, nil
}

func checkCombinable(specs []*Spectrum) error {
	if len(specs) == 0 {
		return ErrNoSpectra
	}

	if specs[0].Len() == 0 {
		return ErrEmpty
	}

	for _, s := range specs[1:] {
		if !sameGrid(specs[0], s) {
			return ErrGridMismatch
		}
	}

	return nil
}

// combineColumns estimates each output pixel from the column of per-exposure
// samples, optionally sigma-clipping the column first. If clipping would
// reject every sample in a column, the unclipped estimate is used instead.
func combineColumns(dst []float64, specs []*Spectrum, opts CombineOptions, estimate func([]float64) float64) {
	column := make([]float64, len(specs))

	iters := opts.MaxIter
	if iters < 1 {
		iters = 1
	}

	for px := range dst {
		for k, s := range specs {
			column[k] = s.Flux[px]
		}

		values := column
		if opts.SigmaClip > 0 {
			values = clipColumn(column, opts.SigmaClip, iters)
		}

		dst[px] = estimate(values)
	}
}

func clipColumn(column []float64, sigma float64, iters int) []float64 {
	values := column

	for iter := 0; iter < iters; iter++ {
		med := robust.Median(values)
		std := robust.StdDev(values)

		mask := robust.ClipMask(values, med, sigma*std)

		kept := make([]float64, 0, len(values))
		for i, out := range mask {
			if !out {
				kept = append(kept, values[i])
			}
		}

		if len(kept) == 0 {
			return column
		}
		if len(kept) == len(values) {
			return values
		}

		values = kept
	}

	return values
}
