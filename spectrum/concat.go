package spectrum

// Concat joins two channel spectra into one. Both grids must be strictly
// increasing. Samples of b at or below a's last wavelength are dropped, so
// the blue channel keeps the overlap region and the output grid stays
// strictly increasing.
func Concat(a, b *Spectrum) (*Spectrum, error) {
	if err := a.checkIncreasing(); err != nil {
		return nil, err
	}
	if err := b.checkIncreasing(); err != nil {
		return nil, err
	}

	cut := a.Wavelength[a.Len()-1]

	start := 0
	for start < b.Len() && b.Wavelength[start] <= cut {
		start++
	}

	out := &Spectrum{
		Wavelength: make([]float64, 0, a.Len()+b.Len()-start),
		Flux:       make([]float64, 0, a.Len()+b.Len()-start),
	}

	out.Wavelength = append(append(out.Wavelength, a.Wavelength...), b.Wavelength[start:]...)
	out.Flux = append(append(out.Flux, a.Flux...), b.Flux[start:]...)

	return out, nil
}
