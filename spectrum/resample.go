package spectrum

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidGrid indicates unusable uniform-grid parameters.
var ErrInvalidGrid = errors.New("spectrum: invalid grid parameters")

// Mode selects the resampling interpolation kernel.
type Mode int

const (
	// ModeLinear uses 2-point linear interpolation.
	ModeLinear Mode = iota
	// ModeHermite uses 4-point cubic Hermite interpolation. Edge intervals
	// fall back to linear where a neighbor sample is missing.
	ModeHermite
)

// UniformGrid returns the wavelengths min, min+step, ... up to and including
// the last value not exceeding max.
func UniformGrid(min, max, step float64) ([]float64, error) {
	if step <= 0 || max < min {
		return nil, fmt.Errorf("%w: min %g max %g step %g", ErrInvalidGrid, min, max, step)
	}

	n := int((max-min)/step) + 1
	grid := make([]float64, n)
	for i := range grid {
		grid[i] = min + float64(i)*step
	}

	return grid, nil
}

// Resample interpolates the spectrum's flux onto the given wavelength grid.
// The source grid must be strictly increasing. Target wavelengths outside the
// source range receive zero flux; the second return value counts them.
func Resample(s *Spectrum, grid []float64, mode Mode) (*Spectrum, int, error) {
	if err := s.checkIncreasing(); err != nil {
		return nil, 0, err
	}

	w := s.Wavelength
	f := s.Flux

	flux := make([]float64, len(grid))
	outside := 0

	for k, x := range grid {
		if x < w[0] || x > w[len(w)-1] {
			outside++
			continue
		}

		if len(w) == 1 {
			flux[k] = f[0]
			continue
		}

		// Interval i with w[i] <= x <= w[i+1].
		i := sort.SearchFloat64s(w, x)
		if w[i] > x || i == len(w)-1 {
			i--
		}

		frac := (x - w[i]) / (w[i+1] - w[i])

		switch mode {
		case ModeHermite:
			if i == 0 || i >= len(w)-2 {
				flux[k] = lerp(f[i], f[i+1], frac)
			} else {
				flux[k] = hermite4(frac, f[i-1], f[i], f[i+1], f[i+2])
			}
		default:
			flux[k] = lerp(f[i], f[i+1], frac)
		}
	}

	out := &Spectrum{
		Wavelength: append([]float64(nil), grid...),
		Flux:       flux,
	}

	return out, outside, nil
}

// ResampleUniform resamples onto the uniform grid [min, max] with the given
// step. See [Resample] for out-of-range handling.
func ResampleUniform(s *Spectrum, min, max, step float64, mode Mode) (*Spectrum, int, error) {
	grid, err := UniformGrid(min, max, step)
	if err != nil {
		return nil, 0, err
	}

	return Resample(s, grid, mode)
}

func lerp(y0, y1, frac float64) float64 {
	return y0 + frac*(y1-y0)
}

// hermite4 interpolates between x0 and x1 at fraction t using the neighbor
// samples xm1 and x2. The kernel assumes locally even sample spacing; on a
// mildly non-uniform wavelength grid it remains a good approximation.
func hermite4(t, xm1, x0, x1, x2 float64) float64 {
	c0 := x0
	c1 := 0.5 * (x1 - xm1)
	c2 := xm1 - 2.5*x0 + 2*x1 - 0.5*x2
	c3 := 0.5*(x2-xm1) + 1.5*(x0-x1)

	return ((c3*t+c2)*t+c1)*t + c0
}
