// Package spectrum provides the plain numeric spectrum operations surrounding
// line identification: resampling onto a caller-defined wavelength grid,
// combining repeated exposures with optional sigma clipping, joining channel
// spectra, and per-pixel flux corrections.
//
// A [Spectrum] is a pair of positionally matched wavelength and flux slices.
// Grid operations require strictly increasing wavelengths; combination
// operations require identical grids across all inputs.
package spectrum
