// Package lineid identifies spectral emission and absorption features by
// wavelength-ratio matching.
//
// Under redshift every wavelength scales by the same factor (1+z), so the
// ratio of any two rest-frame line wavelengths equals the ratio of the two
// correspondingly shifted observed wavelengths. The package enumerates all
// wavelength-pair ratios of a calibration catalog and of an observed line
// list, cross-matches them within a relative tolerance, deduplicates the
// resulting line identifications, and optionally computes per-line redshifts
// with a median-clip plus absolute-range rejection pass and a final robust
// summary.
//
// Pipeline stages, each independently callable:
//   - [Catalog.RatioPairs] / [ObservedPairs]: pair enumeration
//   - [MatchRatios]: tolerance cross-matching
//   - [Aggregate]: deduplicated line identifications
//   - [Estimate]: per-line redshift, rejection, summary statistics
//
// [Identify] wires the stages together and optionally streams ordered
// diagnostic text to an io.Writer.
package lineid
