// Package specio reads and writes the flat-file formats used around line
// identification: two-column wavelength/flux spectrum files, tab-separated
// and CSV identification reports, and TOML line-catalog documents.
package specio
