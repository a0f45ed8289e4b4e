package specio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/cwbudde/algo-astro/lineid"
	"github.com/cwbudde/algo-astro/spectrum"
)

// WriteSpectrum writes a spectrum as two-column wavelength/flux text.
func WriteSpectrum(w io.Writer, s *spectrum.Spectrum) error {
	for i := 0; i < s.Len(); i++ {
		if _, err := fmt.Fprintf(w, "%g %g\n", s.Wavelength[i], s.Flux[i]); err != nil {
			return fmt.Errorf("specio: %w", err)
		}
	}

	return nil
}

// WriteIdentifications writes line identifications as tab-separated text:
// name, observed wavelength, rest wavelength, and (when withZ is set) the
// redshift at 4 decimal places. Tabs keep multi-word line names intact.
func WriteIdentifications(w io.Writer, ids []lineid.Identification, withZ bool) error {
	for _, id := range ids {
		var err error
		if withZ {
			_, err = fmt.Fprintf(w, "%s\t%g\t%g\t%.4f\n", id.Name, id.Observed, id.Rest, id.Z)
		} else {
			_, err = fmt.Fprintf(w, "%s\t%g\t%g\n", id.Name, id.Observed, id.Rest)
		}

		if err != nil {
			return fmt.Errorf("specio: %w", err)
		}
	}

	return nil
}

// WriteIdentificationsCSV writes line identifications as CSV with a header
// row, in the same column order as [WriteIdentifications].
func WriteIdentificationsCSV(w io.Writer, ids []lineid.Identification, withZ bool) error {
	cw := csv.NewWriter(w)

	header := []string{"name", "observed", "rest"}
	if withZ {
		header = append(header, "z")
	}

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("specio: %w", err)
	}

	for _, id := range ids {
		record := []string{
			id.Name,
			strconv.FormatFloat(id.Observed, 'g', -1, 64),
			strconv.FormatFloat(id.Rest, 'g', -1, 64),
		}
		if withZ {
			record = append(record, strconv.FormatFloat(id.Z, 'f', 4, 64))
		}

		if err := cw.Write(record); err != nil {
			return fmt.Errorf("specio: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("specio: %w", err)
	}

	return nil
}
