package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-astro/lineid"
	"github.com/cwbudde/algo-astro/specio"
)

var (
	identifyCatalog  string
	identifyInput    string
	identifyOffset   float64
	identifyRedshift bool
	identifyZMin     float64
	identifyZMax     float64
	identifyClip     float64
	identifyCSV      bool
	identifyOutput   string
	identifyQuiet    bool
)

var identifyCmd = &cobra.Command{
	Use:   "identify [wavelength ...]",
	Short: "Identify observed wavelengths against a calibration catalog",
	Long: `Identify enumerates all wavelength-pair ratios of the catalog and of the
observed list, matches them within the given fractional tolerance, and prints
the deduplicated line identifications. With --redshift it also estimates a
robust aggregate redshift with median-clip and range rejection.

Observed wavelengths come from the arguments, or from the wavelength column
of a two-column spectrum file given with --input.`,
	RunE: runIdentify,
}

func init() {
	identifyCmd.Flags().StringVarP(&identifyCatalog, "catalog", "c", "vacuum", "built-in catalog name or TOML catalog file")
	identifyCmd.Flags().StringVarP(&identifyInput, "input", "i", "", "spectrum file supplying observed wavelengths")
	identifyCmd.Flags().Float64Var(&identifyOffset, "offset", 0.003, "fractional ratio tolerance")
	identifyCmd.Flags().BoolVarP(&identifyRedshift, "redshift", "z", false, "estimate redshifts with outlier rejection")
	identifyCmd.Flags().Float64Var(&identifyZMin, "z-min", 0, "minimum acceptable redshift")
	identifyCmd.Flags().Float64Var(&identifyZMax, "z-max", 10, "maximum acceptable redshift")
	identifyCmd.Flags().Float64Var(&identifyClip, "clip", 0.1, "median-clip radius for redshift rejection")
	identifyCmd.Flags().BoolVar(&identifyCSV, "csv", false, "write the report as CSV")
	identifyCmd.Flags().StringVarP(&identifyOutput, "output", "o", "", "report file (default stdout)")
	identifyCmd.Flags().BoolVarP(&identifyQuiet, "quiet", "q", false, "suppress diagnostics")
}

func runIdentify(cmd *cobra.Command, args []string) error {
	observed, err := observedWavelengths(args)
	if err != nil {
		return err
	}
	if len(observed) == 0 {
		return fmt.Errorf("no observed wavelengths given")
	}

	cat, err := resolveCatalog(identifyCatalog)
	if err != nil {
		return err
	}

	var diag strings.Builder

	opts := []lineid.Option{
		lineid.WithRedshift(identifyRedshift),
		lineid.WithZRange(identifyZMin, identifyZMax),
		lineid.WithClip(identifyClip),
	}
	if !identifyQuiet {
		opts = append(opts, lineid.WithDiagnostics(&diag))
	}

	out, err := lineid.Identify(cat, observed, identifyOffset, opts...)
	if err != nil {
		return err
	}

	if !identifyQuiet {
		printDiagnostics(diag.String())
	}

	report := os.Stdout
	if identifyOutput != "" {
		f, err := os.Create(identifyOutput)
		if err != nil {
			return err
		}
		defer f.Close()
		report = f
	}

	if identifyCSV {
		return specio.WriteIdentificationsCSV(report, out.Identifications, identifyRedshift)
	}

	return specio.WriteIdentifications(report, out.Identifications, identifyRedshift)
}

// observedWavelengths parses positional arguments or falls back to the
// wavelength column of --input.
func observedWavelengths(args []string) ([]float64, error) {
	if len(args) > 0 {
		out := make([]float64, len(args))
		for i, a := range args {
			w, err := strconv.ParseFloat(a, 64)
			if err != nil {
				return nil, fmt.Errorf("bad wavelength %q: %w", a, err)
			}
			out[i] = w
		}

		return out, nil
	}

	if identifyInput == "" {
		return nil, nil
	}

	s, err := specio.ReadSpectrumFile(identifyInput)
	if err != nil {
		return nil, err
	}

	return s.Wavelength, nil
}

// resolveCatalog maps a built-in name to its preset, or loads a TOML file.
func resolveCatalog(name string) (*lineid.Catalog, error) {
	switch name {
	case "basic":
		return lineid.VacuumBasic(), nil
	case "vacuum":
		return lineid.Vacuum(), nil
	}

	if strings.HasSuffix(name, ".toml") {
		return specio.ReadCatalogFile(name)
	}

	return nil, fmt.Errorf("unknown catalog %q (built-ins: basic, vacuum; or a .toml file)", name)
}

// printDiagnostics streams the diagnostic text to stderr, highlighting
// rejection lines.
func printDiagnostics(text string) {
	if text == "" {
		return
	}

	warn := color.New(color.FgYellow)

	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		if strings.HasPrefix(line, "rejected ") {
			warn.Fprintln(os.Stderr, line)
		} else {
			fmt.Fprintln(os.Stderr, line)
		}
	}
}
