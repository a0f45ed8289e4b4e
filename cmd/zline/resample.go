package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-astro/specio"
	"github.com/cwbudde/algo-astro/spectrum"
)

var (
	resampleMin    float64
	resampleMax    float64
	resampleStep   float64
	resampleMode   string
	resampleOutput string
)

var resampleCmd = &cobra.Command{
	Use:   "resample <spectrum-file>",
	Short: "Resample a spectrum onto a uniform wavelength grid",
	Args:  cobra.ExactArgs(1),
	RunE:  runResample,
}

func init() {
	resampleCmd.Flags().Float64Var(&resampleMin, "min", 0, "grid start wavelength")
	resampleCmd.Flags().Float64Var(&resampleMax, "max", 0, "grid end wavelength")
	resampleCmd.Flags().Float64Var(&resampleStep, "step", 1, "grid step")
	resampleCmd.Flags().StringVar(&resampleMode, "mode", "linear", "interpolation mode (linear|hermite)")
	resampleCmd.Flags().StringVarP(&resampleOutput, "output", "o", "", "output file (default stdout)")
}

func runResample(cmd *cobra.Command, args []string) error {
	s, err := specio.ReadSpectrumFile(args[0])
	if err != nil {
		return err
	}

	min, max := resampleMin, resampleMax
	if min == 0 && max == 0 && s.Len() > 0 {
		min = s.Wavelength[0]
		max = s.Wavelength[s.Len()-1]
	}

	mode, err := parseMode(resampleMode)
	if err != nil {
		return err
	}

	out, outside, err := spectrum.ResampleUniform(s, min, max, resampleStep, mode)
	if err != nil {
		return err
	}

	if outside > 0 {
		fmt.Fprintf(os.Stderr, "zline: %d grid points outside the source range were zero-filled\n", outside)
	}

	return writeSpectrumOutput(out, resampleOutput)
}

func parseMode(name string) (spectrum.Mode, error) {
	switch name {
	case "linear":
		return spectrum.ModeLinear, nil
	case "hermite":
		return spectrum.ModeHermite, nil
	default:
		return 0, fmt.Errorf("unknown interpolation mode %q", name)
	}
}

func writeSpectrumOutput(s *spectrum.Spectrum, path string) error {
	w := os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	return specio.WriteSpectrum(w, s)
}
