package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-astro/specio"
	"github.com/cwbudde/algo-astro/spectrum"
)

var (
	combineMethod string
	combineSigma  float64
	combineIters  int
	combineOutput string
)

var combineCmd = &cobra.Command{
	Use:   "combine <spectrum-file> ...",
	Short: "Combine repeated exposures pixel by pixel",
	Long: `Combine averages or median-combines exposures sampled on the identical
wavelength grid. With --sigma, per-pixel samples deviating from the column
median by more than sigma standard deviations are rejected first.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCombine,
}

func init() {
	combineCmd.Flags().StringVar(&combineMethod, "method", "mean", "combination method (mean|median)")
	combineCmd.Flags().Float64Var(&combineSigma, "sigma", 0, "sigma-clip threshold (0 disables)")
	combineCmd.Flags().IntVar(&combineIters, "iters", 1, "maximum clipping iterations")
	combineCmd.Flags().StringVarP(&combineOutput, "output", "o", "", "output file (default stdout)")
}

func runCombine(cmd *cobra.Command, args []string) error {
	specs := make([]*spectrum.Spectrum, len(args))
	for i, path := range args {
		s, err := specio.ReadSpectrumFile(path)
		if err != nil {
			return err
		}
		specs[i] = s
	}

	opts := spectrum.CombineOptions{SigmaClip: combineSigma, MaxIter: combineIters}

	var (
		out *spectrum.Spectrum
		err error
	)

	switch combineMethod {
	case "mean":
		out, err = spectrum.CombineMean(specs, opts)
	case "median":
		out, err = spectrum.CombineMedian(specs, opts)
	default:
		return fmt.Errorf("unknown combination method %q", combineMethod)
	}

	if err != nil {
		return err
	}

	return writeSpectrumOutput(out, combineOutput)
}
