package main

import (
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-astro/specio"
	"github.com/cwbudde/algo-astro/spectrum"
)

var concatOutput string

var concatCmd = &cobra.Command{
	Use:   "concat <spectrum-file> <spectrum-file> ...",
	Short: "Join channel spectra into one wavelength-ordered spectrum",
	Long: `Concat joins spectra from different instrument channels, in argument
order. Where channels overlap, the earlier channel's samples win and the
later channel's overlapping samples are dropped.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runConcat,
}

func init() {
	concatCmd.Flags().StringVarP(&concatOutput, "output", "o", "", "output file (default stdout)")
}

func runConcat(cmd *cobra.Command, args []string) error {
	out, err := specio.ReadSpectrumFile(args[0])
	if err != nil {
		return err
	}

	for _, path := range args[1:] {
		next, err := specio.ReadSpectrumFile(path)
		if err != nil {
			return err
		}

		out, err = spectrum.Concat(out, next)
		if err != nil {
			return err
		}
	}

	return writeSpectrumOutput(out, concatOutput)
}
