// Command zline identifies spectral lines in observed wavelength lists by
// ratio matching against a calibration catalog, and provides the spectrum
// file utilities around it (resampling, exposure combination, channel
// concatenation).
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "zline",
	Short:         "Spectral line identification and redshift estimation",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.AddCommand(identifyCmd)
	rootCmd.AddCommand(resampleCmd)
	rootCmd.AddCommand(combineCmd)
	rootCmd.AddCommand(concatCmd)
	rootCmd.AddCommand(catalogsCmd)

	if err := rootCmd.Execute(); err != nil {
		rootCmd.PrintErrln("zline:", err)
		os.Exit(1)
	}
}
