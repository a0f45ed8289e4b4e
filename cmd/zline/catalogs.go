package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-astro/lineid"
)

var catalogsCmd = &cobra.Command{
	Use:   "catalogs",
	Short: "List the built-in calibration catalogs",
	RunE:  runCatalogs,
}

func runCatalogs(cmd *cobra.Command, args []string) error {
	builtins := []struct {
		name string
		cat  *lineid.Catalog
	}{
		{"basic", lineid.VacuumBasic()},
		{"vacuum", lineid.Vacuum()},
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "catalog\tline\trest [A]")

	for _, b := range builtins {
		for i := 0; i < b.cat.Len(); i++ {
			ln := b.cat.Line(i)
			fmt.Fprintf(tw, "%s\t%s\t%g\n", b.name, ln.Name, ln.Rest)
		}
	}

	return tw.Flush()
}
