// Command curveplot edits curve records and renders them.
//
// A curve record (.crv, or zstd compressed .crvz) stores the layout of one
// curve and its overlays. The data is kept apart in CSV files of x,y[,err]
// rows and paired with the records when rendering:
//
//	curveplot new rdf.crv --id 1/1/1 --name "g(r)"
//	curveplot axis rdf.crv y --min 0 --max 3
//	curveplot overlay add rdf.crv 1/1/2 --style bars
//	curveplot render rdf.crv --data rdf.csv --overlay other.crv=other.csv -o rdf.svg
package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/vdobler/curve/internal/logging"
)

var logLevel string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "curveplot",
		Short: "Edit and render curve records",
		Long: `curveplot creates and edits curve records (axes, overlays, draw order)
and renders them together with their CSV data to PNG, PDF, SVG or EPS.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := logging.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			logging.SetLevel(l)
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(newCmd(), infoCmd(), axisCmd(), overlayCmd(), renderCmd())
	return rootCmd
}
