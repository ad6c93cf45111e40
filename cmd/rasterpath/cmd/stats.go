package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rasterpath/raster"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <raster>...",
		Short: "Print the size and value range of raster files",
		Long: `Print width, height, min, max and mean of each raster. These are the values
a job exposes as layer.<name>.width and so on.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				l, err := raster.Load(path)
				if err != nil {
					return err
				}
				s := l.Stats()
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %dx%d min=%g max=%g mean=%g\n",
					path, l.Width, l.Height, s.Min, s.Max, s.Mean)
			}
			return nil
		},
	}
}
