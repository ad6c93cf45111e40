package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rasterpath/grid"
	"github.com/katalvlaran/rasterpath/job"
	"github.com/katalvlaran/rasterpath/regions"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <job.hcl>",
		Short: "Describe a job's grid and whether its endpoints can be joined",
		Long: `Load a job without searching and report its grid, the resolved rules and the
open regions. When start and end lie in different regions, print the fewest
blocked cells that separate them.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			j, err := job.LoadFile(ctx, args[0])
			if err != nil {
				return err
			}
			policy, err := j.Policy()
			if err != nil {
				return err
			}
			labels, err := regions.Label(ctx, policy)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "grid: %dx%d, %d layer(s)\n", j.Grid.Width(), j.Grid.Height(), j.Grid.Layers())
			for _, l := range j.Layers {
				s := l.Stats()
				fmt.Fprintf(w, "  %s: %s min=%g max=%g mean=%g\n", l.Name, l.Path, s.Min, s.Max, s.Mean)
			}
			fmt.Fprintf(w, "extent: %v\n", j.Extent)
			fmt.Fprintf(w, "algorithm: %s\n", j.Variant)
			fmt.Fprintf(w, "policy: %s\n", policy)
			_, largest := labels.Largest()
			fmt.Fprintf(w, "regions: %d (largest %d cells)\n", labels.Count(), largest)

			rs := endpoint(w, labels, "start", j.StartCell)
			re := endpoint(w, labels, "end", j.EndCell)
			switch {
			case rs == regions.None || re == regions.None:
				fmt.Fprintln(w, "connected: no (blocked endpoint)")
			case rs == re:
				fmt.Fprintln(w, "connected: yes")
			default:
				gap, err := regions.Bridge(ctx, policy, j.StartCell, j.EndCell)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "connected: no (%d blocked cell(s) apart)\n", gap.Blocked)
			}
			return nil
		},
	}
}

// endpoint prints the region of p and returns it.
func endpoint(w io.Writer, l *regions.Labels, name string, p grid.Position) int {
	id, _ := l.Of(p)
	if id == regions.None {
		fmt.Fprintf(w, "%s %v: blocked\n", name, p)
	} else {
		fmt.Fprintf(w, "%s %v: region %d\n", name, p, id)
	}
	return id
}
