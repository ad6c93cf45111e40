package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rasterpath/astar"
	"github.com/katalvlaran/rasterpath/job"
)

type findFlags struct {
	output      string
	algorithm   string
	maxFrontier int
	progress    bool
}

func newFindCmd() *cobra.Command {
	var f findFlags
	c := &cobra.Command{
		Use:   "find <job.hcl>",
		Short: "Run a job and write the route as GeoJSON",
		Long: `Load a job file, search for the least-cost route and write it as a GeoJSON
LineString. The destination is --output, else the job's output attribute,
else stdout. "-" always means stdout.

Examples:
  rasterpath find job.hcl
  rasterpath find job.hcl -o route.geojson --algorithm any-angle
  rasterpath find job.hcl --max-frontier 0 --progress`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFind(cmd, args[0], f)
		},
	}
	c.Flags().StringVarP(&f.output, "output", "o", "", `GeoJSON destination ("-" for stdout)`)
	c.Flags().StringVarP(&f.algorithm, "algorithm", "a", "", "override the job's algorithm: astar or any-angle")
	c.Flags().IntVar(&f.maxFrontier, "max-frontier", 0, "override the frontier bound; 0 removes it")
	c.Flags().BoolVar(&f.progress, "progress", false, "report search progress on stderr")
	return c
}

func runFind(cmd *cobra.Command, path string, f findFlags) error {
	ctx := cmd.Context()

	j, err := loadJob(cmd, path, f.algorithm)
	if err != nil {
		return err
	}

	var opts []astar.Option
	if cmd.Flags().Changed("max-frontier") {
		if f.maxFrontier < 0 {
			return fmt.Errorf("%w: %d", job.ErrBadMaxFrontier, f.maxFrontier)
		}
		opts = append(opts, astar.WithMaxFrontier(f.maxFrontier))
	}
	if f.progress {
		opts = append(opts, astar.WithProgress(progressPrinter(cmd.ErrOrStderr())))
	}

	out, err := j.Run(ctx, opts...)
	if err != nil {
		return err
	}
	for _, w := range out.Result.Warnings {
		fmt.Fprintln(cmd.ErrOrStderr(), "warning:", w)
	}

	dest := f.output
	if dest == "" {
		dest = j.Output
	}
	if dest == "" || dest == "-" {
		return out.Write(cmd.OutOrStdout())
	}
	if err := out.Save(dest); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "cost=%g waypoints=%d expanded=%d -> %s\n",
		out.Result.Cost, len(out.Result.Path), out.Result.Expanded, dest)
	return nil
}

// loadJob loads path and applies an --algorithm override.
func loadJob(cmd *cobra.Command, path, algorithm string) (*job.Job, error) {
	j, err := job.LoadFile(cmd.Context(), path)
	if err != nil {
		return nil, err
	}
	if algorithm != "" {
		v, err := astar.ParseVariant(algorithm)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", job.ErrUnknownAlgorithm, algorithm)
		}
		j.Variant = v
	}
	return j, nil
}

// progressPrinter prints whole-percent steps only.
func progressPrinter(w io.Writer) func(float64) {
	last := -1
	return func(fraction float64) {
		pct := int(fraction * 100)
		if pct <= last {
			return
		}
		last = pct
		fmt.Fprintf(w, "progress: %d%%\n", pct)
	}
}
