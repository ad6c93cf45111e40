package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rasterpath/astar"
	"github.com/katalvlaran/rasterpath/internal/ctxlog"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	logLevel  string
	logFormat string
	verbose   bool
}

// NewRootCmd builds the command tree. Each call returns fresh flag state.
func NewRootCmd() *cobra.Command {
	var g globalFlags

	root := &cobra.Command{
		Use:   "rasterpath",
		Short: "Least-cost routing over raster grids",
		Long: `Find least-cost routes across raster layers with A* search.

A job file (HCL) names the rasters, the endpoints and the rules that decide
which cells can be crossed and what they cost. Rules can be thresholds on a
layer or formulas over x, y, val1, val2 and val3.

Examples:
  rasterpath gen -o demo --width 81 --height 41 --braiding 0.2
  rasterpath find demo/job.hcl -o route.geojson
  rasterpath view demo/job.hcl
  rasterpath eval "1 + val1 / 10" --var val1=25`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := g.logLevel
			if g.verbose {
				level = "debug"
			}
			logger := ctxlog.New(level, g.logFormat, cmd.ErrOrStderr())
			cmd.SetContext(ctxlog.WithLogger(cmd.Context(), logger))
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&g.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	pf.StringVar(&g.logFormat, "log-format", "text", "log format: text or json")
	pf.BoolVarP(&g.verbose, "verbose", "v", false, "shorthand for --log-level=debug")

	root.AddCommand(newFindCmd(), newViewCmd(), newInspectCmd(), newEvalCmd(), newGenCmd(), newStatsCmd())
	return root
}

// Execute runs the root command and exits non-zero on failure: 2 when the
// search rejected its input or found no route, 1 for anything else.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := NewRootCmd().ExecuteContext(ctx)
	stop()
	if err == nil {
		return
	}
	fmt.Fprintln(os.Stderr, "Error:", err)
	if astar.IsDomainError(err) {
		os.Exit(2)
	}
	os.Exit(1)
}
