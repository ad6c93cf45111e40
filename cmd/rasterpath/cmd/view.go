package cmd

import (
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/rasterpath/view"
)

// openScreen returns an initialised terminal screen. Tests swap it for a
// simulation screen.
var openScreen = func() (tcell.Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	return s, nil
}

func newViewCmd() *cobra.Command {
	var algorithm string
	c := &cobra.Command{
		Use:   "view <job.hcl>",
		Short: "Run a job and show the route in the terminal",
		Long: `Run a job and draw the grid and the route in the terminal. Large grids are
scaled down to fit. Press q, Esc or Ctrl-C to leave.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			j, err := loadJob(cmd, args[0], algorithm)
			if err != nil {
				return err
			}
			policy, err := j.Policy()
			if err != nil {
				return err
			}
			out, err := j.Run(ctx)
			if err != nil {
				return err
			}

			screen, err := openScreen()
			if err != nil {
				return err
			}
			defer screen.Fini()

			return view.Show(ctx, screen, view.Scene{
				Terrain: policy,
				Path:    out.Result.Path,
				Start:   j.StartCell,
				End:     j.EndCell,
				Status: view.StatusLine(filepath.Base(args[0]),
					out.Result.Cost, len(out.Result.Path), out.Result.Expanded),
			})
		},
	}
	c.Flags().StringVarP(&algorithm, "algorithm", "a", "", "override the job's algorithm: astar or any-angle")
	return c
}
