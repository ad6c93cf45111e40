package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/spf13/cobra"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/rasterpath/geo"
	"github.com/katalvlaran/rasterpath/raster"
	"github.com/katalvlaran/rasterpath/synth"
)

type genFlags struct {
	dir     string
	cfg     synth.Config
	variant string
}

func newGenCmd() *cobra.Command {
	var f genFlags
	c := &cobra.Command{
		Use:   "gen -o <dir>",
		Short: "Generate a maze raster and a job that crosses it",
		Long: `Generate a maze, write it as JSON rasters and write a job.hcl that routes
from the top-left room to the bottom-right one.

Examples:
  rasterpath gen -o demo
  rasterpath gen -o demo --width 201 --height 101 --braiding 0.3 --max-cost 9 --seed 7`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := writeMaze(f)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	c.Flags().StringVarP(&f.dir, "output", "o", "", "directory to write into (created if missing)")
	c.Flags().IntVar(&f.cfg.Width, "width", 63, "raster width")
	c.Flags().IntVar(&f.cfg.Height, "height", 31, "raster height")
	c.Flags().Float64Var(&f.cfg.Braiding, "braiding", 0.1, "chance a dead end gets a second exit, 0..1")
	c.Flags().IntVar(&f.cfg.MaxCost, "max-cost", 1, "add a cost layer with costs 1..n when n > 1")
	c.Flags().Int64Var(&f.cfg.Seed, "seed", 0, "random seed; 0 picks one from the clock")
	c.Flags().StringVar(&f.variant, "algorithm", "astar", "algorithm written into the job")
	_ = c.MarkFlagRequired("output")
	return c
}

// writeMaze writes maze.json, cost.json when there is a cost layer, and
// job.hcl into f.dir, returning the job path.
func writeMaze(f genFlags) (string, error) {
	m, err := synth.Generate(f.cfg)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return "", fmt.Errorf("gen: %w", err)
	}

	names := []string{"maze", "cost"}
	for i, l := range m.Layers() {
		if err := raster.SaveJSON(filepath.Join(f.dir, names[i]+".json"), l); err != nil {
			return "", err
		}
	}

	file := hclwrite.NewEmptyFile()
	body := file.Body()
	for i := range m.Layers() {
		layer := body.AppendNewBlock("layer", []string{names[i]}).Body()
		layer.SetAttributeValue("path", cty.StringVal(names[i]+".json"))
	}
	body.AppendNewline()

	ext := geo.PixelExtent(m.Width, m.Height)
	for _, ep := range []struct {
		name string
		p    geo.Point
	}{
		{"start", geo.PixelToPoint(m.Start, ext, m.Width, m.Height)},
		{"end", geo.PixelToPoint(m.End, ext, m.Width, m.Height)},
	} {
		b := body.AppendNewBlock(ep.name, nil).Body()
		b.SetAttributeValue("x", cty.NumberFloatVal(ep.p.X))
		b.SetAttributeValue("y", cty.NumberFloatVal(ep.p.Y))
	}
	body.AppendNewline()

	body.SetAttributeValue("algorithm", cty.StringVal(f.variant))
	trav := body.AppendNewBlock("traversability", nil).Body()
	trav.SetAttributeValue("layer", cty.StringVal("maze"))
	trav.SetAttributeValue("min", cty.NumberIntVal(1))
	if m.Cost != nil {
		body.AppendNewBlock("cost", nil).Body().SetAttributeValue("layer", cty.StringVal("cost"))
	}

	path := filepath.Join(f.dir, "job.hcl")
	if err := os.WriteFile(path, file.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("gen: %w", err)
	}
	return path, nil
}
