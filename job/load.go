package job

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/rasterpath/astar"
	"github.com/katalvlaran/rasterpath/geo"
	"github.com/katalvlaran/rasterpath/grid"
	"github.com/katalvlaran/rasterpath/gridpolicy"
	"github.com/katalvlaran/rasterpath/internal/ctxlog"
	"github.com/katalvlaran/rasterpath/raster"
)

// layersFile is the first decoding pass.
type layersFile struct {
	Layers []*layerBlock `hcl:"layer,block"`
	Remain hcl.Body      `hcl:",remain"`
}

type layerBlock struct {
	Name string `hcl:"name,label"`
	Path string `hcl:"path"`
}

// settingsFile is the second decoding pass, evaluated against layer stats.
type settingsFile struct {
	Extent         *extentBlock    `hcl:"extent,block"`
	Start          pointBlock      `hcl:"start,block"`
	End            pointBlock      `hcl:"end,block"`
	Algorithm      *string         `hcl:"algorithm,optional"`
	MaxFrontier    *int            `hcl:"max_frontier,optional"`
	Traversability *traversalBlock `hcl:"traversability,block"`
	Cost           *costBlock      `hcl:"cost,block"`
	Output         *string         `hcl:"output,optional"`
}

type extentBlock struct {
	XMin float64 `hcl:"xmin"`
	YMin float64 `hcl:"ymin"`
	XMax float64 `hcl:"xmax"`
	YMax float64 `hcl:"ymax"`
}

type pointBlock struct {
	X float64 `hcl:"x"`
	Y float64 `hcl:"y"`
}

type traversalBlock struct {
	Layer   *string  `hcl:"layer,optional"`
	Min     *float64 `hcl:"min,optional"`
	Max     *float64 `hcl:"max,optional"`
	Formula *string  `hcl:"formula,optional"`
}

type costBlock struct {
	Layer   *string `hcl:"layer,optional"`
	Formula *string `hcl:"formula,optional"`
}

// LoadFile reads and loads the job at path.
func LoadFile(ctx context.Context, path string) (*Job, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("job: read %s: %w", path, err)
	}
	return Load(ctx, path, src)
}

// Load parses src as a job file named filename, loads its rasters relative to
// filename's directory and validates the result.
func Load(ctx context.Context, filename string, src []byte) (*Job, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("job: loading", "file", filename)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("job: parse %s: %w", filename, diags)
	}

	// 1) Layers.
	var lf layersFile
	if diags := gohcl.DecodeBody(file.Body, nil, &lf); diags.HasErrors() {
		return nil, fmt.Errorf("job: decode %s: %w", filename, diags)
	}
	layers, err := loadLayers(ctx, filepath.Dir(filename), lf.Layers)
	if err != nil {
		return nil, err
	}
	first := layers[0]

	// 2) Everything else, with layer statistics in scope.
	var sf settingsFile
	if diags := gohcl.DecodeBody(lf.Remain, evalContext(layers), &sf); diags.HasErrors() {
		return nil, fmt.Errorf("job: decode %s: %w", filename, diags)
	}

	j := &Job{Filename: filename, Layers: layers, Variant: astar.VariantGrid}

	values := make([][]float64, len(layers))
	for i, l := range layers {
		values[i] = l.Values
	}
	if j.Grid, err = grid.New(first.Width, first.Height, values...); err != nil {
		return nil, fmt.Errorf("job: %w", err)
	}

	// 3) Geometry.
	j.Extent = geo.PixelExtent(first.Width, first.Height)
	if sf.Extent != nil {
		j.Extent = geo.Extent{XMin: sf.Extent.XMin, YMin: sf.Extent.YMin, XMax: sf.Extent.XMax, YMax: sf.Extent.YMax}
	}
	if err := j.Extent.Validate(); err != nil {
		return nil, fmt.Errorf("job: %w", err)
	}
	j.Start = geo.Point{X: sf.Start.X, Y: sf.Start.Y}
	j.End = geo.Point{X: sf.End.X, Y: sf.End.Y}
	if !j.Extent.Contains(j.Start) {
		return nil, fmt.Errorf("%w: (%g, %g) not in %v", ErrStartOutside, j.Start.X, j.Start.Y, j.Extent)
	}
	if !j.Extent.Contains(j.End) {
		return nil, fmt.Errorf("%w: (%g, %g) not in %v", ErrEndOutside, j.End.X, j.End.Y, j.Extent)
	}
	j.StartCell = geo.PointToPixel(j.Start, j.Extent, first.Width, first.Height)
	j.EndCell = geo.PointToPixel(j.End, j.Extent, first.Width, first.Height)

	// 4) Search settings.
	if sf.Algorithm != nil {
		v, err := astar.ParseVariant(*sf.Algorithm)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, *sf.Algorithm)
		}
		j.Variant = v
	}
	if sf.MaxFrontier != nil {
		if *sf.MaxFrontier < 0 {
			return nil, fmt.Errorf("%w: %d", ErrBadMaxFrontier, *sf.MaxFrontier)
		}
		j.MaxFrontier = sf.MaxFrontier
	}

	// 5) Rules.
	if t := sf.Traversability; t != nil {
		if t.Layer != nil && t.Formula != nil {
			return nil, fmt.Errorf("%w: traversability block", ErrConflictingRule)
		}
		if t.Layer != nil {
			idx, err := layerIndex(layers, *t.Layer)
			if err != nil {
				return nil, err
			}
			j.Traversal = gridpolicy.TraversalConfig{Layer: &idx, Min: t.Min, Max: t.Max}
		} else if t.Formula != nil {
			j.Traversal.Formula = *t.Formula
		}
	}
	if c := sf.Cost; c != nil {
		if c.Layer != nil && c.Formula != nil {
			return nil, fmt.Errorf("%w: cost block", ErrConflictingRule)
		}
		if c.Layer != nil {
			idx, err := layerIndex(layers, *c.Layer)
			if err != nil {
				return nil, err
			}
			j.Cost = gridpolicy.CostConfig{Layer: &idx}
		} else if c.Formula != nil {
			j.Cost.Formula = *c.Formula
		}
	}

	if sf.Output != nil && *sf.Output != "" {
		j.Output = resolve(filepath.Dir(filename), *sf.Output)
	}

	logger.Debug("job: loaded", "file", filename, "layers", len(layers),
		"size", fmt.Sprintf("%dx%d", first.Width, first.Height),
		"start", j.StartCell.String(), "end", j.EndCell.String(), "algorithm", j.Variant.String())
	return j, nil
}

// loadLayers validates the layer blocks and loads their rasters.
func loadLayers(ctx context.Context, dir string, blocks []*layerBlock) ([]Layer, error) {
	if len(blocks) == 0 {
		return nil, ErrNoLayers
	}
	if len(blocks) > grid.MaxLayers {
		return nil, fmt.Errorf("%w: %d, max %d", ErrTooManyLayers, len(blocks), grid.MaxLayers)
	}

	logger := ctxlog.FromContext(ctx)
	seen := make(map[string]struct{}, len(blocks))
	layers := make([]Layer, 0, len(blocks))
	for _, b := range blocks {
		if _, dup := seen[b.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateLayer, b.Name)
		}
		seen[b.Name] = struct{}{}

		path := resolve(dir, b.Path)
		rl, err := raster.Load(path)
		if err != nil {
			return nil, fmt.Errorf("job: layer %q: %w", b.Name, err)
		}
		if len(layers) > 0 && (rl.Width != layers[0].Width || rl.Height != layers[0].Height) {
			return nil, fmt.Errorf("%w: %q is %dx%d, %q is %dx%d", ErrLayerMismatch,
				b.Name, rl.Width, rl.Height, layers[0].Name, layers[0].Width, layers[0].Height)
		}
		logger.Debug("job: layer loaded", "name", b.Name, "path", path, "width", rl.Width, "height", rl.Height)
		layers = append(layers, Layer{Name: b.Name, Path: path, Layer: rl})
	}
	return layers, nil
}

// evalContext exposes layer.<name>.{width,height,min,max,mean} and
// grid.{width,height}.
func evalContext(layers []Layer) *hcl.EvalContext {
	byName := make(map[string]cty.Value, len(layers))
	for _, l := range layers {
		s := l.Stats()
		byName[l.Name] = cty.ObjectVal(map[string]cty.Value{
			"width":  cty.NumberIntVal(int64(l.Width)),
			"height": cty.NumberIntVal(int64(l.Height)),
			"min":    number(s.Min),
			"max":    number(s.Max),
			"mean":   number(s.Mean),
		})
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"layer": cty.ObjectVal(byName),
			"grid": cty.ObjectVal(map[string]cty.Value{
				"width":  cty.NumberIntVal(int64(layers[0].Width)),
				"height": cty.NumberIntVal(int64(layers[0].Height)),
			}),
		},
	}
}

// number converts f to cty; NaN has no cty form and becomes null.
func number(f float64) cty.Value {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return cty.NullVal(cty.Number)
	}
	return cty.NumberFloatVal(f)
}

func layerIndex(layers []Layer, name string) (int, error) {
	for i, l := range layers {
		if l.Name == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLayer, name)
}

func resolve(dir, path string) string {
	if filepath.IsAbs(path) || dir == "" {
		return path
	}
	return filepath.Join(dir, path)
}
