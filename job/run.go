package job

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/katalvlaran/rasterpath/astar"
	"github.com/katalvlaran/rasterpath/geo"
	"github.com/katalvlaran/rasterpath/gridpolicy"
	"github.com/katalvlaran/rasterpath/internal/ctxlog"
)

// Policy resolves the job's traversability and cost rules.
func (j *Job) Policy() (*gridpolicy.Policy, error) {
	return gridpolicy.Resolve(j.Grid, j.Traversal, j.Cost)
}

// SearchOptions returns the options implied by the job file. Extra options
// passed to Run are applied after these.
func (j *Job) SearchOptions() []astar.Option {
	opts := []astar.Option{astar.WithVariant(j.Variant)}
	if j.MaxFrontier != nil {
		opts = append(opts, astar.WithMaxFrontier(*j.MaxFrontier))
	}
	return opts
}

// Run resolves the policy, searches from StartCell to EndCell and converts
// the route back to map coordinates.
func (j *Job) Run(ctx context.Context, opts ...astar.Option) (*Outcome, error) {
	policy, err := j.Policy()
	if err != nil {
		return nil, fmt.Errorf("job: %w", err)
	}
	ctxlog.FromContext(ctx).Info("job: searching",
		"file", j.Filename, "algorithm", j.Variant.String(), "policy", policy.String(),
		"start", j.StartCell.String(), "end", j.EndCell.String())

	res, err := astar.Search(ctx, policy, j.StartCell, j.EndCell, append(j.SearchOptions(), opts...)...)
	if err != nil {
		return nil, err
	}

	points := geo.PixelsToPoints(res.Path, j.Extent, j.Grid.Width(), j.Grid.Height())
	feature := geo.LineFeature(points, map[string]any{
		"algorithm": j.Variant.String(),
		"cost":      res.Cost,
		"expanded":  res.Expanded,
		"waypoints": len(res.Path),
	})

	return &Outcome{Result: res, Points: points, Feature: feature, Policy: policy.String()}, nil
}

// Write renders the route as a GeoJSON FeatureCollection.
func (o *Outcome) Write(w io.Writer) error {
	return geo.WriteFeatures(w, o.Feature)
}

// Save writes the route to path, creating missing parent directories.
func (o *Outcome) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("job: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("job: create %s: %w", path, err)
	}
	if err := o.Write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
