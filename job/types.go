package job

import (
	"errors"

	"github.com/katalvlaran/rasterpath/astar"
	"github.com/katalvlaran/rasterpath/geo"
	"github.com/katalvlaran/rasterpath/grid"
	"github.com/katalvlaran/rasterpath/gridpolicy"
	"github.com/katalvlaran/rasterpath/raster"
)

// Sentinel errors returned by Load and LoadFile.
var (
	// ErrNoLayers indicates a job without layer blocks.
	ErrNoLayers = errors.New("job: at least one raster layer is required")

	// ErrTooManyLayers indicates more than grid.MaxLayers layer blocks.
	ErrTooManyLayers = errors.New("job: too many raster layers")

	// ErrDuplicateLayer indicates two layer blocks with the same name.
	ErrDuplicateLayer = errors.New("job: duplicate layer name")

	// ErrUnknownLayer indicates a traversability or cost block naming a missing layer.
	ErrUnknownLayer = errors.New("job: unknown layer")

	// ErrLayerMismatch indicates layers of different dimensions.
	ErrLayerMismatch = errors.New("job: layers must share the dimensions of the first layer")

	// ErrConflictingRule indicates a traversability or cost block naming both
	// a layer and a formula.
	ErrConflictingRule = errors.New("job: layer and formula are mutually exclusive")

	// ErrUnknownAlgorithm indicates an algorithm other than "astar" or "any-angle".
	ErrUnknownAlgorithm = errors.New("job: unknown algorithm")

	// ErrBadMaxFrontier indicates a negative max_frontier.
	ErrBadMaxFrontier = errors.New("job: max_frontier must be non-negative")

	// ErrStartOutside indicates a start point outside the extent.
	ErrStartOutside = errors.New("job: starting point must be somewhere within the first raster image")

	// ErrEndOutside indicates an end point outside the extent.
	ErrEndOutside = errors.New("job: ending point must be somewhere within the first raster image")
)

// Layer is a loaded raster with the name it was declared under.
type Layer struct {
	Name string
	Path string
	*raster.Layer
}

// Job is a fully loaded and validated routing job.
type Job struct {
	// Filename is the job file, as passed to Load.
	Filename string
	// Layers in declaration order; Layers[i] is bound to val<i+1>.
	Layers []Layer
	// Grid holds every layer's samples.
	Grid *grid.Grid
	// Extent is the map rectangle covered by the first layer.
	Extent geo.Extent

	Start, End         geo.Point
	StartCell, EndCell grid.Position

	Variant astar.Variant
	// MaxFrontier overrides the variant's default bound when non-nil.
	MaxFrontier *int

	Traversal gridpolicy.TraversalConfig
	Cost      gridpolicy.CostConfig

	// Output is the resolved output path, empty when the job names none.
	Output string
}

// Outcome is the result of Run.
type Outcome struct {
	Result *astar.Result
	// Points are the waypoints of Result.Path in map coordinates.
	Points []geo.Point
	// Feature is the route as a GeoJSON LineString.
	Feature geo.Feature
	// Policy describes the resolved traversability and cost rules.
	Policy string
}
