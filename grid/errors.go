package grid

import "errors"

var (
	// ErrEmptyGrid indicates the grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrLayerShape indicates a layer whose sample count differs from Width×Height.
	ErrLayerShape = errors.New("grid: layer size does not match grid dimensions")
	// ErrTooManyLayers indicates more than MaxLayers sample layers.
	ErrTooManyLayers = errors.New("grid: too many sample layers")
	// ErrLayerIndex indicates a layer index outside [0, Layers()).
	ErrLayerIndex = errors.New("grid: layer index out of range")
)
