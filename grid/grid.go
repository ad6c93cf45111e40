package grid

import "fmt"

// New constructs a Grid from flat row-major layers. Each layer must hold
// exactly width*height samples. Layers are deep-copied so later changes to the
// caller's slices are not observed.
//
// Returns ErrEmptyGrid if width or height is not positive, ErrTooManyLayers if
// more than MaxLayers layers are given, and ErrLayerShape (wrapped with the
// offending layer index) when a layer has the wrong length.
// Complexity: O(W×H×L) time and memory.
func New(width, height int, layers ...[]float64) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	if len(layers) > MaxLayers {
		return nil, fmt.Errorf("%w: got %d, max %d", ErrTooManyLayers, len(layers), MaxLayers)
	}
	n := width * height
	copied := make([][]float64, len(layers))
	for i, l := range layers {
		if len(l) != n {
			return nil, fmt.Errorf("%w: layer %d has %d samples, want %d", ErrLayerShape, i, len(l), n)
		}
		copied[i] = make([]float64, n)
		copy(copied[i], l)
	}

	return &Grid{width: width, height: height, layers: copied}, nil
}

// FromRows constructs a Grid from 2D layers indexed [y][x]. All layers must
// share the same non-empty rectangular shape.
// Complexity: O(W×H×L).
func FromRows(layers ...[][]float64) (*Grid, error) {
	if len(layers) == 0 {
		return nil, ErrEmptyGrid
	}
	if len(layers[0]) == 0 || len(layers[0][0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(layers[0]), len(layers[0][0])
	flat := make([][]float64, len(layers))
	for i, rows := range layers {
		if len(rows) != h {
			return nil, fmt.Errorf("%w: layer %d has %d rows, want %d", ErrLayerShape, i, len(rows), h)
		}
		flat[i] = make([]float64, 0, w*h)
		for _, row := range rows {
			if len(row) != w {
				return nil, ErrNonRectangular
			}
			flat[i] = append(flat[i], row...)
		}
	}

	return New(w, h, flat...)
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Layers returns the number of sample layers.
func (g *Grid) Layers() int {
	return len(g.layers)
}

// Size returns Width×Height.
func (g *Grid) Size() int {
	return g.width * g.height
}

// InBounds reports whether p lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// Index maps p to its row-major index y*Width + x. p must be in bounds.
// Complexity: O(1).
func (g *Grid) Index(p Position) int {
	return p.Y*g.width + p.X
}

// Coordinate converts a row-major index back to a Position.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Position {
	return Position{X: idx % g.width, Y: idx / g.width}
}

// Value returns the sample of layer at p. Both the layer and p must be valid;
// use Layer or InBounds first when they come from user input.
func (g *Grid) Value(layer int, p Position) float64 {
	return g.layers[layer][p.Y*g.width+p.X]
}

// Layer returns the row-major samples of layer i. The returned slice is
// shared with the grid and must be treated as read-only.
func (g *Grid) Layer(i int) ([]float64, error) {
	if i < 0 || i >= len(g.layers) {
		return nil, fmt.Errorf("%w: %d (grid has %d)", ErrLayerIndex, i, len(g.layers))
	}
	return g.layers[i], nil
}

// Samples copies the values of every layer at p into dst and returns the
// number of layers written. dst must have room for MaxLayers values.
func (g *Grid) Samples(p Position, dst *[MaxLayers]float64) int {
	idx := p.Y*g.width + p.X
	for i, l := range g.layers {
		dst[i] = l[idx]
	}
	return len(g.layers)
}
