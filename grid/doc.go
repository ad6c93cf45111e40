// Package grid models a raster surface as an immutable rectangular grid of
// cells addressed by integer (x, y) positions.
//
// What:
//
//   - Grid holds Width×Height cells and up to MaxLayers numeric sample layers.
//   - Every layer is stored row-major: the sample of cell (x, y) lives at y*Width + x.
//   - Position is a plain value type; two positions are equal when their
//     coordinates are equal.
//
// Why:
//
//   - Search code needs O(1) bounds checks and index arithmetic without
//     allocating per cell.
//   - Flat []float64 layers keep large rasters cache friendly and cheap to share
//     between concurrent searches (the grid is never mutated after construction).
//
// Complexity:
//
//   - New, FromRows:   O(W×H×L) time and memory (input is deep-copied).
//   - InBounds, Index, Coordinate, Value: O(1).
//
// Errors:
//
//   - ErrEmptyGrid:      width or height is zero.
//   - ErrNonRectangular: rows of a 2D layer have differing lengths.
//   - ErrLayerShape:     a layer's length does not match Width×Height.
//   - ErrTooManyLayers:  more than MaxLayers layers were supplied.
//   - ErrLayerIndex:     a requested layer index does not exist.
package grid
