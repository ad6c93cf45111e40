package geo

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/rasterpath/grid"
)

// ErrDegenerateExtent indicates an extent with zero or negative width or height.
var ErrDegenerateExtent = errors.New("geo: extent has no area")

// Point is a location in map coordinates.
type Point struct {
	X, Y float64
}

// Extent is an axis-aligned map rectangle.
type Extent struct {
	XMin, YMin, XMax, YMax float64
}

// PixelExtent is the extent whose map units are cells: (0,0)-(w,h).
func PixelExtent(w, h int) Extent {
	return Extent{XMax: float64(w), YMax: float64(h)}
}

// Width returns XMax - XMin.
func (e Extent) Width() float64 { return e.XMax - e.XMin }

// Height returns YMax - YMin.
func (e Extent) Height() float64 { return e.YMax - e.YMin }

// Validate returns ErrDegenerateExtent unless both sides are positive and finite.
func (e Extent) Validate() error {
	w, h := e.Width(), e.Height()
	if !(w > 0) || !(h > 0) || math.IsInf(w, 0) || math.IsInf(h, 0) {
		return fmt.Errorf("%w: %v", ErrDegenerateExtent, e)
	}
	return nil
}

// Contains reports whether p lies inside e, edges included.
func (e Extent) Contains(p Point) bool {
	return p.X >= e.XMin && p.X <= e.XMax && p.Y >= e.YMin && p.Y <= e.YMax
}

// String formats the extent as "xmin,ymin : xmax,ymax".
func (e Extent) String() string {
	return fmt.Sprintf("%g,%g : %g,%g", e.XMin, e.YMin, e.XMax, e.YMax)
}

// PointToPixel maps p to the cell of a w×h raster covering e. Points on the
// XMax or YMin edge round outward, so the result is clamped into the raster.
func PointToPixel(p Point, e Extent, w, h int) grid.Position {
	col := math.RoundToEven((p.X-e.XMin)/e.Width()*float64(w) - 0.5)
	row := float64(h-1) - math.RoundToEven((p.Y-e.YMin)/e.Height()*float64(h)-0.5)

	return grid.Position{X: clamp(int(col), w), Y: clamp(int(row), h)}
}

// PixelToPoint returns the map coordinates of the centre of cell pos.
func PixelToPoint(pos grid.Position, e Extent, w, h int) Point {
	return Point{
		X: (float64(pos.X)+0.5)/float64(w)*e.Width() + e.XMin,
		Y: (float64(h-1-pos.Y)+0.5)/float64(h)*e.Height() + e.YMin,
	}
}

// PixelsToPoints converts every position of a path.
func PixelsToPoints(path []grid.Position, e Extent, w, h int) []Point {
	out := make([]Point, len(path))
	for i, p := range path {
		out[i] = PixelToPoint(p, e, w, h)
	}
	return out
}

func clamp(v, n int) int {
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}
