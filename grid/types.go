package grid

import "fmt"

// MaxLayers is the number of sample layers a grid can carry (val1..val3).
const MaxLayers = 3

// Position addresses a single cell. It is a value type with no identity
// beyond its coordinates.
type Position struct {
	X, Y int
}

// String formats the position as "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns p shifted by (dx, dy).
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Grid is an immutable Width×Height view over 0..MaxLayers sample layers.
// layers[i][y*width+x] holds the i-th sample of cell (x, y).
type Grid struct {
	width, height int
	layers        [][]float64
}
