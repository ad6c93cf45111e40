package astar

// Direction is the one-byte parent code stored per cell: the move that
// entered the cell. y grows downward, as in raster rows.
type Direction uint8

const (
	None  Direction = iota // start cell or not reached
	Down                   // (0, 1)
	Right                  // (1, 0)
	Up                     // (0, -1)
	Left                   // (-1, 0)
)

// neighbors is the fixed expansion order.
var neighbors = [4]Direction{Down, Right, Up, Left}

var deltas = [...][2]int{
	None:  {0, 0},
	Down:  {0, 1},
	Right: {1, 0},
	Up:    {0, -1},
	Left:  {-1, 0},
}

// Delta returns the coordinate change of the move. None and unknown codes
// return (0, 0).
func (d Direction) Delta() (dx, dy int) {
	if int(d) >= len(deltas) {
		return 0, 0
	}
	return deltas[d][0], deltas[d][1]
}

// Valid reports whether d is one of the four moves.
func (d Direction) Valid() bool {
	return d >= Down && d <= Left
}

func (d Direction) String() string {
	switch d {
	case None:
		return "none"
	case Down:
		return "down"
	case Right:
		return "right"
	case Up:
		return "up"
	case Left:
		return "left"
	}
	return "invalid"
}
