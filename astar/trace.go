package astar

import (
	"context"
	"fmt"

	"github.com/katalvlaran/rasterpath/grid"
)

// Trace rebuilds the waypoints of a route from per-cell direction codes.
//
// cameFrom is row-major with the given width; each entry holds the Direction
// that entered the cell, and start holds 0. The walk begins at goal, steps
// against each recorded move, and emits a cell when it is an endpoint or
// when the incoming and outgoing moves differ. The result is ordered goal to
// start.
//
// Returns ErrCancelled (wrapping ctx.Err()) if ctx is done during the walk,
// and ErrBrokenTrail if the codes leave the grid, reach a cell with code 0
// other than start, or loop.
// Complexity: O(route length) time, O(waypoints) memory.
func Trace(ctx context.Context, cameFrom []uint8, width int, start, goal grid.Position) ([]grid.Position, error) {
	if width <= 0 || len(cameFrom)%width != 0 {
		return nil, fmt.Errorf("%w: %d codes for width %d", ErrBrokenTrail, len(cameFrom), width)
	}
	height := len(cameFrom) / width

	var (
		path    []grid.Position
		cur     = goal
		last    grid.Position
		hasLast bool
	)
	for steps := 0; ; steps++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCancelled, err)
		}
		if !inside(cur, width, height) || steps > len(cameFrom) {
			return nil, fmt.Errorf("%w: walked to %v", ErrBrokenTrail, cur)
		}

		// 1) Decode the move that entered cur.
		code := Direction(cameFrom[cur.Y*width+cur.X])
		var (
			next    grid.Position
			hasNext bool
		)
		if code != None {
			if !code.Valid() {
				return nil, fmt.Errorf("%w: code %d at %v", ErrBrokenTrail, code, cur)
			}
			dx, dy := code.Delta()
			next, hasNext = cur.Add(-dx, -dy), true
		}

		// 2) Keep endpoints and turns.
		if !hasLast || !hasNext || cur == start ||
			next.X-cur.X != cur.X-last.X || next.Y-cur.Y != cur.Y-last.Y {
			path = append(path, cur)
		}

		// 3) Advance.
		if cur == start {
			return path, nil
		}
		if !hasNext {
			return nil, fmt.Errorf("%w: no parent at %v", ErrBrokenTrail, cur)
		}
		last, hasLast = cur, true
		cur = next
	}
}
