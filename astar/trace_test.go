package astar_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rasterpath/astar"
	"github.com/katalvlaran/rasterpath/grid"
)

// trail builds a cameFrom array by walking moves from start.
func trail(width, height int, start grid.Position, moves ...astar.Direction) ([]uint8, grid.Position) {
	codes := make([]uint8, width*height)
	cur := start
	for _, d := range moves {
		dx, dy := d.Delta()
		cur = cur.Add(dx, dy)
		codes[cur.Y*width+cur.X] = uint8(d)
	}
	return codes, cur
}

// TestTrace_Collapse keeps endpoints and turns only.
func TestTrace_Collapse(t *testing.T) {
	R, D, U := astar.Right, astar.Down, astar.Up
	start := grid.Position{X: 0, Y: 0}
	cases := []struct {
		name  string
		moves []astar.Direction
		want  []grid.Position
	}{
		{"Single", nil, []grid.Position{{X: 0, Y: 0}}},
		{"Straight", []astar.Direction{R, R, R, R}, []grid.Position{{X: 4, Y: 0}, {X: 0, Y: 0}}},
		{"Staircase", []astar.Direction{R, R, D, D, R, R}, []grid.Position{
			{X: 4, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: 0}, {X: 0, Y: 0},
		}},
		{"UnitStairs", []astar.Direction{R, D, R, D}, []grid.Position{
			{X: 2, Y: 2}, {X: 2, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 0},
		}},
		{"Hook", []astar.Direction{D, D, R, R, U}, []grid.Position{
			{X: 2, Y: 1}, {X: 2, Y: 2}, {X: 0, Y: 2}, {X: 0, Y: 0},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			codes, goal := trail(5, 3, start, tc.moves...)
			got, err := astar.Trace(context.Background(), codes, 5, start, goal)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

// TestTrace_Broken rejects trails that cannot reach the start.
func TestTrace_Broken(t *testing.T) {
	start := grid.Position{X: 0, Y: 0}

	// Zero code before the start.
	codes := make([]uint8, 6)
	_, err := astar.Trace(context.Background(), codes, 3, start, grid.Position{X: 2, Y: 1})
	require.ErrorIs(t, err, astar.ErrBrokenTrail)

	// Unknown code.
	codes[5] = 9
	_, err = astar.Trace(context.Background(), codes, 3, start, grid.Position{X: 2, Y: 1})
	require.ErrorIs(t, err, astar.ErrBrokenTrail)

	// Trail leaving the grid: (0,1) entered by Right means it came from (-1,1).
	codes = make([]uint8, 6)
	codes[3] = uint8(astar.Right)
	_, err = astar.Trace(context.Background(), codes, 3, start, grid.Position{X: 0, Y: 1})
	require.ErrorIs(t, err, astar.ErrBrokenTrail)

	// Two cells pointing at each other.
	codes = make([]uint8, 6)
	codes[3] = uint8(astar.Left)  // (0,1) came from (1,1)
	codes[4] = uint8(astar.Right) // (1,1) came from (0,1)
	_, err = astar.Trace(context.Background(), codes, 3, start, grid.Position{X: 0, Y: 1})
	require.ErrorIs(t, err, astar.ErrBrokenTrail)

	// Bad width.
	_, err = astar.Trace(context.Background(), codes, 4, start, start)
	require.ErrorIs(t, err, astar.ErrBrokenTrail)
}

// TestTrace_Cancelled polls the context on every step.
func TestTrace_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	codes, goal := trail(4, 1, grid.Position{}, astar.Right, astar.Right)
	_, err := astar.Trace(ctx, codes, 4, grid.Position{}, goal)
	require.ErrorIs(t, err, astar.ErrCancelled)
	require.ErrorIs(t, err, context.Canceled)
}

// TestDirection_Delta covers the fixed code table.
func TestDirection_Delta(t *testing.T) {
	cases := []struct {
		d      astar.Direction
		dx, dy int
	}{
		{astar.None, 0, 0},
		{astar.Down, 0, 1},
		{astar.Right, 1, 0},
		{astar.Up, 0, -1},
		{astar.Left, -1, 0},
		{astar.Direction(200), 0, 0},
	}
	for _, tc := range cases {
		dx, dy := tc.d.Delta()
		require.Equal(t, tc.dx, dx, tc.d.String())
		require.Equal(t, tc.dy, dy, tc.d.String())
	}
	require.Equal(t, uint8(1), uint8(astar.Down))
	require.Equal(t, uint8(4), uint8(astar.Left))
	require.False(t, astar.None.Valid())
	require.True(t, astar.Up.Valid())
}
