package astar_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rasterpath/grid"
	"github.com/katalvlaran/rasterpath/gridpolicy"
)

// mapPolicy builds a policy from a text map: '#' is a wall, a digit is the
// cost of entering the cell, '.' costs 1.
func mapPolicy(t testing.TB, rows ...string) *gridpolicy.Policy {
	t.Helper()
	open := make([][]float64, len(rows))
	cost := make([][]float64, len(rows))
	for y, row := range rows {
		open[y] = make([]float64, len(row))
		cost[y] = make([]float64, len(row))
		for x, c := range row {
			switch {
			case c == '#':
				cost[y][x] = 1
			case c >= '0' && c <= '9':
				open[y][x], cost[y][x] = 1, float64(c-'0')
			default:
				open[y][x], cost[y][x] = 1, 1
			}
		}
	}
	g, err := grid.FromRows(open, cost)
	require.NoError(t, err)
	p, err := gridpolicy.Resolve(g,
		gridpolicy.TraversalConfig{Layer: gridpolicy.Int(0), Min: gridpolicy.Float(1)},
		gridpolicy.CostConfig{Layer: gridpolicy.Int(1)})
	require.NoError(t, err)
	return p
}

// openPolicy is a w×h grid where every cell is open and costs 1.
func openPolicy(t testing.TB, w, h int) *gridpolicy.Policy {
	t.Helper()
	g, err := grid.New(w, h)
	require.NoError(t, err)
	p, err := gridpolicy.Resolve(g, gridpolicy.TraversalConfig{}, gridpolicy.CostConfig{})
	require.NoError(t, err)
	return p
}

// cells expands waypoints into every visited cell, asserting that each
// segment is axis-aligned.
func cells(t *testing.T, path []grid.Position) []grid.Position {
	t.Helper()
	require.NotEmpty(t, path)
	out := []grid.Position{path[0]}
	for i := 1; i < len(path); i++ {
		a, b := path[i-1], path[i]
		require.True(t, a.X == b.X || a.Y == b.Y, "segment %v-%v is not axis-aligned", a, b)
		require.NotEqual(t, a, b)
		dx, dy := sign(b.X-a.X), sign(b.Y-a.Y)
		for p := a; p != b; {
			p = p.Add(dx, dy)
			out = append(out, p)
		}
	}
	return out
}

// routeCost sums the entry cost of every cell after the first.
func routeCost(t *testing.T, s *gridpolicy.Policy, path []grid.Position) float64 {
	t.Helper()
	var total float64
	for _, p := range cells(t, path)[1:] {
		c, err := s.Cost(p)
		require.NoError(t, err)
		total += c
	}
	return total
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// countingSurface records calls made by the search.
type countingSurface struct {
	*gridpolicy.Policy
	traversable, cost int
}

func (c *countingSurface) Traversable(p grid.Position) (bool, error) {
	c.traversable++
	return c.Policy.Traversable(p)
}

func (c *countingSurface) Cost(p grid.Position) (float64, error) {
	c.cost++
	return c.Policy.Cost(p)
}
