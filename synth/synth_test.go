package synth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rasterpath/astar"
	"github.com/katalvlaran/rasterpath/grid"
	"github.com/katalvlaran/rasterpath/gridpolicy"
	"github.com/katalvlaran/rasterpath/synth"
)

func policy(t testing.TB, m *synth.Maze) *gridpolicy.Policy {
	t.Helper()
	g, err := m.Grid()
	require.NoError(t, err)
	cc := gridpolicy.CostConfig{}
	if m.Cost != nil {
		cc.Layer = gridpolicy.Int(1)
	}
	p, err := gridpolicy.Resolve(g, gridpolicy.TraversalConfig{Layer: gridpolicy.Int(0), Min: gridpolicy.Float(1)}, cc)
	require.NoError(t, err)
	return p
}

// treeStats counts passages and adjacent passage pairs.
func treeStats(m *synth.Maze) (cells, edges int) {
	open := func(x, y int) bool {
		return x < m.Width && y < m.Height && m.Open[y*m.Width+x] == 1
	}
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if !open(x, y) {
				continue
			}
			cells++
			if open(x+1, y) {
				edges++
			}
			if open(x, y+1) {
				edges++
			}
		}
	}
	return cells, edges
}

func TestGenerate_Validation(t *testing.T) {
	_, err := synth.Generate(synth.Config{Width: 2, Height: 9})
	require.ErrorIs(t, err, synth.ErrTooSmall)
	_, err = synth.Generate(synth.Config{Width: 9, Height: 9, Braiding: 1.5})
	require.ErrorIs(t, err, synth.ErrBraiding)
	_, err = synth.Generate(synth.Config{Width: 9, Height: 9, Braiding: -0.1})
	require.ErrorIs(t, err, synth.ErrBraiding)
}

func TestGenerate_PerfectMazeIsATree(t *testing.T) {
	for _, size := range [][2]int{{3, 3}, {9, 7}, {21, 21}, {40, 25}} {
		m, err := synth.Generate(synth.Config{Width: size[0], Height: size[1], Seed: 7})
		require.NoError(t, err)
		require.Len(t, m.Open, size[0]*size[1])

		cells, edges := treeStats(m)
		require.Equal(t, cells-1, edges, "size %v", size)

		// Border stays closed.
		for x := 0; x < m.Width; x++ {
			require.Zero(t, m.Open[x])
			require.Zero(t, m.Open[(m.Height-1)*m.Width+x])
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	cfg := synth.Config{Width: 31, Height: 17, Braiding: 0.4, MaxCost: 5, Seed: 42}
	a, err := synth.Generate(cfg)
	require.NoError(t, err)
	b, err := synth.Generate(cfg)
	require.NoError(t, err)
	require.Equal(t, a, b)
	require.Equal(t, grid.Position{X: 1, Y: 1}, a.Start)
	require.Equal(t, grid.Position{X: 29, Y: 15}, a.End)
}

func TestGenerate_BraidingAddsLoops(t *testing.T) {
	perfect, err := synth.Generate(synth.Config{Width: 41, Height: 41, Seed: 3})
	require.NoError(t, err)
	braided, err := synth.Generate(synth.Config{Width: 41, Height: 41, Braiding: 1, Seed: 3})
	require.NoError(t, err)

	pc, pe := treeStats(perfect)
	bc, be := treeStats(braided)
	require.Greater(t, be-bc, pe-pc)

	// No 2×2 open squares.
	for y := 0; y+1 < braided.Height; y++ {
		for x := 0; x+1 < braided.Width; x++ {
			o := braided.Open
			w := braided.Width
			require.False(t, o[y*w+x] == 1 && o[y*w+x+1] == 1 && o[(y+1)*w+x] == 1 && o[(y+1)*w+x+1] == 1,
				"plaza at (%d,%d)", x, y)
		}
	}
}

func TestGenerate_Solvable(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		m, err := synth.Generate(synth.Config{Width: 25, Height: 15, Braiding: 0.3, MaxCost: 4, Seed: seed})
		require.NoError(t, err)

		res, err := astar.FindPath(context.Background(), policy(t, m), m.Start, m.End)
		require.NoError(t, err, "seed %d", seed)
		require.Equal(t, m.Start, res.Path[0])
		require.Equal(t, m.End, res.Path[len(res.Path)-1])
	}
}

func TestMaze_CostAndLayers(t *testing.T) {
	m, err := synth.Generate(synth.Config{Width: 11, Height: 11, MaxCost: 3, Seed: 9})
	require.NoError(t, err)
	require.Len(t, m.Cost, len(m.Open))
	for i, c := range m.Cost {
		if m.Open[i] == 0 {
			require.Equal(t, 1.0, c)
		} else {
			require.True(t, c >= 1 && c <= 3, "cost %g", c)
		}
	}
	layers := m.Layers()
	require.Len(t, layers, 2)
	g, err := m.Grid()
	require.NoError(t, err)
	require.Equal(t, 2, g.Layers())

	plain, err := synth.Generate(synth.Config{Width: 11, Height: 11, Seed: 9})
	require.NoError(t, err)
	require.Nil(t, plain.Cost)
	require.Len(t, plain.Layers(), 1)
}

func TestMaze_String(t *testing.T) {
	m, err := synth.Generate(synth.Config{Width: 3, Height: 3, Seed: 1})
	require.NoError(t, err)
	require.Equal(t, "###\n#.#\n###\n", m.String())
}
