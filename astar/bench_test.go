package astar_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rasterpath/astar"
	"github.com/katalvlaran/rasterpath/gridpolicy"
	"github.com/katalvlaran/rasterpath/synth"
)

func mazePolicy(b *testing.B, size int, braiding float64, cost string) (*gridpolicy.Policy, *synth.Maze) {
	b.Helper()
	m, err := synth.Generate(synth.Config{Width: size, Height: size, Braiding: braiding, MaxCost: 5, Seed: 1})
	require.NoError(b, err)
	g, err := m.Grid()
	require.NoError(b, err)
	cc := gridpolicy.CostConfig{Layer: gridpolicy.Int(1)}
	if cost != "" {
		cc = gridpolicy.CostConfig{Formula: cost}
	}
	p, err := gridpolicy.Resolve(g, gridpolicy.TraversalConfig{Layer: gridpolicy.Int(0), Min: gridpolicy.Float(1)}, cc)
	require.NoError(b, err)
	return p, m
}

func benchSearch(b *testing.B, p *gridpolicy.Policy, m *synth.Maze, opts ...astar.Option) {
	ctx := context.Background()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := astar.Search(ctx, p, m.Start, m.End, opts...); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSearch_OpenGrid crosses an empty 512×512 grid corner to corner.
func BenchmarkSearch_OpenGrid(b *testing.B) {
	p := openPolicy(b, 512, 512)
	start, goal := p.Grid().Coordinate(0), p.Grid().Coordinate(512*512-1)
	ctx := context.Background()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := astar.FindPath(ctx, p, start, goal); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSearch_Maze solves a braided 255×255 maze with a cost layer.
func BenchmarkSearch_Maze(b *testing.B) {
	p, m := mazePolicy(b, 255, 0.2, "")
	benchSearch(b, p, m)
}

// BenchmarkSearch_MazeAnyAngle is the same maze with the Euclidean heuristic.
func BenchmarkSearch_MazeAnyAngle(b *testing.B) {
	p, m := mazePolicy(b, 255, 0.2, "")
	benchSearch(b, p, m, astar.WithVariant(astar.VariantAnyAngle), astar.WithMaxFrontier(0))
}

// BenchmarkSearch_MazeFormula evaluates the cost formula on every relaxation.
func BenchmarkSearch_MazeFormula(b *testing.B) {
	p, m := mazePolicy(b, 255, 0.2, "1 + val2 / 2")
	benchSearch(b, p, m)
}
