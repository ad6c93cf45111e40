package astar_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/rasterpath/astar"
	"github.com/katalvlaran/rasterpath/grid"
	"github.com/katalvlaran/rasterpath/gridpolicy"
)

// ExampleFindPath routes around walls (0) on a mask layer and prints the
// collapsed waypoints.
func ExampleFindPath() {
	g, _ := grid.FromRows([][]float64{
		{1, 0, 1, 1},
		{1, 0, 1, 0},
		{1, 1, 1, 1},
	})
	policy, _ := gridpolicy.Resolve(g,
		gridpolicy.TraversalConfig{Layer: gridpolicy.Int(0), Min: gridpolicy.Float(1)},
		gridpolicy.CostConfig{})

	res, err := astar.FindPath(context.Background(), policy, grid.Position{X: 0, Y: 0}, grid.Position{X: 3, Y: 0})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Path, res.Cost)
	// Output: [(0,0) (0,2) (2,2) (2,0) (3,0)] 7
}

// ExampleFindPathAnyAngle shows a formula-driven cost surface.
func ExampleFindPathAnyAngle() {
	g, _ := grid.FromRows([][]float64{
		{1, 1, 1, 1, 1},
		{1, 5, 5, 5, 1},
		{1, 1, 1, 1, 1},
	})
	policy, _ := gridpolicy.Resolve(g,
		gridpolicy.TraversalConfig{Formula: "val1 < 5"},
		gridpolicy.CostConfig{Formula: "val1 * 2"})

	res, err := astar.FindPathAnyAngle(context.Background(), policy, grid.Position{X: 0, Y: 1}, grid.Position{X: 4, Y: 1})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(len(res.Path), res.Cost)
	// Output: 4 12
}
