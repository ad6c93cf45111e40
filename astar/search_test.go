package astar_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rasterpath/astar"
	"github.com/katalvlaran/rasterpath/formula"
	"github.com/katalvlaran/rasterpath/grid"
	"github.com/katalvlaran/rasterpath/gridpolicy"
	"github.com/katalvlaran/rasterpath/internal/ctxlog"
)

var variants = []astar.Variant{astar.VariantGrid, astar.VariantAnyAngle}

//----------------------------------------------------------------------------//
// Validation
//----------------------------------------------------------------------------//

// TestSearch_Validation rejects bad endpoints before any expansion.
func TestSearch_Validation(t *testing.T) {
	cases := []struct {
		name        string
		start, goal grid.Position
		err         error
	}{
		{"StartOutside", grid.Position{X: -1, Y: 0}, grid.Position{X: 1, Y: 1}, astar.ErrStartOutOfBounds},
		{"GoalOutside", grid.Position{X: 0, Y: 0}, grid.Position{X: 4, Y: 0}, astar.ErrGoalOutOfBounds},
		{"StartBlocked", grid.Position{X: 1, Y: 0}, grid.Position{X: 0, Y: 2}, astar.ErrStartBlocked},
		{"GoalBlocked", grid.Position{X: 0, Y: 0}, grid.Position{X: 1, Y: 1}, astar.ErrGoalBlocked},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := &countingSurface{Policy: mapPolicy(t,
				".#..",
				".#..",
				"....",
			)}
			_, err := astar.Search(context.Background(), s, tc.start, tc.goal)
			require.ErrorIs(t, err, tc.err)
			require.True(t, astar.IsDomainError(err))
			require.Zero(t, s.cost, "no cell may be costed before expansion")
			require.LessOrEqual(t, s.traversable, 2)
		})
	}
}

// TestSearch_NilSurface is not a domain error.
func TestSearch_NilSurface(t *testing.T) {
	_, err := astar.Search(context.Background(), nil, grid.Position{}, grid.Position{})
	require.ErrorIs(t, err, astar.ErrNilSurface)
	require.False(t, astar.IsDomainError(err))
}

//----------------------------------------------------------------------------//
// Routes
//----------------------------------------------------------------------------//

// TestSearch_OpenGridManhattan: unit cost, cost equals Manhattan distance.
func TestSearch_OpenGridManhattan(t *testing.T) {
	s := openPolicy(t, 12, 9)
	start, goal := grid.Position{X: 1, Y: 7}, grid.Position{X: 10, Y: 2}
	for _, v := range variants {
		t.Run(v.String(), func(t *testing.T) {
			res, err := astar.Search(context.Background(), s, start, goal, astar.WithVariant(v))
			require.NoError(t, err)
			require.Equal(t, 14.0, res.Cost)
			require.Equal(t, start, res.Path[0])
			require.Equal(t, goal, res.Path[len(res.Path)-1])
			require.Equal(t, res.Cost, routeCost(t, s, res.Path))
			require.Empty(t, res.Warnings)
		})
	}
}

// TestSearch_AxisAligned collapses a straight route into two waypoints.
func TestSearch_AxisAligned(t *testing.T) {
	s := openPolicy(t, 10, 5)
	for _, v := range variants {
		t.Run(v.String(), func(t *testing.T) {
			res, err := astar.Search(context.Background(), s,
				grid.Position{X: 0, Y: 2}, grid.Position{X: 9, Y: 2}, astar.WithVariant(v))
			require.NoError(t, err)
			require.Equal(t, []grid.Position{{X: 0, Y: 2}, {X: 9, Y: 2}}, res.Path)
			require.Equal(t, 9.0, res.Cost)

			res, err = astar.Search(context.Background(), s,
				grid.Position{X: 4, Y: 4}, grid.Position{X: 4, Y: 0}, astar.WithVariant(v))
			require.NoError(t, err)
			require.Equal(t, []grid.Position{{X: 4, Y: 4}, {X: 4, Y: 0}}, res.Path)
		})
	}
}

// TestSearch_Deterministic pins the route chosen among equal-cost options:
// the fixed neighbour order and X-then-Y frontier ties go down first.
func TestSearch_Deterministic(t *testing.T) {
	s := openPolicy(t, 3, 3)
	want := []grid.Position{{X: 0, Y: 0}, {X: 0, Y: 2}, {X: 2, Y: 2}}
	for i := 0; i < 3; i++ {
		res, err := astar.FindPath(context.Background(), s, grid.Position{X: 0, Y: 0}, grid.Position{X: 2, Y: 2})
		require.NoError(t, err)
		require.Equal(t, want, res.Path)
		require.Equal(t, 4.0, res.Cost)
	}
}

// TestSearch_SameCell returns the single-point path.
func TestSearch_SameCell(t *testing.T) {
	s := openPolicy(t, 4, 4)
	p := grid.Position{X: 2, Y: 3}
	for _, v := range variants {
		var progress []float64
		res, err := astar.Search(context.Background(), s, p, p,
			astar.WithVariant(v), astar.WithProgress(func(f float64) { progress = append(progress, f) }))
		require.NoError(t, err)
		require.Equal(t, []grid.Position{p}, res.Path)
		require.Zero(t, res.Cost)
		require.Equal(t, []float64{1}, progress)
	}
}

// TestSearch_Detour prefers a long cheap route over a short expensive one.
func TestSearch_Detour(t *testing.T) {
	s := mapPolicy(t,
		"..9..",
		"..9..",
		".....",
	)
	for _, v := range variants {
		t.Run(v.String(), func(t *testing.T) {
			res, err := astar.Search(context.Background(), s,
				grid.Position{X: 0, Y: 0}, grid.Position{X: 4, Y: 0}, astar.WithVariant(v))
			require.NoError(t, err)
			require.Equal(t, 8.0, res.Cost)
			require.Equal(t, res.Cost, routeCost(t, s, res.Path))
			require.Contains(t, cells(t, res.Path), grid.Position{X: 2, Y: 2})
		})
	}
}

// TestSearch_Maze routes through a winding corridor.
func TestSearch_Maze(t *testing.T) {
	s := mapPolicy(t,
		".#...",
		".#.#.",
		".#.#.",
		"...#.",
	)
	res, err := astar.FindPath(context.Background(), s, grid.Position{X: 0, Y: 0}, grid.Position{X: 4, Y: 3})
	require.NoError(t, err)
	require.Equal(t, []grid.Position{
		{X: 0, Y: 0}, {X: 0, Y: 3}, {X: 2, Y: 3}, {X: 2, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 3},
	}, res.Path)
	require.Equal(t, 13.0, res.Cost)
}

// TestSearch_NoPath fails once the frontier empties.
func TestSearch_NoPath(t *testing.T) {
	s := mapPolicy(t,
		".....",
		"..#..",
		".#.#.",
		"..#..",
	)
	for _, v := range variants {
		_, err := astar.Search(context.Background(), s,
			grid.Position{X: 0, Y: 0}, grid.Position{X: 2, Y: 2}, astar.WithVariant(v))
		require.ErrorIs(t, err, astar.ErrNoPath)
		require.True(t, astar.IsDomainError(err))
	}
}

//----------------------------------------------------------------------------//
// Options and side channels
//----------------------------------------------------------------------------//

// TestSearch_FrontierBound applies to either variant when set.
func TestSearch_FrontierBound(t *testing.T) {
	s := mapPolicy(t,
		"9999999999",
		"9999999999",
		"9999999999",
		"9999999999",
		"9999999999",
		"9999999999",
		"9999999999",
		"9999999999",
	)
	start, goal := grid.Position{X: 4, Y: 4}, grid.Position{X: 9, Y: 7}
	for _, v := range variants {
		t.Run(v.String(), func(t *testing.T) {
			_, err := astar.Search(context.Background(), s, start, goal,
				astar.WithVariant(v), astar.WithMaxFrontier(3))
			require.ErrorIs(t, err, astar.ErrFrontierExceeded)
			require.True(t, astar.IsDomainError(err))

			res, err := astar.Search(context.Background(), s, start, goal,
				astar.WithVariant(v), astar.WithMaxFrontier(0))
			require.NoError(t, err)
			require.Equal(t, 72.0, res.Cost)
		})
	}
	require.Panics(t, func() { astar.WithMaxFrontier(-1) })
}

// TestSearch_CancelledBeforeStart fails immediately without touching costs.
func TestSearch_CancelledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := &countingSurface{Policy: openPolicy(t, 5, 5)}
	called := false
	_, err := astar.Search(ctx, s, grid.Position{}, grid.Position{X: 4, Y: 4},
		astar.WithProgress(func(float64) { called = true }))
	require.ErrorIs(t, err, astar.ErrCancelled)
	require.ErrorIs(t, err, context.Canceled)
	require.False(t, astar.IsDomainError(err))
	require.False(t, called)
	require.Zero(t, s.cost)
}

// TestSearch_CancelledMidway stops from inside the progress callback.
func TestSearch_CancelledMidway(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	calls := 0
	_, err := astar.Search(ctx, openPolicy(t, 30, 30), grid.Position{}, grid.Position{X: 29, Y: 29},
		astar.WithProgress(func(float64) {
			calls++
			if calls == 10 {
				cancel()
			}
		}))
	require.ErrorIs(t, err, astar.ErrCancelled)
	require.Equal(t, 10, calls)
}

// TestSearch_Progress is non-decreasing and ends at 1.
func TestSearch_Progress(t *testing.T) {
	for _, v := range variants {
		var seen []float64
		_, err := astar.Search(context.Background(), openPolicy(t, 8, 8),
			grid.Position{X: 0, Y: 0}, grid.Position{X: 7, Y: 5},
			astar.WithVariant(v), astar.WithProgress(func(f float64) { seen = append(seen, f) }))
		require.NoError(t, err)
		require.NotEmpty(t, seen)
		require.Zero(t, seen[0])
		for i := 1; i < len(seen); i++ {
			require.GreaterOrEqual(t, seen[i], seen[i-1])
		}
		require.InDelta(t, 1.0, seen[len(seen)-1], 1e-12)
	}
}

// TestSearch_InadmissibleWarning warns once for costs below 1.
func TestSearch_InadmissibleWarning(t *testing.T) {
	g, err := grid.New(6, 6)
	require.NoError(t, err)
	p, err := gridpolicy.Resolve(g, gridpolicy.TraversalConfig{}, gridpolicy.CostConfig{Formula: "0.5"})
	require.NoError(t, err)

	var buf bytes.Buffer
	ctx := ctxlog.WithLogger(context.Background(), ctxlog.New("warn", "text", &buf))
	for _, v := range variants {
		buf.Reset()
		res, err := astar.Search(ctx, p, grid.Position{}, grid.Position{X: 5, Y: 5}, astar.WithVariant(v))
		require.NoError(t, err)
		require.GreaterOrEqual(t, res.Cost, 5.0)
		require.Equal(t, res.Cost, routeCost(t, p, res.Path))
		require.Len(t, res.Warnings, 1)
		require.Contains(t, res.Warnings[0], "less than 1")
		require.Equal(t, 1, strings.Count(buf.String(), "level=WARN"))
	}
}

// TestSearch_WithLoggerOverridesContext sends DEBUG records to the option logger.
func TestSearch_WithLoggerOverridesContext(t *testing.T) {
	var ctxBuf, optBuf bytes.Buffer
	ctx := ctxlog.WithLogger(context.Background(), ctxlog.New("debug", "text", &ctxBuf))
	_, err := astar.FindPath(ctx, openPolicy(t, 3, 3), grid.Position{}, grid.Position{X: 2, Y: 0},
		astar.WithLogger(ctxlog.New("debug", "json", &optBuf)))
	require.NoError(t, err)
	require.Empty(t, ctxBuf.String())
	require.Contains(t, optBuf.String(), `"msg":"astar: search finished"`)
}

// TestSearch_SurfaceErrors wraps formula failures raised during expansion.
func TestSearch_SurfaceErrors(t *testing.T) {
	g, err := grid.FromRows([][]float64{{1, 1, 0}, {1, 1, 1}})
	require.NoError(t, err)

	p, err := gridpolicy.Resolve(g, gridpolicy.TraversalConfig{}, gridpolicy.CostConfig{Formula: "1 / val1"})
	require.NoError(t, err)
	_, err = astar.FindPath(context.Background(), p, grid.Position{}, grid.Position{X: 2, Y: 1})
	require.ErrorIs(t, err, formula.ErrRuntime)
	require.ErrorIs(t, err, formula.ErrDivisionByZero)
	require.False(t, astar.IsDomainError(err))

	p, err = gridpolicy.Resolve(g, gridpolicy.TraversalConfig{Formula: "val9 > 0"}, gridpolicy.CostConfig{})
	require.NoError(t, err)
	_, err = astar.FindPath(context.Background(), p, grid.Position{}, grid.Position{X: 1, Y: 1})
	var se *formula.SyntaxError
	require.True(t, errors.As(err, &se))
	require.Equal(t, "Undefined variable: val9", se.Msg)
}

// TestParseVariant accepts the canonical names and aliases.
func TestParseVariant(t *testing.T) {
	for in, want := range map[string]astar.Variant{
		"astar": astar.VariantGrid, "grid": astar.VariantGrid,
		"any-angle": astar.VariantAnyAngle, "theta": astar.VariantAnyAngle,
	} {
		got, err := astar.ParseVariant(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err := astar.ParseVariant("dijkstra")
	require.Error(t, err)
}
