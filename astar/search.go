package astar

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/rasterpath/frontier"
	"github.com/katalvlaran/rasterpath/grid"
	"github.com/katalvlaran/rasterpath/internal/ctxlog"
)

// inadmissibleWarning is recorded the first time a cell costs less than 1.
const inadmissibleWarning = "custom cost is less than 1, path may not be optimal"

// FindPath runs the 4-connected search with the Manhattan heuristic.
func FindPath(ctx context.Context, s Surface, start, goal grid.Position, opts ...Option) (*Result, error) {
	return Search(ctx, s, start, goal, append([]Option{WithVariant(VariantGrid)}, opts...)...)
}

// FindPathAnyAngle runs the search with the Euclidean heuristic and, unless
// overridden, the DefaultMaxFrontier bound.
func FindPathAnyAngle(ctx context.Context, s Surface, start, goal grid.Position, opts ...Option) (*Result, error) {
	return Search(ctx, s, start, goal, append([]Option{WithVariant(VariantAnyAngle)}, opts...)...)
}

// Search finds a least-cost route from start to goal on s.
//
// Validation order:
//  1. s must be non-nil (ErrNilSurface).
//  2. start, then goal, must be in bounds (ErrStartOutOfBounds, ErrGoalOutOfBounds).
//  3. start, then goal, must be traversable (ErrStartBlocked, ErrGoalBlocked).
//
// On success the returned path runs from start to goal. No partial result is
// ever returned with an error.
func Search(ctx context.Context, s Surface, start, goal grid.Position, opts ...Option) (*Result, error) {
	// 1) Build options; the any-angle bound applies only when not set explicitly.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.maxFrontierSet && cfg.Variant == VariantAnyAngle {
		cfg.MaxFrontier = DefaultMaxFrontier
	}
	if cfg.Logger == nil {
		cfg.Logger = ctxlog.FromContext(ctx)
	}

	// 2) Validate inputs.
	if s == nil {
		return nil, ErrNilSurface
	}
	w, h := s.Width(), s.Height()
	if !inside(start, w, h) {
		return nil, fmt.Errorf("%w: %v in %dx%d", ErrStartOutOfBounds, start, w, h)
	}
	if !inside(goal, w, h) {
		return nil, fmt.Errorf("%w: %v in %dx%d", ErrGoalOutOfBounds, goal, w, h)
	}
	if err := requireTraversable(s, start, ErrStartBlocked); err != nil {
		return nil, err
	}
	if err := requireTraversable(s, goal, ErrGoalBlocked); err != nil {
		return nil, err
	}

	// 3) Allocate per-call state.
	n := w * h
	r := &runner{
		s:        s,
		options:  cfg,
		width:    w,
		height:   h,
		start:    start,
		goal:     goal,
		bestCost: make([]float64, n),
		cameFrom: make([]uint8, n),
		pq:       frontier.New(64),
	}
	r.heuristic = manhattan
	if cfg.Variant == VariantAnyAngle {
		r.heuristic = euclidean
	}

	cfg.Logger.Debug("astar: search started",
		"variant", cfg.Variant.String(), "start", start.String(), "goal", goal.String(),
		"width", w, "height", h, "max_frontier", cfg.MaxFrontier)

	// 4) Expand until the goal is popped.
	r.init()
	if err := r.process(ctx); err != nil {
		cfg.Logger.Debug("astar: search failed", "err", err, "expanded", r.expanded)
		return nil, err
	}

	// 5) Reconstruct goal→start and reverse.
	path, err := Trace(ctx, r.cameFrom, w, start, goal)
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	res := &Result{
		Path:     path,
		Cost:     r.bestCost[r.index(goal)],
		Expanded: r.expanded,
		Warnings: r.warnings,
	}
	cfg.Logger.Debug("astar: search finished",
		"cost", res.Cost, "expanded", res.Expanded, "waypoints", len(res.Path))

	return res, nil
}

// runner holds the mutable state of one search.
type runner struct {
	s       Surface
	options Options

	width, height int
	start, goal   grid.Position
	heuristic     func(a, b grid.Position) float64

	bestCost []float64 // +Inf until reached
	cameFrom []uint8   // Direction codes, 0 = none
	pq       *frontier.Queue

	startH, minH float64
	expanded     int
	warned       bool
	warnings     []string
}

// init seeds the start cell.
func (r *runner) init() {
	for i := range r.bestCost {
		r.bestCost[i] = math.Inf(1)
	}
	r.bestCost[r.index(r.start)] = 0
	r.startH = r.heuristic(r.start, r.goal)
	r.minH = r.startH
	r.pq.Push(r.start, 0)
}

// process is the main loop. It returns nil once the goal is popped.
func (r *runner) process(ctx context.Context) error {
	for {
		// 1) Cooperative cancellation.
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrCancelled, err)
		}

		// 2) Progress estimate.
		if r.options.Progress != nil {
			r.options.Progress(r.progress())
		}

		// 3) Exhausted frontier.
		if r.pq.Empty() {
			return ErrNoPath
		}
		cur, priority := r.pq.Pop()

		// 4) Frontier bound, measured after the pop.
		if r.options.MaxFrontier > 0 && r.pq.Len() > r.options.MaxFrontier {
			return fmt.Errorf("%w: %d pending entries", ErrFrontierExceeded, r.pq.Len())
		}

		// 5) Done.
		if cur == r.goal {
			return nil
		}

		// 6) Skip entries superseded by a cheaper push of the same cell.
		if priority > r.bestCost[r.index(cur)]+r.heuristic(cur, r.goal) {
			continue
		}

		r.expanded++
		if err := r.relax(cur); err != nil {
			return err
		}
	}
}

// relax tries each neighbour of cur in the fixed order.
func (r *runner) relax(cur grid.Position) error {
	base := r.bestCost[r.index(cur)]
	for _, d := range neighbors {
		dx, dy := d.Delta()
		next := cur.Add(dx, dy)
		if !inside(next, r.width, r.height) {
			continue
		}
		ok, err := r.s.Traversable(next)
		if err != nil {
			return fmt.Errorf("astar: traversability at %v: %w", next, err)
		}
		if !ok {
			continue
		}
		step, err := r.s.Cost(next)
		if err != nil {
			return fmt.Errorf("astar: cost at %v: %w", next, err)
		}
		if step < 1 && !r.warned {
			r.warned = true
			r.warnings = append(r.warnings, inadmissibleWarning)
			r.options.Logger.Warn("astar: "+inadmissibleWarning, "cell", next.String(), "cost", step)
		}

		newCost := base + step
		idx := r.index(next)
		if newCost < r.bestCost[idx] {
			r.bestCost[idx] = newCost
			r.cameFrom[idx] = uint8(d)
			hn := r.heuristic(next, r.goal)
			if hn < r.minH {
				r.minH = hn
			}
			r.pq.Push(next, newCost+hn)
		}
	}
	return nil
}

// progress returns 1 − minH/startH, or 1 when start is the goal.
func (r *runner) progress() float64 {
	if r.startH == 0 {
		return 1
	}
	return 1 - r.minH/r.startH
}

func (r *runner) index(p grid.Position) int {
	return p.Y*r.width + p.X
}

func inside(p grid.Position, w, h int) bool {
	return p.X >= 0 && p.X < w && p.Y >= 0 && p.Y < h
}

// requireTraversable returns blocked (wrapped with p) when p is not traversable.
func requireTraversable(s Surface, p grid.Position, blocked error) error {
	ok, err := s.Traversable(p)
	if err != nil {
		return fmt.Errorf("astar: traversability at %v: %w", p, err)
	}
	if !ok {
		return fmt.Errorf("%w: %v", blocked, p)
	}
	return nil
}

func manhattan(a, b grid.Position) float64 {
	return math.Abs(float64(a.X-b.X)) + math.Abs(float64(a.Y-b.Y))
}

func euclidean(a, b grid.Position) float64 {
	return math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
}
