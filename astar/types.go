package astar

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/rasterpath/grid"
)

// Sentinel errors returned by Search and Trace.
var (
	// ErrNilSurface indicates Search was called without a surface.
	ErrNilSurface = errors.New("astar: surface is nil")

	// ErrStartOutOfBounds indicates the start cell lies outside the surface.
	ErrStartOutOfBounds = errors.New("astar: starting point is outside the grid")

	// ErrGoalOutOfBounds indicates the goal cell lies outside the surface.
	ErrGoalOutOfBounds = errors.New("astar: ending point is outside the grid")

	// ErrStartBlocked indicates the start cell is not traversable.
	ErrStartBlocked = errors.New("astar: starting point must be traversable")

	// ErrGoalBlocked indicates the goal cell is not traversable.
	ErrGoalBlocked = errors.New("astar: ending point must be traversable")

	// ErrNoPath indicates the frontier emptied before the goal was reached.
	ErrNoPath = errors.New("astar: no path found")

	// ErrFrontierExceeded indicates the frontier grew past Options.MaxFrontier.
	ErrFrontierExceeded = errors.New("astar: max queue length exceeded")

	// ErrCancelled indicates the context was done. It is always joined with ctx.Err().
	ErrCancelled = errors.New("astar: task cancelled")

	// ErrBrokenTrail indicates cameFrom does not lead from goal back to start.
	ErrBrokenTrail = errors.New("astar: broken parent trail")
)

// IsDomainError reports whether err is one of the input or search-outcome
// failures, as opposed to cancellation, formula or internal errors.
func IsDomainError(err error) bool {
	for _, target := range []error{
		ErrStartOutOfBounds, ErrGoalOutOfBounds,
		ErrStartBlocked, ErrGoalBlocked,
		ErrNoPath, ErrFrontierExceeded,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// Surface is the grid a search runs on. *gridpolicy.Policy implements it.
// Traversable and Cost are only called for in-bounds positions.
type Surface interface {
	Width() int
	Height() int
	Traversable(p grid.Position) (bool, error)
	Cost(p grid.Position) (float64, error)
}

// Variant selects the heuristic and the default frontier bound.
type Variant uint8

const (
	// VariantGrid is 4-connected A* with the Manhattan heuristic.
	VariantGrid Variant = iota
	// VariantAnyAngle orders the same expansion by Euclidean distance.
	VariantAnyAngle
)

// String returns "astar" or "any-angle".
func (v Variant) String() string {
	switch v {
	case VariantGrid:
		return "astar"
	case VariantAnyAngle:
		return "any-angle"
	}
	return fmt.Sprintf("Variant(%d)", uint8(v))
}

// ParseVariant accepts the names produced by Variant.String, plus "grid" and
// "theta" as aliases.
func ParseVariant(s string) (Variant, error) {
	switch s {
	case "astar", "a*", "grid":
		return VariantGrid, nil
	case "any-angle", "anyangle", "theta":
		return VariantAnyAngle, nil
	}
	return 0, fmt.Errorf("astar: unknown variant %q", s)
}

// DefaultMaxFrontier is the frontier bound VariantAnyAngle uses when
// WithMaxFrontier is not given.
const DefaultMaxFrontier = 100000

// Options configures a search. Build it with DefaultOptions and Option
// functions rather than by hand.
//
//	Variant      heuristic to use (default VariantGrid).
//	MaxFrontier  fail with ErrFrontierExceeded once more entries than this are
//	             pending; 0 means unbounded. Defaults to 0 for VariantGrid and
//	             DefaultMaxFrontier for VariantAnyAngle.
//	Progress     called once per iteration with a fraction in [0,1]; nil to skip.
//	Logger       destination for DEBUG and WARN records; nil uses the logger
//	             attached to ctx, if any.
type Options struct {
	Variant     Variant
	MaxFrontier int
	Progress    func(fraction float64)
	Logger      *slog.Logger

	maxFrontierSet bool
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the zero-configuration options: VariantGrid, no
// frontier bound, no progress callback.
func DefaultOptions() Options {
	return Options{Variant: VariantGrid}
}

// WithVariant selects the heuristic.
func WithVariant(v Variant) Option {
	return func(o *Options) { o.Variant = v }
}

// WithMaxFrontier bounds the frontier for either variant; 0 removes the bound.
// Panics if n < 0.
func WithMaxFrontier(n int) Option {
	if n < 0 {
		panic("astar: WithMaxFrontier(n) requires n >= 0")
	}
	return func(o *Options) {
		o.MaxFrontier = n
		o.maxFrontierSet = true
	}
}

// WithProgress registers a progress callback. It runs on the search goroutine
// and must return quickly.
func WithProgress(fn func(fraction float64)) Option {
	return func(o *Options) { o.Progress = fn }
}

// WithLogger sets the logger, overriding the one attached to ctx.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// Result is a successful search.
type Result struct {
	// Path lists the waypoints from start to goal. Consecutive waypoints share
	// a row or a column; straight runs are collapsed.
	Path []grid.Position
	// Cost is the summed cell cost of the route, excluding the start cell.
	Cost float64
	// Expanded counts the cells taken off the frontier and expanded.
	Expanded int
	// Warnings holds advisory messages, such as the inadmissible-heuristic notice.
	Warnings []string
}
