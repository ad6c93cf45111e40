// Package astar finds least-cost routes between two cells of a grid surface.
//
// Two variants share one engine:
//
//   - VariantGrid: 4-connected A* with the Manhattan heuristic.
//   - VariantAnyAngle: the same 4-connected expansion ordered by the
//     Euclidean heuristic. Its frontier is bounded (DefaultMaxFrontier) unless
//     WithMaxFrontier says otherwise.
//
// Moving onto a cell costs Surface.Cost of that cell. Neighbours are visited
// in the fixed order (0,1) (1,0) (0,-1) (-1,0) and a neighbour is improved only
// when the new cost is strictly lower, so equal-cost ties resolve the same way
// on every run.
//
// Parents are stored as one direction code per cell (0 for none, 1..4 for the
// four moves). Trace walks those codes back from the goal and keeps only the
// cells where the direction changes, so Result.Path is the minimal polyline
// through the route rather than one vertex per step.
//
// Heuristic admissibility:
//
//	Both heuristics assume every step costs at least 1. The first evaluated cost
//	below 1 is logged at WARN and recorded in Result.Warnings; the search still
//	completes but the path may not be optimal.
//
// Cancellation and progress:
//
//   - ctx is polled once per frontier pop and once per reconstruction step.
//     A cancelled search returns ErrCancelled wrapping ctx.Err() and no path.
//   - WithProgress receives 1 − minH/startH once per iteration, where minH is
//     the smallest heuristic pushed so far. It is an estimate, not a percentage.
//
// Errors:
//
//   - ErrStartOutOfBounds, ErrGoalOutOfBounds, ErrStartBlocked, ErrGoalBlocked,
//     ErrNoPath, ErrFrontierExceeded: domain failures (IsDomainError).
//   - ErrCancelled: the context was cancelled or timed out.
//   - ErrBrokenTrail: a parent trail that does not lead back to the start.
//   - Errors from Surface.Traversable and Surface.Cost are wrapped with %w.
//
// Complexity:
//
//   - Time:  O(N log N) for N = Width×Height, plus one Traversable and one
//     Cost call per relaxation.
//   - Space: O(N): 8 bytes of best cost and 1 byte of parent per cell, plus
//     the frontier.
package astar
