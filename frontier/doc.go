// Package frontier provides the min-priority queue used as the open set of a
// grid search.
//
// Entries are (Position, priority) pairs. The queue follows the
// "lazy decrease-key" pattern: improving a cell pushes a new entry and the
// caller discards stale ones when they are popped, so the same position may
// appear more than once.
//
// Ordering is total and deterministic: lower priority first, then lower X,
// then lower Y.
//
// Complexity:
//
//   - Push, Pop: O(log n)
//   - Peek, Len, Empty: O(1)
package frontier
