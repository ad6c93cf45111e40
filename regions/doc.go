// Package regions labels the connected open areas of a routing surface and
// measures how far apart two of them are.
//
// What:
//
//   - Label finds every 4-connected region of traversable cells, the same
//     adjacency the router moves along, so two cells share a label exactly
//     when a route between them exists.
//   - Bridge runs a 0–1 BFS from one region to another in which stepping
//     onto an open cell is free and onto a blocked cell costs 1. The result
//     is the fewest blocked cells that separate the two regions.
//
// Why:
//
//   - Explaining an unroutable job: "start and end are 3 walls apart" is more
//     useful than "no path found".
//   - Cheap reachability checks before running a long search.
//
// Complexity:
//
//   - Label:  O(W·H) traversability checks, Memory O(W·H).
//   - Bridge: O(W·H) for the BFS plus one Label, Memory O(W·H).
//
// Errors:
//
//   - ErrOutOfBounds: a query position is outside the surface.
//   - ErrBlocked: a Bridge endpoint is not traversable.
//   - Errors from Surface.Traversable are wrapped with the cell position.
package regions
