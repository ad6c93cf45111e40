// Package synth generates maze rasters for tests, benchmarks and demos.
//
// What:
//
//	Generate carves a maze with a randomized recursive backtracker on the
//	odd cells of a width×height raster, then optionally braids it: each dead
//	end is, with probability Braiding, joined to a neighbouring passage as
//	long as that does not open a 2×2 plaza. Passages are 1, walls 0, so the
//	open layer plugs straight into a threshold rule with min = 1.
//
//	With MaxCost > 1 a second layer assigns every passage an integer cost in
//	[1, MaxCost], which turns the maze into a weighted routing problem.
//
// Complexity:
//
//	Time O(W·H), memory O(W·H) for the layers plus the carving stack.
//
// Determinism:
//
//	A non-zero Seed reproduces the same maze. Seed 0 draws from the clock.
package synth
