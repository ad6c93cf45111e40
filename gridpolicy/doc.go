// Package gridpolicy decides, per grid cell, whether the cell may be entered
// and what it costs to enter it.
//
// What:
//
//   - Resolve inspects a TraversalConfig and a CostConfig once and returns an
//     immutable *Policy holding one traversal variant (Always, Threshold,
//     Formula) and one cost variant (Constant, Layer, Formula).
//   - (*Policy).Traversable and (*Policy).Cost are pure functions of the cell
//     position and the grid samples.
//
// Formula variables:
//
//	x, y          the cell coordinates
//	val1..valN    the samples of layers 0..N-1 at the cell
//
// Traversability formulas are truthy tests (comparisons or non-zero numbers);
// cost formulas are numeric, a comparison counts as 0 or 1.
//
// Concurrency:
//
//   - A *Policy holds no mutable state. Each evaluation builds its own variable
//     binding, so one Policy may serve many searches at once.
//
// Errors:
//
//   - ErrNilGrid if Resolve is given no grid.
//   - grid.ErrLayerIndex (wrapped) for a layer index the grid does not have.
//   - *formula.SyntaxError from compiling either formula, unchanged.
//   - Traversable/Cost pass through formula evaluation errors unchanged.
package gridpolicy
