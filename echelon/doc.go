// Package echelon reduces an exact rational matrix to row-echelon form (REF)
// and reduced row-echelon form (RREF), in place.
//
// What
//
//   - REF: scan columns left to right; for each column take the first row at
//     or below the current pivot row with a nonzero entry, swap it up, scale
//     it so the pivot is exactly 1, and clear every entry beneath the pivot.
//     A column with no candidate contributes no pivot (a free variable).
//   - RREF: starting from a normalized REF, walk the pivots bottom to top and
//     clear every entry above each pivot.
//   - Pivots / Rank / IsREF / IsRREF: read-only predicates over the result.
//   - Hooks (WithOnSwap, WithOnScale, WithOnEliminate, WithOnPivot,
//     WithOnStage) observe each elementary operation, e.g. to print steps.
//
// Determinism
//
//	The pivot rule depends only on the matrix contents, so a given input
//	always produces the same sequence of row operations and the same result.
//
// Complexity (r = rows, c = cols)
//
//   - Time:   O(r·c·min(r,c)) rational operations for REF, the same for RREF.
//   - Memory: in place; O(c) temporaries per row operation.
package echelon
