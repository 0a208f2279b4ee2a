// Package solve classifies the solution set of a linear system A x = b given
// as an augmented rational matrix [A | b].
//
// What
//
//   - Classify inspects a matrix already in RREF and returns a Result that is
//     one of:
//   - Inconsistent: some row reads 0 = c with c ≠ 0.
//   - UniqueSolution: every unknown is a basic variable; Solution holds x.
//   - Parametric: at least one free variable; the full solution set is
//     Particular + Σ_f t_f·Basis[f] for arbitrary rationals t_f.
//   - Solve clones the input, reduces it with package echelon and classifies
//     the result, leaving the caller's matrix untouched.
//   - Verify substitutes a Result back into the original system.
//   - Format renders a Result as human-readable text.
//
// Checks run in the order listed above, so a system that is both rank
// deficient and inconsistent is reported as Inconsistent. Uniqueness compares
// the coefficient rank with the number of unknowns (cols-1), never with the
// number of equations, so systems with more equations than unknowns are
// classified correctly.
package solve
