// Package matrix offers an exact rational matrix for solving linear systems.
//
// The matrix package provides:
//
//   - Dense, a rows×cols grid of *big.Rat values, with the elementary row
//     operations (ScaleRow, AddScaledRow, SwapRows) that row reduction needs.
//   - Vector, a rational vector with named arithmetic (Add, Sub, Scale, Dot).
//   - Text ingestion (ParseRat, ParseRows, ReadAugmented) for integers,
//     fractions like "7/2" and decimals.
//   - Exact kernels: Add, Sub, Scale, Mul, MulVec, Transpose, Det.
//
// Every value is kept in lowest terms by math/big, so results never drift.
// Matrices are expected to be small and human-entered; no kernel tries to be
// clever about memory.
//
// See the examples in this package and in echelon/solve for usage patterns.
package matrix
