// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Constructors and kernels return these sentinels (optionally wrapped
// with an operation tag) and tests check them via errors.Is.
// Panics are reserved for programmer errors: out-of-range indices and a zero
// row-scale factor.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Wrap with matrixErrorf(op, ErrX) at the nearest
// detection site; callers still use errors.Is to match.

var (
	// ErrEmptyMatrix is returned when a matrix would have zero rows or zero columns.
	ErrEmptyMatrix = errors.New("matrix: empty matrix")

	// ErrDimensionMismatch indicates ragged input rows or incompatible operand shapes,
	// e.g., Add of different shapes, Mul where a.Cols != b.Rows, Dot of unequal lengths.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Indexers panic with a value wrapping this sentinel.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrZeroPivot signals an attempt to scale a row by zero. Row reduction never
	// does this for a well-formed matrix; seeing it means an invariant was broken.
	ErrZeroPivot = errors.New("matrix: zero scale factor")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrParse is returned when a token is not an exact rational literal.
	ErrParse = errors.New("matrix: malformed rational")
)

// Operation name constants for unified error wrapping.
const (
	opNewDense    = "NewDense"
	opFromRows    = "NewFromRows"
	opParseRows   = "ParseRows"
	opRead        = "ReadAugmented"
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opMulVec      = "MulVec"
	opDet         = "Det"
	opDot         = "Dot"
	opVecAdd      = "Vector.Add"
	opVecSub      = "Vector.Sub"
	opValidateAug = "ValidateAugmented"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// denseErrorf attaches method context and coordinates to a sentinel error.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}
