// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin entry points for common tasks across the package.
//   - Avoid logic duplication; each facade delegates to the canonical implementation.
//
// AI-Hints:
//   - Use NewIdentity/NewZeros to build matrices with explicit shape and neutral elements.
//   - Use Augment to glue a coefficient matrix and a right-hand side into one system.

package matrix

import "math/big"

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero *Dense of size rows×cols (alias of NewDense).
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i][i].SetInt64(1)
	}

	return I, nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
func ZerosLike(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return NewDense(m.r, m.c)
}

// Augment returns [a | b]: the coefficient matrix a with b appended as its
// last column. Errors: ErrNilMatrix, ErrDimensionMismatch when len(b) != a.Rows().
func Augment(a *Dense, b Vector) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf("Augment", err)
	}
	if err := ValidateVecLen(b, a.r); err != nil {
		return nil, matrixErrorf("Augment", err)
	}
	res, err := NewDense(a.r, a.c+1)
	if err != nil {
		return nil, err
	}
	for i := 0; i < a.r; i++ {
		for j := 0; j < a.c; j++ {
			res.data[i][j].Set(a.data[i][j])
		}
		res.data[i][a.c].Set(b.at(i))
	}

	return res, nil
}

// Coefficients splits an augmented matrix into its coefficient block and
// right-hand side. Errors: ValidateAugmented errors.
func Coefficients(aug *Dense) (*Dense, Vector, error) {
	if err := ValidateAugmented(aug); err != nil {
		return nil, nil, err
	}
	a, err := NewDense(aug.r, aug.c-1)
	if err != nil {
		return nil, nil, err
	}
	b := make(Vector, aug.r)
	for i := 0; i < aug.r; i++ {
		for j := 0; j < aug.c-1; j++ {
			a.data[i][j].Set(aug.data[i][j])
		}
		b[i] = new(big.Rat).Set(aug.data[i][aug.c-1])
	}

	return a, b, nil
}

// ---------- Linear Algebra aliases ----------

// Sum is an alias for Add.
func Sum(a, b *Dense) (*Dense, error) { return Add(a, b) }

// Diff is an alias for Sub.
func Diff(a, b *Dense) (*Dense, error) { return Sub(a, b) }

// Product is an alias for Mul.
func Product(a, b *Dense) (*Dense, error) { return Mul(a, b) }

// T is an alias for Transpose.
func T(m *Dense) (*Dense, error) { return Transpose(m) }
