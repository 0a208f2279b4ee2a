// SPDX-License-Identifier: MIT
// Package matrix provides exact operations on Dense rational matrices:
// element-wise addition and subtraction, scalar scaling, matrix product,
// matrix-vector product, transpose and determinant. All functions perform
// strict fail-fast validation and return clear errors on dimension mismatches.
//
// Notes:
//   - Inputs are never mutated; every result is freshly allocated.
//   - All kernels use the central validators and wrap sentinels via matrixErrorf.

package matrix

import "math/big"

// addSub computes out = a + sign*b for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation and allocation.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b *Dense, sign int, opTag string) (*Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res, err := NewDense(a.r, a.c)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	for i := 0; i < a.r; i++ {
		for j := 0; j < a.c; j++ {
			if sign < 0 {
				res.data[i][j].Sub(a.data[i][j], b.data[i][j])
			} else {
				res.data[i][j].Add(a.data[i][j], b.data[i][j])
			}
		}
	}

	return res, nil
}

// Add returns a + b. Errors: ErrNilMatrix, ErrDimensionMismatch.
func Add(a, b *Dense) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub returns a - b. Errors: ErrNilMatrix, ErrDimensionMismatch.
func Sub(a, b *Dense) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Scale returns alpha·m as a new matrix. Scaling by zero is allowed here
// (it is ScaleRow that forbids a zero factor). A nil alpha is read as 0.
func Scale(m *Dense, alpha *big.Rat) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	if alpha == nil {
		alpha = new(big.Rat)
	}
	res := m.Clone()
	for _, row := range res.data {
		for _, v := range row {
			v.Mul(v, alpha)
		}
	}

	return res, nil
}

// Mul returns the matrix product a × b.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b).
//   - Stage 2: i-k-j loop order, skipping zero a[i][k] terms.
//
// Complexity:
//   - Time O(r*n*c).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	res, err := NewDense(a.r, b.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	tmp := new(big.Rat)
	for i := 0; i < a.r; i++ {
		for k := 0; k < a.c; k++ {
			av := a.data[i][k]
			if av.Sign() == 0 {
				continue
			}
			for j := 0; j < b.c; j++ {
				tmp.Mul(av, b.data[k][j])
				res.data[i][j].Add(res.data[i][j], tmp)
			}
		}
	}

	return res, nil
}

// MulVec returns y = m·x. Errors: ErrNilMatrix, ErrDimensionMismatch.
func MulVec(m *Dense, x Vector) (Vector, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	y := make(Vector, m.r)
	for i := 0; i < m.r; i++ {
		v, err := Vector(m.data[i]).Dot(x)
		if err != nil {
			return nil, matrixErrorf(opMulVec, err)
		}
		y[i] = v
	}

	return y, nil
}

// Transpose returns mᵀ as a new matrix.
func Transpose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	res, err := NewDense(m.c, m.r)
	if err != nil {
		return nil, err
	}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			res.data[j][i].Set(m.data[i][j])
		}
	}

	return res, nil
}

// Det returns the determinant of a square matrix.
// MAIN DESCRIPTION:
//   - Exact Gaussian elimination on a private copy; det = ±Π pivots.
//
// Implementation:
//   - Stage 1: ValidateSquare(m); clone.
//   - Stage 2: for each column k pick the first row ≥ k with a nonzero entry,
//     swap it up (flipping the sign), then eliminate below it.
//   - Stage 3: a column without a nonzero candidate means det = 0.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n^3) rational operations.
func Det(m *Dense) (*big.Rat, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opDet, err)
	}
	w := m.Clone()
	n := w.r
	det := big.NewRat(1, 1)
	inv := new(big.Rat)
	for k := 0; k < n; k++ {
		p := -1
		for i := k; i < n; i++ {
			if w.data[i][k].Sign() != 0 {
				p = i
				break
			}
		}
		if p < 0 {
			return new(big.Rat), nil
		}
		if p != k {
			w.SwapRows(p, k)
			det.Neg(det)
		}
		det.Mul(det, w.data[k][k])
		inv.Inv(w.data[k][k])
		for i := k + 1; i < n; i++ {
			if w.data[i][k].Sign() == 0 {
				continue
			}
			f := new(big.Rat).Mul(w.data[i][k], inv)
			w.AddScaledRow(i, k, f.Neg(f))
		}
	}

	return det, nil
}
