package echelon

import (
	"math/big"

	"github.com/katalvlaran/linsys/matrix"
)

// Inverse returns A⁻¹ for a square matrix by Gauss-Jordan elimination on
// [A | I]. The input is not modified.
//
// Implementation:
//   - Stage 1: ValidateSquare(a); build the n×2n block [A | I].
//   - Stage 2: Reduce the block; opts observe every row operation.
//   - Stage 3: A is invertible iff the left block became I; the right
//     block is then A⁻¹.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, ErrSingular.
//
// Complexity: O(n³) exact rational operations.
func Inverse(a *matrix.Dense, opts ...Option) (*matrix.Dense, error) {
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, echelonErrorf(opInv, err)
	}
	n := a.Rows()
	w, err := matrix.NewDense(n, 2*n)
	if err != nil {
		return nil, echelonErrorf(opInv, err)
	}
	one := big.NewRat(1, 1)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			w.Set(i, j, a.At(i, j))
		}
		w.Set(i, n+i, one)
	}

	ps, err := Reduce(w, opts...)
	if err != nil {
		return nil, echelonErrorf(opInv, err)
	}
	// Column j < n holds the pivot of row j exactly when rank(A) = n.
	if len(ps) < n || ps[n-1].Col >= n {
		return nil, echelonErrorf(opInv, ErrSingular)
	}

	inv, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, echelonErrorf(opInv, err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			inv.Set(i, j, w.At(i, n+j))
		}
	}

	return inv, nil
}
