package solve

import (
	"github.com/katalvlaran/linsys/echelon"
	"github.com/katalvlaran/linsys/matrix"
)

// Solve reduces a copy of the augmented matrix m to RREF and classifies it.
// It returns the Result together with the reduced copy; m is not modified.
// Hooks in opts observe the reduction.
//
// Errors: matrix.ErrNilMatrix, ErrNoUnknowns.
func Solve(m *matrix.Dense, opts ...echelon.Option) (Result, *matrix.Dense, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return Result{}, nil, solveErrorf(opSolve, err)
	}
	w := m.Clone()
	res, err := SolveInPlace(w, opts...)
	if err != nil {
		return Result{}, nil, err
	}

	return res, w, nil
}

// SolveInPlace is Solve without the copy: m is left in RREF.
func SolveInPlace(m *matrix.Dense, opts ...echelon.Option) (Result, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return Result{}, solveErrorf(opSolve, err)
	}
	if m.Cols() < 2 {
		return Result{}, solveErrorf(opSolve, ErrNoUnknowns)
	}
	if _, err := echelon.Reduce(m, opts...); err != nil {
		return Result{}, solveErrorf(opSolve, err)
	}
	res, err := Classify(m)
	if err != nil {
		return Result{}, solveErrorf(opSolve, err)
	}

	return res, nil
}
