package solve

import (
	"math/big"

	"github.com/katalvlaran/linsys/echelon"
	"github.com/katalvlaran/linsys/matrix"
)

// Classify decides the shape of the solution set of an RREF augmented matrix.
//
// Implementation:
//   - Stage 1: reject nil (matrix.ErrNilMatrix), cols < 2 (ErrNoUnknowns)
//     and non-RREF input (ErrNotReduced).
//   - Stage 2: a row with zero coefficients and a nonzero right-hand side
//     makes the system Inconsistent.
//   - Stage 3: rank == cols-1 gives UniqueSolution; x[j] is the right-hand
//     side of the row pivoting on column j.
//   - Stage 4: otherwise Parametric. Free columns get 0 in the particular
//     solution; basis[f] has 1 at f and -entry(r,f) at each pivot column j
//     with pivot row r.
//
// The matrix is read-only here.
func Classify(m *matrix.Dense) (Result, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return Result{}, solveErrorf(opClassify, err)
	}
	if m.Cols() < 2 {
		return Result{}, solveErrorf(opClassify, ErrNoUnknowns)
	}
	if !echelon.IsRREF(m) {
		return Result{}, solveErrorf(opClassify, ErrNotReduced)
	}

	n := m.Cols() - 1
	pivots := coefficientPivots(m, n)
	res := Result{Unknowns: n, Rank: len(pivots)}

	if inconsistentRow(m, n) >= 0 {
		res.Kind = Inconsistent
		return res, nil
	}

	if len(pivots) == n {
		res.Kind = UniqueSolution
		res.Solution = matrix.NewVector(n)
		for _, p := range pivots {
			res.Solution[p.Col] = m.At(p.Row, n)
		}
		return res, nil
	}

	res.Kind = Parametric
	isPivot := make([]bool, n)
	res.Particular = matrix.NewVector(n)
	for _, p := range pivots {
		isPivot[p.Col] = true
		res.Particular[p.Col] = m.At(p.Row, n)
	}
	res.Basis = make(map[int]matrix.Vector, n-len(pivots))
	for f := 0; f < n; f++ {
		if isPivot[f] {
			continue
		}
		res.Free = append(res.Free, f)
		b := matrix.NewVector(n)
		b[f] = big.NewRat(1, 1)
		for _, p := range pivots {
			v := m.At(p.Row, f)
			b[p.Col] = v.Neg(v)
		}
		res.Basis[f] = b
	}

	return res, nil
}

// coefficientPivots returns the pivots lying in the first n columns.
func coefficientPivots(m *matrix.Dense, n int) []echelon.Pivot {
	var out []echelon.Pivot
	for _, p := range echelon.Pivots(m) {
		if p.Col < n {
			out = append(out, p)
		}
	}

	return out
}

// inconsistentRow returns the first row reading 0 = c (c ≠ 0), or -1.
func inconsistentRow(m *matrix.Dense, n int) int {
	for i := 0; i < m.Rows(); i++ {
		if m.IsZeroAt(i, n) {
			continue
		}
		zero := true
		for j := 0; j < n; j++ {
			if !m.IsZeroAt(i, j) {
				zero = false
				break
			}
		}
		if zero {
			return i
		}
	}

	return -1
}
