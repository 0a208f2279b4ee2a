package echelon

import (
	"math/big"

	"github.com/katalvlaran/linsys/matrix"
)

// REF transforms m in place into normalized row-echelon form.
//
// For each column, left to right, the first row at or below the current pivot
// row with a nonzero entry in that column is swapped into the pivot row. That
// row is scaled so the pivot becomes exactly 1, and the column is cleared
// beneath it. Columns without a candidate are skipped without consuming a row.
// The augmented column takes part like any other column.
//
// Postcondition: leading entries strictly move right, each equals 1, and zero
// rows sit at the bottom.
//
// Errors: matrix.ErrNilMatrix.
func REF(m *matrix.Dense, opts ...Option) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return echelonErrorf(opREF, err)
	}
	o := gatherOptions(opts...)
	rows, cols := m.Shape()

	pivotRow := 0
	for pivotCol := 0; pivotCol < cols && pivotRow < rows; pivotCol++ {
		sel := firstNonzeroAtOrBelow(m, pivotRow, pivotCol)
		if sel < 0 {
			continue
		}
		if sel != pivotRow {
			m.SwapRows(sel, pivotRow)
			o.OnSwap(sel, pivotRow)
		}

		inv := m.At(pivotRow, pivotCol)
		inv.Inv(inv)
		if !isOne(inv) {
			m.ScaleRow(pivotRow, inv)
			o.OnScale(pivotRow, inv)
		}
		o.OnPivot(Pivot{Row: pivotRow, Col: pivotCol})

		for i := pivotRow + 1; i < rows; i++ {
			if m.IsZeroAt(i, pivotCol) {
				continue
			}
			f := m.At(i, pivotCol)
			f.Neg(f)
			m.AddScaledRow(i, pivotRow, f)
			o.OnEliminate(i, pivotRow, f)
		}
		pivotRow++
	}
	o.OnStage(StageREF, m)

	return nil
}

// RREF clears every entry above each pivot of a normalized REF matrix, in place.
// Pivots are processed bottom to top. Row r of pivot (r,c) is zero left of c
// and already zero in every pivot column processed before it, so subtracting
// it from a row above never disturbs a column cleared earlier.
//
// Errors: matrix.ErrNilMatrix, ErrNotEchelon.
func RREF(m *matrix.Dense, opts ...Option) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return echelonErrorf(opRREF, err)
	}
	if !IsREF(m) {
		return echelonErrorf(opRREF, ErrNotEchelon)
	}
	o := gatherOptions(opts...)

	ps := Pivots(m)
	for k := len(ps) - 1; k >= 0; k-- {
		p := ps[k]
		for i := p.Row - 1; i >= 0; i-- {
			if m.IsZeroAt(i, p.Col) {
				continue
			}
			f := m.At(i, p.Col)
			f.Neg(f)
			m.AddScaledRow(i, p.Row, f)
			o.OnEliminate(i, p.Row, f)
		}
	}
	o.OnStage(StageRREF, m)

	return nil
}

// Reduce runs REF then RREF on m in place and returns the pivot set.
// Errors: matrix.ErrNilMatrix.
func Reduce(m *matrix.Dense, opts ...Option) ([]Pivot, error) {
	if err := REF(m, opts...); err != nil {
		return nil, echelonErrorf(opReduce, err)
	}
	if err := RREF(m, opts...); err != nil {
		return nil, echelonErrorf(opReduce, err)
	}

	return Pivots(m), nil
}

// firstNonzeroAtOrBelow returns the first row index ≥ from whose entry in col
// is nonzero, or -1.
func firstNonzeroAtOrBelow(m *matrix.Dense, from, col int) int {
	for i := from; i < m.Rows(); i++ {
		if !m.IsZeroAt(i, col) {
			return i
		}
	}

	return -1
}

func isOne(r *big.Rat) bool {
	return r.IsInt() && r.Num().IsInt64() && r.Num().Int64() == 1
}
