package echelon

import "github.com/katalvlaran/linsys/matrix"

// leadingCol returns the column of row r's first nonzero entry, or -1 for a zero row.
func leadingCol(m *matrix.Dense, r int) int {
	for j := 0; j < m.Cols(); j++ {
		if !m.IsZeroAt(r, j) {
			return j
		}
	}

	return -1
}

// Pivots returns the leading entry of every nonzero row, in row order.
// For a matrix in REF or RREF this is the pivot set, with strictly
// increasing columns. A nil matrix has no pivots.
func Pivots(m *matrix.Dense) []Pivot {
	if m == nil {
		return nil
	}
	var ps []Pivot
	for i := 0; i < m.Rows(); i++ {
		if c := leadingCol(m, i); c >= 0 {
			ps = append(ps, Pivot{Row: i, Col: c})
		}
	}

	return ps
}

// Rank returns the rank of m without modifying it (REF on a clone).
// Errors: matrix.ErrNilMatrix.
func Rank(m *matrix.Dense) (int, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return 0, echelonErrorf(opRank, err)
	}
	w := m.Clone()
	if err := REF(w); err != nil {
		return 0, echelonErrorf(opRank, err)
	}

	return len(Pivots(w)), nil
}

// IsREF reports whether m is in normalized row-echelon form: every nonzero
// row's leading entry is exactly 1 and lies strictly right of the previous
// row's, and no nonzero row follows a zero row.
func IsREF(m *matrix.Dense) bool {
	if m == nil {
		return false
	}
	prev := -1
	seenZero := false
	for i := 0; i < m.Rows(); i++ {
		c := leadingCol(m, i)
		if c < 0 {
			seenZero = true
			continue
		}
		if seenZero || c <= prev {
			return false
		}
		if !isOne(m.At(i, c)) {
			return false
		}
		prev = c
	}

	return true
}

// IsRREF reports whether m is in reduced row-echelon form: normalized REF
// where every pivot is the only nonzero entry of its column.
func IsRREF(m *matrix.Dense) bool {
	if !IsREF(m) {
		return false
	}
	for _, p := range Pivots(m) {
		for i := 0; i < m.Rows(); i++ {
			if i != p.Row && !m.IsZeroAt(i, p.Col) {
				return false
			}
		}
	}

	return true
}
