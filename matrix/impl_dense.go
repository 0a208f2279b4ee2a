// SPDX-License-Identifier: MIT

// Package matrix - Dense rational storage (row-major) & row operations.
//
// Purpose:
//   - Hold a rows×cols grid of exact rationals (*big.Rat), one owned value per cell.
//   - Expose the three elementary row operations used by row reduction:
//     ScaleRow, AddScaledRow, SwapRows.
//   - Keep arithmetic exact: big.Rat normalizes by gcd after every Mul/Add,
//     so numerators/denominators stay in lowest terms and nothing is rounded.
//
// AI-Hints:
//   - At returns a copy; use Sign/IsZeroAt for cheap tests inside loops.
//   - Rows are stored as separate slices so SwapRows is O(1).
//
// Complexity quicksheet:
//   - NewDense: O(r*c); At/Set: O(1); ScaleRow/AddScaledRow: O(c); SwapRows: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"math/big"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt          = "At"
	ctxSet         = "Set"
	ctxSign        = "Sign"
	ctxRow         = "Row"
	ctxCol         = "Col"
	ctxScaleRow    = "ScaleRow"
	ctxAddScaled   = "AddScaledRow"
	ctxSwapRows    = "SwapRows"
	ctxNoColumnIdx = -1
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Dense is a concrete row-major matrix of exact rationals.
//   - r,c hold dimensions (rows, cols), both >= 1.
//   - data[i][j] is a distinct *big.Rat owned by the matrix.
type Dense struct {
	r, c int
	data [][]*big.Rat
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrEmptyMatrix.
//   - Stage 2: allocate one *big.Rat per cell (zero value is 0/1).
//
// Errors:
//   - ErrEmptyMatrix (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(opNewDense, ErrEmptyMatrix)
	}
	data := make([][]*big.Rat, rows)
	for i := range data {
		row := make([]*big.Rat, cols)
		for j := range row {
			row[j] = new(big.Rat)
		}
		data[i] = row
	}

	return &Dense{r: rows, c: cols, data: data}, nil
}

// NewFromRows builds a matrix from input rows, deep-copying every value.
// MAIN DESCRIPTION:
//   - The canonical ingestion path for a linear system's augmented matrix.
//
// Implementation:
//   - Stage 1: reject zero rows or an empty first row (ErrEmptyMatrix).
//   - Stage 2: reject ragged rows (ErrDimensionMismatch) before allocating.
//   - Stage 3: copy values; a nil entry is read as 0.
//
// Errors:
//   - ErrEmptyMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromRows(rows [][]*big.Rat) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(opFromRows, ErrEmptyMatrix)
	}
	cols := len(rows[0])
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%s: row %d has %d entries, want %d: %w",
				opFromRows, i, len(row), cols, ErrDimensionMismatch)
		}
	}
	m, err := NewDense(len(rows), cols)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		for j, v := range row {
			if v != nil {
				m.data[i][j].Set(v)
			}
		}
	}

	return m, nil
}

// NewFromInts builds a matrix from integer rows. Same errors as NewFromRows.
func NewFromInts(rows [][]int64) (*Dense, error) {
	rr := make([][]*big.Rat, len(rows))
	for i, row := range rows {
		rr[i] = make([]*big.Rat, len(row))
		for j, v := range row {
			rr[i][j] = new(big.Rat).SetInt64(v)
		}
	}

	return NewFromRows(rr)
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// mustRow panics with a wrapped ErrOutOfRange when r is not a valid row.
func (m *Dense) mustRow(method string, r int) {
	if r < 0 || r >= m.r {
		panic(denseErrorf(method, r, ctxNoColumnIdx, ErrOutOfRange))
	}
}

// mustCell panics with a wrapped ErrOutOfRange when (r,c) is not a valid cell.
func (m *Dense) mustCell(method string, r, c int) {
	if r < 0 || r >= m.r || c < 0 || c >= m.c {
		panic(denseErrorf(method, r, c, ErrOutOfRange))
	}
}

// At returns a copy of the value at (row, col).
// Out-of-range indices are a programming error and panic.
func (m *Dense) At(row, col int) *big.Rat {
	m.mustCell(ctxAt, row, col)

	return new(big.Rat).Set(m.data[row][col])
}

// Set stores a copy of v at (row, col). A nil v stores 0.
func (m *Dense) Set(row, col int, v *big.Rat) {
	m.mustCell(ctxSet, row, col)
	if v == nil {
		m.data[row][col].SetInt64(0)
		return
	}
	m.data[row][col].Set(v)
}

// Sign reports the sign of the entry at (row, col) without copying it.
func (m *Dense) Sign(row, col int) int {
	m.mustCell(ctxSign, row, col)

	return m.data[row][col].Sign()
}

// IsZeroAt reports whether the entry at (row, col) is exactly zero.
func (m *Dense) IsZeroAt(row, col int) bool { return m.Sign(row, col) == 0 }

// Row returns a copy of row r as a Vector.
func (m *Dense) Row(r int) Vector {
	m.mustRow(ctxRow, r)

	return Vector(m.data[r]).Clone()
}

// Col returns a copy of column c as a Vector.
func (m *Dense) Col(c int) Vector {
	m.mustCell(ctxCol, 0, c)
	out := make(Vector, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = new(big.Rat).Set(m.data[i][c])
	}

	return out
}

// ScaleRow multiplies every entry of row r by factor.
// MAIN DESCRIPTION:
//   - Elementary operation "R_r ← factor·R_r".
//
// Behavior highlights:
//   - factor must be nonzero; a zero factor would destroy the row's
//     information and panics with ErrZeroPivot.
//   - factor is read once before the loop, so passing an alias of an
//     entry in row r is safe.
//
// Complexity:
//   - Time O(c).
func (m *Dense) ScaleRow(r int, factor *big.Rat) {
	m.mustRow(ctxScaleRow, r)
	if factor == nil || factor.Sign() == 0 {
		panic(denseErrorf(ctxScaleRow, r, ctxNoColumnIdx, ErrZeroPivot))
	}
	f := new(big.Rat).Set(factor)
	for _, v := range m.data[r] {
		v.Mul(v, f)
	}
}

// AddScaledRow performs dst += factor·src entrywise.
// MAIN DESCRIPTION:
//   - Elementary operation "R_dst ← R_dst + factor·R_src".
//
// Behavior highlights:
//   - A zero factor is a no-op.
//   - factor is copied first, so it may alias an entry of dst (the usual
//     "subtract entry(i,c) times the pivot row" call).
//   - dst == src is allowed and yields (1+factor)·R_dst.
//
// Complexity:
//   - Time O(c).
func (m *Dense) AddScaledRow(dst, src int, factor *big.Rat) {
	m.mustRow(ctxAddScaled, dst)
	m.mustRow(ctxAddScaled, src)
	if factor == nil || factor.Sign() == 0 {
		return
	}
	f := new(big.Rat).Set(factor)
	tmp := new(big.Rat)
	d, s := m.data[dst], m.data[src]
	for j := 0; j < m.c; j++ {
		if s[j].Sign() == 0 {
			continue
		}
		tmp.Mul(f, s[j])
		d[j].Add(d[j], tmp)
	}
}

// SwapRows exchanges rows r1 and r2. Swapping a row with itself is a no-op.
func (m *Dense) SwapRows(r1, r2 int) {
	m.mustRow(ctxSwapRows, r1)
	m.mustRow(ctxSwapRows, r2)
	m.data[r1], m.data[r2] = m.data[r2], m.data[r1]
}

// Clone returns a deep copy; mutations on either side are independent.
func (m *Dense) Clone() *Dense {
	data := make([][]*big.Rat, m.r)
	for i, row := range m.data {
		cp := make([]*big.Rat, m.c)
		for j, v := range row {
			cp[j] = new(big.Rat).Set(v)
		}
		data[i] = cp
	}

	return &Dense{r: m.r, c: m.c, data: data}
}

// ToRows returns a deep copy of the contents as [][]*big.Rat.
func (m *Dense) ToRows() [][]*big.Rat {
	out := make([][]*big.Rat, m.r)
	for i := range out {
		out[i] = m.Row(i)
	}

	return out
}

// Equal reports whether o has the same shape and identical values.
// A nil operand is equal only to another nil.
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for i := 0; i < m.r; i++ {
		if !Vector(m.data[i]).Equal(Vector(o.data[i])) {
			return false
		}
	}

	return true
}

// String renders rows as "[a, b, c]\n" lines; fractions print as "n/d".
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(m.data[i][j].RatString())
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
