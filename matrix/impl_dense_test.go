// Package matrix_test contains unit tests for the rational Dense type.
package matrix_test

import (
	"errors"
	"math/big"
	"testing"

	"github.com/katalvlaran/linsys/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrEmptyMatrix)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrEmptyMatrix)
}

// TestNewFromRows covers the constructor's error taxonomy and deep copy.
func TestNewFromRows(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rows    [][]*big.Rat
		wantErr error
	}{
		{"no rows", nil, matrix.ErrEmptyMatrix},
		{"empty first row", [][]*big.Rat{{}}, matrix.ErrEmptyMatrix},
		{"ragged", [][]*big.Rat{{R("1"), R("2")}, {R("3")}}, matrix.ErrDimensionMismatch},
		{"ok 2x2", [][]*big.Rat{{R("1"), R("1/2")}, {R("-3"), nil}}, nil},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			m, err := matrix.NewFromRows(tc.rows)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				require.Nil(t, m)
				return
			}
			require.NoError(t, err)
			CompareExact(t, [][]string{{"1", "1/2"}, {"-3", "0"}}, m)

			// mutating the source must not leak into the matrix
			tc.rows[0][0].SetInt64(99)
			assert.Zero(t, m.At(0, 0).Cmp(R("1")))
		})
	}
}

// TestAtSetCopies verifies that At returns a copy and Set stores a copy.
func TestAtSetCopies(t *testing.T) {
	m := MustInts(t, [][]int64{{1, 2}, {3, 4}})

	v := m.At(0, 1)
	v.SetInt64(100)
	assert.Zero(t, m.At(0, 1).Cmp(R("2")), "At must return a copy")

	in := R("7/3")
	m.Set(1, 0, in)
	in.SetInt64(0)
	assert.Zero(t, m.At(1, 0).Cmp(R("7/3")), "Set must store a copy")

	m.Set(1, 1, nil)
	assert.True(t, m.IsZeroAt(1, 1))
}

// TestOutOfRangePanics ensures indexers fail fast with ErrOutOfRange.
func TestOutOfRangePanics(t *testing.T) {
	m := MustInts(t, [][]int64{{1, 2}, {3, 4}})

	cases := map[string]func(){
		"At row":       func() { m.At(2, 0) },
		"At col":       func() { m.At(0, -1) },
		"Set":          func() { m.Set(-1, 0, R("1")) },
		"ScaleRow":     func() { m.ScaleRow(5, R("2")) },
		"AddScaledRow": func() { m.AddScaledRow(0, 2, R("1")) },
		"SwapRows":     func() { m.SwapRows(0, 9) },
		"Row":          func() { m.Row(3) },
		"Col":          func() { m.Col(2) },
		"Sign":         func() { m.Sign(0, 2) },
	}
	for name, fn := range cases {
		fn := fn
		t.Run(name, func(t *testing.T) {
			defer func() {
				r := recover()
				require.NotNil(t, r, "expected panic")
				err, ok := r.(error)
				require.True(t, ok, "panic value must be an error")
				require.True(t, errors.Is(err, matrix.ErrOutOfRange))
			}()
			fn()
		})
	}
}

// TestScaleRow checks exact scaling and the zero-factor invariant.
func TestScaleRow(t *testing.T) {
	m := MustInts(t, [][]int64{{2, 4, 10}, {1, 1, 1}})
	m.ScaleRow(0, R("1/2"))
	CompareExact(t, [][]string{{"1", "2", "5"}, {"1", "1", "1"}}, m)

	// scaling by one leaves the row untouched
	m.ScaleRow(1, m.Row(1)[0])
	CompareExact(t, [][]string{{"1", "2", "5"}, {"1", "1", "1"}}, m)

	defer func() {
		r := recover()
		require.NotNil(t, r)
		require.ErrorIs(t, r.(error), matrix.ErrZeroPivot)
	}()
	m.ScaleRow(0, new(big.Rat))
}

// TestAddScaledRow checks dst += f*src, including the zero and self cases.
func TestAddScaledRow(t *testing.T) {
	m := MustInts(t, [][]int64{{1, 1, 2}, {2, 2, 4}})

	m.AddScaledRow(1, 0, R("-2"))
	CompareExact(t, [][]string{{"1", "1", "2"}, {"0", "0", "0"}}, m)

	m.AddScaledRow(0, 1, R("5"))
	CompareExact(t, [][]string{{"1", "1", "2"}, {"0", "0", "0"}}, m)

	m.AddScaledRow(0, 0, R("1"))
	CompareExact(t, [][]string{{"2", "2", "4"}, {"0", "0", "0"}}, m)

	m.AddScaledRow(0, 0, new(big.Rat))
	CompareExact(t, [][]string{{"2", "2", "4"}, {"0", "0", "0"}}, m)
}

// TestAddScaledRowFractions keeps results in lowest terms.
func TestAddScaledRowFractions(t *testing.T) {
	m := MustParse(t, [][]string{{"1/3", "1/6"}, {"1/6", "1/3"}})
	m.AddScaledRow(0, 1, R("1/2"))
	CompareExact(t, [][]string{{"5/12", "1/3"}, {"1/6", "1/3"}}, m)
	assert.Equal(t, "1/3", m.At(0, 1).RatString())
}

// TestSwapRows covers distinct rows and self-swap.
func TestSwapRows(t *testing.T) {
	m := MustInts(t, [][]int64{{1, 2}, {3, 4}, {5, 6}})
	m.SwapRows(0, 2)
	CompareExact(t, [][]string{{"5", "6"}, {"3", "4"}, {"1", "2"}}, m)
	m.SwapRows(1, 1)
	CompareExact(t, [][]string{{"5", "6"}, {"3", "4"}, {"1", "2"}}, m)
}

// TestCloneEqual verifies deep-copy independence and structural equality.
func TestCloneEqual(t *testing.T) {
	m := MustParse(t, [][]string{{"1/2", "0"}, {"3", "-4/5"}})
	c := m.Clone()
	require.True(t, m.Equal(c))

	c.Set(0, 0, R("9"))
	require.False(t, m.Equal(c))
	require.Zero(t, m.At(0, 0).Cmp(R("1/2")))

	other := MustInts(t, [][]int64{{1, 2, 3}})
	assert.False(t, m.Equal(other))

	var nilM *matrix.Dense
	assert.True(t, nilM.Equal(nil))
	assert.False(t, m.Equal(nil))
}

// TestRowColToRows checks that accessors return independent copies.
func TestRowColToRows(t *testing.T) {
	m := MustInts(t, [][]int64{{1, 2, 3}, {4, 5, 6}})
	assert.Equal(t, "(4, 5, 6)", m.Row(1).String())
	assert.Equal(t, "(3, 6)", m.Col(2).String())

	rows := m.ToRows()
	rows[0][0].SetInt64(42)
	assert.Zero(t, m.At(0, 0).Cmp(R("1")))
}

// TestDenseString checks the diagnostic rendering.
func TestDenseString(t *testing.T) {
	m := MustParse(t, [][]string{{"1", "-1/2"}, {"0", "3"}})
	assert.Equal(t, "[1, -1/2]\n[0, 3]\n", m.String())
}
