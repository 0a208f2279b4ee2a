// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for Dense/Vector tests.
//   • Keep every literal exact (integers or "n/d" strings) so comparisons are structural.

package matrix_test

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/katalvlaran/linsys/matrix"
	"github.com/stretchr/testify/require"
)

// MustInts BUILDS a Dense from integer rows or fails the test.
func MustInts(t testing.TB, rows [][]int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromInts(rows)
	require.NoError(t, err)

	return m
}

// MustParse BUILDS a Dense from token rows ("1/2", "-3", ...) or fails the test.
func MustParse(t testing.TB, rows [][]string) *matrix.Dense {
	t.Helper()
	m, err := matrix.ParseRows(rows)
	require.NoError(t, err)

	return m
}

// R PARSES a rational literal; it panics on malformed input (fixtures only).
func R(s string) *big.Rat {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		panic("bad rational literal in test: " + s)
	}

	return r
}

// CompareExact ASSERTS that m equals want cell by cell, where want holds
// rational literals.
func CompareExact(t testing.TB, want [][]string, m *matrix.Dense) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "row count")
	for i := range want {
		require.Equal(t, len(want[i]), m.Cols(), "col count at row %d", i)
		for j := range want[i] {
			got := m.At(i, j)
			require.Zerof(t, got.Cmp(R(want[i][j])),
				"cell [%d,%d]: got %s, want %s", i, j, got.RatString(), want[i][j])
		}
	}
}

// RandomInts FILLS an r×c Dense with integers in [-bound, bound] from a fixed seed.
func RandomInts(t testing.TB, r, c int, bound int64, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]int64, r)
	for i := range rows {
		rows[i] = make([]int64, c)
		for j := range rows[i] {
			rows[i][j] = rng.Int63n(2*bound+1) - bound
		}
	}

	return MustInts(t, rows)
}
