package echelon_test

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/katalvlaran/linsys/matrix"
	"github.com/stretchr/testify/require"
)

// mustParse builds a Dense from rational literals or fails the test.
func mustParse(t testing.TB, rows [][]string) *matrix.Dense {
	t.Helper()
	m, err := matrix.ParseRows(rows)
	require.NoError(t, err)

	return m
}

// compareExact asserts m equals want cell by cell.
func compareExact(t testing.TB, want [][]string, m *matrix.Dense) {
	t.Helper()
	require.True(t, mustParse(t, want).Equal(m), "got:\n%swant:\n%v", m, want)
}

// randomSystem returns an r×c integer matrix with entries in [-5, 5]. About a
// third of the entries are zeroed so rank deficiency and empty columns occur.
func randomSystem(t testing.TB, rng *rand.Rand, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if rng.Intn(3) == 0 {
				continue
			}
			m.Set(i, j, big.NewRat(rng.Int63n(11)-5, 1))
		}
	}
	// duplicate a row now and then to force dependent equations
	if r > 1 && rng.Intn(2) == 0 {
		src, dst := rng.Intn(r), rng.Intn(r)
		if src != dst {
			for j := 0; j < c; j++ {
				m.Set(dst, j, m.At(src, j))
			}
		}
	}

	return m
}
