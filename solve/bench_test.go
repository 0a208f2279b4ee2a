package solve_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/linsys/matrix"
	"github.com/katalvlaran/linsys/solve"
)

var sinkResult solve.Result

func benchSystem(b *testing.B, r, c int) *matrix.Dense {
	b.Helper()
	rng := rand.New(rand.NewSource(int64(r*31 + c)))
	rows := make([][]int64, r)
	for i := range rows {
		rows[i] = make([]int64, c)
		for j := range rows[i] {
			rows[i][j] = rng.Int63n(19) - 9
		}
	}
	m, err := matrix.NewFromInts(rows)
	if err != nil {
		b.Fatal(err)
	}

	return m
}

func BenchmarkSolve(b *testing.B) {
	for _, n := range []int{4, 8, 16} {
		m := benchSystem(b, n, n+1)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				res, _, err := solve.Solve(m)
				if err != nil {
					b.Fatal(err)
				}
				sinkResult = res
			}
		})
	}
}

func BenchmarkVerify(b *testing.B) {
	m := benchSystem(b, 8, 9)
	res, _, err := solve.Solve(m)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = solve.Verify(m, res)
	}
}
