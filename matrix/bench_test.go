// Package matrix_test provides benchmarks for rational row operations,
// using deterministic random integer fill.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/linsys/matrix"
)

// benchSizes are the matrix sizes to benchmark; inputs are human-scale.
var benchSizes = []int{4, 8, 16}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Dense
	sinkS string
)

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandomInts(b, n, n, 9, 1337)
			B := RandomInts(b, n, n, 9, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkDet(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandomInts(b, n, n, 9, 7)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				d, err := matrix.Det(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkS = d.RatString()
			}
		})
	}
}

func BenchmarkAddScaledRow(b *testing.B) {
	b.ReportAllocs()
	A := RandomInts(b, 2, 64, 9, 99)
	f := R("-3/7")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		A.AddScaledRow(1, 0, f)
	}
	sinkM = A
}
