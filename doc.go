// Package linsys solves systems of linear equations exactly.
//
// Every value is a rational number (math/big.Rat), so row reduction never
// rounds: 1/3 stays 1/3 and a system is classified by exact zero tests.
//
// What is inside:
//
//	matrix/      Dense rational matrices, vectors, elementary row operations,
//	             parsing of the "count, then rows" text format
//	echelon/     row-echelon (REF) and reduced row-echelon (RREF) forms,
//	             pivots, rank, exact inverse
//	solve/       classification into Inconsistent / UniqueSolution /
//	             Parametric, verification and printing of solutions
//	equation/    "2x - 3y = 7" text to an augmented matrix
//	cmd/linsolve   command-line front end
//
// Quick start:
//
//	m, _ := matrix.NewFromInts([][]int64{{1, 1, 2}, {2, 2, 4}})
//	res, _, _ := solve.Solve(m)
//	fmt.Println(res)
//	// Infinite Solutions:
//	// (x0, x1) = (2, 0) + x1(-1, 1)
//
// Row operations can be observed through echelon options (WithOnSwap,
// WithOnScale, WithOnEliminate, WithOnPivot, WithOnStage); the library
// itself never logs.
package linsys
