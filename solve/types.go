package solve

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/katalvlaran/linsys/matrix"
)

// Sentinel errors for classification and verification.
var (
	// ErrNotReduced is returned by Classify when its input is not in RREF.
	ErrNotReduced = errors.New("solve: matrix is not in reduced row-echelon form")

	// ErrNoUnknowns is returned when the matrix has no coefficient column
	// (fewer than two columns).
	ErrNoUnknowns = errors.New("solve: system has no unknowns")

	// ErrNoSolution is returned by Result.Evaluate for an inconsistent system.
	ErrNoSolution = errors.New("solve: system has no solution")

	// ErrVerification is returned by Verify when a Result does not satisfy
	// the original system.
	ErrVerification = errors.New("solve: result does not satisfy the system")
)

const (
	opClassify = "Classify"
	opSolve    = "Solve"
	opVerify   = "Verify"
	opEvaluate = "Evaluate"
)

func solveErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Kind tags the three possible shapes of a solution set.
type Kind int

const (
	// Inconsistent means the system has no solution.
	Inconsistent Kind = iota
	// UniqueSolution means exactly one x satisfies the system.
	UniqueSolution
	// Parametric means infinitely many solutions, parameterized by free variables.
	Parametric
)

// String returns a short human-readable name.
func (k Kind) String() string {
	switch k {
	case Inconsistent:
		return "inconsistent"
	case UniqueSolution:
		return "unique"
	case Parametric:
		return "parametric"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Result is the tagged outcome of classifying a reduced system.
//   - Unknowns is cols-1 for every kind.
//   - Rank is the number of pivots in the coefficient block.
//   - Solution is set only for UniqueSolution.
//   - Particular, Basis and Free are set only for Parametric; Free lists the
//     free columns in ascending order and Basis has one vector per entry.
type Result struct {
	Kind       Kind
	Unknowns   int
	Rank       int
	Solution   matrix.Vector
	Particular matrix.Vector
	Basis      map[int]matrix.Vector
	Free       []int
}

// Evaluate returns one concrete solution.
//   - UniqueSolution: the solution; params are ignored.
//   - Parametric: Particular + Σ params[f]·Basis[f]; a missing parameter is 0.
//   - Inconsistent: ErrNoSolution.
//
// A parameter keyed by a column that is not free is rejected with
// matrix.ErrOutOfRange.
func (r Result) Evaluate(params map[int]*big.Rat) (matrix.Vector, error) {
	switch r.Kind {
	case UniqueSolution:
		return r.Solution.Clone(), nil
	case Parametric:
		x := r.Particular.Clone()
		for f, t := range params {
			b, ok := r.Basis[f]
			if !ok {
				return nil, fmt.Errorf("%s: column %d is not free: %w", opEvaluate, f, matrix.ErrOutOfRange)
			}
			if t == nil {
				continue
			}
			var err error
			if x, err = x.Add(b.Scale(t)); err != nil {
				return nil, solveErrorf(opEvaluate, err)
			}
		}
		return x, nil
	default:
		return nil, solveErrorf(opEvaluate, ErrNoSolution)
	}
}
