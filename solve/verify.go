package solve

import (
	"fmt"

	"github.com/katalvlaran/linsys/echelon"
	"github.com/katalvlaran/linsys/matrix"
)

// Verify checks res against the original (unreduced) augmented matrix.
//   - UniqueSolution: A·x = b and rank(A) equals the number of unknowns.
//   - Parametric: A·p = b, A·v = 0 for every basis vector, and the number
//     of basis vectors equals unknowns - rank(A).
//   - Inconsistent: rank(A) < rank([A | b]).
//
// Errors: ErrVerification (wrapped with the failing check), or the
// validation errors of matrix.Coefficients.
func Verify(original *matrix.Dense, res Result) error {
	a, b, err := matrix.Coefficients(original)
	if err != nil {
		return solveErrorf(opVerify, err)
	}
	n := a.Cols()
	if res.Unknowns != n {
		return fmt.Errorf("%s: result has %d unknowns, system has %d: %w", opVerify, res.Unknowns, n, ErrVerification)
	}
	rankA, err := echelon.Rank(a)
	if err != nil {
		return solveErrorf(opVerify, err)
	}

	switch res.Kind {
	case UniqueSolution:
		if rankA != n {
			return fmt.Errorf("%s: rank %d < %d unknowns: %w", opVerify, rankA, n, ErrVerification)
		}
		return satisfies(a, res.Solution, b, "solution")

	case Parametric:
		if err := satisfies(a, res.Particular, b, "particular solution"); err != nil {
			return err
		}
		if len(res.Basis) != n-rankA || len(res.Free) != len(res.Basis) {
			return fmt.Errorf("%s: %d basis vectors, nullity is %d: %w", opVerify, len(res.Basis), n-rankA, ErrVerification)
		}
		zero := matrix.NewVector(a.Rows())
		for _, f := range res.Free {
			v, ok := res.Basis[f]
			if !ok {
				return fmt.Errorf("%s: no basis vector for free column %d: %w", opVerify, f, ErrVerification)
			}
			if err := satisfies(a, v, zero, fmt.Sprintf("basis vector %d", f)); err != nil {
				return err
			}
		}
		return nil

	case Inconsistent:
		rankAug, err := echelon.Rank(original)
		if err != nil {
			return solveErrorf(opVerify, err)
		}
		if rankA >= rankAug {
			return fmt.Errorf("%s: system is consistent (rank %d): %w", opVerify, rankA, ErrVerification)
		}
		return nil

	default:
		return fmt.Errorf("%s: unknown kind %v: %w", opVerify, res.Kind, ErrVerification)
	}
}

// satisfies checks a·x == want.
func satisfies(a *matrix.Dense, x, want matrix.Vector, what string) error {
	got, err := matrix.MulVec(a, x)
	if err != nil {
		return fmt.Errorf("%s: %s: %w", opVerify, what, err)
	}
	if !got.Equal(want) {
		return fmt.Errorf("%s: %s gives %s, want %s: %w", opVerify, what, got, want, ErrVerification)
	}

	return nil
}
