// SPDX-License-Identifier: MIT

// Package matrix: Vector, an exact rational vector with named arithmetic.
// Operations never mutate their receiver or arguments; results are freshly
// allocated so callers may keep references to inputs.

package matrix

import (
	"fmt"
	"math/big"
	"strings"
)

// Vector is a fixed-length sequence of exact rationals.
// A nil entry is treated as 0 by every method.
type Vector []*big.Rat

// NewVector returns a zero vector of length n.
func NewVector(n int) Vector {
	v := make(Vector, n)
	for i := range v {
		v[i] = new(big.Rat)
	}

	return v
}

// VectorFromInts builds a Vector from integer components.
func VectorFromInts(xs ...int64) Vector {
	v := make(Vector, len(xs))
	for i, x := range xs {
		v[i] = new(big.Rat).SetInt64(x)
	}

	return v
}

// Len returns the number of components.
func (v Vector) Len() int { return len(v) }

// at returns component i, reading nil as zero.
func (v Vector) at(i int) *big.Rat {
	if v[i] == nil {
		return new(big.Rat)
	}

	return v[i]
}

// Clone returns a deep copy of v.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	for i := range v {
		out[i] = new(big.Rat).Set(v.at(i))
	}

	return out
}

// Add returns v + w. Errors: ErrDimensionMismatch.
func (v Vector) Add(w Vector) (Vector, error) {
	if len(v) != len(w) {
		return nil, matrixErrorf(opVecAdd, ErrDimensionMismatch)
	}
	out := make(Vector, len(v))
	for i := range v {
		out[i] = new(big.Rat).Add(v.at(i), w.at(i))
	}

	return out, nil
}

// Sub returns v - w. Errors: ErrDimensionMismatch.
func (v Vector) Sub(w Vector) (Vector, error) {
	if len(v) != len(w) {
		return nil, matrixErrorf(opVecSub, ErrDimensionMismatch)
	}
	out := make(Vector, len(v))
	for i := range v {
		out[i] = new(big.Rat).Sub(v.at(i), w.at(i))
	}

	return out, nil
}

// Scale returns alpha·v. A nil alpha is read as 0.
func (v Vector) Scale(alpha *big.Rat) Vector {
	if alpha == nil {
		alpha = new(big.Rat)
	}
	out := make(Vector, len(v))
	for i := range v {
		out[i] = new(big.Rat).Mul(v.at(i), alpha)
	}

	return out
}

// Dot returns the inner product Σ v_i·w_i. Errors: ErrDimensionMismatch.
func (v Vector) Dot(w Vector) (*big.Rat, error) {
	if len(v) != len(w) {
		return nil, matrixErrorf(opDot, ErrDimensionMismatch)
	}
	sum, tmp := new(big.Rat), new(big.Rat)
	for i := range v {
		sum.Add(sum, tmp.Mul(v.at(i), w.at(i)))
	}

	return sum, nil
}

// Equal reports component-wise equality; vectors of different length differ.
func (v Vector) Equal(w Vector) bool {
	if len(v) != len(w) {
		return false
	}
	for i := range v {
		if v.at(i).Cmp(w.at(i)) != 0 {
			return false
		}
	}

	return true
}

// IsZero reports whether every component is 0. The empty vector is zero.
func (v Vector) IsZero() bool {
	for i := range v {
		if v.at(i).Sign() != 0 {
			return false
		}
	}

	return true
}

// String renders v as a tuple, e.g. "(2, -1/3, 0)".
func (v Vector) String() string {
	parts := make([]string, len(v))
	for i := range v {
		parts[i] = v.at(i).RatString()
	}

	return "(" + strings.Join(parts, _fmtSep) + ")"
}

// Format implements fmt.Formatter so %v and %s print the tuple form
// instead of the pointer slice.
func (v Vector) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		_, _ = f.Write([]byte(v.String()))
	default:
		_, _ = fmt.Fprintf(f, "%%!%c(matrix.Vector=%s)", verb, v.String())
	}
}
