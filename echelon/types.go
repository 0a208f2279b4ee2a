// Package echelon provides tunable options and error definitions
// for row reduction over a matrix.Dense.
package echelon

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/katalvlaran/linsys/matrix"
)

// Sentinel errors for row reduction.
var (
	// ErrNotEchelon is returned by RREF when its input is not in normalized REF
	// (leading entries strictly increasing, each equal to 1, zero rows last).
	ErrNotEchelon = errors.New("echelon: matrix is not in normalized row-echelon form")

	// ErrSingular is returned by Inverse when the matrix has rank < n.
	ErrSingular = errors.New("echelon: matrix is singular")
)

// Operation tags used in error wrapping.
const (
	opREF    = "REF"
	opRREF   = "RREF"
	opReduce = "Reduce"
	opRank   = "Rank"
	opInv    = "Inverse"
)

// echelonErrorf wraps err with an operation tag; callers match with errors.Is.
func echelonErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Pivot is the position of a row's leading entry in an echelon matrix.
type Pivot struct {
	Row int
	Col int
}

// Stage names a completed reduction phase, reported through WithOnStage.
type Stage int

const (
	// StageREF marks completion of forward elimination.
	StageREF Stage = iota
	// StageRREF marks completion of back substitution.
	StageRREF
)

// String returns "REF" or "RREF".
func (s Stage) String() string {
	switch s {
	case StageREF:
		return "REF"
	case StageRREF:
		return "RREF"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// Option configures reduction behavior via functional arguments.
type Option func(*Options)

// Options holds callbacks observing the elementary row operations.
// Hooks receive copies of rational arguments; mutating them has no effect.
type Options struct {
	// OnSwap is called after rows r1 and r2 were exchanged.
	OnSwap func(r1, r2 int)

	// OnScale is called after row was multiplied by factor.
	OnScale func(row int, factor *big.Rat)

	// OnEliminate is called after dst += factor·src.
	OnEliminate func(dst, src int, factor *big.Rat)

	// OnPivot is called once per pivot, right after it was normalized to 1.
	OnPivot func(p Pivot)

	// OnStage is called when a stage completes. The matrix must be treated
	// as read-only inside the callback.
	OnStage func(stage Stage, m *matrix.Dense)
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnSwap:      func(int, int) {},
		OnScale:     func(int, *big.Rat) {},
		OnEliminate: func(int, int, *big.Rat) {},
		OnPivot:     func(Pivot) {},
		OnStage:     func(Stage, *matrix.Dense) {},
	}
}

// gatherOptions applies user options over the defaults.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// WithOnSwap registers a callback to run after each row swap.
func WithOnSwap(fn func(r1, r2 int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSwap = fn
		}
	}
}

// WithOnScale registers a callback to run after each row scaling.
func WithOnScale(fn func(row int, factor *big.Rat)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnScale = fn
		}
	}
}

// WithOnEliminate registers a callback to run after each row combination.
func WithOnEliminate(fn func(dst, src int, factor *big.Rat)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEliminate = fn
		}
	}
}

// WithOnPivot registers a callback to run for each pivot found by REF.
func WithOnPivot(fn func(p Pivot)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPivot = fn
		}
	}
}

// WithOnStage registers a callback to run when REF or RREF completes.
func WithOnStage(fn func(stage Stage, m *matrix.Dense)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStage = fn
		}
	}
}
