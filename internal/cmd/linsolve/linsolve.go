// SPDX-License-Identifier: MIT

// Package linsolve implements the linsolve command: read a linear system,
// reduce it exactly and print the classification.
package linsolve

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/big"

	"github.com/katalvlaran/linsys/echelon"
	"github.com/katalvlaran/linsys/equation"
	"github.com/katalvlaran/linsys/internal/platform/config"
	"github.com/katalvlaran/linsys/matrix"
	"github.com/katalvlaran/linsys/solve"
)

// Input modes.
const (
	ModeMatrix    = "matrix"
	ModeEquations = "equations"
)

// ErrUnknownMode is returned by Run for a mode other than ModeMatrix or
// ModeEquations.
var ErrUnknownMode = errors.New("linsolve: unknown input mode")

// Config holds linsolve command configuration.
type Config struct {
	Mode     string `env:"LINSOLVE_MODE"      envDefault:"matrix"`
	Steps    bool   `env:"LINSOLVE_STEPS"`
	Verify   bool   `env:"LINSOLVE_VERIFY"`
	ShowRREF bool   `env:"LINSOLVE_SHOW_RREF"`
}

// ParseConfig reads the environment, then lets flags in args override it.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.Mode, "mode", cfg.Mode, "input format: matrix or equations")
	fs.BoolVar(&cfg.Steps, "steps", cfg.Steps, "log every row operation to stderr")
	fs.BoolVar(&cfg.Verify, "verify", cfg.Verify, "substitute the result back into the system")
	fs.BoolVar(&cfg.ShowRREF, "rref", cfg.ShowRREF, "print the reduced matrix")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// system is a parsed input: the augmented matrix and optional column names.
type system struct {
	m     *matrix.Dense
	names []string
	err   error
}

// Run reads one system from in, writes the answer to out and, when asked,
// the reduction steps to errOut. Cancelling ctx abandons a pending read.
func Run(ctx context.Context, cfg Config, in io.Reader, out, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}

	var read func(io.Reader) system
	switch cfg.Mode {
	case ModeMatrix:
		read = func(r io.Reader) system {
			m, err := matrix.ReadAugmented(r)
			return system{m: m, err: err}
		}
	case ModeEquations:
		read = func(r io.Reader) system {
			m, names, err := equation.Read(r)
			return system{m: m, names: names, err: err}
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMode, cfg.Mode)
	}

	done := make(chan system, 1)
	go func() { done <- read(in) }()

	var sys system
	select {
	case <-ctx.Done():
		return ctx.Err()
	case sys = <-done:
	}
	if sys.err != nil {
		return fmt.Errorf("read input: %w", sys.err)
	}

	logger := log.New(errOut, "", 0)
	var opts []echelon.Option
	if cfg.Steps {
		opts = stepLogging(logger)
	}

	res, reduced, err := solve.Solve(sys.m, opts...)
	if err != nil {
		return err
	}
	if cfg.ShowRREF {
		fmt.Fprintf(out, "RREF:\n%s", reduced)
	}
	fmt.Fprintln(out, solve.Format(res, sys.names))

	if cfg.Verify {
		if err := solve.Verify(sys.m, res); err != nil {
			return err
		}
		logger.Printf("verified: %s", res.Kind)
	}

	return nil
}

// stepLogging returns hooks printing each row operation in R-notation,
// rows numbered from 1.
func stepLogging(logger *log.Logger) []echelon.Option {
	return []echelon.Option{
		echelon.WithOnSwap(func(r1, r2 int) {
			logger.Printf("R%d <-> R%d", r1+1, r2+1)
		}),
		echelon.WithOnScale(func(row int, factor *big.Rat) {
			logger.Printf("R%d <- (%s)R%d", row+1, factor.RatString(), row+1)
		}),
		echelon.WithOnEliminate(func(dst, src int, factor *big.Rat) {
			logger.Printf("R%d <- R%d + (%s)R%d", dst+1, dst+1, factor.RatString(), src+1)
		}),
		echelon.WithOnStage(func(stage echelon.Stage, m *matrix.Dense) {
			logger.Printf("%s:\n%s", stage, m)
		}),
	}
}
