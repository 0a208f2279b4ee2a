package linsolve

import (
	"bytes"
	"context"
	"flag"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsys/equation"
	"github.com/katalvlaran/linsys/matrix"
	"github.com/katalvlaran/linsys/solve"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("linsolve", flag.ContinueOnError)

	cfg, err := ParseConfig(fs, nil)
	require.NoError(t, err)
	assert.Equal(t, Config{Mode: ModeMatrix}, cfg)
}

func TestParseConfigEnvAndFlags(t *testing.T) {
	t.Setenv("LINSOLVE_MODE", "equations")
	t.Setenv("LINSOLVE_VERIFY", "true")

	fs := flag.NewFlagSet("linsolve", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-steps", "-rref", "-verify=false"})
	require.NoError(t, err)
	assert.Equal(t, Config{Mode: ModeEquations, Steps: true, ShowRREF: true}, cfg)
}

func TestParseConfigEnvError(t *testing.T) {
	t.Setenv("LINSOLVE_STEPS", "maybe")

	_, err := ParseConfig(flag.NewFlagSet("linsolve", flag.ContinueOnError), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestParseConfigFlagError(t *testing.T) {
	fs := flag.NewFlagSet("linsolve", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	_, err := ParseConfig(fs, []string{"-nope"})
	require.Error(t, err)
}

func run(t *testing.T, cfg Config, input string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := Run(context.Background(), cfg, strings.NewReader(input), &out, &errOut)

	return out.String(), errOut.String(), err
}

func TestRunMatrixMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"unique", "2\n1 0 3\n0 1 5\n", "(x0, x1) = (3, 5)\n"},
		{"parametric", "2\n1 1 2\n2 2 4\n", "Infinite Solutions:\n(x0, x1) = (2, 0) + x1(-1, 1)\n"},
		{"inconsistent", "1\n0 0 1\n", "Inconsistent / No Solution.\n"},
		{"fractions", "1\n1/2 1/4\n", "(x0) = (1/2)\n"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			out, errOut, err := run(t, Config{Mode: ModeMatrix}, tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
			assert.Empty(t, errOut)
		})
	}
}

func TestRunEquationsMode(t *testing.T) {
	t.Parallel()

	out, _, err := run(t, Config{Mode: ModeEquations, ShowRREF: true}, "2\n2a - 3b = 7\na + b = 1\n")
	require.NoError(t, err)
	assert.Equal(t, "RREF:\n[1, 0, 2]\n[0, 1, -1]\n(a, b) = (2, -1)\n", out)
}

func TestRunStepsAndVerify(t *testing.T) {
	t.Parallel()

	_, errOut, err := run(t, Config{Mode: ModeMatrix, Steps: true, Verify: true}, "2\n1 1 2\n2 2 4\n")
	require.NoError(t, err)
	assert.Contains(t, errOut, "R2 <- R2 + (-2)R1")
	assert.Contains(t, errOut, "REF:\n[1, 1, 2]\n[0, 0, 0]\n")
	assert.Contains(t, errOut, "RREF:\n")
	assert.Contains(t, errOut, "verified: parametric")

	_, errOut, err = run(t, Config{Mode: ModeMatrix, Steps: true}, "2\n0 2 4\n3 6 9\n")
	require.NoError(t, err)
	assert.Contains(t, errOut, "R2 <-> R1")
	assert.Contains(t, errOut, "R1 <- (1/3)R1")
}

func TestRunErrors(t *testing.T) {
	t.Parallel()

	_, _, err := run(t, Config{Mode: "csv"}, "")
	require.ErrorIs(t, err, ErrUnknownMode)

	_, _, err = run(t, Config{Mode: ModeMatrix}, "2\n1 2 3\n1 2\n")
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, _, err = run(t, Config{Mode: ModeMatrix}, "1\n1 x 3\n")
	require.ErrorIs(t, err, matrix.ErrParse)

	_, _, err = run(t, Config{Mode: ModeMatrix}, "1\n7\n")
	require.ErrorIs(t, err, solve.ErrNoUnknowns)

	_, _, err = run(t, Config{Mode: ModeEquations}, "1\nx + = 2\n")
	require.ErrorIs(t, err, equation.ErrSyntax)
}

func TestRunCancelledWhileReading(t *testing.T) {
	t.Parallel()

	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Run(ctx, Config{Mode: ModeMatrix}, pr, nil, nil)
	require.ErrorIs(t, err, context.Canceled)
}
