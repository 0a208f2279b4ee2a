// SPDX-License-Identifier: MIT

package equation

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax is returned for text that is not a linear equation.
	ErrSyntax = errors.New("equation: syntax error")

	// ErrEmpty is returned when there are no equations to parse.
	ErrEmpty = errors.New("equation: no equations")
)

const (
	opParse = "Parse"
	opRead  = "Read"
)

// syntaxErrorf reports a syntax problem on a 1-based line.
func syntaxErrorf(line int, format string, args ...any) error {
	return fmt.Errorf("%s: line %d: %s: %w", opParse, line, fmt.Sprintf(format, args...), ErrSyntax)
}
