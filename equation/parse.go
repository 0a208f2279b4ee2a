// SPDX-License-Identifier: MIT

package equation

import (
	"bufio"
	"fmt"
	"io"
	"math/big"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/katalvlaran/linsys/matrix"
)

// side is one side of an equation: variable coefficients plus a constant.
type side struct {
	coefs map[string]*big.Rat
	order []string
	konst *big.Rat
}

// Parse converts equation lines into an augmented matrix [A | b] and the
// variable names labelling A's columns. Blank lines are skipped.
//
// Errors:
//   - ErrEmpty when no non-blank line is given.
//   - ErrSyntax (with the 1-based line number) for malformed text, or when
//     no line mentions a variable.
func Parse(lines []string) (*matrix.Dense, []string, error) {
	var (
		names []string
		index = map[string]int{}
		eqs   []side
	)
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		eq, err := parseEquation(i+1, line)
		if err != nil {
			return nil, nil, err
		}
		for _, name := range eq.order {
			if _, seen := index[name]; !seen {
				index[name] = len(names)
				names = append(names, name)
			}
		}
		eqs = append(eqs, eq)
	}
	if len(eqs) == 0 {
		return nil, nil, fmt.Errorf("%s: %w", opParse, ErrEmpty)
	}
	if len(names) == 0 {
		return nil, nil, fmt.Errorf("%s: no variables: %w", opParse, ErrSyntax)
	}

	rows := make([][]*big.Rat, len(eqs))
	for i, eq := range eqs {
		row := make([]*big.Rat, len(names)+1)
		for name, c := range eq.coefs {
			row[index[name]] = c
		}
		row[len(names)] = eq.konst
		rows[i] = row
	}
	m, err := matrix.NewFromRows(rows)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opParse, err)
	}

	return m, names, nil
}

// Read reads a count line followed by that many equation lines.
// Errors: ErrSyntax for a bad count, ErrEmpty for a zero count, a wrapped
// io.ErrUnexpectedEOF for a short stream, and Parse errors.
func Read(r io.Reader) (*matrix.Dense, []string, error) {
	sc := bufio.NewScanner(r)
	next := func() (string, bool) {
		for sc.Scan() {
			if line := strings.TrimSpace(sc.Text()); line != "" {
				return line, true
			}
		}
		return "", false
	}

	head, ok := next()
	if !ok {
		if err := sc.Err(); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", opRead, err)
		}
		return nil, nil, fmt.Errorf("%s: %w", opRead, io.ErrUnexpectedEOF)
	}
	n, err := strconv.Atoi(head)
	if err != nil || n < 0 {
		return nil, nil, fmt.Errorf("%s: equation count %q: %w", opRead, head, ErrSyntax)
	}
	if n == 0 {
		return nil, nil, fmt.Errorf("%s: %w", opRead, ErrEmpty)
	}
	lines := make([]string, 0, n)
	for len(lines) < n {
		line, ok := next()
		if !ok {
			if err := sc.Err(); err != nil {
				return nil, nil, fmt.Errorf("%s: %w", opRead, err)
			}
			return nil, nil, fmt.Errorf("%s: got %d of %d equations: %w", opRead, len(lines), n, io.ErrUnexpectedEOF)
		}
		lines = append(lines, line)
	}

	m, names, err := Parse(lines)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opRead, err)
	}

	return m, names, nil
}

// parseEquation folds "lhs = rhs" into lhs - rhs vars on the left and
// rhs - lhs constants on the right.
func parseEquation(lineNo int, line string) (side, error) {
	text := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, line)
	lhsText, rhsText, found := strings.Cut(text, "=")
	if !found {
		return side{}, syntaxErrorf(lineNo, "missing %q", "=")
	}
	if strings.Contains(rhsText, "=") {
		return side{}, syntaxErrorf(lineNo, "more than one %q", "=")
	}
	lhs, err := parseSide(lineNo, lhsText)
	if err != nil {
		return side{}, err
	}
	rhs, err := parseSide(lineNo, rhsText)
	if err != nil {
		return side{}, err
	}

	for _, name := range rhs.order {
		lhs.add(name, new(big.Rat).Neg(rhs.coefs[name]))
	}
	lhs.konst.Sub(rhs.konst, lhs.konst)

	return lhs, nil
}

// parseSide parses a signed sum of terms. The empty string is an error.
func parseSide(lineNo int, s string) (side, error) {
	out := side{coefs: map[string]*big.Rat{}, konst: new(big.Rat)}
	if s == "" {
		return out, syntaxErrorf(lineNo, "empty side")
	}

	i := 0
	for i < len(s) {
		neg := false
		if s[i] == '+' || s[i] == '-' {
			neg = s[i] == '-'
			i++
		}
		j := i
		for j < len(s) && s[j] != '+' && s[j] != '-' {
			j++
		}
		coef, name, err := parseTerm(s[i:j])
		if err != nil {
			return out, syntaxErrorf(lineNo, "%v", err)
		}
		if neg {
			coef.Neg(coef)
		}
		if name == "" {
			out.konst.Add(out.konst, coef)
		} else {
			out.add(name, coef)
		}
		i = j
	}

	return out, nil
}

func (s *side) add(name string, c *big.Rat) {
	if prev, ok := s.coefs[name]; ok {
		prev.Add(prev, c)
		return
	}
	s.coefs[name] = new(big.Rat).Set(c)
	s.order = append(s.order, name)
}

// exponentTail matches a name that would read as a float exponent when glued
// to a coefficient, as in "1e3" or "2E10".
var exponentTail = regexp.MustCompile(`^[eE][0-9]`)

// parseTerm splits "3/2x", "x", "2*y" or "7" into a coefficient and an
// optional variable name. Exponent notation ("1e3") is rejected rather than
// read as the coefficient 1 on a variable "e3"; write "1*e3" for that.
func parseTerm(t string) (*big.Rat, string, error) {
	if t == "" {
		return nil, "", fmt.Errorf("missing term")
	}
	k := strings.IndexFunc(t, unicode.IsLetter)
	if k < 0 {
		c, err := matrix.ParseRat(t)
		if err != nil {
			return nil, "", err
		}
		return c, "", nil
	}

	name := t[k:]
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return nil, "", fmt.Errorf("bad variable name %q", name)
		}
	}
	if k > 0 && t[k-1] != '*' && exponentTail.MatchString(name) {
		return nil, "", fmt.Errorf("exponent notation %q is not supported", t)
	}
	coefText := strings.TrimSuffix(t[:k], "*")
	if coefText == "" {
		if k > 0 {
			return nil, "", fmt.Errorf("dangling %q in %q", "*", t)
		}
		return big.NewRat(1, 1), name, nil
	}
	c, err := matrix.ParseRat(coefText)
	if err != nil {
		return nil, "", err
	}

	return c, name, nil
}
