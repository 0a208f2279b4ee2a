// SPDX-License-Identifier: MIT

// Package matrix: text ingestion for augmented matrices.
//
// Format (one matrix per stream):
//
//	<row count>
//	<tok> <tok> ... <tok>     (row 0)
//	...                       (row count-1)
//
// Tokens are base-10 integers ("-3"), fractions ("7/2") or decimals ("0.25");
// decimals are converted exactly ("0.25" → 1/4). Blank lines are skipped.

package matrix

import (
	"bufio"
	"fmt"
	"io"
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

// ratToken is the accepted token grammar: an optionally signed run of
// decimal digits, optionally followed by ".digits" or "/digits".
var ratToken = regexp.MustCompile(`^[+-]?[0-9]+(\.[0-9]+|/[0-9]+)?$`)

// ParseRat parses a single exact rational token. Digits are always base 10:
// "010/3" is 10/3, and prefixes such as "0x" or exponents such as "1e3" are
// rejected.
// Errors: ErrParse for empty text, a zero denominator, or any other text.
func ParseRat(tok string) (*big.Rat, error) {
	tok = strings.TrimSpace(tok)
	if tok == "" {
		return nil, fmt.Errorf("%w: empty token", ErrParse)
	}
	if !ratToken.MatchString(tok) {
		return nil, fmt.Errorf("%w: %q", ErrParse, tok)
	}

	num, den := tok, "1"
	if n, d, isFrac := strings.Cut(tok, "/"); isFrac {
		num, den = n, d
	} else if whole, frac, isDec := strings.Cut(tok, "."); isDec {
		num, den = whole+frac, "1"+strings.Repeat("0", len(frac))
	}
	n, ok := new(big.Int).SetString(num, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrParse, tok)
	}
	d, ok := new(big.Int).SetString(den, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrParse, tok)
	}
	if d.Sign() == 0 {
		return nil, fmt.Errorf("%w: %q has zero denominator", ErrParse, tok)
	}

	return new(big.Rat).SetFrac(n, d), nil
}

// ParseRows converts rows of tokens into a Dense.
// Errors: ErrParse (with row/column coordinates), plus NewFromRows errors.
func ParseRows(rows [][]string) (*Dense, error) {
	rr := make([][]*big.Rat, len(rows))
	for i, row := range rows {
		rr[i] = make([]*big.Rat, len(row))
		for j, tok := range row {
			v, err := ParseRat(tok)
			if err != nil {
				return nil, fmt.Errorf("%s: row %d col %d: %w", opParseRows, i, j, err)
			}
			rr[i][j] = v
		}
	}

	return NewFromRows(rr)
}

// ReadAugmented reads a row count followed by that many token rows from r.
// MAIN DESCRIPTION:
//   - Boundary reader for the line-oriented input format described above.
//
// Errors:
//   - ErrParse if the count is not a non-negative integer or a token is malformed.
//   - ErrEmptyMatrix if the count is 0 or a row has no tokens.
//   - io.ErrUnexpectedEOF (wrapped) if the stream ends early.
//   - ErrDimensionMismatch if rows have unequal length.
func ReadAugmented(r io.Reader) (*Dense, error) {
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
			return nil, matrixErrorf(opRead, err)
		}
		return nil, matrixErrorf(opRead, io.ErrUnexpectedEOF)
	}
	n, err := strconv.Atoi(head)
	if err != nil || n < 0 {
		return nil, fmt.Errorf("%s: row count %q: %w", opRead, head, ErrParse)
	}
	if n == 0 {
		return nil, matrixErrorf(opRead, ErrEmptyMatrix)
	}

	rows := make([][]string, 0, n)
	for len(rows) < n {
		line, ok := next()
		if !ok {
			if err := sc.Err(); err != nil {
				return nil, matrixErrorf(opRead, err)
			}
			return nil, fmt.Errorf("%s: got %d of %d rows: %w", opRead, len(rows), n, io.ErrUnexpectedEOF)
		}
		rows = append(rows, strings.Fields(line))
	}

	m, err := ParseRows(rows)
	if err != nil {
		return nil, matrixErrorf(opRead, err)
	}

	return m, nil
}
