// SPDX-License-Identifier: MIT

// Package equation turns linear equations written as text into an augmented
// matrix ready for row reduction.
//
// Grammar (whitespace is ignored):
//
//	equation := side "=" side
//	side     := [sign] term { sign term }
//	term     := coef | [coef] ["*"] name
//	coef     := integer | integer "/" integer | decimal   (base 10 only)
//	name     := letter { letter | digit | "_" }
//
// "1e3" is rejected as exponent notation; write "1*e3" for a variable e3.
//
// Variables may appear on either side and constants may appear on either
// side; Parse collects variables on the left and constants on the right.
// Columns follow the order in which variables are first seen, across all
// lines. A variable repeated in one equation accumulates ("x + x = 2" is
// "2x = 2").
//
// AI-Hints:
//   - Parse returns the variable names alongside the matrix; pass them to
//     solve.Format to print answers with the user's names.
//   - Read accepts the same "count line, then rows" framing as
//     matrix.ReadAugmented.
package equation
