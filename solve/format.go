package solve

import (
	"fmt"
	"strings"
)

const (
	msgInconsistent = "Inconsistent / No Solution."
	msgInfinite     = "Infinite Solutions:"
)

// DefaultNames returns x0..x{n-1}.
func DefaultNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("x%d", i)
	}

	return names
}

// Format renders res for people. names label the unknowns; when len(names)
// does not match res.Unknowns the defaults x0, x1, ... are used. In the
// parametric form each free variable's name also labels its basis vector,
// so names {"x", "y"} give "(x, y) = (2, 0) + y(-1, 1)".
//
//	Inconsistent / No Solution.
//	(x0, x1) = (3, 5)
//	Infinite Solutions:
//	(x0, x1) = (2, 0) + x1(-1, 1)
func Format(res Result, names []string) string {
	if len(names) != res.Unknowns {
		names = DefaultNames(res.Unknowns)
	}
	lhs := "(" + strings.Join(names, ", ") + ") = "

	switch res.Kind {
	case UniqueSolution:
		return lhs + res.Solution.String()
	case Parametric:
		var sb strings.Builder
		sb.WriteString(msgInfinite)
		sb.WriteString("\n")
		sb.WriteString(lhs)
		sb.WriteString(res.Particular.String())
		for _, f := range res.Free {
			sb.WriteString(" + ")
			sb.WriteString(names[f])
			sb.WriteString(res.Basis[f].String())
		}
		return sb.String()
	default:
		return msgInconsistent
	}
}

// String renders r with default variable names.
func (r Result) String() string { return Format(r, nil) }
