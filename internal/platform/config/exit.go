// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"io"
	"os"
)

// exit and stderr are swapped out by tests.
var (
	exit             = os.Exit
	stderr io.Writer = os.Stderr
)

// Exitf prints a formatted message and a newline to stderr and exits with
// status 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(stderr, format+"\n", args...)
	exit(1)
}
