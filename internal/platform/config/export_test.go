package config

import "io"

// Capture redirects Exitf for the duration of a test.
func Capture(w io.Writer, onExit func(code int)) (restore func()) {
	prevExit, prevErr := exit, stderr
	exit, stderr = onExit, w

	return func() { exit, stderr = prevExit, prevErr }
}
