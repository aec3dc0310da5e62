// Package inline implements the non-interactive, machine-readable execution mode.
package inline

import "io"

type Options struct {
	Out io.Writer

	// Path of the game to inspect.
	Path string

	// Json switches the output from plain key = value lines to a single
	// JSON document.
	Json bool
}
