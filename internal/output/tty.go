package output

import (
	"os"

	"golang.org/x/term"
)

// isTerminal reports whether stdout is attached to a terminal.
// Replaced in tests.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// IsTTY reports whether stdout is an interactive terminal.
func IsTTY() bool {
	return isTerminal()
}
