package ui

import (
	"os"

	"golang.org/x/term"
)

// defaultTerminalWidth is used for pipes, redirects, and size-query failures
const defaultTerminalWidth = 120

// GetTerminalWidth returns the current terminal width in columns, falling
// back to a sensible default when stdout is not a terminal.
func GetTerminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return defaultTerminalWidth
	}

	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return defaultTerminalWidth
	}
	return width
}
