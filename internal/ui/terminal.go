package ui

import (
	"fmt"
	"io"

	"golang.org/x/term"
)

// fdWriter is implemented by *os.File.
type fdWriter interface {
	Fd() uintptr
}

// IsTerminal reports whether w is attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(fdWriter)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// TerminalWidth returns the column count of the terminal behind w, or
// fallback when w is not a terminal or the size is unavailable.
func TerminalWidth(w io.Writer, fallback int) int {
	f, ok := w.(fdWriter)
	if !ok {
		return fallback
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}

// ClearScreen clears the terminal behind w using ANSI escapes. It does
// nothing when w is not a terminal, so redirected output stays clean.
func ClearScreen(w io.Writer) {
	if !IsTerminal(w) {
		return
	}
	fmt.Fprint(w, "\033[H\033[2J")
}
