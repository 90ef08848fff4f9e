// Package ui provides theme and color support for the application's user interface.
// It defines color schemes, ANSI escape code accessors and terminal helpers
// shared by the menu, the one-shot printer and the TUI.
package ui
