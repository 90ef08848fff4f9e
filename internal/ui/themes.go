package ui

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines a color scheme for terminal output.
// Each field contains an ANSI escape code for one role in the display.
type Theme struct {
	// Name is the identifier of the theme.
	Name string
	// Banner colors the program header.
	Banner string
	// Menu colors the menu title and prompts.
	Menu string
	// Sequence colors the sequence heading.
	Sequence string
	// Stats colors the statistics block and summaries.
	Stats string
	// Error colors validation and I/O errors.
	Error string
	// Hint colors secondary text such as the exit prompt.
	Hint string
	// Bold is the escape code for bold text.
	Bold string
	// Reset clears all formatting.
	Reset string
}

var (
	// ClassicTheme uses the eight basic ANSI colors, readable on any background.
	ClassicTheme = Theme{
		Name:     "classic",
		Banner:   "\033[32m", // Green
		Menu:     "\033[33m", // Yellow
		Sequence: "\033[36m", // Cyan
		Stats:    "\033[35m", // Magenta
		Error:    "\033[31m", // Red
		Hint:     "\033[90m", // Bright black
		Bold:     "\033[1m",
		Reset:    "\033[0m",
	}

	// VividTheme uses the 256-color palette for terminals that support it.
	VividTheme = Theme{
		Name:     "vivid",
		Banner:   "\033[38;5;82m",  // Bright green
		Menu:     "\033[38;5;220m", // Gold
		Sequence: "\033[38;5;45m",  // Turquoise
		Stats:    "\033[38;5;170m", // Orchid
		Error:    "\033[38;5;196m", // Red
		Hint:     "\033[38;5;245m", // Grey
		Bold:     "\033[1m",
		Reset:    "\033[0m",
	}

	// NoColorTheme disables all color output.
	// Used when NO_COLOR is set, -no-color is given or stdout is not a terminal.
	NoColorTheme = Theme{Name: "none"}

	currentTheme = ClassicTheme
	themeMutex   sync.RWMutex
)

// TUITheme defines lipgloss-compatible colors for the TUI.
type TUITheme struct {
	Banner   lipgloss.TerminalColor
	Border   lipgloss.TerminalColor
	Selected lipgloss.TerminalColor
	Sequence lipgloss.TerminalColor
	Stats    lipgloss.TerminalColor
	Warning  lipgloss.TerminalColor
	Error    lipgloss.TerminalColor
	Dim      lipgloss.TerminalColor
}

var (
	// ColorTUITheme follows ClassicTheme's roles using ANSI color indexes so
	// the terminal palette decides the exact shade.
	ColorTUITheme = TUITheme{
		Banner:   lipgloss.Color("2"),
		Border:   lipgloss.Color("2"),
		Selected: lipgloss.Color("3"),
		Sequence: lipgloss.Color("6"),
		Stats:    lipgloss.Color("5"),
		Warning:  lipgloss.Color("3"),
		Error:    lipgloss.Color("1"),
		Dim:      lipgloss.Color("8"),
	}

	// NoColorTUITheme disables all TUI colors.
	NoColorTUITheme = TUITheme{
		Banner:   lipgloss.NoColor{},
		Border:   lipgloss.NoColor{},
		Selected: lipgloss.NoColor{},
		Sequence: lipgloss.NoColor{},
		Stats:    lipgloss.NoColor{},
		Warning:  lipgloss.NoColor{},
		Error:    lipgloss.NoColor{},
		Dim:      lipgloss.NoColor{},
	}
)

// GetCurrentTUITheme returns the TUI theme matching the active theme.
func GetCurrentTUITheme() TUITheme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()

	if currentTheme.Name == NoColorTheme.Name {
		return NoColorTUITheme
	}
	return ColorTUITheme
}

// GetCurrentTheme returns the currently active theme in a thread-safe manner.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme sets the currently active theme in a thread-safe manner.
// This is primarily used for testing purposes to restore state.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// SetTheme changes the active theme by name.
// Valid names are: "classic", "vivid", "none". Unknown names select classic.
func SetTheme(name string) {
	themeMutex.Lock()
	defer themeMutex.Unlock()

	switch name {
	case "vivid":
		currentTheme = VividTheme
	case "none":
		currentTheme = NoColorTheme
	default:
		currentTheme = ClassicTheme
	}
}

// InitTheme initializes the theme from the noColor flag and the environment.
// It respects the NO_COLOR environment variable (https://no-color.org/).
// FIBMENU_THEME selects a named theme when colors are enabled.
func InitTheme(noColor bool) {
	if noColor {
		SetCurrentTheme(NoColorTheme)
		return
	}
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		SetCurrentTheme(NoColorTheme)
		return
	}
	SetTheme(os.Getenv("FIBMENU_THEME"))
}
