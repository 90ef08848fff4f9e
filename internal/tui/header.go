package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/fibmenu/internal/fibonacci"
)

// HeaderModel renders the top bar: title, version and the active mode.
type HeaderModel struct {
	version string
	mode    fibonacci.Mode
	width   int
}

// NewHeaderModel creates a new header.
func NewHeaderModel(version string) HeaderModel {
	return HeaderModel{version: version}
}

// SetMode records the mode shown on the right of the bar; zero hides it.
func (h *HeaderModel) SetMode(m fibonacci.Mode) {
	h.mode = m
}

// SetWidth updates the available width.
func (h *HeaderModel) SetWidth(w int) {
	h.width = w
}

// View renders the header.
func (h HeaderModel) View() string {
	left := titleStyle.Render("Enhanced Fibonacci Sequence Generator")
	if h.version != "" && h.version != "dev" {
		left += versionStyle.Render(" " + h.version)
	}

	right := ""
	if h.mode.Valid() {
		right = labelStyle.Render(h.mode.Description())
	}

	gap := h.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}
