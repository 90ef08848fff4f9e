package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/fibmenu/internal/ui"
)

// Style variables for the TUI.
// Initialized from the ui theme system via initTUIStyles().
var (
	panelStyle     lipgloss.Style
	titleStyle     lipgloss.Style
	versionStyle   lipgloss.Style
	menuItemStyle  lipgloss.Style
	selectedStyle  lipgloss.Style
	labelStyle     lipgloss.Style
	sequenceStyle  lipgloss.Style
	statsStyle     lipgloss.Style
	warningStyle   lipgloss.Style
	errorStyle     lipgloss.Style
	sparklineStyle lipgloss.Style
	footerKeyStyle lipgloss.Style
	footerDesc     lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all TUI styles from the current ui theme.
// Called at package init and again from Run() after InitTheme has been invoked.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Banner)

	versionStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	menuItemStyle = lipgloss.NewStyle().
		PaddingLeft(2)

	selectedStyle = lipgloss.NewStyle().
		Foreground(t.Selected).
		Bold(true)

	labelStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	sequenceStyle = lipgloss.NewStyle().
		Foreground(t.Sequence).
		Bold(true)

	statsStyle = lipgloss.NewStyle().
		Foreground(t.Stats)

	warningStyle = lipgloss.NewStyle().
		Foreground(t.Warning)

	errorStyle = lipgloss.NewStyle().
		Foreground(t.Error).
		Bold(true)

	sparklineStyle = lipgloss.NewStyle().
		Foreground(t.Sequence)

	footerKeyStyle = lipgloss.NewStyle().
		Foreground(t.Selected).
		Bold(true)

	footerDesc = lipgloss.NewStyle().
		Foreground(t.Dim)
}
