package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/fibmenu/internal/cli"
	"github.com/agbru/fibmenu/internal/fibonacci"
	"github.com/agbru/fibmenu/internal/format"
)

const (
	defaultWidth   = 80
	sparklineWidth = 60
)

// View renders the current screen.
func (m Model) View() string {
	var body string
	switch m.screen {
	case screenInput:
		body = m.viewInput()
	case screenResult:
		body = m.viewResult()
	default:
		body = m.viewMenu()
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.header.View(),
		"",
		body,
		"",
		m.viewFooter(),
	)
}

func (m Model) viewMenu() string {
	var b strings.Builder
	b.WriteString(selectedStyle.Render("Generation Options:"))
	b.WriteString("\n")
	for i, mode := range fibonacci.Modes() {
		line := fmt.Sprintf("%d. %s", int(mode), mode.Description())
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("▸ " + line))
		} else {
			b.WriteString(menuItemStyle.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewInput() string {
	label := fmt.Sprintf("Number of terms to generate (max %d)", fibonacci.MaxTerms)
	if m.mode.BoundedByValue() {
		label = "Maximum value"
	}

	lines := []string{
		labelStyle.Render(label),
		m.input.View(),
	}
	if m.running {
		lines = append(lines, labelStyle.Render("generating..."))
	}
	if m.inputErr != "" {
		lines = append(lines, errorStyle.Render("Error: "+m.inputErr))
	}
	return strings.Join(lines, "\n")
}

func (m Model) viewResult() string {
	if m.last == nil {
		return ""
	}
	if m.last.Err != nil {
		return errorStyle.Render("Error: " + m.last.Err.Error())
	}

	res := m.last.Result
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}

	var sections []string
	if res.Clamped {
		sections = append(sections, warningStyle.Render(
			fmt.Sprintf("Maximum %d terms supported with int64. Using %d terms instead.", fibonacci.MaxTerms, fibonacci.MaxTerms)))
	}
	sections = append(sections, sequenceStyle.Render(resultTitle(res.Request)))

	var seq strings.Builder
	sink := cli.NewDisplaySink(res.Request.Mode, &seq, cli.Options{
		TermsPerLine: m.cfg.TermsPerLine,
		ColumnWidth:  m.cfg.ColumnWidth,
	})
	for i, t := range m.last.Terms {
		sink.Emit(i, t)
	}
	text := strings.TrimRight(seq.String(), " \n")
	if res.Request.Mode != fibonacci.ModeColumns {
		text = lipgloss.NewStyle().Width(width - 4).Render(text)
	}
	sections = append(sections, panelStyle.Render(text))

	switch res.Request.Mode {
	case fibonacci.ModeStatistics:
		var stats strings.Builder
		cli.DisplayStatistics(&stats, res.Stats)
		sections = append(sections, statsStyle.Render(strings.TrimRight(stats.String(), "\n")))
	case fibonacci.ModeUpToMax:
		sections = append(sections, statsStyle.Render(fmt.Sprintf("Total terms generated: %d", res.Stats.Count)))
	}

	spark := RenderSparkline(GrowthValues(m.last.Terms, min(sparklineWidth, width-4)))
	sections = append(sections,
		labelStyle.Render("growth (log scale) ")+sparklineStyle.Render(spark),
		labelStyle.Render(summaryLine(res.Stats, m.last.Elapsed)),
	)
	return strings.Join(sections, "\n")
}

func resultTitle(req fibonacci.Request) string {
	switch req.Mode {
	case fibonacci.ModeUpToMax:
		return fmt.Sprintf("Fibonacci Sequence up to %s:", format.FormatNumberString(fmt.Sprint(req.Max)))
	case fibonacci.ModeColumns:
		return fmt.Sprintf("Fibonacci Sequence (%d terms):", req.Terms)
	}
	return "Fibonacci Sequence:"
}

func summaryLine(stats fibonacci.Stats, elapsed time.Duration) string {
	sum := format.FormatNumberString(fmt.Sprint(stats.Sum))
	if stats.SumOverflow {
		sum = "> " + sum
	}
	return fmt.Sprintf("%d terms · last %s · sum %s · %s",
		stats.Count, format.FormatNumberString(fmt.Sprint(stats.Last)), sum, format.FormatExecutionDuration(elapsed))
}

func (m Model) viewFooter() string {
	bindings := m.keymap.footerBindings(m.screen)
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		parts = append(parts, renderBinding(b))
	}
	return strings.Join(parts, footerDesc.Render(" • "))
}

func renderBinding(b key.Binding) string {
	h := b.Help()
	return footerKeyStyle.Render(h.Key) + " " + footerDesc.Render(h.Desc)
}
