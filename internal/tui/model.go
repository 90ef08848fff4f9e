// Package tui provides an interactive terminal UI over the sequence
// generator, built on bubbletea.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/fibmenu/internal/cli"
	apperrors "github.com/agbru/fibmenu/internal/errors"
	"github.com/agbru/fibmenu/internal/fibonacci"
	"github.com/agbru/fibmenu/internal/logging"
)

type screen int

const (
	screenMenu screen = iota
	screenInput
	screenResult
)

// Config carries the collaborators and display settings of a TUI session.
type Config struct {
	Version      string
	TermsPerLine int
	ColumnWidth  int
	Observer     cli.RunObserver
	Logger       logging.Logger
}

// Outcome is the last sequence generated during a session.
type Outcome struct {
	Result fibonacci.Result
	Terms  []int64
}

// GeneratedMsg carries a finished generation back to the model.
type GeneratedMsg struct {
	Outcome
	Elapsed time.Duration
	Err     error
}

// Model is the root bubbletea model.
type Model struct {
	ctx    context.Context
	cfg    Config
	keymap KeyMap
	header HeaderModel
	input  textinput.Model

	screen   screen
	cursor   int
	mode     fibonacci.Mode
	inputErr string
	running  bool
	last     *GeneratedMsg

	width  int
	height int
}

// NewModel creates a model positioned on the mode menu.
func NewModel(ctx context.Context, cfg Config) Model {
	if cfg.Logger == nil {
		cfg.Logger = logging.Nop()
	}
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 20
	ti.Width = 24

	return Model{
		ctx:    ctx,
		cfg:    cfg,
		keymap: DefaultKeyMap(),
		header: NewHeaderModel(cfg.Version),
		input:  ti,
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Outcome returns the most recent successful generation, if any.
func (m Model) Outcome() (Outcome, bool) {
	if m.last == nil || m.last.Err != nil {
		return Outcome{}, false
	}
	return m.last.Outcome, true
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.header.SetWidth(msg.Width)
		return m, nil

	case GeneratedMsg:
		m.running = false
		m.last = &msg
		m.screen = screenResult
		return m, nil

	case tea.KeyMsg:
		switch m.screen {
		case screenInput:
			return m.updateInput(msg)
		case screenResult:
			return m.updateResult(msg)
		default:
			return m.updateMenu(msg)
		}
	}

	if m.screen == screenInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	modes := fibonacci.Modes()
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keymap.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keymap.Down):
		if m.cursor < len(modes)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keymap.Shortcut):
		mode, err := fibonacci.ParseMode(msg.String())
		if err == nil {
			m.cursor = int(mode) - 1
			return m.openInput(mode)
		}
	case key.Matches(msg, m.keymap.Select):
		return m.openInput(modes[m.cursor])
	}
	return m, nil
}

func (m Model) openInput(mode fibonacci.Mode) (tea.Model, tea.Cmd) {
	m.mode = mode
	m.header.SetMode(mode)
	m.screen = screenInput
	m.inputErr = ""
	m.input.Reset()
	if mode.BoundedByValue() {
		m.input.Placeholder = "100"
	} else {
		m.input.Placeholder = strconv.Itoa(fibonacci.DefaultTermsPerLine)
	}
	return m, m.input.Focus()
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	case key.Matches(msg, m.keymap.Back):
		m.input.Blur()
		m.screen = screenMenu
		m.header.SetMode(0)
		return m, nil
	case key.Matches(msg, m.keymap.Select):
		if m.running {
			return m, nil
		}
		req, err := m.request()
		if err != nil {
			m.inputErr = inputErrorText(err)
			m.cfg.Logger.Debug("tui input rejected", logging.String("value", m.input.Value()), logging.Err(err))
			if m.cfg.Observer != nil {
				var valErr apperrors.ValidationError
				if errors.As(err, &valErr) {
					m.cfg.Observer.ObserveRejected(valErr.Field)
				}
			}
			return m, nil
		}
		m.inputErr = ""
		m.running = true
		m.input.Blur()
		return m, generateCmd(m.ctx, req, m.cfg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keymap.Again), key.Matches(msg, m.keymap.Back):
		m.screen = screenMenu
		m.header.SetMode(0)
	}
	return m, nil
}

// request parses the input field into a validated request for the chosen
// mode. Oversized term counts are kept; Run clamps them and reports it.
func (m Model) request() (fibonacci.Request, error) {
	value := strings.TrimSpace(m.input.Value())
	req := fibonacci.Request{Mode: m.mode}
	if m.mode.BoundedByValue() {
		max, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return req, apperrors.ValidationError{Field: "max", Message: "not an integer"}
		}
		req.Max = max
	} else {
		n, err := strconv.Atoi(value)
		if err != nil {
			return req, apperrors.ValidationError{Field: "terms", Message: "not an integer"}
		}
		req.Terms = n
	}
	if _, _, err := req.Normalize(); err != nil {
		return req, err
	}
	return req, nil
}

func inputErrorText(err error) string {
	var valErr apperrors.ValidationError
	if errors.As(err, &valErr) {
		switch valErr.Field {
		case "terms":
			return "Please enter a positive integer."
		case "max":
			return "Please enter a non-negative value."
		}
	}
	return err.Error()
}

// generateCmd runs the generator off the update loop.
func generateCmd(ctx context.Context, req fibonacci.Request, cfg Config) tea.Cmd {
	return func() tea.Msg {
		c := &fibonacci.Collector{}
		start := time.Now()
		res, err := fibonacci.Run(ctx, req, c)
		elapsed := time.Since(start)
		if err == nil {
			if res.Clamped {
				cfg.Logger.Debug("term count clamped", logging.Int("requested", req.Terms), logging.Int("limit", fibonacci.MaxTerms))
			}
			if cfg.Observer != nil {
				cfg.Observer.ObserveRun(res, elapsed)
			}
		}
		return GeneratedMsg{Outcome: Outcome{Result: res, Terms: c.Terms}, Elapsed: elapsed, Err: err}
	}
}

// Run is the public entry point for the TUI mode. It returns the last
// generated sequence so callers can persist it.
func Run(ctx context.Context, cfg Config) (Outcome, error) {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	p := tea.NewProgram(NewModel(ctx, cfg), tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Outcome{}, ctxErr
		}
		return Outcome{}, fmt.Errorf("running tui: %w", err)
	}
	if fm, ok := final.(Model); ok {
		if out, ok := fm.Outcome(); ok {
			return out, nil
		}
	}
	return Outcome{}, nil
}
