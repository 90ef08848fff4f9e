package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	apperrors "github.com/agbru/fibmenu/internal/errors"
	"github.com/agbru/fibmenu/internal/fibonacci"
	"github.com/agbru/fibmenu/internal/logging"
	"github.com/agbru/fibmenu/internal/ui"
)

const (
	headerRule = "==============================================="
	headerText = "      Enhanced Fibonacci Sequence Generator    "
)

// Menu is the interactive, single-pass menu: it shows the options, reads a
// selector and a bound, prints the sequence and waits for ENTER.
type Menu struct {
	opts   Options
	in     io.Reader
	out    io.Writer
	reader *bufio.Reader
}

// NewMenu creates a menu reading from stdin and writing to stdout.
func NewMenu(opts Options) *Menu {
	return &Menu{
		opts: opts.withDefaults(),
		in:   os.Stdin,
		out:  os.Stdout,
	}
}

// SetInput sets a custom input reader (useful for testing).
func (m *Menu) SetInput(in io.Reader) {
	m.in = in
}

// SetOutput sets a custom output writer (useful for testing).
func (m *Menu) SetOutput(out io.Writer) {
	m.out = out
}

// Run performs one menu session. Invalid input is reported to the user and
// is not an error: the returned error is non-nil only when ctx is cancelled
// or the sequence cannot be written. The Result is empty (Stats.Count == 0)
// when nothing was generated.
func (m *Menu) Run(ctx context.Context) (fibonacci.Result, error) {
	m.reader = bufio.NewReader(m.in)

	if !m.opts.NoClear {
		ui.ClearScreen(m.out)
	}
	m.displayHeader()
	m.displayMenu()

	choice, err := m.readLine(ctx)
	if apperrors.IsContextError(err) {
		return fibonacci.Result{}, err
	}
	fmt.Fprintln(m.out)

	var res fibonacci.Result
	mode, parseErr := fibonacci.ParseMode(choice)
	if err != nil || parseErr != nil {
		m.opts.Logger.Debug("invalid menu choice", logging.String("choice", choice))
		if m.opts.Observer != nil {
			m.opts.Observer.ObserveRejected("mode")
		}
		res, err = m.runDefault(ctx)
	} else {
		res, err = m.runMode(ctx, mode)
	}
	if err != nil {
		return res, err
	}

	if !m.opts.NoPause {
		fmt.Fprintln(m.out)
		fmt.Fprintln(m.out, ui.Paint(ui.ColorHint(), "Press ENTER to exit..."))
		if _, err := m.readLine(ctx); apperrors.IsContextError(err) {
			return res, err
		}
	}
	return res, nil
}

func (m *Menu) displayHeader() {
	fmt.Fprintln(m.out, ui.Paint(ui.ColorBanner(), headerRule))
	fmt.Fprintln(m.out, ui.Paint(ui.ColorBanner(), headerText))
	fmt.Fprintln(m.out, ui.Paint(ui.ColorBanner(), headerRule))
	fmt.Fprintln(m.out)
}

func (m *Menu) displayMenu() {
	fmt.Fprintln(m.out, ui.Paint(ui.ColorMenu(), "Generation Options:"))
	for _, mode := range fibonacci.Modes() {
		fmt.Fprintf(m.out, "  %d. %s\n", int(mode), mode.Description())
	}
	fmt.Fprintln(m.out)
	fmt.Fprint(m.out, ui.Paint(ui.ColorBold(), fmt.Sprintf("Enter your choice (1-%d): ", len(fibonacci.Modes()))))
}

// runMode prompts for the bound of mode and displays the sequence.
func (m *Menu) runMode(ctx context.Context, mode fibonacci.Mode) (fibonacci.Result, error) {
	req := fibonacci.Request{Mode: mode}
	if mode.BoundedByValue() {
		max, err := m.promptInt64(ctx, "Enter the maximum value: ")
		if apperrors.IsContextError(err) {
			return fibonacci.Result{}, err
		}
		if err != nil {
			rejectInput(m.out, apperrors.ValidationError{Field: "max", Message: "not an integer"}, m.opts)
			return fibonacci.Result{}, nil
		}
		req.Max = max
	} else {
		n, err := m.promptTermCount(ctx)
		if apperrors.IsContextError(err) {
			return fibonacci.Result{}, err
		}
		if err != nil {
			rejectInput(m.out, apperrors.ValidationError{Field: "terms", Message: "not an integer"}, m.opts)
			return fibonacci.Result{}, nil
		}
		req.Terms = n
	}

	res, err := Execute(ctx, m.out, req, m.opts)
	var valErr apperrors.ValidationError
	if errors.As(err, &valErr) {
		return res, nil
	}
	return res, err
}

// runDefault handles an unknown selector: it falls back to the by-count mode,
// clamps without warning and silently skips unusable counts.
func (m *Menu) runDefault(ctx context.Context) (fibonacci.Result, error) {
	fmt.Fprintln(m.out, ui.Paint(ui.ColorError(), "Invalid choice. Using default mode (option 1)."))
	fmt.Fprintln(m.out)

	n, err := m.promptTermCount(ctx)
	if apperrors.IsContextError(err) {
		return fibonacci.Result{}, err
	}
	if err != nil || n <= 0 {
		m.opts.Logger.Debug("default mode skipped", logging.Int("terms", n))
		return fibonacci.Result{}, nil
	}
	return DisplaySequence(ctx, m.out, fibonacci.Request{Mode: fibonacci.ModeCount, Terms: n}, m.opts)
}

func (m *Menu) promptTermCount(ctx context.Context) (int, error) {
	line, err := m.prompt(ctx, fmt.Sprintf("Enter the number of terms to generate (max %d): ", fibonacci.MaxTerms))
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(line)
}

func (m *Menu) promptInt64(ctx context.Context, label string) (int64, error) {
	line, err := m.prompt(ctx, label)
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(line, 10, 64)
}

// prompt prints label, reads one line and prints the blank separator line.
func (m *Menu) prompt(ctx context.Context, label string) (string, error) {
	fmt.Fprint(m.out, ui.Paint(ui.ColorBold(), label))
	line, err := m.readLine(ctx)
	if apperrors.IsContextError(err) {
		return "", err
	}
	fmt.Fprintln(m.out)
	return line, err
}

type lineResult struct {
	line string
	err  error
}

// readLine reads one trimmed line. A final line without newline is accepted;
// io.EOF is only returned when nothing was read. The read runs in its own
// goroutine so that cancellation is not blocked on the terminal. After a
// cancellation that goroutine stays blocked until input arrives and may
// consume the next line, so readLine must not be called again once ctx is
// done.
func (m *Menu) readLine(ctx context.Context) (string, error) {
	ch := make(chan lineResult, 1)
	go func() {
		line, err := m.reader.ReadString('\n')
		ch <- lineResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-ch:
		line := strings.TrimSpace(r.line)
		if r.err != nil && line == "" {
			return "", r.err
		}
		return line, nil
	}
}
