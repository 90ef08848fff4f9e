// Package cli implements the line-oriented front ends: the interactive menu,
// the flag-driven one-shot runner, sequence presentation, file output and
// shell completion.
//
// # Naming Conventions
//
//   - Display* functions write formatted, colorized output to an [io.Writer].
//   - Write* functions write data to files on the filesystem.
//   - *Sink types are [fibonacci.Sink] implementations that render terms.
package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	apperrors "github.com/agbru/fibmenu/internal/errors"
	"github.com/agbru/fibmenu/internal/fibonacci"
	"github.com/agbru/fibmenu/internal/format"
	"github.com/agbru/fibmenu/internal/logging"
	"github.com/agbru/fibmenu/internal/ui"
)

//go:generate mockgen -source=presenter.go -destination=mocks/mock_presenter.go -package=mocks

// RunObserver is notified of completed runs and rejected inputs.
// *metrics.Recorder satisfies it.
type RunObserver interface {
	ObserveRun(res fibonacci.Result, elapsed time.Duration)
	ObserveRejected(field string)
}

// Options tune how sequences are displayed. The zero value is usable.
type Options struct {
	// TermsPerLine is the number of cells per row in column mode.
	TermsPerLine int
	// ColumnWidth is the cell width in column mode.
	ColumnWidth int
	// Delay paces emission; a spinner runs while terms are produced.
	Delay time.Duration
	// NoClear keeps the screen intact before the menu.
	NoClear bool
	// NoPause skips the closing "Press ENTER" prompt.
	NoPause bool

	// Tee receives every term in addition to the display (e.g. a Collector
	// for -o). Optional.
	Tee fibonacci.Sink
	// Observer receives run outcomes. Optional.
	Observer RunObserver
	// Logger receives diagnostics. Defaults to a no-op logger.
	Logger logging.Logger
}

func (o Options) withDefaults() Options {
	if o.TermsPerLine <= 0 {
		o.TermsPerLine = fibonacci.DefaultTermsPerLine
	}
	if o.ColumnWidth <= 0 {
		o.ColumnWidth = fibonacci.DefaultColumnWidth
	}
	if o.Logger == nil {
		o.Logger = logging.Nop()
	}
	return o
}

// LineSink prints each term followed by a space.
type LineSink struct {
	W io.Writer
}

func (s LineSink) Emit(_ int, term int64) {
	fmt.Fprintf(s.W, "%d ", term)
}

// ColumnSink prints right-aligned cells, breaking the line after every
// PerLine terms.
type ColumnSink struct {
	W       io.Writer
	Width   int
	PerLine int
}

func (s ColumnSink) Emit(index int, term int64) {
	fmt.Fprintf(s.W, "%*d", s.Width, term)
	if s.PerLine > 0 && (index+1)%s.PerLine == 0 {
		fmt.Fprintln(s.W)
	}
}

// NewDisplaySink returns the sink that renders terms for mode.
func NewDisplaySink(mode fibonacci.Mode, w io.Writer, opts Options) fibonacci.Sink {
	opts = opts.withDefaults()
	if mode == fibonacci.ModeColumns {
		return ColumnSink{W: w, Width: opts.ColumnWidth, PerLine: opts.TermsPerLine}
	}
	return LineSink{W: w}
}

// DisplayHeader prints the heading that precedes a sequence.
func DisplayHeader(out io.Writer, req fibonacci.Request) {
	switch req.Mode {
	case fibonacci.ModeUpToMax:
		fmt.Fprintln(out, ui.Paint(ui.ColorSequence(), fmt.Sprintf("Fibonacci Sequence up to %d:", req.Max)))
		fmt.Fprintln(out)
	case fibonacci.ModeColumns:
		fmt.Fprintln(out, ui.Paint(ui.ColorSequence(), fmt.Sprintf("Fibonacci Sequence (%d terms):", req.Terms)))
		fmt.Fprintln(out)
	default:
		fmt.Fprintln(out, ui.Paint(ui.ColorSequence(), "Fibonacci Sequence:"))
	}
}

// DisplayStatistics prints the statistics block. The ratio lines only appear
// when the ratio is defined.
func DisplayStatistics(out io.Writer, stats fibonacci.Stats) {
	fmt.Fprintln(out, ui.Paint(ui.ColorStats(), "Statistics:"))
	fmt.Fprintf(out, "  Number of terms: %d\n", stats.Count)
	if stats.SumOverflow {
		fmt.Fprintf(out, "  Sum of all terms: more than %d\n", stats.Sum)
	} else {
		fmt.Fprintf(out, "  Sum of all terms: %d\n", stats.Sum)
	}
	fmt.Fprintf(out, "  Average value: %.2f\n", stats.Average())
	if stats.Count >= 2 {
		fmt.Fprintf(out, "  Last term: %d\n", stats.Last)
		fmt.Fprintf(out, "  Second-to-last term: %d\n", stats.Previous)
		if ratio, ok := stats.Ratio(); ok {
			delta, _ := stats.GoldenRatioDelta()
			fmt.Fprintf(out, "  Ratio (F(n)/F(n-1)): %.10f\n", ratio)
			fmt.Fprintf(out, "  Golden Ratio (φ): %.10f\n", fibonacci.GoldenRatio)
			fmt.Fprintf(out, "  Difference: %.10f\n", delta)
		}
	}
	fmt.Fprintln(out)
}

// DisplayUpToSummary prints the term count of an up-to-max run.
func DisplayUpToSummary(out io.Writer, stats fibonacci.Stats) {
	fmt.Fprintln(out, ui.Paint(ui.ColorStats(), fmt.Sprintf("Total terms generated: %d", stats.Count)))
	fmt.Fprintln(out)
}

// DisplayFooter prints what follows the terms of a finished run.
func DisplayFooter(out io.Writer, res fibonacci.Result) {
	fmt.Fprintln(out)
	fmt.Fprintln(out)
	switch res.Request.Mode {
	case fibonacci.ModeStatistics:
		DisplayStatistics(out, res.Stats)
	case fibonacci.ModeUpToMax:
		DisplayUpToSummary(out, res.Stats)
	}
}

// DisplayInputError prints the user-facing message for a rejected bound.
func DisplayInputError(out io.Writer, err error) {
	msg := fmt.Sprintf("Error: %v", err)
	var valErr apperrors.ValidationError
	if errors.As(err, &valErr) {
		switch valErr.Field {
		case "terms":
			msg = "Error: Please enter a positive integer."
		case "max":
			msg = "Error: Please enter a non-negative value."
		}
	}
	fmt.Fprintln(out, ui.Paint(ui.ColorError(), msg))
}

// DisplayClampWarning tells the user an oversized term count was lowered.
func DisplayClampWarning(out io.Writer) {
	fmt.Fprintln(out, ui.Paint(ui.ColorError(), fmt.Sprintf("Error: Maximum %d terms supported with int64.", fibonacci.MaxTerms)))
	fmt.Fprintf(out, "Using %d terms instead.\n", fibonacci.MaxTerms)
	fmt.Fprintln(out)
}

// DisplaySequence generates req and renders it with its header and footer.
// An oversized term count is clamped silently; Execute prints the warning.
// With a Delay the output is buffered while a spinner runs, so the animation
// never interleaves with the sequence.
func DisplaySequence(ctx context.Context, out io.Writer, req fibonacci.Request, opts Options) (fibonacci.Result, error) {
	opts = opts.withDefaults()
	norm, _, err := req.Normalize()
	if err != nil {
		return fibonacci.Result{Request: req}, err
	}

	target := out
	var buf *bytes.Buffer
	var spin Spinner
	if opts.Delay > 0 {
		buf = &bytes.Buffer{}
		target = buf
		spin = newSpinner(out)
	}

	DisplayHeader(target, norm)
	var sink fibonacci.Sink = NewDisplaySink(norm.Mode, target, opts)
	if spin != nil {
		total := 0
		if !norm.Mode.BoundedByValue() {
			total = norm.Terms
		}
		sink = &pacedSink{ctx: ctx, next: sink, spinner: spin, delay: opts.Delay, total: total}
		spin.Start()
	}

	start := time.Now()
	res, err := fibonacci.Run(ctx, req, fibonacci.MultiSink(sink, opts.Tee))
	elapsed := time.Since(start)
	if spin != nil {
		spin.Stop()
	}
	if err != nil {
		return res, err
	}
	DisplayFooter(target, res)
	if buf != nil {
		if _, err := buf.WriteTo(out); err != nil {
			return res, fmt.Errorf("writing sequence: %w", err)
		}
	}

	opts.Logger.Debug("sequence generated",
		logging.String("mode", res.Request.Mode.String()),
		logging.Int("count", res.Stats.Count),
		logging.Uint64("sum", res.Stats.Sum),
		logging.String("elapsed", format.FormatExecutionDuration(elapsed)),
	)
	if opts.Observer != nil {
		opts.Observer.ObserveRun(res, elapsed)
	}
	return res, nil
}

// Execute normalizes req, reports rejected or clamped bounds the same way
// the menu does, then displays the sequence.
func Execute(ctx context.Context, out io.Writer, req fibonacci.Request, opts Options) (fibonacci.Result, error) {
	opts = opts.withDefaults()
	norm, clamped, err := req.Normalize()
	if err != nil {
		rejectInput(out, err, opts)
		return fibonacci.Result{Request: req}, err
	}
	if clamped {
		opts.Logger.Debug("term count clamped", logging.Int("requested", req.Terms), logging.Int("limit", norm.Terms))
		DisplayClampWarning(out)
	}
	return DisplaySequence(ctx, out, req, opts)
}

func rejectInput(out io.Writer, err error, opts Options) {
	DisplayInputError(out, err)
	field := "input"
	var valErr apperrors.ValidationError
	if errors.As(err, &valErr) {
		field = valErr.Field
	}
	opts.Logger.Debug("input rejected", logging.String("field", field), logging.Err(err))
	if opts.Observer != nil {
		opts.Observer.ObserveRejected(field)
	}
}
