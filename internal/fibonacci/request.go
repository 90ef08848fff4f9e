package fibonacci

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	apperrors "github.com/agbru/fibmenu/internal/errors"
)

const tracerName = "github.com/agbru/fibmenu/internal/fibonacci"

// Mode selects how a sequence is bounded and displayed.
// The numeric values match the menu selectors.
type Mode int

const (
	// ModeCount generates a fixed number of terms.
	ModeCount Mode = iota + 1
	// ModeUpToMax generates every term up to a maximum value.
	ModeUpToMax
	// ModeStatistics generates a fixed number of terms and reports statistics.
	ModeStatistics
	// ModeColumns generates a fixed number of terms laid out in columns.
	ModeColumns
)

// Modes returns every mode in menu order.
func Modes() []Mode {
	return []Mode{ModeCount, ModeUpToMax, ModeStatistics, ModeColumns}
}

// String returns the flag name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeCount:
		return "count"
	case ModeUpToMax:
		return "max"
	case ModeStatistics:
		return "stats"
	case ModeColumns:
		return "columns"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Description returns the menu label of the mode.
func (m Mode) Description() string {
	switch m {
	case ModeCount:
		return "Generate by number of terms"
	case ModeUpToMax:
		return "Generate up to a maximum value"
	case ModeStatistics:
		return "Display with statistics"
	case ModeColumns:
		return "Display in columns"
	}
	return "Unknown mode"
}

// Valid reports whether m is one of the defined modes.
func (m Mode) Valid() bool {
	return m >= ModeCount && m <= ModeColumns
}

// BoundedByValue reports whether the mode takes a maximum value instead of a
// term count.
func (m Mode) BoundedByValue() bool {
	return m == ModeUpToMax
}

// ParseMode accepts a menu selector ("1".."4") or a mode name.
func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		if m := Mode(n); m.Valid() {
			return m, nil
		}
		return 0, apperrors.ValidationError{Field: "mode", Message: fmt.Sprintf("selector %d is not between 1 and 4", n)}
	}
	for _, m := range Modes() {
		if m.String() == s {
			return m, nil
		}
	}
	return 0, apperrors.ValidationError{Field: "mode", Message: fmt.Sprintf("unknown mode %q", s)}
}

// Request describes one generation run.
type Request struct {
	Mode Mode
	// Terms is the term count for the by-count modes.
	Terms int
	// Max is the inclusive upper bound for ModeUpToMax.
	Max int64
}

// Normalize validates the request and clamps an oversized term count to
// MaxTerms. clamped reports whether the term count was lowered.
func (r Request) Normalize() (normalized Request, clamped bool, err error) {
	if !r.Mode.Valid() {
		return r, false, apperrors.ValidationError{Field: "mode", Message: fmt.Sprintf("unknown mode %d", int(r.Mode))}
	}
	if r.Mode.BoundedByValue() {
		return r, false, ValidateMaxValue(r.Max)
	}
	if r.Terms > MaxTerms {
		r.Terms = MaxTerms
		clamped = true
	}
	return r, clamped, ValidateTermCount(r.Terms)
}

// Result is the outcome of Run.
type Result struct {
	// Request is the normalized request that was executed.
	Request Request
	Stats   Stats
	// Clamped reports that the requested term count was lowered to MaxTerms.
	Clamped bool
}

// Run normalizes req and generates the sequence it describes into sink.
// Generation is synchronous; ctx is only consulted before work starts.
func Run(ctx context.Context, req Request, sink Sink) (Result, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "fibonacci.Run")
	defer span.End()
	span.SetAttributes(
		attribute.String("fibonacci.mode", req.Mode.String()),
		attribute.Int("fibonacci.terms", req.Terms),
		attribute.Int64("fibonacci.max", req.Max),
	)

	if err := ctx.Err(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Result{Request: req}, err
	}

	norm, clamped, err := req.Normalize()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Result{Request: req}, err
	}

	var stats Stats
	if norm.Mode.BoundedByValue() {
		stats, err = GenerateUpTo(norm.Max, sink)
	} else {
		stats, err = Generate(norm.Terms, sink)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Result{Request: norm, Clamped: clamped}, err
	}

	span.SetAttributes(
		attribute.Int("fibonacci.count", stats.Count),
		attribute.Bool("fibonacci.clamped", clamped),
	)
	return Result{Request: norm, Stats: stats, Clamped: clamped}, nil
}
