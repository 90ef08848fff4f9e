// Package config parses command-line flags and environment variables into
// the application configuration.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"slices"
	"time"

	apperrors "github.com/agbru/fibmenu/internal/errors"
	"github.com/agbru/fibmenu/internal/fibonacci"
	"github.com/agbru/fibmenu/internal/logging"
)

// EnvPrefix is prepended to every environment variable read by this package.
const EnvPrefix = "FIBMENU_"

// SupportedShells lists the shells accepted by -completion.
var SupportedShells = []string{"bash", "zsh", "fish"}

// AppConfig holds the complete runtime configuration.
type AppConfig struct {
	// ModeName selects a one-shot run ("count", "max", "stats", "columns" or
	// 1-4). Empty means the interactive menu.
	ModeName string
	// Mode is ModeName resolved by Validate; zero for the interactive menu.
	Mode fibonacci.Mode
	// Terms is the term count for the by-count modes.
	Terms int
	// HasTerms reports that Terms was supplied by flag or environment.
	HasTerms bool
	// Max is the inclusive bound for the up-to-max mode.
	Max int64
	// HasMax reports that Max was supplied by flag or environment.
	HasMax bool

	// TermsPerLine is the number of cells per row in column mode.
	TermsPerLine int
	// ColumnWidth is the cell width in column mode.
	ColumnWidth int
	// Delay paces emission for demos; zero prints at full speed.
	Delay time.Duration

	NoColor bool
	NoClear bool
	NoPause bool
	TUI     bool

	// OutputFile, when set, receives a copy of the generated sequence.
	OutputFile string
	// MetricsFile, when set, receives Prometheus text-format counters on exit.
	MetricsFile string

	// LogLevel is the diagnostic log level (debug, info, warn, error, disabled).
	LogLevel string
	// Verbose forces the debug log level.
	Verbose bool

	// Completion, when set, prints a completion script for that shell and exits.
	Completion string
}

// Interactive reports whether the menu should be shown.
func (c AppConfig) Interactive() bool {
	return c.Mode == 0 && !c.TUI
}

// Request builds the generator request for a one-shot run.
func (c AppConfig) Request() fibonacci.Request {
	return fibonacci.Request{Mode: c.Mode, Terms: c.Terms, Max: c.Max}
}

// ParseConfig parses args (without the program name) into an AppConfig,
// applies FIBMENU_ environment overrides for flags not given on the command
// line, and validates the result. Usage and parse errors are written to
// errWriter. flag.ErrHelp is returned unchanged when -h/-help is used.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	cfg := AppConfig{}
	fs.StringVar(&cfg.ModeName, "mode", "", "One-shot mode: count, max, stats, columns (or 1-4). Empty shows the menu.")
	fs.IntVar(&cfg.Terms, "n", 0, fmt.Sprintf("Number of terms to generate (1-%d).", fibonacci.MaxTerms))
	fs.Int64Var(&cfg.Max, "max", 0, "Maximum value for the up-to-max mode.")
	fs.IntVar(&cfg.TermsPerLine, "columns", fibonacci.DefaultTermsPerLine, "Terms per row in column mode.")
	fs.IntVar(&cfg.ColumnWidth, "width", fibonacci.DefaultColumnWidth, "Cell width in column mode.")
	fs.DurationVar(&cfg.Delay, "delay", 0, "Pause between terms (e.g. 150ms) with a spinner.")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "Disable colored output.")
	fs.BoolVar(&cfg.NoClear, "no-clear", false, "Do not clear the screen before the menu.")
	fs.BoolVar(&cfg.NoPause, "no-pause", false, "Do not wait for ENTER before exiting.")
	fs.BoolVar(&cfg.TUI, "tui", false, "Launch the interactive terminal UI.")
	fs.StringVar(&cfg.OutputFile, "o", "", "Also write the sequence to this file.")
	fs.StringVar(&cfg.OutputFile, "output", "", "Also write the sequence to this file.")
	fs.StringVar(&cfg.MetricsFile, "metrics-file", "", "Write Prometheus text-format metrics to this file on exit.")
	fs.StringVar(&cfg.LogLevel, "log-level", "warn", "Diagnostic log level: debug, info, warn, error, disabled.")
	fs.BoolVar(&cfg.Verbose, "v", false, "Verbose diagnostics (debug log level).")
	fs.StringVar(&cfg.Completion, "completion", "", "Print a completion script for bash, zsh or fish.")
	// Accepted here so it shows in -help; main handles it before parsing.
	fs.Bool("version", false, "Print version information.")

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [flags]\n\n", programName)
		fmt.Fprintf(fs.Output(), "Without -mode, an interactive menu is shown.\n\nFlags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return cfg, err
		}
		return cfg, apperrors.NewConfigError("%v", err)
	}
	if fs.NArg() > 0 {
		return cfg, apperrors.NewConfigError("unexpected arguments: %v", fs.Args())
	}

	cfg.HasTerms = isFlagSet(fs, "n")
	cfg.HasMax = isFlagSet(fs, "max")
	applyEnvOverrides(&cfg, fs)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(errWriter, "Error: %v\n", err)
		return cfg, err
	}
	return cfg, nil
}

// Validate resolves the mode and checks flag combinations. Bound values
// themselves (non-positive counts, negative maxima) are left to the generator
// so that they surface as the same user-facing messages as in the menu.
func (c *AppConfig) Validate() error {
	if c.ModeName != "" {
		mode, err := fibonacci.ParseMode(c.ModeName)
		if err != nil {
			return apperrors.NewConfigError("invalid -mode: %v", err)
		}
		c.Mode = mode
		if mode.BoundedByValue() && !c.HasMax {
			return apperrors.NewConfigError("-mode %s requires -max", mode)
		}
		if !mode.BoundedByValue() && !c.HasTerms {
			return apperrors.NewConfigError("-mode %s requires -n", mode)
		}
	}
	if c.Mode != 0 && c.TUI {
		return apperrors.NewConfigError("-tui cannot be combined with -mode")
	}
	if c.TermsPerLine <= 0 {
		return apperrors.NewConfigError("-columns must be positive, got %d", c.TermsPerLine)
	}
	if c.ColumnWidth <= 0 {
		return apperrors.NewConfigError("-width must be positive, got %d", c.ColumnWidth)
	}
	if c.Delay < 0 {
		return apperrors.NewConfigError("-delay must not be negative, got %s", c.Delay)
	}
	if c.Completion != "" && !slices.Contains(SupportedShells, c.Completion) {
		return apperrors.NewConfigError("unsupported shell %q for -completion (want one of %v)", c.Completion, SupportedShells)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return apperrors.NewConfigError("invalid -log-level: %v", err)
	}
	return nil
}
