// Package app wires configuration, logging, metrics and the front ends
// (menu, one-shot runner, TUI) into a runnable application.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/agbru/fibmenu/internal/cli"
	"github.com/agbru/fibmenu/internal/config"
	apperrors "github.com/agbru/fibmenu/internal/errors"
	"github.com/agbru/fibmenu/internal/fibonacci"
	"github.com/agbru/fibmenu/internal/logging"
	"github.com/agbru/fibmenu/internal/metrics"
	"github.com/agbru/fibmenu/internal/tui"
	"github.com/agbru/fibmenu/internal/ui"
)

// Application represents the fibmenu application instance.
type Application struct {
	Config    config.AppConfig
	Logger    logging.Logger
	Metrics   *metrics.Recorder
	ErrWriter io.Writer
	In        io.Reader
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithLogger sets the diagnostic logger instead of the console logger
// derived from -log-level.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// WithInput sets the reader used by the interactive menu (stdin by default).
func WithInput(r io.Reader) AppOption {
	return func(a *Application) { a.In = r }
}

// WithMetrics sets the metrics recorder.
func WithMetrics(r *metrics.Recorder) AppOption {
	return func(a *Application) { a.Metrics = r }
}

// New creates a new Application by parsing command-line arguments.
// args[0] is the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}

	programName := "fibmenu"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}
	app.Config = cfg

	if app.Logger == nil {
		levelName := cfg.LogLevel
		if cfg.Verbose {
			levelName = "debug"
		}
		level, err := logging.ParseLevel(levelName)
		if err != nil {
			return nil, apperrors.NewConfigError("invalid -log-level: %v", err)
		}
		app.Logger = logging.NewConsoleLogger(errWriter, level)
	}
	if app.Metrics == nil {
		app.Metrics = metrics.NewRecorder()
	}
	if app.In == nil {
		app.In = os.Stdin
	}
	return app, nil
}

// Run executes the application based on the configured mode and returns the
// process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	ui.InitTheme(a.Config.NoColor || !ui.IsTerminal(out))

	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	var (
		res   fibonacci.Result
		terms []int64
		err   error
	)
	switch {
	case a.Config.TUI:
		res, terms, err = a.runTUI(ctx)
	case a.Config.Interactive():
		res, terms, err = a.runMenu(ctx, out)
	default:
		res, terms, err = a.runOnce(ctx, out)
	}

	exitCode := apperrors.ExitCodeFor(err)
	if err != nil && !isValidation(err) {
		a.Logger.Debug("run failed", logging.Err(err))
		if apperrors.IsContextError(err) {
			fmt.Fprintln(a.ErrWriter, "Interrupted.")
		} else {
			fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		}
	}

	if code := a.writeOutputs(res, terms); code != apperrors.ExitSuccess && exitCode == apperrors.ExitSuccess {
		exitCode = code
	}
	a.Logger.Debug("exiting", logging.Int("exit_code", exitCode))
	return exitCode
}

func (a *Application) cliOptions(out io.Writer, tee fibonacci.Sink) cli.Options {
	return cli.Options{
		TermsPerLine: a.fitTermsPerLine(out),
		ColumnWidth:  a.Config.ColumnWidth,
		Delay:        a.Config.Delay,
		NoClear:      a.Config.NoClear,
		NoPause:      a.Config.NoPause,
		Tee:          tee,
		Observer:     a.Metrics,
		Logger:       a.Logger,
	}
}

// fitTermsPerLine lowers the column-mode row length so that a row fits the
// terminal behind out. Redirected output keeps the configured value.
func (a *Application) fitTermsPerLine(out io.Writer) int {
	perLine := a.Config.TermsPerLine
	width := ui.TerminalWidth(out, 0)
	if width <= 0 || a.Config.ColumnWidth <= 0 {
		return perLine
	}
	if fit := width / a.Config.ColumnWidth; fit >= 1 && fit < perLine {
		a.Logger.Debug("column rows narrowed to terminal width", logging.Int("width", width), logging.Int("terms_per_line", fit))
		return fit
	}
	return perLine
}

// runMenu shows the interactive menu. Input mistakes are handled inside the
// menu, so only cancellation and write failures come back as errors.
func (a *Application) runMenu(ctx context.Context, out io.Writer) (fibonacci.Result, []int64, error) {
	collector := &fibonacci.Collector{}
	menu := cli.NewMenu(a.cliOptions(out, collector))
	menu.SetInput(a.In)
	menu.SetOutput(out)

	res, err := menu.Run(ctx)
	return res, collector.Terms, err
}

// runOnce generates the sequence described by the flags without prompting.
func (a *Application) runOnce(ctx context.Context, out io.Writer) (fibonacci.Result, []int64, error) {
	collector := &fibonacci.Collector{}
	req := a.Config.Request()
	a.Logger.Debug("one-shot run", logging.String("mode", req.Mode.String()), logging.Int("terms", req.Terms), logging.Int64("max", req.Max))

	res, err := cli.Execute(ctx, out, req, a.cliOptions(out, collector))
	return res, collector.Terms, err
}

// runTUI launches the interactive terminal UI.
func (a *Application) runTUI(ctx context.Context) (fibonacci.Result, []int64, error) {
	outcome, err := tui.Run(ctx, tui.Config{
		Version:      Version,
		TermsPerLine: a.Config.TermsPerLine,
		ColumnWidth:  a.Config.ColumnWidth,
		Observer:     a.Metrics,
		Logger:       a.Logger,
	})
	return outcome.Result, outcome.Terms, err
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// writeOutputs persists the sequence (-o) and the metrics (-metrics-file).
// Both are attempted; the exit code reflects any failure.
func (a *Application) writeOutputs(res fibonacci.Result, terms []int64) int {
	code := apperrors.ExitSuccess

	if a.Config.OutputFile != "" && len(terms) > 0 {
		if err := cli.WriteSequenceToFile(a.Config.OutputFile, res, terms); err != nil {
			a.Logger.Debug("sequence file not written", logging.Err(err), logging.String("path", a.Config.OutputFile))
			fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
			code = apperrors.ExitCodeFor(err)
		} else {
			a.Logger.Info("sequence file written", logging.String("path", a.Config.OutputFile), logging.Int("terms", len(terms)))
			cli.DisplaySaved(a.ErrWriter, a.Config.OutputFile)
		}
	}

	if a.Config.MetricsFile != "" {
		if err := a.Metrics.WriteTextfile(a.Config.MetricsFile); err != nil {
			a.Logger.Debug("metrics file not written", logging.Err(err), logging.String("path", a.Config.MetricsFile))
			fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
			code = apperrors.ExitErrorGeneric
		}
	}
	return code
}

func isValidation(err error) bool {
	var valErr apperrors.ValidationError
	return errors.As(err, &valErr)
}

// IsHelpError checks if the error is a help flag error (-help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
