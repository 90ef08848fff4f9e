package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	apperrors "github.com/agbru/fibmenu/internal/errors"
	"github.com/agbru/fibmenu/internal/fibonacci"
	"github.com/agbru/fibmenu/internal/ui"
)

// WriteSequenceToFile writes the terms of res to path, one "F(i) = v" line
// per term, under a commented header describing the run. Missing parent
// directories are created. An empty path is a no-op.
func WriteSequenceToFile(path string, res fibonacci.Result, terms []int64) error {
	if path == "" {
		return nil
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return apperrors.OutputError{Path: path, Cause: err}
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return apperrors.OutputError{Path: path, Cause: err}
	}

	if err := writeSequence(file, res, terms, time.Now()); err != nil {
		file.Close()
		return apperrors.OutputError{Path: path, Cause: err}
	}
	if err := file.Close(); err != nil {
		return apperrors.OutputError{Path: path, Cause: err}
	}
	return nil
}

func writeSequence(w io.Writer, res fibonacci.Result, terms []int64, now time.Time) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# Fibonacci Sequence\n")
	fmt.Fprintf(bw, "# Generated: %s\n", now.Format(time.RFC3339))
	fmt.Fprintf(bw, "# Mode: %s\n", res.Request.Mode)
	if res.Request.Mode.BoundedByValue() {
		fmt.Fprintf(bw, "# Max: %d\n", res.Request.Max)
	}
	fmt.Fprintf(bw, "# Terms: %d\n", res.Stats.Count)
	if !res.Stats.SumOverflow {
		fmt.Fprintf(bw, "# Sum: %d\n", res.Stats.Sum)
	}
	if res.Clamped {
		fmt.Fprintf(bw, "# Clamped to %d terms\n", fibonacci.MaxTerms)
	}
	fmt.Fprintln(bw)

	for i, term := range terms {
		fmt.Fprintf(bw, "F(%d) = %d\n", i, term)
	}
	return bw.Flush()
}

// DisplaySaved confirms that the sequence was written to path.
func DisplaySaved(out io.Writer, path string) {
	fmt.Fprintln(out, ui.Paint(ui.ColorBanner(), "✓ Sequence saved to: "+path))
}
