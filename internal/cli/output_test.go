package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	apperrors "github.com/agbru/fibmenu/internal/errors"
	"github.com/agbru/fibmenu/internal/fibonacci"
)

func TestWriteSequenceToFile(t *testing.T) {
	t.Parallel()
	tmpDir := t.TempDir()

	terms, err := fibonacci.Terms(10)
	if err != nil {
		t.Fatal(err)
	}
	res := fibonacci.Result{
		Request: fibonacci.Request{Mode: fibonacci.ModeCount, Terms: 10},
		Stats:   fibonacci.Stats{Count: 10, Sum: 88, Last: 34, Previous: 21},
	}

	testCases := []struct {
		name      string
		path      string
		checkFunc func(t *testing.T, path string)
	}{
		{
			name: "writes header and terms",
			path: filepath.Join(tmpDir, "seq.txt"),
			checkFunc: func(t *testing.T, path string) {
				content, err := os.ReadFile(path)
				if err != nil {
					t.Fatalf("Failed to read output file: %v", err)
				}
				s := string(content)
				for _, want := range []string{"# Fibonacci Sequence", "# Mode: count", "# Terms: 10", "# Sum: 88", "F(0) = 0\n", "F(9) = 34\n"} {
					if !strings.Contains(s, want) {
						t.Errorf("file should contain %q, got:\n%s", want, s)
					}
				}
			},
		},
		{
			name: "empty path writes nothing",
			path: "",
		},
		{
			name: "creates nested directory",
			path: filepath.Join(tmpDir, "nested", "dir", "seq.txt"),
			checkFunc: func(t *testing.T, path string) {
				if _, err := os.Stat(path); err != nil {
					t.Errorf("File should exist in nested directory: %v", err)
				}
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if err := WriteSequenceToFile(tc.path, res, terms); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.checkFunc != nil {
				tc.checkFunc(t, tc.path)
			}
		})
	}
}

func TestWriteSequenceToFile_Error(t *testing.T) {
	t.Parallel()
	// A regular file cannot be used as a parent directory.
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	err := WriteSequenceToFile(filepath.Join(blocker, "seq.txt"), fibonacci.Result{}, nil)
	var outErr apperrors.OutputError
	if !errors.As(err, &outErr) {
		t.Fatalf("expected OutputError, got %v", err)
	}
	if apperrors.ExitCodeFor(err) != apperrors.ExitErrorGeneric {
		t.Errorf("exit code = %d, want %d", apperrors.ExitCodeFor(err), apperrors.ExitErrorGeneric)
	}
}

func TestWriteSequence_UpToMaxHeader(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	res := fibonacci.Result{
		Request: fibonacci.Request{Mode: fibonacci.ModeUpToMax, Max: 10},
		Stats:   fibonacci.Stats{Count: 7, Sum: 20},
	}
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	if err := writeSequence(&buf, res, []int64{0, 1, 1, 2, 3, 5, 8}, now); err != nil {
		t.Fatal(err)
	}

	want := "# Fibonacci Sequence\n" +
		"# Generated: 2024-01-02T03:04:05Z\n" +
		"# Mode: max\n" +
		"# Max: 10\n" +
		"# Terms: 7\n" +
		"# Sum: 20\n" +
		"\n" +
		"F(0) = 0\nF(1) = 1\nF(2) = 1\nF(3) = 2\nF(4) = 3\nF(5) = 5\nF(6) = 8\n"
	if buf.String() != want {
		t.Errorf("unexpected content:\n%s\nwant:\n%s", buf.String(), want)
	}
}
