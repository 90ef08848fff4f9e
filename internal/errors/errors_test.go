package apperrors

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
)

func TestConfigError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		err         error
		expected    string
		checkTypeAs bool
	}{
		{
			name:     "Error returns message",
			err:      ConfigError{Message: "unknown mode \"sideways\""},
			expected: "unknown mode \"sideways\"",
		},
		{
			name:     "NewConfigError creates formatted error",
			err:      NewConfigError("invalid value %d for flag %s", 0, "-columns"),
			expected: "invalid value 0 for flag -columns",
		},
		{
			name:        "ConfigError type assertion",
			err:         NewConfigError("bad flag"),
			expected:    "bad flag",
			checkTypeAs: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.err.Error())
			}
			if tt.checkTypeAs {
				var configErr ConfigError
				if !errors.As(tt.err, &configErr) {
					t.Error("expected error to be ConfigError type")
				}
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	t.Parallel()
	err := ValidationError{Field: "terms", Message: "must be a positive integer"}
	want := `validation error for "terms": must be a positive integer`
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}

	wrapped := fmt.Errorf("menu: %w", err)
	var valErr ValidationError
	if !errors.As(wrapped, &valErr) {
		t.Fatal("errors.As should find ValidationError through wrapping")
	}
	if valErr.Field != "terms" {
		t.Errorf("expected Field %q, got %q", "terms", valErr.Field)
	}
}

func TestOutputError(t *testing.T) {
	t.Parallel()
	err := OutputError{Path: "/tmp/seq.txt", Cause: os.ErrPermission}

	if !errors.Is(err, os.ErrPermission) {
		t.Error("errors.Is should find the cause")
	}
	if got := err.Error(); got != "writing /tmp/seq.txt: permission denied" {
		t.Errorf("unexpected message %q", got)
	}
}

func TestWrapError(t *testing.T) {
	t.Parallel()

	t.Run("nil error stays nil", func(t *testing.T) {
		t.Parallel()
		if WrapError(nil, "context %d", 1) != nil {
			t.Error("WrapError(nil) should return nil")
		}
	})

	t.Run("wraps with message", func(t *testing.T) {
		t.Parallel()
		base := errors.New("disk full")
		err := WrapError(base, "saving %s", "seq.txt")
		if err.Error() != "saving seq.txt: disk full" {
			t.Errorf("unexpected message %q", err.Error())
		}
		if !errors.Is(err, base) {
			t.Error("wrapped error should match base with errors.Is")
		}
	})
}

func TestIsContextError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"canceled", context.Canceled, true},
		{"deadline", context.DeadlineExceeded, true},
		{"wrapped canceled", fmt.Errorf("run: %w", context.Canceled), true},
		{"other", errors.New("boom"), false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsContextError(tt.err); got != tt.want {
				t.Errorf("IsContextError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodeFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"config", NewConfigError("bad"), ExitErrorConfig},
		{"validation", ValidationError{Field: "max", Message: "negative"}, ExitErrorConfig},
		{"canceled", context.Canceled, ExitErrorCanceled},
		{"output", OutputError{Path: "x", Cause: os.ErrNotExist}, ExitErrorGeneric},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ExitCodeFor(tt.err); got != tt.want {
				t.Errorf("ExitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
