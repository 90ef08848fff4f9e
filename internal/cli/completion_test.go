package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestGenerateCompletion(t *testing.T) {
	t.Parallel()
	tests := []struct {
		shell    string
		contains []string
	}{
		{"bash", []string{"complete -F _fibmenu_completions fibmenu", "-mode)", `compgen -W "count max stats columns"`, "-o|-output|-metrics-file)"}},
		{"zsh", []string{"#compdef fibmenu", "'-mode[One-shot display mode]:mode:(count max stats columns)'", "'-o[Output file path]:file:_files'"}},
		{"fish", []string{"complete -c fibmenu -f", "complete -c fibmenu -o completion -d 'Generate completion script' -xa 'bash zsh fish'", "-o n -d 'Number of terms to generate' -x"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.shell, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			if err := GenerateCompletion(&buf, tt.shell); err != nil {
				t.Fatalf("GenerateCompletion(%s): %v", tt.shell, err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("%s script should contain %q", tt.shell, want)
				}
			}
		})
	}
}

func TestGenerateCompletion_UnsupportedShell(t *testing.T) {
	t.Parallel()
	err := GenerateCompletion(&bytes.Buffer{}, "powershell")
	if err == nil || !strings.Contains(err.Error(), "unsupported shell") {
		t.Errorf("expected unsupported shell error, got %v", err)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestGenerateCompletion_WriteError(t *testing.T) {
	t.Parallel()
	if err := GenerateCompletion(failingWriter{}, "bash"); err == nil {
		t.Error("expected write error")
	}
}
