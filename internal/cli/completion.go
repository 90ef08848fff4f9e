package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/agbru/fibmenu/internal/fibonacci"
)

// FlagCompletion describes a CLI flag for shell completion generation.
// Every generator reads flagRegistry, so a new flag only needs an entry there.
type FlagCompletion struct {
	Name      string   // flag name without the leading dash
	Help      string   // description text
	Values    []string // suggested values (nil = boolean or free-form)
	ValueName string   // label for the value in zsh (e.g., "number")
	IsFile    bool     // true if the flag takes a file path
}

func modeNames() []string {
	names := make([]string, 0, len(fibonacci.Modes()))
	for _, m := range fibonacci.Modes() {
		names = append(names, m.String())
	}
	return names
}

// flagRegistry lists the flags offered by completion, in help order.
var flagRegistry = []FlagCompletion{
	{Name: "help", Help: "Show help message"},
	{Name: "version", Help: "Show version information"},
	{Name: "mode", Help: "One-shot display mode", Values: modeNames(), ValueName: "mode"},
	{Name: "n", Help: "Number of terms to generate", ValueName: "number"},
	{Name: "max", Help: "Maximum value for the up-to-max mode", ValueName: "number"},
	{Name: "columns", Help: "Terms per row in column mode", Values: []string{"5", "8", "10"}, ValueName: "count"},
	{Name: "width", Help: "Cell width in column mode", Values: []string{"12", "16", "20"}, ValueName: "chars"},
	{Name: "delay", Help: "Pause between terms", Values: []string{"50ms", "100ms", "250ms"}, ValueName: "duration"},
	{Name: "no-color", Help: "Disable colored output"},
	{Name: "no-clear", Help: "Keep the screen before the menu"},
	{Name: "no-pause", Help: "Do not wait for ENTER before exiting"},
	{Name: "tui", Help: "Launch the interactive terminal UI"},
	{Name: "o", Help: "Output file path", IsFile: true, ValueName: "file"},
	{Name: "output", Help: "Output file path", IsFile: true, ValueName: "file"},
	{Name: "metrics-file", Help: "Prometheus textfile path", IsFile: true, ValueName: "file"},
	{Name: "log-level", Help: "Diagnostic log level", Values: []string{"debug", "info", "warn", "error", "disabled"}, ValueName: "level"},
	{Name: "v", Help: "Verbose diagnostics"},
	{Name: "completion", Help: "Generate completion script", Values: []string{"bash", "zsh", "fish"}, ValueName: "shell"},
}

// GenerateCompletion writes a completion script for shell (bash, zsh or fish)
// to out.
func GenerateCompletion(out io.Writer, shell string) error {
	var script string
	switch shell {
	case "bash":
		script = bashCompletion()
	case "zsh":
		script = zshCompletion()
	case "fish":
		script = fishCompletion()
	default:
		return fmt.Errorf("unsupported shell: %s (accepted values: bash, zsh, fish)", shell)
	}
	if _, err := io.WriteString(out, script); err != nil {
		return fmt.Errorf("completion %s generation failed: %w", shell, err)
	}
	return nil
}

func bashCompletion() string {
	opts := make([]string, 0, len(flagRegistry))
	var files []string
	var cases strings.Builder
	for _, f := range flagRegistry {
		opts = append(opts, "-"+f.Name)
		switch {
		case f.IsFile:
			files = append(files, "-"+f.Name)
		case len(f.Values) > 0:
			fmt.Fprintf(&cases, "        -%s)\n            COMPREPLY=( $(compgen -W \"%s\" -- \"${cur}\") )\n            return 0\n            ;;\n",
				f.Name, strings.Join(f.Values, " "))
		}
	}
	if len(files) > 0 {
		fmt.Fprintf(&cases, "        %s)\n            COMPREPLY=( $(compgen -f -- \"${cur}\") )\n            return 0\n            ;;\n",
			strings.Join(files, "|"))
	}

	return fmt.Sprintf(`# Bash completion script for fibmenu
# Add this to your ~/.bashrc or ~/.bash_completion

_fibmenu_completions() {
    local cur prev opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"
    opts="%s"

    case "${prev}" in
%s    esac

    if [[ "${cur}" == -* ]]; then
        COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
        return 0
    fi
}

complete -F _fibmenu_completions fibmenu
`, strings.Join(opts, " "), cases.String())
}

func zshCompletion() string {
	args := make([]string, 0, len(flagRegistry))
	for _, f := range flagRegistry {
		suffix := ""
		switch {
		case f.IsFile:
			suffix = fmt.Sprintf(":%s:_files", f.ValueName)
		case len(f.Values) > 0:
			suffix = fmt.Sprintf(":%s:(%s)", f.ValueName, strings.Join(f.Values, " "))
		case f.ValueName != "":
			suffix = fmt.Sprintf(":%s:", f.ValueName)
		}
		args = append(args, fmt.Sprintf("        '-%s[%s]%s'", f.Name, f.Help, suffix))
	}

	return fmt.Sprintf(`#compdef fibmenu

# Zsh completion script for fibmenu
# Add this to your ~/.zshrc or place in $fpath

_fibmenu() {
    _arguments -s \
%s
}

_fibmenu "$@"
`, strings.Join(args, " \\\n"))
}

func fishCompletion() string {
	lines := []string{
		"# Fish completion script for fibmenu",
		"# Add this to ~/.config/fish/completions/fibmenu.fish",
		"",
		"complete -c fibmenu -f",
	}
	for _, f := range flagRegistry {
		parts := []string{"complete -c fibmenu", "-o " + f.Name, fmt.Sprintf("-d '%s'", f.Help)}
		switch {
		case f.IsFile:
			parts = append(parts, "-rF")
		case len(f.Values) > 0:
			parts = append(parts, fmt.Sprintf("-xa '%s'", strings.Join(f.Values, " ")))
		case f.ValueName != "":
			parts = append(parts, "-x")
		}
		lines = append(lines, strings.Join(parts, " "))
	}
	return strings.Join(lines, "\n") + "\n"
}
