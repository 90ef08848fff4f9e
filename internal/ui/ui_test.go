package ui

import (
	"bytes"
	"testing"
)

func TestInitTheme(t *testing.T) {
	original := GetCurrentTheme()
	t.Cleanup(func() { SetCurrentTheme(original) })

	t.Run("no-color flag", func(t *testing.T) {
		InitTheme(true)
		if GetCurrentTheme().Name != "none" {
			t.Errorf("theme = %q, want none", GetCurrentTheme().Name)
		}
		if ColorError() != "" || ColorReset() != "" {
			t.Error("no-color theme must not emit escapes")
		}
	})

	t.Run("NO_COLOR environment", func(t *testing.T) {
		t.Setenv("NO_COLOR", "")
		InitTheme(false)
		if GetCurrentTheme().Name != "none" {
			t.Errorf("theme = %q, want none", GetCurrentTheme().Name)
		}
	})

	t.Run("named theme", func(t *testing.T) {
		t.Setenv("FIBMENU_THEME", "vivid")
		InitTheme(false)
		if GetCurrentTheme().Name != "vivid" {
			t.Errorf("theme = %q, want vivid", GetCurrentTheme().Name)
		}
	})
}

func TestSetTheme_UnknownFallsBack(t *testing.T) {
	original := GetCurrentTheme()
	t.Cleanup(func() { SetCurrentTheme(original) })

	SetTheme("mauve")
	if GetCurrentTheme().Name != ClassicTheme.Name {
		t.Errorf("theme = %q, want classic", GetCurrentTheme().Name)
	}
}

func TestGetCurrentTUITheme(t *testing.T) {
	original := GetCurrentTheme()
	t.Cleanup(func() { SetCurrentTheme(original) })

	SetCurrentTheme(NoColorTheme)
	if GetCurrentTUITheme() != NoColorTUITheme {
		t.Error("expected NoColorTUITheme for the none theme")
	}
	SetCurrentTheme(ClassicTheme)
	if GetCurrentTUITheme() != ColorTUITheme {
		t.Error("expected ColorTUITheme for the classic theme")
	}
}

func TestPaint(t *testing.T) {
	original := GetCurrentTheme()
	t.Cleanup(func() { SetCurrentTheme(original) })

	SetCurrentTheme(ClassicTheme)
	if got := Paint(ColorError(), "oops"); got != "\033[31moops\033[0m" {
		t.Errorf("Paint = %q", got)
	}
	if got := Paint("", "plain"); got != "plain" {
		t.Errorf("Paint with empty color = %q", got)
	}
}

func TestTerminalHelpers_NonTerminalWriter(t *testing.T) {
	var buf bytes.Buffer
	if IsTerminal(&buf) {
		t.Error("bytes.Buffer is not a terminal")
	}
	if w := TerminalWidth(&buf, 80); w != 80 {
		t.Errorf("TerminalWidth = %d, want fallback 80", w)
	}
	ClearScreen(&buf)
	if buf.Len() != 0 {
		t.Errorf("ClearScreen wrote %q to a non-terminal", buf.String())
	}
}
