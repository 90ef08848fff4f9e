package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
)

func TestDefaultKeyMap_AllBindingsDefined(t *testing.T) {
	km := DefaultKeyMap()

	bindings := []struct {
		name    string
		binding key.Binding
	}{
		{"Quit", km.Quit},
		{"Up", km.Up},
		{"Down", km.Down},
		{"Select", km.Select},
		{"Back", km.Back},
		{"Again", km.Again},
		{"Shortcut", km.Shortcut},
	}

	for _, b := range bindings {
		t.Run(b.name, func(t *testing.T) {
			if !b.binding.Enabled() {
				t.Errorf("expected %s binding to be enabled", b.name)
			}
			keys := b.binding.Keys()
			if len(keys) == 0 {
				t.Errorf("expected %s binding to have at least one key", b.name)
			}
			if b.binding.Help().Desc == "" {
				t.Errorf("expected %s binding to have help text", b.name)
			}
		})
	}
}

func TestDefaultKeyMap_QuitKeys(t *testing.T) {
	km := DefaultKeyMap()

	keys := km.Quit.Keys()
	hasQ := false
	hasCtrlC := false
	for _, k := range keys {
		switch k {
		case "q":
			hasQ = true
		case "ctrl+c":
			hasCtrlC = true
		}
	}

	if !hasQ {
		t.Error("expected Quit binding to include 'q'")
	}
	if !hasCtrlC {
		t.Error("expected Quit binding to include 'ctrl+c'")
	}
}

func TestKeyMap_FooterBindings(t *testing.T) {
	km := DefaultKeyMap()
	if got := len(km.footerBindings(screenMenu)); got != 5 {
		t.Errorf("menu footer has %d bindings, want 5", got)
	}
	if got := len(km.footerBindings(screenInput)); got != 2 {
		t.Errorf("input footer has %d bindings, want 2", got)
	}
	if got := len(km.footerBindings(screenResult)); got != 2 {
		t.Errorf("result footer has %d bindings, want 2", got)
	}
}
