package gioui_test

import (
	"testing"

	"gioui.org/io/key"
	"github.com/rossnomann/fretboard/gioui"
)

func TestMakeKeyMap(t *testing.T) {
	m := gioui.MakeKeyMap([]gioui.KeyBinding{
		{Key: "N", Action: gioui.NextTuning},
		{Key: "→", Action: gioui.NextTuning},
		{Key: "T", Action: gioui.NextTheme},
		{Key: "X", Shift: true, Action: gioui.Quit},
		{Key: "T"}, // unbinds
	})
	tests := []struct {
		event  key.Event
		action gioui.KeyAction
		ok     bool
	}{
		{key.Event{Name: "N", State: key.Press}, gioui.NextTuning, true},
		{key.Event{Name: key.NameRightArrow, State: key.Press}, gioui.NextTuning, true},
		{key.Event{Name: "N", State: key.Release}, "", false},
		{key.Event{Name: "T", State: key.Press}, "", false},
		{key.Event{Name: "X", State: key.Press}, "", false},
		{key.Event{Name: "X", Modifiers: key.ModShift, State: key.Press}, gioui.Quit, true},
	}
	for _, tt := range tests {
		action, ok := m.Action(tt.event)
		if action != tt.action || ok != tt.ok {
			t.Errorf("Action(%v %v) = %q, %v, want %q, %v", tt.event.Modifiers, tt.event.Name, action, ok, tt.action, tt.ok)
		}
	}
	if got := m.Hint("Next", " (%s)", gioui.NextTuning); got != "Next (→)" {
		t.Errorf("Hint = %q", got)
	}
	if got := m.Hint("Theme", " (%s)", gioui.NextTheme); got != "Theme" {
		t.Errorf("hint of an unbound action = %q", got)
	}
	if got := m.Hint("Quit", " (%s)", gioui.Quit); got != "Quit (Shift+X)" {
		t.Errorf("Hint = %q", got)
	}
}

func TestLoadKeyMapDefaults(t *testing.T) {
	isolateUserConfig(t)
	m, warn := gioui.LoadKeyMap()
	if warn != nil {
		t.Fatalf("LoadKeyMap: %v", warn)
	}
	for name, want := range map[key.Name]gioui.KeyAction{
		key.NameLeftArrow:  gioui.PrevTuning,
		key.NameRightArrow: gioui.NextTuning,
		"T":                gioui.NextTheme,
		"F":                gioui.ToggleNotation,
		key.NameEscape:     gioui.Quit,
	} {
		if got, _ := m.Action(key.Event{Name: name, State: key.Press}); got != want {
			t.Errorf("%v bound to %q, want %q", name, got, want)
		}
	}
}
