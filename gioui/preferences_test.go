package gioui_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rossnomann/fretboard/gioui"
)

func TestParsePreferences(t *testing.T) {
	defaults, err := gioui.ParsePreferences(nil)
	if err != nil {
		t.Fatalf("defaults: %v", err)
	}
	want := gioui.Preferences{
		Window: gioui.WindowPreferences{Width: 1280, Height: 400},
		Theme:  "catppuccin-mocha",
	}
	if d := cmp.Diff(want, defaults); d != "" {
		t.Errorf("defaults mismatch (-want +got):\n%s", d)
	}

	p, err := gioui.ParsePreferences([]byte("theme: catppuccin-latte\nflat: true\nwindow:\n  width: 640\n  height: 200\n"))
	if err != nil {
		t.Fatalf("ParsePreferences: %v", err)
	}
	want = gioui.Preferences{
		Window: gioui.WindowPreferences{Width: 640, Height: 200},
		Theme:  "catppuccin-latte",
		Flat:   true,
	}
	if d := cmp.Diff(want, p); d != "" {
		t.Errorf("preferences mismatch (-want +got):\n%s", d)
	}
	if w, h := p.WindowSize(); w != 640 || h != 200 {
		t.Errorf("WindowSize = %v, %v", w, h)
	}
}

func TestParsePreferencesUnknownField(t *testing.T) {
	p, err := gioui.ParsePreferences([]byte("theme: catppuccin-latte\ncolour: red\n"))
	if err == nil {
		t.Fatal("unknown field accepted")
	}
	if p.Theme != "catppuccin-mocha" {
		t.Errorf("broken preferences kept theme %q", p.Theme)
	}
}
