package theme_test

import (
	"errors"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rossnomann/fretboard/diagram"
	"github.com/rossnomann/fretboard/theme"
)

func TestNames(t *testing.T) {
	want := []string{"catppuccin-latte", "catppuccin-frappe", "catppuccin-macchiato", "catppuccin-mocha"}
	if d := cmp.Diff(want, theme.Names()[:4]); d != "" {
		t.Errorf("names mismatch (-want +got):\n%s", d)
	}
}

func TestLoad(t *testing.T) {
	mocha, err := theme.Load(theme.Default)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	tests := []struct {
		swatch diagram.Swatch
		want   color.NRGBA
		hex    string
	}{
		{diagram.Rosewater, color.NRGBA{0xf5, 0xe0, 0xdc, 0xff}, "#f5e0dc"},
		{diagram.Red, color.NRGBA{0xf3, 0x8b, 0xa8, 0xff}, "#f38ba8"},
		{diagram.Base, color.NRGBA{0x1e, 0x1e, 0x2e, 0xff}, "#1e1e2e"},
		{diagram.Crust, color.NRGBA{0x11, 0x11, 0x1b, 0xff}, "#11111b"},
	}
	for _, tt := range tests {
		if got := mocha.Color(tt.swatch); got != tt.want {
			t.Errorf("Color(%v) = %v, want %v", tt.swatch, got, tt.want)
		}
		if got := mocha.Hex(tt.swatch); got != tt.hex {
			t.Errorf("Hex(%v) = %q, want %q", tt.swatch, got, tt.hex)
		}
	}
	if got := mocha.Color(diagram.Swatch(-1)); got != (color.NRGBA{}) {
		t.Errorf("Color(-1) = %v", got)
	}
}

func TestEveryThemeIsOpaque(t *testing.T) {
	for _, name := range theme.Names() {
		th := theme.MustLoad(name)
		for s := range diagram.Swatch(diagram.NumSwatches) {
			if th.Color(s).A != 0xff {
				t.Errorf("%s: %v is not opaque", name, s)
			}
		}
	}
}

func TestLoadUnknown(t *testing.T) {
	if _, err := theme.Load("solarized"); !errors.Is(err, theme.ErrUnknownTheme) {
		t.Errorf("err = %v, want ErrUnknownTheme", err)
	}
}

func TestNext(t *testing.T) {
	names := theme.Names()
	if got := theme.Next(names[len(names)-1]); got != names[0] {
		t.Errorf("Next(last) = %q, want %q", got, names[0])
	}
	if got := theme.Next("catppuccin-latte"); got != "catppuccin-frappe" {
		t.Errorf("Next(latte) = %q", got)
	}
	if got := theme.Next("nope"); got != names[0] {
		t.Errorf("Next(unknown) = %q, want %q", got, names[0])
	}
}

func TestDisplayName(t *testing.T) {
	if got := theme.DisplayName("catppuccin-mocha"); got != "Catppuccin Mocha" {
		t.Errorf("DisplayName = %q", got)
	}
	if got := theme.MustLoad("catppuccin-latte").DisplayName(); got != "Catppuccin Latte" {
		t.Errorf("DisplayName = %q", got)
	}
}
