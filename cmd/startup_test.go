package cmd_test

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/rossnomann/fretboard/cmd"
	"github.com/rossnomann/fretboard/theme"
)

func parse(t *testing.T, args ...string) *cmd.Options {
	t.Helper()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	o := cmd.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatal(err)
	}
	return o
}

func TestTunings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tunings.yml")
	data := []byte("tunings:\n  - name: a\n    pitches: [A2]\n  - name: b\n    pitches: [B2]\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	c, warnings := parse(t, "-config", path, "-tuning", "b").Tunings()
	if len(warnings) != 0 {
		t.Errorf("warnings = %v", warnings)
	}
	if c.Index() != 1 {
		t.Errorf("selected %d, want 1", c.Index())
	}

	c, warnings = parse(t, "-config", path, "-tuning", "zzz").Tunings()
	if len(warnings) != 1 || !errors.Is(warnings[0], cmd.ErrUnknownTuning) {
		t.Errorf("warnings = %v, want unknown tuning", warnings)
	}
	if c.Index() != 0 {
		t.Errorf("selected %d, want 0", c.Index())
	}

	c, warnings = parse(t, "-config", filepath.Join(dir, "missing.yml")).Tunings()
	if len(warnings) != 1 || c.Len() == 0 {
		t.Errorf("missing file: %d tunings, warnings %v", c.Len(), warnings)
	}
}

func TestLoadTheme(t *testing.T) {
	th, err := parse(t).LoadTheme("")
	if err != nil || th.Name != theme.Default {
		t.Errorf("LoadTheme = %v, %v", th.Name, err)
	}
	th, err = parse(t).LoadTheme("catppuccin-latte")
	if err != nil || th.Name != "catppuccin-latte" {
		t.Errorf("LoadTheme = %v, %v", th.Name, err)
	}
	th, err = parse(t, "-theme", "catppuccin-frappe").LoadTheme("catppuccin-latte")
	if err != nil || th.Name != "catppuccin-frappe" {
		t.Errorf("LoadTheme = %v, %v", th.Name, err)
	}
	th, err = parse(t, "-theme", "vivid").LoadTheme("")
	if !errors.Is(err, theme.ErrUnknownTheme) || th.Name != theme.Default {
		t.Errorf("LoadTheme = %v, %v", th.Name, err)
	}
}
