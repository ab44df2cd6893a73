// Package theme provides the color palettes the diagram is painted with.
package theme

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"slices"
	"strings"
	"sync"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/rossnomann/fretboard/config"
	"github.com/rossnomann/fretboard/diagram"
	"github.com/rossnomann/fretboard/internal/logging"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

type (
	// Theme is a named palette with a color for every swatch.
	Theme struct {
		Name   string
		colors [diagram.NumSwatches]color.NRGBA
		hex    [diagram.NumSwatches]string
	}

	file struct {
		Themes []entry `yaml:"themes"`
	}

	entry struct {
		Name   string            `yaml:"name"`
		Colors map[string]string `yaml:"colors"`
	}
)

// Default is the name of the theme used when none is chosen.
const Default = "catppuccin-mocha"

// ThemesFile is the name of the user file whose themes are added to the
// built-in ones.
const ThemesFile = "themes.yml"

var ErrUnknownTheme = errors.New("unknown theme")

//go:embed themes.yml
var defaultThemesYaml []byte

var caser = cases.Title(language.English)

var themes = sync.OnceValue(func() []*Theme {
	var f, user file
	dec := yaml.NewDecoder(bytes.NewReader(defaultThemesYaml))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		panic(fmt.Errorf("failed to unmarshal default themes: %w", err))
	}
	ret, err := build(f.Themes)
	if err != nil {
		panic(fmt.Errorf("failed to build default themes: %w", err))
	}
	if err := config.ReadCustomConfig(ThemesFile, &user); err == nil {
		userThemes, err := build(user.Themes)
		if err != nil {
			logging.Logger().Warn("ignoring user themes", "err", err)
			return ret
		}
		// a user theme replaces a built-in theme of the same name
		for _, t := range userThemes {
			if i := slices.IndexFunc(ret, func(u *Theme) bool { return u.Name == t.Name }); i >= 0 {
				ret[i] = t
			} else {
				ret = append(ret, t)
			}
		}
	}
	return ret
})

func build(entries []entry) ([]*Theme, error) {
	ret := make([]*Theme, 0, len(entries))
	for _, e := range entries {
		t, err := parse(e)
		if err != nil {
			return nil, err
		}
		ret = append(ret, t)
	}
	return ret, nil
}

func parse(e entry) (*Theme, error) {
	if e.Name == "" {
		return nil, errors.New("theme without a name")
	}
	t := &Theme{Name: e.Name}
	for name := range e.Colors {
		if _, ok := diagram.SwatchNamed(name); !ok {
			return nil, fmt.Errorf("theme %q: unknown color %q", e.Name, name)
		}
	}
	for s := range diagram.Swatch(diagram.NumSwatches) {
		hex, ok := e.Colors[s.String()]
		if !ok {
			return nil, fmt.Errorf("theme %q: missing color %q", e.Name, s)
		}
		c, err := colorful.Hex(hex)
		if err != nil {
			return nil, fmt.Errorf("theme %q: color %q: %w", e.Name, s, err)
		}
		r, g, b := c.RGB255()
		t.colors[s] = color.NRGBA{R: r, G: g, B: b, A: 0xff}
		t.hex[s] = c.Hex()
	}
	return t, nil
}

// Load returns the theme called name.
func Load(name string) (*Theme, error) {
	for _, t := range themes() {
		if t.Name == name {
			logging.Logger().Debug("theme selected", "name", name)
			return t, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
}

// MustLoad is like Load but panics when there is no theme called name.
func MustLoad(name string) *Theme {
	t, err := Load(name)
	if err != nil {
		panic(err)
	}
	return t
}

// Names returns the names of all themes in the order they are cycled through.
func Names() []string {
	var ret []string
	for _, t := range themes() {
		ret = append(ret, t.Name)
	}
	return ret
}

// Next returns the name of the theme following name, wrapping around. An
// unknown name gives the first theme.
func Next(name string) string {
	names := Names()
	i := slices.Index(names, name)
	return names[(i+1)%len(names)]
}

// DisplayName turns a theme name into a title, e.g. "catppuccin-mocha" into
// "Catppuccin Mocha".
func DisplayName(name string) string {
	return caser.String(strings.ReplaceAll(name, "-", " "))
}

// Color implements diagram.Palette.
func (t *Theme) Color(s diagram.Swatch) color.NRGBA {
	if s < 0 || s >= diagram.NumSwatches {
		return color.NRGBA{}
	}
	return t.colors[s]
}

// Hex returns the color of s as "#rrggbb".
func (t *Theme) Hex(s diagram.Swatch) string {
	if s < 0 || s >= diagram.NumSwatches {
		return ""
	}
	return t.hex[s]
}

func (t *Theme) DisplayName() string { return DisplayName(t.Name) }
