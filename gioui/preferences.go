package gioui

import (
	_ "embed"
	"fmt"
	"os"

	"gioui.org/unit"
	"github.com/rossnomann/fretboard/config"
	"gopkg.in/yaml.v2"
)

type (
	Preferences struct {
		Window WindowPreferences
		Theme  string
		Flat   bool `yaml:",omitempty"`
	}

	WindowPreferences struct {
		Width     int
		Height    int
		Maximized bool `yaml:",omitempty"`
	}
)

const PreferencesFile = "preferences.yml"

//go:embed preferences.yml
var defaultPreferencesYaml []byte

func loadDefaultPreferences() Preferences {
	var preferences Preferences
	err := yaml.UnmarshalStrict(defaultPreferencesYaml, &preferences)
	if err != nil {
		panic(fmt.Errorf("failed to unmarshal preferences: %w", err))
	}
	return preferences
}

// ParsePreferences overlays data on the default preferences.
func ParsePreferences(data []byte) (Preferences, error) {
	preferences := loadDefaultPreferences()
	if err := yaml.UnmarshalStrict(data, &preferences); err != nil {
		return loadDefaultPreferences(), err
	}
	return preferences, nil
}

// ReadCustomConfigYml modifies the target argument, i.e. needs a pointer
func ReadCustomConfigYml(filename string, target interface{}) (exists bool, err error) {
	path, err := config.UserPath(filename)
	if err != nil {
		return false, err
	}
	bytes, err2 := os.ReadFile(path)
	if err2 != nil {
		return false, err2
	}
	if err = yaml.UnmarshalStrict(bytes, target); err != nil {
		err = fmt.Errorf("%s: %w", path, err)
	}
	return true, err
}

// MakePreferences returns the user preferences over the defaults. warn is
// set when the user file exists but cannot be used.
func MakePreferences() (preferences Preferences, warn error) {
	preferences = loadDefaultPreferences()
	exists, err := ReadCustomConfigYml(PreferencesFile, &preferences)
	if exists && err != nil {
		return loadDefaultPreferences(), err
	}
	return preferences, nil
}

func (p Preferences) WindowSize() (unit.Dp, unit.Dp) {
	return unit.Dp(p.Window.Width), unit.Dp(p.Window.Height)
}
