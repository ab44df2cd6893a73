// Package config loads the tuning collection from YAML, falling back to the
// built-in tunings when the user has none or theirs cannot be used.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rossnomann/fretboard"
	"github.com/rossnomann/fretboard/internal/logging"
	"gopkg.in/yaml.v3"
)

type (
	// File is the layout of tunings.yml.
	File struct {
		Frets    uint8   `yaml:"frets,omitempty"`
		Selected string  `yaml:"selected,omitempty"`
		Tunings  []Entry `yaml:"tunings"`
	}

	// Entry is one tuning of a File. A nil Frets takes the frets of the file.
	Entry struct {
		Name    string   `yaml:"name,omitempty"`
		Frets   *uint8   `yaml:"frets,omitempty"`
		Pitches []string `yaml:"pitches"`
	}
)

// AppDir is the directory under os.UserConfigDir() holding user files.
const AppDir = "fretboard"

// TuningsFile is the name of the user tunings file.
const TuningsFile = "tunings.yml"

//go:embed tunings.yml
var defaultTuningsYaml []byte

// Decode reads a File, rejecting unknown fields.
func Decode(data []byte) (File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return File{}, fmt.Errorf("decoding tunings: %w", err)
	}
	return f, nil
}

// Collection builds the tuning collection described by f. A selected name
// that matches none of the tunings selects the first one.
func (f File) Collection() (*fretboard.TuningCollection, error) {
	frets := f.Frets
	if frets == 0 {
		frets = fretboard.DefaultFrets
	}
	tunings := make([]fretboard.Tuning, 0, len(f.Tunings))
	for i, e := range f.Tunings {
		t, err := e.Tuning(frets)
		if err != nil {
			return nil, fmt.Errorf("tuning %d: %w", i, err)
		}
		tunings = append(tunings, t)
	}
	c, err := fretboard.NewTuningCollection(tunings, 0)
	if err != nil {
		return nil, err
	}
	if f.Selected != "" {
		if i, ok := c.IndexOf(f.Selected); ok {
			c.Select(i)
		} else {
			logging.Logger().Warn("selected tuning not found, using the first one", "selected", f.Selected)
		}
	}
	return c, nil
}

// Tuning parses the pitches of e. frets is used when e does not set its own.
func (e Entry) Tuning(frets uint8) (fretboard.Tuning, error) {
	if e.Frets != nil {
		frets = *e.Frets
	}
	pitches := make([]fretboard.Pitch, len(e.Pitches))
	for i, s := range e.Pitches {
		p, err := fretboard.ParsePitch(s)
		if err != nil {
			return fretboard.Tuning{}, fmt.Errorf("string %d: %w", i+1, err)
		}
		pitches[i] = p
	}
	return fretboard.NewTuning(e.Name, frets, pitches), nil
}

// Parse decodes data and builds its tuning collection.
func Parse(data []byte) (*fretboard.TuningCollection, error) {
	f, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return f.Collection()
}

// Default returns the built-in tuning collection, standard tuning selected.
func Default() *fretboard.TuningCollection {
	c, err := Parse(defaultTuningsYaml)
	if err != nil {
		panic(fmt.Errorf("failed to parse default tunings: %w", err))
	}
	return c
}

// DefaultTuning returns standard six string guitar tuning with 24 frets.
func DefaultTuning() fretboard.Tuning {
	return fretboard.NewTuning("standard", fretboard.DefaultFrets, []fretboard.Pitch{
		fretboard.NewPitch(fretboard.E, 2),
		fretboard.NewPitch(fretboard.A, 2),
		fretboard.NewPitch(fretboard.D, 3),
		fretboard.NewPitch(fretboard.G, 3),
		fretboard.NewPitch(fretboard.B, 3),
		fretboard.NewPitch(fretboard.E, 4),
	})
}

// Load returns the tunings of the file at path, or of the user tunings file
// when path is empty. The collection is never nil: when the file is missing
// or broken the built-in one is returned. warn reports why the file was not
// used; a missing user file is not worth a warning.
func Load(path string) (c *fretboard.TuningCollection, warn error) {
	user := path == ""
	if user {
		p, err := UserPath(TuningsFile)
		if err != nil {
			return Default(), nil
		}
		path = p
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if user && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return fallback(path, err)
	}
	c, err = Parse(data)
	if err != nil {
		return fallback(path, err)
	}
	logging.Logger().Debug("tunings loaded", "path", path, "count", c.Len())
	return c, nil
}

func fallback(path string, err error) (*fretboard.TuningCollection, error) {
	err = fmt.Errorf("%s: %w", path, err)
	logging.Logger().Warn("using built-in tunings", "err", err)
	return Default(), err
}

// UserPath returns where the user file called filename lives.
func UserPath(filename string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, AppDir, filename), nil
}

// ReadCustomConfig decodes the user file called filename into target, which
// must be a pointer. Unknown fields are an error.
func ReadCustomConfig(filename string, target any) error {
	path, err := UserPath(filename)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(target); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
