// Package cmd holds what the fretboard binaries share: common flags and
// loading the tunings and the theme they start with.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/rossnomann/fretboard"
	"github.com/rossnomann/fretboard/config"
	"github.com/rossnomann/fretboard/internal/logging"
	"github.com/rossnomann/fretboard/theme"
)

// Options are the flags every binary takes.
type Options struct {
	Config  string
	Theme   string
	Tuning  string
	Debug   bool
	Version bool
}

var ErrUnknownTuning = errors.New("unknown tuning")

// RegisterFlags defines the common flags on fs.
func RegisterFlags(fs *flag.FlagSet) *Options {
	o := &Options{}
	fs.StringVar(&o.Config, "config", "", "read tunings from `file` instead of the user tunings.yml")
	fs.StringVar(&o.Theme, "theme", "", "color `theme`, one of the catppuccin flavors, e.g. catppuccin-latte")
	fs.StringVar(&o.Tuning, "tuning", "", "select the tuning called `name` at start")
	fs.BoolVar(&o.Debug, "debug", false, "log debug messages to stderr")
	fs.BoolVar(&o.Version, "version", false, "print version")
	return o
}

// Setup installs the logger writing to stderr.
func (o *Options) Setup(stderr io.Writer) {
	logging.Setup(stderr, o.Debug)
}

// Tunings loads the tuning collection and selects the tuning asked for. The
// collection is always usable; the warnings tell what was ignored.
func (o *Options) Tunings() (*fretboard.TuningCollection, []error) {
	var warnings []error
	c, warn := config.Load(o.Config)
	if warn != nil {
		warnings = append(warnings, warn)
	}
	if o.Tuning != "" {
		if i, ok := c.IndexOf(o.Tuning); ok {
			c.Select(i)
		} else {
			err := fmt.Errorf("%w: %q", ErrUnknownTuning, o.Tuning)
			logging.Logger().Warn("keeping the configured tuning", "err", err)
			warnings = append(warnings, err)
		}
	}
	return c, warnings
}

// LoadTheme returns the theme given by the flag, or the one called fallback
// when the flag is empty. An unknown name gives the default theme and an
// error saying so.
func (o *Options) LoadTheme(fallback string) (*theme.Theme, error) {
	name := o.Theme
	if name == "" {
		name = fallback
	}
	if name == "" {
		name = theme.Default
	}
	th, err := theme.Load(name)
	if err != nil {
		logging.Logger().Warn("using the default theme", "err", err)
		return theme.MustLoad(theme.Default), err
	}
	return th, nil
}
