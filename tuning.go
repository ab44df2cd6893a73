package fretboard

import (
	"slices"
	"strings"
)

// Tuning is the open pitch of every string of an instrument together with the
// number of frets on its neck. Strings are ordered from the thickest one
// (index 0) up. A Tuning is immutable; the zero value has no strings and no
// frets and draws nothing.
type Tuning struct {
	name    string
	frets   uint8
	pitches []Pitch
}

// DefaultFrets is the fret count used when a tuning does not give one.
const DefaultFrets = 24

// NewTuning returns a tuning over a copy of pitches. An empty name is replaced
// by the concatenated sharp names of the pitches, e.g. "E2A2D3G3B3E4".
func NewTuning(name string, frets uint8, pitches []Pitch) Tuning {
	pitches = slices.Clone(pitches)
	if name == "" {
		var b strings.Builder
		for _, p := range pitches {
			b.WriteString(p.FormatSharp())
		}
		name = b.String()
	}
	return Tuning{name: name, frets: frets, pitches: pitches}
}

// Name returns the display name of the tuning.
func (t Tuning) Name() string { return t.name }

// Frets returns the number of frets, not counting the nut.
func (t Tuning) Frets() uint8 { return t.frets }

// Strings returns the number of strings.
func (t Tuning) Strings() int { return len(t.pitches) }

// Pitch returns the open pitch of string i.
func (t Tuning) Pitch(i int) Pitch { return t.pitches[i] }

// Pitches returns a copy of the open pitches, thickest string first.
func (t Tuning) Pitches() []Pitch { return slices.Clone(t.pitches) }

// Equal reports whether t and u have the same name, frets and pitches.
func (t Tuning) Equal(u Tuning) bool {
	return t.name == u.name && t.frets == u.frets && slices.Equal(t.pitches, u.pitches)
}

// Format joins the open pitches with spaces, using flat spellings if flat is
// set.
func (t Tuning) Format(flat bool) string {
	names := make([]string, len(t.pitches))
	for i, p := range t.pitches {
		if flat {
			names[i] = p.FormatFlat()
		} else {
			names[i] = p.FormatSharp()
		}
	}
	return strings.Join(names, " ")
}
