package fretboard

import (
	"fmt"
	"iter"
)

// Pitch is a pitch class in a particular octave. Octaves follow scientific
// pitch notation and change between B and C, so the pitch after B3 is C4.
type Pitch struct {
	Note   Note
	Octave int
}

// NewPitch returns the pitch of note n in the given octave.
func NewPitch(n Note, octave int) Pitch {
	return Pitch{Note: n, Octave: octave}
}

// Next returns the pitch a semitone above p.
func (p Pitch) Next() Pitch {
	next := p.Note.Next()
	octave := p.Octave
	if p.Note == B && next == C {
		octave++
	}
	return Pitch{Note: next, Octave: octave}
}

// All returns an unbounded sequence of ascending pitches starting at p. Every
// call to the returned sequence starts over from p.
func (p Pitch) All() iter.Seq[Pitch] {
	return func(yield func(Pitch) bool) {
		for q := p; ; q = q.Next() {
			if !yield(q) {
				return
			}
		}
	}
}

// Ascending returns count ascending pitches starting at p, or nil when count
// is not positive.
func (p Pitch) Ascending(count int) []Pitch {
	if count <= 0 {
		return nil
	}
	ret := make([]Pitch, count)
	q := p
	for i := range ret {
		ret[i] = q
		q = q.Next()
	}
	return ret
}

// FormatSharp returns p in the form parsed by ParsePitch, spelling
// accidentals with sharps, e.g. "C#3".
func (p Pitch) FormatSharp() string {
	return fmt.Sprintf("%s%d", p.Note.Sharp(), p.Octave)
}

// FormatFlat is like FormatSharp but spells accidentals with flats, e.g.
// "Db3".
func (p Pitch) FormatFlat() string {
	return fmt.Sprintf("%s%d", p.Note.Flat(), p.Octave)
}

func (p Pitch) String() string { return p.FormatSharp() }

// ParsePitch parses a pitch of the form <letter>[#|b][-]<digit>, e.g. "E2",
// "C#3" or "Bb-1". The octave is a single decimal digit, optionally negated.
// A#/Bb and the other enharmonic pairs resolve to the same Note.
//
// Errors are of type *ParsePitchError.
func ParsePitch(s string) (Pitch, error) {
	end := len(s)
	if end == 0 {
		return Pitch{}, &ParsePitchError{Input: s}
	}
	digit := s[end-1]
	if digit < '0' || digit > '9' {
		return Pitch{}, &ParsePitchError{Input: s}
	}
	octave := int(digit - '0')
	end--
	if end > 0 && s[end-1] == '-' {
		octave = -octave
		end--
	}
	note, ok := noteTable[s[:end]]
	if !ok {
		return Pitch{}, &ParsePitchError{Input: s}
	}
	return Pitch{Note: note, Octave: octave}, nil
}

// MustParsePitch is like ParsePitch but panics on malformed input. It is
// meant for pitches written into the source code.
func MustParsePitch(s string) Pitch {
	p, err := ParsePitch(s)
	if err != nil {
		panic(err)
	}
	return p
}
