package fretboard_test

import (
	"testing"

	"github.com/rossnomann/fretboard"
)

func TestNoteNextCycles(t *testing.T) {
	for n := fretboard.A; n <= fretboard.GSharp; n++ {
		m := n
		for range fretboard.NumNotes {
			m = m.Next()
		}
		if m != n {
			t.Errorf("%v: twelve semitones up gave %v", n, m)
		}
	}
}

func TestNoteNextOrder(t *testing.T) {
	var got []string
	n := fretboard.A
	for range fretboard.NumNotes {
		got = append(got, n.Sharp())
		n = n.Next()
	}
	want := []string{"A", "A#", "B", "C", "C#", "D", "D#", "E", "F", "F#", "G", "G#"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("note order = %v, want %v", got, want)
		}
	}
}

func TestNoteSpelling(t *testing.T) {
	tests := []struct {
		note        fretboard.Note
		sharp, flat string
	}{
		{fretboard.A, "A", "A"},
		{fretboard.ASharp, "A#", "Bb"},
		{fretboard.CSharp, "C#", "Db"},
		{fretboard.E, "E", "E"},
		{fretboard.GSharp, "G#", "Ab"},
	}
	for _, tt := range tests {
		if got := tt.note.Sharp(); got != tt.sharp {
			t.Errorf("%d.Sharp() = %q, want %q", tt.note, got, tt.sharp)
		}
		if got := tt.note.Flat(); got != tt.flat {
			t.Errorf("%d.Flat() = %q, want %q", tt.note, got, tt.flat)
		}
	}
	if fretboard.BFlat != fretboard.ASharp {
		t.Error("Bb and A# should be the same pitch class")
	}
}
