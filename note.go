package fretboard

import "fmt"

// Note is one of the twelve chromatic pitch classes. The zero value is A and
// the classes follow each other in ascending order, wrapping from GSharp back
// to A.
type Note int

const (
	A Note = iota
	ASharp
	B
	C
	CSharp
	D
	DSharp
	E
	F
	FSharp
	G
	GSharp
)

// NumNotes is the number of pitch classes in an octave.
const NumNotes = 12

// Flat spellings of the same pitch classes.
const (
	BFlat = ASharp
	DFlat = CSharp
	EFlat = DSharp
	GFlat = FSharp
	AFlat = GSharp
)

var sharpNames = [NumNotes]string{"A", "A#", "B", "C", "C#", "D", "D#", "E", "F", "F#", "G", "G#"}
var flatNames = [NumNotes]string{"A", "Bb", "B", "C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab"}

// Next returns the pitch class a semitone above n.
func (n Note) Next() Note {
	return (n + 1) % NumNotes
}

// Valid reports whether n is one of the twelve pitch classes.
func (n Note) Valid() bool {
	return n >= A && n <= GSharp
}

// Sharp returns the name of n, spelling accidentals with sharps.
func (n Note) Sharp() string {
	if !n.Valid() {
		return fmt.Sprintf("Note(%d)", int(n))
	}
	return sharpNames[n]
}

// Flat returns the name of n, spelling accidentals with flats.
func (n Note) Flat() string {
	if !n.Valid() {
		return fmt.Sprintf("Note(%d)", int(n))
	}
	return flatNames[n]
}

func (n Note) String() string { return n.Sharp() }

// noteTable resolves a letter and an optional accidental to a pitch class.
// Enharmonics that cross a natural (Cb, E#, Fb, B#) are intentionally absent.
var noteTable = map[string]Note{
	"A": A, "A#": ASharp, "Ab": AFlat,
	"B": B, "Bb": BFlat,
	"C": C, "C#": CSharp,
	"D": D, "D#": DSharp, "Db": DFlat,
	"E": E, "Eb": EFlat,
	"F": F, "F#": FSharp,
	"G": G, "G#": GSharp, "Gb": GFlat,
}
