package fretboard

import (
	"errors"
	"fmt"
)

type (
	// ParsePitchError is returned by ParsePitch for text that is not a
	// pitch: a missing octave digit, an unknown letter or an accidental the
	// letter cannot take.
	ParsePitchError struct {
		Input string
	}

	// CollectionIndexError is returned when selecting an index outside of a
	// TuningCollection.
	CollectionIndexError struct {
		Index int
		Len   int
	}
)

// ErrCollectionEmpty is returned when a TuningCollection without tunings is
// built, selected from or read.
var ErrCollectionEmpty = errors.New("tuning collection is empty")

func (e *ParsePitchError) Error() string {
	return fmt.Sprintf("invalid pitch %q", e.Input)
}

func (e *CollectionIndexError) Error() string {
	return fmt.Sprintf("tuning index %d out of range [0, %d)", e.Index, e.Len)
}
