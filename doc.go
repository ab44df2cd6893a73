// Package fretboard holds the music theory behind the fretboard diagrams:
// pitch classes, pitches, tunings and the collection of tunings a user picks
// from. Geometry lives in the diagram package.
package fretboard
