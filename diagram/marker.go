package diagram

// FretMarker is the inlay drawn between two frets.
type FretMarker int

const (
	NoMarker FretMarker = iota
	SingleMarker
	DoubleMarker
)

// markerPattern repeats every octave: dots on frets 3, 5, 7 and 9, two dots
// on fret 12.
var markerPattern = [12]FretMarker{
	NoMarker, NoMarker, SingleMarker, NoMarker, SingleMarker, NoMarker,
	SingleMarker, NoMarker, SingleMarker, NoMarker, NoMarker, DoubleMarker,
}

// MarkerOf returns the marker of fret, counting from 1 at the nut.
func MarkerOf(fret int) FretMarker {
	if fret < 1 {
		return NoMarker
	}
	return markerPattern[(fret-1)%len(markerPattern)]
}

// Dots returns how many dots the marker has.
func (m FretMarker) Dots() int {
	switch m {
	case SingleMarker:
		return 1
	case DoubleMarker:
		return 2
	default:
		return 0
	}
}

func (m FretMarker) String() string {
	switch m {
	case NoMarker:
		return "none"
	case SingleMarker:
		return "single"
	case DoubleMarker:
		return "double"
	default:
		return "unknown"
	}
}
