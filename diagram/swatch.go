package diagram

import (
	"image/color"

	"github.com/rossnomann/fretboard"
)

// Swatch names one of the colors of a palette. The set follows the
// catppuccin flavors: fourteen accents followed by the text, overlay,
// surface and base tones from light to dark (in the dark flavors).
type Swatch int

const (
	Rosewater Swatch = iota
	Flamingo
	Pink
	Mauve
	Red
	Maroon
	Peach
	Yellow
	Green
	Teal
	Sky
	Sapphire
	Blue
	Lavender
	Text
	Subtext1
	Subtext0
	Overlay2
	Overlay1
	Overlay0
	Surface2
	Surface1
	Surface0
	Base
	Mantle
	Crust

	NumSwatches = iota
)

var swatchNames = [NumSwatches]string{
	"rosewater", "flamingo", "pink", "mauve", "red", "maroon", "peach",
	"yellow", "green", "teal", "sky", "sapphire", "blue", "lavender",
	"text", "subtext1", "subtext0", "overlay2", "overlay1", "overlay0",
	"surface2", "surface1", "surface0", "base", "mantle", "crust",
}

func (s Swatch) String() string {
	if s < 0 || s >= NumSwatches {
		return "unknown"
	}
	return swatchNames[s]
}

// SwatchNamed returns the swatch with the given lower case name.
func SwatchNamed(name string) (Swatch, bool) {
	for i, n := range swatchNames {
		if n == name {
			return Swatch(i), true
		}
	}
	return 0, false
}

// Palette resolves swatches to concrete colors.
type Palette interface {
	Color(Swatch) color.NRGBA
}

// Swatches of the structural parts of the diagram.
const (
	BackgroundSwatch      = Base
	NutSwatch             = Subtext1
	FretSwatch            = Overlay1
	MarkerSwatch          = Surface2
	StringSwatch          = Subtext0
	LabelBackgroundSwatch = Surface0
	LabelForegroundSwatch = Text
)

var noteSwatches = [fretboard.NumNotes]Swatch{
	fretboard.A:      Red,
	fretboard.ASharp: Maroon,
	fretboard.B:      Peach,
	fretboard.C:      Yellow,
	fretboard.CSharp: Green,
	fretboard.D:      Teal,
	fretboard.DSharp: Sky,
	fretboard.E:      Sapphire,
	fretboard.F:      Blue,
	fretboard.FSharp: Lavender,
	fretboard.G:      Mauve,
	fretboard.GSharp: Pink,
}

// NoteSwatch returns the swatch a note label of n is outlined with.
func NoteSwatch(n fretboard.Note) Swatch {
	if !n.Valid() {
		return LabelForegroundSwatch
	}
	return noteSwatches[n]
}
