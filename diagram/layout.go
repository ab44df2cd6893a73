package diagram

// Proportions of the diagram elements, relative to the length of the neck
// unless noted otherwise.
const (
	LabelFontScale   = 0.009
	LabelWidthScale  = 2.5  // of the label font size
	LabelRadiusScale = 0.25 // of the label width
	LabelBorderScale = 0.1  // of the label font size
	NutScale         = 0.002
	FretScale        = 0.002
	StringScale      = 0.005 // of the board width across the strings
	MarkerScale      = 0.07  // of the fret spacing
)

type (
	// Layout is the geometry of one fretboard diagram. Build it with
	// NewLayout for every draw; it only depends on the fret count, the
	// string count and the bounds.
	Layout struct {
		Orientation Orientation
		Bounds      Rect
		Frets       int
		Strings     int

		// logical coordinates, the neck running along x
		origin        Point
		lengthFrets   float64
		lengthStrings float64
		originNut     float64
		originFret    float64
		nutWidth      float64
		spacingFret   float64
		spacingString float64
		markerWidth   float64
		markerSingle  float64
		labelFont     float64
		labelWidth    float64
	}

	// LabelBox is the placement of one note label: its text is centered on
	// Anchor and clipped to Box.
	LabelBox struct {
		Anchor   Point
		Box      Rect
		Radius   float64
		Border   float64
		FontSize float64
	}
)

// NewLayout computes the geometry of a neck with the given number of frets
// and strings inside bounds. It returns false when there is nothing to draw:
// no frets, no strings or bounds without area.
func NewLayout(frets, strings int, bounds Rect) (Layout, bool) {
	if frets <= 0 || strings <= 0 || bounds.Size.Empty() {
		return Layout{}, false
	}
	o := OrientationOf(bounds.Size)
	size := o.Size(bounds.Size)
	widthFrets, widthStrings := size.Width, size.Height
	f, s := float64(frets), float64(strings)

	lengthFrets := widthFrets
	lengthStrings := lengthFrets / (f / s)
	origin := o.Point(bounds.Min).Add(Pt(
		(widthFrets-lengthFrets)/2,
		(widthStrings-lengthStrings)/2,
	))

	labelFont := lengthFrets * LabelFontScale
	labelWidth := labelFont * LabelWidthScale
	nutWidth := lengthFrets * NutScale
	originNut := origin.X + labelWidth*1.25
	originFret := originNut + nutWidth

	spacingFret := (lengthFrets - (originFret - origin.X)) / (f + 1)
	spacingString := lengthStrings / (s + 1)
	markerWidth := spacingFret * MarkerScale

	return Layout{
		Orientation:   o,
		Bounds:        bounds,
		Frets:         frets,
		Strings:       strings,
		origin:        origin,
		lengthFrets:   lengthFrets,
		lengthStrings: lengthStrings,
		originNut:     originNut,
		originFret:    originFret,
		nutWidth:      nutWidth,
		spacingFret:   spacingFret,
		spacingString: spacingString,
		markerWidth:   markerWidth,
		markerSingle:  origin.Y + lengthStrings/2 - markerWidth/2,
		labelFont:     labelFont,
		labelWidth:    labelWidth,
	}, true
}

// FretSpacing returns the distance between two neighbouring frets.
func (l Layout) FretSpacing() float64 { return l.spacingFret }

// StringSpacing returns the distance between two neighbouring strings.
func (l Layout) StringSpacing() float64 { return l.spacingString }

// Board returns the area covered by the neck.
func (l Layout) Board() Rect {
	return l.Orientation.Rect(Rect{Min: l.origin, Size: Sz(l.lengthFrets, l.lengthStrings)})
}

// Nut returns the band separating the open strings from the first fret.
func (l Layout) Nut() Rect {
	return l.Orientation.Rect(R(l.originNut, l.origin.Y, l.nutWidth, l.lengthStrings))
}

// Fret returns the line of fret n, 1 being the fret closest to the nut.
func (l Layout) Fret(n int) Rect {
	x := l.originFret + l.spacingFret*float64(n)
	return l.Orientation.Rect(R(x, l.origin.Y, l.lengthFrets*FretScale, l.lengthStrings))
}

// Markers returns the marker kind of fret n and the rectangles of its dots.
// Only the first Dots() rectangles are meaningful.
func (l Layout) Markers(n int) (FretMarker, [2]Rect) {
	m := MarkerOf(n)
	x := l.originFret + l.spacingFret*float64(n) - l.spacingFret/2
	dot := func(y float64) Rect {
		return l.Orientation.Rect(R(x, y, l.markerWidth, l.markerWidth))
	}
	switch m {
	case SingleMarker:
		return m, [2]Rect{dot(l.markerSingle)}
	case DoubleMarker:
		return m, [2]Rect{dot(l.markerSingle - l.markerWidth), dot(l.markerSingle + l.markerWidth)}
	default:
		return NoMarker, [2]Rect{}
	}
}

// StringLine returns the line of the string at position n, counting from 1
// at the top (horizontal) or left (vertical) edge of the board.
func (l Layout) StringLine(n int) Rect {
	y := l.origin.Y + l.spacingString*float64(n)
	return l.Orientation.Rect(R(
		l.originNut, y,
		l.lengthFrets-(l.originNut-l.origin.X), l.lengthStrings*StringScale,
	))
}

// Label returns where the note of the given fret (0 for the open string) on
// the string at position pos goes.
func (l Layout) Label(fret, pos int) LabelBox {
	anchor := l.Orientation.Point(Pt(
		l.originFret+float64(fret)*l.spacingFret-l.labelFont*1.2,
		l.origin.Y+float64(pos)*l.spacingString,
	))
	half := l.labelWidth / 2
	return LabelBox{
		Anchor:   anchor,
		Box:      R(anchor.X-half, anchor.Y-half, l.labelWidth, l.labelWidth),
		Radius:   l.labelWidth * LabelRadiusScale,
		Border:   l.labelFont * LabelBorderScale,
		FontSize: l.labelFont,
	}
}
