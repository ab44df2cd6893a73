package diagram

import (
	"github.com/rossnomann/fretboard"
	"github.com/rossnomann/fretboard/internal/logging"
)

// Resolve computes every primitive of the diagram of t inside bounds, in
// painting order: background, nut, frets, markers, strings, then a box and a
// text for each note label. It returns nil when t has no frets or strings or
// bounds has no area.
func Resolve(t fretboard.Tuning, bounds Rect) []Primitive {
	frets, strings := int(t.Frets()), t.Strings()
	l, ok := NewLayout(frets, strings, bounds)
	if !ok {
		logging.Logger().Debug("diagram: nothing to draw",
			"frets", frets, "strings", strings, "bounds", bounds)
		return nil
	}
	ret := make([]Primitive, 0, 2+frets*2+strings+2*strings*(frets+1))

	ret = append(ret,
		Primitive{Kind: BackgroundKind, Rect: bounds, Fill: BackgroundSwatch},
		Primitive{Kind: NutKind, Rect: l.Nut(), Fill: NutSwatch},
	)
	for n := 1; n <= frets; n++ {
		ret = append(ret, Primitive{Kind: FretKind, Index: n, Rect: l.Fret(n), Fill: FretSwatch})
	}
	for n := 1; n <= frets; n++ {
		m, dots := l.Markers(n)
		for _, r := range dots[:m.Dots()] {
			ret = append(ret, Primitive{Kind: MarkerKind, Index: n, Rect: r, Fill: MarkerSwatch})
		}
	}
	for n := 1; n <= strings; n++ {
		ret = append(ret, Primitive{Kind: StringKind, Index: n, Rect: l.StringLine(n), Fill: StringSwatch})
	}
	for pos := 1; pos <= strings; pos++ {
		open := t.Pitch(StringAt(l.Orientation, pos, strings))
		for fret, pitch := range open.Ascending(frets + 1) {
			label := l.Label(fret, pos)
			ret = append(ret,
				Primitive{
					Kind:        LabelBoxKind,
					Index:       fret,
					Rect:        label.Box,
					Fill:        LabelBackgroundSwatch,
					Border:      NoteSwatch(pitch.Note),
					BorderWidth: label.Border,
					Radius:      label.Radius,
				},
				Primitive{
					Kind:     LabelTextKind,
					Index:    fret,
					Rect:     label.Box,
					Fill:     LabelForegroundSwatch,
					Text:     pitch.FormatSharp(),
					Anchor:   label.Anchor,
					FontSize: label.FontSize,
				},
			)
		}
	}
	return ret
}

// StringAt returns the index into the tuning of the string drawn at position
// pos (1-based) out of count. Horizontal diagrams put the last string of the
// tuning on top, vertical ones put the first string on the left.
func StringAt(o Orientation, pos, count int) int {
	if o == Horizontal {
		return count - pos
	}
	return pos - 1
}

// Draw paints prims on s with the colors of pal.
func Draw(s Surface, pal Palette, prims []Primitive) {
	for _, p := range prims {
		switch p.Kind {
		case LabelTextKind:
			s.DrawText(p.Text, p.Anchor, pal.Color(p.Fill), p.Rect, p.FontSize)
		default:
			s.FillRect(p.Rect, p.Style(pal))
		}
	}
}

// Render resolves the diagram of t inside bounds and paints it on s. It
// returns the number of primitives painted.
func Render(s Surface, pal Palette, t fretboard.Tuning, bounds Rect) int {
	prims := Resolve(t, bounds)
	Draw(s, pal, prims)
	return len(prims)
}
