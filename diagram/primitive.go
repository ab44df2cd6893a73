package diagram

import "image/color"

// Kind tells which part of the diagram a primitive draws.
type Kind int

const (
	BackgroundKind Kind = iota
	NutKind
	FretKind
	MarkerKind
	StringKind
	LabelBoxKind
	LabelTextKind
)

var kindNames = [...]string{"background", "nut", "fret", "marker", "string", "label-box", "label-text"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

type (
	// Primitive is a single resolved draw command. Rectangle kinds use Rect,
	// Fill, Border, BorderWidth and Radius; LabelTextKind uses Text, Anchor,
	// FontSize and Fill as the text color, and Rect as the clip area.
	Primitive struct {
		Kind        Kind
		Index       int // fret or string number; the fret for labels
		Rect        Rect
		Fill        Swatch
		Border      Swatch
		BorderWidth float64
		Radius      float64
		Text        string
		Anchor      Point
		FontSize    float64
	}

	// RectStyle is how a Surface paints a rectangle. A zero BorderWidth means
	// no border; a zero Radius means square corners.
	RectStyle struct {
		Fill        color.NRGBA
		Border      color.NRGBA
		BorderWidth float64
		Radius      float64
	}

	// Surface paints resolved primitives. Calls arrive in painting order and
	// later calls must cover earlier ones.
	Surface interface {
		// FillRect paints r.
		FillRect(r Rect, style RectStyle)
		// DrawText paints s with monospaced glyphs of the given size,
		// centered on at in both directions and clipped to clip.
		DrawText(s string, at Point, c color.NRGBA, clip Rect, size float64)
	}
)

// Style resolves the colors of a rectangle primitive.
func (p Primitive) Style(pal Palette) RectStyle {
	s := RectStyle{
		Fill:   pal.Color(p.Fill),
		Radius: p.Radius,
	}
	if p.BorderWidth > 0 {
		s.Border = pal.Color(p.Border)
		s.BorderWidth = p.BorderWidth
	}
	return s
}
