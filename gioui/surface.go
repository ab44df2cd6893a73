package gioui

import (
	"image"
	"image/color"
	"math"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"github.com/rossnomann/fretboard"
	"github.com/rossnomann/fretboard/diagram"
)

type (
	// Surface paints diagram primitives into the ops of a layout context,
	// one diagram unit per pixel.
	Surface struct {
		gtx    C
		shaper *text.Shaper
	}

	// FretboardWidget draws a tuning over all the space it is given.
	FretboardWidget struct {
		Tuning  fretboard.Tuning
		Palette diagram.Palette
		Shaper  *text.Shaper
	}
)

func NewSurface(gtx C, shaper *text.Shaper) *Surface {
	return &Surface{gtx: gtx, shaper: shaper}
}

// pixels snaps r to whole pixels, keeping at least one pixel each way.
func pixels(r diagram.Rect) image.Rectangle {
	x0, y0 := int(math.Round(r.Min.X)), int(math.Round(r.Min.Y))
	end := r.Max()
	x1 := max(int(math.Round(end.X)), x0+1)
	y1 := max(int(math.Round(end.Y)), y0+1)
	return image.Rect(x0, y0, x1, y1)
}

func (s *Surface) FillRect(r diagram.Rect, style diagram.RectStyle) {
	ops := s.gtx.Ops
	rect := pixels(r)
	radius := min(int(math.Round(style.Radius)), rect.Dx()/2, rect.Dy()/2)
	rr := clip.RRect{Rect: rect, SE: radius, SW: radius, NW: radius, NE: radius}
	paint.FillShape(ops, style.Fill, rr.Op(ops))
	if style.BorderWidth > 0 {
		paint.FillShape(ops, style.Border, clip.Stroke{Path: rr.Path(ops), Width: float32(style.BorderWidth)}.Op())
	}
}

func (s *Surface) DrawText(str string, at diagram.Point, c color.NRGBA, clipRect diagram.Rect, size float64) {
	gtx := s.gtx
	defer clip.Rect(pixels(clipRect)).Push(gtx.Ops).Pop()

	colorMacro := op.Record(gtx.Ops)
	paint.ColorOp{Color: c}.Add(gtx.Ops)
	material := colorMacro.Stop()

	pxPerSp := gtx.Metric.PxPerSp
	if pxPerSp <= 0 {
		pxPerSp = 1
	}
	gtx.Constraints = layout.Constraints{Max: image.Pt(1<<20, 1<<20)}
	macro := op.Record(gtx.Ops)
	dims := widget.Label{MaxLines: 1}.Layout(gtx, s.shaper, monoFont, unit.Sp(float32(size)/pxPerSp), str, material)
	call := macro.Stop()

	off := image.Pt(int(math.Round(at.X))-dims.Size.X/2, int(math.Round(at.Y))-dims.Size.Y/2)
	defer op.Offset(off).Push(gtx.Ops).Pop()
	call.Add(gtx.Ops)
}

func (f FretboardWidget) Layout(gtx C) D {
	size := gtx.Constraints.Max
	defer clip.Rect{Max: size}.Push(gtx.Ops).Pop()
	bounds := diagram.R(0, 0, float64(size.X), float64(size.Y))
	diagram.Render(NewSurface(gtx, f.Shaper), f.Palette, f.Tuning, bounds)
	return D{Size: size}
}
