// Package raster paints fretboard diagrams into images and encodes them as
// PNG.
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/rossnomann/fretboard"
	"github.com/rossnomann/fretboard/diagram"
	"github.com/rossnomann/fretboard/internal/logging"
	"golang.org/x/image/font/gofont/gomono"
)

// Surface is a diagram.Surface backed by an in-memory image. Painting
// errors are sticky: the first one is kept and reported by Err.
type Surface struct {
	ctx   *gg.Context
	faces map[float64]text.Face
	err   error
}

var ErrEmptyImage = errors.New("image has no area")

var monoSource = sync.OnceValues(func() (*text.FontSource, error) {
	return text.NewFontSource(gomono.TTF)
})

// NewSurface returns a width×height surface.
func NewSurface(width, height int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyImage, width, height)
	}
	return &Surface{
		ctx:   gg.NewContext(width, height),
		faces: map[float64]text.Face{},
	}, nil
}

// Bounds returns the whole surface.
func (s *Surface) Bounds() diagram.Rect {
	return diagram.R(0, 0, float64(s.ctx.Width()), float64(s.ctx.Height()))
}

func (s *Surface) FillRect(r diagram.Rect, style diagram.RectStyle) {
	s.path(r, style.Radius)
	s.ctx.SetColor(style.Fill)
	s.keep(s.ctx.Fill())
	if style.BorderWidth <= 0 {
		return
	}
	// stroke centered inside the rectangle so the border does not grow it
	half := style.BorderWidth / 2
	inner := diagram.R(r.Min.X+half, r.Min.Y+half, r.Size.Width-style.BorderWidth, r.Size.Height-style.BorderWidth)
	if inner.Size.Empty() {
		return
	}
	s.path(inner, max(style.Radius-half, 0))
	s.ctx.SetColor(style.Border)
	s.ctx.SetLineWidth(style.BorderWidth)
	s.keep(s.ctx.Stroke())
}

func (s *Surface) path(r diagram.Rect, radius float64) {
	if radius > 0 {
		s.ctx.DrawRoundedRectangle(r.Min.X, r.Min.Y, r.Size.Width, r.Size.Height, radius)
	} else {
		s.ctx.DrawRectangle(r.Min.X, r.Min.Y, r.Size.Width, r.Size.Height)
	}
}

func (s *Surface) DrawText(str string, at diagram.Point, c color.NRGBA, clip diagram.Rect, size float64) {
	face, err := s.face(size)
	if err != nil {
		s.keep(err)
		return
	}
	s.ctx.Push()
	defer s.ctx.Pop()
	s.ctx.ClipRect(clip.Min.X, clip.Min.Y, clip.Size.Width, clip.Size.Height)
	s.ctx.SetFont(face)
	s.ctx.SetColor(c)
	s.ctx.DrawStringAnchored(str, at.X, at.Y, 0.5, 0.5)
}

func (s *Surface) face(size float64) (text.Face, error) {
	if f, ok := s.faces[size]; ok {
		return f, nil
	}
	source, err := monoSource()
	if err != nil {
		return nil, fmt.Errorf("loading label font: %w", err)
	}
	f := source.Face(size)
	s.faces[size] = f
	return f, nil
}

func (s *Surface) keep(err error) {
	if s.err == nil && err != nil {
		s.err = err
	}
}

// Err returns the first error met while painting.
func (s *Surface) Err() error { return s.err }

// Image returns what has been painted so far.
func (s *Surface) Image() image.Image { return s.ctx.Image() }

// EncodePNG writes the surface to w as PNG.
func (s *Surface) EncodePNG(w io.Writer) error {
	if s.err != nil {
		return s.err
	}
	return s.ctx.EncodePNG(w)
}

func (s *Surface) Close() error { return s.ctx.Close() }

// Render paints the diagram of t over a width×height image and writes it to
// w as PNG.
func Render(w io.Writer, t fretboard.Tuning, pal diagram.Palette, width, height int) error {
	s, err := NewSurface(width, height)
	if err != nil {
		return err
	}
	defer s.Close()
	n := diagram.Render(s, pal, t, s.Bounds())
	if err := s.EncodePNG(w); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	logging.Logger().Info("diagram rendered", "tuning", t.Name(), "width", width, "height", height, "primitives", n)
	return nil
}
