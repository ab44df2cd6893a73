package diagram

import "fmt"

type (
	// Point is a position in surface coordinates, y growing downwards.
	Point struct {
		X, Y float64
	}

	// Size is the extent of a rectangle.
	Size struct {
		Width, Height float64
	}

	// Rect is an axis aligned rectangle given by its top-left corner and
	// size.
	Rect struct {
		Min  Point
		Size Size
	}
)

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Sz is shorthand for Size{w, h}.
func Sz(w, h float64) Size { return Size{Width: w, Height: h} }

// R returns the rectangle with top-left corner (x, y) and size w×h.
func R(x, y, w, h float64) Rect { return Rect{Min: Pt(x, y), Size: Sz(w, h)} }

func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

func (p Point) String() string { return fmt.Sprintf("(%g,%g)", p.X, p.Y) }

func (s Size) String() string { return fmt.Sprintf("%g×%g", s.Width, s.Height) }

// Empty reports whether s encloses no area.
func (s Size) Empty() bool { return !(s.Width > 0 && s.Height > 0) }

// Max returns the bottom-right corner of r.
func (r Rect) Max() Point {
	return Point{X: r.Min.X + r.Size.Width, Y: r.Min.Y + r.Size.Height}
}

// Center returns the middle of r.
func (r Rect) Center() Point {
	return Point{X: r.Min.X + r.Size.Width/2, Y: r.Min.Y + r.Size.Height/2}
}

// Contains reports whether p lies within r, edges included.
func (r Rect) Contains(p Point) bool {
	m := r.Max()
	return p.X >= r.Min.X && p.X <= m.X && p.Y >= r.Min.Y && p.Y <= m.Y
}

func (r Rect) String() string { return fmt.Sprintf("%v+%v", r.Min, r.Size) }
