package diagram

// Orientation tells which way the neck runs on the surface.
type Orientation int

const (
	// Horizontal lays the neck out left to right with the strings stacked
	// top to bottom.
	Horizontal Orientation = iota
	// Vertical lays the neck out top to bottom with the strings side by
	// side.
	Vertical
)

// OrientationOf picks the orientation for a surface of size s: the neck runs
// along the longer side. A square surface is laid out horizontally.
func OrientationOf(s Size) Orientation {
	if s.Height > s.Width {
		return Vertical
	}
	return Horizontal
}

// Point maps a logical point (along the neck, across the strings) to the
// surface. The mapping is its own inverse.
func (o Orientation) Point(p Point) Point {
	switch o {
	case Vertical:
		return Point{X: p.Y, Y: p.X}
	default:
		return p
	}
}

// Size maps a logical size to the surface.
func (o Orientation) Size(s Size) Size {
	switch o {
	case Vertical:
		return Size{Width: s.Height, Height: s.Width}
	default:
		return s
	}
}

// Rect maps a logical rectangle to the surface.
func (o Orientation) Rect(r Rect) Rect {
	return Rect{Min: o.Point(r.Min), Size: o.Size(r.Size)}
}

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}
