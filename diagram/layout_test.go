package diagram_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/rossnomann/fretboard/diagram"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestNewLayoutDegenerate(t *testing.T) {
	tests := []struct {
		name           string
		frets, strings int
		bounds         diagram.Rect
	}{
		{"no frets", 0, 6, diagram.R(0, 0, 100, 50)},
		{"no strings", 24, 0, diagram.R(0, 0, 100, 50)},
		{"no area", 24, 6, diagram.R(10, 10, 0, 0)},
		{"no width", 24, 6, diagram.R(0, 0, 0, 50)},
		{"no height", 24, 6, diagram.R(0, 0, 100, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := diagram.NewLayout(tt.frets, tt.strings, tt.bounds); ok {
				t.Error("NewLayout reported something to draw")
			}
		})
	}
}

func TestLayoutGeometry(t *testing.T) {
	l, ok := diagram.NewLayout(24, 6, diagram.R(0, 0, 1000, 400))
	if !ok {
		t.Fatal("NewLayout failed")
	}
	if l.Orientation != diagram.Horizontal {
		t.Fatalf("orientation = %v, want horizontal", l.Orientation)
	}
	// neck 1000 long, 250 across, centered vertically; labels 9 high and
	// 22.5 wide put the nut at 28.125 and the first fret gap at 30.125
	spacingFret := (1000 - 30.125) / 25
	spacingString := 250.0 / 7
	checks := []struct {
		name      string
		got, want any
	}{
		{"board", l.Board(), diagram.R(0, 75, 1000, 250)},
		{"nut", l.Nut(), diagram.R(28.125, 75, 2, 250)},
		{"fret spacing", l.FretSpacing(), spacingFret},
		{"string spacing", l.StringSpacing(), spacingString},
		{"fret 1", l.Fret(1), diagram.R(30.125+spacingFret, 75, 2, 250)},
		{"fret 24", l.Fret(24), diagram.R(30.125+24*spacingFret, 75, 2, 250)},
		{"string 1", l.StringLine(1), diagram.R(28.125, 75+spacingString, 1000-28.125, 1.25)},
	}
	for _, c := range checks {
		if d := cmp.Diff(c.want, c.got, approx); d != "" {
			t.Errorf("%s mismatch (-want +got):\n%s", c.name, d)
		}
	}

	label := l.Label(0, 1)
	wantAnchor := diagram.Pt(30.125-9*1.2, 75+spacingString)
	if d := cmp.Diff(wantAnchor, label.Anchor, approx); d != "" {
		t.Errorf("label anchor mismatch (-want +got):\n%s", d)
	}
	if d := cmp.Diff(label.Anchor, label.Box.Center(), approx); d != "" {
		t.Errorf("label box not centered on anchor (-want +got):\n%s", d)
	}
	if math.Abs(label.Box.Size.Width-22.5) > 1e-9 || math.Abs(label.FontSize-9) > 1e-9 {
		t.Errorf("label box %v font %v, want 22.5 wide, font 9", label.Box, label.FontSize)
	}
}

func TestLayoutMarkers(t *testing.T) {
	l, _ := diagram.NewLayout(24, 6, diagram.R(0, 0, 1000, 400))
	width := l.FretSpacing() * diagram.MarkerScale
	center := 75 + 125 - width/2

	m, dots := l.Markers(3)
	if m != diagram.SingleMarker {
		t.Fatalf("fret 3 marker = %v", m)
	}
	x := 30.125 + 3*l.FretSpacing() - l.FretSpacing()/2
	if d := cmp.Diff(diagram.R(x, center, width, width), dots[0], approx); d != "" {
		t.Errorf("fret 3 dot mismatch (-want +got):\n%s", d)
	}

	m, dots = l.Markers(12)
	if m != diagram.DoubleMarker {
		t.Fatalf("fret 12 marker = %v", m)
	}
	if got := dots[1].Min.Y - dots[0].Min.Y; math.Abs(got-2*width) > 1e-9 {
		t.Errorf("double dots %v apart, want %v", got, 2*width)
	}

	if m, _ := l.Markers(4); m != diagram.NoMarker {
		t.Errorf("fret 4 marker = %v", m)
	}
}

func TestLayoutVerticalMirrorsHorizontal(t *testing.T) {
	h, _ := diagram.NewLayout(21, 7, diagram.R(0, 0, 900, 300))
	v, _ := diagram.NewLayout(21, 7, diagram.R(0, 0, 300, 900))
	if v.Orientation != diagram.Vertical {
		t.Fatalf("orientation = %v, want vertical", v.Orientation)
	}
	swap := func(r diagram.Rect) diagram.Rect { return diagram.Vertical.Rect(r) }
	pairs := [][2]diagram.Rect{
		{swap(h.Board()), v.Board()},
		{swap(h.Nut()), v.Nut()},
		{swap(h.Fret(7)), v.Fret(7)},
		{swap(h.StringLine(3)), v.StringLine(3)},
		{swap(h.Label(5, 2).Box), v.Label(5, 2).Box},
	}
	for i, p := range pairs {
		if d := cmp.Diff(p[0], p[1], approx); d != "" {
			t.Errorf("pair %d mismatch (-want +got):\n%s", i, d)
		}
	}
}

func TestLayoutFollowsBoundsOrigin(t *testing.T) {
	a, _ := diagram.NewLayout(12, 4, diagram.R(0, 0, 640, 480))
	b, _ := diagram.NewLayout(12, 4, diagram.R(15, 40, 640, 480))
	shift := func(r diagram.Rect) diagram.Rect {
		r.Min = r.Min.Add(diagram.Pt(15, 40))
		return r
	}
	for n := 1; n <= 12; n++ {
		if d := cmp.Diff(shift(a.Fret(n)), b.Fret(n), approx); d != "" {
			t.Errorf("fret %d mismatch (-want +got):\n%s", n, d)
		}
	}
	if d := cmp.Diff(shift(a.Label(3, 2).Box), b.Label(3, 2).Box, approx); d != "" {
		t.Errorf("label mismatch (-want +got):\n%s", d)
	}
}
