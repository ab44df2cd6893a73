package tui

import (
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rossnomann/fretboard/diagram"
)

// CellHeight is how many diagram units one terminal row spans. Terminal
// cells are about twice as tall as they are wide.
const CellHeight = 2

type (
	// Grid is a diagram.Surface made of terminal cells. A cell is one
	// diagram unit wide and CellHeight units tall.
	Grid struct {
		cols, rows int
		cells      []cell
	}

	cell struct {
		ch     rune
		fg, bg string
		// accent is the border color of the rectangle under the cell; cells
		// are too coarse to outline, so glyphs drawn later take this color
		accent string
	}
)

func NewGrid(cols, rows int) *Grid {
	cols, rows = max(cols, 0), max(rows, 0)
	g := &Grid{cols: cols, rows: rows, cells: make([]cell, cols*rows)}
	for i := range g.cells {
		g.cells[i].ch = ' '
	}
	return g
}

// Bounds returns the diagram area covered by the grid.
func (g *Grid) Bounds() diagram.Rect {
	return diagram.R(0, 0, float64(g.cols), float64(g.rows*CellHeight))
}

// span returns the cells [c0, c1) × [r0, r1) touched by r. Thin rectangles
// still get one cell.
func (g *Grid) span(r diagram.Rect) (c0, c1, r0, r1 int) {
	c0 = int(math.Floor(r.Min.X))
	c1 = max(int(math.Ceil(r.Max().X)), c0+1)
	r0 = int(math.Floor(r.Min.Y / CellHeight))
	r1 = max(int(math.Ceil(r.Max().Y/CellHeight)), r0+1)
	return max(c0, 0), min(c1, g.cols), max(r0, 0), min(r1, g.rows)
}

func (g *Grid) FillRect(r diagram.Rect, style diagram.RectStyle) {
	bg := hex(style.Fill)
	accent := ""
	if style.BorderWidth > 0 {
		accent = hex(style.Border)
	}
	c0, c1, r0, r1 := g.span(r)
	for y := r0; y < r1; y++ {
		for x := c0; x < c1; x++ {
			g.cells[y*g.cols+x] = cell{ch: ' ', bg: bg, accent: accent}
		}
	}
}

func (g *Grid) DrawText(s string, at diagram.Point, c color.NRGBA, clip diagram.Rect, _ float64) {
	runes := []rune(s)
	c0, c1, r0, r1 := g.span(clip)
	y := int(math.Floor(at.Y / CellHeight))
	if y < r0 || y >= r1 {
		return
	}
	x0 := int(math.Round(at.X - float64(len(runes))/2))
	fg := hex(c)
	for i, ch := range runes {
		x := x0 + i
		if x < c0 || x >= c1 {
			continue
		}
		cl := &g.cells[y*g.cols+x]
		cl.ch = ch
		cl.fg = fg
		if cl.accent != "" {
			cl.fg = cl.accent
		}
	}
}

// Plain returns the glyphs of the grid without colors.
func (g *Grid) Plain() string {
	var b strings.Builder
	for y := range g.rows {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := range g.cols {
			b.WriteRune(g.cells[y*g.cols+x].ch)
		}
	}
	return b.String()
}

// View renders the grid with lipgloss, one style per run of equally colored
// cells.
func (g *Grid) View() string {
	var b strings.Builder
	for y := range g.rows {
		if y > 0 {
			b.WriteByte('\n')
		}
		row := g.cells[y*g.cols : (y+1)*g.cols]
		for start := 0; start < len(row); {
			end := start + 1
			for end < len(row) && row[end].fg == row[start].fg && row[end].bg == row[start].bg {
				end++
			}
			var run strings.Builder
			for _, c := range row[start:end] {
				run.WriteRune(c.ch)
			}
			b.WriteString(cellStyle(row[start]).Render(run.String()))
			start = end
		}
	}
	return b.String()
}

func cellStyle(c cell) lipgloss.Style {
	s := lipgloss.NewStyle()
	if c.fg != "" {
		s = s.Foreground(lipgloss.Color(c.fg))
	}
	if c.bg != "" {
		s = s.Background(lipgloss.Color(c.bg))
	}
	return s
}

func hex(c color.NRGBA) string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}
