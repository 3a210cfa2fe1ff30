package sink

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/shapeshift/pkg/core/grid"
)

// Default scale of the text renderer in layout pixels per terminal cell.
const (
	DefaultScaleX = 10.0
	DefaultScaleY = 25.0
)

// TextOptions configures [RenderText].
type TextOptions struct {
	// ScaleX and ScaleY are layout pixels per terminal column and row.
	// Zero uses the defaults.
	ScaleX, ScaleY float64

	// Focus is the ID of a container to draw with the focus style.
	Focus string
}

func (o TextOptions) scale() (float64, float64) {
	sx, sy := o.ScaleX, o.ScaleY
	if sx <= 0 {
		sx = DefaultScaleX
	}
	if sy <= 0 {
		sy = DefaultScaleY
	}
	return sx, sy
}

// Cell returns the terminal column and row of the layout point p. One
// column and one row are reserved in front of the origin for the frame.
func (o TextOptions) Cell(p grid.Position) (col, row int) {
	sx, sy := o.scale()
	return int(math.Floor(p.Left/sx)) + 1, int(math.Floor(p.Top/sy)) + 1
}

// Point returns the layout point at the top-left of the given terminal
// cell. It is the inverse of Cell.
func (o TextOptions) Point(col, row int) grid.Position {
	sx, sy := o.scale()
	return grid.Position{Left: float64(col-1) * sx, Top: float64(row-1) * sy}
}

type cellClass uint8

const (
	classBlank cellClass = iota
	classFrame
	classFocus
	classTitle
	classItem
	classDragging
)

var cellStyles = map[cellClass]lipgloss.Style{
	classBlank:    lipgloss.NewStyle(),
	classFrame:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	classFocus:    lipgloss.NewStyle().Foreground(lipgloss.Color("36")),
	classTitle:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36")),
	classItem:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	classDragging: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220")),
}

type canvas struct {
	w, h  int
	runes [][]rune
	class [][]cellClass
}

func newCanvas(w, h int) *canvas {
	c := &canvas{w: w, h: h, runes: make([][]rune, h), class: make([][]cellClass, h)}
	for y := range c.runes {
		c.runes[y] = []rune(strings.Repeat(" ", w))
		c.class[y] = make([]cellClass, w)
	}
	return c
}

func (c *canvas) set(x, y int, r rune, cl cellClass) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.runes[y][x] = r
	c.class[y][x] = cl
}

func (c *canvas) text(x, y int, s string, maxLen int, cl cellClass) {
	for i, r := range []rune(s) {
		if i >= maxLen {
			break
		}
		c.set(x+i, y, r, cl)
	}
}

// box draws a rectangle covering columns x0..x1 and rows y0..y1
// inclusive.
func (c *canvas) box(x0, y0, x1, y1 int, cl cellClass) {
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 < y0 {
		y1 = y0
	}
	if y1 == y0 {
		c.set(x0, y0, '[', cl)
		c.set(x1, y0, ']', cl)
		return
	}
	for x := x0 + 1; x < x1; x++ {
		c.set(x, y0, '─', cl)
		c.set(x, y1, '─', cl)
	}
	for y := y0 + 1; y < y1; y++ {
		c.set(x0, y, '│', cl)
		c.set(x1, y, '│', cl)
	}
	c.set(x0, y0, '╭', cl)
	c.set(x1, y0, '╮', cl)
	c.set(x0, y1, '╰', cl)
	c.set(x1, y1, '╯', cl)
}

func (c *canvas) String() string {
	var b strings.Builder
	for y := range c.runes {
		row := c.runes[y]
		start := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && c.class[y][x] == c.class[y][start] {
				continue
			}
			b.WriteString(cellStyles[c.class[y][start]].Render(string(row[start:x])))
			start = x
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderText draws the board on a terminal canvas. Containers are drawn
// at their origins, so terminal cells map back to layout points through
// [TextOptions.Point].
func RenderText(b Board, opts TextOptions) string {
	_, sy := opts.scale()
	endCol, endRow := opts.Cell(grid.Position{Left: b.Width, Top: b.Height})
	cv := newCanvas(endCol+2, endRow+2)

	for _, c := range b.Containers {
		h := max(c.Height, sy)
		x0, y0 := opts.Cell(grid.Position{Left: c.X, Top: c.Y})
		x1, y1 := opts.Cell(grid.Position{Left: c.X + c.Width, Top: c.Y + h})
		frame := classFrame
		if c.ID == opts.Focus {
			frame = classFocus
		}
		cv.box(x0-1, y0-1, x1, y1, frame)
		cv.text(x0+1, y0-1, " "+c.ID+" ", x1-x0-1, classTitle)

		for _, bl := range c.Visible() {
			cl := classItem
			if bl.Dragging {
				cl = classDragging
			}
			bx0, by0 := opts.Cell(grid.Position{Left: c.X + bl.X, Top: c.Y + bl.Y})
			bx1, by1 := opts.Cell(grid.Position{Left: c.X + bl.X + bl.Width, Top: c.Y + bl.Y + bl.Height})
			bx1, by1 = bx1-1, by1-1
			cv.box(bx0, by0, bx1, by1, cl)
			cv.text(bx0+1, by0, bl.Text(), bx1-bx0-1, cl)
		}
	}
	return cv.String()
}
