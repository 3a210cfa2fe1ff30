package sink

import (
	"bytes"
	"fmt"
	"html"
)

const (
	framePad    = 20.0 // space around the drawing
	titleHeight = 24.0 // space above each container for its ID
)

const cellCSS = `
    .container { fill: #f7f7f7; stroke: #bbb; stroke-width: 1; }
    .column { fill: none; stroke: #ddd; stroke-dasharray: 4 4; }
    .item { fill: white; stroke: #333; stroke-width: 1.5; }
    .item.dragging { fill: #e8f4ff; stroke: #1f77b4; stroke-dasharray: 6 3; }
    .label { font-family: sans-serif; font-size: 12px; fill: #333; }
    .title { font-family: sans-serif; font-size: 14px; font-weight: bold; fill: #555; }`

// SVGOption configures SVG rendering via [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	columns bool
	indices bool
}

// WithColumns draws dashed column guides.
func WithColumns() SVGOption { return func(r *svgRenderer) { r.columns = true } }

// WithIndices prefixes labels with the item's list index.
func WithIndices() SVGOption { return func(r *svgRenderer) { r.indices = true } }

// RenderSVG draws every container as a titled panel with its item cells.
func RenderSVG(b Board, opts ...SVGOption) []byte {
	r := svgRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	w := b.Width + 2*framePad
	h := b.Height + 2*framePad + titleHeight

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		w, h, w, h)
	fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", cellCSS)

	for _, c := range b.Containers {
		r.renderContainer(&buf, c)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r svgRenderer) renderContainer(buf *bytes.Buffer, c Container) {
	ox := c.X + framePad
	oy := c.Y + framePad + titleHeight

	fmt.Fprintf(buf, `  <g id="container-%s">`+"\n", html.EscapeString(c.ID))
	fmt.Fprintf(buf, `    <text class="title" x="%.2f" y="%.2f">%s</text>`+"\n",
		ox, oy-8, html.EscapeString(c.ID))
	fmt.Fprintf(buf, `    <rect class="container" x="%.2f" y="%.2f" width="%.2f" height="%.2f"/>`+"\n",
		ox, oy, c.Width, c.Height)

	if r.columns && c.ColumnWidth > 0 {
		for i := 0; i < c.Columns; i++ {
			x := ox + c.Offset + float64(i)*c.ColumnWidth
			fmt.Fprintf(buf, `    <rect class="column" x="%.2f" y="%.2f" width="%.2f" height="%.2f"/>`+"\n",
				x, oy, c.ColumnWidth, c.Height)
		}
	}

	for _, b := range c.Visible() {
		class := "item"
		if b.Dragging {
			class = "item dragging"
		}
		x, y := ox+b.X, oy+b.Y
		fmt.Fprintf(buf, `    <rect id="item-%s" class="%s" x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="4"/>`+"\n",
			html.EscapeString(b.ID), class, x, y, b.Width, b.Height)

		label := b.Text()
		if r.indices {
			label = fmt.Sprintf("%d · %s", b.Index, label)
		}
		fmt.Fprintf(buf, `    <text class="label" x="%.2f" y="%.2f" text-anchor="middle" dominant-baseline="middle">%s</text>`+"\n",
			x+b.Width/2, y+b.Height/2, html.EscapeString(label))
	}
	buf.WriteString("  </g>\n")
}
