package sink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	errs "github.com/matzehuels/shapeshift/pkg/errors"
)

// pointsPerInch converts layout pixels to Graphviz inches.
const pointsPerInch = 72.0

// ToDOT converts a Board to Graphviz DOT format. Every visible item
// becomes a box pinned at its cell center, so the neato engine reproduces
// the grid instead of computing its own layout. Items of a container are
// chained by invisible-weight dotted edges in list order.
func ToDOT(b Board) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  splines=true;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=12, fixedsize=true];\n")
	buf.WriteString("  edge [style=dotted, color=\"#999999\"];\n")
	buf.WriteString("\n")

	for _, c := range b.Containers {
		fmt.Fprintf(&buf, "  subgraph %q {\n", "cluster_"+c.ID)
		fmt.Fprintf(&buf, "    label=%q;\n", c.ID)

		var prev string
		for _, bl := range c.Visible() {
			if bl.Dragging {
				continue
			}
			// Graphviz y grows upwards.
			cx := c.X + bl.X + bl.Width/2
			cy := b.Height - (c.Y + bl.Y + bl.Height/2)
			fmt.Fprintf(&buf, "    %q [label=%q, width=%.3f, height=%.3f, pos=\"%.2f,%.2f!\"];\n",
				bl.ID, bl.Text(), bl.Width/pointsPerInch, bl.Height/pointsPerInch, cx, cy)
			if prev != "" {
				fmt.Fprintf(&buf, "    %q -- %q;\n", prev, bl.ID)
			}
			prev = bl.ID
		}
		buf.WriteString("  }\n")
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderDOTSVG renders a DOT graph produced by [ToDOT] to SVG using the
// Graphviz neato engine.
func RenderDOTSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidFormat, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInternal, err, "render DOT")
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's pt-based svg element with a
// pixel-sized one anchored at the origin.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
