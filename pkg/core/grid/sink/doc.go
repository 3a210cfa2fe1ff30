// Package sink provides output format renderers for grid layouts.
//
// # Overview
//
// A "sink" transforms a [Board] snapshot of laid-out containers into a
// final output format. This package provides renderers for:
//
//   - SVG: vector drawing of containers and item cells
//   - JSON: layout data export for external tools
//   - DOT: Graphviz graph with pinned node positions, rendered to SVG
//     through go-graphviz
//   - Text: terminal drawing styled with lipgloss, also used by the
//     interactive drag host
//   - PDF and PNG: converted from SVG (requires rsvg-convert)
//
// # Snapshots
//
// [Capture] reads the positions assigned by the last relayout of each
// container. Hidden items are recorded but not drawn; an item that is
// being dragged is recorded at its ghost position.
//
//	b := board.New()
//	// ... configure containers
//	snap := sink.Capture(b.Containers())
//	svg := sink.RenderSVG(snap, sink.WithColumns())
//
// # JSON Output
//
// [MarshalLayout] produces pretty-printed JSON:
//
//	{
//	  "width": 720,
//	  "height": 180,
//	  "containers": [
//	    {
//	      "id": "todo",
//	      "columns": 2,
//	      "items": [{"id": "a", "x": 50, "y": 0, "width": 100, "height": 50}]
//	    }
//	  ]
//	}
package sink
