package sink

import (
	"slices"

	"github.com/matzehuels/shapeshift/pkg/core/grid"
)

// Board is a renderable snapshot of laid-out containers.
type Board struct {
	Width      float64     `json:"width"`
	Height     float64     `json:"height"`
	Containers []Container `json:"containers"`
}

// Container is one laid-out container. X and Y are its origin.
type Container struct {
	ID          string  `json:"id"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	Columns     int     `json:"columns"`
	ColumnWidth float64 `json:"column_width"`
	Offset      float64 `json:"offset"`
	Items       []Block `json:"items"`
}

// Block is one item. X and Y are relative to the container.
type Block struct {
	ID       string   `json:"id"`
	Label    string   `json:"label,omitempty"`
	X        float64  `json:"x"`
	Y        float64  `json:"y"`
	Width    float64  `json:"width"`
	Height   float64  `json:"height"`
	Index    int      `json:"index"`
	Tags     []string `json:"tags,omitempty"`
	Hidden   bool     `json:"hidden,omitempty"`
	Dragging bool     `json:"dragging,omitempty"`
}

// Text returns the label, or the ID when the label is empty.
func (b Block) Text() string {
	if b.Label != "" {
		return b.Label
	}
	return b.ID
}

// Capture snapshots containers in the given order.
func Capture(cs []*grid.Container) Board {
	var out Board
	for _, c := range cs {
		sc := Container{
			ID:    c.ID,
			X:     c.Origin.Left,
			Y:     c.Origin.Top,
			Width: c.Width,
			Items: make([]Block, 0, c.Len()),
		}
		if c.State != nil {
			sc.Height = c.State.Height
			sc.Columns = c.State.Columns
			sc.ColumnWidth = c.State.ColumnWidth
			sc.Offset = c.State.Offset
		}
		sc.Height = max(sc.Height, c.MinHeight)

		for i, it := range c.Items {
			sc.Items = append(sc.Items, Block{
				ID:       it.ID,
				Label:    it.Label,
				X:        it.Position.Left,
				Y:        it.Position.Top,
				Width:    it.Size.Width,
				Height:   it.Size.Height,
				Index:    i,
				Tags:     slices.Clone(it.Tags),
				Hidden:   it.Hidden,
				Dragging: it.Dragging,
			})
		}
		out.Width = max(out.Width, sc.X+sc.Width)
		out.Height = max(out.Height, sc.Y+sc.Height)
		out.Containers = append(out.Containers, sc)
	}
	return out
}

// Container returns the container with the given ID.
func (b Board) Container(id string) (Container, bool) {
	i := slices.IndexFunc(b.Containers, func(c Container) bool { return c.ID == id })
	if i < 0 {
		return Container{}, false
	}
	return b.Containers[i], true
}

// Visible returns the blocks that are drawn in list order, with a dragged
// block moved last so it is drawn on top.
func (c Container) Visible() []Block {
	var out []Block
	var dragged []Block
	for _, b := range c.Items {
		switch {
		case b.Hidden:
		case b.Dragging:
			dragged = append(dragged, b)
		default:
			out = append(out, b)
		}
	}
	return append(out, dragged...)
}
