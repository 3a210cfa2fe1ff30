package layout

import "github.com/matzehuels/shapeshift/pkg/core/grid"

// Placement is a layout of a container's placed items.
type Placement struct {
	Result

	// Items are the visible, non-dragging items, aligned with Positions.
	Items []*grid.Item
}

// Anchor returns the i-th placed item and its cell.
func (p Placement) Anchor(i int) (*grid.Item, grid.Position) {
	return p.Items[i], p.Positions[i]
}

// Len returns the number of placed items.
func (p Placement) Len() int { return len(p.Items) }

// ForContainer lays out c's visible items, skipping the item being dragged.
// The container's LayoutState is updated unless the layout is deferred.
func ForContainer(c *grid.Container) Placement {
	if c.State == nil {
		c.State = &grid.LayoutState{}
	}
	placed := c.Placed()
	sizes := make([]grid.Size, len(placed))
	for i, it := range placed {
		sizes[i] = it.Size
	}
	return Placement{
		Result: Compute(c.Width, sizes, c.Config, c.State),
		Items:  placed,
	}
}
