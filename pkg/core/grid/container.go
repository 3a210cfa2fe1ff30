package grid

import "slices"

// Container is a drop target holding an ordered set of items.
type Container struct {
	ID string

	// Items is the column-major fill order.
	Items []*Item

	// Width is the inner width available for columns.
	Width float64

	// Origin is the container's top-left corner in pointer space. Pointer
	// coordinates are translated by Origin before comparing against cells.
	Origin Position

	// MinHeight is the host's minimum height for hit testing, so that an
	// empty container can still be entered.
	MinHeight float64

	Config Config
	State  *LayoutState
}

// NewContainer creates an empty container with a fresh layout state.
func NewContainer(id string, width float64, cfg Config) *Container {
	return &Container{
		ID:     id,
		Width:  width,
		Config: cfg,
		State:  &LayoutState{},
	}
}

// Len returns the number of items in the order list, hidden and dragging
// items included.
func (c *Container) Len() int { return len(c.Items) }

// IndexOf returns the list index of it, or -1.
func (c *Container) IndexOf(it *Item) int {
	return slices.Index(c.Items, it)
}

// Item returns the item with the given id.
func (c *Container) Item(id string) (*Item, bool) {
	for _, it := range c.Items {
		if it.ID == id {
			return it, true
		}
	}
	return nil, false
}

// Remove drops it from the order list. It reports whether it was present.
func (c *Container) Remove(it *Item) bool {
	i := c.IndexOf(it)
	if i < 0 {
		return false
	}
	c.Items = slices.Delete(c.Items, i, i+1)
	return true
}

// Insert places it at index i, clamped to [0, Len()], and makes c its
// owner. The item must already have been removed from its previous list.
func (c *Container) Insert(i int, it *Item) {
	i = max(0, min(i, len(c.Items)))
	c.Items = slices.Insert(c.Items, i, it)
	it.Container = c
}

// Adopt replaces the order list and points every item's owner at c.
func (c *Container) Adopt(items []*Item) {
	c.Items = slices.Clone(items)
	for _, it := range c.Items {
		it.Container = c
	}
}

// Placed returns the items the layout engine assigns cells to, in order.
func (c *Container) Placed() []*Item {
	placed := make([]*Item, 0, len(c.Items))
	for _, it := range c.Items {
		if it.Placed() {
			placed = append(placed, it)
		}
	}
	return placed
}

// IDs returns the item IDs in list order.
func (c *Container) IDs() []string {
	ids := make([]string, len(c.Items))
	for i, it := range c.Items {
		ids[i] = it.ID
	}
	return ids
}

// LayoutState is the mutable output of the layout engine for one container.
type LayoutState struct {
	// ItemWidth is the memoized column item width. Zero until the first
	// layout measures an item or Config.ItemWidth is set.
	ItemWidth float64

	// Columns, ColumnWidth and Offset describe the last computed grid.
	Columns     int
	ColumnWidth float64
	Offset      float64

	// Height is the height of the tallest column after the last layout.
	Height float64
}

// Reset clears the memoized measurements. Called when a container is
// reconfigured.
func (s *LayoutState) Reset() {
	*s = LayoutState{}
}
