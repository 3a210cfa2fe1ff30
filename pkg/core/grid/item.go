package grid

import "slices"

// Item is a single visual element arranged by the layout engine.
type Item struct {
	ID    string
	Label string
	Tags  []string

	// Size is the outer size measured by the host, margins included.
	Size Size

	// Position is the last position assigned by a relayout, relative to
	// the owning container.
	Position Position

	// Container is the current owner. Updated by Container.Insert.
	Container *Container

	// Dragging is true while the item is the selected item of an active
	// drag session. Dragging items are excluded from height accounting and
	// never receive positions from a relayout.
	Dragging bool

	// Hidden items keep their place in the order list but are skipped by
	// the layout engine.
	Hidden bool
}

// HasTag reports whether the item carries tag.
func (it *Item) HasTag(tag string) bool {
	return slices.Contains(it.Tags, tag)
}

// Placed reports whether the layout engine assigns the item a cell.
func (it *Item) Placed() bool {
	return !it.Hidden && !it.Dragging
}
