package grid

// Host receives the visual results of a relayout. Animation duration and
// easing are host concerns.
type Host interface {
	// ApplyPosition moves it to pos, relative to its container. When
	// animated is true the host tweens to the new position.
	ApplyPosition(it *Item, pos Position, animated bool)

	// SetContainerHeight is called after a relayout of a container with
	// EnableAutoHeight set.
	SetContainerHeight(c *Container, height float64)
}

// MoveEvent describes a completed drag.
type MoveEvent struct {
	Item   *Item
	Source *Container
	Target *Container
	Index  int // final index in Target.Items
}

// Listener receives layout and drag notifications.
type Listener interface {
	LayoutUpdated(c *Container, positions []Position)
	ItemMoved(e MoveEvent)
}

// Draggable is the gesture surface for picking items up. Pointer
// coordinates are in host space.
type Draggable interface {
	OnStart(itemID string, pointer Position) error
	OnMove(pointer Position) error
	OnEnd() error
}

// Droppable is the gesture surface for containers: the host reports
// pointer enter/leave and drops on registered containers.
type Droppable interface {
	OnEnter(containerID string)
	OnLeave(containerID string)
	OnDrop(containerID string) error
}

// NopHost discards all visual updates.
type NopHost struct{}

func (NopHost) ApplyPosition(*Item, Position, bool)    {}
func (NopHost) SetContainerHeight(*Container, float64) {}

// NopListener discards all notifications.
type NopListener struct{}

func (NopListener) LayoutUpdated(*Container, []Position) {}
func (NopListener) ItemMoved(MoveEvent)                  {}
