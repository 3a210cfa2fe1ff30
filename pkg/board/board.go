// Package board ties containers, the drag controller and the relayout
// schedulers together behind the host-facing gesture surface.
//
// A host creates one [Board], configures each container it displays and
// then forwards pointer events:
//
//	b := board.New(board.WithHost(host), board.WithListener(listener))
//	if err := b.Configure(todo, items, grid.DefaultConfig()); err != nil {
//	    return err
//	}
//	b.OnStart("card-1", pointer) // pointer down on an item
//	b.OnEnter("todo")            // pointer entered a container
//	b.OnMove(pointer)            // pointer moved
//	b.OnEnd()                    // pointer released
//
// Hosts without enter/leave events call [Board.Point] with each pointer
// position instead; the board hit-tests the registered containers.
//
// A Board is not safe for concurrent use. By default its schedulers are
// polled: a trailing reorder or resize relayout runs inside the next board
// call after its window, or inside [Board.Poll], which hosts call from an
// idle or frame callback. [WithClock] switches to timer-driven windows;
// the clock then has to deliver callbacks on the host's event loop.
package board

import (
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/shapeshift/pkg/core/grid"
	"github.com/matzehuels/shapeshift/pkg/core/grid/drag"
	"github.com/matzehuels/shapeshift/pkg/core/grid/layout"
	"github.com/matzehuels/shapeshift/pkg/core/grid/registry"
	"github.com/matzehuels/shapeshift/pkg/core/grid/schedule"
	errs "github.com/matzehuels/shapeshift/pkg/errors"
	"github.com/matzehuels/shapeshift/pkg/observability"
)

var (
	_ grid.Draggable = (*Board)(nil)
	_ grid.Droppable = (*Board)(nil)
)

// Option configures a Board.
type Option func(*Board)

// WithHost sets the host receiving positions and container heights.
func WithHost(h grid.Host) Option {
	return func(b *Board) {
		if h != nil {
			b.host = h
		}
	}
}

// WithListener sets the listener receiving layout and move notifications.
func WithListener(l grid.Listener) Option {
	return func(b *Board) {
		if l != nil {
			b.listener = l
		}
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(b *Board) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithClock sets the clock driving the drag and resize schedulers. Its
// callbacks must run on the goroutine that uses the board.
func WithClock(c schedule.Clock) Option {
	return func(b *Board) {
		if c != nil {
			b.clock = c
		}
	}
}

// Board is a set of configured containers sharing one drag controller.
type Board struct {
	host     grid.Host
	listener grid.Listener
	logger   *log.Logger
	clock    schedule.Clock

	reg    *registry.Registry
	drag   *drag.Controller
	resize map[string]*schedule.Scheduler
}

// New creates an empty board.
func New(opts ...Option) *Board {
	b := &Board{
		host:     grid.NopHost{},
		listener: grid.NopListener{},
		logger:   log.New(io.Discard),
		reg:      registry.New(),
		resize:   make(map[string]*schedule.Scheduler),
	}
	for _, opt := range opts {
		opt(b)
	}

	throttle := schedule.New(grid.DefaultDragWindow, b.clock,
		schedule.WithLeading(),
		schedule.WithOnClose(func(n int) { observability.Layout().OnCoalesce("drag", n) }),
	)
	b.drag = drag.New(b.reg, drag.RelayoutFunc(b.relayout),
		drag.WithHost(b.host),
		drag.WithListener(b.listener),
		drag.WithLogger(b.logger),
		drag.WithScheduler(throttle),
	)
	return b
}

// =============================================================================
// Instances
// =============================================================================

// Configure validates cfg, gives c the items in order and registers it.
// Configuring an ID again replaces the previous instance with fresh layout
// state. The container is laid out once, without animation.
func (b *Board) Configure(c *grid.Container, items []*grid.Item, cfg grid.Config) error {
	if c == nil {
		return errs.New(errs.ErrCodeInvalidInput, "container is nil")
	}
	if err := errs.ValidateID("container", c.ID); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return errs.Wrap(errs.ErrCodeInvalidConfig, err, "container %s", c.ID)
	}
	if err := errs.ValidateDimension("width", c.Width); err != nil {
		return errs.Wrap(errs.ErrCodeInvalidConfig, err, "container %s", c.ID)
	}
	if err := b.checkItems(c.ID, items); err != nil {
		return err
	}
	if s, ok := b.drag.Session(); ok && involves(s, c.ID) {
		b.drag.Cancel()
	}
	if old, ok := b.resize[c.ID]; ok {
		old.Cancel()
	}

	c.Config = cfg
	c.State = &grid.LayoutState{}
	c.Adopt(items)
	b.reg.Register(c)
	b.resize[c.ID] = schedule.New(grid.DefaultResizeWindow, b.clock,
		schedule.WithLeading(),
		schedule.WithOnClose(func(n int) { observability.Layout().OnCoalesce("resize", n) }),
	)

	b.logger.Debug("configured container", "container", c.ID, "items", len(items), "width", c.Width)
	b.relayout(c, false)
	return nil
}

// checkItems rejects invalid or duplicate item IDs. IDs must be unique
// across the board, ignoring the instance being replaced.
func (b *Board) checkItems(containerID string, items []*grid.Item) error {
	seen := make(map[string]string)
	for _, c := range b.reg.Containers() {
		if c.ID == containerID {
			continue
		}
		for _, it := range c.Items {
			seen[it.ID] = c.ID
		}
	}
	for _, it := range items {
		if it == nil {
			return errs.New(errs.ErrCodeInvalidInput, "container %s: nil item", containerID)
		}
		if err := errs.ValidateID("item", it.ID); err != nil {
			return err
		}
		if owner, dup := seen[it.ID]; dup {
			return errs.New(errs.ErrCodeInvalidBoard, "duplicate item id %q (already in %s)", it.ID, owner)
		}
		seen[it.ID] = containerID
	}
	return nil
}

// Teardown unregisters a container and stops its scheduler. A drag
// involving the container is cancelled.
func (b *Board) Teardown(id string) error {
	c, err := b.Container(id)
	if err != nil {
		return err
	}
	if s, ok := b.drag.Session(); ok && involves(s, c.ID) {
		b.drag.Cancel()
	}
	b.resize[id].Cancel()
	delete(b.resize, id)
	b.reg.Unregister(id)
	b.logger.Debug("torn down container", "container", id)
	return nil
}

// involves reports whether the session touches the container with the
// given ID as its source, hover or current container.
func involves(s drag.Session, id string) bool {
	for _, c := range []*grid.Container{s.Item.Container, s.Source, s.Hover} {
		if c != nil && c.ID == id {
			return true
		}
	}
	return false
}

// Container returns the registered container with the given ID.
func (b *Board) Container(id string) (*grid.Container, error) {
	c, ok := b.reg.Lookup(id)
	if !ok {
		return nil, errs.New(errs.ErrCodeNotFound, "container %q not found", id)
	}
	return c, nil
}

// Containers returns the registered containers in registration order.
func (b *Board) Containers() []*grid.Container { return b.reg.Containers() }

// Item returns the item with the given ID and its container.
func (b *Board) Item(id string) (*grid.Item, error) {
	for _, c := range b.reg.Containers() {
		if it, ok := c.Item(id); ok {
			return it, nil
		}
	}
	return nil, errs.New(errs.ErrCodeNotFound, "item %q not found", id)
}

// =============================================================================
// Layout
// =============================================================================

// Relayout lays out the container and pushes positions to the host,
// animated when both animated and the container's EnableAnimation are set.
// Relayout is idempotent: with no model change a second call yields the
// same positions.
func (b *Board) Relayout(id string, animated bool) error {
	c, err := b.Container(id)
	if err != nil {
		return err
	}
	b.Poll()
	b.relayout(c, animated && c.Config.EnableAnimation)
	return nil
}

// RelayoutAll lays out every registered container.
func (b *Board) RelayoutAll(animated bool) {
	b.Poll()
	for _, c := range b.reg.Containers() {
		b.relayout(c, animated && c.Config.EnableAnimation)
	}
}

// Resize records a new container width. When resizing is enabled the
// relayout goes through the resize scheduler, so a burst of resizes
// produces one immediate and one trailing relayout.
func (b *Board) Resize(id string, width float64) error {
	c, err := b.Container(id)
	if err != nil {
		return err
	}
	if err := errs.ValidateDimension("width", width); err != nil {
		return errs.Wrap(errs.ErrCodeInvalidInput, err, "resize %s", id)
	}
	b.Poll()
	c.Width = width
	if !c.Config.EnableResize {
		return nil
	}
	b.resize[id].Trigger(func() {
		// The container may have been replaced or torn down meanwhile.
		if cur, ok := b.reg.Lookup(id); ok && cur == c {
			b.relayout(c, c.Config.EnableAnimation)
		}
	})
	return nil
}

// Flush runs every pending scheduled relayout now.
func (b *Board) Flush() {
	b.drag.Poll()
	for _, c := range b.reg.Containers() {
		b.resize[c.ID].Flush()
	}
}

// Poll runs the scheduled reorder and resize relayouts whose window has
// elapsed. Every gesture and layout call polls first.
func (b *Board) Poll() {
	b.drag.Poll()
	for _, c := range b.reg.Containers() {
		b.resize[c.ID].Poll()
	}
}

// relayout applies c's layout. animated is passed to the host as is.
func (b *Board) relayout(c *grid.Container, animated bool) {
	start := time.Now()
	p := layout.ForContainer(c)
	if p.Deferred {
		b.logger.Debug("layout deferred", "container", c.ID)
		observability.Layout().OnDeferred(c.ID)
		return
	}

	for i, it := range p.Items {
		it.Position = p.Positions[i]
		b.host.ApplyPosition(it, it.Position, animated)
	}
	if c.Config.EnableAutoHeight {
		b.host.SetContainerHeight(c, p.Height)
	}
	b.listener.LayoutUpdated(c, slices.Clone(p.Positions))

	elapsed := time.Since(start)
	b.logger.Debug("layout", "container", c.ID, "items", p.Len(), "columns", p.Columns, "height", p.Height)
	observability.Layout().OnLayout(c.ID, p.Len(), p.Columns, p.Height, elapsed)
}

// =============================================================================
// Gestures
// =============================================================================

// OnStart picks up the item with the given ID.
func (b *Board) OnStart(itemID string, pointer grid.Position) error {
	it, err := b.Item(itemID)
	if err != nil {
		return err
	}
	b.Poll()
	if b.reg.Current() == nil {
		b.reg.Enter(it.Container)
	}
	return b.drag.Start(it, pointer)
}

// OnMove reports a pointer move during a drag.
func (b *Board) OnMove(pointer grid.Position) error {
	b.Poll()
	return b.drag.Move(pointer)
}

// OnEnd drops the dragged item where it currently is.
func (b *Board) OnEnd() error {
	b.Poll()
	return b.drag.Drop()
}

// Cancel aborts the active drag without a move notification.
func (b *Board) Cancel() { b.drag.Cancel() }

// Dragging returns the active drag session.
func (b *Board) Dragging() (drag.Session, bool) { return b.drag.Session() }

// OnEnter reports that the pointer entered a container. Unknown IDs and
// containers that refuse the dragged item are ignored.
func (b *Board) OnEnter(containerID string) {
	b.Poll()
	if c, ok := b.reg.Lookup(containerID); ok {
		b.reg.Enter(c)
	}
}

// OnLeave reports that the pointer left a container.
func (b *Board) OnLeave(containerID string) {
	b.Poll()
	if c, ok := b.reg.Lookup(containerID); ok {
		b.reg.Leave(c)
	}
}

// OnDrop reports a drop on a container and ends the drag.
func (b *Board) OnDrop(containerID string) error {
	c, err := b.Container(containerID)
	if err != nil {
		return err
	}
	b.Poll()
	b.reg.Enter(c)
	return b.drag.Drop()
}

// Point hit-tests p against the registered containers and updates focus
// the way enter and leave events would. It returns the container under
// p, if any.
func (b *Board) Point(p grid.Position) (*grid.Container, bool) {
	b.Poll()
	cur := b.reg.Current()
	hit, ok := b.reg.Hit(p)
	switch {
	case ok && hit != cur:
		if cur != nil {
			b.reg.Leave(cur)
		}
		b.reg.Enter(hit)
	case !ok && cur != nil:
		b.reg.Leave(cur)
	}
	return hit, ok
}

// Focus returns the container currently under the pointer.
func (b *Board) Focus() *grid.Container { return b.reg.Current() }
