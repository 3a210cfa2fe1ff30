package drag

import (
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/shapeshift/pkg/core/grid"
	"github.com/matzehuels/shapeshift/pkg/core/grid/layout"
	"github.com/matzehuels/shapeshift/pkg/core/grid/schedule"
	errs "github.com/matzehuels/shapeshift/pkg/errors"
	"github.com/matzehuels/shapeshift/pkg/observability"
)

// State is the controller state.
type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// Focus reports the container under the pointer. *registry.Registry
// satisfies it.
type Focus interface {
	Current() *grid.Container
	Track(it *grid.Item)
}

// Relayouter lays out a container and pushes the result to the host.
type Relayouter interface {
	Relayout(c *grid.Container, animated bool)
}

// RelayoutFunc adapts a function to Relayouter.
type RelayoutFunc func(c *grid.Container, animated bool)

// Relayout calls f.
func (f RelayoutFunc) Relayout(c *grid.Container, animated bool) { f(c, animated) }

// Session is the state of an active drag.
type Session struct {
	Item *grid.Item

	// Source is the container the item was picked up from.
	Source *grid.Container

	// Hover is the container the item is being dragged over.
	Hover *grid.Container

	// Pointer is the last reported pointer position.
	Pointer grid.Position

	// Index is the item's current index in its container's list.
	Index int
}

// Option configures a Controller.
type Option func(*Controller)

// WithHost sets the host receiving ghost positions.
func WithHost(h grid.Host) Option {
	return func(c *Controller) { c.host = h }
}

// WithListener sets the listener receiving ItemMoved notifications.
func WithListener(l grid.Listener) Option {
	return func(c *Controller) { c.listener = l }
}

// WithLogger sets the logger for session events.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// WithScheduler sets the scheduler rate limiting reorders.
func WithScheduler(s *schedule.Scheduler) Option {
	return func(c *Controller) { c.throttle = s }
}

// Controller runs drag sessions. It is not safe for concurrent use.
type Controller struct {
	focus    Focus
	relayout Relayouter
	host     grid.Host
	listener grid.Listener
	throttle *schedule.Scheduler
	logger   *log.Logger

	state   State
	session *Session
}

// New creates an idle controller.
func New(focus Focus, r Relayouter, opts ...Option) *Controller {
	c := &Controller{
		focus:    focus,
		relayout: r,
		host:     grid.NopHost{},
		listener: grid.NopListener{},
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.throttle == nil {
		c.throttle = schedule.New(grid.DefaultDragWindow, nil, schedule.WithLeading())
	}
	return c
}

// State returns the controller state.
func (c *Controller) State() State { return c.state }

// Session returns a copy of the active session.
func (c *Controller) Session() (Session, bool) {
	if c.session == nil {
		return Session{}, false
	}
	return *c.session, true
}

// Start picks it up at pointer.
func (c *Controller) Start(it *grid.Item, pointer grid.Position) error {
	if c.state == Dragging {
		return errs.New(errs.ErrCodeInvalidState, "a drag is already in progress")
	}
	if it == nil || it.Container == nil {
		return errs.New(errs.ErrCodeInvalidInput, "item is not in a container")
	}
	src := it.Container
	if !src.Config.CanDrag(it) {
		return errs.New(errs.ErrCodeNotDraggable, "item %s cannot be dragged", it.ID)
	}

	it.Dragging = true
	c.session = &Session{
		Item:    it,
		Source:  src,
		Hover:   src,
		Pointer: pointer,
		Index:   src.IndexOf(it),
	}
	c.state = Dragging
	c.focus.Track(it)

	c.logger.Debug("drag start", "item", it.ID, "container", src.ID)
	observability.Drag().OnDragStart(it.ID, src.ID)

	c.relayout.Relayout(src, src.Config.EnableDragAnimation)
	c.applyGhost()
	return nil
}

// Move reports a new pointer position.
func (c *Controller) Move(pointer grid.Position) error {
	if c.state != Dragging {
		return errs.New(errs.ErrCodeInvalidState, "no drag in progress")
	}
	s := c.session
	s.Pointer = pointer
	if cur := c.focus.Current(); cur != nil {
		s.Hover = cur
	}
	c.applyGhost()

	// Focus filtering keeps a drag out of containers that refuse the
	// item, except the source itself.
	if !s.Hover.Config.Accepts(s.Item) {
		return nil
	}
	c.throttle.Trigger(c.reorder)
	return nil
}

// Poll runs a throttled reorder whose window has elapsed. It is a no-op
// for clock-driven throttles.
func (c *Controller) Poll() { c.throttle.Poll() }

// Drop ends the session at the item's current place.
func (c *Controller) Drop() error {
	if c.state != Dragging {
		return errs.New(errs.ErrCodeInvalidState, "no drag in progress")
	}
	c.throttle.Flush()

	s := c.session
	it := s.Item
	target := it.Container
	it.Dragging = false
	c.end()

	idx := target.IndexOf(it)
	c.relayout.Relayout(target, target.Config.EnableAnimation)

	c.logger.Debug("drop", "item", it.ID, "from", s.Source.ID, "to", target.ID, "index", idx)
	observability.Drag().OnDrop(it.ID, s.Source.ID, target.ID, idx)
	c.listener.ItemMoved(grid.MoveEvent{
		Item:   it,
		Source: s.Source,
		Target: target,
		Index:  idx,
	})
	return nil
}

// Cancel aborts the session without a move notification. The item stays
// where the last reorder put it. Cancel is a no-op when idle.
func (c *Controller) Cancel() {
	if c.state != Dragging {
		return
	}
	c.throttle.Cancel()
	it := c.session.Item
	it.Dragging = false
	c.end()

	c.logger.Debug("drag cancelled", "item", it.ID)
	observability.Drag().OnCancel(it.ID)
	c.relayout.Relayout(it.Container, it.Container.Config.EnableAnimation)
}

func (c *Controller) end() {
	c.state = Idle
	c.session = nil
	c.focus.Track(nil)
}

// applyGhost moves the dragged item under the pointer, centered on it.
func (c *Controller) applyGhost() {
	it := c.session.Item
	local := c.session.Pointer.Sub(it.Container.Origin)
	pos := grid.Position{
		Left: local.Left - it.Size.Width/2,
		Top:  local.Top - it.Size.Height/2,
	}
	it.Position = pos
	c.host.ApplyPosition(it, pos, false)
}

func (c *Controller) reorder() {
	if c.state != Dragging {
		return
	}
	s := c.session
	it := s.Item
	target := s.Hover
	prev := it.Container

	p := layout.ForContainer(target)
	colWidth := p.ColumnWidth
	if p.Deferred || colWidth <= 0 {
		colWidth = it.Size.Width + target.Config.GutterX
	}
	local := s.Pointer.Sub(target.Origin)
	center := grid.Position{
		Left: local.Left - colWidth/2,
		Top:  local.Top - it.Size.Height/2,
	}

	prev.Remove(it)
	at := 0
	if p.Len() > 0 {
		i := IntendedIndex(p.Positions, center)
		anchor, pos := p.Anchor(i)
		at = target.IndexOf(anchor)
		if i == p.Len()-1 && local.Top > pos.Top+anchor.Size.Height/2 {
			at++
		}
	}
	target.Insert(at, it)

	moved := prev != target || at != s.Index
	s.Index = at
	if moved {
		c.logger.Debug("reorder", "item", it.ID, "from", prev.ID, "to", target.ID, "index", at)
		observability.Drag().OnReorder(it.ID, prev.ID, target.ID, at)
	}

	c.relayout.Relayout(target, target.Config.EnableDragAnimation)
	if prev != target {
		c.relayout.Relayout(prev, prev.Config.EnableDragAnimation)
	}
}

// IntendedIndex returns the index of the anchor nearest to center among
// anchors whose cell lies strictly above and to the left of it. It
// returns 0 when no anchor qualifies.
func IntendedIndex(anchors []grid.Position, center grid.Position) int {
	best, bestDist := 0, math.Inf(1)
	for i, a := range anchors {
		if a.Left >= center.Left || a.Top >= center.Top {
			continue
		}
		if d := center.Distance(a); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}
