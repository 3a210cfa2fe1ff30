// Package registry tracks drop-eligible containers and pointer focus.
//
// The host reports pointer-enter and pointer-leave events on registered
// containers; the registry keeps the single container currently under the
// pointer. While a drag is active only containers that accept the dragged
// item can take focus.
package registry

import (
	"slices"

	"github.com/matzehuels/shapeshift/pkg/core/grid"
)

// Registry holds registered containers in registration order.
type Registry struct {
	containers []*grid.Container
	current    *grid.Container

	// subject is the item whose drop eligibility filters focus, if any.
	subject *grid.Item
}

// New creates an empty registry.
func New() *Registry { return &Registry{} }

// Register adds c. Registering the same ID again replaces the previous
// container in place.
func (r *Registry) Register(c *grid.Container) {
	if i := r.index(c.ID); i >= 0 {
		if r.current == r.containers[i] {
			r.current = c
		}
		r.containers[i] = c
		return
	}
	r.containers = append(r.containers, c)
}

// Unregister removes the container with the given id. Focus is cleared if
// it pointed at that container.
func (r *Registry) Unregister(id string) bool {
	i := r.index(id)
	if i < 0 {
		return false
	}
	if r.current == r.containers[i] {
		r.current = nil
	}
	r.containers = slices.Delete(r.containers, i, i+1)
	return true
}

// Lookup returns the container with the given id.
func (r *Registry) Lookup(id string) (*grid.Container, bool) {
	if i := r.index(id); i >= 0 {
		return r.containers[i], true
	}
	return nil, false
}

// Containers returns the registered containers in registration order.
func (r *Registry) Containers() []*grid.Container {
	return slices.Clone(r.containers)
}

// Eligible returns the containers that accept it.
func (r *Registry) Eligible(it *grid.Item) []*grid.Container {
	var out []*grid.Container
	for _, c := range r.containers {
		if c.Config.Accepts(it) {
			out = append(out, c)
		}
	}
	return out
}

// Track makes drop eligibility of it filter focus changes. Pass nil when
// the drag ends.
func (r *Registry) Track(it *grid.Item) { r.subject = it }

// Enter records that the pointer entered c. It reports whether focus
// moved to c.
func (r *Registry) Enter(c *grid.Container) bool {
	if c == nil || r.index(c.ID) < 0 {
		return false
	}
	if r.subject != nil && r.subject.Container != c && !c.Config.Accepts(r.subject) {
		return false
	}
	r.current = c
	return true
}

// Leave records that the pointer left c. Focus is cleared only if c is the
// current container; an out-of-order leave from a previous container does
// not steal focus from the one just entered.
func (r *Registry) Leave(c *grid.Container) {
	if c != nil && r.current == c {
		r.current = nil
	}
}

// Current returns the container under the pointer, or nil.
func (r *Registry) Current() *grid.Container { return r.current }

// Hit returns the first registered container whose bounds contain p.
// Bounds are Origin, Width and the last computed height, but at least
// MinHeight.
func (r *Registry) Hit(p grid.Position) (*grid.Container, bool) {
	for _, c := range r.containers {
		h := c.MinHeight
		if c.State != nil {
			h = max(h, c.State.Height)
		}
		local := p.Sub(c.Origin)
		if local.Left >= 0 && local.Left < c.Width && local.Top >= 0 && local.Top < h {
			return c, true
		}
	}
	return nil, false
}

func (r *Registry) index(id string) int {
	return slices.IndexFunc(r.containers, func(c *grid.Container) bool { return c.ID == id })
}
