// Package observability provides hooks for metrics and tracing.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register hooks
// at startup to receive events about layout passes, drag sessions and
// scheduler coalescing.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetLayoutHooks(&myLayoutHooks{})
//	    observability.SetDragHooks(&myDragHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	start := time.Now()
//	p := layout.ForContainer(c)
//	observability.Layout().OnLayout(c.ID, p.Len(), p.Columns, p.Height, time.Since(start))
package observability

import (
	"sync"
	"time"
)

// =============================================================================
// Layout Hooks
// =============================================================================

// LayoutHooks receives events from relayouts and the relayout schedulers.
type LayoutHooks interface {
	// OnLayout records a completed relayout of one container.
	OnLayout(containerID string, items, columns int, height float64, duration time.Duration)

	// OnDeferred records a relayout skipped because no item width is known.
	OnDeferred(containerID string)

	// OnCoalesce records a closed scheduler window and how many triggers
	// it absorbed. trigger is "drag" or "resize".
	OnCoalesce(trigger string, absorbed int)
}

// =============================================================================
// Drag Hooks
// =============================================================================

// DragHooks receives events from drag sessions.
type DragHooks interface {
	OnDragStart(itemID, containerID string)
	OnReorder(itemID, fromID, toID string, index int)
	OnDrop(itemID, sourceID, targetID string, index int)
	OnCancel(itemID string)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopLayoutHooks is a no-op implementation of LayoutHooks.
type NoopLayoutHooks struct{}

func (NoopLayoutHooks) OnLayout(string, int, int, float64, time.Duration) {}
func (NoopLayoutHooks) OnDeferred(string)                                 {}
func (NoopLayoutHooks) OnCoalesce(string, int)                            {}

// NoopDragHooks is a no-op implementation of DragHooks.
type NoopDragHooks struct{}

func (NoopDragHooks) OnDragStart(string, string)            {}
func (NoopDragHooks) OnReorder(string, string, string, int) {}
func (NoopDragHooks) OnDrop(string, string, string, int)    {}
func (NoopDragHooks) OnCancel(string)                       {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	layoutHooks LayoutHooks = NoopLayoutHooks{}
	dragHooks   DragHooks   = NoopDragHooks{}
	hooksMu     sync.RWMutex
)

// SetLayoutHooks registers custom layout hooks.
// This should be called once at application startup before any layout.
func SetLayoutHooks(h LayoutHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		layoutHooks = h
	}
}

// SetDragHooks registers custom drag hooks.
// This should be called once at application startup before any drag.
func SetDragHooks(h DragHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		dragHooks = h
	}
}

// Layout returns the registered layout hooks.
func Layout() LayoutHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return layoutHooks
}

// Drag returns the registered drag hooks.
func Drag() DragHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return dragHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	layoutHooks = NoopLayoutHooks{}
	dragHooks = NoopDragHooks{}
}
