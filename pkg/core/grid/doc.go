// Package grid defines the data model shared by the shapeshift layout and
// drag packages.
//
// # Overview
//
// A [Container] holds an ordered list of [Item] values. The order is
// significant: items are packed into columns in list order, so reordering
// the list is how an item "moves" on screen. Each container carries two
// pieces of configuration state:
//
//   - [Config]: immutable input options (columns, gutters, padding, feature
//     switches, acceptance predicates). Validated once by [Config.Validate].
//   - [LayoutState]: mutable output written by the layout engine (memoized
//     item width, active column count, computed height).
//
// # Host Integration
//
// The host (a terminal UI, a test, a renderer) implements [Host] to receive
// positions and container heights, and [Listener] to receive notifications.
// Pointer gestures flow the other way through [Draggable] and [Droppable],
// which the board facade implements.
//
// The grid model never creates or destroys items. [Container.Insert] and
// [Container.Remove] only move existing pointers between lists.
package grid
