// Package pkg provides the core libraries for Shapeshift column grid layouts.
//
// # Overview
//
// Shapeshift arranges items of varying height into a column-balanced grid
// and lets a host reorder them by dragging, within a container or across
// containers. The pkg directory is organized into these areas:
//
//  1. [core/grid] - Domain types (items, containers, configuration, host interfaces)
//  2. [core/grid/layout] - Greedy shortest-column packing
//  3. [core/grid/drag] - Drag sessions and insertion-point resolution
//  4. [core/grid/registry] and [core/grid/schedule] - Focus tracking and rate limiting
//  5. [board] - The host-facing surface tying the above together
//  6. [boardfile] and [core/grid/sink] - TOML board files and SVG/DOT/text/JSON output
//
// # Architecture
//
// The typical data flow through Shapeshift:
//
//	board.toml
//	     ↓
//	[boardfile] package (decode, validate, layer options)
//	     ↓
//	[board] package (configure containers, route gestures)
//	     ↓
//	[core/grid/layout] + [core/grid/drag] (positions, reorders)
//	     ↓
//	grid.Host / [core/grid/sink] (SVG, DOT, text, JSON, PDF, PNG)
//
// # Quick Start
//
// Lay out one container and drag an item:
//
//	import (
//	    "github.com/matzehuels/shapeshift/pkg/board"
//	    "github.com/matzehuels/shapeshift/pkg/core/grid"
//	)
//
//	b := board.New(board.WithHost(host))
//	cfg := grid.DefaultConfig()
//	todo := grid.NewContainer("todo", 320, cfg)
//	if err := b.Configure(todo, items, cfg); err != nil {
//	    return err
//	}
//
//	b.OnStart("card-1", pointer)
//	b.OnMove(next)
//	b.OnEnd()
//
// # Error Handling
//
// Fallible operations return [errors.Error] values carrying a code such as
// INVALID_CONFIG or NOT_DRAGGABLE. Use errors.Is with a code to branch on
// the failure kind.
package pkg
