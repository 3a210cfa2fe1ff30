// Package layout computes column-balanced grid positions.
//
// # Overview
//
// Items are packed greedily: each item in list order is placed into the
// column with the smallest running height, the lowest column index winning
// ties. Columns have a uniform width of itemWidth + gutterX, so the grid is
// fully described by the column count, the column width and a horizontal
// offset.
//
// # Column Count
//
// A fixed [grid.Config.Columns] value is used as is. Otherwise the count is
// floor(containerWidth / columnWidth), clamped to at least one column so a
// container narrower than a single column still places its items.
//
// # Item Width
//
// When [grid.Config.ItemWidth] is zero the width of the first item is
// measured the first time a layout needs it and memoized in
// [grid.LayoutState]. A layout requested before any item exists is
// deferred: [Result.Deferred] is set and callers skip applying it.
//
// # Usage
//
//	res := layout.Compute(320, sizes, cfg, state)
//	for i, p := range res.Positions {
//	    host.ApplyPosition(items[i], p, true)
//	}
//
// [ForContainer] does the filtering for a [grid.Container]: hidden and
// dragging items are skipped and the container's state is updated.
package layout
