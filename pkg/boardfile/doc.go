// Package boardfile provides TOML import and export for boards.
//
// # Overview
//
// A board file describes a set of containers, their items in order and the
// grid options used to lay them out. Files are decoded with
// github.com/BurntSushi/toml; unknown keys are rejected so typos surface
// instead of being silently ignored.
//
// # Format
//
//	[options]
//	gutter_x = 10
//	gutter_y = 10
//	center_grid = true
//
//	[[container]]
//	id = "todo"
//	width = 320
//	drop_whitelist = ["finished"]
//
//	  [container.options]
//	  columns = 2
//
//	  [[container.item]]
//	  id = "docs"
//	  label = "Write docs"
//	  width = 100
//	  height = 50
//	  tags = ["writing"]
//
// # Options
//
// The [options] table and each container's options table accept the grid
// options columns, item_width, gutter_x, gutter_y, padding_x, padding_y,
// center_grid, enable_drag, enable_drop, enable_resize, enable_animation,
// enable_drag_animation and enable_auto_height. Unset keys fall through:
// container options override [options], which override the base
// configuration passed to [File.Configure].
//
// # Containers
//
// Required:
//   - id: unique container identifier
//   - width: inner width available for columns
//
// Optional:
//   - x, y: origin in pointer space
//   - min_height: minimum height used for hit testing
//   - drop_whitelist: item IDs or tags accepted by drops ("*" for all)
//   - drag_blacklist: item IDs or tags that cannot be dragged
//
// # Items
//
// Items carry a width and height and optionally a label, tags and a
// hidden flag. Items without an id are assigned a random UUID when read;
// item IDs must be unique across the board.
//
// # Import and Export
//
// Use [Load] to read a board file from a path or [ReadTOML] to read from
// any io.Reader. [Snapshot] captures the current item order of a
// configured board back into a [File], which [WriteTOML] encodes.
package boardfile
