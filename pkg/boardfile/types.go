package boardfile

import "github.com/matzehuels/shapeshift/pkg/core/grid"

// File is a decoded board file.
type File struct {
	Options    Options     `toml:"options"`
	Containers []Container `toml:"container"`
}

// Container is one [[container]] entry.
type Container struct {
	ID            string   `toml:"id"`
	Width         float64  `toml:"width"`
	X             float64  `toml:"x,omitempty"`
	Y             float64  `toml:"y,omitempty"`
	MinHeight     float64  `toml:"min_height,omitempty"`
	DropWhitelist []string `toml:"drop_whitelist,omitempty"`
	DragBlacklist []string `toml:"drag_blacklist,omitempty"`
	Options       Options  `toml:"options,omitempty"`
	Items         []Item   `toml:"item"`
}

// Item is one [[container.item]] entry.
type Item struct {
	ID     string   `toml:"id"`
	Label  string   `toml:"label,omitempty"`
	Width  float64  `toml:"width"`
	Height float64  `toml:"height"`
	Hidden bool     `toml:"hidden,omitempty"`
	Tags   []string `toml:"tags,omitempty"`
}

// Options holds grid options. Nil fields are unset and leave the
// underlying configuration untouched.
type Options struct {
	Columns             *int     `toml:"columns,omitempty"`
	ItemWidth           *float64 `toml:"item_width,omitempty"`
	GutterX             *float64 `toml:"gutter_x,omitempty"`
	GutterY             *float64 `toml:"gutter_y,omitempty"`
	PaddingX            *float64 `toml:"padding_x,omitempty"`
	PaddingY            *float64 `toml:"padding_y,omitempty"`
	CenterGrid          *bool    `toml:"center_grid,omitempty"`
	EnableDrag          *bool    `toml:"enable_drag,omitempty"`
	EnableDrop          *bool    `toml:"enable_drop,omitempty"`
	EnableResize        *bool    `toml:"enable_resize,omitempty"`
	EnableAnimation     *bool    `toml:"enable_animation,omitempty"`
	EnableDragAnimation *bool    `toml:"enable_drag_animation,omitempty"`
	EnableAutoHeight    *bool    `toml:"enable_auto_height,omitempty"`
}

// Apply returns cfg with every set option overwritten.
func (o Options) Apply(cfg grid.Config) grid.Config {
	setInt(&cfg.Columns, o.Columns)
	setFloat(&cfg.ItemWidth, o.ItemWidth)
	setFloat(&cfg.GutterX, o.GutterX)
	setFloat(&cfg.GutterY, o.GutterY)
	setFloat(&cfg.PaddingX, o.PaddingX)
	setFloat(&cfg.PaddingY, o.PaddingY)
	setBool(&cfg.CenterGrid, o.CenterGrid)
	setBool(&cfg.EnableDrag, o.EnableDrag)
	setBool(&cfg.EnableDrop, o.EnableDrop)
	setBool(&cfg.EnableResize, o.EnableResize)
	setBool(&cfg.EnableAnimation, o.EnableAnimation)
	setBool(&cfg.EnableDragAnimation, o.EnableDragAnimation)
	setBool(&cfg.EnableAutoHeight, o.EnableAutoHeight)
	return cfg
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}
