package grid

import (
	"time"

	errs "github.com/matzehuels/shapeshift/pkg/errors"
)

// Default option values.
const (
	DefaultGutterX = 10.0
	DefaultGutterY = 10.0

	// DefaultDragWindow bounds reorder computation while the pointer moves.
	DefaultDragWindow = 200 * time.Millisecond

	// DefaultResizeWindow bounds full relayouts while the container resizes.
	DefaultResizeWindow = 333 * time.Millisecond
)

// Predicate decides whether an item is matched by an acceptance rule.
type Predicate func(*Item) bool

// Config holds the immutable layout and interaction options of a container.
// Use [DefaultConfig] as the starting point; the zero value disables every
// feature switch.
type Config struct {
	// Columns fixes the column count. Zero derives it from the width.
	Columns int

	// ItemWidth fixes the column item width. Zero measures the first item.
	ItemWidth float64

	GutterX, GutterY   float64
	PaddingX, PaddingY float64

	// CenterGrid centers the columns horizontally instead of applying
	// PaddingX.
	CenterGrid bool

	// DropWhitelist selects the items the container accepts. Nil accepts
	// every item.
	DropWhitelist Predicate

	// DragBlacklist selects items that cannot be picked up. Nil means all
	// items are draggable.
	DragBlacklist Predicate

	EnableDrag          bool
	EnableDrop          bool
	EnableResize        bool
	EnableAnimation     bool
	EnableDragAnimation bool
	EnableAutoHeight    bool
}

// DefaultConfig returns the stock options: 10px gutters, no padding,
// centered grid, every feature enabled.
func DefaultConfig() Config {
	return Config{
		GutterX:             DefaultGutterX,
		GutterY:             DefaultGutterY,
		CenterGrid:          true,
		EnableDrag:          true,
		EnableDrop:          true,
		EnableResize:        true,
		EnableAnimation:     true,
		EnableDragAnimation: true,
		EnableAutoHeight:    true,
	}
}

// Validate rejects configurations the layout engine cannot place items
// with. It is called once when a container is configured so that layout
// never fails mid-gesture.
func (c Config) Validate() error {
	for _, s := range []struct {
		name string
		v    float64
	}{
		{"gutter_x", c.GutterX},
		{"gutter_y", c.GutterY},
		{"padding_x", c.PaddingX},
		{"padding_y", c.PaddingY},
	} {
		if err := errs.ValidateSpacing(s.name, s.v); err != nil {
			return err
		}
	}
	if err := errs.ValidateDimension("item_width", c.ItemWidth); err != nil {
		return err
	}
	if c.Columns < 0 {
		return errs.New(errs.ErrCodeInvalidConfig, "columns cannot be negative, got %d", c.Columns)
	}
	if c.ItemWidth > 0 && c.ItemWidth+c.GutterX <= 0 {
		return errs.New(errs.ErrCodeInvalidConfig, "item_width %v with gutter_x %v yields an empty column", c.ItemWidth, c.GutterX)
	}
	return nil
}

// Accepts reports whether the container configured with c accepts drops
// of it.
func (c Config) Accepts(it *Item) bool {
	return c.EnableDrop && (c.DropWhitelist == nil || c.DropWhitelist(it))
}

// CanDrag reports whether it may be picked up under c.
func (c Config) CanDrag(it *Item) bool {
	return c.EnableDrag && (c.DragBlacklist == nil || !c.DragBlacklist(it))
}

// MatchIDsOrTags builds a predicate matching items whose ID or one of whose
// tags appears in keys. The key "*" matches every item. An empty key list
// returns nil.
func MatchIDsOrTags(keys []string) Predicate {
	if len(keys) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		if k == "*" {
			return func(*Item) bool { return true }
		}
		set[k] = struct{}{}
	}
	return func(it *Item) bool {
		if _, ok := set[it.ID]; ok {
			return true
		}
		for _, t := range it.Tags {
			if _, ok := set[t]; ok {
				return true
			}
		}
		return false
	}
}
