package boardfile

import (
	"io"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/shapeshift/pkg/board"
	errs "github.com/matzehuels/shapeshift/pkg/errors"
)

// Snapshot returns a copy of f with each container's items listed in the
// board's current order. Containers unknown to b keep their items.
// Items that moved between containers follow their new owner.
func Snapshot(f *File, b *board.Board) *File {
	byID := make(map[string]Item)
	for _, c := range f.Containers {
		for _, it := range c.Items {
			byID[it.ID] = it
		}
	}

	out := &File{Options: f.Options, Containers: make([]Container, len(f.Containers))}
	for i, fc := range f.Containers {
		out.Containers[i] = fc
		c, err := b.Container(fc.ID)
		if err != nil {
			continue
		}
		items := make([]Item, 0, c.Len())
		for _, it := range c.Items {
			fi, ok := byID[it.ID]
			if !ok {
				fi = Item{ID: it.ID, Label: it.Label, Tags: it.Tags}
			}
			fi.Width, fi.Height = it.Size.Width, it.Size.Height
			fi.Hidden = it.Hidden
			items = append(items, fi)
		}
		out.Containers[i].Items = items
	}
	return out
}

// WriteTOML encodes f as TOML and writes it to w.
// The output can be re-read with [ReadTOML].
func WriteTOML(f *File, w io.Writer) error {
	enc := toml.NewEncoder(w)
	enc.Indent = "  "
	if err := enc.Encode(f); err != nil {
		return errs.Wrap(errs.ErrCodeInternal, err, "encode board")
	}
	return nil
}
