package boardfile

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"

	"github.com/matzehuels/shapeshift/pkg/board"
	"github.com/matzehuels/shapeshift/pkg/core/grid"
	errs "github.com/matzehuels/shapeshift/pkg/errors"
)

// ReadTOML decodes a board file from r.
//
// ReadTOML returns an INVALID_FORMAT error if the TOML is malformed or
// contains keys that are not part of the format, and an INVALID_BOARD
// error if:
//   - A container or item ID is invalid or duplicated
//   - A width, height or origin is negative or not finite
//
// Items without an ID are assigned a random UUID. ReadTOML does not
// close r.
func ReadTOML(r io.Reader) (*File, error) {
	var f File
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidFormat, err, "decode board")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errs.New(errs.ErrCodeInvalidFormat, "unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := f.normalize(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Load reads the board file at path.
func Load(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer fh.Close()
	return ReadTOML(fh)
}

func (f *File) normalize() error {
	containers := make(map[string]bool, len(f.Containers))
	items := make(map[string]string)
	for ci := range f.Containers {
		c := &f.Containers[ci]
		if err := errs.ValidateID("container", c.ID); err != nil {
			return err
		}
		if containers[c.ID] {
			return errs.New(errs.ErrCodeInvalidBoard, "duplicate container id %q", c.ID)
		}
		containers[c.ID] = true
		if err := checkNumbers("container "+c.ID, c.Width, c.X, c.Y, c.MinHeight); err != nil {
			return err
		}

		for ii := range c.Items {
			it := &c.Items[ii]
			if it.ID == "" {
				it.ID = uuid.NewString()
			}
			if err := errs.ValidateID("item", it.ID); err != nil {
				return err
			}
			if owner, dup := items[it.ID]; dup {
				return errs.New(errs.ErrCodeInvalidBoard, "duplicate item id %q (in %s and %s)", it.ID, owner, c.ID)
			}
			items[it.ID] = c.ID
			if err := checkNumbers("item "+it.ID, it.Width, it.Height); err != nil {
				return err
			}
		}
	}
	return nil
}

func checkNumbers(what string, vs ...float64) error {
	for _, v := range vs {
		if err := errs.ValidateDimension(what, v); err != nil {
			return errs.Wrap(errs.ErrCodeInvalidBoard, err, "%s", what)
		}
	}
	return nil
}

// Config returns the grid configuration of the container with the given
// index, layered over base.
func (f *File) Config(i int, base grid.Config) grid.Config {
	c := f.Containers[i]
	cfg := c.Options.Apply(f.Options.Apply(base))
	cfg.DropWhitelist = grid.MatchIDsOrTags(c.DropWhitelist)
	cfg.DragBlacklist = grid.MatchIDsOrTags(c.DragBlacklist)
	return cfg
}

// Configure builds every container and configures it on b in file order.
func (f *File) Configure(b *board.Board, base grid.Config) error {
	for i, fc := range f.Containers {
		c := grid.NewContainer(fc.ID, fc.Width, grid.Config{})
		c.Origin = grid.Position{Left: fc.X, Top: fc.Y}
		c.MinHeight = fc.MinHeight

		items := make([]*grid.Item, len(fc.Items))
		for j, fi := range fc.Items {
			items[j] = &grid.Item{
				ID:     fi.ID,
				Label:  fi.Label,
				Tags:   slices.Clone(fi.Tags),
				Size:   grid.Size{Width: fi.Width, Height: fi.Height},
				Hidden: fi.Hidden,
			}
		}
		if err := b.Configure(c, items, f.Config(i, base)); err != nil {
			return errs.Wrap(errs.GetCode(err), err, "container %s", fc.ID)
		}
	}
	return nil
}
