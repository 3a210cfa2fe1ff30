package layout

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/matzehuels/shapeshift/pkg/core/grid"
)

func uniform(n int, w, h float64) []grid.Size {
	sizes := make([]grid.Size, n)
	for i := range sizes {
		sizes[i] = grid.Size{Width: w, Height: h}
	}
	return sizes
}

func TestComputeTwoColumnScenario(t *testing.T) {
	cfg := grid.DefaultConfig()
	cfg.ItemWidth = 100

	res := Compute(320, uniform(6, 100, 50), cfg, nil)

	if res.ColumnWidth != 110 {
		t.Errorf("ColumnWidth = %v, want 110", res.ColumnWidth)
	}
	if res.Columns != 2 {
		t.Fatalf("Columns = %d, want 2", res.Columns)
	}
	if got := res.Counts(); !slices.Equal(got, []int{3, 3}) {
		t.Errorf("Counts() = %v, want [3 3]", got)
	}
	if !slices.Equal(res.ColumnHeights, []float64{180, 180}) {
		t.Errorf("ColumnHeights = %v, want [180 180]", res.ColumnHeights)
	}
	if res.Height != 180 {
		t.Errorf("Height = %v, want 180", res.Height)
	}

	// 320 mod 110 = 100 leftover, split evenly.
	want := []grid.Position{
		{Left: 50, Top: 0}, {Left: 160, Top: 0},
		{Left: 50, Top: 60}, {Left: 160, Top: 60},
		{Left: 50, Top: 120}, {Left: 160, Top: 120},
	}
	if !slices.Equal(res.Positions, want) {
		t.Errorf("Positions = %v, want %v", res.Positions, want)
	}
}

func TestComputeShortestColumnWins(t *testing.T) {
	cfg := grid.DefaultConfig()
	cfg.CenterGrid = false
	cfg.ItemWidth = 100

	sizes := []grid.Size{
		{Width: 100, Height: 100},
		{Width: 100, Height: 20},
		{Width: 100, Height: 20},
		{Width: 100, Height: 20},
	}
	res := Compute(220, sizes, cfg, nil)

	if !slices.Equal(res.ColumnOf, []int{0, 1, 1, 1}) {
		t.Errorf("ColumnOf = %v, want [0 1 1 1]", res.ColumnOf)
	}
	if res.Positions[3] != (grid.Position{Left: 110, Top: 60}) {
		t.Errorf("Positions[3] = %v, want {110 60}", res.Positions[3])
	}
	if res.Height != 110 {
		t.Errorf("Height = %v, want 110", res.Height)
	}
}

func TestComputeTieBreakLowestIndex(t *testing.T) {
	cfg := grid.DefaultConfig()
	cfg.Columns = 3
	cfg.ItemWidth = 50

	res := Compute(0, uniform(3, 50, 10), cfg, nil)
	if !slices.Equal(res.ColumnOf, []int{0, 1, 2}) {
		t.Errorf("ColumnOf = %v, want [0 1 2]", res.ColumnOf)
	}
}

func TestComputeDegenerateGeometry(t *testing.T) {
	tests := []struct {
		name         string
		width        float64
		sizes        []grid.Size
		mutate       func(*grid.Config)
		wantColumns  int
		wantHeight   float64
		wantDeferred bool
	}{
		{
			name:        "container narrower than one column",
			width:       50,
			sizes:       uniform(3, 100, 20),
			mutate:      func(c *grid.Config) { c.ItemWidth = 100 },
			wantColumns: 1,
			wantHeight:  90,
		},
		{
			name:        "zero width container",
			width:       0,
			sizes:       uniform(2, 100, 20),
			wantColumns: 1,
			wantHeight:  60,
		},
		{
			name:        "no items with known width",
			width:       320,
			mutate:      func(c *grid.Config) { c.ItemWidth = 100; c.PaddingY = 7 },
			wantColumns: 2,
			wantHeight:  7,
		},
		{
			name:         "no items and nothing to measure",
			width:        320,
			mutate:       func(c *grid.Config) { c.PaddingY = 7 },
			wantHeight:   7,
			wantDeferred: true,
		},
		{
			name:        "fixed columns ignore width",
			width:       10,
			sizes:       uniform(4, 100, 20),
			mutate:      func(c *grid.Config) { c.Columns = 4 },
			wantColumns: 4,
			wantHeight:  30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := grid.DefaultConfig()
			if tt.mutate != nil {
				tt.mutate(&cfg)
			}
			res := Compute(tt.width, tt.sizes, cfg, &grid.LayoutState{})
			if res.Deferred != tt.wantDeferred {
				t.Fatalf("Deferred = %v, want %v", res.Deferred, tt.wantDeferred)
			}
			if res.Height != tt.wantHeight {
				t.Errorf("Height = %v, want %v", res.Height, tt.wantHeight)
			}
			if tt.wantDeferred {
				return
			}
			if res.Columns != tt.wantColumns {
				t.Errorf("Columns = %d, want %d", res.Columns, tt.wantColumns)
			}
			if len(res.ColumnHeights) != res.Columns {
				t.Errorf("len(ColumnHeights) = %d, want %d", len(res.ColumnHeights), res.Columns)
			}
			if len(res.Positions) != len(tt.sizes) {
				t.Errorf("len(Positions) = %d, want %d", len(res.Positions), len(tt.sizes))
			}
		})
	}
}

func TestComputeMemoizesItemWidth(t *testing.T) {
	cfg := grid.DefaultConfig()
	state := &grid.LayoutState{}

	Compute(400, uniform(2, 90, 10), cfg, state)
	if state.ItemWidth != 90 {
		t.Fatalf("ItemWidth = %v, want 90", state.ItemWidth)
	}

	// A different first item does not change the memoized width.
	res := Compute(400, uniform(2, 190, 10), cfg, state)
	if res.ColumnWidth != 100 {
		t.Errorf("ColumnWidth = %v, want 100", res.ColumnWidth)
	}

	state.Reset()
	res = Compute(400, uniform(2, 190, 10), cfg, state)
	if res.ColumnWidth != 200 {
		t.Errorf("ColumnWidth after Reset = %v, want 200", res.ColumnWidth)
	}
}

func TestComputeOffset(t *testing.T) {
	cfg := grid.DefaultConfig()
	cfg.ItemWidth = 100
	cfg.PaddingX = 12

	if got := GridOffset(345, 110, cfg); got != 7 {
		t.Errorf("centered offset = %v, want 7", got)
	}

	cfg.CenterGrid = false
	res := Compute(345, uniform(1, 100, 10), cfg, nil)
	if res.Positions[0].Left != 12 {
		t.Errorf("Left = %v, want padding 12", res.Positions[0].Left)
	}
}

func TestComputeInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	cfg := grid.DefaultConfig()
	cfg.ItemWidth = 80
	cfg.PaddingY = 5

	for trial := 0; trial < 50; trial++ {
		n := rng.Intn(40)
		width := float64(50 + rng.Intn(900))
		sizes := make([]grid.Size, n)
		for i := range sizes {
			sizes[i] = grid.Size{Width: 80, Height: float64(10 + rng.Intn(120))}
		}

		res := Compute(width, sizes, cfg, nil)

		total := 0
		for _, c := range res.Counts() {
			total += c
		}
		if total != n {
			t.Fatalf("trial %d: assigned %d items, want %d", trial, total, n)
		}
		if res.Height != slices.Max(res.ColumnHeights) {
			t.Fatalf("trial %d: Height %v != max column height %v", trial, res.Height, slices.Max(res.ColumnHeights))
		}

		// Appending an item never lowers any column.
		if n > 0 {
			prev := Compute(width, sizes[:n-1], cfg, nil)
			for col := range prev.ColumnHeights {
				if res.ColumnHeights[col] < prev.ColumnHeights[col] {
					t.Fatalf("trial %d: column %d shrank from %v to %v", trial, col, prev.ColumnHeights[col], res.ColumnHeights[col])
				}
			}
		}

		again := Compute(width, sizes, cfg, nil)
		if !slices.Equal(res.Positions, again.Positions) {
			t.Fatalf("trial %d: layout is not idempotent", trial)
		}
	}
}

func TestForContainerSkipsDraggedItem(t *testing.T) {
	cfg := grid.DefaultConfig()
	cfg.ItemWidth = 100
	c := grid.NewContainer("todo", 320, cfg)
	c.Adopt([]*grid.Item{
		{ID: "a", Size: grid.Size{Width: 100, Height: 50}},
		{ID: "b", Size: grid.Size{Width: 100, Height: 50}, Dragging: true},
		{ID: "c", Size: grid.Size{Width: 100, Height: 50}, Hidden: true},
		{ID: "d", Size: grid.Size{Width: 100, Height: 50}},
	})

	p := ForContainer(c)
	if p.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", p.Len())
	}
	if it, pos := p.Anchor(1); it.ID != "d" || pos.Left != 160 {
		t.Errorf("Anchor(1) = %s at %v, want d at left 160", it.ID, pos)
	}
	if c.State.Height != 60 {
		t.Errorf("State.Height = %v, want 60", c.State.Height)
	}
	if c.State.Columns != 2 {
		t.Errorf("State.Columns = %d, want 2", c.State.Columns)
	}
}
