package layout

import (
	"math"
	"slices"

	"github.com/matzehuels/shapeshift/pkg/core/grid"
)

// Result is the outcome of one layout pass.
type Result struct {
	// Positions holds one cell per input size, in input order.
	Positions []grid.Position

	// Height is the tallest column's running height (PaddingY when empty).
	Height float64

	Columns     int
	ColumnWidth float64
	Offset      float64

	// ColumnHeights is the running height of every column after the last
	// item. Its length always equals Columns.
	ColumnHeights []float64

	// ColumnOf maps each input index to the column it was placed in.
	ColumnOf []int

	// Deferred is set when no item width is known yet and there is no item
	// to measure. Nothing else in the result is meaningful.
	Deferred bool
}

// Counts returns the number of items assigned to each column.
func (r Result) Counts() []int {
	counts := make([]int, r.Columns)
	for _, col := range r.ColumnOf {
		counts[col]++
	}
	return counts
}

// Compute places sizes into columns for a container of the given inner
// width. state may be nil; when non-nil it memoizes the measured item width
// and receives the computed grid geometry.
func Compute(containerWidth float64, sizes []grid.Size, cfg grid.Config, state *grid.LayoutState) Result {
	itemWidth, ok := resolveItemWidth(sizes, cfg, state)
	if !ok {
		return Result{Height: cfg.PaddingY, Deferred: true}
	}

	colWidth := itemWidth + cfg.GutterX
	cols := ColumnCount(containerWidth, colWidth, cfg.Columns)
	offset := GridOffset(containerWidth, colWidth, cfg)

	heights := make([]float64, cols)
	for i := range heights {
		heights[i] = cfg.PaddingY
	}

	res := Result{
		Positions:   make([]grid.Position, len(sizes)),
		ColumnOf:    make([]int, len(sizes)),
		Columns:     cols,
		ColumnWidth: colWidth,
		Offset:      offset,
	}

	for i, s := range sizes {
		col := shortestColumn(heights)
		res.Positions[i] = grid.Position{
			Left: colWidth*float64(col) + offset,
			Top:  heights[col],
		}
		res.ColumnOf[i] = col
		heights[col] += s.Height + cfg.GutterY
	}

	res.ColumnHeights = heights
	res.Height = slices.Max(heights)

	if state != nil {
		state.Columns = cols
		state.ColumnWidth = colWidth
		state.Offset = offset
		state.Height = res.Height
	}
	return res
}

// ColumnCount returns the active number of columns. A positive fixed value
// wins; otherwise as many columns as fit, never fewer than one.
func ColumnCount(containerWidth, colWidth float64, fixed int) int {
	if fixed > 0 {
		return fixed
	}
	if colWidth <= 0 || containerWidth <= 0 {
		return 1
	}
	return max(1, int(math.Floor(containerWidth/colWidth)))
}

// GridOffset returns the horizontal offset of the first column. With
// CenterGrid the leftover fraction of a column is split evenly on both
// sides; otherwise PaddingX is used.
func GridOffset(containerWidth, colWidth float64, cfg grid.Config) float64 {
	if !cfg.CenterGrid {
		return cfg.PaddingX
	}
	if colWidth <= 0 || containerWidth <= 0 {
		return 0
	}
	// frac(w/c)*c, computed as w mod c to stay exact for integral inputs.
	return math.Floor(math.Mod(containerWidth, colWidth) / 2)
}

// shortestColumn returns the first column with the minimum height.
func shortestColumn(heights []float64) int {
	best := 0
	for i := 1; i < len(heights); i++ {
		if heights[i] < heights[best] {
			best = i
		}
	}
	return best
}

func resolveItemWidth(sizes []grid.Size, cfg grid.Config, state *grid.LayoutState) (float64, bool) {
	if cfg.ItemWidth > 0 {
		if state != nil {
			state.ItemWidth = cfg.ItemWidth
		}
		return cfg.ItemWidth, true
	}
	if state != nil && state.ItemWidth > 0 {
		return state.ItemWidth, true
	}
	if len(sizes) == 0 {
		return 0, false
	}
	w := sizes[0].Width
	if state != nil && w > 0 {
		state.ItemWidth = w
	}
	return w, true
}
