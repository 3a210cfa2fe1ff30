package grid

import "math"

// Size is the outer size of an item or container in host units.
type Size struct {
	Width  float64 `json:"width" toml:"width"`
	Height float64 `json:"height" toml:"height"`
}

// Position is a top-left coordinate pair. Item positions are relative to
// their container; pointer positions are in host space.
type Position struct {
	Left float64 `json:"left"`
	Top  float64 `json:"top"`
}

// Sub returns p shifted by -o.
func (p Position) Sub(o Position) Position {
	return Position{Left: p.Left - o.Left, Top: p.Top - o.Top}
}

// Add returns p shifted by o.
func (p Position) Add(o Position) Position {
	return Position{Left: p.Left + o.Left, Top: p.Top + o.Top}
}

// Distance returns the Euclidean distance between p and o.
func (p Position) Distance(o Position) float64 {
	return math.Hypot(p.Left-o.Left, p.Top-o.Top)
}
