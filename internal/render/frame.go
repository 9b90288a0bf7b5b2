// Package render draws a view tree into a terminal frame with lipgloss and
// records where each interactive node landed so hosts can hit-test pointer
// events against it.
package render

import "github.com/alexisbeaulieu97/formbuilder/internal/view"

// Rect is a rectangle of terminal cells.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Zone locates an interactive node of the tree on screen.
type Zone struct {
	Kind view.Kind
	Key  string
	Rect Rect
}

// Frame is one rendered screen.
type Frame struct {
	Output string
	Zones  []Zone
	Width  int
	Height int
}

// Hit returns the innermost zone containing (x, y). Zones are recorded outer
// first, so the last match wins.
func (f Frame) Hit(x, y int) (Zone, bool) {
	for i := len(f.Zones) - 1; i >= 0; i-- {
		if f.Zones[i].Rect.Contains(x, y) {
			return f.Zones[i], true
		}
	}
	return Zone{}, false
}

// ZonesOf returns every zone of the given kind in render order.
func (f Frame) ZonesOf(kind view.Kind) []Zone {
	var out []Zone
	for _, z := range f.Zones {
		if z.Kind == kind {
			out = append(out, z)
		}
	}
	return out
}

// block is a rendered fragment with zones relative to its own top-left cell.
type block struct {
	out   string
	zones []Zone
}

func (b block) offset(dx, dy int) []Zone {
	out := make([]Zone, len(b.zones))
	for i, z := range b.zones {
		z.Rect.X += dx
		z.Rect.Y += dy
		out[i] = z
	}
	return out
}
