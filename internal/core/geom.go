// Package core holds the types shared between game logic and the
// platform layer. Nothing here may import Bubble Tea or any other
// terminal code; games stay pure and testable.
package core

// Rect is an axis-aligned box in screen cells, addressed by its
// top-left corner.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect builds a Rect from position and size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right is the x just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom is the y just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && y >= r.Y && x < r.Right() && y < r.Bottom()
}

// Min returns the smaller of two ints.
func Min(a, b int) int {
	if b < a {
		return b
	}
	return a
}

// Max returns the larger of two ints.
func Max(a, b int) int {
	if b > a {
		return b
	}
	return a
}
