// Package core holds the terminal-independent drawing primitives used by
// the front ends: a character Screen, rectangles and a small color palette.
// It does not import Bubble Tea so layouts can be tested in isolation.
package core

// Rect is an axis-aligned area of a Screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inner returns the area inside a one-character border.
func (r Rect) Inner() Rect {
	return Rect{X: r.X + 1, Y: r.Y + 1, W: max(r.W-2, 0), H: max(r.H-2, 0)}
}

// RightOf returns a rectangle of size w x h placed gap columns to the
// right of r, top-aligned.
func (r Rect) RightOf(gap, w, h int) Rect {
	return Rect{X: r.Right() + gap, Y: r.Y, W: w, H: h}
}

// Below returns a rectangle of size w x h placed gap rows under r,
// left-aligned.
func (r Rect) Below(gap, w, h int) Rect {
	return Rect{X: r.X, Y: r.Bottom() + gap, W: w, H: h}
}
