// Package core provides fundamental types and utilities shared by the game
// and the platform layer. It has no external dependencies to keep the
// simulation pure and testable.
package core

// Rect is an integer cell rectangle used by the screen painter.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
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

// Box is an axis-aligned rectangle in world units.
type Box struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// CenterY returns the vertical centre of the box.
func (b Box) CenterY() float64 {
	return b.Y + b.H/2
}

// Circle is a circle in world units.
type Circle struct {
	X, Y float64 // Centre
	R    float64
}

// CircleBoxOverlap reports whether a circle touches a box. The closest point
// of the box to the circle centre is compared against the radius; touching
// counts as overlap.
func CircleBoxOverlap(c Circle, b Box) bool {
	cx := ClampF(c.X, b.X, b.Right())
	cy := ClampF(c.Y, b.Y, b.Bottom())
	dx := c.X - cx
	dy := c.Y - cy
	return dx*dx+dy*dy <= c.R*c.R
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
// When hi < lo the result is lo.
func ClampF(val, lo, hi float64) float64 {
	if val > hi {
		val = hi
	}
	if val < lo {
		val = lo
	}
	return val
}

// Sign returns -1 for negative values and 1 otherwise.
func Sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
