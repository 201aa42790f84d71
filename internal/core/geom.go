// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea) to keep the
// simulation pure and testable.
package core

// Box is an axis-aligned bounding box in field units.
// A valid box always has Right > Left and Bottom > Top.
type Box struct {
	Left, Top, Right, Bottom float64
}

// BoxAround creates a box of the given size centered on (cx, cy).
func BoxAround(cx, cy, w, h float64) Box {
	return Box{
		Left:   cx - w/2,
		Top:    cy - h/2,
		Right:  cx + w/2,
		Bottom: cy + h/2,
	}
}

// Width returns the horizontal extent of the box.
func (b Box) Width() float64 {
	return b.Right - b.Left
}

// Height returns the vertical extent of the box.
func (b Box) Height() float64 {
	return b.Bottom - b.Top
}

// CenterX returns the horizontal center of the box.
func (b Box) CenterX() float64 {
	return (b.Left + b.Right) * 0.5
}

// CenterY returns the vertical center of the box.
func (b Box) CenterY() float64 {
	return (b.Top + b.Bottom) * 0.5
}

// Translate returns the box moved by (dx, dy).
func (b Box) Translate(dx, dy float64) Box {
	return Box{
		Left:   b.Left + dx,
		Top:    b.Top + dy,
		Right:  b.Right + dx,
		Bottom: b.Bottom + dy,
	}
}

// Overlaps reports whether two boxes intersect.
// Touching edges count as an overlap.
func (b Box) Overlaps(other Box) bool {
	if b.Right < other.Left || other.Right < b.Left {
		return false
	}
	if b.Bottom < other.Top || other.Bottom < b.Top {
		return false
	}
	return true
}

// Valid reports whether the box has positive width and height.
func (b Box) Valid() bool {
	return b.Right > b.Left && b.Bottom > b.Top
}

// WithinX reports whether the box lies inside the horizontal range [minX, maxX].
func (b Box) WithinX(minX, maxX float64) bool {
	return b.Left >= minX && b.Right <= maxX
}

// Rect represents an integer cell rectangle on a screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}
