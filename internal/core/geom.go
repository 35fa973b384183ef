// Package core provides fundamental types and utilities for the jumper.
// It contains no external dependencies (especially no Bubble Tea) to keep the
// simulation pure and testable.
package core

import "math"

// Rect is an axis-aligned rectangle in world units.
// World space is Y-up: Y is the bottom edge and Top() is the upper edge.
type Rect struct {
	X, Y float64 // Bottom-left corner
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Top returns the y-coordinate of the upper edge.
func (r Rect) Top() float64 {
	return r.Y + r.H
}

// CenterX returns the horizontal center.
func (r Rect) CenterX() float64 {
	return r.X + r.W/2
}

// CenterY returns the vertical center.
func (r Rect) CenterY() float64 {
	return r.Y + r.H/2
}

// Intersects returns true if this rectangle overlaps with another.
// Touching edges do not count as overlap.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Top() || other.Y >= r.Top() {
		return false
	}
	return true
}

// SpansX reports whether x lies strictly between the left and right edges.
func (r Rect) SpansX(x float64) bool {
	return x > r.X && x < r.Right()
}

// Circle is a point with a radius in world units.
type Circle struct {
	X, Y float64
	R    float64
}

// Top returns the y-coordinate of the circle's highest point.
func (c Circle) Top() float64 {
	return c.Y + c.R
}

// Overlaps returns true if the two circles intersect.
func (c Circle) Overlaps(other Circle) bool {
	dx := c.X - other.X
	dy := c.Y - other.Y
	rr := c.R + other.R
	return dx*dx+dy*dy <= rr*rr
}

// CellRect is a rectangle on the character grid (Y-down, integer cells).
type CellRect struct {
	X, Y int
	W, H int
}

// NewCellRect creates a grid rectangle.
func NewCellRect(x, y, w, h int) CellRect {
	return CellRect{X: x, Y: y, W: w, H: h}
}

// Right returns the column just past the right edge.
func (r CellRect) Right() int {
	return r.X + r.W
}

// Bottom returns the row just past the bottom edge.
func (r CellRect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Finite returns v, or 0 when v is NaN or infinite.
func Finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
