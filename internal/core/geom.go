// Package core provides fundamental types and utilities for the arcade platform.
// It has no terminal or storage dependencies (especially no Bubble Tea) to
// keep game logic pure and testable.
package core

// Rect represents an axis-aligned bounding box in screen cells.
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

// Intersects returns true if this rectangle overlaps with another.
// Uses standard AABB collision detection.
func (r Rect) Intersects(other Rect) bool {
	// No overlap if one rect is completely to the left, right, above, or below
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// RectF is an axis-aligned bounding box in continuous world space (pixels).
type RectF struct {
	X, Y float64
	W, H float64
}

// NewRectF creates a rectangle from its top-left corner and size.
func NewRectF(x, y, w, h float64) RectF {
	return RectF{X: x, Y: y, W: w, H: h}
}

// CenteredRectF creates a rectangle centered on (cx, cy).
func CenteredRectF(cx, cy, w, h float64) RectF {
	return RectF{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// Overlaps reports whether two boxes overlap on both axes.
// Touching edges do not count as overlap.
func (r RectF) Overlaps(o RectF) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X && r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// ToCells maps the box to screen cells given the world-to-cell scale factors.
func (r RectF) ToCells(sx, sy float64) Rect {
	x := int(r.X * sx)
	y := int(r.Y * sy)
	w := max(1, int(r.Right()*sx)-x)
	h := max(1, int(r.Bottom()*sy)-y)
	return Rect{X: x, Y: y, W: w, H: h}
}

// Body is anything that occupies a box in world space.
// Entity variants (balls, bricks, ships, bullets) implement it so collision
// code never needs to know which concrete kind it is handling.
type Body interface {
	Bounds() RectF
}

// Collides reports whether the bounding boxes of a and b overlap.
// It is symmetric: Collides(a, b) == Collides(b, a).
func Collides(a, b Body) bool {
	return a.Bounds().Overlaps(b.Bounds())
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

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Viewport maps a continuous field onto a rectangle of screen cells.
type Viewport struct {
	Screen Rect    // target cells
	FieldW float64 // field size in world units
	FieldH float64
}

// Project converts a world-space box to screen cells inside the viewport.
func (v Viewport) Project(r RectF) Rect {
	if v.FieldW <= 0 || v.FieldH <= 0 {
		return Rect{}
	}
	cells := r.ToCells(float64(v.Screen.W)/v.FieldW, float64(v.Screen.H)/v.FieldH)
	cells.X += v.Screen.X
	cells.Y += v.Screen.Y
	return cells.Clip(v.Screen)
}

// Clip returns the part of r inside bounds. An empty result has zero size.
func (r Rect) Clip(bounds Rect) Rect {
	x0, y0 := max(r.X, bounds.X), max(r.Y, bounds.Y)
	x1, y1 := min(r.Right(), bounds.Right()), min(r.Bottom(), bounds.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}
