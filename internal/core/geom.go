// Package core provides fundamental types and utilities shared by the game
// simulation and the terminal platform. It has no external dependencies
// (especially no Bubble Tea) to keep game logic pure and testable.
package core

import "math"

// Vec is a point or displacement in scene units.
// Scene space has its origin at the bottom-left corner and y grows upward.
type Vec struct {
	X, Y float64
}

// V is shorthand for constructing a Vec.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by k.
func (v Vec) Scale(k float64) Vec {
	return Vec{X: v.X * k, Y: v.Y * k}
}

// Len returns the Euclidean length of v.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Lerp interpolates between a and b; t=0 yields a, t=1 yields b.
func Lerp(a, b Vec, t float64) Vec {
	return Vec{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Vec) float64 {
	return b.Sub(a).Len()
}

// Box is an axis-aligned bounding box in scene units.
type Box struct {
	Min, Max Vec
}

// BoxAround returns the box of the given size centred on c.
func BoxAround(c Vec, w, h float64) Box {
	return Box{
		Min: Vec{X: c.X - w/2, Y: c.Y - h/2},
		Max: Vec{X: c.X + w/2, Y: c.Y + h/2},
	}
}

// Intersects returns true if the two boxes overlap.
// Touching edges do not count as overlap.
func (b Box) Intersects(o Box) bool {
	if b.Min.X >= o.Max.X || o.Min.X >= b.Max.X {
		return false
	}
	if b.Min.Y >= o.Max.Y || o.Min.Y >= b.Max.Y {
		return false
	}
	return true
}

// Center returns the midpoint of the box.
func (b Box) Center() Vec {
	return Lerp(b.Min, b.Max, 0.5)
}

// Rect is an axis-aligned rectangle in screen cells, used by renderers.
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

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
