// Package sim implements the Tilt Escape board simulation: level parsing,
// guard patrols, tilt-driven marble physics and circle-vs-box collision.
// It has no terminal dependencies (especially no Bubble Tea) so the whole
// simulation stays pure and testable; the platform layer feeds it a tilt
// state and a time step each frame and reads entity positions back.
//
// Coordinates: x grows right, y grows down, matching terminal rows. One
// level cell is one unit.
package sim

import "math"

// Vec2 is a 2D vector with float64 components.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for constructing a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by the scalar s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns v scaled to unit length.
// The zero vector normalizes to the zero vector.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Clamp restricts each component of v to [lo, hi] componentwise.
func (v Vec2) Clamp(lo, hi Vec2) Vec2 {
	return Vec2{
		X: clampF(v.X, lo.X, hi.X),
		Y: clampF(v.Y, lo.Y, hi.Y),
	}
}

// Round returns v with both components rounded to the nearest integer.
func (v Vec2) Round() Vec2 {
	return Vec2{X: math.Round(v.X), Y: math.Round(v.Y)}
}

func clampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
