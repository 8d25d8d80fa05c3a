package vmath

import "math"

// Vec2 is a 2D vector in cell-space. Value type, never mutated in place.
type Vec2 struct {
	X, Y float64
}

// New creates a vector from integer cell coordinates.
func New(x, y int) Vec2 {
	return Vec2{X: float64(x), Y: float64(y)}
}

// Add returns the component-wise sum.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the component-wise difference.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Negate returns the vector pointing the opposite way.
func (v Vec2) Negate() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Len returns the Euclidean length.
func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Rotate returns v rotated counter-clockwise by degrees, components
// rounded to the nearest cell.
func (v Vec2) Rotate(degrees float64) Vec2 {
	sin, cos := math.Sincos(degrees * math.Pi / 180)
	return Vec2{
		X: math.Round(cos*v.X - sin*v.Y),
		Y: math.Round(sin*v.X + cos*v.Y),
	}
}
