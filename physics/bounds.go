package physics

import "github.com/vaudevilla1n/ping-pong/vmath"

// Bounds holds the drawable extents in cells: the terminal area minus the
// last row and column, which belong to the status line.
type Bounds struct {
	W, H int
}

// MaxEntitySize returns the entity size ceiling: half the drawable
// extents on each axis.
func (b Bounds) MaxEntitySize() (w, h int) {
	return b.W / 2, b.H / 2
}

// The collision zone is closed at both ends: the boundary cell itself
// counts, not only points past it.
func (b Bounds) collideX(x float64) bool {
	return x <= 1 || x >= float64(b.W)
}

func (b Bounds) collideY(y float64) bool {
	return y <= 1 || y >= float64(b.H)
}

func (b Bounds) collide(v vmath.Vec2) bool {
	return b.collideX(v.X) || b.collideY(v.Y)
}

// outOfBounds is the draw-time check; unlike collision it is open at the
// low end, so a cell at exactly 1 is still drawable.
func (b Bounds) outOfBoundsX(x float64) bool {
	return x < 1 || x >= float64(b.W)
}

func (b Bounds) outOfBoundsY(y float64) bool {
	return y < 1 || y >= float64(b.H)
}

// Constrain pins a point into the drawable region: below 1 pins to 1, at
// or past the extent pins to extent-1.
func (b Bounds) Constrain(v vmath.Vec2) vmath.Vec2 {
	return vmath.Vec2{
		X: constrain(v.X, float64(b.W)),
		Y: constrain(v.Y, float64(b.H)),
	}
}

func constrain(v, extent float64) float64 {
	switch {
	case v < 1:
		return 1
	case v >= extent:
		return extent - 1
	default:
		return v
	}
}
