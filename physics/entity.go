// Package physics advances the bouncing entity through continuous
// cell-space coordinates against the discrete terminal bounds.
package physics

import "github.com/vaudevilla1n/ping-pong/vmath"

// Bounce identifies which axis, if any, reflected during a Move.
type Bounce uint8

const (
	BounceNone Bounce = iota
	BounceX
	BounceY
)

// Entity is the single bouncing rectangle. Pos and Delta are continuous;
// Size stays on whole positive cells.
type Entity struct {
	Pos   vmath.Vec2
	Delta vmath.Vec2
	Size  vmath.Vec2
}

// NewEntity returns the entity with its fixed startup defaults. The
// default position may lie outside the drawable region on small
// terminals; the first Move clamps it back in.
func NewEntity() *Entity {
	return &Entity{
		Pos:   vmath.Vec2{X: 1, Y: 60},
		Size:  vmath.Vec2{X: 2, Y: 1},
		Delta: vmath.Vec2{X: 0.005, Y: 0.005},
	}
}

// Move advances the entity one step and resolves wall collisions.
//
// The leading corner (next position) is tested before the trailing corner
// (next far corner); that ordering prevents tunneling when both corners
// would collide in one step. When both axes collide simultaneously the x
// axis reflects, keeping the bounce single-axis.
func (e *Entity) Move(b Bounds) Bounce {
	end := e.Pos.Add(e.Size)
	next := e.Pos.Add(e.Delta)
	nextEnd := end.Add(e.Delta)

	switch {
	case b.collide(next):
		axis := e.reflect(next, b)
		e.Pos = b.Constrain(next)
		return axis

	case b.collide(nextEnd):
		axis := e.reflect(nextEnd, b)
		// Pin the trailing edge to the boundary, not the leading one.
		e.Pos = b.Constrain(nextEnd).Sub(e.Size)
		return axis

	default:
		e.Pos = next
		return BounceNone
	}
}

// reflect negates the delta component on the colliding axis, x first.
func (e *Entity) reflect(at vmath.Vec2, b Bounds) Bounce {
	if b.collideX(at.X) {
		e.Delta.X = -e.Delta.X
		return BounceX
	}
	e.Delta.Y = -e.Delta.Y
	return BounceY
}

// CellDrawer draws one blank cell of the entity; the render surface
// satisfies it through a thin adapter.
type CellDrawer interface {
	DrawCell(x, y int)
}

// Draw paints every discrete cell of the entity's bounding box, skipping
// anything outside the drawable region. The containment invariant should
// make the skip unreachable; it guards against boundary-arithmetic slips.
func (e *Entity) Draw(d CellDrawer, b Bounds) {
	for y := int(e.Pos.Y); float64(y) < e.Pos.Y+e.Size.Y; y++ {
		for x := int(e.Pos.X); float64(x) < e.Pos.X+e.Size.X; x++ {
			if b.outOfBoundsX(float64(x)) || b.outOfBoundsY(float64(y)) {
				continue
			}
			d.DrawCell(x, y)
		}
	}
}
