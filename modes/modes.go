// Package modes interprets keystrokes against the active command mode
// and mutates the entity's parameters accordingly.
package modes

import (
	"fmt"

	"github.com/vaudevilla1n/ping-pong/physics"
)

// Mode is the command state machine's current state: how the next
// non-global keystroke will be interpreted.
type Mode uint8

const (
	Normal Mode = iota
	Resize
	Speed
	Quit
)

// MinEntitySize is the floor for both entity size axes.
const MinEntitySize = 1

func (m Mode) String() string {
	switch m {
	case Normal:
		return "normal"
	case Resize:
		return "resize"
	case Speed:
		return "speed"
	case Quit:
		return "quit"
	}
	panic(fmt.Sprintf("modes: Mode.String: invalid mode %d", uint8(m)))
}

// Handle processes one keystroke against the active mode and returns the
// mode for the next frame. ok is false when no key was pressed this
// frame, which changes nothing. Pure apart from entity mutation, so the
// whole transition table is testable without a terminal.
//
// 'q' and 'n' are global: Quit and Normal from any state. Quit is
// absorbing. Unrecognized keys leave both mode and entity untouched.
func Handle(m Mode, key byte, ok bool, e *physics.Entity, b physics.Bounds) Mode {
	if !ok {
		return m
	}

	switch key {
	case 'q':
		return Quit
	case 'n':
		return Normal
	}

	switch m {
	case Quit:
		return Quit

	case Normal:
		switch key {
		case 'r':
			return Resize
		case 's':
			return Speed
		}

	case Resize:
		switch key {
		case 'w':
			growEntity(e, b)
		case 's':
			shrinkEntity(e)
		}

	case Speed:
		switch key {
		case 'w':
			raiseSpeed(e, b)
		case 's':
			lowerSpeed(e)
		}

	default:
		panic(fmt.Sprintf("modes: Handle: invalid mode %d", uint8(m)))
	}

	return m
}

// growEntity adds one cell on each axis. A single axis at its ceiling
// blocks growth on both, keeping the rectangle's proportions.
func growEntity(e *physics.Entity, b physics.Bounds) {
	maxW, maxH := b.MaxEntitySize()
	if e.Size.X < float64(maxW) && e.Size.Y < float64(maxH) {
		e.Size.X++
		e.Size.Y++
	}
}

func shrinkEntity(e *physics.Entity) {
	if e.Size.X > MinEntitySize && e.Size.Y > MinEntitySize {
		e.Size.X--
		e.Size.Y--
	}
}

// raiseSpeed doubles both delta components, promoting a zero component to
// a unit seed first so a stalled entity can be restarted. Doubling is
// blocked when the result would exceed the drawable extent on either
// axis, so repeated presses approach the ceiling without passing it.
func raiseSpeed(e *physics.Entity, b physics.Bounds) {
	dx, dy := e.Delta.X, e.Delta.Y
	if dx == 0 {
		dx = 1
	}
	if dy == 0 {
		dy = 1
	}
	dx *= 2
	dy *= 2

	if dx > float64(b.W) || dy > float64(b.H) {
		return
	}
	e.Delta.X = dx
	e.Delta.Y = dy
}

// lowerSpeed halves both delta components, floored at zero: halving a
// positive value never reaches it.
func lowerSpeed(e *physics.Entity) {
	if e.Delta.X > 0 && e.Delta.Y > 0 {
		e.Delta.X /= 2
		e.Delta.Y /= 2
	}
}
