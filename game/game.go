// Package game runs the frame loop: clear, advance, draw, report, read
// one command, repeat until the quit mode.
package game

import (
	"fmt"

	"github.com/vaudevilla1n/ping-pong/audio"
	"github.com/vaudevilla1n/ping-pong/modes"
	"github.com/vaudevilla1n/ping-pong/physics"
	"github.com/vaudevilla1n/ping-pong/terminal"
)

// Game wires the terminal session, render surface, entity and command
// state machine into a single-threaded cooperative loop.
type Game struct {
	session *terminal.Session
	surface *terminal.Surface
	entity  *physics.Entity
	mode    modes.Mode
	sound   *audio.SoundManager // nil when running silent
}

// New creates a game over an opened session and surface. sound may be
// nil to disable bounce blips.
func New(session *terminal.Session, surface *terminal.Surface, sound *audio.SoundManager) *Game {
	return &Game{
		session: session,
		surface: surface,
		entity:  physics.NewEntity(),
		mode:    modes.Normal,
		sound:   sound,
	}
}

// Run drives frames until the mode becomes Quit or the terminal fails.
// There is no frame limiter; the loop runs as fast as the terminal
// accepts output.
func (g *Game) Run() error {
	g.surface.Begin()
	defer func() {
		g.surface.End()
		g.surface.Flush()
	}()

	for {
		// The resize watcher only flags; the requested wipe happens
		// here, at a safe point, before anything draws against the
		// new extents.
		if g.session.TakeResize() {
			g.surface.Clear()
		}

		// Every frame starts blank; the previous entity cells are not
		// erased individually.
		g.surface.Clear()

		w, h := g.session.DrawableSize()
		bounds := physics.Bounds{W: w, H: h}

		if axis := g.entity.Move(bounds); axis != physics.BounceNone && g.sound != nil {
			g.sound.PlayBlip(blipFreq(axis))
		}
		g.entity.Draw(surfaceDrawer{g.surface}, bounds)
		g.drawStatus(bounds)

		if err := g.surface.Flush(); err != nil {
			return fmt.Errorf("write to terminal: %w", err)
		}

		key, ok, err := g.session.ReadKey()
		if err != nil {
			return err
		}
		g.mode = modes.Handle(g.mode, key, ok, g.entity, bounds)

		if g.mode == modes.Quit {
			return nil
		}
	}
}

// drawStatus prints one line of plain text on the bottom row.
func (g *Game) drawStatus(b physics.Bounds) {
	g.surface.MoveCursor(1, b.H)
	g.surface.ClearLine()
	g.surface.WriteString(statusLine(g.entity, b, g.mode))
}

// statusLine reports the entity's corners, delta, the display size and
// the active mode.
func statusLine(e *physics.Entity, b physics.Bounds, m modes.Mode) string {
	end := e.Pos.Add(e.Size)
	return fmt.Sprintf("entity((%f, %f), (%f, %f)) delta(%f, %f) display: %d x %d (%s)",
		e.Pos.X, e.Pos.Y,
		end.X, end.Y,
		e.Delta.X, e.Delta.Y,
		b.W, b.H,
		m)
}

// blipFreq maps a bounce axis to its blip pitch.
func blipFreq(axis physics.Bounce) float64 {
	if axis == physics.BounceX {
		return audio.BlipWallX
	}
	return audio.BlipWallY
}

// surfaceDrawer adapts the render surface to the physics CellDrawer:
// every entity cell is a white blank.
type surfaceDrawer struct {
	s *terminal.Surface
}

func (d surfaceDrawer) DrawCell(x, y int) {
	d.s.DrawCell(x, y, terminal.White, ' ')
}
