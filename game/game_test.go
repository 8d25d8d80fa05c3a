package game

import (
	"strings"
	"testing"

	"github.com/vaudevilla1n/ping-pong/audio"
	"github.com/vaudevilla1n/ping-pong/modes"
	"github.com/vaudevilla1n/ping-pong/physics"
	"github.com/vaudevilla1n/ping-pong/vmath"
)

func TestStatusLine(t *testing.T) {
	e := &physics.Entity{
		Pos:   vmath.Vec2{X: 1, Y: 60},
		Size:  vmath.Vec2{X: 2, Y: 1},
		Delta: vmath.Vec2{X: 0.005, Y: 0.005},
	}
	b := physics.Bounds{W: 78, H: 22}

	got := statusLine(e, b, modes.Normal)
	want := "entity((1.000000, 60.000000), (3.000000, 61.000000)) " +
		"delta(0.005000, 0.005000) display: 78 x 22 (normal)"
	if got != want {
		t.Errorf("statusLine = %q, want %q", got, want)
	}
}

func TestStatusLineReportsMode(t *testing.T) {
	e := physics.NewEntity()
	b := physics.Bounds{W: 80, H: 24}

	for _, m := range []modes.Mode{modes.Normal, modes.Resize, modes.Speed, modes.Quit} {
		got := statusLine(e, b, m)
		if want := "(" + m.String() + ")"; !strings.HasSuffix(got, want) {
			t.Errorf("statusLine in %v = %q, want suffix %q", m, got, want)
		}
	}
}

func TestBlipFreqPerAxis(t *testing.T) {
	if got := blipFreq(physics.BounceX); got != audio.BlipWallX {
		t.Errorf("blipFreq(BounceX) = %v, want %v", got, audio.BlipWallX)
	}
	if got := blipFreq(physics.BounceY); got != audio.BlipWallY {
		t.Errorf("blipFreq(BounceY) = %v, want %v", got, audio.BlipWallY)
	}
}
