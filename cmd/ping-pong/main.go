package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/vaudevilla1n/ping-pong/audio"
	"github.com/vaudevilla1n/ping-pong/game"
	"github.com/vaudevilla1n/ping-pong/terminal"
)

var (
	colorFlag = flag.String("color", "auto", "Color mode: auto, truecolor, 256")
	soundFlag = flag.Bool("sound", true, "Blip on wall bounces")
)

func main() {
	// Panic recovery: restore the terminal before the stack trace, or the
	// trace lands on a raw-mode screen nobody can read.
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\nping-pong crashed: %v\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	var colorMode terminal.ColorMode
	switch *colorFlag {
	case "256":
		colorMode = terminal.ColorMode256
	case "truecolor", "true", "24bit":
		colorMode = terminal.ColorModeTrueColor
	default:
		colorMode = terminal.DetectColorMode()
	}

	session, err := terminal.Open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ping-pong: %v\n", err)
		os.Exit(1)
	}
	defer session.Close()

	surface := terminal.NewSurface(os.Stdout, colorMode)

	var sound *audio.SoundManager
	if *soundFlag {
		sound = audio.NewSoundManager()
		if err := sound.Initialize(); err != nil {
			sound = nil // no audio device, run silent
		} else {
			defer sound.Cleanup()
		}
	}

	g := game.New(session, surface, sound)
	if err := g.Run(); err != nil {
		// Leave raw mode before printing, then exit non-zero. Close is
		// idempotent, so the deferred call becomes a no-op.
		session.Close()
		fmt.Fprintf(os.Stderr, "ping-pong: %v\n", err)
		os.Exit(1)
	}
}
