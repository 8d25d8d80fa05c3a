package terminal

import (
	"os"
	"strings"
)

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorMode256       ColorMode = iota // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

// RGB represents a 24-bit color
type RGB struct {
	R, G, B uint8
}

var (
	White = RGB{0xFF, 0xFF, 0xFF}
	Black = RGB{0, 0, 0}
)

// Color cube values for the 6x6x6 palette (indices 16-231)
var cubeValues = [6]uint8{0, 95, 135, 175, 215, 255}

// grayscaleStart is the first grayscale index (232-255 = 24 shades)
const grayscaleStart = 232

// rgb256 finds the nearest 256-color palette index for an RGB value.
// Used when the terminal does not advertise truecolor support.
func rgb256(c RGB) uint8 {
	// Cube candidate
	ci := [3]uint8{cubeIndex(c.R), cubeIndex(c.G), cubeIndex(c.B)}
	cubeDist := sqDist(c.R, cubeValues[ci[0]]) +
		sqDist(c.G, cubeValues[ci[1]]) +
		sqDist(c.B, cubeValues[ci[2]])
	cube := 16 + 36*int(ci[0]) + 6*int(ci[1]) + int(ci[2])

	// Grayscale candidate: levels 8, 18, ... 238
	avg := (int(c.R) + int(c.G) + int(c.B)) / 3
	gi := (avg - 8) / 10
	if gi < 0 {
		gi = 0
	}
	if gi > 23 {
		gi = 23
	}
	gray := uint8(8 + 10*gi)
	grayDist := sqDist(c.R, gray) + sqDist(c.G, gray) + sqDist(c.B, gray)

	if grayDist < cubeDist {
		return uint8(grayscaleStart + gi)
	}
	return uint8(cube)
}

// cubeIndex maps a 0-255 channel to the nearest cube level 0-5
func cubeIndex(v uint8) uint8 {
	best := uint8(0)
	bestDist := sqDist(v, cubeValues[0])
	for i := uint8(1); i < 6; i++ {
		if d := sqDist(v, cubeValues[i]); d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

func sqDist(a, b uint8) int {
	d := int(a) - int(b)
	return d * d
}

// DetectColorMode determines terminal color capability from environment
func DetectColorMode() ColorMode {
	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}

	if os.Getenv("KITTY_WINDOW_ID") != "" ||
		os.Getenv("KONSOLE_VERSION") != "" ||
		os.Getenv("ITERM_SESSION_ID") != "" ||
		os.Getenv("ALACRITTY_WINDOW_ID") != "" ||
		os.Getenv("WEZTERM_PANE") != "" {
		return ColorModeTrueColor
	}

	term := os.Getenv("TERM")
	if strings.Contains(term, "truecolor") ||
		strings.Contains(term, "24bit") ||
		strings.Contains(term, "direct") {
		return ColorModeTrueColor
	}

	return ColorMode256
}
