package terminal

import (
	"bufio"
	"bytes"
	"testing"
)

func TestWriteInt(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0"},
		{7, "7"},
		{42, "42"},
		{255, "255"},
		{1024, "1024"},
		{-3, "0"}, // negative clamps to zero
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		w := bufio.NewWriter(&buf)
		writeInt(w, tt.n)
		w.Flush()
		if buf.String() != tt.want {
			t.Errorf("writeInt(%d) = %q, want %q", tt.n, buf.String(), tt.want)
		}
	}
}

func TestWriteCursorPos(t *testing.T) {
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	writeCursorPos(w, 12, 3)
	w.Flush()
	if got, want := buf.String(), "\x1b[3;12H"; got != want {
		t.Errorf("writeCursorPos = %q, want %q", got, want)
	}
}

func TestSurfaceClear(t *testing.T) {
	var buf bytes.Buffer
	s := NewSurface(&buf, ColorModeTrueColor)
	s.Clear()
	s.Flush()
	if got, want := buf.String(), "\x1b[H\x1b[2J"; got != want {
		t.Errorf("Clear = %q, want %q", got, want)
	}
}

func TestSurfaceDrawCellTrueColor(t *testing.T) {
	var buf bytes.Buffer
	s := NewSurface(&buf, ColorModeTrueColor)
	s.DrawCell(5, 2, White, ' ')
	s.Flush()

	want := "\x1b[2;5H\x1b[38;2;255;255;255m\x1b[48;2;255;255;255m \x1b[0m"
	if buf.String() != want {
		t.Errorf("DrawCell = %q, want %q", buf.String(), want)
	}
}

func TestSurfaceDrawCell256(t *testing.T) {
	var buf bytes.Buffer
	s := NewSurface(&buf, ColorMode256)
	s.DrawCell(1, 1, White, ' ')
	s.Flush()

	want := "\x1b[1;1H\x1b[38;5;231m\x1b[48;5;231m \x1b[0m"
	if buf.String() != want {
		t.Errorf("DrawCell = %q, want %q", buf.String(), want)
	}
}

func TestSurfaceCursorVisibility(t *testing.T) {
	var buf bytes.Buffer
	s := NewSurface(&buf, ColorModeTrueColor)
	s.SetCursorVisible(false)
	s.SetCursorVisible(true)
	s.Flush()
	if got, want := buf.String(), "\x1b[?25l\x1b[?25h"; got != want {
		t.Errorf("cursor visibility = %q, want %q", got, want)
	}
}

func TestSurfaceClearLine(t *testing.T) {
	var buf bytes.Buffer
	s := NewSurface(&buf, ColorModeTrueColor)
	s.ClearLine()
	s.Flush()
	if got, want := buf.String(), "\x1b[0K"; got != want {
		t.Errorf("ClearLine = %q, want %q", got, want)
	}
}

func TestRGB256Corners(t *testing.T) {
	tests := []struct {
		c    RGB
		want uint8
	}{
		{RGB{255, 255, 255}, 231}, // cube white
		{RGB{0, 0, 0}, 16},        // cube black
		{RGB{255, 0, 0}, 196},     // cube pure red
		{RGB{128, 128, 128}, 244}, // mid gray lands on the gray ramp
	}
	for _, tt := range tests {
		if got := rgb256(tt.c); got != tt.want {
			t.Errorf("rgb256(%+v) = %d, want %d", tt.c, got, tt.want)
		}
	}
}
