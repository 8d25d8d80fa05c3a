package terminal

import (
	"bufio"
	"io"
)

// Surface is the render surface: pure output formatting over a buffered
// writer, no state of its own beyond cursor side effects in the terminal.
// Callers must Flush once per frame; a write error there is fatal for the
// whole process (broken output pipe).
type Surface struct {
	w    *bufio.Writer
	mode ColorMode
}

// NewSurface creates a render surface writing to w.
func NewSurface(w io.Writer, mode ColorMode) *Surface {
	return &Surface{
		w:    bufio.NewWriterSize(w, 32*1024),
		mode: mode,
	}
}

// Begin prepares the terminal for animation: blank screen, hidden cursor.
func (s *Surface) Begin() {
	s.Clear()
	s.SetCursorVisible(false)
}

// End undoes Begin so the shell gets a usable screen back.
func (s *Surface) End() {
	s.Reset()
	s.SetCursorVisible(true)
	s.Clear()
}

// Clear homes the cursor and erases the whole display.
func (s *Surface) Clear() {
	s.w.Write(csiClear)
}

// ClearLine erases from the cursor to the end of the line.
func (s *Surface) ClearLine() {
	s.w.Write(csiClearLine)
}

// MoveCursor positions the cursor at a 1-indexed cell.
func (s *Surface) MoveCursor(x, y int) {
	writeCursorPos(s.w, x, y)
}

// SetColor sets foreground and background, downconverting to the
// 256-color palette when the terminal lacks truecolor.
func (s *Surface) SetColor(fg, bg RGB) {
	if s.mode == ColorModeTrueColor {
		s.writeRGB(csiFgRGB, fg)
		s.writeRGB(csiBgRGB, bg)
		return
	}
	s.write256(csiFg256, fg)
	s.write256(csiBg256, bg)
}

// Reset restores default style so later writes are unaffected.
func (s *Surface) Reset() {
	s.w.Write(csiReset)
}

// SetCursorVisible shows or hides the cursor.
func (s *Surface) SetCursorVisible(visible bool) {
	if visible {
		s.w.Write(csiCursorShow)
	} else {
		s.w.Write(csiCursorHide)
	}
}

// DrawCell positions, colors, writes one glyph and resets style.
func (s *Surface) DrawCell(x, y int, c RGB, glyph byte) {
	s.MoveCursor(x, y)
	s.SetColor(c, c)
	s.w.WriteByte(glyph)
	s.Reset()
}

// WriteString writes plain text at the current cursor position.
func (s *Surface) WriteString(str string) {
	s.w.WriteString(str)
}

// Flush pushes buffered output to the terminal.
func (s *Surface) Flush() error {
	return s.w.Flush()
}

func (s *Surface) writeRGB(prefix []byte, c RGB) {
	s.w.Write(prefix)
	writeInt(s.w, int(c.R))
	s.w.WriteByte(';')
	writeInt(s.w, int(c.G))
	s.w.WriteByte(';')
	writeInt(s.w, int(c.B))
	s.w.WriteByte('m')
}

func (s *Surface) write256(prefix []byte, c RGB) {
	s.w.Write(prefix)
	writeInt(s.w, int(rgb256(c)))
	s.w.WriteByte('m')
}
