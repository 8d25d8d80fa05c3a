package terminal

import "bufio"

// Pre-allocated ANSI sequence fragments (avoid allocations during render)
var (
	csiClear     = []byte("\x1b[H\x1b[2J") // home, then erase display
	csiClearLine = []byte("\x1b[0K")
	csiReset     = []byte("\x1b[0m")
	csiRIS       = []byte("\x1bc") // Reset to Initial State (emergency)

	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")
	csiCursorPos  = []byte("\x1b[") // followed by row;colH

	// Color prefixes
	csiFg256 = []byte("\x1b[38;5;") // followed by N;m
	csiBg256 = []byte("\x1b[48;5;") // followed by N;m
	csiFgRGB = []byte("\x1b[38;2;") // followed by R;G;B;m
	csiBgRGB = []byte("\x1b[48;2;") // followed by R;G;B;m
)

// writeInt writes an integer without allocation
// Optimized for terminal values (0-255 common, 0-999 typical max)
func writeInt(w *bufio.Writer, n int) {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		w.WriteByte(byte(n) + '0')
		return
	}
	if n < 100 {
		w.WriteByte(byte(n/10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	if n < 1000 {
		w.WriteByte(byte(n/100) + '0')
		w.WriteByte(byte(n/10%10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	// Fallback for >999 (rare)
	var buf [5]byte
	i := 4
	for n > 0 {
		buf[i] = byte(n%10) + '0'
		n /= 10
		i--
	}
	w.Write(buf[i+1:])
}

// writeCursorPos writes a cursor positioning sequence.
// Coordinates are 1-indexed cell-space, matching what the animation uses.
func writeCursorPos(w *bufio.Writer, x, y int) {
	w.Write(csiCursorPos)
	writeInt(w, y)
	w.WriteByte(';')
	writeInt(w, x)
	w.WriteByte('H')
}
