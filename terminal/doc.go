// Package terminal owns the controlling terminal: raw-mode session
// lifecycle, dimension tracking across SIGWINCH, non-blocking keystroke
// reads, and an ANSI render surface for cell-level drawing.
package terminal
