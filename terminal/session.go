//go:build unix

package terminal

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Session owns the controlling terminal's state: the saved pre-raw
// attributes, the current dimensions, and the SIGWINCH watcher.
//
// Dimensions live in one packed atomic word so the watcher goroutine can
// swap them without readers ever seeing a torn update. The watcher does
// nothing else besides setting the pending-clear flag; the frame loop
// consumes that flag at a safe point via TakeResize.
type Session struct {
	in    *os.File
	out   *os.File
	inFd  int
	outFd int
	saved *term.State

	dims          atomic.Uint64 // cols in high 32 bits, rows in low
	resizePending atomic.Bool

	sigCh  chan os.Signal
	stopCh chan struct{}
	doneCh chan struct{}

	mu     sync.Mutex
	opened bool
	closed bool
}

// Open validates that stdin and stdout are interactive terminals, enters
// raw mode, makes stdin non-blocking, records the current window size and
// starts the resize watcher. On error nothing is left modified.
func Open() (*Session, error) {
	s := &Session{
		in:    os.Stdin,
		out:   os.Stdout,
		inFd:  int(os.Stdin.Fd()),
		outFd: int(os.Stdout.Fd()),
	}

	if !term.IsTerminal(s.inFd) {
		return nil, fmt.Errorf("stdin is not a terminal")
	}
	if !term.IsTerminal(s.outFd) {
		return nil, fmt.Errorf("stdout is not a terminal")
	}

	saved, err := term.MakeRaw(s.inFd)
	if err != nil {
		return nil, fmt.Errorf("enter raw mode: %w", err)
	}
	s.saved = saved

	if err := unix.SetNonblock(s.inFd, true); err != nil {
		term.Restore(s.inFd, s.saved)
		return nil, fmt.Errorf("set stdin non-blocking: %w", err)
	}

	cols, rows, err := queryWinsize(s.outFd)
	if err != nil {
		unix.SetNonblock(s.inFd, false)
		term.Restore(s.inFd, s.saved)
		return nil, err
	}
	s.storeDims(cols, rows)

	s.sigCh = make(chan os.Signal, 1)
	s.stopCh = make(chan struct{})
	s.doneCh = make(chan struct{})
	signal.Notify(s.sigCh, syscall.SIGWINCH)
	go s.watchResize()

	s.opened = true
	return s, nil
}

// Close restores the terminal. Safe to call multiple times; only the
// first call after a successful Open does anything.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.opened || s.closed {
		return
	}

	signal.Stop(s.sigCh)
	close(s.stopCh)
	<-s.doneCh

	unix.SetNonblock(s.inFd, false)
	term.Restore(s.inFd, s.saved)
	s.closed = true
}

// Size returns the current terminal dimensions in cells.
func (s *Session) Size() (cols, rows int) {
	packed := s.dims.Load()
	return int(packed >> 32), int(packed & 0xFFFFFFFF)
}

// DrawableSize returns the terminal dimensions minus the last column and
// row, which the status line owns. Always derived fresh so every caller
// sees post-resize geometry immediately.
func (s *Session) DrawableSize() (w, h int) {
	cols, rows := s.Size()
	return cols - 1, rows - 1
}

// TakeResize reports whether a resize arrived since the last call and
// clears the flag. The caller is expected to clear the screen when true,
// so content laid out for the old geometry does not linger.
func (s *Session) TakeResize() bool {
	return s.resizePending.Swap(false)
}

// ReadKey performs a non-blocking single-byte read from stdin. ok is
// false when no key is pending this frame. A read error other than
// "no data" is an environment failure the caller should treat as fatal.
func (s *Session) ReadKey() (b byte, ok bool, err error) {
	var buf [1]byte
	for {
		n, err := unix.Read(s.inFd, buf[:])
		if err == unix.EINTR {
			continue
		}
		if err == unix.EAGAIN {
			return 0, false, nil
		}
		if err != nil {
			return 0, false, fmt.Errorf("read stdin: %w", err)
		}
		if n == 0 {
			return 0, false, nil
		}
		return buf[0], true, nil
	}
}

// watchResize refreshes the cached dimensions on every SIGWINCH and
// requests a clear. Nothing heavier happens here; the frame loop polls
// the flag at a safe point.
func (s *Session) watchResize() {
	defer close(s.doneCh)
	for {
		select {
		case <-s.stopCh:
			return
		case <-s.sigCh:
			cols, rows, err := queryWinsize(s.outFd)
			if err != nil || cols <= 0 || rows <= 0 {
				continue
			}
			s.storeDims(cols, rows)
			s.resizePending.Store(true)
		}
	}
}

func (s *Session) storeDims(cols, rows int) {
	s.dims.Store(uint64(uint32(cols))<<32 | uint64(uint32(rows)))
}

// queryWinsize asks the terminal driver for the current window size.
func queryWinsize(fd int) (cols, rows int, err error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, fmt.Errorf("query window size: %w", err)
	}
	return int(ws.Col), int(ws.Row), nil
}
