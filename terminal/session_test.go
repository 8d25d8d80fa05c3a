//go:build unix

package terminal

import "testing"

func TestDimsPacking(t *testing.T) {
	var s Session
	s.storeDims(132, 43)

	cols, rows := s.Size()
	if cols != 132 || rows != 43 {
		t.Errorf("Size = (%d, %d), want (132, 43)", cols, rows)
	}

	w, h := s.DrawableSize()
	if w != 131 || h != 42 {
		t.Errorf("DrawableSize = (%d, %d), want (131, 42)", w, h)
	}
}

func TestDimsSwapIsWhole(t *testing.T) {
	// A resize must replace both extents in one shot; readers never see
	// the old columns paired with the new rows.
	var s Session
	s.storeDims(80, 24)
	s.storeDims(200, 50)

	cols, rows := s.Size()
	if cols != 200 || rows != 50 {
		t.Errorf("Size = (%d, %d), want (200, 50)", cols, rows)
	}
}

func TestTakeResizeConsumesFlag(t *testing.T) {
	var s Session
	if s.TakeResize() {
		t.Error("TakeResize true before any resize")
	}

	s.resizePending.Store(true)
	if !s.TakeResize() {
		t.Error("TakeResize false with resize pending")
	}
	if s.TakeResize() {
		t.Error("TakeResize did not consume the flag")
	}
}

func TestCloseBeforeOpenIsNoop(t *testing.T) {
	// Teardown must not restore anything if initialization never completed.
	var s Session
	s.Close()
	if s.closed {
		t.Error("Close marked an unopened session closed")
	}
}
