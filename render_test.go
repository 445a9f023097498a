package sapling

import (
	"testing"
	"time"
)

func TestRenderAscendingZOrder(t *testing.T) {
	w, r, mock := newTestWindow(t)
	mk := func(x int, z uint8) *probe { return newProbe("", Rect{x, 0, 5, 5}, z, nil) }
	mustAdd(t, w, mk(9, 9), mk(5, 5), mk(0, 0), mk(6, 5), mk(1, 0))

	frame(w, mock, time.Millisecond)
	want := []string{
		"clear",
		"fill 0,0,5,5",
		"fill 1,0,5,5",
		"fill 5,0,5,5",
		"fill 6,0,5,5",
		"fill 9,0,5,5",
	}
	if !equalStrings(r.ops, want) {
		t.Errorf("ops = %v, want %v", r.ops, want)
	}
	if r.presents != 1 {
		t.Errorf("presents = %d, want 1", r.presents)
	}
}

func TestRenderBorderAfterContent(t *testing.T) {
	w, r, mock := newTestWindow(t)
	p := newProbe("p", Rect{10, 10, 40, 20}, 0, nil)
	mustAdd(t, w, p)
	p.SetBorderSize(2)
	p.SetBorderColor(ColorWhite)

	frame(w, mock, time.Millisecond)
	want := []string{"clear", "fill 10,10,40,20", "stroke 10,10,40,20/2"}
	if !equalStrings(r.ops, want) {
		t.Errorf("ops = %v, want %v", r.ops, want)
	}
}

func TestRenderSkipsHidden(t *testing.T) {
	w, r, mock := newTestWindow(t)
	a := newProbe("a", Rect{0, 0, 5, 5}, 0, nil)
	b := newProbe("b", Rect{10, 0, 5, 5}, 0, nil)
	mustAdd(t, w, a, b)
	a.SetHidden(true)
	frame(w, mock, time.Millisecond)
	if !equalStrings(r.ops, []string{"clear", "fill 10,0,5,5"}) {
		t.Errorf("ops = %v", r.ops)
	}
}

func TestRenderSuspendedWhenMinimizedOrClosed(t *testing.T) {
	w, r, mock := newTestWindow(t)
	mustAdd(t, w, newProbe("p", Rect{0, 0, 5, 5}, 0, nil))

	w.TranslateEvent(WindowStateEvent{State: WindowMinimized})
	frame(w, mock, time.Millisecond)
	if len(r.ops) != 0 || r.presents != 0 {
		t.Errorf("minimized window drew %v", r.ops)
	}

	w.TranslateEvent(WindowStateEvent{State: WindowRestored})
	frame(w, mock, time.Millisecond)
	if r.presents != 1 {
		t.Errorf("restored presents = %d, want 1", r.presents)
	}

	w.TranslateEvent(QuitEvent{})
	frame(w, mock, time.Millisecond)
	if r.presents != 1 {
		t.Error("closed window should not present")
	}
	if w.Frame() != 3 {
		t.Errorf("Frame = %d, want 3", w.Frame())
	}
}

func TestCursorShape(t *testing.T) {
	w, r, _ := newTestWindow(t)
	w.SetCursorShape(CursorText)
	if r.shape != CursorText || w.CursorShape() != CursorText {
		t.Errorf("shape = %v", r.shape)
	}
}

func TestNewWindowRequiresRenderer(t *testing.T) {
	if _, err := NewWindow(nil, DefaultConfig()); err != ErrNoRenderer {
		t.Errorf("err = %v, want ErrNoRenderer", err)
	}
	cfg := DefaultConfig()
	cfg.Width = 0
	if _, err := NewWindow(&fakeRenderer{}, cfg); err == nil {
		t.Error("expected validation error")
	}
}
