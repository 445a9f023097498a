// Package saplingtest provides a recording Renderer and helpers for testing
// code built on sapling without a display.
//
//	w, r, clk := saplingtest.NewWindow(t)
//	btn, _ := widgets.NewButton(w, sapling.Rect{X: 0, Y: 0, W: 80, H: 24}, "OK")
//	saplingtest.Click(w, 10, 10)
//	saplingtest.Advance(w, clk, time.Second)
//	r.Texts() // []string{"OK"}
package saplingtest

import (
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/mattn/go-runewidth"

	"github.com/phanxgames/sapling"
)

// CharWidth is the advance MeasureText assigns to one terminal column.
const CharWidth = 8

// OpKind names a recorded drawing call.
type OpKind string

const (
	OpClear  OpKind = "clear"
	OpFill   OpKind = "fill"
	OpStroke OpKind = "stroke"
	OpLine   OpKind = "line"
	OpText   OpKind = "text"
)

// Op is one recorded drawing call. Only the fields relevant to Kind are set.
type Op struct {
	Kind      OpKind
	Rect      sapling.Rect
	From, To  sapling.Point
	Color     sapling.Color
	Thickness int
	Text      string
	Align     sapling.TextAlign
}

// Renderer records every call made to it. It implements sapling.Renderer,
// sapling.CursorController and sapling.Screenshotter.
type Renderer struct {
	ops []Op

	// Frames counts Present calls.
	Frames int

	CursorVisible bool
	Cursor        sapling.CursorShape
	Screenshots   []string
}

// NewRenderer returns an empty recording renderer.
func NewRenderer() *Renderer {
	return &Renderer{CursorVisible: true}
}

func (r *Renderer) Clear(c sapling.Color) {
	r.ops = append(r.ops, Op{Kind: OpClear, Color: c})
}

func (r *Renderer) FillRect(rc sapling.Rect, c sapling.Color) {
	r.ops = append(r.ops, Op{Kind: OpFill, Rect: rc, Color: c})
}

func (r *Renderer) StrokeRect(rc sapling.Rect, c sapling.Color, thickness int) {
	r.ops = append(r.ops, Op{Kind: OpStroke, Rect: rc, Color: c, Thickness: thickness})
}

func (r *Renderer) DrawLine(p1, p2 sapling.Point, c sapling.Color) {
	r.ops = append(r.ops, Op{Kind: OpLine, From: p1, To: p2, Color: c})
}

func (r *Renderer) DrawText(rc sapling.Rect, s string, f sapling.Font, c sapling.Color, align sapling.TextAlign) {
	r.ops = append(r.ops, Op{Kind: OpText, Rect: rc, Text: s, Color: c, Align: align})
}

// MeasureText gives every column CharWidth units and every line the font
// size in height, so East Asian wide characters measure twice as wide.
func (r *Renderer) MeasureText(s string, f sapling.Font) sapling.Size {
	h := int(f.Size)
	if h <= 0 {
		h = int(sapling.DefaultFont.Size)
	}
	return sapling.Size{W: runewidth.StringWidth(s) * CharWidth, H: h}
}

func (r *Renderer) Present() { r.Frames++ }

func (r *Renderer) SetCursorVisible(visible bool)            { r.CursorVisible = visible }
func (r *Renderer) SetCursorShape(shape sapling.CursorShape) { r.Cursor = shape }
func (r *Renderer) Screenshot(label string)                  { r.Screenshots = append(r.Screenshots, label) }

// Ops returns the calls recorded since the last Reset.
func (r *Renderer) Ops() []Op { return r.ops }

// Reset discards recorded calls.
func (r *Renderer) Reset() { r.ops = r.ops[:0] }

// Texts returns the strings drawn, in order.
func (r *Renderer) Texts() []string {
	var out []string
	for _, op := range r.ops {
		if op.Kind == OpText {
			out = append(out, op.Text)
		}
	}
	return out
}

// Count returns how many calls of kind were recorded.
func (r *Renderer) Count(kind OpKind) int {
	n := 0
	for _, op := range r.ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Filled reports whether rc was filled with c since the last Reset.
func (r *Renderer) Filled(rc sapling.Rect, c sapling.Color) bool {
	for _, op := range r.ops {
		if op.Kind == OpFill && op.Rect == rc && op.Color == c {
			return true
		}
	}
	return false
}

// NewWindow returns a 640x480 window backed by a recording renderer and a
// mock clock. Optional fns adjust the config before the window is built.
func NewWindow(tb testing.TB, fns ...func(*sapling.Config)) (*sapling.Window, *Renderer, *clock.Mock) {
	tb.Helper()
	r := NewRenderer()
	mock := clock.NewMock()
	cfg := sapling.DefaultConfig()
	cfg.Clock = mock
	for _, fn := range fns {
		fn(&cfg)
	}
	w, err := sapling.NewWindow(r, cfg)
	if err != nil {
		tb.Fatalf("saplingtest: NewWindow: %v", err)
	}
	return w, r, mock
}

// Move sends pointer motion to (x, y) with no buttons held. The relative
// delta is computed from the window's last pointer position.
func Move(w *sapling.Window, x, y int) {
	p := w.Pointer()
	w.TranslateEvent(sapling.MotionEvent{X: x, Y: y, RelX: x - p.X, RelY: y - p.Y})
}

// Drag sends motion to (x, y) with the left button held.
func Drag(w *sapling.Window, x, y int) {
	p := w.Pointer()
	held := sapling.ButtonMask(0).With(sapling.MouseButtonLeft)
	w.TranslateEvent(sapling.MotionEvent{X: x, Y: y, RelX: x - p.X, RelY: y - p.Y, Buttons: held})
}

// Press sends a left-button press at (x, y).
func Press(w *sapling.Window, x, y int) {
	w.TranslateEvent(sapling.ButtonEvent{X: x, Y: y, Button: sapling.MouseButtonLeft, Pressed: true})
}

// Release sends a left-button release at (x, y).
func Release(w *sapling.Window, x, y int) {
	w.TranslateEvent(sapling.ButtonEvent{X: x, Y: y, Button: sapling.MouseButtonLeft, Pressed: false})
}

// Click moves to (x, y) and sends a left press and release there.
func Click(w *sapling.Window, x, y int) {
	Move(w, x, y)
	Press(w, x, y)
	Release(w, x, y)
}

// Key sends a press and release of k.
func Key(w *sapling.Window, k sapling.Key) {
	w.TranslateEvent(sapling.KeyEvent{Key: k, Pressed: true})
	w.TranslateEvent(sapling.KeyEvent{Key: k, Pressed: false})
}

// Type sends s as committed text input.
func Type(w *sapling.Window, s string) {
	w.TranslateEvent(sapling.TextInputEvent{Text: s})
}

// Wheel scrolls by dy at (x, y). Positive dy scrolls up.
func Wheel(w *sapling.Window, x, y, dy int) {
	w.TranslateEvent(sapling.WheelEvent{X: x, Y: y, DY: dy})
}

// Advance moves the mock clock forward by d and renders one frame.
func Advance(w *sapling.Window, mock *clock.Mock, d time.Duration) {
	mock.Add(d)
	w.Render()
}
