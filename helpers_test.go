package sapling

import (
	"fmt"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
)

// fakeRenderer records every draw call as a short string.
type fakeRenderer struct {
	ops      []string
	visible  bool
	shape    CursorShape
	presents int
}

func (r *fakeRenderer) Clear(c Color) { r.ops = append(r.ops, "clear") }
func (r *fakeRenderer) FillRect(rc Rect, c Color) {
	r.ops = append(r.ops, fmt.Sprintf("fill %d,%d,%d,%d", rc.X, rc.Y, rc.W, rc.H))
}
func (r *fakeRenderer) StrokeRect(rc Rect, c Color, thickness int) {
	r.ops = append(r.ops, fmt.Sprintf("stroke %d,%d,%d,%d/%d", rc.X, rc.Y, rc.W, rc.H, thickness))
}
func (r *fakeRenderer) DrawLine(p1, p2 Point, c Color) { r.ops = append(r.ops, "line") }
func (r *fakeRenderer) DrawText(rc Rect, s string, f Font, c Color, align TextAlign) {
	r.ops = append(r.ops, "text "+s)
}
func (r *fakeRenderer) MeasureText(s string, f Font) Size { return Size{W: len(s) * 8, H: int(f.Size)} }
func (r *fakeRenderer) Present()                          { r.presents++ }
func (r *fakeRenderer) SetCursorVisible(v bool)           { r.visible = v }
func (r *fakeRenderer) SetCursorShape(s CursorShape)      { r.shape = s }

func (r *fakeRenderer) reset() { r.ops = r.ops[:0] }

// probe is a control that logs the hooks it receives.
type probe struct {
	ControlBase
	name      string
	log       *[]string
	wantFocus bool
	drag      bool
	external  []Control
	onFocus   func()
	onTimer   func()
}

func newProbe(name string, loc Rect, z uint8, log *[]string) *probe {
	p := &probe{ControlBase: NewControlBase(loc), name: name, log: log}
	p.zOrder = z
	return p
}

func (p *probe) record(s string) {
	if p.log != nil {
		*p.log = append(*p.log, p.name+":"+s)
	}
}

func (p *probe) CanDrag() bool { return p.drag }
func (p *probe) OnMouseButton(e ButtonEvent) bool {
	if e.Pressed {
		p.record("down")
	} else {
		p.record("up")
	}
	return p.wantFocus
}
func (p *probe) OnMouseButtonExternal(e ButtonEvent, clicked Control) {
	p.record("external")
	p.external = append(p.external, clicked)
}
func (p *probe) OnFocusAcquired() {
	p.record("focus")
	if p.onFocus != nil {
		p.onFocus()
	}
}
func (p *probe) OnFocusLost()              { p.record("blur") }
func (p *probe) OnMouseEnter()             { p.record("enter") }
func (p *probe) OnMouseExit()              { p.record("exit") }
func (p *probe) OnMouseWheel(e WheelEvent) { p.record(fmt.Sprintf("wheel %d", e.DY)) }
func (p *probe) OnKeyboard(e KeyEvent)     { p.record("key") }
func (p *probe) OnTextInput(e TextInputEvent) {
	p.record("text " + e.Text)
}
func (p *probe) OnLeftClick(Point)   { p.record("click") }
func (p *probe) OnRightClick(Point)  { p.record("rclick") }
func (p *probe) OnMiddleClick(Point) { p.record("mclick") }
func (p *probe) OnElapsedTime() {
	p.record("tick")
	if p.onTimer != nil {
		p.onTimer()
	}
}
func (p *probe) OnHiddenChanged(h bool) { p.record(fmt.Sprintf("hidden %v", h)) }
func (p *probe) OnZOrderChanged()       { p.record("z") }
func (p *probe) OnWindowChanged()       { p.record("window") }
func (p *probe) OnLocationChanged(dx, dy int) {
	p.record(fmt.Sprintf("moved %d,%d", dx, dy))
}
func (p *probe) RenderImpl(r Renderer) { r.FillRect(p.Location(), p.Background()) }

// newTestWindow returns a 640x480 window drawing into a fake renderer and
// driven by a mock clock.
func newTestWindow(t *testing.T) (*Window, *fakeRenderer, *clock.Mock) {
	t.Helper()
	r := &fakeRenderer{}
	mock := clock.NewMock()
	cfg := DefaultConfig()
	cfg.Clock = mock
	w, err := NewWindow(r, cfg)
	if err != nil {
		t.Fatalf("NewWindow: %v", err)
	}
	return w, r, mock
}

func mustAdd(t *testing.T, w *Window, cs ...Control) {
	t.Helper()
	for _, c := range cs {
		if err := w.Add(c); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}
}

func click(w *Window, x, y int) {
	w.TranslateEvent(ButtonEvent{X: x, Y: y, Button: MouseButtonLeft, Pressed: true})
	w.TranslateEvent(ButtonEvent{X: x, Y: y, Button: MouseButtonLeft, Pressed: false})
}

func frame(w *Window, mock *clock.Mock, d time.Duration) {
	mock.Add(d)
	w.Render()
}

func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic in debug mode", name)
		}
	}()
	fn()
}
