package sapling

import (
	"errors"
	"testing"
)

// --- Hit testing ---

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 100, H: 50}

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"inside", Point{50, 40}, true},
		{"top-left corner", Point{10, 20}, true},
		{"bottom-right corner", Point{110, 70}, true},
		{"outside left", Point{9, 40}, false},
		{"outside right", Point{111, 40}, false},
		{"outside top", Point{50, 19}, false},
		{"outside bottom", Point{50, 71}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.want {
				t.Errorf("Rect.Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestHitTestPicksTopmost(t *testing.T) {
	w, _, _ := newTestWindow(t)
	low := newProbe("low", Rect{0, 0, 100, 100}, 0, nil)
	high := newProbe("high", Rect{50, 50, 100, 100}, 3, nil)
	mustAdd(t, w, low, high)

	tests := []struct {
		name string
		p    Point
		want Control
	}{
		{"only low", Point{10, 10}, low},
		{"overlap", Point{75, 75}, high},
		{"only high", Point{140, 140}, high},
		{"empty", Point{300, 300}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.ControlAt(tt.p); got != tt.want {
				t.Errorf("ControlAt(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestHitTestEqualZLaterWins(t *testing.T) {
	w, _, _ := newTestWindow(t)
	first := newProbe("first", Rect{0, 0, 50, 50}, 0, nil)
	second := newProbe("second", Rect{0, 0, 50, 50}, 0, nil)
	mustAdd(t, w, first, second)
	if got := w.ControlAt(Point{10, 10}); got != second {
		t.Errorf("expected later-added control, got %v", got)
	}
}

func TestHitTestSkipsHidden(t *testing.T) {
	w, _, _ := newTestWindow(t)
	low := newProbe("low", Rect{0, 0, 100, 100}, 0, nil)
	high := newProbe("high", Rect{0, 0, 100, 100}, 1, nil)
	mustAdd(t, w, low, high)
	high.SetHidden(true)
	if got := w.ControlAt(Point{10, 10}); got != low {
		t.Errorf("expected low, got %v", got)
	}
}

// --- Focus arbitration ---

func TestClickDeliversToSingleControl(t *testing.T) {
	var log []string
	w, _, _ := newTestWindow(t)
	low := newProbe("low", Rect{0, 0, 100, 100}, 0, &log)
	high := newProbe("high", Rect{10, 10, 20, 20}, 1, &log)
	mustAdd(t, w, low, high)

	click(w, 15, 15)
	want := []string{"high:down", "high:up", "high:click"}
	if !equalStrings(log, want) {
		t.Errorf("log = %v, want %v", log, want)
	}
}

func TestClickFocusTransfer(t *testing.T) {
	var log []string
	w, _, _ := newTestWindow(t)
	a := newProbe("a", Rect{0, 0, 50, 50}, 0, &log)
	b := newProbe("b", Rect{100, 0, 50, 50}, 0, &log)
	a.wantFocus, b.wantFocus = true, true
	mustAdd(t, w, a, b)

	w.TranslateEvent(ButtonEvent{X: 10, Y: 10, Button: MouseButtonLeft, Pressed: true})
	if w.Focus() != a || !a.HasFocus() {
		t.Fatal("a should have focus")
	}

	log = nil
	w.TranslateEvent(ButtonEvent{X: 110, Y: 10, Button: MouseButtonLeft, Pressed: true})
	want := []string{"b:down", "a:blur", "b:focus"}
	if !equalStrings(log, want) {
		t.Errorf("log = %v, want %v", log, want)
	}
	if w.Focus() != b || a.HasFocus() || !b.HasFocus() {
		t.Error("focus should have moved to b")
	}
}

func TestExternalClickNotification(t *testing.T) {
	var log []string
	w, _, _ := newTestWindow(t)
	popup := newProbe("popup", Rect{0, 0, 50, 50}, 0, &log)
	popup.wantFocus = true
	label := newProbe("label", Rect{100, 0, 50, 50}, 0, &log)
	mustAdd(t, w, popup, label)
	if err := w.SetFocus(popup); err != nil {
		t.Fatal(err)
	}

	log = nil
	w.TranslateEvent(ButtonEvent{X: 110, Y: 10, Button: MouseButtonLeft, Pressed: true})
	want := []string{"label:down", "popup:external"}
	if !equalStrings(log, want) {
		t.Errorf("log = %v, want %v", log, want)
	}
	if len(popup.external) != 1 || popup.external[0] != label {
		t.Errorf("external clicked = %v, want label", popup.external)
	}
	if w.Focus() != popup {
		t.Error("focus should stay with popup")
	}

	// Empty space reports a nil clicked control.
	w.TranslateEvent(ButtonEvent{X: 400, Y: 400, Button: MouseButtonLeft, Pressed: true})
	if len(popup.external) != 2 || popup.external[1] != nil {
		t.Errorf("external clicked = %v, want trailing nil", popup.external)
	}

	// Releases are not reported.
	log = nil
	w.TranslateEvent(ButtonEvent{X: 400, Y: 400, Button: MouseButtonLeft, Pressed: false})
	if len(log) != 0 {
		t.Errorf("release should not notify, got %v", log)
	}
}

func TestClickOnFocusHolderIsNotExternal(t *testing.T) {
	var log []string
	w, _, _ := newTestWindow(t)
	p := newProbe("p", Rect{0, 0, 50, 50}, 0, &log)
	mustAdd(t, w, p)
	_ = w.SetFocus(p)
	log = nil
	w.TranslateEvent(ButtonEvent{X: 10, Y: 10, Button: MouseButtonLeft, Pressed: true})
	if !equalStrings(log, []string{"p:down"}) {
		t.Errorf("log = %v, want [p:down]", log)
	}
}

func TestFocusHookMayRedirect(t *testing.T) {
	var log []string
	w, _, _ := newTestWindow(t)
	a := newProbe("a", Rect{0, 0, 50, 50}, 0, &log)
	b := newProbe("b", Rect{100, 0, 50, 50}, 0, &log)
	mustAdd(t, w, a, b)
	a.onFocus = func() { _ = w.SetFocus(b) }
	_ = w.SetFocus(a)
	if w.Focus() != b {
		t.Errorf("focus = %v, want b", w.Focus())
	}
	want := []string{"a:focus", "a:blur", "b:focus"}
	if !equalStrings(log, want) {
		t.Errorf("log = %v, want %v", log, want)
	}
}

func TestSetFocusNilClears(t *testing.T) {
	var log []string
	w, _, _ := newTestWindow(t)
	a := newProbe("a", Rect{}, 0, &log)
	mustAdd(t, w, a)
	_ = w.SetFocus(a)
	_ = w.SetFocus(nil)
	if w.Focus() != nil || a.HasFocus() {
		t.Error("focus should be cleared")
	}
	if !equalStrings(log, []string{"a:focus", "a:blur"}) {
		t.Errorf("log = %v", log)
	}
}

func TestSetFocusUnregistered(t *testing.T) {
	w, _, _ := newTestWindow(t)
	p := newProbe("p", Rect{}, 0, nil)
	if err := w.SetFocus(p); !errors.Is(err, ErrNotRegistered) {
		t.Errorf("SetFocus = %v", err)
	}
}

// --- Click synthesis ---

func TestButtonClicks(t *testing.T) {
	tests := []struct {
		button MouseButton
		want   string
	}{
		{MouseButtonLeft, "p:click"},
		{MouseButtonRight, "p:rclick"},
		{MouseButtonMiddle, "p:mclick"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			var log []string
			w, _, _ := newTestWindow(t)
			p := newProbe("p", Rect{0, 0, 50, 50}, 0, &log)
			mustAdd(t, w, p)
			w.TranslateEvent(ButtonEvent{X: 5, Y: 5, Button: tt.button, Pressed: true})
			if !p.MouseDown() {
				t.Error("press should set MouseDown")
			}
			w.TranslateEvent(ButtonEvent{X: 5, Y: 5, Button: tt.button, Pressed: false})
			if p.MouseDown() {
				t.Error("release should clear MouseDown")
			}
			if log[len(log)-1] != tt.want {
				t.Errorf("log = %v, want last %s", log, tt.want)
			}
		})
	}
}

func TestReleaseWithoutPressIsNotClick(t *testing.T) {
	var log []string
	w, _, _ := newTestWindow(t)
	a := newProbe("a", Rect{0, 0, 50, 50}, 0, &log)
	b := newProbe("b", Rect{100, 0, 50, 50}, 0, &log)
	mustAdd(t, w, a, b)
	w.TranslateEvent(ButtonEvent{X: 5, Y: 5, Button: MouseButtonLeft, Pressed: true})
	w.TranslateEvent(ButtonEvent{X: 105, Y: 5, Button: MouseButtonLeft, Pressed: false})
	want := []string{"a:down", "b:up"}
	if !equalStrings(log, want) {
		t.Errorf("log = %v, want %v", log, want)
	}
}

func TestExitCancelsPendingClick(t *testing.T) {
	var log []string
	w, _, _ := newTestWindow(t)
	p := newProbe("p", Rect{0, 0, 50, 50}, 0, &log)
	mustAdd(t, w, p)

	w.TranslateEvent(MotionEvent{X: 5, Y: 5})
	w.TranslateEvent(ButtonEvent{X: 5, Y: 5, Button: MouseButtonLeft, Pressed: true})
	w.TranslateEvent(MotionEvent{X: 200, Y: 200})
	if p.MouseDown() {
		t.Error("exit should clear MouseDown")
	}
	w.TranslateEvent(MotionEvent{X: 5, Y: 5})
	w.TranslateEvent(ButtonEvent{X: 5, Y: 5, Button: MouseButtonLeft, Pressed: false})
	for _, l := range log {
		if l == "p:click" {
			t.Errorf("unexpected click in %v", log)
		}
	}
}

// --- Mouse-over tracking ---

func TestHoverExitBeforeEnter(t *testing.T) {
	var log []string
	w, _, _ := newTestWindow(t)
	a := newProbe("a", Rect{0, 0, 50, 50}, 0, &log)
	b := newProbe("b", Rect{100, 0, 50, 50}, 0, &log)
	mustAdd(t, w, a, b)

	w.TranslateEvent(MotionEvent{X: 10, Y: 10})
	w.TranslateEvent(MotionEvent{X: 20, Y: 20})
	w.TranslateEvent(MotionEvent{X: 110, Y: 10})
	w.TranslateEvent(MotionEvent{X: 300, Y: 300})

	want := []string{"a:enter", "a:exit", "b:enter", "b:exit"}
	if !equalStrings(log, want) {
		t.Errorf("log = %v, want %v", log, want)
	}
	if w.UnderMouse() != nil {
		t.Error("nothing should be under the mouse")
	}
}

func TestHoverSkipsOccluded(t *testing.T) {
	var log []string
	w, _, _ := newTestWindow(t)
	low := newProbe("low", Rect{20, 20, 10, 10}, 0, &log)
	cover := newProbe("cover", Rect{10, 10, 50, 50}, 1, &log)
	mustAdd(t, w, low, cover)
	w.TranslateEvent(MotionEvent{X: 25, Y: 25})
	if w.UnderMouse() != cover {
		t.Errorf("under mouse = %v, want cover", w.UnderMouse())
	}
}

func TestMotionShowsHiddenCursor(t *testing.T) {
	w, r, _ := newTestWindow(t)
	w.SetCursorHidden(true)
	if r.visible || !w.CursorHidden() {
		t.Fatal("cursor should be hidden")
	}
	w.TranslateEvent(MotionEvent{X: 1, Y: 1})
	if !r.visible || w.CursorHidden() {
		t.Error("motion should show the cursor")
	}
}

// --- Drag ---

func TestDragMovesFocusedControl(t *testing.T) {
	var log []string
	w, _, _ := newTestWindow(t)
	p := newProbe("p", Rect{0, 0, 50, 50}, 0, &log)
	p.wantFocus, p.drag = true, true
	mustAdd(t, w, p)

	w.TranslateEvent(ButtonEvent{X: 10, Y: 10, Button: MouseButtonLeft, Pressed: true})
	held := ButtonMask(0).With(MouseButtonLeft)
	w.TranslateEvent(MotionEvent{X: 15, Y: 13, RelX: 5, RelY: 3, Buttons: held})
	if got := p.Location(); got != (Rect{5, 3, 50, 50}) {
		t.Errorf("location = %v, want {5 3 50 50}", got)
	}

	// Without the button held nothing moves.
	w.TranslateEvent(MotionEvent{X: 20, Y: 20, RelX: 5, RelY: 7})
	if got := p.Location(); got != (Rect{5, 3, 50, 50}) {
		t.Errorf("location = %v after unheld move", got)
	}
}

func TestDragIgnoredWhenNotDraggable(t *testing.T) {
	w, _, _ := newTestWindow(t)
	p := newProbe("p", Rect{0, 0, 50, 50}, 0, nil)
	p.wantFocus = true
	mustAdd(t, w, p)
	w.TranslateEvent(ButtonEvent{X: 10, Y: 10, Button: MouseButtonLeft, Pressed: true})
	w.TranslateEvent(MotionEvent{X: 15, Y: 15, RelX: 5, RelY: 5, Buttons: ButtonMask(0).With(MouseButtonLeft)})
	if p.Location().Origin() != (Point{}) {
		t.Errorf("non-draggable control moved to %v", p.Location())
	}
}

// --- Wheel and keyboard ---

func TestWheelGoesToControlUnderPointer(t *testing.T) {
	var log []string
	w, _, _ := newTestWindow(t)
	a := newProbe("a", Rect{0, 0, 50, 50}, 0, &log)
	b := newProbe("b", Rect{100, 0, 50, 50}, 0, &log)
	mustAdd(t, w, a, b)
	_ = w.SetFocus(a)
	log = nil
	w.TranslateEvent(WheelEvent{X: 110, Y: 10, DY: -1})
	if !equalStrings(log, []string{"b:wheel -1"}) {
		t.Errorf("log = %v", log)
	}
}

func TestKeyboardGoesToFocus(t *testing.T) {
	var log []string
	w, _, _ := newTestWindow(t)
	a := newProbe("a", Rect{0, 0, 50, 50}, 0, &log)
	mustAdd(t, w, a)

	w.TranslateEvent(KeyEvent{Key: KeyEnter, Pressed: true})
	if len(log) != 0 {
		t.Errorf("key without focus delivered: %v", log)
	}
	_ = w.SetFocus(a)
	log = nil
	w.TranslateEvent(KeyEvent{Key: KeyEnter, Pressed: true})
	w.TranslateEvent(TextInputEvent{Text: "hi"})
	if !equalStrings(log, []string{"a:key", "a:text hi"}) {
		t.Errorf("log = %v", log)
	}
}

func TestTextInputWithoutFocus(t *testing.T) {
	w, _, _ := newTestWindow(t)
	// Dropped silently outside debug mode.
	w.TranslateEvent(TextInputEvent{Text: "x"})

	w.SetDebugMode(true)
	expectPanic(t, "text without focus", func() {
		w.TranslateEvent(TextInputEvent{Text: "x"})
	})
}

// --- Window events ---

func TestResizeNotifiesControls(t *testing.T) {
	var log []string
	w, _, _ := newTestWindow(t)
	mustAdd(t, w, newProbe("a", Rect{}, 0, &log), newProbe("b", Rect{}, 1, &log))
	w.TranslateEvent(ResizeEvent{Width: 800, Height: 600})
	if w.Size() != (Size{800, 600}) {
		t.Errorf("size = %v", w.Size())
	}
	if !equalStrings(log, []string{"a:window", "b:window"}) {
		t.Errorf("log = %v", log)
	}
}

func TestWindowStateAndQuit(t *testing.T) {
	w, _, _ := newTestWindow(t)
	w.TranslateEvent(WindowStateEvent{State: WindowMinimized})
	if !w.Minimized() {
		t.Error("expected minimized")
	}
	w.TranslateEvent(WindowStateEvent{State: WindowRestored})
	if w.Minimized() {
		t.Error("expected restored")
	}
	if w.TranslateEvent(MotionEvent{}) {
		t.Error("motion should not quit")
	}
	if !w.TranslateEvent(QuitEvent{}) || !w.Closed() {
		t.Error("quit should report true and close")
	}
}
