package sapling

import "fmt"

// TranslateEvent routes one event to the controls and reports whether the
// application was asked to quit. It should be called from the main loop for
// every event the backend produces.
func (w *Window) TranslateEvent(e Event) bool {
	switch e := e.(type) {
	case ButtonEvent:
		w.onMouseButton(e)
	case MotionEvent:
		w.onMouseMotion(e)
	case WheelEvent:
		w.onMouseWheel(e)
	case KeyEvent:
		w.onKeyboard(e)
	case TextInputEvent:
		w.onTextInput(e)
	case ResizeEvent:
		w.onResize(e)
	case WindowStateEvent:
		w.minimized = e.State == WindowMinimized
	case QuitEvent:
		w.closed = true
		return true
	}
	return false
}

// --- Hit testing ---

// hitTest finds the topmost visible, unoccluded control containing p.
// Returns nil if nothing is hit.
func (w *Window) hitTest(p Point) Control {
	w.ensureOcclusion()

	// Iterate backward (descending z-order): topmost control first.
	for i := len(w.controls) - 1; i >= 0; i-- {
		c := w.controls[i]
		b := c.Base()
		if b.hidden || w.isOccludedAt(i) {
			continue
		}
		if b.loc.Contains(p) {
			return c
		}
	}
	return nil
}

// ControlAt returns the control that would receive a click at p, or nil.
func (w *Window) ControlAt(p Point) Control {
	return w.hitTest(p)
}

// --- Focus arbitration ---

// onMouseButton delivers a press or release to the topmost control under the
// pointer. At most one control sees the event. If it asks for focus, focus
// moves to it. Otherwise, on a press, the focused control is told about the
// click elsewhere so it can react (a popup closing itself, for example).
func (w *Window) onMouseButton(e ButtonEvent) {
	w.pointer = e.Point()

	tookFocus := false
	clicked := w.hitTest(e.Point())
	if clicked != nil {
		if deliverMouseButton(clicked, e) && w.Contains(clicked) {
			w.moveFocus(clicked)
			tookFocus = true
		}
	}

	if tookFocus || !e.Pressed {
		return
	}
	if f := w.focus; f != nil && f != clicked {
		f.OnMouseButtonExternal(e, clicked)
	}
}

// deliverMouseButton sends e to c and synthesizes a click when a release
// follows a press on the same control. Returns the control's focus request.
func deliverMouseButton(c Control, e ButtonEvent) bool {
	wantsFocus := c.OnMouseButton(e)

	b := c.Base()
	if e.Pressed {
		b.mouseDown = true
		return wantsFocus
	}
	if !b.mouseDown {
		return wantsFocus
	}
	switch e.Button {
	case MouseButtonLeft:
		c.OnLeftClick(e.Point())
	case MouseButtonRight:
		c.OnRightClick(e.Point())
	case MouseButtonMiddle:
		c.OnMiddleClick(e.Point())
	}
	b.mouseDown = false
	return wantsFocus
}

// --- Mouse-over tracking ---

// onMouseMotion drags the focused control when it allows it, then updates
// the single control under the mouse, firing exit on the old one before
// enter on the new one, and forwards the motion to it.
func (w *Window) onMouseMotion(e MotionEvent) {
	w.pointer = e.Point()
	if w.cursorHidden {
		w.SetCursorHidden(false)
	}

	if f := w.focus; f != nil && e.Buttons.Has(MouseButtonLeft) && f.CanDrag() {
		b := f.Base()
		b.SetLocation(b.loc.Translate(e.RelX, e.RelY))
	}

	target := w.hitTest(e.Point())
	if target == nil {
		if old := w.underMouse; old != nil {
			w.underMouse = nil
			notifyMouseExit(old)
		}
		return
	}

	if target != w.underMouse {
		if old := w.underMouse; old != nil {
			w.underMouse = nil
			notifyMouseExit(old)
		}
		if !w.Contains(target) {
			return
		}
		w.underMouse = target
		target.OnMouseEnter()
	}
	if w.underMouse == target {
		target.OnMouseMotion(e)
	}
}

// notifyMouseExit cancels any pending click on c before telling it the
// pointer left. A press, exit, re-enter, release sequence is not a click.
func notifyMouseExit(c Control) {
	c.Base().mouseDown = false
	c.OnMouseExit()
}

// onMouseWheel sends the wheel to the topmost control under the pointer.
func (w *Window) onMouseWheel(e WheelEvent) {
	if c := w.hitTest(e.Point()); c != nil {
		c.OnMouseWheel(e)
	}
}

// --- Keyboard ---

func (w *Window) onKeyboard(e KeyEvent) {
	if w.focus != nil {
		w.focus.OnKeyboard(e)
	}
}

func (w *Window) onTextInput(e TextInputEvent) {
	if w.focus == nil {
		_ = w.violation(fmt.Errorf("text input %q: %w", e.Text, ErrNoFocus))
		return
	}
	w.focus.OnTextInput(e)
}

// --- Window ---

// onResize records the new viewport and notifies every control.
func (w *Window) onResize(e ResizeEvent) {
	w.size = Size{e.Width, e.Height}
	notify := append([]Control(nil), w.controls...)
	for _, c := range notify {
		if w.Contains(c) {
			c.OnWindowChanged()
		}
	}
}
