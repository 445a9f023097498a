package sapling

// syntheticEvent is one queued input event. Coordinates are window
// coordinates, the same ones a screenshot shows.
type syntheticEvent struct {
	event Event
}

func (w *Window) inject(e Event) {
	w.injectQueue = append(w.injectQueue, syntheticEvent{event: e})
}

// InjectPress queues a left-button press at (x, y). The event is consumed
// by the next ProcessInjected call.
func (w *Window) InjectPress(x, y int) {
	w.inject(ButtonEvent{X: x, Y: y, Button: MouseButtonLeft, Pressed: true})
}

// InjectRelease queues a left-button release at (x, y).
func (w *Window) InjectRelease(x, y int) {
	w.inject(ButtonEvent{X: x, Y: y, Button: MouseButtonLeft, Pressed: false})
}

// InjectMove queues pointer motion to (x, y). When held is true the motion
// carries the left button in its mask, which drags a focused draggable
// control. Relative motion is computed against the previous queued or last
// seen pointer position.
func (w *Window) InjectMove(x, y int, held bool) {
	from := w.lastInjectedPoint()
	var mask ButtonMask
	if held {
		mask = mask.With(MouseButtonLeft)
	}
	w.inject(MotionEvent{X: x, Y: y, RelX: x - from.X, RelY: y - from.Y, Buttons: mask})
}

// InjectClick is a convenience that queues a move, a press and a release
// at the same coordinates. Consumes three frames.
func (w *Window) InjectClick(x, y int) {
	w.InjectMove(x, y, false)
	w.InjectPress(x, y)
	w.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY),
// linearly interpolated held moves over frames-2 intermediate frames, and
// release at (toX, toY). The total sequence consumes `frames` frames plus
// one for the initial move. Minimum frames is 2.
func (w *Window) InjectDrag(fromX, fromY, toX, toY, frames int) {
	if frames < 2 {
		frames = 2
	}
	w.InjectMove(fromX, fromY, false)
	w.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		x := fromX + (toX-fromX)*i/(steps+1)
		y := fromY + (toY-fromY)*i/(steps+1)
		w.InjectMove(x, y, true)
	}
	w.InjectMove(toX, toY, true)
	w.InjectRelease(toX, toY)
}

// InjectKey queues a key press followed by its release.
func (w *Window) InjectKey(k Key, r rune) {
	w.inject(KeyEvent{Key: k, Rune: r, Pressed: true})
	w.inject(KeyEvent{Key: k, Rune: r, Pressed: false})
}

// InjectText queues committed text input.
func (w *Window) InjectText(s string) {
	w.inject(TextInputEvent{Text: s})
}

// Pending returns the number of queued synthetic events.
func (w *Window) Pending() int { return len(w.injectQueue) }

func (w *Window) lastInjectedPoint() Point {
	for i := len(w.injectQueue) - 1; i >= 0; i-- {
		switch e := w.injectQueue[i].event.(type) {
		case MotionEvent:
			return e.Point()
		case ButtonEvent:
			return e.Point()
		}
	}
	return w.pointer
}

// ProcessInjected advances the attached TestRunner, then pops one queued
// event and feeds it through TranslateEvent. consumed reports whether an
// event was processed, in which case the backend should skip real pointer
// input for this frame. Backends call this once per frame.
func (w *Window) ProcessInjected() (consumed, quit bool) {
	if w.testRunner != nil {
		w.testRunner.step(w)
	}
	if len(w.injectQueue) == 0 {
		return false, false
	}
	evt := w.injectQueue[0]
	copy(w.injectQueue, w.injectQueue[1:])
	w.injectQueue = w.injectQueue[:len(w.injectQueue)-1]

	return true, w.TranslateEvent(evt.event)
}
