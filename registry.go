package sapling

import (
	"cmp"
	"fmt"
	"slices"
)

// debugMaxControls is the registry size above which debug mode warns; the
// occlusion pass is quadratic in the number of controls per layer.
const debugMaxControls = 512

// Add registers c so it is rendered and receives events. The control
// inherits the window's colors. Adding a control twice fails.
func (w *Window) Add(c Control) error {
	b := c.Base()
	if b.window != nil {
		return w.violation(fmt.Errorf("add: %w", ErrAlreadyRegistered))
	}
	b.window = w
	b.self = c
	b.background = w.background
	b.foreground = w.foreground
	w.nextSeq++
	b.seq = w.nextSeq

	w.controls = append(w.controls, c)
	w.sortControls()
	w.occlusionDirty = true

	if w.debug && len(w.controls) > debugMaxControls {
		w.debugf("warning: %d controls registered (threshold %d)", len(w.controls), debugMaxControls)
	}
	return nil
}

// Remove unregisters c and cancels its elapsed-time subscription. If c held
// focus or was under the mouse, that reference is cleared without firing
// notifications.
func (w *Window) Remove(c Control) error {
	i := w.indexOf(c)
	if i < 0 {
		return w.violation(fmt.Errorf("remove: %w", ErrNotRegistered))
	}
	w.Unsubscribe(c)
	w.controls = slices.Delete(w.controls, i, i+1)
	w.occlusionDirty = true

	if w.focus == c {
		w.focus = nil
	}
	if w.underMouse == c {
		w.underMouse = nil
	}
	b := c.Base()
	b.window = nil
	b.focused = false
	b.mouseDown = false
	return nil
}

// RemoveAll unregisters every control and cancels every subscription.
func (w *Window) RemoveAll() {
	for _, c := range w.controls {
		b := c.Base()
		b.window = nil
		b.focused = false
		b.mouseDown = false
	}
	w.controls = w.controls[:0]
	w.timers = w.timers[:0]
	w.focus = nil
	w.underMouse = nil
	w.occlusionDirty = true
}

// ChangeZOrder sets c's z-order, re-sorts the registry and fires
// OnZOrderChanged.
func (w *Window) ChangeZOrder(c Control, z uint8) error {
	if w.indexOf(c) < 0 {
		return w.violation(fmt.Errorf("change z-order: %w", ErrNotRegistered))
	}
	c.Base().zOrder = z
	w.sortControls()
	w.occlusionDirty = true
	c.OnZOrderChanged()
	return nil
}

// Controls returns the registry in ascending z-order. The returned slice
// MUST NOT be mutated.
func (w *Window) Controls() []Control {
	return w.controls
}

// Len returns the number of registered controls.
func (w *Window) Len() int {
	return len(w.controls)
}

// Contains reports whether c is registered with w.
func (w *Window) Contains(c Control) bool {
	return c != nil && c.Base().window == w
}

func (w *Window) indexOf(c Control) int {
	if c == nil || c.Base().window != w {
		return -1
	}
	return slices.Index(w.controls, c)
}

// sortControls orders the registry by ascending z-order. Equal z-orders keep
// insertion order.
func (w *Window) sortControls() {
	slices.SortFunc(w.controls, func(a, b Control) int {
		ab, bb := a.Base(), b.Base()
		if c := cmp.Compare(ab.zOrder, bb.zOrder); c != 0 {
			return c
		}
		return cmp.Compare(ab.seq, bb.seq)
	})
}
