package sapling

import "time"

// Renderer is the drawing backend a Window composites into. Coordinates are
// window coordinates in the backend's native unit.
type Renderer interface {
	// Clear fills the whole surface with c.
	Clear(c Color)

	// FillRect fills r with c.
	FillRect(r Rect, c Color)

	// StrokeRect outlines r with bands of the given thickness drawn inward.
	StrokeRect(r Rect, c Color, thickness int)

	// DrawLine draws a one-unit line between p1 and p2 inclusive.
	DrawLine(p1, p2 Point, c Color)

	// DrawText draws s inside r, aligned as requested and clipped to r.
	DrawText(r Rect, s string, f Font, c Color, align TextAlign)

	// MeasureText returns the extent of s in font f.
	MeasureText(s string, f Font) Size

	// Present makes the composed frame visible.
	Present()
}

// CursorController is implemented by renderers whose backend owns a system
// pointer.
type CursorController interface {
	SetCursorVisible(visible bool)
	SetCursorShape(shape CursorShape)
}

// Screenshotter is implemented by renderers that can capture a presented
// frame.
type Screenshotter interface {
	Screenshot(label string)
}

// Render runs one compositor pass: due elapsed-time callbacks fire, tweens
// advance, and unless the window is minimized or closed the occlusion bitmap
// is recomputed and every visible, unoccluded control is drawn in ascending
// z-order before the frame is presented.
func (w *Window) Render() {
	var stats frameStats
	var t0 time.Time

	now := w.clock.Now()
	dt := now.Sub(w.lastFrame)
	w.lastFrame = now
	w.frameCount++

	if w.debug {
		t0 = time.Now()
	}
	stats.timersFired = w.fireElapsedTimers(now)
	w.updateTweens(dt)
	if w.debug {
		stats.timerTime = time.Since(t0)
	}

	if !w.shouldRender() {
		return
	}

	if w.debug {
		t0 = time.Now()
	}
	w.computeOcclusion()
	if w.debug {
		stats.occlusionTime = time.Since(t0)
		t0 = time.Now()
	}

	w.renderer.Clear(w.background)
	for i, c := range w.controls {
		if c.Base().hidden || w.isOccludedAt(i) {
			continue
		}
		w.renderControl(c)
		stats.rendered++
	}
	w.renderer.Present()

	if w.debug {
		stats.renderTime = time.Since(t0)
		stats.controls = len(w.controls)
		stats.occluded = w.OccludedCount()
		w.debugLog(stats)
	}
}

// renderControl draws c's content followed by its border, so the border
// always overlays the control's own drawing.
func (w *Window) renderControl(c Control) {
	c.RenderImpl(w.renderer)
	b := c.Base()
	if b.borderSize > 0 {
		w.renderer.StrokeRect(b.loc, b.borderColor, int(b.borderSize))
	}
}

func (w *Window) shouldRender() bool {
	return !w.minimized && !w.closed
}

// Frame returns the number of Render calls so far.
func (w *Window) Frame() uint64 {
	return w.frameCount
}
