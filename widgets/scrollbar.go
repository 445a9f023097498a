package widgets

import (
	"time"

	"github.com/phanxgames/sapling"
)

// ScrollbarWidth is the default width of a vertical scrollbar.
const ScrollbarWidth = 16

const (
	scrollRepeatDelay = 500 * time.Millisecond
	scrollRepeatRate  = 100 * time.Millisecond
)

var scrollSlider = sapling.RGB(230, 230, 230)

// ScrollDirection is the direction of a scroll step.
type ScrollDirection uint8

const (
	ScrollDecrement ScrollDirection = iota // toward the minimum (up)
	ScrollIncrement                        // toward the maximum (down)
)

// ScrollMagnitude is the size of a scroll step.
type ScrollMagnitude uint8

const (
	ScrollSmall ScrollMagnitude = iota
	ScrollLarge
)

// ScrollEvent is passed to the scroll callback after the value changes.
type ScrollEvent struct {
	Value     int
	Direction ScrollDirection
	Magnitude ScrollMagnitude
}

type scrollPart uint8

const (
	partNone scrollPart = iota
	partUp
	partDown
	partSlider
)

// VerticalScrollbar is an up/down button pair with a slider between them.
// Holding a button repeats the step after a delay and then faster.
type VerticalScrollbar struct {
	sapling.ControlBase

	current, min, max int
	smallChange       int
	largeChange       int

	held       scrollPart
	accelerate bool
	showSlider bool
	dragSlider bool
	slider     sapling.Rect
	onScroll   func(ScrollEvent)
}

// NewVerticalScrollbar creates and registers a scrollbar. parent, if non-nil,
// is recorded as the logical owner.
func NewVerticalScrollbar(w *sapling.Window, loc sapling.Rect, parent sapling.Control) (*VerticalScrollbar, error) {
	s := &VerticalScrollbar{
		ControlBase: sapling.NewControlBase(loc),
		smallChange: 1,
		largeChange: 10,
	}
	s.SetParent(parent)
	if err := w.Add(s); err != nil {
		return nil, err
	}
	return s, nil
}

// Value returns the current position.
func (s *VerticalScrollbar) Value() int { return s.current }

// Maximum returns the largest position.
func (s *VerticalScrollbar) Maximum() int { return s.max }

// SmallChange and LargeChange are the step sizes.
func (s *VerticalScrollbar) SmallChange() int { return s.smallChange }
func (s *VerticalScrollbar) LargeChange() int { return s.largeChange }

// SetOnScroll registers fn to run after every scroll step.
func (s *VerticalScrollbar) SetOnScroll(fn func(ScrollEvent)) { s.onScroll = fn }

// SliderRect returns the slider in window coordinates and whether it is
// shown. The slider is shown only when the bar is taller than three buttons.
func (s *VerticalScrollbar) SliderRect() (sapling.Rect, bool) { return s.slider, s.showSlider }

// SetValue moves to v without firing the callback.
func (s *VerticalScrollbar) SetValue(v int) {
	s.current = max(s.min, min(v, s.max))
	s.moveSlider()
}

// SetMaximum sets the largest position and resizes the slider.
func (s *VerticalScrollbar) SetMaximum(m int) {
	s.max = max(m, s.min)
	if s.current > s.max {
		s.current = s.max
	}
	s.layoutSlider()
}

func (s *VerticalScrollbar) layoutSlider() {
	loc := s.Location()
	up, down := s.buttonRect(true), s.buttonRect(false)
	s.showSlider = loc.H > down.H*3
	if !s.showSlider {
		return
	}

	// The slider shrinks as the range grows, down to half a button.
	track := down.Y - (up.Y + up.H)
	s.slider = sapling.Rect{X: loc.X, Y: up.Y + up.H, W: loc.W, H: max(track-(s.max-s.min), down.H/2)}
	s.moveSlider()
}

func (s *VerticalScrollbar) moveSlider() {
	if !s.showSlider {
		return
	}
	up, down := s.buttonRect(true), s.buttonRect(false)
	s.slider.Y = up.Y + up.H
	if span := s.max - s.min; span > 0 {
		track := down.Y - (up.Y + up.H) - s.slider.H
		s.slider.Y += (s.current - s.min) * track / span
	}
}

// buttonRect returns the up or down button. Buttons are square unless the bar
// is shorter than two widths, in which case each takes half.
func (s *VerticalScrollbar) buttonRect(up bool) sapling.Rect {
	loc := s.Location()
	h := loc.W
	if loc.H < loc.W*2 {
		h = loc.H / 2
	}
	r := sapling.Rect{X: loc.X, Y: loc.Y, W: loc.W, H: h}
	if !up {
		r.Y = loc.Y + loc.H - h
	}
	return r
}

func (s *VerticalScrollbar) partAt(p sapling.Point) scrollPart {
	switch {
	case s.buttonRect(false).Contains(p):
		return partDown
	case s.buttonRect(true).Contains(p):
		return partUp
	case s.showSlider && s.slider.Contains(p):
		return partSlider
	}
	return partNone
}

func directionFor(p scrollPart) ScrollDirection {
	if p == partUp {
		return ScrollDecrement
	}
	return ScrollIncrement
}

// Scroll moves one step in dir and fires the callback.
func (s *VerticalScrollbar) Scroll(dir ScrollDirection, mag ScrollMagnitude) {
	step := s.smallChange
	if mag == ScrollLarge {
		step = s.largeChange
	}
	if dir == ScrollDecrement {
		s.current = max(s.current-step, s.min)
	} else {
		s.current = min(s.current+step, s.max)
	}
	s.moveSlider()

	if s.onScroll != nil {
		s.onScroll(ScrollEvent{Value: s.current, Direction: dir, Magnitude: mag})
	}
}

func (s *VerticalScrollbar) stopRepeat() {
	s.held = partNone
	s.accelerate = false
	if w := s.Window(); w != nil {
		w.Unsubscribe(s)
	}
}

func (s *VerticalScrollbar) OnElapsedTime() {
	if s.held == partNone {
		return
	}
	s.Scroll(directionFor(s.held), ScrollSmall)
	if s.accelerate {
		s.accelerate = false
		_ = s.Window().Subscribe(s, scrollRepeatRate)
	}
}

func (s *VerticalScrollbar) OnMouseButton(e sapling.ButtonEvent) bool {
	switch {
	case e.LeftDown():
		switch part := s.partAt(e.Point()); part {
		case partUp, partDown:
			s.Scroll(directionFor(part), ScrollSmall)
			s.held = part
			s.accelerate = true
			_ = s.Window().Subscribe(s, scrollRepeatDelay)
		case partSlider:
			s.dragSlider = true
		}
	case e.LeftUp():
		if !s.dragSlider {
			s.stopRepeat()
		}
		s.held = partNone
		s.dragSlider = false
	}
	return false
}

func (s *VerticalScrollbar) OnMouseExit() {
	s.stopRepeat()
}

func (s *VerticalScrollbar) OnMouseMotion(e sapling.MotionEvent) {
	if !s.dragSlider || e.RelY == 0 {
		return
	}
	if e.RelY < 0 {
		s.Scroll(ScrollDecrement, ScrollSmall)
	} else {
		s.Scroll(ScrollIncrement, ScrollSmall)
	}
}

func (s *VerticalScrollbar) OnMouseWheel(e sapling.WheelEvent) {
	if e.DY > 0 {
		s.Scroll(ScrollDecrement, ScrollSmall)
	} else if e.DY < 0 {
		s.Scroll(ScrollIncrement, ScrollSmall)
	}
}

func (s *VerticalScrollbar) OnLocationChanged(dx, dy int) {
	s.slider = s.slider.Translate(dx, dy)
}

func (s *VerticalScrollbar) OnResize(int, int) {
	s.layoutSlider()
}

func (s *VerticalScrollbar) RenderImpl(r sapling.Renderer) {
	fg := s.Foreground()
	r.FillRect(s.Location(), fg.Scale(0.5))

	down := s.buttonRect(false)
	r.FillRect(down, fg)
	drawChevron(r, down, s.Background(), false)

	up := s.buttonRect(true)
	r.FillRect(up, fg)
	drawChevron(r, up, s.Background(), true)

	if s.showSlider {
		r.FillRect(s.slider, scrollSlider)
	}
}
