package widgets

import (
	"time"

	"github.com/phanxgames/sapling"
)

// CaretBlink is the caret's blink half-period.
const CaretBlink = 1000 * time.Millisecond

// Caret is the blinking insertion mark of a text control. It is hidden until
// Start is called and blinks by toggling its hidden state on the window's
// elapsed-time multiplexer.
type Caret struct {
	sapling.ControlBase
	paused bool
}

// NewCaret creates and registers a hidden caret.
func NewCaret(w *sapling.Window, loc sapling.Rect) (*Caret, error) {
	c := &Caret{ControlBase: sapling.NewControlBase(loc)}
	if err := w.Add(c); err != nil {
		return nil, err
	}
	c.SetHidden(true)
	return c, nil
}

// Start shows the caret and begins blinking.
func (c *Caret) Start() {
	c.paused = false
	c.SetHidden(false)
	if w := c.Window(); w != nil {
		_ = w.Subscribe(c, CaretBlink)
	}
}

// Stop hides the caret and cancels blinking.
func (c *Caret) Stop() {
	if w := c.Window(); w != nil {
		w.Unsubscribe(c)
	}
	c.SetHidden(true)
}

// Pause holds the caret visible, typically while a key is down.
func (c *Caret) Pause() {
	c.paused = true
	c.SetHidden(false)
}

// Resume continues blinking after Pause.
func (c *Caret) Resume() { c.paused = false }

// Paused reports whether blinking is held.
func (c *Caret) Paused() bool { return c.paused }

func (c *Caret) OnElapsedTime() {
	if !c.paused {
		c.SetHidden(!c.Hidden())
	}
}

func (c *Caret) RenderImpl(r sapling.Renderer) {
	loc := c.Location()
	if loc.W == 1 {
		r.DrawLine(loc.Origin(), sapling.Point{X: loc.X, Y: loc.Y + loc.H - 1}, c.Foreground())
		return
	}
	r.FillRect(loc, c.Foreground())
}
