package sapling

import (
	"fmt"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/bits-and-blooms/bitset"
)

// Window owns the controls drawn into one backend surface together with the
// state that arbitrates input between them: focus, mouse-over, occlusion and
// elapsed-time subscriptions. A Window is not safe for concurrent use; every
// call must come from the thread running the event loop.
type Window struct {
	renderer Renderer
	clock    clock.Clock
	debug    bool

	title      string
	size       Size
	background Color
	foreground Color
	font       Font

	minimized    bool
	closed       bool
	cursorHidden bool
	cursorShape  CursorShape

	// Registry, ascending z-order. See registry.go.
	controls []Control
	nextSeq  uint64

	focus      Control
	underMouse Control
	pointer    Point

	occluded       *bitset.BitSet
	occlusionDirty bool

	timers     []timerSub
	tweens     []*TweenGroup
	lastFrame  time.Time
	frameCount uint64

	injectQueue []syntheticEvent
	testRunner  *TestRunner
}

// NewWindow creates a window drawing through r. The renderer is required:
// a window cannot function without one.
func NewWindow(r Renderer, cfg Config) (*Window, error) {
	if r == nil {
		return nil, ErrNoRenderer
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}
	font := cfg.Font
	if font.Size == 0 {
		font = DefaultFont
	}
	w := &Window{
		renderer:   r,
		clock:      clk,
		debug:      cfg.Debug,
		title:      cfg.Title,
		size:       Size{cfg.Width, cfg.Height},
		background: cfg.Background,
		foreground: cfg.Foreground,
		font:       font,
		occluded:   bitset.New(0),
	}
	w.lastFrame = clk.Now()
	return w, nil
}

// Renderer returns the drawing backend.
func (w *Window) Renderer() Renderer { return w.renderer }

// Clock returns the time source used by timers and tweens.
func (w *Window) Clock() clock.Clock { return w.clock }

// Title returns the configured window title.
func (w *Window) Title() string { return w.title }

// Size returns the current viewport dimensions.
func (w *Window) Size() Size { return w.size }

// Bounds returns the viewport as a rectangle at the origin.
func (w *Window) Bounds() Rect { return Rect{0, 0, w.size.W, w.size.H} }

// Background returns the clear color; newly added controls inherit it.
func (w *Window) Background() Color { return w.background }

// SetBackground sets the clear color.
func (w *Window) SetBackground(c Color) { w.background = c }

// Foreground returns the default foreground; newly added controls inherit it.
func (w *Window) Foreground() Color { return w.foreground }

// SetForeground sets the default foreground color.
func (w *Window) SetForeground(c Color) { w.foreground = c }

// Font returns the window's default font.
func (w *Window) Font() Font { return w.font }

// SetFont replaces the default font.
func (w *Window) SetFont(f Font) { w.font = f }

// Minimized reports whether rendering is suspended because the window is
// minimized.
func (w *Window) Minimized() bool { return w.minimized }

// Closed reports whether a QuitEvent has been translated.
func (w *Window) Closed() bool { return w.closed }

// Focus returns the control holding keyboard focus, or nil.
func (w *Window) Focus() Control { return w.focus }

// UnderMouse returns the control currently under the pointer, or nil.
func (w *Window) UnderMouse() Control { return w.underMouse }

// Pointer returns the last pointer position seen by the window.
func (w *Window) Pointer() Point { return w.pointer }

// SetDebugMode enables or disables debug mode. When enabled, contract
// violations panic and per-frame timing stats are logged to stderr.
func (w *Window) SetDebugMode(enabled bool) { w.debug = enabled }

// SetFocus moves keyboard focus to c, notifying the previous holder first.
// Passing nil clears focus.
func (w *Window) SetFocus(c Control) error {
	if c != nil && c.Base().window != w {
		return w.violation(fmt.Errorf("set focus: %w", ErrNotRegistered))
	}
	w.moveFocus(c)
	return nil
}

// moveFocus transfers focus, firing lost on the old holder before acquired on
// the new one. A no-op when c already holds focus.
func (w *Window) moveFocus(c Control) {
	old := w.focus
	if old == c {
		return
	}
	if old != nil {
		old.Base().focused = false
		w.focus = nil
		old.OnFocusLost()
	}
	// The lost hook may have focused something else or removed c.
	if c == nil || c.Base().window != w || w.focus != nil {
		return
	}
	w.focus = c
	c.Base().focused = true
	c.OnFocusAcquired()
}

// SetCursorHidden hides or shows the pointer when the backend supports it.
// Any pointer motion shows it again.
func (w *Window) SetCursorHidden(hidden bool) {
	if hidden == w.cursorHidden {
		return
	}
	w.cursorHidden = hidden
	if cc, ok := w.renderer.(CursorController); ok {
		cc.SetCursorVisible(!hidden)
	}
}

// CursorHidden reports whether the pointer is hidden.
func (w *Window) CursorHidden() bool { return w.cursorHidden }

// SetCursorShape changes the pointer shape when the backend supports it.
func (w *Window) SetCursorShape(shape CursorShape) {
	if shape == w.cursorShape {
		return
	}
	w.cursorShape = shape
	if cc, ok := w.renderer.(CursorController); ok {
		cc.SetCursorShape(shape)
	}
}

// CursorShape returns the current pointer shape.
func (w *Window) CursorShape() CursorShape { return w.cursorShape }

// Screenshot asks the backend to capture the next presented frame under
// label. Backends that cannot capture ignore the request.
func (w *Window) Screenshot(label string) {
	if sc, ok := w.renderer.(Screenshotter); ok {
		sc.Screenshot(label)
		return
	}
	w.debugf("screenshot %q requested but the backend cannot capture", label)
}
