package sapling

// Control is the contract between a Window and the widgets it hosts. Widgets
// embed ControlBase, which provides no-op defaults for every hook, and
// implement RenderImpl plus whichever hooks they care about.
//
// The window calls hooks synchronously from TranslateEvent and Render. Hooks
// may call back into the window (change focus, z-order, timers, geometry).
type Control interface {
	// Base returns the embedded state shared by every control.
	Base() *ControlBase

	// CanDrag reports whether the control follows the pointer while it has
	// focus and the left button is held.
	CanDrag() bool

	OnElapsedTime()
	OnFocusAcquired()
	OnFocusLost()
	OnHiddenChanged(hidden bool)
	OnKeyboard(e KeyEvent)
	OnLeftClick(p Point)
	OnMiddleClick(p Point)
	OnRightClick(p Point)
	OnLocationChanged(dx, dy int)
	OnResize(dw, dh int)

	// OnMouseButton receives every press and release that hits the control.
	// Returning true asks for keyboard focus.
	OnMouseButton(e ButtonEvent) bool

	// OnMouseButtonExternal is sent to the focused control when a press lands
	// somewhere else. clicked is the control that was hit, or nil for empty
	// space.
	OnMouseButtonExternal(e ButtonEvent, clicked Control)

	OnMouseEnter()
	OnMouseExit()
	OnMouseMotion(e MotionEvent)
	OnMouseWheel(e WheelEvent)
	OnTextInput(e TextInputEvent)
	OnWindowChanged()
	OnZOrderChanged()

	// RenderImpl draws the control's content. The border, if any, is drawn
	// by the window afterwards.
	RenderImpl(r Renderer)
}

// ControlBase holds the state every control carries and the default hook
// implementations. The zero value is an unregistered, visible control at
// z-order 0 with an empty rectangle.
type ControlBase struct {
	window *Window
	self   Control
	parent Control
	seq    uint64

	loc         Rect
	background  Color
	foreground  Color
	borderColor Color
	borderSize  uint8
	zOrder      uint8

	hidden    bool
	focused   bool
	mouseDown bool
}

// NewControlBase returns a base positioned at loc.
func NewControlBase(loc Rect) ControlBase {
	return ControlBase{loc: loc}
}

// Base implements Control.
func (b *ControlBase) Base() *ControlBase { return b }

// Window returns the owning window, or nil before registration.
func (b *ControlBase) Window() *Window { return b.window }

// Registered reports whether the control is currently in a window's registry.
func (b *ControlBase) Registered() bool { return b.window != nil }

// Parent returns the control this one was attached to, or nil.
func (b *ControlBase) Parent() Control { return b.parent }

// SetParent records the logical parent. The parent does not own the window
// registration; it is a query-only link used for containment checks.
func (b *ControlBase) SetParent(p Control) { b.parent = p }

// Location returns the control's rectangle in window coordinates.
func (b *ControlBase) Location() Rect { return b.loc }

// SetLocation moves and/or resizes the control. OnLocationChanged fires when
// the origin moves and OnResize when the size changes.
func (b *ControlBase) SetLocation(loc Rect) {
	if loc == b.loc {
		return
	}
	old := b.loc
	b.loc = loc
	b.invalidate()

	self := b.self
	if self == nil {
		return
	}
	if dx, dy := loc.X-old.X, loc.Y-old.Y; dx != 0 || dy != 0 {
		self.OnLocationChanged(dx, dy)
	}
	if dw, dh := loc.W-old.W, loc.H-old.H; dw != 0 || dh != 0 {
		self.OnResize(dw, dh)
	}
}

// Hidden reports whether the control is hidden. Hidden controls are neither
// rendered nor hit-tested but stay registered and keep their timers.
func (b *ControlBase) Hidden() bool { return b.hidden }

// SetHidden changes the hidden state, firing OnHiddenChanged on a transition.
func (b *ControlBase) SetHidden(hidden bool) {
	if hidden == b.hidden {
		return
	}
	b.hidden = hidden
	b.invalidate()
	if b.self != nil {
		b.self.OnHiddenChanged(hidden)
	}
}

// HasFocus reports whether the control holds keyboard focus.
func (b *ControlBase) HasFocus() bool { return b.focused }

// MouseDown reports whether a press landed on the control and has not yet
// been released or cancelled by the pointer leaving.
func (b *ControlBase) MouseDown() bool { return b.mouseDown }

// ZOrder returns the paint/hit-test rank. Zero is the bottom.
func (b *ControlBase) ZOrder() uint8 { return b.zOrder }

// SetZOrder changes the rank. A registered control is re-sorted immediately.
func (b *ControlBase) SetZOrder(z uint8) {
	if b.window != nil {
		_ = b.window.ChangeZOrder(b.self, z)
		return
	}
	b.zOrder = z
}

func (b *ControlBase) Background() Color        { return b.background }
func (b *ControlBase) SetBackground(c Color)    { b.background = c }
func (b *ControlBase) Foreground() Color        { return b.foreground }
func (b *ControlBase) SetForeground(c Color)    { b.foreground = c }
func (b *ControlBase) BorderColor() Color       { return b.borderColor }
func (b *ControlBase) SetBorderColor(c Color)   { b.borderColor = c }
func (b *ControlBase) BorderSize() uint8        { return b.borderSize }
func (b *ControlBase) SetBorderSize(size uint8) { b.borderSize = size }

// Destroy unregisters the control from its window and cancels its timer.
func (b *ControlBase) Destroy() error {
	if b.window == nil {
		return ErrNotRegistered
	}
	return b.window.Remove(b.self)
}

func (b *ControlBase) invalidate() {
	if b.window != nil {
		b.window.occlusionDirty = true
	}
}

// Default hooks.

func (b *ControlBase) CanDrag() bool                              { return false }
func (b *ControlBase) OnElapsedTime()                             {}
func (b *ControlBase) OnFocusAcquired()                           {}
func (b *ControlBase) OnFocusLost()                               {}
func (b *ControlBase) OnHiddenChanged(bool)                       {}
func (b *ControlBase) OnKeyboard(KeyEvent)                        {}
func (b *ControlBase) OnLeftClick(Point)                          {}
func (b *ControlBase) OnMiddleClick(Point)                        {}
func (b *ControlBase) OnRightClick(Point)                         {}
func (b *ControlBase) OnLocationChanged(int, int)                 {}
func (b *ControlBase) OnResize(int, int)                          {}
func (b *ControlBase) OnMouseButton(ButtonEvent) bool             { return false }
func (b *ControlBase) OnMouseButtonExternal(ButtonEvent, Control) {}
func (b *ControlBase) OnMouseEnter()                              {}
func (b *ControlBase) OnMouseExit()                               {}
func (b *ControlBase) OnMouseMotion(MotionEvent)                  {}
func (b *ControlBase) OnMouseWheel(WheelEvent)                    {}
func (b *ControlBase) OnTextInput(TextInputEvent)                 {}
func (b *ControlBase) OnWindowChanged()                           {}
func (b *ControlBase) OnZOrderChanged()                           {}

// IsWithin reports whether c is ancestor or one of its descendants, walking
// parent links upward from c.
func IsWithin(c, ancestor Control) bool {
	for c != nil {
		if c == ancestor {
			return true
		}
		c = c.Base().Parent()
	}
	return false
}
