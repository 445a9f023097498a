package sapling

// Event is one input or window notification fed to Window.TranslateEvent.
// The concrete types below are the complete set.
type Event interface {
	isEvent()
}

// ButtonEvent is a mouse button press or release.
type ButtonEvent struct {
	X, Y      int
	Button    MouseButton
	Pressed   bool
	Modifiers KeyModifiers
}

// Point returns the event position.
func (e ButtonEvent) Point() Point { return Point{e.X, e.Y} }

// LeftDown reports whether e is a left button press.
func (e ButtonEvent) LeftDown() bool { return e.Pressed && e.Button == MouseButtonLeft }

// LeftUp reports whether e is a left button release.
func (e ButtonEvent) LeftUp() bool { return !e.Pressed && e.Button == MouseButtonLeft }

// MotionEvent is pointer movement. RelX/RelY hold the delta since the
// previous motion event and Buttons the buttons held during the move.
type MotionEvent struct {
	X, Y       int
	RelX, RelY int
	Buttons    ButtonMask
	Modifiers  KeyModifiers
}

// Point returns the event position.
func (e MotionEvent) Point() Point { return Point{e.X, e.Y} }

// WheelEvent is a scroll of the mouse wheel with the pointer at (X, Y).
// Positive DY scrolls up (away from the user).
type WheelEvent struct {
	X, Y      int
	DX, DY    int
	Modifiers KeyModifiers
}

// Point returns the pointer position.
func (e WheelEvent) Point() Point { return Point{e.X, e.Y} }

// KeyEvent is a key press or release.
type KeyEvent struct {
	Key       Key
	Rune      rune // set when Key is KeyRune
	Pressed   bool
	Repeat    bool
	Modifiers KeyModifiers
}

// TextInputEvent carries committed text (one or more characters).
type TextInputEvent struct {
	Text string
}

// ResizeEvent reports new window dimensions.
type ResizeEvent struct {
	Width, Height int
}

// WindowState is the visibility state reported by WindowStateEvent.
type WindowState uint8

const (
	WindowRestored WindowState = iota
	WindowMinimized
)

// WindowStateEvent reports the window being minimized or restored.
type WindowStateEvent struct {
	State WindowState
}

// QuitEvent asks the application to close.
type QuitEvent struct{}

func (ButtonEvent) isEvent()      {}
func (MotionEvent) isEvent()      {}
func (WheelEvent) isEvent()       {}
func (KeyEvent) isEvent()         {}
func (TextInputEvent) isEvent()   {}
func (ResizeEvent) isEvent()      {}
func (WindowStateEvent) isEvent() {}
func (QuitEvent) isEvent()        {}
