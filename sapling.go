package sapling

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication, when a backend needs it, happens at draw time.
type Color struct {
	R, G, B, A float64
}

var (
	ColorBlack       = Color{0, 0, 0, 1}
	ColorWhite       = Color{1, 1, 1, 1}
	ColorTransparent = Color{}
)

// RGB builds an opaque Color from 8-bit channels.
func RGB(r, g, b uint8) Color {
	return Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255, A: 1}
}

// NRGBA converts c to a straight-alpha 8-bit color, clamping out-of-range components.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: channel(c.R), G: channel(c.G), B: channel(c.B), A: channel(c.A)}
}

// Scale multiplies the RGB components by f, leaving alpha untouched.
func (c Color) Scale(f float64) Color {
	return Color{R: c.R * f, G: c.G * f, B: c.B * f, A: c.A}
}

func channel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// MarshalText encodes the color as #rrggbbaa.
func (c Color) MarshalText() ([]byte, error) {
	n := c.NRGBA()
	return []byte(fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)), nil
}

// UnmarshalText parses #rrggbb or #rrggbbaa. Alpha defaults to opaque.
func (c *Color) UnmarshalText(text []byte) error {
	s := strings.TrimPrefix(strings.TrimSpace(string(text)), "#")
	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("parse color %q: want #rrggbb or #rrggbbaa", text)
	}
	if len(s) == 6 {
		s += "ff"
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fmt.Errorf("parse color %q: %w", text, err)
	}
	*c = Color{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}
	return nil
}

// Point is a position in window coordinates.
type Point struct {
	X, Y int
}

// Size holds a width and height in window units (pixels, or cells for a terminal).
type Size struct {
	W, H int
}

// Rect is an axis-aligned rectangle in window coordinates. The origin is the
// top-left corner, with Y increasing downward.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether p lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.W &&
		p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Encloses reports whether every corner of other lies within r.
func (r Rect) Encloses(other Rect) bool {
	return other.X >= r.X && other.Y >= r.Y &&
		other.X+other.W <= r.X+r.W &&
		other.Y+other.H <= r.Y+r.H
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Origin returns the top-left corner.
func (r Rect) Origin() Point {
	return Point{r.X, r.Y}
}

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size {
	return Size{r.W, r.H}
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// ButtonMask is a set of held mouse buttons.
type ButtonMask uint8

// Has reports whether b is held.
func (m ButtonMask) Has(b MouseButton) bool {
	return m&(1<<b) != 0
}

// With returns the mask with b added.
func (m ButtonMask) With(b MouseButton) ButtonMask {
	return m | 1<<b
}

// Without returns the mask with b removed.
func (m ButtonMask) Without(b MouseButton) ButtonMask {
	return m &^ (1 << b)
}

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// Key identifies a non-text key. Printable characters arrive as KeyRune with
// the character in KeyEvent.Rune, and separately as a TextInputEvent.
type Key uint8

const (
	KeyUnknown Key = iota
	KeyRune
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyDelete
	KeyTab
	KeySpace
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
)

// TextAlign positions text inside its layout rectangle.
type TextAlign uint8

const (
	AlignTopLeft TextAlign = iota
	AlignTopCenter
	AlignTopRight
	AlignMiddleLeft
	AlignMiddleCenter
	AlignMiddleRight
	AlignBottomLeft
	AlignBottomCenter
	AlignBottomRight
)

// Offset returns where a block of size content starts inside a box of size
// box for this alignment. Offsets can be negative when content overflows.
func (a TextAlign) Offset(box, content Size) Point {
	var p Point
	switch a {
	case AlignTopCenter, AlignMiddleCenter, AlignBottomCenter:
		p.X = (box.W - content.W) / 2
	case AlignTopRight, AlignMiddleRight, AlignBottomRight:
		p.X = box.W - content.W
	}
	switch a {
	case AlignMiddleLeft, AlignMiddleCenter, AlignMiddleRight:
		p.Y = (box.H - content.H) / 2
	case AlignBottomLeft, AlignBottomCenter, AlignBottomRight:
		p.Y = box.H - content.H
	}
	return p
}

// CursorShape selects the system pointer shown over the window.
type CursorShape uint8

const (
	CursorDefault CursorShape = iota // standard arrow
	CursorText                       // I-beam, for editable text
	CursorPointer                    // hand, for clickable items
)

// Font describes a typeface. Backends resolve it to a concrete face and own
// any glyph caches.
type Font struct {
	Family string  `toml:"family"`
	Size   float64 `toml:"size"`
	Bold   bool    `toml:"bold"`
	Italic bool    `toml:"italic"`
}

// DefaultFont is the face used when a window is configured without one.
var DefaultFont = Font{Family: "mono", Size: 16}
