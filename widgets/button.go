package widgets

import (
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/sapling"
)

// Button colour schemes.
var (
	buttonBackground      = sapling.RGB(64, 64, 64)
	buttonHoverBackground = sapling.RGB(64, 64, 128)
	buttonHoverBorder     = sapling.RGB(128, 128, 255)
	buttonPressed         = sapling.RGB(32, 32, 64)
)

// buttonFade is the duration of the hover colour fade, in seconds.
const buttonFade = 0.12

// Button is a clickable rectangle with a centred caption. The background
// fades between the default and hover schemes as the pointer enters and
// leaves.
type Button struct {
	sapling.ControlBase
	text    string
	onClick func()
	fade    *sapling.TweenGroup
}

// NewButton creates and registers a button.
func NewButton(w *sapling.Window, loc sapling.Rect, text string) (*Button, error) {
	b := &Button{ControlBase: sapling.NewControlBase(loc), text: text}
	if err := w.Add(b); err != nil {
		return nil, err
	}
	b.SetBackground(buttonBackground)
	b.setDefaultScheme()
	return b, nil
}

func (b *Button) Text() string     { return b.text }
func (b *Button) SetText(s string) { b.text = s }

// SetOnClick registers fn to run after a left click.
func (b *Button) SetOnClick(fn func()) { b.onClick = fn }

func (b *Button) setDefaultScheme() {
	b.fadeTo(buttonBackground)
	if !b.HasFocus() {
		b.SetBorderColor(colorBorder)
	}
	b.SetBorderSize(2)
}

func (b *Button) setHoverScheme() {
	b.fadeTo(buttonHoverBackground)
	b.SetBorderColor(buttonHoverBorder)
	b.SetBorderSize(1)
}

func (b *Button) fadeTo(c sapling.Color) {
	if b.fade != nil {
		b.fade.Stop()
		b.fade = nil
	}
	w := b.Window()
	if w == nil || b.Background() == c {
		return
	}
	b.fade = sapling.TweenBackground(b, c, buttonFade, ease.OutQuad)
	w.Animate(b.fade)
}

func (b *Button) setBackgroundNow(c sapling.Color) {
	if b.fade != nil {
		b.fade.Stop()
		b.fade = nil
	}
	b.SetBackground(c)
}

func (b *Button) OnFocusAcquired() {
	b.SetBorderColor(colorFocusBorder)
}

func (b *Button) OnFocusLost() {
	b.setBackgroundNow(buttonBackground)
	b.SetBorderColor(colorBorder)
}

func (b *Button) OnLeftClick(sapling.Point) {
	b.setHoverScheme()
	if b.onClick != nil {
		b.onClick()
	}
}

func (b *Button) OnMouseButton(e sapling.ButtonEvent) bool {
	if e.LeftDown() {
		b.setBackgroundNow(buttonPressed)
		return true
	}
	return false
}

func (b *Button) OnMouseEnter() { b.setHoverScheme() }
func (b *Button) OnMouseExit()  { b.setDefaultScheme() }

func (b *Button) RenderImpl(r sapling.Renderer) {
	w := b.Window()
	r.FillRect(b.Location(), b.Background())
	if b.text != "" {
		r.DrawText(b.Location(), b.text, w.Font(), b.Foreground(), sapling.AlignMiddleCenter)
	}
}
