package widgets

import (
	"github.com/phanxgames/sapling"
)

const (
	// DialogTitleBarHeight is the height of the title bar above the content.
	DialogTitleBarHeight = 32
	// DialogCloseButtonWidth is the width of the close box at the right of
	// the title bar.
	DialogCloseButtonWidth = 48
	// DialogZOrder is where dialogs sit; their content is one above.
	DialogZOrder = 128
)

var (
	dialogBackground = sapling.RGB(128, 128, 128)
	dialogClose      = sapling.RGB(255, 0, 0)
)

// Dialog is a movable window-within-the-window: a title bar the user can drag,
// a close box and a content panel. Dialogs start hidden; call Show or
// SetHidden(false) to display one.
type Dialog struct {
	sapling.ControlBase
	title   string
	panel   *Panel
	canDrag bool
}

// NewDialog creates and registers a hidden dialog whose content area has
// the given size. The dialog is placed at the origin; use Center to move it.
func NewDialog(w *sapling.Window, title string, content sapling.Size) (*Dialog, error) {
	d := &Dialog{
		ControlBase: sapling.NewControlBase(sapling.Rect{W: content.W, H: content.H + DialogTitleBarHeight}),
		title:       title,
	}
	if err := w.Add(d); err != nil {
		return nil, err
	}
	panel, err := NewPanel(w, sapling.Rect{Y: DialogTitleBarHeight, W: content.W, H: content.H})
	if err != nil {
		_ = w.Remove(d)
		return nil, err
	}
	panel.SetParent(d)
	d.panel = panel

	d.SetBackground(dialogBackground)
	d.SetBorderColor(sapling.ColorWhite)
	d.SetBorderSize(1)
	d.SetHidden(true)
	d.SetZOrder(DialogZOrder)
	return d, nil
}

// Title returns the title bar caption.
func (d *Dialog) Title() string { return d.title }

// Content returns the panel holding the dialog's controls.
func (d *Dialog) Content() *Panel { return d.panel }

// AddControl places c in the content panel. c must lie within ContentRect.
func (d *Dialog) AddControl(c sapling.Control) error {
	return d.panel.AddControl(c)
}

// Show makes the dialog visible.
func (d *Dialog) Show() { d.SetHidden(false) }

// Center moves the dialog to the middle of the window.
func (d *Dialog) Center() {
	w := d.Window()
	if w == nil {
		return
	}
	size := w.Size()
	loc := d.Location()
	loc.X = size.W/2 - loc.W/2
	loc.Y = size.H/2 - loc.H/2
	d.SetLocation(loc)
}

// TitleBarRect returns the title bar in window coordinates.
func (d *Dialog) TitleBarRect() sapling.Rect {
	r := d.Location()
	r.H = DialogTitleBarHeight
	return r
}

// CloseButtonRect returns the close box in window coordinates.
func (d *Dialog) CloseButtonRect() sapling.Rect {
	loc := d.Location()
	return sapling.Rect{
		X: loc.X + loc.W - DialogCloseButtonWidth,
		Y: loc.Y,
		W: DialogCloseButtonWidth,
		H: DialogTitleBarHeight - 1,
	}
}

// ContentRect returns the area below the title bar.
func (d *Dialog) ContentRect() sapling.Rect { return d.panel.Location() }

// Destroy unregisters the content panel (and its controls) and the dialog.
func (d *Dialog) Destroy() error {
	_ = d.panel.Destroy()
	return d.ControlBase.Destroy()
}

// CanDrag is true while the title bar is held.
func (d *Dialog) CanDrag() bool { return d.canDrag }

func (d *Dialog) OnHiddenChanged(hidden bool) {
	if d.panel != nil {
		d.panel.SetHidden(hidden)
	}
}

func (d *Dialog) OnLeftClick(p sapling.Point) {
	if d.CloseButtonRect().Contains(p) {
		d.SetHidden(true)
	}
}

func (d *Dialog) OnLocationChanged(dx, dy int) {
	if d.panel != nil {
		d.panel.SetLocation(d.panel.Location().Translate(dx, dy))
	}
}

func (d *Dialog) OnZOrderChanged() {
	if d.panel != nil {
		d.panel.SetZOrder(d.ZOrder() + 1)
	}
}

func (d *Dialog) OnMouseButton(e sapling.ButtonEvent) bool {
	switch {
	case e.LeftDown():
		p := e.Point()
		if d.TitleBarRect().Contains(p) && !d.CloseButtonRect().Contains(p) {
			d.canDrag = true
		}
		return true
	case !e.Pressed:
		d.canDrag = false
	}
	return false
}

func (d *Dialog) RenderImpl(r sapling.Renderer) {
	font := d.Window().Font()

	r.FillRect(d.Location(), d.Background())

	title := d.TitleBarRect()
	r.FillRect(title, sapling.ColorWhite)
	r.DrawText(title, d.title, font, sapling.ColorBlack, sapling.AlignMiddleCenter)

	closeBox := d.CloseButtonRect()
	r.FillRect(closeBox, dialogClose)
	drawX(r, closeBox, sapling.ColorBlack)
}
