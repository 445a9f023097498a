package widgets

import (
	"github.com/phanxgames/sapling"
)

const (
	// DropdownButtonWidth is the width of the chevron area that opens the list.
	DropdownButtonWidth = 25
	// DropdownPopupZOrder is where the open list is drawn.
	DropdownPopupZOrder = 32

	dropdownPlaceholder = "select..."
)

// DropdownBox shows the selected item and opens a list of choices when its
// chevron is clicked. The list closes after a selection, on a press anywhere
// outside it, and when the drop-down loses focus.
type DropdownBox struct {
	sapling.ControlBase
	content  *ListBox
	text     string
	onSelect func(index int, item string)
}

// NewDropdownBox creates and registers a closed drop-down and its list.
func NewDropdownBox(w *sapling.Window, loc sapling.Rect) (*DropdownBox, error) {
	d := &DropdownBox{ControlBase: sapling.NewControlBase(loc), text: dropdownPlaceholder}
	if err := w.Add(d); err != nil {
		return nil, err
	}

	content, err := NewListBox(w, sapling.Rect{X: loc.X, Y: loc.Y + loc.H, W: loc.W}, 1, 10)
	if err != nil {
		_ = w.Remove(d)
		return nil, err
	}
	content.SetParent(d)
	content.SetHighlightOnHover(true)
	content.takesFocus = false
	content.SetHidden(true)
	content.SetZOrder(DropdownPopupZOrder)
	content.SetOnSelect(func(index int, item string) {
		d.text = item
		content.SetHidden(true)
		if d.onSelect != nil {
			d.onSelect(index, item)
		}
	})
	d.content = content

	d.SetBorderSize(1)
	d.SetBorderColor(colorListBorder)
	return d, nil
}

// AddItem appends a choice.
func (d *DropdownBox) AddItem(item string) { d.content.AddItem(item) }

// Text returns the caption: the selected item or the placeholder.
func (d *DropdownBox) Text() string { return d.text }

// Selected returns the selected index, or -1.
func (d *DropdownBox) Selected() int { return d.content.Selected() }

// Content returns the popup list.
func (d *DropdownBox) Content() *ListBox { return d.content }

// Open reports whether the list is showing.
func (d *DropdownBox) Open() bool { return !d.content.Hidden() }

// SetOnSelect registers fn to run when the selection changes.
func (d *DropdownBox) SetOnSelect(fn func(index int, item string)) { d.onSelect = fn }

// Destroy unregisters the list and the drop-down.
func (d *DropdownBox) Destroy() error {
	_ = d.content.Destroy()
	return d.ControlBase.Destroy()
}

func (d *DropdownBox) buttonRect() sapling.Rect {
	loc := d.Location()
	return sapling.Rect{X: loc.X + loc.W - DropdownButtonWidth, Y: loc.Y, W: DropdownButtonWidth, H: loc.H}
}

// toggle opens or closes the list. The list opens below the box unless it
// would run off the bottom of the window, in which case it opens above.
func (d *DropdownBox) toggle() {
	if d.Open() {
		d.content.SetHidden(true)
		return
	}
	loc := d.Location()
	cl := d.content.Location()
	cl.Y = loc.Y + loc.H
	if w := d.Window(); w != nil && cl.Y+cl.H > w.Size().H {
		cl.Y = loc.Y - cl.H
	}
	d.content.SetLocation(cl)
	d.content.SetHidden(false)
}

func (d *DropdownBox) OnFocusAcquired() {
	d.SetBorderColor(colorFocusBorder)
}

func (d *DropdownBox) OnFocusLost() {
	d.SetBorderColor(colorBorder)
	d.content.SetHidden(true)
}

func (d *DropdownBox) OnKeyboard(e sapling.KeyEvent) {
	d.content.OnKeyboard(e)
}

func (d *DropdownBox) OnLeftClick(p sapling.Point) {
	if p.X >= d.buttonRect().X {
		d.toggle()
	}
}

func (d *DropdownBox) OnMouseButton(e sapling.ButtonEvent) bool {
	return e.LeftDown()
}

func (d *DropdownBox) OnMouseButtonExternal(e sapling.ButtonEvent, clicked sapling.Control) {
	if e.LeftDown() && !sapling.IsWithin(clicked, d.content) {
		d.content.SetHidden(true)
	}
}

// OnMouseWheel steps the selection while the list is closed.
func (d *DropdownBox) OnMouseWheel(e sapling.WheelEvent) {
	if !d.HasFocus() || d.Open() {
		return
	}
	k := sapling.KeyDown
	if e.DY > 0 {
		k = sapling.KeyUp
	}
	d.OnKeyboard(sapling.KeyEvent{Key: k, Pressed: true})
}

func (d *DropdownBox) OnLocationChanged(dx, dy int) {
	if d.content != nil {
		d.content.SetLocation(d.content.Location().Translate(dx, dy))
	}
}

func (d *DropdownBox) RenderImpl(r sapling.Renderer) {
	font := d.Window().Font()
	r.FillRect(d.Location(), d.Background())

	btn := d.buttonRect()
	r.FillRect(btn, d.Foreground())
	drawChevron(r, btn, d.Background(), false)

	text := d.Location()
	text.W -= DropdownButtonWidth
	r.DrawText(text, d.text, font, d.Foreground(), sapling.AlignMiddleLeft)
}
