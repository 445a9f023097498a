package widgets

import "github.com/phanxgames/sapling"

// checkSize is the side of the check square when the control is tall enough.
const checkSize = 16

// CheckBox is a square that toggles on a left click, followed by its caption.
type CheckBox struct {
	sapling.ControlBase
	text      string
	checked   bool
	onChanged func(checked bool)
}

// NewCheckBox creates and registers an unchecked check box.
func NewCheckBox(w *sapling.Window, loc sapling.Rect, text string) (*CheckBox, error) {
	c := &CheckBox{ControlBase: sapling.NewControlBase(loc), text: text}
	if err := w.Add(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *CheckBox) Text() string     { return c.text }
func (c *CheckBox) SetText(s string) { c.text = s }
func (c *CheckBox) Checked() bool    { return c.checked }

// SetChecked changes the state without running the callback.
func (c *CheckBox) SetChecked(checked bool) { c.checked = checked }

// SetOnCheckedChanged registers fn to run with the new state after each
// toggle by the user.
func (c *CheckBox) SetOnCheckedChanged(fn func(checked bool)) { c.onChanged = fn }

// BoxRect is the check square: half a side in from the left edge and
// centred vertically.
func (c *CheckBox) BoxRect() sapling.Rect {
	loc := c.Location()
	side := min(checkSize, loc.H)
	return sapling.Rect{X: loc.X + side/2, Y: loc.Y + (loc.H-side)/2, W: side, H: side}
}

// TextRect is the caption area, one side clear of the square.
func (c *CheckBox) TextRect() sapling.Rect {
	loc := c.Location()
	box := c.BoxRect()
	x := box.X + box.W*3/2
	return sapling.Rect{X: x, Y: loc.Y, W: max(loc.X+loc.W-x, 0), H: loc.H}
}

func (c *CheckBox) OnLeftClick(sapling.Point) {
	c.checked = !c.checked
	if c.onChanged != nil {
		c.onChanged(c.checked)
	}
}

func (c *CheckBox) OnMouseButton(e sapling.ButtonEvent) bool { return e.LeftDown() }

func (c *CheckBox) RenderImpl(r sapling.Renderer) {
	r.FillRect(c.Location(), c.Background())
	box := c.BoxRect()
	if c.checked {
		r.FillRect(box, c.Foreground())
	} else {
		r.StrokeRect(box, c.Foreground(), 1)
	}
	if c.text != "" {
		r.DrawText(c.TextRect(), c.text, c.Window().Font(), c.Foreground(), sapling.AlignMiddleLeft)
	}
}
