package widgets

import (
	"slices"

	"github.com/phanxgames/sapling"
)

const (
	textOffsetX = 4
	caretWidth  = 1
)

// TextBox is a single-line editable text field. It takes focus on a left
// press, shows a blinking caret while focused and scrolls its text
// horizontally to keep the caret in view.
type TextBox struct {
	sapling.ControlBase
	caret    *Caret
	text     []rune
	pos      int // caret position, in runes
	first    int // first visible rune
	onChange func(string)
}

// NewTextBox creates and registers an empty text box and its caret.
func NewTextBox(w *sapling.Window, loc sapling.Rect) (*TextBox, error) {
	t := &TextBox{ControlBase: sapling.NewControlBase(loc)}
	if err := w.Add(t); err != nil {
		return nil, err
	}
	// The caret is one line tall, centred vertically.
	inset := max((loc.H-lineHeight(w))/2, 0)
	caret, err := NewCaret(w, sapling.Rect{
		X: loc.X + textOffsetX,
		Y: loc.Y + inset,
		W: caretWidth,
		H: loc.H - 2*inset,
	})
	if err != nil {
		_ = w.Remove(t)
		return nil, err
	}
	caret.SetParent(t)
	t.caret = caret

	t.SetBorderColor(colorBorder)
	t.SetBorderSize(1)
	t.OnZOrderChanged()
	return t, nil
}

// Text returns the current contents.
func (t *TextBox) Text() string { return string(t.text) }

// SetText replaces the contents and moves the caret to the end.
func (t *TextBox) SetText(s string) {
	t.text = []rune(s)
	t.pos = len(t.text)
	t.first = 0
	t.changed()
}

// Position returns the caret position in characters.
func (t *TextBox) Position() int { return t.pos }

// Caret returns the text box's caret.
func (t *TextBox) Caret() *Caret { return t.caret }

// SetOnChange registers fn to run after every edit.
func (t *TextBox) SetOnChange(fn func(string)) { t.onChange = fn }

// Destroy unregisters the caret and the text box.
func (t *TextBox) Destroy() error {
	_ = t.caret.Destroy()
	return t.ControlBase.Destroy()
}

func (t *TextBox) font() sapling.Font { return t.Window().Font() }

func (t *TextBox) width(rs []rune) int {
	w := t.Window()
	if w == nil || len(rs) == 0 {
		return 0
	}
	return w.Renderer().MeasureText(string(rs), w.Font()).W
}

// textArea is the region text is drawn into.
func (t *TextBox) textArea() sapling.Rect {
	loc := t.Location()
	return sapling.Rect{X: loc.X + textOffsetX, Y: loc.Y, W: loc.W - 2*textOffsetX, H: loc.H}
}

// layout scrolls the visible window so the caret stays inside the text
// area, then places the caret.
func (t *TextBox) layout() {
	area := t.textArea()
	avail := area.W - caretWidth
	if t.pos < t.first {
		t.first = t.pos
	}
	for t.first < t.pos && t.width(t.text[t.first:t.pos]) > avail {
		t.first++
	}
	// Pull text back in from the left when there is room.
	for t.first > 0 && t.width(t.text[t.first-1:]) <= avail {
		t.first--
	}

	loc := t.caret.Location()
	loc.X = area.X + t.width(t.text[t.first:t.pos])
	t.caret.SetLocation(loc)
}

func (t *TextBox) changed() {
	if t.Window() != nil {
		t.layout()
	}
	if t.onChange != nil {
		t.onChange(string(t.text))
	}
}

func (t *TextBox) moveTo(pos int) {
	t.pos = max(0, min(pos, len(t.text)))
	t.layout()
}

// positionAt returns the character boundary closest to window x.
func (t *TextBox) positionAt(x int) int {
	area := t.textArea()
	best, bestDist := t.first, abs(x-area.X)
	for i := t.first + 1; i <= len(t.text); i++ {
		d := abs(x - (area.X + t.width(t.text[t.first:i])))
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func (t *TextBox) OnFocusAcquired() {
	t.caret.Start()
	t.SetBorderColor(colorFocusBorder)
}

func (t *TextBox) OnFocusLost() {
	t.caret.Stop()
	t.SetBorderColor(colorBorder)
}

func (t *TextBox) OnKeyboard(e sapling.KeyEvent) {
	if !e.Pressed {
		t.caret.Resume()
		return
	}
	t.caret.Pause()

	switch e.Key {
	case sapling.KeyBackspace:
		if t.pos == 0 {
			return
		}
		t.text = slices.Delete(t.text, t.pos-1, t.pos)
		t.pos--
		t.changed()
	case sapling.KeyDelete:
		if t.pos >= len(t.text) {
			return
		}
		t.text = slices.Delete(t.text, t.pos, t.pos+1)
		t.changed()
	case sapling.KeyLeft:
		t.moveTo(t.pos - 1)
	case sapling.KeyRight:
		t.moveTo(t.pos + 1)
	case sapling.KeyHome:
		t.moveTo(0)
	case sapling.KeyEnd:
		t.moveTo(len(t.text))
	}
}

func (t *TextBox) OnTextInput(e sapling.TextInputEvent) {
	if w := t.Window(); w != nil {
		w.SetCursorHidden(true)
	}
	in := []rune(e.Text)
	t.text = slices.Insert(t.text, t.pos, in...)
	t.pos += len(in)
	t.changed()
}

func (t *TextBox) OnMouseButton(e sapling.ButtonEvent) bool {
	if !e.LeftDown() {
		return false
	}
	t.moveTo(t.positionAt(e.X))
	return true
}

func (t *TextBox) OnMouseEnter() {
	t.Window().SetCursorShape(sapling.CursorText)
}

func (t *TextBox) OnMouseExit() {
	t.Window().SetCursorShape(sapling.CursorDefault)
}

func (t *TextBox) OnHiddenChanged(hidden bool) {
	if hidden {
		t.caret.Stop()
	} else if t.HasFocus() {
		t.caret.Start()
	}
}

func (t *TextBox) OnLocationChanged(dx, dy int) {
	if t.caret != nil {
		t.caret.SetLocation(t.caret.Location().Translate(dx, dy))
	}
}

func (t *TextBox) OnZOrderChanged() {
	if t.caret != nil {
		t.caret.SetZOrder(t.ZOrder() + 1)
	}
}

func (t *TextBox) RenderImpl(r sapling.Renderer) {
	r.FillRect(t.Location(), t.Background())
	if t.first < len(t.text) {
		r.DrawText(t.textArea(), string(t.text[t.first:]), t.font(), t.Foreground(), sapling.AlignMiddleLeft)
	}
}
