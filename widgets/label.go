package widgets

import "github.com/phanxgames/sapling"

// Label draws a line of text over its background.
type Label struct {
	sapling.ControlBase
	text  string
	font  sapling.Font
	align sapling.TextAlign
}

// NewLabel creates and registers a label. The font defaults to the window's.
func NewLabel(w *sapling.Window, loc sapling.Rect, text string) (*Label, error) {
	l := &Label{
		ControlBase: sapling.NewControlBase(loc),
		text:        text,
		font:        w.Font(),
		align:       sapling.AlignTopLeft,
	}
	if err := w.Add(l); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Label) Text() string                     { return l.text }
func (l *Label) SetText(s string)                 { l.text = s }
func (l *Label) Font() sapling.Font               { return l.font }
func (l *Label) SetFont(f sapling.Font)           { l.font = f }
func (l *Label) Alignment() sapling.TextAlign     { return l.align }
func (l *Label) SetAlignment(a sapling.TextAlign) { l.align = a }

// RenderImpl implements sapling.Control.
func (l *Label) RenderImpl(r sapling.Renderer) {
	r.FillRect(l.Location(), l.Background())
	r.DrawText(l.Location(), l.text, l.font, l.Foreground(), l.align)
}
