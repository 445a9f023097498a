package widgets

import (
	"github.com/phanxgames/sapling"
)

// ListBox shows a vertical list of strings with a single selection. It
// grows from minVisible to maxVisible rows as items are added, then shows a
// scrollbar.
type ListBox struct {
	sapling.ControlBase
	items       []string
	selected    int
	highlighted int
	minVisible  int
	maxVisible  int
	visStart    int
	itemHeight  int
	scrollbar   *VerticalScrollbar

	highlightOnHover    bool
	scrollRequiresFocus bool
	takesFocus          bool

	onSelect func(index int, item string)
}

// NewListBox creates and registers an empty list box. The height of loc is
// replaced by minVisible rows of the window font.
func NewListBox(w *sapling.Window, loc sapling.Rect, minVisible, maxVisible int) (*ListBox, error) {
	minVisible = max(minVisible, 1)
	maxVisible = max(maxVisible, minVisible)

	l := &ListBox{
		ControlBase: sapling.NewControlBase(loc),
		selected:    -1,
		highlighted: -1,
		minVisible:  minVisible,
		maxVisible:  maxVisible,
		itemHeight:  max(lineHeight(w), 1),
		takesFocus:  true,
	}
	if err := w.Add(l); err != nil {
		return nil, err
	}

	sb, err := NewVerticalScrollbar(w, sapling.Rect{
		X: loc.X + loc.W - (ScrollbarWidth + 1),
		Y: loc.Y + 1,
		W: ScrollbarWidth,
		H: loc.H - 2,
	}, l)
	if err != nil {
		_ = w.Remove(l)
		return nil, err
	}
	sb.SetOnScroll(func(e ScrollEvent) { l.visStart = e.Value })
	sb.SetHidden(true)
	l.scrollbar = sb

	loc.H = l.itemHeight * minVisible
	l.SetLocation(loc)
	l.SetBorderColor(colorListBorder)
	l.SetBorderSize(1)
	l.OnZOrderChanged()
	return l, nil
}

// Items returns the list contents.
func (l *ListBox) Items() []string { return l.items }

// Len returns the number of items.
func (l *ListBox) Len() int { return len(l.items) }

// Selected returns the selected index, or -1.
func (l *ListBox) Selected() int { return l.selected }

// SelectedItem returns the selected string and whether there is one.
func (l *ListBox) SelectedItem() (string, bool) {
	if l.selected < 0 {
		return "", false
	}
	return l.items[l.selected], true
}

// VisibleStart returns the index of the first visible row.
func (l *ListBox) VisibleStart() int { return l.visStart }

// Scrollbar returns the list's scrollbar.
func (l *ListBox) Scrollbar() *VerticalScrollbar { return l.scrollbar }

// SetOnSelect registers fn to run when the selection changes.
func (l *ListBox) SetOnSelect(fn func(index int, item string)) { l.onSelect = fn }

// SetHighlightOnHover makes the row under the pointer highlighted.
func (l *ListBox) SetHighlightOnHover(on bool) { l.highlightOnHover = on }

// SetScrollRequiresFocus restricts wheel scrolling to when the list has focus.
func (l *ListBox) SetScrollRequiresFocus(on bool) { l.scrollRequiresFocus = on }

// AddItem appends item, growing the list up to maxVisible rows.
func (l *ListBox) AddItem(item string) {
	l.items = append(l.items, item)
	l.scrollbar.SetMaximum(max(len(l.items)-l.maxVisible, 0))

	if n := len(l.items); n > l.minVisible && n <= l.maxVisible {
		loc := l.Location()
		loc.H = l.itemHeight * n
		l.SetLocation(loc)
	}
	if len(l.items) > l.maxVisible && !l.Hidden() {
		l.scrollbar.SetHidden(false)
	}
}

// Select makes index the selection, scrolling it into view, and fires the
// callback. Out-of-range indexes are ignored.
func (l *ListBox) Select(index int) {
	if index < 0 || index >= len(l.items) {
		return
	}
	l.selected = index
	l.selectionChanged()
}

func (l *ListBox) visibleRows() int {
	return max(l.minVisible, min(len(l.items), l.maxVisible))
}

func (l *ListBox) selectionChanged() {
	rows := min(l.visibleRows(), len(l.items))
	switch {
	case l.selected < l.visStart:
		l.visStart = l.selected
	case l.selected >= l.visStart+rows:
		l.visStart = l.selected - rows + 1
	}
	l.visStart = max(0, min(l.visStart, len(l.items)-rows))
	l.scrollbar.SetValue(l.visStart)

	l.highlighted = l.selected
	if l.onSelect != nil {
		l.onSelect(l.selected, l.items[l.selected])
	}
}

// IndexAt returns the item index under window point p, or -1.
func (l *ListBox) IndexAt(p sapling.Point) int {
	if len(l.items) == 0 {
		return -1
	}
	row := (p.Y - l.Location().Y) / l.itemHeight
	if row < 0 {
		return -1
	}
	i := row + l.visStart
	if i >= len(l.items) {
		return -1
	}
	return i
}

// Destroy unregisters the scrollbar and the list.
func (l *ListBox) Destroy() error {
	_ = l.scrollbar.Destroy()
	return l.ControlBase.Destroy()
}

func (l *ListBox) OnHiddenChanged(hidden bool) {
	if len(l.items) > l.maxVisible {
		l.scrollbar.SetHidden(hidden)
	}
	// Hover highlighting can leave a row other than the selection lit.
	if !hidden {
		l.highlighted = l.selected
	}
}

func (l *ListBox) OnKeyboard(e sapling.KeyEvent) {
	if !e.Pressed {
		return
	}
	switch e.Key {
	case sapling.KeyDown:
		if l.selected < len(l.items)-1 {
			l.Select(l.selected + 1)
		}
	case sapling.KeyUp:
		if l.selected > 0 {
			l.Select(l.selected - 1)
		}
	}
}

func (l *ListBox) OnLeftClick(p sapling.Point) {
	if i := l.IndexAt(p); i >= 0 && i != l.selected {
		l.Select(i)
	}
}

func (l *ListBox) OnMouseButton(e sapling.ButtonEvent) bool {
	return l.takesFocus && e.LeftDown()
}

func (l *ListBox) OnMouseMotion(e sapling.MotionEvent) {
	if !l.highlightOnHover {
		return
	}
	if i := l.IndexAt(e.Point()); i >= 0 {
		l.highlighted = i
	}
}

func (l *ListBox) OnMouseWheel(e sapling.WheelEvent) {
	if l.HasFocus() || !l.scrollRequiresFocus {
		l.scrollbar.OnMouseWheel(e)
	}
}

func (l *ListBox) OnLocationChanged(dx, dy int) {
	if l.scrollbar != nil {
		l.scrollbar.SetLocation(l.scrollbar.Location().Translate(dx, dy))
	}
}

func (l *ListBox) OnResize(dw, dh int) {
	if l.scrollbar == nil {
		return
	}
	loc := l.scrollbar.Location()
	loc.X += dw
	loc.H += dh
	l.scrollbar.SetLocation(loc)
}

func (l *ListBox) OnZOrderChanged() {
	if l.scrollbar != nil {
		l.scrollbar.SetZOrder(l.ZOrder() + 1)
	}
}

func (l *ListBox) RenderImpl(r sapling.Renderer) {
	font := l.Window().Font()
	loc := l.Location()

	// Fill first so short rows don't leave gaps.
	r.FillRect(loc, l.Background())

	row := sapling.Rect{X: loc.X, Y: loc.Y, W: loc.W, H: l.itemHeight}
	end := min(l.visStart+l.visibleRows(), len(l.items))
	for i := l.visStart; i < end; i++ {
		fg := l.Foreground()
		if i == l.highlighted {
			r.FillRect(row, l.Foreground())
			fg = l.Background()
		}
		r.DrawText(row, l.items[i], font, fg, sapling.AlignMiddleLeft)
		row.Y += l.itemHeight
	}
}
