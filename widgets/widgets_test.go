package widgets

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phanxgames/sapling"
	"github.com/phanxgames/sapling/saplingtest"
)

// box is a bare control with no behaviour of its own.
type box struct {
	sapling.ControlBase
}

func newBox(loc sapling.Rect) *box {
	return &box{ControlBase: sapling.NewControlBase(loc)}
}

func (b *box) RenderImpl(r sapling.Renderer) {
	r.FillRect(b.Location(), b.Background())
}

func rect(x, y, w, h int) sapling.Rect {
	return sapling.Rect{X: x, Y: y, W: w, H: h}
}

func TestLabelRender(t *testing.T) {
	assert := assert.New(t)
	w, r, _ := saplingtest.NewWindow(t)

	l, err := NewLabel(w, rect(10, 10, 100, 20), "hello")
	require.NoError(t, err)
	l.SetAlignment(sapling.AlignMiddleCenter)

	w.Render()
	assert.Equal([]string{"hello"}, r.Texts())
	assert.True(r.Filled(l.Location(), w.Background()))

	var align sapling.TextAlign
	for _, op := range r.Ops() {
		if op.Kind == saplingtest.OpText {
			align = op.Align
		}
	}
	assert.Equal(sapling.AlignMiddleCenter, align)

	r.Reset()
	l.SetText("bye")
	w.Render()
	assert.Equal([]string{"bye"}, r.Texts())
}

func TestButtonHoverFade(t *testing.T) {
	assert := assert.New(t)
	w, _, clk := saplingtest.NewWindow(t)

	b, err := NewButton(w, rect(10, 10, 80, 24), "OK")
	require.NoError(t, err)
	assert.Equal(buttonBackground, b.Background())
	assert.Equal(colorBorder, b.BorderColor())
	assert.Equal(uint8(2), b.BorderSize())
	assert.Equal(0, w.Animating())

	saplingtest.Move(w, 20, 20)
	assert.Equal(buttonHoverBorder, b.BorderColor())
	assert.Equal(uint8(1), b.BorderSize())
	assert.Equal(1, w.Animating())

	saplingtest.Advance(w, clk, 40*time.Millisecond)
	mid := b.Background().NRGBA()
	assert.Greater(mid.B, buttonBackground.NRGBA().B)
	assert.Less(mid.B, buttonHoverBackground.NRGBA().B)

	saplingtest.Advance(w, clk, 200*time.Millisecond)
	assert.Equal(buttonHoverBackground.NRGBA(), b.Background().NRGBA())
	assert.Equal(0, w.Animating())

	saplingtest.Move(w, 300, 300)
	assert.Equal(colorBorder, b.BorderColor())
	assert.Equal(uint8(2), b.BorderSize())
	saplingtest.Advance(w, clk, 200*time.Millisecond)
	assert.Equal(buttonBackground.NRGBA(), b.Background().NRGBA())
}

func TestButtonClick(t *testing.T) {
	assert := assert.New(t)
	w, r, _ := saplingtest.NewWindow(t)

	b, err := NewButton(w, rect(10, 10, 80, 24), "OK")
	require.NoError(t, err)
	clicks := 0
	b.SetOnClick(func() { clicks++ })

	saplingtest.Move(w, 20, 20)
	saplingtest.Press(w, 20, 20)
	assert.Equal(buttonPressed, b.Background())
	assert.True(b.HasFocus())
	assert.Equal(colorFocusBorder, b.BorderColor())
	assert.Equal(0, clicks)

	saplingtest.Release(w, 20, 20)
	assert.Equal(1, clicks)

	// Press then leave: no click.
	saplingtest.Press(w, 20, 20)
	saplingtest.Move(w, 300, 300)
	saplingtest.Release(w, 300, 300)
	assert.Equal(1, clicks)

	r.Reset()
	w.Render()
	assert.Equal([]string{"OK"}, r.Texts())
}

func TestButtonFocusLost(t *testing.T) {
	assert := assert.New(t)
	w, _, _ := saplingtest.NewWindow(t)

	a, err := NewButton(w, rect(10, 10, 80, 24), "A")
	require.NoError(t, err)
	b, err := NewButton(w, rect(100, 10, 80, 24), "B")
	require.NoError(t, err)

	saplingtest.Click(w, 20, 20)
	require.True(t, a.HasFocus())

	saplingtest.Click(w, 110, 20)
	assert.True(b.HasFocus())
	assert.False(a.HasFocus())
	assert.Equal(buttonBackground, a.Background())
	assert.Equal(colorBorder, a.BorderColor())
}

func TestCheckBoxToggle(t *testing.T) {
	assert := assert.New(t)
	w, r, _ := saplingtest.NewWindow(t)

	c, err := NewCheckBox(w, rect(10, 10, 200, 24), "Remember me")
	require.NoError(t, err)
	assert.False(c.Checked())
	assert.Equal(rect(18, 14, 16, 16), c.BoxRect())
	assert.Equal(rect(42, 10, 168, 24), c.TextRect())

	var got []bool
	c.SetOnCheckedChanged(func(checked bool) { got = append(got, checked) })

	saplingtest.Move(w, 20, 20)
	saplingtest.Press(w, 20, 20)
	assert.True(c.HasFocus())
	assert.False(c.Checked())
	saplingtest.Release(w, 20, 20)
	assert.True(c.Checked())
	assert.Equal([]bool{true}, got)

	// Press then leave: no toggle.
	saplingtest.Press(w, 20, 20)
	saplingtest.Move(w, 300, 300)
	saplingtest.Release(w, 300, 300)
	assert.True(c.Checked())
	assert.Equal([]bool{true}, got)

	saplingtest.Click(w, 100, 20)
	assert.False(c.Checked())
	assert.Equal([]bool{true, false}, got)

	// Only the left button toggles.
	w.TranslateEvent(sapling.ButtonEvent{X: 100, Y: 20, Button: sapling.MouseButtonRight, Pressed: true})
	w.TranslateEvent(sapling.ButtonEvent{X: 100, Y: 20, Button: sapling.MouseButtonRight})
	assert.False(c.Checked())

	c.SetChecked(true)
	assert.Equal([]bool{true, false}, got)

	r.Reset()
	w.Render()
	assert.True(r.Filled(c.BoxRect(), c.Foreground()))
	assert.Equal([]string{"Remember me"}, r.Texts())

	c.SetChecked(false)
	r.Reset()
	w.Render()
	assert.False(r.Filled(c.BoxRect(), c.Foreground()))
	assert.Equal(1, r.Count(saplingtest.OpStroke))
}

func TestPanelAddControl(t *testing.T) {
	assert := assert.New(t)
	w, _, _ := saplingtest.NewWindow(t)

	p, err := NewPanel(w, rect(10, 10, 200, 100))
	require.NoError(t, err)
	p.SetZOrder(5)

	err = p.AddControl(newBox(rect(0, 0, 50, 50)))
	assert.ErrorIs(err, sapling.ErrOutOfBounds)
	assert.Equal(1, w.Len())

	child := newBox(rect(20, 20, 50, 20))
	require.NoError(t, p.AddControl(child))
	assert.True(child.Registered())
	assert.Equal(uint8(6), child.ZOrder())
	assert.Equal(sapling.Control(p), child.Parent())
	assert.True(sapling.IsWithin(child, p))
	assert.Equal([]sapling.Control{child}, p.Children())

	p.SetZOrder(10)
	assert.Equal(uint8(11), child.ZOrder())
}

func TestPanelUnregistered(t *testing.T) {
	p := &Panel{ControlBase: sapling.NewControlBase(rect(0, 0, 100, 100))}
	err := p.AddControl(newBox(rect(10, 10, 10, 10)))
	assert.ErrorIs(t, err, sapling.ErrNotRegistered)
}

func TestPanelPropagation(t *testing.T) {
	assert := assert.New(t)
	w, _, _ := saplingtest.NewWindow(t)

	p, err := NewPanel(w, rect(10, 10, 200, 100))
	require.NoError(t, err)
	child := newBox(rect(20, 20, 50, 20))
	require.NoError(t, p.AddControl(child))

	p.SetHidden(true)
	assert.True(child.Hidden())
	p.SetHidden(false)
	assert.False(child.Hidden())

	p.SetLocation(rect(15, 30, 200, 100))
	assert.Equal(rect(25, 40, 50, 20), child.Location())

	p.SetHidden(true)
	late := newBox(rect(20, 50, 10, 10))
	require.NoError(t, p.AddControl(late))
	assert.True(late.Hidden())
}

func TestPanelOcclusion(t *testing.T) {
	assert := assert.New(t)
	w, r, _ := saplingtest.NewWindow(t)

	under := newBox(rect(30, 30, 10, 10))
	require.NoError(t, w.Add(under))
	p, err := NewPanel(w, rect(10, 10, 200, 100))
	require.NoError(t, err)
	p.SetZOrder(1)
	child := newBox(rect(50, 50, 10, 10))
	require.NoError(t, p.AddControl(child))

	w.Render()
	assert.True(w.IsOccluded(under))
	assert.False(w.IsOccluded(child))
	assert.True(r.Filled(child.Location(), child.Background()))
	assert.Equal(sapling.Control(child), w.ControlAt(sapling.Point{X: 55, Y: 55}))
}

func TestPanelDestroy(t *testing.T) {
	w, _, _ := saplingtest.NewWindow(t)

	p, err := NewPanel(w, rect(10, 10, 200, 100))
	require.NoError(t, err)
	require.NoError(t, p.AddControl(newBox(rect(20, 20, 10, 10))))
	btn, err := NewButton(w, rect(40, 40, 50, 20), "x")
	require.NoError(t, err)
	require.NoError(t, p.AddControl(btn))
	require.Equal(t, 3, w.Len())

	require.NoError(t, p.Destroy())
	assert.Equal(t, 0, w.Len())
	assert.Empty(t, p.Children())
}
