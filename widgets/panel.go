package widgets

import (
	"fmt"

	"github.com/phanxgames/sapling"
)

// Panel groups controls that move, hide and are destroyed together. Children
// sit one z-order above the panel and must lie inside it.
type Panel struct {
	sapling.ControlBase
	children []sapling.Control
}

// NewPanel creates and registers an empty panel.
func NewPanel(w *sapling.Window, loc sapling.Rect) (*Panel, error) {
	p := &Panel{ControlBase: sapling.NewControlBase(loc)}
	if err := w.Add(p); err != nil {
		return nil, err
	}
	return p, nil
}

// AddControl attaches c to the panel, registering it with the panel's window
// first if needed. c must be fully inside the panel.
func (p *Panel) AddControl(c sapling.Control) error {
	cb := c.Base()
	if !p.Location().Encloses(cb.Location()) {
		return fmt.Errorf("panel add %v outside %v: %w", cb.Location(), p.Location(), sapling.ErrOutOfBounds)
	}
	if !cb.Registered() {
		w := p.Window()
		if w == nil {
			return fmt.Errorf("panel add: %w", sapling.ErrNotRegistered)
		}
		if err := w.Add(c); err != nil {
			return err
		}
	}

	p.children = append(p.children, c)
	cb.SetParent(p)
	cb.SetZOrder(p.ZOrder() + 1)
	if p.Hidden() {
		cb.SetHidden(true)
	}
	return nil
}

// Children returns the attached controls in the order they were added.
func (p *Panel) Children() []sapling.Control { return p.children }

// Destroy unregisters the panel's children and then the panel.
func (p *Panel) Destroy() error {
	for _, c := range p.children {
		if d, ok := c.(interface{ Destroy() error }); ok {
			_ = d.Destroy()
		}
	}
	p.children = nil
	return p.ControlBase.Destroy()
}

func (p *Panel) OnHiddenChanged(hidden bool) {
	for _, c := range p.children {
		c.Base().SetHidden(hidden)
	}
}

func (p *Panel) OnLocationChanged(dx, dy int) {
	for _, c := range p.children {
		cb := c.Base()
		cb.SetLocation(cb.Location().Translate(dx, dy))
	}
}

func (p *Panel) OnZOrderChanged() {
	for _, c := range p.children {
		c.Base().SetZOrder(p.ZOrder() + 1)
	}
}

func (p *Panel) RenderImpl(r sapling.Renderer) {
	r.FillRect(p.Location(), p.Background())
}
