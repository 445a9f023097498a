// Package ebitengine runs a sapling window on Ebitengine. It supplies a
// Renderer built on the vector and text/v2 packages, an input poller that
// turns Ebitengine's per-tick state into sapling events, PNG screenshots and
// an optional frame-rate overlay.
//
//	err := ebitengine.Run(cfg, func(w *sapling.Window) error {
//		_, err := widgets.NewButton(w, sapling.Rect{X: 10, Y: 10, W: 80, H: 24}, "OK")
//		return err
//	})
package ebitengine

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/sapling"
)

// Renderer draws into the screen image Ebitengine hands to Draw. It is only
// valid between begin and Present; calls outside a frame are dropped.
type Renderer struct {
	target  *ebiten.Image
	fonts   *fontCache
	overlay func(sapling.Renderer)

	// ScreenshotDir is where captured frames are written.
	ScreenshotDir string
	shots         []string
}

// NewRenderer parses the bundled Go fonts. It fails only if a font cannot be
// loaded, which leaves the window unable to draw text.
func NewRenderer() (*Renderer, error) {
	fonts, err := newFontCache()
	if err != nil {
		return nil, err
	}
	return &Renderer{fonts: fonts, ScreenshotDir: "screenshots"}, nil
}

func (r *Renderer) begin(screen *ebiten.Image) { r.target = screen }

func (r *Renderer) Clear(c sapling.Color) {
	if r.target == nil {
		return
	}
	r.target.Fill(toRGBA(c))
}

func (r *Renderer) FillRect(rc sapling.Rect, c sapling.Color) {
	if r.target == nil || rc.W <= 0 || rc.H <= 0 {
		return
	}
	vector.DrawFilledRect(r.target, float32(rc.X), float32(rc.Y), float32(rc.W), float32(rc.H), toRGBA(c), false)
}

// StrokeRect draws a border of the given thickness inside rc.
func (r *Renderer) StrokeRect(rc sapling.Rect, c sapling.Color, thickness int) {
	if r.target == nil || thickness <= 0 {
		return
	}
	t := float32(thickness)
	vector.StrokeRect(r.target,
		float32(rc.X)+t/2, float32(rc.Y)+t/2,
		float32(rc.W)-t, float32(rc.H)-t,
		t, toRGBA(c), false)
}

// DrawLine draws a one-pixel line through the centres of p1 and p2.
func (r *Renderer) DrawLine(p1, p2 sapling.Point, c sapling.Color) {
	if r.target == nil {
		return
	}
	vector.StrokeLine(r.target,
		float32(p1.X)+0.5, float32(p1.Y)+0.5,
		float32(p2.X)+0.5, float32(p2.Y)+0.5,
		1, toRGBA(c), false)
}

// DrawText draws s aligned inside rc and clipped to it.
func (r *Renderer) DrawText(rc sapling.Rect, s string, f sapling.Font, c sapling.Color, align sapling.TextAlign) {
	if r.target == nil || s == "" || rc.W <= 0 || rc.H <= 0 {
		return
	}
	face, lh := r.fonts.face(f)
	off := align.Offset(rc.Size(), r.measure(s, face, lh))

	clip, ok := r.target.SubImage(image.Rect(rc.X, rc.Y, rc.X+rc.W, rc.Y+rc.H)).(*ebiten.Image)
	if !ok {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(rc.X+off.X), float64(rc.Y+off.Y))
	op.ColorScale.ScaleWithColor(toRGBA(c))
	op.LineSpacing = lh
	text.Draw(clip, s, face, op)
}

func (r *Renderer) MeasureText(s string, f sapling.Font) sapling.Size {
	face, lh := r.fonts.face(f)
	return r.measure(s, face, lh)
}

func (r *Renderer) measure(s string, face *text.GoTextFace, lh float64) sapling.Size {
	if s == "" {
		return sapling.Size{H: int(math.Ceil(lh))}
	}
	w, h := text.Measure(s, face, lh)
	return sapling.Size{W: int(math.Ceil(w)), H: int(math.Ceil(h))}
}

// Present draws the overlay, if any, and writes requested screenshots of
// the finished frame.
func (r *Renderer) Present() {
	if r.target == nil {
		return
	}
	if r.overlay != nil {
		r.overlay(r)
	}
	r.flushScreenshots(r.target)
}

func (r *Renderer) SetCursorVisible(visible bool) {
	if visible {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	}
}

func (r *Renderer) SetCursorShape(shape sapling.CursorShape) {
	ebiten.SetCursorShape(cursorShape(shape))
}

func cursorShape(shape sapling.CursorShape) ebiten.CursorShapeType {
	switch shape {
	case sapling.CursorText:
		return ebiten.CursorShapeText
	case sapling.CursorPointer:
		return ebiten.CursorShapePointer
	}
	return ebiten.CursorShapeDefault
}

// toRGBA converts a straight-alpha sapling color to Ebitengine's
// premultiplied form.
func toRGBA(c sapling.Color) color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

func clamp01(v float64) float64 {
	return max(0, min(v, 1))
}
