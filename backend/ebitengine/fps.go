package ebitengine

import (
	"fmt"
	"time"

	"github.com/phanxgames/sapling"
)

const fpsRefresh = 500 * time.Millisecond

var (
	fpsBounds     = sapling.Rect{X: 0, Y: 0, W: 100, H: 36}
	fpsBackground = sapling.Color{A: 0.5}
	fpsFont       = sapling.Font{Family: "mono", Size: 12}
)

// fpsCounter is the frame-rate overlay. It is drawn over the finished frame
// rather than registered as a control, so it never takes clicks.
type fpsCounter struct {
	last time.Time
	text string
}

// update refreshes the text at most every fpsRefresh.
func (f *fpsCounter) update(now time.Time, fps, tps float64) {
	if !f.last.IsZero() && now.Sub(f.last) < fpsRefresh {
		return
	}
	f.last = now
	f.text = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", fps, tps)
}

func (f *fpsCounter) draw(r sapling.Renderer) {
	if f.text == "" {
		return
	}
	r.FillRect(fpsBounds, fpsBackground)
	inner := sapling.Rect{X: fpsBounds.X + 4, Y: fpsBounds.Y + 2, W: fpsBounds.W - 8, H: fpsBounds.H - 4}
	r.DrawText(inner, f.text, fpsFont, sapling.ColorWhite, sapling.AlignTopLeft)
}
