// Package widgets holds the stock controls: labels, buttons, check boxes, panels,
// dialogs, text boxes, list boxes, drop-downs and scrollbars.
//
// Every constructor registers the new control (and any controls it is built
// from) with the window it is given, so the result is live immediately.
package widgets

import "github.com/phanxgames/sapling"

// Shared colour schemes.
var (
	colorBorder      = sapling.RGB(128, 128, 128)
	colorFocusBorder = sapling.RGB(64, 64, 128)
	colorListBorder  = sapling.RGB(0, 128, 0)
)

// drawChevron draws a small two-pixel-thick arrowhead centred in bounds.
func drawChevron(r sapling.Renderer, bounds sapling.Rect, c sapling.Color, up bool) {
	const size = 2

	mid := sapling.Point{X: bounds.X + bounds.W/2, Y: bounds.Y + bounds.H/2}
	end := mid
	if up {
		end.Y += size
		mid.Y -= size
	} else {
		end.Y -= size
		mid.Y += size
	}

	for i := 0; i < 2; i++ {
		left := sapling.Point{X: mid.X - size*2, Y: end.Y}
		right := sapling.Point{X: mid.X + size*2, Y: end.Y}
		r.DrawLine(mid, left, c)
		r.DrawLine(mid, right, c)
		end.Y++
		mid.Y++
	}
}

// drawX draws a two-pixel-thick cross centred in bounds.
func drawX(r sapling.Renderer, bounds sapling.Rect, c sapling.Color) {
	const size = 5

	cx, cy := bounds.X+bounds.W/2, bounds.Y+bounds.H/2
	for dx := 0; dx < 2; dx++ {
		r.DrawLine(sapling.Point{X: cx - size + dx, Y: cy - size}, sapling.Point{X: cx + size + dx, Y: cy + size}, c)
		r.DrawLine(sapling.Point{X: cx + size - dx, Y: cy - size}, sapling.Point{X: cx - size - dx, Y: cy + size}, c)
	}
}

// lineHeight is the height of one line of text in the window's font.
func lineHeight(w *sapling.Window) int {
	return w.Renderer().MeasureText("Ag", w.Font()).H
}
