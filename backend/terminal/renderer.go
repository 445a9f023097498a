// Package terminal runs a sapling window in a text terminal through tcell.
// Window units are character cells: a Rect of W 20 and H 3 covers twenty
// columns of three rows. Text is measured with go-runewidth so wide runes
// take two cells.
//
//	screen, err := tcell.NewScreen()
//	if err != nil {
//		log.Fatal(err)
//	}
//	err = terminal.Run(ctx, screen, cfg, func(w *sapling.Window) error {
//		_, err := widgets.NewButton(w, sapling.Rect{X: 2, Y: 1, W: 12, H: 3}, "OK")
//		return err
//	})
package terminal

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/phanxgames/sapling"
)

// Renderer draws into a tcell screen. Colours are sent as 24-bit RGB;
// tcell downgrades them on terminals with a smaller palette.
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer wraps an initialized screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Screen returns the wrapped screen.
func (r *Renderer) Screen() tcell.Screen { return r.screen }

func (r *Renderer) Clear(c sapling.Color) {
	r.screen.Fill(' ', tcell.StyleDefault.Background(toColor(c)))
}

// FillRect paints the background of every cell in rc. Translucent colours
// are blended over the cell's current background and keep its rune.
func (r *Renderer) FillRect(rc sapling.Rect, c sapling.Color) {
	if c.A <= 0 {
		return
	}
	rc = r.clip(rc)
	for y := rc.Y; y < rc.Y+rc.H; y++ {
		for x := rc.X; x < rc.X+rc.W; x++ {
			if c.A >= 1 {
				r.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault.Background(toColor(c)))
				continue
			}
			mainc, comb, st, _ := r.screen.GetContent(x, y)
			_, bg, _ := st.Decompose()
			r.screen.SetContent(x, y, mainc, comb, st.Background(blend(bg, c)))
		}
	}
}

// Box-drawing runes for single and double borders.
var (
	singleBox = [6]rune{tcell.RuneULCorner, tcell.RuneURCorner, tcell.RuneLLCorner, tcell.RuneLRCorner, tcell.RuneHLine, tcell.RuneVLine}
	doubleBox = [6]rune{'╔', '╗', '╚', '╝', '═', '║'}
)

// StrokeRect outlines the cells on the edge of rc. A cell is too coarse for
// banded borders, so a thickness of one draws a single line and anything
// thicker a double line.
func (r *Renderer) StrokeRect(rc sapling.Rect, c sapling.Color, thickness int) {
	if thickness <= 0 || rc.W <= 0 || rc.H <= 0 {
		return
	}
	box := singleBox
	if thickness > 1 {
		box = doubleBox
	}
	x0, y0 := rc.X, rc.Y
	x1, y1 := rc.X+rc.W-1, rc.Y+rc.H-1
	for x := x0 + 1; x < x1; x++ {
		r.setRune(x, y0, box[4], c)
		r.setRune(x, y1, box[4], c)
	}
	for y := y0 + 1; y < y1; y++ {
		r.setRune(x0, y, box[5], c)
		r.setRune(x1, y, box[5], c)
	}
	switch {
	case rc.W == 1 && rc.H == 1:
		r.setRune(x0, y0, box[5], c)
	case rc.H == 1:
		r.setRune(x0, y0, box[4], c)
		r.setRune(x1, y0, box[4], c)
	case rc.W == 1:
		r.setRune(x0, y0, box[5], c)
		r.setRune(x0, y1, box[5], c)
	default:
		r.setRune(x0, y0, box[0], c)
		r.setRune(x1, y0, box[1], c)
		r.setRune(x0, y1, box[2], c)
		r.setRune(x1, y1, box[3], c)
	}
}

// DrawLine draws straight runs with line-drawing runes and anything else
// as a stepped run of bullets.
func (r *Renderer) DrawLine(p1, p2 sapling.Point, c sapling.Color) {
	switch {
	case p1.X == p2.X:
		for y := min(p1.Y, p2.Y); y <= max(p1.Y, p2.Y); y++ {
			r.setRune(p1.X, y, tcell.RuneVLine, c)
		}
	case p1.Y == p2.Y:
		for x := min(p1.X, p2.X); x <= max(p1.X, p2.X); x++ {
			r.setRune(x, p1.Y, tcell.RuneHLine, c)
		}
	default:
		dx, dy := abs(p2.X-p1.X), abs(p2.Y-p1.Y)
		steps := max(dx, dy)
		for i := 0; i <= steps; i++ {
			x := p1.X + (p2.X-p1.X)*i/steps
			y := p1.Y + (p2.Y-p1.Y)*i/steps
			r.setRune(x, y, tcell.RuneBullet, c)
		}
	}
}

// DrawText writes s inside rc, one row per line, keeping each cell's
// background. Runes that would straddle the right edge are dropped.
func (r *Renderer) DrawText(rc sapling.Rect, s string, f sapling.Font, c sapling.Color, align sapling.TextAlign) {
	if s == "" || rc.W <= 0 || rc.H <= 0 {
		return
	}
	lines := strings.Split(s, "\n")
	block := measureLines(lines)
	top := align.Offset(rc.Size(), block).Y
	for i, line := range lines {
		y := rc.Y + top + i
		if y < rc.Y || y >= rc.Y+rc.H {
			continue
		}
		lw := runewidth.StringWidth(line)
		x := rc.X + align.Offset(rc.Size(), sapling.Size{W: lw, H: block.H}).X
		for _, ch := range line {
			rw := runewidth.RuneWidth(ch)
			if x+rw > rc.X+rc.W {
				break
			}
			if x >= rc.X {
				r.setStyledRune(x, y, ch, c, f)
			}
			x += rw
		}
	}
}

// MeasureText returns the widest line in cells by the number of lines.
func (r *Renderer) MeasureText(s string, _ sapling.Font) sapling.Size {
	return measureLines(strings.Split(s, "\n"))
}

func measureLines(lines []string) sapling.Size {
	sz := sapling.Size{H: len(lines)}
	for _, l := range lines {
		sz.W = max(sz.W, runewidth.StringWidth(l))
	}
	return sz
}

func (r *Renderer) Present() {
	r.screen.Show()
}

func (r *Renderer) setRune(x, y int, ch rune, c sapling.Color) {
	r.setStyledRune(x, y, ch, c, sapling.Font{})
}

// setStyledRune replaces the rune at (x, y) with ch in colour c over the
// cell's existing background.
func (r *Renderer) setStyledRune(x, y int, ch rune, c sapling.Color, f sapling.Font) {
	w, h := r.screen.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	_, _, st, _ := r.screen.GetContent(x, y)
	_, bg, _ := st.Decompose()
	style := tcell.StyleDefault.Background(bg).Foreground(toColor(c)).Bold(f.Bold).Italic(f.Italic)
	r.screen.SetContent(x, y, ch, nil, style)
}

func (r *Renderer) clip(rc sapling.Rect) sapling.Rect {
	w, h := r.screen.Size()
	x0, y0 := max(rc.X, 0), max(rc.Y, 0)
	x1, y1 := min(rc.X+rc.W, w), min(rc.Y+rc.H, h)
	if x1 <= x0 || y1 <= y0 {
		return sapling.Rect{}
	}
	return sapling.Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// toColor drops alpha; translucency is handled by blend.
func toColor(c sapling.Color) tcell.Color {
	n := c.NRGBA()
	return tcell.NewRGBColor(int32(n.R), int32(n.G), int32(n.B))
}

// blend mixes c over under by c's alpha. An unset background counts as
// black.
func blend(under tcell.Color, c sapling.Color) tcell.Color {
	var ur, ug, ub int32
	if under.Valid() {
		ur, ug, ub = under.RGB()
	}
	n := c.NRGBA()
	a := c.A
	mix := func(u int32, v uint8) int32 {
		return int32(float64(u)*(1-a) + float64(v)*a + 0.5)
	}
	return tcell.NewRGBColor(mix(ur, n.R), mix(ug, n.G), mix(ub, n.B))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
