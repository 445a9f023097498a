package sapling

import (
	"math"
	"slices"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float fields of a control simultaneously.
// Create one via the convenience constructors (TweenLocation, TweenBackground,
// TweenForeground) and either call Update(dt) yourself or hand the group to
// Window.Animate, which advances it once per Render. If the target control
// is removed from its window, the group stops immediately.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	values [4]float32
	apply  func(v [4]float32)
	target Control
	Done   bool
}

// Update advances all tweens by dt seconds and applies the interpolated
// values to the target. If the target has been unregistered, Done is set to
// true and no writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	if g.target != nil && !g.target.Base().Registered() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		g.values[i] = val
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone

	if g.apply != nil {
		g.apply(g.values)
	}
}

// TweenLocation creates a TweenGroup that moves c's origin to the given
// point over the specified duration using the easing function. Size is kept.
func TweenLocation(c Control, to Point, duration float32, fn ease.TweenFunc) *TweenGroup {
	b := c.Base()
	g := &TweenGroup{count: 2, target: c}
	g.tweens[0] = gween.New(float32(b.loc.X), float32(to.X), duration, fn)
	g.tweens[1] = gween.New(float32(b.loc.Y), float32(to.Y), duration, fn)
	g.apply = func(v [4]float32) {
		loc := b.Location()
		loc.X = int(math.Round(float64(v[0])))
		loc.Y = int(math.Round(float64(v[1])))
		b.SetLocation(loc)
	}
	return g
}

// TweenBackground creates a TweenGroup that animates all four components of
// c's background color to the target color.
func TweenBackground(c Control, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	b := c.Base()
	g := colorTween(c, b.background, to, duration, fn)
	g.apply = func(v [4]float32) { b.SetBackground(colorFrom(v)) }
	return g
}

// TweenForeground is TweenBackground for the foreground color.
func TweenForeground(c Control, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	b := c.Base()
	g := colorTween(c, b.foreground, to, duration, fn)
	g.apply = func(v [4]float32) { b.SetForeground(colorFrom(v)) }
	return g
}

func colorTween(c Control, from, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 4, target: c}
	g.tweens[0] = gween.New(float32(from.R), float32(to.R), duration, fn)
	g.tweens[1] = gween.New(float32(from.G), float32(to.G), duration, fn)
	g.tweens[2] = gween.New(float32(from.B), float32(to.B), duration, fn)
	g.tweens[3] = gween.New(float32(from.A), float32(to.A), duration, fn)
	return g
}

func colorFrom(v [4]float32) Color {
	return Color{R: float64(v[0]), G: float64(v[1]), B: float64(v[2]), A: float64(v[3])}
}

// Animate hands g to the window. It is advanced at the start of every Render
// and dropped once finished. Starting a second group on the same control does
// not cancel the first; call Stop on the old group to do that.
func (w *Window) Animate(g *TweenGroup) {
	if g == nil || g.Done {
		return
	}
	w.tweens = append(w.tweens, g)
}

// Stop marks the group finished without applying further values.
func (g *TweenGroup) Stop() { g.Done = true }

// Animating returns the number of groups the window is still advancing.
func (w *Window) Animating() int { return len(w.tweens) }

func (w *Window) updateTweens(dt time.Duration) {
	if len(w.tweens) == 0 {
		return
	}
	secs := float32(dt.Seconds())
	// An apply hook may start another tween; iterate over a snapshot.
	active := slices.Clone(w.tweens)
	for _, g := range active {
		g.Update(secs)
	}
	w.tweens = slices.DeleteFunc(w.tweens, func(g *TweenGroup) bool { return g.Done })
}
