package ebitengine

import (
	"math"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/sapling"
)

// Key auto-repeat, in ticks.
const (
	keyRepeatDelay    = 30
	keyRepeatInterval = 3
)

var namedKeys = map[ebiten.Key]sapling.Key{
	ebiten.KeyEnter:       sapling.KeyEnter,
	ebiten.KeyNumpadEnter: sapling.KeyEnter,
	ebiten.KeyEscape:      sapling.KeyEscape,
	ebiten.KeyBackspace:   sapling.KeyBackspace,
	ebiten.KeyDelete:      sapling.KeyDelete,
	ebiten.KeyTab:         sapling.KeyTab,
	ebiten.KeySpace:       sapling.KeySpace,
	ebiten.KeyArrowLeft:   sapling.KeyLeft,
	ebiten.KeyArrowRight:  sapling.KeyRight,
	ebiten.KeyArrowUp:     sapling.KeyUp,
	ebiten.KeyArrowDown:   sapling.KeyDown,
	ebiten.KeyHome:        sapling.KeyHome,
	ebiten.KeyEnd:         sapling.KeyEnd,
	ebiten.KeyPageUp:      sapling.KeyPageUp,
	ebiten.KeyPageDown:    sapling.KeyPageDown,
}

// keyFor maps an Ebitengine key to a sapling key. Letter keys map to
// KeyRune with the lower-case letter; anything else unmapped is dropped.
func keyFor(k ebiten.Key) (sapling.Key, rune, bool) {
	if sk, ok := namedKeys[k]; ok {
		return sk, 0, true
	}
	if s := k.String(); len(s) == 1 && s[0] >= 'A' && s[0] <= 'Z' {
		return sapling.KeyRune, unicode.ToLower(rune(s[0])), true
	}
	return sapling.KeyUnknown, 0, false
}

// repeating reports whether a key held for d ticks should auto-repeat now.
func repeating(d int) bool {
	return d >= keyRepeatDelay && (d-keyRepeatDelay)%keyRepeatInterval == 0
}

// wheelSteps rounds a wheel offset to whole steps, keeping any non-zero
// movement at least one step.
func wheelSteps(v float64) int {
	switch {
	case v > 0:
		return max(1, int(math.Round(v)))
	case v < 0:
		return min(-1, int(math.Round(v)))
	}
	return 0
}

// printable drops control characters from committed text.
func printable(chars []rune) string {
	out := make([]rune, 0, len(chars))
	for _, r := range chars {
		if r >= 32 && r != 127 {
			out = append(out, r)
		}
	}
	return string(out)
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() sapling.KeyModifiers {
	var mods sapling.KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= sapling.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= sapling.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= sapling.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= sapling.ModMeta
	}
	return mods
}

// pointerState is the mouse as sampled on one tick.
type pointerState struct {
	X, Y    int
	Buttons sapling.ButtonMask
}

var pointerButtons = [...]sapling.MouseButton{
	sapling.MouseButtonLeft,
	sapling.MouseButtonRight,
	sapling.MouseButtonMiddle,
}

// pointerEvents turns the change between two samples into events: motion
// first, reported with the buttons held before this tick, then one button
// event per button whose state changed.
func pointerEvents(prev, cur pointerState, mods sapling.KeyModifiers) []sapling.Event {
	var events []sapling.Event
	if cur.X != prev.X || cur.Y != prev.Y {
		events = append(events, sapling.MotionEvent{
			X: cur.X, Y: cur.Y,
			RelX: cur.X - prev.X, RelY: cur.Y - prev.Y,
			Buttons:   prev.Buttons,
			Modifiers: mods,
		})
	}
	for _, b := range pointerButtons {
		if was, is := prev.Buttons.Has(b), cur.Buttons.Has(b); was != is {
			events = append(events, sapling.ButtonEvent{X: cur.X, Y: cur.Y, Button: b, Pressed: is, Modifiers: mods})
		}
	}
	return events
}

// poller samples Ebitengine's input state once per tick.
type poller struct {
	pointer   pointerState
	minimized bool
	keys      []ebiten.Key
	chars     []rune
	events    []sapling.Event
}

func samplePointer() pointerState {
	var p pointerState
	p.X, p.Y = ebiten.CursorPosition()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		p.Buttons = p.Buttons.With(sapling.MouseButtonLeft)
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		p.Buttons = p.Buttons.With(sapling.MouseButtonRight)
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) {
		p.Buttons = p.Buttons.With(sapling.MouseButtonMiddle)
	}
	return p
}

// poll returns this tick's events in delivery order.
func (p *poller) poll() []sapling.Event {
	p.events = p.events[:0]
	mods := readModifiers()

	if ebiten.IsWindowBeingClosed() {
		p.events = append(p.events, sapling.QuitEvent{})
	}
	if m := ebiten.IsWindowMinimized(); m != p.minimized {
		p.minimized = m
		state := sapling.WindowRestored
		if m {
			state = sapling.WindowMinimized
		}
		p.events = append(p.events, sapling.WindowStateEvent{State: state})
	}

	cur := samplePointer()
	p.events = append(p.events, pointerEvents(p.pointer, cur, mods)...)
	p.pointer = cur

	if dx, dy := ebiten.Wheel(); dx != 0 || dy != 0 {
		p.events = append(p.events, sapling.WheelEvent{
			X: cur.X, Y: cur.Y,
			DX: wheelSteps(dx), DY: wheelSteps(dy),
			Modifiers: mods,
		})
	}

	p.keys = inpututil.AppendJustPressedKeys(p.keys[:0])
	for _, k := range p.keys {
		if sk, r, ok := keyFor(k); ok {
			p.events = append(p.events, sapling.KeyEvent{Key: sk, Rune: r, Pressed: true, Modifiers: mods})
		}
	}
	p.keys = inpututil.AppendPressedKeys(p.keys[:0])
	for _, k := range p.keys {
		if !repeating(inpututil.KeyPressDuration(k)) {
			continue
		}
		if sk, r, ok := keyFor(k); ok {
			p.events = append(p.events, sapling.KeyEvent{Key: sk, Rune: r, Pressed: true, Repeat: true, Modifiers: mods})
		}
	}
	p.keys = inpututil.AppendJustReleasedKeys(p.keys[:0])
	for _, k := range p.keys {
		if sk, r, ok := keyFor(k); ok {
			p.events = append(p.events, sapling.KeyEvent{Key: sk, Rune: r, Modifiers: mods})
		}
	}

	p.chars = ebiten.AppendInputChars(p.chars[:0])
	if s := printable(p.chars); s != "" {
		p.events = append(p.events, sapling.TextInputEvent{Text: s})
	}
	return p.events
}
