package terminal

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/sapling"
)

var namedKeys = map[tcell.Key]sapling.Key{
	tcell.KeyEnter:      sapling.KeyEnter,
	tcell.KeyEsc:        sapling.KeyEscape,
	tcell.KeyBackspace:  sapling.KeyBackspace,
	tcell.KeyBackspace2: sapling.KeyBackspace,
	tcell.KeyDelete:     sapling.KeyDelete,
	tcell.KeyTab:        sapling.KeyTab,
	tcell.KeyLeft:       sapling.KeyLeft,
	tcell.KeyRight:      sapling.KeyRight,
	tcell.KeyUp:         sapling.KeyUp,
	tcell.KeyDown:       sapling.KeyDown,
	tcell.KeyHome:       sapling.KeyHome,
	tcell.KeyEnd:        sapling.KeyEnd,
	tcell.KeyPgUp:       sapling.KeyPageUp,
	tcell.KeyPgDn:       sapling.KeyPageDown,
}

func modifiers(m tcell.ModMask) sapling.KeyModifiers {
	var mods sapling.KeyModifiers
	if m&tcell.ModShift != 0 {
		mods |= sapling.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mods |= sapling.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		mods |= sapling.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		mods |= sapling.ModMeta
	}
	return mods
}

// buttons reduces a tcell mask to the held mouse buttons, ignoring the
// wheel bits.
func buttons(b tcell.ButtonMask) sapling.ButtonMask {
	var m sapling.ButtonMask
	if b&tcell.ButtonPrimary != 0 {
		m = m.With(sapling.MouseButtonLeft)
	}
	if b&tcell.ButtonSecondary != 0 {
		m = m.With(sapling.MouseButtonRight)
	}
	if b&tcell.ButtonMiddle != 0 {
		m = m.With(sapling.MouseButtonMiddle)
	}
	return m
}

var mouseButtons = [...]sapling.MouseButton{
	sapling.MouseButtonLeft,
	sapling.MouseButtonRight,
	sapling.MouseButtonMiddle,
}

// translator turns tcell events into sapling events. tcell reports the
// mouse as a position plus the full button mask, so the previous sample is
// kept to recover motion deltas and individual presses and releases.
type translator struct {
	x, y    int
	held    sapling.ButtonMask
	started bool
}

// translate returns the sapling events for ev in delivery order. Events
// with no sapling counterpart yield nil.
func (t *translator) translate(ev tcell.Event) []sapling.Event {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return t.key(ev)
	case *tcell.EventMouse:
		return t.mouse(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		return []sapling.Event{sapling.ResizeEvent{Width: w, Height: h}}
	}
	return nil
}

// key maps a key press. Terminals report no releases, so each press is
// followed at once by its release. Ctrl-C quits.
func (t *translator) key(ev *tcell.EventKey) []sapling.Event {
	if ev.Key() == tcell.KeyCtrlC {
		return []sapling.Event{sapling.QuitEvent{}}
	}
	mods := modifiers(ev.Modifiers())

	var k sapling.Key
	var r rune
	var text string
	switch ev.Key() {
	case tcell.KeyRune:
		r = ev.Rune()
		k = sapling.KeyRune
		if r == ' ' {
			k = sapling.KeySpace
		}
		if unicode.IsPrint(r) && mods&(sapling.ModCtrl|sapling.ModAlt|sapling.ModMeta) == 0 {
			text = string(r)
		}
		// tcell drops ModShift from shifted runes; the case carries it.
		if unicode.IsUpper(r) {
			mods |= sapling.ModShift
		}
		r = unicode.ToLower(r)
	default:
		var ok bool
		if k, ok = namedKeys[ev.Key()]; !ok {
			return nil
		}
	}

	events := []sapling.Event{
		sapling.KeyEvent{Key: k, Rune: r, Pressed: true, Modifiers: mods},
		sapling.KeyEvent{Key: k, Rune: r, Modifiers: mods},
	}
	if text != "" {
		events = append(events, sapling.TextInputEvent{Text: text})
	}
	return events
}

// mouse emits motion first, carrying the buttons held before this event,
// then one button event per changed button and finally any wheel step.
func (t *translator) mouse(ev *tcell.EventMouse) []sapling.Event {
	x, y := ev.Position()
	mods := modifiers(ev.Modifiers())
	cur := buttons(ev.Buttons())

	var events []sapling.Event
	if !t.started || x != t.x || y != t.y {
		rx, ry := x-t.x, y-t.y
		if !t.started {
			rx, ry = 0, 0
		}
		events = append(events, sapling.MotionEvent{
			X: x, Y: y, RelX: rx, RelY: ry,
			Buttons:   t.held,
			Modifiers: mods,
		})
	}
	for _, b := range mouseButtons {
		if was, is := t.held.Has(b), cur.Has(b); was != is {
			events = append(events, sapling.ButtonEvent{X: x, Y: y, Button: b, Pressed: is, Modifiers: mods})
		}
	}

	var dx, dy int
	wheel := ev.Buttons()
	if wheel&tcell.WheelUp != 0 {
		dy++
	}
	if wheel&tcell.WheelDown != 0 {
		dy--
	}
	if wheel&tcell.WheelLeft != 0 {
		dx--
	}
	if wheel&tcell.WheelRight != 0 {
		dx++
	}
	if dx != 0 || dy != 0 {
		events = append(events, sapling.WheelEvent{X: x, Y: y, DX: dx, DY: dy, Modifiers: mods})
	}

	t.x, t.y, t.held, t.started = x, y, cur, true
	return events
}
