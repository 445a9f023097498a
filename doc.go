// Package sapling is a small retained-mode widget toolkit.
//
// A [Window] owns a registry of controls, arbitrates input between them and
// composites them into a [Renderer] each frame. Widgets live in
// sapling/widgets; drawing backends for [Ebitengine] and terminals (via
// [tcell]) live under sapling/backend.
//
// # Quick start
//
// The simplest way to get started is the Ebitengine backend's Run, which
// creates a window and event loop for you:
//
//	cfg := sapling.DefaultConfig()
//	cfg.Title = "Hello"
//	err := ebitengine.Run(cfg, func(w *sapling.Window) error {
//		btn, err := widgets.NewButton(w, sapling.Rect{X: 10, Y: 10, W: 120, H: 32}, "OK")
//		if err != nil {
//			return err
//		}
//		btn.SetOnClick(func() { fmt.Println("clicked") })
//		return nil
//	})
//
// The terminal backend's Run does the same on a tcell screen, measuring in
// character cells instead of pixels.
//
// For full control, construct a window around your own renderer and drive
// it yourself:
//
//	w, _ := sapling.NewWindow(renderer, cfg)
//	for !w.Closed() {
//		for _, e := range pollEvents() {
//			w.TranslateEvent(e)
//		}
//		w.Render()
//	}
//
// Widget constructors register the widget, and any parts it is built from,
// with the window they are given.
//
// # Controls
//
// Every widget embeds [ControlBase] and implements [Control]. Controls are
// ordered by an 8-bit z-order; equal values keep insertion order. Higher
// z-orders paint later and are hit-tested first.
//
// # Input
//
// A button press goes to the single topmost visible, unoccluded control under
// the pointer. If it asks for focus, it gets it; otherwise the focused
// control is told a press happened elsewhere. Key and text events go to the
// focused control. At most one control is "under the mouse" at a time and it
// sees exit before the new one sees enter.
//
// # Occlusion
//
// Before each frame and before each hit test, controls fully covered by a
// visible control in a higher z-order layer are marked occluded. Occluded
// controls are neither drawn nor hit-tested. Controls sharing a z-order never
// occlude each other.
//
// # Timers and tweens
//
// [Window.Subscribe] asks for a control's OnElapsedTime hook to run at a
// period, checked at the start of each Render. Tweens (via [gween]) started
// with [Window.Animate] advance at the same point.
//
// # Debug mode
//
// With Config.Debug set, broken contracts (adding a control twice, removing
// an unknown control, typing with no focus) panic and per-frame statistics
// are printed to stderr.
//
// [Ebitengine]: https://ebitengine.org
// [tcell]: https://github.com/gdamore/tcell
// [gween]: https://github.com/tanema/gween
package sapling
