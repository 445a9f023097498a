package ebitengine

import (
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/sapling"
)

// game adapts a sapling window to ebiten.Game. Input is polled and
// translated in Update; the window composites in Draw.
type game struct {
	w    *sapling.Window
	r    *Renderer
	in   poller
	fps  *fpsCounter
	size sapling.Size

	// exitWhenScripted ends the loop once the test script has finished.
	exitWhenScripted bool
}

func (g *game) Update() error {
	consumed, quit := g.w.ProcessInjected()
	if quit || g.w.Closed() {
		return ebiten.Termination
	}
	for _, e := range g.in.poll() {
		// A scripted pointer event owns this tick.
		if consumed && isPointerEvent(e) {
			continue
		}
		if g.w.TranslateEvent(e) {
			return ebiten.Termination
		}
	}
	if g.size != g.w.Size() {
		g.w.TranslateEvent(sapling.ResizeEvent{Width: g.size.W, Height: g.size.H})
	}
	if g.exitWhenScripted {
		if tr := g.w.TestRunner(); tr != nil && tr.Done() && g.w.Pending() == 0 {
			return ebiten.Termination
		}
	}
	if g.fps != nil {
		g.fps.update(g.w.Clock().Now(), ebiten.ActualFPS(), ebiten.ActualTPS())
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.r.begin(screen)
	g.w.Render()
	g.r.begin(nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.size = sapling.Size{W: outsideWidth, H: outsideHeight}
	return outsideWidth, outsideHeight
}

func isPointerEvent(e sapling.Event) bool {
	switch e.(type) {
	case sapling.MotionEvent, sapling.ButtonEvent, sapling.WheelEvent:
		return true
	}
	return false
}

// Run opens a window configured by cfg, lets build populate it and runs the
// event loop until the window is closed. When cfg.Script is set the script
// is played back and Run returns after its last step.
func Run(cfg sapling.Config, build func(*sapling.Window) error) error {
	r, err := NewRenderer()
	if err != nil {
		return err
	}
	if cfg.ScreenshotDir != "" {
		r.ScreenshotDir = cfg.ScreenshotDir
	}
	w, err := sapling.NewWindow(r, cfg)
	if err != nil {
		return err
	}
	if build != nil {
		if err := build(w); err != nil {
			return err
		}
	}

	g := &game{w: w, r: r, size: w.Size()}
	if cfg.Script != "" {
		data, err := os.ReadFile(cfg.Script)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		runner, err := sapling.LoadTestScript(data)
		if err != nil {
			return err
		}
		w.SetTestRunner(runner)
		g.exitWhenScripted = true
	}
	if cfg.ShowFPS {
		g.fps = &fpsCounter{}
		r.overlay = g.fps.draw
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
