package terminal

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/sapling"
)

// defaultTPS is the frame rate used when the config leaves TPS at zero.
const defaultTPS = 30

// loop pairs a window with the screen it draws on. handle and frame are
// only called from the goroutine running Run.
type loop struct {
	screen tcell.Screen
	w      *sapling.Window
	in     translator

	// exitWhenScripted ends the loop once the test script has finished.
	exitWhenScripted bool
}

// handle translates one tcell event and reports whether the window has
// closed, either from the event itself or from a control handling it.
func (l *loop) handle(ev tcell.Event) bool {
	if _, ok := ev.(*tcell.EventResize); ok {
		l.screen.Sync()
	}
	for _, e := range l.in.translate(ev) {
		if l.w.TranslateEvent(e) {
			return true
		}
	}
	return l.w.Closed()
}

// frame feeds one injected event, renders and reports whether the loop
// should stop.
func (l *loop) frame() bool {
	if _, quit := l.w.ProcessInjected(); quit || l.w.Closed() {
		return true
	}
	if l.exitWhenScripted {
		if tr := l.w.TestRunner(); tr != nil && tr.Done() && l.w.Pending() == 0 {
			return true
		}
	}
	l.w.Render()
	return false
}

// newLoop initializes screen and builds a window sized to it. The caller
// owns screen.Fini.
func newLoop(screen tcell.Screen, cfg sapling.Config, build func(*sapling.Window) error) (*loop, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault.Background(toColor(cfg.Background)).Foreground(toColor(cfg.Foreground)))
	cfg.Width, cfg.Height = screen.Size()

	w, err := sapling.NewWindow(NewRenderer(screen), cfg)
	if err != nil {
		return nil, err
	}
	if build != nil {
		if err := build(w); err != nil {
			return nil, err
		}
	}

	l := &loop{screen: screen, w: w}
	if cfg.Script != "" {
		data, err := os.ReadFile(cfg.Script)
		if err != nil {
			return nil, fmt.Errorf("read script: %w", err)
		}
		runner, err := sapling.LoadTestScript(data)
		if err != nil {
			return nil, err
		}
		w.SetTestRunner(runner)
		l.exitWhenScripted = true
	}
	return l, nil
}

// Run initializes screen, lets build populate a window the size of the
// terminal and runs the event loop. It returns nil after Ctrl-C, a
// QuitEvent or the end of cfg.Script, and ctx.Err() if ctx is cancelled.
// The window size in cfg is ignored; the terminal decides it.
func Run(ctx context.Context, screen tcell.Screen, cfg sapling.Config, build func(*sapling.Window) error) error {
	l, err := newLoop(screen, cfg, build)
	if err != nil {
		screen.Fini()
		return err
	}

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()
	defer func() {
		close(done)
		screen.Fini()
	}()

	tps := cfg.TPS
	if tps == 0 {
		tps = defaultTPS
	}
	ticker := l.w.Clock().Ticker(time.Second / time.Duration(tps))
	defer ticker.Stop()

	l.w.Render()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if l.handle(ev) {
				return nil
			}
		case <-ticker.C:
			if l.frame() {
				return nil
			}
		}
	}
}
