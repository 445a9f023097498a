package sapling

import (
	"fmt"
	"os"
	"time"
)

// frameStats holds per-frame timing and control counts.
// Only populated when the window is in debug mode.
type frameStats struct {
	timerTime     time.Duration
	occlusionTime time.Duration
	renderTime    time.Duration
	timersFired   int
	controls      int
	occluded      int
	rendered      int
}

// debugLog prints timing and control stats to stderr.
func (w *Window) debugLog(stats frameStats) {
	if !w.debug {
		return
	}
	total := stats.timerTime + stats.occlusionTime + stats.renderTime
	_, _ = fmt.Fprintf(os.Stderr,
		"[sapling] frame %d timers: %v | occlusion: %v | render: %v | total: %v\n",
		w.frameCount, stats.timerTime, stats.occlusionTime, stats.renderTime, total)
	_, _ = fmt.Fprintf(os.Stderr,
		"[sapling] controls: %d | occluded: %d | rendered: %d | timers fired: %d\n",
		stats.controls, stats.occluded, stats.rendered, stats.timersFired)
}

// debugf prints a diagnostic line to stderr in debug mode.
func (w *Window) debugf(format string, args ...any) {
	if !w.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[sapling] "+format+"\n", args...)
}

// violation reports a broken caller contract. In debug mode it panics with
// err; otherwise err is returned for the caller to handle.
func (w *Window) violation(err error) error {
	if w.debug {
		panic(fmt.Sprintf("sapling debug: %v", err))
	}
	return err
}
