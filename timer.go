package sapling

import (
	"fmt"
	"slices"
	"time"
)

// timerSub is one control's periodic elapsed-time subscription.
type timerSub struct {
	control Control
	period  time.Duration
	last    time.Time
}

// Subscribe asks for c.OnElapsedTime to be called every period, checked once
// per Render. Subscribing again replaces the period and restarts the
// countdown rather than adding a second entry, so a control may re-subscribe
// from inside its own OnElapsedTime to change its rate.
func (w *Window) Subscribe(c Control, period time.Duration) error {
	if !w.Contains(c) {
		return w.violation(fmt.Errorf("subscribe: %w", ErrNotRegistered))
	}
	now := w.clock.Now()
	if i := w.timerIndex(c); i >= 0 {
		w.timers[i].period = period
		w.timers[i].last = now
		return nil
	}
	w.timers = append(w.timers, timerSub{control: c, period: period, last: now})
	return nil
}

// Unsubscribe cancels c's subscription. It reports whether one existed.
func (w *Window) Unsubscribe(c Control) bool {
	i := w.timerIndex(c)
	if i < 0 {
		return false
	}
	w.timers = slices.Delete(w.timers, i, i+1)
	return true
}

// Subscribed reports whether c has a subscription and its period.
func (w *Window) Subscribed(c Control) (time.Duration, bool) {
	if i := w.timerIndex(c); i >= 0 {
		return w.timers[i].period, true
	}
	return 0, false
}

func (w *Window) timerIndex(c Control) int {
	return slices.IndexFunc(w.timers, func(s timerSub) bool { return s.control == c })
}

// fireElapsedTimers invokes every due subscription once. Hidden controls are
// notified too. Hooks may subscribe, unsubscribe or remove controls while
// the pass runs; each entry is looked up again before it is checked.
func (w *Window) fireElapsedTimers(now time.Time) int {
	if len(w.timers) == 0 {
		return 0
	}
	due := make([]Control, 0, len(w.timers))
	for _, s := range w.timers {
		due = append(due, s.control)
	}
	fired := 0
	for _, c := range due {
		i := w.timerIndex(c)
		if i < 0 {
			continue
		}
		s := &w.timers[i]
		if now.Sub(s.last) < s.period {
			continue
		}
		s.last = now
		fired++
		c.OnElapsedTime()
	}
	return fired
}
