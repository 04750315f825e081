package backend

import (
	"context"
	"time"
)

// nudgeGate spaces nudged ticks at least gap apart. It is owned by the
// watcher goroutine.
type nudgeGate struct {
	gap  time.Duration
	last time.Time
}

func newNudgeGate(gap time.Duration) *nudgeGate {
	if gap < 0 {
		gap = 0
	}
	return &nudgeGate{gap: gap}
}

// hold blocks until the gap since the previous nudged tick has passed, and
// returns how long it waited. It returns false if ctx ends first.
func (g *nudgeGate) hold(ctx context.Context) (time.Duration, bool) {
	if g == nil || g.gap == 0 {
		return 0, ctx.Err() == nil
	}
	wait := time.Until(g.last.Add(g.gap))
	if wait > 0 {
		timer := time.NewTimer(wait)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return 0, false
		case <-timer.C:
		}
	} else {
		wait = 0
	}
	g.last = time.Now()
	return wait, true
}
