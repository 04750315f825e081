package backend

import (
	"context"
	"sync"
	"time"
)

// Event asks the consumer to run one synchronization pass.
type Event struct {
	Seq    uint64
	At     time.Time
	Nudged bool
	// Held is how long a nudged tick waited for the nudge gap.
	Held time.Duration
}

// Watcher emits tick events at a fixed interval. Nudge requests an early
// tick; nudges are throttled so a burst of key presses yields few passes.
type Watcher struct {
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	nudge  chan struct{}
	wg     sync.WaitGroup
	closed chan struct{}
}

// NewWatcher creates a watcher that ticks every interval.
func NewWatcher(interval time.Duration) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 16),
		nudge:    make(chan struct{}, 1),
		closed:   make(chan struct{}),
	}

	w.wg.Add(1)
	go w.run(newNudgeGate(interval / 4))

	go func() {
		w.wg.Wait()
		close(w.events)
		close(w.closed)
	}()

	return w
}

// Events returns a channel of tick events. It is closed after Stop.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Nudge requests a tick as soon as the nudge gap allows. It never blocks.
func (w *Watcher) Nudge() {
	select {
	case w.nudge <- struct{}{}:
	default:
	}
}

// Stop cancels the watcher. Use Wait if a clean drain is required.
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the tick goroutine has exited and the events channel has
// been closed. Buffered events remain readable afterwards.
func (w *Watcher) Wait() {
	<-w.closed
}

func (w *Watcher) run(gate *nudgeGate) {
	defer w.wg.Done()

	var seq uint64
	emit := func(nudged bool, held time.Duration) bool {
		seq++
		evt := Event{Seq: seq, At: time.Now(), Nudged: nudged, Held: held}
		select {
		case <-w.ctx.Done():
			return false
		case w.events <- evt:
			return true
		}
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			if !emit(false, 0) {
				return
			}
		case <-w.nudge:
			held, ok := gate.hold(w.ctx)
			if !ok || !emit(true, held) {
				return
			}
		}
	}
}
