package dispatcher

import (
	"github.com/atomicstack/menustack/internal/backend"
	"github.com/atomicstack/menustack/internal/logging"
	"github.com/atomicstack/menustack/pkg/engine"
	"go.uber.org/zap"
)

// Result summarises one synchronization pass.
type Result struct {
	Seq         uint64
	Transitions []engine.Transition
	Err         error
}

// Changed reports whether the pass published anything.
func (r Result) Changed() bool {
	return len(r.Transitions) > 0 || r.Err != nil
}

// Dispatcher turns backend tick events into engine passes.
type Dispatcher struct {
	engine *engine.Engine
}

func New(e *engine.Engine) *Dispatcher {
	return &Dispatcher{engine: e}
}

// Handle runs one engine tick for evt.
func (d *Dispatcher) Handle(evt backend.Event) Result {
	logging.Debug("backend tick",
		zap.Uint64("backend_seq", evt.Seq),
		zap.Bool("nudged", evt.Nudged),
		zap.Duration("held", evt.Held),
	)
	transitions, err := d.engine.Tick()
	return Result{Seq: d.engine.Seq(), Transitions: transitions, Err: err}
}
