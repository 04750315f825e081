package events

import "github.com/atomicstack/menustack/internal/logging"

type SignalTracer struct{}

var Signal = SignalTracer{}

func (SignalTracer) Raise(kind, origin string) {
	logging.Trace("signal.raise", map[string]interface{}{"signal": kind, "origin": origin})
}

func (SignalTracer) Unhandled(kind string) {
	logging.Trace("signal.unhandled", map[string]interface{}{"signal": kind})
}

func (SignalTracer) Error(kind string, err error) {
	if err == nil {
		return
	}
	logging.Trace("signal.error", map[string]interface{}{"signal": kind, "error": err.Error()})
}
