package events

import (
	"github.com/atomicstack/menustack/internal/logging"
	"github.com/atomicstack/menustack/pkg/menu"
)

type StackTracer struct{}

var Stack = StackTracer{}

func (StackTracer) Push(h menu.Handle, depth int) {
	logging.Trace("stack.push", map[string]interface{}{"menu": h.String(), "depth": depth})
}

func (StackTracer) Remove(h menu.Handle, removed, depth int) {
	logging.Trace("stack.remove", map[string]interface{}{"menu": h.String(), "removed": removed, "depth": depth})
}

func (StackTracer) Prune(h menu.Handle) {
	logging.Trace("stack.prune", map[string]interface{}{"menu": h.String()})
}
