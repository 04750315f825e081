package events

import (
	"github.com/atomicstack/menustack/internal/logging"
	"github.com/atomicstack/menustack/pkg/menu"
)

type MenuTracer struct{}

type InputTracer struct{}

var (
	Menu  = MenuTracer{}
	Input = InputTracer{}
)

func (MenuTracer) Activate(h menu.Handle) {
	logging.Trace("menu.activate", map[string]interface{}{"menu": h.String()})
}

func (MenuTracer) Deactivate(h menu.Handle, reason string) {
	logging.Trace("menu.deactivate", map[string]interface{}{"menu": h.String(), "reason": reason})
}

func (MenuTracer) Despawn(h menu.Handle) {
	logging.Trace("menu.despawn", map[string]interface{}{"menu": h.String()})
}

func (InputTracer) Grant(h menu.Handle, subtree int) {
	logging.Trace("input.grant", map[string]interface{}{"menu": h.String(), "subtree": subtree})
}

func (InputTracer) Revoke(h menu.Handle, subtree int) {
	logging.Trace("input.revoke", map[string]interface{}{"menu": h.String(), "subtree": subtree})
}
