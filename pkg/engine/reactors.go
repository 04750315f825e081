package engine

import (
	"github.com/atomicstack/menustack/internal/logging/events"
	"github.com/atomicstack/menustack/pkg/menu"
	"github.com/atomicstack/menustack/pkg/window"
)

func (e *Engine) builtinReactors() []Reactor {
	return []Reactor{
		e.traceTransition,
		e.releaseMouse,
		e.captureMouse,
		e.showMenu,
		e.hideMenu,
		e.despawnMenu,
		e.routeInput,
	}
}

func (e *Engine) traceTransition(t Transition) error {
	switch t.Kind {
	case Activate:
		events.Menu.Activate(t.Menu)
	case Deactivate:
		reason := "replaced"
		if !e.host.Exists(t.Menu) {
			reason = "despawned"
		}
		events.Menu.Deactivate(t.Menu, reason)
	}
	return nil
}

func (e *Engine) releaseMouse(t Transition) error {
	if t.Kind == Activate && e.cursor != nil && e.host.HasMarker(t.Menu, menu.ReleasesMouse) {
		e.cursor.SetCursor(window.Cursor{Grab: window.GrabNone, Visible: true})
	}
	return nil
}

func (e *Engine) captureMouse(t Transition) error {
	if t.Kind == Activate && e.cursor != nil && e.host.HasMarker(t.Menu, menu.CapturesMouse) {
		e.cursor.SetCursor(window.Cursor{Grab: window.GrabConfined, Visible: false})
	}
	return nil
}

func (e *Engine) showMenu(t Transition) error {
	if t.Kind == Activate && e.host.HasMarker(t.Menu, menu.HidesOnClose) {
		e.host.SetVisible(t.Menu, true)
	}
	return nil
}

func (e *Engine) hideMenu(t Transition) error {
	if t.Kind == Deactivate && e.host.HasMarker(t.Menu, menu.HidesOnClose) {
		e.host.SetVisible(t.Menu, false)
	}
	return nil
}

func (e *Engine) despawnMenu(t Transition) error {
	if t.Kind == Deactivate && e.host.HasMarker(t.Menu, menu.DespawnsOnClose) {
		events.Menu.Despawn(t.Menu)
		e.host.Despawn(t.Menu)
	}
	return nil
}

// routeInput disables input on a revoked owner's subtree and enables it on a
// granted owner's subtree.
func (e *Engine) routeInput(t Transition) error {
	switch t.Kind {
	case RevokeInput:
		events.Input.Revoke(t.Menu, setSubtreeInput(e.host, t.Menu, true))
	case GrantInput:
		events.Input.Grant(t.Menu, setSubtreeInput(e.host, t.Menu, false))
	}
	return nil
}
