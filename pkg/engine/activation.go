package engine

import (
	"github.com/atomicstack/menustack/pkg/menu"
	"github.com/atomicstack/menustack/pkg/stack"
)

// Activation tracks which stack entry has been activated. At most one menu is
// active at any time; the old top is always deactivated, and its reactors
// have run, before a new top activates.
type Activation struct {
	current menu.Handle
	seen    uint64
}

// Current returns the active menu.
func (a *Activation) Current() (menu.Handle, bool) {
	return a.current, !a.current.IsNil()
}

// Sync reconciles the active menu with the stack top. It does nothing unless
// the stack changed since the previous call.
func (a *Activation) Sync(s *stack.Stack, emit func(Transition)) {
	if !s.ChangedSince(a.seen) {
		return
	}
	a.seen = s.Version()

	next, _ := s.Top()
	if !a.current.IsNil() && next != a.current {
		old := a.current
		a.current = menu.Nil
		emit(Transition{Kind: Deactivate, Menu: old})
	}
	if a.current.IsNil() && !next.IsNil() {
		a.current = next
		emit(Transition{Kind: Activate, Menu: next})
	}
}

// forget clears the active menu without consulting the stack. The garbage
// collector uses it when the active menu's object is gone.
func (a *Activation) forget(h menu.Handle) bool {
	if h.IsNil() || a.current != h {
		return false
	}
	a.current = menu.Nil
	return true
}
