package engine

import (
	"github.com/atomicstack/menustack/pkg/menu"
	"github.com/atomicstack/menustack/pkg/stack"
)

// InputOwnership tracks the topmost input-bearing stack entry. It follows the
// same deactivate-then-activate shape as Activation over a filtered view of
// the stack.
type InputOwnership struct {
	current menu.Handle
	seen    uint64
}

// Current returns the menu that owns input.
func (o *InputOwnership) Current() (menu.Handle, bool) {
	return o.current, !o.current.IsNil()
}

// Sync reconciles the input owner with the stack. It does nothing unless the
// stack changed since the previous call.
func (o *InputOwnership) Sync(s *stack.Stack, host Host, emit func(Transition)) {
	if !s.ChangedSince(o.seen) {
		return
	}
	o.seen = s.Version()

	next, _ := s.TopMatching(func(h menu.Handle) bool {
		return host.HasMarker(h, menu.WithInput)
	})
	if !o.current.IsNil() && next != o.current {
		old := o.current
		o.current = menu.Nil
		emit(Transition{Kind: RevokeInput, Menu: old})
	}
	if o.current.IsNil() && !next.IsNil() {
		o.current = next
		emit(Transition{Kind: GrantInput, Menu: next})
	}
}

// Subtree returns root followed by every descendant of root in the
// input-ownership tree, depth first. Each handle is visited once even if the
// host reports it under several parents.
func Subtree(host Host, root menu.Handle) []menu.Handle {
	if root.IsNil() {
		return nil
	}
	out := []menu.Handle{root}
	visited := map[menu.Handle]struct{}{root: {}}
	pending := host.InputChildren(root)
	for len(pending) > 0 {
		last := len(pending) - 1
		h := pending[last]
		pending = pending[:last]
		if _, ok := visited[h]; ok {
			continue
		}
		visited[h] = struct{}{}
		out = append(out, h)
		pending = append(pending, host.InputChildren(h)...)
	}
	return out
}

func setSubtreeInput(host Host, root menu.Handle, disabled bool) int {
	nodes := Subtree(host, root)
	for _, h := range nodes {
		host.SetInputDisabled(h, disabled)
	}
	return len(nodes)
}
