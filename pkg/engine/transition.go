package engine

import (
	"fmt"

	"github.com/atomicstack/menustack/pkg/menu"
)

// Kind names a transition announced by a synchronization pass.
type Kind int

const (
	// Activate announces a new stack top.
	Activate Kind = iota
	// Deactivate announces that a menu is no longer the stack top.
	Deactivate
	// GrantInput announces a new input owner.
	GrantInput
	// RevokeInput announces that a menu no longer owns input.
	RevokeInput
)

func (k Kind) String() string {
	switch k {
	case Activate:
		return "activate"
	case Deactivate:
		return "deactivate"
	case GrantInput:
		return "grant-input"
	case RevokeInput:
		return "revoke-input"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Transition pairs a transition kind with the affected menu.
type Transition struct {
	Kind Kind
	Menu menu.Handle
}

func (t Transition) String() string {
	return fmt.Sprintf("%s(%s)", t.Kind, t.Menu)
}

// Reactor observes every published transition. Reactors run in registration
// order, once per transition, before the next transition is published.
type Reactor func(Transition) error
