// Package engine reconciles the menu stack with activation and input
// ownership once per tick.
//
// A tick runs in a fixed order:
//   - queued signals are handed to their handlers, which mutate the stack;
//   - the garbage collector prunes handles whose objects no longer exist;
//   - Activation compares the stack top with the active menu;
//   - InputOwnership compares the topmost input-bearing entry with the
//     current input owner.
//
// Each pass publishes transitions to the reactor list as it goes, so a
// Deactivate is fully handled before the following Activate is announced.
package engine

import (
	"errors"
	"reflect"

	"github.com/atomicstack/menustack/internal/logging/events"
	"github.com/atomicstack/menustack/pkg/menu"
	"github.com/atomicstack/menustack/pkg/stack"
	"github.com/atomicstack/menustack/pkg/window"
)

// Host is the object registry the engine reconciles against.
type Host interface {
	Exists(menu.Handle) bool
	Despawn(menu.Handle)
	HasMarker(menu.Handle, menu.Marker) bool
	InputChildren(menu.Handle) []menu.Handle
	SetInputDisabled(menu.Handle, bool)
	SetVisible(menu.Handle, bool)
	Single(kind string) (menu.Handle, error)
}

// Cursor receives cursor options when a mouse-marked menu activates.
type Cursor interface {
	SetCursor(window.Cursor)
}

// Option configures an Engine.
type Option func(*Engine)

// WithCursor routes mouse capture and release to c.
func WithCursor(c Cursor) Option {
	return func(e *Engine) {
		e.cursor = c
	}
}

// WithInputOwnership enables or disables the input-ownership pass. It is
// enabled by default.
func WithInputOwnership(enabled bool) Option {
	return func(e *Engine) {
		e.inputEnabled = enabled
	}
}

// WithReactor appends r after the built-in reactors.
func WithReactor(r Reactor) Option {
	return func(e *Engine) {
		if r != nil {
			e.extra = append(e.extra, r)
		}
	}
}

// Engine owns the menu stack and its derived state.
type Engine struct {
	host   Host
	cursor Cursor
	stack  *stack.Stack

	activation   Activation
	input        InputOwnership
	inputEnabled bool

	reactors []Reactor
	extra    []Reactor
	handlers map[reflect.Type][]signalHandler
	pending  []Signal

	seq       uint64
	published []Transition
	errs      []error
}

// New builds an engine over host with an empty stack.
func New(host Host, opts ...Option) *Engine {
	e := &Engine{
		host:         host,
		stack:        stack.New(),
		inputEnabled: true,
		handlers:     make(map[reflect.Type][]signalHandler),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	e.reactors = append(e.builtinReactors(), e.extra...)
	e.extra = nil
	if e.inputEnabled {
		CloseMenuOnSignal[Pressed[CloseMenuAction]](e)
	}
	return e
}

// Stack exposes the menu stack for push, remove, and toggle.
func (e *Engine) Stack() *stack.Stack {
	return e.stack
}

// AddReactor appends r to the reactor list.
func (e *Engine) AddReactor(r Reactor) {
	if r != nil {
		e.reactors = append(e.reactors, r)
	}
}

// CurrentTop returns the active menu.
func (e *Engine) CurrentTop() (menu.Handle, bool) {
	return e.activation.Current()
}

// CurrentInput returns the input owner.
func (e *Engine) CurrentInput() (menu.Handle, bool) {
	return e.input.Current()
}

// Seq returns the number of completed ticks.
func (e *Engine) Seq() uint64 {
	return e.seq
}

// Tick runs one reconciliation pass and returns the transitions it published.
// Errors from signal handlers and reactors are joined and returned; they never
// stop the pass.
func (e *Engine) Tick() ([]Transition, error) {
	e.published = nil
	e.errs = e.drainSignals()

	e.collectGarbage()
	e.activation.Sync(e.stack, e.publish)
	if e.inputEnabled {
		e.input.Sync(e.stack, e.host, e.publish)
	}

	e.seq++
	out := e.published
	err := errors.Join(e.errs...)
	e.published = nil
	e.errs = nil
	events.Tick.Done(e.seq, len(out), err)
	return out, err
}

// collectGarbage removes handles whose objects are gone. When the active menu
// is among them it is deactivated here, directly, since it can no longer be
// the subject of a normal top comparison.
func (e *Engine) collectGarbage() {
	for _, h := range e.stack.Snapshot() {
		if e.host.Exists(h) || !e.stack.Contains(h) {
			continue
		}
		e.stack.Remove(h)
		events.Stack.Prune(h)
		if e.activation.forget(h) {
			e.publish(Transition{Kind: Deactivate, Menu: h})
		}
	}
}

func (e *Engine) publish(t Transition) {
	e.published = append(e.published, t)
	for _, r := range e.reactors {
		if err := r(t); err != nil {
			e.errs = append(e.errs, err)
		}
	}
}
