package engine

import (
	"fmt"
	"reflect"

	"github.com/atomicstack/menustack/internal/logging/events"
	"github.com/atomicstack/menustack/pkg/menu"
)

// Signal is an externally raised notification, such as an input action
// press. Origin names the object that raised it.
type Signal interface {
	Origin() menu.Handle
}

// Pressed reports that action A was just pressed on input manager Input.
type Pressed[A any] struct {
	Input menu.Handle
}

// Origin returns the input manager that saw the press.
func (p Pressed[A]) Origin() menu.Handle {
	return p.Input
}

// CloseMenuAction closes the menu whose input manager raised it.
type CloseMenuAction struct{}

// Targeted is a signal aimed at a specific menu.
type Targeted[T any] struct {
	Target menu.Handle
}

// Origin returns the targeted menu.
func (t Targeted[T]) Origin() menu.Handle {
	return t.Target
}

type signalHandler func(Signal) error

// On registers fn for every raised signal of type S. Handlers for the same
// type run in registration order.
func On[S Signal](e *Engine, fn func(S) error) {
	key := reflect.TypeOf((*S)(nil)).Elem()
	e.handlers[key] = append(e.handlers[key], func(sig Signal) error {
		return fn(sig.(S))
	})
}

// PushOnSignal pushes the handle chosen by target whenever S is raised.
func PushOnSignal[S Signal](e *Engine, target func(S) (menu.Handle, error)) {
	On(e, func(sig S) error {
		h, err := target(sig)
		if err != nil {
			return err
		}
		e.stack.Push(h)
		return nil
	})
}

// RemoveOnSignal removes the handle chosen by target whenever S is raised.
func RemoveOnSignal[S Signal](e *Engine, target func(S) (menu.Handle, error)) {
	On(e, func(sig S) error {
		h, err := target(sig)
		if err != nil {
			return err
		}
		e.stack.Remove(h)
		return nil
	})
}

// ShowMenuOnSignal pushes the single live menu of the given kind whenever S
// is raised. A kind matching zero or several menus is reported from Tick.
func ShowMenuOnSignal[S Signal](e *Engine, kind string) {
	PushOnSignal(e, func(S) (menu.Handle, error) {
		return e.host.Single(kind)
	})
}

// CloseMenuOnSignal removes the signal's origin from the stack whenever S is
// raised.
func CloseMenuOnSignal[S Signal](e *Engine) {
	RemoveOnSignal(e, Origin[S])
}

// Origin is a target extractor returning the signal's origin.
func Origin[S Signal](sig S) (menu.Handle, error) {
	return sig.Origin(), nil
}

// Raise queues sig for the next tick.
func (e *Engine) Raise(sig Signal) {
	if sig == nil {
		return
	}
	events.Signal.Raise(signalName(sig), sig.Origin().String())
	e.pending = append(e.pending, sig)
}

// drainSignals runs handlers for queued signals in raise order, including
// signals raised by the handlers themselves.
func (e *Engine) drainSignals() []error {
	var errs []error
	for len(e.pending) > 0 {
		sig := e.pending[0]
		e.pending[0] = nil
		e.pending = e.pending[1:]
		name := signalName(sig)
		handlers := e.handlers[reflect.TypeOf(sig)]
		if len(handlers) == 0 {
			events.Signal.Unhandled(name)
			continue
		}
		for _, handler := range handlers {
			if err := handler(sig); err != nil {
				events.Signal.Error(name, err)
				errs = append(errs, fmt.Errorf("%s: %w", name, err))
			}
		}
	}
	e.pending = nil
	return errs
}

func signalName(sig Signal) string {
	return reflect.TypeOf(sig).String()
}
