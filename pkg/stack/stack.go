// Package stack holds the ordered menu stack whose last element is the
// logically active menu.
package stack

import (
	"github.com/atomicstack/menustack/internal/logging"
	"github.com/atomicstack/menustack/internal/logging/events"
	"github.com/atomicstack/menustack/pkg/menu"
	"go.uber.org/zap"
)

// Stack is an ordered sequence of menu handles. Duplicates are allowed and the
// last element is the top. Every mutation bumps Version so observers can tell
// whether anything changed since they last looked.
type Stack struct {
	entries []menu.Handle
	version uint64
}

// New returns an empty stack.
func New() *Stack {
	return &Stack{}
}

// Push appends h without deduplication.
func (s *Stack) Push(h menu.Handle) {
	s.entries = append(s.entries, h)
	s.version++
	events.Stack.Push(h, len(s.entries))
	logging.Debug("pushed menu", zap.Stringer("menu", h), zap.Stringers("stack", s.entries))
}

// Remove deletes every occurrence of h, keeping the order of the rest. It is
// a no-op when h is absent.
func (s *Stack) Remove(h menu.Handle) {
	kept := s.entries[:0]
	removed := 0
	for _, entry := range s.entries {
		if entry == h {
			removed++
			continue
		}
		kept = append(kept, entry)
	}
	if removed == 0 {
		return
	}
	clear(s.entries[len(kept):])
	s.entries = kept
	s.version++
	events.Stack.Remove(h, removed, len(s.entries))
	logging.Debug("removed menu", zap.Stringer("menu", h), zap.Stringers("stack", s.entries))
}

// Contains reports whether h is anywhere in the stack.
func (s *Stack) Contains(h menu.Handle) bool {
	for _, entry := range s.entries {
		if entry == h {
			return true
		}
	}
	return false
}

// Toggle removes h when present, otherwise pushes it.
func (s *Stack) Toggle(h menu.Handle) {
	if s.Contains(h) {
		s.Remove(h)
		return
	}
	s.Push(h)
}

// Top returns the last element.
func (s *Stack) Top() (menu.Handle, bool) {
	if len(s.entries) == 0 {
		return menu.Nil, false
	}
	return s.entries[len(s.entries)-1], true
}

// TopMatching searches from the top down for the first handle accepted by keep.
func (s *Stack) TopMatching(keep func(menu.Handle) bool) (menu.Handle, bool) {
	for i := len(s.entries) - 1; i >= 0; i-- {
		if keep(s.entries[i]) {
			return s.entries[i], true
		}
	}
	return menu.Nil, false
}

// Len returns the number of entries, counting duplicates.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Snapshot returns a copy of the entries, bottom first.
func (s *Stack) Snapshot() []menu.Handle {
	if len(s.entries) == 0 {
		return nil
	}
	dup := make([]menu.Handle, len(s.entries))
	copy(dup, s.entries)
	return dup
}

// Version increases on every effective mutation.
func (s *Stack) Version() uint64 {
	return s.version
}

// ChangedSince reports whether the stack mutated after version v was observed.
func (s *Stack) ChangedSince(v uint64) bool {
	return s.version != v
}
