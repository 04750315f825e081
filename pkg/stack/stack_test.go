package stack

import (
	"testing"

	"github.com/atomicstack/menustack/pkg/menu"
)

func equalHandles(a, b []menu.Handle) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestPushAllowsDuplicates(t *testing.T) {
	s := New()
	s.Push(1)
	s.Push(2)
	s.Push(1)
	want := []menu.Handle{1, 2, 1}
	if got := s.Snapshot(); !equalHandles(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if top, ok := s.Top(); !ok || top != 1 {
		t.Fatalf("expected top 1, got %v (ok=%v)", top, ok)
	}
}

func TestRemoveDeletesAllOccurrences(t *testing.T) {
	s := New()
	for _, h := range []menu.Handle{1, 2, 1, 3, 1} {
		s.Push(h)
	}
	s.Remove(1)
	want := []menu.Handle{2, 3}
	if got := s.Snapshot(); !equalHandles(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if s.Contains(1) {
		t.Fatalf("expected 1 removed")
	}
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	s := New()
	s.Push(1)
	v := s.Version()
	s.Remove(9)
	if s.ChangedSince(v) {
		t.Fatalf("expected no version bump for absent remove")
	}
	if s.Len() != 1 {
		t.Fatalf("expected length 1, got %d", s.Len())
	}
}

func TestToggle(t *testing.T) {
	s := New()
	s.Toggle(4)
	if !s.Contains(4) {
		t.Fatalf("expected toggle to push on empty stack")
	}
	s.Push(5)
	s.Toggle(4)
	if s.Contains(4) {
		t.Fatalf("expected toggle to remove existing handle")
	}
	if top, _ := s.Top(); top != 5 {
		t.Fatalf("expected top 5, got %v", top)
	}
}

func TestTopMatchingSearchesFromTop(t *testing.T) {
	s := New()
	for _, h := range []menu.Handle{1, 2, 3, 4} {
		s.Push(h)
	}
	even := func(h menu.Handle) bool { return h%2 == 0 }
	if got, ok := s.TopMatching(even); !ok || got != 4 {
		t.Fatalf("expected 4, got %v", got)
	}
	s.Remove(4)
	if got, ok := s.TopMatching(even); !ok || got != 2 {
		t.Fatalf("expected 2, got %v", got)
	}
	if _, ok := s.TopMatching(func(menu.Handle) bool { return false }); ok {
		t.Fatalf("expected no match")
	}
}

func TestVersionTracksMutations(t *testing.T) {
	s := New()
	v := s.Version()
	if s.ChangedSince(v) {
		t.Fatalf("fresh stack should be unchanged")
	}
	s.Push(1)
	if !s.ChangedSince(v) {
		t.Fatalf("expected change after push")
	}
	v = s.Version()
	s.Toggle(1)
	if !s.ChangedSince(v) {
		t.Fatalf("expected change after toggle")
	}
	if _, ok := s.Top(); ok {
		t.Fatalf("expected empty stack")
	}
	if s.Snapshot() != nil {
		t.Fatalf("expected nil snapshot for empty stack")
	}
}
