package dispatcher

import (
	"testing"

	"github.com/atomicstack/menustack/internal/backend"
	"github.com/atomicstack/menustack/pkg/engine"
	"github.com/atomicstack/menustack/pkg/menu"
)

func TestHandleRunsOneTick(t *testing.T) {
	w := menu.NewWorld()
	e := engine.New(w)
	d := New(e)

	if res := d.Handle(backend.Event{Seq: 1}); res.Changed() || res.Seq != 1 {
		t.Fatalf("expected quiet first tick, got %+v", res)
	}

	h := w.Spawn(menu.Spec{Name: "main"})
	e.Stack().Push(h)
	res := d.Handle(backend.Event{Seq: 2, Nudged: true})
	if !res.Changed() || res.Err != nil {
		t.Fatalf("expected transitions, got %+v", res)
	}
	if len(res.Transitions) != 1 || res.Transitions[0] != (engine.Transition{Kind: engine.Activate, Menu: h}) {
		t.Fatalf("unexpected transitions %v", res.Transitions)
	}
	if res.Seq != 2 {
		t.Fatalf("expected engine seq 2, got %d", res.Seq)
	}
}
