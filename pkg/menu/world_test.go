package menu

import (
	"errors"
	"testing"
)

func TestSpawnDefaults(t *testing.T) {
	w := NewWorld()
	plain := w.Spawn(Spec{Name: "plain"})
	hud := w.Spawn(Spec{Name: "hud", Markers: HidesOnClose | WithInput})

	if !w.Exists(plain) || !w.Exists(hud) {
		t.Fatalf("expected spawned handles to exist")
	}
	if plain == hud {
		t.Fatalf("expected distinct handles")
	}
	if !w.Visible(plain) {
		t.Fatalf("expected plain menu visible")
	}
	if w.Visible(hud) {
		t.Fatalf("expected hides-on-close menu to start hidden")
	}
	if w.InputDisabled(plain) {
		t.Fatalf("expected plain menu input enabled")
	}
	if !w.InputDisabled(hud) {
		t.Fatalf("expected input-bearing menu to start disabled")
	}
	if got := w.Name(plain); got != "plain" {
		t.Fatalf("expected name plain, got %q", got)
	}
}

func TestDespawnDetachesChildren(t *testing.T) {
	w := NewWorld()
	root := w.Spawn(Spec{Name: "root", Markers: WithInput})
	child := w.Spawn(Spec{Name: "child", InputParent: root})
	grandchild := w.Spawn(Spec{Name: "grandchild", InputParent: child})

	if !w.InputDisabled(child) {
		t.Fatalf("expected attached child to start disabled")
	}
	if kids := w.InputChildren(root); len(kids) != 1 || kids[0] != child {
		t.Fatalf("expected root children [%v], got %v", child, kids)
	}

	w.Despawn(child)
	if w.Exists(child) {
		t.Fatalf("expected child despawned")
	}
	if kids := w.InputChildren(root); len(kids) != 0 {
		t.Fatalf("expected root to lose child, got %v", kids)
	}
	if _, ok := w.InputParent(grandchild); ok {
		t.Fatalf("expected grandchild detached")
	}
	if got := w.Name(child); got != child.String() {
		t.Fatalf("expected handle string for despawned name, got %q", got)
	}
	w.Despawn(child)
}

func TestSetInputParentRejectsCycles(t *testing.T) {
	w := NewWorld()
	a := w.Spawn(Spec{Name: "a"})
	b := w.Spawn(Spec{Name: "b", InputParent: a})
	c := w.Spawn(Spec{Name: "c", InputParent: b})

	w.SetInputParent(a, c)
	if _, ok := w.InputParent(a); ok {
		t.Fatalf("expected cycle to be rejected")
	}
	w.SetInputParent(c, a)
	if parent, _ := w.InputParent(c); parent != a {
		t.Fatalf("expected c reparented to a, got %v", parent)
	}
	if kids := w.InputChildren(b); len(kids) != 0 {
		t.Fatalf("expected b to have no children after reparent, got %v", kids)
	}
}

func TestDespawnDisablesSurvivingDescendants(t *testing.T) {
	w := NewWorld()
	root := w.Spawn(Spec{Name: "root", Markers: WithInput})
	child := w.Spawn(Spec{Name: "child", InputParent: root})
	grandchild := w.Spawn(Spec{Name: "grandchild", InputParent: child})
	for _, h := range []Handle{root, child, grandchild} {
		w.SetInputDisabled(h, false)
	}

	w.Despawn(root)
	for _, h := range []Handle{child, grandchild} {
		if !w.InputDisabled(h) {
			t.Fatalf("expected %s disabled after its owner despawned", w.Name(h))
		}
	}
	if parent, _ := w.InputParent(grandchild); parent != child {
		t.Fatalf("expected grandchild to stay below child, got %v", parent)
	}
}

func TestSetInputParentDisablesMovedSubtree(t *testing.T) {
	w := NewWorld()
	owner := w.Spawn(Spec{Name: "owner", Markers: WithInput})
	child := w.Spawn(Spec{Name: "child", InputParent: owner})
	grandchild := w.Spawn(Spec{Name: "grandchild", InputParent: child})
	for _, h := range []Handle{owner, child, grandchild} {
		w.SetInputDisabled(h, false)
	}

	w.SetInputParent(child, owner)
	if w.InputDisabled(child) || w.InputDisabled(grandchild) {
		t.Fatalf("expected re-attaching to the same parent to be a no-op")
	}

	w.SetInputParent(child, Nil)
	if !w.InputDisabled(child) || !w.InputDisabled(grandchild) {
		t.Fatalf("expected detached subtree disabled")
	}
	if w.InputDisabled(owner) {
		t.Fatalf("expected owner untouched by detaching its child")
	}

	w.SetInputDisabled(child, false)
	w.SetInputDisabled(grandchild, false)
	late := w.Spawn(Spec{Name: "late", InputParent: owner})
	w.SetInputParent(child, owner)
	for _, h := range []Handle{late, child, grandchild} {
		if !w.InputDisabled(h) {
			t.Fatalf("expected %s disabled when attached below an enabled owner", w.Name(h))
		}
	}
}

func TestSingle(t *testing.T) {
	w := NewWorld()
	if _, err := w.Single("pause"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	first := w.Spawn(Spec{Name: "pause", Kind: "pause"})
	got, err := w.Single("pause")
	if err != nil || got != first {
		t.Fatalf("expected %v, got %v (err %v)", first, got, err)
	}
	w.Spawn(Spec{Name: "pause-2", Kind: "pause"})
	if _, err := w.Single("pause"); !errors.Is(err, ErrAmbiguous) {
		t.Fatalf("expected ErrAmbiguous, got %v", err)
	}
}

func TestMarkerStringAndParse(t *testing.T) {
	m := CapturesMouse | WithInput
	if got := m.String(); got != "captures-mouse,input" {
		t.Fatalf("unexpected marker string %q", got)
	}
	parsed, err := ParseMarker("Despawns-On-Close")
	if err != nil || parsed != DespawnsOnClose {
		t.Fatalf("expected despawns-on-close, got %v (err %v)", parsed, err)
	}
	if _, err := ParseMarker("glow"); err == nil {
		t.Fatalf("expected error for unknown marker")
	}
	if Marker(0).Has(0) {
		t.Fatalf("empty marker query should be false")
	}
}
