package menu

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrNotFound is returned when a query expected exactly one live object and found none.
	ErrNotFound = errors.New("menu not found")
	// ErrAmbiguous is returned when a query expected exactly one live object and found several.
	ErrAmbiguous = errors.New("menu is ambiguous")
)

// Spec describes an object to spawn.
type Spec struct {
	Name    string
	Kind    string
	Markers Marker
	// InputParent attaches the new object below an existing input owner.
	InputParent Handle
}

// Record is a read-only view of a spawned object.
type Record struct {
	Handle        Handle
	Name          string
	Kind          string
	Markers       Marker
	Visible       bool
	InputDisabled bool
	InputParent   Handle
}

type record struct {
	name          string
	kind          string
	markers       Marker
	visible       bool
	inputDisabled bool
	parent        Handle
}

// World is an in-memory object registry. It is not safe for concurrent use;
// hosts mutate it from their tick loop only.
type World struct {
	next     Handle
	records  map[Handle]*record
	children map[Handle][]Handle
}

// NewWorld returns an empty registry.
func NewWorld() *World {
	return &World{
		records:  make(map[Handle]*record),
		children: make(map[Handle][]Handle),
	}
}

// Spawn creates an object and returns its handle. Input-bearing objects and
// objects attached to an input parent start with input disabled.
func (w *World) Spawn(spec Spec) Handle {
	w.next++
	h := w.next
	rec := &record{
		name:    spec.Name,
		kind:    spec.Kind,
		markers: spec.Markers,
		visible: !spec.Markers.Has(HidesOnClose),
	}
	if rec.name == "" {
		rec.name = h.String()
	}
	if spec.Markers.Has(WithInput) {
		rec.inputDisabled = true
	}
	w.records[h] = rec
	if !spec.InputParent.IsNil() {
		w.SetInputParent(h, spec.InputParent)
	}
	return h
}

// Exists reports whether h refers to a live object.
func (w *World) Exists(h Handle) bool {
	_, ok := w.records[h]
	return ok
}

// Despawn destroys the object. Its input children are detached rather than
// destroyed, and every surviving descendant falls back to input disabled.
// Unknown handles are ignored.
func (w *World) Despawn(h Handle) {
	rec, ok := w.records[h]
	if !ok {
		return
	}
	if !rec.parent.IsNil() {
		w.detach(h, rec.parent)
	}
	w.disableBelow(h)
	for _, child := range w.children[h] {
		if c, ok := w.records[child]; ok {
			c.parent = Nil
		}
	}
	delete(w.children, h)
	delete(w.records, h)
}

// HasMarker reports whether the live object h carries marker m.
func (w *World) HasMarker(h Handle, m Marker) bool {
	rec, ok := w.records[h]
	return ok && rec.markers.Has(m)
}

// SetInputParent moves child below parent in the input-ownership tree. A nil
// parent detaches the child. Attaching or detaching disables input on the
// child and everything below it, even when parent currently owns input; the
// next grant enables the subtree again.
func (w *World) SetInputParent(child, parent Handle) {
	rec, ok := w.records[child]
	if !ok || child == parent {
		return
	}
	if parent == rec.parent && !parent.IsNil() {
		return
	}
	if !rec.parent.IsNil() {
		w.detach(child, rec.parent)
		rec.parent = Nil
		rec.inputDisabled = true
		w.disableBelow(child)
	}
	if parent.IsNil() || !w.Exists(parent) || w.isDescendant(parent, child) {
		return
	}
	rec.parent = parent
	rec.inputDisabled = true
	w.disableBelow(child)
	w.children[parent] = append(w.children[parent], child)
}

// InputParent returns the input owner above h, if any.
func (w *World) InputParent(h Handle) (Handle, bool) {
	rec, ok := w.records[h]
	if !ok || rec.parent.IsNil() {
		return Nil, false
	}
	return rec.parent, true
}

// InputChildren returns the direct children of h in the input-ownership tree.
func (w *World) InputChildren(h Handle) []Handle {
	kids := w.children[h]
	if len(kids) == 0 {
		return nil
	}
	dup := make([]Handle, len(kids))
	copy(dup, kids)
	return dup
}

// SetInputDisabled applies or clears the input-disabled marker.
func (w *World) SetInputDisabled(h Handle, disabled bool) {
	if rec, ok := w.records[h]; ok {
		rec.inputDisabled = disabled
	}
}

// InputDisabled reports whether h currently has input disabled. Missing
// objects report true.
func (w *World) InputDisabled(h Handle) bool {
	rec, ok := w.records[h]
	return !ok || rec.inputDisabled
}

// SetVisible updates visibility of h.
func (w *World) SetVisible(h Handle, visible bool) {
	if rec, ok := w.records[h]; ok {
		rec.visible = visible
	}
}

// Visible reports whether h is currently visible.
func (w *World) Visible(h Handle) bool {
	rec, ok := w.records[h]
	return ok && rec.visible
}

// Single returns the one live object of the given kind.
func (w *World) Single(kind string) (Handle, error) {
	matches := 0
	found := Nil
	for _, h := range w.Handles() {
		if w.records[h].kind != kind {
			continue
		}
		matches++
		if found.IsNil() {
			found = h
		}
	}
	switch matches {
	case 0:
		return Nil, fmt.Errorf("%w: kind %q", ErrNotFound, kind)
	case 1:
		return found, nil
	default:
		return Nil, fmt.Errorf("%w: kind %q matched %d objects", ErrAmbiguous, kind, matches)
	}
}

// Lookup resolves a handle by name. The lowest matching handle wins.
func (w *World) Lookup(name string) (Handle, bool) {
	for _, h := range w.Handles() {
		if w.records[h].name == name {
			return h, true
		}
	}
	return Nil, false
}

// Name returns the display name of h, or its handle string once despawned.
func (w *World) Name(h Handle) string {
	if rec, ok := w.records[h]; ok {
		return rec.name
	}
	return h.String()
}

// Get returns a snapshot of the object behind h.
func (w *World) Get(h Handle) (Record, bool) {
	rec, ok := w.records[h]
	if !ok {
		return Record{}, false
	}
	return Record{
		Handle:        h,
		Name:          rec.name,
		Kind:          rec.kind,
		Markers:       rec.markers,
		Visible:       rec.visible,
		InputDisabled: rec.inputDisabled,
		InputParent:   rec.parent,
	}, true
}

// Handles lists live handles in spawn order.
func (w *World) Handles() []Handle {
	out := make([]Handle, 0, len(w.records))
	for h := range w.records {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (w *World) detach(child, parent Handle) {
	kids := w.children[parent]
	for i, h := range kids {
		if h == child {
			w.children[parent] = append(kids[:i:i], kids[i+1:]...)
			break
		}
	}
	if len(w.children[parent]) == 0 {
		delete(w.children, parent)
	}
}

// disableBelow sets the input-disabled flag on every descendant of root.
func (w *World) disableBelow(root Handle) {
	seen := map[Handle]bool{root: true}
	queue := append([]Handle(nil), w.children[root]...)
	for len(queue) > 0 {
		h := queue[0]
		queue = queue[1:]
		if seen[h] {
			continue
		}
		seen[h] = true
		if rec, ok := w.records[h]; ok {
			rec.inputDisabled = true
		}
		queue = append(queue, w.children[h]...)
	}
}

// isDescendant reports whether candidate sits anywhere below root.
func (w *World) isDescendant(candidate, root Handle) bool {
	for h := candidate; !h.IsNil(); {
		rec, ok := w.records[h]
		if !ok {
			return false
		}
		if rec.parent == root {
			return true
		}
		h = rec.parent
	}
	return false
}
