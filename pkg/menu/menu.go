// Package menu defines menu handles, their markers, and an in-memory registry
// that owns the objects those handles refer to.
package menu

import (
	"fmt"
	"strings"
)

// Handle identifies a menu or input-manager object. Handles are never reused,
// so a stale handle simply stops existing.
type Handle uint64

// Nil is the zero handle; it never refers to a live object.
const Nil Handle = 0

// IsNil reports whether h is the zero handle.
func (h Handle) IsNil() bool {
	return h == Nil
}

func (h Handle) String() string {
	if h == Nil {
		return "menu#nil"
	}
	return fmt.Sprintf("menu#%d", uint64(h))
}

// Marker is a set of boolean tags attached to a handle at creation.
type Marker uint8

const (
	// CapturesMouse confines and hides the cursor when the menu activates.
	CapturesMouse Marker = 1 << iota
	// ReleasesMouse frees and shows the cursor when the menu activates.
	ReleasesMouse
	// HidesOnClose toggles visibility with activation.
	HidesOnClose
	// DespawnsOnClose destroys the object when the menu deactivates.
	DespawnsOnClose
	// WithInput makes the menu eligible for input ownership.
	WithInput
)

var markerNames = []struct {
	marker Marker
	name   string
}{
	{CapturesMouse, "captures-mouse"},
	{ReleasesMouse, "releases-mouse"},
	{HidesOnClose, "hides-on-close"},
	{DespawnsOnClose, "despawns-on-close"},
	{WithInput, "input"},
}

// Has reports whether every marker in want is present in m.
func (m Marker) Has(want Marker) bool {
	return want != 0 && m&want == want
}

func (m Marker) String() string {
	if m == 0 {
		return "none"
	}
	parts := make([]string, 0, len(markerNames))
	for _, entry := range markerNames {
		if m.Has(entry.marker) {
			parts = append(parts, entry.name)
		}
	}
	return strings.Join(parts, ",")
}

// ParseMarker resolves a marker by the name used in String.
func ParseMarker(name string) (Marker, error) {
	trimmed := strings.ToLower(strings.TrimSpace(name))
	for _, entry := range markerNames {
		if entry.name == trimmed {
			return entry.marker, nil
		}
	}
	return 0, fmt.Errorf("unknown marker %q", name)
}
