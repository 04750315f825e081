// Package window models the cursor options of the primary window.
package window

// GrabMode controls how the cursor is held by the window.
type GrabMode int

const (
	GrabNone GrabMode = iota
	GrabConfined
	GrabLocked
)

func (g GrabMode) String() string {
	switch g {
	case GrabConfined:
		return "confined"
	case GrabLocked:
		return "locked"
	default:
		return "none"
	}
}

// Cursor holds the cursor options applied to the primary window.
type Cursor struct {
	Grab    GrabMode
	Visible bool
}

// Primary is the host's primary window. Version increases whenever the
// cursor options change so hosts can mirror them lazily.
type Primary struct {
	cursor  Cursor
	version uint64
}

// NewPrimary returns a window with a free, visible cursor.
func NewPrimary() *Primary {
	return &Primary{cursor: Cursor{Grab: GrabNone, Visible: true}}
}

// SetCursor replaces the cursor options.
func (p *Primary) SetCursor(c Cursor) {
	if p.cursor == c {
		return
	}
	p.cursor = c
	p.version++
}

// Cursor returns the current cursor options.
func (p *Primary) Cursor() Cursor {
	return p.cursor
}

// Version increases on every effective cursor change.
func (p *Primary) Version() uint64 {
	return p.version
}
