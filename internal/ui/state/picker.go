package state

import "github.com/atomicstack/menustack/pkg/menu"

// Entry is one selectable menu in the picker.
type Entry struct {
	Handle menu.Handle
	Label  string
	Detail string
}

// Picker tracks the visible entries, filter text, cursor, and viewport.
type Picker struct {
	Items          []Entry
	Full           []Entry
	Filter         string
	FilterCursor   int
	Cursor         int
	LastCursor     int
	ViewportOffset int
}

// NewPicker constructs a picker over entries with the cursor on the first one.
func NewPicker(entries []Entry) *Picker {
	p := &Picker{LastCursor: -1}
	p.SetEntries(entries)
	return p
}

func cloneEntries(entries []Entry) []Entry {
	dup := make([]Entry, len(entries))
	copy(dup, entries)
	return dup
}

// SetEntries replaces the entry list, keeping the cursor on the same handle
// when it survives.
func (p *Picker) SetEntries(entries []Entry) {
	selected, hadSelection := p.Selected()
	p.Full = cloneEntries(entries)
	p.applyFilter()
	if hadSelection {
		if idx := p.IndexOf(selected.Handle); idx >= 0 {
			p.Cursor = idx
		}
	}
}

// IndexOf returns the visible index of h, or -1.
func (p *Picker) IndexOf(h menu.Handle) int {
	for i, entry := range p.Items {
		if entry.Handle == h {
			return i
		}
	}
	return -1
}

// Selected returns the entry under the cursor.
func (p *Picker) Selected() (Entry, bool) {
	if p.Cursor < 0 || p.Cursor >= len(p.Items) {
		return Entry{}, false
	}
	return p.Items[p.Cursor], true
}
