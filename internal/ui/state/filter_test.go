package state

import "testing"

func labels(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, entry := range entries {
		out[i] = entry.Label
	}
	return out
}

func TestFilterEntriesFuzzy(t *testing.T) {
	entries := []Entry{{Label: "settings"}, {Label: "inventory"}, {Label: "pause"}}
	got := labels(FilterEntries(entries, "inv"))
	if len(got) != 1 || got[0] != "inventory" {
		t.Fatalf("expected inventory only, got %v", got)
	}
	if got := FilterEntries(entries, "  "); len(got) != 3 {
		t.Fatalf("expected blank filter to keep everything, got %v", labels(got))
	}
}

func TestFilterEntriesFallsBackToDetail(t *testing.T) {
	entries := []Entry{{Label: "main", Detail: "captures-mouse"}, {Label: "grid", Detail: "input"}}
	got := labels(FilterEntries(entries, "captures"))
	if len(got) != 1 || got[0] != "main" {
		t.Fatalf("expected detail match on main, got %v", got)
	}
}

func TestBestMatchPrefersExactThenPrefix(t *testing.T) {
	entries := []Entry{{Label: "pause-menu"}, {Label: "pause"}, {Label: "spa"}}
	if idx := BestMatchIndex(entries, "PAUSE"); idx != 1 {
		t.Fatalf("expected exact match index 1, got %d", idx)
	}
	if idx := BestMatchIndex(entries, "pau"); idx != 0 {
		t.Fatalf("expected prefix match index 0, got %d", idx)
	}
	if idx := BestMatchIndex(nil, "x"); idx != -1 {
		t.Fatalf("expected -1 for no entries, got %d", idx)
	}
}

func TestSetFilterRestoresCursorWhenCleared(t *testing.T) {
	p := newTestPicker("alpha", "beta", "gamma")
	p.Cursor = 2
	if !p.InsertFilterText("be") {
		t.Fatalf("expected insert to succeed")
	}
	if len(p.Items) != 1 || p.Items[0].Label != "beta" || p.Cursor != 0 {
		t.Fatalf("expected beta selected, got %v cursor %d", labels(p.Items), p.Cursor)
	}
	p.SetFilter("", 0)
	if p.Cursor != 2 {
		t.Fatalf("expected cursor restored to 2, got %d", p.Cursor)
	}
	if len(p.Items) != 3 {
		t.Fatalf("expected all entries restored, got %v", labels(p.Items))
	}
}

func TestFilterEditing(t *testing.T) {
	p := newTestPicker("alpha")
	p.InsertFilterText("foo bar")
	if !p.DeleteFilterWordBackward() || p.Filter != "foo " {
		t.Fatalf("expected word deleted, got %q", p.Filter)
	}
	if !p.DeleteFilterRuneBackward() || p.Filter != "foo" {
		t.Fatalf("expected rune deleted, got %q", p.Filter)
	}
	p.FilterCursor = 1
	p.InsertFilterText("x")
	if p.Filter != "fxoo" || p.FilterCursorPos() != 2 {
		t.Fatalf("expected insert at cursor, got %q at %d", p.Filter, p.FilterCursorPos())
	}
	p.SetFilter("", 0)
	if p.DeleteFilterRuneBackward() || p.DeleteFilterWordBackward() {
		t.Fatalf("expected no-op deletes on empty filter")
	}
	if p.InsertFilterText("") {
		t.Fatalf("expected empty insert to be a no-op")
	}
}
