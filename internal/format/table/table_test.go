package table

import "testing"

func TestFormatPadsColumns(t *testing.T) {
	rows := [][]string{
		{"tick", "transition", "menu"},
		{"1", "activate", "main"},
		{"12", "deactivate", "inventory"},
	}
	got := Format(rows, []Alignment{AlignRight})
	want := []string{
		"tick  transition  menu",
		"   1  activate    main",
		"  12  deactivate  inventory",
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestFormatIgnoresANSIAndRaggedRows(t *testing.T) {
	rows := [][]string{
		{"\x1b[1mab\x1b[0m", "x"},
		{"abc"},
	}
	got := Format(rows, nil)
	if got[0] != "\x1b[1mab\x1b[0m   x" {
		t.Fatalf("unexpected styled row %q", got[0])
	}
	if got[1] != "abc" {
		t.Fatalf("unexpected short row %q", got[1])
	}
	if Format(nil, nil) != nil {
		t.Fatalf("expected nil for empty input")
	}
}
