package app

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/menustack/internal/testutil"
)

func TestRunScriptReplaysDemo(t *testing.T) {
	var out bytes.Buffer
	if err := RunScript(filepath.Join("testdata", "demo.menu"), true, &out); err != nil {
		t.Fatalf("unexpected error: %v\n%s", err, out.String())
	}
	report := out.String()
	testutil.AssertGolden(t, "demo.report", report)
	for _, want := range []string{
		"stack:  main > settings > pause",
		"top:    pause",
		"input:  pause",
		"disabled: settings, grid",
		"cursor: grab=none visible=true",
	} {
		if !strings.Contains(report, want) {
			t.Fatalf("expected %q in report:\n%s", want, report)
		}
	}
}

func TestRunScriptReportsTickErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.menu")
	if err := os.WriteFile(path, []byte("show missing\n"), 0o644); err != nil {
		t.Fatalf("write script: %v", err)
	}
	var out bytes.Buffer
	err := RunScript(path, true, &out)
	if !errors.Is(err, ErrTickFailed) {
		t.Fatalf("expected ErrTickFailed, got %v", err)
	}
	if !strings.Contains(out.String(), "error") {
		t.Fatalf("expected error row in report:\n%s", out.String())
	}
}

func TestRunScriptRejectsBadInput(t *testing.T) {
	dir := t.TempDir()
	if err := RunScript(filepath.Join(dir, "missing.menu"), true, &bytes.Buffer{}); err == nil {
		t.Fatalf("expected error for missing script")
	}
	path := filepath.Join(dir, "bad.menu")
	if err := os.WriteFile(path, []byte("fly away\n"), 0o644); err != nil {
		t.Fatalf("write script: %v", err)
	}
	if err := RunScript(path, true, &bytes.Buffer{}); err == nil || !strings.Contains(err.Error(), "line 1") {
		t.Fatalf("expected parse error with line number, got %v", err)
	}
}

func TestDemoSceneActivatesMainOnFirstTick(t *testing.T) {
	scene := DemoScene(true)
	transitions, err := scene.Engine.Tick()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(transitions) != 1 || scene.World.Name(transitions[0].Menu) != "main" {
		t.Fatalf("expected main activated, got %v", transitions)
	}
	if scene.Primary.Cursor().Visible {
		t.Fatalf("expected cursor hidden by main")
	}
	if _, ok := scene.World.Lookup("inventory-grid"); !ok {
		t.Fatalf("expected inventory grid spawned")
	}
}
