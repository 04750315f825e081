package main

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/atomicstack/menustack/internal/app"
	"github.com/atomicstack/menustack/internal/config"
)

func TestProbeTerminalCoversStandardDescriptors(t *testing.T) {
	report := probeTerminal()
	if len(report.Descriptors) != 3 {
		t.Fatalf("expected 3 descriptors, got %d", len(report.Descriptors))
	}
	for i, name := range []string{"stdin", "stdout", "stderr"} {
		if report.Descriptors[i].Name != name {
			t.Fatalf("expected descriptor %d name %q, got %q", i, name, report.Descriptors[i].Name)
		}
	}
	if report.Size != nil {
		for _, d := range report.Descriptors {
			if d.Name == report.Size.From && !d.Terminal {
				t.Fatalf("expected size taken from a terminal descriptor, got %+v", report.Size)
			}
		}
	}
	if d := probeDescriptor("closed", -1); d.Terminal {
		t.Fatalf("expected invalid descriptor to be reported as non-terminal")
	}
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	cfg := config.Config{App: app.Config{Tick: time.Second, ScriptPath: filepath.Join(t.TempDir(), "missing.menu")}}
	if code := run(cfg); code != exitConfig {
		t.Fatalf("expected exit code %d, got %d", exitConfig, code)
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			Tick:       250 * time.Millisecond,
			Width:      80,
			Height:     24,
			ShowFooter: true,
			ScriptPath: "demo.menu",
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"tick":    "250ms",
			"width":   "80",
			"height":  "24",
			"footer":  "true",
			"script":  "demo.menu",
			"noInput": "false",
		},
		Args: []string{"--tick", "250ms", "--script", "demo.menu"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["tick"] != "250ms" {
		t.Fatalf("expected tick flag %q, got %v", "250ms", flagsValue["tick"])
	}
	if flagsValue["width"] != "80" {
		t.Fatalf("expected width 80, got %v", flagsValue["width"])
	}
	if flagsValue["height"] != "24" {
		t.Fatalf("expected height 24, got %v", flagsValue["height"])
	}
	if flagsValue["footer"] != "true" {
		t.Fatalf("expected footer flag true, got %v", flagsValue["footer"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["script"] != "demo.menu" {
		t.Fatalf("expected script flag demo.menu, got %v", flagsValue["script"])
	}
	if flagsValue["noInput"] != "false" {
		t.Fatalf("expected noInput flag false, got %v", flagsValue["noInput"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}

	if _, ok := payload["terminal"].(terminalReport); !ok {
		t.Fatalf("expected terminal report in payload")
	}
	if payload["mode"] != "script" {
		t.Fatalf("expected script mode, got %v", payload["mode"])
	}
	if cfgValue, ok := payload["config"].(config.Config); !ok {
		t.Fatalf("expected config in payload")
	} else if cfgValue.App != cfg.App {
		t.Fatalf("expected app config %#v, got %#v", cfg.App, cfgValue.App)
	}
}
