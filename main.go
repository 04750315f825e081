package main

import (
	"fmt"
	"os"

	"github.com/atomicstack/menustack/internal/app"
	"github.com/atomicstack/menustack/internal/config"
	"github.com/atomicstack/menustack/internal/logging"
	"github.com/atomicstack/menustack/internal/logging/events"
	"golang.org/x/term"
)

const (
	exitOK     = 0
	exitFailed = 1
	exitConfig = 2
)

func main() {
	os.Exit(run(config.MustLoad()))
}

// run drives one invocation and returns the process exit code.
func run(cfg config.Config) int {
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		return exitConfig
	}
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)
	defer logging.Close()

	events.App.Start(startupTracePayload(cfg))
	err := app.Run(cfg.App)
	events.App.Exit(err)
	if err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitFailed
	}
	return exitOK
}

func runMode(cfg app.Config) string {
	if cfg.ScriptPath != "" {
		return "script"
	}
	return "interactive"
}

// startupTracePayload records how the process was invoked and what terminal it
// found.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags)+2)
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath

	payload := map[string]interface{}{
		"argv":     cfg.Args,
		"flags":    flags,
		"config":   cfg,
		"mode":     runMode(cfg.App),
		"terminal": probeTerminal(),
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	return payload
}

type terminalReport struct {
	// Size is taken from the first descriptor that is a terminal.
	Size        *terminalSize      `json:"size,omitempty"`
	Descriptors []descriptorReport `json:"descriptors"`
}

type terminalSize struct {
	From   string `json:"from"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type descriptorReport struct {
	Name     string `json:"name"`
	Terminal bool   `json:"terminal"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
	Error    string `json:"error,omitempty"`
}

func probeTerminal() terminalReport {
	files := []*os.File{os.Stdin, os.Stdout, os.Stderr}
	names := []string{"stdin", "stdout", "stderr"}
	report := terminalReport{Descriptors: make([]descriptorReport, 0, len(files))}
	for i, f := range files {
		d := probeDescriptor(names[i], int(f.Fd()))
		if report.Size == nil && d.Terminal && d.Error == "" {
			report.Size = &terminalSize{From: d.Name, Width: d.Width, Height: d.Height}
		}
		report.Descriptors = append(report.Descriptors, d)
	}
	return report
}

func probeDescriptor(name string, fd int) descriptorReport {
	d := descriptorReport{Name: name}
	if fd < 0 || !term.IsTerminal(fd) {
		return d
	}
	d.Terminal = true
	width, height, err := term.GetSize(fd)
	if err != nil {
		d.Error = err.Error()
		return d
	}
	d.Width, d.Height = width, height
	return d
}
