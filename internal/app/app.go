package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/atomicstack/menustack/internal/backend"
	"github.com/atomicstack/menustack/internal/logging/events"
	"github.com/atomicstack/menustack/internal/script"
	"github.com/atomicstack/menustack/internal/ui"
	"github.com/atomicstack/menustack/pkg/engine"
	"github.com/atomicstack/menustack/pkg/menu"
	"github.com/atomicstack/menustack/pkg/window"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrTickFailed is returned when a replayed script finished but one or more
// of its ticks reported errors.
var ErrTickFailed = errors.New("script ticks reported errors")

// Config describes user-provided application options.
type Config struct {
	Tick       time.Duration
	Width      int
	Height     int
	ShowFooter bool
	ScriptPath string
	NoInput    bool
}

// Run replays cfg.ScriptPath when set, otherwise it starts the interactive
// Bubble Tea program over the demo scene.
func Run(cfg Config) error {
	if cfg.ScriptPath != "" {
		return RunScript(cfg.ScriptPath, !cfg.NoInput, os.Stdout)
	}
	watcher := backend.NewWatcher(cfg.Tick)
	defer watcher.Stop()
	model := ui.NewModel(DemoScene(!cfg.NoInput), watcher, cfg.Width, cfg.Height, cfg.ShowFooter)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// RunScript replays the scenario at path and writes the report to out.
func RunScript(path string, withInput bool, out io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open script: %w", err)
	}
	defer f.Close()
	cmds, err := script.Parse(f)
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	events.App.Script(path, len(cmds))
	rep, runErr := script.NewRunner(withInput).Run(cmds)
	for _, line := range rep.Lines() {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	if runErr != nil {
		return fmt.Errorf("replay %s: %w", path, runErr)
	}
	if rep.Errors > 0 {
		return fmt.Errorf("%w: %d", ErrTickFailed, rep.Errors)
	}
	return nil
}

// DemoScene builds the interactive scene: a mouse-capturing main menu with
// settings, inventory, and pause menus available to stack on top of it.
func DemoScene(withInput bool) ui.Scene {
	world := menu.NewWorld()
	primary := window.NewPrimary()
	e := engine.New(world, engine.WithCursor(primary), engine.WithInputOwnership(withInput))

	main := world.Spawn(menu.Spec{Name: "main", Kind: "main", Markers: menu.CapturesMouse})
	world.Spawn(menu.Spec{Name: "settings", Kind: "settings", Markers: menu.HidesOnClose | menu.WithInput})
	inventory := world.Spawn(menu.Spec{Name: "inventory", Kind: "inventory", Markers: menu.DespawnsOnClose | menu.WithInput})
	world.Spawn(menu.Spec{Name: "inventory-grid", InputParent: inventory})
	world.Spawn(menu.Spec{Name: "pause", Kind: "pause", Markers: menu.ReleasesMouse | menu.HidesOnClose | menu.WithInput})

	engine.ShowMenuOnSignal[engine.Pressed[ui.PauseAction]](e, "pause")
	e.Stack().Push(main)
	return ui.Scene{World: world, Engine: e, Primary: primary}
}
