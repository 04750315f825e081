package script

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/atomicstack/menustack/internal/format/table"
	"github.com/atomicstack/menustack/internal/logging"
	"github.com/atomicstack/menustack/pkg/engine"
	"github.com/atomicstack/menustack/pkg/menu"
	"github.com/atomicstack/menustack/pkg/window"
)

// Row is one line of replay output.
type Row struct {
	Tick   uint64
	Event  string
	Menu   string
	Detail string
}

// Report collects everything a replay produced.
type Report struct {
	Rows   []Row
	Errors int
	Stack  []string
	Top    string
	Input  string
	// Disabled names live objects whose input is disabled, in spawn order.
	Disabled []string
	Cursor   window.Cursor
}

// Lines renders the report as an aligned table followed by the final state.
func (r Report) Lines() []string {
	rows := [][]string{{"TICK", "EVENT", "MENU", "DETAIL"}}
	for _, row := range r.Rows {
		rows = append(rows, []string{strconv.FormatUint(row.Tick, 10), row.Event, row.Menu, row.Detail})
	}
	out := table.Format(rows, []table.Alignment{table.AlignRight})
	out = append(out,
		"",
		"stack:  "+orNone(strings.Join(r.Stack, " > ")),
		"top:    "+orNone(r.Top),
		"input:  "+orNone(r.Input),
		"disabled: "+orNone(strings.Join(r.Disabled, ", ")),
		fmt.Sprintf("cursor: grab=%s visible=%t", r.Cursor.Grab, r.Cursor.Visible),
	)
	return out
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

type showRequest struct {
	kind string
}

func (showRequest) Origin() menu.Handle { return menu.Nil }

// Runner owns a world and engine for one replay.
type Runner struct {
	world   *menu.World
	primary *window.Primary
	engine  *engine.Engine
	names   map[menu.Handle]string
	rows    []Row
	errors  int
	dirty   bool
}

// NewRunner prepares an empty world. Input ownership follows withInput.
func NewRunner(withInput bool) *Runner {
	w := menu.NewWorld()
	primary := window.NewPrimary()
	r := &Runner{
		world:   w,
		primary: primary,
		names:   make(map[menu.Handle]string),
	}
	r.engine = engine.New(w, engine.WithCursor(primary), engine.WithInputOwnership(withInput))
	engine.PushOnSignal(r.engine, func(s showRequest) (menu.Handle, error) {
		return w.Single(s.kind)
	})
	return r
}

// Run executes cmds in order. A tick is implied after the last command when
// anything is still pending. Tick errors are recorded in the report; command
// errors such as unknown names stop the replay.
func (r *Runner) Run(cmds []Command) (Report, error) {
	for _, cmd := range cmds {
		if err := r.exec(cmd); err != nil {
			return r.report(), fmt.Errorf("line %d: %s: %w", cmd.Line, cmd, err)
		}
	}
	if r.dirty {
		r.tick()
	}
	return r.report(), nil
}

func (r *Runner) exec(cmd Command) error {
	if cmd.Op == "tick" {
		r.tick()
		return nil
	}
	if cmd.Op == "spawn" {
		return r.spawn(cmd.Args)
	}
	if cmd.Op == "show" {
		r.engine.Raise(showRequest{kind: cmd.Args[0]})
		r.dirty = true
		return nil
	}
	h, err := r.resolve(cmd.Args[0])
	if err != nil {
		return err
	}
	r.dirty = true
	switch cmd.Op {
	case "push":
		r.engine.Stack().Push(h)
	case "remove":
		r.engine.Stack().Remove(h)
	case "toggle":
		r.engine.Stack().Toggle(h)
	case "despawn":
		r.world.Despawn(h)
	case "close":
		r.engine.Raise(engine.Pressed[engine.CloseMenuAction]{Input: h})
	case "parent":
		parent := menu.Nil
		if cmd.Args[1] != "-" {
			if parent, err = r.resolve(cmd.Args[1]); err != nil {
				return err
			}
		}
		r.world.SetInputParent(h, parent)
	default:
		return fmt.Errorf("unsupported command %q", cmd.Op)
	}
	return nil
}

func (r *Runner) spawn(args []string) error {
	name := args[0]
	if _, exists := r.world.Lookup(name); exists {
		return fmt.Errorf("menu %q already exists", name)
	}
	spec := menu.Spec{Name: name}
	for _, arg := range args[1:] {
		key, value, hasValue := strings.Cut(arg, "=")
		switch {
		case hasValue && key == "kind":
			spec.Kind = value
		case hasValue && key == "parent":
			parent, err := r.resolve(value)
			if err != nil {
				return err
			}
			spec.InputParent = parent
		case hasValue:
			return fmt.Errorf("unknown option %q", key)
		default:
			marker, err := menu.ParseMarker(arg)
			if err != nil {
				return err
			}
			spec.Markers |= marker
		}
	}
	h := r.world.Spawn(spec)
	r.names[h] = name
	r.rows = append(r.rows, Row{Tick: r.engine.Seq(), Event: "spawn", Menu: name, Detail: spec.Markers.String()})
	return nil
}

func (r *Runner) resolve(name string) (menu.Handle, error) {
	h, ok := r.world.Lookup(name)
	if !ok {
		return menu.Nil, fmt.Errorf("unknown menu %q", name)
	}
	return h, nil
}

func (r *Runner) tick() {
	r.dirty = false
	transitions, err := r.engine.Tick()
	seq := r.engine.Seq()
	for _, t := range transitions {
		r.rows = append(r.rows, Row{Tick: seq, Event: t.Kind.String(), Menu: r.name(t.Menu)})
	}
	if err != nil {
		logging.Error(err)
		r.errors++
		r.rows = append(r.rows, Row{Tick: seq, Event: "error", Detail: strings.ReplaceAll(err.Error(), "\n", "; ")})
	}
}

func (r *Runner) name(h menu.Handle) string {
	if name, ok := r.names[h]; ok {
		return name
	}
	return r.world.Name(h)
}

func (r *Runner) report() Report {
	rep := Report{
		Rows:   append([]Row(nil), r.rows...),
		Errors: r.errors,
		Cursor: r.primary.Cursor(),
	}
	for _, h := range r.engine.Stack().Snapshot() {
		rep.Stack = append(rep.Stack, r.name(h))
	}
	if top, ok := r.engine.CurrentTop(); ok {
		rep.Top = r.name(top)
	}
	if owner, ok := r.engine.CurrentInput(); ok {
		rep.Input = r.name(owner)
	}
	for _, h := range r.world.Handles() {
		if r.world.InputDisabled(h) {
			rep.Disabled = append(rep.Disabled, r.name(h))
		}
	}
	return rep
}
