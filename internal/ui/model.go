package ui

import (
	"reflect"
	"strings"
	"time"

	"github.com/atomicstack/menustack/internal/backend"
	"github.com/atomicstack/menustack/internal/data/dispatcher"
	"github.com/atomicstack/menustack/internal/theme"
	uistate "github.com/atomicstack/menustack/internal/ui/state"
	"github.com/atomicstack/menustack/pkg/engine"
	"github.com/atomicstack/menustack/pkg/menu"
	"github.com/atomicstack/menustack/pkg/window"
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
)

const transitionLogSize = 8

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// PauseAction opens the single pause menu when pressed.
type PauseAction struct{}

// Scene bundles the world the UI renders with the engine reconciling it.
type Scene struct {
	World   *menu.World
	Engine  *engine.Engine
	Primary *window.Primary
}

type logEntry struct {
	seq  uint64
	kind engine.Kind
	name string
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

// Model implements the Bubble Tea model for the menu stack inspector.
type Model struct {
	world      *menu.World
	engine     *engine.Engine
	primary    *window.Primary
	dispatcher *dispatcher.Dispatcher
	backend    *backend.Watcher

	picker            *uistate.Picker
	filterCursor      cursor.Model
	filterCursorDirty bool

	names         map[menu.Handle]string
	log           []logEntry
	cursorVersion uint64
	mouseCaptured bool

	errMsg      string
	infoMsg     string
	infoExpire  time.Time
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI over scene. A nil watcher leaves ticking to the
// caller, which is how tests drive the model.
func NewModel(scene Scene, watcher *backend.Watcher, width, height int, showFooter bool) *Model {
	primary := scene.Primary
	if primary == nil {
		primary = window.NewPrimary()
	}
	m := &Model{
		world:         scene.World,
		engine:        scene.Engine,
		primary:       primary,
		dispatcher:    dispatcher.New(scene.Engine),
		backend:       watcher,
		picker:        uistate.NewPicker(nil),
		names:         make(map[menu.Handle]string),
		cursorVersion: primary.Version(),
		showFooter:    showFooter,
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = *styles.Cursor
	}
	if styles.Filter != nil {
		c.TextStyle = *styles.Filter
	}
	c.SetChar(" ")
	m.filterCursor = c
	m.refreshEntries()
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.backend != nil {
		cmds = append(cmds, waitForBackendEvent(m.backend))
	}
	if cmd := m.filterCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	evt := msg.(backendEventMsg)
	cmd := m.runTick(evt.event)
	if m.backend == nil {
		return cmd
	}
	return tea.Batch(cmd, waitForBackendEvent(m.backend))
}

func (m *Model) handleBackendDoneMsg(tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}

// runTick runs one engine pass and folds its result into the view state.
func (m *Model) runTick(evt backend.Event) tea.Cmd {
	res := m.dispatcher.Handle(evt)
	for _, t := range res.Transitions {
		m.appendLog(logEntry{seq: res.Seq, kind: t.Kind, name: m.nameOf(t.Menu)})
	}
	if res.Err != nil {
		m.errMsg = strings.ReplaceAll(res.Err.Error(), "\n", "; ")
	} else if len(res.Transitions) > 0 {
		m.errMsg = ""
	}
	m.refreshEntries()
	return m.cursorCmd()
}

func (m *Model) appendLog(entry logEntry) {
	m.log = append(m.log, entry)
	if over := len(m.log) - transitionLogSize; over > 0 {
		m.log = append(m.log[:0], m.log[over:]...)
	}
}

// cursorCmd mirrors the primary window cursor onto the terminal.
func (m *Model) cursorCmd() tea.Cmd {
	v := m.primary.Version()
	if v == m.cursorVersion {
		return nil
	}
	m.cursorVersion = v
	c := m.primary.Cursor()
	cmds := make([]tea.Cmd, 0, 2)
	m.mouseCaptured = c.Grab != window.GrabNone
	if m.mouseCaptured {
		cmds = append(cmds, tea.EnableMouseCellMotion)
	} else {
		cmds = append(cmds, tea.DisableMouse)
	}
	if c.Visible {
		cmds = append(cmds, tea.ShowCursor)
	} else {
		cmds = append(cmds, tea.HideCursor)
	}
	return tea.Batch(cmds...)
}

// requestTick asks the watcher for an early pass after a local mutation.
func (m *Model) requestTick() {
	if m.backend != nil {
		m.backend.Nudge()
	}
}

func (m *Model) refreshEntries() {
	handles := m.world.Handles()
	entries := make([]uistate.Entry, 0, len(handles))
	for _, h := range handles {
		rec, ok := m.world.Get(h)
		if !ok {
			continue
		}
		m.names[h] = rec.Name
		detail := rec.Markers.String()
		if rec.Kind != "" {
			detail = rec.Kind + " · " + detail
		}
		entries = append(entries, uistate.Entry{Handle: h, Label: rec.Name, Detail: detail})
	}
	m.picker.SetEntries(entries)
	m.syncViewport()
}

func (m *Model) nameOf(h menu.Handle) string {
	if name, ok := m.names[h]; ok {
		return name
	}
	return m.world.Name(h)
}

func (m *Model) syncViewport() {
	m.picker.EnsureCursorVisible(m.maxVisibleItems())
}
