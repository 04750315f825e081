package ui

import (
	"time"

	"github.com/atomicstack/menustack/internal/backend"
	tea "github.com/charmbracelet/bubbletea"
)

// Harness drives the UI model programmatically for tests. Commands returned
// by the model are handed back rather than executed, and ticks run only when
// Tick is called.
type Harness struct {
	model *Model
	seq   uint64
}

// NewHarness creates a harness for the provided model.
func NewHarness(model *Model) *Harness {
	return &Harness{model: model}
}

// Send routes a message through the model and returns its command.
func (h *Harness) Send(msg tea.Msg) tea.Cmd {
	if h.model == nil {
		return nil
	}
	mdl, cmd := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
	return cmd
}

// Key sends a key press by name, such as "enter" or "ctrl+p". Any other
// string is typed as runes.
func (h *Harness) Key(name string) tea.Cmd {
	return h.Send(keyMsg(name))
}

// Tick delivers one backend tick and returns the resulting command.
func (h *Harness) Tick() tea.Cmd {
	h.seq++
	return h.Send(backendEventMsg{event: backend.Event{Seq: h.seq, At: time.Now()}})
}

// View returns the current view string.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}

var namedKeys = map[string]tea.KeyType{
	"enter":     tea.KeyEnter,
	"esc":       tea.KeyEsc,
	"up":        tea.KeyUp,
	"down":      tea.KeyDown,
	"pgup":      tea.KeyPgUp,
	"pgdown":    tea.KeyPgDown,
	"home":      tea.KeyHome,
	"end":       tea.KeyEnd,
	"backspace": tea.KeyBackspace,
	"space":     tea.KeySpace,
	"ctrl+c":    tea.KeyCtrlC,
	"ctrl+d":    tea.KeyCtrlD,
	"ctrl+o":    tea.KeyCtrlO,
	"ctrl+p":    tea.KeyCtrlP,
	"ctrl+u":    tea.KeyCtrlU,
	"ctrl+w":    tea.KeyCtrlW,
	"ctrl+x":    tea.KeyCtrlX,
}

func keyMsg(name string) tea.KeyMsg {
	if t, ok := namedKeys[name]; ok {
		return tea.KeyMsg{Type: t}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
}
