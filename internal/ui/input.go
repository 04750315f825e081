package ui

import (
	"fmt"
	"unicode"

	"github.com/atomicstack/menustack/internal/logging/events"
	"github.com/atomicstack/menustack/pkg/engine"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if handled, cmd := m.handleTextInput(keyMsg); handled {
		return cmd
	}
	key := keyMsg.String()
	switch key {
	case "ctrl+c":
		events.UI.Key(key, "quit")
		return tea.Quit
	case "up", "ctrl+k":
		m.moveCursor(m.picker.MoveCursor(-1))
	case "down", "ctrl+j":
		m.moveCursor(m.picker.MoveCursor(1))
	case "pgup":
		m.moveCursor(m.picker.MoveCursorPageUp(m.maxVisibleItems()))
	case "pgdown":
		m.moveCursor(m.picker.MoveCursorPageDown(m.maxVisibleItems()))
	case "home":
		m.moveCursor(m.picker.MoveCursorHome())
	case "end":
		m.moveCursor(m.picker.MoveCursorEnd())
	case "enter":
		m.mutateSelected(key, "toggle")
	case "ctrl+p":
		m.mutateSelected(key, "push")
	case "ctrl+x":
		m.mutateSelected(key, "remove")
	case "ctrl+d":
		m.mutateSelected(key, "despawn")
	case "esc":
		m.handleEscapeKey()
	case "ctrl+o":
		events.UI.Key(key, "pause")
		owner, _ := m.engine.CurrentInput()
		m.engine.Raise(engine.Pressed[PauseAction]{Input: owner})
		m.requestTick()
	}
	return nil
}

func (m *Model) moveCursor(moved bool) {
	if !moved {
		return
	}
	events.UI.PickerCursor(m.picker.Cursor)
	m.syncViewport()
}

// mutateSelected applies a stack or world operation to the entry under the
// cursor. The result becomes visible on the next tick.
func (m *Model) mutateSelected(key, action string) {
	entry, ok := m.picker.Selected()
	if !ok {
		m.setInfo("no menu selected")
		return
	}
	events.UI.Key(key, action)
	switch action {
	case "toggle":
		m.engine.Stack().Toggle(entry.Handle)
	case "push":
		m.engine.Stack().Push(entry.Handle)
	case "remove":
		m.engine.Stack().Remove(entry.Handle)
	case "despawn":
		m.world.Despawn(entry.Handle)
		m.refreshEntries()
	}
	m.errMsg = ""
	m.setInfo(fmt.Sprintf("%s %s", action, entry.Label))
	m.requestTick()
}

// handleEscapeKey clears the filter first; otherwise the current input owner
// raises the close action.
func (m *Model) handleEscapeKey() {
	if m.picker.Filter != "" {
		m.clearFilter()
		return
	}
	owner, ok := m.engine.CurrentInput()
	if !ok {
		m.setInfo("no menu owns input")
		return
	}
	events.UI.Key("esc", "close")
	m.engine.Raise(engine.Pressed[engine.CloseMenuAction]{Input: owner})
	m.setInfo("close " + m.nameOf(owner))
	m.requestTick()
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok || !m.mouseCaptured {
		return nil
	}
	switch mouse.Button {
	case tea.MouseButtonWheelUp:
		m.moveCursor(m.picker.MoveCursor(-1))
	case tea.MouseButtonWheelDown:
		m.moveCursor(m.picker.MoveCursor(1))
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.syncViewport()
	return nil
}

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

func (m *Model) noteFilterCursorChange(before int) {
	if before != m.picker.FilterCursorPos() {
		m.filterCursorDirty = true
	}
}

func (m *Model) handleTextInput(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "ctrl+u":
		if m.picker.Filter == "" {
			return false, nil
		}
		m.clearFilter()
		return true, nil
	case "ctrl+w":
		before := m.picker.FilterCursorPos()
		if !m.picker.DeleteFilterWordBackward() {
			return false, nil
		}
		m.noteFilterCursorChange(before)
		events.Filter.Backspace(m.picker.Filter)
		m.syncViewport()
		return true, nil
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		return m.removeFilterRune(), nil
	case tea.KeySpace:
		return m.appendToFilter(" "), nil
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false, nil
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false, nil
			}
		}
		return m.appendToFilter(string(msg.Runes)), nil
	}
	return false, nil
}

func (m *Model) clearFilter() {
	before := m.picker.FilterCursorPos()
	m.picker.SetFilter("", 0)
	m.noteFilterCursorChange(before)
	m.forceClearInfo()
	events.Filter.Cleared()
	m.syncViewport()
}

func (m *Model) appendToFilter(text string) bool {
	before := m.picker.FilterCursorPos()
	if !m.picker.InsertFilterText(text) {
		return false
	}
	m.noteFilterCursorChange(before)
	m.forceClearInfo()
	events.Filter.Append(m.picker.Filter)
	m.syncViewport()
	return true
}

func (m *Model) removeFilterRune() bool {
	before := m.picker.FilterCursorPos()
	if !m.picker.DeleteFilterRuneBackward() {
		return false
	}
	m.noteFilterCursorChange(before)
	m.forceClearInfo()
	events.Filter.Backspace(m.picker.Filter)
	m.syncViewport()
	return true
}

func (m *Model) filterPrompt() string {
	render := func(style *lipgloss.Style, value string) string {
		if style == nil || value == "" {
			return value
		}
		return style.Render(value)
	}
	prompt := "» "
	if styles.FilterPrompt != nil {
		prompt = styles.FilterPrompt.Render(prompt)
	}
	text := m.picker.Filter
	if text == "" {
		placeholder := []rune("(type to filter)")
		return prompt + m.renderFilterCursor(string(placeholder[0])) + render(styles.FilterPlaceholder, string(placeholder[1:]))
	}
	runes := []rune(text)
	pos := m.picker.FilterCursorPos()
	caret := " "
	after := ""
	if pos < len(runes) {
		caret = string(runes[pos])
		after = render(styles.Filter, string(runes[pos+1:]))
	}
	return prompt + render(styles.Filter, string(runes[:pos])) + m.renderFilterCursor(caret) + after
}

func (m *Model) renderFilterCursor(char string) string {
	m.filterCursor.SetChar(char)
	base := m.filterCursor.TextStyle.Inline(true)
	if m.filterCursor.Blink {
		return base.Render(char)
	}
	if styles.Cursor != nil {
		return base.Inherit(styles.Cursor.Inline(true)).Blink(false).Render(char)
	}
	return base.Reverse(true).Render(char)
}
