package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atomicstack/menustack/pkg/engine"
	"github.com/atomicstack/menustack/pkg/menu"
	"github.com/atomicstack/menustack/pkg/window"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const footerHint = "enter toggle · ^p push · ^x remove · ^d despawn · esc close · ^o pause · ^c quit"

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// View implements tea.Model.
func (m *Model) View() string {
	lines := make([]styledLine, 0, 24)
	lines = append(lines,
		styledLine{text: m.headerText(), style: styles.Header},
		styledLine{text: m.statusText(), style: styles.Status},
	)
	lines = append(lines, m.itemLines()...)
	lines = append(lines,
		styledLine{},
		styledLine{text: "stack: " + m.stackText(), style: styles.Info},
	)
	if len(m.log) > 0 {
		lines = append(lines, styledLine{text: "transitions", style: styles.LogTitle})
		for _, entry := range m.log {
			lines = append(lines, styledLine{
				text:  fmt.Sprintf("  #%d %s %s", entry.seq, entry.kind, entry.name),
				style: logStyle(entry.kind),
			})
		}
	}
	if m.errMsg != "" {
		lines = append(lines, styledLine{text: m.errMsg, style: styles.Error})
	} else if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{text: info, style: styles.Info})
	}
	lines = append(lines, styledLine{text: m.filterPrompt(), raw: true})
	if m.showFooter {
		lines = append(lines, styledLine{text: footerHint, style: styles.Footer})
	}
	lines = applyWidth(lines, m.width)
	lines = limitHeight(lines, m.height, m.width)
	return renderLines(lines)
}

func (m *Model) headerText() string {
	return fmt.Sprintf("menustack · tick %d · %d menus", m.engine.Seq(), len(m.picker.Full))
}

func (m *Model) statusText() string {
	top := "(none)"
	if h, ok := m.engine.CurrentTop(); ok {
		top = m.nameOf(h)
	}
	owner := "(none)"
	if h, ok := m.engine.CurrentInput(); ok {
		owner = m.nameOf(h)
	}
	return fmt.Sprintf("top: %s  input: %s  cursor: %s", top, owner, cursorText(m.primary.Cursor()))
}

func cursorText(c window.Cursor) string {
	visibility := "visible"
	if !c.Visible {
		visibility = "hidden"
	}
	return c.Grab.String() + "/" + visibility
}

func (m *Model) stackText() string {
	snapshot := m.engine.Stack().Snapshot()
	if len(snapshot) == 0 {
		return "(empty)"
	}
	names := make([]string, len(snapshot))
	for i, h := range snapshot {
		names[i] = m.nameOf(h)
	}
	return strings.Join(names, " > ")
}

func (m *Model) itemLines() []styledLine {
	items := m.picker.Items
	if len(items) == 0 {
		msg := "(no menus)"
		if m.picker.Filter != "" {
			msg = fmt.Sprintf("No matches for %q", m.picker.Filter)
		}
		return []styledLine{{text: msg, style: styles.Info}}
	}
	start := 0
	if maxItems := m.maxVisibleItems(); maxItems > 0 && len(items) > maxItems {
		start = min(max(m.picker.ViewportOffset, 0), len(items)-maxItems)
		items = items[start : start+maxItems]
	}
	top, _ := m.engine.CurrentTop()
	owner, _ := m.engine.CurrentInput()
	depth := stackDepths(m.engine.Stack().Snapshot())
	lines := make([]styledLine, 0, len(items))
	for i, entry := range items {
		badges := make([]string, 0, 3)
		if d, ok := depth[entry.Handle]; ok {
			badges = append(badges, fmt.Sprintf("[%d]", d))
		}
		if entry.Handle == top {
			badges = append(badges, "top")
		}
		if entry.Handle == owner {
			badges = append(badges, "input")
		}
		lines = append(lines, m.buildItemLine(entry.Label, entry.Detail, badges, start+i, m.world.Visible(entry.Handle)))
	}
	return lines
}

// stackDepths maps each stacked handle to its highest 1-based position.
func stackDepths(snapshot []menu.Handle) map[menu.Handle]int {
	depth := make(map[menu.Handle]int, len(snapshot))
	for i, h := range snapshot {
		depth[h] = i + 1
	}
	return depth
}

// buildItemLine constructs a single styledLine for a menu entry.
func (m *Model) buildItemLine(label, detail string, badges []string, idx int, visible bool) styledLine {
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	if !visible {
		lineStyle = styles.Hidden
	}
	if idx == m.picker.Cursor {
		indicatorStyle = styles.SelectedItemIndicator
		lineStyle = styles.SelectedItem
	}
	text := "▌ " + label
	if detail != "" {
		text += "  (" + detail + ")"
	}
	if len(badges) > 0 {
		text += "  " + strings.Join(badges, " ")
	}
	if m.width > 0 {
		if pad := m.width - len([]rune(text)); pad > 0 {
			text += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          text,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1,
	}
}

func logStyle(kind engine.Kind) *lipgloss.Style {
	switch kind {
	case engine.Activate:
		return styles.LogActivate
	case engine.Deactivate:
		return styles.LogDeactivate
	default:
		return styles.LogInput
	}
}

func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	used := 5 // header, status, blank, stack, filter prompt
	if len(m.log) > 0 {
		used += 1 + len(m.log)
	}
	if m.errMsg != "" || m.currentInfo() != "" {
		used++
	}
	if m.showFooter {
		used++
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.forceClearInfo()
	}
	return m.infoMsg
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		if line.raw {
			if lipgloss.Width(line.text) > width {
				line.text = truncate.StringWithTail(line.text, uint(width-1), "…")
			}
		} else {
			line.text = truncateText(line.text, width)
		}
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			out[i] = text
			continue
		}
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil && text != "" {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
