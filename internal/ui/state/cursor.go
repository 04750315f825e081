package state

// MoveCursor moves the cursor by delta, clamped to the visible entries.
func (p *Picker) MoveCursor(delta int) bool {
	if len(p.Items) == 0 {
		p.Cursor = 0
		return false
	}
	old := p.Cursor
	p.Cursor += delta
	if p.Cursor < 0 {
		p.Cursor = 0
	}
	if p.Cursor >= len(p.Items) {
		p.Cursor = len(p.Items) - 1
	}
	return p.Cursor != old
}

// MoveCursorHome moves the cursor to the first entry.
func (p *Picker) MoveCursorHome() bool {
	return p.MoveCursor(-len(p.Items))
}

// MoveCursorEnd moves the cursor to the last entry.
func (p *Picker) MoveCursorEnd() bool {
	return p.MoveCursor(len(p.Items))
}

// MoveCursorPageUp moves the cursor up by one page of maxVisible rows.
func (p *Picker) MoveCursorPageUp(maxVisible int) bool {
	return p.MoveCursor(-p.pageSize(maxVisible))
}

// MoveCursorPageDown moves the cursor down by one page of maxVisible rows.
func (p *Picker) MoveCursorPageDown(maxVisible int) bool {
	return p.MoveCursor(p.pageSize(maxVisible))
}

func (p *Picker) pageSize(maxVisible int) int {
	total := len(p.Items)
	if maxVisible <= 0 || maxVisible > total {
		return total
	}
	return maxVisible
}

// EnsureCursorVisible adjusts the viewport offset so the cursor stays visible.
func (p *Picker) EnsureCursorVisible(maxVisible int) {
	if len(p.Items) == 0 {
		p.Cursor = 0
		p.ViewportOffset = 0
		return
	}
	if p.Cursor < 0 {
		p.Cursor = 0
	}
	if p.Cursor >= len(p.Items) {
		p.Cursor = len(p.Items) - 1
	}
	if maxVisible <= 0 {
		p.ViewportOffset = 0
		return
	}
	maxOffset := max(len(p.Items)-maxVisible, 0)
	p.ViewportOffset = min(max(p.ViewportOffset, 0), maxOffset)
	if p.Cursor < p.ViewportOffset {
		p.ViewportOffset = p.Cursor
	}
	if p.Cursor > p.ViewportOffset+maxVisible-1 {
		p.ViewportOffset = min(p.Cursor-maxVisible+1, maxOffset)
	}
}
