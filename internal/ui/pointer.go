package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// handleMouseMsg routes pointer input by region: clicks on the tab row
// switch categories, clicks on list rows move the cursor there, and wheel
// movement scrolls the list with clamping.
func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	if !m.cfg.MouseSupport || m.mode == ModeRenaming {
		return nil
	}
	ev := msg.(tea.MouseMsg)

	switch ev.Button {
	case tea.MouseButtonWheelUp:
		if ev.Action == tea.MouseActionPress {
			return m.scrollBy(-1)
		}
		return nil
	case tea.MouseButtonWheelDown:
		if ev.Action == tea.MouseActionPress {
			return m.scrollBy(1)
		}
		return nil
	}

	if ev.Action != tea.MouseActionPress || ev.Button != tea.MouseButtonLeft {
		return nil
	}
	if ev.Y < tabRows {
		return m.clickTabs(ev.X)
	}
	if m.layout.list.contains(ev.X, ev.Y) {
		return m.clickList(ev.Y)
	}
	return nil
}

func (m *Model) clickTabs(x int) tea.Cmd {
	for _, region := range m.layout.tabs {
		if x >= region.x && x < region.x+region.w {
			return m.switchTo(region.category)
		}
	}
	return nil
}

func (m *Model) clickList(y int) tea.Cmd {
	idx := m.list.ViewportOffset + (y - m.layout.list.y)
	if !m.list.SetCursor(idx) {
		return nil
	}
	m.list.MarkVisited()
	return m.ensurePreview()
}
