package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"

	"wallpick/internal/catalog"
)

const (
	tabRows    = 2
	bottomRows = 2
	tabGap     = " │ "
)

type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

type tabRegion struct {
	category catalog.Category
	x        int
	w        int
}

// layout fixes where each surface lives for the current terminal size, so
// rendering and pointer hit-testing agree on geometry.
type layout struct {
	width   int
	height  int
	tabs    []tabRegion
	list    rect
	preview rect
}

func computeLayout(position string, width, height int, tabs []catalog.Category) layout {
	l := layout{width: width, height: height}

	x := 1
	for _, c := range tabs {
		w := runewidth.StringWidth(c.Title())
		l.tabs = append(l.tabs, tabRegion{category: c, x: x, w: w})
		x += w + runewidth.StringWidth(tabGap)
	}

	bodyY := tabRows
	bodyH := height - tabRows - bottomRows
	if bodyH < 0 {
		bodyH = 0
	}
	switch position {
	case "right":
		listW := width / 2
		l.list = rect{x: width - listW, y: bodyY, w: listW, h: bodyH}
		l.preview = rect{x: 0, y: bodyY, w: width - listW, h: bodyH}
	case "top":
		listH := bodyH / 2
		l.list = rect{x: 0, y: bodyY, w: width, h: listH}
		l.preview = rect{x: 0, y: bodyY + listH, w: width, h: bodyH - listH}
	case "bottom":
		listH := bodyH / 2
		l.list = rect{x: 0, y: bodyY + bodyH - listH, w: width, h: listH}
		l.preview = rect{x: 0, y: bodyY, w: width, h: bodyH - listH}
	default: // left
		listW := width / 2
		l.list = rect{x: 0, y: bodyY, w: listW, h: bodyH}
		l.preview = rect{x: listW, y: bodyY, w: width - listW, h: bodyH}
	}
	return l
}

func (m *Model) View() string {
	if m.width == 0 || m.height == 0 || m.quitting {
		return ""
	}
	m.list.EnsureCursorVisible(m.layout.list.h)

	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	if m.mode == ModeRenaming {
		b.WriteString(m.renderRenameDialog())
	} else {
		b.WriteString(m.renderBody())
	}
	b.WriteString("\n")
	b.WriteString(m.renderStatusLine())
	b.WriteString("\n")
	b.WriteString(m.renderPromptLine())
	return b.String()
}

func (m *Model) renderTabs() string {
	parts := make([]string, 0, len(m.tabs))
	for _, c := range m.tabs {
		title := c.Title()
		if c == m.active {
			parts = append(parts, m.styles.ActiveTab.Render(title))
		} else {
			parts = append(parts, m.styles.Tab.Render(title))
		}
	}
	return " " + strings.Join(parts, m.styles.Tab.Render(tabGap))
}

func (m *Model) renderBody() string {
	list := m.renderList()
	preview := m.renderPreviewPanel()
	switch m.cfg.ListPosition {
	case "right":
		return lipgloss.JoinHorizontal(lipgloss.Top, preview, list)
	case "top":
		return lipgloss.JoinVertical(lipgloss.Left, list, preview)
	case "bottom":
		return lipgloss.JoinVertical(lipgloss.Left, preview, list)
	default:
		return lipgloss.JoinHorizontal(lipgloss.Top, list, preview)
	}
}

func (m *Model) renderList() string {
	area := m.layout.list
	lines := make([]string, 0, area.h)
	for row := 0; row < area.h; row++ {
		idx := m.list.ViewportOffset + row
		it, ok := m.list.ItemAt(idx)
		if !ok {
			lines = append(lines, strings.Repeat(" ", area.w))
			continue
		}
		lines = append(lines, m.renderItemLine(idx, it, area.w))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderItemLine(idx int, it catalog.Item, width int) string {
	current := idx == m.list.Cursor

	indicator := "  "
	if current {
		indicator = "▌ "
	}

	mark := ""
	if m.list.MultiSelect {
		if m.list.IsSelected(idx) {
			mark = "[x] "
		} else {
			mark = "[ ] "
		}
	}

	star := ""
	if m.catalog.IsFavorite(it) {
		star = " ★"
	}

	fixed := runewidth.StringWidth(indicator) + runewidth.StringWidth(mark) + runewidth.StringWidth(star)
	nameW := width - fixed
	if nameW < 1 {
		nameW = 1
	}
	name := truncate.StringWithTail(it.Name(), uint(nameW), "…")

	itemStyle := m.styles.Item
	indicatorStyle := m.styles.ItemIndicator
	if current {
		itemStyle = m.styles.SelectedItem
		indicatorStyle = m.styles.SelectedItemIndicator
	}

	line := indicatorStyle.Render(indicator) + itemStyle.Render(mark+name)
	if star != "" {
		line += m.styles.FavoriteMark.Render(star)
	}
	pad := width - runewidth.StringWidth(indicator+mark+name+star)
	if pad > 0 {
		line += strings.Repeat(" ", pad)
	}
	return line
}

func (m *Model) renderPreviewPanel() string {
	area := m.layout.preview
	innerW := area.w - 2
	innerH := area.h - 2
	if innerW < 1 || innerH < 1 {
		return ""
	}

	var content string
	switch {
	case m.previewErr != "":
		content = m.styles.PreviewError.Render(truncate.StringWithTail(m.previewErr, uint(innerW), "…"))
	case m.displayed != nil:
		content = strings.Join(m.displayed.Lines(innerW, innerH), "\n")
	case m.list.Empty():
		content = m.styles.Info.Render("no items")
	default:
		content = m.styles.Info.Render("loading…")
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("238")).
		Width(innerW).
		Height(innerH)
	return box.Render(content)
}

func (m *Model) renderRenameDialog() string {
	h := m.height - tabRows - bottomRows
	lines := []string{
		m.styles.RenameTitle.Render(" Rename " + m.renameItem.Name()),
		"",
		" " + m.renameInput.View(),
	}
	if m.renameErr != "" {
		lines = append(lines, "", " "+m.styles.RenameError.Render(m.renameErr))
	}
	for len(lines) < h {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderStatusLine() string {
	if m.statusMsg != "" {
		return " " + m.styles.Error.Render(truncate.StringWithTail(m.statusMsg, uint(m.width-2), "…"))
	}
	pos := 0
	if !m.list.Empty() {
		pos = m.list.Cursor + 1
	}
	status := fmt.Sprintf(" %d/%d", pos, len(m.list.Items))
	if m.list.MultiSelect {
		status += fmt.Sprintf(" • selected %d", len(m.list.Selected))
	}
	return m.styles.Footer.Render(status)
}

func (m *Model) renderPromptLine() string {
	if m.active != catalog.Wallpapers {
		return ""
	}
	prompt := m.styles.SearchPrompt.Render(" / ")
	query := m.list.Query
	if m.mode == ModeSearching {
		query += "█"
	} else if query == "" {
		return m.styles.Footer.Render(" press / to search")
	}
	return prompt + m.styles.Search.Render(query)
}
