package ui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"wallpick/internal/catalog"
	"wallpick/internal/logging/events"
)

// startRename opens the rename dialog for the cursor item, seeded with the
// current name stem so small edits stay small.
func (m *Model) startRename() tea.Cmd {
	it, ok := m.list.CurrentItem()
	if !ok {
		return nil
	}
	input := textinput.New()
	input.CharLimit = 128
	input.SetValue(nameStem(it))
	input.CursorEnd()
	input.Focus()
	m.renameInput = input
	m.renameItem = it
	m.renameErr = ""
	m.mode = ModeRenaming
	events.UI.Mode(m.mode.String())
	return textinput.Blink
}

func (m *Model) closeRename() {
	m.mode = ModeNormal
	m.renameErr = ""
	m.renameInput.Blur()
	events.UI.Mode(m.mode.String())
}

// updateRenameForm feeds messages to the rename dialog while it is open.
// The second result reports whether the dialog consumed the message.
func (m *Model) updateRenameForm(msg tea.Msg) (tea.Cmd, bool) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		// Frame loads and watcher events keep flowing underneath the
		// dialog; everything else waits.
		switch msg.(type) {
		case frameLoadedMsg, watcherEventMsg, tea.WindowSizeMsg:
			return nil, false
		}
		var cmd tea.Cmd
		m.renameInput, cmd = m.renameInput.Update(msg)
		return cmd, true
	}
	switch key.Type {
	case tea.KeyCtrlC:
		return m.quit(), true
	case tea.KeyEsc:
		m.closeRename()
		return nil, true
	case tea.KeyEnter:
		return m.commitRename(), true
	}
	m.renameErr = ""
	var cmd tea.Cmd
	m.renameInput, cmd = m.renameInput.Update(msg)
	return cmd, true
}

// commitRename applies the typed name. Validation failures keep the dialog
// open with an inline error; success propagates the new identity to the
// cache and the displayed preview before closing.
func (m *Model) commitRename() tea.Cmd {
	oldPath := m.renameItem.Path
	renamed, err := m.catalog.Rename(m.renameItem, m.renameInput.Value())
	if errors.Is(err, catalog.ErrRenameNoop) {
		m.closeRename()
		return nil
	}
	if err != nil {
		m.renameErr = err.Error()
		return nil
	}
	events.Catalog.Renamed(oldPath, renamed.Path)
	moved := m.cache.Rename(oldPath, renamed.Path)
	if m.displayedPath == oldPath {
		m.displayedPath = renamed.Path
	}
	m.list.SetSource(m.catalog.ListFor(m.active), m.active == catalog.Wallpapers)
	m.closeRename()
	if !moved {
		return m.ensurePreview()
	}
	return nil
}

// nameStem is the filename without its extension, the part worth editing.
func nameStem(it catalog.Item) string {
	name := it.Name()
	if ext := strings.LastIndexByte(name, '.'); ext > 0 {
		return name[:ext]
	}
	return name
}
