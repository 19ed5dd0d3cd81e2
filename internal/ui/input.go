package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"wallpick/internal/catalog"
	"wallpick/internal/logging/events"
)

// keyAction is the resolved meaning of a key press. Resolution is pure so
// the keybinding profile can be tested without a running program.
type keyAction int

const (
	actNone keyAction = iota
	actQuit
	actChoose
	actMoveUp
	actMoveDown
	actPageUp
	actPageDown
	actNextTab
	actPrevTab
	actStartSearch
	actEndSearch
	actSearchAppend
	actSearchBackspace
	actToggleMultiSelect
	actToggleFavorite
	actStartRename
)

// resolveKey maps a key press to an action for the given mode. Search mode
// captures printable runes as query input, so configurable bindings only
// apply in normal mode. The text result carries the runes for
// actSearchAppend.
func resolveKey(msg tea.KeyMsg, mode Mode, active catalog.Category, keys Keybindings, vim bool) (keyAction, string) {
	if mode == ModeSearching {
		switch msg.Type {
		case tea.KeyEsc, tea.KeyEnter:
			return actEndSearch, ""
		case tea.KeyBackspace:
			return actSearchBackspace, ""
		case tea.KeyCtrlC:
			return actQuit, ""
		case tea.KeyUp:
			return actMoveUp, ""
		case tea.KeyDown:
			return actMoveDown, ""
		case tea.KeySpace:
			return actSearchAppend, " "
		case tea.KeyRunes:
			return actSearchAppend, string(msg.Runes)
		}
		return actNone, ""
	}

	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return actQuit, ""
	case tea.KeyEnter:
		return actChoose, ""
	case tea.KeyUp:
		return actMoveUp, ""
	case tea.KeyDown:
		return actMoveDown, ""
	case tea.KeyPgUp:
		return actPageUp, ""
	case tea.KeyPgDown:
		return actPageDown, ""
	case tea.KeyTab:
		return actNextTab, ""
	case tea.KeyShiftTab:
		return actPrevTab, ""
	}

	key := msg.String()
	switch key {
	case keys.Quit:
		return actQuit, ""
	case keys.Search:
		if active == catalog.Wallpapers {
			return actStartSearch, ""
		}
		return actNone, ""
	case keys.MultiSelect:
		return actToggleMultiSelect, ""
	case keys.Favorite:
		return actToggleFavorite, ""
	case keys.Rename:
		if active == catalog.Wallpapers {
			return actStartRename, ""
		}
		return actNone, ""
	}
	if vim {
		switch key {
		case "k":
			return actMoveUp, ""
		case "j":
			return actMoveDown, ""
		case "l":
			return actNextTab, ""
		case "h":
			return actPrevTab, ""
		}
	}
	return actNone, ""
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	key := msg.(tea.KeyMsg)
	action, text := resolveKey(key, m.mode, m.active, m.cfg.Keybindings, m.cfg.VimMotion)
	switch action {
	case actQuit:
		return m.quit()
	case actChoose:
		return m.choose()
	case actMoveUp:
		return m.moveCursor(-1)
	case actMoveDown:
		return m.moveCursor(1)
	case actPageUp:
		return m.moveCursor(-pageStride)
	case actPageDown:
		return m.moveCursor(pageStride)
	case actNextTab:
		return m.nextTab()
	case actPrevTab:
		return m.prevTab()
	case actStartSearch:
		m.mode = ModeSearching
		m.list.SetQuery("")
		events.Search.Cleared()
		events.UI.Mode(m.mode.String())
		return m.ensurePreview()
	case actEndSearch:
		m.mode = ModeNormal
		events.UI.Mode(m.mode.String())
	case actSearchAppend:
		if text != "" {
			m.list.AppendQuery(text)
			events.Search.Append(m.list.Query)
			return m.ensurePreview()
		}
	case actSearchBackspace:
		if m.list.BackspaceQuery() {
			if m.list.Query == "" {
				events.Search.Cleared()
			} else {
				events.Search.Backspace(m.list.Query)
			}
			return m.ensurePreview()
		}
	case actToggleMultiSelect:
		return m.toggleMultiSelect()
	case actToggleFavorite:
		return m.toggleFavorite()
	case actStartRename:
		return m.startRename()
	}
	return nil
}

// pageStride is how many rows PgUp/PgDown jump.
const pageStride = 5
