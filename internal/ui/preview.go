package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"wallpick/internal/logging/events"
	"wallpick/internal/preview"
)

type frameLoadedMsg struct {
	result preview.Result
}

// ensurePreview points the preview panel at the cursor item. Cache hits
// display immediately; misses keep the previous frame on screen and kick off
// a decode unless one is already in flight for the same identity.
func (m *Model) ensurePreview() tea.Cmd {
	it, ok := m.list.CurrentItem()
	if !ok {
		m.setDisplayed(nil, "")
		m.previewErr = ""
		return nil
	}
	if it.Path == m.displayedPath && m.displayed != nil {
		return nil
	}
	m.displayedPath = it.Path
	m.previewErr = ""
	if f, hit := m.cache.Get(it.Path); hit {
		m.setDisplayed(f, it.Path)
		return nil
	}
	return m.requestDecode(it.Path)
}

// requestDecode schedules a decode for the given identity, coalescing with
// any request already in flight.
func (m *Model) requestDecode(path string) tea.Cmd {
	if _, busy := m.inflight[path]; busy {
		return nil
	}
	if m.cache.Contains(path) {
		return nil
	}
	m.inflight[path] = struct{}{}
	return func() tea.Msg {
		f, err := preview.Decode(path)
		return frameLoadedMsg{result: preview.Result{Path: path, Frame: f, Err: err}}
	}
}

// handleFrameLoadedMsg consumes a decode completion. The frame is cached
// regardless of the current selection; it is only displayed when its
// identity still matches the panel.
func (m *Model) handleFrameLoadedMsg(msg tea.Msg) tea.Cmd {
	res := msg.(frameLoadedMsg).result
	delete(m.inflight, res.Path)
	if res.Err != nil {
		events.Cache.DecodeError(res.Path, res.Err)
		if res.Path == m.displayedPath {
			m.previewErr = "preview unavailable: " + res.Err.Error()
			m.setDisplayed(nil, res.Path)
		}
		return nil
	}
	m.cache.Add(res.Frame)
	if res.Path == m.displayedPath {
		if f, hit := m.cache.Get(res.Path); hit {
			m.setDisplayed(f, res.Path)
			m.previewErr = ""
		}
	}
	return nil
}

// setDisplayed swaps the on-screen frame, taking a display reference on the
// new frame before dropping the old one.
func (m *Model) setDisplayed(f *preview.Frame, path string) {
	if f != nil {
		f.Retain()
	}
	if m.displayed != nil {
		m.displayed.Release()
	}
	m.displayed = f
	m.displayedPath = path
}

// releaseDisplayed drops the display reference at session end.
func (m *Model) releaseDisplayed() {
	m.setDisplayed(nil, "")
}
