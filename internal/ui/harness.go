package ui

import (
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
)

// Harness drives the UI model programmatically for integration tests.
type Harness struct {
	model *Model
}

// NewHarness creates a harness for the provided model and runs its Init
// commands so preloads complete before the first assertion.
func NewHarness(model *Model) *Harness {
	h := &Harness{model: model}
	h.processCmd(model.Init())
	return h
}

// Send routes a message through the model and executes any returned
// commands synchronously.
func (h *Harness) Send(msg tea.Msg) {
	if h.model == nil {
		return
	}
	mdl, cmd := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
	h.processCmd(cmd)
}

// SendKeys types each rune as its own key press.
func (h *Harness) SendKeys(keys string) {
	for _, r := range keys {
		h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func (h *Harness) processCmd(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	msg := cmd()
	switch typed := msg.(type) {
	case nil:
		return
	case tea.QuitMsg:
		return
	case cursor.BlinkMsg:
		// Cursor blink ticks would re-arm forever in a synchronous loop.
		return
	case tea.BatchMsg:
		for _, sub := range typed {
			h.processCmd(sub)
		}
		return
	}
	mdl, next := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
	h.processCmd(next)
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
