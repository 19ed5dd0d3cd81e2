package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"wallpick/internal/catalog"
)

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func wheel(button tea.MouseButton) tea.MouseMsg {
	return tea.MouseMsg{X: 2, Y: 5, Action: tea.MouseActionPress, Button: button}
}

func TestPointerIgnoredWhenMouseSupportOff(t *testing.T) {
	h, _ := newTestHarness(t, Config{}, "a.png", "b.png")
	m := h.Model()

	h.Send(wheel(tea.MouseButtonWheelDown))
	if m.list.Cursor != 0 {
		t.Fatalf("expected pointer input ignored, cursor %d", m.list.Cursor)
	}
}

func TestWheelScrollClampsAtEnds(t *testing.T) {
	h, _ := newTestHarness(t, Config{MouseSupport: true}, "a.png", "b.png", "c.png")
	m := h.Model()

	h.Send(wheel(tea.MouseButtonWheelUp))
	if m.list.Cursor != 0 {
		t.Fatalf("expected clamp at top, got %d", m.list.Cursor)
	}

	for i := 0; i < 5; i++ {
		h.Send(wheel(tea.MouseButtonWheelDown))
	}
	if m.list.Cursor != 2 {
		t.Fatalf("expected clamp at bottom, got %d", m.list.Cursor)
	}
}

func TestClickOnListRowMovesCursor(t *testing.T) {
	h, _ := newTestHarness(t, Config{MouseSupport: true}, "a.png", "b.png", "c.png")
	m := h.Model()

	row := m.layout.list.y + 2
	h.Send(click(m.layout.list.x+1, row))
	if m.list.Cursor != 2 {
		t.Fatalf("expected cursor on clicked row, got %d", m.list.Cursor)
	}

	h.Send(click(m.layout.list.x+1, m.layout.list.y+10))
	if m.list.Cursor != 2 {
		t.Fatalf("expected click past last item ignored, got %d", m.list.Cursor)
	}
}

func TestClickOnTabSwitchesCategory(t *testing.T) {
	h, _ := newTestHarness(t, Config{MouseSupport: true}, "a.png")
	m := h.Model()

	history := m.layout.tabs[1]
	h.Send(click(history.x+1, 0))
	if m.active != catalog.History {
		t.Fatalf("expected History tab after click, got %s", m.active.Title())
	}

	h.Send(click(m.layout.width-1, 0))
	if m.active != catalog.History {
		t.Fatalf("expected click between tabs ignored, got %s", m.active.Title())
	}
}

func TestPointerIgnoredWhileRenaming(t *testing.T) {
	h, _ := newTestHarness(t, Config{MouseSupport: true}, "a.png", "b.png")
	m := h.Model()

	h.SendKeys("r")
	h.Send(wheel(tea.MouseButtonWheelDown))
	if m.list.Cursor != 0 {
		t.Fatalf("expected pointer ignored during rename, got %d", m.list.Cursor)
	}
}
