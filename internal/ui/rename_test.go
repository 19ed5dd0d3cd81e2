package ui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestRenameDialogSeedsWithNameStem(t *testing.T) {
	h, _ := newTestHarness(t, Config{}, "sunset.png")
	m := h.Model()

	h.SendKeys("r")
	if m.mode != ModeRenaming {
		t.Fatalf("expected renaming mode")
	}
	if m.renameInput.Value() != "sunset" {
		t.Fatalf("expected stem seeded, got %q", m.renameInput.Value())
	}
}

func TestRenameCommitMovesFileAndPreview(t *testing.T) {
	h, cat := newTestHarness(t, Config{}, "sunset.png")
	m := h.Model()
	oldPath := cat.Wallpapers[0].Path

	h.SendKeys("r")
	h.SendKeys("-dawn")
	h.Send(key(tea.KeyEnter))

	if m.mode != ModeNormal {
		t.Fatalf("expected dialog closed after commit")
	}
	newPath := filepath.Join(filepath.Dir(oldPath), "sunset-dawn.png")
	if cat.Wallpapers[0].Path != newPath {
		t.Fatalf("expected catalog updated, got %s", cat.Wallpapers[0].Path)
	}
	if _, err := os.Stat(newPath); err != nil {
		t.Fatalf("expected file moved: %v", err)
	}
	if m.displayedPath != newPath {
		t.Fatalf("expected preview identity moved, got %s", m.displayedPath)
	}
	if m.cache.Contains(oldPath) || !m.cache.Contains(newPath) {
		t.Fatalf("expected cache entry moved to new identity")
	}
	if m.displayed == nil || m.displayed.Path() != newPath {
		t.Fatalf("expected displayed frame to carry new identity")
	}
}

func TestRenameToSameNameDismissesQuietly(t *testing.T) {
	h, cat := newTestHarness(t, Config{}, "sunset.png")
	m := h.Model()
	path := cat.Wallpapers[0].Path

	h.SendKeys("r")
	h.Send(key(tea.KeyEnter))

	if m.mode != ModeNormal {
		t.Fatalf("expected dialog dismissed")
	}
	if cat.Wallpapers[0].Path != path {
		t.Fatalf("expected path unchanged, got %s", cat.Wallpapers[0].Path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected file untouched: %v", err)
	}
}

func TestRenameValidationErrorKeepsDialogOpen(t *testing.T) {
	h, _ := newTestHarness(t, Config{}, "a.png", "b.png")
	m := h.Model()

	h.SendKeys("r")
	h.Send(key(tea.KeyBackspace))
	h.Send(key(tea.KeyEnter))

	if m.mode != ModeRenaming {
		t.Fatalf("expected dialog still open after invalid name")
	}
	if m.renameErr == "" {
		t.Fatalf("expected inline validation error")
	}

	h.SendKeys("x")
	if m.renameErr != "" {
		t.Fatalf("expected error cleared on edit, got %q", m.renameErr)
	}
}

func TestRenameCollisionReportsError(t *testing.T) {
	h, _ := newTestHarness(t, Config{}, "a.png", "b.png")
	m := h.Model()

	h.SendKeys("r")
	h.Send(key(tea.KeyBackspace))
	h.SendKeys("b")
	h.Send(key(tea.KeyEnter))

	if m.mode != ModeRenaming {
		t.Fatalf("expected dialog open after collision")
	}
	if m.renameErr == "" {
		t.Fatalf("expected collision error")
	}

	h.Send(key(tea.KeyEsc))
	if m.mode != ModeNormal {
		t.Fatalf("expected esc to cancel")
	}
}

func TestRenameKeysDoNotTriggerActions(t *testing.T) {
	h, cat := newTestHarness(t, Config{}, "sunset.png")
	m := h.Model()

	h.SendKeys("r")
	h.SendKeys("q")
	if m.quitting {
		t.Fatalf("expected q to type into the dialog, not quit")
	}
	if m.renameInput.Value() != "sunsetq" {
		t.Fatalf("expected typed rune appended, got %q", m.renameInput.Value())
	}
	h.SendKeys("f")
	if len(cat.Favorites) != 0 {
		t.Fatalf("expected favorite key captured by dialog")
	}
}
