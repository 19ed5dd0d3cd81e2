package state

import (
	"strings"
	"testing"

	"wallpick/internal/catalog"
)

func items(names ...string) []catalog.Item {
	out := make([]catalog.Item, 0, len(names))
	for _, n := range names {
		out = append(out, catalog.Item{Path: "/w/" + n})
	}
	return out
}

func viewNames(l *List) string {
	names := make([]string, 0, len(l.Items))
	for _, it := range l.Items {
		names = append(names, it.Name())
	}
	return strings.Join(names, ",")
}

func TestSetQueryNarrowsViewAndResetsCursor(t *testing.T) {
	l := NewList(items("forest.png", "ocean.jpg", "fog.png", "desert.png"), true, false)
	l.Cursor = 3

	l.SetQuery("fo")
	if got := viewNames(l); got != "forest.png,fog.png" {
		t.Fatalf("expected order-preserving narrow, got %s", got)
	}
	if l.Cursor != 0 {
		t.Fatalf("expected cursor reset to 0, got %d", l.Cursor)
	}
}

func TestQueryEditsRecomputeFromFullList(t *testing.T) {
	l := NewList(items("forest.png", "ocean.jpg", "fog.png"), true, false)

	l.AppendQuery("fog")
	if got := viewNames(l); got != "fog.png" {
		t.Fatalf("expected fog.png only, got %s", got)
	}
	if !l.BackspaceQuery() {
		t.Fatalf("expected backspace to remove a rune")
	}
	if got := viewNames(l); got != "fog.png" {
		t.Fatalf("expected fo to still match fog, got %s", got)
	}
	l.BackspaceQuery()
	l.BackspaceQuery()
	if got := viewNames(l); got != "forest.png,ocean.jpg,fog.png" {
		t.Fatalf("expected full view restored, got %s", got)
	}
	if l.BackspaceQuery() {
		t.Fatalf("expected backspace on empty query to report false")
	}
}

func TestFilterIsCaseInsensitiveSubstring(t *testing.T) {
	got := FilterItems(items("Forest.PNG", "ocean.jpg"), "forest", false)
	if len(got) != 1 || got[0].Name() != "Forest.PNG" {
		t.Fatalf("expected case-insensitive match, got %v", got)
	}
}

func TestFuzzyFilterMatchesSubsequences(t *testing.T) {
	got := FilterItems(items("forest.png", "ocean.jpg"), "fst", true)
	if len(got) != 1 || got[0].Name() != "forest.png" {
		t.Fatalf("expected fuzzy subsequence match, got %v", got)
	}
}

func TestMoveByWrapsBothEnds(t *testing.T) {
	l := NewList(items("a.png", "b.png", "c.png"), false, false)

	l.MoveBy(-1)
	if l.Cursor != 2 {
		t.Fatalf("expected wrap to last, got %d", l.Cursor)
	}
	l.MoveBy(1)
	if l.Cursor != 0 {
		t.Fatalf("expected wrap to first, got %d", l.Cursor)
	}
	l.MoveBy(5)
	if l.Cursor != 2 {
		t.Fatalf("expected modular stride, got %d", l.Cursor)
	}
}

func TestScrollClampsAtEnds(t *testing.T) {
	l := NewList(items("a.png", "b.png", "c.png"), false, false)

	if l.Scroll(-2) {
		t.Fatalf("expected no movement at top")
	}
	l.Scroll(10)
	if l.Cursor != 2 {
		t.Fatalf("expected clamp at last, got %d", l.Cursor)
	}
	if l.Scroll(1) {
		t.Fatalf("expected no movement at bottom")
	}
}

func TestCursorInvariantOnEmptyAndShrunkenViews(t *testing.T) {
	l := NewList(items("a.png", "b.png", "c.png"), true, false)
	l.Cursor = 2

	l.SetQuery("zzz")
	if !l.Empty() || l.Cursor != 0 {
		t.Fatalf("expected empty view with cursor 0, got %d items cursor %d", len(l.Items), l.Cursor)
	}
	if _, ok := l.CurrentItem(); ok {
		t.Fatalf("expected no current item for empty view")
	}
	l.MoveBy(1)
	if l.Cursor != 0 {
		t.Fatalf("expected navigation on empty view to stay at 0, got %d", l.Cursor)
	}

	l.SetQuery("")
	l.Cursor = 2
	l.SetSource(items("a.png"), true)
	if l.Cursor != 0 {
		t.Fatalf("expected cursor clamped to last item, got %d", l.Cursor)
	}
}

func TestMultiSelectSeedsAndGrowsWithNavigation(t *testing.T) {
	l := NewList(items("a.png", "b.png", "c.png"), false, false)
	l.Cursor = 1

	l.ToggleMultiSelect()
	if !l.MultiSelect || !l.IsSelected(1) {
		t.Fatalf("expected overlay on with cursor seeded")
	}

	l.MoveBy(1)
	l.MarkVisited()
	if !l.IsSelected(1) || !l.IsSelected(2) {
		t.Fatalf("expected navigation to grow the set")
	}

	got := l.SelectedItems()
	if len(got) != 2 || got[0].Name() != "b.png" || got[1].Name() != "c.png" {
		t.Fatalf("expected view-order selection, got %v", got)
	}

	l.ToggleMultiSelect()
	if l.MultiSelect || len(l.Selected) != 0 {
		t.Fatalf("expected overlay off and set cleared")
	}
}

func TestSelectionsClearWhenViewRebuilds(t *testing.T) {
	l := NewList(items("a.png", "b.png", "c.png"), true, false)
	l.ToggleMultiSelect()
	l.MoveBy(2)
	l.MarkVisited()

	// Indices into the old view would point at different items after a
	// rebuild, so the set is emptied rather than repointed.
	l.SetSource(items("b.png", "c.png"), true)
	if len(l.Selected) != 0 {
		t.Fatalf("expected selections cleared on source rebuild, got %v", l.Selected)
	}
	if !l.MultiSelect {
		t.Fatalf("expected overlay to stay active")
	}

	l.MarkVisited()
	l.SetQuery("c")
	if len(l.Selected) != 0 {
		t.Fatalf("expected selections cleared on query change, got %v", l.Selected)
	}
}

func TestEnsureCursorVisibleTracksViewport(t *testing.T) {
	l := NewList(items("a.png", "b.png", "c.png", "d.png", "e.png"), false, false)

	l.Cursor = 4
	l.EnsureCursorVisible(2)
	if l.ViewportOffset != 3 {
		t.Fatalf("expected offset 3, got %d", l.ViewportOffset)
	}

	l.Cursor = 0
	l.EnsureCursorVisible(2)
	if l.ViewportOffset != 0 {
		t.Fatalf("expected offset 0, got %d", l.ViewportOffset)
	}
}

func TestSetCursorIgnoresOutOfRange(t *testing.T) {
	l := NewList(items("a.png", "b.png"), false, false)

	if l.SetCursor(5) {
		t.Fatalf("expected out-of-range index ignored")
	}
	if !l.SetCursor(1) {
		t.Fatalf("expected in-range index applied")
	}
	if l.Cursor != 1 {
		t.Fatalf("expected cursor 1, got %d", l.Cursor)
	}
}
