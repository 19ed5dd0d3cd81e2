// Package state tracks the visible list for the active category: the source
// items, the search query and resulting filtered view, the cursor and
// viewport, and the multi-select overlay.
package state

import "wallpick/internal/catalog"

// List is the session's view state. All mutation happens on the UI loop.
type List struct {
	Full  []catalog.Item
	Items []catalog.Item

	Query      string
	Searchable bool
	Fuzzy      bool

	Cursor         int
	ViewportOffset int

	MultiSelect bool
	Selected    map[int]struct{}
}

// NewList builds list state over the given source items. Only searchable
// lists (the Wallpapers view) apply the query; other categories show their
// source verbatim.
func NewList(items []catalog.Item, searchable, fuzzy bool) *List {
	l := &List{
		Searchable: searchable,
		Fuzzy:      fuzzy,
		Selected:   make(map[int]struct{}),
	}
	l.SetSource(items, searchable)
	return l
}

// SetSource replaces the source items, recomputing the filtered view and
// clamping the cursor. Multi-select indices are cleared; they would point at
// different items in the rebuilt view.
func (l *List) SetSource(items []catalog.Item, searchable bool) {
	l.Full = items
	l.Searchable = searchable
	l.recompute()
}

// SetQuery replaces the search query and resets the selection to the top of
// the recomputed view.
func (l *List) SetQuery(query string) {
	l.Query = query
	l.Cursor = 0
	l.ViewportOffset = 0
	l.recompute()
}

// AppendQuery adds text to the query, resetting the selection.
func (l *List) AppendQuery(text string) {
	l.SetQuery(l.Query + text)
}

// BackspaceQuery drops the last query rune, resetting the selection. It
// reports whether anything was removed.
func (l *List) BackspaceQuery() bool {
	runes := []rune(l.Query)
	if len(runes) == 0 {
		return false
	}
	l.SetQuery(string(runes[:len(runes)-1]))
	return true
}

func (l *List) recompute() {
	if l.Searchable {
		l.Items = FilterItems(l.Full, l.Query, l.Fuzzy)
	} else {
		l.Items = append([]catalog.Item(nil), l.Full...)
	}
	l.Clamp()
	l.ClearSelection()
}

// Clamp restores the selection invariant: an empty view selects index 0
// ("nothing selected"); an out-of-range cursor clamps to the last item.
func (l *List) Clamp() {
	if len(l.Items) == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= len(l.Items) {
		l.Cursor = len(l.Items) - 1
	}
	if l.ViewportOffset > len(l.Items)-1 {
		l.ViewportOffset = 0
	}
}

// Empty reports whether the filtered view has no items.
func (l *List) Empty() bool {
	return len(l.Items) == 0
}

// CurrentItem returns the item under the cursor, when the view is non-empty.
func (l *List) CurrentItem() (catalog.Item, bool) {
	if len(l.Items) == 0 || l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return catalog.Item{}, false
	}
	return l.Items[l.Cursor], true
}

// ItemAt returns the item at the given view index.
func (l *List) ItemAt(idx int) (catalog.Item, bool) {
	if idx < 0 || idx >= len(l.Items) {
		return catalog.Item{}, false
	}
	return l.Items[idx], true
}
