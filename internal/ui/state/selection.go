package state

import (
	"sort"

	"wallpick/internal/catalog"
)

// ToggleMultiSelect flips the multi-select overlay. Turning it on seeds the
// set with the current selection; turning it off clears the set.
func (l *List) ToggleMultiSelect() {
	l.MultiSelect = !l.MultiSelect
	l.ClearSelection()
	if l.MultiSelect && len(l.Items) > 0 {
		l.Selected[l.Cursor] = struct{}{}
	}
}

// DisableMultiSelect turns the overlay off and clears the set. Used when
// switching categories.
func (l *List) DisableMultiSelect() {
	l.MultiSelect = false
	l.ClearSelection()
}

// MarkVisited adds the current cursor index to the selection set when the
// overlay is active. Navigation only ever grows the set.
func (l *List) MarkVisited() {
	if !l.MultiSelect || len(l.Items) == 0 {
		return
	}
	l.Selected[l.Cursor] = struct{}{}
}

// IsSelected reports membership of a view index in the multi-select set.
func (l *List) IsSelected(idx int) bool {
	_, ok := l.Selected[idx]
	return ok
}

// ClearSelection empties the multi-select set.
func (l *List) ClearSelection() {
	for idx := range l.Selected {
		delete(l.Selected, idx)
	}
}

// SelectedItems returns the items behind the multi-select set in view order.
func (l *List) SelectedItems() []catalog.Item {
	if len(l.Selected) == 0 {
		return nil
	}
	indices := make([]int, 0, len(l.Selected))
	for idx := range l.Selected {
		indices = append(indices, idx)
	}
	sort.Ints(indices)
	items := make([]catalog.Item, 0, len(indices))
	for _, idx := range indices {
		if idx >= 0 && idx < len(l.Items) {
			items = append(items, l.Items[idx])
		}
	}
	return items
}
