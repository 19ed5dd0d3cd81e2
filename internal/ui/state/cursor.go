package state

// MoveBy moves the cursor by delta, wrapping around both ends of the view.
// It reports whether the cursor changed.
func (l *List) MoveBy(delta int) bool {
	n := len(l.Items)
	if n == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = ((l.Cursor+delta)%n + n) % n
	return l.Cursor != old
}

// Scroll moves the cursor by delta, clamping at the ends of the view.
// Pointer wheel navigation intentionally stops at the boundaries instead of
// wrapping like keyboard navigation.
func (l *List) Scroll(delta int) bool {
	n := len(l.Items)
	if n == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor += delta
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= n {
		l.Cursor = n - 1
	}
	return l.Cursor != old
}

// SetCursor places the cursor on a specific view index. Out-of-range
// indices are ignored.
func (l *List) SetCursor(idx int) bool {
	if idx < 0 || idx >= len(l.Items) {
		return false
	}
	changed := l.Cursor != idx
	l.Cursor = idx
	return changed
}

// EnsureCursorVisible adjusts the viewport offset so the cursor stays within
// the visible window of maxVisible rows.
func (l *List) EnsureCursorVisible(maxVisible int) {
	if len(l.Items) == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	l.Clamp()
	if maxVisible <= 0 {
		l.ViewportOffset = 0
		return
	}
	maxOffset := len(l.Items) - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if l.ViewportOffset > maxOffset {
		l.ViewportOffset = maxOffset
	}
	if l.ViewportOffset < 0 {
		l.ViewportOffset = 0
	}
	if l.Cursor < l.ViewportOffset {
		l.ViewportOffset = l.Cursor
	}
	upper := l.ViewportOffset + maxVisible - 1
	if l.Cursor > upper {
		l.ViewportOffset = l.Cursor - maxVisible + 1
		if l.ViewportOffset < 0 {
			l.ViewportOffset = 0
		}
		if l.ViewportOffset > maxOffset {
			l.ViewportOffset = maxOffset
		}
	}
}
