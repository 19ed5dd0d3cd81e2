package catalog

import "strings"

// Category identifies one of the three item groupings shown as tabs.
type Category int

const (
	Wallpapers Category = iota
	History
	Favorites
)

// DefaultOrder is the tab order used when no tabs are configured.
var DefaultOrder = []Category{Wallpapers, History, Favorites}

// Title returns the display name used in the tab header.
func (c Category) Title() string {
	switch c {
	case Wallpapers:
		return "Wallpapers"
	case History:
		return "History"
	case Favorites:
		return "Favorites"
	default:
		return "Unknown"
	}
}

// FromName resolves a configured category name, accepting common aliases.
func FromName(s string) (Category, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wallpapers", "wallpaper", "wall":
		return Wallpapers, true
	case "history", "recent", "recents":
		return History, true
	case "favorites", "favourites", "favorite", "favourite", "favs":
		return Favorites, true
	default:
		return 0, false
	}
}

// Next returns the category after current within the active set, cyclically.
// When current is not in the set the first active category is returned.
func Next(active []Category, current Category) Category {
	if len(active) == 0 {
		return current
	}
	for i, c := range active {
		if c == current {
			return active[(i+1)%len(active)]
		}
	}
	return active[0]
}

// Prev returns the category before current within the active set, cyclically.
func Prev(active []Category, current Category) Category {
	if len(active) == 0 {
		return current
	}
	for i, c := range active {
		if c == current {
			if i == 0 {
				return active[len(active)-1]
			}
			return active[i-1]
		}
	}
	return active[0]
}
