package ui

import "wallpick/internal/catalog"

// Keybindings holds the configurable action keys. Navigation, paging, and
// tab keys are fixed; vim-motion aliases are enabled separately.
type Keybindings struct {
	Search      string
	Favorite    string
	MultiSelect string
	Rename      string
	Quit        string
}

// DefaultKeybindings returns the stock key profile.
func DefaultKeybindings() Keybindings {
	return Keybindings{
		Search:      "/",
		Favorite:    "f",
		MultiSelect: "m",
		Rename:      "r",
		Quit:        "q",
	}
}

// Tab pairs a category with its configured enabled flag. Order in the slice
// is the configured tab order.
type Tab struct {
	Category catalog.Category
	Enabled  bool
}

// DefaultTabs enables the full default triple in default order.
func DefaultTabs() []Tab {
	tabs := make([]Tab, 0, len(catalog.DefaultOrder))
	for _, c := range catalog.DefaultOrder {
		tabs = append(tabs, Tab{Category: c, Enabled: true})
	}
	return tabs
}

// Config describes user-provided application options consumed by the session.
type Config struct {
	WallpaperDir  string
	HistoryPath   string
	FavoritesPath string
	Video         bool
	VimMotion     bool
	MouseSupport  bool
	FuzzySearch   bool
	ListPosition  string
	CacheCapacity int
	Keybindings   Keybindings
	Tabs          []Tab
}

// ActiveCategories returns the enabled categories in configured order,
// falling back to the full default triple when none are enabled.
func (c Config) ActiveCategories() []catalog.Category {
	var active []catalog.Category
	for _, t := range c.Tabs {
		if t.Enabled {
			active = append(active, t.Category)
		}
	}
	if len(active) == 0 {
		return append([]catalog.Category(nil), catalog.DefaultOrder...)
	}
	return active
}
