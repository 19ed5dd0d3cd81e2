// Package catalog owns the entry catalog behind the picker: the scanned
// wallpaper list, the persisted history and favorites lists, and the rename
// propagation that keeps all of them consistent.
package catalog

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// Item is a single selectable entry. Identity is the absolute path; the
// display name is derived from it. Items are immutable once created.
type Item struct {
	Path string
}

// Name returns the file name used for display and search matching.
func (i Item) Name() string {
	return filepath.Base(i.Path)
}

var imageExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
}

const videoExtension = ".mp4"

// Scan recursively enumerates dir and returns the regular files whose
// extension is an allowed image type (plus mp4 when video is set), sorted by
// case-insensitive file name. Unreadable entries below the root are skipped;
// an unreadable root is a fatal scan error.
func Scan(dir string, video bool) ([]Item, error) {
	var items []Item
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return err
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if _, ok := imageExtensions[ext]; !ok {
			if !video || ext != videoExtension {
				return nil
			}
		}
		abs, aerr := filepath.Abs(path)
		if aerr != nil {
			abs = path
		}
		items = append(items, Item{Path: abs})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}
	sort.SliceStable(items, func(a, b int) bool {
		return strings.ToLower(items[a].Name()) < strings.ToLower(items[b].Name())
	})
	return items, nil
}

// Catalog bundles the three category lists with their persistence locations.
// All mutation happens on the UI loop; Catalog is not safe for concurrent use.
type Catalog struct {
	Wallpapers []Item
	History    []Item
	Favorites  []Item

	historyPath   string
	favoritesPath string
}

// New builds a catalog from a scanned wallpaper list, loading history and
// favorites from their list files. Missing or unreadable list files degrade
// to empty lists.
func New(wallpapers []Item, historyPath, favoritesPath string) *Catalog {
	return &Catalog{
		Wallpapers:    wallpapers,
		History:       LoadList(historyPath),
		Favorites:     LoadList(favoritesPath),
		historyPath:   historyPath,
		favoritesPath: favoritesPath,
	}
}

// ListFor returns the source list backing the given category.
func (c *Catalog) ListFor(cat Category) []Item {
	switch cat {
	case History:
		return c.History
	case Favorites:
		return c.Favorites
	default:
		return c.Wallpapers
	}
}

// IsFavorite reports favorite membership for the item's identity.
func (c *Catalog) IsFavorite(it Item) bool {
	for _, f := range c.Favorites {
		if f.Path == it.Path {
			return true
		}
	}
	return false
}

// ToggleFavorite removes the item when present, otherwise inserts it at the
// front, then persists the favorites list best-effort. It reports the new
// membership state.
func (c *Catalog) ToggleFavorite(it Item) bool {
	if c.IsFavorite(it) {
		c.Favorites = removeItem(c.Favorites, it.Path)
		SaveList(c.favoritesPath, c.Favorites)
		return false
	}
	c.Favorites = append([]Item{it}, c.Favorites...)
	SaveList(c.favoritesPath, c.Favorites)
	return true
}

// PushHistory moves the item to the front of history, dropping any prior
// occurrence, and persists the list best-effort.
func (c *Catalog) PushHistory(it Item) {
	c.History = removeItem(c.History, it.Path)
	c.History = append([]Item{it}, c.History...)
	SaveList(c.historyPath, c.History)
}

func removeItem(items []Item, path string) []Item {
	out := items[:0]
	for _, it := range items {
		if it.Path != path {
			out = append(out, it)
		}
	}
	return out
}

func replaceItem(items []Item, oldPath, newPath string) bool {
	changed := false
	for i, it := range items {
		if it.Path == oldPath {
			items[i] = Item{Path: newPath}
			changed = true
		}
	}
	return changed
}
