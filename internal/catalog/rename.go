package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrRenameNoop is returned when the typed name resolves to the item's
// current path; callers treat it as a successful dismissal.
var ErrRenameNoop = errors.New("name unchanged")

// ResolveRename turns the typed name into the target path for the item,
// inferring the original extension when the typed name omits one.
func ResolveRename(it Item, typed string) (string, error) {
	name := strings.TrimSpace(typed)
	if name == "" {
		return "", errors.New("name must not be empty")
	}
	if strings.ContainsRune(name, os.PathSeparator) {
		return "", errors.New("name must not contain path separators")
	}
	if filepath.Ext(name) == "" {
		name += filepath.Ext(it.Path)
	}
	return filepath.Join(filepath.Dir(it.Path), name), nil
}

// Rename validates the typed name, renames the underlying file, and replaces
// the old identity with the new one in every list that references it. Both
// list files are re-persisted so they never point at the stale path. The new
// item is returned so the caller can move cache entries and the displayed
// preview identity.
func (c *Catalog) Rename(it Item, typed string) (Item, error) {
	newPath, err := ResolveRename(it, typed)
	if err != nil {
		return Item{}, err
	}
	if newPath == it.Path {
		return it, ErrRenameNoop
	}
	if _, err := os.Lstat(newPath); err == nil {
		return Item{}, fmt.Errorf("%s already exists", filepath.Base(newPath))
	}
	if err := os.Rename(it.Path, newPath); err != nil {
		return Item{}, fmt.Errorf("rename: %w", err)
	}
	replaceItem(c.Wallpapers, it.Path, newPath)
	if replaceItem(c.History, it.Path, newPath) {
		SaveList(c.historyPath, c.History)
	}
	if replaceItem(c.Favorites, it.Path, newPath) {
		SaveList(c.favoritesPath, c.Favorites)
	}
	return Item{Path: newPath}, nil
}
