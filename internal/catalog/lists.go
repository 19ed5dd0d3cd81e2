package catalog

import (
	"os"
	"path/filepath"
	"strings"

	"wallpick/internal/logging"
)

// LoadList reads a list file: one absolute path per non-empty line, most
// recently affected first. A missing or unreadable file yields an empty list.
func LoadList(path string) []Item {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var items []Item
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		items = append(items, Item{Path: line})
	}
	return items
}

// SaveList overwrites the list file with the current in-memory order. Write
// failures are logged and otherwise ignored; list persistence is best effort.
func SaveList(path string, items []Item) {
	if path == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		logging.Error(err)
		return
	}
	var b strings.Builder
	for _, it := range items {
		b.WriteString(it.Path)
		b.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		logging.Error(err)
	}
}
