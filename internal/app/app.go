// Package app bootstraps the picker session: the catalog scan, the preview
// cache, the directory watcher, and the Bubble Tea program itself.
package app

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"wallpick/internal/backend"
	"wallpick/internal/catalog"
	"wallpick/internal/preview"
	"wallpick/internal/ui"
)

// Run executes the picker and returns the chosen wallpaper paths. A nil
// slice means the session was dismissed without choosing.
func Run(cfg ui.Config) ([]string, error) {
	// An empty directory is not an error; the session opens on an empty
	// view and fills in when the watcher reports new files.
	items, err := catalog.Scan(cfg.WallpaperDir, cfg.Video)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", cfg.WallpaperDir, err)
	}

	cat := catalog.New(items, cfg.HistoryPath, cfg.FavoritesPath)
	cache := preview.NewCache(cfg.CacheCapacity)
	defer cache.Purge()

	watcher := backend.NewWatcher(cfg.WallpaperDir, cfg.Video)
	if watcher != nil {
		defer watcher.Stop()
	}

	model := ui.NewModel(cfg, cat, cache, watcher)
	defer model.Close()

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.MouseSupport {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	program := tea.NewProgram(model, opts...)
	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return nil, err
	}
	return model.SelectedPaths(), nil
}
