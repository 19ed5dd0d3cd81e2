package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"wallpick/internal/catalog"
)

func TestLoadArgsDefaults(t *testing.T) {
	home := t.TempDir()
	cfg, err := LoadArgs(nil, []string{"HOME=" + home})
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.App.WallpaperDir != filepath.Join(home, "Pictures", "Wallpapers") {
		t.Fatalf("unexpected default dir: %s", cfg.App.WallpaperDir)
	}
	wantState := filepath.Join(home, ".config", "wallpick")
	if cfg.App.HistoryPath != filepath.Join(wantState, "history.txt") {
		t.Fatalf("unexpected history path: %s", cfg.App.HistoryPath)
	}
	if cfg.App.FavoritesPath != filepath.Join(wantState, "favorites.txt") {
		t.Fatalf("unexpected favorites path: %s", cfg.App.FavoritesPath)
	}
	if cfg.App.Keybindings.Search != "/" || cfg.App.Keybindings.Quit != "q" {
		t.Fatalf("unexpected default keybindings: %+v", cfg.App.Keybindings)
	}
	if cfg.App.CacheCapacity != 50 {
		t.Fatalf("unexpected default cache capacity: %d", cfg.App.CacheCapacity)
	}
	if len(cfg.App.Tabs) != 3 {
		t.Fatalf("expected default tab triple, got %d", len(cfg.App.Tabs))
	}
	if cfg.Apply.Print || cfg.Apply.Pywal || cfg.Apply.Hellwal {
		t.Fatalf("expected apply flags off by default: %+v", cfg.Apply)
	}
}

func TestFlagsOverrideEnvironmentAndFile(t *testing.T) {
	home := t.TempDir()
	configDir := filepath.Join(home, ".config", "wallpick")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	content := "wallpaper_dir = \"/from/file\"\npywal = true\n"
	if err := os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	env := []string{"HOME=" + home, "WALLPICK_WALLPAPER_DIR=/from/env"}

	cfg, err := LoadArgs(nil, env)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.WallpaperDir != "/from/env" {
		t.Fatalf("expected env to beat file, got %s", cfg.App.WallpaperDir)
	}
	if !cfg.Apply.Pywal {
		t.Fatalf("expected pywal from file")
	}

	cfg, err = LoadArgs([]string{"-path", "/from/flag", "-pywal=false"}, env)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.WallpaperDir != "/from/flag" {
		t.Fatalf("expected flag to beat env, got %s", cfg.App.WallpaperDir)
	}
	if cfg.Apply.Pywal {
		t.Fatalf("expected flag to disable pywal")
	}
}

func TestFileConfigParsesKeybindingsAndTabs(t *testing.T) {
	home := t.TempDir()
	configDir := filepath.Join(home, ".config", "wallpick")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	content := `
vim_motion = true
enable_mouse_support = true
fuzzy_search = true
list_position = "Right"
preview_cache_capacity = 8

[keybindings]
favorite = "b"

[[tabs]]
name = "wallpapers"
enabled = true

[[tabs]]
name = "favorites"
enabled = true

[[tabs]]
name = "history"
enabled = false
`
	if err := os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadArgs(nil, []string{"HOME=" + home})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.App.VimMotion || !cfg.App.MouseSupport || !cfg.App.FuzzySearch {
		t.Fatalf("expected booleans from file: %+v", cfg.App)
	}
	if cfg.App.ListPosition != "right" {
		t.Fatalf("expected normalized list position, got %q", cfg.App.ListPosition)
	}
	if cfg.App.CacheCapacity != 8 {
		t.Fatalf("expected cache capacity 8, got %d", cfg.App.CacheCapacity)
	}
	if cfg.App.Keybindings.Favorite != "b" || cfg.App.Keybindings.Search != "/" {
		t.Fatalf("expected partial keybinding override: %+v", cfg.App.Keybindings)
	}

	active := cfg.App.ActiveCategories()
	if len(active) != 2 || active[0] != catalog.Wallpapers || active[1] != catalog.Favorites {
		t.Fatalf("expected configured tab order without history, got %v", active)
	}
}

func TestLoadArgsRejectsUnknownTabName(t *testing.T) {
	home := t.TempDir()
	configDir := filepath.Join(home, ".config", "wallpick")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	content := "[[tabs]]\nname = \"bogus\"\nenabled = true\n"
	if err := os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := LoadArgs(nil, []string{"HOME=" + home}); err == nil || !strings.Contains(err.Error(), "bogus") {
		t.Fatalf("expected unknown tab error, got %v", err)
	}
}

func TestValidateChecksDirAndKeybindings(t *testing.T) {
	dir := t.TempDir()
	cfg, err := LoadArgs([]string{"-path", dir}, []string{"HOME=" + t.TempDir()})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}

	cfg.App.WallpaperDir = filepath.Join(dir, "missing")
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected missing directory to fail")
	}

	cfg.App.WallpaperDir = dir
	cfg.App.Keybindings.Favorite = "q"
	if err := Validate(cfg); err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Fatalf("expected duplicate keybinding error, got %v", err)
	}

	cfg.App.Keybindings.Favorite = "ff"
	if err := Validate(cfg); err == nil || !strings.Contains(err.Error(), "single") {
		t.Fatalf("expected single-character error, got %v", err)
	}

	cfg.App.Keybindings.Favorite = "f"
	cfg.App.ListPosition = "middle"
	if err := Validate(cfg); err == nil || !strings.Contains(err.Error(), "list_position") {
		t.Fatalf("expected list_position error, got %v", err)
	}
}

func TestEnvTraceAndLogFile(t *testing.T) {
	env := []string{"HOME=" + t.TempDir(), "WALLPICK_TRACE=1", "WALLPICK_LOG_FILE=/tmp/wp.log"}
	cfg, err := LoadArgs(nil, env)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.Logging.Trace {
		t.Fatalf("expected trace enabled from environment")
	}
	if cfg.Logging.FilePath != "/tmp/wp.log" {
		t.Fatalf("unexpected log file: %s", cfg.Logging.FilePath)
	}
}
