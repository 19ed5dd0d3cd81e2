// Package config loads runtime configuration from CLI flags, environment
// variables, and the TOML config file, in that precedence order.
package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"wallpick/internal/catalog"
	"wallpick/internal/ui"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     ui.Config
	Apply   Apply
	Logging Logging
	Flags   map[string]string
	Args    []string
}

// Apply describes what happens with the chosen wallpaper after the session.
type Apply struct {
	Print   bool
	Pywal   bool
	Hellwal bool
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envConfigFile   = "WALLPICK_CONFIG"
	envWallpaperDir = "WALLPICK_WALLPAPER_DIR"
	envTrace        = "WALLPICK_TRACE"
	envLogFile      = "WALLPICK_LOG_FILE"
)

// fileConfig mirrors the TOML config file layout.
type fileConfig struct {
	WallpaperDir       string          `toml:"wallpaper_dir"`
	VimMotion          bool            `toml:"vim_motion"`
	EnableMouseSupport bool            `toml:"enable_mouse_support"`
	Video              bool            `toml:"video"`
	FuzzySearch        bool            `toml:"fuzzy_search"`
	ListPosition       string          `toml:"list_position"`
	PreviewCacheSize   int             `toml:"preview_cache_capacity"`
	Pywal              bool            `toml:"pywal"`
	Hellwal            bool            `toml:"hellwal"`
	Keybindings        fileKeybindings `toml:"keybindings"`
	Tabs               []fileTab       `toml:"tabs"`
}

type fileKeybindings struct {
	Search      string `toml:"search"`
	Favorite    string `toml:"favorite"`
	MultiSelect string `toml:"multi_select"`
	Rename      string `toml:"rename"`
	Quit        string `toml:"quit"`
}

type fileTab struct {
	Name    string `toml:"name"`
	Enabled bool   `toml:"enabled"`
}

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	configDir := defaultConfigDir(env)
	configFile := envOrDefault(env, envConfigFile, filepath.Join(configDir, "config.toml"))
	file, err := loadFile(configFile)
	if err != nil {
		return Config{}, err
	}

	defaultDir := file.WallpaperDir
	if defaultDir == "" {
		defaultDir = filepath.Join(homeDir(env), "Pictures", "Wallpapers")
	}

	fs := flag.NewFlagSet("wallpick", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	path := fs.String("path", envOrDefault(env, envWallpaperDir, defaultDir), "path to the wallpaper directory")
	video := fs.Bool("video", file.Video, "include mp4 files in the wallpaper list")
	print := fs.Bool("print", false, "only save and print the selection instead of applying it")
	pywal := fs.Bool("pywal", file.Pywal, "generate colors with pywal after selection")
	hellwal := fs.Bool("hellwal", file.Hellwal, "generate colors with hellwal after selection")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	keys := ui.DefaultKeybindings()
	applyKeyOverride(&keys.Search, file.Keybindings.Search)
	applyKeyOverride(&keys.Favorite, file.Keybindings.Favorite)
	applyKeyOverride(&keys.MultiSelect, file.Keybindings.MultiSelect)
	applyKeyOverride(&keys.Rename, file.Keybindings.Rename)
	applyKeyOverride(&keys.Quit, file.Keybindings.Quit)

	tabs := ui.DefaultTabs()
	if len(file.Tabs) > 0 {
		tabs = tabs[:0]
		for _, t := range file.Tabs {
			cat, ok := catalog.FromName(t.Name)
			if !ok {
				return Config{}, fmt.Errorf("unknown tab name %q in %s", t.Name, configFile)
			}
			tabs = append(tabs, ui.Tab{Category: cat, Enabled: t.Enabled})
		}
	}

	capacity := file.PreviewCacheSize
	if capacity <= 0 {
		capacity = 50
	}

	cfg := Config{
		App: ui.Config{
			WallpaperDir:  *path,
			HistoryPath:   filepath.Join(configDir, "history.txt"),
			FavoritesPath: filepath.Join(configDir, "favorites.txt"),
			Video:         *video,
			VimMotion:     file.VimMotion,
			MouseSupport:  file.EnableMouseSupport,
			FuzzySearch:   file.FuzzySearch,
			ListPosition:  strings.ToLower(file.ListPosition),
			CacheCapacity: capacity,
			Keybindings:   keys,
			Tabs:          tabs,
		},
		Apply: Apply{
			Print:   *print,
			Pywal:   *pywal,
			Hellwal: *hellwal,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"path":    *path,
			"video":   strconv.FormatBool(*video),
			"print":   strconv.FormatBool(*print),
			"pywal":   strconv.FormatBool(*pywal),
			"hellwal": strconv.FormatBool(*hellwal),
			"trace":   strconv.FormatBool(*trace),
			"logFile": *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	info, err := os.Stat(cfg.App.WallpaperDir)
	if err != nil {
		return fmt.Errorf("wallpaper directory %s: %w", cfg.App.WallpaperDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("wallpaper path is not a directory: %s", cfg.App.WallpaperDir)
	}
	keys := []string{
		cfg.App.Keybindings.Search,
		cfg.App.Keybindings.Favorite,
		cfg.App.Keybindings.MultiSelect,
		cfg.App.Keybindings.Rename,
		cfg.App.Keybindings.Quit,
	}
	seen := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		if len([]rune(k)) != 1 {
			return fmt.Errorf("keybindings must be single characters (got %q)", k)
		}
		if _, dup := seen[k]; dup {
			return fmt.Errorf("duplicate keybinding %q", k)
		}
		seen[k] = struct{}{}
	}
	switch cfg.App.ListPosition {
	case "", "left", "right", "top", "bottom":
	default:
		return fmt.Errorf("list_position must be left/right/top/bottom (got %q)", cfg.App.ListPosition)
	}
	return nil
}

func loadFile(path string) (fileConfig, error) {
	var file fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		// Missing config file is the common case; defaults apply.
		return file, nil
	}
	if err := toml.Unmarshal(data, &file); err != nil {
		return file, fmt.Errorf("parse %s: %w", path, err)
	}
	return file, nil
}

func applyKeyOverride(dst *string, value string) {
	if strings.TrimSpace(value) != "" {
		*dst = value
	}
}

func defaultConfigDir(env map[string]string) string {
	if xdg := env["XDG_CONFIG_HOME"]; xdg != "" {
		return filepath.Join(xdg, "wallpick")
	}
	return filepath.Join(homeDir(env), ".config", "wallpick")
}

func homeDir(env map[string]string) string {
	if home := env["HOME"]; home != "" {
		return home
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}
