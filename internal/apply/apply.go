// Package apply pushes a picked wallpaper out to the desktop: color scheme
// generation, the session's wallpaper setter, and a waybar reload.
package apply

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"wallpick/internal/logging"
)

// Options selects which color generators run alongside the setter.
type Options struct {
	Pywal      bool
	Hellwal    bool
	Transition string
}

// Wallpaper applies the image at path: optional color generation, then the
// setter for the current session type, then a waybar reload. Setter failure
// is an error; the color generators and the reload are best-effort.
func Wallpaper(path string, opts Options) error {
	generateColors(path, opts)

	var err error
	if onWayland() {
		transition := opts.Transition
		if transition == "" {
			transition = "fade"
		}
		err = run("swww", "img", path, "--transition-fps", "60", "--transition-type", transition)
	} else if _, lookErr := exec.LookPath("nitrogen"); lookErr == nil {
		err = runQuiet("nitrogen", "--set-zoom-fill", path, "--save")
	} else {
		err = run("feh", "--bg-scale", path)
	}
	if err != nil {
		return fmt.Errorf("set wallpaper: %w", err)
	}

	reloadWaybar()
	return nil
}

// PrintTarget copies the selection into the cache directory as
// current.<ext> and reloads waybar, for callers that consume the path from
// stdout instead of setting the wallpaper. It returns the cache file path.
func PrintTarget(path string, opts Options) (string, error) {
	generateColors(path, opts)

	cacheDir, err := os.UserCacheDir()
	if err != nil {
		cacheDir = "/tmp"
	}
	dir := filepath.Join(cacheDir, "wallpick")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		ext = "png"
	}
	target := filepath.Join(dir, "current."+ext)
	if err := copyFile(path, target); err != nil {
		return "", err
	}

	reloadWaybar()
	return target, nil
}

func generateColors(path string, opts Options) {
	if opts.Pywal {
		if err := runQuiet("wal", "-i", path, "-n", "--backend", "wal"); err != nil {
			logging.Error(err)
		}
	}
	if opts.Hellwal {
		if err := runQuiet("hellwal", "-i", path); err != nil {
			logging.Error(err)
		}
	}
}

func reloadWaybar() {
	if err := runQuiet("pkill", "-USR2", "waybar"); err != nil {
		// waybar simply may not be running
		logging.Error(err)
	}
}

func onWayland() bool {
	return os.Getenv("WAYLAND_DISPLAY") != ""
}

func run(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func runQuiet(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
