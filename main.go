package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"wallpick/internal/app"
	"wallpick/internal/apply"
	"wallpick/internal/config"
	"wallpick/internal/logging"
	"wallpick/internal/logging/events"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	traceStartup(runtimeCfg)

	chosen, err := app.Run(runtimeCfg.App)
	if err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(chosen) == 0 {
		return
	}

	opts := apply.Options{
		Pywal:   runtimeCfg.Apply.Pywal,
		Hellwal: runtimeCfg.Apply.Hellwal,
	}
	for _, path := range chosen {
		if runtimeCfg.Apply.Print {
			target, err := apply.PrintTarget(path, opts)
			if err != nil {
				logging.Error(err)
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("Saved selection to %s\n", target)
			continue
		}
		if err := apply.Wallpaper(path, opts); err != nil {
			logging.Error(err)
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":  cfg.Args,
		"flags": flags,
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	payload["tty"] = collectTTYDetails()
	return payload
}

type ttyProbe struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
}

// collectTTYDetails records which standard descriptors are terminals and
// their sizes, so a blank-screen report comes with enough context.
func collectTTYDetails() []ttyProbe {
	streams := []struct {
		name string
		file *os.File
	}{
		{"stdin", os.Stdin},
		{"stdout", os.Stdout},
		{"stderr", os.Stderr},
	}
	probes := make([]ttyProbe, 0, len(streams))
	for _, s := range streams {
		probe := ttyProbe{Name: s.name}
		fd := int(s.file.Fd())
		if term.IsTerminal(fd) {
			probe.IsTerminal = true
			if w, h, err := term.GetSize(fd); err == nil {
				probe.Width = w
				probe.Height = h
			}
		}
		probes = append(probes, probe)
	}
	return probes
}
