// Package logging provides the shared file-backed logger. The picker owns
// the terminal while it runs, so nothing may be written to stdout or stderr;
// all diagnostics go to a log file as structured JSON entries.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

const defaultLogFile = "wallpick.log"

var (
	mu     sync.Mutex
	logger = newLogger()
)

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// Configure sets the log destination. Empty values fall back to the default
// path in the working directory. Directories are created when missing.
func Configure(path string) {
	mu.Lock()
	defer mu.Unlock()
	if strings.TrimSpace(path) == "" {
		path = defaultLogFile
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
			path = defaultLogFile
		}
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging failed: %v\n", err)
		return
	}
	logger.SetOutput(f)
}

// SetTraceEnabled toggles emission of trace entries.
func SetTraceEnabled(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	if enabled {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}
}

// Error writes an error entry to the shared log file.
func Error(err error) {
	if err == nil {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	logger.WithField("error", err.Error()).Error("error")
}

// Trace appends a structured entry to the shared log when tracing is enabled.
func Trace(event string, payload map[string]interface{}) {
	mu.Lock()
	defer mu.Unlock()
	logger.WithFields(logrus.Fields(payload)).Debug(event)
}
