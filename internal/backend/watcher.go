// Package backend watches the wallpaper directory and publishes rescan
// events so the catalog stays current while the picker runs.
package backend

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"wallpick/internal/catalog"
	"wallpick/internal/logging"
)

// Event conveys a refreshed wallpaper list or an error from a rescan.
type Event struct {
	Items []catalog.Item
	Err   error
}

// Watcher listens for filesystem changes under the wallpaper directory and
// emits paced rescan events.
type Watcher struct {
	dir   string
	video bool

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher starts watching dir. A nil watcher is returned when the
// underlying notify watcher cannot be created; the picker then simply runs
// without live catalog refresh.
func NewWatcher(dir string, video bool) *Watcher {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		logging.Error(err)
		return nil
	}
	if err := fsw.Add(dir); err != nil {
		logging.Error(err)
		fsw.Close()
		return nil
	}
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		dir:    dir,
		video:  video,
		ctx:    ctx,
		cancel: cancel,
		events: make(chan Event, 4),
	}
	w.wg.Add(1)
	go w.run(fsw)
	go func() {
		w.wg.Wait()
		close(w.events)
	}()
	return w
}

// Events returns the channel of rescan events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. The events channel is closed once the watch
// goroutine exits.
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the watch goroutine has exited and the events channel is
// closed. Call after Stop when a clean shutdown is required.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) run(fsw *fsnotify.Watcher) {
	defer w.wg.Done()
	defer fsw.Close()

	gate := newRescanGate(250 * time.Millisecond)
	for {
		select {
		case <-w.ctx.Done():
			return
		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			logging.Error(err)
		case evt, ok := <-fsw.Events:
			if !ok {
				return
			}
			if !relevant(evt) {
				continue
			}
			gate.wait()
			drainPending(fsw)
			items, err := catalog.Scan(w.dir, w.video)
			select {
			case <-w.ctx.Done():
				return
			case w.events <- Event{Items: items, Err: err}:
			}
		}
	}
}

// drainPending discards notify events that queued up while a rescan was
// pending so one burst of file operations yields a single event.
func drainPending(fsw *fsnotify.Watcher) {
	for {
		select {
		case <-fsw.Events:
		default:
			return
		}
	}
}

func relevant(evt fsnotify.Event) bool {
	if evt.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	// Ignore dotfiles; editors and the picker's own list writes land there.
	name := evt.Name
	if idx := strings.LastIndexByte(name, '/'); idx >= 0 {
		name = name[idx+1:]
	}
	return !strings.HasPrefix(name, ".")
}
