package ui

import (
	"reflect"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"wallpick/internal/backend"
	"wallpick/internal/catalog"
	"wallpick/internal/logging"
	"wallpick/internal/logging/events"
	"wallpick/internal/preview"
	"wallpick/internal/theme"
	"wallpick/internal/ui/state"
)

// Mode identifies which input surface currently owns key presses.
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearching
	ModeRenaming
)

func (m Mode) String() string {
	switch m {
	case ModeSearching:
		return "searching"
	case ModeRenaming:
		return "renaming"
	default:
		return "normal"
	}
}

// preloadCount is how many previews from the initial view are decoded up
// front so the first few cursor moves render instantly. The effective count
// never exceeds the cache capacity; decoding past it would evict the head of
// the window, including the initially selected frame.
const preloadCount = 10

type msgHandler func(tea.Msg) tea.Cmd

// Model is the root Bubble Tea model for the picker session.
type Model struct {
	cfg     Config
	catalog *catalog.Catalog
	cache   *preview.Cache
	watcher *backend.Watcher
	styles  *theme.Styles

	tabs   []catalog.Category
	active catalog.Category
	list   *state.List
	mode   Mode

	renameInput textinput.Model
	renameItem  catalog.Item
	renameErr   string

	// displayedPath is the identity the preview panel is tracking; the
	// retained frame lags behind it while a decode is in flight.
	displayed     *preview.Frame
	displayedPath string
	previewErr    string
	inflight      map[string]struct{}

	width  int
	height int
	layout layout

	chosen   *catalog.Item
	quitting bool

	statusMsg string

	handlers map[reflect.Type]msgHandler
}

// NewModel wires a picker model around an already-loaded catalog. The cache
// and watcher may come from the caller so their lifetimes outlast the
// program; watcher may be nil when live refresh is unavailable.
func NewModel(cfg Config, cat *catalog.Catalog, cache *preview.Cache, watcher *backend.Watcher) *Model {
	tabs := cfg.ActiveCategories()
	active := tabs[0]
	m := &Model{
		cfg:      cfg,
		catalog:  cat,
		cache:    cache,
		watcher:  watcher,
		styles:   theme.Default(),
		tabs:     tabs,
		active:   active,
		list:     state.NewList(cat.ListFor(active), active == catalog.Wallpapers, cfg.FuzzySearch),
		inflight: make(map[string]struct{}),
		handlers: make(map[reflect.Type]msgHandler),
	}
	m.registerHandlers()
	return m
}

func (m *Model) registerHandlers() {
	m.register(tea.KeyMsg{}, m.handleKeyMsg)
	m.register(tea.MouseMsg{}, m.handleMouseMsg)
	m.register(tea.WindowSizeMsg{}, m.handleWindowSizeMsg)
	m.register(frameLoadedMsg{}, m.handleFrameLoadedMsg)
	m.register(watcherEventMsg{}, m.handleWatcherEventMsg)
}

func (m *Model) register(msg tea.Msg, h msgHandler) {
	m.handlers[reflect.TypeOf(msg)] = h
}

// Init preloads the head of the initial view and arms the watcher listener.
func (m *Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	limit := preloadCount
	if c := m.cache.Capacity(); c < limit {
		limit = c
	}
	for i, it := range m.list.Items {
		if i >= limit {
			break
		}
		if cmd := m.requestDecode(it.Path); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if cmd := m.ensurePreview(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if m.watcher != nil {
		cmds = append(cmds, waitForWatcherEvent(m.watcher))
	}
	return tea.Batch(cmds...)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.mode == ModeRenaming {
		if cmd, handled := m.updateRenameForm(msg); handled {
			return m, cmd
		}
	}
	if h, ok := m.handlers[reflect.TypeOf(msg)]; ok {
		return m, h(msg)
	}
	return m, nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size := msg.(tea.WindowSizeMsg)
	m.width = size.Width
	m.height = size.Height
	m.layout = computeLayout(m.cfg.ListPosition, size.Width, size.Height, m.tabs)
	m.list.EnsureCursorVisible(m.layout.list.h)
	return nil
}

// Close drops the display reference on the on-screen frame. Call once after
// the program finishes, before purging the cache.
func (m *Model) Close() {
	m.releaseDisplayed()
}

// Choice reports the item picked during the session, if any.
func (m *Model) Choice() (catalog.Item, bool) {
	if m.chosen == nil {
		return catalog.Item{}, false
	}
	return *m.chosen, true
}

// SelectedPaths returns the paths the session ended on: the multi-selected
// set when multi-select was active, otherwise just the chosen item.
func (m *Model) SelectedPaths() []string {
	it, ok := m.Choice()
	if !ok {
		return nil
	}
	if m.list.MultiSelect {
		items := m.list.SelectedItems()
		paths := make([]string, 0, len(items))
		for _, sel := range items {
			paths = append(paths, sel.Path)
		}
		if len(paths) > 0 {
			return paths
		}
	}
	return []string{it.Path}
}

func (m *Model) choose() tea.Cmd {
	it, ok := m.list.CurrentItem()
	if !ok {
		return nil
	}
	m.list.MarkVisited()
	if m.active == catalog.Wallpapers {
		m.catalog.PushHistory(it)
	}
	chosen := it
	m.chosen = &chosen
	m.quitting = true
	events.App.Chosen(it.Path)
	return tea.Quit
}

func (m *Model) quit() tea.Cmd {
	m.chosen = nil
	m.quitting = true
	events.App.Quit()
	return tea.Quit
}

// switchTo activates a tab: the query survives the switch, multi-select and
// the cursor do not.
func (m *Model) switchTo(c catalog.Category) tea.Cmd {
	if c == m.active {
		return nil
	}
	m.active = c
	m.list.DisableMultiSelect()
	m.list.SetSource(m.catalog.ListFor(c), c == catalog.Wallpapers)
	m.list.Cursor = 0
	m.list.ViewportOffset = 0
	m.previewErr = ""
	events.UI.Category(c.Title())
	return m.ensurePreview()
}

func (m *Model) nextTab() tea.Cmd {
	return m.switchTo(catalog.Next(m.tabs, m.active))
}

func (m *Model) prevTab() tea.Cmd {
	return m.switchTo(catalog.Prev(m.tabs, m.active))
}

func (m *Model) moveCursor(delta int) tea.Cmd {
	m.list.MoveBy(delta)
	m.list.MarkVisited()
	events.UI.Cursor(m.active.Title(), m.list.Cursor)
	return m.ensurePreview()
}

func (m *Model) scrollBy(delta int) tea.Cmd {
	m.list.Scroll(delta)
	m.list.MarkVisited()
	return m.ensurePreview()
}

func (m *Model) toggleMultiSelect() tea.Cmd {
	m.list.ToggleMultiSelect()
	events.UI.MultiSelect(m.list.MultiSelect, len(m.list.Selected))
	return nil
}

// toggleFavorite flips favorite membership for the cursor item, or for every
// multi-selected item when the overlay is active.
func (m *Model) toggleFavorite() tea.Cmd {
	targets := []catalog.Item{}
	if m.list.MultiSelect && len(m.list.Selected) > 0 {
		targets = m.list.SelectedItems()
	} else if it, ok := m.list.CurrentItem(); ok {
		targets = append(targets, it)
	}
	if len(targets) == 0 {
		return nil
	}
	for _, it := range targets {
		fav := m.catalog.ToggleFavorite(it)
		events.Catalog.Favorite(it.Path, fav)
	}
	// The favorites view itself changes under a toggle.
	if m.active == catalog.Favorites {
		m.list.SetSource(m.catalog.ListFor(m.active), false)
		return m.ensurePreview()
	}
	return nil
}

type watcherEventMsg struct {
	event backend.Event
	ok    bool
}

func waitForWatcherEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-w.Events()
		return watcherEventMsg{event: ev, ok: ok}
	}
}

func (m *Model) handleWatcherEventMsg(msg tea.Msg) tea.Cmd {
	ev := msg.(watcherEventMsg)
	if !ev.ok {
		return nil
	}
	if ev.event.Err != nil {
		logging.Error(ev.event.Err)
		m.statusMsg = "refresh failed: " + ev.event.Err.Error()
		return waitForWatcherEvent(m.watcher)
	}
	m.statusMsg = ""
	m.catalog.Wallpapers = ev.event.Items
	events.Catalog.Scanned(m.cfg.WallpaperDir, len(ev.event.Items))
	var cmd tea.Cmd
	if m.active == catalog.Wallpapers {
		m.list.SetSource(m.catalog.Wallpapers, true)
		cmd = m.ensurePreview()
	}
	return tea.Batch(cmd, waitForWatcherEvent(m.watcher))
}
