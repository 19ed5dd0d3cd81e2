// Package events exposes typed trace emitters so call sites stay terse and
// event names stay consistent across the codebase.
package events

import "wallpick/internal/logging"

type AppTracer struct{}

type UITracer struct{}

type SearchTracer struct{}

type CacheTracer struct{}

type CatalogTracer struct{}

var (
	App     = AppTracer{}
	UI      = UITracer{}
	Search  = SearchTracer{}
	Cache   = CacheTracer{}
	Catalog = CatalogTracer{}
)

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Chosen(path string) {
	logging.Trace("app.chosen", map[string]interface{}{"path": path})
}

func (AppTracer) Quit() {
	logging.Trace("app.quit", nil)
}

func (UITracer) Cursor(category string, cursor int) {
	logging.Trace("ui.cursor", map[string]interface{}{"category": category, "cursor": cursor})
}

func (UITracer) Category(category string) {
	logging.Trace("ui.category", map[string]interface{}{"category": category})
}

func (UITracer) MultiSelect(enabled bool, size int) {
	logging.Trace("ui.multiselect", map[string]interface{}{"enabled": enabled, "size": size})
}

func (UITracer) Mode(mode string) {
	logging.Trace("ui.mode", map[string]interface{}{"mode": mode})
}

func (SearchTracer) Append(query string) {
	logging.Trace("search.append", map[string]interface{}{"query": query})
}

func (SearchTracer) Backspace(query string) {
	logging.Trace("search.backspace", map[string]interface{}{"query": query})
}

func (SearchTracer) Cleared() {
	logging.Trace("search.clear", nil)
}

func (CacheTracer) Hit(path string) {
	logging.Trace("cache.hit", map[string]interface{}{"path": path})
}

func (CacheTracer) Miss(path string) {
	logging.Trace("cache.miss", map[string]interface{}{"path": path})
}

func (CacheTracer) Evict(path string) {
	logging.Trace("cache.evict", map[string]interface{}{"path": path})
}

func (CacheTracer) DecodeError(path string, err error) {
	if err == nil {
		return
	}
	logging.Trace("cache.decode-error", map[string]interface{}{"path": path, "error": err.Error()})
}

func (CatalogTracer) Scanned(dir string, count int) {
	logging.Trace("catalog.scan", map[string]interface{}{"dir": dir, "count": count})
}

func (CatalogTracer) Renamed(oldPath, newPath string) {
	logging.Trace("catalog.rename", map[string]interface{}{"old": oldPath, "new": newPath})
}

func (CatalogTracer) Favorite(path string, favorited bool) {
	logging.Trace("catalog.favorite", map[string]interface{}{"path": path, "favorited": favorited})
}
