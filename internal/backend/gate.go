package backend

import (
	"sync"
	"time"
)

// rescanGate paces directory rescans so a burst of filesystem events
// triggers at most one scan per interval.
type rescanGate struct {
	interval time.Duration

	mu  sync.Mutex
	due time.Time
}

func newRescanGate(interval time.Duration) *rescanGate {
	return &rescanGate{interval: interval}
}

// wait blocks until the next rescan slot, then claims the slot after it.
func (g *rescanGate) wait() {
	if g == nil || g.interval <= 0 {
		return
	}
	g.mu.Lock()
	now := time.Now()
	slot := g.due
	if slot.Before(now) {
		slot = now
	}
	g.due = slot.Add(g.interval)
	g.mu.Unlock()
	time.Sleep(time.Until(slot))
}
