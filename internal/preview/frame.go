// Package preview owns decoded preview images: a bounded LRU cache keyed by
// item identity, the asynchronous decode path, and the cell renderer that
// turns a decoded frame into terminal output.
package preview

import (
	"image"
	"sync"
	"sync/atomic"
)

// Frame is a decoded image shared by reference count between the cache and
// the display. The cache holds one reference; the view holds another while
// the frame is on screen, so evicting a displayed frame never invalidates it.
type Frame struct {
	path atomic.Value // string
	refs atomic.Int32

	mu       sync.Mutex
	img      *image.NRGBA
	renderW  int
	renderH  int
	rendered []string
}

// NewFrame wraps a decoded image with an initial reference owned by the caller.
func NewFrame(path string, img *image.NRGBA) *Frame {
	f := &Frame{img: img}
	f.path.Store(path)
	f.refs.Store(1)
	return f
}

// Path returns the identity the frame was decoded from.
func (f *Frame) Path() string {
	p, _ := f.path.Load().(string)
	return p
}

func (f *Frame) setPath(path string) {
	f.path.Store(path)
}

// Retain adds a reference and returns the frame for chaining.
func (f *Frame) Retain() *Frame {
	f.refs.Add(1)
	return f
}

// Release drops a reference. When the last holder releases, the pixel data
// and render memo are dropped so memory is reclaimed promptly.
func (f *Frame) Release() {
	if f.refs.Add(-1) > 0 {
		return
	}
	f.mu.Lock()
	f.img = nil
	f.rendered = nil
	f.mu.Unlock()
}

// Bounds returns the decoded image bounds, or a zero rectangle after the
// last reference was released.
func (f *Frame) Bounds() image.Rectangle {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.img == nil {
		return image.Rectangle{}
	}
	return f.img.Bounds()
}

// Lines renders the frame to width x height terminal cells, memoizing the
// result for the last requested size so redraws reuse it.
func (f *Frame) Lines(width, height int) []string {
	if width < 1 || height < 1 {
		return nil
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.img == nil {
		return nil
	}
	if f.rendered != nil && f.renderW == width && f.renderH == height {
		return f.rendered
	}
	f.rendered = renderCells(f.img, width, height)
	f.renderW = width
	f.renderH = height
	return f.rendered
}
