package preview

import (
	"fmt"

	"github.com/disintegration/imaging"
)

// Decoded frames are bounded to this many pixels per side before caching;
// terminal cells are far coarser than source wallpapers, so decoding at full
// resolution would only waste cache memory.
const (
	maxDecodeWidth  = 480
	maxDecodeHeight = 480
)

// Result carries a completed decode back to the session controller.
type Result struct {
	Path  string
	Frame *Frame
	Err   error
}

// Decode reads and decodes the image at path, downscaling it to the bounded
// decode size. The returned frame carries one reference owned by the caller.
func Decode(path string) (*Frame, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	fitted := imaging.Fit(img, maxDecodeWidth, maxDecodeHeight, imaging.Lanczos)
	return NewFrame(path, fitted), nil
}
