// Package testutil provides helpers shared across package tests: tiny image
// fixtures and wallpaper directory scaffolding.
package testutil

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// WritePNG writes a solid-color PNG fixture to path.
func WritePNG(t *testing.T, path string, width, height int, fill color.NRGBA) {
	t.Helper()
	writeImage(t, path, width, height, fill, func(f *os.File, img image.Image) error {
		return png.Encode(f, img)
	})
}

// WriteJPEG writes a solid-color JPEG fixture to path.
func WriteJPEG(t *testing.T, path string, width, height int, fill color.NRGBA) {
	t.Helper()
	writeImage(t, path, width, height, fill, func(f *os.File, img image.Image) error {
		return jpeg.Encode(f, img, &jpeg.Options{Quality: 80})
	})
}

func writeImage(t *testing.T, path string, width, height int, fill color.NRGBA, encode func(*os.File, image.Image) error) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, fill)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	if err := encode(f, img); err != nil {
		f.Close()
		t.Fatalf("encode %s: %v", path, err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close %s: %v", path, err)
	}
}

// WallpaperDir creates a temp directory populated with fixtures for the
// given file names: image extensions get a real solid-color encoding, other
// extensions get opaque bytes. Returns the directory path.
func WallpaperDir(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for i, name := range names {
		path := filepath.Join(dir, name)
		shade := uint8(40 + (i*37)%200)
		switch filepath.Ext(name) {
		case ".png", ".PNG":
			WritePNG(t, path, 8, 8, color.NRGBA{R: shade, G: shade, B: shade, A: 255})
		case ".jpg", ".jpeg", ".JPG", ".JPEG":
			WriteJPEG(t, path, 8, 8, color.NRGBA{R: shade, G: shade, B: shade, A: 255})
		default:
			if err := os.WriteFile(path, []byte{0x00, 0x01, shade}, 0o644); err != nil {
				t.Fatalf("write %s: %v", name, err)
			}
		}
	}
	return dir
}
