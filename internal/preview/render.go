package preview

import (
	"fmt"
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/disintegration/imaging"
)

// renderCells scales the image to the target cell grid and renders it with
// upper-half-block glyphs, packing two vertical pixels into each cell. The
// returned lines contain ANSI colour sequences and must be treated as raw by
// the view (no further styling, ANSI-aware truncation only).
func renderCells(img *image.NRGBA, width, height int) []string {
	// Fit preserves aspect ratio; a terminal cell is roughly twice as tall
	// as it is wide, which the half-block packing already accounts for.
	scaled := imaging.Fit(img, width, height*2, imaging.NearestNeighbor)
	bounds := scaled.Bounds()
	cols := bounds.Dx()
	rows := (bounds.Dy() + 1) / 2

	lines := make([]string, 0, rows)
	for row := 0; row < rows; row++ {
		var b strings.Builder
		for col := 0; col < cols; col++ {
			top := scaled.NRGBAAt(bounds.Min.X+col, bounds.Min.Y+row*2)
			style := lipgloss.NewStyle().Foreground(hexColor(top.R, top.G, top.B))
			if y := row*2 + 1; y < bounds.Dy() {
				bottom := scaled.NRGBAAt(bounds.Min.X+col, bounds.Min.Y+y)
				style = style.Background(hexColor(bottom.R, bottom.G, bottom.B))
			}
			b.WriteString(style.Render("▀"))
		}
		lines = append(lines, b.String())
	}
	return lines
}

func hexColor(r, g, b uint8) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r, g, b))
}
