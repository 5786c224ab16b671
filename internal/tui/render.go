package tui

import (
	"image"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/jmylchreest/huewheel/internal/colour"
)

// halfBlock draws the top pixel of a cell as foreground and the bottom one as background.
const halfBlock = "▀"

// PanelBackground is what transparent widget pixels are blended over.
var PanelBackground = colour.RGB(0x1E, 0x1E, 0x1E)

var styleCache = sync.Map{}

// cellStyle returns the cached style for a half-block cell.
func cellStyle(top, bottom string) lipgloss.Style {
	key := top + bottom
	if cached, ok := styleCache.Load(key); ok {
		return cached.(lipgloss.Style)
	}
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(top)).
		Background(lipgloss.Color(bottom))
	styleCache.Store(key, style)
	return style
}

// blend composites pixel (x, y) of img over bg. Pixels outside img are bg.
func blend(img *image.NRGBA, x, y int, bg colour.Color) colour.Color {
	if !image.Pt(x, y).In(img.Bounds()) {
		return bg
	}
	p := img.NRGBAAt(x, y)
	a := float64(p.A) / 255
	return colour.Color{
		R: float64(p.R)*a + bg.R*(1-a),
		G: float64(p.G)*a + bg.G*(1-a),
		B: float64(p.B)*a + bg.B*(1-a),
	}
}

// RenderHalfBlocks draws img with one pixel per column and two pixels per row.
// Lines are separated by newlines, without a trailing one.
func RenderHalfBlocks(img *image.NRGBA, bg colour.Color) string {
	b := img.Bounds()
	rows := (b.Dy() + 1) / 2

	var out strings.Builder
	for row := 0; row < rows; row++ {
		if row > 0 {
			out.WriteByte('\n')
		}
		y := b.Min.Y + 2*row
		for x := b.Min.X; x < b.Max.X; x++ {
			top := blend(img, x, y, bg).Hex()
			bottom := blend(img, x, y+1, bg).Hex()
			out.WriteString(cellStyle(top, bottom).Render(halfBlock))
		}
	}
	return out.String()
}
