package colour

// SwatchesPerRow is the width of the static swatch grid.
const SwatchesPerRow = 5

var swatchHex = [...]string{
	"#000000", "#333333", "#666666", "#999999", "#FFFFFF",
	"#FF0000", "#00FF00", "#0000FF", "#FFFF00", "#00FFFF",
	"#FF00FF", "#FF8800", "#8800FF", "#0088FF", "#00FF88",
}

// Swatches returns the fixed swatch grid in display order, SwatchesPerRow per row.
func Swatches() []Color {
	out := make([]Color, len(swatchHex))
	for i, h := range swatchHex {
		out[i] = MustHex(h)
	}
	return out
}

// Swatch returns the swatch at index i and whether it exists.
func Swatch(i int) (Color, bool) {
	if i < 0 || i >= len(swatchHex) {
		return Color{}, false
	}
	return MustHex(swatchHex[i]), true
}
