package colour

import (
	"fmt"
	"math"
	"strings"
)

// NamedColor is a colour name understood on the command line.
type NamedColor struct {
	Name     string
	R, G, B  uint8
	Aliases  []string
	IsBright bool
}

// Color returns the named colour's value.
func (n NamedColor) Color() Color {
	return RGB(n.R, n.G, n.B)
}

// The basic 16 ANSI colours with their typical xterm values, plus a few common names.
var namedColors = []NamedColor{
	{Name: "black", R: 0, G: 0, B: 0, Aliases: []string{"color0"}},
	{Name: "red", R: 205, G: 49, B: 49, Aliases: []string{"color1"}},
	{Name: "green", R: 13, G: 188, B: 121, Aliases: []string{"color2"}},
	{Name: "yellow", R: 229, G: 229, B: 16, Aliases: []string{"color3"}},
	{Name: "blue", R: 36, G: 114, B: 200, Aliases: []string{"color4"}},
	{Name: "magenta", R: 188, G: 63, B: 188, Aliases: []string{"color5", "purple"}},
	{Name: "cyan", R: 17, G: 168, B: 205, Aliases: []string{"color6"}},
	{Name: "white", R: 229, G: 229, B: 229, Aliases: []string{"color7", "gray", "grey"}},

	{Name: "brightblack", R: 102, G: 102, B: 102, Aliases: []string{"color8", "darkgray", "darkgrey"}, IsBright: true},
	{Name: "brightred", R: 241, G: 76, B: 76, Aliases: []string{"color9"}, IsBright: true},
	{Name: "brightgreen", R: 35, G: 209, B: 139, Aliases: []string{"color10"}, IsBright: true},
	{Name: "brightyellow", R: 245, G: 245, B: 67, Aliases: []string{"color11"}, IsBright: true},
	{Name: "brightblue", R: 59, G: 142, B: 234, Aliases: []string{"color12"}, IsBright: true},
	{Name: "brightmagenta", R: 214, G: 112, B: 214, Aliases: []string{"color13", "brightpurple"}, IsBright: true},
	{Name: "brightcyan", R: 41, G: 184, B: 219, Aliases: []string{"color14"}, IsBright: true},
	{Name: "brightwhite", R: 255, G: 255, B: 255, Aliases: []string{"color15"}, IsBright: true},

	{Name: "orange", R: 255, G: 165, B: 0},
	{Name: "pink", R: 255, G: 192, B: 203},
	{Name: "brown", R: 165, G: 42, B: 42},
	{Name: "lime", R: 0, G: 255, B: 0},
	{Name: "navy", R: 0, G: 0, B: 128, Aliases: []string{"darkblue"}},
	{Name: "teal", R: 0, G: 128, B: 128, Aliases: []string{"darkcyan"}},
	{Name: "maroon", R: 128, G: 0, B: 0, Aliases: []string{"darkred"}},
	{Name: "olive", R: 128, G: 128, B: 0, Aliases: []string{"darkyellow"}},
	{Name: "violet", R: 238, G: 130, B: 238},
	{Name: "indigo", R: 75, G: 0, B: 130},
}

func normalizeName(s string) string {
	return strings.ToLower(strings.NewReplacer(" ", "", "-", "", "_", "").Replace(strings.TrimSpace(s)))
}

// Lookup finds a colour by name or alias. Matching ignores case, spaces, dashes and underscores,
// so "Bright Red" and "bright-red" both find brightred.
func Lookup(name string) (NamedColor, bool) {
	n := normalizeName(name)
	if n == "" {
		return NamedColor{}, false
	}
	for _, nc := range namedColors {
		if nc.Name == n {
			return nc, true
		}
		for _, alias := range nc.Aliases {
			if alias == n {
				return nc, true
			}
		}
	}
	return NamedColor{}, false
}

// NamedColors returns every named colour in table order.
func NamedColors() []NamedColor {
	return append([]NamedColor(nil), namedColors...)
}

// Nearest returns the named colour closest to c in OKLab.
func Nearest(c Color) NamedColor {
	l, a, b := oklab(c)

	best := namedColors[0]
	bestDist := math.MaxFloat64
	for _, nc := range namedColors {
		nl, na, nb := oklab(nc.Color())
		if d := math.Hypot(l-nl, math.Hypot(a-na, b-nb)); d < bestDist {
			best, bestDist = nc, d
		}
	}
	return best
}

func oklab(c Color) (l, a, b float64) {
	c = c.Clamped()
	return LinearRGBToOklab(SRGBToLinear(c.R/255), SRGBToLinear(c.G/255), SRGBToLinear(c.B/255))
}

// ParseAny accepts a hex colour, an "r, g, b" triple or a colour name.
func ParseAny(s string) (Color, error) {
	if c, err := Parse(s); err == nil {
		return c, nil
	}
	if nc, ok := Lookup(s); ok {
		return nc.Color(), nil
	}
	return Color{}, fmt.Errorf("invalid colour %q (want #RRGGBB, \"r, g, b\" or a colour name)", s)
}
