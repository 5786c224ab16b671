package colour

import "math"

// HSV is hue (0-360), saturation (0-1) and value (0-1).
type HSV struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	V float64 `json:"v"`
}

// HSL is hue (0-360), saturation (0-1) and lightness (0-1).
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// RGBToHSV converts a colour to HSV. Achromatic colours report hue 0.
func RGBToHSV(c Color) HSV {
	maxVal := math.Max(c.R, math.Max(c.G, c.B))
	minVal := math.Min(c.R, math.Min(c.G, c.B))
	delta := maxVal - minVal

	s := 0.0
	if maxVal != 0 {
		s = delta / maxVal
	}

	h := 0.0
	if s != 0 {
		h = hueOf(c, maxVal, delta)
	}

	return HSV{H: h, S: s, V: maxVal / 255}
}

// RGBToHSL converts a colour to HSL. Achromatic colours report hue 0.
func RGBToHSL(c Color) HSL {
	maxVal := math.Max(c.R, math.Max(c.G, c.B))
	minVal := math.Min(c.R, math.Min(c.G, c.B))
	delta := maxVal - minVal
	l := (maxVal + minVal) / 2

	s := 0.0
	if delta != 0 {
		s = delta / (255 - math.Abs(2*l-255))
	}

	h := 0.0
	if s != 0 {
		h = hueOf(c, maxVal, delta)
	}

	return HSL{H: h, S: s, L: l / 255}
}

// hueOf computes the hexcone hue shared by HSV and HSL.
func hueOf(c Color, maxVal, delta float64) float64 {
	var h float64
	switch maxVal {
	case c.R:
		h = (c.G - c.B) / delta * 60
	case c.G:
		h = (c.B-c.R)/delta*60 + 120
	default:
		h = (c.R-c.G)/delta*60 + 240
	}
	return WrapHue(h)
}

// HSVToRGB converts HSV to a colour with channels in [0,255].
func HSVToRGB(h, s, v float64) Color {
	chroma := v * s
	return hexcone(WrapHue(h), chroma, v-chroma)
}

// HSLToRGB converts HSL to a colour with channels in [0,255].
func HSLToRGB(h, s, l float64) Color {
	chroma := (1 - math.Abs(2*l-1)) * s
	return hexcone(WrapHue(h), chroma, l-chroma/2)
}

// hexcone places a chroma/offset pair in the sextant selected by h.
func hexcone(h, c, m float64) Color {
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return Color{R: (r + m) * 255, G: (g + m) * 255, B: (b + m) * 255}
}

// WrapHue maps any angle in degrees into [0,360).
func WrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return h
}
