// Package colour provides the colour-space codec used by the picker: RGB, HSV, HSL and OkLrCH
// conversions plus the hex and rgb text representations.
package colour

import (
	"fmt"
	"image/color"
	"math"
	"regexp"
	"strconv"
)

var (
	hexPattern = regexp.MustCompile(`^#?([0-9a-fA-F]{2})([0-9a-fA-F]{2})([0-9a-fA-F]{2})$`)
	rgbPattern = regexp.MustCompile(`^\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*$`)
)

// Color is a triple of channel intensities, conceptually in [0,255].
// Values may leave that range while a colour is being computed; they are clamped when the
// colour is formatted or quantized.
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// RGB builds a Color from 8-bit channels.
func RGB(r, g, b uint8) Color {
	return Color{R: float64(r), G: float64(g), B: float64(b)}
}

// Black is the fallback colour for malformed hex input.
var Black = Color{}

// Hex returns the colour as an uppercase "#RRGGBB" string.
// Each channel is rounded then clamped into [0,255].
func (c Color) Hex() string {
	r, g, b := c.Bytes()
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

// RGBText returns the colour as "r, g, b" using the same rounding as Hex.
func (c Color) RGBText() string {
	r, g, b := c.Bytes()
	return fmt.Sprintf("%d, %d, %d", r, g, b)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return fmt.Sprintf("rgb(%s)", c.RGBText())
}

// Bytes returns the rounded and clamped 8-bit channels.
func (c Color) Bytes() (r, g, b uint8) {
	return channelByte(c.R), channelByte(c.G), channelByte(c.B)
}

// Clamped returns the colour with every channel clamped into [0,255] without rounding.
func (c Color) Clamped() Color {
	return Color{R: clamp(c.R, 0, 255), G: clamp(c.G, 0, 255), B: clamp(c.B, 0, 255)}
}

// Quantized returns the committed form of the colour: rounded and clamped 8-bit channels.
// Hex(c.Quantized()) == c.Hex() for every c.
func (c Color) Quantized() Color {
	r, g, b := c.Bytes()
	return RGB(r, g, b)
}

// IsFinite reports whether every channel is a finite number.
func (c Color) IsFinite() bool {
	for _, v := range []float64{c.R, c.G, c.B} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// RGBA implements color.Color. The colour is always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	rb, gb, bb := c.Bytes()
	return color.RGBA{R: rb, G: gb, B: bb, A: 255}.RGBA()
}

// FromColor converts any color.Color to a Color, ignoring alpha.
func FromColor(c color.Color) Color {
	if cc, ok := c.(Color); ok {
		return cc
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB(n.R, n.G, n.B)
}

// ParseHex parses a strict 6-hex-digit colour with or without a leading '#'.
// It reports false for anything else.
func ParseHex(s string) (Color, bool) {
	m := hexPattern.FindStringSubmatch(s)
	if m == nil {
		return Color{}, false
	}
	var ch [3]uint8
	for i := range ch {
		v, err := strconv.ParseUint(m[i+1], 16, 8)
		if err != nil {
			return Color{}, false
		}
		ch[i] = uint8(v)
	}
	return RGB(ch[0], ch[1], ch[2]), true
}

// MustHex parses a hex colour, falling back to black when it is malformed.
func MustHex(s string) Color {
	c, ok := ParseHex(s)
	if !ok {
		return Black
	}
	return c
}

// ParseRGBText parses "r, g, b" with 1-3 digit groups.
// Values above 255 are accepted here and only clamped when the colour is formatted.
func ParseRGBText(s string) (Color, bool) {
	m := rgbPattern.FindStringSubmatch(s)
	if m == nil {
		return Color{}, false
	}
	var ch [3]float64
	for i := range ch {
		v, err := strconv.Atoi(m[i+1])
		if err != nil {
			return Color{}, false
		}
		ch[i] = float64(v)
	}
	return Color{R: ch[0], G: ch[1], B: ch[2]}, true
}

// Parse accepts either a hex colour or an "r, g, b" triple.
func Parse(s string) (Color, error) {
	if c, ok := ParseHex(s); ok {
		return c, nil
	}
	if c, ok := ParseRGBText(s); ok {
		return c.Quantized(), nil
	}
	return Color{}, fmt.Errorf("invalid colour %q (want #RRGGBB or \"r, g, b\")", s)
}

func channelByte(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	return uint8(clamp(math.Round(v), 0, 255))
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
