package widget

import (
	"github.com/jmylchreest/huewheel/internal/colour"
)

// Ring colours for the OKLCH mode use a fixed mid lightness and chroma so every hue is in gamut.
const (
	ringLr     = 0.710
	ringChroma = 0.125
)

// RingMask returns the coverage of pixel (px, py) by the annulus between the two radii.
func RingMask(px, py int, c Point, innerR, outerR float64) uint8 {
	d := pixelCentre(px, py).Dist(c)
	return alpha(clamp01(outerR-d) * clamp01(d-innerR))
}

// RingColor returns the colour of the hue ring at a hue.
func RingColor(m Mode, hue float64) colour.Color {
	if m == ModeOKLCH {
		return colour.OklrchToRGB(colour.LCh{L: ringLr, C: ringChroma, H: hue})
	}
	return colour.HSVToRGB(hue, 1, 1)
}

// ColorAt returns the colour under inner position p for a ring angle.
func ColorAt(g Geometry, m Mode, angle float64, p Point) colour.Color {
	hue := HueFromAngle(angle)
	switch m {
	case ModeHSL:
		return DiamondColor(p, g.Center, g.ShapeRadius, hue)
	case ModeOKLCH:
		return OklchColor(p, g.Center, g.Side, hue)
	default:
		return TriangleColor(p, g.Center, g.ShapeRadius, hue)
	}
}

// PositionFromColor places both handles for c: the ring angle of its hue and its position in
// the inner shape. Achromatic colours get hue 0.
func PositionFromColor(g Geometry, m Mode, c colour.Color) (angle float64, p Point) {
	switch m {
	case ModeHSL:
		hsl := colour.RGBToHSL(c)
		return AngleFromHue(hsl.H), DiamondPoint(hsl.S, hsl.L, g.Center, g.ShapeRadius)
	case ModeOKLCH:
		lch := colour.RGBToOklrch(c)
		return AngleFromHue(lch.H), g.OklchPoint(lch.L, lch.C)
	default:
		hsv := colour.RGBToHSV(c)
		return AngleFromHue(hsv.H), TrianglePoint(hsv.S, hsv.V, g.Center, g.ShapeRadius)
	}
}

// Clamp applies the bounds of the mode's inner shape to p. sh is only read in OKLCH mode.
func Clamp(g Geometry, m Mode, p Point, sh *OklchShape) Point {
	switch m {
	case ModeHSL:
		return DiamondBounds(p, g.Center, g.ShapeRadius)
	case ModeOKLCH:
		return OklchBounds(p, sh)
	default:
		return TriangleBounds(p, g.Center, g.ShapeRadius)
	}
}

// InnerMask returns the coverage of pixel (px, py) by the mode's inner shape.
func InnerMask(g Geometry, m Mode, px, py int, sh *OklchShape) uint8 {
	switch m {
	case ModeHSL:
		return DiamondMask(px, py, g.Center, g.ShapeRadius)
	case ModeOKLCH:
		return OklchMask(px, py, sh)
	default:
		return TriangleMask(px, py, g.Center, g.ShapeRadius)
	}
}
