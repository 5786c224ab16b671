package widget

import (
	"math"

	"github.com/jmylchreest/huewheel/internal/colour"
)

// DiamondColor maps p to a colour on the HSL diamond of radius r centred at c.
func DiamondColor(p, c Point, r, hue float64) colour.Color {
	s, l := DiamondSL(p, c, r)
	return colour.HSLToRGB(hue, s, l)
}

// DiamondSL returns the saturation and lightness at p. Lightness runs from 1 at the top vertex
// to 0 at the bottom; saturation spans the width of the diamond at that height.
func DiamondSL(p, c Point, r float64) (s, l float64) {
	dx, dy := p.X-c.X, p.Y-c.Y
	l = 1 - (dy+r)/r/2

	width := 2 * (r - math.Abs(dy))
	if width == 0 {
		return 0, l
	}
	return (dx + width/2) / width, l
}

// DiamondPoint is the inverse of DiamondSL.
func DiamondPoint(s, l float64, c Point, r float64) Point {
	width := 2 * r * (1 - math.Abs(2*l-1))
	return Point{
		X: c.X - width/2 + s*width,
		Y: c.Y + r - 2*l*r,
	}
}

// DiamondMask returns the coverage of pixel (px, py) by the diamond.
func DiamondMask(px, py int, c Point, r float64) uint8 {
	p := pixelCentre(px, py)
	dx, dy := (p.X-c.X)*cos45, (p.Y-c.Y)*cos45
	ri := r * cos45

	return alpha(clamp01(ri-dx+dy) *
		clamp01(ri-dx-dy) *
		clamp01(ri+dx+dy) *
		clamp01(ri+dx-dy))
}

// DiamondBounds clamps p into the diamond by working in a frame rotated 45 degrees, where the
// diamond is an axis-aligned square.
func DiamondBounds(p, c Point, r float64) Point {
	dx, dy := p.X-c.X, p.Y-c.Y
	ri := r * cos45

	u := clamp(dx*cos45-dy*cos45, -ri, ri)
	w := clamp(dx*cos45+dy*cos45, -ri, ri)

	return Point{
		X: c.X + u*cos45 + w*cos45,
		Y: c.Y - u*cos45 + w*cos45,
	}
}
