package widget

import (
	"github.com/jmylchreest/huewheel/internal/colour"
)

// The HSV triangle points at the ring on the right: the pure hue sits at (r, 0), white at the
// top-left vertex and black at the bottom-left vertex, relative to the centre.

// triangleValueRange is the span of the value axis, from the black vertex at -r to the
// opposite edge at r*cos60.
func triangleValueRange(r float64) (lo, hi float64) {
	return -r, r * cos60
}

// TriangleColor maps p to a colour on the HSV triangle of radius r centred at c.
func TriangleColor(p, c Point, r, hue float64) colour.Color {
	s, v := TriangleSV(p, c, r)
	return colour.HSVToRGB(hue, s, v)
}

// TriangleSV returns the saturation and value at p.
func TriangleSV(p, c Point, r float64) (s, v float64) {
	dx, dy := p.X-c.X, p.Y-c.Y
	lo, hi := triangleValueRange(r)

	proj := dx*cos60 - dy*sin60
	v = (proj - lo) / (hi - lo)

	width := v * 2 * r * sin60
	if width == 0 {
		return 0, v
	}
	perp := dx*cos30 + dy*sin30
	return (perp + width/2) / width, v
}

// TrianglePoint is the inverse of TriangleSV.
func TrianglePoint(s, v float64, c Point, r float64) Point {
	lo, hi := triangleValueRange(r)
	proj := lo + v*(hi-lo)
	width := v * 2 * r * sin60
	perp := s*width - width/2

	return Point{
		X: c.X + proj*cos60 + perp*cos30,
		Y: c.Y - proj*sin60 + perp*sin30,
	}
}

// TriangleMask returns the coverage of pixel (px, py) by the triangle.
func TriangleMask(px, py int, c Point, r float64) uint8 {
	p := pixelCentre(px, py)
	dx, dy := p.X-c.X, p.Y-c.Y
	ri := r * cos60

	return alpha(clamp01(ri-dx*cos60-dy*sin60) *
		clamp01(ri-dx*cos60+dy*sin60) *
		clamp01(ri+dx))
}

// TriangleBounds moves p onto the nearest point of the triangle when it lies outside.
func TriangleBounds(p, c Point, r float64) Point {
	dx, dy := p.X-c.X, p.Y-c.Y
	ri := r * cos60
	half := r * sin60

	switch {
	case dx < -ri:
		// Left edge, between the white and black vertices.
		return Point{X: c.X - ri, Y: c.Y + clamp(dy, -half, half)}

	case dx*cos60+dy*sin60 > ri:
		// Lower edge, from the hue vertex to the black vertex.
		perp := dx*cos30 - dy*sin30
		switch {
		case perp > half:
			return Point{X: c.X + r, Y: c.Y}
		case perp < -half:
			return Point{X: c.X - ri, Y: c.Y + half}
		}
		return Point{
			X: c.X + ri*cos60 + perp*cos30,
			Y: c.Y + ri*sin60 - perp*sin30,
		}

	case dx*cos60-dy*sin60 > ri:
		// Upper edge, from the hue vertex to the white vertex.
		perp := dx*cos30 + dy*sin30
		switch {
		case perp > half:
			return Point{X: c.X + r, Y: c.Y}
		case perp < -half:
			return Point{X: c.X - ri, Y: c.Y - half}
		}
		return Point{
			X: c.X + ri*cos60 + perp*cos30,
			Y: c.Y - ri*sin60 + perp*sin30,
		}
	}

	return p
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
