package widget

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"

	"github.com/jmylchreest/huewheel/internal/colour"
)

// Handle rings, drawn as two stroked circles.
var (
	handleOuter = ring{radius: 9, width: 5, colour: color.NRGBA{R: 0x60, G: 0x81, B: 0x88, A: 0xff}}
	handleInner = ring{radius: 6, width: 5, colour: color.NRGBA{R: 0x2f, G: 0x4f, B: 0x55, A: 0xff}}
)

// kappa places cubic control points for a quarter circle.
const kappa = 0.5522847498

type ring struct {
	radius, width float64
	colour        color.NRGBA
}

// NewCanvas allocates a transparent buffer of the widget's size.
func NewCanvas(g Geometry) *image.NRGBA {
	return image.NewNRGBA(image.Rect(0, 0, g.Width, g.Height))
}

// Render recomputes every pixel of dst: the hue ring, the inner shape of the mode, then the two
// handles on top. dst must have the widget's bounds. sh is only read in OKLCH mode.
func Render(dst *image.NRGBA, g Geometry, m Mode, angle float64, inner Point, sh *OklchShape) {
	b := dst.Bounds()

	for py := b.Min.Y; py < b.Max.Y; py++ {
		for px := b.Min.X; px < b.Max.X; px++ {
			if a := RingMask(px, py, g.Center, g.InnerRadius, g.OuterRadius); a > 0 {
				ringHue := HueFromAngle(g.AngleAt(pixelCentre(px, py)))
				dst.SetNRGBA(px, py, nrgba(RingColor(m, ringHue), a))
				continue
			}

			a := InnerMask(g, m, px, py, sh)
			if a == 0 {
				dst.SetNRGBA(px, py, color.NRGBA{})
				continue
			}
			dst.SetNRGBA(px, py, nrgba(ColorAt(g, m, angle, pixelCentre(px, py)), a))
		}
	}

	drawHandle(dst, g.HueHandle(angle))
	drawHandle(dst, inner)
}

func nrgba(c colour.Color, a uint8) color.NRGBA {
	r, g, b := c.Bytes()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

func drawHandle(dst *image.NRGBA, at Point) {
	if !at.IsFinite() {
		return
	}
	for _, r := range []ring{handleOuter, handleInner} {
		z := vector.NewRasterizer(dst.Bounds().Dx(), dst.Bounds().Dy())
		z.DrawOp = draw.Over
		circle(z, at, r.radius+r.width/2, false)
		circle(z, at, r.radius-r.width/2, true)
		z.Draw(dst, dst.Bounds(), image.NewUniform(r.colour), image.Point{})
	}
}

// circle adds a closed circle to z as four cubic arcs. Reversed circles wind the other way, so
// nesting one inside a forward circle cuts a hole.
func circle(z *vector.Rasterizer, c Point, r float64, reversed bool) {
	if r <= 0 {
		return
	}
	k := r * kappa
	dir := 1.0
	if reversed {
		dir = -1
	}

	pt := func(dx, dy float64) (float32, float32) {
		return float32(c.X + dx), float32(c.Y + dy*dir)
	}

	z.MoveTo(pt(r, 0))
	cubic(z, pt, r, k, k, r, 0, r)
	cubic(z, pt, -k, r, -r, k, -r, 0)
	cubic(z, pt, -r, -k, -k, -r, 0, -r)
	cubic(z, pt, k, -r, r, -k, r, 0)
	z.ClosePath()
}

func cubic(z *vector.Rasterizer, pt func(dx, dy float64) (float32, float32), bx, by, cx, cy, dx, dy float64) {
	x1, y1 := pt(bx, by)
	x2, y2 := pt(cx, cy)
	x3, y3 := pt(dx, dy)
	z.CubeTo(x1, y1, x2, y2, x3, y3)
}
