package widget

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/huewheel/internal/colour"
	"github.com/jmylchreest/huewheel/internal/gamut"
)

func TestRingMask(t *testing.T) {
	g := testGeometry(t)
	c := g.Center

	tests := []struct {
		name   string
		px, py int
		want   uint8
	}{
		{name: "centre", px: 100, py: 75, want: 0},
		{name: "mid ring", px: 162, py: 74, want: 255},
		{name: "outside", px: 199, py: 74, want: 0},
		{name: "corner", px: 0, py: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RingMask(tt.px, tt.py, c, g.InnerRadius, g.OuterRadius))
		})
	}

	// Edge pixels are partially covered.
	edge := RingMask(100+54, 74, c, g.InnerRadius, g.OuterRadius)
	assert.Greater(t, edge, uint8(0))
	assert.Less(t, edge, uint8(255))
}

func TestShapeMasks(t *testing.T) {
	g := testGeometry(t)
	c, r := g.Center, g.ShapeRadius

	assert.Equal(t, uint8(255), TriangleMask(100, 75, c, r))
	assert.Equal(t, uint8(0), TriangleMask(100, 75+40, c, r))
	assert.Equal(t, uint8(0), TriangleMask(100-30, 75, c, r))

	assert.Equal(t, uint8(255), DiamondMask(100, 75, c, r))
	assert.Equal(t, uint8(0), DiamondMask(100+40, 75+40, c, r))
	assert.Equal(t, uint8(255), DiamondMask(100, 75-40, c, r))
}

func TestOklchMask(t *testing.T) {
	g := testGeometry(t)
	sh := NewOklchShape(g, AngleFromHue(29.23))

	ay := int(math.Floor(sh.Anchor.Y))
	left := int(math.Floor(sh.Left()))
	cuspX := int(math.Floor(sh.Cusp.X))

	assert.Equal(t, uint8(255), OklchMask(left+3, ay, sh), "just inside the achromatic edge")
	assert.Equal(t, uint8(0), OklchMask(left-3, ay, sh), "left of the achromatic edge")
	assert.Equal(t, uint8(0), OklchMask(cuspX+5, ay, sh), "right of the cusp")
	assert.Equal(t, uint8(0), OklchMask(left+20, int(sh.Top())-5, sh), "above white")
	assert.Equal(t, uint8(0), OklchMask(left+20, int(sh.Bottom())+5, sh), "below black")
}

// Fully covered pixels are realisable colours, up to the polyline approximation.
func TestOklchMaskAgreesWithBounds(t *testing.T) {
	g := testGeometry(t)

	for _, hue := range testHues {
		sh := NewOklchShape(g, AngleFromHue(hue))
		for py := 0; py < g.Height; py++ {
			for px := 0; px < g.Width; px++ {
				if OklchMask(px, py, sh) < 255 {
					continue
				}
				p := pixelCentre(px, py)
				assert.LessOrEqual(t, p.Dist(OklchBounds(p, sh)), 2.0, "hue %g pixel (%d,%d)", hue, px, py)
			}
		}
	}
}

func TestOklchOutlineIsSweptInOrder(t *testing.T) {
	g := testGeometry(t)

	for _, hue := range testHues {
		sh := NewOklchShape(g, AngleFromHue(hue))
		out := sh.outline
		require.Len(t, out, 2*gamut.SegmentsPerHalf+1)

		assert.InDelta(t, sh.Left(), out[0].X, 1e-9)
		assert.InDelta(t, sh.Top(), out[0].Y, 1e-9)
		assert.InDelta(t, sh.Left(), out[len(out)-1].X, 1e-9)
		assert.InDelta(t, sh.Bottom(), out[len(out)-1].Y, 1e-9)
		for i := 1; i < len(sh.angles); i++ {
			assert.GreaterOrEqual(t, sh.angles[i], sh.angles[i-1], "hue %g index %d", hue, i)
		}
	}
}

func TestRender(t *testing.T) {
	g := testGeometry(t)
	angle := AngleFromHue(0)
	tip := Point{X: g.Center.X + g.ShapeRadius, Y: g.Center.Y}

	dst := NewCanvas(g)
	Render(dst, g, ModeHSV, angle, tip, nil)

	assert.Equal(t, color.NRGBA{}, dst.NRGBAAt(0, 0), "corner stays transparent")

	// Right side of the ring shows hue 90.
	ringPx := dst.NRGBAAt(100+63, 74)
	assert.Equal(t, uint8(255), ringPx.A)
	assert.Equal(t, uint8(255), ringPx.G)
	assert.Equal(t, uint8(0), ringPx.B)

	// Inside the shape, away from the handles.
	want := TriangleColor(pixelCentre(90, 75), g.Center, g.ShapeRadius, 0)
	r, gr, b := want.Bytes()
	assert.Equal(t, color.NRGBA{R: r, G: gr, B: b, A: 255}, dst.NRGBAAt(90, 75))

	// The hue handle sits at the top of the ring; 10px right of it is its outer ring.
	h := dst.NRGBAAt(110, 12)
	assertNear(t, color.NRGBA{R: 0x60, G: 0x81, B: 0x88, A: 0xff}, h)
}

func TestRenderOklch(t *testing.T) {
	g := testGeometry(t)
	angle := AngleFromHue(29.23)
	sh := NewOklchShape(g, angle)

	dst := NewCanvas(g)
	Render(dst, g, ModeOKLCH, angle, sh.Cusp, sh)

	// The ring uses the fixed OKLCH lightness and chroma.
	ringPx := dst.NRGBAAt(100, 75+63)
	want := RingColor(ModeOKLCH, HueFromAngle(g.AngleAt(pixelCentre(100, 75+63))))
	r, gr, b := want.Bytes()
	assert.Equal(t, color.NRGBA{R: r, G: gr, B: b, A: 255}, ringPx)

	// A grey on the achromatic edge.
	px := int(math.Floor(sh.Left())) + 3
	py := int(math.Floor(sh.Anchor.Y)) - 20
	got := dst.NRGBAAt(px, py)
	assert.Equal(t, uint8(255), got.A)
	lch := colour.RGBToOklrch(colour.Color{R: float64(got.R), G: float64(got.G), B: float64(got.B)})
	assert.Less(t, lch.C, 0.05)
}

func assertNear(t *testing.T, want, got color.NRGBA) {
	t.Helper()
	assert.InDelta(t, want.R, got.R, 1, "R")
	assert.InDelta(t, want.G, got.G, 1, "G")
	assert.InDelta(t, want.B, got.B, 1, "B")
	assert.InDelta(t, want.A, got.A, 1, "A")
}
