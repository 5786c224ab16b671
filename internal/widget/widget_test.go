package widget

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/huewheel/internal/colour"
)

// roundTripTolerance is how far, in pixels, position -> colour -> position may move a point that
// lies fully inside the shape. OKLCH is looser because its outline is a sampled polyline.
var roundTripTolerance = map[Mode]float64{
	ModeHSV:   1,
	ModeHSL:   1,
	ModeOKLCH: 2,
}

var testHues = []float64{0, 29.23, 90, 142.5, 200, 264.05, 330}

func TestPositionColourRoundTrip(t *testing.T) {
	g := testGeometry(t)

	for _, m := range Modes() {
		for _, hue := range testHues {
			t.Run(fmt.Sprintf("%s/%g", m, hue), func(t *testing.T) {
				angle := AngleFromHue(hue)
				sh := NewOklchShape(g, angle)

				checked := 0
				for py := 0; py < g.Height; py += 3 {
					for px := 0; px < g.Width; px += 3 {
						if InnerMask(g, m, px, py, sh) < 255 {
							continue
						}
						p := pixelCentre(px, py)
						c := ColorAt(g, m, angle, p)
						require.True(t, c.IsFinite())

						_, q := PositionFromColor(g, m, c)
						assert.LessOrEqual(t, p.Dist(q), roundTripTolerance[m], "pixel (%d,%d)", px, py)
						checked++
					}
				}
				assert.Greater(t, checked, 50)
			})
		}
	}
}

func TestColourPositionRoundTrip(t *testing.T) {
	g := testGeometry(t)

	for _, m := range Modes() {
		t.Run(m.String(), func(t *testing.T) {
			for r := 0; r <= 255; r += 17 {
				for gr := 0; gr <= 255; gr += 17 {
					for b := 0; b <= 255; b += 17 {
						c := colour.RGB(uint8(r), uint8(gr), uint8(b))
						angle, p := PositionFromColor(g, m, c)
						assert.Equal(t, c.Hex(), ColorAt(g, m, angle, p).Hex(), "colour %s", c.Hex())
					}
				}
			}
		})
	}
}

func TestAchromaticColoursSitOnTheLeftEdge(t *testing.T) {
	g := testGeometry(t)
	left := g.Center.X - g.Side/2

	for k := 0; k <= 255; k += 5 {
		c := colour.RGB(uint8(k), uint8(k), uint8(k))

		_, p := PositionFromColor(g, ModeOKLCH, c)
		assert.InDelta(t, left, p.X, 1e-3, "oklch k=%d", k)

		_, p = PositionFromColor(g, ModeHSV, c)
		assert.InDelta(t, g.Center.X-g.ShapeRadius/2, p.X, 1e-9, "hsv k=%d", k)

		_, p = PositionFromColor(g, ModeHSL, c)
		assert.True(t, inside(g, ModeHSL, p, nil), "hsl k=%d", k)
		assert.InDelta(t, 0, p.X-g.Center.X+g.ShapeRadius*(1-math.Abs(2*float64(k)/255-1)), 1e-9, "hsl k=%d", k)
	}
}

func TestPureRedSitsOnTheCusp(t *testing.T) {
	g := testGeometry(t)
	red := colour.RGB(255, 0, 0)

	angle, p := PositionFromColor(g, ModeOKLCH, red)
	assert.InDelta(t, 29.23, HueFromAngle(angle), 0.05)

	sh := NewOklchShape(g, angle)
	assert.LessOrEqual(t, p.Dist(sh.Cusp), 0.5)
}

func TestExactHSVScenario(t *testing.T) {
	g := testGeometry(t)
	tip := Point{X: g.Center.X + g.ShapeRadius, Y: g.Center.Y}

	assert.Equal(t, "#FF0000", ColorAt(g, ModeHSV, AngleFromHue(0), tip).Hex())
	assert.Equal(t, "#00FF00", ColorAt(g, ModeHSV, AngleFromHue(120), tip).Hex())
}
