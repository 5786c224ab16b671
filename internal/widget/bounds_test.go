package widget

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func farPoints(c Point, dist float64) []Point {
	var out []Point
	for i := 0; i < 16; i++ {
		a := float64(i) * math.Pi / 8
		out = append(out, Point{X: c.X + dist*math.Cos(a), Y: c.Y + dist*math.Sin(a)})
	}
	return out
}

func TestBoundsKeepInsidePoints(t *testing.T) {
	g := testGeometry(t)
	c := g.Center

	assert.Equal(t, c, TriangleBounds(c, c, g.ShapeRadius))
	p := Point{X: c.X + 10, Y: c.Y - 5}
	assert.Equal(t, p, TriangleBounds(p, c, g.ShapeRadius))

	q := DiamondBounds(p, c, g.ShapeRadius)
	assert.InDelta(t, p.X, q.X, 1e-9)
	assert.InDelta(t, p.Y, q.Y, 1e-9)

	sh := NewOklchShape(g, AngleFromHue(29.23))
	in := Point{X: sh.Anchor.X + 5, Y: sh.Anchor.Y}
	assert.Equal(t, in, OklchBounds(in, sh))
}

func TestTriangleBoundsCorners(t *testing.T) {
	g := testGeometry(t)
	c, r := g.Center, g.ShapeRadius

	tests := []struct {
		name string
		p    Point
		want Point
	}{
		{name: "beyond hue vertex", p: Point{X: c.X + 10000, Y: c.Y}, want: Point{X: c.X + r, Y: c.Y}},
		{name: "beyond black vertex", p: Point{X: c.X - 10000, Y: c.Y + 10000}, want: Point{X: c.X - r/2, Y: c.Y + r*sin60}},
		{name: "beyond white vertex", p: Point{X: c.X - 10000, Y: c.Y - 10000}, want: Point{X: c.X - r/2, Y: c.Y - r*sin60}},
		{name: "left of left edge", p: Point{X: c.X - 10000, Y: c.Y + 3}, want: Point{X: c.X - r/2, Y: c.Y + 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TriangleBounds(tt.p, c, r)
			assert.InDelta(t, tt.want.X, got.X, 1e-9)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-9)
		})
	}
}

func TestDiamondBoundsVertices(t *testing.T) {
	g := testGeometry(t)
	c, r := g.Center, g.ShapeRadius

	top := DiamondBounds(Point{X: c.X, Y: c.Y - 10000}, c, r)
	assert.InDelta(t, c.X, top.X, 1e-9)
	assert.InDelta(t, c.Y-r, top.Y, 1e-9)

	_, l := DiamondSL(top, c, r)
	assert.InDelta(t, 1, l, 1e-12)
	assert.Equal(t, "#FFFFFF", DiamondColor(top, c, r, 200).Hex())
}

// A drag far outside the widget lands on the edge of the shape with a finite colour.
func TestFarDragsLandOnTheBoundary(t *testing.T) {
	g := testGeometry(t)

	for _, m := range Modes() {
		for _, hue := range testHues {
			t.Run(fmt.Sprintf("%s/%g", m, hue), func(t *testing.T) {
				angle := AngleFromHue(hue)
				sh := NewOklchShape(g, angle)

				for _, p := range farPoints(g.Center, 10000) {
					q := Clamp(g, m, p, sh)
					require.True(t, q.IsFinite(), "%v", p)
					assert.True(t, inside(g, m, q, sh), "%v -> %v", p, q)
					assert.True(t, onBoundary(g, m, q, sh), "%v -> %v", p, q)
					assert.True(t, ColorAt(g, m, angle, q).IsFinite())
				}
			})
		}
	}
}

func onBoundary(g Geometry, m Mode, q Point, sh *OklchShape) bool {
	const eps = 1e-6
	if m == ModeOKLCH {
		return math.Abs(q.X-sh.Left()) < eps ||
			math.Abs(q.X-sh.MaxX(q.Y)) < eps ||
			math.Abs(q.Y-sh.Top()) < eps ||
			math.Abs(q.Y-sh.Bottom()) < eps
	}

	// Both shapes are convex around the centre, so one pixel further out is outside.
	dx, dy := q.X-g.Center.X, q.Y-g.Center.Y
	n := math.Hypot(dx, dy)
	out := Point{X: q.X + dx/n, Y: q.Y + dy/n}
	return !inside(g, m, out, sh)
}

// inside reports whether p lies in the mode's inner shape.
func inside(g Geometry, m Mode, p Point, sh *OklchShape) bool {
	q := Clamp(g, m, p, sh)
	return math.Abs(q.X-p.X) < 1e-9 && math.Abs(q.Y-p.Y) < 1e-9
}

func TestClampIsIdempotent(t *testing.T) {
	g := testGeometry(t)
	sh := NewOklchShape(g, AngleFromHue(264.05))

	for _, m := range Modes() {
		for py := -20; py < g.Height+20; py += 7 {
			for px := -20; px < g.Width+20; px += 7 {
				q := Clamp(g, m, Point{X: float64(px), Y: float64(py)}, sh)
				r := Clamp(g, m, q, sh)
				assert.InDelta(t, q.X, r.X, 1e-9, "%s (%d,%d)", m, px, py)
				assert.InDelta(t, q.Y, r.Y, 1e-9, "%s (%d,%d)", m, px, py)
			}
		}
	}
}

func TestClampOnHueChangeKeepsLightness(t *testing.T) {
	g := testGeometry(t)

	// Blue reaches further out than yellow at mid lightness.
	blue := NewOklchShape(g, AngleFromHue(264.05))
	yellow := NewOklchShape(g, AngleFromHue(110))

	p := Point{X: blue.MaxX(g.Center.Y+10) - 0.5, Y: g.Center.Y + 10}
	require.Equal(t, p, OklchBounds(p, blue))

	q := ClampOnHueChange(p, yellow)
	assert.Equal(t, p.Y, q.Y)
	assert.LessOrEqual(t, q.X, yellow.MaxX(q.Y))
	assert.Equal(t, q, ClampOnHueChange(q, yellow))
}
