package widget

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGeometry(t *testing.T) Geometry {
	t.Helper()
	g, err := NewGeometry(200, 150)
	require.NoError(t, err)
	return g
}

func TestNewGeometry(t *testing.T) {
	g := testGeometry(t)

	assert.Equal(t, Point{X: 100, Y: 75}, g.Center)
	assert.InDelta(t, 72, g.OuterRadius, 1e-12)
	assert.InDelta(t, 54, g.InnerRadius, 1e-12)
	assert.InDelta(t, 46, g.ShapeRadius, 1e-12)
	assert.InDelta(t, 46*math.Sqrt2, g.Side, 1e-12)
	assert.InDelta(t, 63, g.HandleRadius(), 1e-12)
}

func TestNewGeometryRejectsSmallSizes(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{name: "zero", width: 0, height: 100},
		{name: "negative", width: 100, height: -1},
		{name: "too small for a shape", width: 20, height: 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGeometry(tt.width, tt.height)
			assert.Error(t, err)
		})
	}
}

func TestHueFromAngle(t *testing.T) {
	tests := []struct {
		name  string
		angle float64
		want  float64
	}{
		{name: "top", angle: -math.Pi / 2, want: 0},
		{name: "right", angle: 0, want: 90},
		{name: "bottom", angle: math.Pi / 2, want: 180},
		{name: "left", angle: math.Pi, want: 270},
		{name: "unwrapped", angle: 2 * math.Pi, want: 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, HueFromAngle(tt.angle), 1e-9)
		})
	}

	for h := 0.0; h < 360; h += 7.5 {
		assert.InDelta(t, h, HueFromAngle(AngleFromHue(h)), 1e-9)
	}
}

func TestInRing(t *testing.T) {
	g := testGeometry(t)
	assert.False(t, g.InRing(g.Center))
	assert.False(t, g.InRing(Point{X: g.Center.X + 53.9, Y: g.Center.Y}))
	assert.True(t, g.InRing(Point{X: g.Center.X + 54, Y: g.Center.Y}))
	assert.True(t, g.InRing(Point{X: -5000, Y: 5000}))
}

func TestOklchPointRoundTrip(t *testing.T) {
	g := testGeometry(t)

	corner := g.OklchPoint(0, 0)
	assert.InDelta(t, g.Center.X-g.Side/2, corner.X, 1e-12)
	assert.InDelta(t, g.Center.Y+g.Side/2, corner.Y, 1e-12)

	lr, c := g.OklchValues(g.OklchPoint(0.4, 0.1))
	assert.InDelta(t, 0.4, lr, 1e-12)
	assert.InDelta(t, 0.1, c, 1e-12)
}
