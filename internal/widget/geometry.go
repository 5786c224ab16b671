// Package widget holds the geometry of the colour wheel: the hue ring, the per-mode inner shape,
// the mappings between pixel positions and colours in both directions, the alpha masks that
// decide visibility and the clamp policy for drags that leave the shape.
//
// Every function takes the quantities it needs explicitly so it can be evaluated on its own,
// without a picker around it. Pixel masks sample pixel (x, y) at its centre (x+0.5, y+0.5).
package widget

import (
	"fmt"
	"math"

	"github.com/jmylchreest/huewheel/internal/colour"
)

const (
	// ChromaScale is the OKLCH chroma drawn at the right edge of the square.
	ChromaScale = 0.27

	ringMargin = 3
	shapeInset = 8
)

var (
	cos30 = math.Cos(math.Pi / 6)
	sin30 = math.Sin(math.Pi / 6)
	cos45 = math.Cos(math.Pi / 4)
	cos60 = math.Cos(math.Pi / 3)
	sin60 = math.Sin(math.Pi / 3)
)

// Point is a position in widget pixel space, y pointing down.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Dist returns the distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// IsFinite reports whether both coordinates are finite.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// Geometry is the layout of a picker of a given size.
type Geometry struct {
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	Center      Point   `json:"center"`
	OuterRadius float64 `json:"outer_radius"`
	InnerRadius float64 `json:"inner_radius"`
	ShapeRadius float64 `json:"shape_radius"`
	// Side is the edge length of the OKLCH square inscribed in the shape radius.
	Side float64 `json:"side"`
}

// NewGeometry derives the layout for a width x height widget.
func NewGeometry(width, height int) (Geometry, error) {
	if width <= 0 || height <= 0 {
		return Geometry{}, fmt.Errorf("invalid widget size %dx%d", width, height)
	}

	outer := float64(min(width, height))/2 - ringMargin
	inner := outer * 3 / 4
	shape := inner - shapeInset
	if shape < 1 {
		return Geometry{}, fmt.Errorf("widget %dx%d is too small to hold a shape", width, height)
	}

	return Geometry{
		Width:       width,
		Height:      height,
		Center:      Point{X: float64(width) / 2, Y: float64(height) / 2},
		OuterRadius: outer,
		InnerRadius: inner,
		ShapeRadius: shape,
		Side:        shape * math.Sqrt2,
	}, nil
}

// HandleRadius is the distance of the hue handle from the centre.
func (g Geometry) HandleRadius() float64 {
	return (g.OuterRadius + g.InnerRadius) / 2
}

// HueHandle returns the position of the hue handle for a ring angle.
func (g Geometry) HueHandle(angle float64) Point {
	r := g.HandleRadius()
	return Point{X: g.Center.X + math.Cos(angle)*r, Y: g.Center.Y + math.Sin(angle)*r}
}

// InRing reports whether p starts a hue drag rather than an inner drag.
func (g Geometry) InRing(p Point) bool {
	return p.Dist(g.Center) >= g.InnerRadius
}

// AngleAt returns the ring angle of p as seen from the centre.
func (g Geometry) AngleAt(p Point) float64 {
	return math.Atan2(p.Y-g.Center.Y, p.X-g.Center.X)
}

// OklchPoint places a toe-mapped lightness and chroma on the OKLCH square.
func (g Geometry) OklchPoint(lr, c float64) Point {
	return Point{
		X: g.Center.X - g.Side/2 + c*g.Side/ChromaScale,
		Y: g.Center.Y + g.Side/2 - lr*g.Side,
	}
}

// OklchValues is the inverse of OklchPoint.
func (g Geometry) OklchValues(p Point) (lr, c float64) {
	return 1 - (p.Y-g.Center.Y+g.Side/2)/g.Side, ChromaScale * (p.X - g.Center.X + g.Side/2) / g.Side
}

// HueFromAngle converts a ring angle (radians, 0 pointing right, y down) to a hue in degrees.
// Hue 0 sits at the top of the ring.
func HueFromAngle(angle float64) float64 {
	return colour.WrapHue((angle/(2*math.Pi) + 0.25) * 360)
}

// AngleFromHue is the inverse of HueFromAngle.
func AngleFromHue(hue float64) float64 {
	return (hue/360 - 0.25) * 2 * math.Pi
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}

func alpha(v float64) uint8 {
	return uint8(math.Round(255 * clamp01(v)))
}

func pixelCentre(px, py int) Point {
	return Point{X: float64(px) + 0.5, Y: float64(py) + 0.5}
}
