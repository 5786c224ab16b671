package widget

import (
	"math"
	"sort"

	"github.com/jmylchreest/huewheel/internal/colour"
	"github.com/jmylchreest/huewheel/internal/gamut"
)

// OklchShape is the gamut slice of one hue laid out on the OKLCH square.
//
// The outline runs from white at the top-left corner, along the upper boundary to the cusp, then
// along the lower boundary to black at the bottom-left corner. The left edge of the square closes
// it. Anchor is the point of the left edge level with the cusp; seen from it the outline sweeps
// monotonically from -pi/2 to pi/2, which is how a pixel finds its boundary segment.
type OklchShape struct {
	Geometry Geometry       `json:"geometry"`
	Hue      float64        `json:"hue"`
	Boundary gamut.Boundary `json:"boundary"`
	Cusp     Point          `json:"cusp"`
	Anchor   Point          `json:"anchor"`
	Upper    []Point        `json:"upper"`
	Lower    []Point        `json:"lower"`

	outline []Point
	angles  []float64
}

// NewOklchShape samples the gamut boundary for the hue at a ring angle.
func NewOklchShape(g Geometry, angle float64) *OklchShape {
	hue := HueFromAngle(angle)
	bd := gamut.SampleBoundary(hue)

	sh := &OklchShape{
		Geometry: g,
		Hue:      hue,
		Boundary: bd,
		Cusp:     g.OklchPoint(colour.Toe(bd.Cusp.L), bd.Cusp.C),
		Upper:    make([]Point, len(bd.Upper)),
		Lower:    make([]Point, len(bd.Lower)),
	}
	sh.Anchor = Point{X: sh.Left(), Y: sh.Cusp.Y}

	for i, s := range bd.Upper {
		sh.Upper[i] = g.OklchPoint(s.Lr, s.C)
	}
	for i, s := range bd.Lower {
		sh.Lower[i] = g.OklchPoint(s.Lr, s.C)
	}

	// The cusp closes Upper and opens Lower; keep it once.
	sh.outline = make([]Point, 0, len(sh.Upper)+len(sh.Lower)-1)
	sh.outline = append(sh.outline, sh.Upper...)
	sh.outline = append(sh.outline, sh.Lower[1:]...)

	sh.angles = make([]float64, len(sh.outline))
	for i, p := range sh.outline {
		sh.angles[i] = sh.anchorAngle(p)
	}
	// Corners sit exactly on the left edge.
	sh.angles[0] = -math.Pi / 2
	sh.angles[len(sh.angles)-1] = math.Pi / 2

	return sh
}

// Left is the achromatic edge of the square.
func (sh *OklchShape) Left() float64 {
	return sh.Geometry.Center.X - sh.Geometry.Side/2
}

// Top is the white corner's y.
func (sh *OklchShape) Top() float64 {
	return sh.Geometry.Center.Y - sh.Geometry.Side/2
}

// Bottom is the black corner's y.
func (sh *OklchShape) Bottom() float64 {
	return sh.Geometry.Center.Y + sh.Geometry.Side/2
}

// MaxX returns the rightmost in-gamut x at height y.
func (sh *OklchShape) MaxX(y float64) float64 {
	lr, _ := sh.Geometry.OklchValues(Point{Y: y})
	c := gamut.MaxChroma(lr, sh.Hue, sh.Boundary.Cusp)
	return sh.Left() + c*sh.Geometry.Side/ChromaScale
}

func (sh *OklchShape) anchorAngle(p Point) float64 {
	return math.Atan2(p.Y-sh.Anchor.Y, p.X-sh.Anchor.X)
}

// segment returns the index i of the outline segment [i, i+1] facing p from the anchor.
func (sh *OklchShape) segment(p Point) int {
	theta := sh.anchorAngle(p)
	i := sort.SearchFloat64s(sh.angles, theta) - 1
	return max(0, min(i, len(sh.outline)-2))
}

// OklchColor maps p to a colour on the OKLCH square of the given side centred at c.
// The result may fall outside [0,255] for points beyond the gamut boundary.
func OklchColor(p, c Point, side, hue float64) colour.Color {
	lr, ch := OklchLC(p, c, side)
	return colour.OklrchToRGB(colour.LCh{L: lr, C: ch, H: hue})
}

// OklchLC returns the toe-mapped lightness and the chroma at p.
func OklchLC(p, c Point, side float64) (lr, ch float64) {
	return 1 - (p.Y-c.Y+side/2)/side, ChromaScale * (p.X - c.X + side/2) / side
}

// OklchMask returns the coverage of pixel (px, py) by the gamut slice in sh. Coverage is the
// distance inside the boundary segment facing the pixel, times the distance right of the
// achromatic edge, each clamped to [0,1].
func OklchMask(px, py int, sh *OklchShape) uint8 {
	p := pixelCentre(px, py)
	left := p.X - sh.Left()
	if left <= 0 {
		return 0
	}

	i := sh.segment(p)
	a, b := sh.outline[i], sh.outline[i+1]
	ex, ey := b.X-a.X, b.Y-a.Y
	n := math.Hypot(ex, ey)
	if n == 0 {
		return 0
	}

	// Positive on the interior side for a white-to-black traversal with y down.
	inside := (ex*(p.Y-a.Y) - ey*(p.X-a.X)) / n
	return alpha(clamp01(inside) * clamp01(left))
}

// OklchBounds keeps p when it is a realisable colour of the slice and otherwise moves it onto
// the gamut boundary: first to the nearest point of the outline, then out to the exact maximum
// chroma at that lightness.
func OklchBounds(p Point, sh *OklchShape) Point {
	q := Point{
		X: math.Max(p.X, sh.Left()),
		Y: clamp(p.Y, sh.Top(), sh.Bottom()),
	}
	if q.X <= sh.MaxX(q.Y) {
		return q
	}

	near := nearestOnPolyline(p, sh.outline)
	return Point{X: sh.MaxX(near.Y), Y: near.Y}
}

// ClampOnHueChange pulls p back inside a new hue's slice, keeping its lightness.
func ClampOnHueChange(p Point, sh *OklchShape) Point {
	if maxX := sh.MaxX(p.Y); p.X > maxX {
		p.X = maxX
	}
	return p
}

func nearestOnPolyline(p Point, line []Point) Point {
	best := line[0]
	bestDist := math.Inf(1)

	for i := 0; i+1 < len(line); i++ {
		q := nearestOnSegment(p, line[i], line[i+1])
		if d := p.Dist(q); d < bestDist {
			best, bestDist = q, d
		}
	}
	return best
}

func nearestOnSegment(p, a, b Point) Point {
	ex, ey := b.X-a.X, b.Y-a.Y
	l2 := ex*ex + ey*ey
	if l2 == 0 {
		return a
	}
	t := clamp01(((p.X-a.X)*ex + (p.Y-a.Y)*ey) / l2)
	return Point{X: a.X + t*ex, Y: a.Y + t*ey}
}
