package gamut

import (
	"math"

	"github.com/jmylchreest/huewheel/internal/colour"
)

// SegmentsPerHalf is the number of polyline segments sampled above and below the cusp.
const SegmentsPerHalf = 100

// Sample is a point of the gamut boundary in (Lr, C).
type Sample struct {
	Lr float64 `json:"lr"`
	C  float64 `json:"c"`
}

// Boundary is the sampled gamut edge of one hue. Upper runs from white to the cusp and Lower from
// the cusp to black; both contain the cusp. A Boundary is only built together with its cusp, so the
// two can never disagree about the hue.
type Boundary struct {
	Hue   float64  `json:"hue"`
	Cusp  Cusp     `json:"cusp"`
	Upper []Sample `json:"upper"`
	Lower []Sample `json:"lower"`
}

// SampleBoundary computes the cusp of hue and samples the boundary on both sides of it.
//
// Rays are cast from (L=cusp.L, C=0) at evenly spaced angles: upwards towards white for the upper
// half, downwards towards black for the lower half.
func SampleBoundary(hue float64) Boundary {
	a, b := HueVector(hue)
	cusp := FindCusp(a, b)

	n := SegmentsPerHalf
	bd := Boundary{
		Hue:   hue,
		Cusp:  cusp,
		Upper: make([]Sample, 0, n+1),
		Lower: make([]Sample, 0, n+1),
	}
	tip := Sample{Lr: colour.Toe(cusp.L), C: cusp.C}

	bd.Upper = append(bd.Upper, Sample{Lr: 1, C: 0})
	for i := 1; i < n; i++ {
		angle := float64(i) * math.Pi / 2 / float64(n)
		c1 := (1 - cusp.L) * math.Tan(angle)
		t := Intersection(a, b, cusp, 1, c1, cusp.L)
		bd.Upper = append(bd.Upper, Sample{
			Lr: colour.Toe(cusp.L + t*(1-cusp.L)),
			C:  c1 * t,
		})
	}
	bd.Upper = append(bd.Upper, tip)

	bd.Lower = append(bd.Lower, tip)
	for i := 1; i < n; i++ {
		angle := float64(i) * math.Pi / 2 / float64(n)
		c1 := cusp.L / math.Tan(angle)
		t := Intersection(a, b, cusp, 0, c1, cusp.L)
		bd.Lower = append(bd.Lower, Sample{
			Lr: colour.Toe((1 - t) * cusp.L),
			C:  c1 * t,
		})
	}
	bd.Lower = append(bd.Lower, Sample{Lr: 0, C: 0})

	return bd
}

// MaxChroma is MaxChroma for the boundary's own hue and cusp.
func (bd Boundary) MaxChroma(lr float64) float64 {
	return MaxChroma(lr, bd.Hue, bd.Cusp)
}
