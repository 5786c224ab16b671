// Package gamut locates the sRGB gamut boundary in OKLab for a fixed hue.
//
// All functions work on a normalised hue direction (a, b) with a*a+b*b == 1 and on raw OKLab
// lightness L unless stated otherwise. Refinements take exactly one Halley step and are not
// iterated to machine precision; reuse outside the picker needs a tolerance loop.
package gamut

import (
	"math"

	"github.com/jmylchreest/huewheel/internal/colour"
)

// Cusp is the point of maximum chroma for a hue, in raw-L space.
type Cusp struct {
	L float64 `json:"l"`
	C float64 `json:"c"`
}

// HueVector returns the unit OKLab direction for a hue in degrees.
func HueVector(hue float64) (a, b float64) {
	hr := hue * math.Pi / 180
	return math.Cos(hr), math.Sin(hr)
}

// lmsRates returns the rate of change of cube-rooted LMS per unit of chroma along (a, b).
func lmsRates(a, b float64) (kl, km, ks float64) {
	m := colour.LabToLMS
	return m[0][1]*a + m[0][2]*b, m[1][1]*a + m[1][2]*b, m[2][1]*a + m[2][2]*b
}

// MaxSaturation returns the largest S = C/L for which (L=1, S*a, S*b) stays inside the unit RGB
// cube. The initial estimate is a polynomial fitted per clipping channel.
func MaxSaturation(a, b float64) float64 {
	var k0, k1, k2, k3, k4 float64
	var w [3]float64

	switch {
	case -1.88170328*a-0.80936493*b > 1:
		// Red clips first.
		k0, k1, k2, k3, k4 = 1.19086277, 1.76576728, 0.59662641, 0.75515197, 0.56771245
		w = colour.LMSToLinear[0]
	case 1.81444104*a-1.19445276*b > 1:
		// Green clips first.
		k0, k1, k2, k3, k4 = 0.73956515, -0.45954404, 0.08285427, 0.12541070, 0.14503204
		w = colour.LMSToLinear[1]
	default:
		k0, k1, k2, k3, k4 = 1.35733652, -0.00915799, -1.15130210, -0.50559606, 0.00692167
		w = colour.LMSToLinear[2]
	}

	sat := k0 + k1*a + k2*b + k3*a*a + k4*a*b

	kl, km, ks := lmsRates(a, b)

	l_ := 1 + sat*kl
	m_ := 1 + sat*km
	s_ := 1 + sat*ks

	l := l_ * l_ * l_
	m := m_ * m_ * m_
	s := s_ * s_ * s_

	lds := 3 * kl * l_ * l_
	mds := 3 * km * m_ * m_
	sds := 3 * ks * s_ * s_

	lds2 := 6 * kl * kl * l_
	mds2 := 6 * km * km * m_
	sds2 := 6 * ks * ks * s_

	f := w[0]*l + w[1]*m + w[2]*s
	f1 := w[0]*lds + w[1]*mds + w[2]*sds
	f2 := w[0]*lds2 + w[1]*mds2 + w[2]*sds2

	return sat - f*f1/(f1*f1-0.5*f*f2)
}

// FindCusp returns the cusp of the gamut for the hue direction (a, b).
func FindCusp(a, b float64) Cusp {
	sCusp := MaxSaturation(a, b)

	r, g, bl := colour.OklabToLinearRGB(1, sCusp*a, sCusp*b)
	lCusp := math.Cbrt(1 / math.Max(r, math.Max(g, bl)))

	return Cusp{L: lCusp, C: lCusp * sCusp}
}

// Intersection returns the t in [0,1] at which the ray
//
//	L = l0*(1-t) + t*l1
//	C = t*c1
//
// leaves the gamut. Below the cusp the boundary is a straight line and t is exact; above it a
// triangle estimate is refined by one Halley step per RGB channel and the smallest positive
// correction wins.
func Intersection(a, b float64, cusp Cusp, l1, c1, l0 float64) float64 {
	if (l1-l0)*cusp.C-(cusp.L-l0)*c1 <= 0 {
		return cusp.C * l0 / (c1*cusp.L + cusp.C*(l0-l1))
	}

	t := cusp.C * (l0 - 1) / (c1*(cusp.L-1) + cusp.C*(l0-l1))

	dl := l1 - l0
	dc := c1

	kl, km, ks := lmsRates(a, b)

	ldt := dl + dc*kl
	mdt := dl + dc*km
	sdt := dl + dc*ks

	lum := l0*(1-t) + t*l1
	chr := t * c1

	l_ := lum + chr*kl
	m_ := lum + chr*km
	s_ := lum + chr*ks

	l := l_ * l_ * l_
	m := m_ * m_ * m_
	s := s_ * s_ * s_

	l1d := 3 * ldt * l_ * l_
	m1d := 3 * mdt * m_ * m_
	s1d := 3 * sdt * s_ * s_

	l2d := 6 * ldt * ldt * l_
	m2d := 6 * mdt * mdt * m_
	s2d := 6 * sdt * sdt * s_

	step := math.MaxFloat64
	for _, w := range colour.LMSToLinear {
		f := w[0]*l + w[1]*m + w[2]*s - 1
		f1 := w[0]*l1d + w[1]*m1d + w[2]*s1d
		f2 := w[0]*l2d + w[1]*m2d + w[2]*s2d

		u := f1 / (f1*f1 - 0.5*f*f2)
		if u >= 0 {
			step = math.Min(step, -f*u)
		}
	}

	if step == math.MaxFloat64 {
		return t
	}
	return t + step
}

// MaxChroma returns how far chroma can extend at lightness lr (toe-mapped) for the hue before
// leaving the gamut. It is 0 at black and white and never negative.
func MaxChroma(lr, hue float64, cusp Cusp) float64 {
	l := colour.ToeInv(lr)
	if l <= 0 || l >= 1 || lr <= 0 || lr >= 1 {
		return 0
	}

	a, b := HueVector(hue)
	c := Intersection(a, b, cusp, l, 1, l)
	if math.IsNaN(c) || c < 0 {
		return 0
	}
	return c
}
