package colour

import "math"

// Toe constants for the lightness-revised OKLab L.
const (
	toeK1 = 0.206
	toeK2 = 0.03
	toeK3 = (1 + toeK1) / (1 + toeK2)
)

// LinearToLMS maps linear sRGB to the OKLab LMS cone response.
var LinearToLMS = [3][3]float64{
	{0.4122214708, 0.5363325363, 0.0514459929},
	{0.2119034982, 0.6806995451, 0.1073969566},
	{0.0883024619, 0.2817188376, 0.6299787005},
}

// LMSToLinear is the inverse of LinearToLMS.
var LMSToLinear = [3][3]float64{
	{4.0767416621, -3.3077115913, 0.2309699292},
	{-1.2684380046, 2.6097574011, -0.3413193965},
	{-0.0041960863, -0.7034186147, 1.7076147010},
}

// LMSToLab maps cube-rooted LMS to OKLab (L, a, b).
var LMSToLab = [3][3]float64{
	{0.2104542553, 0.7936177850, -0.0040720468},
	{1.9779984951, -2.4285922050, 0.4505937099},
	{0.0259040371, 0.7827717662, -0.8086757660},
}

// LabToLMS is the inverse of LMSToLab, giving cube-rooted LMS from OKLab.
var LabToLMS = [3][3]float64{
	{1, 0.3963377774, 0.2158037573},
	{1, -0.1055613458, -0.0638541728},
	{1, -0.0894841775, -1.2914855480},
}

// LCh is a colour in OkLrCH: toe-mapped lightness Lr (0-1), chroma C and hue H in degrees.
type LCh struct {
	L float64 `json:"l"`
	C float64 `json:"c"`
	H float64 `json:"h"`
}

// SRGBToLinear applies the inverse sRGB transfer function to a channel in [0,1].
func SRGBToLinear(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// LinearToSRGB applies the sRGB transfer function to a linear channel.
func LinearToSRGB(c float64) float64 {
	if c <= 0.0031308 {
		return 12.92 * c
	}
	return 1.055*math.Pow(c, 1/2.4) - 0.055
}

// Toe maps OKLab lightness L to the perceptually revised Lr.
// Equal steps in Lr look equal near black, which raw L does not.
func Toe(l float64) float64 {
	d := toeK3*l - toeK1
	return (d + math.Sqrt(d*d+4*toeK2*toeK3*l)) / 2
}

// ToeInv maps Lr back to OKLab lightness L.
func ToeInv(lr float64) float64 {
	return lr * (lr + toeK1) / (toeK3 * (lr + toeK2))
}

// LinearRGBToOklab converts linear sRGB channels to OKLab.
func LinearRGBToOklab(r, g, b float64) (l, a, bb float64) {
	lms := mul(LinearToLMS, [3]float64{r, g, b})
	for i := range lms {
		lms[i] = math.Cbrt(lms[i])
	}
	lab := mul(LMSToLab, lms)
	return lab[0], lab[1], lab[2]
}

// OklabToLinearRGB converts OKLab to linear sRGB channels. The result is not clamped.
func OklabToLinearRGB(l, a, b float64) (r, g, bb float64) {
	lms := mul(LabToLMS, [3]float64{l, a, b})
	for i := range lms {
		lms[i] = lms[i] * lms[i] * lms[i]
	}
	rgb := mul(LMSToLinear, lms)
	return rgb[0], rgb[1], rgb[2]
}

// RGBToOklrch converts a colour to OkLrCH with hue in [0,360).
func RGBToOklrch(c Color) LCh {
	l, a, b := LinearRGBToOklab(
		SRGBToLinear(c.R/255),
		SRGBToLinear(c.G/255),
		SRGBToLinear(c.B/255),
	)

	h := math.Mod(math.Atan2(b, a)/math.Pi/2+1, 1) * 360

	return LCh{L: Toe(l), C: math.Hypot(a, b), H: h}
}

// OklrchToRGB converts OkLrCH back to a colour. Out-of-gamut input yields channels outside
// [0,255]; callers clamp when committing.
func OklrchToRGB(lch LCh) Color {
	hr := lch.H * math.Pi / 180
	r, g, b := OklabToLinearRGB(ToeInv(lch.L), lch.C*math.Cos(hr), lch.C*math.Sin(hr))

	return Color{
		R: LinearToSRGB(r) * 255,
		G: LinearToSRGB(g) * 255,
		B: LinearToSRGB(b) * 255,
	}
}

func mul(m [3][3]float64, v [3]float64) [3]float64 {
	return [3]float64{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}
