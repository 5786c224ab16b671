package colour

// Luminance calculates the relative luminance of a colour according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func Luminance(c Color) float64 {
	c = c.Clamped()
	return 0.2126*SRGBToLinear(c.R/255) + 0.7152*SRGBToLinear(c.G/255) + 0.0722*SRGBToLinear(c.B/255)
}

// ContrastRatio calculates the contrast ratio between two colours according to WCAG 2.0.
// Returns a value between 1 and 21, where 21 is maximum contrast (black vs white).
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(c1, c2 Color) float64 {
	l1 := Luminance(c1)
	l2 := Luminance(c2)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// White is the lightest displayable colour.
var White = RGB(255, 255, 255)

// ReadableOn returns black or white, whichever contrasts more with bg.
func ReadableOn(bg Color) Color {
	if ContrastRatio(bg, Black) >= ContrastRatio(bg, White) {
		return Black
	}
	return White
}
