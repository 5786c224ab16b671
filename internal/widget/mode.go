package widget

import (
	"fmt"
	"slices"
	"strings"
)

// Mode selects the colour model the inner shape edits.
type Mode string

const (
	// ModeHSV edits saturation and value on a triangle.
	ModeHSV Mode = "hsv"
	// ModeHSL edits saturation and lightness on a diamond.
	ModeHSL Mode = "hsl"
	// ModeOKLCH edits chroma and toe-mapped lightness inside the sRGB gamut slice of the hue.
	ModeOKLCH Mode = "oklch"
)

// Modes returns the picker modes in display order.
func Modes() []Mode {
	return []Mode{ModeHSV, ModeHSL, ModeOKLCH}
}

// ParseMode converts a string to a Mode, ignoring case.
// "oklrch" is accepted as an alias of "oklch".
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	if m == "oklrch" {
		m = ModeOKLCH
	}
	if slices.Contains(Modes(), m) {
		return m, nil
	}
	return "", fmt.Errorf("invalid picker mode: %s (valid: hsv, hsl, oklch)", s)
}

// String returns the flag form of the mode.
func (m Mode) String() string {
	return string(m)
}

// Label returns the name shown on the mode buttons.
func (m Mode) Label() string {
	switch m {
	case ModeHSV:
		return "HSV"
	case ModeHSL:
		return "HSL"
	case ModeOKLCH:
		return "OkLrCH"
	default:
		return "unknown"
	}
}

// Set implements pflag.Value.
func (m *Mode) Set(s string) error {
	parsed, err := ParseMode(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Type implements pflag.Value.
func (m *Mode) Type() string {
	return "mode"
}
