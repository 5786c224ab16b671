package picker

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jmylchreest/huewheel/internal/widget"
)

// ParseEvent reads one event from a script line. Verbs are case-insensitive:
//
//	down X Y | move X Y | up
//	hex TEXT | rgb TEXT | color HEX
//	mode hsv|hsl|oklch | swatch N
//
// The text of hex and rgb is taken verbatim after the verb, so "rgb 1, 2, 3" works.
func ParseEvent(line string) (Event, error) {
	line = strings.TrimSpace(line)
	verb, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch strings.ToLower(verb) {
	case "down", "move":
		x, y, err := parsePoint(rest)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", verb, err)
		}
		if strings.EqualFold(verb, "down") {
			return PointerDown{X: x, Y: y}, nil
		}
		return PointerMove{X: x, Y: y}, nil
	case "up":
		return PointerUp{}, nil
	case "hex":
		return HexInput{Text: rest}, nil
	case "rgb":
		return RGBInput{Text: rest}, nil
	case "color", "colour":
		return ExternalColor{Hex: rest}, nil
	case "mode":
		m, err := widget.ParseMode(rest)
		if err != nil {
			return nil, err
		}
		return ModeSwitch{Mode: m}, nil
	case "swatch":
		i, err := strconv.Atoi(rest)
		if err != nil {
			return nil, fmt.Errorf("swatch: invalid index %q", rest)
		}
		return SwatchSelect{Index: i}, nil
	default:
		return nil, fmt.Errorf("unknown event %q", verb)
	}
}

func parsePoint(s string) (x, y float64, err error) {
	f := strings.Fields(s)
	if len(f) != 2 {
		return 0, 0, fmt.Errorf("want two coordinates, got %q", s)
	}
	if x, err = strconv.ParseFloat(f[0], 64); err != nil {
		return 0, 0, fmt.Errorf("invalid x: %w", err)
	}
	if y, err = strconv.ParseFloat(f[1], 64); err != nil {
		return 0, 0, fmt.Errorf("invalid y: %w", err)
	}
	return x, y, nil
}

// ReadScript parses every event in r. Blank lines and lines starting with # are skipped; errors
// carry the 1-based line number.
func ReadScript(r io.Reader) ([]Event, error) {
	var events []Event
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ev, err := ParseEvent(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		events = append(events, ev)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return events, nil
}
