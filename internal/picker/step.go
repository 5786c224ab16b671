package picker

import (
	"github.com/jmylchreest/huewheel/internal/colour"
	"github.com/jmylchreest/huewheel/internal/widget"
)

// State is everything the picker remembers between events.
type State struct {
	Drag DragState   `json:"drag"`
	Mode widget.Mode `json:"mode"`
	// Color is the committed colour, always quantized to whole channel values.
	Color    colour.Color `json:"color"`
	HueAngle float64      `json:"hue_angle"`
	Inner    widget.Point `json:"inner"`
	HexText  string       `json:"hex_text"`
	RGBText  string       `json:"rgb_text"`
}

// Hex returns the committed colour as #RRGGBB.
func (s State) Hex() string {
	return s.Color.Hex()
}

// Transition is the outcome of one event.
type Transition struct {
	Next State
	// Shape is the OKLCH slice for Next's hue, or nil outside OKLCH mode.
	Shape *widget.OklchShape
	// Commit is set when Next.Color differs from the previous colour and must be reported.
	Commit bool
	// ModeChanged is set when Next.Mode differs from the previous mode.
	ModeChanged bool
	// Redraw is set when a handle moved or the mode changed.
	Redraw bool
	// Rejected is set when the event carried text or an index that could not be applied.
	Rejected bool
}

// Step computes the state that follows ev. It does not modify s or sh; sh must be the OKLCH slice
// for s's hue, or nil, in which case it is rebuilt when needed.
func Step(g widget.Geometry, sh *widget.OklchShape, s State, ev Event) Transition {
	t := Transition{Next: s, Shape: shapeFor(g, sh, s.Mode, s.HueAngle)}

	switch ev := ev.(type) {
	case PointerDown:
		p := widget.Point{X: ev.X, Y: ev.Y}
		if g.InRing(p) {
			t.Next.Drag = DraggingHue
			t.moveHue(g, p)
		} else {
			t.Next.Drag = DraggingInner
			t.moveInner(g, p)
		}

	case PointerMove:
		p := widget.Point{X: ev.X, Y: ev.Y}
		switch s.Drag {
		case DraggingHue:
			t.moveHue(g, p)
		case DraggingInner:
			t.moveInner(g, p)
		}

	case PointerUp:
		t.Next.Drag = Idle

	case HexInput:
		t.Next.HexText = ev.Text
		c, ok := colour.ParseHex(ev.Text)
		if !ok {
			t.Rejected = true
			break
		}
		t.setColor(g, c)
		t.Next.RGBText = c.RGBText()

	case RGBInput:
		t.Next.RGBText = ev.Text
		c, ok := colour.ParseRGBText(ev.Text)
		if !ok {
			t.Rejected = true
			break
		}
		c = c.Quantized()
		t.setColor(g, c)
		t.Next.HexText = c.Hex()

	case ModeSwitch:
		if ev.Mode == s.Mode {
			break
		}
		t.Next.Mode = ev.Mode
		t.Next.Drag = Idle
		t.ModeChanged = true
		t.place(g, s.Color)

	case ExternalColor:
		c, ok := colour.ParseHex(ev.Hex)
		if !ok {
			c = colour.Black
			t.Rejected = true
		}
		t.Next.Color = c
		t.Next.HexText = c.Hex()
		t.Next.RGBText = c.RGBText()
		t.place(g, c)

	case SwatchSelect:
		c, ok := colour.Swatch(ev.Index)
		if !ok {
			t.Rejected = true
			break
		}
		t.setColor(g, c)
		t.Next.HexText = c.Hex()
		t.Next.RGBText = c.RGBText()
	}

	return t
}

// moveHue turns the ring handle towards p. In OKLCH mode the inner handle is pulled back inside
// the new hue's gamut slice.
func (t *Transition) moveHue(g widget.Geometry, p widget.Point) {
	t.Next.HueAngle = g.AngleAt(p)
	t.Shape = shapeFor(g, t.Shape, t.Next.Mode, t.Next.HueAngle)
	if t.Next.Mode == widget.ModeOKLCH {
		t.Next.Inner = widget.ClampOnHueChange(t.Next.Inner, t.Shape)
	}
	t.derive(g)
}

// moveInner puts the inner handle at p, clamped to the shape.
func (t *Transition) moveInner(g widget.Geometry, p widget.Point) {
	t.Next.Inner = widget.Clamp(g, t.Next.Mode, p, t.Shape)
	t.derive(g)
}

// derive recomputes the colour and both text fields from the handles.
func (t *Transition) derive(g widget.Geometry) {
	c := widget.ColorAt(g, t.Next.Mode, t.Next.HueAngle, t.Next.Inner).Quantized()
	t.Next.HexText = c.Hex()
	t.Next.RGBText = c.RGBText()
	t.setCommitted(c)
	t.Redraw = true
}

// setColor commits c and moves both handles to it.
func (t *Transition) setColor(g widget.Geometry, c colour.Color) {
	t.setCommitted(c)
	t.place(g, c)
}

func (t *Transition) setCommitted(c colour.Color) {
	if c.Hex() != t.Next.Color.Hex() {
		t.Commit = true
	}
	t.Next.Color = c
}

// place moves both handles to where c sits in the current mode. Achromatic colours have no hue,
// so the ring handle stays put for them.
func (t *Transition) place(g widget.Geometry, c colour.Color) {
	angle, p := widget.PositionFromColor(g, t.Next.Mode, c)
	if achromatic(c) {
		angle = t.Next.HueAngle
	}
	t.Next.HueAngle = angle
	t.Next.Inner = p
	t.Shape = shapeFor(g, t.Shape, t.Next.Mode, angle)
	t.Redraw = true
}

func achromatic(c colour.Color) bool {
	r, g, b := c.Bytes()
	return r == g && g == b
}

// shapeFor returns sh when it matches the hue of angle, a fresh slice when it does not, and nil
// outside OKLCH mode.
func shapeFor(g widget.Geometry, sh *widget.OklchShape, m widget.Mode, angle float64) *widget.OklchShape {
	if m != widget.ModeOKLCH {
		return nil
	}
	if sh != nil && sh.Hue == widget.HueFromAngle(angle) && sh.Geometry == g {
		return sh
	}
	return widget.NewOklchShape(g, angle)
}
