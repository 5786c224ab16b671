// Package picker is the interaction controller of the colour wheel. It owns the picker state and
// the pixel buffer, turns pointer, text and mode events into state transitions and reports
// committed colours through a synchronous callback.
//
// A Picker is not safe for concurrent use; hosts deliver events one at a time and each event is
// handled to completion, including the redraw, before Handle returns.
package picker

import (
	"fmt"
	"image"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/huewheel/internal/colour"
	"github.com/jmylchreest/huewheel/internal/widget"
)

// Default widget size.
const (
	DefaultWidth  = 200
	DefaultHeight = 150
)

// Options configures a Picker.
type Options struct {
	// Color is the initial colour as #RRGGBB. Malformed values start the picker at black.
	Color string
	// OnColorChange receives every committed colour as a clamped #RRGGBB string.
	OnColorChange func(hex string)
	Mode          widget.Mode
	// OnModeChange is called after a mode switch.
	OnModeChange func(widget.Mode)
	// Width and Height default to 200x150.
	Width, Height int
	Logger        hclog.Logger
}

// Picker is a colour wheel bound to a pixel buffer.
type Picker struct {
	onColorChange func(string)
	onModeChange  func(widget.Mode)
	logger        hclog.Logger

	geom   widget.Geometry
	state  State
	shape  *widget.OklchShape
	canvas *image.NRGBA
}

// New creates a picker showing opts.Color and renders its first frame.
func New(opts Options) (*Picker, error) {
	if opts.Width == 0 && opts.Height == 0 {
		opts.Width, opts.Height = DefaultWidth, DefaultHeight
	}
	if opts.Mode == "" {
		opts.Mode = widget.ModeHSV
	}
	if _, err := widget.ParseMode(string(opts.Mode)); err != nil {
		return nil, err
	}

	geom, err := widget.NewGeometry(opts.Width, opts.Height)
	if err != nil {
		return nil, fmt.Errorf("failed to lay out picker: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	c, ok := colour.ParseHex(opts.Color)
	if !ok {
		logger.Warn("invalid initial colour, using black", "color", opts.Color)
		c = colour.Black
	}

	p := &Picker{
		onColorChange: opts.OnColorChange,
		onModeChange:  opts.OnModeChange,
		logger:        logger,
		geom:          geom,
		canvas:        widget.NewCanvas(geom),
	}

	angle, inner := widget.PositionFromColor(geom, opts.Mode, c)
	p.state = State{
		Drag:     Idle,
		Mode:     opts.Mode,
		Color:    c,
		HueAngle: angle,
		Inner:    inner,
		HexText:  c.Hex(),
		RGBText:  c.RGBText(),
	}
	p.shape = shapeFor(geom, nil, opts.Mode, angle)
	p.render()

	logger.Debug("picker created", "color", c.Hex(), "mode", opts.Mode, "width", geom.Width, "height", geom.Height)
	return p, nil
}

// Handle applies one event. Callbacks run before Handle returns, after the buffer is redrawn.
func (p *Picker) Handle(ev Event) Transition {
	prev := p.state
	t := Step(p.geom, p.shape, p.state, ev)

	p.state = t.Next
	p.shape = t.Shape

	if prev.Drag != t.Next.Drag {
		p.logger.Trace("drag state changed", "from", prev.Drag, "to", t.Next.Drag)
	}
	p.logRejected(ev, t)

	if t.Redraw {
		p.render()
	}

	if t.ModeChanged {
		p.logger.Debug("mode switched", "from", prev.Mode, "to", t.Next.Mode)
		if p.onModeChange != nil {
			p.onModeChange(t.Next.Mode)
		}
	}

	if t.Commit {
		hex := t.Next.Color.Hex()
		p.logger.Debug("colour committed", "color", hex, "event", fmt.Sprintf("%T", ev))
		if p.onColorChange != nil {
			p.onColorChange(hex)
		}
	}

	return t
}

func (p *Picker) logRejected(ev Event, t Transition) {
	if !t.Rejected {
		return
	}
	switch ev := ev.(type) {
	case HexInput:
		p.logger.Trace("hex input not committed", "text", ev.Text)
	case RGBInput:
		p.logger.Trace("rgb input not committed", "text", ev.Text)
	case ExternalColor:
		p.logger.Warn("invalid external colour, using black", "color", ev.Hex)
	case SwatchSelect:
		p.logger.Warn("swatch index out of range", "index", ev.Index)
	}
}

func (p *Picker) render() {
	widget.Render(p.canvas, p.geom, p.state.Mode, p.state.HueAngle, p.state.Inner, p.shape)
}

// State returns a copy of the current state.
func (p *Picker) State() State {
	return p.state
}

// Color returns the committed colour as #RRGGBB.
func (p *Picker) Color() string {
	return p.state.Hex()
}

// Mode returns the current mode.
func (p *Picker) Mode() widget.Mode {
	return p.state.Mode
}

// ListensForMove reports whether pointer moves are currently tracked.
func (p *Picker) ListensForMove() bool {
	return p.state.Drag.ListensForMove()
}

// Image returns the pixel buffer. It is redrawn in place by Handle.
func (p *Picker) Image() *image.NRGBA {
	return p.canvas
}

// Geometry returns the layout of the picker.
func (p *Picker) Geometry() widget.Geometry {
	return p.geom
}

// Shape returns the OKLCH slice of the current hue, or nil outside OKLCH mode.
func (p *Picker) Shape() *widget.OklchShape {
	return p.shape
}
