package picker

import (
	"github.com/jmylchreest/huewheel/internal/widget"
)

// DragState is the pointer state of the picker.
type DragState int

const (
	// Idle means no drag is in progress.
	Idle DragState = iota
	// DraggingHue means the pointer went down on the ring.
	DraggingHue
	// DraggingInner means the pointer went down inside the ring.
	DraggingInner
)

// String returns the string representation of a DragState.
func (d DragState) String() string {
	switch d {
	case Idle:
		return "idle"
	case DraggingHue:
		return "dragging-hue"
	case DraggingInner:
		return "dragging-inner"
	default:
		return "unknown"
	}
}

// ListensForMove reports whether pointer moves change anything in this state. Hosts use it to
// decide whether to track the pointer outside the widget.
func (d DragState) ListensForMove() bool {
	return d == DraggingHue || d == DraggingInner
}

// Event is an input to the picker.
type Event interface {
	isEvent()
}

// PointerDown is a press at widget pixel coordinates.
type PointerDown struct{ X, Y float64 }

// PointerMove is a pointer motion. Hosts deliver it wherever the pointer is, not only over the
// widget.
type PointerMove struct{ X, Y float64 }

// PointerUp is a release anywhere on screen.
type PointerUp struct{}

// HexInput is the full content of the hex field after an edit.
type HexInput struct{ Text string }

// RGBInput is the full content of the "r, g, b" field after an edit.
type RGBInput struct{ Text string }

// ModeSwitch selects another colour model.
type ModeSwitch struct{ Mode widget.Mode }

// ExternalColor replaces the colour from outside the picker, for example when the host selects
// another object.
type ExternalColor struct{ Hex string }

// SwatchSelect picks a colour from the static swatch grid.
type SwatchSelect struct{ Index int }

func (PointerDown) isEvent()   {}
func (PointerMove) isEvent()   {}
func (PointerUp) isEvent()     {}
func (HexInput) isEvent()      {}
func (RGBInput) isEvent()      {}
func (ModeSwitch) isEvent()    {}
func (ExternalColor) isEvent() {}
func (SwatchSelect) isEvent()  {}
