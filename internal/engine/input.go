package engine

import (
	"errors"
	"fmt"
)

var ErrUnknownInput = errors.New("unknown input kind")

// InputKind names a pointer or touch event.
type InputKind string

const (
	InputHover       InputKind = "hover"
	InputPointerDown InputKind = "pointerDown"
	InputPointerMove InputKind = "pointerMove"
	InputPointerUp   InputKind = "pointerUp"
	InputTouchStart  InputKind = "touchStart"
	InputTouchMove   InputKind = "touchMove"
	InputTouchEnd    InputKind = "touchEnd"
)

// Input is one device-space input event as sent by a remote frontend.
// DX and DY are only read for pointer moves.
type Input struct {
	Kind InputKind `json:"kind"`
	X    float64   `json:"x"`
	Y    float64   `json:"y"`
	DX   float64   `json:"dx,omitempty"`
	DY   float64   `json:"dy,omitempty"`
}

// Dispatch feeds in to the operator and returns the cursor to show.
func (e *Engine) Dispatch(in Input) (string, error) {
	switch in.Kind {
	case InputHover:
		return e.Hover(in.X, in.Y), nil
	case InputPointerDown:
		e.PointerDown(in.X, in.Y)
	case InputPointerMove:
		return e.PointerMove(in.X, in.Y, in.DX, in.DY), nil
	case InputPointerUp:
		e.PointerUp(in.X, in.Y)
	case InputTouchStart:
		e.TouchStart(in.X, in.Y)
	case InputTouchMove:
		e.TouchMove(in.X, in.Y)
	case InputTouchEnd:
		e.TouchEnd(in.X, in.Y)
	default:
		return "", fmt.Errorf("%q: %w", in.Kind, ErrUnknownInput)
	}
	return string(e.op.Cursor()), nil
}
