package entity

import (
	"fmt"
	"math"

	"github.com/inamate/inamate/editor-go/internal/geom"
	"github.com/inamate/inamate/editor-go/internal/typeid"
)

// Anchor is the point of the owner's device bound a control is placed from.
type Anchor int

const (
	AnchorCenter Anchor = iota
	AnchorLT
	AnchorLM
	AnchorLD
	AnchorMD
	AnchorRD
	AnchorRM
	AnchorRT
	AnchorMT
)

var anchorNames = [...]string{"center", "LT", "LM", "LD", "MD", "RD", "RM", "RT", "MT"}

func (a Anchor) String() string {
	if a < 0 || int(a) >= len(anchorNames) {
		return fmt.Sprintf("Anchor(%d)", int(a))
	}
	return anchorNames[a]
}

// ParseAnchor returns the anchor named s. The empty string is the center.
func ParseAnchor(s string) (Anchor, error) {
	if s == "" {
		return AnchorCenter, nil
	}
	for i, name := range anchorNames {
		if name == s {
			return Anchor(i), nil
		}
	}
	return AnchorCenter, fmt.Errorf("anchor %q: %w", s, ErrUnknownAnchor)
}

// Control is a custom button attached to an entity. The editor only hit-tests
// controls and forwards events to their callbacks; what a control does is up
// to whoever registered it.
type Control struct {
	ID string

	Anchor Anchor
	// OffsetX and OffsetY move the control's left-top corner away from the
	// anchor along the owner's primary and secondary axes.
	OffsetX float64
	OffsetY float64

	Width  float64
	Height float64

	// Cursor is requested while the pointer hovers the control.
	Cursor string
	// Source is an image the renderer draws for the control, if any.
	Source string

	OnDown       func(p geom.Point)
	OnMove       func(p geom.Point)
	OnUp         func(p geom.Point)
	OnTouchStart func(p geom.Point)
	OnTouchEnd   func(p geom.Point)
}

// NewControl returns a control of the given size with no callbacks.
func NewControl(anchor Anchor, offsetX, offsetY, width, height float64) *Control {
	return &Control{
		ID:      typeid.NewControlID(),
		Anchor:  anchor,
		OffsetX: offsetX,
		OffsetY: offsetY,
		Width:   width,
		Height:  height,
		Cursor:  "pointer",
	}
}

// LeftTop returns the device position of the control's left-top corner for
// an owner whose device bound is owner.
func (c *Control) LeftTop(owner geom.Rectangle) geom.Point {
	var p geom.Point
	switch c.Anchor {
	case AnchorLT:
		p = owner.LT()
	case AnchorLM:
		p = geom.Mid(owner.LT(), owner.LD())
	case AnchorLD:
		p = owner.LD()
	case AnchorMD:
		p = geom.Mid(owner.LD(), owner.RD())
	case AnchorRD:
		p = owner.RD()
	case AnchorRM:
		p = geom.Mid(owner.RD(), owner.RT())
	case AnchorRT:
		p = owner.RT()
	case AnchorMT:
		p = geom.Mid(owner.LT(), owner.RT())
	default:
		p = owner.Location
	}

	return p.
		Translate(geom.NormalVectorByAngle(-owner.Angle).Scale(c.OffsetX)).
		Translate(geom.NormalVectorByAngle(-owner.Angle + 0.5*math.Pi).Scale(c.OffsetY))
}

// Bound returns the control's device rectangle. It turns with the owner.
func (c *Control) Bound(owner geom.Rectangle) geom.Rectangle {
	center := c.LeftTop(owner).
		Translate(geom.NormalVectorByAngle(-owner.Angle).Scale(0.5 * c.Width)).
		Translate(geom.NormalVectorByAngle(-owner.Angle + 0.5*math.Pi).Scale(0.5 * c.Height))

	r := geom.NewRectangle(center, c.Width, c.Height)
	r.Angle = owner.Angle
	return r
}

func (c *Control) Down(p geom.Point) {
	if c.OnDown != nil {
		c.OnDown(p)
	}
}

func (c *Control) Move(p geom.Point) {
	if c.OnMove != nil {
		c.OnMove(p)
	}
}

func (c *Control) Up(p geom.Point) {
	if c.OnUp != nil {
		c.OnUp(p)
	}
}

func (c *Control) TouchStart(p geom.Point) {
	if c.OnTouchStart != nil {
		c.OnTouchStart(p)
	}
}

func (c *Control) TouchEnd(p geom.Point) {
	if c.OnTouchEnd != nil {
		c.OnTouchEnd(p)
	}
}
