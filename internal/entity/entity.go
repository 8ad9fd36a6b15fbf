// Package entity defines the items an editor scene is made of. Every variant
// carries a Base (transform, selection state, lock flags, controls) and
// describes its own world-space geometry; the shared bound and handle
// geometry is derived from that in handle.go.
package entity

import (
	"errors"

	"github.com/inamate/inamate/editor-go/internal/geom"
	"github.com/inamate/inamate/editor-go/internal/transform"
)

var (
	ErrTooFewVertices  = errors.New("poly shape needs at least 3 vertices")
	ErrEmptyCollection = errors.New("collection needs at least one entity")
	ErrNotSupported    = errors.New("operation not supported by this entity")
	ErrUnknownAnchor   = errors.New("unknown control anchor")
)

// Kind names an entity variant.
type Kind string

const (
	KindImage      Kind = "image"
	KindPolyShape  Kind = "polyShape"
	KindCircle     Kind = "circle"
	KindCollection Kind = "collection"
)

// ControlStyle is how resize and rotate handles are drawn.
type ControlStyle string

const (
	ControlStyleRectangle ControlStyle = "rectangle"
	ControlStyleCircle    ControlStyle = "circle"
)

// Defaults applied by the variant constructors.
const (
	DefaultControlSize           = 20.0
	DefaultRotateControlDistance = 40.0
	DefaultBorderColor           = "#007acc"
	DefaultBorderWidth           = 2.0
)

// Entity is implemented by Image, PolyShape, Circle and Collection.
type Entity interface {
	// Attrs returns the state shared by all variants.
	Attrs() *Base
	Kind() Kind
	// BoundWorld is the entity's bounding rectangle in its local world
	// frame, before the transform is applied.
	BoundWorld() geom.Rectangle
	// SetRotateOrigin re-bases the local geometry so that origin becomes the
	// transform's pivot without moving the entity on screen.
	SetRotateOrigin(origin geom.Point) error
}

// Base holds editor state common to every entity.
type Base struct {
	ID string

	Active           bool
	Visible          bool
	DrawControlPoint bool
	DrawControls     bool

	XLocked      bool
	YLocked      bool
	DiagLocked   bool
	RotateLocked bool

	ControlStyle          ControlStyle
	ControlSize           float64
	RotateControlDistance float64
	BorderColor           string
	BorderWidth           float64

	Controls []*Control

	coord *transform.Coord
}

func newBase(id string) Base {
	return Base{
		ID:                    id,
		Visible:               true,
		DrawControlPoint:      true,
		DrawControls:          true,
		ControlStyle:          ControlStyleCircle,
		ControlSize:           DefaultControlSize,
		RotateControlDistance: DefaultRotateControlDistance,
		BorderColor:           DefaultBorderColor,
		BorderWidth:           DefaultBorderWidth,
		coord:                 transform.New(1),
	}
}

func (b *Base) Attrs() *Base { return b }

// Transform returns the entity's world to device transform. Callers change it
// only through its methods.
func (b *Base) Transform() *transform.Coord { return b.coord }

// AddControl attaches a custom control to the entity.
func (b *Base) AddControl(c *Control) {
	b.Controls = append(b.Controls, c)
}

// Displace moves the entity by v in device space.
func (b *Base) Displace(v geom.Vector) { b.coord.Displace(v) }

// Zoom scales the entity about a device point.
func (b *Base) Zoom(origin geom.Point, scale float64) { b.coord.Zoom(origin, scale) }

// ZoomX scales the entity's primary axis about a device point.
func (b *Base) ZoomX(origin geom.Point, scale float64) { b.coord.ZoomX(origin, scale) }

// ZoomY scales the entity's secondary axis about a device point.
func (b *Base) ZoomY(origin geom.Point, scale float64) { b.coord.ZoomY(origin, scale) }

// RotateAnticlockwise turns the entity about its rotate origin.
func (b *Base) RotateAnticlockwise(angle float64) { b.coord.RotateAnticlockwise(angle) }

// RotateOrigin returns the transform pivot in device space.
func (b *Base) RotateOrigin() geom.Point { return b.coord.Base() }

// ShapeStyle is the stroke and fill of vector shapes.
type ShapeStyle struct {
	Stroke    string
	Fill      string
	LineWidth float64
	Filled    bool
}

func defaultShapeStyle() ShapeStyle {
	return ShapeStyle{
		Stroke:    "red",
		Fill:      "red",
		LineWidth: 1,
	}
}
