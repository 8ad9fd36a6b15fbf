package entity

import (
	"fmt"

	"github.com/inamate/inamate/editor-go/internal/geom"
	"github.com/inamate/inamate/editor-go/internal/typeid"
)

// PolyShape is a polyline or polygon.
type PolyShape struct {
	Base
	ShapeStyle

	Closed bool

	vertices []geom.Point
}

// NewPolyShape builds a shape from at least three vertices and pivots it on
// the center of their bounding box. The slice is copied.
func NewPolyShape(vertices []geom.Point, closed bool) (*PolyShape, error) {
	if len(vertices) < 3 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewVertices, len(vertices))
	}

	s := &PolyShape{
		Base:       newBase(typeid.NewEntityID()),
		ShapeStyle: defaultShapeStyle(),
		Closed:     closed,
		vertices:   append([]geom.Point(nil), vertices...),
	}
	b := s.BoundWorld()
	s.SetRotateOrigin(geom.Mid(b.LT(), b.RD()))
	return s, nil
}

func (s *PolyShape) Kind() Kind { return KindPolyShape }

// Vertices returns a copy of the vertices in the local frame.
func (s *PolyShape) Vertices() []geom.Point {
	return append([]geom.Point(nil), s.vertices...)
}

// DeviceVertices returns the vertices mapped to device space.
func (s *PolyShape) DeviceVertices() []geom.Point {
	out := make([]geom.Point, len(s.vertices))
	for i, v := range s.vertices {
		out[i] = s.coord.WorldToDevice(v)
	}
	return out
}

func (s *PolyShape) BoundWorld() geom.Rectangle {
	// The vertex count is checked by NewPolyShape, so Bound cannot fail.
	r, _ := geom.Bound(s.vertices)
	return r
}

func (s *PolyShape) SetRotateOrigin(origin geom.Point) error {
	for i, v := range s.vertices {
		s.vertices[i] = geom.Pt(v.X-origin.X, v.Y-origin.Y)
	}
	s.coord.SetBase(origin)
	return nil
}

// Circle is a circle or an axis-aligned (in its local frame) ellipse.
type Circle struct {
	Base
	ShapeStyle

	RadiusX float64
	RadiusY float64

	center geom.Point
}

// NewCircle builds an ellipse. A zero radiusY makes it a circle of radiusX.
func NewCircle(center geom.Point, radiusX, radiusY float64) *Circle {
	if radiusY == 0 {
		radiusY = radiusX
	}

	c := &Circle{
		Base:       newBase(typeid.NewEntityID()),
		ShapeStyle: defaultShapeStyle(),
		RadiusX:    radiusX,
		RadiusY:    radiusY,
		center:     center,
	}
	b := c.BoundWorld()
	c.SetRotateOrigin(geom.Mid(b.LT(), b.RD()))
	return c
}

func (c *Circle) Kind() Kind { return KindCircle }

// Center returns the center in the local frame.
func (c *Circle) Center() geom.Point { return c.center }

func (c *Circle) BoundWorld() geom.Rectangle {
	return geom.NewRectangle(c.center, 2*c.RadiusX, 2*c.RadiusY)
}

func (c *Circle) SetRotateOrigin(origin geom.Point) error {
	c.center = geom.Pt(c.center.X-origin.X, c.center.Y-origin.Y)
	c.coord.SetBase(origin)
	return nil
}
