// Package transform maps an entity's world coordinates to device (screen)
// coordinates and provides the pivot-preserving zoom and rotate operators
// used by the editor.
package transform

import (
	"math"

	"github.com/inamate/inamate/editor-go/internal/geom"
)

const twoPi = 2 * math.Pi

// Coord is the world to device transform owned by one entity.
//
// Scale is stored as world-to-device length ratios along the entity's primary
// and secondary axes (device length = world length / len). The axes are x
// and y when the angle is zero. The base point is both the translation
// origin and the pivot of rotation.
type Coord struct {
	lenX  float64
	lenY  float64
	angle float64 // counter-clockwise, radians, in [0, 2π)
	base  geom.Point
}

// New returns a transform with a uniform scale, no rotation and its base at
// the world origin.
func New(scale float64) *Coord {
	return &Coord{
		lenX: 1 / scale,
		lenY: 1 / scale,
	}
}

// Base returns the base point.
func (c *Coord) Base() geom.Point { return c.base }

// SetBase moves the base point without touching scale or rotation.
func (c *Coord) SetBase(p geom.Point) { c.base = p }

// LenX returns the world-to-device length ratio of the primary axis.
func (c *Coord) LenX() float64 { return c.lenX }

// LenY returns the world-to-device length ratio of the secondary axis.
func (c *Coord) LenY() float64 { return c.lenY }

// ScaleX returns the device length of one world unit on the primary axis.
func (c *Coord) ScaleX() float64 { return 1 / c.lenX }

// ScaleY returns the device length of one world unit on the secondary axis.
func (c *Coord) ScaleY() float64 { return 1 / c.lenY }

// Angle returns the counter-clockwise rotation in [0, 2π).
func (c *Coord) Angle() float64 { return c.angle }

// WorldToDevice maps a world point to device space.
func (c *Coord) WorldToDevice(p geom.Point) geom.Point {
	dx := p.X / c.lenX
	dy := p.Y / c.lenY

	// Device Y points down, so the counter-clockwise angle is subtracted.
	sin, cos := math.Sincos(c.angle)
	return geom.Point{
		X: c.base.X + dx*cos + dy*sin,
		Y: c.base.Y - dx*sin + dy*cos,
	}
}

// Matrix returns the world to device map as an affine matrix, for renderers
// that set it as their current transform.
func (c *Coord) Matrix() geom.Matrix {
	return geom.Compose(
		geom.Scale(1/c.lenX, 1/c.lenY),
		geom.Rotate(-c.angle),
		geom.Translate(c.base.X, c.base.Y),
	)
}

// Displace translates the base point by v.
func (c *Coord) Displace(v geom.Vector) {
	c.base = c.base.Translate(v)
}

// Zoom scales both axes by scale about the device point origin, which keeps
// its device position. scale must be non-zero.
func (c *Coord) Zoom(origin geom.Point, scale float64) {
	c.zoom(origin, scale, scale)
}

// ZoomX scales the primary axis only.
func (c *Coord) ZoomX(origin geom.Point, scale float64) {
	c.zoom(origin, scale, 1)
}

// ZoomY scales the secondary axis only.
func (c *Coord) ZoomY(origin geom.Point, scale float64) {
	c.zoom(origin, 1, scale)
}

func (c *Coord) zoom(origin geom.Point, sx, sy float64) {
	c.lenX /= sx
	c.lenY /= sy

	// Scale along the entity's own axes: undo the rotation about the pivot,
	// scale, and turn back.
	m := geom.Compose(
		geom.Translate(-origin.X, -origin.Y),
		geom.Rotate(c.angle),
		geom.Scale(sx, sy),
		geom.Rotate(-c.angle),
		geom.Translate(origin.X, origin.Y),
	)
	c.base = c.base.Transform(m)
}

// RotateAnticlockwise turns the transform about its base point.
func (c *Coord) RotateAnticlockwise(angle float64) {
	a := math.Mod(c.angle+angle, twoPi)
	if a < 0 {
		a += twoPi
	}
	if a >= twoPi {
		a = 0
	}
	c.angle = a
}
