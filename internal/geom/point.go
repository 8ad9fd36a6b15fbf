package geom

import (
	"fmt"
	"math"
)

// Point is a location in world or device space. Which space is decided by the
// caller; the type does not carry it.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// VectorTo returns the vector from p to other.
func (p Point) VectorTo(other Point) Vector {
	return Vector{X: other.X - p.X, Y: other.Y - p.Y}
}

// Translate returns p moved by v.
func (p Point) Translate(v Vector) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Transform applies an affine matrix to p.
func (p Point) Transform(m Matrix) Point {
	x, y := m.TransformPoint(p.X, p.Y)
	return Point{X: x, Y: y}
}

// Distance returns the euclidean distance between p and other.
func (p Point) Distance(other Point) float64 {
	return math.Hypot(other.X-p.X, other.Y-p.Y)
}

func (p Point) String() string {
	return fmt.Sprintf("(%.2f,%.2f)", p.X, p.Y)
}

// Vector is a displacement or a direction.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Dot returns the dot product of a and b.
func Dot(a, b Vector) float64 {
	return a.X*b.X + a.Y*b.Y
}

// CrossLen returns the magnitude of the 2D cross product of a and b, which is
// twice the area of the triangle they span.
func CrossLen(a, b Vector) float64 {
	return math.Abs(a.X*b.Y - a.Y*b.X)
}

// Len returns the length of v.
func (v Vector) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Scale returns v with its length multiplied by times. A negative factor
// flips the direction.
func (v Vector) Scale(times float64) Vector {
	polar := CartesianToPolar(Point(v))
	polar.Length *= times
	return Vector(PolarToCartesian(polar))
}

// Normalize returns the unit vector pointing along v.
func (v Vector) Normalize() (Vector, error) {
	l := v.Len()
	if l == 0 {
		return Vector{}, ErrZeroVector
	}
	return Vector{X: v.X / l, Y: v.Y / l}, nil
}

// PolarCoord is a vector in polar form relative to an implicit origin.
// Angle is in radians, counter-clockwise from +x.
type PolarCoord struct {
	Angle  float64
	Length float64
}

// CartesianToPolar converts p, taken relative to the origin, to polar form.
func CartesianToPolar(p Point) PolarCoord {
	return PolarCoord{
		Angle:  math.Atan2(p.Y, p.X),
		Length: math.Hypot(p.X, p.Y),
	}
}

// PolarToCartesian converts a polar coordinate back to a point.
func PolarToCartesian(c PolarCoord) Point {
	sin, cos := math.Sincos(c.Angle)
	return Point{X: cos * c.Length, Y: sin * c.Length}
}
