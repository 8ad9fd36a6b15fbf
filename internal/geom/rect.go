package geom

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Rectangle is an oriented rectangle given by its center, a size that may be
// negative (a flipped rectangle) and a counter-clockwise rotation about the
// center. Corners are derived on every read; nothing is cached.
type Rectangle struct {
	Location Point   `json:"location"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Angle    float64 `json:"angle"`
}

// NewRectangle returns an unrotated rectangle centered on location.
func NewRectangle(location Point, w, h float64) Rectangle {
	return Rectangle{Location: location, Width: w, Height: h}
}

func (r Rectangle) corner(sx, sy float64) Point {
	p := Point{X: r.Location.X + sx*r.Width*0.5, Y: r.Location.Y + sy*r.Height*0.5}
	return RotatePoint(r.Location, p, r.Angle)
}

// LT returns the left-top corner.
func (r Rectangle) LT() Point { return r.corner(-1, -1) }

// LD returns the left-down corner.
func (r Rectangle) LD() Point { return r.corner(-1, 1) }

// RT returns the right-top corner.
func (r Rectangle) RT() Point { return r.corner(1, -1) }

// RD returns the right-down corner.
func (r Rectangle) RD() Point { return r.corner(1, 1) }

// Corners returns the four corners in ring order: lt, ld, rd, rt.
func (r Rectangle) Corners() [4]Point {
	return [4]Point{r.LT(), r.LD(), r.RD(), r.RT()}
}

// Area returns the unsigned area.
func (r Rectangle) Area() float64 {
	return math.Abs(r.Width * r.Height)
}

// IsDegenerate reports whether the rectangle has zero area.
func (r Rectangle) IsDegenerate() bool {
	return r.Width == 0 || r.Height == 0
}

// Normalized returns r with non-negative width and height. The corner set is
// unchanged.
func (r Rectangle) Normalized() Rectangle {
	r.Width = math.Abs(r.Width)
	r.Height = math.Abs(r.Height)
	return r
}

// Contains reports whether p is inside or on the border of r.
func (r Rectangle) Contains(p Point) bool {
	return IsPointInRectangle(p, r)
}

func (r Rectangle) String() string {
	return fmt.Sprintf("rect{%v %.2fx%.2f @%.4f}", r.Location, r.Width, r.Height, r.Angle)
}

// Bound returns the axis-aligned rectangle enclosing points.
func Bound(points []Point) (Rectangle, error) {
	if len(points) < 2 {
		return Rectangle{}, fmt.Errorf("%w: got %d", ErrTooFewPoints, len(points))
	}

	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.X
		ys[i] = p.Y
	}

	minX, maxX := floats.Min(xs), floats.Max(xs)
	minY, maxY := floats.Min(ys), floats.Max(ys)
	w := maxX - minX
	h := maxY - minY
	return NewRectangle(Point{X: minX + w*0.5, Y: minY + h*0.5}, w, h), nil
}

// Union returns the axis-aligned rectangle enclosing every corner of rects.
func Union(rects []Rectangle) (Rectangle, error) {
	if len(rects) < 1 {
		return Rectangle{}, ErrNoRectangles
	}

	points := make([]Point, 0, len(rects)*4)
	for _, r := range rects {
		c := r.Corners()
		points = append(points, c[:]...)
	}
	return Bound(points)
}

// Intersects reports whether a and b overlap. The test is approximate: a
// corner of one lying in the other, or the lt-rd diagonals crossing.
// Degenerate rectangles never intersect.
func Intersects(a, b Rectangle) bool {
	if a.IsDegenerate() || b.IsDegenerate() {
		return false
	}

	for _, c := range a.Corners() {
		if IsPointInRectangle(c, b) {
			return true
		}
	}
	for _, c := range b.Corners() {
		if IsPointInRectangle(c, a) {
			return true
		}
	}

	return IsLineIntersection(a.LT(), a.RD(), b.LT(), b.RD())
}
