package geom

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

const (
	// AreaTolerance is the absolute slack of the area-sum containment test.
	// It does not scale with the rectangle.
	AreaTolerance = 0.1

	edgeTolerance = 1e-9
)

// Mid returns the midpoint of p1 and p2.
func Mid(p1, p2 Point) Point {
	return Point{X: 0.5 * (p1.X + p2.X), Y: 0.5 * (p1.Y + p2.Y)}
}

// RotatePoint rotates p about origin by ccw radians. Device Y grows
// downward, so a counter-clockwise turn on screen is a subtraction of the
// polar angle.
func RotatePoint(origin, p Point, ccw float64) Point {
	polar := CartesianToPolar(Point{X: p.X - origin.X, Y: p.Y - origin.Y})
	polar.Angle -= ccw
	r := PolarToCartesian(polar)
	return Point{X: r.X + origin.X, Y: r.Y + origin.Y}
}

// NormalVectorByAngle returns the unit vector at angle.
func NormalVectorByAngle(angle float64) Vector {
	return Vector(PolarToCartesian(PolarCoord{Angle: angle, Length: 1}))
}

// IsPointInRectangle reports whether p lies on the border of rect or inside
// it. Borders are detected by the vectors to two adjacent corners pointing in
// opposite directions; the interior by the four corner triangles summing to
// the rectangle's area within AreaTolerance. Degenerate rectangles contain
// nothing.
func IsPointInRectangle(p Point, rect Rectangle) bool {
	if rect.IsDegenerate() {
		return false
	}

	lt, rt, ld, rd := rect.LT(), rect.RT(), rect.LD(), rect.RD()
	ltp := lt.VectorTo(p)
	rtp := rt.VectorTo(p)
	ldp := ld.VectorTo(p)
	rdp := rd.VectorTo(p)

	edges := [4][2]Vector{
		{ltp, rtp}, // top
		{ltp, ldp}, // left
		{ldp, rdp}, // bottom
		{rtp, rdp}, // right
	}
	for _, e := range edges {
		if antiParallel(e[0], e[1]) {
			return true
		}
	}

	area := (CrossLen(ltp, ldp) + CrossLen(ldp, rdp) + CrossLen(rdp, rtp) + CrossLen(ltp, rtp)) * 0.5
	return math.Abs(area-rect.Area()) < AreaTolerance
}

func antiParallel(a, b Vector) bool {
	ua, err := a.Normalize()
	if err != nil {
		return false
	}
	ub, err := b.Normalize()
	if err != nil {
		return false
	}
	return scalar.EqualWithinAbs(ua.X, -ub.X, edgeTolerance) &&
		scalar.EqualWithinAbs(ua.Y, -ub.Y, edgeTolerance)
}

// IsLineIntersection reports whether segment p1-p2 crosses segment q1-q2.
// Parallel segments are reported as not intersecting, even when they are
// collinear and overlap.
func IsLineIntersection(p1, p2, q1, q2 Point) bool {
	r := p1.VectorTo(p2)
	s := q1.VectorTo(q2)
	rxs := r.X*s.Y - s.X*r.Y
	if rxs == 0 {
		return false
	}

	qp := p1.VectorTo(q1)
	u := (qp.X*r.Y - r.X*qp.Y) / rxs
	t := (qp.X*s.Y - s.X*qp.Y) / rxs

	return u >= 0 && u <= 1 && t >= 0 && t <= 1
}
