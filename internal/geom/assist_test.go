package geom

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestMid(t *testing.T) {
	if got := Mid(Pt(-4, 2), Pt(10, 8)); got != Pt(3, 5) {
		t.Errorf("Mid = %v, want (3,5)", got)
	}
}

func TestPolarRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		p := Pt(rng.Float64()*2000-1000, rng.Float64()*2000-1000)
		if p == (Point{}) {
			continue
		}
		got := PolarToCartesian(CartesianToPolar(p))
		if !pointsNear(got, p, 1e-9) {
			t.Fatalf("round trip of %v = %v", p, got)
		}
	}
}

func TestRotatePoint(t *testing.T) {
	tests := []struct {
		name   string
		origin Point
		p      Point
		ccw    float64
		want   Point
	}{
		{"zero angle", Pt(1, 1), Pt(5, 1), 0, Pt(5, 1)},
		// +x turns toward -y (up on screen) for a counter-clockwise turn.
		{"quarter turn", Pt(0, 0), Pt(10, 0), math.Pi / 2, Pt(0, -10)},
		{"half turn about origin", Pt(2, 2), Pt(4, 2), math.Pi, Pt(0, 2)},
		{"clockwise", Pt(0, 0), Pt(10, 0), -math.Pi / 2, Pt(0, 10)},
		{"point on origin", Pt(3, 3), Pt(3, 3), 1.2, Pt(3, 3)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := RotatePoint(tc.origin, tc.p, tc.ccw)
			if !pointsNear(got, tc.want, tol) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestNormalVectorByAngle(t *testing.T) {
	v := NormalVectorByAngle(math.Pi / 3)
	if !scalar.EqualWithinAbs(v.Len(), 1, tol) {
		t.Errorf("len = %v", v.Len())
	}
	if !scalar.EqualWithinAbs(v.X, 0.5, tol) {
		t.Errorf("x = %v, want 0.5", v.X)
	}
}

func TestVector(t *testing.T) {
	a := Vector{X: 3, Y: 4}
	b := Vector{X: -4, Y: 3}

	if got := Dot(a, b); got != 0 {
		t.Errorf("Dot = %v", got)
	}
	if got := CrossLen(a, b); got != 25 {
		t.Errorf("CrossLen = %v, want 25", got)
	}
	if got := a.Scale(2); !scalar.EqualWithinAbs(got.X, 6, tol) || !scalar.EqualWithinAbs(got.Y, 8, tol) {
		t.Errorf("Scale = %v", got)
	}
	if got := a.Scale(-1); !scalar.EqualWithinAbs(got.X, -3, tol) || !scalar.EqualWithinAbs(got.Y, -4, tol) {
		t.Errorf("Scale(-1) = %v", got)
	}

	u, err := a.Normalize()
	if err != nil {
		t.Fatal(err)
	}
	if !scalar.EqualWithinAbs(u.X, 0.6, tol) || !scalar.EqualWithinAbs(u.Y, 0.8, tol) {
		t.Errorf("Normalize = %v", u)
	}
	if _, err := (Vector{}).Normalize(); !errors.Is(err, ErrZeroVector) {
		t.Errorf("Normalize(0) err = %v", err)
	}
}

func TestIsLineIntersection(t *testing.T) {
	tests := []struct {
		name           string
		p1, p2, q1, q2 Point
		want           bool
	}{
		{"cross", Pt(0, 0), Pt(10, 10), Pt(0, 10), Pt(10, 0), true},
		{"touching endpoint", Pt(0, 0), Pt(10, 0), Pt(10, 0), Pt(10, 10), true},
		{"apart", Pt(0, 0), Pt(1, 1), Pt(5, 0), Pt(6, -1), false},
		{"parallel", Pt(0, 0), Pt(10, 0), Pt(0, 1), Pt(10, 1), false},
		// Collinear overlap is reported as no intersection.
		{"collinear overlap", Pt(0, 0), Pt(10, 0), Pt(5, 0), Pt(15, 0), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsLineIntersection(tc.p1, tc.p2, tc.q1, tc.q2); got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestIsPointInRectangle(t *testing.T) {
	r := NewRectangle(Pt(50, 50), 100, 50)
	rot := r
	rot.Angle = math.Pi / 5

	tests := []struct {
		name string
		p    Point
		r    Rectangle
		want bool
	}{
		{"center", Pt(50, 50), r, true},
		{"interior", Pt(10, 30), r, true},
		{"top edge", Pt(30, 25), r, true},
		{"left edge", Pt(0, 60), r, true},
		{"outside", Pt(120, 50), r, false},
		{"outside on edge line", Pt(120, 25), r, false},
		{"rotated center", Pt(50, 50), rot, true},
		{"rotated edge midpoint", Mid(rot.LT(), rot.RT()), rot, true},
		{"rotated outside", Pt(0, 25), rot, false},
		{"degenerate", Pt(50, 50), NewRectangle(Pt(50, 50), 0, 0), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsPointInRectangle(tc.p, tc.r); got != tc.want {
				t.Errorf("IsPointInRectangle(%v, %v) = %v, want %v", tc.p, tc.r, got, tc.want)
			}
		})
	}
}

// The area tolerance is absolute, so the band of false positives just
// outside a border is wider for small rectangles than for large ones.
func TestIsPointInRectangleToleranceScale(t *testing.T) {
	tests := []struct {
		name string
		size float64
		gap  float64
		want bool
	}{
		{"unit rect, near miss", 1, 0.04, true},
		{"unit rect, clear miss", 1, 0.2, false},
		{"large rect, same near miss", 100, 0.04, false},
		{"large rect, tiny miss", 100, 0.0005, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := NewRectangle(Pt(0, 0), tc.size, tc.size)
			p := Pt(tc.size/2+tc.gap, 0)
			if got := IsPointInRectangle(p, r); got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}
