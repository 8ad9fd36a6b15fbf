package geom

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

const tol = 1e-9

func pointsNear(a, b Point, eps float64) bool {
	return scalar.EqualWithinAbs(a.X, b.X, eps) && scalar.EqualWithinAbs(a.Y, b.Y, eps)
}

func TestRectangleCorners(t *testing.T) {
	r := NewRectangle(Pt(50, 50), 100, 50)

	tests := []struct {
		name string
		got  Point
		want Point
	}{
		{"lt", r.LT(), Pt(0, 25)},
		{"ld", r.LD(), Pt(0, 75)},
		{"rt", r.RT(), Pt(100, 25)},
		{"rd", r.RD(), Pt(100, 75)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if !pointsNear(tc.got, tc.want, tol) {
				t.Errorf("got %v, want %v", tc.got, tc.want)
			}
		})
	}
}

func TestRectangleCornersFollowState(t *testing.T) {
	r := NewRectangle(Pt(0, 0), 20, 10)
	r.Location = Pt(10, 10)
	if got := r.LT(); !pointsNear(got, Pt(0, 5), tol) {
		t.Fatalf("lt after move = %v", got)
	}

	// A quarter turn counter-clockwise on a Y-down screen sends the
	// right-top corner to the left-top quadrant.
	r = NewRectangle(Pt(0, 0), 20, 10)
	r.Angle = math.Pi / 2
	if got := r.RT(); !pointsNear(got, Pt(-5, -10), tol) {
		t.Fatalf("rt after rotation = %v", got)
	}
}

func TestCornersAreInsideRectangle(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		r := Rectangle{
			Location: Pt(rng.Float64()*400-200, rng.Float64()*400-200),
			Width:    rng.Float64()*300 + 1,
			Height:   rng.Float64()*300 + 1,
			Angle:    rng.Float64() * 2 * math.Pi,
		}
		if rng.Intn(2) == 0 {
			r.Width = -r.Width
		}
		for j, c := range r.Corners() {
			if !IsPointInRectangle(c, r) {
				t.Fatalf("corner %d of %v reported outside", j, r)
			}
		}
	}
}

func TestBound(t *testing.T) {
	pts := []Point{Pt(3, 7), Pt(-2, 1), Pt(10, -4), Pt(0, 0)}
	b, err := Bound(pts)
	if err != nil {
		t.Fatal(err)
	}
	if b.Angle != 0 {
		t.Errorf("angle = %v, want 0", b.Angle)
	}
	if !pointsNear(b.LT(), Pt(-2, -4), tol) || !pointsNear(b.RD(), Pt(10, 7), tol) {
		t.Errorf("bound = %v", b)
	}
	for _, p := range pts {
		if !IsPointInRectangle(p, b) {
			t.Errorf("%v not inside %v", p, b)
		}
	}
}

func TestBoundTooFewPoints(t *testing.T) {
	for _, pts := range [][]Point{nil, {Pt(1, 1)}} {
		if _, err := Bound(pts); !errors.Is(err, ErrTooFewPoints) {
			t.Errorf("Bound(%v) err = %v, want ErrTooFewPoints", pts, err)
		}
	}
}

func TestUnion(t *testing.T) {
	a := NewRectangle(Pt(0, 0), 10, 10)
	b := NewRectangle(Pt(20, 5), 4, 30)
	b.Angle = math.Pi / 6

	u, err := Union([]Rectangle{a, b})
	if err != nil {
		t.Fatal(err)
	}
	if u.Angle != 0 {
		t.Errorf("angle = %v, want 0", u.Angle)
	}
	for _, r := range []Rectangle{a, b} {
		for _, c := range r.Corners() {
			if !IsPointInRectangle(c, u) {
				t.Errorf("corner %v of %v outside union %v", c, r, u)
			}
		}
	}

	if _, err := Union(nil); !errors.Is(err, ErrNoRectangles) {
		t.Errorf("Union(nil) err = %v, want ErrNoRectangles", err)
	}
}

func TestIntersects(t *testing.T) {
	base := NewRectangle(Pt(50, 50), 80, 80)

	cross := NewRectangle(Pt(50, 50), 200, 10)
	rotated := NewRectangle(Pt(100, 100), 30, 30)
	rotated.Angle = math.Pi / 4

	tests := []struct {
		name string
		r    Rectangle
		want bool
	}{
		{"contained", NewRectangle(Pt(50, 50), 10, 10), true},
		{"overlapping corner", NewRectangle(Pt(95, 95), 20, 20), true},
		{"disjoint", NewRectangle(Pt(200, 200), 20, 20), false},
		{"crossing without corners inside", cross, true},
		{"rotated touching corner", rotated, true},
		{"degenerate", NewRectangle(Pt(50, 50), 0, 10), false},
		{"flipped", NewRectangle(Pt(50, 50), -20, 20), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Intersects(base, tc.r); got != tc.want {
				t.Errorf("Intersects(base, %v) = %v, want %v", tc.r, got, tc.want)
			}
			if got := Intersects(tc.r, base); got != tc.want {
				t.Errorf("Intersects(%v, base) = %v, want %v", tc.r, got, tc.want)
			}
		})
	}
}
