package transform

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"

	"github.com/inamate/inamate/editor-go/internal/geom"
)

const pivotTol = 1e-6

func near(a, b geom.Point, eps float64) bool {
	return scalar.EqualWithinAbs(a.X, b.X, eps) && scalar.EqualWithinAbs(a.Y, b.Y, eps)
}

// randomCoord returns a transform with arbitrary scale, rotation and base.
func randomCoord(rng *rand.Rand) *Coord {
	c := New(rng.Float64()*4 + 0.25)
	c.ZoomX(geom.Pt(0, 0), rng.Float64()*2+0.5)
	c.RotateAnticlockwise(rng.Float64() * 2 * math.Pi)
	c.Displace(geom.Vector{X: rng.Float64()*800 - 400, Y: rng.Float64()*800 - 400})
	return c
}

func TestWorldToDeviceIdentity(t *testing.T) {
	c := New(1)
	if got := c.WorldToDevice(geom.Pt(10, 10)); !near(got, geom.Pt(10, 10), 1e-12) {
		t.Errorf("WorldToDevice((10,10)) = %v", got)
	}
	if got := c.WorldToDevice(c.Base()); !near(got, c.Base(), 1e-12) {
		t.Errorf("base maps to %v", got)
	}
}

func TestWorldToDeviceRotated(t *testing.T) {
	c := New(2)
	c.SetBase(geom.Pt(100, 100))
	c.RotateAnticlockwise(math.Pi / 2)

	// World +x is scaled by 2 and turned a quarter counter-clockwise, which
	// points up on a Y-down screen.
	if got := c.WorldToDevice(geom.Pt(10, 0)); !near(got, geom.Pt(100, 80), 1e-9) {
		t.Errorf("got %v, want (100,80)", got)
	}
}

func TestZoomAtPivot(t *testing.T) {
	c := New(1)
	c.Zoom(geom.Pt(50, 50), 2)
	if got := c.WorldToDevice(geom.Pt(50, 50)); !near(got, geom.Pt(50, 50), pivotTol) {
		t.Errorf("pivot moved to %v", got)
	}
	if got := c.WorldToDevice(geom.Pt(60, 50)); !near(got, geom.Pt(70, 50), pivotTol) {
		t.Errorf("neighbour at %v, want (70,50)", got)
	}
}

func TestZoomPivotInvariance(t *testing.T) {
	ops := []struct {
		name string
		zoom func(c *Coord, o geom.Point, s float64)
	}{
		{"zoom", (*Coord).Zoom},
		{"zoomX", (*Coord).ZoomX},
		{"zoomY", (*Coord).ZoomY},
	}

	rng := rand.New(rand.NewSource(42))
	for _, op := range ops {
		t.Run(op.name, func(t *testing.T) {
			for i := 0; i < 500; i++ {
				c := randomCoord(rng)
				w := geom.Pt(rng.Float64()*600-300, rng.Float64()*600-300)
				pivot := c.WorldToDevice(w)

				op.zoom(c, pivot, rng.Float64()*3+0.1)

				if got := c.WorldToDevice(w); !near(got, pivot, pivotTol) {
					t.Fatalf("iteration %d: pivot %v moved to %v", i, pivot, got)
				}
			}
		})
	}
}

func TestZoomAxisFollowsRotation(t *testing.T) {
	c := New(1)
	c.SetBase(geom.Pt(200, 200))
	p := geom.Pt(30, 20)
	before := c.WorldToDevice(p)

	c.ZoomX(geom.Pt(200, 200), 2)
	after := c.WorldToDevice(p)
	if !near(after, geom.Pt(260, before.Y), 1e-9) {
		t.Errorf("unrotated ZoomX: %v -> %v", before, after)
	}

	// After a quarter turn the primary axis is vertical on screen, so ZoomX
	// must leave device x alone.
	c = New(1)
	c.SetBase(geom.Pt(200, 200))
	c.RotateAnticlockwise(math.Pi / 2)
	before = c.WorldToDevice(p)
	c.ZoomX(geom.Pt(200, 200), 2)
	after = c.WorldToDevice(p)
	if !scalar.EqualWithinAbs(after.X, before.X, 1e-9) {
		t.Errorf("rotated ZoomX moved x: %v -> %v", before, after)
	}
	if !scalar.EqualWithinAbs(after.Y-200, 2*(before.Y-200), 1e-9) {
		t.Errorf("rotated ZoomX y: %v -> %v", before, after)
	}
}

// polarZoom re-solves the base point by rotating the pivot-to-base offset
// into the entity's axes, scaling it there, and turning it back with polar
// conversions.
func polarZoom(c *Coord, origin geom.Point, sx, sy float64) {
	c.lenX /= sx
	c.lenY /= sy

	local := geom.RotatePoint(origin, c.base, -c.angle)
	dx := (local.X - origin.X) * sx
	dy := (local.Y - origin.Y) * sy

	primary := geom.PolarToCartesian(geom.PolarCoord{Angle: -c.angle, Length: dx})
	secondary := geom.PolarToCartesian(geom.PolarCoord{Angle: math.Pi/2 - c.angle, Length: dy})
	c.base = geom.Pt(origin.X+primary.X+secondary.X, origin.Y+primary.Y+secondary.Y)
}

func TestZoomMatchesPolarReference(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for i := 0; i < 1000; i++ {
		c := randomCoord(rng)
		ref := *c

		origin := geom.Pt(rng.Float64()*1000-500, rng.Float64()*1000-500)
		s := rng.Float64()*4 + 0.05

		var sx, sy float64
		switch i % 3 {
		case 0:
			c.Zoom(origin, s)
			sx, sy = s, s
		case 1:
			c.ZoomX(origin, s)
			sx, sy = s, 1
		default:
			c.ZoomY(origin, s)
			sx, sy = 1, s
		}
		polarZoom(&ref, origin, sx, sy)

		if !near(c.Base(), ref.base, 1e-6) {
			t.Fatalf("iteration %d: matrix base %v, polar base %v", i, c.Base(), ref.base)
		}
		if c.LenX() != ref.lenX || c.LenY() != ref.lenY {
			t.Fatalf("iteration %d: lens differ", i)
		}
	}
}

func dense(m geom.Matrix) *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		m[0], m[2], m[4],
		m[1], m[3], m[5],
		0, 0, 1,
	})
}

func TestMatrixComposition(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 100; i++ {
		c := randomCoord(rng)

		var want mat.Dense
		want.Product(
			dense(geom.Translate(c.Base().X, c.Base().Y)),
			dense(geom.Rotate(-c.Angle())),
			dense(geom.Scale(c.ScaleX(), c.ScaleY())),
		)
		if !mat.EqualApprox(dense(c.Matrix()), &want, 1e-9) {
			t.Fatalf("Matrix() = %v, want %v", c.Matrix(), mat.Formatted(&want))
		}

		p := geom.Pt(rng.Float64()*100, rng.Float64()*100)
		if got, want := p.Transform(c.Matrix()), c.WorldToDevice(p); !near(got, want, 1e-9) {
			t.Fatalf("matrix maps %v to %v, WorldToDevice to %v", p, got, want)
		}

		// A zoom left-multiplies the device map by the pivot scaling.
		before := dense(c.Matrix())
		o := geom.Pt(rng.Float64()*200, rng.Float64()*200)
		s := rng.Float64()*2 + 0.5
		c.ZoomY(o, s)

		var zoomed mat.Dense
		zoomed.Product(
			dense(geom.Translate(o.X, o.Y)),
			dense(geom.Rotate(-c.Angle())),
			dense(geom.Scale(1, s)),
			dense(geom.Rotate(c.Angle())),
			dense(geom.Translate(-o.X, -o.Y)),
			before,
		)
		if !mat.EqualApprox(dense(c.Matrix()), &zoomed, 1e-6) {
			t.Fatalf("zoomed matrix = %v, want %v", c.Matrix(), mat.Formatted(&zoomed))
		}
	}
}

func TestDisplace(t *testing.T) {
	c := New(3)
	c.RotateAnticlockwise(1)
	before := c.WorldToDevice(geom.Pt(5, 5))
	c.Displace(geom.Vector{X: 7, Y: -2})
	if got := c.WorldToDevice(geom.Pt(5, 5)); !near(got, geom.Pt(before.X+7, before.Y-2), 1e-9) {
		t.Errorf("got %v", got)
	}
}

func TestRotateAnticlockwiseNormalizes(t *testing.T) {
	tests := []struct {
		name   string
		angles []float64
		want   float64
	}{
		{"small", []float64{0.5}, 0.5},
		{"negative wraps", []float64{-math.Pi / 2}, 3 * math.Pi / 2},
		{"full turn", []float64{math.Pi, math.Pi}, 0},
		{"many turns", []float64{7 * math.Pi}, math.Pi},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := New(1)
			for _, a := range tc.angles {
				c.RotateAnticlockwise(a)
			}
			if !scalar.EqualWithinAbs(c.Angle(), tc.want, 1e-9) {
				t.Errorf("angle = %v, want %v", c.Angle(), tc.want)
			}
		})
	}

	rng := rand.New(rand.NewSource(3))
	c := New(1)
	for i := 0; i < 10000; i++ {
		c.RotateAnticlockwise(rng.NormFloat64() * 20)
		if a := c.Angle(); a < 0 || a >= 2*math.Pi {
			t.Fatalf("angle %v out of [0, 2π)", a)
		}
	}
}
