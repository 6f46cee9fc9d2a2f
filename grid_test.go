package sdfgrid

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r2"
)

const tol = 1e-12

func TestCircleScenario(t *testing.T) {
	g := NewGrid(10, 10, 1.0, BoundaryNone)
	g.FillCircle(r2.Vec{X: 5, Y: 5}, 3)
	for _, test := range []struct {
		i, j int
		want float64
	}{
		{5, 5, -3},
		{8, 5, 0},
		{2, 5, 0},
		{5, 8, 0},
		{0, 5, 2},
		{6, 5, -2},
	} {
		got := g.At(test.i, test.j)
		if !scalar.EqualWithinAbs(got, test.want, tol) {
			t.Errorf("field[%d][%d] got %v, want %v", test.i, test.j, got, test.want)
		}
	}
}

func TestCircleSymmetry(t *testing.T) {
	const (
		nx, ny  = 11, 9
		spacing = 0.5
	)
	g := NewGrid(nx, ny, spacing, BoundaryNone)
	center := r2.Vec{X: (nx - 1) * spacing / 2, Y: (ny - 1) * spacing / 2}
	g.FillCircle(center, 1.7)
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			a, b := g.At(i, j), g.At(nx-1-i, ny-1-j)
			if !scalar.EqualWithinAbs(a, b, tol) {
				t.Fatalf("asymmetric field at (%d,%d): %v != %v", i, j, a, b)
			}
		}
	}
}

func TestCircleSign(t *testing.T) {
	const radius = 5
	center := r2.Vec{X: 5, Y: 5}
	g := NewGrid(12, 12, 1, BoundaryReflective)
	g.FillCircle(center, radius)
	for i := 0; i < 12; i++ {
		for j := 0; j < 12; j++ {
			d := r2.Norm(r2.Sub(g.Coord(i, j), center))
			got := g.At(i, j)
			switch {
			case math.Abs(d-radius) < tol:
				if math.Abs(got) > tol {
					t.Errorf("point (%d,%d) on perimeter got %v, want 0", i, j, got)
				}
			case d < radius && got >= 0:
				t.Errorf("point (%d,%d) inside circle got non-negative %v", i, j, got)
			case d > radius && got <= 0:
				t.Errorf("point (%d,%d) outside circle got non-positive %v", i, j, got)
			}
		}
	}
	// 3-4-5 triangle lands exactly on the perimeter.
	if got := g.At(8, 9); got != 0 {
		t.Errorf("field[8][9] got %v, want 0", got)
	}
}

func TestRectangleScenario(t *testing.T) {
	g := NewGrid(10, 10, 1.0, BoundaryPeriodic)
	g.FillRectangle(r2.Vec{X: 2, Y: 2}, r2.Vec{X: 7, Y: 7})
	if got := g.At(0, 0); !scalar.EqualWithinAbs(got, math.Sqrt(8), tol) {
		t.Errorf("field[0][0] got %v, want %v", got, math.Sqrt(8))
	}
	if got := g.At(4, 4); got != -2 {
		t.Errorf("field[4][4] got %v, want -2", got)
	}
	// On the left edge the interior branch is taken and the distance is zero.
	if got := g.At(2, 4); got != 0 {
		t.Errorf("field[2][4] got %v, want 0", got)
	}
	// Outside along x only.
	if got := g.At(9, 4); got != 2 {
		t.Errorf("field[9][4] got %v, want 2", got)
	}
}

func TestRectangleInterior(t *testing.T) {
	const spacing = 0.3
	min, max := r2.Vec{X: 0.7, Y: 1.1}, r2.Vec{X: 4.4, Y: 3.2}
	g := NewGrid(20, 15, spacing, BoundaryNone)
	g.FillRectangle(min, max)
	var interior int
	for i := 0; i < 20; i++ {
		for j := 0; j < 15; j++ {
			p := g.Coord(i, j)
			if !(min.X < p.X && p.X < max.X && min.Y < p.Y && p.Y < max.Y) {
				continue
			}
			interior++
			want := -math.Min(math.Min(p.X-min.X, max.X-p.X), math.Min(p.Y-min.Y, max.Y-p.Y))
			got := g.At(i, j)
			if got >= 0 || got != want {
				t.Errorf("interior point (%d,%d) got %v, want %v", i, j, got, want)
			}
		}
	}
	if interior == 0 {
		t.Fatal("no interior points sampled")
	}
}

func TestFillOverwrites(t *testing.T) {
	g := NewGrid(8, 6, 0.5, BoundaryNone)
	g.FillCircle(r2.Vec{X: 1, Y: 1}, 0.5)
	g.FillRectangle(r2.Vec{X: 1, Y: 1}, r2.Vec{X: 2, Y: 2})
	want := NewGrid(8, 6, 0.5, BoundaryNone)
	want.FillRectangle(r2.Vec{X: 1, Y: 1}, r2.Vec{X: 2, Y: 2})
	for i := 0; i < 8; i++ {
		for j := 0; j < 6; j++ {
			if g.At(i, j) != want.At(i, j) {
				t.Fatalf("second fill did not overwrite (%d,%d): got %v, want %v", i, j, g.At(i, j), want.At(i, j))
			}
		}
	}
}

func TestNewGridZeroed(t *testing.T) {
	g := NewGrid(3, 4, 1, BoundaryNone)
	min, max := g.Range()
	if min != 0 || max != 0 {
		t.Errorf("new grid not zeroed: range [%v, %v]", min, max)
	}
	r, c := g.Field().Dims()
	if r != 3 || c != 4 {
		t.Errorf("field dims got %dx%d, want 3x4", r, c)
	}
}

func TestGridBounds(t *testing.T) {
	g := NewGrid(5, 3, 0.5, BoundaryReflective)
	bb := g.Bounds()
	want := r2.Box{Min: r2.Vec{}, Max: r2.Vec{X: 2, Y: 1}}
	if bb != want {
		t.Errorf("bounds got %+v, want %+v", bb, want)
	}
}

func TestDegenerateShapesAccepted(t *testing.T) {
	g := NewGrid(4, 4, 1, BoundaryNone)
	g.FillCircle(r2.Vec{}, -1)
	if got := g.At(0, 0); got != 1 {
		t.Errorf("negative radius at center got %v, want 1", got)
	}
	// Inverted corners never contain a point, so every value is an exterior norm.
	g.FillRectangle(r2.Vec{X: 3, Y: 3}, r2.Vec{X: 1, Y: 1})
	min, _ := g.Range()
	if min < 0 {
		t.Errorf("inverted rectangle produced negative distance %v", min)
	}
}

func BenchmarkFillCircle(b *testing.B) {
	g := NewGrid(512, 512, 0.01, BoundaryPeriodic)
	for i := 0; i < b.N; i++ {
		g.FillCircle(r2.Vec{X: 2.5, Y: 2.5}, 1)
	}
}
