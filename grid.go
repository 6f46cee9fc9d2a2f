package sdfgrid

import (
	"context"
	"log/slog"

	"github.com/soypat/sdfgrid/internal/d2"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r2"
)

// Grid is a dense nx by ny scalar field sampled at uniformly spaced points.
// Entry (i,j) holds the signed distance from the mapped coordinate of (i,j)
// to the surface of the last shape filled into the grid.
//
// A Grid is owned by a single goroutine. Fill methods mutate the whole field
// and must not run concurrently with each other or with readers.
type Grid struct {
	nx, ny   int
	spacing  float64
	boundary Boundary
	// field has nx rows and ny columns so field.At(i, j) is the value at index (i,j).
	field *mat.Dense
}

// NewGrid returns a zeroed grid of nx by ny points separated by spacing.
// nx and ny must be positive. Spacing is not validated.
func NewGrid(nx, ny int, spacing float64, mode Boundary) *Grid {
	return &Grid{
		nx:       nx,
		ny:       ny,
		spacing:  spacing,
		boundary: mode,
		field:    mat.NewDense(nx, ny, nil),
	}
}

// Dims returns the number of grid points along x and y.
func (g *Grid) Dims() (nx, ny int) { return g.nx, g.ny }

// Spacing returns the physical distance between neighboring grid points.
func (g *Grid) Spacing() float64 { return g.spacing }

// Boundary returns the index mapping mode of the grid.
func (g *Grid) Boundary() Boundary { return g.boundary }

// At returns the field value at index (i,j). It panics if the index is out of range.
func (g *Grid) At(i, j int) float64 { return g.field.At(i, j) }

// Field returns the field as a matrix with nx rows and ny columns.
// The returned matrix must not be modified.
func (g *Grid) Field() mat.Matrix { return g.field }

// Coord maps index (i,j) to a physical coordinate using the grid's boundary mode.
func (g *Grid) Coord(i, j int) r2.Vec {
	return r2.Vec{
		X: MapIndex(i, g.nx, g.spacing, g.boundary),
		Y: MapIndex(j, g.ny, g.spacing, g.boundary),
	}
}

// Bounds returns the box spanned by the mapped coordinates of the grid points.
func (g *Grid) Bounds() r2.Box {
	c0 := g.Coord(0, 0)
	bb := d2.Box{Min: c0, Max: c0}.Include(g.Coord(g.nx-1, g.ny-1))
	return r2.Box(bb)
}

// Range returns the minimum and maximum values in the field.
func (g *Grid) Range() (min, max float64) {
	data := g.field.RawMatrix().Data
	return floats.Min(data), floats.Max(data)
}

// Fill overwrites every entry of the field with the distance from the
// entry's mapped coordinate to s. Previous contents are discarded.
func (g *Grid) Fill(s SDF2) {
	for i := 0; i < g.nx; i++ {
		for j := 0; j < g.ny; j++ {
			g.field.Set(i, j, s.Evaluate(g.Coord(i, j)))
		}
	}
	if log := Logger(); log.Enabled(context.Background(), slog.LevelDebug) {
		min, max := g.Range()
		log.Debug("grid filled", slog.Int("nx", g.nx), slog.Int("ny", g.ny),
			slog.String("boundary", g.boundary.String()),
			slog.Float64("min", min), slog.Float64("max", max))
	}
}

// FillCircle fills the grid with the signed distance to a circle:
// negative inside, zero on the perimeter and positive outside.
func (g *Grid) FillCircle(center r2.Vec, radius float64) {
	g.Fill(Circle2D(center, radius))
}

// FillRectangle fills the grid with the signed distance to the rectangle
// spanning min to max. See Rect2D for the corner ordering requirement.
func (g *Grid) FillRectangle(min, max r2.Vec) {
	g.Fill(Rect2D(min, max))
}
