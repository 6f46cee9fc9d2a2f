package sdfgrid

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r2"
)

// Estimator computes surface normals and curvature of a filled Grid
// using second order central differences. Neighbors that would fall outside
// the grid are clamped to the edge index, so derivatives at edges are one sided
// differences still divided by twice the spacing.
//
// An Estimator only reads the grid. Results are undefined if the grid is filled
// again while the Estimator is in use.
type Estimator struct {
	grid *Grid
	// Epsilon is the gradient magnitude threshold for Normal. It is also added
	// to the magnitude when normalizing, so normals have length slightly below one.
	Epsilon float64
}

// NewEstimator returns an Estimator over g using DefaultNormalEpsilon.
func NewEstimator(g *Grid) *Estimator {
	return &Estimator{grid: g, Epsilon: DefaultNormalEpsilon}
}

// Grid returns the grid the Estimator reads from.
func (e *Estimator) Grid() *Grid { return e.grid }

// Gradient returns the central difference gradient of the field at index (i,j).
func (e *Estimator) Gradient(i, j int) r2.Vec {
	g := e.grid
	h2 := 2 * g.spacing
	return r2.Vec{
		X: (g.At(clampIndex(i+1, g.nx), j) - g.At(clampIndex(i-1, g.nx), j)) / h2,
		Y: (g.At(i, clampIndex(j+1, g.ny)) - g.At(i, clampIndex(j-1, g.ny))) / h2,
	}
}

// Normal returns the unit surface normal at index (i,j), pointing towards
// increasing distance. Where the gradient magnitude is at or below e.Epsilon
// the zero vector is returned.
func (e *Estimator) Normal(i, j int) r2.Vec {
	grad := e.Gradient(i, j)
	mag := math.Sqrt(grad.X*grad.X + grad.Y*grad.Y)
	if mag > e.Epsilon {
		return r2.Vec{X: grad.X / (mag + e.Epsilon), Y: grad.Y / (mag + e.Epsilon)}
	}
	return r2.Vec{}
}

// Curvature returns the divergence of the unit normal field at index (i,j),
// an estimate of the mean curvature of the level set passing through the point.
func (e *Estimator) Curvature(i, j int) float64 {
	nx, ny := e.grid.nx, e.grid.ny
	h2 := 2 * e.grid.spacing
	right := e.Normal(clampIndex(i+1, nx), j)
	left := e.Normal(clampIndex(i-1, nx), j)
	top := e.Normal(i, clampIndex(j+1, ny))
	bottom := e.Normal(i, clampIndex(j-1, ny))
	return (right.X-left.X)/h2 + (top.Y-bottom.Y)/h2
}

// NormalField evaluates Normal at every grid index and returns the x and y
// components as matrices shaped like the grid's field.
func (e *Estimator) NormalField() (x, y *mat.Dense) {
	nx, ny := e.grid.Dims()
	x = mat.NewDense(nx, ny, nil)
	y = mat.NewDense(nx, ny, nil)
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			n := e.Normal(i, j)
			x.Set(i, j, n.X)
			y.Set(i, j, n.Y)
		}
	}
	return x, y
}

// CurvatureField evaluates Curvature at every grid index.
func (e *Estimator) CurvatureField() *mat.Dense {
	nx, ny := e.grid.Dims()
	k := mat.NewDense(nx, ny, nil)
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			k.Set(i, j, e.Curvature(i, j))
		}
	}
	return k
}
