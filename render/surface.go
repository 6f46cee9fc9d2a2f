package render

import (
	"io"

	"github.com/soypat/sdfgrid"
	"gonum.org/v1/gonum/spatial/r3"
)

// surface streams the height surface z = zScale*field(x,y) of a grid as two
// triangles per grid cell, cell by cell in row-major order.
type surface struct {
	grid   *sdfgrid.Grid
	zScale float64
	// next is the index of the next triangle to emit.
	next  int
	total int
}

// NewSurfaceRenderer returns a Renderer over the height surface of a filled grid.
// Vertices lie at the mapped coordinates of the grid points with the field value,
// scaled by zScale, as height. Grids with fewer than two points along an axis
// have no cells and render no triangles.
func NewSurfaceRenderer(g *sdfgrid.Grid, zScale float64) Renderer {
	nx, ny := g.Dims()
	cells := 0
	if nx > 1 && ny > 1 {
		cells = (nx - 1) * (ny - 1)
	}
	return &surface{grid: g, zScale: zScale, total: 2 * cells}
}

func (s *surface) ReadTriangles(dst []Triangle3) (n int, err error) {
	if len(dst) == 0 {
		panic("cannot write to empty triangle slice")
	}
	_, ny := s.grid.Dims()
	for n < len(dst) && s.next < s.total {
		cell := s.next / 2
		i, j := cell/(ny-1), cell%(ny-1)
		a, b := s.vertex(i, j), s.vertex(i+1, j)
		c, d := s.vertex(i+1, j+1), s.vertex(i, j+1)
		if s.next%2 == 0 {
			dst[n] = Triangle3{V: [3]r3.Vec{a, b, c}}
		} else {
			dst[n] = Triangle3{V: [3]r3.Vec{a, c, d}}
		}
		n++
		s.next++
	}
	if n == 0 {
		return 0, io.EOF
	}
	return n, nil
}

func (s *surface) vertex(i, j int) r3.Vec {
	p := s.grid.Coord(i, j)
	return r3.Vec{X: p.X, Y: p.Y, Z: s.zScale * s.grid.At(i, j)}
}
