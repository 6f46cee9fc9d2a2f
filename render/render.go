// Package render writes a filled sdfgrid.Grid out as CSV, contour images,
// height surface meshes and shaded surface images.
package render

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Renderer streams triangles of a mesh. ReadTriangles fills t with up to len(t)
// triangles and returns io.EOF once the mesh is exhausted.
type Renderer interface {
	ReadTriangles(t []Triangle3) (int, error)
}

// Triangle3 is a 3D triangle.
type Triangle3 struct {
	V [3]r3.Vec
}

// Normal returns the unit normal of the triangle following the right hand rule.
func (t Triangle3) Normal() r3.Vec {
	e1 := r3.Sub(t.V[1], t.V[0])
	e2 := r3.Sub(t.V[2], t.V[0])
	return r3.Unit(r3.Cross(e1, e2))
}

// Degenerate returns true if any two vertices are within tol of each other.
func (t Triangle3) Degenerate(tol float64) bool {
	return equalWithin3(t.V[0], t.V[1], tol) ||
		equalWithin3(t.V[1], t.V[2], tol) ||
		equalWithin3(t.V[2], t.V[0], tol)
}

func equalWithin3(a, b r3.Vec, tol float64) bool {
	d := r3.Sub(a, b)
	return d.X*d.X <= tol*tol && d.Y*d.Y <= tol*tol && d.Z*d.Z <= tol*tol
}
