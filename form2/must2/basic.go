// Package must2 builds 2D shapes from parameters that are checked for
// validity. Constructors panic on parameters that do not describe a shape.
package must2

import (
	"math"

	"github.com/soypat/sdfgrid"
	"gonum.org/v1/gonum/spatial/r2"
)

// Circle returns the SDF2 for a circle. It panics if the radius is not positive
// or any parameter is not finite.
func Circle(center r2.Vec, radius float64) sdfgrid.SDF2 {
	if !finite(center.X, center.Y, radius) {
		panic("non-finite circle parameter")
	}
	if radius <= 0 {
		panic("radius <= 0")
	}
	return sdfgrid.Circle2D(center, radius)
}

// Rect returns the SDF2 for an axis aligned rectangle. It panics if min
// exceeds max on either axis or any coordinate is not finite.
func Rect(min, max r2.Vec) sdfgrid.SDF2 {
	if !finite(min.X, min.Y, max.X, max.Y) {
		panic("non-finite rectangle corner")
	}
	if min.X > max.X || min.Y > max.Y {
		panic("rectangle min corner exceeds max corner")
	}
	return sdfgrid.Rect2D(min, max)
}

// Shape returns the shape described by params, laid out as for sdfgrid.Shape.NumParams.
func Shape(shape sdfgrid.Shape, params []float64) sdfgrid.SDF2 {
	if len(params) != shape.NumParams() {
		panic("wrong number of parameters for " + shape.String())
	}
	switch shape {
	case sdfgrid.ShapeCircle:
		return Circle(r2.Vec{X: params[0], Y: params[1]}, params[2])
	case sdfgrid.ShapeRectangle:
		return Rect(r2.Vec{X: params[0], Y: params[1]}, r2.Vec{X: params[2], Y: params[3]})
	}
	panic(sdfgrid.ErrUnknownShape)
}

func finite(v ...float64) bool {
	for _, f := range v {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}
