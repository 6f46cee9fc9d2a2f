package sdfgrid

import (
	"math"

	"github.com/soypat/sdfgrid/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// SDF2 is the interface to a 2d signed distance function object.
type SDF2 interface {
	// Evaluate takes a point in 2D space as input and returns
	// the minimum distance of the SDF2 to the point. The distance
	// is negative if the point is contained within the SDF2.
	Evaluate(p r2.Vec) float64

	// Bounds returns the bounding box that completely contains the SDF2.
	Bounds() r2.Box
}

// Shape names a primitive that can be filled into a Grid.
type Shape int

const (
	ShapeCircle Shape = iota + 1
	ShapeRectangle
)

func (s Shape) String() string {
	switch s {
	case ShapeCircle:
		return "Circle"
	case ShapeRectangle:
		return "Rectangle"
	}
	return "Shape(?)"
}

// NumParams returns the number of real parameters that describe the shape:
// center and radius for a circle, both corners for a rectangle.
func (s Shape) NumParams() int {
	switch s {
	case ShapeCircle:
		return 3
	case ShapeRectangle:
		return 4
	}
	return 0
}

// ParseShape parses a shape name. Names are case sensitive: "Circle" or "Rectangle".
func ParseShape(name string) (Shape, error) {
	switch name {
	case "Circle":
		return ShapeCircle, nil
	case "Rectangle":
		return ShapeRectangle, nil
	}
	return 0, ErrUnknownShape
}

// Circle2D returns the SDF2 for a circle of the given center and radius.
// A zero or negative radius is not rejected: the result is a point or
// an everywhere-positive field.
func Circle2D(center r2.Vec, radius float64) SDF2 {
	return &circle2{center: center, radius: radius}
}

type circle2 struct {
	center r2.Vec
	radius float64
}

// Evaluate returns the distance from p to the circle's perimeter.
func (s *circle2) Evaluate(p r2.Vec) float64 {
	d := r2.Sub(p, s.center)
	return math.Sqrt(d.X*d.X+d.Y*d.Y) - s.radius
}

func (s *circle2) Bounds() r2.Box {
	r := d2.Elem(math.Abs(s.radius))
	return r2.Box{Min: r2.Sub(s.center, r), Max: r2.Add(s.center, r)}
}

// Rect2D returns the SDF2 for an axis aligned rectangle spanning min to max.
// Corners are expected to satisfy min <= max componentwise. This is not checked;
// inverted corners yield a degenerate field.
func Rect2D(min, max r2.Vec) SDF2 {
	return &rect2{bb: d2.Box{Min: min, Max: max}}
}

type rect2 struct {
	bb d2.Box
}

// Evaluate returns the negated distance to the nearest edge for points inside or on the
// rectangle and the Euclidean norm of the per-axis excess for points outside.
func (s *rect2) Evaluate(p r2.Vec) float64 {
	min, max := s.bb.Min, s.bb.Max
	if s.bb.Contains(p) {
		return -math.Min(math.Min(p.X-min.X, max.X-p.X), math.Min(p.Y-min.Y, max.Y-p.Y))
	}
	excess := d2.MaxElem(d2.MaxElem(r2.Sub(min, p), r2.Sub(p, max)), r2.Vec{})
	return math.Sqrt(excess.X*excess.X + excess.Y*excess.Y)
}

func (s *rect2) Bounds() r2.Box {
	return r2.Box(s.bb)
}
