// Package form2 builds validated 2D shapes, returning an error where
// package must2 would panic.
package form2

import (
	"fmt"
	"runtime/debug"

	"github.com/soypat/sdfgrid"
	"github.com/soypat/sdfgrid/form2/must2"
	"gonum.org/v1/gonum/spatial/r2"
)

type shapeErr struct {
	panicObj interface{}
	stack    string
}

func (s *shapeErr) Error() string {
	return fmt.Sprintf("%s", s.panicObj)
}

// Unwrap returns the recovered value if it was an error.
func (s *shapeErr) Unwrap() error {
	err, _ := s.panicObj.(error)
	return err
}

// Circle returns the SDF2 for a circle of positive radius.
func Circle(center r2.Vec, radius float64) (s sdfgrid.SDF2, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return must2.Circle(center, radius), err
}

// Rect returns the SDF2 for a rectangle with min <= max on both axes.
func Rect(min, max r2.Vec) (s sdfgrid.SDF2, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return must2.Rect(min, max), err
}

// Shape returns the shape described by params as given on the command line.
func Shape(shape sdfgrid.Shape, params []float64) (s sdfgrid.SDF2, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return must2.Shape(shape, params), err
}
