package sdfgrid

import "errors"

var (
	// ErrUnknownBoundary is returned when parsing a boundary mode name that is not
	// one of reflective, periodic or none.
	ErrUnknownBoundary = errors.New("sdfgrid: unknown boundary mode")

	// ErrUnknownShape is returned when parsing a shape name that is not Circle or Rectangle.
	ErrUnknownShape = errors.New("sdfgrid: unknown shape")
)
