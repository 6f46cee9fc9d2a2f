package sdfgrid

import "strings"

// Boundary selects how grid indices map to physical coordinates.
type Boundary int

const (
	// BoundaryNone maps index i to i*spacing with no wraparound or reflection.
	BoundaryNone Boundary = iota
	// BoundaryReflective mirrors out of range indices about the domain edges.
	BoundaryReflective
	// BoundaryPeriodic wraps out of range indices around the domain.
	BoundaryPeriodic
)

func (b Boundary) String() string {
	switch b {
	case BoundaryReflective:
		return "reflective"
	case BoundaryPeriodic:
		return "periodic"
	case BoundaryNone:
		return "none"
	}
	return "Boundary(?)"
}

// ParseBoundary parses a boundary mode name as written on the command line.
// Unrecognized names return BoundaryNone along with ErrUnknownBoundary.
func ParseBoundary(s string) (Boundary, error) {
	switch strings.ToLower(s) {
	case "reflective":
		return BoundaryReflective, nil
	case "periodic":
		return BoundaryPeriodic, nil
	case "none", "":
		return BoundaryNone, nil
	}
	return BoundaryNone, ErrUnknownBoundary
}

// MapIndex maps a grid index along an axis of maxIndex points to a physical coordinate.
// Indices one domain-length outside [0, maxIndex) are reflected or wrapped once;
// the mapping is not applied recursively.
func MapIndex(index, maxIndex int, spacing float64, mode Boundary) float64 {
	switch mode {
	case BoundaryReflective:
		if index < 0 {
			return float64(-index) * spacing
		} else if index >= maxIndex {
			return float64(2*maxIndex-index-1) * spacing
		}
	case BoundaryPeriodic:
		if index < 0 {
			return float64(maxIndex+index) * spacing
		} else if index >= maxIndex {
			return float64(index-maxIndex) * spacing
		}
	}
	return float64(index) * spacing
}
