// Package cli holds the positional argument handling shared by the sdfgrid commands.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/soypat/sdfgrid"
	"github.com/soypat/sdfgrid/form2"
	"github.com/soypat/sdfgrid/internal/config"
	"gonum.org/v1/gonum/spatial/r2"
)

// ArgCountError reports a command line whose positional argument count does
// not match the chosen shape.
type ArgCountError struct {
	Want int
}

func (e *ArgCountError) Error() string {
	return fmt.Sprintf("Please provide exactly %d arguments", e.Want)
}

// Job describes the grid and shape given on a command line.
type Job struct {
	NX, NY  int
	Spacing float64
	Shape   sdfgrid.Shape
	// Params holds center x, center y and radius for a circle,
	// or min x, min y, max x and max y for a rectangle.
	Params []float64
}

// ParseHead parses the leading "n_x n_y spacing shape" arguments.
func ParseHead(args []string) (Job, error) {
	var job Job
	if len(args) < 4 {
		return job, fmt.Errorf("expected n_x n_y spacing shape, got %d arguments", len(args))
	}
	var err error
	if job.NX, err = parseInt("n_x", args[0]); err != nil {
		return job, err
	}
	if job.NY, err = parseInt("n_y", args[1]); err != nil {
		return job, err
	}
	if job.Spacing, err = parseFloat("spacing", args[2]); err != nil {
		return job, err
	}
	job.Shape, err = sdfgrid.ParseShape(args[3])
	if err != nil {
		return job, fmt.Errorf("%w: %q", err, args[3])
	}
	return job, nil
}

// ParseParams parses the shape parameters of job starting at args[first].
// total is the exact positional argument count of the command for this shape;
// it is reported when arguments are missing.
func (job *Job) ParseParams(args []string, first, total int) error {
	n := job.Shape.NumParams()
	if len(args) < first+n {
		return &ArgCountError{Want: total}
	}
	job.Params = make([]float64, n)
	for i := range job.Params {
		v, err := parseFloat("shape parameter", args[first+i])
		if err != nil {
			return err
		}
		job.Params[i] = v
	}
	return nil
}

// ParseIndex parses a grid index argument.
func ParseIndex(name, s string) (int, error) {
	return parseInt(name, s)
}

// Grid returns a grid of the job's size filled with its shape.
func (job Job) Grid(mode sdfgrid.Boundary) *sdfgrid.Grid {
	g := sdfgrid.NewGrid(job.NX, job.NY, job.Spacing, mode)
	g.Fill(job.SDF())
	return g
}

// SDF returns the shape described by the job's parameters.
func (job Job) SDF() sdfgrid.SDF2 {
	p := job.Params
	switch job.Shape {
	case sdfgrid.ShapeCircle:
		return sdfgrid.Circle2D(r2.Vec{X: p[0], Y: p[1]}, p[2])
	case sdfgrid.ShapeRectangle:
		return sdfgrid.Rect2D(r2.Vec{X: p[0], Y: p[1]}, r2.Vec{X: p[2], Y: p[3]})
	}
	panic("unreachable: unknown shape " + job.Shape.String())
}

// WarnDegenerate logs parameters that do not describe a proper shape, such
// as a non-positive radius. They are not rejected.
func (job Job) WarnDegenerate() {
	if _, err := form2.Shape(job.Shape, job.Params); err != nil {
		sdfgrid.Logger().Warn("degenerate shape", slog.String("shape", job.Shape.String()),
			slog.Any("params", job.Params), slog.String("reason", err.Error()))
	}
}

// SetupLogging installs a text logger on stderr at the configured level,
// or at debug level when verbose is set.
func SetupLogging(cfg *config.Config, verbose bool) {
	level := cfg.LogLevel()
	if verbose {
		level = slog.LevelDebug
	}
	sdfgrid.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// LoadConfig loads the config at path, or the defaults when path is empty.
func LoadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.DefaultConfig(), nil
	}
	return config.Load(path)
}

func parseInt(name, s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, s, err)
	}
	return v, nil
}

func parseFloat(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, s, err)
	}
	return v, nil
}
