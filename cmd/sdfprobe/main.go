package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/guptarohit/asciigraph"
	"github.com/soypat/sdfgrid"
	"github.com/soypat/sdfgrid/explore"
	"github.com/soypat/sdfgrid/internal/cli"
	"github.com/soypat/sdfgrid/render"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"
)

const usage = "Give the following values: ./grid x-size y-size spacing [Circle | Rectangle] [parameters] x y"

const minArgs = 9

type options struct {
	configFile  string
	profile     bool
	fieldsDir   string
	interactive bool
	verbose     bool
}

// query is a parsed command line: the grid and shape plus the probed index.
type query struct {
	job  cli.Job
	x, y int
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options
	rootCmd := &cobra.Command{
		Use:   "sdfprobe [flags] n_x n_y spacing {Circle|Rectangle} params... x y",
		Short: "surface normal and curvature of a signed distance grid at an index",
		Long: `sdfprobe fills an n_x by n_y grid with the signed distance to a shape,
without boundary mapping, and prints the surface normal and curvature at index (x,y).

  Circle params:    center_x center_y radius
  Rectangle params: min_x min_y max_x max_y

Flags must come before the positional arguments.`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), opts, args)
		},
	}
	rootCmd.Flags().SetInterspersed(false)
	rootCmd.Flags().StringVar(&opts.configFile, "config", "", "config file path (yaml)")
	rootCmd.Flags().BoolVar(&opts.profile, "profile", false, "plot distance and curvature along row x")
	rootCmd.Flags().StringVar(&opts.fieldsDir, "fields", "", "write normal and curvature fields as CSV to this directory")
	rootCmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "browse the grid in the terminal")
	rootCmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")
	return rootCmd
}

func run(stdout io.Writer, opts options, args []string) error {
	cfg, err := cli.LoadConfig(opts.configFile)
	if err != nil {
		return err
	}
	cli.SetupLogging(cfg, opts.verbose)
	if len(args) < minArgs {
		fmt.Fprintln(stdout, usage)
		return nil
	}
	q, err := parseArgs(args)
	if err != nil {
		return err
	}
	q.job.WarnDegenerate()

	g := q.job.Grid(sdfgrid.BoundaryNone)
	if q.x < 0 || q.x >= q.job.NX || q.y < 0 || q.y >= q.job.NY {
		return fmt.Errorf("index (%d,%d) outside %dx%d grid", q.x, q.y, q.job.NX, q.job.NY)
	}
	est := sdfgrid.NewEstimator(g)
	n := est.Normal(q.x, q.y)
	k := est.Curvature(q.x, q.y)
	fmt.Fprintf(stdout, "Normal at (%d,%d): %.5fi + %.5fj\n", q.x, q.y, n.X, n.Y)
	fmt.Fprintf(stdout, "Curvature at (%d,%d): %.5f\n", q.x, q.y, k)

	if opts.fieldsDir != "" {
		if err := writeFields(opts.fieldsDir, est); err != nil {
			return err
		}
	}
	if opts.profile {
		fmt.Fprintln(stdout, profile(est, q.x))
	}
	if opts.interactive {
		return explore.Run(est, q.job.Shape.String(), sdfgrid.V2i{q.x, q.y})
	}
	return nil
}

func parseArgs(args []string) (query, error) {
	var q query
	job, err := cli.ParseHead(args)
	if err != nil {
		return q, err
	}
	// shape parameters followed by the query index.
	total := 4 + job.Shape.NumParams() + 2
	if err := job.ParseParams(args, 4, total); err != nil {
		return q, err
	}
	if len(args) < total {
		return q, &cli.ArgCountError{Want: total}
	}
	q.job = job
	if q.x, err = cli.ParseIndex("x", args[total-2]); err != nil {
		return q, err
	}
	if q.y, err = cli.ParseIndex("y", args[total-1]); err != nil {
		return q, err
	}
	if len(args) > total {
		return q, &cli.ArgCountError{Want: total}
	}
	return q, nil
}

func writeFields(dir string, est *sdfgrid.Estimator) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	nx, ny := est.NormalField()
	for name, m := range map[string]mat.Matrix{
		"normal_x.csv":  nx,
		"normal_y.csv":  ny,
		"curvature.csv": est.CurvatureField(),
	} {
		path := filepath.Join(dir, name)
		if err := render.CreateCSV(path, m); err != nil {
			return err
		}
		sdfgrid.Logger().Info("wrote field", slog.String("path", path))
	}
	return nil
}

// profile plots the distance and curvature along the grid row at x index i.
func profile(est *sdfgrid.Estimator, i int) string {
	g := est.Grid()
	_, ny := g.Dims()
	dist := make([]float64, ny)
	curv := make([]float64, ny)
	for j := range dist {
		dist[j] = g.At(i, j)
		curv[j] = est.Curvature(i, j)
	}
	return asciigraph.PlotMany([][]float64{dist, curv},
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.SeriesColors(asciigraph.Blue, asciigraph.Red),
		asciigraph.Caption(fmt.Sprintf("distance (blue) and curvature (red) at x=%d", i)),
	)
}
