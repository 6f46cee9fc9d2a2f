package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/soypat/sdfgrid"
	"github.com/soypat/sdfgrid/internal/cli"
	"github.com/soypat/sdfgrid/internal/config"
	"github.com/soypat/sdfgrid/render"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"
)

const usage = "Provide the following values: ./Grid[x-size(n_x) y-size(n_y)] [spacing] [Circle / Rectangle] [reflective / periodic] [parameters]"

// minArgs is the positional count of the shortest valid command line, a circle.
const minArgs = 8

type options struct {
	configFile string
	outDir     string
	noPlot     bool
	stl        bool
	shade      bool
	verbose    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options
	rootCmd := &cobra.Command{
		Use:   "sdfgrid [flags] n_x n_y spacing {Circle|Rectangle} {reflective|periodic} params...",
		Short: "sample the signed distance to a circle or rectangle on a grid",
		Long: `sdfgrid fills an n_x by n_y grid with the signed distance to a shape and
writes it as CSV. Reflective and periodic grids are also drawn as a contour plot.

  Circle params:    center_x center_y radius
  Rectangle params: min_x min_y max_x max_y

Flags must come before the positional arguments.`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), opts, args)
		},
	}
	// Negative coordinates must reach RunE as positionals.
	rootCmd.Flags().SetInterspersed(false)
	rootCmd.Flags().StringVar(&opts.configFile, "config", "", "config file path (yaml)")
	rootCmd.Flags().StringVarP(&opts.outDir, "out", "o", "", "output directory, overrides config")
	rootCmd.Flags().BoolVar(&opts.noPlot, "no-plot", false, "skip the contour plot")
	rootCmd.Flags().BoolVar(&opts.stl, "stl", false, "write the field as a binary STL height surface")
	rootCmd.Flags().BoolVar(&opts.shade, "shade", false, "render the field height surface to PNG")
	rootCmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")
	return rootCmd
}

func run(stdout io.Writer, opts options, args []string) error {
	cfg, err := cli.LoadConfig(opts.configFile)
	if err != nil {
		return err
	}
	cli.SetupLogging(cfg, opts.verbose)
	if opts.outDir != "" {
		cfg.Output.Dir = opts.outDir
	}
	cfg.Output.Plot = cfg.Output.Plot && !opts.noPlot
	cfg.Output.STL = cfg.Output.STL || opts.stl
	cfg.Output.Shade = cfg.Output.Shade || opts.shade

	if len(args) < minArgs {
		fmt.Fprintln(stdout, usage)
		return nil
	}
	job, mode, err := parseArgs(args)
	if err != nil {
		return err
	}
	job.WarnDegenerate()

	g := job.Grid(mode)
	return writeOutputs(cfg, job.Shape, g)
}

// parseArgs parses the positional arguments of a command line with at least minArgs entries.
func parseArgs(args []string) (cli.Job, sdfgrid.Boundary, error) {
	job, err := cli.ParseHead(args)
	if err != nil {
		return job, 0, err
	}
	mode, err := sdfgrid.ParseBoundary(args[4])
	if errors.Is(err, sdfgrid.ErrUnknownBoundary) {
		sdfgrid.Logger().Warn("unknown boundary mode, indices are not mapped", slog.String("boundary", args[4]))
	}
	total := 5 + job.Shape.NumParams()
	if err := job.ParseParams(args, 5, total); err != nil {
		return job, mode, err
	}
	if len(args) > total {
		return job, mode, &cli.ArgCountError{Want: total}
	}
	return job, mode, nil
}

func writeOutputs(cfg *config.Config, shape sdfgrid.Shape, g *sdfgrid.Grid) error {
	dir := cfg.Output.Dir
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	base := filepath.Join(dir, strings.ToLower(shape.String())+"_grid")
	log := sdfgrid.Logger()

	if cfg.Output.CSV {
		if err := render.CreateCSV(base+".csv", g.Field()); err != nil {
			return err
		}
		log.Info("wrote grid", slog.String("path", base+".csv"))
	}
	nx, ny := g.Dims()
	if cfg.Output.Plot && g.Boundary() != sdfgrid.BoundaryNone && (nx < 2 || ny < 2) {
		log.Warn("grid too small to plot", slog.Int("nx", nx), slog.Int("ny", ny))
	} else if cfg.Output.Plot && g.Boundary() != sdfgrid.BoundaryNone {
		opts, err := contourOptions(cfg, title(shape, g.Boundary()))
		if err != nil {
			return err
		}
		if err := render.CreateContourPNG(base+".png", g, opts, cfg.Plot.Thumbnail); err != nil {
			return err
		}
		log.Info("wrote plot", slog.String("path", base+".png"))
	}
	if cfg.Output.STL {
		if err := render.CreateSTL(base+".stl", render.NewSurfaceRenderer(g, cfg.Surface.ZScale)); err != nil {
			return err
		}
		log.Info("wrote surface", slog.String("path", base+".stl"))
	}
	if cfg.Output.Shade {
		err := render.CreateShadedPNG(base+"_surface.png", render.NewSurfaceRenderer(g, cfg.Surface.ZScale), render.ShadeOptions{
			Width:       cfg.Surface.Width,
			Height:      cfg.Surface.Height,
			Supersample: cfg.Surface.Supersample,
			Color:       cfg.Surface.Color,
			View:        render.DefaultView,
		})
		if err != nil {
			return err
		}
		log.Info("wrote shaded surface", slog.String("path", base+"_surface.png"))
	}
	return nil
}

func contourOptions(cfg *config.Config, title string) (render.ContourOptions, error) {
	opts := render.DefaultContourOptions(title)
	cmap, err := render.ColorMap(cfg.Plot.ColorMap)
	if err != nil {
		return opts, err
	}
	opts.ColorMap = cmap
	if cfg.Plot.Width > 0 && cfg.Plot.Height > 0 {
		opts.Width = vg.Length(cfg.Plot.Width) * vg.Inch
		opts.Height = vg.Length(cfg.Plot.Height) * vg.Inch
	}
	if cfg.Plot.Levels > 0 {
		opts.Levels = cfg.Plot.Levels
	}
	return opts, nil
}

// title returns the plot title, for example "Signed Distance Function - Circle (Reflective)".
func title(shape sdfgrid.Shape, mode sdfgrid.Boundary) string {
	name := mode.String()
	return fmt.Sprintf("Signed Distance Function - %s (%s)", shape, strings.ToUpper(name[:1])+name[1:])
}
