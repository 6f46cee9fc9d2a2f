package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/nfnt/resize"
	"github.com/soypat/sdfgrid"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// ContourOptions configures a contour image of a grid.
type ContourOptions struct {
	Title string
	// Width and Height of the whole image including the color bar.
	Width, Height vg.Length
	// Levels is the number of color bands of the filled field.
	Levels int
	// ColorMap colors the field. It is also drawn as the color bar.
	// If nil the red-blue map is used: red inside shapes, blue outside.
	ColorMap palette.ColorMap
}

// DefaultContourOptions returns an 8x6 inch image with 50 bands.
func DefaultContourOptions(title string) ContourOptions {
	return ContourOptions{
		Title:  title,
		Width:  8 * vg.Inch,
		Height: 6 * vg.Inch,
		Levels: 50,
	}
}

// ColorMap returns a named color map. Known names are red-blue, blue-red,
// kindlmann and black-body.
func ColorMap(name string) (palette.ColorMap, error) {
	switch name {
	case "red-blue", "":
		return palette.Reverse(moreland.SmoothBlueRed()), nil
	case "blue-red":
		return moreland.SmoothBlueRed(), nil
	case "kindlmann":
		return moreland.ExtendedKindlmann(), nil
	case "black-body":
		return moreland.ExtendedBlackBody(), nil
	}
	return nil, fmt.Errorf("unknown color map %q", name)
}

// DrawContour draws the field of g as a banded heat map with the zero level set
// outlined in black and a color bar to the right.
func DrawContour(g *sdfgrid.Grid, opts ContourOptions) (*vgimg.Canvas, error) {
	nx, ny := g.Dims()
	if nx < 2 || ny < 2 {
		return nil, errors.New("contour plot needs at least 2 points along each axis")
	}
	if opts.Levels < 2 {
		opts.Levels = 2
	}
	cm := opts.ColorMap
	if cm == nil {
		cm, _ = ColorMap("")
	}
	zmin, zmax := g.Range()
	if zmin == zmax {
		zmin, zmax = zmin-1, zmax+1
	}
	cm.SetMin(zmin)
	cm.SetMax(zmax)

	xyz := fieldXYZ{g}
	heat := plotter.NewHeatMap(xyz, cm.Palette(opts.Levels))
	heat.Min, heat.Max = zmin, zmax

	zero := plotter.NewContour(xyz, []float64{0}, singleColor{color.Black})
	zero.LineStyles = []draw.LineStyle{{Color: color.Black, Width: vg.Points(1.5)}}
	// A single level makes the palette range empty.
	zero.Min, zero.Max = -1, 1

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "X - axis"
	p.Y.Label.Text = "Y - axis"
	p.Add(heat, zero, plotter.NewGrid())

	bar := plot.New()
	bar.Add(&plotter.ColorBar{ColorMap: cm, Vertical: true})
	bar.HideX()
	bar.Y.Label.Text = "Signed Distance of a point on the grid"

	img := vgimg.New(opts.Width, opts.Height)
	dc := draw.New(img)
	barWidth := opts.Width / 6
	p.Draw(draw.Crop(dc, 0, -barWidth, 0, 0))
	bar.Draw(draw.Crop(dc, opts.Width-barWidth, 0, 0, 0))
	return img, nil
}

// WriteContourPNG draws the contour image of g and encodes it as PNG.
func WriteContourPNG(w io.Writer, g *sdfgrid.Grid, opts ContourOptions) error {
	img, err := DrawContour(g, opts)
	if err != nil {
		return err
	}
	_, err = vgimg.PngCanvas{Canvas: img}.WriteTo(w)
	return err
}

// CreateContourPNG writes the contour image of g to path. If thumbWidth is positive
// a copy downscaled to that width is written next to it with a _thumb suffix.
func CreateContourPNG(path string, g *sdfgrid.Grid, opts ContourOptions, thumbWidth int) error {
	img, err := DrawContour(g, opts)
	if err != nil {
		return err
	}
	if err = savePNG(path, img.Image()); err != nil {
		return err
	}
	if thumbWidth <= 0 {
		return nil
	}
	return savePNG(thumbPath(path), Thumbnail(img.Image(), thumbWidth))
}

// Thumbnail scales img to the given width preserving its aspect ratio.
func Thumbnail(img image.Image, width int) image.Image {
	return resize.Resize(uint(width), 0, img, resize.Lanczos3)
}

func thumbPath(path string) string {
	ext := ".png"
	if len(path) > len(ext) && path[len(path)-len(ext):] == ext {
		path = path[:len(path)-len(ext)]
	}
	return path + "_thumb" + ext
}

func savePNG(path string, img image.Image) error {
	fp, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = png.Encode(fp, img); err != nil {
		fp.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return fp.Close()
}

// fieldXYZ exposes a grid as a plotter.GridXYZ with columns along x.
type fieldXYZ struct {
	g *sdfgrid.Grid
}

func (f fieldXYZ) Dims() (c, r int)   { return f.g.Dims() }
func (f fieldXYZ) Z(c, r int) float64 { return f.g.At(c, r) }
func (f fieldXYZ) X(c int) float64    { return f.g.Coord(c, 0).X }
func (f fieldXYZ) Y(r int) float64    { return f.g.Coord(0, r).Y }

type singleColor struct{ c color.Color }

func (s singleColor) Colors() []color.Color { return []color.Color{s.c} }
