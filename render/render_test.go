package render

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/soypat/sdfgrid"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/plot/cmpimg"
	"gonum.org/v1/plot/vg"
)

func circleGrid(nx, ny int, spacing float64) *sdfgrid.Grid {
	g := sdfgrid.NewGrid(nx, ny, spacing, sdfgrid.BoundaryReflective)
	g.FillCircle(r2.Vec{X: float64(nx-1) * spacing / 2, Y: float64(ny-1) * spacing / 2}, float64(nx)*spacing/4)
	return g
}

func TestSurfaceTriangles(t *testing.T) {
	g := circleGrid(5, 4, 1)
	r := NewSurfaceRenderer(g, 1)
	// Small buffer to exercise partial reads.
	buf := make([]Triangle3, 5)
	var model []Triangle3
	for {
		n, err := r.ReadTriangles(buf)
		model = append(model, buf[:n]...)
		if err == io.EOF {
			break
		} else if err != nil {
			t.Fatal(err)
		}
	}
	if len(model) != 2*4*3 {
		t.Fatalf("got %d triangles, want %d", len(model), 2*4*3)
	}
	for i, tri := range model {
		if tri.Degenerate(1e-12) {
			t.Errorf("triangle %d degenerate: %+v", i, tri)
		}
		for _, v := range tri.V {
			i, j := int(v.X), int(v.Y)
			if v.Z != g.At(i, j) {
				t.Fatalf("vertex %v height does not match field %v", v, g.At(i, j))
			}
		}
	}
}

func TestSurfaceFlatNormals(t *testing.T) {
	g := sdfgrid.NewGrid(4, 4, 0.5, sdfgrid.BoundaryNone)
	model, err := RenderAll(NewSurfaceRenderer(g, 3))
	if err != nil {
		t.Fatal(err)
	}
	for _, tri := range model {
		if n := tri.Normal(); n != (r3.Vec{Z: 1}) {
			t.Errorf("flat surface normal got %v, want +z", n)
		}
	}
	empty, err := RenderAll(NewSurfaceRenderer(sdfgrid.NewGrid(1, 5, 1, sdfgrid.BoundaryNone), 1))
	if err != nil || len(empty) != 0 {
		t.Errorf("single row grid should render nothing, got %d triangles, err %v", len(empty), err)
	}
}

func TestSTLWriteReadback(t *testing.T) {
	const tol = 1e-5
	input, err := RenderAll(NewSurfaceRenderer(circleGrid(12, 9, 0.25), 1))
	if err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	if err = WriteSTL(&b, input); err != nil {
		t.Fatal(err)
	}
	output, err := ReadSTL(&b)
	if err != nil && !errors.Is(err, errNormalMismatch) {
		t.Fatal(err)
	}
	if len(output) != len(input) {
		t.Fatal("length of triangles written/read not equal")
	}
	mismatches := 0
	for iface, expect := range input {
		got := output[iface]
		for i := range expect.V {
			if d := r3.Norm(r3.Sub(got.V[i], expect.V[i])); d > tol {
				mismatches++
				t.Errorf("%dth triangle equality out of tolerance. got vertex %0.5g, want %0.5g", iface, got.V[i], expect.V[i])
			}
		}
		if mismatches > 10 {
			t.Fatal("too many mismatches")
		}
	}
}

func TestCreateSTLMatchesWriteSTL(t *testing.T) {
	g := circleGrid(10, 10, 0.5)
	path := filepath.Join(t.TempDir(), "surface.stl")
	if err := CreateSTL(path, NewSurfaceRenderer(g, 1)); err != nil {
		t.Fatal(err)
	}
	bfile, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	model, err := RenderAll(NewSurfaceRenderer(g, 1))
	if err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	if err = WriteSTL(&b, model); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(b.Bytes(), bfile) {
		t.Fatalf("WriteSTL and CreateSTL output mismatch: %d vs %d bytes", b.Len(), len(bfile))
	}
}

func TestCSVLayout(t *testing.T) {
	g := sdfgrid.NewGrid(10, 10, 1, sdfgrid.BoundaryNone)
	g.FillCircle(r2.Vec{X: 5, Y: 5}, 3)
	var b bytes.Buffer
	if err := WriteCSV(&b, g.Field()); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
	if len(lines) != 10 {
		t.Fatalf("expected one line per x index, got %d lines", len(lines))
	}
	row5 := strings.Split(lines[5], ",")
	if len(row5) != 10 {
		t.Fatalf("expected 10 values per line, got %d", len(row5))
	}
	if row5[5] != "-3.000000000000000000e+00" {
		t.Errorf("field[5][5] formatted as %q", row5[5])
	}
	back, err := ReadCSV(&b)
	if err != nil {
		t.Fatal(err)
	}
	if !mat.Equal(back, g.Field()) {
		t.Error("csv round trip changed values")
	}
}

func TestReadCSVErrors(t *testing.T) {
	for _, input := range []string{
		"",
		"1,2\n3\n",
		"1,2\n3,x\n",
	} {
		if _, err := ReadCSV(strings.NewReader(input)); err == nil {
			t.Errorf("expected error reading %q", input)
		}
	}
}

func TestContourImage(t *testing.T) {
	g := circleGrid(40, 30, 0.1)
	opts := DefaultContourOptions("Signed Distance Function - Circle (Reflective)")
	var b1, b2 bytes.Buffer
	if err := WriteContourPNG(&b1, g, opts); err != nil {
		t.Fatal(err)
	}
	if err := WriteContourPNG(&b2, g, opts); err != nil {
		t.Fatal(err)
	}
	equal, err := cmpimg.EqualApprox("png", b1.Bytes(), b2.Bytes(), 0)
	if err != nil {
		t.Fatal(err)
	}
	if !equal {
		t.Error("contour rendering is not deterministic")
	}
	img, err := png.Decode(&b1)
	if err != nil {
		t.Fatal(err)
	}
	size := img.Bounds().Size()
	want := image.Pt(int(opts.Width.Dots(96)), int(opts.Height.Dots(96)))
	if size != want {
		t.Errorf("image size got %v, want %v", size, want)
	}

	other := sdfgrid.NewGrid(40, 30, 0.1, sdfgrid.BoundaryPeriodic)
	other.FillRectangle(r2.Vec{X: 1, Y: 1}, r2.Vec{X: 3, Y: 2})
	b1.Reset()
	if err := WriteContourPNG(&b1, other, opts); err != nil {
		t.Fatal(err)
	}
	equal, err = cmpimg.EqualApprox("png", b1.Bytes(), b2.Bytes(), 0.01)
	if err != nil {
		t.Fatal(err)
	}
	if equal {
		t.Error("different fields rendered to the same image")
	}
}

func TestContourFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "circle_grid.png")
	opts := DefaultContourOptions("thumb")
	opts.Width, opts.Height = 4*vg.Inch, 3*vg.Inch
	if err := CreateContourPNG(path, circleGrid(20, 20, 0.2), opts, 100); err != nil {
		t.Fatal(err)
	}
	fp, err := os.Open(filepath.Join(dir, "circle_grid_thumb.png"))
	if err != nil {
		t.Fatal(err)
	}
	defer fp.Close()
	thumb, err := png.Decode(fp)
	if err != nil {
		t.Fatal(err)
	}
	if got := thumb.Bounds().Size(); got != image.Pt(100, 75) {
		t.Errorf("thumbnail size got %v, want 100x75", got)
	}
	if _, err := DrawContour(sdfgrid.NewGrid(1, 4, 1, sdfgrid.BoundaryNone), opts); err == nil {
		t.Error("expected error for single column grid")
	}
	if _, err := ColorMap("viridis"); err == nil {
		t.Error("expected error for unknown color map")
	}
}

func TestShadeSurface(t *testing.T) {
	opts := ShadeOptions{
		Width:       64,
		Height:      48,
		Supersample: 2,
		Color:       "#468966",
		View:        DefaultView,
	}
	img, err := Shade(NewSurfaceRenderer(circleGrid(16, 16, 0.25), 1), opts)
	if err != nil {
		t.Fatal(err)
	}
	if got := img.Bounds().Size(); got != image.Pt(64, 48) {
		t.Fatalf("shaded image size got %v, want 64x48", got)
	}
	bg := img.At(0, 0)
	r0, g0, b0, _ := bg.RGBA()
	var painted int
	for x := 0; x < 64; x++ {
		for y := 0; y < 48; y++ {
			r, g, b, _ := img.At(x, y).RGBA()
			if r != r0 || g != g0 || b != b0 {
				painted++
			}
		}
	}
	if painted == 0 {
		t.Error("shaded image contains only background")
	}
	if _, err := Shade(NewSurfaceRenderer(sdfgrid.NewGrid(1, 1, 1, sdfgrid.BoundaryNone), 1), opts); err == nil {
		t.Error("expected error shading an empty mesh")
	}
}
