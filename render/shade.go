package render

import (
	"errors"
	"image"

	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"
	"gonum.org/v1/gonum/spatial/r3"
)

// ViewConfig positions the camera of a shaded render. The mesh is fit in a
// bi-unit cube centered at the origin before rendering.
type ViewConfig struct {
	// Up is the camera up vector.
	Up r3.Vec
	// Eye is the camera position.
	Eye r3.Vec
	// LookAt is the point the camera looks at.
	LookAt    r3.Vec
	Near, Far float64
}

// DefaultView is an isometric view from above with z up.
var DefaultView = ViewConfig{
	Up:   r3.Vec{Z: 1},
	Eye:  r3.Vec{X: -2.4, Y: -2.4, Z: 2.4},
	Near: 1,
	Far:  10,
}

// ShadeOptions configures a shaded render.
type ShadeOptions struct {
	Width, Height int
	// Supersample renders at this multiple of the output size and downsamples
	// the result for antialiasing. Values below 1 are treated as 1.
	Supersample int
	// Color is the hex color of the mesh, for example "#468966".
	Color string
	View  ViewConfig
}

// Shade renders the triangles of r with a Phong shader and returns the image.
func Shade(r Renderer, opts ShadeOptions) (image.Image, error) {
	model, err := RenderAll(r)
	if err != nil {
		return nil, err
	}
	if len(model) == 0 {
		return nil, errors.New("no triangles to shade")
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, errors.New("shade image size must be positive")
	}
	scale := opts.Supersample
	if scale < 1 {
		scale = 1
	}
	const fovy = 30 // vertical field of view in degrees
	view := opts.View
	var (
		eye    = fauxgl.V(view.Eye.X, view.Eye.Y, view.Eye.Z)
		center = fauxgl.V(view.LookAt.X, view.LookAt.Y, view.LookAt.Z)
		up     = fauxgl.V(view.Up.X, view.Up.Y, view.Up.Z)
		light  = fauxgl.V(-0.75, 1, 0.25).Normalize()
	)
	triangles := make([]*fauxgl.Triangle, len(model))
	for i, t := range model {
		triangles[i] = fauxgl.NewTriangleForPoints(fauxV(t.V[0]), fauxV(t.V[1]), fauxV(t.V[2]))
	}
	mesh := fauxgl.NewTriangleMesh(triangles)
	mesh.BiUnitCube()

	context := fauxgl.NewContext(opts.Width*scale, opts.Height*scale)
	context.ClearColorBufferWith(fauxgl.HexColor("#FFF8E3"))
	aspect := float64(opts.Width) / float64(opts.Height)
	matrix := fauxgl.LookAt(eye, center, up).Perspective(fovy, aspect, view.Near, view.Far)
	shader := fauxgl.NewPhongShader(matrix, light, eye)
	shader.ObjectColor = fauxgl.HexColor(opts.Color)
	context.Shader = shader
	context.DrawMesh(mesh)
	// downsample image for antialiasing
	img := context.Image()
	return resize.Resize(uint(opts.Width), uint(opts.Height), img, resize.Bilinear), nil
}

// CreateShadedPNG renders r with Shade and saves the image at path.
func CreateShadedPNG(path string, r Renderer, opts ShadeOptions) error {
	img, err := Shade(r, opts)
	if err != nil {
		return err
	}
	return savePNG(path, img)
}

func fauxV(v r3.Vec) fauxgl.Vector {
	return fauxgl.V(v.X, v.Y, v.Z)
}
