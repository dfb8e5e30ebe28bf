package internal

import (
	"image"
	"image/color"
	"math"

	"github.com/Yeicor/pointplot-ui/plot"
	"github.com/deadsy/sdfx/sdf"
	"github.com/fogleman/fauxgl"
)

// Renderer3 draws plot scenes using the fauxgl software rasterizer.
type Renderer3 struct {
	meshes                    *MarkerMeshes
	BackgroundColor, BoxColor color.RGBA
	LightDir                  fauxgl.Vector // Light direction for ColorMode 0
	lastContext               *fauxgl.Context
}

// NewRenderer3 see Renderer3. meshCells controls the detail of the round markers.
func NewRenderer3(meshCells int) (*Renderer3, error) {
	meshes, err := NewMarkerMeshes(meshCells)
	if err != nil {
		return nil, err
	}
	return &Renderer3{
		meshes:          meshes,
		BackgroundColor: color.RGBA{R: 50, G: 100, B: 150, A: 255},
		BoxColor:        color.RGBA{R: 255, G: 255, B: 255, A: 255},
		LightDir:        fauxgl.V(-1, 1, 1).Normalize(),
	}, nil
}

// SetMeshCells rebuilds the marker templates with a different level of detail.
func (r *Renderer3) SetMeshCells(meshCells int) error {
	meshes, err := NewMarkerMeshes(meshCells)
	if err != nil {
		return err
	}
	r.meshes = meshes
	return nil
}

// markerBatch is the number of markers drawn between cancellation checks.
const markerBatch = 256

func (r *Renderer3) ColorModes() int {
	// 0: Marker color with basic shading (1 light and no projected shadows)
	// 1: Flat marker color
	// 2: Normal XYZ as RGB
	return 3
}

// Render draws every visible marker of args.Scene. Fully transparent markers are skipped.
func (r *Renderer3) Render(args *RenderArgs) error {
	bounds := args.FullRender.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil
	}
	if r.lastContext == nil || r.lastContext.Width != bounds.Dx() || r.lastContext.Height != bounds.Dy() {
		// Rebuild rendering context only when needed
		r.lastContext = fauxgl.NewContext(bounds.Dx(), bounds.Dy())
		r.lastContext.Cull = fauxgl.CullNone
	} else {
		r.lastContext.ClearDepthBuffer()
	}
	r.lastContext.ClearColorBufferWith(fauxgl.MakeColor(r.BackgroundColor))

	view := args.State.View
	aspectRatio := float64(bounds.Dx()) / float64(bounds.Dy())
	camera := view.Camera(aspectRatio)
	// Marker sizes are in the fitted unit cube, so markers are placed with Base and drawn through User only
	worldToClip := camera.Mul(view.User)
	eye := view.EyePosition()

	if args.Scene != nil {
		for i, m := range args.Scene.Markers {
			if i%markerBatch == 0 {
				select {
				case <-args.Ctx.Done():
					return args.Ctx.Err()
				default:
				}
			}
			if m.Color.A == 0 {
				continue
			}
			r.drawMarker(m, view.Base, worldToClip, eye, args.State.ColorMode)
		}
	}
	if args.State.DrawBox && args.Scene != nil {
		r.drawBoundingBox(plot.BoundingBox(args.Scene.Ranges), camera.Mul(view.Total))
	}

	// Copy output full render
	img := r.lastContext.Image().(*image.NRGBA)
	args.CachedRenderLock.Lock()
	copy(args.FullRender.Pix[args.FullRender.PixOffset(bounds.Min.X, bounds.Min.Y):], img.Pix[img.PixOffset(0, 0):])
	args.CachedRenderLock.Unlock()
	return nil
}

func (r *Renderer3) drawMarker(m plot.Marker, base, worldToClip fauxgl.Matrix, eye fauxgl.Vector, colorMode int) {
	mesh := r.meshes.Mesh(m.Shape)
	if mesh == nil {
		return
	}
	center := base.MulPosition(r3mToFauxglVector(m.Position))
	if math.IsNaN(center.X) || math.IsNaN(center.Y) || math.IsNaN(center.Z) {
		return
	}
	matrix := worldToClip.Mul(fauxgl.Scale(Scale(m)).Translate(center))
	objectColor := fauxgl.MakeColor(m.Color)
	switch colorMode {
	case 0: // use builtin phong shader
		shader := fauxgl.NewPhongShader(matrix, r.LightDir, eye)
		shader.ObjectColor = objectColor
		r.lastContext.Shader = shader
	case 1:
		r.lastContext.Shader = fauxgl.NewSolidColorShader(matrix, objectColor)
	default: // use normal based shader
		r.lastContext.Shader = &r3mNormalShader{matrix}
	}
	r.lastContext.Wireframe = false
	r.lastContext.DrawMesh(mesh)
}

// drawBoundingBox outlines box, given in data coordinates, transformed by dataToClip.
func (r *Renderer3) drawBoundingBox(box sdf.Box3, dataToClip fauxgl.Matrix) {
	mesh := fauxgl.NewCubeOutlineForBox(fauxgl.Box{
		Min: r3mToFauxglVector(box.Min),
		Max: r3mToFauxglVector(box.Max),
	})

	// Render the cube as a wireframe
	r.lastContext.Shader = fauxgl.NewSolidColorShader(dataToClip, fauxgl.MakeColor(r.BoxColor))
	r.lastContext.Wireframe = true
	r.lastContext.DrawMesh(mesh)
	r.lastContext.Wireframe = false
}

// r3mNormalShader
type r3mNormalShader struct {
	Matrix fauxgl.Matrix
}

func (shader *r3mNormalShader) Vertex(v fauxgl.Vertex) fauxgl.Vertex {
	v.Output = shader.Matrix.MulPositionW(v.Position)
	return v
}

func (shader *r3mNormalShader) Fragment(v fauxgl.Vertex) fauxgl.Color {
	return fauxgl.MakeColor(color.RGBA{
		R: uint8(math.Abs(v.Normal.X) * 255),
		G: uint8(math.Abs(v.Normal.Y) * 255),
		B: uint8(math.Abs(v.Normal.Z) * 255),
		A: 255,
	})
}
