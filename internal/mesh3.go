package internal

import (
	"fmt"
	"math"

	"github.com/Yeicor/pointplot-ui/plot"
	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/fogleman/fauxgl"
)

// MarkerMeshes holds one template mesh per marker shape, each fitting the [-0.5, 0.5] cube.
type MarkerMeshes struct {
	meshes [3]*fauxgl.Mesh
}

// NewMarkerMeshes builds the template meshes: ellipsoids and bars are meshed from their SDFs using meshCells cells on
// the longest side, pyramids are built directly.
func NewMarkerMeshes(meshCells int) (*MarkerMeshes, error) {
	if meshCells < 2 {
		return nil, fmt.Errorf("at least 2 mesh cells are needed, got %d", meshCells)
	}
	sphere, err := sdf.Sphere3D(0.5)
	if err != nil {
		return nil, err
	}
	bar := sdf.Extrude3D(sdf.Box2D(v2.Vec{X: 1, Y: 1}, 0), 1)
	res := &MarkerMeshes{}
	res.meshes[plot.ShapeEllipsoid] = meshFromSDF(sphere, render.NewMarchingCubesUniform(meshCells), math.Pi/3)
	res.meshes[plot.ShapePyramid] = pyramidMesh()
	res.meshes[plot.ShapeBar] = meshFromSDF(bar, render.NewMarchingCubesUniform(meshCells), 0)
	return res, nil
}

// Mesh returns the template for the shape (nil if unknown).
func (m *MarkerMeshes) Mesh(shape plot.Shape) *fauxgl.Mesh {
	if shape < 0 || int(shape) >= len(m.meshes) {
		return nil
	}
	return m.meshes[shape]
}

// Scale is the scale to apply to the template of a marker: ellipsoids are Width x Height x Height, pyramids have a
// Width x Width base and are Height tall along Y, and bars are Width x Width plates Height thick along their Axis.
func Scale(m plot.Marker) fauxgl.Vector {
	switch m.Shape {
	case plot.ShapePyramid:
		return fauxgl.V(m.Width, m.Height, m.Width)
	case plot.ShapeBar:
		switch m.Axis {
		case plot.AxisX:
			return fauxgl.V(m.Height, m.Width, m.Width)
		case plot.AxisY:
			return fauxgl.V(m.Width, m.Height, m.Width)
		}
		return fauxgl.V(m.Width, m.Width, m.Height)
	}
	return fauxgl.V(m.Width, m.Height, m.Height)
}

func meshFromSDF(s sdf.SDF3, meshGenerator render.Render3, smoothNormalsRadians float64) *fauxgl.Mesh {
	var triangles []*fauxgl.Triangle
	triChan := make(chan []*render.Triangle3)
	go func() {
		meshGenerator.Render(s, triChan)
		close(triChan)
	}()
	for tris := range triChan {
		for _, tri := range tris {
			triangles = append(triangles, r3mConvertTriangle(tri))
		}
	}
	mesh := fauxgl.NewTriangleMesh(triangles)
	if smoothNormalsRadians > 0 {
		mesh.SmoothNormalsThreshold(smoothNormalsRadians)
	}
	return mesh
}

// pyramidMesh is a square based pyramid pointing to Y+.
func pyramidMesh() *fauxgl.Mesh {
	b0, b1, b2, b3 := fauxgl.V(-0.5, -0.5, -0.5), fauxgl.V(0.5, -0.5, -0.5), fauxgl.V(0.5, -0.5, 0.5), fauxgl.V(-0.5, -0.5, 0.5)
	apex := fauxgl.V(0, 0.5, 0)
	return fauxgl.NewTriangleMesh([]*fauxgl.Triangle{
		flatTriangle(b3, b2, apex),
		flatTriangle(b2, b1, apex),
		flatTriangle(b1, b0, apex),
		flatTriangle(b0, b3, apex),
		flatTriangle(b0, b1, b2),
		flatTriangle(b0, b2, b3),
	})
}

// flatTriangle builds a counter-clockwise triangle with its face normal on every vertex.
func flatTriangle(p1, p2, p3 fauxgl.Vector) *fauxgl.Triangle {
	normal := p2.Sub(p1).Cross(p3.Sub(p1)).Normalize()
	return &fauxgl.Triangle{
		V1: fauxgl.Vertex{Position: p1, Normal: normal, Color: fauxgl.Gray(1)},
		V2: fauxgl.Vertex{Position: p2, Normal: normal, Color: fauxgl.Gray(1)},
		V3: fauxgl.Vertex{Position: p3, Normal: normal, Color: fauxgl.Gray(1)},
	}
}

func r3mConvertTriangle(tri *render.Triangle3) *fauxgl.Triangle {
	normalV := r3mToFauxglVector(tri.Normal())
	return &fauxgl.Triangle{
		V1: fauxgl.Vertex{Position: r3mToFauxglVector(tri.V[0]), Normal: normalV, Color: fauxgl.Gray(1)},
		V2: fauxgl.Vertex{Position: r3mToFauxglVector(tri.V[1]), Normal: normalV, Color: fauxgl.Gray(1)},
		V3: fauxgl.Vertex{Position: r3mToFauxglVector(tri.V[2]), Normal: normalV, Color: fauxgl.Gray(1)},
	}
}

func r3mToFauxglVector(v v3.Vec) fauxgl.Vector {
	return fauxgl.Vector{X: v.X, Y: v.Y, Z: v.Z}
}
