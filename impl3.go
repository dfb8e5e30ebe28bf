package ui

import (
	"image/color"
	"log"

	"github.com/Yeicor/pointplot-ui/internal"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/fogleman/fauxgl"
)

//-----------------------------------------------------------------------------
// CONFIGURATION
//-----------------------------------------------------------------------------

// Opt3Colors changes the background and bounding box colors.
func Opt3Colors(background, box color.RGBA) Option {
	return func(r *Renderer) {
		if r3, ok := r.impl.(*internal.Renderer3); ok {
			r3.BackgroundColor = background
			r3.BoxColor = box
		}
	}
}

// Opt3LightDir sets the light direction for the shaded color mode.
func Opt3LightDir(lightDir v3.Vec) Option {
	return func(r *Renderer) {
		if r3, ok := r.impl.(*internal.Renderer3); ok {
			r3.LightDir = fauxgl.Vector{X: lightDir.X, Y: lightDir.Y, Z: lightDir.Z}.Normalize()
		}
	}
}

// Opt3MarkerCells sets the detail of the round markers: the number of marching cubes cells on each side.
func Opt3MarkerCells(cells int) Option {
	return func(r *Renderer) {
		if r3, ok := r.impl.(*internal.Renderer3); ok {
			if err := r3.SetMeshCells(cells); err != nil {
				log.Println("[PointPlot] Ignoring marker detail:", err)
			}
		}
	}
}

// Opt3Perspective sets the perspective factor of the projection (default 0.25). Lower values look flatter.
// The camera distance is 1/perspective times the size of the data.
func Opt3Perspective(perspective float64) Option {
	return func(r *Renderer) {
		if perspective > 0 {
			r.session.Perspective = perspective
		}
	}
}
