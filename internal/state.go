package internal

import (
	"context"
	"image"
	"sync"

	"github.com/Yeicor/pointplot-ui/plot"
)

// DevRendererImpl is the interface implemented by the scene renderers.
// Note that the implementation is independent of the graphics backend used and renders CPU images.
type DevRendererImpl interface {
	// ColorModes returns the number of color modes supported
	ColorModes() int
	// Render performs a full render of the scene into args.FullRender (it may be cancelled using the given context).
	Render(args *RenderArgs) error
}

// RendererState is the display configuration that is not part of the plot session.
type RendererState struct {
	ResInv    int                // How detailed is the image: number screen pixels for each pixel rendered
	DrawBox   bool               // Whether to show the bounding box of the data
	ColorMode int                // The color mode (each render may support multiple modes)
	View      plot.ViewTransform // Copy of the session's view at the time of the render request
}

type RenderArgs struct {
	Ctx              context.Context
	State            *RendererState
	Scene            *plot.Scene // Read-only
	CachedRenderLock *sync.RWMutex
	FullRender       *image.RGBA
}
