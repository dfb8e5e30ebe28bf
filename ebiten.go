package ui

import (
	"log"

	"github.com/deadsy/sdfx/vec/v2i"
	"github.com/hajimehoshi/ebiten"
)

// rendererEbitenGame hides the private ebiten implementation while behaving like a *Renderer internally
type rendererEbitenGame struct {
	*Renderer
}

func (r rendererEbitenGame) Update(_ *ebiten.Image) error {
	var err error
	if r.cachedRender == nil { // This always runs before the first frame
		r.cachedRender, err = ebiten.NewImage(1, 1, ebiten.FilterDefault)
		if err != nil {
			return err
		}
	}
	select {
	case sig := <-r.signals:
		log.Println("[PointPlot] Received", sig, "signal, exiting")
		return errShutdown
	default:
	}
	if r.watcher != nil {
		select {
		case <-r.watcher.Changes:
			if r.session.Path != "" {
				log.Println("[PointPlot] Data file changed, reloading")
				r.load(r.session.Path)
			}
		default:
		}
	}
	r.layoutLock.Lock()
	newScreenSize := r.layoutSize
	r.layoutLock.Unlock()
	if r.screenSize != newScreenSize {
		r.screenSize = newScreenSize
		r.rerender()
	}
	r.onUpdateInputs()
	return nil
}

func (r rendererEbitenGame) Draw(screen *ebiten.Image) {
	r.drawScene(screen)
	r.drawUI(screen)
}

func (r rendererEbitenGame) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	r.layoutLock.Lock()
	r.layoutSize = v2i.Vec{X: outsideWidth, Y: outsideHeight} // Applied on the next Update
	r.layoutLock.Unlock()
	return outsideWidth, outsideHeight // Use all available pixels, no re-scaling (unless ResInv is modified)
}

// drawScene uploads the latest finished render (if new) and draws it scaled to the screen.
func (r *Renderer) drawScene(screen *ebiten.Image) {
	if r.cachedRender == nil {
		return
	}
	r.cachedRenderLock.Lock()
	if r.lastRenderDirty {
		size := r.lastRender.Bounds().Size()
		if w, h := r.cachedRender.Size(); w != size.X || h != size.Y {
			_ = r.cachedRender.Dispose()
			newImage, err := ebiten.NewImage(size.X, size.Y, ebiten.FilterDefault)
			if err != nil {
				r.cachedRenderLock.Unlock()
				log.Println("[PointPlot] Error creating render image:", err)
				return
			}
			r.cachedRender = newImage
		}
		if err := r.cachedRender.ReplacePixels(r.lastRender.Pix); err != nil {
			log.Println("[PointPlot] Error uploading render:", err)
		}
		r.lastRenderDirty = false
	}
	r.cachedRenderLock.Unlock()

	w, h := r.cachedRender.Size()
	drawOpts := &ebiten.DrawImageOptions{}
	if r.screenSize.X > 0 && r.screenSize.Y > 0 {
		drawOpts.GeoM.Scale(float64(r.screenSize.X)/float64(w), float64(r.screenSize.Y)/float64(h))
	}
	if err := screen.DrawImage(r.cachedRender, drawOpts); err != nil {
		log.Println("[PointPlot] Error drawing render:", err)
	}
}
