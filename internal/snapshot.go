package internal

import (
	"image"
	"image/color"
	"time"

	"github.com/Yeicor/pointplot-ui/plot"
	"github.com/fogleman/gg"
)

// Snapshot is a saved image of the current render with its legend.
type Snapshot struct {
	Render             image.Image
	Title              string
	RangeMin, RangeMax string // Display range shown at the ends of the color legend
}

// SnapshotFileName is the default file name of a snapshot taken at the given time.
func SnapshotFileName(now time.Time) string {
	return "pointplot-" + now.Format("20060102-150405") + ".png"
}

// legend geometry, in pixels
const (
	legendMargin = 24.
	legendWidth  = 12.
	legendMinLen = 32.
)

// Draw returns the render with the title and the pseudo-color legend of the display range painted over it.
func (s *Snapshot) Draw() (image.Image, error) {
	dc := gg.NewContextForImage(s.Render)
	face, err := NewFontFace(12)
	if err != nil {
		return nil, err
	}
	dc.SetFontFace(face)

	w, h := float64(dc.Width()), float64(dc.Height())
	barX, barY, barH := w-legendMargin-legendWidth, legendMargin, h-2*legendMargin
	if barX > 0 && barH >= legendMinLen {
		for i := 0; i < int(barH); i++ {
			// Top is the display max
			dc.SetColor(plot.PseudoColor(1 - float64(i)/(barH-1)))
			dc.DrawRectangle(barX, barY+float64(i), legendWidth, 1)
			dc.Fill()
		}
		dc.SetLineWidth(1)
		dc.SetColor(color.Black)
		dc.DrawRectangle(barX, barY, legendWidth, barH)
		dc.Stroke()
		drawStringWithShadow(dc, s.RangeMax, barX-4, barY, 1, 0.5)
		drawStringWithShadow(dc, s.RangeMin, barX-4, barY+barH, 1, 0.5)
	}
	drawStringWithShadow(dc, s.Title, 8, 8, 0, 1)
	return dc.Image(), nil
}

// Save draws the snapshot and writes it as a PNG file.
func (s *Snapshot) Save(path string) error {
	img, err := s.Draw()
	if err != nil {
		return err
	}
	return gg.SavePNG(path, img)
}

func drawStringWithShadow(dc *gg.Context, str string, x, y, ax, ay float64) {
	dc.SetColor(color.Black)
	dc.DrawStringAnchored(str, x+1, y+1, ax, ay)
	dc.SetColor(color.White)
	dc.DrawStringAnchored(str, x, y, ax, ay)
}
