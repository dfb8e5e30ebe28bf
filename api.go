package ui

import (
	"time"

	"github.com/Yeicor/pointplot-ui/internal"
	"github.com/Yeicor/pointplot-ui/plot"
)

// Option configures a Renderer (see NewRenderer).
type Option = func(r *Renderer)

//-----------------------------------------------------------------------------
// CONFIGURATION
//-----------------------------------------------------------------------------

// OptMWatchFile enables or disables reloading the data file when it changes (enabled by default).
// debounce is how long the file must stay unchanged before reloading (0 keeps the default).
func OptMWatchFile(enabled bool, debounce time.Duration) Option {
	return func(r *Renderer) {
		r.watchFile = enabled
		if debounce > 0 {
			r.watchDebounce = debounce
		}
	}
}

// OptMResInv sets the initial number of screen pixels for each rendered pixel (default 2). It can be changed
// later with the keypad +/- keys.
func OptMResInv(resInv int) Option {
	return func(r *Renderer) {
		r.implState.ResInv = clampResInv(resInv)
	}
}

// OptMColorMode sets the initial color mode (see the C key).
func OptMColorMode(colorMode int) Option {
	return func(r *Renderer) {
		n := r.impl.ColorModes()
		r.implState.ColorMode = (colorMode%n + n) % n
	}
}

// OptMDrawBox shows the bounding box of the data from the start.
func OptMDrawBox(drawBox bool) Option {
	return func(r *Renderer) {
		r.implState.DrawBox = drawBox
	}
}

// OptMSnapshotDir sets the directory where snapshots are saved (default is the working directory).
func OptMSnapshotDir(dir string) Option {
	return func(r *Renderer) {
		r.snapshotDir = dir
	}
}

// OptDisplayRange fills the display range fields. If not set, they are filled with the extrema of the first file.
func OptDisplayRange(min, max string) Option {
	return func(r *Renderer) {
		r.form.Values[internal.FieldDisplayMin] = min
		r.form.Values[internal.FieldDisplayMax] = max
	}
}

// OptProbe fills the manual probe fields, in data coordinates.
func OptProbe(x, y, z string) Option {
	return func(r *Renderer) {
		r.form.Values[internal.FieldProbeX] = x
		r.form.Values[internal.FieldProbeY] = y
		r.form.Values[internal.FieldProbeZ] = z
	}
}

// OptLogAxes sets which axes are shown in logarithmic scale.
func OptLogAxes(logAxes plot.LogAxes) Option {
	return func(r *Renderer) {
		r.form.Log = logAxes
	}
}

//-----------------------------------------------------------------------------
// STATE
//-----------------------------------------------------------------------------

const maxResInv = 64

func (r *Renderer) newRendererState() *internal.RendererState {
	return &internal.RendererState{
		ResInv: 2,
		View:   plot.NewViewTransform(),
	}
}

func clampResInv(resInv int) int {
	return max(1, min(maxResInv, resInv))
}

func resetCam3(r *Renderer) {
	r.session.View.Reset()
}
