package ui

import (
	"context"
	"fmt"
	"image/color"
	"log"
	"strings"
	"time"

	"github.com/Yeicor/pointplot-ui/internal"
	"github.com/Yeicor/pointplot-ui/plot"
	"github.com/deadsy/sdfx/vec/v2i"
	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/inpututil"
	"github.com/hajimehoshi/ebiten/text"
)

// onUpdateInputs handles inputs
func (r *Renderer) onUpdateInputs() {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		r.form.FocusNext()
	} else if r.form.Focused() {
		r.onUpdateInputsForm()
	} else {
		r.onUpdateInputsKeys()
	}
	r.onUpdateInputsCamera()
}

// onUpdateInputsForm edits the focused text field
func (r *Renderer) onUpdateInputsForm() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		r.form.Blur()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyKPEnter) {
		if r.form.Focus == internal.FieldFile {
			r.load(r.form.Path())
		} else {
			r.redisplay()
		}
		return
	}
	if isKeyRepeated(ebiten.KeyBackspace) {
		r.form.Backspace()
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		if inpututil.IsKeyJustPressed(ebiten.KeyV) {
			if _, err := r.form.Paste(); err != nil {
				log.Println("[PointPlot] Error reading the clipboard:", err)
			}
		}
		return // Shortcuts do not type
	}
	r.form.Type(ebiten.InputChars())
}

// isKeyRepeated is true when the key is pressed and periodically while it is held down
func isKeyRepeated(key ebiten.Key) bool {
	const delay, interval = 30, 3 // ticks
	d := inpututil.KeyPressDuration(key)
	return d == 1 || d >= delay && (d-delay)%interval == 0
}

// onUpdateInputsKeys handles the shortcuts, only while no field is focused
func (r *Renderer) onUpdateInputsKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		r.implState.ResInv = clampResInv(r.implState.ResInv / 2)
		r.rerender()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		r.implState.ResInv = clampResInv(r.implState.ResInv * 2)
		r.rerender()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		r.implState.DrawBox = !r.implState.DrawBox
		r.rerender()
	}
	// Color
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		r.implState.ColorMode = (r.implState.ColorMode + 1) % r.impl.ColorModes()
		r.rerender()
	}
	// Logarithmic axes
	for axis, key := range []ebiten.Key{ebiten.KeyX, ebiten.KeyY, ebiten.KeyZ} {
		if inpututil.IsKeyJustPressed(key) {
			r.form.ToggleLog(axis)
			r.redisplay()
		}
	}
	// Reset camera transform
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		resetCam3(r)
		r.rerender()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		r.snapshot()
	}
}

// onUpdateInputsCamera applies mouse drags and the wheel to the view transform
func (r *Renderer) onUpdateInputsCamera() {
	cx, cy := getCursor()
	cursor := v2i.Vec{X: cx, Y: cy}
	view := &r.session.View
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) || len(inpututil.JustPressedTouchIDs()) > 0 {
		view.OnPress(cursor)
	}
	changed := view.OnMove(cursor, r.screenSize, dragMode())
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) || inpututil.IsTouchJustReleased(0) {
		view.OnRelease()
	}
	// Zooming
	if _, wheelUpDown := ebiten.Wheel(); view.OnWheel(wheelUpDown) {
		changed = true
	}
	if changed {
		r.rerender()
	}
}

func dragMode() plot.DragMode {
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyShift):
		return plot.DragPan
	case ebiten.IsKeyPressed(ebiten.KeyControl):
		return plot.DragZoom
	}
	return plot.DragRotate
}

func getCursor() (int, int) {
	cx, cy := ebiten.CursorPosition()
	if tX, tY := ebiten.TouchPosition(0); tX != 0 && tY != 0 { // Override cursor with touch if available
		cx, cy = tX, tY
	}
	return cx, cy
}

// drawUI draws the text fields, value labels and the help text
func (r *Renderer) drawUI(screen *ebiten.Image) {
	// Notify when rendering
	ctx, cancelFunc := context.WithTimeout(context.Background(), time.Millisecond)
	defer cancelFunc()
	if r.renderingLock.RTryLock(ctx) {
		r.renderingLock.RUnlock()
	} else {
		drawDefaultTextWithShadow(screen, "Rendering...", 5, 5+12, color.RGBA{R: 255, A: 255})
	}

	// Text fields
	fieldsColor := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	drawDefaultTextWithShadow(screen, strings.Join(r.form.Lines(), "\n"), 5, 5+3*12, fieldsColor)

	// Value labels
	if r.minLabel != "" {
		labels := fmt.Sprintf("Min value: %s\nMax value: %s\nPoints: %d", r.minLabel, r.maxLabel, len(r.session.Points))
		boundString := text.BoundString(defaultFont, labels)
		drawDefaultTextWithShadow(screen, labels, r.screenSize.X-boundString.Size().X-10, 5+12, fieldsColor)
	}

	// Draw current state and controls
	msgFmt := "Point Plot 3D\n=============\nTPS: %0.2f/%d\nResolution: %.2f [+/-]\nColor: %d [C]\nBox: %t [B]\n" +
		"Log axes [X/Y/Z]\nReset camera [R]\nSnapshot [P]\nEdit fields [Tab/Esc/Enter]\n" +
		"Rotate cam [LeftMouse]\nTranslate cam [Shift+LeftMouse]\nZoom cam [Ctrl+LeftMouse/MouseWheel]"
	msg := fmt.Sprintf(msgFmt, ebiten.CurrentTPS(), ebiten.MaxTPS(), 1/float64(r.implState.ResInv), r.implState.ColorMode, r.implState.DrawBox)
	boundString := text.BoundString(defaultFont, msg)
	drawDefaultTextWithShadow(screen, msg, 5, r.screenSize.Y-boundString.Size().Y+10, color.RGBA{G: 255, A: 255})
}
