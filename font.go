package ui

import (
	"image/color"

	"github.com/Yeicor/pointplot-ui/internal"
	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/text"
	"golang.org/x/image/font"
)

var defaultFont font.Face

func init() {
	var err error
	defaultFont, err = internal.NewFontFace(12)
	if err != nil {
		panic(err) // The font is embedded
	}
}

func drawDefaultTextWithShadow(screen *ebiten.Image, msg string, x, y int, c color.Color) {
	text.Draw(screen, msg, defaultFont, x+1, y+1, color.RGBA{A: 255})
	text.Draw(screen, msg, defaultFont, x, y, c)
}
