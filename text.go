package glowsphere

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// DebugTextLineHeight is the height in pixels of a line of debug text at a scale of 1.
const DebugTextLineHeight = 13

var debugTextTexture *ebiten.Image

// DebugDrawText draws the text given onto the screen at the position and scale provided, with a one-pixel black outline so it stays
// readable over any background.
func DebugDrawText(screen *ebiten.Image, txtStr string, posX, posY, textScale float64, color Color) {

	if txtStr == "" {
		return
	}

	size := text.BoundString(basicfont.Face7x13, txtStr).Size()

	if debugTextTexture == nil || size.X > debugTextTexture.Bounds().Dx() || size.Y+DebugTextLineHeight > debugTextTexture.Bounds().Dy() {
		if debugTextTexture != nil {
			debugTextTexture.Deallocate()
		}
		debugTextTexture = ebiten.NewImage(size.X, size.Y+DebugTextLineHeight)
	}

	debugTextTexture.Clear()

	opt := &ebiten.DrawImageOptions{}
	opt.GeoM.Translate(0, DebugTextLineHeight)
	text.DrawWithOptions(debugTextTexture, txtStr, basicfont.Face7x13, opt)

	dr := &ebiten.DrawImageOptions{}
	dr.ColorScale.Scale(0, 0, 0, 1)

	for y := -1; y < 2; y++ {

		for x := -1; x < 2; x++ {

			dr.GeoM.Reset()
			dr.GeoM.Translate(posX+4+float64(x), posY+4+float64(y))
			dr.GeoM.Scale(textScale, textScale)

			screen.DrawImage(debugTextTexture, dr)
		}

	}

	dr.ColorScale.Reset()
	dr.ColorScale.ScaleWithColor(color.ToNRGBA64())

	dr.GeoM.Reset()
	dr.GeoM.Translate(posX+4, posY+4)
	dr.GeoM.Scale(textScale, textScale)

	screen.DrawImage(debugTextTexture, dr)

}
