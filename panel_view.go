package glowsphere

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PanelView draws a Panel in the top-right corner of the screen and drives it from the keyboard:
// H shows or hides it, Up / Down select a row, Left / Right nudge the selected control (hold Shift for 10 steps),
// Enter opens or closes the selected folder, and C switches a selected color between hue, saturation and value.
type PanelView struct {
	Panel *Panel
	// TextScale scales the panel's text; it's usually set to the viewport's pixel ratio so the panel keeps its apparent size.
	TextScale float64
}

// NewPanelView returns a PanelView for the Panel given.
func NewPanelView(panel *Panel) *PanelView {
	return &PanelView{
		Panel:     panel,
		TextScale: 1,
	}
}

// repeating returns true on the tick a key is pressed and then periodically while it's held.
func repeating(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	return d == 1 || (d >= 20 && d%3 == 0)
}

// HandleInput applies this tick's key presses to the Panel.
func (view *PanelView) HandleInput() {

	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		view.Panel.Hidden = !view.Panel.Hidden
	}

	if view.Panel.Hidden {
		return
	}

	if repeating(ebiten.KeyDown) {
		view.Panel.Move(1)
	}
	if repeating(ebiten.KeyUp) {
		view.Panel.Move(-1)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		view.Panel.Toggle()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		view.Panel.NextChannel()
	}

	steps := 1.0
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		steps = 10
	}

	if repeating(ebiten.KeyRight) {
		view.Panel.Nudge(steps)
	}
	if repeating(ebiten.KeyLeft) {
		view.Panel.Nudge(-steps)
	}

}

// Draw draws the Panel onto the screen, along with a swatch beside every color control.
func (view *PanelView) Draw(screen *ebiten.Image) {

	if view.Panel.Hidden {
		return
	}

	txt := strings.TrimRight(view.Panel.String(), "\n")
	lines := strings.Split(txt, "\n")

	longest := 0
	for _, line := range lines {
		longest = max(longest, len(line))
	}

	scale := view.TextScale
	charWidth := 7.0
	width := (float64(longest)*charWidth + 30) * scale
	height := (float64(len(lines))*DebugTextLineHeight + 12) * scale
	x := float64(screen.Bounds().Dx()) - width - 8*scale
	y := 8 * scale

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width), float32(height), NewColor(0.1, 0.1, 0.1, 0.8).ToRGBA64(), false)

	DebugDrawText(screen, txt, x/scale, y/scale-2, scale, NewColor(0.9, 0.9, 0.9, 1))

	for i, row := range view.Panel.Rows() {
		colorControl, ok := row.Control.(*ColorControl)
		if !ok {
			continue
		}
		swatch := NewColorFromHex(colorControl.Value())
		sx := x + width - 18*scale
		sy := y + (float64(i)*DebugTextLineHeight+8)*scale
		vector.DrawFilledRect(screen, float32(sx), float32(sy), float32(10*scale), float32(10*scale), swatch.ToRGBA64(), false)
	}

}
