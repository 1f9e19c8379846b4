package glowsphere

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// ScrollFactor converts a scroll offset in pixels into a vertical world-space offset.
const ScrollFactor = 0.001

// InputSource is where pointer and wheel state is read from. ebiten provides the real implementation; tests can supply their own.
type InputSource interface {
	// CursorPosition returns the cursor position in output (device) pixels.
	CursorPosition() (x, y int)
	// Wheel returns the wheel movement since the last tick; positive Y scrolls up.
	Wheel() (x, y float64)
}

type ebitenInput struct{}

func (ebitenInput) CursorPosition() (int, int) { return ebiten.CursorPosition() }
func (ebitenInput) Wheel() (float64, float64)  { return ebiten.Wheel() }

// EbitenInput returns an InputSource reading from ebiten's input state.
func EbitenInput() InputSource {
	return ebitenInput{}
}

// Input tracks the latest pointer and scroll signals. It is overwritten in place by every event (last write wins) and
// read by the Animator once per frame.
type Input struct {
	PointerX, PointerY float64 // Pointer offset from the center of the viewport, in viewport units.
	ScrollY            float64 // Page-like scroll offset, in viewport units.

	ScrollStep float64 // How far one wheel notch scrolls.
	MaxScroll  float64 // How far down the page can be scrolled.

	cursorX, cursorY int
	cursorSeen       bool
}

// NewInput returns a new Input with the given wheel step and maximum scroll offset.
func NewInput(scrollStep, maxScroll float64) *Input {
	return &Input{
		ScrollStep: scrollStep,
		MaxScroll:  maxScroll,
	}
}

// PointerMoved records a pointer-move event at (x, y) in viewport units, storing its offset from the viewport's center.
func (input *Input) PointerMoved(x, y float64, viewportWidth, viewportHeight int) {
	input.PointerX = x - float64(viewportWidth)/2
	input.PointerY = y - float64(viewportHeight)/2
}

// Scrolled records a scroll event. The target's vertical position is set right away rather than on the next frame,
// so scroll-driven movement lands even if no frame runs in between.
func (input *Input) Scrolled(scrollY float64, target *Node) {
	input.ScrollY = scrollY
	if target != nil {
		target.Position.Y = scrollY * ScrollFactor
	}
}

// Wheeled converts a wheel movement into a scroll event, clamping the scroll offset to the page. Wheel movement that doesn't
// change the offset (e.g. scrolling up at the top of the page) produces no scroll event, and Wheeled returns false.
func (input *Input) Wheeled(wheelY float64, target *Node) bool {

	scroll := input.ScrollY - wheelY*input.ScrollStep
	scroll = math.Max(0, math.Min(input.MaxScroll, scroll))

	if scroll == input.ScrollY {
		return false
	}

	input.Scrolled(scroll, target)
	return true

}

// Poll reads the input source and dispatches pointer-move and scroll events for anything that changed since the last poll.
// The first poll sets the cursor baseline without dispatching, so the pointer offset stays at 0, 0 until the cursor moves.
// Cursor positions are converted from output pixels into viewport units using the viewport's pixel ratio.
func (input *Input) Poll(source InputSource, viewport *Viewport, target *Node) {

	cx, cy := source.CursorPosition()

	// The first poll only records where the cursor is; the pointer hasn't moved yet.
	if !input.cursorSeen {
		input.cursorX, input.cursorY = cx, cy
		input.cursorSeen = true
	} else if cx != input.cursorX || cy != input.cursorY {
		input.cursorX, input.cursorY = cx, cy
		ratio := viewport.PixelRatio
		if ratio <= 0 {
			ratio = 1
		}
		input.PointerMoved(float64(cx)/ratio, float64(cy)/ratio, viewport.Width, viewport.Height)
	}

	if _, wy := source.Wheel(); wy != 0 {
		input.Wheeled(wy, target)
	}

}
