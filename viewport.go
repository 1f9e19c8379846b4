package glowsphere

import "math"

// MaxPixelRatio caps the device pixel ratio used for the output buffer; beyond 2x the extra pixels cost more than they show.
const MaxPixelRatio = 2.0

// ProjectionTarget is a camera whose projection follows the viewport's aspect ratio.
type ProjectionTarget interface {
	SetAspect(aspect float64)
	UpdateProjectionMatrix()
}

// OutputTarget is a render output whose resolution follows the viewport.
type OutputTarget interface {
	Resize(w, h int)
}

// Viewport keeps the camera projection and render output in step with the size of the window (or browser page).
type Viewport struct {
	Width, Height int     // Size in viewport (CSS-like) units.
	PixelRatio    float64 // Output pixels per viewport unit, capped at MaxPixelRatio.

	Camera ProjectionTarget
	Output OutputTarget

	// OnResize, if set, is called after every effective resize.
	OnResize func(viewport *Viewport)
}

// NewViewport returns a Viewport driving the camera and output given. Either may be nil.
func NewViewport(camera ProjectionTarget, output OutputTarget) *Viewport {
	return &Viewport{
		Camera:     camera,
		Output:     output,
		PixelRatio: 1,
	}
}

// Resize updates the stored size, recomputes the camera's aspect ratio and projection, and resizes the output to
// the viewport size times the capped pixel ratio.
func (viewport *Viewport) Resize(w, h int, deviceScale float64) {

	viewport.Width = max(w, 1)
	viewport.Height = max(h, 1)

	if deviceScale <= 0 {
		deviceScale = 1
	}
	viewport.PixelRatio = math.Min(deviceScale, MaxPixelRatio)

	if viewport.Camera != nil {
		viewport.Camera.SetAspect(float64(viewport.Width) / float64(viewport.Height))
		viewport.Camera.UpdateProjectionMatrix()
	}

	if viewport.Output != nil {
		viewport.Output.Resize(viewport.BufferSize())
	}

	if viewport.OnResize != nil {
		viewport.OnResize(viewport)
	}

}

// Sync resizes the viewport only if the size or device scale has changed, returning the output buffer size either way.
// It is meant to be called from ebiten's Layout(), which runs every frame.
func (viewport *Viewport) Sync(w, h int, deviceScale float64) (int, int) {
	ratio := math.Min(deviceScale, MaxPixelRatio)
	if deviceScale <= 0 {
		ratio = 1
	}
	// Resize stores at least 1x1, so compare against that to keep a minimized window from resizing every frame.
	w, h = max(w, 1), max(h, 1)
	if w != viewport.Width || h != viewport.Height || ratio != viewport.PixelRatio {
		viewport.Resize(w, h, deviceScale)
	}
	return viewport.BufferSize()
}

// BufferSize returns the output buffer size in pixels.
func (viewport *Viewport) BufferSize() (int, int) {
	return int(math.Round(float64(viewport.Width) * viewport.PixelRatio)), int(math.Round(float64(viewport.Height) * viewport.PixelRatio))
}

// Aspect returns the viewport's aspect ratio.
func (viewport *Viewport) Aspect() float64 {
	return float64(viewport.Width) / float64(viewport.Height)
}
