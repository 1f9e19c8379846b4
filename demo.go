package glowsphere

import (
	"image"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
)

// Demo is the glowing sphere demo as an ebiten.Game: it polls input, advances the animation once per frame, renders the scene,
// and keeps the camera and output resolution in step with the window.
type Demo struct {
	*DemoScene

	Config    Config
	Clock     Clock
	Input     *Input
	Animator  *Animator
	Viewport  *Viewport
	Panel     *Panel
	PanelView *PanelView
	Intro     *Intro

	lastElapsed float64
}

// NewDemo builds the demo's scene and controls from the configuration given. normalMap may be nil, in which case one is generated.
// clock may be nil, in which case a WallClock started now is used.
func NewDemo(cfg Config, normalMap image.Image, clock Clock) (*Demo, error) {

	ds, err := BuildScene(cfg, normalMap)
	if err != nil {
		return nil, err
	}

	if clock == nil {
		clock = NewClock()
	}

	demo := &Demo{
		DemoScene: ds,
		Config:    cfg,
		Clock:     clock,
		Input:     NewInput(cfg.ScrollStep, cfg.MaxScroll),
		Panel:     BuildPanel(ds),
	}

	demo.Panel.Hidden = !cfg.ShowPanel
	demo.PanelView = NewPanelView(demo.Panel)
	demo.Animator = NewAnimator(clock, demo.Input, ds.Sphere.Node)
	demo.Intro = NewIntro(ds.Sphere.Node, cfg.IntroSeconds)

	demo.Viewport = NewViewport(ds.Camera, ds.Camera)
	demo.Viewport.OnResize = func(viewport *Viewport) {
		w, h := viewport.BufferSize()
		slog.Debug("viewport resized", "width", viewport.Width, "height", viewport.Height, "pixelRatio", viewport.PixelRatio, "bufferWidth", w, "bufferHeight", h)
	}

	slog.Info("scene built",
		"vertices", ds.Sphere.Mesh.VertexCount(),
		"triangles", ds.Sphere.Mesh.TriangleCount(),
		"lights", len(ds.Scene.Lights),
	)

	return demo, nil

}

// Step runs one frame of the demo's logic: input events first, then the animation frame, then the intro.
func (demo *Demo) Step(source InputSource) {

	demo.Input.Poll(source, demo.Viewport, demo.Sphere.Node)

	demo.Animator.Frame()

	elapsed := demo.Clock.Elapsed()
	demo.Intro.Update(elapsed - demo.lastElapsed)
	demo.lastElapsed = elapsed

}

// Update is called by ebiten once per tick.
func (demo *Demo) Update() error {
	demo.PanelView.HandleInput()
	demo.Step(EbitenInput())
	return nil
}

// Draw renders the scene onto the screen, followed by the control panel.
func (demo *Demo) Draw(screen *ebiten.Image) {

	screen.Fill(demo.Scene.ClearColor.ToRGBA64())

	demo.Camera.Clear()
	demo.Camera.RenderScene(demo.Scene)

	screen.DrawImage(demo.Camera.ColorTexture(), nil)

	demo.PanelView.TextScale = demo.Viewport.PixelRatio
	demo.PanelView.Draw(screen)

}

// Layout syncs the viewport to the window's size and the monitor's scale, rendering at the resulting (capped) resolution.
func (demo *Demo) Layout(outsideWidth, outsideHeight int) (int, int) {
	return demo.Viewport.Sync(outsideWidth, outsideHeight, ebiten.Monitor().DeviceScaleFactor())
}
