package glowsphere

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestCamera() *Camera {
	camera := NewCamera(75, 800.0/600.0, 0.1, 100)
	camera.SetLocalPosition(0, 0, 2)
	// Set the output size directly so no texture gets allocated.
	camera.width, camera.height = 800, 600
	return camera
}

func TestCameraViewMatrix(t *testing.T) {
	camera := newTestCamera()
	assert.True(t, NewVector(0, 0, -2).Equals(camera.ViewMatrix().MultVec(Vector{})))
}

func TestCameraWorldToScreen(t *testing.T) {

	camera := newTestCamera()

	center, ok := camera.WorldToScreen(Vector{})
	assert.True(t, ok)
	assert.InDelta(t, 400, center.X, 1e-9)
	assert.InDelta(t, 300, center.Y, 1e-9)
	assert.InDelta(t, 2, center.W, 1e-9, "W is the depth in front of the camera")

	f := 1 / math.Tan(75*math.Pi/360)
	right, ok := camera.WorldToScreen(NewVector(0.5, 0, 0))
	assert.True(t, ok)
	assert.InDelta(t, (f/(800.0/600.0)*0.5/2*0.5+0.5)*800, right.X, 1e-9)

	up, _ := camera.WorldToScreen(NewVector(0, 0.5, 0))
	assert.Less(t, up.Y, 300.0, "screen Y grows downwards")

	_, ok = camera.WorldToScreen(NewVector(0, 0, 3))
	assert.False(t, ok, "points behind the camera don't project")

}

func TestCameraAspect(t *testing.T) {

	camera := newTestCamera()
	before := camera.Projection()

	camera.SetAspect(2)
	assert.Equal(t, before, camera.Projection(), "the projection waits for UpdateProjectionMatrix")

	camera.UpdateProjectionMatrix()
	assert.InDelta(t, before[1][1]/2, camera.Projection()[0][0], 1e-12)
	assert.Equal(t, before[1][1], camera.Projection()[1][1], "the vertical field of view is kept")

}

func TestCameraRenderWithoutTexture(t *testing.T) {
	ds, err := BuildScene(DefaultConfig(), nil)
	if err != nil {
		t.Fatal(err)
	}
	ds.Camera.DrawnTriangles = 10
	ds.Camera.RenderScene(ds.Scene)
	assert.Equal(t, 0, ds.Camera.DrawnTriangles)
	assert.Nil(t, ds.Camera.ColorTexture())
}
