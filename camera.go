package glowsphere

import (
	"cmp"
	"image"
	"image/color"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
)

var whiteImage *ebiten.Image
var whiteSubImage *ebiten.Image

func whiteTexture() *ebiten.Image {
	if whiteSubImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
		whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// sortingTriangle is used specifically for sorting triangles when rendering.
type sortingTriangle struct {
	depth   float64
	indices [3]uint16
}

// Camera represents a perspective camera looking down its local -Z axis, rendering into a backing color texture.
type Camera struct {
	*Node

	fieldOfView float64
	aspect      float64
	near, far   float64

	projection Matrix4

	width, height int
	colorTexture  *ebiten.Image

	vertexList []ebiten.Vertex
	clipList   []Vector
	triList    []sortingTriangle
	indexList  []uint16

	// BackfaceCulling skips triangles that face away from the camera.
	BackfaceCulling bool

	// DrawnTriangles is the number of triangles submitted during the last RenderScene() call.
	DrawnTriangles int
}

// NewCamera creates a new perspective Camera with the vertical field of view (in degrees), aspect ratio, and clipping planes given.
// The Camera has no backing texture until Resize() is called.
func NewCamera(fovY, aspect, near, far float64) *Camera {

	cam := &Camera{
		Node:            NewNode("Camera"),
		fieldOfView:     fovY,
		aspect:          aspect,
		near:            near,
		far:             far,
		BackfaceCulling: true,
	}

	cam.UpdateProjectionMatrix()

	return cam

}

// FieldOfView returns the vertical field of view in degrees.
func (camera *Camera) FieldOfView() float64 {
	return camera.fieldOfView
}

// SetFieldOfView sets the vertical field of the view of the camera in degrees. Call UpdateProjectionMatrix() afterwards.
func (camera *Camera) SetFieldOfView(fovY float64) {
	camera.fieldOfView = fovY
}

// Aspect returns the camera's aspect ratio (width / height).
func (camera *Camera) Aspect() float64 {
	return camera.aspect
}

// SetAspect sets the camera's aspect ratio (width / height). Like a real camera's film back, this doesn't take effect until
// UpdateProjectionMatrix() is called.
func (camera *Camera) SetAspect(aspect float64) {
	camera.aspect = aspect
}

// Near returns the near clipping plane distance.
func (camera *Camera) Near() float64 {
	return camera.near
}

// Far returns the far clipping plane distance.
func (camera *Camera) Far() float64 {
	return camera.far
}

// UpdateProjectionMatrix recomputes the projection matrix from the camera's field of view, aspect ratio, and clipping planes.
func (camera *Camera) UpdateProjectionMatrix() {
	camera.projection = NewProjectionPerspective(camera.fieldOfView, camera.aspect, camera.near, camera.far)
}

// Projection returns the camera's projection matrix as of the last UpdateProjectionMatrix() call.
func (camera *Camera) Projection() Matrix4 {
	return camera.projection
}

// ViewMatrix returns the Camera's view matrix.
func (camera *Camera) ViewMatrix() Matrix4 {
	camPos := camera.Position.Invert()
	transform := NewMatrix4Translate(camPos.X, camPos.Y, camPos.Z)
	// We invert the rotation because the Camera is looking down -Z
	return transform.Mult(camera.RotationMatrix().Transposed())
}

// Resize resizes the backing texture for the Camera to the specified width and height. If the camera already has a backing texture
// of that size, the function does nothing.
func (camera *Camera) Resize(w, h int) {

	w, h = max(w, 1), max(h, 1)

	if camera.colorTexture != nil {
		if w == camera.width && h == camera.height {
			return
		}
		camera.colorTexture.Deallocate()
	}

	camera.width, camera.height = w, h
	camera.colorTexture = ebiten.NewImage(w, h)

}

// Size returns the width and height of the camera's backing texture, as last set by Resize().
func (camera *Camera) Size() (w, h int) {
	return camera.width, camera.height
}

// ColorTexture returns the camera's color texture from any previous RenderScene() calls.
func (camera *Camera) ColorTexture() *ebiten.Image {
	return camera.colorTexture
}

// Clear clears the camera's color texture.
func (camera *Camera) Clear() {
	if camera.colorTexture != nil {
		camera.colorTexture.Clear()
	}
}

// ClearWithColor clears the camera's color texture with the color given.
func (camera *Camera) ClearWithColor(clear Color) {
	if camera.colorTexture != nil {
		camera.colorTexture.Fill(clear.ToRGBA64())
	}
}

// WorldToScreen projects the world position given into pixel coordinates on the camera's texture. ok is false if the point lies behind
// the near plane.
func (camera *Camera) WorldToScreen(position Vector) (screen Vector, ok bool) {
	clip := camera.ViewMatrix().Mult(camera.projection).MultVecW(position)
	if clip.W < camera.near {
		return Vector{}, false
	}
	return camera.clipToScreen(clip), true
}

func (camera *Camera) clipToScreen(clip Vector) Vector {
	w, h := float64(camera.width), float64(camera.height)
	return Vector{
		X: (clip.X/clip.W*0.5 + 0.5) * w,
		Y: (0.5 - clip.Y/clip.W*0.5) * h,
		Z: clip.Z / clip.W,
		W: clip.W,
	}
}

// RenderScene renders every visible Model in the Scene into the camera's color texture, lit by the Scene's lights.
// Lighting is computed per vertex; triangles are drawn back to front.
func (camera *Camera) RenderScene(scene *Scene) {

	camera.DrawnTriangles = 0

	if camera.colorTexture == nil {
		return
	}

	viewProjection := camera.ViewMatrix().Mult(camera.projection)

	for _, model := range scene.Models {
		if model.Visible && model.Mesh != nil && model.Material != nil {
			camera.renderModel(model, viewProjection, scene.Lights)
		}
	}

}

func (camera *Camera) renderModel(model *Model, viewProjection Matrix4, lights []Light) {

	mesh := model.Mesh
	transform := model.Transform()
	mvp := transform.Mult(viewProjection)

	// Model movement shouldn't be taken into account for normal adjustment
	normalTransform := model.RotationMatrix()

	eye := camera.Position

	camera.vertexList = camera.vertexList[:0]
	camera.clipList = camera.clipList[:0]

	for i, pos := range mesh.Positions {

		world := transform.MultVec(pos)
		normal := normalTransform.MultDir(mesh.Normals[i]).Unit()
		lit := ShadeVertex(world, normal, eye, model.Material, lights)

		clip := mvp.MultVecW(pos)
		camera.clipList = append(camera.clipList, clip)

		screen := Vector{}
		if clip.W > 0 {
			screen = camera.clipToScreen(clip)
		}

		camera.vertexList = append(camera.vertexList, ebiten.Vertex{
			DstX:   float32(screen.X),
			DstY:   float32(screen.Y),
			SrcX:   1,
			SrcY:   1,
			ColorR: lit.R,
			ColorG: lit.G,
			ColorB: lit.B,
			ColorA: lit.A,
		})

	}

	camera.triList = camera.triList[:0]

	for t := 0; t+2 < len(mesh.Indices); t += 3 {

		i0, i1, i2 := mesh.Indices[t], mesh.Indices[t+1], mesh.Indices[t+2]
		c0, c1, c2 := camera.clipList[i0], camera.clipList[i1], camera.clipList[i2]

		// If any vertex is behind the near plane or past the far one, skip the triangle
		if c0.W < camera.near || c1.W < camera.near || c2.W < camera.near {
			continue
		}
		if c0.W > camera.far && c1.W > camera.far && c2.W > camera.far {
			continue
		}

		if camera.BackfaceCulling {
			v0, v1, v2 := camera.vertexList[i0], camera.vertexList[i1], camera.vertexList[i2]
			// Screen space has Y pointing down, so counter-clockwise (front-facing) triangles have a negative signed area
			area := (v1.DstX-v0.DstX)*(v2.DstY-v0.DstY) - (v1.DstY-v0.DstY)*(v2.DstX-v0.DstX)
			if area >= 0 {
				continue
			}
		}

		camera.triList = append(camera.triList, sortingTriangle{
			depth:   c0.W + c1.W + c2.W,
			indices: [3]uint16{i0, i1, i2},
		})

	}

	slices.SortFunc(camera.triList, func(a, b sortingTriangle) int {
		return cmp.Compare(b.depth, a.depth)
	})

	camera.indexList = camera.indexList[:0]
	for _, tri := range camera.triList {
		camera.indexList = append(camera.indexList, tri.indices[0], tri.indices[1], tri.indices[2])
	}

	camera.DrawnTriangles += len(camera.triList)

	if len(camera.indexList) == 0 {
		return
	}

	camera.colorTexture.DrawTriangles(camera.vertexList, camera.indexList, whiteTexture(), &ebiten.DrawTrianglesOptions{AntiAlias: true})

}
