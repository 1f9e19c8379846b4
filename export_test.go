package glowsphere

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/ext/lightspunctual"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeGLB(t *testing.T, data []byte) *gltf.Document {
	t.Helper()
	doc := gltf.NewDocument()
	require.NoError(t, gltf.NewDecoder(bytes.NewReader(data)).Decode(doc))
	return doc
}

func TestExportGLB(t *testing.T) {

	ds, err := BuildScene(DefaultConfig(), nil)
	require.NoError(t, err)
	ds.Sphere.Rotation.Y = 0.6

	buf := bytes.Buffer{}
	require.NoError(t, ExportGLB(&buf, ds))
	assert.Equal(t, "glTF", string(buf.Bytes()[:4]), "binary glTF magic")

	doc := decodeGLB(t, buf.Bytes())

	require.Len(t, doc.Nodes, 5)
	require.Len(t, doc.Meshes, 1)
	require.Len(t, doc.Cameras, 1)
	assert.Contains(t, doc.ExtensionsUsed, "KHR_lights_punctual")

	t.Run("sphere", func(t *testing.T) {
		node := doc.Nodes[0]
		assert.Equal(t, SphereName, node.Name)
		require.NotNil(t, node.Mesh)
		rot := node.Rotation
		assert.InDelta(t, math.Sin(0.3), rot[1], 1e-9)
		assert.InDelta(t, math.Cos(0.3), rot[3], 1e-9)

		primitive := doc.Meshes[*node.Mesh].Primitives[0]
		assert.Equal(t, 65*65, doc.Accessors[primitive.Attributes[gltf.POSITION]].Count)
		assert.Equal(t, 8064*3, doc.Accessors[*primitive.Indices].Count)

		require.NotNil(t, primitive.Material)
		mat := doc.Materials[*primitive.Material]
		assert.InDelta(t, 0.7, *mat.PBRMetallicRoughness.MetallicFactor, 1e-9)
		assert.InDelta(t, 0.2, *mat.PBRMetallicRoughness.RoughnessFactor, 1e-9)
		require.NotNil(t, mat.NormalTexture)
		assert.Len(t, doc.Images, 1)
	})

	t.Run("lights", func(t *testing.T) {
		lights, ok := doc.Extensions["KHR_lights_punctual"].(lightspunctual.Lights)
		require.True(t, ok)
		require.Len(t, lights, 3)

		red := doc.Nodes[2]
		assert.Equal(t, RedLightName, red.Name)
		assert.InDeltaSlice(t, []float64{-1.86, 1, -1.65}, red.Translation[:], 1e-9)

		index, ok := red.Extensions["KHR_lights_punctual"].(lightspunctual.LightIndex)
		require.True(t, ok)
		light := lights[index]
		assert.Equal(t, lightspunctual.TypePoint, light.Type)
		assert.InDelta(t, 10, *light.Intensity, 1e-6)
		assert.Equal(t, 1.0, light.Color[0])
		assert.Equal(t, 0.0, light.Color[1])
	})

	t.Run("camera", func(t *testing.T) {
		node := doc.Nodes[4]
		require.NotNil(t, node.Camera)
		assert.Equal(t, [3]float64{0, 0, 2}, node.Translation)
		perspective := doc.Cameras[*node.Camera].Perspective
		require.NotNil(t, perspective)
		assert.InDelta(t, 75*math.Pi/180, perspective.Yfov, 1e-9)
		assert.InDelta(t, 0.1, perspective.Znear, 1e-9)
	})

}

func TestExportGLBFile(t *testing.T) {

	ds, err := BuildScene(DefaultConfig(), nil)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "scene.glb")
	require.NoError(t, ExportGLBFile(path, ds))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	doc := decodeGLB(t, data)
	assert.Len(t, doc.Nodes, 5)

	assert.Error(t, ExportGLBFile(filepath.Join(t.TempDir(), "missing", "scene.glb"), ds))

}

func TestGLTFRotationIdentity(t *testing.T) {
	assert.Equal(t, [4]float64{0, 0, 0, 1}, gltfRotation(Vector{}))
}
