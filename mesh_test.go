package glowsphere

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func BenchmarkNewSphereMesh(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		NewSphereMesh(0.5, 64, 64)
	}
}

func TestSphereMeshTopology(t *testing.T) {

	mesh := NewSphereMesh(0.5, 64, 64)

	assert.Equal(t, 65*65, mesh.VertexCount())
	// Every quad has two triangles, except the single fan triangle along each pole row.
	assert.Equal(t, 64*64*2-64*2, mesh.TriangleCount())
	assert.Equal(t, 65, mesh.GridWidth)
	assert.Equal(t, 65, mesh.GridHeight)

	for _, index := range mesh.Indices {
		require.Less(t, int(index), mesh.VertexCount())
	}

}

func TestSphereMeshFitsSixteenBitIndices(t *testing.T) {

	tests := []struct {
		name          string
		width, height int
	}{
		{"square", 256, 256},
		{"wide", 2000, 40},
		{"tall", 4, 100000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mesh := NewSphereMesh(0.5, tt.width, tt.height)
			require.LessOrEqual(t, mesh.VertexCount(), MaxMeshVertices)
			assert.Equal(t, mesh.GridWidth*mesh.GridHeight, mesh.VertexCount())
			for _, index := range mesh.Indices {
				if int(index) >= mesh.VertexCount() {
					t.Fatalf("index %d out of range for %d vertices", index, mesh.VertexCount())
				}
			}
		})
	}

	t.Run("the ratio is kept", func(t *testing.T) {
		mesh := NewSphereMesh(0.5, 512, 256)
		assert.InDelta(t, 2, float64(mesh.GridWidth-1)/float64(mesh.GridHeight-1), 0.05)
	})

	assert.Equal(t, 65*65, NewSphereMesh(0.5, 64, 64).VertexCount(), "small spheres are untouched")

}

func TestSphereMeshVertices(t *testing.T) {

	mesh := NewSphereMesh(0.5, 16, 8)

	for i, pos := range mesh.Positions {
		assert.InDelta(t, 0.5, pos.Magnitude(), 1e-9, "vertex %d", i)
		assert.InDelta(t, 1, mesh.Normals[i].Magnitude(), 1e-9)
		assert.InDelta(t, 0, mesh.Tangents[i].Dot(mesh.BaseNormals[i]), 1e-9, "tangent must lie on the surface")
		assert.GreaterOrEqual(t, mesh.UVs[i].Y, 0.0)
		assert.LessOrEqual(t, mesh.UVs[i].Y, 1.0)
	}

	assert.True(t, mesh.Positions[0].Equals(NewVector(0, 0.5, 0)), "first row is the north pole")
	assert.True(t, mesh.Positions[len(mesh.Positions)-1].Equals(NewVector(0, -0.5, 0)), "last row is the south pole")

}

func TestSphereMeshWindingFacesOutward(t *testing.T) {

	mesh := NewSphereMesh(1, 12, 6)

	for i := 0; i < len(mesh.Indices); i += 3 {
		a := mesh.Positions[mesh.Indices[i]]
		b := mesh.Positions[mesh.Indices[i+1]]
		c := mesh.Positions[mesh.Indices[i+2]]
		faceNormal := b.Sub(a).Cross(c.Sub(a))
		center := a.Add(b).Add(c)
		assert.Greater(t, faceNormal.Dot(center), 0.0, "triangle %d winds inward", i/3)
	}

}

func uniformImage(c color.NRGBA) image.Image {
	return image.NewUniform(c)
}

func solidNormalMap(c color.NRGBA) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestApplyNormalMap(t *testing.T) {

	mesh := NewSphereMesh(0.5, 16, 8)

	t.Run("flat map keeps geometric normals", func(t *testing.T) {
		mesh.ApplyNormalMap(solidNormalMap(color.NRGBA{128, 128, 255, 255}), 1)
		for i := range mesh.Normals {
			assert.Greater(t, mesh.Normals[i].Dot(mesh.BaseNormals[i]), 0.999)
		}
	})

	t.Run("map pointing along U bends normals onto the tangent", func(t *testing.T) {
		mesh.ApplyNormalMap(solidNormalMap(color.NRGBA{255, 128, 128, 255}), 1)
		for i := range mesh.Normals {
			assert.Greater(t, mesh.Normals[i].Dot(mesh.Tangents[i]), 0.99)
		}
	})

	t.Run("strength zero flattens the effect", func(t *testing.T) {
		mesh.ApplyNormalMap(solidNormalMap(color.NRGBA{255, 128, 128, 255}), 0)
		for i := range mesh.Normals {
			assert.Greater(t, mesh.Normals[i].Dot(mesh.BaseNormals[i]), 0.999)
		}
	})

	t.Run("nil map restores geometric normals", func(t *testing.T) {
		mesh.ApplyNormalMap(solidNormalMap(color.NRGBA{0, 0, 255, 255}), 1)
		mesh.ApplyNormalMap(nil, 1)
		assert.Equal(t, mesh.BaseNormals, mesh.Normals)
	})

	t.Run("non-grid meshes sample the map directly", func(t *testing.T) {
		quad := &Mesh{
			Positions:   []Vector{{}, {}, {}},
			BaseNormals: []Vector{VecZ, VecZ, VecZ},
			Normals:     make([]Vector, 3),
			Tangents:    []Vector{VecX, VecX, VecX},
			UVs:         []Vector{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}},
			Indices:     []uint16{0, 1, 2},
		}
		quad.ApplyNormalMap(uniformImage(color.NRGBA{128, 255, 128, 255}), 1)
		for _, n := range quad.Normals {
			assert.Greater(t, n.Dot(VecY), 0.99, "green should bend normals along the bitangent")
		}
	})

}
