package glowsphere

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	buf := &bytes.Buffer{}
	require.NoError(t, png.Encode(buf, img))
	return buf.Bytes()
}

func TestLoadNormalMap(t *testing.T) {

	fsys := fstest.MapFS{
		"textures/normalmap.png": {Data: encodePNG(t, solidNormalMap(color.NRGBA{128, 128, 255, 255}))},
		"textures/broken.png":    {Data: []byte("definitely not a png")},
	}

	img, err := LoadNormalMap(fsys, "textures/normalmap.png")
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 8, 8), img.Bounds())

	_, err = LoadNormalMap(fsys, "textures/missing.png")
	assert.ErrorIs(t, err, fs.ErrNotExist)

	_, err = LoadNormalMap(fsys, "textures/broken.png")
	assert.ErrorIs(t, err, ErrNormalMapDecode)

}

func TestLoadNormalMapFile(t *testing.T) {

	path := filepath.Join(t.TempDir(), "normalmap.png")
	require.NoError(t, os.WriteFile(path, encodePNG(t, solidNormalMap(color.NRGBA{128, 128, 255, 255})), 0644))

	img, err := LoadNormalMapFile(path)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 8, 8), img.Bounds())

}

func TestProceduralNormalMap(t *testing.T) {

	a := NewProceduralNormalMap(64, 32, 7)
	b := NewProceduralNormalMap(64, 32, 7)
	c := NewProceduralNormalMap(64, 32, 8)

	assert.Equal(t, a.Pix, b.Pix, "the same seed should give the same map")
	assert.NotEqual(t, a.Pix, c.Pix)
	assert.Equal(t, image.Rect(0, 0, 64, 32), a.Bounds())

	for y := 0; y < 32; y++ {
		for x := 0; x < 64; x++ {
			n := decodeNormal(a.At(x, y))
			assert.Greater(t, n.Z, 0.0, "normals should point out of the surface")
			assert.InDelta(t, 1, n.Magnitude(), 0.02)
		}
	}

}
