package colors

import (
	"testing"

	"github.com/solarlune/glowsphere"
	"github.com/stretchr/testify/assert"
)

func TestColors(t *testing.T) {
	assert.Equal(t, uint32(0xffffff), White().Hex())
	assert.Equal(t, uint32(0x000000), Black().Hex())
	assert.Equal(t, float32(0), Transparent().A)
	assert.Equal(t, uint32(0x292929), Sphere().Hex())
	assert.Equal(t, uint32(0x00e1ff), Cyan().Hex())
}

func TestSceneDefaults(t *testing.T) {
	ds, err := glowsphere.BuildScene(glowsphere.DefaultConfig(), nil)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, Transparent(), ds.Scene.ClearColor)
	assert.Equal(t, Sphere().Hex(), ds.Sphere.Material.Color.Hex())
	assert.Equal(t, Cyan().Hex(), ds.PointLight.Color.Hex())
}
