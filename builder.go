package glowsphere

import (
	"fmt"
	"image"
)

// Names of the scene's objects, also used for exported nodes.
const (
	SphereName     = "Sphere"
	WhiteLightName = "White light"
	RedLightName   = "Red light"
	PointLightName = "Point light"
)

// DemoScene is the scene content built once at startup, with direct handles to the objects that get animated or tuned.
type DemoScene struct {
	Scene  *Scene
	Camera *Camera
	Sphere *Model

	WhiteLight *PointLight
	RedLight   *PointLight
	PointLight *PointLight

	// PointLightColor is the editable color value for PointLight. It's kept apart from the light's own Color and copied onto it
	// by the control panel's change callback.
	PointLightColor uint32
}

func newConfiguredLight(name string, lc LightConfig) (*PointLight, uint32, error) {
	hex, err := ParseHexColor(lc.Color)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", name, err)
	}
	light := NewPointLightHex(name, hex, lc.Intensity)
	light.SetLocalPosition(lc.Position[0], lc.Position[1], lc.Position[2])
	return light, hex, nil
}

// BuildScene creates the demo's scene from the configuration given: a normal-mapped, metallic sphere lit by three point lights,
// seen by a perspective camera two units back. If normalMap is nil, a procedural one is generated.
func BuildScene(cfg Config, normalMap image.Image) (*DemoScene, error) {

	if normalMap == nil {
		normalMap = NewProceduralNormalMap(256, 256, cfg.NormalMapSeed)
	}

	material := NewMaterial("Sphere material")
	material.Metalness = 0.7
	material.Roughness = 0.2
	material.Color = NewColorFromHex(0x292929)
	material.NormalMap = normalMap
	material.NormalScale = cfg.NormalScale

	mesh := NewSphereMesh(0.5, 64, 64)
	mesh.ApplyNormalMap(material.NormalMap, material.NormalScale)

	sphere := NewModel(SphereName, mesh, material)

	ds := &DemoScene{
		Scene:  NewScene("Glowsphere"),
		Sphere: sphere,
	}

	var err error

	if ds.WhiteLight, _, err = newConfiguredLight(WhiteLightName, cfg.Lights.White); err != nil {
		return nil, err
	}
	if ds.RedLight, _, err = newConfiguredLight(RedLightName, cfg.Lights.Red); err != nil {
		return nil, err
	}
	if ds.PointLight, ds.PointLightColor, err = newConfiguredLight(PointLightName, cfg.Lights.Point); err != nil {
		return nil, err
	}

	ds.Scene.AddModels(sphere)
	ds.Scene.AddLights(ds.WhiteLight, ds.RedLight, ds.PointLight)

	ds.Camera = NewCamera(75, float64(cfg.Width)/float64(cfg.Height), 0.1, 100)
	ds.Camera.SetLocalPosition(0, 0, 2)

	return ds, nil

}

// BuildPanel creates the control panel for the scene's tunable lights. The white light is fixed and has no folder.
func BuildPanel(ds *DemoScene) *Panel {

	panel := NewPanel()

	red := panel.AddFolder(RedLightName)
	red.AddNumber("x", &ds.RedLight.Position.X).Min(-3).Max(3).Step(0.01)
	red.AddNumber("y", &ds.RedLight.Position.Y).Min(-3).Max(3).Step(0.01)
	red.AddNumber("z", &ds.RedLight.Position.Z).Min(-3).Max(3).Step(0.01)
	red.AddNumber("intensity", &ds.RedLight.Energy).Min(0).Max(10).Step(0.01)

	point := panel.AddFolder(PointLightName)
	point.AddNumber("x", &ds.PointLight.Position.X).Min(-3).Max(3).Step(0.01)
	point.AddNumber("y", &ds.PointLight.Position.Y).Min(-3).Max(3).Step(0.01)
	point.AddNumber("z", &ds.PointLight.Position.Z).Min(-3).Max(3).Step(0.01)
	point.AddNumber("intensity", &ds.PointLight.Energy).Min(0).Max(10).Step(0.01)
	point.AddColor("color", &ds.PointLightColor).OnChange(func(hex uint32) {
		ds.PointLight.Color.SetHex(hex)
	})

	return panel

}
