package glowsphere

// Scene represents the set of renderable objects and lights composed for rendering.
type Scene struct {
	Name       string
	Models     []*Model
	Lights     []Light
	ClearColor Color // The color the Camera's output is cleared to; transparent by default so the page shows through.
}

// NewScene creates a new, empty Scene.
func NewScene(name string) *Scene {
	return &Scene{
		Name: name,
	}
}

// AddModels adds the Models provided to the Scene.
func (scene *Scene) AddModels(models ...*Model) {
	scene.Models = append(scene.Models, models...)
}

// AddLights adds the Lights provided to the Scene.
func (scene *Scene) AddLights(lights ...Light) {
	scene.Lights = append(scene.Lights, lights...)
}

// PointLights returns all PointLights in the Scene, in the order they were added.
func (scene *Scene) PointLights() []*PointLight {
	out := make([]*PointLight, 0, len(scene.Lights))
	for _, light := range scene.Lights {
		if point, ok := light.(*PointLight); ok {
			out = append(out, point)
		}
	}
	return out
}
