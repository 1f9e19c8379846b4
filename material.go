package glowsphere

import "image"

// Material describes how a Model's surface responds to light.
type Material struct {
	Name      string
	Color     Color   // The base (albedo) color of the surface.
	Metalness float64 // 0 for dielectric surfaces, 1 for metals. Metals tint their highlights with Color and lose diffuse.
	Roughness float64 // 0 for mirror-sharp highlights, 1 for fully broad ones.

	NormalMap   image.Image // Tangent-space normal map; nil for none.
	NormalScale float64     // How strongly the normal map bends the surface normals.
}

// NewMaterial creates a new, white, fully rough dielectric Material.
func NewMaterial(name string) *Material {
	return &Material{
		Name:        name,
		Color:       NewColor(1, 1, 1, 1),
		Roughness:   1,
		NormalScale: 1,
	}
}

// Shininess returns the specular exponent implied by the Material's roughness.
func (material *Material) Shininess() float64 {
	r := clamp01(material.Roughness)
	return 2 + (1-r)*(1-r)*126
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
