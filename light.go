package glowsphere

import (
	"math"
)

// Light represents an object that emits light onto a surface point.
type Light interface {
	// Light returns the diffuse and specular light contributions reaching a surface point with the given world position and normal,
	// as seen from the eye position given, for a surface of the given shininess.
	Light(position, normal, eye Vector, shininess float64) (diffuse, specular Color)
	isOn() bool
}

//---------------//

// PointLight represents a point light of infinite point-ness.
type PointLight struct {
	*Node
	// Distance represents the distance after which the light fully attenuates. If this is 0 (the default), it falls off using
	// something akin to the inverse square law.
	Distance float64
	Color    Color // Color is the color of the PointLight.
	// Energy is the overall energy of the Light. Internally, technically there's no difference between a brighter color and a
	// higher energy, but this is here for convenience and to line up with values in 3D modelers.
	Energy float64
	On     bool // If the light is on and contributing to the scene.
}

// NewPointLight creates a new Point light.
func NewPointLight(name string, r, g, b float32, energy float64) *PointLight {
	return &PointLight{
		Node:   NewNode(name),
		Energy: energy,
		Color:  NewColor(r, g, b, 1),
		On:     true,
	}
}

// NewPointLightHex creates a new Point light with its color given as a 24-bit 0xRRGGBB value.
func NewPointLightHex(name string, hex uint32, energy float64) *PointLight {
	c := NewColorFromHex(hex)
	return NewPointLight(name, c.R, c.G, c.B, energy)
}

// Light returns the R, G, and B values for the point light given the surface point provided.
func (point *PointLight) Light(position, normal, eye Vector, shininess float64) (Color, Color) {

	lightVec := point.Position.Sub(position).Unit()

	diffuse := normal.Dot(lightVec)
	if diffuse <= 0 {
		return Color{}, Color{}
	}

	var attenuation float64
	distance := point.Position.DistanceSquared(position)

	if point.Distance == 0 {
		attenuation = (1.0 / (1.0 + (0.1 * distance))) * 2
	} else {
		pd := math.Pow(point.Distance, 2)
		attenuation = math.Max(math.Min(1.0-(math.Pow((distance/pd), 4)), 1), 0)
	}

	halfway := lightVec.Add(eye.Sub(position).Unit()).Unit()
	specular := math.Pow(math.Max(normal.Dot(halfway), 0), shininess) * attenuation * point.Energy

	diffuseColor := point.Color.Scale(float32(diffuse * attenuation * point.Energy))
	specularColor := point.Color.Scale(float32(specular))

	return diffuseColor, specularColor

}

func (point *PointLight) isOn() bool {
	return point.On
}

// ShadeVertex returns the lit color of a surface point with the given material, summing the contribution of every light that is on.
// Metals lose their diffuse response and tint highlights with their base color; dielectrics keep white highlights.
func ShadeVertex(position, normal, eye Vector, material *Material, lights []Light) Color {

	metal := float32(clamp01(material.Metalness))
	shininess := material.Shininess()

	// Rougher surfaces spread their highlights, so they're dimmer at the peak.
	specularStrength := float32(0.15 + 0.85*(1-clamp01(material.Roughness)))

	specularTint := NewColor(1, 1, 1, 1).Mix(material.Color, metal)
	diffuseWeight := 1 - metal*0.8

	out := NewColor(0, 0, 0, material.Color.A)

	for _, light := range lights {

		if !light.isOn() {
			continue
		}

		diffuse, specular := light.Light(position, normal, eye, shininess)

		out.R += material.Color.R*diffuse.R*diffuseWeight + specularTint.R*specular.R*specularStrength
		out.G += material.Color.G*diffuse.G*diffuseWeight + specularTint.G*specular.G*specularStrength
		out.B += material.Color.B*diffuse.B*diffuseWeight + specularTint.B*specular.B*specularStrength

	}

	return out.Clamp()

}
