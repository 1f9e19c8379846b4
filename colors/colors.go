// Package colors returns commonly used glowsphere.Color values by name.
package colors

import "github.com/solarlune/glowsphere"

// Transparent is fully transparent black; it's the scene's default clear color.
func Transparent() glowsphere.Color {
	return glowsphere.NewColor(0, 0, 0, 0)
}

func White() glowsphere.Color {
	return glowsphere.NewColor(1, 1, 1, 1)
}

func Black() glowsphere.Color {
	return glowsphere.NewColor(0, 0, 0, 1)
}

func LightGray() glowsphere.Color {
	return glowsphere.NewColor(0.8, 0.8, 0.8, 1)
}

// Sphere is the sphere's dark metallic base color.
func Sphere() glowsphere.Color {
	return glowsphere.NewColorFromHex(0x292929)
}

// Cyan is the point light's starting color.
func Cyan() glowsphere.Color {
	return glowsphere.NewColorFromHex(0x00e1ff)
}
