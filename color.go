package glowsphere

import (
	"image/color"
	"math"
)

// A Color represents a color, containing R, G, B, and A components, each expected to range from 0 to 1.
type Color struct {
	R, G, B, A float32
}

// NewColor returns a new Color, with the provided R, G, B, and A components expected to range from 0 to 1.
func NewColor(r, g, b, a float32) Color {
	return Color{r, g, b, a}
}

// NewColorFromHex returns a new, fully opaque Color from a 24-bit 0xRRGGBB value.
func NewColorFromHex(hex uint32) Color {
	return Color{
		R: float32((hex>>16)&0xff) / 255,
		G: float32((hex>>8)&0xff) / 255,
		B: float32(hex&0xff) / 255,
		A: 1,
	}
}

// Hex returns the Color as a 24-bit 0xRRGGBB value, dropping alpha. Components are clamped and rounded.
func (c Color) Hex() uint32 {
	c = c.Clamp()
	r := uint32(math.Round(float64(c.R) * 255))
	g := uint32(math.Round(float64(c.G) * 255))
	b := uint32(math.Round(float64(c.B) * 255))
	return r<<16 | g<<8 | b
}

// SetHex sets the RGB components of the Color from a 24-bit 0xRRGGBB value, leaving alpha alone.
func (c *Color) SetHex(hex uint32) {
	a := c.A
	*c = NewColorFromHex(hex)
	c.A = a
}

// Clamp returns a copy of the Color with every component clamped to the 0-1 range.
func (c Color) Clamp() Color {
	clamp := func(v float32) float32 {
		return float32(math.Max(0, math.Min(1, float64(v))))
	}
	return Color{clamp(c.R), clamp(c.G), clamp(c.B), clamp(c.A)}
}

// Mix returns the Color linearly interpolated towards other by the percentage given (0 = c, 1 = other).
func (c Color) Mix(other Color, percent float32) Color {
	return Color{
		R: c.R + (other.R-c.R)*percent,
		G: c.G + (other.G-c.G)*percent,
		B: c.B + (other.B-c.B)*percent,
		A: c.A + (other.A-c.A)*percent,
	}
}

// Scale returns the Color's RGB components multiplied by the scalar given. Alpha is untouched.
func (c Color) Scale(scalar float32) Color {
	c.R *= scalar
	c.G *= scalar
	c.B *= scalar
	return c
}

// HSV returns the Color's hue (in degrees, 0 to 360), saturation and value. Grays have a hue and saturation of 0.
func (c Color) HSV() (h, s, v float64) {

	r, g, b := float64(c.R), float64(c.G), float64(c.B)

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	delta := max - min

	v = max
	if delta == 0 {
		return 0, 0, v
	}

	switch max {
	case r:
		h = math.Mod((g-b)/delta, 6)
	case g:
		h = (b-r)/delta + 2
	default:
		h = (r-g)/delta + 4
	}
	h *= 60
	if h < 0 {
		h += 360
	}

	return h, delta / max, v

}

// NewColorFromHSV creates a Color from a hue in degrees (wrapped into 0 to 360), a saturation and a value (both clamped to 0..1),
// and an alpha.
func NewColorFromHSV(h, s, v float64, alpha float32) Color {

	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	s, v = clamp01(s), clamp01(v)

	chroma := v * s
	x := chroma * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - chroma

	var rr, gg, bb float64
	switch {
	case h < 60:
		rr, gg, bb = chroma, x, 0
	case h < 120:
		rr, gg, bb = x, chroma, 0
	case h < 180:
		rr, gg, bb = 0, chroma, x
	case h < 240:
		rr, gg, bb = 0, x, chroma
	case h < 300:
		rr, gg, bb = x, 0, chroma
	default:
		rr, gg, bb = chroma, 0, x
	}

	return Color{float32(rr + m), float32(gg + m), float32(bb + m), alpha}

}

// HueShift returns the Color with its hue rotated by the number of degrees given, keeping saturation and value.
// Grays have no hue, so they come back unchanged.
func (c Color) HueShift(degrees float64) Color {
	h, s, v := c.HSV()
	if s == 0 {
		return c
	}
	return NewColorFromHSV(h+degrees, s, v, c.A)
}

// ToRGBA64 converts the Color to a color.RGBA64 for use with ebiten.Image.Fill() and friends.
func (c Color) ToRGBA64() color.RGBA64 {
	c = c.Clamp()
	return color.RGBA64{
		uint16(c.R * c.A * math.MaxUint16),
		uint16(c.G * c.A * math.MaxUint16),
		uint16(c.B * c.A * math.MaxUint16),
		uint16(c.A * math.MaxUint16),
	}
}

// ToNRGBA64 converts the Color to a non-alpha-premultiplied color.NRGBA64.
func (c Color) ToNRGBA64() color.NRGBA64 {
	c = c.Clamp()
	return color.NRGBA64{
		uint16(c.R * math.MaxUint16),
		uint16(c.G * math.MaxUint16),
		uint16(c.B * math.MaxUint16),
		uint16(c.A * math.MaxUint16),
	}
}
