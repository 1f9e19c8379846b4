package glowsphere

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorHexRoundTrip(t *testing.T) {
	for _, hex := range []uint32{0x000000, 0xffffff, 0x292929, 0xff0000, 0x00e1ff, 0x123456} {
		assert.Equal(t, hex, NewColorFromHex(hex).Hex(), "hex %06x", hex)
	}
}

func TestColorFromHex(t *testing.T) {
	c := NewColorFromHex(0xff0000)
	assert.Equal(t, NewColor(1, 0, 0, 1), c)
}

func TestColorSetHexKeepsAlpha(t *testing.T) {
	c := NewColor(0, 0, 0, 0.5)
	c.SetHex(0x00ff00)
	assert.Equal(t, NewColor(0, 1, 0, 0.5), c)
}

func TestColorHueShift(t *testing.T) {

	tests := []struct {
		name    string
		in      uint32
		degrees float64
		want    uint32
	}{
		{"red to green", 0xff0000, 120, 0x00ff00},
		{"red to blue backwards", 0xff0000, -120, 0x0000ff},
		{"full turn", 0x00e1ff, 360, 0x00e1ff},
		{"gray has no hue", 0x292929, 90, 0x292929},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewColorFromHex(tt.in).HueShift(tt.degrees).Hex())
		})
	}

}

func TestColorHSV(t *testing.T) {

	h, s, v := NewColorFromHex(0x00ff00).HSV()
	assert.InDelta(t, 120, h, 1e-6)
	assert.InDelta(t, 1, s, 1e-6)
	assert.InDelta(t, 1, v, 1e-6)

	h, s, v = NewColorFromHex(0x808080).HSV()
	assert.Equal(t, 0.0, h)
	assert.Equal(t, 0.0, s)
	assert.InDelta(t, 128.0/255.0, v, 1e-6)

	h, s, v = NewColorFromHex(0x00e1ff).HSV()
	assert.Equal(t, uint32(0x00e1ff), NewColorFromHSV(h, s, v, 1).Hex())
	assert.Equal(t, uint32(0xff0000), NewColorFromHSV(-360, 2, 2, 1).Hex(), "hue wraps; saturation and value clamp")

}

func TestColorClampAndMix(t *testing.T) {
	assert.Equal(t, NewColor(1, 0, 0.5, 1), NewColor(2, -1, 0.5, 1).Clamp())
	assert.Equal(t, NewColor(0.5, 0.5, 0.5, 1), NewColor(0, 0, 0, 1).Mix(NewColor(1, 1, 1, 1), 0.5))
}
