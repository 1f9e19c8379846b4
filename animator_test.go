package glowsphere

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeSphereMotion(t *testing.T) {

	tests := []struct {
		name      string
		t, px, py float64
		wantRotY  float64
		wantRotX  float64
		wantPosZ  float64
	}{
		{"at rest", 0, 0, 0, 0, 0, 0},
		{"pointer up and right after a second", 1, 200, -100, 0.6, -0.05, 0.05},
		{"time alone spins", 4, 0, 0, 2, 0, 0},
		{"pointer down tilts forward and pushes back", 0, 0, 300, 0, 0.15, -0.15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeSphereMotion(tt.t, tt.px, tt.py)
			assert.InDelta(t, tt.wantRotY, got.RotationY, 1e-12)
			assert.InDelta(t, tt.wantRotX, got.RotationX, 1e-12)
			assert.InDelta(t, tt.wantPosZ, got.PositionZ, 1e-12)
		})
	}

}

func TestComputeSphereMotionIsExact(t *testing.T) {
	for _, in := range [][3]float64{{0.016, -640, 360}, {123.456, 1, -1}, {9999, 1920, -1080}} {
		got := ComputeSphereMotion(in[0], in[1], in[2])
		assert.Equal(t, 0.5*(in[0]+0.001*in[1]), got.RotationY)
		assert.Equal(t, 0.5*(0.001*in[2]), got.RotationX)
		assert.Equal(t, -0.5*(0.001*in[2]), got.PositionZ)
	}
}

func TestAnimatorFrame(t *testing.T) {

	clock := &ManualClock{}
	input := NewInput(100, 1000)
	sphere := NewNode("Sphere")
	animator := NewAnimator(clock, input, sphere)

	animator.Frame()
	assert.Equal(t, Vector{}, sphere.Rotation)
	assert.Equal(t, Vector{}, sphere.Position)

	clock.Advance(1)
	input.PointerMoved(400+200, 300-100, 800, 600)
	animator.Frame()

	assert.InDelta(t, 0.6, sphere.Rotation.Y, 1e-12)
	assert.InDelta(t, -0.05, sphere.Rotation.X, 1e-12)
	assert.InDelta(t, 0.05, sphere.Position.Z, 1e-12)
	assert.EqualValues(t, 2, animator.Frames)

	t.Run("frames overwrite rather than accumulate", func(t *testing.T) {
		animator.Frame()
		animator.Frame()
		assert.InDelta(t, 0.6, sphere.Rotation.Y, 1e-12)
		assert.InDelta(t, 0.05, sphere.Position.Z, 1e-12)
	})

	t.Run("scroll position is left alone", func(t *testing.T) {
		input.Scrolled(500, sphere)
		animator.Frame()
		assert.InDelta(t, 0.5, sphere.Position.Y, 1e-12)
	})

	t.Run("rotation about Z is never touched", func(t *testing.T) {
		sphere.Rotation.Z = 0.25
		animator.Frame()
		assert.Equal(t, 0.25, sphere.Rotation.Z)
	})

}

func TestManualClock(t *testing.T) {
	clock := &ManualClock{}
	clock.Advance(0.5)
	clock.Advance(-3)
	assert.Equal(t, 0.5, clock.Elapsed())
}

func TestWallClockIsMonotonic(t *testing.T) {
	clock := NewClock()
	a := clock.Elapsed()
	b := clock.Elapsed()
	assert.GreaterOrEqual(t, a, 0.0)
	assert.GreaterOrEqual(t, b, a)
}
