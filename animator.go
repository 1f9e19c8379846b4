package glowsphere

// SphereMotion is the transform the Animator derives for a frame.
type SphereMotion struct {
	RotationY float64 // Rotation about the vertical axis.
	RotationX float64 // Rotation about the horizontal axis.
	PositionZ float64 // Depth offset.
}

// ComputeSphereMotion derives the sphere's transform from the elapsed time t (in seconds) and the pointer offset (px, py).
// It is a pure function; nothing accumulates between frames. Depth moves against the tilt, so the sphere leans towards the pointer.
func ComputeSphereMotion(t, px, py float64) SphereMotion {
	return SphereMotion{
		RotationY: 0.5 * (t + 0.001*px),
		RotationX: 0.5 * (0.001 * py),
		PositionZ: -0.5 * (0.001 * py),
	}
}

// Animator advances the sphere once per frame from the clock and the latest input.
type Animator struct {
	Clock  Clock
	Input  *Input
	Target *Node

	// Frames counts how many frames have been advanced.
	Frames uint64
}

// NewAnimator returns an Animator driving target from clock and input.
func NewAnimator(clock Clock, input *Input, target *Node) *Animator {
	return &Animator{
		Clock:  clock,
		Input:  input,
		Target: target,
	}
}

// Frame reads the clock and input, then overwrites the target's Y and X rotation and Z position with the derived motion.
// The target's Y position belongs to scroll events and is left alone.
func (animator *Animator) Frame() SphereMotion {

	motion := ComputeSphereMotion(animator.Clock.Elapsed(), animator.Input.PointerX, animator.Input.PointerY)

	animator.Target.Rotation.Y = motion.RotationY
	animator.Target.Rotation.X = motion.RotationX
	animator.Target.Position.Z = motion.PositionZ

	animator.Frames++

	return motion

}
