package glowsphere

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Intro grows a Node's scale from 0 to 1 over a fixed duration, easing out.
type Intro struct {
	Target *Node
	tween  *gween.Tween
	done   bool
}

// NewIntro returns an Intro for the target Node lasting the given number of seconds. The target starts at a scale of 0.
// A duration of 0 or less skips the intro entirely, leaving the target's scale alone.
func NewIntro(target *Node, seconds float64) *Intro {
	intro := &Intro{Target: target}
	if seconds <= 0 {
		intro.done = true
		return intro
	}
	intro.tween = gween.New(0, 1, float32(seconds), ease.OutCubic)
	intro.apply(0)
	return intro
}

func (intro *Intro) apply(s float64) {
	if intro.Target != nil {
		intro.Target.Scale = intro.Target.Scale.Set(s, s, s)
	}
}

// Update advances the intro by dt seconds and returns true once it has finished.
func (intro *Intro) Update(dt float64) bool {
	if intro.done {
		return true
	}
	value, finished := intro.tween.Update(float32(dt))
	if finished {
		value = 1
	}
	intro.apply(float64(value))
	intro.done = finished
	return finished
}

// Done returns whether the intro has finished.
func (intro *Intro) Done() bool {
	return intro.done
}
