package glowsphere

import "time"

// Clock provides monotonically increasing elapsed time, in seconds, since it was started.
type Clock interface {
	Elapsed() float64
}

// WallClock is a Clock backed by the system's monotonic clock.
type WallClock struct {
	start time.Time
}

// NewClock returns a WallClock started now.
func NewClock() *WallClock {
	return &WallClock{start: time.Now()}
}

// Elapsed returns the number of seconds since the clock was started.
func (clock *WallClock) Elapsed() float64 {
	return time.Since(clock.start).Seconds()
}

// ManualClock is a Clock that only moves when told to; useful for tests and offline rendering.
type ManualClock struct {
	Time float64
}

// Elapsed returns the clock's current time.
func (clock *ManualClock) Elapsed() float64 {
	return clock.Time
}

// Advance moves the clock forward by dt seconds. Negative values are ignored so the clock never runs backwards.
func (clock *ManualClock) Advance(dt float64) {
	if dt > 0 {
		clock.Time += dt
	}
}
