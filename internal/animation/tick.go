// Package animation implements the core animation engine: the frame clock
// that drives effects on a timed cadence, the serialized render surface that
// owns terminal output, and the runner that binds an effect's lifecycle to
// both.
package animation

import "time"

// DefaultInterval is the default frame cadence, tuned for smooth perception.
const DefaultInterval = 100 * time.Millisecond

// Tick is one discrete time step of the animation clock.
// It is immutable; the clock creates one Tick per interval and delivers the
// same value to every subscriber.
type Tick struct {
	// Seq is a monotonically increasing frame counter.
	Seq uint64

	// Elapsed is the time since the clock started ticking.
	Elapsed time.Duration
}
