package animation

import (
	"log/slog"
	"sync"

	"github.com/kagari-dev/kagari/internal/errors"
)

// Effect is the capability shared by all animated effects. An effect owns
// its own progression state (glyph index, glow phase, column states) but
// never owns terminal access.
//
// Advance must be non-blocking and cheap so the tick cadence is not skewed.
type Effect interface {
	// Advance computes the frame for the given tick and moves the effect's
	// state machine forward.
	Advance(Tick) FrameContent

	// Reset returns the effect to its initial state.
	Reset()
}

type runnerState int

const (
	stateIdle runnerState = iota
	stateRunning
)

// Runner binds one Effect to a frame clock and a render surface, owning the
// effect's background execution. Exactly one Runner exists per active
// effect; many Runners may share one clock.
//
// The state machine is Idle → Running → Idle. Start while Running and Stop
// while Idle are no-ops.
type Runner struct {
	effect  Effect
	ticker  Ticker
	surface *Surface

	mu      sync.Mutex
	state   runnerState
	subID   int
	lastErr error
}

// NewRunner creates an idle Runner for the given effect.
func NewRunner(e Effect, ticker Ticker, surface *Surface) *Runner {
	return &Runner{
		effect:  e,
		ticker:  ticker,
		surface: surface,
	}
}

// Start resets the effect, renders the first frame immediately so the effect
// is visible with zero perceived latency, and subscribes to the clock.
// Calling Start on a running Runner is a no-op; a failed first render leaves
// the Runner Idle and returns a RenderError.
func (r *Runner) Start() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state == stateRunning {
		return nil
	}
	r.lastErr = nil

	r.effect.Reset()
	if err := r.surface.Write(r.effect.Advance(Tick{})); err != nil {
		return err
	}

	r.subID = r.ticker.Subscribe(r.onTick)
	r.state = stateRunning
	slog.Debug("animation started")
	return nil
}

// Stop unsubscribes from the clock, clears the owned region, and restores
// terminal state. It is idempotent: stopping an idle Runner performs no
// writes and only reports a render error left over from the timing loop, if
// any.
func (r *Runner) Stop() error {
	r.mu.Lock()
	if r.state != stateRunning {
		err := r.lastErr
		r.lastErr = nil
		r.mu.Unlock()
		return err
	}
	r.ticker.Unsubscribe(r.subID)
	r.state = stateIdle
	err := r.lastErr
	r.lastErr = nil
	r.mu.Unlock()

	if cerr := r.surface.Clear(); cerr != nil && err == nil {
		err = cerr
	}
	if rerr := r.surface.Restore(); rerr != nil && err == nil {
		err = rerr
	}
	return err
}

// Running reports whether the Runner is currently animating.
func (r *Runner) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state == stateRunning
}

// onTick runs on the clock's dispatch goroutine. A tick already dispatched
// when Stop is requested may land here after the transition; the state check
// keeps it from drawing over a cleared region beyond one harmless frame.
func (r *Runner) onTick(t Tick) {
	r.mu.Lock()
	if r.state != stateRunning {
		r.mu.Unlock()
		return
	}
	fc := r.effect.Advance(t)
	r.mu.Unlock()

	if err := r.surface.Write(fc); err != nil {
		r.fail(err)
	}
}

// fail transitions to Idle so the Runner is never left Running after the
// sink rejected a write. The error surfaces on the next Stop.
func (r *Runner) fail(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != stateRunning {
		return
	}
	r.ticker.Unsubscribe(r.subID)
	r.state = stateIdle
	if r.lastErr == nil {
		r.lastErr = errors.NewSinkClosedError(err)
	}
	slog.Error("animation halted", "error", err)
}
