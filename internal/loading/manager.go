// Package loading orchestrates a sequence of named steps, rendering each as
// a transient spinner and advancing on a completion signal or a fixed
// per-step duration.
package loading

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/kagari-dev/kagari/internal/animation"
	"github.com/kagari-dev/kagari/internal/effect"
	"github.com/kagari-dev/kagari/internal/errors"
	"github.com/kagari-dev/kagari/internal/ui"
)

type policyKind int

const (
	policySignal policyKind = iota
	policyFixedDuration
)

// CompletionPolicy decides how a step is considered finished.
type CompletionPolicy struct {
	kind     policyKind
	duration time.Duration
}

// OnSignal completes each step when the caller invokes Signal.
func OnSignal() CompletionPolicy {
	return CompletionPolicy{kind: policySignal}
}

// OnFixedDuration completes each step after d at the latest. An earlier
// Signal still completes the step; the duration is an upper bound on per-step
// display, not a fault.
func OnFixedDuration(d time.Duration) CompletionPolicy {
	return CompletionPolicy{kind: policyFixedDuration, duration: d}
}

// Config configures a Manager.
type Config struct {
	// Steps is the ordered sequence of step labels. Must be non-empty,
	// with non-empty labels.
	Steps []string

	// Policy decides step completion. Defaults to OnSignal.
	Policy CompletionPolicy

	// Ticker drives the per-step spinner. Nil creates a Clock at the
	// default interval.
	Ticker animation.Ticker

	// Surface receives all output. Nil targets stdout.
	Surface *animation.Surface

	// Glyphs overrides the spinner glyph sequence for steps.
	Glyphs []string
}

// Step pairs a label with a work function for RunWithWork.
type Step struct {
	Label string
	Do    func(ctx context.Context) error
}

// Manager runs an ordered step sequence. At most one step's effect is
// rendering at any instant; step i stops before step i+1 starts, and a
// failed step halts the sequence.
type Manager struct {
	steps   []string
	policy  CompletionPolicy
	ticker  animation.Ticker
	surface *animation.Surface
	glyphs  []string
	signals chan error

	mu      sync.Mutex
	running bool

	successMark string
	failMark    string
}

// NewManager creates a Manager. An empty step list, an empty label, or a
// non-positive fixed duration is a ConfigError.
func NewManager(cfg Config) (*Manager, error) {
	if len(cfg.Steps) == 0 {
		return nil, errors.NewEmptySequenceError("steps")
	}
	for i, label := range cfg.Steps {
		if label == "" {
			return nil, errors.NewConfigError("steps", fmt.Sprintf("step %d has an empty label", i))
		}
	}
	if cfg.Policy.kind == policyFixedDuration && cfg.Policy.duration <= 0 {
		return nil, errors.NewOutOfRangeError("duration", cfg.Policy.duration, "positive duration")
	}

	ticker := cfg.Ticker
	if ticker == nil {
		ticker = animation.NewClock(animation.DefaultInterval)
	}
	surface := cfg.Surface
	if surface == nil {
		surface = animation.NewSurface(os.Stdout)
	}

	style := ui.NewStyle()
	return &Manager{
		steps:       cfg.Steps,
		policy:      cfg.Policy,
		ticker:      ticker,
		surface:     surface,
		glyphs:      cfg.Glyphs,
		signals:     make(chan error, 1),
		successMark: style.SuccessMark,
		failMark:    style.FailMark,
	}, nil
}

// Signal reports completion of the current step: nil for success, non-nil
// for failure. One signal is consumed per step; extra signals sent while no
// step is waiting are dropped.
func (m *Manager) Signal(err error) {
	select {
	case m.signals <- err:
	default:
	}
}

// Run executes the sequence under the configured completion policy. It
// returns a StepError identifying the first failed step, leaving prior
// completed steps in place.
func (m *Manager) Run(ctx context.Context) error {
	if err := m.acquire(); err != nil {
		return err
	}
	defer m.release()

	total := len(m.steps)
	for i, label := range m.steps {
		if err := m.runStep(ctx, i, total, label, nil); err != nil {
			return err
		}
	}

	slog.Info("sequence completed", "steps", total)
	return m.surface.Write(animation.FrameContent{
		Text: fmt.Sprintf("%s all %d steps completed", m.successMark, total),
		Mode: animation.AppendLine,
	})
}

// RunWithWork executes steps whose completion is driven by their own work
// functions: each step's spinner animates until Do returns, and a returned
// error fails the sequence at that step.
func (m *Manager) RunWithWork(ctx context.Context, steps []Step) error {
	if len(steps) == 0 {
		return errors.NewEmptySequenceError("steps")
	}
	if err := m.acquire(); err != nil {
		return err
	}
	defer m.release()

	total := len(steps)
	for i, step := range steps {
		if err := m.runStep(ctx, i, total, step.Label, step.Do); err != nil {
			return err
		}
	}

	slog.Info("sequence completed", "steps", total)
	return m.surface.Write(animation.FrameContent{
		Text: fmt.Sprintf("%s all %d steps completed", m.successMark, total),
		Mode: animation.AppendLine,
	})
}

// runStep renders one step's spinner, waits for its completion, stops the
// runner, and writes the permanent marker line.
func (m *Manager) runStep(ctx context.Context, index, total int, label string, do func(ctx context.Context) error) error {
	// Drop a signal left over from before this step started; only signals
	// sent while the step is on screen may complete it.
	select {
	case <-m.signals:
	default:
	}

	slog.Info("step started", "step", label, "index", index)

	spinner, err := effect.NewSpinner(effect.SpinnerConfig{
		Label:   label,
		Message: "processing",
		Glyphs:  m.glyphs,
	})
	if err != nil {
		return err
	}

	runner := animation.NewRunner(spinner, m.ticker, m.surface)
	if err := runner.Start(); err != nil {
		return err
	}

	stepErr := m.wait(ctx, do)

	if err := runner.Stop(); err != nil && stepErr == nil {
		stepErr = err
	}
	if ctx.Err() != nil && stepErr == nil {
		stepErr = ctx.Err()
	}

	if stepErr != nil {
		slog.Error("step failed", "step", label, "index", index, "error", stepErr)
		// Best effort: the failure marker should not mask the step error.
		_ = m.surface.Write(animation.FrameContent{
			Text: fmt.Sprintf("%s %s [%d/%d]", m.failMark, label, index+1, total),
			Mode: animation.AppendLine,
		})
		return errors.NewStepError(index, label, stepErr)
	}

	slog.Info("step completed", "step", label, "index", index)
	return m.surface.Write(animation.FrameContent{
		Text: fmt.Sprintf("%s %s [%d/%d]", m.successMark, label, index+1, total),
		Mode: animation.AppendLine,
	})
}

// wait blocks until the current step completes per the policy or work
// function, returning the step's failure cause if any.
func (m *Manager) wait(ctx context.Context, do func(ctx context.Context) error) error {
	if do != nil {
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error { return do(gctx) })
		return g.Wait()
	}

	switch m.policy.kind {
	case policyFixedDuration:
		timer := time.NewTimer(m.policy.duration)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-m.signals:
			return err
		case <-timer.C:
			// Exceeding the bound advances the sequence; not a fault.
			return nil
		}
	default:
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-m.signals:
			return err
		}
	}
}

func (m *Manager) acquire() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.running {
		return errors.New(errors.CategoryStep, "sequence already running")
	}
	m.running = true
	return nil
}

func (m *Manager) release() {
	m.mu.Lock()
	m.running = false
	m.mu.Unlock()
}
