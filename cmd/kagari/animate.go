package main

import (
	stderrors "errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/kagari-dev/kagari/internal/animation"
	"github.com/kagari-dev/kagari/internal/errors"
)

// runAnimation drives an effect on a wall-clock ticker until the duration
// elapses or the process is interrupted. A zero duration runs until
// interrupt. done, when non-nil, is polled once per interval and ends the
// run early when it reports true.
func runAnimation(cmd *cobra.Command, e animation.Effect, d time.Duration, done func() bool) error {
	interval, err := tickInterval(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	clock := animation.NewClock(interval)
	surface := animation.NewSurface(cmd.OutOrStdout())
	runner := animation.NewRunner(e, clock, surface)

	if err := runner.Start(); err != nil {
		return tagRenderError(err, cmd.Name())
	}

	var timeout <-chan time.Time
	if d > 0 {
		timer := time.NewTimer(d)
		defer timer.Stop()
		timeout = timer.C
	}

	poll := time.NewTicker(interval)
	defer poll.Stop()

loop:
	for {
		select {
		case <-ctx.Done():
			break loop
		case <-timeout:
			break loop
		case <-poll.C:
			if done != nil && done() {
				break loop
			}
		}
	}
	return tagRenderError(runner.Stop(), cmd.Name())
}

// tagRenderError labels a render failure with the command whose effect was
// drawing when the sink rejected the write.
func tagRenderError(err error, effect string) error {
	var renderErr *errors.RenderError
	if stderrors.As(err, &renderErr) {
		return renderErr.WithEffect(effect)
	}
	return err
}
