package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/kagari-dev/kagari/internal/animation"
	"github.com/kagari-dev/kagari/internal/loading"
	"github.com/kagari-dev/kagari/internal/ui"
)

var updateStepDuration time.Duration

var updateCmd = &cobra.Command{
	Use:   "update [step]...",
	Short: "Run a multi-step loading sequence",
	Long: `Run an ordered loading sequence, one spinner per step.

Each step displays for --step-duration, then a completion mark replaces
the spinner. Steps default to the update.steps list in config.yaml.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		steps := args
		if len(steps) == 0 {
			steps = cfg.Update.Steps
		}

		stepDuration := updateStepDuration
		if !cmd.Flags().Changed("step-duration") {
			d, err := cfg.StepDuration()
			if err != nil {
				return err
			}
			stepDuration = d
		}

		interval, err := tickInterval(cmd)
		if err != nil {
			return err
		}

		manager, err := loading.NewManager(loading.Config{
			Steps:   steps,
			Policy:  loading.OnFixedDuration(stepDuration),
			Ticker:  animation.NewClock(interval),
			Surface: animation.NewSurface(cmd.OutOrStdout()),
		})
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := manager.Run(ctx); err != nil {
			// An interrupt mid-sequence is not a failure of the steps.
			if ctx.Err() != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "%s update interrupted\n", ui.NewStyle().WarnMark)
				return nil
			}
			return err
		}
		return nil
	},
}

func init() {
	updateCmd.Flags().DurationVar(&updateStepDuration, "step-duration", time.Second, "Display duration per step")
}
