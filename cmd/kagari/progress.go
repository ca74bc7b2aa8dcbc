package main

import (
	"github.com/spf13/cobra"

	"github.com/kagari-dev/kagari/internal/effect"
)

var (
	progressLabel string
	progressTotal int
	progressWidth int
	progressColor string
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Render a progress bar",
	Long:  `Render a progress bar that advances one unit per frame until full.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		bar, err := effect.NewProgressBar(effect.ProgressConfig{
			Label: progressLabel,
			Total: progressTotal,
			Width: progressWidth,
			Color: effect.Color(progressColor),
		})
		if err != nil {
			return err
		}
		return runAnimation(cmd, bar, 0, func() bool {
			bar.Increment(1)
			return bar.Done()
		})
	},
}

func init() {
	progressCmd.Flags().StringVar(&progressLabel, "label", "", "Label prefixing the bar")
	progressCmd.Flags().IntVar(&progressTotal, "total", 100, "Value that represents completion")
	progressCmd.Flags().IntVar(&progressWidth, "width", 0, "Bar width in characters (0 uses the default)")
	progressCmd.Flags().StringVar(&progressColor, "color", "", "Fill color")
}
