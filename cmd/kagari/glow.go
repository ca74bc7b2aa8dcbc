package main

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/kagari-dev/kagari/internal/effect"
)

var (
	glowColor     string
	glowIntensity int
	glowDuration  time.Duration
)

var glowCmd = &cobra.Command{
	Use:   "glow <text>...",
	Short: "Render pulsing glow text",
	Long: `Render text that pulses through a brightness gradient.

Intensity ranges from 1 (slow breathing) to 10 (rapid flicker).`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		color := glowColor
		if color == "" {
			color = cfg.Glow.Color
		}
		intensity := glowIntensity
		if !cmd.Flags().Changed("intensity") {
			intensity = cfg.Glow.Intensity
		}

		glow, err := effect.NewGlowText(effect.GlowConfig{
			Text:      strings.Join(args, " "),
			Color:     effect.Color(color),
			Intensity: intensity,
		})
		if err != nil {
			return err
		}
		return runAnimation(cmd, glow, glowDuration, nil)
	},
}

func init() {
	glowCmd.Flags().StringVar(&glowColor, "color", "", "Glow gradient color")
	glowCmd.Flags().IntVarP(&glowIntensity, "intensity", "i", 3, "Pulsation speed in [1,10]")
	glowCmd.Flags().DurationVarP(&glowDuration, "duration", "d", 0, "Stop after this long (0 runs until interrupt)")
}
