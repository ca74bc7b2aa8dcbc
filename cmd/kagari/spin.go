package main

import (
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/kagari-dev/kagari/internal/effect"
	"github.com/kagari-dev/kagari/internal/errors"
	"github.com/kagari-dev/kagari/internal/ui"
)

func unknownPresetError(preset string) error {
	return errors.NewConfigError("preset", "unknown spinner preset").
		WithValue(preset).
		WithHint("use one of: classic, braille, dots, arrows, pulse, bounce")
}

var (
	spinPreset   string
	spinMessage  string
	spinLabel    string
	spinColor    string
	spinPM       string
	spinDuration time.Duration
	spinList     bool
)

var spinCmd = &cobra.Command{
	Use:   "spin",
	Short: "Render a spinner",
	Long: `Render a spinner until interrupted or --duration elapses.

Use --preset to pick a glyph style, or --pm to mimic a package manager's
install animation (glyphs, color, and stock message included).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if spinList {
			return listSpinners(cmd)
		}

		message := spinMessage
		if message == "" {
			message = cfg.Spinner.Message
		}

		var (
			spinner *effect.Spinner
			err     error
		)
		if spinPM != "" {
			spinner, err = effect.NewPackageManagerSpinner(spinPM, spinMessage)
		} else {
			preset := spinPreset
			if preset == "" {
				preset = cfg.Spinner.Preset
			}
			glyphs := effect.Glyphs(effect.Preset(preset))
			if glyphs == nil {
				return unknownPresetError(preset)
			}
			spinner, err = effect.NewSpinner(effect.SpinnerConfig{
				Label:   spinLabel,
				Message: message,
				Glyphs:  glyphs,
				Color:   effect.Color(spinColor),
			})
		}
		if err != nil {
			return err
		}
		return runAnimation(cmd, spinner, spinDuration, nil)
	},
}

func listSpinners(cmd *cobra.Command) error {
	style := ui.NewStyle()
	managers := effect.PackageManagers()
	sort.Strings(managers)

	cmd.Println(style.Header.Sprint("Presets:"))
	for _, p := range []effect.Preset{
		effect.PresetClassic, effect.PresetBraille, effect.PresetDots,
		effect.PresetArrows, effect.PresetPulse, effect.PresetBounce,
	} {
		cmd.Printf("  %s %s\n", style.Label.Sprint(p), style.Dim.Sprint(strings.Join(effect.Glyphs(p), " ")))
	}
	cmd.Println(style.Header.Sprint("Package managers:"))
	for _, name := range managers {
		cmd.Printf("  %s\n", style.Label.Sprint(name))
	}
	return nil
}

func init() {
	spinCmd.Flags().StringVarP(&spinPreset, "preset", "p", "", "Glyph preset (classic, braille, dots, arrows, pulse, bounce)")
	spinCmd.Flags().StringVarP(&spinMessage, "message", "m", "", "Message shown next to the spinner")
	spinCmd.Flags().StringVar(&spinLabel, "label", "", "Label prefixing the message")
	spinCmd.Flags().StringVar(&spinColor, "color", "", "Line color (red, green, blue, cyan, magenta, yellow, white)")
	spinCmd.Flags().StringVar(&spinPM, "pm", "", "Package-manager theme (npm, yarn, pnpm, cargo, apt, pip)")
	spinCmd.Flags().DurationVarP(&spinDuration, "duration", "d", 0, "Stop after this long (0 runs until interrupt)")
	spinCmd.Flags().BoolVar(&spinList, "list", false, "List presets and package-manager themes")
}
