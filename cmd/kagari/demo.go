package main

import (
	"github.com/spf13/cobra"

	"github.com/kagari-dev/kagari/internal/animation"
	"github.com/kagari-dev/kagari/internal/effect"
	"github.com/kagari-dev/kagari/internal/errors"
	"github.com/kagari-dev/kagari/internal/ui"
)

var demoCmd = &cobra.Command{
	Use:   "demo [spinner|glow|matrix|progress|type]",
	Short: "Preview an effect full-screen",
	Long: `Preview an effect in an interactive full-screen view.

Press q or ctrl+c to quit. Defaults to the matrix effect.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"spinner", "glow", "matrix", "progress", "type"},
	RunE: func(cmd *cobra.Command, args []string) error {
		name := "matrix"
		if len(args) > 0 {
			name = args[0]
		}

		e, err := demoEffect(name)
		if err != nil {
			return err
		}
		interval, err := tickInterval(cmd)
		if err != nil {
			return err
		}
		return ui.RunPreview("kagari demo: "+name, e, interval, slogLevel)
	},
}

func demoEffect(name string) (animation.Effect, error) {
	switch name {
	case "spinner":
		return effect.NewSpinner(effect.SpinnerConfig{
			Message: cfg.Spinner.Message,
			Glyphs:  effect.Glyphs(effect.Preset(cfg.Spinner.Preset)),
			Color:   effect.ColorCyan,
		})
	case "glow":
		return effect.NewGlowText(effect.GlowConfig{
			Text:      "kagari",
			Color:     effect.Color(cfg.Glow.Color),
			Intensity: cfg.Glow.Intensity,
		})
	case "matrix":
		return effect.NewMatrixRain(effect.MatrixConfig{
			Charset: effect.Charset(cfg.Matrix.Charset),
			Density: cfg.Matrix.Density,
			Width:   60,
			Height:  16,
		})
	case "progress":
		bar, err := effect.NewProgressBar(effect.ProgressConfig{
			Label: "demo",
			Total: 100,
			Color: effect.ColorGreen,
		})
		if err != nil {
			return nil, err
		}
		return &autoProgress{bar: bar}, nil
	case "type":
		return effect.NewTypewriter(effect.TypewriterConfig{
			Text:  "Wake up, Neo...",
			Color: effect.ColorGreen,
		})
	default:
		return nil, errors.NewConfigError("effect", "unknown demo effect").
			WithValue(name).
			WithHint("use one of: spinner, glow, matrix, progress, type")
	}
}

// autoProgress advances a ProgressBar one unit per frame so the demo does
// not need a driving goroutine. It wraps around when the bar fills.
type autoProgress struct {
	bar *effect.ProgressBar
}

func (a *autoProgress) Advance(t animation.Tick) animation.FrameContent {
	fc := a.bar.Advance(t)
	if a.bar.Done() {
		a.bar.Reset()
	} else {
		a.bar.Increment(1)
	}
	return fc
}

func (a *autoProgress) Reset() {
	a.bar.Reset()
}
