package effect

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/kagari-dev/kagari/internal/animation"
	"github.com/kagari-dev/kagari/internal/errors"
)

// Glow intensity bounds.
const (
	MinIntensity = 1
	MaxIntensity = 10
)

// GlowConfig configures a GlowText effect.
type GlowConfig struct {
	// Text is the string to render.
	Text string

	// Color selects the glow gradient. Defaults to cyan.
	Color Color

	// Intensity in [1,10] controls pulsation speed: higher is faster.
	Intensity int
}

// GlowText pulses a string through a brightness gradient. The phase counter
// wraps at the cycle length so it never grows unbounded.
type GlowText struct {
	text     string
	gradient []lipgloss.Style
	cycle    int
	phase    int
}

// NewGlowText creates a GlowText. Empty text, an unknown color, or an
// intensity outside [1,10] is a ConfigError.
func NewGlowText(cfg GlowConfig) (*GlowText, error) {
	if cfg.Text == "" {
		return nil, errors.NewEmptySequenceError("text")
	}
	color := cfg.Color
	if color == "" {
		color = ColorCyan
	}
	if err := validateColor("color", color); err != nil {
		return nil, err
	}
	if cfg.Intensity < MinIntensity || cfg.Intensity > MaxIntensity {
		return nil, errors.NewOutOfRangeError("intensity", cfg.Intensity, "1-10")
	}

	ramp := glowGradients[color]
	gradient := make([]lipgloss.Style, len(ramp))
	for i, c := range ramp {
		gradient[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Bold(true)
	}

	return &GlowText{
		text:     cfg.Text,
		gradient: gradient,
		// Higher intensity shortens the pulse cycle. Always even, so the
		// triangle wave below is symmetric.
		cycle: 2 * (MaxIntensity + 2 - cfg.Intensity),
	}, nil
}

// Advance implements animation.Effect. Brightness follows a triangle wave
// over the phase counter modulo the cycle length.
func (g *GlowText) Advance(_ animation.Tick) animation.FrameContent {
	level := g.brightness()
	g.phase = (g.phase + 1) % g.cycle

	line := g.gradient[level].Render("  " + g.text + "  ")
	return animation.FrameContent{Text: line, Mode: animation.OverwriteLine}
}

// Reset implements animation.Effect.
func (g *GlowText) Reset() {
	g.phase = 0
}

// brightness maps the phase onto a gradient index: 0 (brightest) at the peak
// of the wave, len-1 (dimmest) at the trough.
func (g *GlowText) brightness() int {
	half := g.cycle / 2
	k := g.phase % g.cycle
	if k > half {
		k = g.cycle - k
	}
	return (half - k) * (len(g.gradient) - 1) / half
}
