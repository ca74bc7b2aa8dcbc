package effect

import (
	"fmt"

	"github.com/kagari-dev/kagari/internal/animation"
	"github.com/kagari-dev/kagari/internal/errors"
)

// SpinnerConfig configures a Spinner.
type SpinnerConfig struct {
	// Label prefixes the message, e.g. a package-manager name or step name.
	Label string

	// Message is the descriptive text shown after the label.
	Message string

	// Glyphs is the ordered frame sequence. Nil selects the braille
	// preset; an explicitly empty sequence is a construction-time error.
	Glyphs []string

	// Color tints the whole line when set.
	Color Color
}

// Spinner cycles through a fixed glyph sequence next to a label and message.
// The glyph index wraps modulo the sequence length.
type Spinner struct {
	glyphs  []string
	label   string
	message string
	color   Color
	index   int
}

// NewSpinner creates a Spinner. An explicitly empty glyph sequence or an
// unknown color is a ConfigError.
func NewSpinner(cfg SpinnerConfig) (*Spinner, error) {
	glyphs := cfg.Glyphs
	if glyphs == nil {
		glyphs = Glyphs(PresetBraille)
	}
	if len(glyphs) == 0 {
		return nil, errors.NewEmptySequenceError("glyphs").
			WithHint("omit glyphs to use the braille preset")
	}
	if err := validateColor("color", cfg.Color); err != nil {
		return nil, err
	}

	return &Spinner{
		glyphs:  glyphs,
		label:   cfg.Label,
		message: cfg.Message,
		color:   cfg.Color,
	}, nil
}

// Advance implements animation.Effect. Each call renders the current glyph
// and moves to the next, wrapping at the sequence length.
func (s *Spinner) Advance(_ animation.Tick) animation.FrameContent {
	glyph := s.glyphs[s.index]
	s.index = (s.index + 1) % len(s.glyphs)

	var line string
	if s.label != "" {
		line = fmt.Sprintf("%s %s: %s", glyph, s.label, s.message)
	} else {
		line = fmt.Sprintf("%s %s", glyph, s.message)
	}
	if s.color != "" {
		line = s.color.Style().Render(line)
	}

	return animation.FrameContent{Text: line, Mode: animation.OverwriteLine}
}

// Reset implements animation.Effect.
func (s *Spinner) Reset() {
	s.index = 0
}
