package effect

import (
	"github.com/kagari-dev/kagari/internal/animation"
	"github.com/kagari-dev/kagari/internal/errors"
)

// TypewriterConfig configures a Typewriter effect.
type TypewriterConfig struct {
	// Text is the string to reveal.
	Text string

	// Cursor is the glyph drawn after the revealed text. Defaults to "|".
	Cursor string

	// Color tints the revealed text when set.
	Color Color
}

// Typewriter progressively reveals text one rune per tick. Once the full
// text is visible the cursor keeps blinking on tick parity.
type Typewriter struct {
	runes  []rune
	cursor string
	color  Color
	pos    int
}

// NewTypewriter creates a Typewriter. Empty text or an unknown color is a
// ConfigError.
func NewTypewriter(cfg TypewriterConfig) (*Typewriter, error) {
	if cfg.Text == "" {
		return nil, errors.NewEmptySequenceError("text")
	}
	if err := validateColor("color", cfg.Color); err != nil {
		return nil, err
	}
	cursor := cfg.Cursor
	if cursor == "" {
		cursor = "|"
	}

	return &Typewriter{
		runes:  []rune(cfg.Text),
		cursor: cursor,
		color:  cfg.Color,
	}, nil
}

// Advance implements animation.Effect.
func (t *Typewriter) Advance(tick animation.Tick) animation.FrameContent {
	if t.pos < len(t.runes) {
		t.pos++
	}

	visible := string(t.runes[:t.pos])
	if t.color != "" {
		visible = t.color.Style().Render(visible)
	}
	cursor := t.cursor
	if tick.Seq%2 == 1 {
		cursor = " "
	}

	return animation.FrameContent{Text: visible + cursor, Mode: animation.OverwriteLine}
}

// Reset implements animation.Effect.
func (t *Typewriter) Reset() {
	t.pos = 0
}

// Done reports whether the full text has been revealed.
func (t *Typewriter) Done() bool {
	return t.pos >= len(t.runes)
}
