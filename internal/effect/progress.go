package effect

import (
	"fmt"
	"strings"
	"sync"

	"github.com/kagari-dev/kagari/internal/animation"
	"github.com/kagari-dev/kagari/internal/errors"
)

const (
	defaultBarWidth = 40
	progressFull    = '█'
	progressEmpty   = '░'
)

// ProgressConfig configures a ProgressBar effect.
type ProgressConfig struct {
	// Label prefixes the bar.
	Label string

	// Total is the value that represents completion. Must be positive.
	Total int

	// Width is the bar width in characters. Defaults to 40.
	Width int

	// Color tints the filled portion when set.
	Color Color
}

// ProgressBar renders a bounded bar with a percentage. Unlike the other
// effects its visible progression is caller-driven: Set and Increment update
// the value from any goroutine, and each tick renders the latest state.
type ProgressBar struct {
	label string
	total int
	width int
	color Color

	mu    sync.Mutex
	value int
}

// NewProgressBar creates a ProgressBar. A non-positive total or an unknown
// color is a ConfigError.
func NewProgressBar(cfg ProgressConfig) (*ProgressBar, error) {
	if cfg.Total <= 0 {
		return nil, errors.NewOutOfRangeError("total", cfg.Total, "positive integer")
	}
	if err := validateColor("color", cfg.Color); err != nil {
		return nil, err
	}
	width := cfg.Width
	if width <= 0 {
		width = defaultBarWidth
	}

	return &ProgressBar{
		label: cfg.Label,
		total: cfg.Total,
		width: width,
		color: cfg.Color,
	}, nil
}

// Set updates the current value, clamped to [0, total].
func (p *ProgressBar) Set(value int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.value = min(max(value, 0), p.total)
}

// Increment adds n to the current value, clamped to [0, total].
func (p *ProgressBar) Increment(n int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.value = min(max(p.value+n, 0), p.total)
}

// Value returns the current value.
func (p *ProgressBar) Value() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.value
}

// Done reports whether the bar has reached its total.
func (p *ProgressBar) Done() bool {
	return p.Value() >= p.total
}

// Advance implements animation.Effect.
func (p *ProgressBar) Advance(_ animation.Tick) animation.FrameContent {
	value := p.Value()
	filled := value * p.width / p.total

	bar := strings.Repeat(string(progressFull), filled)
	if p.color != "" {
		bar = p.color.Style().Render(bar)
	}
	bar += strings.Repeat(string(progressEmpty), p.width-filled)

	percent := value * 100 / p.total
	var line string
	if p.label != "" {
		line = fmt.Sprintf("%s [%s] %3d%%", p.label, bar, percent)
	} else {
		line = fmt.Sprintf("[%s] %3d%%", bar, percent)
	}

	return animation.FrameContent{Text: line, Mode: animation.OverwriteLine}
}

// Reset implements animation.Effect.
func (p *ProgressBar) Reset() {
	p.Set(0)
}
