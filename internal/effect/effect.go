// Package effect implements the animated effect state machines: spinner,
// glowing text, matrix rain, progress bar, and typewriter. Each effect owns
// only its own progression state and satisfies animation.Effect; terminal
// access belongs to the render surface.
package effect

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/kagari-dev/kagari/internal/errors"
)

// Color is a named effect color.
type Color string

const (
	ColorRed     Color = "red"
	ColorGreen   Color = "green"
	ColorBlue    Color = "blue"
	ColorCyan    Color = "cyan"
	ColorMagenta Color = "magenta"
	ColorYellow  Color = "yellow"
	ColorWhite   Color = "white"
)

// colorStyles maps named colors to their base ANSI styles.
var colorStyles = map[Color]lipgloss.Style{
	ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	ColorMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
}

// glowGradients maps named colors to brightest-first ANSI-256 ramps used by
// the glow effect.
var glowGradients = map[Color][]string{
	ColorCyan:    {"51", "45", "39", "33", "27"},
	ColorRed:     {"196", "160", "124", "88", "52"},
	ColorGreen:   {"46", "40", "34", "28", "22"},
	ColorMagenta: {"129", "93", "57", "21", "19"},
	ColorBlue:    {"39", "33", "27", "21", "17"},
	ColorYellow:  {"226", "220", "214", "178", "136"},
	ColorWhite:   {"231", "253", "250", "247", "244"},
}

// Valid reports whether c is one of the named effect colors.
func (c Color) Valid() bool {
	_, ok := colorStyles[c]
	return ok
}

// Style returns the base lipgloss style for the color. Unknown colors render
// unstyled.
func (c Color) Style() lipgloss.Style {
	if st, ok := colorStyles[c]; ok {
		return st
	}
	return lipgloss.NewStyle()
}

// validateColor returns a ConfigError when c is set but not a known color.
func validateColor(option string, c Color) error {
	if c == "" || c.Valid() {
		return nil
	}
	return errors.NewConfigError(option, "unknown color").
		WithValue(string(c)).
		WithHint("use one of: red, green, blue, cyan, magenta, yellow, white")
}
