package effect

import (
	"github.com/kagari-dev/kagari/internal/errors"
)

// Preset names a built-in spinner glyph sequence.
type Preset string

const (
	PresetClassic Preset = "classic"
	PresetBraille Preset = "braille"
	PresetDots    Preset = "dots"
	PresetArrows  Preset = "arrows"
	PresetPulse   Preset = "pulse"
	PresetBounce  Preset = "bounce"
)

var presetGlyphs = map[Preset][]string{
	PresetClassic: {"|", "/", "-", "\\"},
	PresetBraille: {"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
	PresetDots:    {"⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷"},
	PresetArrows:  {"←", "↖", "↑", "↗", "→", "↘", "↓", "↙"},
	PresetPulse:   {"◐", "◓", "◑", "◒"},
	PresetBounce:  {"⠁", "⠂", "⠄", "⠂"},
}

// Glyphs returns the glyph sequence for a preset, or nil for an unknown one.
func Glyphs(p Preset) []string {
	glyphs := presetGlyphs[p]
	if glyphs == nil {
		return nil
	}
	out := make([]string, len(glyphs))
	copy(out, glyphs)
	return out
}

// packageManager describes a package-manager themed spinner.
type packageManager struct {
	glyphs   []string
	color    Color
	messages []string
}

// packageManagers holds the built-in package-manager spinner themes.
var packageManagers = map[string]packageManager{
	"npm": {
		glyphs:   Glyphs(PresetBraille),
		color:    ColorRed,
		messages: []string{"Installing dependencies", "Resolving packages", "Building project"},
	},
	"yarn": {
		glyphs:   Glyphs(PresetPulse),
		color:    ColorBlue,
		messages: []string{"Installing packages", "Resolving dependencies", "Building bundles"},
	},
	"pnpm": {
		glyphs:   []string{"●", "○", "◉", "○"},
		color:    ColorYellow,
		messages: []string{"Installing from store", "Linking dependencies", "Running scripts"},
	},
	"cargo": {
		glyphs:   []string{"▱▱▱", "▰▱▱", "▰▰▱", "▰▰▰", "▱▰▰", "▱▱▰", "▱▱▱"},
		color:    ColorYellow,
		messages: []string{"Compiling crates", "Building dependencies", "Linking binaries"},
	},
	"apt": {
		glyphs:   []string{"[    ]", "[=   ]", "[==  ]", "[=== ]", "[====]", "[ ===]", "[  ==]", "[   =]"},
		color:    ColorGreen,
		messages: []string{"Updating package lists", "Installing packages", "Configuring system"},
	},
	"pip": {
		glyphs:   Glyphs(PresetClassic),
		color:    ColorCyan,
		messages: []string{"Collecting packages", "Resolving dependencies", "Installing wheels"},
	},
}

// PackageManagers lists the known package-manager spinner names.
func PackageManagers() []string {
	names := make([]string, 0, len(packageManagers))
	for name := range packageManagers {
		names = append(names, name)
	}
	return names
}

// NewPackageManagerSpinner creates a Spinner themed after a package manager.
// An empty message selects the manager's first stock message.
func NewPackageManagerSpinner(name, message string) (*Spinner, error) {
	pm, ok := packageManagers[name]
	if !ok {
		return nil, errors.NewConfigError("package manager", "unknown package manager").
			WithValue(name).
			WithHint("use one of: npm, yarn, pnpm, cargo, apt, pip")
	}
	if message == "" {
		message = pm.messages[0]
	}
	return NewSpinner(SpinnerConfig{
		Label:   name,
		Message: message,
		Glyphs:  pm.glyphs,
		Color:   pm.color,
	})
}
