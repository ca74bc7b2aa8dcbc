package effect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kagari-dev/kagari/internal/animation"
)

func TestGlyphs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"|", "/", "-", "\\"}, Glyphs(PresetClassic))
	assert.Len(t, Glyphs(PresetBraille), 10)
	assert.Nil(t, Glyphs(Preset("nonsense")))
}

func TestGlyphsReturnsCopy(t *testing.T) {
	t.Parallel()

	first := Glyphs(PresetClassic)
	first[0] = "X"

	assert.Equal(t, "|", Glyphs(PresetClassic)[0], "mutating a returned slice must not alter the preset")
}

func TestPackageManagers(t *testing.T) {
	t.Parallel()

	names := PackageManagers()
	assert.ElementsMatch(t, []string{"npm", "yarn", "pnpm", "cargo", "apt", "pip"}, names)
}

func TestNewPackageManagerSpinner(t *testing.T) {
	t.Parallel()

	s, err := NewPackageManagerSpinner("npm", "installing react")
	require.NoError(t, err)

	fc := s.Advance(animation.Tick{})
	assert.Contains(t, fc.Text, "npm: installing react")
}

func TestNewPackageManagerSpinnerStockMessage(t *testing.T) {
	t.Parallel()

	s, err := NewPackageManagerSpinner("cargo", "")
	require.NoError(t, err)

	fc := s.Advance(animation.Tick{})
	assert.Contains(t, fc.Text, "cargo: ")
}

func TestNewPackageManagerSpinnerUnknown(t *testing.T) {
	t.Parallel()

	_, err := NewPackageManagerSpinner("brew2", "x")
	require.Error(t, err)
	assert.ErrorContains(t, err, "unknown package manager")
}

func TestColorValid(t *testing.T) {
	t.Parallel()

	for _, c := range []Color{ColorRed, ColorGreen, ColorBlue, ColorCyan, ColorMagenta, ColorYellow, ColorWhite} {
		assert.True(t, c.Valid(), string(c))
	}
	assert.False(t, Color("taupe").Valid())
	assert.False(t, Color("").Valid())
}
