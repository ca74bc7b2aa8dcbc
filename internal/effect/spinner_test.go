package effect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	stderrors "errors"

	"github.com/kagari-dev/kagari/internal/animation"
	"github.com/kagari-dev/kagari/internal/errors"
)

func TestSpinnerGlyphCycle(t *testing.T) {
	t.Parallel()

	s, err := NewSpinner(SpinnerConfig{
		Message: "loading",
		Glyphs:  Glyphs(PresetClassic),
	})
	require.NoError(t, err)

	want := []string{"| loading", "/ loading", "- loading", "\\ loading", "| loading"}
	for i, expected := range want {
		fc := s.Advance(animation.Tick{Seq: uint64(i)})
		assert.Equal(t, expected, fc.Text, "tick %d", i)
		assert.Equal(t, animation.OverwriteLine, fc.Mode)
	}
}

func TestSpinnerLabel(t *testing.T) {
	t.Parallel()

	s, err := NewSpinner(SpinnerConfig{
		Label:   "npm",
		Message: "installing packages",
		Glyphs:  []string{"*"},
	})
	require.NoError(t, err)

	fc := s.Advance(animation.Tick{})
	assert.Equal(t, "* npm: installing packages", fc.Text)
}

func TestSpinnerDefaultsToBraille(t *testing.T) {
	t.Parallel()

	s, err := NewSpinner(SpinnerConfig{Message: "loading"})
	require.NoError(t, err)

	fc := s.Advance(animation.Tick{})
	assert.Equal(t, "⠋ loading", fc.Text)
}

func TestSpinnerEmptyGlyphs(t *testing.T) {
	t.Parallel()

	_, err := NewSpinner(SpinnerConfig{
		Message: "loading",
		Glyphs:  []string{},
	})
	require.Error(t, err)

	var configErr *errors.ConfigError
	require.True(t, stderrors.As(err, &configErr))
	assert.Equal(t, errors.CodeEmptySequence, configErr.Base.Code)
}

func TestSpinnerUnknownColor(t *testing.T) {
	t.Parallel()

	_, err := NewSpinner(SpinnerConfig{
		Message: "loading",
		Color:   Color("chartreuse"),
	})
	require.Error(t, err)

	var configErr *errors.ConfigError
	require.True(t, stderrors.As(err, &configErr))
	assert.Equal(t, errors.CodeInvalidOption, configErr.Base.Code)
}

func TestSpinnerReset(t *testing.T) {
	t.Parallel()

	s, err := NewSpinner(SpinnerConfig{
		Message: "loading",
		Glyphs:  Glyphs(PresetClassic),
	})
	require.NoError(t, err)

	s.Advance(animation.Tick{})
	s.Advance(animation.Tick{})
	s.Reset()

	fc := s.Advance(animation.Tick{})
	assert.Equal(t, "| loading", fc.Text, "reset returns to the first glyph")
}
