package effect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	stderrors "errors"

	"github.com/kagari-dev/kagari/internal/animation"
	"github.com/kagari-dev/kagari/internal/errors"
)

func TestProgressBarFrame(t *testing.T) {
	t.Parallel()

	p, err := NewProgressBar(ProgressConfig{Total: 10, Width: 10})
	require.NoError(t, err)

	fc := p.Advance(animation.Tick{})
	assert.Equal(t, "[░░░░░░░░░░]   0%", fc.Text)
	assert.Equal(t, animation.OverwriteLine, fc.Mode)

	p.Set(5)
	fc = p.Advance(animation.Tick{})
	assert.Equal(t, "[█████░░░░░]  50%", fc.Text)

	p.Set(10)
	fc = p.Advance(animation.Tick{})
	assert.Equal(t, "[██████████] 100%", fc.Text)
}

func TestProgressBarLabel(t *testing.T) {
	t.Parallel()

	p, err := NewProgressBar(ProgressConfig{Label: "download", Total: 4, Width: 4})
	require.NoError(t, err)

	p.Set(2)
	fc := p.Advance(animation.Tick{})
	assert.Equal(t, "download [██░░]  50%", fc.Text)
}

func TestProgressBarClamping(t *testing.T) {
	t.Parallel()

	p, err := NewProgressBar(ProgressConfig{Total: 10})
	require.NoError(t, err)

	p.Set(-5)
	assert.Equal(t, 0, p.Value())

	p.Set(25)
	assert.Equal(t, 10, p.Value())
	assert.True(t, p.Done())

	p.Increment(-100)
	assert.Equal(t, 0, p.Value())

	p.Increment(3)
	p.Increment(3)
	assert.Equal(t, 6, p.Value())
	assert.False(t, p.Done())
}

func TestProgressBarInvalidTotal(t *testing.T) {
	t.Parallel()

	for _, total := range []int{0, -1} {
		_, err := NewProgressBar(ProgressConfig{Total: total})
		require.Error(t, err)

		var configErr *errors.ConfigError
		require.True(t, stderrors.As(err, &configErr))
		assert.Equal(t, errors.CodeOutOfRange, configErr.Base.Code)
	}
}

func TestProgressBarDefaultWidth(t *testing.T) {
	t.Parallel()

	p, err := NewProgressBar(ProgressConfig{Total: 1})
	require.NoError(t, err)

	fc := p.Advance(animation.Tick{})
	assert.Contains(t, fc.Text, "[░")
	assert.Len(t, []rune(fc.Text), defaultBarWidth+2+5, "bar plus brackets and percentage")
}

func TestProgressBarReset(t *testing.T) {
	t.Parallel()

	p, err := NewProgressBar(ProgressConfig{Total: 10})
	require.NoError(t, err)

	p.Set(7)
	p.Reset()
	assert.Equal(t, 0, p.Value())
}
