package errors

import (
	"encoding/json"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPlainFormatter() *Formatter {
	return NewFormatter(io.Discard, true)
}

func TestFormatConfigError(t *testing.T) {
	f := newPlainFormatter()

	err := NewOutOfRangeError("intensity", 15, "1-10").
		WithHint("lower the intensity")

	out := f.Format(err)
	assert.Contains(t, out, "Error [E103]: intensity is out of range: 15 (allowed: 1-10)")
	assert.Contains(t, out, "Option:  intensity")
	assert.Contains(t, out, "Got:     15")
	assert.Contains(t, out, "Allowed: 1-10")
	assert.Contains(t, out, "Hint: lower the intensity")
}

func TestFormatStepError(t *testing.T) {
	f := newPlainFormatter()

	err := NewStepError(1, "drivers", fmt.Errorf("device not found"))

	out := f.Format(err)
	assert.Contains(t, out, "Error [E301]:")
	assert.Contains(t, out, "Step:      drivers (index 1)")
	assert.Contains(t, out, "Completed: 1 step(s) before the failure")
	assert.Contains(t, out, "Cause:     device not found")
}

func TestFormatRenderError(t *testing.T) {
	f := newPlainFormatter()

	err := NewRenderError("failed to write frame", fmt.Errorf("broken pipe")).
		WithEffect("matrix")

	out := f.Format(err)
	assert.Contains(t, out, "Error [E201]: failed to write frame")
	assert.Contains(t, out, "Effect: matrix")
	assert.Contains(t, out, "Cause:  broken pipe")
}

func TestFormatPlainError(t *testing.T) {
	f := newPlainFormatter()

	out := f.Format(fmt.Errorf("something odd"))
	assert.Equal(t, "Error: something odd\n", out)
}

func TestFormatNil(t *testing.T) {
	f := newPlainFormatter()

	assert.Empty(t, f.Format(nil))
}

func TestFormatWrappedError(t *testing.T) {
	f := newPlainFormatter()

	inner := NewEmptySequenceError("glyphs")
	wrapped := fmt.Errorf("starting spinner: %w", inner)

	out := f.Format(wrapped)
	assert.Contains(t, out, "Error [E102]:", "structured errors are found through wrapping")
}

func TestFormatJSONConfigError(t *testing.T) {
	f := newPlainFormatter()

	data, err := f.FormatJSON(NewOutOfRangeError("density", 1.5, "0.0-1.0"))
	require.NoError(t, err)

	var decoded struct {
		Error struct {
			Category string `json:"category"`
			Code     string `json:"code"`
		} `json:"error"`
		Option  string `json:"option"`
		Value   string `json:"value"`
		Allowed string `json:"allowed"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "config", decoded.Error.Category)
	assert.Equal(t, "E103", decoded.Error.Code)
	assert.Equal(t, "density", decoded.Option)
	assert.Equal(t, "1.5", decoded.Value)
	assert.Equal(t, "0.0-1.0", decoded.Allowed)
}

func TestFormatJSONStepError(t *testing.T) {
	f := newPlainFormatter()

	data, err := f.FormatJSON(NewStepError(0, "network", fmt.Errorf("timeout")))
	require.NoError(t, err)

	var decoded struct {
		Index int    `json:"index"`
		Label string `json:"label"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 0, decoded.Index)
	assert.Equal(t, "network", decoded.Label)
}

func TestFormatJSONNil(t *testing.T) {
	f := newPlainFormatter()

	data, err := f.FormatJSON(nil)
	require.NoError(t, err)
	assert.Nil(t, data)
}
