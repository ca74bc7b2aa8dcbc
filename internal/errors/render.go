//nolint:revive // Package name intentionally shadows stdlib errors for convenience.
package errors

// RenderError represents a rejected write on the output sink.
// It is surfaced to the caller of Stop or a Start-triggered render;
// render failures are never retried automatically.
type RenderError struct {
	Base Error `json:"error"`

	// Effect is the label of the effect whose frame failed to draw.
	Effect string `json:"effect,omitempty"`
}

// NewRenderError creates a RenderError wrapping a sink write failure.
func NewRenderError(message string, cause error) *RenderError {
	return &RenderError{
		Base: Error{
			Category: CategoryRender,
			Code:     CodeWriteFailed,
			Message:  message,
			Cause:    cause,
		},
	}
}

// NewSinkClosedError creates a RenderError for a sink that started rejecting
// writes mid-animation, after frames had already been drawn.
func NewSinkClosedError(cause error) *RenderError {
	return &RenderError{
		Base: Error{
			Category: CategoryRender,
			Code:     CodeSinkClosed,
			Message:  "animation halted",
			Cause:    cause,
		},
	}
}

// WithEffect sets the effect label.
func (e *RenderError) WithEffect(label string) *RenderError {
	e.Effect = label
	return e
}

// Error implements the error interface.
func (e *RenderError) Error() string {
	return e.Base.Error()
}

// Unwrap returns the underlying error.
func (e *RenderError) Unwrap() error {
	return e.Base.Cause
}

// Is reports whether the target error matches this error by code.
func (e *RenderError) Is(target error) bool {
	t, ok := target.(*RenderError)
	if !ok {
		return false
	}
	return e.Base.Code == t.Base.Code
}
