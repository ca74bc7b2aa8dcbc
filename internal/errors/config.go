//nolint:revive // Package name intentionally shadows stdlib errors for convenience.
package errors

import "fmt"

// ConfigError represents invalid construction parameters for an effect or
// the loading manager. It is raised synchronously at construction and never
// surfaces mid-animation.
type ConfigError struct {
	Base Error `json:"error"`

	// Option is the name of the offending configuration option.
	Option string `json:"option,omitempty"`

	// Value is the rejected value, formatted for display.
	Value string `json:"value,omitempty"`

	// Allowed describes the accepted range or set of values.
	Allowed string `json:"allowed,omitempty"`
}

// NewConfigError creates a ConfigError for an invalid option value.
func NewConfigError(option, message string) *ConfigError {
	return &ConfigError{
		Base: Error{
			Category: CategoryConfig,
			Code:     CodeInvalidOption,
			Message:  message,
		},
		Option: option,
	}
}

// NewEmptySequenceError creates a ConfigError for an empty required sequence
// (glyph set, step list, character set).
func NewEmptySequenceError(option string) *ConfigError {
	return &ConfigError{
		Base: Error{
			Category: CategoryConfig,
			Code:     CodeEmptySequence,
			Message:  fmt.Sprintf("%s must not be empty", option),
		},
		Option: option,
	}
}

// NewOutOfRangeError creates a ConfigError for a value outside its bounds.
func NewOutOfRangeError(option string, value any, allowed string) *ConfigError {
	return &ConfigError{
		Base: Error{
			Category: CategoryConfig,
			Code:     CodeOutOfRange,
			Message:  fmt.Sprintf("%s is out of range: %v (allowed: %s)", option, value, allowed),
		},
		Option:  option,
		Value:   fmt.Sprintf("%v", value),
		Allowed: allowed,
	}
}

// WithValue sets the rejected value.
func (e *ConfigError) WithValue(value any) *ConfigError {
	e.Value = fmt.Sprintf("%v", value)
	return e
}

// WithHint sets the hint on the base error.
func (e *ConfigError) WithHint(hint string) *ConfigError {
	e.Base.Hint = hint
	return e
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return e.Base.Error()
}

// Unwrap returns the underlying error.
func (e *ConfigError) Unwrap() error {
	return e.Base.Cause
}

// Is reports whether the target error matches this error by code.
func (e *ConfigError) Is(target error) bool {
	t, ok := target.(*ConfigError)
	if !ok {
		return false
	}
	if e.Base.Code != "" && t.Base.Code != "" {
		return e.Base.Code == t.Base.Code
	}
	return e.Option == t.Option
}
