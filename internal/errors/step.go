//nolint:revive // Package name intentionally shadows stdlib errors for convenience.
package errors

import "fmt"

// StepError reports a failed step in a loading sequence. The sequence halts
// at the failed step; prior completed steps are not rolled back.
type StepError struct {
	Base Error `json:"error"`

	// Index is the zero-based position of the failed step.
	Index int `json:"index"`

	// Label is the failed step's label.
	Label string `json:"label"`

	// Completed is the number of steps that finished before the failure.
	Completed int `json:"completed"`
}

// NewStepError creates a StepError for the step at the given index.
func NewStepError(index int, label string, cause error) *StepError {
	return &StepError{
		Base: Error{
			Category: CategoryStep,
			Code:     CodeStepFailed,
			Message:  fmt.Sprintf("step %q failed", label),
			Cause:    cause,
		},
		Index:     index,
		Label:     label,
		Completed: index,
	}
}

// Error implements the error interface.
func (e *StepError) Error() string {
	return e.Base.Error()
}

// Unwrap returns the underlying error.
func (e *StepError) Unwrap() error {
	return e.Base.Cause
}

// Is reports whether the target error matches this error.
// Two StepErrors match when they refer to the same step index.
func (e *StepError) Is(target error) bool {
	t, ok := target.(*StepError)
	if !ok {
		return false
	}
	return e.Index == t.Index && e.Label == t.Label
}
