//nolint:revive // Package name intentionally shadows stdlib errors for convenience.
package errors

import (
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Formatter formats errors for CLI output.
type Formatter struct {
	NoColor bool
	Writer  io.Writer

	// Colors
	errorColor  *color.Color
	codeColor   *color.Color
	optionColor *color.Color
	hintColor   *color.Color
	gotColor    *color.Color
	dimColor    *color.Color
}

// NewFormatter creates a new Formatter.
func NewFormatter(w io.Writer, noColor bool) *Formatter {
	if noColor {
		color.NoColor = true
	}

	return &Formatter{
		NoColor:     noColor,
		Writer:      w,
		errorColor:  color.New(color.FgRed, color.Bold),
		codeColor:   color.New(color.FgRed),
		optionColor: color.New(color.FgCyan),
		hintColor:   color.New(color.FgGreen),
		gotColor:    color.New(color.FgRed),
		dimColor:    color.New(color.FgHiBlack),
	}
}

// formatErrorHeader writes the error header with code.
// Format: "Error [E101]: message" or "Error: message" if no code.
func (f *Formatter) formatErrorHeader(sb *strings.Builder, code Code, message string) {
	sb.WriteString(f.errorColor.Sprint("Error"))
	if code != "" {
		sb.WriteString(" ")
		sb.WriteString(f.codeColor.Sprintf("[%s]", code))
	}
	sb.WriteString(f.errorColor.Sprint(": "))
	sb.WriteString(message)
	sb.WriteString("\n")
}

// Format formats an error for CLI display.
func (f *Formatter) Format(err error) string {
	if err == nil {
		return ""
	}

	var sb strings.Builder

	var configErr *ConfigError
	var renderErr *RenderError
	var stepErr *StepError
	var baseErr *Error

	switch {
	case errors.As(err, &configErr):
		f.formatConfigError(&sb, configErr)
	case errors.As(err, &stepErr):
		f.formatStepError(&sb, stepErr)
	case errors.As(err, &renderErr):
		f.formatRenderError(&sb, renderErr)
	case errors.As(err, &baseErr):
		f.formatBaseError(&sb, baseErr)
	default:
		// Fallback for non-kagari errors
		sb.WriteString(f.errorColor.Sprint("Error: "))
		sb.WriteString(err.Error())
		sb.WriteString("\n")
	}

	return sb.String()
}

// FormatJSON formats an error as JSON.
func (f *Formatter) FormatJSON(err error) ([]byte, error) {
	if err == nil {
		return nil, nil
	}

	var configErr *ConfigError
	var renderErr *RenderError
	var stepErr *StepError
	var baseErr *Error

	switch {
	case errors.As(err, &configErr):
		return json.MarshalIndent(configErr, "", "  ")
	case errors.As(err, &stepErr):
		return json.MarshalIndent(stepErr, "", "  ")
	case errors.As(err, &renderErr):
		return json.MarshalIndent(renderErr, "", "  ")
	case errors.As(err, &baseErr):
		return json.MarshalIndent(baseErr, "", "  ")
	default:
		// Fallback for non-kagari errors
		return json.MarshalIndent(map[string]string{"error": err.Error()}, "", "  ")
	}
}

func (f *Formatter) formatConfigError(sb *strings.Builder, err *ConfigError) {
	f.formatErrorHeader(sb, err.Base.Code, err.Base.Message)
	sb.WriteString("\n")

	if err.Option != "" {
		sb.WriteString("  ")
		sb.WriteString(f.dimColor.Sprint("Option:  "))
		sb.WriteString(f.optionColor.Sprint(err.Option))
		sb.WriteString("\n")
	}
	if err.Value != "" {
		sb.WriteString("  ")
		sb.WriteString(f.dimColor.Sprint("Got:     "))
		sb.WriteString(f.gotColor.Sprint(err.Value))
		sb.WriteString("\n")
	}
	if err.Allowed != "" {
		sb.WriteString("  ")
		sb.WriteString(f.dimColor.Sprint("Allowed: "))
		sb.WriteString(err.Allowed)
		sb.WriteString("\n")
	}

	f.formatHint(sb, &err.Base)
}

func (f *Formatter) formatStepError(sb *strings.Builder, err *StepError) {
	f.formatErrorHeader(sb, err.Base.Code, err.Base.Message)
	sb.WriteString("\n")

	sb.WriteString("  ")
	sb.WriteString(f.dimColor.Sprint("Step:      "))
	sb.WriteString(f.optionColor.Sprintf("%s (index %d)", err.Label, err.Index))
	sb.WriteString("\n")

	sb.WriteString("  ")
	sb.WriteString(f.dimColor.Sprint("Completed: "))
	sb.WriteString(f.dimColor.Sprintf("%d step(s) before the failure", err.Completed))
	sb.WriteString("\n")

	if err.Base.Cause != nil {
		sb.WriteString("  ")
		sb.WriteString(f.dimColor.Sprint("Cause:     "))
		sb.WriteString(f.gotColor.Sprint(err.Base.Cause.Error()))
		sb.WriteString("\n")
	}

	f.formatHint(sb, &err.Base)
}

func (f *Formatter) formatRenderError(sb *strings.Builder, err *RenderError) {
	f.formatErrorHeader(sb, err.Base.Code, err.Base.Message)

	if err.Effect != "" || err.Base.Cause != nil {
		sb.WriteString("\n")
	}
	if err.Effect != "" {
		sb.WriteString("  ")
		sb.WriteString(f.dimColor.Sprint("Effect: "))
		sb.WriteString(f.optionColor.Sprint(err.Effect))
		sb.WriteString("\n")
	}
	if err.Base.Cause != nil {
		sb.WriteString("  ")
		sb.WriteString(f.dimColor.Sprint("Cause:  "))
		sb.WriteString(f.gotColor.Sprint(err.Base.Cause.Error()))
		sb.WriteString("\n")
	}

	f.formatHint(sb, &err.Base)
}

func (f *Formatter) formatBaseError(sb *strings.Builder, err *Error) {
	f.formatErrorHeader(sb, err.Code, err.Error())
	f.formatHint(sb, err)
}

func (f *Formatter) formatHint(sb *strings.Builder, err *Error) {
	if err.Hint == "" {
		return
	}
	sb.WriteString("\n")
	sb.WriteString(f.hintColor.Sprint("Hint: "))
	sb.WriteString(err.Hint)
	sb.WriteString("\n")
}
