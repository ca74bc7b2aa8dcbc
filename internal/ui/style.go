package ui

import (
	"github.com/fatih/color"
)

// Style holds common output styling for CLI commands and the loading
// manager's permanent marker lines.
type Style struct {
	SuccessMark string
	FailMark    string
	WarnMark    string
	Header      *color.Color
	Label       *color.Color
	Dim         *color.Color
}

// NewStyle creates a new Style with standard colors.
func NewStyle() *Style {
	return &Style{
		SuccessMark: color.New(color.FgGreen).Sprint("✓"),
		FailMark:    color.New(color.FgRed).Sprint("✗"),
		WarnMark:    color.New(color.FgYellow).Sprint("⚠"),
		Header:      color.New(color.FgCyan, color.Bold),
		Label:       color.New(color.FgCyan),
		Dim:         color.New(color.FgHiBlack),
	}
}
