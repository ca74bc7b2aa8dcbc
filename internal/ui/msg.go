package ui

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickMsg triggers one animation frame in the preview.
type tickMsg time.Time

// slogMsg delivers a structured log record to the preview model.
type slogMsg struct {
	level   slog.Level
	message string
}

// tick schedules the next frame after the given interval.
func tick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
