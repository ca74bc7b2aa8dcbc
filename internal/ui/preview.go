// Package ui provides CLI output styling and the full-screen Bubble Tea
// preview used by the demo command.
package ui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/kagari-dev/kagari/internal/animation"
)

const previewMaxLogLines = 5

var (
	previewTitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	previewFooterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	previewWarnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	previewErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// PreviewModel drives one effect inside a Bubble Tea program. The effect
// advances on tickMsg; rendering goes through View instead of a Surface, so
// the preview owns the whole alternate screen.
type PreviewModel struct {
	title    string
	effect   animation.Effect
	interval time.Duration

	frame    string
	seq      uint64
	start    time.Time
	width    int
	logLines []string
	quitting bool
}

// NewPreviewModel creates a preview for the given effect.
func NewPreviewModel(title string, e animation.Effect, interval time.Duration) *PreviewModel {
	if interval <= 0 {
		interval = animation.DefaultInterval
	}
	e.Reset()
	return &PreviewModel{
		title:    title,
		effect:   e,
		interval: interval,
	}
}

// Init implements tea.Model.
func (m *PreviewModel) Init() tea.Cmd {
	m.start = time.Now()
	return tick(m.interval)
}

// Update implements tea.Model.
func (m *PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case tickMsg:
		fc := m.effect.Advance(animation.Tick{
			Seq:     m.seq,
			Elapsed: time.Time(msg).Sub(m.start),
		})
		m.seq++
		m.frame = fc.Text
		return m, tick(m.interval)

	case slogMsg:
		m.logLines = append(m.logLines, m.renderLogLine(msg))
		if len(m.logLines) > previewMaxLogLines {
			m.logLines = m.logLines[len(m.logLines)-previewMaxLogLines:]
		}
		return m, nil
	}

	return m, nil
}

// View implements tea.Model. The last frame rendered before tea.Quit
// persists in the terminal scrollback.
func (m *PreviewModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(previewTitleStyle.Render(m.title))
	b.WriteString("\n\n")
	b.WriteString(m.frame)
	b.WriteString("\n")

	for _, line := range m.logLines {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	footer := fmt.Sprintf("elapsed %s · q to quit", time.Since(m.start).Round(time.Second))
	b.WriteString("\n")
	b.WriteString(previewFooterStyle.Render(fitWidth(footer, m.width)))
	return b.String()
}

// renderLogLine styles a forwarded slog record by level.
func (m *PreviewModel) renderLogLine(msg slogMsg) string {
	line := fitWidth(msg.message, m.width)
	switch {
	case msg.level >= slog.LevelError:
		return previewErrorStyle.Render(line)
	case msg.level >= slog.LevelWarn:
		return previewWarnStyle.Render(line)
	default:
		return previewFooterStyle.Render(line)
	}
}

// fitWidth truncates a line to the terminal width, accounting for wide runes.
func fitWidth(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width-1, "…")
}

// redirectLogs routes the default slog logger to the preview for the
// duration of the program. The returned func restores the previous logger.
func redirectLogs(target sender, level slog.Level) func() {
	prev := slog.Default()
	slog.SetDefault(slog.New(NewPreviewLogHandler(target, level)))
	return func() { slog.SetDefault(prev) }
}

// RunPreview runs the preview program on the alternate screen until the user
// quits. While it runs, slog records at or above level are forwarded into the
// preview's log pane instead of the terminal.
func RunPreview(title string, e animation.Effect, interval time.Duration, level slog.Level) error {
	p := tea.NewProgram(NewPreviewModel(title, e, interval), tea.WithAltScreen())
	defer redirectLogs(p, level)()
	_, err := p.Run()
	return err
}
