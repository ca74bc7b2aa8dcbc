package ui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// sender abstracts tea.Program.Send for testing.
type sender interface {
	Send(msg tea.Msg)
}

// PreviewLogHandler is a slog.Handler that forwards log records to the
// preview program via Send(), so log output never corrupts rendered frames.
// Only records at or above the configured level are sent.
type PreviewLogHandler struct {
	target sender
	level  slog.Level
	attrs  []slog.Attr
	group  string
}

// NewPreviewLogHandler creates a handler that sends slogMsg to the given sender.
func NewPreviewLogHandler(target sender, level slog.Level) *PreviewLogHandler {
	return &PreviewLogHandler{
		target: target,
		level:  level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PreviewLogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

// Handle formats the record and sends it to the preview as a slogMsg.
func (h *PreviewLogHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(r.Message)

	for _, a := range h.attrs {
		fmt.Fprintf(&b, " %s=%q", h.qualifiedKey(a.Key), a.Value)
	}
	r.Attrs(func(a slog.Attr) bool {
		fmt.Fprintf(&b, " %s=%q", h.qualifiedKey(a.Key), a.Value)
		return true
	})

	h.target.Send(slogMsg{
		level:   r.Level,
		message: b.String(),
	})
	return nil
}

// WithAttrs returns a new handler with the given attributes.
func (h *PreviewLogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]slog.Attr, len(h.attrs)+len(attrs))
	copy(newAttrs, h.attrs)
	copy(newAttrs[len(h.attrs):], attrs)
	return &PreviewLogHandler{
		target: h.target,
		level:  h.level,
		attrs:  newAttrs,
		group:  h.group,
	}
}

// WithGroup returns a new handler with the given group name.
func (h *PreviewLogHandler) WithGroup(name string) slog.Handler {
	newGroup := name
	if h.group != "" {
		newGroup = h.group + "." + name
	}
	return &PreviewLogHandler{
		target: h.target,
		level:  h.level,
		attrs:  h.attrs,
		group:  newGroup,
	}
}

// qualifiedKey prepends the group prefix to a key.
func (h *PreviewLogHandler) qualifiedKey(key string) string {
	if h.group == "" {
		return key
	}
	return h.group + "." + key
}
