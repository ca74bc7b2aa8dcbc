// Package log configures the process-wide slog logger. Animated commands
// cannot log to the terminal without corrupting frames, so records go to a
// file under the user state directory.
package log

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/kagari-dev/kagari/internal/config"
)

const logFileName = "kagari.log"

// Setup opens the log file and installs a text handler as the slog default.
// The returned file should be closed on process exit.
func Setup(level slog.Level) (*os.File, error) {
	dir, err := config.ExpandHome(config.DefaultStateDir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create state directory: %w", err)
	}

	f, err := os.OpenFile(filepath.Join(dir, logFileName), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})))
	return f, nil
}

// ParseLevel converts a level name to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch s {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level: %q", s)
	}
}
