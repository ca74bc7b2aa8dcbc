package main

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/lipgloss"
	fatihcolor "github.com/fatih/color"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/kagari-dev/kagari/internal/config"
	"github.com/kagari-dev/kagari/internal/log"
)

const outputJSON = "json"

var (
	noColor      bool
	intervalFlag string
	configDir    string
	logLevel     string

	cfg *config.Config

	// slogLevel is the parsed --log-level, consumed by commands that
	// install their own slog handler.
	slogLevel slog.Level
)

var rootCmd = &cobra.Command{
	Use:   "kagari",
	Short: "Terminal animation toolkit",
	Long: `Kagari renders tick-driven animations on the terminal.

Effects share a single frame clock and a serialized render surface, so
every animation leaves the cursor and screen exactly as it found them:
  kagari spin --pm npm      Package-manager themed spinner
  kagari glow "build ok"    Pulsing glow text
  kagari matrix             Falling character rain
  kagari update             Multi-step loading sequence`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		loaded, err := config.LoadConfig(configDir)
		if err != nil {
			return err
		}
		cfg = loaded

		if cmd.Flags().Changed("no-color") {
			cfg.NoColor = noColor
		}
		noColor = cfg.NoColor
		if noColor {
			fatihcolor.NoColor = true
			lipgloss.SetColorProfile(termenv.Ascii)
		}

		level, err := log.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		slogLevel = level
		// The log file stays open for the life of the process.
		if _, err := log.Setup(level); err != nil {
			return err
		}
		return nil
	},
}

// tickInterval resolves the frame interval from the --interval flag, falling
// back to the config file and its default.
func tickInterval(cmd *cobra.Command) (time.Duration, error) {
	if cmd.Flags().Changed("interval") {
		cfg.Interval = intervalFlag
	}
	return cfg.TickInterval()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&intervalFlag, "interval", "", `Frame interval, e.g. "100ms"`)
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", config.DefaultConfigDir, "Config directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		versionCmd,
		spinCmd,
		glowCmd,
		matrixCmd,
		progressCmd,
		typeCmd,
		updateCmd,
		demoCmd,
		completionCmd,
	)
}
