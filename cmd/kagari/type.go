package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/kagari-dev/kagari/internal/effect"
)

var (
	typeCursor string
	typeColor  string
	typeHold   int
)

var typeCmd = &cobra.Command{
	Use:   "type <text>...",
	Short: "Render a typewriter reveal",
	Long:  `Reveal text one character per frame, then blink the cursor briefly.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tw, err := effect.NewTypewriter(effect.TypewriterConfig{
			Text:   strings.Join(args, " "),
			Cursor: typeCursor,
			Color:  effect.Color(typeColor),
		})
		if err != nil {
			return err
		}

		// Let the cursor blink a few frames after the last rune appears.
		hold := typeHold
		return runAnimation(cmd, tw, 0, func() bool {
			if !tw.Done() {
				return false
			}
			hold--
			return hold <= 0
		})
	},
}

func init() {
	typeCmd.Flags().StringVar(&typeCursor, "cursor", "", `Cursor glyph (default "|")`)
	typeCmd.Flags().StringVar(&typeColor, "color", "", "Text color")
	typeCmd.Flags().IntVar(&typeHold, "hold", 10, "Frames to keep blinking after the reveal")
}
