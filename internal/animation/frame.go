package animation

import "strings"

// RenderMode directs how the surface places a frame relative to the previous
// one.
type RenderMode int

const (
	// OverwriteLine redraws the current line in place. The surface erases
	// the previous frame's width first so shorter content leaves no
	// artifacts.
	OverwriteLine RenderMode = iota

	// RedrawBlock redraws a multi-line region in place, erasing each line
	// of the previous frame's block.
	RedrawBlock

	// AppendLine replaces the owned region with a permanent line and moves
	// on. Used for step-completion markers.
	AppendLine
)

// FrameContent is the rendered output for one tick: a text payload (with any
// color attributes already baked in as ANSI sequences) plus a placement
// directive. Produced by an effect, consumed by the surface.
type FrameContent struct {
	// Text is the payload to draw. For RedrawBlock it contains
	// newline-separated rows.
	Text string

	// Mode directs cursor placement relative to the previous frame.
	Mode RenderMode
}

// LineCount returns the number of terminal lines the frame occupies.
func (fc FrameContent) LineCount() int {
	return strings.Count(fc.Text, "\n") + 1
}
