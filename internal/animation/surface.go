package animation

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/kagari-dev/kagari/internal/errors"
)

// ANSI escape sequences for terminal control.
const (
	ansiCursorUp      = "\033[%dA"
	ansiClearLine     = "\033[2K"
	ansiCursorToStart = "\r"
	ansiReset         = "\033[0m"
)

// Surface serializes terminal writes for one owned screen region. At most
// one Write is in flight at any instant; concurrent callers (the timing loop
// and a caller invoking Stop) block on the mutex instead of interleaving
// output mid-line.
//
// The sink is injectable so tests can capture frames without a real
// terminal.
type Surface struct {
	mu           sync.Mutex
	w            io.Writer
	out          *termenv.Output
	isTTY        bool
	lines        int // height of the owned region, 0 when nothing is drawn
	active       bool
	cursorHidden bool
}

// NewSurface creates a Surface writing to w. Cursor hiding is only performed
// when w is a real terminal.
func NewSurface(w io.Writer) *Surface {
	isTTY := false
	if f, ok := w.(*os.File); ok {
		isTTY = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &Surface{
		w:     w,
		out:   termenv.NewOutput(w),
		isTTY: isTTY,
	}
}

// Write draws a frame according to its render mode. The previous frame's
// region is erased first so shorter content leaves no artifacts.
func (s *Surface) Write(fc FrameContent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		s.active = true
		if s.isTTY {
			s.out.HideCursor()
			s.cursorHidden = true
		}
	}

	var b strings.Builder
	switch fc.Mode {
	case OverwriteLine:
		s.rewind(&b)
		b.WriteString(ansiClearLine)
		b.WriteString(fc.Text)
		// Erase leftover rows when the previous frame was a taller block.
		if extra := s.lines - 1; extra > 0 {
			for range extra {
				b.WriteByte('\n')
				b.WriteString(ansiClearLine)
			}
			fmt.Fprintf(&b, ansiCursorUp, extra)
			b.WriteString(ansiCursorToStart)
		}
		s.lines = 1

	case RedrawBlock:
		s.rewind(&b)
		rows := strings.Split(fc.Text, "\n")
		for i, row := range rows {
			b.WriteString(ansiClearLine)
			b.WriteString(row)
			if i < len(rows)-1 {
				b.WriteByte('\n')
			}
		}
		// Erase leftover rows when the previous block was taller.
		if extra := s.lines - len(rows); extra > 0 {
			for range extra {
				b.WriteByte('\n')
				b.WriteString(ansiClearLine)
			}
			fmt.Fprintf(&b, ansiCursorUp, extra)
			b.WriteString(ansiCursorToStart)
		}
		s.lines = len(rows)

	case AppendLine:
		s.rewind(&b)
		b.WriteString(ansiClearLine)
		b.WriteString(fc.Text)
		b.WriteByte('\n')
		s.lines = 0
	}

	if _, err := io.WriteString(s.w, b.String()); err != nil {
		return errors.NewRenderError("failed to write frame", err)
	}
	return nil
}

// Clear erases the owned region, leaving the cursor at the start of the
// first owned line. Safe to call when nothing has been drawn.
func (s *Surface) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lines == 0 {
		return nil
	}

	var b strings.Builder
	s.rewind(&b)
	for i := range s.lines {
		b.WriteString(ansiClearLine)
		if i < s.lines-1 {
			b.WriteByte('\n')
		}
	}
	if s.lines > 1 {
		fmt.Fprintf(&b, ansiCursorUp, s.lines-1)
		b.WriteString(ansiCursorToStart)
	}
	s.lines = 0

	if _, err := io.WriteString(s.w, b.String()); err != nil {
		return errors.NewRenderError("failed to clear frame", err)
	}
	return nil
}

// Restore resets terminal color state and re-shows the cursor. It is
// idempotent: only the first call after drawing emits restore writes.
func (s *Surface) Restore() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return nil
	}

	// State flips only after the write lands, so a failed restore can be
	// retried instead of leaving the cursor hidden.
	if _, err := io.WriteString(s.w, ansiReset); err != nil {
		return errors.NewRenderError("failed to restore terminal state", err)
	}
	s.active = false

	if s.cursorHidden {
		s.out.ShowCursor()
		s.cursorHidden = false
	}
	return nil
}

// rewind appends cursor movement placing the cursor at column 0 of the first
// owned row. Must be called with the mutex held.
func (s *Surface) rewind(b *strings.Builder) {
	if s.lines > 1 {
		fmt.Fprintf(b, ansiCursorUp, s.lines-1)
	}
	b.WriteString(ansiCursorToStart)
}
