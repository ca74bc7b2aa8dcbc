package effect

import (
	"math/rand/v2"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/kagari-dev/kagari/internal/animation"
	"github.com/kagari-dev/kagari/internal/errors"
)

// Charset names a built-in matrix character alphabet.
type Charset string

const (
	CharsetASCII    Charset = "ascii"
	CharsetKatakana Charset = "katakana"
	CharsetBinary   Charset = "binary"
)

var charsets = map[Charset][]rune{
	CharsetASCII:    []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*<>"),
	CharsetKatakana: []rune("アイウエオカキクケコサシスセソタチツテトナニヌネノハヒフヘホマミムメモヤユヨラリルレロワヲン"),
	CharsetBinary:   []rune("01"),
}

// Stream trail length bounds, matching the classic rain look.
const (
	minTrailLen = 5
	maxTrailLen = 15
)

// Rand is the random source sampled by MatrixRain. Injected so behavior is
// reproducible under test; satisfied by *rand.Rand.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// Default grid dimensions when the config leaves them zero.
const (
	defaultMatrixWidth  = 80
	defaultMatrixHeight = 20
)

// MatrixConfig configures a MatrixRain effect.
type MatrixConfig struct {
	// Charset selects a built-in alphabet. Defaults to ascii. Ignored when
	// Custom is set.
	Charset Charset

	// Custom is a caller-supplied alphabet. Setting it to an empty
	// sequence is a construction-time error.
	Custom []rune

	// Density is the probability in [0,1] that an idle column spawns a new
	// falling stream on a tick.
	Density float64

	// Width and Height are the grid dimensions in columns and rows.
	Width, Height int

	// Rand is the random source. Nil falls back to the process-wide
	// source.
	Rand Rand
}

// column tracks one falling stream: the head row and the trail length
// behind it. head is -1 while the column is idle.
type column struct {
	head   int
	length int
}

// MatrixRain renders cascading character streams over a fixed-width grid.
// Each tick, idle columns spawn a stream with probability Density; active
// streams advance their head one row and age their trail, dimming characters
// further from the head and clearing the oldest.
type MatrixRain struct {
	chars     []rune
	density   float64
	width     int
	height    int
	cellWidth int
	rand      Rand
	cols      []column
}

// globalRand adapts the process-wide math/rand/v2 source to Rand.
type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }
func (globalRand) IntN(n int) int   { return rand.IntN(n) }

// Styles for head and trail segments, brightest at the head.
var (
	matrixHeadStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15")) // bright white
	matrixNearStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // bright green
	matrixMidStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))  // green
	matrixFarStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("22")) // dim green
)

// NewMatrixRain creates a MatrixRain. A density outside [0,1], an unknown
// charset, or an explicitly empty custom alphabet is a ConfigError.
func NewMatrixRain(cfg MatrixConfig) (*MatrixRain, error) {
	if cfg.Density < 0 || cfg.Density > 1 {
		return nil, errors.NewOutOfRangeError("density", cfg.Density, "0.0-1.0")
	}

	var chars []rune
	switch {
	case cfg.Custom != nil:
		if len(cfg.Custom) == 0 {
			return nil, errors.NewEmptySequenceError("char_set")
		}
		chars = cfg.Custom
	case cfg.Charset == "":
		chars = charsets[CharsetASCII]
	default:
		chars = charsets[cfg.Charset]
		if chars == nil {
			return nil, errors.NewConfigError("char_set", "unknown charset").
				WithValue(string(cfg.Charset)).
				WithHint("use one of: ascii, katakana, binary")
		}
	}

	width := cfg.Width
	if width <= 0 {
		width = defaultMatrixWidth
	}
	height := cfg.Height
	if height <= 0 {
		height = defaultMatrixHeight
	}

	src := cfg.Rand
	if src == nil {
		src = globalRand{}
	}

	// Wide alphabets (katakana) occupy two terminal cells per column;
	// narrow runes are padded to keep the grid aligned.
	cellWidth := 1
	for _, r := range chars {
		if w := runewidth.RuneWidth(r); w > cellWidth {
			cellWidth = w
		}
	}

	m := &MatrixRain{
		chars:     chars,
		density:   cfg.Density,
		width:     width,
		height:    height,
		cellWidth: cellWidth,
		rand:      src,
	}
	m.Reset()
	return m, nil
}

// Advance implements animation.Effect. It moves every column one step and
// renders the full grid as a block redraw.
func (m *MatrixRain) Advance(_ animation.Tick) animation.FrameContent {
	for i := range m.cols {
		c := &m.cols[i]
		if c.head < 0 {
			if m.density > 0 && m.rand.Float64() < m.density {
				c.head = 0
				c.length = minTrailLen + m.rand.IntN(maxTrailLen-minTrailLen+1)
			}
			continue
		}
		c.head++
		if c.head-c.length >= m.height {
			c.head = -1
		}
	}

	var b strings.Builder
	for y := range m.height {
		for x := range m.cols {
			b.WriteString(m.cell(x, y))
		}
		if y < m.height-1 {
			b.WriteByte('\n')
		}
	}

	return animation.FrameContent{Text: b.String(), Mode: animation.RedrawBlock}
}

// Reset implements animation.Effect: all columns go idle.
func (m *MatrixRain) Reset() {
	m.cols = make([]column, m.width)
	for i := range m.cols {
		m.cols[i].head = -1
	}
}

// Active returns the number of columns with a falling stream.
func (m *MatrixRain) Active() int {
	n := 0
	for _, c := range m.cols {
		if c.head >= 0 {
			n++
		}
	}
	return n
}

// cell renders the grid cell at column x, row y, padded to the cell width.
func (m *MatrixRain) cell(x, y int) string {
	c := m.cols[x]
	if c.head < 0 || y > c.head || y <= c.head-c.length {
		return strings.Repeat(" ", m.cellWidth)
	}

	ch := m.chars[m.rand.IntN(len(m.chars))]
	s := string(ch)
	if pad := m.cellWidth - runewidth.RuneWidth(ch); pad > 0 {
		s += strings.Repeat(" ", pad)
	}

	switch dist := c.head - y; {
	case dist == 0:
		return matrixHeadStyle.Render(s)
	case dist < 3:
		return matrixNearStyle.Render(s)
	case dist < 6:
		return matrixMidStyle.Render(s)
	default:
		return matrixFarStyle.Render(s)
	}
}
