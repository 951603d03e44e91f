package draw

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// maxChunkSize is the maximum bytes to write at once for smooth SSH flow.
const maxChunkSize = 1400

// ChunkWriter accumulates escape sequences and glyphs, then writes them in
// MTU-sized chunks on Flush. Cursor positions are 1-based and shifted by the
// configured offset so the display surface can be centered in a larger terminal.
type ChunkWriter struct {
	buf    strings.Builder
	bufw   *bufio.Writer // Buffers writes to underlying writer for fewer syscalls
	numBuf [20]byte      // Scratch buffer for allocation-free integer formatting
	offCol int
	offRow int
}

// NewChunkWriter creates a ChunkWriter that writes to w.
func NewChunkWriter(w io.Writer, offsetCol, offsetRow int) *ChunkWriter {
	return &ChunkWriter{
		bufw:   bufio.NewWriterSize(w, 8192),
		offCol: offsetCol,
		offRow: offsetRow,
	}
}

// SetOffset updates the cursor offset (e.g. after terminal resize).
func (cw *ChunkWriter) SetOffset(offsetCol, offsetRow int) {
	cw.offCol = offsetCol
	cw.offRow = offsetRow
}

// MoveCursor appends an ANSI cursor position sequence.
func (cw *ChunkWriter) MoveCursor(col, row int) {
	cw.buf.WriteString("\033[")
	cw.buf.Write(strconv.AppendInt(cw.numBuf[:0], int64(row+cw.offRow), 10))
	cw.buf.WriteByte(';')
	cw.buf.Write(strconv.AppendInt(cw.numBuf[:0], int64(col+cw.offCol), 10))
	cw.buf.WriteByte('H')
}

// SetStyle appends an SGR sequence selecting the style's colors.
func (cw *ChunkWriter) SetStyle(s Style) {
	cw.buf.WriteString("\033[")
	cw.buf.Write(strconv.AppendInt(cw.numBuf[:0], int64(ansiFG(s.FG)), 10))
	cw.buf.WriteByte(';')
	cw.buf.Write(strconv.AppendInt(cw.numBuf[:0], int64(ansiFG(s.BG)+10), 10))
	cw.buf.WriteByte('m')
}

// Write implements io.Writer.
func (cw *ChunkWriter) Write(p []byte) (n int, err error) {
	return cw.buf.Write(p)
}

// WriteString appends a string to the buffer.
func (cw *ChunkWriter) WriteString(s string) {
	cw.buf.WriteString(s)
}

// WriteRune appends a rune to the buffer.
func (cw *ChunkWriter) WriteRune(r rune) {
	cw.buf.WriteRune(r)
}

// Ensure ChunkWriter satisfies io.Writer.
var _ io.Writer = (*ChunkWriter)(nil)

// Flush writes the accumulated buffer to the underlying writer in chunks,
// then resets the buffer.
func (cw *ChunkWriter) Flush() error {
	data := cw.buf.String()
	cw.buf.Reset()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		if _, err := cw.bufw.WriteString(chunk); err != nil {
			return err
		}
		data = data[len(chunk):]
	}
	return cw.bufw.Flush()
}

// ansiFG maps a text-mode color to its SGR foreground code.
func ansiFG(c Color) int {
	switch c {
	case Black:
		return 30
	case Blue:
		return 34
	case Green:
		return 32
	case Cyan:
		return 36
	case Red:
		return 31
	case Magenta:
		return 35
	case Brown:
		return 33
	case LightGray:
		return 37
	case DarkGray:
		return 90
	case LightBlue:
		return 94
	case LightGreen:
		return 92
	case LightCyan:
		return 96
	case LightRed:
		return 91
	case Pink:
		return 95
	case Yellow:
		return 93
	default:
		return 97
	}
}

// TermSizeFunc is a function that returns the terminal dimensions.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc returns terminal size from os.Stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// ClearScreen clears the terminal and moves cursor to top-left.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25l")
}

// ShowCursor shows the terminal cursor and resets colors.
func ShowCursor(w io.Writer) {
	fmt.Fprint(w, "\033[0m\033[?25h")
}

// ANSIScreen is a Sink that renders a fixed-size Grid to a terminal using
// ANSI escape sequences. Only cells that changed since the last Present are sent.
type ANSIScreen struct {
	front    *Grid // Cells being plotted this frame
	back     *Grid // Cells as last written to the terminal
	cw       *ChunkWriter
	sizeFunc TermSizeFunc
	termW    int
	termH    int
	redraw   bool
}

// NewANSIScreen creates a width x height screen writing to w.
// sizeFunc is used to center the surface in the terminal; it may be nil.
func NewANSIScreen(w io.Writer, width, height int, sizeFunc TermSizeFunc) *ANSIScreen {
	s := &ANSIScreen{
		front:    NewGrid(width, height),
		back:     NewGrid(width, height),
		cw:       NewChunkWriter(w, 0, 0),
		sizeFunc: sizeFunc,
		redraw:   true,
	}
	s.updateOffset()
	return s
}

// Plot implements Sink.
func (s *ANSIScreen) Plot(glyph rune, x, y int, style Style) {
	s.front.Plot(glyph, x, y, style)
}

// Present implements Presenter.
func (s *ANSIScreen) Present() error {
	if s.updateOffset() {
		s.redraw = true
	}
	if s.redraw {
		s.cw.WriteString("\033[0m\033[H\033[2J")
	}

	var last Style
	styled := false
	for y := 0; y < s.front.Height(); y++ {
		for x := 0; x < s.front.Width(); x++ {
			cell := s.front.At(x, y)
			if !s.redraw && cell == s.back.At(x, y) {
				continue
			}
			s.cw.MoveCursor(x+1, y+1)
			if !styled || cell.Style != last {
				s.cw.SetStyle(cell.Style)
				last = cell.Style
				styled = true
			}
			s.cw.WriteRune(cell.Glyph)
		}
	}

	s.back.CopyFrom(s.front)
	s.redraw = false
	return s.cw.Flush()
}

// updateOffset recenters the surface in the terminal. Returns true if the offset moved.
func (s *ANSIScreen) updateOffset() bool {
	if s.sizeFunc == nil {
		return false
	}
	termW, termH, err := s.sizeFunc()
	if err != nil || (termW == s.termW && termH == s.termH) {
		return false
	}
	s.termW, s.termH = termW, termH
	s.cw.SetOffset(max((termW-s.front.Width())/2, 0), max((termH-s.front.Height())/2, 0))
	return true
}

// Ensure ANSIScreen satisfies the sink contracts.
var (
	_ Sink      = (*ANSIScreen)(nil)
	_ Presenter = (*ANSIScreen)(nil)
)
