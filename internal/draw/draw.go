// Package draw provides the character-cell render sink and its terminal backends.
package draw

import "strconv"

// Color is one of the sixteen text-mode colors.
type Color uint8

const (
	Black Color = iota
	Blue
	Green
	Cyan
	Red
	Magenta
	Brown
	LightGray
	DarkGray
	LightBlue
	LightGreen
	LightCyan
	LightRed
	Pink
	Yellow
	White
)

// Style is a foreground/background color pair for one cell.
type Style struct {
	FG Color
	BG Color
}

// NewStyle returns a style with the given foreground on a black background.
func NewStyle(fg Color) Style {
	return Style{FG: fg, BG: Black}
}

// Blank is the glyph used to erase a cell.
const Blank = ' '

// Sink receives single-cell plots. Every visual element is built from these.
type Sink interface {
	Plot(glyph rune, x, y int, style Style)
}

// Presenter is implemented by sinks that buffer plots until a frame is complete.
type Presenter interface {
	// Present pushes all plots made since the previous call to the output.
	Present() error
}

// Present flushes s if it buffers output. Sinks that draw immediately are left alone.
func Present(s Sink) error {
	if p, ok := s.(Presenter); ok {
		return p.Present()
	}
	return nil
}

// PlotString plots str left to right starting at (x, y).
func PlotString(s Sink, str string, x, y int, style Style) {
	col := x
	for _, r := range str {
		s.Plot(r, col, y, style)
		col++
	}
}

// PlotInt plots n in decimal, left to right starting at (x, y).
// Returns the column following the last digit.
func PlotInt(s Sink, n int, x, y int, style Style) int {
	var buf [20]byte
	digits := strconv.AppendInt(buf[:0], int64(n), 10)
	for i, b := range digits {
		s.Plot(rune(b), x+i, y, style)
	}
	return x + len(digits)
}
