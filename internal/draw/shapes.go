package draw

// HLine plots glyph across columns [x, x+length) on row y.
func HLine(s Sink, glyph rune, x, y, length int, style Style) {
	for col := x; col < x+length; col++ {
		s.Plot(glyph, col, y, style)
	}
}

// VLine plots glyph down rows [y, y+length) in column x.
func VLine(s Sink, glyph rune, x, y, length int, style Style) {
	for row := y; row < y+length; row++ {
		s.Plot(glyph, x, row, style)
	}
}

// FillRect plots glyph over the width x height rectangle anchored at (x, y).
func FillRect(s Sink, glyph rune, x, y, width, height int, style Style) {
	for row := y; row < y+height; row++ {
		HLine(s, glyph, x, row, width, style)
	}
}

// CenteredString plots str horizontally centered on column cx.
func CenteredString(s Sink, str string, cx, y int, style Style) {
	PlotString(s, str, cx-len([]rune(str))/2, y, style)
}
