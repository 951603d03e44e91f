package draw

// Cell is one character position on a Grid.
type Cell struct {
	Glyph rune
	Style Style
}

// Grid is a fixed-size in-memory cell buffer implementing Sink.
// Plots outside the grid are ignored.
type Grid struct {
	width  int
	height int
	cells  []Cell // Flat slice: [y * width + x]
}

// NewGrid creates a blank grid of the given size.
func NewGrid(width, height int) *Grid {
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	g.Clear()
	return g
}

// Width returns the grid column count.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the grid row count.
func (g *Grid) Height() int {
	return g.height
}

// Plot implements Sink.
func (g *Grid) Plot(glyph rune, x, y int, style Style) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return
	}
	g.cells[y*g.width+x] = Cell{Glyph: glyph, Style: style}
}

// At returns the cell at (x, y), or a blank cell when out of range.
func (g *Grid) At(x, y int) Cell {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return Cell{Glyph: Blank}
	}
	return g.cells[y*g.width+x]
}

// Row returns the glyphs of row y as a string.
func (g *Grid) Row(y int) string {
	if y < 0 || y >= g.height {
		return ""
	}
	runes := make([]rune, g.width)
	for x := range runes {
		runes[x] = g.cells[y*g.width+x].Glyph
	}
	return string(runes)
}

// Clear blanks every cell.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Cell{Glyph: Blank}
	}
}

// CopyFrom overwrites g with the contents of src. Both grids must be the same size.
func (g *Grid) CopyFrom(src *Grid) {
	copy(g.cells, src.cells)
}
