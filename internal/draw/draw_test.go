package draw

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridPlotAndBounds(t *testing.T) {
	g := NewGrid(4, 2)
	g.Plot('#', 1, 1, NewStyle(White))
	g.Plot('x', 9, 9, NewStyle(White))
	g.Plot('x', -1, 0, NewStyle(White))

	assert.Equal(t, Cell{Glyph: '#', Style: NewStyle(White)}, g.At(1, 1))
	assert.Equal(t, "    ", g.Row(0))
	assert.Equal(t, " #  ", g.Row(1))
	assert.Equal(t, Blank, g.At(9, 9).Glyph)
}

func TestPlotStringAndInt(t *testing.T) {
	g := NewGrid(12, 1)
	PlotString(g, "HP", 0, 0, NewStyle(White))
	next := PlotInt(g, -42, 3, 0, NewStyle(Yellow))

	assert.Equal(t, "HP -42      ", g.Row(0))
	assert.Equal(t, 6, next)
	assert.Equal(t, Yellow, g.At(3, 0).Style.FG)
}

func TestShapes(t *testing.T) {
	g := NewGrid(5, 3)
	FillRect(g, '.', 0, 0, 5, 3, NewStyle(DarkGray))
	HLine(g, '#', 0, 0, 5, NewStyle(White))
	VLine(g, '#', 4, 0, 3, NewStyle(White))
	CenteredString(g, "ab", 2, 1, NewStyle(White))

	assert.Equal(t, "#####", g.Row(0))
	assert.Equal(t, ".ab.#", g.Row(1))
	assert.Equal(t, "....#", g.Row(2))
}

func TestPresentSkipsPlainSinks(t *testing.T) {
	assert.NoError(t, Present(NewGrid(1, 1)))
}

func TestANSIScreenSendsOnlyChangedCells(t *testing.T) {
	var out bytes.Buffer
	s := NewANSIScreen(&out, 3, 1, nil)

	s.Plot('a', 0, 0, NewStyle(White))
	require.NoError(t, s.Present())
	first := out.String()
	assert.Contains(t, first, "\033[2J", "first frame clears the terminal")
	assert.Contains(t, first, "\033[1;1H")
	assert.Contains(t, first, "a")

	out.Reset()
	s.Plot('b', 2, 0, NewStyle(Red))
	require.NoError(t, s.Present())
	second := out.String()
	assert.NotContains(t, second, "\033[2J")
	assert.NotContains(t, second, "a")
	assert.Contains(t, second, "\033[1;3H")
	assert.Contains(t, second, "\033[31;40mb")

	out.Reset()
	require.NoError(t, s.Present())
	assert.Empty(t, out.String())
}

func TestANSIScreenCentersInTerminal(t *testing.T) {
	var out bytes.Buffer
	size := func() (int, int, error) { return 13, 5, nil }
	s := NewANSIScreen(&out, 3, 1, size)

	s.Plot('z', 0, 0, NewStyle(White))
	require.NoError(t, s.Present())
	assert.Contains(t, out.String(), "\033[3;6H\033[97;40mz")
}

func TestChunkWriterFlushesLargeBuffers(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out, 0, 0)
	cw.WriteString(strings.Repeat("x", maxChunkSize*3+7))
	require.NoError(t, cw.Flush())
	assert.Equal(t, maxChunkSize*3+7, out.Len())
}

func TestTcellScreenPlots(t *testing.T) {
	sim := tcell.NewSimulationScreen("")
	require.NoError(t, sim.Init())
	defer sim.Fini()
	sim.SetSize(10, 4)

	s := WrapTcellScreen(sim, 10, 4)
	s.Plot('@', 2, 3, NewStyle(Yellow))
	s.Plot('!', 20, 3, NewStyle(Yellow))
	require.NoError(t, s.Present())

	r, _, style, _ := sim.GetContent(2, 3)
	assert.Equal(t, '@', r)
	assert.Equal(t, TcellStyle(NewStyle(Yellow)), style)
}
