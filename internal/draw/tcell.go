package draw

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// TcellScreen adapts a tcell.Screen to the Sink contract.
// The display surface is centered when the terminal is larger.
type TcellScreen struct {
	screen        tcell.Screen
	width, height int
}

// NewTcellScreen initializes a tcell screen for a width x height surface.
func NewTcellScreen(width, height int) (*TcellScreen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.HideCursor()
	screen.Clear()
	return WrapTcellScreen(screen, width, height), nil
}

// WrapTcellScreen wraps an already initialized screen (e.g. a simulation screen).
func WrapTcellScreen(screen tcell.Screen, width, height int) *TcellScreen {
	return &TcellScreen{screen: screen, width: width, height: height}
}

// Screen returns the underlying tcell screen for event polling.
func (t *TcellScreen) Screen() tcell.Screen {
	return t.screen
}

// Plot implements Sink.
func (t *TcellScreen) Plot(glyph rune, x, y int, style Style) {
	if x < 0 || x >= t.width || y < 0 || y >= t.height {
		return
	}
	offX, offY := t.offset()
	t.screen.SetContent(x+offX, y+offY, glyph, nil, TcellStyle(style))
}

// Present implements Presenter.
func (t *TcellScreen) Present() error {
	t.screen.Show()
	return nil
}

// Sync clears and fully repaints the terminal, used after a resize.
func (t *TcellScreen) Sync() {
	t.screen.Clear()
	t.screen.Sync()
}

// Fini restores the terminal.
func (t *TcellScreen) Fini() {
	t.screen.Fini()
}

func (t *TcellScreen) offset() (int, int) {
	w, h := t.screen.Size()
	return max((w-t.width)/2, 0), max((h-t.height)/2, 0)
}

// TcellStyle converts a Style to its tcell equivalent.
func TcellStyle(s Style) tcell.Style {
	return tcell.StyleDefault.Foreground(tcellColor(s.FG)).Background(tcellColor(s.BG))
}

var tcellPalette = [...]tcell.Color{
	Black:      tcell.ColorBlack,
	Blue:       tcell.ColorNavy,
	Green:      tcell.ColorGreen,
	Cyan:       tcell.ColorTeal,
	Red:        tcell.ColorMaroon,
	Magenta:    tcell.ColorPurple,
	Brown:      tcell.ColorOlive,
	LightGray:  tcell.ColorSilver,
	DarkGray:   tcell.ColorGray,
	LightBlue:  tcell.ColorBlue,
	LightGreen: tcell.ColorLime,
	LightCyan:  tcell.ColorAqua,
	LightRed:   tcell.ColorRed,
	Pink:       tcell.ColorFuchsia,
	Yellow:     tcell.ColorYellow,
	White:      tcell.ColorWhite,
}

func tcellColor(c Color) tcell.Color {
	if int(c) < len(tcellPalette) {
		return tcellPalette[c]
	}
	return tcell.ColorWhite
}

var (
	_ Sink      = (*TcellScreen)(nil)
	_ Presenter = (*TcellScreen)(nil)
)
