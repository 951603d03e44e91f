package input

import "github.com/gdamore/tcell/v2"

// FromTcell translates a tcell key event. Returns false for keys the game ignores.
func FromTcell(ev *tcell.EventKey) (Key, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return Arrow(CodeUp), true
	case tcell.KeyDown:
		return Arrow(CodeDown), true
	case tcell.KeyLeft:
		return Arrow(CodeLeft), true
	case tcell.KeyRight:
		return Arrow(CodeRight), true
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return Quit, true
	case tcell.KeyRune:
		r := ev.Rune()
		if r == 'q' || r == 'Q' {
			return Quit, true
		}
		k := Char(r)
		if accepted(k.Char) {
			return k, true
		}
	}
	return Key{}, false
}
