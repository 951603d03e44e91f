package loop

import (
	"github.com/tomz197/dungeon/internal/draw"
	"github.com/tomz197/dungeon/internal/loop/config"
	"github.com/tomz197/dungeon/internal/object"
)

var (
	hudStyle    = draw.NewStyle(draw.White)
	heartStyle  = draw.NewStyle(draw.LightRed)
	scoreStyle  = draw.NewStyle(draw.Yellow)
	bannerStyle = draw.Style{FG: draw.White, BG: draw.Red}
	hintStyle   = draw.NewStyle(draw.LightGray)
)

const heartGlyph = '♥'

// drawHUD plots the health bar on the row above the room.
func drawHUD(s draw.Sink, room *object.Room, p *object.Player) {
	row := room.Y - 1
	draw.PlotString(s, "HP ", room.X, row, hudStyle)
	for i := range config.InitialHealth {
		glyph := rune(draw.Blank)
		if i < p.Health {
			glyph = heartGlyph
		}
		s.Plot(glyph, room.X+3+i, row, heartStyle)
	}
}

// drawScore plots the score on the row below the room, clearing stale digits.
func drawScore(s draw.Sink, room *object.Room, score int) {
	row := room.Bottom() + 1
	draw.PlotString(s, "Score ", room.X, row, hudStyle)
	end := draw.PlotInt(s, score, room.X+6, row, scoreStyle)
	draw.HLine(s, draw.Blank, end, row, room.Right()+1-end, draw.Style{})
}

// drawGameOver plots the static game over banner.
func drawGameOver(s draw.Sink, score int) {
	cx, cy := config.ScreenWidth/2, config.ScreenHeight/2
	draw.HLine(s, draw.Blank, cx-10, cy-1, 20, bannerStyle)
	draw.CenteredString(s, "     GAME OVER      ", cx, cy, bannerStyle)
	draw.HLine(s, draw.Blank, cx-10, cy+1, 20, bannerStyle)

	draw.HLine(s, draw.Blank, cx-10, cy+2, 20, draw.Style{})
	draw.PlotString(s, "Score ", cx-6, cy+2, hintStyle)
	draw.PlotInt(s, score, cx, cy+2, scoreStyle)
	draw.CenteredString(s, "press r to restart", cx, cy+3, hintStyle)
}
