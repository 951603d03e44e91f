package client

import (
	"fmt"
	"time"

	"github.com/tomz197/dungeon/internal/draw"
	"github.com/tomz197/dungeon/internal/loop/config"
)

var noticeStyle = draw.Style{FG: draw.White, BG: draw.Blue}

// notice shows a banner over the last frame and holds it for ShutdownDisplay.
func (c *Client) notice(msg string) error {
	cx, cy := config.ScreenWidth/2, config.ScreenHeight/2
	width := len(msg) + 6
	draw.FillRect(c.screen, draw.Blank, cx-width/2, cy-1, width, 3, noticeStyle)
	draw.CenteredString(c.screen, msg, cx, cy, noticeStyle)

	if err := c.screen.Present(); err != nil {
		return fmt.Errorf("present notice: %w", err)
	}
	time.Sleep(c.opts.ShutdownDisplay)
	return nil
}
