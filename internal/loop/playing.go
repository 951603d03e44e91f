package loop

import (
	"github.com/tomz197/dungeon/internal/input"
	"github.com/tomz197/dungeon/internal/loop/config"
	"github.com/tomz197/dungeon/internal/object"
)

// Tick runs one simulation step. While active the order is: enemy AI, room,
// enemies, player (clock, bullets, sprite) and HUD, score, then the clock and
// survival score advance. After game over only the banner is drawn.
func (g *Game) Tick() {
	if g.State.Active && g.Player.Health == 0 {
		g.State.Active = false
		g.logger.Info("game over", "score", g.State.Score, "rooms", g.State.Rooms, "ticks", g.State.Timer)
	}
	if !g.State.Active {
		drawGameOver(g.sink, g.State.Score)
		return
	}

	room := g.State.Room
	if g.State.Timer%config.EnemyCadence == 0 {
		g.State.Enemies.Walk(g.dice.Moves, room, g.Player)
	}

	room.Draw(g.sink)
	g.State.Enemies.Draw(g.sink)

	g.Player.Update()
	g.State.Score += g.Player.Bullets.MoveForward(room, &g.State.Enemies, g.sink)
	g.Player.Draw(g.sink)
	drawHUD(g.sink, room, g.Player)
	drawScore(g.sink, room, g.State.Score)

	g.State.Timer++
	g.State.Score += config.ScorePerTick
}

// HandleKey resolves one key press. Arrows move, w/a/s/d shoot while active;
// r restarts after game over. Other keys are ignored.
func (g *Game) HandleKey(k input.Key) {
	if !g.State.Active {
		if k.Code == input.CodeChar && k.Char == 'r' {
			g.Restart()
		}
		return
	}

	if k.IsArrow() {
		g.move(arrowDirections[k.Code-input.CodeUp])
		return
	}
	if k.Code == input.CodeChar {
		switch k.Char {
		case 'w':
			g.Player.Shoot(object.Up)
		case 'a':
			g.Player.Shoot(object.Left)
		case 's':
			g.Player.Shoot(object.Down)
		case 'd':
			g.Player.Shoot(object.Right)
		}
	}
}

// arrowDirections is indexed by arrow code, starting at input.CodeUp.
var arrowDirections = [4]object.Direction{object.Up, object.Down, object.Left, object.Right}

// move validates a step against the current room, switches rooms when the
// destination touches a door, then applies the step. The new room is not
// consulted for the step itself.
func (g *Game) move(dir object.Direction) {
	m := g.Player.Attempt(dir, g.State.Room, &g.State.Enemies)
	if m.Door {
		g.enterNewRoom()
	}
	g.Player.Apply(m)
}
