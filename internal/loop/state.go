package loop

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/tomz197/dungeon/internal/draw"
	"github.com/tomz197/dungeon/internal/loop/config"
	"github.com/tomz197/dungeon/internal/object"
)

// GameState holds the simulation state owned by the orchestrator:
// the current room, its enemies, the clock and the score.
type GameState struct {
	Room    *object.Room
	Enemies object.Roster
	Timer   int
	Score   int
	Active  bool // False once the player has died, until restart
	Rooms   int  // Rooms entered since the last (re)start
}

// Game coordinates the GameState and the Player each tick and on each key.
// The Player only borrows the state during an update call.
type Game struct {
	State  GameState
	Player *object.Player
	dice   *object.Dice
	sink   draw.Sink
	logger *log.Logger
}

// NewGame creates an active game with a fresh room, enemies and a centered player.
// logger may be nil.
func NewGame(sink draw.Sink, dice *object.Dice, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	g := &Game{
		dice:   dice,
		sink:   sink,
		logger: logger,
	}
	g.reset()
	return g
}

// reset builds a new room, player and enemy roster and zeroes the counters.
func (g *Game) reset() {
	room := object.NewRoom(config.RoomWidth, config.RoomHeight, g.dice.Doors)
	g.Player = object.NewPlayer(room)
	g.State = GameState{
		Room:   room,
		Active: true,
		Rooms:  1,
	}
	placed := g.State.Enemies.Spawn(room, g.dice.Spawns, g.Player)
	g.logger.Debug("game started", "doors", room.DoorCount(), "enemies", placed)
}

// Restart begins a new game. It only has an effect after game over.
// Returns true if the game was restarted.
func (g *Game) Restart() bool {
	if g.State.Active {
		return false
	}
	draw.FillRect(g.sink, draw.Blank, 0, 0, config.ScreenWidth, config.ScreenHeight, draw.Style{})
	g.reset()
	g.logger.Info("game restarted")
	return true
}

// enterNewRoom replaces the room and enemy roster wholesale, erasing the old
// ones from the display first. The player keeps its coordinates.
func (g *Game) enterNewRoom() {
	g.State.Room.Clear(g.sink)
	g.State.Enemies.Clear(g.sink)

	room := object.NewRoom(config.RoomWidth, config.RoomHeight, g.dice.Doors)
	g.State.Room = room
	placed := g.State.Enemies.Spawn(room, g.dice.Spawns, g.Player)
	g.State.Rooms++
	g.logger.Debug("entered room", "room", g.State.Rooms, "doors", room.DoorCount(), "enemies", placed)
}
