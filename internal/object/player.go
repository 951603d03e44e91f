package object

import (
	"github.com/tomz197/dungeon/internal/draw"
	"github.com/tomz197/dungeon/internal/loop/config"
	"github.com/tomz197/dungeon/internal/physics"
)

var playerStyle = draw.NewStyle(draw.Yellow)

// Player is the user-controlled actor: a 2-wide sprite anchored at its left cell.
type Player struct {
	X, Y    int
	Health  int
	LastHit int // Timer value of the last damage taken
	Timer   int // Ticks lived, advanced by Update
	Bullets Bullets

	wounded bool // Set once LastHit is meaningful
}

// NewPlayer creates a full-health player in the middle of room.
func NewPlayer(room *Room) *Player {
	x, y := room.Center()
	return &Player{
		X:      x,
		Y:      y,
		Health: config.InitialHealth,
	}
}

// Move is the outcome of a player's move attempt.
type Move struct {
	X, Y    int  // Requested destination
	Legal   bool // Destination free of walls and live enemies
	Contact bool // Destination overlapped a live enemy
	Door    bool // Destination touches a door
}

// Attempt resolves a one-step move in dir against room and enemies without
// changing the position. Contact with a live enemy damages the player.
func (p *Player) Attempt(dir Direction, room *Room, enemies *Roster) Move {
	m := Move{
		X: physics.SaturatingStep(p.X, dir.DX),
		Y: physics.SaturatingStep(p.Y, dir.DY),
	}
	m.Contact = enemies.Blocks(m.X, m.Y)
	if m.Contact {
		p.Hit()
	}
	m.Legal = room.Walkable(m.X, m.Y) && !m.Contact
	m.Door = room.IsDoor(m.X, m.Y)
	return m
}

// Apply moves the player to the attempted destination if it was legal.
func (p *Player) Apply(m Move) {
	if m.Legal {
		p.X, p.Y = m.X, m.Y
	}
}

// Hit applies one point of damage unless the player has no health left or
// the previous hit was at most HitCooldown ticks ago. The first hit always
// lands. Returns true if damage was taken.
func (p *Player) Hit() bool {
	if p.Health == 0 || (p.wounded && p.Timer-p.LastHit <= config.HitCooldown) {
		return false
	}
	p.Health--
	p.LastHit = p.Timer
	p.wounded = true
	return true
}

// Shoot fires a bullet from the player's position in dir.
func (p *Player) Shoot(dir Direction) {
	p.Bullets.Shoot(p.X, p.Y, dir)
}

// Update advances the player's own clock by one tick.
func (p *Player) Update() {
	p.Timer++
}

// Draw plots the player sprite.
func (p *Player) Draw(s draw.Sink) {
	s.Plot(':', p.X, p.Y, playerStyle)
	s.Plot('3', p.X+1, p.Y, playerStyle)
}
