package object

import (
	"github.com/tomz197/dungeon/internal/draw"
	"github.com/tomz197/dungeon/internal/loop/config"
	"github.com/tomz197/dungeon/internal/physics"
)

var (
	mouseStyle = draw.NewStyle(draw.LightGray)
	deadStyle  = draw.NewStyle(draw.Red)
)

// spawnAttempts bounds how often a spawn position is redrawn when it lands on the player.
const spawnAttempts = 8

// Enemy is a wandering mouse. Only active enemies move and collide;
// dead ones stay in the roster and are drawn with a distinct glyph pair.
type Enemy struct {
	X, Y   int
	Dead   bool
	Active bool
}

// Live reports whether the enemy still takes part in movement and combat.
func (e *Enemy) Live() bool {
	return e.Active && !e.Dead
}

// Step attempts to move one cell in dir. Walking into the player's footprint
// counts as contact: the player is hit and the enemy stays put.
func (e *Enemy) Step(dir Direction, room *Room, player *Player) (contact bool) {
	if !e.Live() {
		return false
	}
	nx := physics.SaturatingStep(e.X, dir.DX)
	ny := physics.SaturatingStep(e.Y, dir.DY)
	if physics.FootprintsOverlap(nx, ny, player.X, player.Y) {
		player.Hit()
		return true
	}
	if room.Walkable(nx, ny) {
		e.X, e.Y = nx, ny
	}
	return false
}

// Draw plots the enemy, using the dead glyphs once shot.
func (e *Enemy) Draw(s draw.Sink) {
	if e.Dead {
		s.Plot('x', e.X, e.Y, deadStyle)
		s.Plot('_', e.X+1, e.Y, deadStyle)
		return
	}
	s.Plot('~', e.X, e.Y, mouseStyle)
	s.Plot('o', e.X+1, e.Y, mouseStyle)
}

// Roster is the fixed set of enemy slots for one room.
type Roster [config.EnemyCapacity]Enemy

// Spawn refills the roster for room: a random count in [MinEnemies, MaxEnemies)
// is placed near the room center, clear of the player. The other slots
// become inactive placeholders. Returns the number of enemies placed.
func (r *Roster) Spawn(room *Room, rng Rand, player *Player) int {
	count := RandRange(rng, config.MinEnemies, config.MaxEnemies)
	placed := 0
	for i := range r {
		r[i] = Enemy{Dead: true}
		if i >= count {
			continue
		}
		if x, y, ok := spawnPosition(room, rng, player); ok {
			r[i] = Enemy{X: x, Y: y, Active: true}
			placed++
		}
	}
	return placed
}

// spawnPosition draws an interior cell near the room center that does not
// overlap the player.
func spawnPosition(room *Room, rng Rand, player *Player) (int, int, bool) {
	cx, cy := room.Center()
	span := config.EnemySpawnSpan
	for range spawnAttempts {
		x := clamp(cx+RandRange(rng, -span, span+1), room.X+1, room.Right()-2)
		y := clamp(cy+RandRange(rng, -span, span+1), room.Y+1, room.Bottom()-1)
		if player == nil || !physics.FootprintsOverlap(x, y, player.X, player.Y) {
			return x, y, true
		}
	}
	return 0, 0, false
}

// Blocks reports whether a live enemy overlaps a 2-wide footprint at (x, y).
func (r *Roster) Blocks(x, y int) bool {
	for i := range r {
		if r[i].Live() && physics.FootprintsOverlap(r[i].X, r[i].Y, x, y) {
			return true
		}
	}
	return false
}

// At returns the first live enemy covering the single cell (x, y), or nil.
func (r *Roster) At(x, y int) *Enemy {
	for i := range r {
		if r[i].Live() && physics.FootprintContains(r[i].X, r[i].Y, x, y) {
			return &r[i]
		}
	}
	return nil
}

// Walk steps every live enemy in a random direction.
func (r *Roster) Walk(rng Rand, room *Room, player *Player) {
	for i := range r {
		if r[i].Live() {
			r[i].Step(RandomDirection(rng), room, player)
		}
	}
}

// LiveCount returns how many enemies are still live.
func (r *Roster) LiveCount() int {
	n := 0
	for i := range r {
		if r[i].Live() {
			n++
		}
	}
	return n
}

// Draw plots active enemies. Inactive placeholder slots are skipped.
func (r *Roster) Draw(s draw.Sink) {
	for i := range r {
		if r[i].Active {
			r[i].Draw(s)
		}
	}
}

// Clear blanks every active enemy's cells.
func (r *Roster) Clear(s draw.Sink) {
	for i := range r {
		if r[i].Active {
			draw.HLine(s, draw.Blank, r[i].X, r[i].Y, physics.FootprintWidth, draw.Style{})
		}
	}
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
