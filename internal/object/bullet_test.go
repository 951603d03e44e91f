package object

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tomz197/dungeon/internal/draw"
	"github.com/tomz197/dungeon/internal/loop/config"
)

func newGrid() *draw.Grid {
	return draw.NewGrid(config.ScreenWidth, config.ScreenHeight)
}

func TestBulletAbsorbedByWall(t *testing.T) {
	room := bareRoom()
	var enemies Roster
	var b Bullets
	b.Shoot(room.X+1, 10, Left)

	points := b.MoveForward(room, &enemies, newGrid())

	assert.Zero(t, points)
	bl := b.Slot(0)
	assert.False(t, bl.Active)
	assert.Equal(t, room.X+1, bl.X, "absorbed bullet does not move onto the wall")
}

func TestBulletTravelsAndDraws(t *testing.T) {
	room := bareRoom()
	var enemies Roster
	var b Bullets
	g := newGrid()
	b.Shoot(40, 10, Up)

	b.MoveForward(room, &enemies, g)
	b.MoveForward(room, &enemies, g)

	bl := b.Slot(0)
	assert.True(t, bl.Active)
	assert.Equal(t, 8, bl.Y)
	assert.Equal(t, '*', g.At(40, 8).Glyph)
	assert.Equal(t, '.', g.At(40, 9).Glyph, "previous cell is cleared to floor")
}

func TestBulletKillsLiveEnemy(t *testing.T) {
	room := bareRoom()
	var enemies Roster
	enemies[0] = Enemy{X: 43, Y: 10, Active: true}
	var b Bullets
	b.Shoot(40, 10, Right)

	total := 0
	for range 5 {
		total += b.MoveForward(room, &enemies, newGrid())
	}

	assert.Equal(t, config.ScoreEnemyKill, total)
	assert.True(t, enemies[0].Dead)
	assert.False(t, b.Slot(0).Active)
	assert.Equal(t, 42, b.Slot(0).X)
}

func TestBulletPassesThroughDeadEnemies(t *testing.T) {
	room := bareRoom()
	var enemies Roster
	enemies[0] = Enemy{X: 42, Y: 10, Active: true, Dead: true}
	enemies[1] = Enemy{X: 44, Y: 10}
	var b Bullets
	b.Shoot(40, 10, Right)

	total := 0
	for range 5 {
		total += b.MoveForward(room, &enemies, newGrid())
	}

	assert.Zero(t, total)
	assert.True(t, b.Slot(0).Active)
	assert.Equal(t, 45, b.Slot(0).X)
}

func TestFirstSlotWinsTies(t *testing.T) {
	room := bareRoom()
	var enemies Roster
	enemies[0] = Enemy{X: 41, Y: 10, Active: true}
	var b Bullets
	b.Shoot(41, 9, Down)
	b.Shoot(42, 9, Down)

	points := b.MoveForward(room, &enemies, newGrid())

	assert.Equal(t, config.ScoreEnemyKill, points)
	assert.False(t, b.Slot(0).Active)
	assert.True(t, b.Slot(1).Active, "second bullet finds the enemy already dead")
	assert.Equal(t, 10, b.Slot(1).Y)
}

func TestEleventhShotOverwritesSlotZero(t *testing.T) {
	room := bareRoom()
	var enemies Roster
	var b Bullets

	b.Shoot(40, 12, Up)
	b.MoveForward(room, &enemies, newGrid())
	for range config.BulletCapacity - 1 {
		b.Shoot(40, 12, Left)
	}
	assert.Equal(t, 0, b.Next())
	assert.Equal(t, config.BulletCapacity, b.ActiveCount())

	b.Shoot(35, 15, Down)

	assert.Equal(t, Bullet{X: 35, Y: 15, Dir: Down, Active: true}, b.Slot(0))
	assert.Equal(t, 1, b.Next())
	assert.Equal(t, config.BulletCapacity, b.ActiveCount())
}

func TestPlayerShootUsesPosition(t *testing.T) {
	p := &Player{X: 33, Y: 7}
	p.Shoot(Right)
	assert.Equal(t, Bullet{X: 33, Y: 7, Dir: Right, Active: true}, p.Bullets.Slot(0))
}
