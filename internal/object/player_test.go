package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/dungeon/internal/draw"
	"github.com/tomz197/dungeon/internal/loop/config"
)

func TestNewPlayerStartsCentered(t *testing.T) {
	p := NewPlayer(bareRoom())
	assert.Equal(t, 40, p.X)
	assert.Equal(t, 12, p.Y)
	assert.Equal(t, config.InitialHealth, p.Health)
}

func TestPlayerMovesRightFiveTimes(t *testing.T) {
	room := bareRoom()
	var enemies Roster
	p := NewPlayer(room)
	startX, startY := p.X, p.Y

	for range 5 {
		m := p.Attempt(Right, room, &enemies)
		require.True(t, m.Legal)
		p.Apply(m)
	}

	assert.Equal(t, startX+5, p.X)
	assert.Equal(t, startY, p.Y)
}

func TestPlayerCannotEnterWalls(t *testing.T) {
	room := bareRoom()
	var enemies Roster

	testCases := []struct {
		name string
		x, y int
		dir  Direction
	}{
		{"right footprint cell", room.Right() - 2, 10, Right},
		{"left wall", room.X + 1, 10, Left},
		{"top wall", 40, room.Y + 1, Up},
		{"bottom wall", 40, room.Bottom() - 1, Down},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := &Player{X: tc.x, Y: tc.y, Health: 4}
			for range 3 {
				p.Apply(p.Attempt(tc.dir, room, &enemies))
				assert.Equal(t, tc.x, p.X)
				assert.Equal(t, tc.y, p.Y)
			}
		})
	}
}

func TestPlayerAttemptSaturatesAtZero(t *testing.T) {
	p := &Player{X: 0, Y: 0, Health: 4}
	var enemies Roster
	m := p.Attempt(Left, bareRoom(), &enemies)
	assert.Equal(t, 0, m.X)
	assert.Equal(t, 0, m.Y)
}

func TestPlayerBlockedByLiveEnemy(t *testing.T) {
	room := bareRoom()
	var enemies Roster
	enemies[0] = Enemy{X: 42, Y: 12, Active: true}
	p := &Player{X: 40, Y: 12, Health: 4, Timer: 20}

	m := p.Attempt(Right, room, &enemies)
	p.Apply(m)

	assert.False(t, m.Legal)
	assert.True(t, m.Contact)
	assert.Equal(t, 40, p.X, "blocked move must not change position")
	assert.Equal(t, 3, p.Health)
	assert.Equal(t, 20, p.LastHit)
}

func TestPlayerPassesDeadAndInactiveEnemies(t *testing.T) {
	room := bareRoom()
	var enemies Roster
	enemies[0] = Enemy{X: 42, Y: 12, Active: true, Dead: true}
	enemies[1] = Enemy{X: 41, Y: 12}
	p := &Player{X: 40, Y: 12, Health: 4, Timer: 20}

	m := p.Attempt(Right, room, &enemies)
	p.Apply(m)

	assert.True(t, m.Legal)
	assert.False(t, m.Contact)
	assert.Equal(t, 41, p.X)
	assert.Equal(t, 4, p.Health)
}

func TestPlayerAttemptFlagsDoors(t *testing.T) {
	room := bareRoom()
	room.Doors[0] = Door{X: 40, Y: room.Bottom()}
	var enemies Roster
	p := &Player{X: 40, Y: room.Bottom() - 2, Health: 4}

	m := p.Attempt(Down, room, &enemies)
	assert.True(t, m.Door)
	assert.True(t, m.Legal)

	m = p.Attempt(Up, room, &enemies)
	assert.False(t, m.Door)
}

func TestHitRespectsCooldown(t *testing.T) {
	p := &Player{Health: 4}

	assert.True(t, p.Hit(), "the first hit lands on tick 0")
	assert.Equal(t, 3, p.Health)
	assert.Equal(t, 0, p.LastHit)

	p.Timer = 8
	assert.False(t, p.Hit(), "8 ticks is still inside the window")

	p.Timer = 9
	assert.True(t, p.Hit())
	assert.Equal(t, 2, p.Health)
	assert.Equal(t, 9, p.LastHit)
}

func TestNewPlayerTakesFirstHitImmediately(t *testing.T) {
	room := bareRoom()
	p := NewPlayer(room)
	var enemies Roster
	enemies[0] = Enemy{X: p.X + 2, Y: p.Y, Active: true}

	m := p.Attempt(Right, room, &enemies)

	assert.True(t, m.Contact)
	assert.Equal(t, config.InitialHealth-1, p.Health)
}

func TestHitNeverGoesBelowZero(t *testing.T) {
	p := &Player{Health: 1, Timer: 100}
	assert.True(t, p.Hit())
	p.Timer = 200
	assert.False(t, p.Hit())
	assert.Equal(t, 0, p.Health)
}

func TestPlayerUpdateAndDraw(t *testing.T) {
	g := draw.NewGrid(config.ScreenWidth, config.ScreenHeight)
	p := &Player{X: 40, Y: 12}
	p.Update()
	p.Update()
	p.Draw(g)

	assert.Equal(t, 2, p.Timer)
	assert.Equal(t, ':', g.At(40, 12).Glyph)
	assert.Equal(t, '3', g.At(41, 12).Glyph)
}
