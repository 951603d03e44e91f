package object

import (
	"github.com/tomz197/dungeon/internal/draw"
	"github.com/tomz197/dungeon/internal/loop/config"
)

var bulletStyle = draw.NewStyle(draw.LightCyan)

const bulletGlyph = '*'

// Bullet is a single-cell projectile traveling in a cardinal direction.
type Bullet struct {
	X, Y   int
	Dir    Direction
	Active bool
}

// Bullets is a fixed ring of projectile slots. When every slot is in use the
// oldest slot is overwritten, even if that bullet is still in flight.
type Bullets struct {
	slots [config.BulletCapacity]Bullet
	next  int // Slot the next shot is written to
}

// Shoot writes a new active bullet at (x, y) into the next slot.
func (b *Bullets) Shoot(x, y int, dir Direction) {
	b.slots[b.next] = Bullet{X: x, Y: y, Dir: dir, Active: true}
	b.next = (b.next + 1) % len(b.slots)
}

// Slot returns a copy of slot i.
func (b *Bullets) Slot(i int) Bullet {
	return b.slots[i]
}

// Next returns the slot the next shot will be written to.
func (b *Bullets) Next() int {
	return b.next
}

// ActiveCount returns the number of bullets in flight.
func (b *Bullets) ActiveCount() int {
	n := 0
	for _, bl := range b.slots {
		if bl.Active {
			n++
		}
	}
	return n
}

// MoveForward advances every active bullet by one cell in slot order.
// A bullet about to enter a wall is absorbed in place. A bullet about to
// enter a live enemy kills it and is spent. Returns the points earned.
func (b *Bullets) MoveForward(room *Room, enemies *Roster, s draw.Sink) int {
	points := 0
	for i := range b.slots {
		bl := &b.slots[i]
		if !bl.Active {
			continue
		}
		room.PlotFloor(s, bl.X, bl.Y)

		nx, ny := bl.X+bl.Dir.DX, bl.Y+bl.Dir.DY
		if room.IsWall(nx, ny) {
			bl.Active = false
			continue
		}
		if e := enemies.At(nx, ny); e != nil {
			bl.Active = false
			e.Dead = true
			points += config.ScoreEnemyKill
			continue
		}
		bl.X, bl.Y = nx, ny
		s.Plot(bulletGlyph, bl.X, bl.Y, bulletStyle)
	}
	return points
}
