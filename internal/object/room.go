package object

import (
	"github.com/tomz197/dungeon/internal/draw"
	"github.com/tomz197/dungeon/internal/loop/config"
)

// Door is a perimeter cell leading to the next room. The zero value is unset.
type Door struct {
	X, Y int
}

// IsSet reports whether the door slot holds a real door.
func (d Door) IsSet() bool {
	return d != Door{}
}

// Wall names one side of a room.
type Wall int

const (
	WallTop Wall = iota
	WallBottom
	WallLeft
	WallRight
)

var (
	wallStyle  = draw.NewStyle(draw.White)
	floorStyle = draw.NewStyle(draw.DarkGray)
	openStyle  = draw.NewStyle(draw.LightGreen)
	lockStyle  = draw.NewStyle(draw.LightRed)
)

const (
	wallGlyph  = '#'
	floorGlyph = '.'
	doorGlyph  = '+'
)

// Room is a rectangular walled area centered on the display surface.
type Room struct {
	Width  int
	Height int
	X      int // Left column
	Y      int // Top row
	Doors  [config.MaxDoors]Door
	Locked bool // Only changes the door color; game logic never sets it
}

// NewRoom creates a width x height room and scatters its doors using rng.
func NewRoom(width, height int, rng Rand) *Room {
	r := &Room{
		Width:  width,
		Height: height,
		X:      (config.ScreenWidth - width) / 2,
		Y:      (config.ScreenHeight - height) / 2,
	}
	r.placeDoors(rng)
	return r
}

// placeDoors draws 2-4 doors, each on a random wall away from the corners.
func (r *Room) placeDoors(rng Rand) {
	count := RandRange(rng, config.MinDoors, config.MaxDoors+1)
	for i := 0; i < count; i++ {
		switch Wall(rng.IntN(4)) {
		case WallTop:
			r.Doors[i] = Door{X: r.X + 1 + rng.IntN(r.Width-2), Y: r.Y}
		case WallBottom:
			r.Doors[i] = Door{X: r.X + 1 + rng.IntN(r.Width-2), Y: r.Bottom()}
		case WallLeft:
			r.Doors[i] = Door{X: r.X, Y: r.Y + 1 + rng.IntN(r.Height-2)}
		case WallRight:
			r.Doors[i] = Door{X: r.Right(), Y: r.Y + 1 + rng.IntN(r.Height-2)}
		}
	}
}

// Right returns the column of the right wall.
func (r *Room) Right() int {
	return r.X + r.Width - 1
}

// Bottom returns the row of the bottom wall.
func (r *Room) Bottom() int {
	return r.Y + r.Height - 1
}

// Center returns the middle cell of the room.
func (r *Room) Center() (int, int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// DoorCount returns how many door slots are set.
func (r *Room) DoorCount() int {
	n := 0
	for _, d := range r.Doors {
		if d.IsSet() {
			n++
		}
	}
	return n
}

// IsWall reports whether (x, y) lies on the room's perimeter.
func (r *Room) IsWall(x, y int) bool {
	inCols := x >= r.X && x <= r.Right()
	inRows := y >= r.Y && y <= r.Bottom()
	return (inRows && (x == r.X || x == r.Right())) ||
		(inCols && (y == r.Y || y == r.Bottom()))
}

// IsDoor reports whether any cell of the 2x2 block anchored at (x, y)
// is a door. The block covers both footprint cells and the row beneath.
func (r *Room) IsDoor(x, y int) bool {
	for _, d := range r.Doors {
		if !d.IsSet() {
			continue
		}
		if (d.X == x || d.X == x+1) && (d.Y == y || d.Y == y+1) {
			return true
		}
	}
	return false
}

// Walkable reports whether a 2-wide actor anchored at (x, y) touches no wall.
func (r *Room) Walkable(x, y int) bool {
	return !r.IsWall(x, y) && !r.IsWall(x+1, y)
}

// Draw plots walls, floor and doors.
func (r *Room) Draw(s draw.Sink) {
	draw.HLine(s, wallGlyph, r.X, r.Y, r.Width, wallStyle)
	draw.HLine(s, wallGlyph, r.X, r.Bottom(), r.Width, wallStyle)
	draw.VLine(s, wallGlyph, r.X, r.Y, r.Height, wallStyle)
	draw.VLine(s, wallGlyph, r.Right(), r.Y, r.Height, wallStyle)
	draw.FillRect(s, floorGlyph, r.X+1, r.Y+1, r.Width-2, r.Height-2, floorStyle)

	style := openStyle
	if r.Locked {
		style = lockStyle
	}
	for _, d := range r.Doors {
		if d.IsSet() {
			s.Plot(doorGlyph, d.X, d.Y, style)
		}
	}
}

// Clear blanks the room's footprint so a different room can be drawn.
func (r *Room) Clear(s draw.Sink) {
	draw.FillRect(s, draw.Blank, r.X, r.Y, r.Width, r.Height, draw.Style{})
}

// PlotFloor restores the floor glyph at (x, y).
func (r *Room) PlotFloor(s draw.Sink, x, y int) {
	s.Plot(floorGlyph, x, y, floorStyle)
}
