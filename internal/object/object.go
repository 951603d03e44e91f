// Package object holds the dungeon entities: rooms, the player, enemies and bullets.
package object

import "math/rand/v2"

// Rand is the uniform integer source the simulation draws from.
// *rand.Rand satisfies it.
type Rand interface {
	// IntN returns a uniform integer in [0, n).
	IntN(n int) int
}

// RandRange returns a uniform integer in [lo, hi).
func RandRange(r Rand, lo, hi int) int {
	return lo + r.IntN(hi-lo)
}

// Dice is the process-wide random handle. Each concern draws from its own
// stream so door layouts do not shift when enemy behavior changes.
type Dice struct {
	Doors  Rand // Door placement at room construction
	Spawns Rand // Enemy count and positions
	Moves  Rand // Enemy walk directions
}

// NewDice derives all streams from a single seed.
func NewDice(seed uint64) *Dice {
	return &Dice{
		Doors:  rand.New(rand.NewPCG(seed, 1)),
		Spawns: rand.New(rand.NewPCG(seed, 2)),
		Moves:  rand.New(rand.NewPCG(seed, 3)),
	}
}

// NewSeed returns a seed from the runtime's entropy-seeded generator.
func NewSeed() uint64 {
	return rand.Uint64()
}

// Direction is a unit step along one axis.
type Direction struct {
	DX, DY int
}

var (
	Up    = Direction{DX: 0, DY: -1}
	Down  = Direction{DX: 0, DY: 1}
	Left  = Direction{DX: -1, DY: 0}
	Right = Direction{DX: 1, DY: 0}
)

// Directions lists the four cardinal directions in draw order.
var Directions = [4]Direction{Up, Down, Left, Right}

// RandomDirection draws one of the four cardinal directions uniformly.
func RandomDirection(r Rand) Direction {
	return Directions[r.IntN(len(Directions))]
}
