// Package config centralizes all tunable game parameters.
package config

import "time"

// Display surface - the fixed character grid everything is plotted on.
const (
	ScreenWidth  = 80
	ScreenHeight = 25
)

// Room geometry
const (
	RoomWidth  = 20
	RoomHeight = 20
	MinDoors   = 2
	MaxDoors   = 4
)

// Player
const (
	InitialHealth  = 4
	HitCooldown    = 8 // Ticks that must pass between two hits
	BulletCapacity = 10
)

// Enemies
const (
	EnemyCapacity  = 10
	MinEnemies     = 3 // Inclusive
	MaxEnemies     = 9 // Exclusive
	EnemyCadence   = 5 // Enemies step on every Nth tick
	EnemySpawnSpan = 4 // Max distance from the room center for spawns
)

// Scoring
const (
	ScoreEnemyKill = 100
	ScorePerTick   = 1
)

// Tick rate
const (
	DefaultTickInterval = 100 * time.Millisecond
	IdlePoll            = time.Millisecond
)

// Connection
const (
	ShutdownDisplay      = 3 * time.Second // How long the shutdown notice stays up
	InactivityDisconnect = 5 * time.Minute // Idle remote sessions are dropped after this
	ShutdownTimeout      = 15 * time.Second
)
