// Package loop provides the game orchestrator and its event-driven main loop.
package loop

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/dungeon/internal/draw"
	"github.com/tomz197/dungeon/internal/input"
	"github.com/tomz197/dungeon/internal/loop/config"
	"github.com/tomz197/dungeon/internal/object"
)

// Options configures a Session.
type Options struct {
	TickInterval time.Duration // Defaults to config.DefaultTickInterval
	Seed         uint64        // Zero picks a random seed
	Logger       *log.Logger
}

// Session ties a Game to its event slots and render sink. Key and tick
// producers run on their own goroutines and only touch Events; everything
// else is owned by the goroutine calling Run.
type Session struct {
	Game   *Game
	Events *Events
	sink   draw.Sink
	tick   time.Duration
}

// NewSession creates a session drawing to sink.
func NewSession(sink draw.Sink, opts Options) *Session {
	if opts.TickInterval <= 0 {
		opts.TickInterval = config.DefaultTickInterval
	}
	seed := opts.Seed
	if seed == 0 {
		seed = object.NewSeed()
	}
	if opts.Logger != nil {
		opts.Logger.Debug("new session", "seed", seed, "tick", opts.TickInterval)
	}
	return &Session{
		Game:   NewGame(sink, object.NewDice(seed), opts.Logger),
		Events: &Events{},
		sink:   sink,
		tick:   opts.TickInterval,
	}
}

// Key is the key press callback. Safe to call from any goroutine.
func (s *Session) Key(k input.Key) {
	s.Events.Keys.Store(k)
}

// Run drives the game until ctx is cancelled. A ticker goroutine raises the
// tick flag at the configured interval.
func (s *Session) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go StartTicker(ctx, s.tick, &s.Events.Tick)

	return Run(ctx, s.Game, s.Events, s.sink)
}

// StartTicker sets flag every interval until ctx is done.
func StartTicker(ctx context.Context, interval time.Duration, flag *TickFlag) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			flag.Set()
		}
	}
}

// Run polls the event slots: a pending tick advances and presents the game,
// a pending key is handed to the game. When both slots are empty the loop
// sleeps briefly. Returns nil once ctx is cancelled.
func Run(ctx context.Context, game *Game, ev *Events, sink draw.Sink) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		idle := true
		if ev.Tick.Take() {
			game.Tick()
			if err := draw.Present(sink); err != nil {
				return fmt.Errorf("present frame: %w", err)
			}
			idle = false
		}
		if k, ok := ev.Keys.Take(); ok {
			game.HandleKey(k)
			idle = false
		}

		if idle {
			time.Sleep(config.IdlePoll)
		}
	}
}
