// Package client runs one game over a raw terminal connection: bytes in,
// ANSI frames out.
package client

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/dungeon/internal/draw"
	"github.com/tomz197/dungeon/internal/input"
	"github.com/tomz197/dungeon/internal/loop"
	"github.com/tomz197/dungeon/internal/loop/config"
	"github.com/tomz197/dungeon/internal/loop/server"
)

// Options configures the client.
type Options struct {
	TermSizeFunc    draw.TermSizeFunc
	Username        string
	TickInterval    time.Duration
	Seed            uint64
	IdleTimeout     time.Duration // Zero keeps idle clients connected
	ShutdownDisplay time.Duration // Defaults to config.ShutdownDisplay
	Logger          *log.Logger
}

// Client handles rendering and input for a single connection.
type Client struct {
	hub    server.Hub
	reader io.Reader
	writer io.Writer
	screen *draw.ANSIScreen
	opts   Options
}

// NewClient creates a client that registers with hub when run.
func NewClient(hub server.Hub, r io.Reader, w io.Writer, opts Options) *Client {
	if opts.TermSizeFunc == nil {
		opts.TermSizeFunc = draw.DefaultTermSizeFunc
	}
	if opts.ShutdownDisplay <= 0 {
		opts.ShutdownDisplay = config.ShutdownDisplay
	}
	return &Client{
		hub:    hub,
		reader: r,
		writer: w,
		screen: draw.NewANSIScreen(w, config.ScreenWidth, config.ScreenHeight, opts.TermSizeFunc),
		opts:   opts,
	}
}

// Run plays until the user quits, the input ends, the client idles out or
// the server shuts down.
func (c *Client) Run(ctx context.Context) error {
	ctx, entry := c.hub.Register(ctx, c.opts.Username)
	defer c.hub.Unregister(entry.ID)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	session := loop.NewSession(c.screen, loop.Options{
		TickInterval: c.opts.TickInterval,
		Seed:         c.opts.Seed,
		Logger:       c.opts.Logger,
	})

	var lastKey atomic.Int64
	lastKey.Store(time.Now().UnixNano())
	stream := input.StartStream(c.reader, func(k input.Key) {
		lastKey.Store(time.Now().UnixNano())
		if k.Code == input.CodeQuit {
			cancel()
			return
		}
		session.Key(k)
	})

	var reason atomic.Value
	reason.Store(exitQuit)
	go c.watch(ctx, cancel, entry, stream, &lastKey, &reason)

	draw.HideCursor(c.writer)
	defer draw.ShowCursor(c.writer)
	draw.ClearScreen(c.writer)

	if err := session.Run(ctx); err != nil {
		return fmt.Errorf("client %s: %w", entry.ID, err)
	}

	switch reason.Load().(exit) {
	case exitShutdown:
		if err := c.notice("SERVER SHUTTING DOWN"); err != nil {
			return err
		}
	case exitIdle:
		if err := c.notice("DISCONNECTED: IDLE"); err != nil {
			return err
		}
	}

	draw.ClearScreen(c.writer)
	return nil
}

type exit int

const (
	exitQuit exit = iota
	exitShutdown
	exitIdle
)

// watch cancels the session on a server notice, end of input or inactivity.
func (c *Client) watch(ctx context.Context, cancel context.CancelFunc, entry *server.Entry,
	stream *input.Stream, lastKey *atomic.Int64, reason *atomic.Value) {
	var idle <-chan time.Time
	if c.opts.IdleTimeout > 0 {
		ticker := time.NewTicker(min(c.opts.IdleTimeout/4, time.Second))
		defer ticker.Stop()
		idle = ticker.C
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-stream.Done():
			if err := stream.Err(); err != nil && c.opts.Logger != nil {
				c.opts.Logger.Warn("input stream failed", "id", entry.ID, "err", err)
			}
			cancel()
			return
		case ev := <-entry.Events():
			if ev.Type == server.EventServerShutdown {
				reason.Store(exitShutdown)
				cancel()
				return
			}
		case <-idle:
			if time.Since(time.Unix(0, lastKey.Load())) > c.opts.IdleTimeout {
				reason.Store(exitIdle)
				cancel()
				return
			}
		}
	}
}
