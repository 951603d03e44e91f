package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/tomz197/dungeon/internal/config"
	"github.com/tomz197/dungeon/internal/draw"
	"github.com/tomz197/dungeon/internal/input"
	"github.com/tomz197/dungeon/internal/loop"
	gameconfig "github.com/tomz197/dungeon/internal/loop/config"
	"github.com/tomz197/dungeon/internal/loop/client"
	"github.com/tomz197/dungeon/internal/loop/server"
)

func main() {
	stderr := log.NewWithOptions(os.Stderr, log.Options{Prefix: "dungeon"})

	settings, err := config.FromEnv()
	if err != nil {
		stderr.Error("bad settings", "err", err)
		os.Exit(1)
	}

	logger, closeLog, err := gameLogger(settings)
	if err != nil {
		stderr.Error("open log file", "err", err)
		os.Exit(1)
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch settings.Renderer {
	case config.RendererANSI:
		err = runANSI(ctx, settings, logger)
	default:
		err = runTcell(ctx, settings, logger)
	}
	if err != nil {
		stderr.Error("game error", "err", err)
		closeLog()
		os.Exit(1)
	}
}

// gameLogger logs to DUNGEON_LOG_FILE while the terminal is owned by the game.
func gameLogger(settings config.Settings) (*log.Logger, func(), error) {
	path := config.GetEnv("DUNGEON_LOG_FILE", "")
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "dungeon",
		Level:           settings.Level(),
	})
	return logger, func() { _ = f.Close() }, nil
}

// runTcell plays on a tcell screen, translating tcell key events.
func runTcell(ctx context.Context, settings config.Settings, logger *log.Logger) error {
	ts, err := draw.NewTcellScreen(gameconfig.ScreenWidth, gameconfig.ScreenHeight)
	if err != nil {
		return err
	}
	defer ts.Fini()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	session := loop.NewSession(ts, loop.Options{
		TickInterval: settings.TickInterval,
		Seed:         settings.Seed,
		Logger:       logger,
	})

	go func() {
		for {
			switch ev := ts.Screen().PollEvent().(type) {
			case nil:
				return
			case *tcell.EventResize:
				ts.Sync()
			case *tcell.EventKey:
				k, ok := input.FromTcell(ev)
				if !ok {
					continue
				}
				if k.Code == input.CodeQuit {
					cancel()
					return
				}
				session.Key(k)
			}
		}
	}()

	return session.Run(ctx)
}

// runANSI plays on the raw terminal through the same client used by SSH.
func runANSI(ctx context.Context, settings config.Settings, logger *log.Logger) error {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	hub := server.NewServer(logger)
	c := client.NewClient(hub, os.Stdin, os.Stdout, client.Options{
		TermSizeFunc: draw.DefaultTermSizeFunc,
		Username:     config.GetEnv("USER", "local"),
		TickInterval: settings.TickInterval,
		Seed:         settings.Seed,
		Logger:       logger,
	})
	return c.Run(ctx)
}
