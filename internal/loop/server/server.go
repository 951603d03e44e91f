// Package server tracks the game sessions running in one process. Every
// session plays its own private game; the hub only knows who is connected
// and how to ask them to leave.
package server

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Hub is the interface clients use to announce themselves.
type Hub interface {
	Register(ctx context.Context, username string) (context.Context, *Entry)
	Unregister(id uuid.UUID)
}

// Compile-time check that Server implements Hub.
var _ Hub = (*Server)(nil)

// EventType identifies a notice sent from the server to a session.
type EventType int

const (
	EventServerShutdown EventType = iota
)

// Event is a notice sent from the server to a session.
type Event struct {
	Type EventType
}

// Entry represents one registered session.
type Entry struct {
	ID       uuid.UUID
	Username string
	Started  time.Time

	events chan Event
	cancel context.CancelFunc
}

// Events delivers server notices to the session.
func (e *Entry) Events() <-chan Event {
	return e.events
}

// Server keeps the set of live sessions.
type Server struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Entry
	logger   *log.Logger
}

// NewServer creates an empty hub. A nil logger disables logging.
func NewServer(logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Server{
		sessions: make(map[uuid.UUID]*Entry),
		logger:   logger,
	}
}

// Register adds a session and returns a context that is cancelled when the
// server stops or the session is unregistered.
func (s *Server) Register(ctx context.Context, username string) (context.Context, *Entry) {
	ctx, cancel := context.WithCancel(ctx)
	e := &Entry{
		ID:       uuid.New(),
		Username: username,
		Started:  time.Now(),
		events:   make(chan Event, 4),
		cancel:   cancel,
	}

	s.mu.Lock()
	s.sessions[e.ID] = e
	n := len(s.sessions)
	s.mu.Unlock()

	s.logger.Info("session registered", "id", e.ID, "user", username, "sessions", n)
	return ctx, e
}

// Unregister removes a session and cancels its context. Unknown IDs are
// ignored.
func (s *Server) Unregister(id uuid.UUID) {
	s.mu.Lock()
	e, ok := s.sessions[id]
	delete(s.sessions, id)
	n := len(s.sessions)
	s.mu.Unlock()

	if !ok {
		return
	}
	e.cancel()
	s.logger.Info("session ended", "id", id, "user", e.Username,
		"duration", time.Since(e.Started).Round(time.Second), "sessions", n)
}

// Count returns the number of live sessions.
func (s *Server) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Shutdown notifies every session and waits for them to unregister, up to
// timeout. Sessions still connected afterwards are cancelled.
func (s *Server) Shutdown(timeout time.Duration) {
	s.mu.RLock()
	for _, e := range s.sessions {
		select {
		case e.events <- Event{Type: EventServerShutdown}:
		default:
		}
	}
	s.mu.RUnlock()

	deadline := time.After(timeout)
	ticker := time.NewTicker(pollInterval(timeout))
	defer ticker.Stop()

wait:
	for {
		select {
		case <-deadline:
			break wait
		case <-ticker.C:
			if s.Count() == 0 {
				return
			}
		}
	}

	s.mu.Lock()
	for id, e := range s.sessions {
		e.cancel()
		delete(s.sessions, id)
	}
	s.mu.Unlock()
	s.logger.Warn("shutdown timeout, sessions cancelled")
}

func pollInterval(timeout time.Duration) time.Duration {
	if d := timeout / 10; d < 200*time.Millisecond {
		return max(d, time.Millisecond)
	}
	return 200 * time.Millisecond
}
