// Package matchserver is the thin shell that owns one running match: a
// UUID-identified session wrapping a *match.Engine, exposing Apply and
// handshake verification, kept as a plain in-process session table the
// transport layer (internal/net) drives.
package matchserver

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/berserk-vibe/matchd/internal/match"
)

// Session is one match owned exclusively by the server; clients never
// hold pointers into it, only snapshots.
type Session struct {
	ID     string
	Engine *match.Engine

	mu sync.Mutex
}

// NewSession creates a session with a fresh UUID and a freshly seeded
// engine.
func NewSession(seed int64) *Session {
	return &Session{
		ID:     uuid.NewString(),
		Engine: match.NewEngine(seed),
	}
}

// Apply serializes command processing under the session's lock — the
// engine itself is single-threaded, but a session may be driven by more
// than one transport goroutine (host socket + spectator reads).
func (s *Session) Apply(cmd match.Command) match.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Engine.Apply(cmd)
}

// Snapshot returns a read-only, player-filtered snapshot without
// mutating state.
func (s *Session) Snapshot(forPlayer int) *match.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Engine.Snapshot(forPlayer)
}

// VerifyHandshake rejects a connecting client whose content hash does
// not match this server's.
func VerifyHandshake(clientHash string) error {
	if clientHash != match.ContentHash() {
		return fmt.Errorf("matchserver: content hash mismatch: got %s, want %s", clientHash, match.ContentHash())
	}
	return nil
}

// Registry keeps every live session, keyed by ID, for a running server
// process (e.g. the spectator or network transport looking up a match by
// ID from an incoming connection).
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewRegistry() *Registry {
	return &Registry{sessions: map[string]*Session{}}
}

func (r *Registry) Add(s *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID] = s
}

func (r *Registry) Get(id string) *Session {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sessions[id]
}

func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}
