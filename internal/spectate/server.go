// Package spectate is the read-only half of the Match Server: a websocket
// endpoint that streams a running match's snapshots to observers who
// hold no command authority. Clients hold only read-only snapshots, never
// pointers into the server state; each connection is served by one ticker
// loop that polls the session and pushes its snapshot, since this package has no interactive command surface to
// relay.
package spectate

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/coder/websocket"

	"github.com/berserk-vibe/matchd/internal/matchserver"
)

// Server serves spectator websocket connections for sessions held in a
// matchserver.Registry.
type Server struct {
	Registry *matchserver.Registry
	mux      *http.ServeMux
}

// NewServer builds a spectate server routing /ws/{matchID}.
func NewServer(reg *matchserver.Registry) *Server {
	s := &Server{Registry: reg, mux: http.NewServeMux()}
	s.mux.HandleFunc("/ws/", s.handleWebSocket)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	matchID := r.URL.Path[len("/ws/"):]
	session := s.Registry.Get(matchID)
	if session == nil {
		http.Error(w, "no such match", http.StatusNotFound)
		return
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
	if err != nil {
		log.Printf("spectate: accept error: %v", err)
		return
	}
	defer conn.CloseNow()

	ctx := r.Context()
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	var lastPhase string
	for {
		select {
		case <-ctx.Done():
			conn.Close(websocket.StatusNormalClosure, "done")
			return
		case <-ticker.C:
			// Spectators see player 0's view: no hand redaction target,
			// but face-down enemy cards are still hidden from everyone.
			snap := session.Snapshot(0)
			payload, err := json.Marshal(snap)
			if err != nil {
				continue
			}
			if err := conn.Write(ctx, websocket.MessageText, payload); err != nil {
				return
			}
			if snap.Phase == "GAME_OVER" && lastPhase == "GAME_OVER" {
				conn.Close(websocket.StatusNormalClosure, "match ended")
				return
			}
			lastPhase = snap.Phase
		}
	}
}
