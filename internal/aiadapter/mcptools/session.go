// Package mcptools exposes a running match as an MCP tool surface: an
// agent plays one side by submitting commands, while the opposing side is
// driven automatically by an aiadapter.Policy after each of the agent's
// turns. Built around a singleton session and one tool per decision
// shape, kept simple by this engine's synchronous Apply(Command)->Result
// model: there is no controller goroutine or network join to block on,
// so a tool call is just one Apply plus however many automatic opponent
// turns follow it.
package mcptools

import (
	"sync"

	"github.com/berserk-vibe/matchd/internal/aiadapter"
	"github.com/berserk-vibe/matchd/internal/match"
)

// starterSquad is the fixed six-card roster fielded by both sides when no
// deck file is supplied, one of each scenario creature named in the
// content pack.
var starterSquad = []string{
	"cyclops", "gnome_basaarg", "kobold", "korpit", "lovec_udachi", "kostedrobitel",
}

// Session holds one MCP-driven match: the agent plays agentPlayer, the
// engine plays the other side via opponent.
type Session struct {
	mu           sync.Mutex
	engine       *match.Engine
	agentPlayer  int
	opponent     aiadapter.Policy
	lastSnapshot *match.Snapshot
}

// NewSession starts a fresh engine and runs setup/placement automatically
// (no draft phase is exposed over MCP — both sides field a fixed starter
// squad so a tool-driven game can begin immediately).
func NewSession(seed int64, agentPlayer int, opponent aiadapter.Policy) (*Session, error) {
	e := match.NewEngine(seed)
	if err := autoSetup(e); err != nil {
		return nil, err
	}
	s := &Session{engine: e, agentPlayer: agentPlayer, opponent: opponent}
	s.advanceOpponentTurns()
	return s, nil
}

// Apply submits one command as the agent, then lets the opponent policy
// play out its turn(s) until control returns to the agent or the match
// ends.
func (s *Session) Apply(cmd match.Command) match.Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	cmd.Player = s.agentPlayer
	result := s.engine.Apply(cmd)
	s.lastSnapshot = result.Snapshot
	if result.Accepted {
		s.advanceOpponentTurns()
		s.lastSnapshot = s.engine.Snapshot(s.agentPlayer)
	}
	return result
}

// Snapshot returns the agent's current view without submitting anything.
func (s *Session) Snapshot() *match.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Snapshot(s.agentPlayer)
}

// advanceOpponentTurns drives the non-agent side with the configured
// policy until it is the agent's turn again, an interaction awaits the
// agent, or the match ends. A hard cap guards against a policy that never
// produces END_TURN.
func (s *Session) advanceOpponentTurns() {
	if s.opponent == nil {
		return
	}
	other := opponentOf(s.agentPlayer)
	for i := 0; i < 500; i++ {
		st := s.engine.State
		if st.Winner != 0 {
			return
		}
		turnHolder := st.CurrentPlayer
		if st.Interaction != nil {
			turnHolder = st.Interaction.ActingPlayer
		} else if st.PriorityPhase {
			turnHolder = st.PriorityPlayer
		}
		if turnHolder != other {
			return
		}
		cmd := s.opponent.NextCommand(s.engine, other)
		s.engine.Apply(cmd)
	}
}

func opponentOf(player int) int {
	if player == 1 {
		return 2
	}
	return 1
}

func autoSetup(e *match.Engine) error {
	if err := e.DeploySquad(1, starterSquad); err != nil {
		return err
	}
	if err := e.DeploySquad(2, starterSquad); err != nil {
		return err
	}
	e.RevealAndStart()
	return nil
}
