// Package net implements the wire protocol and TCP transport for
// networked hotseat play: two processes exchanging Command/Result JSON
// envelopes over a socket around the engine's synchronous
// apply(command) -> result push model — the engine itself never
// touches I/O.
package net

import "github.com/berserk-vibe/matchd/internal/match"

// Envelope is the outer JSON message shape exchanged once a match is
// running. Hello/HelloAck carry the handshake; Command/Result carry
// gameplay.
type Envelope struct {
	Type string `json:"type"`

	// "hello"
	ContentHash string `json:"content_hash,omitempty"`
	Player      int    `json:"player,omitempty"`

	// "hello_ack"
	Accepted bool   `json:"accepted,omitempty"`
	Reason   string `json:"reason,omitempty"`

	// "command"
	Command *CommandWire `json:"command,omitempty"`

	// "result"
	Result *ResultWire `json:"result,omitempty"`
}

// CommandWire is the JSON shape of match.Command.
type CommandWire struct {
	Type      string `json:"type"`
	Player    int    `json:"player"`
	CardID    int    `json:"card_id,omitempty"`
	Position  int    `json:"position,omitempty"`
	AbilityID string `json:"ability_id,omitempty"`
	Option    string `json:"option,omitempty"`
	Amount    int    `json:"amount,omitempty"`
	Accept    bool   `json:"accept,omitempty"`
}

// ToCommand converts the wire shape to an engine Command.
func (w *CommandWire) ToCommand() match.Command {
	return match.Command{
		Kind: match.Kind(w.Type), Player: w.Player, CardID: w.CardID,
		TargetID: w.CardID, Position: w.Position, AbilityID: w.AbilityID,
		Option: w.Option, Amount: w.Amount, Accept: w.Accept,
	}
}

// ResultWire is the JSON shape of match.Result.
type ResultWire struct {
	Accepted bool     `json:"accepted"`
	Error    string   `json:"error,omitempty"`
	Events   []string `json:"events"`
}

// ToResultWire builds the wire representation of an engine Result, using
// each event's formatted text line — clients needing full structured
// fields read the snapshot instead; apply the snapshot first, then
// events, for animation.
func ToResultWire(r match.Result) ResultWire {
	w := ResultWire{Accepted: r.Accepted, Error: r.Error}
	for _, ev := range r.Events {
		w.Events = append(w.Events, ev.Details)
	}
	return w
}
