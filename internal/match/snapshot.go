package match

import "github.com/berserk-vibe/matchd/internal/board"

// CardView is the client-facing projection of a CardInstance. Face-down
// enemy cards are redacted to {id, player, face_down:true, position,
// hidden:true}.
type CardView struct {
	ID       int
	DefID    string
	Player   int
	Position int
	Hidden   bool
	FaceDown bool

	CurrLife int
	CurrMove int
	Tapped   bool
	Counters int

	InFormation bool
	StatusTexts []string
}

// Snapshot is the full, filtered view of a match sent to one player.
type Snapshot struct {
	ForPlayer     int
	Phase         string
	CurrentPlayer int
	TurnNumber    int
	Winner        int

	Cards []CardView

	Interaction *Interaction
	PriorityPhase  bool
	PriorityPlayer int

	ForcedAttackers map[int][]int
}

// Snapshot builds the filtered view for forPlayer: enemy face-down
// cards are redacted, everything else is visible.
func (e *Engine) Snapshot(forPlayer int) *Snapshot {
	s := e.State
	snap := &Snapshot{
		ForPlayer:       forPlayer,
		Phase:           s.Phase.String(),
		CurrentPlayer:   s.CurrentPlayer,
		TurnNumber:      s.TurnNumber,
		Winner:          s.Winner,
		Interaction:     s.Interaction,
		PriorityPhase:   s.PriorityPhase,
		PriorityPlayer:  s.PriorityPlayer,
		ForcedAttackers: s.ForcedAttackers,
	}
	for _, c := range s.Board.AllCards(0) {
		snap.Cards = append(snap.Cards, viewOf(c, forPlayer))
	}
	return snap
}

func viewOf(c *board.CardInstance, forPlayer int) CardView {
	if c.FaceDown && c.Player != forPlayer {
		return CardView{ID: c.ID, Player: c.Player, Position: c.Position, FaceDown: true, Hidden: true}
	}
	return CardView{
		ID: c.ID, DefID: c.DefID, Player: c.Player, Position: c.Position,
		CurrLife: c.CurrLife, CurrMove: c.CurrMove, Tapped: c.Tapped,
		Counters: c.Counters, InFormation: c.InFormation,
		StatusTexts: statusTextsOf(c),
	}
}

// statusTextsOf collects the display-ready StatusText of every ability c
// carries that declares one, so a client can render a card's effects
// without reformatting DamageBonus/HealAmount/etc. itself.
func statusTextsOf(c *board.CardInstance) []string {
	var out []string
	for _, a := range c.Def().Abilities() {
		if a.StatusText != "" {
			out = append(out, a.StatusText)
		}
	}
	return out
}
