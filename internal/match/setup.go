package match

import (
	"github.com/berserk-vibe/matchd/internal/board"
	"github.com/berserk-vibe/matchd/internal/boardgeo"
	"github.com/berserk-vibe/matchd/internal/carddb"
	"github.com/berserk-vibe/matchd/internal/log"
)

// AddToHand creates a fresh CardInstance from a card definition and adds
// it to a player's hand, to be placed during SETUP.
func (e *Engine) AddToHand(player int, defID string) *board.CardInstance {
	def := carddb.MustLookup(defID)
	c := board.NewCardInstance(e.NextCardID(), def, player)
	c.FaceDown = true
	e.State.Hands[player].Cards = append(e.State.Hands[player].Cards, c)
	return c
}

// PlaceSetupCard places a hand card onto the board during SETUP.
func (e *Engine) PlaceSetupCard(player, cardID, pos int) error {
	s := e.State
	if s.Phase != PhaseSetup {
		return errPhase
	}
	card := s.Hands[player].RemoveCard(cardID)
	if card == nil {
		return errInvalidCard
	}
	if card.Def().IsFlying {
		if pos < 0 {
			pos = s.Board.FreeFlyingSlot(player)
		}
		if pos < 0 || boardgeo.FlyingZoneOwner(pos) != player || s.Board.At(pos) != nil {
			s.Hands[player].Cards = append(s.Hands[player].Cards, card)
			return errInvalidTarget
		}
	} else {
		if !boardgeo.IsOwnSide(pos, player) || s.Board.At(pos) != nil {
			s.Hands[player].Cards = append(s.Hands[player].Cards, card)
			return errInvalidTarget
		}
	}
	s.Board.Place(card, pos)
	return nil
}

// DeploySquad adds each defID to player's hand and places it on the
// board: ground cards fill the player's back row first, then the row in
// front of it,
// flying cards take the next free flying-zone slot. This is the fixed
// layout used by non-interactive entry points (the MCP adapter, the
// batch simulator) that skip manual SETUP placement.
func (e *Engine) DeploySquad(player int, defIDs []string) error {
	ground := 0
	for _, defID := range defIDs {
		c := e.AddToHand(player, defID)
		pos := -1
		if !c.Def().IsFlying {
			pos = squadGroundPosition(player, ground)
			ground++
		}
		if err := e.PlaceSetupCard(player, c.ID, pos); err != nil {
			return err
		}
	}
	return nil
}

// squadGroundPosition lays out a player's ground squad along their back
// two rows, column by column.
func squadGroundPosition(player, index int) int {
	row := index / boardgeo.Cols
	col := index % boardgeo.Cols
	if player == 1 {
		return row*boardgeo.Cols + col
	}
	return (boardgeo.Rows-1-row)*boardgeo.Cols + col
}

// RevealAndStart flips P1's army face-up (flyers already sit in their
// flying zone from placement) and P2's front/middle rows, leaving P2's back row face-down
// until P2's first turn, then starts MAIN phase on P1's turn.
func (e *Engine) RevealAndStart() {
	s := e.State
	for _, c := range s.Board.AllCards(1) {
		c.FaceDown = false
	}
	for _, c := range s.Board.GroundCards(2) {
		row := boardgeo.RowNumber(c.Position, 2)
		if row == 1 || row == 2 {
			c.FaceDown = false
		}
	}
	for _, c := range s.Board.FlyingCards(2) {
		c.FaceDown = false
	}

	s.Phase = PhaseMain
	s.CurrentPlayer = 1
	s.TurnNumber = 1
	e.log(log.NewTurnStarted(s.TurnNumber, s.CurrentPlayer))
	e.onTurnStart(s.CurrentPlayer)
	e.recalculateFormations()
	e.updateForcedAttackers()
}
