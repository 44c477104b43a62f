package board

import (
	"testing"

	"github.com/berserk-vibe/matchd/internal/boardgeo"
	"github.com/berserk-vibe/matchd/internal/carddb"
)

func registerTestDefs(t *testing.T) {
	t.Helper()
	carddb.Reset()
	t.Cleanup(carddb.Reset)
	carddb.Register(&carddb.Def{DefID: "ground_unit", Life: 10, Move: 2})
	carddb.Register(&carddb.Def{DefID: "flyer_unit", Life: 8, Move: 3, IsFlying: true})
}

func TestPlaceAndAt(t *testing.T) {
	registerTestDefs(t)
	b := NewBoard()
	c := NewCardInstance(1, carddb.Lookup("ground_unit"), 1)
	b.Place(c, boardgeo.Pos(0, 0))
	if b.At(boardgeo.Pos(0, 0)) != c {
		t.Fatal("expected At to return the placed card")
	}
	if c.Position != boardgeo.Pos(0, 0) {
		t.Errorf("expected card.Position to be updated on placement, got %d", c.Position)
	}
}

func TestMoveRelocatesCard(t *testing.T) {
	registerTestDefs(t)
	b := NewBoard()
	c := NewCardInstance(1, carddb.Lookup("ground_unit"), 1)
	b.Place(c, boardgeo.Pos(0, 0))
	b.Move(c, boardgeo.Pos(0, 1))
	if b.At(boardgeo.Pos(0, 0)) != nil {
		t.Error("expected the origin cell to be cleared after a move")
	}
	if b.At(boardgeo.Pos(0, 1)) != c {
		t.Error("expected the destination cell to hold the moved card")
	}
}

func TestSendToGraveyardClearsBoardAndResetsPosition(t *testing.T) {
	registerTestDefs(t)
	b := NewBoard()
	c := NewCardInstance(1, carddb.Lookup("ground_unit"), 2)
	b.Place(c, boardgeo.Pos(3, 0))
	b.SendToGraveyard(c)
	if b.At(boardgeo.Pos(3, 0)) != nil {
		t.Error("expected the board cell to be vacated")
	}
	if c.Position != -1 {
		t.Errorf("expected graveyard cards to have Position reset to -1, got %d", c.Position)
	}
	if len(b.Graveyard(2)) != 1 || b.Graveyard(2)[0] != c {
		t.Error("expected the card to land in its owner's graveyard")
	}
}

func TestGetValidMovesRespectsRangeAndOccupancy(t *testing.T) {
	registerTestDefs(t)
	b := NewBoard()
	c := NewCardInstance(1, carddb.Lookup("ground_unit"), 1) // move 2
	b.Place(c, boardgeo.Pos(0, 0))
	blocker := NewCardInstance(2, carddb.Lookup("ground_unit"), 1)
	b.Place(blocker, boardgeo.Pos(0, 1))

	moves := b.GetValidMoves(c)
	for _, m := range moves {
		if m == boardgeo.Pos(0, 1) {
			t.Error("expected an occupied cell to be excluded from valid moves")
		}
		if boardgeo.ManhattanDistance(c.Position, m) > c.CurrMove {
			t.Errorf("expected every move to be within range %d, got distance to %d", c.CurrMove, m)
		}
	}
}

func TestGetValidMovesForFlyerStaysInOwnZone(t *testing.T) {
	registerTestDefs(t)
	b := NewBoard()
	flyer := NewCardInstance(1, carddb.Lookup("flyer_unit"), 1)
	b.Place(flyer, boardgeo.FlyingZoneP1Start)

	moves := b.GetValidMoves(flyer)
	for _, m := range moves {
		if boardgeo.FlyingZoneOwner(m) != 1 {
			t.Errorf("expected a P1 flyer's moves to stay within P1's flying zone, got %d", m)
		}
	}
}

func TestGetValidDefendersExcludesTappedAndTarget(t *testing.T) {
	registerTestDefs(t)
	b := NewBoard()
	attacker := NewCardInstance(1, carddb.Lookup("ground_unit"), 1)
	b.Place(attacker, boardgeo.Pos(2, 0))
	target := NewCardInstance(2, carddb.Lookup("ground_unit"), 2)
	b.Place(target, boardgeo.Pos(3, 0))
	ally := NewCardInstance(3, carddb.Lookup("ground_unit"), 2)
	b.Place(ally, boardgeo.Pos(3, 1))
	tappedAlly := NewCardInstance(4, carddb.Lookup("ground_unit"), 2)
	tappedAlly.Tapped = true
	b.Place(tappedAlly, boardgeo.Pos(4, 0))

	defenders := b.GetValidDefenders(attacker, target.Position)
	found := false
	for _, pos := range defenders {
		if pos == ally.Position {
			found = true
		}
		if pos == tappedAlly.Position {
			t.Error("expected a tapped ally to be excluded from valid defenders")
		}
		if pos == target.Position {
			t.Error("expected the attack target itself to be excluded from valid defenders")
		}
	}
	if !found {
		t.Error("expected the untapped adjacent ally to be offered as a valid defender")
	}
}

func TestGetValidDefendersEmptyWhenAttackerHasDirect(t *testing.T) {
	registerTestDefs(t)
	b := NewBoard()
	attacker := NewCardInstance(1, carddb.Lookup("ground_unit"), 1)
	attacker.HasDirect = true
	b.Place(attacker, boardgeo.Pos(2, 0))
	target := NewCardInstance(2, carddb.Lookup("ground_unit"), 2)
	b.Place(target, boardgeo.Pos(3, 0))
	ally := NewCardInstance(3, carddb.Lookup("ground_unit"), 2)
	b.Place(ally, boardgeo.Pos(3, 1))

	if defenders := b.GetValidDefenders(attacker, target.Position); defenders != nil {
		t.Errorf("expected a direct-attack grant to skip defender selection entirely, got %v", defenders)
	}
}
