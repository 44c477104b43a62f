package match

import (
	"sync"
	"testing"

	"github.com/berserk-vibe/matchd/internal/boardgeo"
	"github.com/berserk-vibe/matchd/internal/content"
)

// loadOnce guards the one-time registration of the production card and
// ability tables: Register panics on a duplicate id, so every test in
// this package shares a single load instead of calling content.Load
// per-test.
var loadOnce sync.Once

func ensureContent(t *testing.T) {
	t.Helper()
	loadOnce.Do(content.Load)
}

// place puts defID directly on the board at pos, bypassing SETUP/hand
// bookkeeping, for tests that only care about MAIN-phase behavior.
func place(t *testing.T, e *Engine, defID string, player, pos int) int {
	t.Helper()
	c := e.AddToHand(player, defID)
	e.State.Hands[player].RemoveCard(c.ID)
	c.FaceDown = false
	e.State.Board.Place(c, pos)
	return c.ID
}

// newMainEngine returns an engine already past SETUP, on player 1's
// turn, with an empty board — tests place cards directly via place().
func newMainEngine(t *testing.T, seed int64) *Engine {
	t.Helper()
	ensureContent(t)
	e := NewEngine(seed)
	e.State.Phase = PhaseMain
	e.State.CurrentPlayer = 1
	e.State.TurnNumber = 1
	return e
}

func TestApplyNeverPanicsOnGarbageCommands(t *testing.T) {
	e := newMainEngine(t, 1)
	garbage := []Command{
		{Kind: CmdAttack, Player: 1, CardID: 999, Position: 5},
		{Kind: CmdMove, Player: 2, CardID: -1, Position: -1},
		{Kind: Kind("NOT_A_REAL_COMMAND"), Player: 1},
		{Kind: CmdChoosePosition, Player: 1},
		{Kind: CmdPassPriority, Player: 1},
		{Kind: CmdEndTurn, Player: 2},
	}
	for _, cmd := range garbage {
		r := e.Apply(cmd)
		if r.Accepted {
			t.Errorf("expected garbage command %+v to be rejected", cmd)
		}
		if r.Snapshot == nil {
			t.Errorf("Apply must always return a snapshot, even on rejection: %+v", cmd)
		}
	}
}

func TestAttackWrongPlayerRejected(t *testing.T) {
	e := newMainEngine(t, 1)
	atkID := place(t, e, "kobold", 1, boardgeo.Pos(2, 0))
	place(t, e, "kobold", 2, boardgeo.Pos(3, 0))

	r := e.Apply(Command{Kind: CmdAttack, Player: 2, CardID: atkID, Position: boardgeo.Pos(3, 0)})
	if r.Accepted {
		t.Error("expected attack declared by the non-current player to be rejected")
	}
}

func TestMoveRespectsRange(t *testing.T) {
	e := newMainEngine(t, 1)
	id := place(t, e, "kobold", 1, boardgeo.Pos(0, 0)) // move 2

	r := e.Apply(Command{Kind: CmdMove, Player: 1, CardID: id, Position: boardgeo.Pos(0, 3)})
	if r.Accepted {
		t.Error("expected a move beyond the card's move stat to be rejected")
	}
	r = e.Apply(Command{Kind: CmdMove, Player: 1, CardID: id, Position: boardgeo.Pos(0, 2)})
	if !r.Accepted {
		t.Errorf("expected an in-range move to be accepted, got error %q", r.Error)
	}
}

func TestEndTurnUntapsAndAdvances(t *testing.T) {
	e := newMainEngine(t, 1)
	id := place(t, e, "kobold", 1, boardgeo.Pos(2, 0))
	e.State.Board.CardByID(id).Tapped = true
	place(t, e, "kobold", 2, boardgeo.Pos(3, 0))

	r := e.Apply(Command{Kind: CmdEndTurn, Player: 1})
	if !r.Accepted {
		t.Fatalf("expected end turn to be accepted, got %q", r.Error)
	}
	if e.State.CurrentPlayer != 2 {
		t.Errorf("expected turn to pass to player 2, got %d", e.State.CurrentPlayer)
	}

	// Untap only applies to the player whose turn it now is; ending P2's
	// turn in turn brings it back around and untaps P1's tapped card.
	r = e.Apply(Command{Kind: CmdEndTurn, Player: 2})
	if !r.Accepted {
		t.Fatalf("expected P2 end turn to be accepted, got %q", r.Error)
	}
	if e.State.Board.CardByID(id).Tapped {
		t.Error("expected P1's card to untap once its turn comes back around")
	}
	if e.State.TurnNumber != 2 {
		t.Errorf("expected turn number to increment once the cycle returns to P1, got %d", e.State.TurnNumber)
	}
}
