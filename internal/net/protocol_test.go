package net

import (
	"testing"

	"github.com/berserk-vibe/matchd/internal/log"
	"github.com/berserk-vibe/matchd/internal/match"
)

func TestCommandWireToCommand(t *testing.T) {
	w := CommandWire{Type: "ATTACK", Player: 2, CardID: 7, Position: 12, AbilityID: "luck", Option: "atk_reroll", Amount: 3, Accept: true}
	cmd := w.ToCommand()
	if cmd.Kind != match.CmdAttack || cmd.Player != 2 || cmd.CardID != 7 || cmd.Position != 12 ||
		cmd.AbilityID != "luck" || cmd.Option != "atk_reroll" || cmd.Amount != 3 || !cmd.Accept {
		t.Errorf("ToCommand did not round-trip every field, got %+v", cmd)
	}
	if cmd.TargetID != cmd.CardID {
		t.Errorf("expected TargetID to mirror CardID for wire commands, got %d vs %d", cmd.TargetID, cmd.CardID)
	}
}

func TestToResultWireFlattensEventsToDetails(t *testing.T) {
	r := match.Result{
		Accepted: true,
		Events: []log.GameEvent{
			{Details: "card moved"},
			{Details: "turn ended"},
		},
	}
	w := ToResultWire(r)
	if !w.Accepted {
		t.Error("expected Accepted to carry through")
	}
	if len(w.Events) != 2 || w.Events[0] != "card moved" || w.Events[1] != "turn ended" {
		t.Errorf("expected flattened event detail strings, got %v", w.Events)
	}
}

func TestToResultWireCarriesError(t *testing.T) {
	r := match.Result{Accepted: false, Error: "match: not your turn"}
	w := ToResultWire(r)
	if w.Accepted {
		t.Error("expected a rejected result to stay unaccepted")
	}
	if w.Error != "match: not your turn" {
		t.Errorf("expected the error string to carry through, got %q", w.Error)
	}
}
