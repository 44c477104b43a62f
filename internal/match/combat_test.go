package match

import (
	"strings"
	"testing"

	"github.com/berserk-vibe/matchd/internal/boardgeo"
)

// TestStrongHitNoCounter: diff >= 5 lands a strong hit with no counter
// (the damage-tier table's top row).
func TestStrongHitNoCounter(t *testing.T) {
	e := newMainEngine(t, 1)
	atkID := place(t, e, "cyclops", 1, boardgeo.Pos(2, 0))
	defID := place(t, e, "kobold", 2, boardgeo.Pos(3, 0))
	e.InjectRolls(6, 1) // diff = 5

	r := e.Apply(Command{Kind: CmdAttack, Player: 1, CardID: atkID, Position: boardgeo.Pos(3, 0)})
	if !r.Accepted {
		t.Fatalf("expected attack to be accepted, got %q", r.Error)
	}

	defender := e.State.Board.CardByID(defID)
	attacker := e.State.Board.CardByID(atkID)
	if defender.CurrLife != 9 {
		t.Errorf("expected defender to take the strong-tier hit (6 dmg, 15->9), got %d", defender.CurrLife)
	}
	if attacker.CurrLife != 10 {
		t.Errorf("expected no counter damage on the attacker, got %d", attacker.CurrLife)
	}
	if !attacker.Tapped {
		t.Error("expected the attacker to tap after resolving combat")
	}
}

// TestExchangeChoiceFull and TestExchangeChoiceReduced cover diff == 4, which both deals a
// strong hit and returns a weak counter unless the advantaged side
// chooses to reduce it.
func TestExchangeChoiceFull(t *testing.T) {
	e := newMainEngine(t, 1)
	atkID := place(t, e, "cyclops", 1, boardgeo.Pos(2, 0))
	defID := place(t, e, "kobold", 2, boardgeo.Pos(3, 0))
	e.InjectRolls(5, 1) // diff = 4

	r := e.Apply(Command{Kind: CmdAttack, Player: 1, CardID: atkID, Position: boardgeo.Pos(3, 0)})
	if !r.Accepted {
		t.Fatalf("expected attack to be accepted, got %q", r.Error)
	}
	if e.State.Interaction == nil || e.State.Interaction.Kind != InteractionChooseExchange {
		t.Fatalf("expected a CHOOSE_EXCHANGE interaction to open, got %+v", e.State.Interaction)
	}
	if e.State.Interaction.ActingPlayer != 1 {
		t.Errorf("expected the advantaged attacker (P1) to make the exchange choice, got P%d", e.State.Interaction.ActingPlayer)
	}

	// Accept:true means "keep the full exchange" (dispatchConfirm negates
	// Accept into ChooseExchange's `reduced` argument).
	r = e.Apply(Command{Kind: CmdConfirm, Player: 1, Accept: true})
	if !r.Accepted {
		t.Fatalf("expected exchange confirmation to be accepted, got %q", r.Error)
	}

	defender := e.State.Board.CardByID(defID)
	attacker := e.State.Board.CardByID(atkID)
	if defender.CurrLife != 9 {
		t.Errorf("expected the full strong hit (6 dmg, 15->9), got %d", defender.CurrLife)
	}
	if attacker.CurrLife != 9 {
		t.Errorf("expected the full weak counter (1 dmg, 10->9), got %d", attacker.CurrLife)
	}
}

func TestExchangeChoiceReduced(t *testing.T) {
	e := newMainEngine(t, 2)
	atkID := place(t, e, "cyclops", 1, boardgeo.Pos(2, 0))
	defID := place(t, e, "kobold", 2, boardgeo.Pos(3, 0))
	e.InjectRolls(5, 1) // diff = 4

	r := e.Apply(Command{Kind: CmdAttack, Player: 1, CardID: atkID, Position: boardgeo.Pos(3, 0)})
	if !r.Accepted {
		t.Fatalf("expected attack to be accepted, got %q", r.Error)
	}

	// Accept:false -> reduced=true: the attacker lowers their own tier by
	// one (strong->medium) and the opposing counter is cancelled.
	r = e.Apply(Command{Kind: CmdConfirm, Player: 1, Accept: false})
	if !r.Accepted {
		t.Fatalf("expected reduced exchange to be accepted, got %q", r.Error)
	}

	defender := e.State.Board.CardByID(defID)
	attacker := e.State.Board.CardByID(atkID)
	if defender.CurrLife != 11 {
		t.Errorf("expected the reduced medium hit (4 dmg, 15->11), got %d", defender.CurrLife)
	}
	if attacker.CurrLife != 10 {
		t.Errorf("expected the opposing counter to be cancelled entirely, got %d", attacker.CurrLife)
	}
}

// TestScavengingHealsOnKill exercises korpit's ON_KILL scavenging ability:
// a kill in combat fully heals the attacker regardless of damage taken.
func TestScavengingHealsOnKill(t *testing.T) {
	e := newMainEngine(t, 3)
	atkID := place(t, e, "korpit", 1, boardgeo.FlyingZoneP1Start)
	defID := place(t, e, "kobold", 2, boardgeo.Pos(3, 0))

	attacker := e.State.Board.CardByID(atkID)
	attacker.CurrLife = 5 // damaged before the kill, to prove the full heal
	e.State.Board.CardByID(defID).CurrLife = 1

	e.InjectRolls(6, 1) // diff = 5, strong tier, 6 damage kills the 1-life defender
	r := e.Apply(Command{Kind: CmdAttack, Player: 1, CardID: atkID, Position: boardgeo.Pos(3, 0)})
	if !r.Accepted {
		t.Fatalf("expected attack to be accepted, got %q", r.Error)
	}

	defender := e.State.Board.CardByID(defID)
	if defender != nil {
		t.Fatalf("expected the defender to have died and moved to the graveyard, still found on board: %+v", defender)
	}
	if attacker.CurrLife != attacker.Def().Life {
		t.Errorf("expected scavenging to fully heal the attacker to %d, got %d", attacker.Def().Life, attacker.CurrLife)
	}
}

// TestLuckInstantRerollDuringPriority drives the full priority-window
// protocol: a third card with the luck instant rerolls the attacker's
// die while combat is suspended awaiting priority.
func TestLuckInstantRerollDuringPriority(t *testing.T) {
	e := newMainEngine(t, 4)
	atkID := place(t, e, "cyclops", 1, boardgeo.Pos(2, 0))
	defID := place(t, e, "kobold", 2, boardgeo.Pos(3, 0))
	luckID := place(t, e, "lovec_udachi", 1, boardgeo.Pos(2, 2))

	e.InjectRolls(2, 5, 6) // initial atk=2, def=5 (diff=-3); reroll -> atk=6

	r := e.Apply(Command{Kind: CmdAttack, Player: 1, CardID: atkID, Position: boardgeo.Pos(3, 0)})
	if !r.Accepted {
		t.Fatalf("expected attack to be accepted, got %q", r.Error)
	}
	if !e.State.PriorityPhase {
		t.Fatal("expected a priority window to open with an instant available")
	}
	if e.State.PriorityPlayer != 1 {
		t.Fatalf("expected priority to start with the attacking player, got P%d", e.State.PriorityPlayer)
	}

	r = e.Apply(Command{Kind: CmdUseInstant, Player: 1, CardID: luckID, AbilityID: "luck", Option: "atk_reroll"})
	if !r.Accepted {
		t.Fatalf("expected the luck instant to be accepted, got %q", r.Error)
	}
	if !e.State.Board.CardByID(luckID).Tapped {
		t.Error("expected using an instant to tap its source card")
	}

	r = e.Apply(Command{Kind: CmdPassPriority, Player: 2})
	if !r.Accepted {
		t.Fatalf("expected P2 pass to be accepted, got %q", r.Error)
	}
	if !e.State.PriorityPhase {
		t.Fatal("expected priority to remain open: the stack still holds an unresolved instant")
	}

	r = e.Apply(Command{Kind: CmdPassPriority, Player: 1})
	if !r.Accepted {
		t.Fatalf("expected P1's second pass to close the window, got %q", r.Error)
	}
	if e.State.PriorityPhase {
		t.Error("expected the priority window to have closed and combat to have resolved")
	}

	defender := e.State.Board.CardByID(defID)
	attacker := e.State.Board.CardByID(atkID)
	// Rerolled diff = (6+0) - (5+0) = 1 -> weak hit, no counter.
	if defender.CurrLife != 13 {
		t.Errorf("expected the rerolled weak hit (2 dmg, 15->13), got %d", defender.CurrLife)
	}
	if attacker.CurrLife != 10 {
		t.Errorf("expected no counter damage, got %d", attacker.CurrLife)
	}
}

// TestValhallaStrikeGrantsAttackBonus exercises a dead card's VALHALLA
// trigger: queued at its owner's next turn start, resolved by choosing a
// living ally to receive the bonus.
func TestValhallaStrikeGrantsAttackBonus(t *testing.T) {
	e := newMainEngine(t, 5)
	fallenID := place(t, e, "kostedrobitel", 1, boardgeo.Pos(2, 0))
	allyID := place(t, e, "kobold", 1, boardgeo.Pos(2, 1))
	place(t, e, "cyclops", 2, boardgeo.Pos(3, 0))

	fallen := e.State.Board.CardByID(fallenID)
	fallen.CurrLife = 0
	fallen.KilledByEnemy = true
	e.State.Board.SendToGraveyard(fallen)

	e.queueValhallaForTurnStart(1)
	e.processValhalla()

	if e.State.Interaction == nil || e.State.Interaction.Kind != InteractionSelectValhallaTgt {
		t.Fatalf("expected a SELECT_VALHALLA_TARGET interaction, got %+v", e.State.Interaction)
	}

	r := e.Apply(Command{Kind: CmdChoosePosition, Player: 1, Position: boardgeo.Pos(2, 1)})
	if !r.Accepted {
		t.Fatalf("expected valhalla target selection to be accepted, got %q", r.Error)
	}

	ally := e.State.Board.CardByID(allyID)
	if ally.TempAttackBonus != 2 {
		t.Errorf("expected valhalla_strike's +2 attack bonus to land on the chosen ally, got %d", ally.TempAttackBonus)
	}
	if !fallen.ValhallaTriggered {
		t.Error("expected the fallen card to be marked as having triggered its valhalla ability")
	}
}

// TestExplainNoInstantsNamesEachExclusionReason covers the debug helper a
// content author calls after a dice roll opens no priority window: every
// would-be instant holder should get its own line naming why it didn't
// qualify.
func TestExplainNoInstantsNamesEachExclusionReason(t *testing.T) {
	e := newMainEngine(t, 7)
	atkID := place(t, e, "cyclops", 1, boardgeo.Pos(2, 0))
	place(t, e, "kobold", 2, boardgeo.Pos(3, 0))
	tappedLuckID := place(t, e, "lovec_udachi", 1, boardgeo.Pos(2, 2))
	e.State.Board.CardByID(tappedLuckID).Tapped = true

	e.InjectRolls(3, 3)
	r := e.Apply(Command{Kind: CmdAttack, Player: 1, CardID: atkID, Position: boardgeo.Pos(3, 0)})
	if !r.Accepted {
		t.Fatalf("expected attack to be accepted, got %q", r.Error)
	}
	if e.State.PriorityPhase {
		t.Fatal("expected no priority window: the only instant holder is tapped")
	}

	reasons := e.ExplainNoInstants(1)
	if len(reasons) != 1 {
		t.Fatalf("expected exactly one explained card, got %v", reasons)
	}
	if !strings.Contains(reasons[0], "tapped") {
		t.Errorf("expected the tapped exclusion reason, got %q", reasons[0])
	}
}

// TestForcedAttackMustEngageTappedAdjacentEnemy exercises
// must_attack_tapped: once an adjacent enemy is tapped, the berserker
// card is locked out of every command but ATTACK (against that enemy);
// END_TURN is rejected as well.
func TestForcedAttackMustEngageTappedAdjacentEnemy(t *testing.T) {
	e := newMainEngine(t, 6)
	berserkerID := place(t, e, "gnome_basaarg", 1, boardgeo.Pos(2, 0))
	enemyID := place(t, e, "kobold", 2, boardgeo.Pos(3, 0))
	e.State.Board.CardByID(enemyID).Tapped = true
	e.updateForcedAttackers()

	if len(e.State.ForcedAttackers[berserkerID]) == 0 {
		t.Fatal("expected the berserker to be listed as a forced attacker against the tapped adjacent enemy")
	}

	otherID := place(t, e, "kobold", 1, boardgeo.Pos(1, 0))
	r := e.Apply(Command{Kind: CmdMove, Player: 1, CardID: otherID, Position: boardgeo.Pos(0, 0)})
	if r.Accepted {
		t.Error("expected any non-attack command to be rejected while a forced attacker is pending")
	}

	r = e.Apply(Command{Kind: CmdAttack, Player: 1, CardID: berserkerID, Position: boardgeo.Pos(3, 0)})
	if !r.Accepted {
		t.Fatalf("expected the forced attack itself to be accepted, got %q", r.Error)
	}
	if len(e.State.ForcedAttackers[berserkerID]) != 0 {
		t.Error("expected the forced-attack requirement to clear once the berserker attacks")
	}
}
