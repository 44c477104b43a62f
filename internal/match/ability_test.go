package match

import (
	"testing"

	"github.com/berserk-vibe/matchd/internal/boardgeo"
)

func TestHealingTouchHealsAlly(t *testing.T) {
	e := newMainEngine(t, 10)
	healerID := place(t, e, "znahar", 1, boardgeo.Pos(2, 0))
	allyID := place(t, e, "kobold", 1, boardgeo.Pos(2, 1))
	ally := e.State.Board.CardByID(allyID)
	ally.CurrLife = 5

	r := e.Apply(Command{Kind: CmdUseAbility, Player: 1, CardID: healerID, AbilityID: "healing_touch"})
	if !r.Accepted {
		t.Fatalf("expected UseAbility to be accepted, got %q", r.Error)
	}
	if e.State.Interaction == nil || e.State.Interaction.Kind != InteractionSelectAbilityTarget {
		t.Fatalf("expected a SELECT_ABILITY_TARGET interaction, got %+v", e.State.Interaction)
	}

	r = e.Apply(Command{Kind: CmdChoosePosition, Player: 1, Position: boardgeo.Pos(2, 1)})
	if !r.Accepted {
		t.Fatalf("expected ability target selection to be accepted, got %q", r.Error)
	}
	if ally.CurrLife != 9 {
		t.Errorf("expected healing_touch's +4 to land (5->9), got %d", ally.CurrLife)
	}
	healer := e.State.Board.CardByID(healerID)
	if !healer.Tapped {
		t.Error("expected the healer to tap after using its ability")
	}
	if healer.CooldownRemaining("healing_touch") != 2 {
		t.Errorf("expected healing_touch's 2-turn cooldown to be set, got %d", healer.CooldownRemaining("healing_touch"))
	}
}

func TestFireballDamagesNonImmuneTarget(t *testing.T) {
	e := newMainEngine(t, 11)
	casterID := place(t, e, "mag_ognya", 1, boardgeo.Pos(2, 0))
	targetID := place(t, e, "kobold", 2, boardgeo.Pos(2, 2))
	e.InjectRolls(6) // total 6 -> strong tier -> 6 magic damage

	r := e.Apply(Command{Kind: CmdUseAbility, Player: 1, CardID: casterID, AbilityID: "fireball"})
	if !r.Accepted {
		t.Fatalf("expected UseAbility to be accepted, got %q", r.Error)
	}
	r = e.Apply(Command{Kind: CmdChoosePosition, Player: 1, Position: boardgeo.Pos(2, 2)})
	if !r.Accepted {
		t.Fatalf("expected ability target selection to be accepted, got %q", r.Error)
	}

	target := e.State.Board.CardByID(targetID)
	if target.CurrLife != 9 {
		t.Errorf("expected the strong-tier magic hit (6 dmg, 15->9), got %d", target.CurrLife)
	}
}

func TestFireballFizzlesAgainstMagicImmune(t *testing.T) {
	e := newMainEngine(t, 12)
	casterID := place(t, e, "mag_ognya", 1, boardgeo.Pos(2, 0))
	targetID := place(t, e, "zachishchennyi_mag", 2, boardgeo.Pos(2, 2))
	e.InjectRolls(6)

	r := e.Apply(Command{Kind: CmdUseAbility, Player: 1, CardID: casterID, AbilityID: "fireball"})
	if !r.Accepted {
		t.Fatalf("expected UseAbility to be accepted, got %q", r.Error)
	}
	r = e.Apply(Command{Kind: CmdChoosePosition, Player: 1, Position: boardgeo.Pos(2, 2)})
	if !r.Accepted {
		t.Fatalf("expected ability target selection to be accepted, got %q", r.Error)
	}

	target := e.State.Board.CardByID(targetID)
	if target.CurrLife != target.Def().Life {
		t.Errorf("expected magic_immune to block all damage, got %d/%d life", target.CurrLife, target.Def().Life)
	}
	caster := e.State.Board.CardByID(casterID)
	if !caster.Tapped {
		t.Error("expected the caster to still pay its ability cost on a fizzled cast")
	}
}

func TestWebShotNegatesNextDamage(t *testing.T) {
	e := newMainEngine(t, 13)
	webberID := place(t, e, "pauk_yada", 1, boardgeo.Pos(2, 0))
	targetID := place(t, e, "kobold", 2, boardgeo.Pos(2, 3))

	r := e.Apply(Command{Kind: CmdUseAbility, Player: 1, CardID: webberID, AbilityID: "web_shot"})
	if !r.Accepted {
		t.Fatalf("expected UseAbility to be accepted, got %q", r.Error)
	}
	r = e.Apply(Command{Kind: CmdChoosePosition, Player: 1, Position: boardgeo.Pos(2, 3)})
	if !r.Accepted {
		t.Fatalf("expected ability target selection to be accepted, got %q", r.Error)
	}
	target := e.State.Board.CardByID(targetID)
	if !target.Webbed {
		t.Fatal("expected web_shot to web its target")
	}

	// A follow-up melee attack should be entirely absorbed by the web,
	// regardless of how favorable the roll is, and consume it.
	attackerID := place(t, e, "cyclops", 1, boardgeo.Pos(3, 3))
	e.InjectRolls(6, 1) // diff = 5, would otherwise be a strong hit
	r = e.Apply(Command{Kind: CmdAttack, Player: 1, CardID: attackerID, Position: boardgeo.Pos(2, 3)})
	if !r.Accepted {
		t.Fatalf("expected attack to be accepted, got %q", r.Error)
	}
	if target.CurrLife != target.Def().Life {
		t.Errorf("expected the web to absorb all damage from the attack, got %d/%d life", target.CurrLife, target.Def().Life)
	}
	if target.Webbed {
		t.Error("expected the web to be consumed after absorbing damage")
	}
}
