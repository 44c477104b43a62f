// Package board owns the grid, the two flying zones, graveyards, and the
// per-match mutable CardInstance that lives in them — the tightly-coupled
// pair of board and card-instance state every match operates on.
package board

import (
	"github.com/berserk-vibe/matchd/internal/boardgeo"
	"github.com/berserk-vibe/matchd/internal/carddb"
)

// DefenderBuff is the temporary +attack/+dice bonus a card gains when it
// is chosen as a combat defender.
type DefenderBuff struct {
	Attack int
	Dice   int
	Turns  int // turns remaining; decremented at owner's turn end
}

// CardInstance is per-match mutable state for one card. The definition is
// not owned here; it is looked up by DefID on every access.
type CardInstance struct {
	ID     int
	DefID  string
	Player int // 1 or 2

	CurrLife int
	CurrMove int
	Tapped   bool
	Position int // -1 if not placed (hand/graveyard)
	FaceDown bool

	AbilityCooldowns map[string]int // ability id -> turns remaining

	TempAttackBonus int
	TempRangedBonus int
	TempDiceBonus   int
	HasDirect       bool

	Defender DefenderBuff

	KilledByEnemy    bool
	ValhallaTriggered bool

	Webbed   bool
	Stunned  bool
	Counters int

	InFormation           bool
	ArmorRemaining        int
	FormationArmorRemain  int
	FormationArmorMax     int

	CanAttackFlyer          bool
	CanAttackFlyerUntilTurn int

	restrictedStrike bool
}

// Def resolves this instance's card definition. Panics if the definition
// is missing — a CardInstance can never outlive its definition within one
// process, since registries are populated once at start and never mutated.
func (c *CardInstance) Def() *carddb.Def {
	return carddb.MustLookup(c.DefID)
}

// NewCardInstance creates a fresh instance from a definition, at full
// health/move, untapped, unplaced (Position -1 means "not on the board").
func NewCardInstance(id int, def *carddb.Def, player int) *CardInstance {
	return &CardInstance{
		ID:               id,
		DefID:            def.DefID,
		Player:           player,
		CurrLife:         def.Life,
		CurrMove:         def.Move,
		Position:         -1,
		AbilityCooldowns: map[string]int{},
		ArmorRemaining:   def.Armor,
		restrictedStrike: def.HasAbility("restricted_strike"),
	}
}

// IsAlive reports whether the card has positive remaining life.
func (c *CardInstance) IsAlive() bool {
	return c.CurrLife > 0
}

// CooldownRemaining returns the number of turns left before ability id can
// be used again.
func (c *CardInstance) CooldownRemaining(abilityID string) int {
	return c.AbilityCooldowns[abilityID]
}

// CanUseAbility reports whether a card may currently activate ability id:
// not tapped, not webbed, not stunned, and off cooldown.
func (c *CardInstance) CanUseAbility(abilityID string) bool {
	if c.Tapped || c.Webbed || c.Stunned {
		return false
	}
	return c.AbilityCooldowns[abilityID] <= 0
}

// IsFlying reports whether this instance currently occupies a flying zone.
func (c *CardInstance) IsFlying() bool {
	return boardgeo.IsFlyingZone(c.Position)
}
