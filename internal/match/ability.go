package match

import (
	"github.com/berserk-vibe/matchd/internal/ability"
	"github.com/berserk-vibe/matchd/internal/board"
	"github.com/berserk-vibe/matchd/internal/boardgeo"
	"github.com/berserk-vibe/matchd/internal/log"
)

// abilityHandler is a bespoke resolution function keyed by ability ID,
// used when the data-driven effect_type fields aren't expressive enough.
// Registered via RegisterHandler (this package's own init registers
// borg_strike), dispatched instead of the generic effect_type switch when
// present.
type abilityHandler func(e *Engine, caster, target *board.CardInstance)

var abilityHandlers = map[string]abilityHandler{}

// RegisterHandler installs a bespoke resolution function for an ability
// ID. This package's init calls it for borg_strike; package content
// registers no handlers.
func RegisterHandler(abilityID string, h abilityHandler) {
	abilityHandlers[abilityID] = h
}

// targeter is a per-ability override of the generic range/min_range/
// target_type filter — one of the three parallel registries alongside
// the handler and definition registries.
type targeter func(e *Engine, caster *board.CardInstance, def *ability.Def) []int

var abilityTargeters = map[string]targeter{}

// RegisterTargeter installs a bespoke target-filtering function, used
// instead of legalAbilityTargets for abilities whose range rule doesn't
// fit the generic Manhattan/Chebyshev/target_type filter.
func RegisterTargeter(abilityID string, t targeter) {
	abilityTargeters[abilityID] = t
}

// movementShotTargets implements the filter for the movement-shot
// ability: ground targets within Manhattan <=3 and Chebyshev >=2, plus
// every enemy flyer regardless of distance.
func movementShotTargets(e *Engine, caster *board.CardInstance, def *ability.Def) []int {
	var out []int
	enemy := opponent(caster.Player)
	for _, c := range e.State.Board.GroundCards(enemy) {
		if boardgeo.ManhattanDistance(caster.Position, c.Position) <= 3 &&
			boardgeo.ChebyshevDistance(caster.Position, c.Position) >= 2 {
			out = append(out, c.Position)
		}
	}
	for _, c := range e.State.Board.FlyingCards(enemy) {
		out = append(out, c.Position)
	}
	return out
}

func init() {
	RegisterTargeter("movement_shot", movementShotTargets)
	RegisterHandler("borg_strike", borgStrikeHandler)
}

// borgStrikeHandler spends one counter for 3 fixed damage, stunning the
// target instead of just damaging it if the target was already tapped.
func borgStrikeHandler(e *Engine, caster, target *board.CardInstance) {
	caster.Counters--
	if caster.Counters < 0 {
		caster.Counters = 0
	}
	if target.Tapped {
		target.Stunned = true
	}
	e.applyDamage(target, 3, caster.ID)
}

// UseAbility validates and begins resolving an activated ability.
func (e *Engine) UseAbility(player, casterID int, abilityID string) error {
	s := e.State
	if s.Interaction != nil || s.PriorityPhase {
		return errBusy
	}
	if len(s.ForcedAttackers) > 0 {
		return errForcedAttackers
	}
	caster := s.Board.CardByID(casterID)
	if caster == nil || caster.Player != player || !caster.IsAlive() {
		return errInvalidCard
	}
	def := ability.Get(abilityID)
	if def == nil || def.AbilityType != ability.TypeActive {
		return errInvalidAbility
	}
	if !caster.CanUseAbility(abilityID) {
		return errCardCannotAct
	}

	if def.RequiresFormation && !caster.InFormation {
		return errInvalidAbility
	}
	if def.RequiresCounters > 0 && caster.Counters < def.RequiresCounters {
		return errInvalidAbility
	}

	if def.SpendsCounters {
		inter := newInteraction(InteractionSelectCounters, player)
		inter.ActorID = casterID
		inter.Context["ability_id"] = abilityID
		inter.MinAmount = 0
		inter.MaxAmount = caster.Counters
		s.Interaction = inter
		e.log(log.NewInteractionStarted(string(inter.Kind), player))
		return nil
	}

	return e.beginAbilityTargeting(caster, def, 0)
}

// ChooseCounters resolves a SELECT_COUNTERS interaction, then proceeds to
// target selection for the counter-spending ability.
func (e *Engine) ChooseCounters(player, amount int) error {
	s := e.State
	if s.Interaction == nil || s.Interaction.Kind != InteractionSelectCounters {
		return errNoSuchInteraction
	}
	if player != s.Interaction.ActingPlayer {
		return errNotYourTurn
	}
	if amount < s.Interaction.MinAmount || amount > s.Interaction.MaxAmount {
		return errInvalidTarget
	}
	abilityID := s.Interaction.Context["ability_id"].(string)
	casterID := s.Interaction.ActorID
	s.Interaction = nil
	e.log(log.NewInteractionEnded(string(InteractionSelectCounters)))

	caster := s.Board.CardByID(casterID)
	def := ability.Get(abilityID)
	return e.beginAbilityTargeting(caster, def, amount)
}

func (e *Engine) beginAbilityTargeting(caster *board.CardInstance, def *ability.Def, countersSpent int) error {
	if def.TargetType == ability.TargetSelf || def.TargetType == ability.TargetNone {
		return e.resolveAbility(caster, caster, def, countersSpent)
	}

	var targets []int
	if t, ok := abilityTargeters[def.ID]; ok {
		targets = t(e, caster, def)
	} else {
		targets = e.legalAbilityTargets(caster, def)
	}
	if len(targets) == 0 {
		// No legal targets: the ability fizzles, still pays its cost.
		e.payAbilityCost(caster, def)
		return nil
	}

	kind := InteractionSelectAbilityTarget
	if def.ID == "movement_shot" {
		kind = InteractionSelectMovementShot
	}
	inter := newInteraction(kind, caster.Player)
	inter.ActorID = caster.ID
	inter.ValidPositions = targets
	inter.Context["ability_id"] = def.ID
	inter.Context["counters_spent"] = countersSpent
	e.State.Interaction = inter
	e.log(log.NewInteractionStarted(string(inter.Kind), caster.Player))
	return nil
}

// legalAbilityTargets pre-filters positions by range, min_range, and
// target_type.
func (e *Engine) legalAbilityTargets(caster *board.CardInstance, def *ability.Def) []int {
	var out []int
	for _, c := range e.State.Board.AllCards(0) {
		if c.ID == caster.ID {
			continue
		}
		switch def.TargetType {
		case ability.TargetAlly:
			if c.Player != caster.Player {
				continue
			}
		case ability.TargetEnemy:
			if c.Player == caster.Player {
				continue
			}
		case ability.TargetAny:
			// no restriction
		default:
			continue
		}
		if def.TargetMustBeTapped && !c.Tapped {
			continue
		}
		if def.TargetNotFlying && c.IsFlying() {
			continue
		}
		if def.RequiresDamaged && c.CurrLife >= c.Def().Life {
			continue
		}

		if c.IsFlying() && !def.CanTargetFlying {
			continue
		}
		dist := boardgeo.ManhattanDistance(caster.Position, c.Position)
		if c.IsFlying() {
			dist = 0 // flying targets bypass Manhattan range per can_target_flying
		}
		if def.Range > 0 && dist > def.Range {
			continue
		}
		if def.MinRange > 0 && boardgeo.ChebyshevDistance(caster.Position, c.Position) < def.MinRange {
			continue
		}
		out = append(out, c.Position)
	}
	return out
}

// ChooseAbilityTarget resolves SELECT_ABILITY_TARGET.
func (e *Engine) ChooseAbilityTarget(player, targetPos int) error {
	s := e.State
	if s.Interaction == nil ||
		(s.Interaction.Kind != InteractionSelectAbilityTarget && s.Interaction.Kind != InteractionSelectMovementShot) {
		return errNoSuchInteraction
	}
	if player != s.Interaction.ActingPlayer {
		return errNotYourTurn
	}
	valid := false
	for _, p := range s.Interaction.ValidPositions {
		if p == targetPos {
			valid = true
		}
	}
	if !valid {
		return errInvalidTarget
	}
	abilityID := s.Interaction.Context["ability_id"].(string)
	countersSpent, _ := s.Interaction.Context["counters_spent"].(int)
	caster := s.Board.CardByID(s.Interaction.ActorID)
	target := s.Board.At(targetPos)
	kind := s.Interaction.Kind
	s.Interaction = nil
	e.log(log.NewInteractionEnded(string(kind)))

	def := ability.Get(abilityID)
	return e.resolveAbility(caster, target, def, countersSpent)
}

// CancelAbilityTarget clears a pending ability-target interaction without
// resolving it. The only interaction kind that supports cancellation.
func (e *Engine) CancelAbilityTarget(player int) error {
	s := e.State
	if s.Interaction == nil || s.Interaction.Kind != InteractionSelectAbilityTarget {
		return errNoSuchInteraction
	}
	if player != s.Interaction.ActingPlayer {
		return errNotYourTurn
	}
	s.Interaction = nil
	e.log(log.NewInteractionEnded(string(InteractionSelectAbilityTarget)))
	return nil
}

// resolveAbility dispatches to a bespoke handler if one is registered,
// otherwise executes the ability's data-driven effect, and finally pays
// its cost.
func (e *Engine) resolveAbility(caster, target *board.CardInstance, def *ability.Def, countersSpent int) error {
	if def.RangedDamage != (ability.DamageTriple{}) {
		return e.beginRangedOrMagic(caster, target, def, "ranged", countersSpent)
	}
	if def.MagicDamage != (ability.DamageTriple{}) {
		return e.beginRangedOrMagic(caster, target, def, "magic", countersSpent)
	}

	if h, ok := abilityHandlers[def.ID]; ok {
		h(e, caster, target)
	} else {
		e.applyDataDrivenEffect(caster, target, def, countersSpent)
	}

	e.payAbilityCost(caster, def)
	e.resolveDeaths()
	e.recalculateFormations()
	e.checkWinner()
	return nil
}

func (e *Engine) payAbilityCost(caster *board.CardInstance, def *ability.Def) {
	caster.Tapped = true
	caster.AbilityCooldowns[def.ID] = def.Cooldown
}

// applyDataDrivenEffect executes one of the effect_type bodies for
// abilities with no bespoke handler.
func (e *Engine) applyDataDrivenEffect(caster, target *board.CardInstance, def *ability.Def, countersSpent int) {
	switch def.EffectType {
	case ability.EffectHealTarget:
		e.healCard(target, def.HealAmount)
	case ability.EffectHealSelf:
		e.healCard(caster, def.HealAmount)
	case ability.EffectFullHealSelf:
		e.healCard(caster, caster.Def().Life)
	case ability.EffectBuffAttack:
		bonus := def.DamageBonus
		if def.SpendsCounters {
			bonus *= countersSpent
		}
		target.TempAttackBonus += bonus
	case ability.EffectBuffRanged:
		target.TempRangedBonus += def.DamageBonus
	case ability.EffectBuffDice:
		target.TempDiceBonus += def.DiceBonusAttack
	case ability.EffectGrantDirect:
		target.HasDirect = true
	case ability.EffectGainCounter:
		if target.Counters < target.Def().MaxCounters {
			target.Counters++
		}
	case ability.EffectApplyWebbed:
		target.Webbed = true
	}
	if def.DamageAmount > 0 {
		e.applyDamage(target, def.DamageAmount, caster.ID)
	}
}

// beginRangedOrMagic rolls the attacker only and routes through the
// priority window exactly like melee combat.
func (e *Engine) beginRangedOrMagic(caster, target *board.CardInstance, def *ability.Def, kind string, countersSpent int) error {
	dc := &DiceContext{
		Kind:       kind,
		AttackerID: caster.ID,
		TargetID:   target.ID,
		AbilityID:  def.ID,
		RangedType: def.RangedType,
		Extra:      map[string]any{"counters_spent": countersSpent},
	}
	dc.AtkModifier = attackDiceModifier(caster)
	dc.AtkRoll = clampDie(e.rollDie())
	e.State.PendingDiceRoll = dc

	if e.hasLegalInstant(caster.Player, dc) || e.hasLegalInstant(target.Player, dc) {
		e.openPriorityWindow(caster.Player)
		return nil
	}
	return e.resolveRangedOrMagic()
}

// resolveRangedOrMagic applies ranged/magic damage once dice (and any
// priority-window instants) have settled.
func (e *Engine) resolveRangedOrMagic() error {
	s := e.State
	dc := s.PendingDiceRoll
	caster := s.Board.CardByID(dc.AttackerID)
	target := s.Board.CardByID(dc.TargetID)
	def := ability.Get(dc.AbilityID)

	e.log(log.NewDiceRolled(caster.ID, dc.AtkRoll, 0, 0))

	tier := rollTier(dc.AtkRoll + dc.AtkModifier)
	var dmg int
	isMagic := dc.Kind == "magic"
	if isMagic {
		if hasAbilityID(target, "magic_immune") {
			s.PendingDiceRoll = nil
			e.payAbilityCost(caster, def)
			return nil
		}
		dmg = def.MagicDamage[tier-1]
		if def.SpendsCounters {
			if spent, ok := dc.Extra["counters_spent"].(int); ok {
				dmg += spent
				caster.Counters -= spent
				if caster.Counters < 0 {
					caster.Counters = 0
				}
			}
		}
	} else {
		dmg = def.RangedDamage[tier-1]
		dmg += caster.TempRangedBonus
		if def.BonusRangedVsDefensive && (target.ArmorRemaining > 0 || hasAbilityID(target, "ova") || hasAbilityID(target, "ovz")) {
			dmg += def.DamageBonus
		}
	}
	if dmg < 0 {
		dmg = 0
	}

	if !isMagic {
		dmg -= damageReduction(caster, target, tier)
		if dmg < 0 {
			dmg = 0
		}
		if target.Webbed {
			target.Webbed = false
			dmg = 0
		}
		dmg = absorbArmor(target, dmg)
	} else if def.IsHit {
		dmg -= damageReduction(caster, target, tier)
		if dmg < 0 {
			dmg = 0
		}
	}

	e.applyDamage(target, dmg, caster.ID)
	s.PendingDiceRoll = nil
	e.fireOnKillTriggers(caster, target)
	e.payAbilityCost(caster, def)
	e.resolveDeaths()
	e.recalculateFormations()
	e.checkWinner()
	return nil
}

func rollTier(total int) damageTier {
	switch {
	case total >= 5:
		return tierStrong
	case total >= 3:
		return tierMedium
	default:
		return tierWeak
	}
}

func hasAbilityID(c *board.CardInstance, id string) bool {
	return c.Def().HasAbility(id)
}
