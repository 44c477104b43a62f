package match

import (
	"github.com/berserk-vibe/matchd/internal/ability"
	"github.com/berserk-vibe/matchd/internal/board"
	"github.com/berserk-vibe/matchd/internal/boardgeo"
	"github.com/berserk-vibe/matchd/internal/log"
)

// onTurnStart fires at the start of the current player's turn, after
// untap and armor reset.
func (e *Engine) onTurnStart(player int) {
	for _, c := range e.State.Board.AllCards(player) {
		for _, a := range c.Def().Abilities() {
			if a.Trigger != ability.TriggerOnTurnStart {
				continue
			}
			switch {
			case a.HealAmount > 0:
				e.healCard(c, a.HealAmount)
			case a.ID == "front_row_bonus":
				if boardgeo.RowNumber(c.Position, player) == 1 {
					c.TempRangedBonus += a.DamageBonus
				}
			case a.ID == "back_row_direct":
				if boardgeo.RowNumber(c.Position, player) == 3 {
					c.HasDirect = true
				}
			case a.ID == "axe_counter":
				if c.InFormation && c.Counters < c.Def().MaxCounters {
					c.Counters++
				}
			}
		}
	}
}

func (e *Engine) healCard(c *board.CardInstance, amount int) {
	if !c.IsAlive() {
		return
	}
	max := c.Def().Life
	before := c.CurrLife
	c.CurrLife += amount
	if c.CurrLife > max {
		c.CurrLife = max
	}
	if c.CurrLife != before {
		e.log(log.NewCardHealed(c.ID, c.CurrLife-before, c.Position))
	}
}

// onDefendChosen applies the defender buff once a defender is selected
// for combat: +2 attack and +1 dice lasting until the end of the
// owner's next turn.
func (e *Engine) onDefendChosen(defender *board.CardInstance) {
	defender.Defender = board.DefenderBuff{Attack: 2, Dice: 1, Turns: 1}
}

// fireOnKillTriggers runs ON_KILL handlers once damage from this combat
// has been applied but before deaths are resolved, so "just killed"
// checks still see curr_life == 0.
func (e *Engine) fireOnKillTriggers(attacker, defender *board.CardInstance) {
	if defender.IsAlive() {
		return
	}
	for _, a := range attacker.Def().Abilities() {
		if a.Trigger != ability.TriggerOnKill {
			continue
		}
		if a.ID == "scavenging" || a.EffectType == ability.EffectFullHealSelf {
			e.healCard(attacker, attacker.Def().Life)
		}
	}
}

// offerCounterShot opens SELECT_COUNTER_SHOT if the attacker has the
// ability and survived.
func (e *Engine) offerCounterShot(attacker, defender *board.CardInstance) {
	if !attacker.IsAlive() || !attacker.Def().HasAbility("counter_shot") {
		return
	}
	var targets []int
	for _, c := range e.State.Board.AllCards(opponent(attacker.Player)) {
		if c.Def().HasAbility("shot_immune") {
			continue
		}
		if boardgeo.ChebyshevDistance(attacker.Position, c.Position) >= 2 {
			targets = append(targets, c.Position)
		}
	}
	if len(targets) == 0 {
		return
	}
	inter := newInteraction(InteractionSelectCounterShot, attacker.Player)
	inter.ActorID = attacker.ID
	inter.ValidPositions = targets
	e.State.Interaction = inter
	e.log(log.NewInteractionStarted(string(inter.Kind), attacker.Player))
}

// ResolveCounterShot applies the counter_shot's fixed 2 damage to the
// chosen target.
func (e *Engine) ResolveCounterShot(player, targetPos int) error {
	s := e.State
	if s.Interaction == nil || s.Interaction.Kind != InteractionSelectCounterShot {
		return errNoSuchInteraction
	}
	if player != s.Interaction.ActingPlayer {
		return errNotYourTurn
	}
	target := s.Board.At(targetPos)
	if target == nil {
		return errInvalidTarget
	}
	e.applyDamage(target, 2, s.Interaction.ActorID)
	s.Interaction = nil
	e.log(log.NewInteractionEnded(string(InteractionSelectCounterShot)))
	e.resolveDeaths()
	e.recalculateFormations()
	e.checkWinner()
	return nil
}

// offerHealOnAttack opens CONFIRM_HEAL if the attacker is below full life
// after combat, has heal_on_attack, and has a card directly in front of it on
// the board. The heal amount is the front card's own medium attack stat.
func (e *Engine) offerHealOnAttack(attacker *board.CardInstance) {
	if !attacker.IsAlive() || attacker.CurrLife >= attacker.Def().Life {
		return
	}
	if !attacker.Def().HasAbility("heal_on_attack") {
		return
	}
	frontOffset := 5
	if attacker.Player != 1 {
		frontOffset = -5
	}
	frontPos := attacker.Position + frontOffset
	if frontPos < 0 || frontPos >= boardgeo.GroundCells {
		return
	}
	frontCard := e.State.Board.At(frontPos)
	if frontCard == nil {
		return
	}
	healAmount := frontCard.Def().Attack[1]
	if healAmount <= 0 {
		return
	}
	inter := newInteraction(InteractionConfirmHeal, attacker.Player)
	inter.ActorID = attacker.ID
	inter.Context["heal_amount"] = healAmount
	e.State.Interaction = inter
	e.log(log.NewInteractionStarted(string(inter.Kind), attacker.Player))
}

// ConfirmHeal resolves the CONFIRM_HEAL interaction.
func (e *Engine) ConfirmHeal(player int, accept bool) error {
	s := e.State
	if s.Interaction == nil || s.Interaction.Kind != InteractionConfirmHeal {
		return errNoSuchInteraction
	}
	if player != s.Interaction.ActingPlayer {
		return errNotYourTurn
	}
	c := s.Board.CardByID(s.Interaction.ActorID)
	healAmount, _ := s.Interaction.Context["heal_amount"].(int)
	s.Interaction = nil
	e.log(log.NewInteractionEnded(string(InteractionConfirmHeal)))
	if accept && c != nil && healAmount > 0 {
		e.healCard(c, healAmount)
	}
	return nil
}

// offerHellishStench opens CHOOSE_STENCH on the defender's owner if the
// attacker holds hellish_stench, the defender was untapped at roll time,
// and the attack connected.
func (e *Engine) offerHellishStench(attacker, defender *board.CardInstance, defenderWasTapped, attackHit bool) {
	if !defender.IsAlive() || !attacker.Def().HasAbility("hellish_stench") {
		return
	}
	if defenderWasTapped || !attackHit {
		return
	}
	inter := newInteraction(InteractionChooseStench, defender.Player)
	inter.ActorID = defender.ID
	e.State.Interaction = inter
	e.log(log.NewInteractionStarted(string(inter.Kind), defender.Player))
}

// ChooseStench resolves CHOOSE_STENCH: tap self or take 2 damage.
func (e *Engine) ChooseStench(player int, tapSelf bool) error {
	s := e.State
	if s.Interaction == nil || s.Interaction.Kind != InteractionChooseStench {
		return errNoSuchInteraction
	}
	if player != s.Interaction.ActingPlayer {
		return errNotYourTurn
	}
	c := s.Board.CardByID(s.Interaction.ActorID)
	s.Interaction = nil
	e.log(log.NewInteractionEnded(string(InteractionChooseStench)))
	if tapSelf {
		c.Tapped = true
	} else {
		e.applyDamage(c, 2, c.ID)
		e.resolveDeaths()
		e.recalculateFormations()
	}
	e.checkWinner()
	return nil
}

// resolveDeaths moves every card with curr_life <= 0 to its owner's
// graveyard, emitting a death event. VALHALLA is queued later, at the
// owner's turn start (queueValhallaForTurnStart).
func (e *Engine) resolveDeaths() {
	s := e.State
	visualIdx := 0
	for _, c := range s.Board.AllCards(0) {
		if c.IsAlive() {
			continue
		}
		e.log(log.NewCardDied(c.ID, c.Position, visualIdx))
		visualIdx++
		s.Board.SendToGraveyard(c)
	}
}

// recalculateFormations runs after every board mutation. A ground
// card is in_formation iff it has a formation ability and is
// orthogonally adjacent to an ally with a formation ability.
func (e *Engine) recalculateFormations() {
	board_ := e.State.Board
	for _, c := range board_.GroundCards(0) {
		wasFormation := c.InFormation
		c.InFormation = false
		if !hasFormationAbility(c) {
			continue
		}
		for _, pos := range boardgeo.OrthogonalNeighbors(c.Position) {
			ally := board_.At(pos)
			if ally != nil && ally.Player == c.Player && hasFormationAbility(ally) {
				c.InFormation = true
				break
			}
		}
		if c.InFormation && !wasFormation {
			e.refreshFormationArmor(c)
			e.log(log.NewFormationChanged(c.ID, true))
		} else if !c.InFormation && wasFormation {
			c.FormationArmorRemain = 0
			c.FormationArmorMax = 0
			e.log(log.NewFormationChanged(c.ID, false))
		}
	}
}

func hasFormationAbility(c *board.CardInstance) bool {
	for _, a := range c.Def().Abilities() {
		if a.IsFormation {
			return true
		}
	}
	return false
}

// refreshFormationArmor recomputes the formation armor cap while
// preserving remaining armor across identical recalculations.
func (e *Engine) refreshFormationArmor(c *board.CardInstance) {
	max := 0
	for _, a := range c.Def().Abilities() {
		if a.IsFormation && a.FormationArmorBonus > max {
			max = a.FormationArmorBonus
		}
	}
	if max == c.FormationArmorMax {
		return
	}
	delta := max - c.FormationArmorMax
	c.FormationArmorMax = max
	c.FormationArmorRemain += delta
	if c.FormationArmorRemain < 0 {
		c.FormationArmorRemain = 0
	}
}

// updateForcedAttackers recomputes which cards with must_attack_tapped
// have an adjacent tapped enemy.
func (e *Engine) updateForcedAttackers() {
	s := e.State
	s.ForcedAttackers = map[int][]int{}
	for _, c := range s.Board.GroundCards(0) {
		if !c.Def().HasAbility("must_attack_tapped") || c.Tapped {
			continue
		}
		var positions []int
		for _, pos := range boardgeo.OrthogonalNeighborsChebyshev1(c.Position) {
			enemy := s.Board.At(pos)
			if enemy != nil && enemy.Player != c.Player && enemy.Tapped {
				positions = append(positions, pos)
			}
		}
		if len(positions) > 0 {
			s.ForcedAttackers[c.ID] = positions
		}
	}
}

// checkWinner declares a winner once one player has no living cards on
// the board or in hand.
func (e *Engine) checkWinner() {
	s := e.State
	if s.Phase == PhaseGameOver {
		return
	}
	p1Alive := len(s.Board.AllCards(1)) > 0 || len(s.Hands[1].Cards) > 0
	p2Alive := len(s.Board.AllCards(2)) > 0 || len(s.Hands[2].Cards) > 0
	if p1Alive && p2Alive {
		return
	}
	s.Phase = PhaseGameOver
	switch {
	case p1Alive:
		s.Winner = 1
	case p2Alive:
		s.Winner = 2
	default:
		s.Winner = 0
	}
	e.log(log.NewGameOver(s.Winner))
}

// processValhalla pops the next queued Valhalla entry (if no interaction
// is already pending) and opens SELECT_VALHALLA_TARGET over living
// allies.
func (e *Engine) processValhalla() {
	s := e.State
	if s.Interaction != nil || len(s.PendingValhalla) == 0 {
		return
	}
	entry := s.PendingValhalla[0]
	s.PendingValhalla = s.PendingValhalla[1:]

	allies := s.Board.AllCards(entry.Player)
	if len(allies) == 0 {
		return
	}
	var positions []int
	for _, a := range allies {
		positions = append(positions, a.Position)
	}
	inter := newInteraction(InteractionSelectValhallaTgt, entry.Player)
	inter.Context["card_id"] = entry.CardID
	inter.ValidPositions = positions
	s.Interaction = inter
	e.log(log.NewInteractionStarted(string(inter.Kind), entry.Player))
}

// ResolveValhalla applies the dead card's Valhalla ability payload to the
// chosen living ally.
func (e *Engine) ResolveValhalla(player, targetPos int) error {
	s := e.State
	if s.Interaction == nil || s.Interaction.Kind != InteractionSelectValhallaTgt {
		return errNoSuchInteraction
	}
	if player != s.Interaction.ActingPlayer {
		return errNotYourTurn
	}
	target := s.Board.At(targetPos)
	if target == nil {
		return errInvalidTarget
	}
	cardID, _ := s.Interaction.Context["card_id"].(int)
	dead := s.Board.Graveyard(player)
	for _, c := range dead {
		if c.ID == cardID {
			for _, a := range c.Def().Abilities() {
				switch a.ID {
				case "valhalla_ova":
					target.TempDiceBonus += a.DiceBonusAttack
				case "valhalla_strike":
					target.TempAttackBonus += a.DamageBonus
				}
			}
			c.ValhallaTriggered = true
		}
	}
	s.Interaction = nil
	e.log(log.NewInteractionEnded(string(InteractionSelectValhallaTgt)))
	e.processValhalla()
	return nil
}
