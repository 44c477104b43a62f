package match

import (
	"fmt"

	"github.com/berserk-vibe/matchd/internal/ability"
	"github.com/berserk-vibe/matchd/internal/board"
	"github.com/berserk-vibe/matchd/internal/boardgeo"
	"github.com/berserk-vibe/matchd/internal/log"
)

// damageTier names the three attack-strength rungs a diff resolves to.
type damageTier int

const (
	tierNone damageTier = iota
	tierWeak
	tierMedium
	tierStrong
)

// tierOutcome is the result of looking up a diff in the damage-tier table.
type tierOutcome struct {
	AtkTier    damageTier
	CounterTier damageTier
	IsExchange bool
}

// diffTier implements the combat damage-tier table exactly as specified:
// the unique source of truth for every (atk_roll, def_roll, bonus) tuple.
func diffTier(diff, atkRoll int) tierOutcome {
	switch {
	case diff >= 5:
		return tierOutcome{tierStrong, tierNone, false}
	case diff == 4:
		return tierOutcome{tierStrong, tierWeak, true}
	case diff == 3:
		return tierOutcome{tierMedium, tierNone, false}
	case diff == 2:
		return tierOutcome{tierMedium, tierWeak, true}
	case diff == 1:
		return tierOutcome{tierWeak, tierNone, false}
	case diff == 0 && atkRoll >= 5:
		return tierOutcome{tierNone, tierWeak, false}
	case diff == 0:
		return tierOutcome{tierWeak, tierNone, false}
	case diff == -1:
		return tierOutcome{tierWeak, tierNone, false}
	case diff == -2:
		return tierOutcome{tierNone, tierNone, false}
	case diff == -3:
		return tierOutcome{tierNone, tierWeak, false}
	case diff == -4:
		return tierOutcome{tierWeak, tierMedium, true}
	default: // <= -5
		return tierOutcome{tierNone, tierMedium, false}
	}
}

func clampDie(v int) int {
	if v < 1 {
		return 1
	}
	if v > 6 {
		return 6
	}
	return v
}

// Attack initiates combat.
func (e *Engine) Attack(player, attackerID, targetPos int) error {
	s := e.State
	if s.Phase != PhaseMain {
		return errPhase
	}
	if s.Interaction != nil || s.PriorityPhase {
		return errBusy
	}
	if player != s.CurrentPlayer {
		return errNotYourTurn
	}
	attacker := s.Board.CardByID(attackerID)
	if attacker == nil || attacker.Player != player || !attacker.IsAlive() {
		return errInvalidCard
	}
	if attacker.Tapped || attacker.Webbed || attacker.Stunned {
		return errCardCannotAct
	}

	target := s.Board.At(targetPos)
	if target == nil {
		return errInvalidTarget
	}

	if attacker.FaceDown {
		e.revealCard(attacker)
	}

	if target.Player == attacker.Player {
		key := attacker.ID
		if s.friendlyFireTarget != nil && *s.friendlyFireTarget == key && s.friendlyFirePos == targetPos {
			s.friendlyFireTarget = nil
		} else {
			v := key
			s.friendlyFireTarget = &v
			s.friendlyFirePos = targetPos
			e.log(log.NewLogMessage("friendly fire requires confirmation"))
			return nil
		}
	}

	if !attacker.HasDirect {
		defenders := s.Board.GetValidDefenders(attacker, targetPos)
		if len(defenders) > 0 {
			inter := newInteraction(InteractionSelectDefender, opponent(attacker.Player))
			inter.ActorID = attacker.ID
			inter.TargetID = target.ID
			inter.ValidPositions = defenders
			s.Interaction = inter
			e.log(log.NewInteractionStarted(string(inter.Kind), opponent(attacker.Player)))
			return nil
		}
	}

	if target.FaceDown {
		e.revealCard(target)
	}
	return e.beginDiceRoll(attacker, target, nil)
}

// ChooseDefender resolves a pending SELECT_DEFENDER interaction.
func (e *Engine) ChooseDefender(player, defenderPos int) error {
	s := e.State
	if s.Interaction == nil || s.Interaction.Kind != InteractionSelectDefender {
		return errNoSuchInteraction
	}
	if player != s.Interaction.ActingPlayer {
		return errNotYourTurn
	}
	attacker := s.Board.CardByID(s.Interaction.ActorID)
	originalTarget := s.Board.CardByID(s.Interaction.TargetID)
	valid := defenderPos == -1 // -1 = skip
	for _, p := range s.Interaction.ValidPositions {
		if p == defenderPos {
			valid = true
		}
	}
	if !valid {
		return errInvalidTarget
	}
	s.Interaction = nil
	e.log(log.NewInteractionEnded(string(InteractionSelectDefender)))

	var defender *board.CardInstance
	if defenderPos >= 0 {
		defender = s.Board.At(defenderPos)
	} else {
		defender = originalTarget
	}
	if defender.FaceDown {
		e.revealCard(defender)
	}
	if defenderPos >= 0 {
		e.onDefendChosen(defender)
	}
	return e.beginDiceRoll(attacker, defender, nil)
}

func (e *Engine) revealCard(c *board.CardInstance) {
	c.FaceDown = false
	e.log(log.NewCardRevealed(c.ID, c.DefID))
}

// beginDiceRoll rolls attacker/defender dice, opens the priority window if
// applicable, and otherwise resolves damage immediately.
func (e *Engine) beginDiceRoll(attacker, defender *board.CardInstance, sourceAbility *ability.Def) error {
	dc := &DiceContext{
		Kind:              "combat",
		AttackerID:        attacker.ID,
		DefenderID:        defender.ID,
		DefenderWasTapped: defender.Tapped,
		Extra:             map[string]any{},
	}

	dc.AtkModifier = attackDiceModifier(attacker)
	dc.AtkRoll = clampDie(e.rollDie())

	if !defender.Tapped {
		dc.DefModifier = defenseDiceModifier(defender)
		dc.DefRoll = clampDie(e.rollDie())
		dc.DiceMatter = true
	}

	e.State.PendingDiceRoll = dc

	if e.hasLegalInstant(attacker.Player, dc) || e.hasLegalInstant(defender.Player, dc) {
		e.openPriorityWindow(attacker.Player)
		return nil
	}
	return e.resolveCombat()
}

func attackDiceModifier(c *board.CardInstance) int {
	mod := c.TempDiceBonus
	if c.Def().HasAbility("attack_exp") {
		mod++
	}
	if boardgeo.IsEdgeColumn(c.Position) && c.Def().HasAbility("edge_column_attack") {
		mod++
	}
	if c.InFormation {
		mod += c.Def().Abilities()[0].FormationDiceBonus
	}
	return mod
}

func defenseDiceModifier(c *board.CardInstance) int {
	mod := c.TempDiceBonus + c.Defender.Dice
	if c.Def().HasAbility("defense_exp") {
		mod++
	}
	return mod
}

// hasLegalInstant reports whether player has any untapped card with a
// legal ON_DICE_ROLL instant ability, excluding the two combatants and
// anything already placed on the stack this window.
func (e *Engine) hasLegalInstant(player int, dc *DiceContext) bool {
	for _, c := range e.State.Board.AllCards(player) {
		if c.ID == dc.AttackerID || c.ID == dc.DefenderID {
			continue
		}
		for _, a := range c.Def().Abilities() {
			if a.IsInstant && a.Trigger == ability.TriggerOnDiceRoll && c.CanUseAbility(a.ID) {
				return true
			}
		}
	}
	return false
}

// ExplainNoInstants returns one line per card of player's that holds an
// ON_DICE_ROLL instant ability, naming the reason it was not offered a
// priority window: dead, tapped, webbed, stunned, still on cooldown, or
// already occupying one of the two combat slots. Call only after a dice
// roll found no eligible instant anywhere, to help a content author find
// a missing luck-style ability without re-deriving the filter by hand.
func (e *Engine) ExplainNoInstants(player int) []string {
	var dc *DiceContext
	if e.State.PendingDiceRoll != nil {
		dc = e.State.PendingDiceRoll
	}
	var out []string
	for _, c := range e.State.Board.AllCards(player) {
		for _, a := range c.Def().Abilities() {
			if !a.IsInstant || a.Trigger != ability.TriggerOnDiceRoll {
				continue
			}
			switch {
			case !c.IsAlive():
				out = append(out, fmt.Sprintf("%s: dead", c.Def().Name))
			case dc != nil && (c.ID == dc.AttackerID || c.ID == dc.DefenderID):
				out = append(out, fmt.Sprintf("%s: already a combatant", c.Def().Name))
			case c.Tapped:
				out = append(out, fmt.Sprintf("%s: tapped", c.Def().Name))
			case c.Webbed:
				out = append(out, fmt.Sprintf("%s: webbed", c.Def().Name))
			case c.Stunned:
				out = append(out, fmt.Sprintf("%s: stunned", c.Def().Name))
			case c.CooldownRemaining(a.ID) > 0:
				out = append(out, fmt.Sprintf("%s: %s on cooldown for %d more turn(s)", c.Def().Name, a.ID, c.CooldownRemaining(a.ID)))
			}
		}
	}
	return out
}

func (e *Engine) openPriorityWindow(currentPlayer int) {
	s := e.State
	s.PriorityPhase = true
	s.PriorityPassed = map[int]bool{}
	if e.hasLegalInstant(currentPlayer, s.PendingDiceRoll) {
		s.PriorityPlayer = currentPlayer
	} else {
		s.PriorityPlayer = opponent(currentPlayer)
	}
	e.log(log.NewLogMessage("priority window opened"))
}

// UseInstant places an instant ability onto the stack, transferring
// priority to the opponent.
func (e *Engine) UseInstant(player, cardID int, abilityID, option string) error {
	s := e.State
	if !s.PriorityPhase || player != s.PriorityPlayer {
		return errNotYourTurn
	}
	card := s.Board.CardByID(cardID)
	if card == nil || card.Player != player || !card.CanUseAbility(abilityID) {
		return errInvalidCard
	}
	def := ability.Get(abilityID)
	if def == nil || !def.IsInstant {
		return errInvalidAbility
	}
	card.Tapped = true
	card.AbilityCooldowns[abilityID] = def.Cooldown

	item := StackItem{SourceID: cardID, AbilityID: abilityID, Player: player, Payload: map[string]any{"option": option}}
	s.InstantStack = append(s.InstantStack, item)
	s.PriorityPassed = map[int]bool{}
	s.PriorityPlayer = opponent(player)
	e.log(log.NewStackPushed(cardID, abilityID))
	return nil
}

// PassPriority advances or closes the priority window.
func (e *Engine) PassPriority(player int) error {
	s := e.State
	if !s.PriorityPhase || player != s.PriorityPlayer {
		return errNotYourTurn
	}
	s.PriorityPassed[player] = true
	if len(s.InstantStack) == 0 && len(s.PriorityPassed) >= 2 {
		return e.closePriorityWindow()
	}
	if len(s.InstantStack) > 0 {
		other := opponent(player)
		if s.PriorityPassed[other] {
			return e.closePriorityWindow()
		}
		s.PriorityPlayer = other
		return nil
	}
	s.PriorityPlayer = opponent(player)
	if s.PriorityPassed[s.PriorityPlayer] {
		return e.closePriorityWindow()
	}
	return nil
}

func (e *Engine) closePriorityWindow() error {
	s := e.State
	for len(s.InstantStack) > 0 {
		top := s.InstantStack[len(s.InstantStack)-1]
		s.InstantStack = s.InstantStack[:len(s.InstantStack)-1]
		e.resolveLuckInstant(top)
		e.log(log.NewStackResolved(top.SourceID, top.AbilityID))
	}
	s.PriorityPhase = false
	s.PriorityPassed = map[int]bool{}
	e.log(log.NewLogMessage("priority window closed"))
	return e.resolveCombatOrAbility()
}

// resolveLuckInstant applies the only registered instant ability, luck,
// with its six atk_*/def_* options.
func (e *Engine) resolveLuckInstant(item StackItem) {
	dc := e.State.PendingDiceRoll
	if dc == nil {
		return
	}
	option, _ := item.Payload["option"].(string)
	switch option {
	case "atk_plus1":
		dc.AtkModifier++
	case "atk_minus1":
		dc.AtkModifier--
	case "atk_reroll":
		old := dc.AtkRoll
		dc.AtkRoll = clampDie(e.rollDie())
		e.log(log.NewLogMessage("attacker rerolled"))
		_ = old
	case "def_plus1":
		if dc.Kind == "combat" {
			dc.DefModifier++
		}
	case "def_minus1":
		if dc.Kind == "combat" {
			dc.DefModifier--
		}
	case "def_reroll":
		if dc.Kind == "combat" {
			dc.DefRoll = clampDie(e.rollDie())
			e.log(log.NewLogMessage("defender rerolled"))
		}
	}
}

// resolveCombatOrAbility dispatches the pending DiceContext back to
// whichever pipeline opened it.
func (e *Engine) resolveCombatOrAbility() error {
	dc := e.State.PendingDiceRoll
	if dc == nil {
		return nil
	}
	switch dc.Kind {
	case "combat":
		return e.resolveCombat()
	case "ranged", "magic":
		return e.resolveRangedOrMagic()
	}
	return nil
}

// resolveCombat applies the damage-tier table and, if an exchange
// applies, opens CHOOSE_EXCHANGE before finishing.
func (e *Engine) resolveCombat() error {
	s := e.State
	dc := s.PendingDiceRoll
	attacker := s.Board.CardByID(dc.AttackerID)
	defender := s.Board.CardByID(dc.DefenderID)

	diff := (dc.AtkRoll + dc.AtkModifier) - (dc.DefRoll + dc.DefModifier)
	outcome := diffTier(diff, dc.AtkRoll)

	e.log(log.NewDiceRolled(attacker.ID, dc.AtkRoll, defender.ID, dc.DefRoll))

	if outcome.IsExchange && !dc.ExchangeResolved {
		acting := attacker.Player
		if diff < 0 {
			acting = defender.Player
		}
		inter := newInteraction(InteractionChooseExchange, acting)
		inter.ActorID = attacker.ID
		inter.TargetID = defender.ID
		inter.Context["diff"] = diff
		s.Interaction = inter
		e.log(log.NewInteractionStarted(string(inter.Kind), acting))
		return nil
	}

	return e.finishCombat(attacker, defender, outcome, diff, "full")
}

// ChooseExchange resolves the CHOOSE_EXCHANGE interaction.
func (e *Engine) ChooseExchange(player int, reduced bool) error {
	s := e.State
	if s.Interaction == nil || s.Interaction.Kind != InteractionChooseExchange {
		return errNoSuchInteraction
	}
	if player != s.Interaction.ActingPlayer {
		return errNotYourTurn
	}
	attacker := s.Board.CardByID(s.Interaction.ActorID)
	defender := s.Board.CardByID(s.Interaction.TargetID)
	diff := s.Interaction.Context["diff"].(int)
	outcome := diffTier(diff, s.PendingDiceRoll.AtkRoll)
	s.Interaction = nil
	e.log(log.NewInteractionEnded(string(InteractionChooseExchange)))

	mode := "full"
	if reduced {
		mode = "reduced"
		outcome.CounterTier, outcome.AtkTier = cancelOpposing(diff, outcome)
	}
	s.PendingDiceRoll.ExchangeResolved = true
	return e.finishCombat(attacker, defender, outcome, diff, mode)
}

func lowerTier(t damageTier) damageTier {
	if t > tierWeak {
		return t - 1
	}
	return tierNone
}

// cancelOpposing implements the "reduced" exchange choice: the side with
// advantage lowers their own tier by one and cancels the opposing strike.
func cancelOpposing(diff int, o tierOutcome) (counter, atk damageTier) {
	if diff > 0 {
		return tierNone, lowerTier(o.AtkTier)
	}
	return lowerTier(o.CounterTier), tierNone
}

func tierDamage(def *board.CardInstance, t damageTier) int {
	if t == tierNone {
		return 0
	}
	return def.Def().Attack[t-1]
}

// finishCombat applies damage for both the attacker's strike and any
// counter, runs post-combat triggers, and resolves deaths.
func (e *Engine) finishCombat(attacker, defender *board.CardInstance, outcome tierOutcome, diff int, mode string) error {
	s := e.State

	atkDamage := tierDamage(attacker, outcome.AtkTier)
	attackHit := atkDamage > 0
	if attackHit {
		e.applyDamage(defender, e.computeMeleeDamage(attacker, defender, atkDamage), attacker.ID)
	}
	if !defender.Tapped && outcome.CounterTier != tierNone {
		counterDamage := tierDamage(defender, outcome.CounterTier)
		if counterDamage > 0 {
			e.applyDamage(attacker, e.computeMeleeDamage(defender, attacker, counterDamage), defender.ID)
		}
	}

	s.LastCombat = &CombatResult{
		AttackerID: attacker.ID, DefenderID: defender.ID,
		AttackerTier: int(outcome.AtkTier), CounterTier: int(outcome.CounterTier),
		IsExchange: outcome.IsExchange,
		AttackerDied: !attacker.IsAlive(), DefenderDied: !defender.IsAlive(),
	}
	defenderWasTapped := s.PendingDiceRoll.DefenderWasTapped
	s.PendingDiceRoll = nil

	e.fireOnKillTriggers(attacker, defender)
	e.offerCounterShot(attacker, defender)
	e.offerHealOnAttack(attacker)
	e.offerHellishStench(attacker, defender, defenderWasTapped, attackHit)
	e.resolveDeaths()
	e.recalculateFormations()

	attacker.Tapped = true
	e.updateForcedAttackers()
	e.checkWinner()
	return nil
}

// computeMeleeDamage applies the full modifier chain: temp/defender-buff
// and formation bonuses, element bonus, then anti_magic, damage_reduction,
// web, and armor — in that order.
func (e *Engine) computeMeleeDamage(attacker, defender *board.CardInstance, base int) int {
	dmg := base
	dmg += attacker.TempAttackBonus
	dmg += attacker.Defender.Attack
	if attacker.InFormation {
		for _, a := range attacker.Def().Abilities() {
			if a.IsFormation {
				dmg += a.FormationAttackBonus
			}
		}
	}
	dmg += elementBonus(attacker, defender)
	if dmg < 0 {
		dmg = 0
	}

	if hasMagicAbility(defender) {
		dmg++
	}
	dmg -= damageReduction(attacker, defender, tierFromDamage(attacker, base))
	if dmg < 0 {
		dmg = 0
	}

	if defender.Webbed {
		defender.Webbed = false
		return 0
	}

	dmg = absorbArmor(defender, dmg)
	return dmg
}

func tierFromDamage(defender *board.CardInstance, base int) damageTier {
	for i, v := range defender.Def().Attack {
		if v == base {
			return damageTier(i + 1)
		}
	}
	return tierWeak
}

func elementBonus(attacker, defender *board.CardInstance) int {
	for _, a := range attacker.Def().Abilities() {
		if a.BonusDamageVsElement > 0 && defender.Def().Element.String() == a.TargetElement {
			return a.BonusDamageVsElement
		}
	}
	return 0
}

func hasMagicAbility(c *board.CardInstance) bool {
	for _, a := range c.Def().Abilities() {
		if a.IsMagic {
			return true
		}
	}
	return false
}

func damageReduction(attacker, defender *board.CardInstance, tier damageTier) int {
	reduction := 0
	for _, a := range defender.Def().Abilities() {
		switch {
		case a.DamageReduction > 0 && a.CostThreshold > 0:
			if attacker.Def().Cost <= a.CostThreshold {
				reduction += a.DamageReduction
			}
		case a.DamageReduction > 0 && a.ID == "diagonal_defense":
			if boardgeo.IsDiagonalNeighbor(attacker.Position, defender.Position) {
				reduction += a.DamageReduction
			}
		case a.DamageReduction > 0 && a.ID == "steppe_defense":
			if attacker.Def().Element == 4 { // Mountain == steppe-opposing per content
				reduction += a.DamageReduction
			}
		case a.DamageReduction > 0 && a.ID == "center_column_defense":
			if boardgeo.IsCenterColumn(defender.Position) && tier == tierWeak {
				reduction += a.DamageReduction
			}
		}
	}
	return reduction
}

func absorbArmor(c *board.CardInstance, dmg int) int {
	if c.FormationArmorRemain > 0 {
		absorbed := min(c.FormationArmorRemain, dmg)
		c.FormationArmorRemain -= absorbed
		dmg -= absorbed
	}
	if c.ArmorRemaining > 0 && dmg > 0 {
		absorbed := min(c.ArmorRemaining, dmg)
		c.ArmorRemaining -= absorbed
		dmg -= absorbed
	}
	return dmg
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// applyDamage lowers curr_life and emits CardDamaged.
func (e *Engine) applyDamage(c *board.CardInstance, amount, sourceID int) {
	if amount <= 0 {
		return
	}
	c.CurrLife -= amount
	if c.CurrLife < 0 {
		c.CurrLife = 0
	}
	if c.CurrLife == 0 {
		if source := e.State.Board.CardByID(sourceID); source != nil && source.Player != c.Player {
			c.KilledByEnemy = true
		}
	}
	e.log(log.NewCardDamaged(c.ID, amount, c.Position, sourceID))
}
