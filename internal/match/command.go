package match

import (
	"github.com/berserk-vibe/matchd/internal/ability"
	"github.com/berserk-vibe/matchd/internal/board"
	"github.com/berserk-vibe/matchd/internal/log"
)

// Kind enumerates every command the processor accepts.
type Kind string

const (
	CmdMove               Kind = "MOVE"
	CmdAttack             Kind = "ATTACK"
	CmdUseAbility         Kind = "USE_ABILITY"
	CmdUseInstant         Kind = "USE_INSTANT"
	CmdPrepareFlyerAttack Kind = "PREPARE_FLYER_ATTACK"
	CmdConfirm            Kind = "CONFIRM"
	CmdCancel             Kind = "CANCEL"
	CmdChoosePosition     Kind = "CHOOSE_POSITION"
	CmdChooseCard         Kind = "CHOOSE_CARD"
	CmdChooseAmount       Kind = "CHOOSE_AMOUNT"
	CmdPassPriority       Kind = "PASS_PRIORITY"
	CmdSkip               Kind = "SKIP"
	CmdEndTurn            Kind = "END_TURN"
)

// Command is one player-submitted action.
type Command struct {
	Kind   Kind
	Player int

	CardID   int
	TargetID int
	Position int

	AbilityID string
	Option    string

	Amount int
	Accept bool
}

// Result is returned from Apply: whether the command was accepted, the
// events it produced, and a filtered snapshot for the sender.
type Result struct {
	Accepted bool
	Error    string
	Events   []log.GameEvent
	Snapshot *Snapshot
}

// Apply validates and dispatches one command, then drains events and
// builds a snapshot. It never panics on bad input.
func (e *Engine) Apply(cmd Command) Result {
	if err := e.dispatch(cmd); err != nil {
		return Result{Accepted: false, Error: err.Error(), Events: e.DrainEvents(), Snapshot: e.Snapshot(cmd.Player)}
	}
	return Result{Accepted: true, Events: e.DrainEvents(), Snapshot: e.Snapshot(cmd.Player)}
}

func (e *Engine) dispatch(cmd Command) error {
	s := e.State

	// PASS_PRIORITY / USE_INSTANT validate against priority_player, not
	// current_player.
	switch cmd.Kind {
	case CmdUseInstant:
		return e.UseInstant(cmd.Player, cmd.CardID, cmd.AbilityID, cmd.Option)
	case CmdPassPriority:
		return e.PassPriority(cmd.Player)
	}

	// Choice commands validate against interaction.acting_player.
	if s.Interaction != nil {
		switch cmd.Kind {
		case CmdChoosePosition:
			return e.dispatchChoosePosition(cmd)
		case CmdChooseCard:
			return e.dispatchChooseCard(cmd)
		case CmdChooseAmount:
			if s.Interaction.Kind != InteractionSelectCounters {
				return errNoSuchInteraction
			}
			return e.ChooseCounters(cmd.Player, cmd.Amount)
		case CmdConfirm:
			return e.dispatchConfirm(cmd)
		case CmdCancel:
			return e.CancelAbilityTarget(cmd.Player)
		case CmdSkip:
			return e.dispatchSkip(cmd)
		default:
			return errBusy
		}
	}

	if len(s.ForcedAttackers) > 0 && cmd.Kind != CmdAttack && cmd.Kind != CmdEndTurn {
		return errForcedAttackers
	}

	switch cmd.Kind {
	case CmdMove:
		return e.Move(cmd.Player, cmd.CardID, cmd.Position)
	case CmdAttack:
		return e.Attack(cmd.Player, cmd.CardID, cmd.Position)
	case CmdUseAbility:
		return e.UseAbility(cmd.Player, cmd.CardID, cmd.AbilityID)
	case CmdPrepareFlyerAttack:
		return e.PrepareFlyerAttack(cmd.Player, cmd.CardID)
	case CmdEndTurn:
		return e.EndTurn(cmd.Player)
	default:
		return errUnknownCommand
	}
}

func (e *Engine) dispatchChoosePosition(cmd Command) error {
	switch e.State.Interaction.Kind {
	case InteractionSelectDefender:
		return e.ChooseDefender(cmd.Player, cmd.Position)
	case InteractionSelectAbilityTarget, InteractionSelectMovementShot:
		return e.ChooseAbilityTarget(cmd.Player, cmd.Position)
	case InteractionSelectCounterShot:
		return e.ResolveCounterShot(cmd.Player, cmd.Position)
	case InteractionSelectValhallaTgt:
		return e.ResolveValhalla(cmd.Player, cmd.Position)
	default:
		return errNoSuchInteraction
	}
}

func (e *Engine) dispatchChooseCard(cmd Command) error {
	switch e.State.Interaction.Kind {
	case InteractionSelectUntap:
		return e.SelectUntap(cmd.Player, cmd.CardID)
	default:
		return errNoSuchInteraction
	}
}

func (e *Engine) dispatchConfirm(cmd Command) error {
	switch e.State.Interaction.Kind {
	case InteractionChooseExchange:
		return e.ChooseExchange(cmd.Player, !cmd.Accept)
	case InteractionConfirmHeal:
		return e.ConfirmHeal(cmd.Player, cmd.Accept)
	case InteractionConfirmUntap:
		return e.ConfirmUntap(cmd.Player, cmd.Accept)
	case InteractionChooseStench:
		return e.ChooseStench(cmd.Player, cmd.Accept)
	default:
		return errNoSuchInteraction
	}
}

func (e *Engine) dispatchSkip(cmd Command) error {
	switch e.State.Interaction.Kind {
	case InteractionSelectDefender:
		return e.ChooseDefender(cmd.Player, -1)
	case InteractionSelectMovementShot:
		e.State.Interaction = nil
		e.log(log.NewInteractionEnded(string(InteractionSelectMovementShot)))
		return nil
	default:
		return errNoSuchInteraction
	}
}

// Move relocates a card within its legal move set.
func (e *Engine) Move(player, cardID, targetPos int) error {
	s := e.State
	if s.Phase != PhaseMain {
		return errPhase
	}
	if player != s.CurrentPlayer {
		return errNotYourTurn
	}
	card := s.Board.CardByID(cardID)
	if card == nil || card.Player != player || !card.IsAlive() {
		return errInvalidCard
	}
	if card.Tapped || card.Webbed || card.Stunned {
		return errCardCannotAct
	}
	valid := false
	for _, p := range s.Board.GetValidMoves(card) {
		if p == targetPos {
			valid = true
		}
	}
	if !valid {
		return errInvalidTarget
	}
	from := card.Position
	s.Board.Move(card, targetPos)
	e.log(log.NewCardMoved(card.ID, from, targetPos))
	e.recalculateFormations()
	e.updateForcedAttackers()
	return nil
}

// PrepareFlyerAttack grants a ground card can_attack_flyer for the
// remainder of the turn (a "prepared ground attack").
func (e *Engine) PrepareFlyerAttack(player, cardID int) error {
	s := e.State
	if s.Phase != PhaseMain || player != s.CurrentPlayer {
		return errNotYourTurn
	}
	card := s.Board.CardByID(cardID)
	if card == nil || card.Player != player || !card.IsAlive() {
		return errInvalidCard
	}
	card.CanAttackFlyer = true
	card.CanAttackFlyerUntilTurn = s.TurnNumber
	return nil
}

// EndTurn advances to the other player's turn: untap, armor reset,
// ON_TURN_START, VALHALLA queueing.
func (e *Engine) EndTurn(player int) error {
	s := e.State
	if s.Phase != PhaseMain {
		return errPhase
	}
	if player != s.CurrentPlayer {
		return errNotYourTurn
	}
	if len(s.ForcedAttackers) > 0 {
		return errForcedAttackers
	}

	e.log(log.NewTurnEnded(s.TurnNumber, player))
	decrementDefenderBuffs(s, player)

	s.CurrentPlayer = opponent(player)
	if s.CurrentPlayer == 1 {
		s.TurnNumber++
	}
	s.untapOfferedThisTurn = false

	if s.CurrentPlayer == 2 && s.TurnNumber == 1 {
		for _, c := range s.Board.AllCards(2) {
			if c.FaceDown {
				e.revealCard(c)
			}
		}
	}

	untapAll(s, s.CurrentPlayer)
	resetArmor(s, 1)
	resetArmor(s, 2)
	e.log(log.NewTurnStarted(s.TurnNumber, s.CurrentPlayer))
	e.onTurnStart(s.CurrentPlayer)
	e.queueValhallaForTurnStart(s.CurrentPlayer)
	e.processValhalla()
	e.updateForcedAttackers()
	return nil
}

func decrementDefenderBuffs(s *GameState, player int) {
	for _, c := range s.Board.AllCards(player) {
		if c.Defender.Turns > 0 {
			c.Defender.Turns--
			if c.Defender.Turns == 0 {
				c.Defender = board.DefenderBuff{}
			}
		}
	}
}

func untapAll(s *GameState, player int) {
	for _, c := range s.Board.AllCards(player) {
		// A stunned card stays tapped for one more turn; the stun itself
		// clears instead of untapping.
		if c.Stunned {
			c.Stunned = false
		} else {
			c.Tapped = false
		}
		c.Webbed = false
		c.CanAttackFlyer = false
		c.TempAttackBonus = 0
		c.TempRangedBonus = 0
		c.TempDiceBonus = 0
		c.HasDirect = false
		for id, remaining := range c.AbilityCooldowns {
			if remaining > 0 {
				c.AbilityCooldowns[id] = remaining - 1
			}
		}
	}
}

// resetArmor restores base armor for every living card of player, at the
// start of every turn for both players.
func resetArmor(s *GameState, player int) {
	for _, c := range s.Board.AllCards(player) {
		c.ArmorRemaining = c.Def().Armor
	}
}

// queueValhallaForTurnStart enqueues one entry per graveyard card that
// died to an enemy and has not yet triggered its VALHALLA ability.
// Queuing happens at the graveyard owner's turn start, not at the
// moment of death.
func (e *Engine) queueValhallaForTurnStart(player int) {
	s := e.State
	for _, c := range s.Board.Graveyard(player) {
		if !c.KilledByEnemy || c.ValhallaTriggered {
			continue
		}
		for _, a := range c.Def().Abilities() {
			if a.Trigger == ability.TriggerValhalla {
				s.PendingValhalla = append(s.PendingValhalla, ValhallaEntry{CardID: c.ID, Player: player})
			}
		}
	}
}

// ConfirmUntap resolves a CONFIRM_UNTAP interaction (content-specific
// "offer to untap a tapped ally" effects fall through here).
func (e *Engine) ConfirmUntap(player int, accept bool) error {
	s := e.State
	if s.Interaction == nil || s.Interaction.Kind != InteractionConfirmUntap {
		return errNoSuchInteraction
	}
	if player != s.Interaction.ActingPlayer {
		return errNotYourTurn
	}
	s.Interaction = nil
	e.log(log.NewInteractionEnded(string(InteractionConfirmUntap)))
	if !accept {
		return nil
	}
	var ids []int
	for _, c := range s.Board.AllCards(player) {
		if c.Tapped {
			ids = append(ids, c.ID)
		}
	}
	if len(ids) == 0 {
		return nil
	}
	inter := newInteraction(InteractionSelectUntap, player)
	inter.ValidCardIDs = ids
	s.Interaction = inter
	e.log(log.NewInteractionStarted(string(inter.Kind), player))
	return nil
}

// SelectUntap resolves SELECT_UNTAP: untaps the chosen ally.
func (e *Engine) SelectUntap(player, cardID int) error {
	s := e.State
	if s.Interaction == nil || s.Interaction.Kind != InteractionSelectUntap {
		return errNoSuchInteraction
	}
	if player != s.Interaction.ActingPlayer {
		return errNotYourTurn
	}
	valid := false
	for _, id := range s.Interaction.ValidCardIDs {
		if id == cardID {
			valid = true
		}
	}
	if !valid {
		return errInvalidCard
	}
	if c := s.Board.CardByID(cardID); c != nil {
		c.Tapped = false
	}
	s.Interaction = nil
	e.log(log.NewInteractionEnded(string(InteractionSelectUntap)))
	return nil
}
