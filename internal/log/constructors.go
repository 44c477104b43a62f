package log

import "fmt"

// --- Helper constructors, one per GameEvent shape the engine emits. ---
// Every event site builds its GameEvent through one of these instead of
// hand-rolling fields. Turn/Phase are filled in by the caller (Engine.log)
// so these stay free of match-state plumbing.

func NewLogMessage(details string) GameEvent {
	return GameEvent{Type: EventLogMessage, Details: details}
}

func NewCardDamaged(cardID, amount, position, sourceID int) GameEvent {
	return GameEvent{
		Type: EventCardDamaged, CardID: cardID, Amount: amount, Position: position, SourceID: sourceID,
		Details: fmt.Sprintf("card %d takes %d damage", cardID, amount),
	}
}

func NewCardHealed(cardID, amount, position int) GameEvent {
	return GameEvent{
		Type: EventCardHealed, CardID: cardID, Amount: amount, Position: position,
		Details: fmt.Sprintf("card %d heals %d", cardID, amount),
	}
}

func NewCardDied(cardID, position, visualIdx int) GameEvent {
	return GameEvent{
		Type: EventCardDied, CardID: cardID, Position: position, VisualIdx: visualIdx,
		Details: fmt.Sprintf("card %d dies", cardID),
	}
}

func NewCardMoved(cardID, from, to int) GameEvent {
	return GameEvent{
		Type: EventCardMoved, CardID: cardID, FromPos: from, ToPos: to,
		Details: fmt.Sprintf("card %d moves %d -> %d", cardID, from, to),
	}
}

func NewCardRevealed(cardID int, defID string) GameEvent {
	return GameEvent{
		Type: EventCardRevealed, CardID: cardID, FullData: defID,
		Details: fmt.Sprintf("card %d is revealed (%s)", cardID, defID),
	}
}

func NewTurnStarted(turn, player int) GameEvent {
	return GameEvent{
		Turn: turn, Player: player, Type: EventTurnStarted,
		Details: fmt.Sprintf("=== Turn %d (P%d) ===", turn, player),
	}
}

func NewTurnEnded(turn, player int) GameEvent {
	return GameEvent{
		Turn: turn, Player: player, Type: EventTurnEnded,
		Details: fmt.Sprintf("P%d ends turn %d", player, turn),
	}
}

func NewDiceRolled(attackerID, atkRoll, defenderID, defRoll int) GameEvent {
	return GameEvent{
		Type: EventDiceRolled, SourceID: attackerID, TargetID: defenderID,
		Amount: atkRoll, VisualIdx: defRoll,
		Details: fmt.Sprintf("dice: attacker %d rolls %d, defender %d rolls %d", attackerID, atkRoll, defenderID, defRoll),
	}
}

func NewGameOver(winner int) GameEvent {
	return GameEvent{Type: EventGameOver, Winner: winner, Details: fmt.Sprintf("game over, winner P%d", winner)}
}

func NewInteractionStarted(kind string, player int) GameEvent {
	return GameEvent{Player: player, Type: EventInteractionStarted, Kind: kind, Details: "interaction started: " + kind}
}

func NewInteractionEnded(kind string) GameEvent {
	return GameEvent{Type: EventInteractionEnded, Kind: kind, Details: "interaction ended: " + kind}
}

func NewStackPushed(cardID int, abilityID string) GameEvent {
	return GameEvent{
		Type: EventStackPushed, CardID: cardID, Kind: abilityID,
		Details: fmt.Sprintf("card %d stacks %s", cardID, abilityID),
	}
}

func NewStackResolved(cardID int, abilityID string) GameEvent {
	return GameEvent{
		Type: EventStackResolved, CardID: cardID, Kind: abilityID,
		Details: fmt.Sprintf("resolves card %d's %s", cardID, abilityID),
	}
}

func NewPriorityOpened(player int) GameEvent {
	return GameEvent{Player: player, Type: EventPriorityOpened, Details: fmt.Sprintf("priority: P%d", player)}
}

func NewPriorityClosed() GameEvent {
	return GameEvent{Type: EventPriorityClosed, Details: "priority closed"}
}

func NewFormationChanged(cardID int, inFormation bool) GameEvent {
	return GameEvent{
		Type: EventFormationChanged, CardID: cardID,
		Details: fmt.Sprintf("card %d formation -> %v", cardID, inFormation),
	}
}

func NewArrowAdded(fromID, toID int) GameEvent {
	return GameEvent{Type: EventArrowAdded, SourceID: fromID, TargetID: toID}
}

func NewArrowsCleared() GameEvent {
	return GameEvent{Type: EventArrowsCleared, Details: "arrows cleared"}
}
