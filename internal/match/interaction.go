package match

// InteractionKind tags the suspended decision point an Interaction
// represents. At most one Interaction is active at a time — this is
// the single "is the engine busy?" check.
type InteractionKind string

const (
	InteractionSelectDefender      InteractionKind = "SELECT_DEFENDER"
	InteractionSelectAbilityTarget InteractionKind = "SELECT_ABILITY_TARGET"
	InteractionSelectCounterShot   InteractionKind = "SELECT_COUNTER_SHOT"
	InteractionSelectMovementShot  InteractionKind = "SELECT_MOVEMENT_SHOT"
	InteractionSelectValhallaTgt   InteractionKind = "SELECT_VALHALLA_TARGET"
	InteractionConfirmHeal         InteractionKind = "CONFIRM_HEAL"
	InteractionConfirmUntap        InteractionKind = "CONFIRM_UNTAP"
	InteractionSelectUntap         InteractionKind = "SELECT_UNTAP"
	InteractionChooseStench        InteractionKind = "CHOOSE_STENCH"
	InteractionChooseExchange      InteractionKind = "CHOOSE_EXCHANGE"
	InteractionSelectCounters      InteractionKind = "SELECT_COUNTERS"
)

// Interaction is a tagged variant describing exactly one suspended
// decision point. Collapsing what would otherwise be many
// awaiting_*/pending_* flags into this single optional value is the key
// to deterministic command validation.
type Interaction struct {
	Kind         InteractionKind
	ActingPlayer int
	ActorID      int // 0 = none
	TargetID     int // 0 = none

	ValidPositions []int
	ValidCardIDs   []int

	SelectedAmount int
	MinAmount      int
	MaxAmount      int

	// Context carries ability-specific payload: ability_id, counters_spent,
	// heal_amount, damage_amount, attacker_advantage, roll_diff, etc.
	// Kept as a free-form map rather than a field per ability.
	Context map[string]any
}

func newInteraction(kind InteractionKind, actingPlayer int) *Interaction {
	return &Interaction{Kind: kind, ActingPlayer: actingPlayer, Context: map[string]any{}}
}

// AwaitingDefender and friends are convenience predicates over the
// single active Interaction, replacing what would otherwise be many
// independent boolean flags.
func (e *Engine) AwaitingDefender() bool      { return e.hasInteraction(InteractionSelectDefender) }
func (e *Engine) AwaitingExchangeChoice() bool { return e.hasInteraction(InteractionChooseExchange) }
func (e *Engine) AwaitingAbilityTarget() bool  { return e.hasInteraction(InteractionSelectAbilityTarget) }
func (e *Engine) AwaitingValhalla() bool       { return e.hasInteraction(InteractionSelectValhallaTgt) }
func (e *Engine) IsBusy() bool                 { return e.State.Interaction != nil || e.State.PriorityPhase }

func (e *Engine) hasInteraction(kind InteractionKind) bool {
	return e.State.Interaction != nil && e.State.Interaction.Kind == kind
}
