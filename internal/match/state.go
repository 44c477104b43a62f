// Package match implements the authoritative rules engine: phases, turns,
// combat, abilities, triggers, and the priority/instant stack, driven by
// a synchronous command processor built as an apply(command) -> result
// push model rather than a blocking decision loop.
package match

import (
	"math/rand"

	"github.com/berserk-vibe/matchd/internal/board"
	"github.com/berserk-vibe/matchd/internal/log"
)

// Phase is the coarse game phase.
type Phase int

const (
	PhaseSetup Phase = iota
	PhaseMain
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "SETUP"
	case PhaseMain:
		return "MAIN"
	case PhaseGameOver:
		return "GAME_OVER"
	default:
		return "UNKNOWN"
	}
}

// PlayerHand holds the cards a player has not yet placed on the board.
type PlayerHand struct {
	Cards []*board.CardInstance
}

// RemoveCard pulls a card out of hand by ID, returning it.
func (h *PlayerHand) RemoveCard(id int) *board.CardInstance {
	for i, c := range h.Cards {
		if c.ID == id {
			h.Cards = append(h.Cards[:i], h.Cards[i+1:]...)
			return c
		}
	}
	return nil
}

// DiceContext is the in-flight record of one combat/ranged/magic dice
// exchange, mutated as priority instants resolve against it.
type DiceContext struct {
	Kind string // "combat", "ranged", "magic"

	AttackerID  int
	AtkRoll     int
	AtkModifier int
	AtkBonus    int

	DefenderID  int
	DefRoll     int
	DefModifier int
	DefBonus    int

	DiceMatter        bool
	DefenderWasTapped bool
	ExchangeResolved  bool

	TargetID    int
	AbilityID   string
	RangedType  string

	Extra map[string]any
}

// StackItem is one pending instant on the priority/instant stack.
type StackItem struct {
	SourceID  int
	AbilityID string
	Player    int
	Payload   map[string]any
}

// ValhallaEntry queues one dead card awaiting its VALHALLA trigger
// resolution.
type ValhallaEntry struct {
	CardID int
	Player int
}

// CombatResult snapshots the outcome of the most recently resolved combat,
// exposed to clients and to post-combat trigger handlers.
type CombatResult struct {
	AttackerID   int
	DefenderID   int
	AttackerTier int
	CounterTier  int
	IsExchange   bool
	AttackerDied bool
	DefenderDied bool
}

// GameState is the full authoritative state of one match.
type GameState struct {
	Board *board.Board

	Hands [3]*PlayerHand // index by player 1/2; [0] unused

	Phase         Phase
	CurrentPlayer int
	TurnNumber    int
	Winner        int // 0 = undecided

	Interaction *Interaction
	LastCombat  *CombatResult

	PendingValhalla []ValhallaEntry

	PriorityPhase  bool
	PriorityPlayer int
	PriorityPassed map[int]bool

	PendingDiceRoll *DiceContext
	InstantStack    []StackItem

	ForcedAttackers map[int][]int // attacker card ID -> tapped enemy positions it must attack

	Messages []string

	untapOfferedThisTurn bool
	nextCardID           int
	pendingRolls         []int // injected dice, consumed FIFO before falling back to rng

	// friendlyFireTarget/friendlyFirePos implement the two-click
	// friendly-fire confirmation.
	friendlyFireTarget *int
	friendlyFirePos    int
}

// Engine wires a GameState to its event log and RNG source, and exposes
// the command surface: a struct built around apply() instead of a
// blocking run loop.
type Engine struct {
	State  *GameState
	Events *log.MemoryLogger
	rng    *rand.Rand
}

// NewEngine constructs a fresh, empty match. Callers place cards via
// setup commands before the first END_TURN.
func NewEngine(seed int64) *Engine {
	return &Engine{
		State: &GameState{
			Board:           board.NewBoard(),
			Hands:           [3]*PlayerHand{nil, {}, {}},
			Phase:           PhaseSetup,
			CurrentPlayer:   1,
			TurnNumber:      1,
			PriorityPassed:  map[int]bool{},
			ForcedAttackers: map[int][]int{},
			nextCardID:      1,
		},
		Events: log.NewMemoryLogger(),
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// NextCardID mints a fresh match-unique card instance ID.
func (e *Engine) NextCardID() int {
	id := e.State.nextCardID
	e.State.nextCardID++
	return id
}

// InjectRolls queues deterministic dice values to be consumed before the
// RNG is touched — used by tests and network replay.
func (e *Engine) InjectRolls(values ...int) {
	e.State.pendingRolls = append(e.State.pendingRolls, values...)
}

// rollDie returns the next injected value if one is queued, otherwise a
// fresh 1-6 roll from the engine's RNG.
func (e *Engine) rollDie() int {
	if len(e.State.pendingRolls) > 0 {
		v := e.State.pendingRolls[0]
		e.State.pendingRolls = e.State.pendingRolls[1:]
		return v
	}
	return e.rng.Intn(6) + 1
}

func (e *Engine) log(ev log.GameEvent) {
	ev.Turn = e.State.TurnNumber
	ev.Phase = e.State.Phase.String()
	e.Events.Log(ev)
}

// DrainEvents returns and clears events accumulated since the last drain,
// for per-command response payloads.
func (e *Engine) DrainEvents() []log.GameEvent {
	return e.Events.Drain()
}

func opponent(player int) int {
	if player == 1 {
		return 2
	}
	return 1
}
