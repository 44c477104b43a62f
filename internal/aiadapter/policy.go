// Package aiadapter implements heuristic opponents that drive a
// match.Engine through its public Command surface, the same way a human
// client would: inspecting a read-only snapshot and returning one
// command at a time, preferring the nearest/most lethal target. One
// player's whole turn is a sequence of MOVE/ATTACK/USE_ABILITY/END_TURN
// commands, since this domain has no discrete movement/shooting/
// charging phases to key dispatch off of.
package aiadapter

import (
	"math/rand"

	"github.com/berserk-vibe/matchd/internal/board"
	"github.com/berserk-vibe/matchd/internal/boardgeo"
	"github.com/berserk-vibe/matchd/internal/match"
)

// Policy picks the next command to submit for player, given the engine's
// current state. Implementations must never mutate the engine; they only
// read e.Snapshot / e.State via exported queries and return a Command for
// the caller to Apply.
type Policy interface {
	NextCommand(e *match.Engine, player int) match.Command
}

// RandomPolicy picks uniformly among the legal actions available this
// instant: a random attacker attacks a random legal target, else a random
// movable card gets a random destination, else the turn ends. Useful as
// an opponent for content testing and for the batch simulator's baseline.
type RandomPolicy struct {
	Rng *rand.Rand
}

func NewRandomPolicy(seed int64) *RandomPolicy {
	return &RandomPolicy{Rng: rand.New(rand.NewSource(seed))}
}

func (p *RandomPolicy) NextCommand(e *match.Engine, player int) match.Command {
	if resp, ok := respondToInteraction(e, player, p.Rng); ok {
		return resp
	}

	cards := actableCards(e, player)
	p.Rng.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })

	for _, c := range cards {
		if targets := e.State.Board.GetAttackTargets(c); len(targets) > 0 {
			t := targets[p.Rng.Intn(len(targets))]
			return match.Command{Kind: match.CmdAttack, Player: player, CardID: c.ID, Position: t}
		}
	}
	for _, c := range cards {
		if moves := e.State.Board.GetValidMoves(c); len(moves) > 0 {
			m := moves[p.Rng.Intn(len(moves))]
			return match.Command{Kind: match.CmdMove, Player: player, CardID: c.ID, Position: m}
		}
	}
	return match.Command{Kind: match.CmdEndTurn, Player: player}
}

// RuleBasedPolicy orders its options: finish a kill, otherwise attack the
// weakest reachable enemy, otherwise advance the nearest unit toward the enemy line, otherwise end
// the turn — first eligible unit, nearest enemy in range.
type RuleBasedPolicy struct{}

func (RuleBasedPolicy) NextCommand(e *match.Engine, player int) match.Command {
	if resp, ok := respondToInteraction(e, player, nil); ok {
		return resp
	}

	cards := actableCards(e, player)

	// Lethal first: any attack that would reduce a defender to <=0 life
	// judging only by raw life totals (a coarse, data-free lower bound;
	// the engine's real combat math decides the actual outcome).
	if cmd, ok := findLethal(e, cards, player); ok {
		return cmd
	}

	// Otherwise attack whichever reachable enemy has the least life.
	if cmd, ok := findWeakestAttack(e, cards); ok {
		return cmd
	}

	// Otherwise advance the unit nearest an enemy, closing distance.
	if cmd, ok := advanceNearest(e, cards, player); ok {
		return cmd
	}

	return match.Command{Kind: match.CmdEndTurn, Player: player}
}

func findLethal(e *match.Engine, cards []*board.CardInstance, player int) (match.Command, bool) {
	for _, c := range cards {
		for _, pos := range e.State.Board.GetAttackTargets(c) {
			target := e.State.Board.Cells[pos]
			if target != nil && target.CurrLife <= 2 {
				return match.Command{Kind: match.CmdAttack, Player: player, CardID: c.ID, Position: pos}, true
			}
		}
	}
	return match.Command{}, false
}

func findWeakestAttack(e *match.Engine, cards []*board.CardInstance) (match.Command, bool) {
	var best match.Command
	bestLife := 1 << 30
	found := false
	for _, c := range cards {
		for _, pos := range e.State.Board.GetAttackTargets(c) {
			target := e.State.Board.Cells[pos]
			if target == nil {
				continue
			}
			if target.CurrLife < bestLife {
				bestLife = target.CurrLife
				best = match.Command{Kind: match.CmdAttack, Player: c.Player, CardID: c.ID, Position: pos}
				found = true
			}
		}
	}
	return best, found
}

func advanceNearest(e *match.Engine, cards []*board.CardInstance, player int) (match.Command, bool) {
	enemies := e.State.Board.GroundCards(opponentOf(player))
	if len(enemies) == 0 {
		return match.Command{}, false
	}
	for _, c := range cards {
		moves := e.State.Board.GetValidMoves(c)
		if len(moves) == 0 {
			continue
		}
		bestPos, bestDist := -1, 1<<30
		for _, pos := range moves {
			for _, enemy := range enemies {
				d := boardgeo.ManhattanDistance(pos, enemy.Position)
				if d < bestDist {
					bestDist, bestPos = d, pos
				}
			}
		}
		if bestPos >= 0 {
			return match.Command{Kind: match.CmdMove, Player: player, CardID: c.ID, Position: bestPos}, true
		}
	}
	return match.Command{}, false
}

func opponentOf(player int) int {
	if player == 1 {
		return 2
	}
	return 1
}

// actableCards returns player's living, untapped, unwebbed, unstunned
// cards — the pool any policy chooses a mover/attacker from.
func actableCards(e *match.Engine, player int) []*board.CardInstance {
	var out []*board.CardInstance
	for _, c := range e.State.Board.AllCards(player) {
		if c.IsAlive() && !c.Tapped && !c.Webbed && !c.Stunned {
			out = append(out, c)
		}
	}
	return out
}

// respondToInteraction answers any open Interaction addressed to player
// with a conservative default (skip/decline), so a policy loop never
// stalls waiting on a decision it has no heuristic for. rng may be nil,
// in which case the first valid option is chosen.
func respondToInteraction(e *match.Engine, player int, rng *rand.Rand) (match.Command, bool) {
	inter := e.State.Interaction
	if inter == nil || inter.ActingPlayer != player {
		return match.Command{}, false
	}
	switch inter.Kind {
	case match.InteractionSelectDefender:
		if len(inter.ValidPositions) == 0 {
			return match.Command{Kind: match.CmdSkip, Player: player}, true
		}
		return match.Command{Kind: match.CmdChoosePosition, Player: player, Position: pick(inter.ValidPositions, rng)}, true
	case match.InteractionSelectAbilityTarget, match.InteractionSelectMovementShot,
		match.InteractionSelectCounterShot, match.InteractionSelectValhallaTgt:
		if len(inter.ValidPositions) == 0 {
			return match.Command{Kind: match.CmdCancel, Player: player}, true
		}
		return match.Command{Kind: match.CmdChoosePosition, Player: player, Position: pick(inter.ValidPositions, rng)}, true
	case match.InteractionSelectUntap:
		if len(inter.ValidCardIDs) == 0 {
			return match.Command{Kind: match.CmdCancel, Player: player}, true
		}
		return match.Command{Kind: match.CmdChooseCard, Player: player, CardID: pick(inter.ValidCardIDs, rng)}, true
	case match.InteractionConfirmHeal, match.InteractionConfirmUntap, match.InteractionChooseStench:
		return match.Command{Kind: match.CmdConfirm, Player: player, Accept: false}, true
	case match.InteractionChooseExchange:
		return match.Command{Kind: match.CmdConfirm, Player: player, Accept: true}, true
	case match.InteractionSelectCounters:
		return match.Command{Kind: match.CmdChooseAmount, Player: player, Amount: inter.MinAmount}, true
	}
	return match.Command{}, false
}

func pick(options []int, rng *rand.Rand) int {
	if rng == nil {
		return options[0]
	}
	return options[rng.Intn(len(options))]
}
