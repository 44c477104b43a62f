package board

import "github.com/berserk-vibe/matchd/internal/boardgeo"

// GetValidMoves returns the ground positions a card may move to: distance
// (Manhattan) <= its current move, unoccupied, and — for ground-bound
// cards — reachable without passing through the rule that non-jumping
// movement stays on one's own side of row boundaries is NOT enforced here
// (the source allows crossing once the midline is open); flyers instead
// move freely among empty flying-zone slots.
func (b *Board) GetValidMoves(card *CardInstance) []int {
	if !card.IsAlive() || card.Position < 0 {
		return nil
	}
	if boardgeo.IsFlyingZone(card.Position) || card.Def().IsFlying {
		return b.validFlyingMoves(card)
	}
	var out []int
	for pos := 0; pos < boardgeo.GroundCells; pos++ {
		if pos == card.Position {
			continue
		}
		if b.Cells[pos] != nil {
			continue
		}
		if boardgeo.ManhattanDistance(card.Position, pos) <= card.CurrMove {
			out = append(out, pos)
		}
	}
	return out
}

func (b *Board) validFlyingMoves(card *CardInstance) []int {
	var out []int
	start, end := boardgeo.FlyingZoneP1Start, boardgeo.FlyingZoneP1End
	if card.Player == 2 {
		start, end = boardgeo.FlyingZoneP2Start, boardgeo.FlyingZoneP2End
	}
	for pos := start; pos <= end; pos++ {
		if pos != card.Position && b.Cells[pos] == nil {
			out = append(out, pos)
		}
	}
	return out
}

// GetAttackTargets returns enemy ground positions (and, where legal, enemy
// flying positions) card may declare an attack against.
func (b *Board) GetAttackTargets(card *CardInstance) []int {
	if !card.IsAlive() {
		return nil
	}
	enemy := 1
	if card.Player == 1 {
		enemy = 2
	}
	def := card.Def()

	var out []int
	if def.IsFlying || boardgeo.IsFlyingZone(card.Position) {
		// Flyers may attack any enemy ground creature.
		for _, target := range b.GroundCards(enemy) {
			out = append(out, target.Position)
		}
		// Flyers may also attack enemy flyers.
		for _, target := range b.FlyingCards(enemy) {
			out = append(out, target.Position)
		}
		return out
	}

	// Restricted strike: only the single cell directly "in front" (one row
	// closer to the opponent, same column).
	if card.HasRestrictedStrike() {
		front := restrictedStrikeCell(card)
		if front >= 0 {
			if target := b.Cells[front]; target != nil && target.Player == enemy {
				out = append(out, front)
			}
		}
		return out
	}

	for _, pos := range boardgeo.OrthogonalNeighborsChebyshev1(card.Position) {
		target := b.Cells[pos]
		if target != nil && target.Player == enemy {
			out = append(out, pos)
		}
	}
	// Enemy flyers are only attackable if this card has been granted the
	// ability this turn (a "prepared" ground attack).
	if card.CanAttackFlyer {
		for _, target := range b.FlyingCards(enemy) {
			out = append(out, target.Position)
		}
	}
	return out
}

// HasRestrictedStrike reports ability-driven strike restriction.
// NewCardInstance sets it from the definition's restricted_strike ability
// ID; SetRestrictedStrike overrides it. Kept on CardInstance as a plain
// bool so board stays
// ability-registry-agnostic.
func (c *CardInstance) HasRestrictedStrike() bool { return c.restrictedStrike }

func (c *CardInstance) SetRestrictedStrike(v bool) { c.restrictedStrike = v }

func restrictedStrikeCell(card *CardInstance) int {
	r, col := boardgeo.RowCol(card.Position)
	if card.Player == 1 {
		r++
	} else {
		r--
	}
	if r < 0 || r >= boardgeo.Rows {
		return -1
	}
	return boardgeo.Pos(r, col)
}

// GetValidDefenders returns enemy cards orthogonally adjacent to the
// attack target that are untapped and not the target itself, unless the
// attacker has a direct-attack grant.
func (b *Board) GetValidDefenders(attacker *CardInstance, targetPos int) []int {
	if attacker.HasDirect {
		return nil
	}
	target := b.Cells[targetPos]
	if target == nil {
		return nil
	}
	var out []int
	for _, pos := range boardgeo.OrthogonalNeighbors(targetPos) {
		c := b.Cells[pos]
		if c == nil || c.ID == target.ID {
			continue
		}
		if c.Player != target.Player {
			continue
		}
		if c.Tapped {
			continue
		}
		out = append(out, pos)
	}
	return out
}
