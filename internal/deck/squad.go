package deck

import (
	"fmt"

	"github.com/berserk-vibe/matchd/internal/carddb"
)

// Budget is a squad's crystal allowance for one player slot.
type Budget struct {
	Gold   int
	Silver int
}

// BudgetFor returns the crystal budget for a player: P1 gets 24 gold + 22
// silver, P2 gets 25 gold + 23 silver.
func BudgetFor(player int) Budget {
	if player == 1 {
		return Budget{Gold: 24, Silver: 22}
	}
	return Budget{Gold: 25, Silver: 23}
}

// Squad is the chosen subset of a player's deck brought to one match.
type Squad struct {
	Player int
	Cards  []string // def IDs, one entry per physical card
}

// Validate enforces the crystal-budget rule: elite cards spend gold only,
// common cards may spend silver; each distinct non-neutral element beyond
// the first costs +1 gold; flying cards may total at most 15 crystals.
func (s *Squad) Validate() error {
	budget := BudgetFor(s.Player)
	goldSpent, silverSpent, flyingCrystals := 0, 0, 0
	elements := map[carddb.Element]bool{}

	for _, defID := range s.Cards {
		def := carddb.Lookup(defID)
		if def == nil {
			return fmt.Errorf("squad: unknown card %q", defID)
		}
		cost := def.Cost
		if def.Element != carddb.ElementNeutral {
			elements[def.Element] = true
		}
		if def.IsElite {
			goldSpent += cost
		} else {
			silverSpent += cost
		}
		if def.IsFlying {
			flyingCrystals += cost
		}
	}

	if len(elements) > 1 {
		goldSpent += len(elements) - 1
	}
	if goldSpent > budget.Gold {
		return fmt.Errorf("squad: gold budget exceeded: %d > %d", goldSpent, budget.Gold)
	}
	if silverSpent > budget.Silver {
		return fmt.Errorf("squad: silver budget exceeded: %d > %d", silverSpent, budget.Silver)
	}
	if flyingCrystals > 15 {
		return fmt.Errorf("squad: flying crystal total exceeded: %d > 15", flyingCrystals)
	}
	return nil
}

// MulliganCost is the fixed gold cost of a mulligan.
const MulliganCost = 1
