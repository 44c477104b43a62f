package content

import (
	"sync"
	"testing"

	"github.com/berserk-vibe/matchd/internal/ability"
	"github.com/berserk-vibe/matchd/internal/carddb"
)

// loadOnce guards the one-time registration of the production tables:
// Register panics on a duplicate id, so every test in this package shares
// a single Load instead of calling it per-test.
var loadOnce sync.Once

func ensureLoaded(t *testing.T) {
	t.Helper()
	loadOnce.Do(Load)
}

func TestLoadDoesNotPanic(t *testing.T) {
	ensureLoaded(t)
}

// TestEveryCardAbilityIDResolves walks every registered card's AbilityIDs
// and checks each one resolves via ability.Get, catching a typo'd id that
// would otherwise surface as a silent no-op ability in play.
func TestEveryCardAbilityIDResolves(t *testing.T) {
	ensureLoaded(t)
	for _, def := range carddb.All() {
		for _, id := range def.AbilityIDs {
			if ability.Get(id) == nil {
				t.Errorf("card %s references unregistered ability id %q", def.DefID, id)
			}
		}
	}
}

func TestNoDuplicateAbilityStatusText(t *testing.T) {
	ensureLoaded(t)
	seen := map[string]string{}
	for _, def := range carddb.All() {
		for _, id := range def.AbilityIDs {
			a := ability.Get(id)
			if a == nil || a.StatusText == "" {
				continue
			}
			if owner, ok := seen[a.StatusText]; ok && owner != a.ID {
				t.Errorf("abilities %q and %q share the status text %q", owner, a.ID, a.StatusText)
			}
			seen[a.StatusText] = a.ID
		}
	}
}
