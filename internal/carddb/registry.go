package carddb

import "sort"

// registry is the immutable, hashable table of card definitions, keyed by
// DefID. Initialized once by package content at program start and
// read-only thereafter.
var registry = map[string]*Def{}

// Register adds a definition to the registry. Panics on duplicate DefID.
func Register(def *Def) {
	if _, exists := registry[def.DefID]; exists {
		panic("carddb: duplicate card def id " + def.DefID)
	}
	registry[def.DefID] = def
}

// Lookup returns a card definition by DefID, or nil if not registered.
func Lookup(defID string) *Def {
	return registry[defID]
}

// MustLookup looks up a card by DefID, panicking if not found. Used at
// deck-load time, where a missing DefID is a content-authoring bug.
func MustLookup(defID string) *Def {
	def := registry[defID]
	if def == nil {
		panic("carddb: card not found in registry: " + defID)
	}
	return def
}

// All returns every registered definition, sorted by DefID for
// deterministic iteration (content hash, serialization).
func All() []*Def {
	ids := make([]string, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]*Def, len(ids))
	for i, id := range ids {
		out[i] = registry[id]
	}
	return out
}

// Reset clears the registry. Test-only.
func Reset() {
	registry = map[string]*Def{}
}
