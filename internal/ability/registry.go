package ability

import "sort"

// registry is the immutable table of ability definitions, keyed by ID.
// Populated once at program start (package content calls Register
// for every ability in the content pack) and read-only thereafter.
var registry = map[string]*Def{}

// Register adds a definition to the registry. Panics on duplicate ID —
// a duplicate ability ID is a content-authoring bug, not a runtime state.
func Register(def *Def) {
	if _, exists := registry[def.ID]; exists {
		panic("ability: duplicate ability id " + def.ID)
	}
	registry[def.ID] = def
}

// Get looks up an ability definition by ID. Returns nil if not found —
// callers that expect the ID to exist (content authored against the
// registry) should treat a nil return as an invariant failure.
func Get(id string) *Def {
	return registry[id]
}

// All returns every registered definition, sorted by ID for deterministic
// iteration (content hash, serialization).
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

// Reset clears the registry. Test-only: lets package-level test suites
// register a small fixture ability set without colliding with production
// content.
func Reset() {
	registry = map[string]*Def{}
}
