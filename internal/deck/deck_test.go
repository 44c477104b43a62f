package deck

import (
	"strings"
	"testing"

	"github.com/berserk-vibe/matchd/internal/carddb"
)

func registerTestCards(t *testing.T) {
	t.Helper()
	carddb.Reset()
	t.Cleanup(carddb.Reset)
	carddb.Register(&carddb.Def{DefID: "kobold", Cost: 1})
	carddb.Register(&carddb.Def{DefID: "cyclops", Cost: 3})
}

func TestParse(t *testing.T) {
	registerTestCards(t)
	yamlData := []byte(`
name: Starter
protected: true
cards:
  - name: kobold
    count: 3
  - name: cyclops
    count: 2
`)
	f, err := Parse(yamlData)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if f.Name != "Starter" || !f.Protected {
		t.Errorf("unexpected parsed header: %+v", f)
	}
	if f.TotalCards() != 5 {
		t.Errorf("TotalCards() = %d, want 5", f.TotalCards())
	}
}

func TestValidateRejectsTooFewCards(t *testing.T) {
	registerTestCards(t)
	f := &File{Cards: []Entry{{Name: "kobold", Count: 3}}}
	if err := f.Validate(); err == nil {
		t.Error("expected error for a deck under the 30-card minimum")
	}
}

func TestValidateRejectsTooManyCopies(t *testing.T) {
	registerTestCards(t)
	f := &File{Cards: []Entry{{Name: "kobold", Count: 4}}}
	if err := f.Validate(); err == nil || !strings.Contains(err.Error(), "at most 3 copies") {
		t.Errorf("expected a copy-limit error, got %v", err)
	}
}

func TestValidateRejectsUnknownCard(t *testing.T) {
	registerTestCards(t)
	f := &File{Cards: []Entry{{Name: "nonexistent", Count: 30}}}
	if err := f.Validate(); err == nil {
		t.Error("expected error for an unregistered card name")
	}
}

func TestValidateAcceptsWellFormedDeck(t *testing.T) {
	registerTestCards(t)
	f := &File{Cards: []Entry{{Name: "kobold", Count: 3}, {Name: "cyclops", Count: 3}}}
	// total only 6, still under 30 — pad it out with eight more distinct
	// cards at 3 copies each.
	for i := 0; i < 8; i++ {
		id := "filler_" + string(rune('a'+i))
		carddb.Register(&carddb.Def{DefID: id, Cost: 1})
		f.Cards = append(f.Cards, Entry{Name: id, Count: 3})
	}
	if err := f.Validate(); err != nil {
		t.Errorf("expected a well-formed deck to validate, got %v", err)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	f := &File{Name: "Roundtrip", Cards: []Entry{{Name: "kobold", Count: 2}}}
	code, err := Encode(f)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := Decode(code)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if decoded.Name != f.Name {
		t.Errorf("decoded name = %q, want %q", decoded.Name, f.Name)
	}
	if len(decoded.Cards) != 1 || decoded.Cards[0].Name != "kobold" || decoded.Cards[0].Count != 2 {
		t.Errorf("decoded cards = %+v, want one kobold x2", decoded.Cards)
	}
}

func TestSquadValidateGoldBudget(t *testing.T) {
	registerTestCards(t)
	carddb.Register(&carddb.Def{DefID: "elite_one", Cost: 20, IsElite: true})

	squad := &Squad{Player: 1, Cards: []string{"elite_one"}}
	if err := squad.Validate(); err != nil {
		t.Errorf("expected a squad within budget to validate, got %v", err)
	}

	over := &Squad{Player: 1, Cards: []string{"elite_one", "elite_one"}}
	if err := over.Validate(); err == nil {
		t.Error("expected gold budget exceeded error")
	}
}

func TestSquadValidateFlyingCap(t *testing.T) {
	registerTestCards(t)
	carddb.Register(&carddb.Def{DefID: "big_flyer", Cost: 16, IsFlying: true})

	squad := &Squad{Player: 1, Cards: []string{"big_flyer"}}
	if err := squad.Validate(); err == nil {
		t.Error("expected flying crystal cap to be exceeded")
	}
}

func TestBudgetForAsymmetric(t *testing.T) {
	b1, b2 := BudgetFor(1), BudgetFor(2)
	if b1 == b2 {
		t.Error("expected P1 and P2 budgets to differ")
	}
}
