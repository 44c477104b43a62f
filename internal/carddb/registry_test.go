package carddb

import "testing"

func TestRegisterAndLookup(t *testing.T) {
	Reset()
	defer Reset()

	Register(&Def{DefID: "test_wolf", Name: "Test Wolf", Cost: 2, Life: 8})
	def := Lookup("test_wolf")
	if def == nil {
		t.Fatal("expected lookup to find registered card")
	}
	if def.Name != "Test Wolf" {
		t.Errorf("got name %q, want Test Wolf", def.Name)
	}
	if Lookup("nonexistent") != nil {
		t.Error("expected lookup of unregistered id to return nil")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Reset()
	defer Reset()

	Register(&Def{DefID: "dup"})
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate DefID registration")
		}
	}()
	Register(&Def{DefID: "dup"})
}

func TestAllIsSortedByDefID(t *testing.T) {
	Reset()
	defer Reset()

	Register(&Def{DefID: "zebra"})
	Register(&Def{DefID: "apple"})
	Register(&Def{DefID: "mango"})

	all := All()
	if len(all) != 3 {
		t.Fatalf("expected 3 defs, got %d", len(all))
	}
	if all[0].DefID != "apple" || all[1].DefID != "mango" || all[2].DefID != "zebra" {
		t.Errorf("expected sorted order apple,mango,zebra, got %s,%s,%s", all[0].DefID, all[1].DefID, all[2].DefID)
	}
}

func TestHasAbility(t *testing.T) {
	def := &Def{DefID: "berserker", AbilityIDs: []string{"must_attack_tapped", "luck"}}
	if !def.HasAbility("luck") {
		t.Error("expected HasAbility to find a registered ability id")
	}
	if def.HasAbility("scavenging") {
		t.Error("HasAbility should not report an id the card does not carry")
	}
}
