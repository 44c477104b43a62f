package ability

import "testing"

func TestRegisterAndGet(t *testing.T) {
	Reset()
	defer Reset()

	Register(&Def{ID: "test_luck", Trigger: TriggerOnDiceRoll, IsInstant: true})
	def := Get("test_luck")
	if def == nil {
		t.Fatal("expected Get to find registered ability")
	}
	if !def.IsInstant {
		t.Error("expected IsInstant to round-trip through registration")
	}
	if Get("missing") != nil {
		t.Error("expected Get of unregistered id to return nil")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Reset()
	defer Reset()

	Register(&Def{ID: "dup"})
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate ability id registration")
		}
	}()
	Register(&Def{ID: "dup"})
}

func TestAllSortedByID(t *testing.T) {
	Reset()
	defer Reset()

	Register(&Def{ID: "z_ability"})
	Register(&Def{ID: "a_ability"})

	all := All()
	if len(all) != 2 || all[0].ID != "a_ability" || all[1].ID != "z_ability" {
		t.Errorf("expected sorted [a_ability z_ability], got %v", all)
	}
}
