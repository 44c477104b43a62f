package content

import "github.com/berserk-vibe/matchd/internal/carddb"

func loadCards() {
	carddb.Register(&carddb.Def{
		DefID: "cyclops", Name: "Циклоп", Cost: 3, Element: carddb.ElementMountain,
		CardType: carddb.CardTypeCreature, Life: 10, Attack: carddb.AttackTriple{2, 4, 6}, Move: 2,
		Armor: 0, MaxCounters: 0,
	})
	carddb.Register(&carddb.Def{
		DefID: "gnome_basaarg", Name: "Гном-басаарг", Cost: 2, Element: carddb.ElementSwamp,
		CardType: carddb.CardTypeCreature, Life: 15, Attack: carddb.AttackTriple{1, 3, 5}, Move: 1,
		Armor: 1, MaxCounters: 0, AbilityIDs: []string{"must_attack_tapped"},
	})
	carddb.Register(&carddb.Def{
		DefID: "kobold", Name: "Кобольд", Cost: 1, Element: carddb.ElementForest,
		CardType: carddb.CardTypeCreature, Life: 15, Attack: carddb.AttackTriple{1, 2, 4}, Move: 2,
		Armor: 0, MaxCounters: 0,
	})
	carddb.Register(&carddb.Def{
		DefID: "korpit", Name: "Корпит", Cost: 4, Element: carddb.ElementPlains,
		CardType: carddb.CardTypeCreature, Life: 30, Attack: carddb.AttackTriple{2, 4, 6}, Move: 3,
		IsFlying: true, Armor: 0, MaxCounters: 0, AbilityIDs: []string{"scavenging"},
	})
	carddb.Register(&carddb.Def{
		DefID: "lovec_udachi", Name: "Ловец удачи", Cost: 2, Element: carddb.ElementNeutral,
		CardType: carddb.CardTypeCreature, Life: 8, Attack: carddb.AttackTriple{1, 2, 3}, Move: 2,
		Armor: 0, MaxCounters: 0, AbilityIDs: []string{"luck"},
	})
	carddb.Register(&carddb.Def{
		DefID: "kostedrobitel", Name: "Костедробитель", Cost: 3, Element: carddb.ElementMountain,
		CardType: carddb.CardTypeCreature, Life: 12, Attack: carddb.AttackTriple{2, 4, 5}, Move: 2,
		Armor: 0, MaxCounters: 0, AbilityIDs: []string{"valhalla_strike"},
	})

	// Breadth cards exercising the remaining abilities registered in
	// abilities.go (all but front_row_bonus, which no card carries),
	// proportionate to this engine's scope.
	carddb.Register(&carddb.Def{
		DefID: "lучник_teni", Name: "Лучник тени", Cost: 2, Element: carddb.ElementSwamp,
		CardType: carddb.CardTypeCreature, Life: 9, Attack: carddb.AttackTriple{1, 2, 3}, Move: 2,
		Armor: 0, MaxCounters: 0, AbilityIDs: []string{"movement_shot", "back_row_direct"},
	})
	carddb.Register(&carddb.Def{
		DefID: "znahar", Name: "Знахарь", Cost: 2, Element: carddb.ElementForest,
		CardType: carddb.CardTypeCreature, Life: 10, Attack: carddb.AttackTriple{1, 2, 3}, Move: 2,
		Armor: 0, MaxCounters: 0, AbilityIDs: []string{"healing_touch"},
	})
	carddb.Register(&carddb.Def{
		DefID: "pauk_yada", Name: "Паук-яда", Cost: 3, Element: carddb.ElementSwamp,
		CardType: carddb.CardTypeCreature, Life: 11, Attack: carddb.AttackTriple{1, 3, 4}, Move: 3,
		Armor: 0, MaxCounters: 0, AbilityIDs: []string{"web_shot"},
	})
	carddb.Register(&carddb.Def{
		DefID: "shchitonosec", Name: "Щитоносец", Cost: 2, Element: carddb.ElementPlains,
		CardType: carddb.CardTypeCreature, Life: 14, Attack: carddb.AttackTriple{1, 2, 4}, Move: 1,
		Armor: 1, MaxCounters: 0, AbilityIDs: []string{"shield_wall", "tough_hide"},
	})
	carddb.Register(&carddb.Def{
		DefID: "kopeyshchik", Name: "Копейщик", Cost: 2, Element: carddb.ElementPlains,
		CardType: carddb.CardTypeCreature, Life: 12, Attack: carddb.AttackTriple{1, 3, 4}, Move: 2,
		Armor: 0, MaxCounters: 0, AbilityIDs: []string{"spear_line"},
	})
	carddb.Register(&carddb.Def{
		DefID: "sekirshchik", Name: "Секирщик", Cost: 3, Element: carddb.ElementMountain,
		CardType: carddb.CardTypeCreature, Life: 13, Attack: carddb.AttackTriple{2, 3, 5}, Move: 2,
		Armor: 0, MaxCounters: 3, AbilityIDs: []string{"axe_counter", "axe_strike"},
	})
	carddb.Register(&carddb.Def{
		DefID: "strelok_flanga", Name: "Стрелок фланга", Cost: 2, Element: carddb.ElementForest,
		CardType: carddb.CardTypeCreature, Life: 9, Attack: carddb.AttackTriple{1, 2, 4}, Move: 2,
		Armor: 0, MaxCounters: 0, AbilityIDs: []string{"edge_column_attack", "attack_exp"},
	})
	carddb.Register(&carddb.Def{
		DefID: "vozmezdie", Name: "Возмездие", Cost: 3, Element: carddb.ElementSwamp,
		CardType: carddb.CardTypeCreature, Life: 11, Attack: carddb.AttackTriple{1, 3, 4}, Move: 2,
		Armor: 0, MaxCounters: 0, AbilityIDs: []string{"counter_shot"},
	})
	carddb.Register(&carddb.Def{
		DefID: "zhivuchiy_voin", Name: "Живучий воин", Cost: 3, Element: carddb.ElementNeutral,
		CardType: carddb.CardTypeCreature, Life: 13, Attack: carddb.AttackTriple{2, 3, 5}, Move: 2,
		Armor: 0, MaxCounters: 0, AbilityIDs: []string{"heal_on_attack"},
	})
	carddb.Register(&carddb.Def{
		DefID: "smrad_bolot", Name: "Смрад болот", Cost: 2, Element: carddb.ElementSwamp,
		CardType: carddb.CardTypeCreature, Life: 10, Attack: carddb.AttackTriple{1, 2, 3}, Move: 1,
		Armor: 0, MaxCounters: 0, AbilityIDs: []string{"hellish_stench"},
	})
	carddb.Register(&carddb.Def{
		DefID: "mag_ognya", Name: "Маг огня", Cost: 4, Element: carddb.ElementMountain,
		CardType: carddb.CardTypeCreature, Life: 10, Attack: carddb.AttackTriple{1, 2, 3}, Move: 2,
		Armor: 0, MaxCounters: 0, IsElite: true, AbilityIDs: []string{"fireball"},
	})
	carddb.Register(&carddb.Def{
		DefID: "zachishchennyi_mag", Name: "Защищённый маг", Cost: 3, Element: carddb.ElementPlains,
		CardType: carddb.CardTypeCreature, Life: 9, Attack: carddb.AttackTriple{1, 2, 3}, Move: 2,
		Armor: 0, MaxCounters: 0, AbilityIDs: []string{"magic_immune"},
	})
	carddb.Register(&carddb.Def{
		DefID: "strazh_tsentra", Name: "Страж центра", Cost: 2, Element: carddb.ElementForest,
		CardType: carddb.CardTypeCreature, Life: 12, Attack: carddb.AttackTriple{1, 3, 4}, Move: 1,
		Armor: 0, MaxCounters: 0, AbilityIDs: []string{"center_column_defense", "diagonal_defense"},
	})
	carddb.Register(&carddb.Def{
		DefID: "stepnoy_vsadnik", Name: "Степной всадник", Cost: 3, Element: carddb.ElementPlains,
		CardType: carddb.CardTypeCreature, Life: 11, Attack: carddb.AttackTriple{1, 3, 5}, Move: 3,
		Armor: 0, MaxCounters: 0, AbilityIDs: []string{"steppe_defense"},
	})
	carddb.Register(&carddb.Def{
		DefID: "khranitel_stroya", Name: "Хранитель строя", Cost: 3, Element: carddb.ElementMountain,
		CardType: carddb.CardTypeCreature, Life: 14, Attack: carddb.AttackTriple{2, 3, 4}, Move: 1,
		Armor: 1, MaxCounters: 0, AbilityIDs: []string{"shield_wall", "defense_exp"},
	})
	carddb.Register(&carddb.Def{
		DefID: "letuchiy_razvedchik", Name: "Летучий разведчик", Cost: 2, Element: carddb.ElementNeutral,
		CardType: carddb.CardTypeCreature, Life: 8, Attack: carddb.AttackTriple{1, 2, 3}, Move: 3,
		IsFlying: true, Armor: 0, MaxCounters: 0,
	})
	carddb.Register(&carddb.Def{
		DefID: "nevidimyi_strelok", Name: "Невидимый стрелок", Cost: 3, Element: carddb.ElementSwamp,
		CardType: carddb.CardTypeCreature, Life: 8, Attack: carddb.AttackTriple{1, 1, 2}, Move: 1,
		Armor: 0, MaxCounters: 0, AbilityIDs: []string{"restricted_strike", "shot_immune"},
	})
	carddb.Register(&carddb.Def{
		DefID: "borg", Name: "Борг", Cost: 3, Element: carddb.ElementMountain,
		CardType: carddb.CardTypeCreature, Life: 12, Attack: carddb.AttackTriple{1, 3, 4}, Move: 2,
		Armor: 0, MaxCounters: 1, AbilityIDs: []string{"borg_counter", "borg_strike"},
	})
	carddb.Register(&carddb.Def{
		DefID: "edinstvennyi_geroy", Name: "Единственный герой", Cost: 5, Element: carddb.ElementNeutral,
		CardType: carddb.CardTypeCreature, Life: 20, Attack: carddb.AttackTriple{2, 4, 6}, Move: 2,
		IsUnique: true, IsElite: true, Armor: 2, MaxCounters: 0,
		AbilityIDs: []string{"valhalla_ova", "attack_exp"},
	})
}
