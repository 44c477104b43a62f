// Package content is the production card and ability table: the frozen
// data the registries in package ability and package carddb are
// populated with at program start, with one function per concern called
// from a single Load entry point, covering a core roster of creatures
// plus supporting breadth cards around them.
package content

import "github.com/berserk-vibe/matchd/internal/ability"

// Load registers every ability and card definition. Call once at program
// start, before any Engine is constructed.
func Load() {
	loadAbilities()
	loadCards()
}

func loadAbilities() {
	ability.Register(&ability.Def{
		ID: "luck", Name: "Удача", AbilityType: ability.TypeActive,
		TargetType: ability.TargetNone, Trigger: ability.TriggerOnDiceRoll,
		IsInstant: true, Cooldown: 0,
		Description: "Shift or reroll a die during the priority window.",
		StatusText:  "удача",
	})
	ability.Register(&ability.Def{
		ID: "scavenging", Name: "Падальщик", AbilityType: ability.TypeTriggered,
		TargetType: ability.TargetSelf, Trigger: ability.TriggerOnKill,
		EffectType: ability.EffectFullHealSelf, IsMandatory: true,
		Description: "Fully heals when this card kills an enemy in combat.",
		StatusText:  "падальщик",
	})
	ability.Register(&ability.Def{
		ID: "valhalla_strike", Name: "Удар из Вальгаллы", AbilityType: ability.TypeTriggered,
		TargetType: ability.TargetAlly, Trigger: ability.TriggerValhalla,
		DamageBonus: 2, IsMandatory: true,
		Description: "From the graveyard, grants a living ally +2 attack.",
		StatusText:  "валгалла +2",
	})
	ability.Register(&ability.Def{
		ID: "valhalla_ova", Name: "ОвА из Вальгаллы", AbilityType: ability.TypeTriggered,
		TargetType: ability.TargetAlly, Trigger: ability.TriggerValhalla,
		DiceBonusAttack: 1, IsMandatory: true,
		Description: "From the graveyard, grants a living ally +1 attack die.",
	})
	ability.Register(&ability.Def{
		ID: "must_attack_tapped", Name: "Берсерк", AbilityType: ability.TypePassive,
		TargetType: ability.TargetNone,
		Description: "Must attack an adjacent tapped enemy before anything else.",
	})
	ability.Register(&ability.Def{
		ID: "counter_shot", Name: "Ответный выстрел", AbilityType: ability.TypePassive,
		TargetType: ability.TargetNone,
		Description: "After surviving combat, fire 2 damage at a distant enemy.",
	})
	ability.Register(&ability.Def{
		ID: "heal_on_attack", Name: "Лечение в бою", AbilityType: ability.TypePassive,
		TargetType: ability.TargetSelf, HealAmount: 2,
		Description: "After attacking while damaged, may heal by the medium attack of the card directly in front.",
	})
	ability.Register(&ability.Def{
		ID: "hellish_stench", Name: "Адское зловоние", AbilityType: ability.TypePassive,
		TargetType: ability.TargetNone,
		Description: "After this card hits an untapped defender, that defender's owner must tap it or let it take 2.",
	})
	ability.Register(&ability.Def{
		ID: "attack_exp", Name: "Опыт атаки", AbilityType: ability.TypePassive,
		TargetType: ability.TargetNone,
		Description: "+1 to the attack die.",
	})
	ability.Register(&ability.Def{
		ID: "defense_exp", Name: "Опыт защиты", AbilityType: ability.TypePassive,
		TargetType: ability.TargetNone,
		Description: "+1 to the defense die.",
	})
	ability.Register(&ability.Def{
		ID: "edge_column_attack", Name: "Фланговая атака", AbilityType: ability.TypePassive,
		TargetType: ability.TargetNone,
		Description: "+1 to the attack die while standing in an edge column.",
	})
	ability.Register(&ability.Def{
		ID: "front_row_bonus", Name: "Передовая", AbilityType: ability.TypeTriggered,
		TargetType: ability.TargetSelf, Trigger: ability.TriggerOnTurnStart,
		DamageBonus: 1,
		Description: "+1 ranged damage while in the front row.",
	})
	ability.Register(&ability.Def{
		ID: "back_row_direct", Name: "Стрелок из тыла", AbilityType: ability.TypeTriggered,
		TargetType: ability.TargetSelf, Trigger: ability.TriggerOnTurnStart,
		Description: "Gains a direct attack while in the back row.",
	})
	ability.Register(&ability.Def{
		ID: "axe_counter", Name: "Секирный счёт", AbilityType: ability.TypeTriggered,
		TargetType: ability.TargetSelf, Trigger: ability.TriggerOnTurnStart,
		Description: "Gains one counter per turn while in formation.",
	})
	ability.Register(&ability.Def{
		ID: "axe_strike", Name: "Секирный удар", AbilityType: ability.TypeActive,
		TargetType: ability.TargetEnemy, Range: 1, Cooldown: 1,
		SpendsCounters: true, IsMagic: true,
		MagicDamage: ability.DamageTriple{0, 1, 2},
		Description: "Rolls for tier (0/1/2 magic damage), plus 1 damage per counter spent.",
		StatusText:  "секирный удар",
	})
	ability.Register(&ability.Def{
		ID: "borg_counter", Name: "Разбег", AbilityType: ability.TypeActive,
		TargetType: ability.TargetSelf, Cooldown: 0,
		EffectType:  ability.EffectGainCounter,
		Description: "Tap to gain a counter (max 1).",
	})
	ability.Register(&ability.Def{
		ID: "borg_strike", Name: "Удар борга", AbilityType: ability.TypeActive,
		TargetType: ability.TargetEnemy, Range: 1, Cooldown: 1,
		RequiresCounters: 1, DamageAmount: 3,
		Description: "Spend a counter for 3 fixed damage; stuns the target if it was tapped.",
		StatusText:  "удар борга",
	})
	ability.Register(&ability.Def{
		ID: "movement_shot", Name: "Выстрел по движению", AbilityType: ability.TypeActive,
		TargetType: ability.TargetEnemy, Cooldown: 1,
		RangedDamage: ability.DamageTriple{1, 2, 3}, RangedType: "shot",
		Description: "Fires at a distant enemy after it moves.",
	})
	ability.Register(&ability.Def{
		ID: "healing_touch", Name: "Исцеляющее касание", AbilityType: ability.TypeActive,
		TargetType: ability.TargetAlly, Range: 2, Cooldown: 2,
		EffectType: ability.EffectHealTarget, HealAmount: 4,
		Description: "Heals an ally at range.",
		StatusText:  "лечение +4",
	})
	ability.Register(&ability.Def{
		ID: "web_shot", Name: "Паутина", AbilityType: ability.TypeActive,
		TargetType: ability.TargetEnemy, Range: 3, Cooldown: 3,
		EffectType: ability.EffectApplyWebbed,
		Description: "Webs an enemy, absorbing its next incoming damage.",
		StatusText:  "опутан",
	})
	ability.Register(&ability.Def{
		ID: "shield_wall", Name: "Стена щитов", AbilityType: ability.TypePassive,
		TargetType: ability.TargetNone, IsFormation: true,
		FormationArmorBonus: 2, FormationAttackBonus: 1, FormationDiceBonus: 1,
		Description: "Formation: +2 armor, +1 attack, +1 attack die shared with an adjacent formation ally.",
	})
	ability.Register(&ability.Def{
		ID: "spear_line", Name: "Копейный строй", AbilityType: ability.TypePassive,
		TargetType: ability.TargetNone, IsFormation: true,
		FormationAttackBonus: 1, FormationDiceBonus: 0,
		Description: "Formation: +1 attack shared with an adjacent formation ally.",
	})
	ability.Register(&ability.Def{
		ID: "tough_hide", Name: "Толстая шкура", AbilityType: ability.TypePassive,
		TargetType: ability.TargetNone, DamageReduction: 1, CostThreshold: 2,
		Description: "Reduces incoming damage by 1 from cards costing 2 or less.",
	})
	ability.Register(&ability.Def{
		ID: "diagonal_defense", Name: "Диагональная защита", AbilityType: ability.TypePassive,
		TargetType: ability.TargetNone, DamageReduction: 1,
		Description: "Reduces incoming damage by 1 when attacked diagonally.",
	})
	ability.Register(&ability.Def{
		ID: "steppe_defense", Name: "Степная защита", AbilityType: ability.TypePassive,
		TargetType: ability.TargetNone, DamageReduction: 1,
		Description: "Reduces incoming damage by 1 from Mountain attackers.",
	})
	ability.Register(&ability.Def{
		ID: "center_column_defense", Name: "Защита центра", AbilityType: ability.TypePassive,
		TargetType: ability.TargetNone, DamageReduction: 1,
		Description: "Reduces weak incoming damage by 1 while standing in the center column.",
	})
	ability.Register(&ability.Def{
		ID: "shot_immune", Name: "Неуязвимость к выстрелам", AbilityType: ability.TypePassive,
		TargetType: ability.TargetNone,
		Description: "Immune to counter_shot's ranged follow-up.",
	})
	ability.Register(&ability.Def{
		ID: "magic_immune", Name: "Защита от магии", AbilityType: ability.TypePassive,
		TargetType: ability.TargetNone,
		Description: "Immune to magic damage.",
	})
	ability.Register(&ability.Def{
		ID: "fireball", Name: "Огненный шар", AbilityType: ability.TypeActive,
		TargetType: ability.TargetEnemy, Range: 4, Cooldown: 2, IsMagic: true,
		MagicDamage: ability.DamageTriple{2, 4, 6},
		Description: "Magic damage ignoring armor, blocked by magic_immune.",
		StatusText:  "огненный шар",
	})
	ability.Register(&ability.Def{
		ID: "restricted_strike", Name: "Ограниченный удар", AbilityType: ability.TypePassive,
		TargetType: ability.TargetNone,
		Description: "Can only attack the single cell directly in front.",
	})
}
