package engine

import (
	"fmt"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/reference"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

// ShieldArmorID is the armor table entry for a shield
const ShieldArmorID = "shield"

// defaultSpeed is used when the species no longer resolves
const defaultSpeed = 30

// CalculateSheet derives the displayed numbers for char
func (e *engine) CalculateSheet(char *dnd5e.Character) *Sheet {
	if char == nil {
		return &Sheet{}
	}

	scores := char.AbilityScores
	prof := rules.ProficiencyBonus(char.Level)
	s := &Sheet{
		CharacterID:      char.ID,
		Level:            char.Level,
		ProficiencyBonus: prof,
		Abilities:        make(map[rules.Ability]AbilityLine, 6),
		Skills:           make(map[rules.Skill]SkillLine, 18),
		Initiative:       rules.Initiative(scores.Modifier(rules.Dexterity)),
		CurrencyGold:     char.Currency.TotalGold(),
		CoinWeight:       char.Currency.CoinWeight(),
		XPLevel:          rules.LevelFromXP(char.XP),
		XPToNextLevel:    rules.ExperienceToNextLevel(char.Level, char.XP),
	}
	s.LevelUpAvailable = char.Level < rules.MaxLevel && s.XPLevel > char.Level

	for _, a := range rules.AllAbilities() {
		mod := scores.Modifier(a)
		proficient := char.SavingThrows[a]
		s.Abilities[a] = AbilityLine{
			Score:          scores.Get(a),
			Modifier:       mod,
			Save:           rules.SavingThrowBonus(mod, prof, proficient),
			SaveProficient: proficient,
		}
	}

	for _, skill := range rules.AllSkills() {
		ability, _ := skill.Ability()
		p := char.Skills[skill]
		if p.Expertise && !p.Proficient {
			s.Warnings = append(s.Warnings, fmt.Sprintf("skill %s has expertise without proficiency", skill))
		}
		s.Skills[skill] = SkillLine{
			Ability:    ability,
			Bonus:      rules.SkillBonus(scores.Modifier(ability), prof, p.Proficient, p.Expertise),
			Proficient: p.Proficient,
			Expertise:  p.Expertise,
		}
	}
	perception := char.Skills[rules.Perception]
	s.PassivePerception = rules.PassivePerception(scores.Modifier(rules.Wisdom), prof, perception.Proficient, perception.Expertise)

	class, hasClass := e.tables.Classes.Get(char.ClassID)
	if !hasClass {
		s.unresolved("classes", char.ClassID)
	}

	weight := char.InventoryWeight() + char.Currency.CoinWeight()
	s.ArmorClass, weight = e.armorClass(s, char, class, weight)
	s.EffectiveAC = s.ArmorClass.Effective()

	s.Encumbrance = rules.CalculateEncumbrance(scores.Strength, weight)
	speed := defaultSpeed
	if species, ok := e.tables.Species.Get(char.SpeciesID); ok {
		speed = species.Speed
	} else {
		s.unresolved("species", char.SpeciesID)
	}
	s.Speed = max(0, speed-s.Encumbrance.SpeedPenalty)

	if hasClass && class.IsCaster() {
		mod := scores.Modifier(class.SpellcastingAbility)
		s.Spellcasting = &Spellcasting{
			Ability:       class.SpellcastingAbility,
			SaveDC:        rules.SpellSaveDC(prof, mod),
			AttackBonus:   rules.SpellAttackBonus(prof, mod),
			MaxSpellLevel: reference.MaxSpellLevelFor(class.Progression, char.Level),
		}
	}

	e.resolveChoiceLists(s, char, class, hasClass)
	return s
}

// armorClass resolves worn armor and returns the AC with the worn weight added
func (e *engine) armorClass(s *Sheet, char *dnd5e.Character, class reference.ClassDefinition, weight float64) (rules.ACResult, float64) {
	scores := char.AbilityScores
	in := rules.ACInput{
		DexterityModifier:    scores.Modifier(rules.Dexterity),
		ConstitutionModifier: scores.Modifier(rules.Constitution),
		WisdomModifier:       scores.Modifier(rules.Wisdom),
		UnarmoredDefense:     class.UnarmoredDefense,
		Override:             char.Equipment.ACOverride,
	}

	if id := char.Equipment.ArmorID; id != "" {
		if armor, ok := e.tables.Armor.Get(id); ok {
			in.Armor = armor.Spec()
			weight += armor.Weight
		} else {
			s.unresolved("armor", id)
		}
	}
	if char.Equipment.ShieldEquipped {
		in.Shield = true
		if shield, ok := e.tables.Armor.Get(ShieldArmorID); ok {
			weight += shield.Weight
		}
	}

	return rules.ArmorClass(in), weight
}

func (e *engine) resolveChoiceLists(s *Sheet, char *dnd5e.Character, class reference.ClassDefinition, hasClass bool) {
	invocations := e.tables.Invocations.Resolve(char.EldritchInvocations)
	s.Invocations = invocations.Found
	s.unresolved("invocations", invocations.Unresolved...)
	if boon, ok := e.tables.PactBoon(char.EldritchInvocations); ok {
		s.PactBoon = boon
	}

	maneuvers := e.tables.Maneuvers.Resolve(char.BattleMasterManeuvers)
	s.Maneuvers = maneuvers.Found
	s.unresolved("maneuvers", maneuvers.Unresolved...)

	metamagic := e.tables.Metamagic.Resolve(char.MetamagicOptions)
	s.Metamagic = metamagic.Found
	s.unresolved("metamagic", metamagic.Unresolved...)

	feats := e.tables.Feats.Resolve(char.Feats)
	s.Feats = feats.Found
	s.unresolved("feats", feats.Unresolved...)

	spells := e.tables.Spells.Resolve(char.KnownSpells)
	s.unresolved("spells", spells.Unresolved...)

	if !hasClass {
		return
	}
	if sub, ok := class.Subclass(char.SubclassID); ok {
		if sub.HasGrant(reference.GrantManeuvers) {
			dice := reference.SuperiorityDiceAt(char.Level)
			s.SuperiorityDice = &dice
		}
	} else if char.SubclassID != "" {
		s.unresolved("subclasses", char.SubclassID)
	}
}

func (s *Sheet) unresolved(table string, ids ...string) {
	if len(ids) == 0 {
		return
	}
	if s.Unresolved == nil {
		s.Unresolved = make(map[string][]string)
	}
	s.Unresolved[table] = append(s.Unresolved[table], ids...)
}
