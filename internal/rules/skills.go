package rules

// Skill identifies one of the 18 fixed skills
type Skill string

// Skills
const (
	Acrobatics     Skill = "acrobatics"
	AnimalHandling Skill = "animal-handling"
	Arcana         Skill = "arcana"
	Athletics      Skill = "athletics"
	Deception      Skill = "deception"
	History        Skill = "history"
	Insight        Skill = "insight"
	Intimidation   Skill = "intimidation"
	Investigation  Skill = "investigation"
	Medicine       Skill = "medicine"
	Nature         Skill = "nature"
	Perception     Skill = "perception"
	Performance    Skill = "performance"
	Persuasion     Skill = "persuasion"
	Religion       Skill = "religion"
	SleightOfHand  Skill = "sleight-of-hand"
	Stealth        Skill = "stealth"
	Survival       Skill = "survival"
)

var skillAbilities = map[Skill]Ability{
	Acrobatics:     Dexterity,
	AnimalHandling: Wisdom,
	Arcana:         Intelligence,
	Athletics:      Strength,
	Deception:      Charisma,
	History:        Intelligence,
	Insight:        Wisdom,
	Intimidation:   Charisma,
	Investigation:  Intelligence,
	Medicine:       Wisdom,
	Nature:         Intelligence,
	Perception:     Wisdom,
	Performance:    Charisma,
	Persuasion:     Charisma,
	Religion:       Intelligence,
	SleightOfHand:  Dexterity,
	Stealth:        Dexterity,
	Survival:       Wisdom,
}

// AllSkills returns the 18 skills in alphabetical order
func AllSkills() []Skill {
	return []Skill{
		Acrobatics, AnimalHandling, Arcana, Athletics, Deception, History,
		Insight, Intimidation, Investigation, Medicine, Nature, Perception,
		Performance, Persuasion, Religion, SleightOfHand, Stealth, Survival,
	}
}

// Ability returns the ability a skill is rolled with; ok is false for unknown skills
func (s Skill) Ability() (Ability, bool) {
	a, ok := skillAbilities[s]
	return a, ok
}

// SkillBonus is abilityMod plus profBonus when proficient plus another profBonus for expertise.
//
// Precondition: expertise implies proficient. The formula does not check it; expertise without
// proficiency still adds profBonus exactly once through the expertise term.
func SkillBonus(abilityMod, profBonus int, proficient, expertise bool) int {
	bonus := abilityMod
	if proficient {
		bonus += profBonus
	}
	if expertise {
		bonus += profBonus
	}
	return bonus
}

// PassivePerception is 10 plus the perception skill bonus
func PassivePerception(wisdomMod, profBonus int, proficient, expertise bool) int {
	return 10 + SkillBonus(wisdomMod, profBonus, proficient, expertise)
}

// SpellSaveDC is 8 + proficiency bonus + spellcasting ability modifier
func SpellSaveDC(profBonus, abilityMod int) int {
	return 8 + profBonus + abilityMod
}

// SpellAttackBonus is proficiency bonus + spellcasting ability modifier
func SpellAttackBonus(profBonus, abilityMod int) int {
	return profBonus + abilityMod
}
