package rules

// Ability identifies one of the six ability scores
type Ability string

// Abilities
const (
	Strength     Ability = "strength"
	Dexterity    Ability = "dexterity"
	Constitution Ability = "constitution"
	Intelligence Ability = "intelligence"
	Wisdom       Ability = "wisdom"
	Charisma     Ability = "charisma"
)

// MaxAbilityScore is the cap applied when an ability score is increased
const MaxAbilityScore = 20

// AllAbilities returns the six abilities in sheet order
func AllAbilities() []Ability {
	return []Ability{Strength, Dexterity, Constitution, Intelligence, Wisdom, Charisma}
}

// Valid reports whether a is one of the six abilities
func (a Ability) Valid() bool {
	switch a {
	case Strength, Dexterity, Constitution, Intelligence, Wisdom, Charisma:
		return true
	}
	return false
}

// AbilityModifier returns floor((score - 10) / 2)
func AbilityModifier(score int) int {
	return floorDiv(score-10, 2)
}

// ProficiencyBonus returns floor((level - 1) / 4) + 2
func ProficiencyBonus(level int) int {
	return floorDiv(level-1, 4) + 2
}

// SavingThrowBonus adds the proficiency bonus to the modifier when proficient
func SavingThrowBonus(abilityMod, profBonus int, proficient bool) int {
	if proficient {
		return abilityMod + profBonus
	}
	return abilityMod
}

// Initiative is the dexterity modifier
func Initiative(dexMod int) int {
	return dexMod
}

// IncreaseAbility raises score by amount without exceeding MaxAbilityScore. A score already above
// the cap is left as it is.
func IncreaseAbility(score, amount int) int {
	if score >= MaxAbilityScore {
		return score
	}
	return min(MaxAbilityScore, score+amount)
}

// floorDiv divides rounding toward negative infinity; b must be positive
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}
