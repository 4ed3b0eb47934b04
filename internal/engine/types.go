package engine

import (
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/reference"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

// LevelUpResult is a proposed level up. It is never persisted as a character; the caller threads
// it through the choice steps and discards it on cancel.
type LevelUpResult struct {
	// Character is the proposed character at the new level, before hit points and choices are merged
	Character           *dnd5e.Character         `json:"character"`
	Choices             Choices                  `json:"choices"`
	NewClassFeatures    []reference.ClassFeature `json:"new_class_features"`
	NewSubclassFeatures []reference.ClassFeature `json:"new_subclass_features"`
}

// Choices lists what the player still has to pick for a level up
type Choices struct {
	NeedsASI         bool `json:"needs_asi"`
	NewSpellsToLearn int  `json:"new_spells_to_learn"`
	MaxSpellLevel    int  `json:"max_spell_level"`
	NewInvocations   int  `json:"new_invocations"`
	NewManeuvers     int  `json:"new_maneuvers"`
	NewMetamagic     int  `json:"new_metamagic"`
	NeedsSubclass    bool `json:"needs_subclass"`
	NeedsPactBoon    bool `json:"needs_pact_boon"`
}

// NeedsClassChoices reports whether any class option pick is pending
func (c Choices) NeedsClassChoices() bool {
	return c.NeedsSubclass || c.NeedsPactBoon || c.NewInvocations > 0 || c.NewManeuvers > 0 || c.NewMetamagic > 0
}

// ImprovementKind is how an ability score improvement is spent
type ImprovementKind string

// Improvement kinds
const (
	// ImprovementTwoPoints raises one ability by 2
	ImprovementTwoPoints ImprovementKind = "two_points"
	// ImprovementSplit raises two different abilities by 1
	ImprovementSplit ImprovementKind = "split"
	ImprovementFeat  ImprovementKind = "feat"
	// ImprovementDefer leaves the improvement unclaimed in PendingASI
	ImprovementDefer ImprovementKind = "defer"
)

// AbilityImprovement is the answer to an ASI choice
type AbilityImprovement struct {
	Kind      ImprovementKind `json:"kind"`
	Abilities []rules.Ability `json:"abilities,omitempty"`
	FeatID    string          `json:"feat_id,omitempty"`
}

// ClassChoices carries the subclass, invocation, maneuver and metamagic picks of a level up
type ClassChoices struct {
	SubclassID  string   `json:"subclass_id,omitempty"`
	PactBoon    string   `json:"pact_boon,omitempty"`
	Invocations []string `json:"invocations,omitempty"`
	Maneuvers   []string `json:"maneuvers,omitempty"`
	Metamagic   []string `json:"metamagic,omitempty"`
}

// SlotRef names a spell slot pool: a regular slot level, or the pact magic pool
type SlotRef struct {
	Level int  `json:"level"`
	Pact  bool `json:"pact"`
}

// NewCharacterInput describes a level 1 character
type NewCharacterInput struct {
	ID           string `json:"id"`
	PlayerID     string `json:"player_id"`
	Name         string `json:"name"`
	ClassID      string `json:"class_id"`
	SubclassID   string `json:"subclass_id,omitempty"`
	SpeciesID    string `json:"species_id"`
	BackgroundID string `json:"background_id,omitempty"`
	// AbilityScores are the scores before species bonuses
	AbilityScores      dnd5e.AbilityScores `json:"ability_scores"`
	SkillProficiencies []rules.Skill       `json:"skill_proficiencies"`
	Expertise          []rules.Skill       `json:"expertise,omitempty"`
	// KnownSpells holds cantrips and 1st level spells
	KnownSpells []string              `json:"known_spells,omitempty"`
	Currency    rules.Currency        `json:"currency"`
	Inventory   []dnd5e.InventoryItem `json:"inventory,omitempty"`
}

// AbilityLine is one ability score row of the sheet
type AbilityLine struct {
	Score          int  `json:"score"`
	Modifier       int  `json:"modifier"`
	Save           int  `json:"save"`
	SaveProficient bool `json:"save_proficient"`
}

// SkillLine is one skill row of the sheet
type SkillLine struct {
	Ability    rules.Ability `json:"ability"`
	Bonus      int           `json:"bonus"`
	Proficient bool          `json:"proficient"`
	Expertise  bool          `json:"expertise"`
}

// Spellcasting is the caster block of the sheet
type Spellcasting struct {
	Ability       rules.Ability `json:"ability"`
	SaveDC        int           `json:"save_dc"`
	AttackBonus   int           `json:"attack_bonus"`
	MaxSpellLevel int           `json:"max_spell_level"`
}

// Sheet is every derived number shown for a character
type Sheet struct {
	CharacterID      string                        `json:"character_id"`
	Level            int                           `json:"level"`
	ProficiencyBonus int                           `json:"proficiency_bonus"`
	Abilities        map[rules.Ability]AbilityLine `json:"abilities"`
	Skills           map[rules.Skill]SkillLine     `json:"skills"`

	PassivePerception int            `json:"passive_perception"`
	ArmorClass        rules.ACResult `json:"armor_class"`
	EffectiveAC       int            `json:"effective_ac"`
	Initiative        int            `json:"initiative"`
	Speed             int            `json:"speed"`

	Encumbrance  rules.Encumbrance `json:"encumbrance"`
	CurrencyGold float64           `json:"currency_gold"`
	CoinWeight   float64           `json:"coin_weight"`

	Spellcasting *Spellcasting `json:"spellcasting,omitempty"`

	XPLevel          int  `json:"xp_level"`
	XPToNextLevel    int  `json:"xp_to_next_level"`
	LevelUpAvailable bool `json:"level_up_available"`

	Invocations     []reference.Invocation     `json:"invocations,omitempty"`
	Maneuvers       []reference.Maneuver       `json:"maneuvers,omitempty"`
	Metamagic       []reference.Metamagic      `json:"metamagic,omitempty"`
	Feats           []reference.Feat           `json:"feats,omitempty"`
	SuperiorityDice *reference.SuperiorityDice `json:"superiority_dice,omitempty"`
	PactBoon        string                     `json:"pact_boon,omitempty"`

	// Unresolved lists stored ids, per table, that no longer match a table entry
	Unresolved map[string][]string `json:"unresolved,omitempty"`
	// Warnings report broken preconditions in the stored record; they are not corrected
	Warnings []string `json:"warnings,omitempty"`
}
