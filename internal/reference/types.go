package reference

import "github.com/KirkDiggler/rpg-sheet/internal/rules"

// Progression is how a class gains spell slots
type Progression string

// Slot progressions
const (
	ProgressionNone Progression = "none"
	ProgressionFull Progression = "full"
	ProgressionHalf Progression = "half"
	ProgressionPact Progression = "pact"
)

// Grant names a choice list a class or subclass unlocks
type Grant string

// Choice list grants
const (
	GrantInvocations Grant = "invocations"
	GrantManeuvers   Grant = "maneuvers"
	GrantMetamagic   Grant = "metamagic"
)

// ClassFeature is a feature unlocked at a class level
type ClassFeature struct {
	Ref         `yaml:",inline"`
	Level       int    `yaml:"level" json:"level"`
	Description string `yaml:"description" json:"description,omitempty"`
}

// Subclass is an archetype chosen at the class's subclass level
type Subclass struct {
	Ref      `yaml:",inline"`
	Grants   []Grant        `yaml:"grants" json:"grants,omitempty"`
	Features []ClassFeature `yaml:"features" json:"features"`
}

// SkillChoice is the set of skills a class picks proficiencies from
type SkillChoice struct {
	Count int           `yaml:"count" json:"count"`
	From  []rules.Skill `yaml:"from" json:"from"`
}

// ClassDefinition is a character class
type ClassDefinition struct {
	Ref                 `yaml:",inline"`
	HitDie              int                    `yaml:"hit_die" json:"hit_die"`
	SavingThrows        []rules.Ability        `yaml:"saving_throws" json:"saving_throws"`
	SkillChoices        SkillChoice            `yaml:"skill_choices" json:"skill_choices"`
	SpellcastingAbility rules.Ability          `yaml:"spellcasting_ability" json:"spellcasting_ability,omitempty"`
	Progression         Progression            `yaml:"progression" json:"progression"`
	SpellsKnown         []int                  `yaml:"spells_known" json:"spells_known,omitempty"`
	ASILevels           []int                  `yaml:"asi_levels" json:"asi_levels"`
	SubclassLevel       int                    `yaml:"subclass_level" json:"subclass_level"`
	PactBoonLevel       int                    `yaml:"pact_boon_level" json:"pact_boon_level,omitempty"`
	UnarmoredDefense    rules.UnarmoredDefense `yaml:"unarmored_defense" json:"unarmored_defense,omitempty"`
	Grants              []Grant                `yaml:"grants" json:"grants,omitempty"`
	Features            []ClassFeature         `yaml:"features" json:"features"`
	Subclasses          []Subclass             `yaml:"subclasses" json:"subclasses"`
}

// IsCaster reports whether the class gains spell slots
func (c ClassDefinition) IsCaster() bool {
	return c.Progression != "" && c.Progression != ProgressionNone
}

// IsKnownCaster reports whether the class learns a fixed spell list rather than preparing one
func (c ClassDefinition) IsKnownCaster() bool {
	return len(c.SpellsKnown) > 0
}

// SpellsKnownAt is the spells-known count at level, 0 for prepared casters and levels outside the table
func (c ClassDefinition) SpellsKnownAt(level int) int {
	if level < 1 || level > len(c.SpellsKnown) {
		return 0
	}
	return c.SpellsKnown[level-1]
}

// IsASILevel reports whether level grants an ability score improvement
func (c ClassDefinition) IsASILevel(level int) bool {
	for _, l := range c.ASILevels {
		if l == level {
			return true
		}
	}
	return false
}

// FeaturesAt returns the class features unlocked exactly at level
func (c ClassDefinition) FeaturesAt(level int) []ClassFeature {
	return featuresAt(c.Features, level)
}

// Subclass finds a subclass of this class by id
func (c ClassDefinition) Subclass(id string) (Subclass, bool) {
	for _, s := range c.Subclasses {
		if s.ID == id {
			return s, true
		}
	}
	return Subclass{}, false
}

// HasGrant reports whether the class itself unlocks g
func (c ClassDefinition) HasGrant(g Grant) bool {
	return hasGrant(c.Grants, g)
}

// FeaturesAt returns the subclass features unlocked exactly at level
func (s Subclass) FeaturesAt(level int) []ClassFeature {
	return featuresAt(s.Features, level)
}

// HasGrant reports whether the subclass unlocks g
func (s Subclass) HasGrant(g Grant) bool {
	return hasGrant(s.Grants, g)
}

func featuresAt(features []ClassFeature, level int) []ClassFeature {
	var out []ClassFeature
	for _, f := range features {
		if f.Level == level {
			out = append(out, f)
		}
	}
	return out
}

func hasGrant(grants []Grant, g Grant) bool {
	for _, have := range grants {
		if have == g {
			return true
		}
	}
	return false
}

// Trait is a species trait
type Trait struct {
	Ref         `yaml:",inline"`
	Description string `yaml:"description" json:"description,omitempty"`
}

// SpeciesDefinition is a playable species
type SpeciesDefinition struct {
	Ref              `yaml:",inline"`
	Speed            int                   `yaml:"speed" json:"speed"`
	Size             string                `yaml:"size" json:"size"`
	AbilityBonuses   map[rules.Ability]int `yaml:"ability_bonuses" json:"ability_bonuses,omitempty"`
	Traits           []Trait               `yaml:"traits" json:"traits"`
	SkillProficiency []rules.Skill         `yaml:"skill_proficiencies" json:"skill_proficiencies,omitempty"`
}

// Background grants fixed proficiencies
type Background struct {
	Ref                `yaml:",inline"`
	SkillProficiencies []rules.Skill `yaml:"skill_proficiencies" json:"skill_proficiencies"`
	ToolProficiencies  []string      `yaml:"tool_proficiencies" json:"tool_proficiencies,omitempty"`
	Feature            string        `yaml:"feature" json:"feature,omitempty"`
}

// Spell is a spell any class may learn
type Spell struct {
	Ref         `yaml:",inline"`
	Level       int      `yaml:"level" json:"level"`
	School      string   `yaml:"school" json:"school"`
	Classes     []string `yaml:"classes" json:"classes"`
	Ritual      bool     `yaml:"ritual" json:"ritual,omitempty"`
	Description string   `yaml:"description" json:"description,omitempty"`
}

// AvailableTo reports whether classID has the spell on its list
func (s Spell) AvailableTo(classID string) bool {
	for _, c := range s.Classes {
		if c == classID {
			return true
		}
	}
	return false
}

// Weapon is a weapon table entry
type Weapon struct {
	Ref        `yaml:",inline"`
	Category   string   `yaml:"category" json:"category"`
	Damage     string   `yaml:"damage" json:"damage"`
	DamageType string   `yaml:"damage_type" json:"damage_type"`
	Weight     float64  `yaml:"weight" json:"weight"`
	CostCP     int      `yaml:"cost_cp" json:"cost_cp"`
	Properties []string `yaml:"properties" json:"properties,omitempty"`
}

// Armor is an armor table entry. Shields are listed with category "shield".
type Armor struct {
	Ref                 `yaml:",inline"`
	Category            string         `yaml:"category" json:"category"`
	BaseAC              int            `yaml:"base_ac" json:"base_ac"`
	DexBonus            rules.DexBonus `yaml:"dex_bonus" json:"dex_bonus"`
	StrengthRequirement int            `yaml:"strength_requirement" json:"strength_requirement,omitempty"`
	StealthDisadvantage bool           `yaml:"stealth_disadvantage" json:"stealth_disadvantage,omitempty"`
	Weight              float64        `yaml:"weight" json:"weight"`
	CostCP              int            `yaml:"cost_cp" json:"cost_cp"`
}

// Spec returns the part of the entry the AC formula uses
func (a Armor) Spec() *rules.ArmorSpec {
	return &rules.ArmorSpec{BaseAC: a.BaseAC, DexBonus: a.DexBonus}
}

// Feat is a feat taken in place of an ability score improvement
type Feat struct {
	Ref            `yaml:",inline"`
	Prerequisite   string                `yaml:"prerequisite" json:"prerequisite,omitempty"`
	AbilityBonuses map[rules.Ability]int `yaml:"ability_bonuses" json:"ability_bonuses,omitempty"`
	Description    string                `yaml:"description" json:"description,omitempty"`
}

// Invocation is an eldritch invocation. Entries with GrantsPactBoon set stand for a pact boon choice.
type Invocation struct {
	Ref            `yaml:",inline"`
	MinLevel       int    `yaml:"min_level" json:"min_level,omitempty"`
	PactBoon       string `yaml:"pact_boon" json:"pact_boon,omitempty"`
	GrantsPactBoon string `yaml:"grants_pact_boon" json:"grants_pact_boon,omitempty"`
	Prerequisite   string `yaml:"prerequisite" json:"prerequisite,omitempty"`
	Description    string `yaml:"description" json:"description,omitempty"`
}

// Maneuver is a battle master maneuver
type Maneuver struct {
	Ref         `yaml:",inline"`
	Description string `yaml:"description" json:"description,omitempty"`
}

// Metamagic is a sorcerer metamagic option
type Metamagic struct {
	Ref          `yaml:",inline"`
	SorceryPoint int    `yaml:"sorcery_points" json:"sorcery_points"`
	Description  string `yaml:"description" json:"description,omitempty"`
}

// Tool is a tool or kit
type Tool struct {
	Ref      `yaml:",inline"`
	Category string  `yaml:"category" json:"category"`
	Weight   float64 `yaml:"weight" json:"weight"`
	CostCP   int     `yaml:"cost_cp" json:"cost_cp"`
}
