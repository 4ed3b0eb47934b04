// Package dnd5e holds the D&D 5e character aggregate
package dnd5e

import (
	"maps"
	"slices"

	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

// Character is a D&D 5e character record.
// NOTE: This is a data-only struct. Derived numbers (AC, skill bonuses, spell DC) are computed by the
// engine from this record and the reference tables, never stored here.
type Character struct {
	ID           string `json:"id"`
	PlayerID     string `json:"player_id"`
	Name         string `json:"name"`
	SpeciesID    string `json:"species_id"`
	ClassID      string `json:"class_id"`
	SubclassID   string `json:"subclass_id,omitempty"`
	BackgroundID string `json:"background_id,omitempty"`

	Level      int `json:"level"`
	XP         int `json:"xp"`
	PendingASI int `json:"pending_asi"`

	AbilityScores AbilityScores `json:"ability_scores"`

	MaxHP     int     `json:"max_hp"`
	CurrentHP int     `json:"current_hp"`
	TempHP    int     `json:"temp_hp"`
	HitDice   HitDice `json:"hit_dice"`

	Skills       map[rules.Skill]SkillProficiency `json:"skills"`
	SavingThrows map[rules.Ability]bool           `json:"saving_throws"`

	SpellSlots     SpellSlots `json:"spell_slots"`
	PactMagic      *PactMagic `json:"pact_magic,omitempty"`
	KnownSpells    []string   `json:"known_spells,omitempty"`
	PreparedSpells []string   `json:"prepared_spells,omitempty"`

	EldritchInvocations   []string `json:"eldritch_invocations,omitempty"`
	BattleMasterManeuvers []string `json:"battle_master_maneuvers,omitempty"`
	MetamagicOptions      []string `json:"metamagic_options,omitempty"`

	ClassFeatures []string `json:"class_features,omitempty"`
	Feats         []string `json:"feats,omitempty"`
	SpeciesTraits []string `json:"species_traits,omitempty"`

	Equipment Equipment       `json:"equipment"`
	Inventory []InventoryItem `json:"inventory,omitempty"`
	Currency  rules.Currency  `json:"currency"`

	// Revision is bumped by every stored write
	Revision  int64 `json:"revision"`
	CreatedAt int64 `json:"created_at"`
	UpdatedAt int64 `json:"updated_at"`
}

// AbilityScores holds the six scores
type AbilityScores struct {
	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Constitution int `json:"constitution"`
	Intelligence int `json:"intelligence"`
	Wisdom       int `json:"wisdom"`
	Charisma     int `json:"charisma"`
}

// Get returns the score for an ability, 0 for unknown abilities
func (a AbilityScores) Get(ability rules.Ability) int {
	switch ability {
	case rules.Strength:
		return a.Strength
	case rules.Dexterity:
		return a.Dexterity
	case rules.Constitution:
		return a.Constitution
	case rules.Intelligence:
		return a.Intelligence
	case rules.Wisdom:
		return a.Wisdom
	case rules.Charisma:
		return a.Charisma
	default:
		return 0
	}
}

// Set replaces the score for an ability; unknown abilities are ignored
func (a *AbilityScores) Set(ability rules.Ability, score int) {
	switch ability {
	case rules.Strength:
		a.Strength = score
	case rules.Dexterity:
		a.Dexterity = score
	case rules.Constitution:
		a.Constitution = score
	case rules.Intelligence:
		a.Intelligence = score
	case rules.Wisdom:
		a.Wisdom = score
	case rules.Charisma:
		a.Charisma = score
	}
}

// Modifier is the ability modifier for an ability
func (a AbilityScores) Modifier(ability rules.Ability) int {
	return rules.AbilityModifier(a.Get(ability))
}

// SkillProficiency marks training in a skill. Expertise is expected only together with Proficient.
type SkillProficiency struct {
	Proficient bool `json:"proficient"`
	Expertise  bool `json:"expertise"`
}

// HitDice tracks the hit dice pool
type HitDice struct {
	Size  int `json:"size"`
	Total int `json:"total"`
	Spent int `json:"spent"`
}

// Remaining is the number of unspent hit dice
func (h HitDice) Remaining() int {
	return max(0, h.Total-h.Spent)
}

// SpellSlot is one spell level's slot pool
type SpellSlot struct {
	Total    int `json:"total"`
	Expended int `json:"expended"`
}

// Available is the number of unexpended slots
func (s SpellSlot) Available() int {
	return max(0, s.Total-s.Expended)
}

// SpellSlots is the nine-level slot table, index 0 being 1st level
type SpellSlots [9]SpellSlot

// PactMagic is the warlock's separate slot pool, recovered on a short rest
type PactMagic struct {
	SlotCount int `json:"slot_count"`
	SlotLevel int `json:"slot_level"`
	Expended  int `json:"expended"`
}

// Equipment is what the character is wearing
type Equipment struct {
	ArmorID        string `json:"armor_id,omitempty"`
	ShieldEquipped bool   `json:"shield_equipped"`
	// ACOverride replaces the calculated armor class for display when set
	ACOverride *int `json:"ac_override,omitempty"`
}

// InventoryItem is a carried item
type InventoryItem struct {
	ItemID   string  `json:"item_id"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Weight   float64 `json:"weight"`
}

// HitPoints returns the hit point state
func (c *Character) HitPoints() rules.HitPoints {
	return rules.HitPoints{Max: c.MaxHP, Current: c.CurrentHP, Temp: c.TempHP}
}

// SetHitPoints stores a hit point state
func (c *Character) SetHitPoints(hp rules.HitPoints) {
	c.MaxHP = hp.Max
	c.CurrentHP = hp.Current
	c.TempHP = hp.Temp
}

// KnowsSpell reports whether id is in the known spells
func (c *Character) KnowsSpell(id string) bool {
	return slices.Contains(c.KnownSpells, id)
}

// InventoryWeight is the total weight of carried items
func (c *Character) InventoryWeight() float64 {
	var w float64
	for _, item := range c.Inventory {
		w += item.Weight * float64(item.Quantity)
	}
	return w
}

// Clone returns a deep copy
func (c *Character) Clone() *Character {
	if c == nil {
		return nil
	}
	out := *c
	out.Skills = maps.Clone(c.Skills)
	out.SavingThrows = maps.Clone(c.SavingThrows)
	if c.PactMagic != nil {
		pm := *c.PactMagic
		out.PactMagic = &pm
	}
	if c.Equipment.ACOverride != nil {
		v := *c.Equipment.ACOverride
		out.Equipment.ACOverride = &v
	}
	out.KnownSpells = slices.Clone(c.KnownSpells)
	out.PreparedSpells = slices.Clone(c.PreparedSpells)
	out.EldritchInvocations = slices.Clone(c.EldritchInvocations)
	out.BattleMasterManeuvers = slices.Clone(c.BattleMasterManeuvers)
	out.MetamagicOptions = slices.Clone(c.MetamagicOptions)
	out.ClassFeatures = slices.Clone(c.ClassFeatures)
	out.Feats = slices.Clone(c.Feats)
	out.SpeciesTraits = slices.Clone(c.SpeciesTraits)
	out.Inventory = slices.Clone(c.Inventory)
	return &out
}
