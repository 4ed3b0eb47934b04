package engine

import (
	"slices"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/reference"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

// LevelUp computes the next level of char. Hit points are not part of the result; the caller
// merges the gain separately.
func (e *engine) LevelUp(char *dnd5e.Character) (*LevelUpResult, bool) {
	if char == nil || char.Level < 1 || char.Level >= rules.MaxLevel {
		return nil, false
	}
	class, ok := e.tables.Classes.Get(char.ClassID)
	if !ok {
		return nil, false
	}

	oldLevel, newLevel := char.Level, char.Level+1
	next := char.Clone()
	next.Level = newLevel
	next.HitDice.Size = class.HitDie
	next.HitDice.Total = newLevel

	result := &LevelUpResult{
		Character:        next,
		NewClassFeatures: class.FeaturesAt(newLevel),
	}

	subclass, hasSubclass := class.Subclass(char.SubclassID)
	if hasSubclass {
		result.NewSubclassFeatures = subclass.FeaturesAt(newLevel)
	}
	next.ClassFeatures = appendFeatures(next.ClassFeatures, result.NewClassFeatures)
	next.ClassFeatures = appendFeatures(next.ClassFeatures, result.NewSubclassFeatures)

	applySlots(next, class, newLevel)

	choices := Choices{
		NeedsASI:      class.IsASILevel(newLevel),
		NeedsSubclass: !hasSubclass && class.SubclassLevel == newLevel,
	}
	if class.IsKnownCaster() {
		if gained := class.SpellsKnownAt(newLevel) - class.SpellsKnownAt(oldLevel); gained > 0 {
			choices.NewSpellsToLearn = gained
			choices.MaxSpellLevel = reference.MaxSpellLevelFor(class.Progression, newLevel)
		}
	}
	if class.HasGrant(reference.GrantInvocations) {
		choices.NewInvocations = max(0, reference.InvocationsKnown(newLevel)-reference.InvocationsKnown(oldLevel))
	}
	if class.PactBoonLevel > 0 && newLevel >= class.PactBoonLevel {
		_, held := e.tables.PactBoon(char.EldritchInvocations)
		choices.NeedsPactBoon = !held
	}
	if class.HasGrant(reference.GrantMetamagic) {
		choices.NewMetamagic = max(0, reference.MetamagicKnown(newLevel)-reference.MetamagicKnown(oldLevel))
	}
	if hasSubclass && subclass.HasGrant(reference.GrantManeuvers) {
		choices.NewManeuvers = newManeuvers(newLevel)
	}
	result.Choices = choices

	return result, true
}

// newManeuvers is how many maneuvers reaching level adds
func newManeuvers(level int) int {
	return max(0, reference.ManeuversKnown(level)-reference.ManeuversKnown(level-1))
}

// applySlots recomputes the slot tables for level, keeping expended counts clamped to the new totals
func applySlots(c *dnd5e.Character, class reference.ClassDefinition, level int) {
	totals := reference.SpellSlotsFor(class.Progression, level)
	for i := range c.SpellSlots {
		c.SpellSlots[i].Total = totals[i]
		c.SpellSlots[i].Expended = min(c.SpellSlots[i].Expended, totals[i])
	}

	if class.Progression != reference.ProgressionPact {
		c.PactMagic = nil
		return
	}
	pact, _ := reference.PactSlotsFor(level)
	expended := 0
	if c.PactMagic != nil {
		expended = min(c.PactMagic.Expended, pact.Count)
	}
	c.PactMagic = &dnd5e.PactMagic{SlotCount: pact.Count, SlotLevel: pact.SlotLevel, Expended: expended}
}

func appendFeatures(ids []string, features []reference.ClassFeature) []string {
	for _, f := range features {
		if !slices.Contains(ids, f.ID) {
			ids = append(ids, f.ID)
		}
	}
	return ids
}
