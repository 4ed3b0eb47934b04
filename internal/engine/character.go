package engine

import (
	"slices"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/reference"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

// Base ability score limits at creation
const (
	MinBaseScore = 3
	MaxBaseScore = 18
)

// NewCharacter validates input and builds the level 1 character
func (e *engine) NewCharacter(input *NewCharacterInput) (*dnd5e.Character, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", input.ID, vb)
	errors.ValidateRequired("name", input.Name, vb)

	class, hasClass := e.tables.Classes.Get(input.ClassID)
	if !hasClass {
		vb.Fieldf("class_id", "unknown class %q", input.ClassID)
	}
	species, hasSpecies := e.tables.Species.Get(input.SpeciesID)
	if !hasSpecies {
		vb.Fieldf("species_id", "unknown species %q", input.SpeciesID)
	}
	background, hasBackground := e.tables.Backgrounds.Get(input.BackgroundID)
	if input.BackgroundID != "" && !hasBackground {
		vb.Fieldf("background_id", "unknown background %q", input.BackgroundID)
	}

	for _, a := range rules.AllAbilities() {
		errors.ValidateRange("ability_scores."+string(a), input.AbilityScores.Get(a), MinBaseScore, MaxBaseScore, vb)
	}

	if hasClass {
		e.validateCreationClass(vb, input, class)
	}

	trained := slices.Concat(input.SkillProficiencies, species.SkillProficiency, background.SkillProficiencies)
	for _, skill := range input.Expertise {
		if !slices.Contains(trained, skill) {
			vb.Fieldf("expertise", "%q needs proficiency", skill)
		}
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	c := &dnd5e.Character{
		ID:           input.ID,
		PlayerID:     input.PlayerID,
		Name:         input.Name,
		SpeciesID:    species.ID,
		ClassID:      class.ID,
		SubclassID:   input.SubclassID,
		BackgroundID: input.BackgroundID,
		Level:        1,
		Skills:       make(map[rules.Skill]dnd5e.SkillProficiency, 18),
		SavingThrows: make(map[rules.Ability]bool, 6),
		KnownSpells:  slices.Clone(input.KnownSpells),
		Inventory:    slices.Clone(input.Inventory),
		Currency:     input.Currency,
	}

	c.AbilityScores = input.AbilityScores
	for _, a := range rules.AllAbilities() {
		if bonus := species.AbilityBonuses[a]; bonus > 0 {
			raise(c, a, bonus)
		}
	}

	for _, a := range rules.AllAbilities() {
		c.SavingThrows[a] = slices.Contains(class.SavingThrows, a)
	}
	for _, skill := range rules.AllSkills() {
		c.Skills[skill] = dnd5e.SkillProficiency{}
	}
	grant := func(skills []rules.Skill) {
		for _, skill := range skills {
			p := c.Skills[skill]
			p.Proficient = true
			c.Skills[skill] = p
		}
	}
	grant(input.SkillProficiencies)
	grant(species.SkillProficiency)
	grant(background.SkillProficiencies)
	for _, skill := range input.Expertise {
		p := c.Skills[skill]
		p.Expertise = true
		c.Skills[skill] = p
	}

	hp := rules.MaxHitPointsAtFirstLevel(class.HitDie, c.AbilityScores.Modifier(rules.Constitution))
	c.MaxHP, c.CurrentHP = hp, hp
	c.HitDice = dnd5e.HitDice{Size: class.HitDie, Total: 1}

	applySlots(c, class, 1)
	c.ClassFeatures = appendFeatures(c.ClassFeatures, class.FeaturesAt(1))
	if sub, ok := class.Subclass(input.SubclassID); ok {
		c.ClassFeatures = appendFeatures(c.ClassFeatures, sub.FeaturesAt(1))
	}
	for _, t := range species.Traits {
		c.SpeciesTraits = append(c.SpeciesTraits, t.ID)
	}

	return c, nil
}

func (e *engine) validateCreationClass(vb *errors.ValidationBuilder, input *NewCharacterInput, class reference.ClassDefinition) {
	switch {
	case class.SubclassLevel == 1 && input.SubclassID == "":
		vb.RequiredField("subclass_id")
	case class.SubclassLevel == 1:
		if _, ok := class.Subclass(input.SubclassID); !ok {
			vb.Fieldf("subclass_id", "%q is not a %s subclass", input.SubclassID, class.Name)
		}
	case input.SubclassID != "":
		vb.Fieldf("subclass_id", "%s chooses a subclass at level %d", class.Name, class.SubclassLevel)
	}

	if len(input.SkillProficiencies) != class.SkillChoices.Count {
		vb.Fieldf("skill_proficiencies", "expected %d skills, got %d", class.SkillChoices.Count, len(input.SkillProficiencies))
	}
	seen := map[rules.Skill]bool{}
	for _, skill := range input.SkillProficiencies {
		if seen[skill] {
			vb.Fieldf("skill_proficiencies", "%q picked twice", skill)
		} else if !slices.Contains(class.SkillChoices.From, skill) {
			vb.Fieldf("skill_proficiencies", "%q is not a %s skill", skill, class.Name)
		}
		seen[skill] = true
	}

	e.validateCreationSpells(vb, input, class)
}

func (e *engine) validateCreationSpells(vb *errors.ValidationBuilder, input *NewCharacterInput, class reference.ClassDefinition) {
	if !class.IsCaster() {
		if len(input.KnownSpells) > 0 {
			vb.Fieldf("known_spells", "%s does not cast spells", class.Name)
		}
		return
	}

	maxLevel := reference.MaxSpellLevelFor(class.Progression, 1)
	leveled := 0
	seen := map[string]bool{}
	for _, id := range input.KnownSpells {
		spell, ok := e.tables.Spells.Get(id)
		switch {
		case seen[id]:
			vb.Fieldf("known_spells", "%q picked twice", id)
		case !ok:
			vb.Fieldf("known_spells", "unknown spell %q", id)
		case !spell.AvailableTo(class.ID):
			vb.Fieldf("known_spells", "%q is not on the %s spell list", id, class.ID)
		case spell.Level > maxLevel:
			vb.Fieldf("known_spells", "%q is above spell level %d", id, maxLevel)
		case spell.Level > 0:
			leveled++
		}
		seen[id] = true
	}

	if class.IsKnownCaster() && leveled != class.SpellsKnownAt(1) {
		vb.Fieldf("known_spells", "expected %d spells of 1st level or higher, got %d", class.SpellsKnownAt(1), leveled)
	}
}
