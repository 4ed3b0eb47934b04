package engine

import (
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

func (s *EngineTestSuite) dwarfFighterInput() *NewCharacterInput {
	return &NewCharacterInput{
		ID:           "char-1",
		PlayerID:     "player-1",
		Name:         "Bruenor",
		ClassID:      "fighter",
		SpeciesID:    "dwarf",
		BackgroundID: "soldier",
		AbilityScores: dnd5e.AbilityScores{
			Strength: 15, Dexterity: 12, Constitution: 14,
			Intelligence: 10, Wisdom: 13, Charisma: 8,
		},
		SkillProficiencies: []rules.Skill{rules.Perception, rules.Survival},
		Currency:           rules.Currency{GP: 10},
	}
}

func (s *EngineTestSuite) TestNewCharacter_DwarfFighter() {
	c, err := s.engine.NewCharacter(s.dwarfFighterInput())
	s.Require().NoError(err)

	s.Equal(1, c.Level)
	s.Equal(16, c.AbilityScores.Constitution, "dwarf +2")
	s.Equal(13, c.MaxHP)
	s.Equal(13, c.CurrentHP)
	s.Equal(dnd5e.HitDice{Size: 10, Total: 1}, c.HitDice)
	s.True(c.SavingThrows[rules.Strength])
	s.True(c.SavingThrows[rules.Constitution])
	s.False(c.SavingThrows[rules.Wisdom])
	s.Len(c.SavingThrows, 6)
	s.Len(c.Skills, 18)
	for _, skill := range []rules.Skill{rules.Perception, rules.Survival, rules.Athletics, rules.Intimidation} {
		s.True(c.Skills[skill].Proficient, skill)
	}
	s.False(c.Skills[rules.Stealth].Proficient)
	s.Equal([]string{"fighter-fighting-style", "fighter-second-wind"}, c.ClassFeatures)
	s.Contains(c.SpeciesTraits, "dwarf-darkvision")
	s.Equal(dnd5e.SpellSlots{}, c.SpellSlots)
	s.Nil(c.PactMagic)

	sheet := s.engine.CalculateSheet(c)
	s.Equal(25, sheet.Speed)
	s.Equal(13, sheet.PassivePerception)
	s.Equal(10.0, sheet.CurrencyGold)
}

func (s *EngineTestSuite) TestNewCharacter_DraconicSorcerer() {
	c, err := s.engine.NewCharacter(&NewCharacterInput{
		ID:         "char-2",
		Name:       "Sparks",
		ClassID:    "sorcerer",
		SubclassID: "draconic",
		SpeciesID:  "human",
		AbilityScores: dnd5e.AbilityScores{
			Strength: 8, Dexterity: 14, Constitution: 14,
			Intelligence: 10, Wisdom: 12, Charisma: 15,
		},
		SkillProficiencies: []rules.Skill{rules.Arcana, rules.Persuasion},
		KnownSpells:        []string{"fire-bolt", "magic-missile", "shield"},
	})
	s.Require().NoError(err)

	s.Equal(16, c.AbilityScores.Charisma)
	s.Equal(15, c.AbilityScores.Dexterity)
	s.Equal(8, c.MaxHP, "d6 + 2")
	s.Equal(2, c.SpellSlots[0].Total)
	s.Equal("draconic", c.SubclassID)
	s.Contains(c.ClassFeatures, "sorcerer-spellcasting")
	s.Len(c.KnownSpells, 3)

	sheet := s.engine.CalculateSheet(c)
	s.Require().NotNil(sheet.Spellcasting)
	s.Equal(13, sheet.Spellcasting.SaveDC)
}

func (s *EngineTestSuite) TestNewCharacter_Expertise() {
	input := &NewCharacterInput{
		ID:        "char-3",
		Name:      "Nim",
		ClassID:   "rogue",
		SpeciesID: "halfling",
		AbilityScores: dnd5e.AbilityScores{
			Strength: 8, Dexterity: 15, Constitution: 12,
			Intelligence: 13, Wisdom: 10, Charisma: 14,
		},
		BackgroundID:       "criminal",
		SkillProficiencies: []rules.Skill{rules.Acrobatics, rules.Perception, rules.SleightOfHand, rules.Insight},
		Expertise:          []rules.Skill{rules.SleightOfHand, rules.Stealth},
	}
	c, err := s.engine.NewCharacter(input)
	s.Require().NoError(err, "stealth comes from the criminal background")
	s.True(c.Skills[rules.Stealth].Expertise)
	s.True(c.Skills[rules.SleightOfHand].Expertise)

	input.Expertise = []rules.Skill{rules.Arcana}
	_, err = s.engine.NewCharacter(input)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "expertise")
}

func (s *EngineTestSuite) TestNewCharacter_Invalid() {
	cases := map[string]func(*NewCharacterInput){
		"missing id":          func(in *NewCharacterInput) { in.ID = "" },
		"missing name":        func(in *NewCharacterInput) { in.Name = "" },
		"unknown class":       func(in *NewCharacterInput) { in.ClassID = "artificer" },
		"unknown species":     func(in *NewCharacterInput) { in.SpeciesID = "warforged" },
		"unknown background":  func(in *NewCharacterInput) { in.BackgroundID = "pirate" },
		"score too high":      func(in *NewCharacterInput) { in.AbilityScores.Strength = 19 },
		"score too low":       func(in *NewCharacterInput) { in.AbilityScores.Charisma = 2 },
		"early subclass":      func(in *NewCharacterInput) { in.SubclassID = "champion" },
		"too few skills":      func(in *NewCharacterInput) { in.SkillProficiencies = in.SkillProficiencies[:1] },
		"skill off the list":  func(in *NewCharacterInput) { in.SkillProficiencies[0] = rules.Arcana },
		"skill picked twice":  func(in *NewCharacterInput) { in.SkillProficiencies[1] = in.SkillProficiencies[0] },
		"fighter with spells": func(in *NewCharacterInput) { in.KnownSpells = []string{"fire-bolt"} },
	}
	for name, mutate := range cases {
		s.Run(name, func() {
			input := s.dwarfFighterInput()
			mutate(input)
			_, err := s.engine.NewCharacter(input)
			s.Error(err)
			s.True(errors.IsInvalidArgument(err))
		})
	}

	_, err := s.engine.NewCharacter(nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *EngineTestSuite) TestNewCharacter_CasterSpellRules() {
	base := func() *NewCharacterInput {
		return &NewCharacterInput{
			ID:         "char-4",
			Name:       "Sparks",
			ClassID:    "sorcerer",
			SubclassID: "draconic",
			SpeciesID:  "human",
			AbilityScores: dnd5e.AbilityScores{
				Strength: 8, Dexterity: 14, Constitution: 14,
				Intelligence: 10, Wisdom: 12, Charisma: 15,
			},
			SkillProficiencies: []rules.Skill{rules.Arcana, rules.Persuasion},
			KnownSpells:        []string{"magic-missile", "shield"},
		}
	}

	cases := map[string]func(*NewCharacterInput){
		"missing subclass": func(in *NewCharacterInput) { in.SubclassID = "" },
		"foreign subclass": func(in *NewCharacterInput) { in.SubclassID = "fiend" },
		"too few spells":   func(in *NewCharacterInput) { in.KnownSpells = []string{"magic-missile"} },
		"off list spell":   func(in *NewCharacterInput) { in.KnownSpells = []string{"magic-missile", "cure-wounds"} },
		"spell too high":   func(in *NewCharacterInput) { in.KnownSpells = []string{"magic-missile", "misty-step"} },
		"duplicate spell":  func(in *NewCharacterInput) { in.KnownSpells = []string{"shield", "shield"} },
		"unknown spell":    func(in *NewCharacterInput) { in.KnownSpells = []string{"shield", "wish-lite"} },
	}
	for name, mutate := range cases {
		s.Run(name, func() {
			input := base()
			mutate(input)
			_, err := s.engine.NewCharacter(input)
			s.True(errors.IsInvalidArgument(err))
		})
	}

	_, err := s.engine.NewCharacter(base())
	s.NoError(err)
}
