package engine

import (
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/reference"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

func (s *EngineTestSuite) TestCalculateSheet_ArmorClass() {
	c := s.character("fighter", 1)

	s.Equal(12, s.engine.CalculateSheet(c).EffectiveAC, "unarmored 10 + dex 2")

	c.Equipment.ArmorID = "leather"
	s.Equal(13, s.engine.CalculateSheet(c).EffectiveAC)

	c.Equipment.ShieldEquipped = true
	s.Equal(15, s.engine.CalculateSheet(c).EffectiveAC)

	c.Equipment.ArmorID = "chain-mail"
	s.Equal(18, s.engine.CalculateSheet(c).EffectiveAC, "heavy armor ignores dex")

	c.Equipment.ArmorID = "half-plate"
	c.AbilityScores.Dexterity = 18
	s.Equal(19, s.engine.CalculateSheet(c).EffectiveAC, "medium armor caps dex at 2")

	override := 21
	c.Equipment.ACOverride = &override
	sheet := s.engine.CalculateSheet(c)
	s.Equal(21, sheet.EffectiveAC)
	s.Equal(19, sheet.ArmorClass.Calculated, "the calculated value is kept beside the override")
}

func (s *EngineTestSuite) TestCalculateSheet_UnarmoredDefense() {
	barbarian := s.character("barbarian", 1)
	barbarian.AbilityScores.Constitution = 16
	s.Equal(15, s.engine.CalculateSheet(barbarian).EffectiveAC)

	barbarian.Equipment.ShieldEquipped = true
	s.Equal(17, s.engine.CalculateSheet(barbarian).EffectiveAC)

	monk := s.character("monk", 1)
	monk.AbilityScores.Wisdom = 16
	s.Equal(15, s.engine.CalculateSheet(monk).EffectiveAC)

	monk.Equipment.ArmorID = "leather"
	s.Equal(13, s.engine.CalculateSheet(monk).EffectiveAC, "armor replaces unarmored defense")
}

func (s *EngineTestSuite) TestCalculateSheet_UnknownArmor() {
	c := s.character("fighter", 1)
	c.Equipment.ArmorID = "mithral-weave"

	sheet := s.engine.CalculateSheet(c)
	s.Equal(12, sheet.EffectiveAC)
	s.Equal([]string{"mithral-weave"}, sheet.Unresolved["armor"])
}

func (s *EngineTestSuite) TestCalculateSheet_Encumbrance() {
	c := s.character("fighter", 1)
	c.AbilityScores.Strength = 10
	c.Equipment.ArmorID = "leather"
	c.Inventory = []dnd5e.InventoryItem{{ItemID: "pack", Name: "Explorer's Pack", Quantity: 1, Weight: 41}}

	sheet := s.engine.CalculateSheet(c)
	s.Equal(51.0, sheet.Encumbrance.Weight)
	s.Equal(rules.Encumbered, sheet.Encumbrance.Status)
	s.Equal(20, sheet.Speed)

	c.Inventory[0].Weight = 40
	sheet = s.engine.CalculateSheet(c)
	s.Equal(rules.Unencumbered, sheet.Encumbrance.Status, "exactly at the threshold is not encumbered")
	s.Equal(30, sheet.Speed)

	c.Currency = rules.Currency{GP: 100}
	sheet = s.engine.CalculateSheet(c)
	s.Equal(2.0, sheet.CoinWeight)
	s.Equal(100.0, sheet.CurrencyGold)
	s.Equal(rules.Encumbered, sheet.Encumbrance.Status, "coins count toward carried weight")
}

func (s *EngineTestSuite) TestCalculateSheet_Spellcasting() {
	c := s.character("wizard", 5)
	c.AbilityScores.Intelligence = 16

	sheet := s.engine.CalculateSheet(c)
	s.Require().NotNil(sheet.Spellcasting)
	s.Equal(rules.Intelligence, sheet.Spellcasting.Ability)
	s.Equal(14, sheet.Spellcasting.SaveDC)
	s.Equal(6, sheet.Spellcasting.AttackBonus)
	s.Equal(3, sheet.Spellcasting.MaxSpellLevel)

	s.Nil(s.engine.CalculateSheet(s.character("fighter", 5)).Spellcasting)
}

func (s *EngineTestSuite) TestCalculateSheet_SkillsAndSaves() {
	c := s.character("fighter", 1)
	c.SavingThrows[rules.Strength] = true
	c.Skills[rules.Athletics] = dnd5e.SkillProficiency{Proficient: true}
	c.Skills[rules.Perception] = dnd5e.SkillProficiency{Proficient: true, Expertise: true}

	sheet := s.engine.CalculateSheet(c)
	s.Equal(2, sheet.ProficiencyBonus)
	s.Equal(4, sheet.Abilities[rules.Strength].Save)
	s.Equal(2, sheet.Abilities[rules.Dexterity].Save)
	s.Equal(4, sheet.Skills[rules.Athletics].Bonus)
	s.Equal(rules.Strength, sheet.Skills[rules.Athletics].Ability)
	s.Equal(2, sheet.Skills[rules.Stealth].Bonus)
	s.Equal(14, sheet.PassivePerception)
	s.Equal(2, sheet.Initiative)
	s.Len(sheet.Skills, 18)
	s.Empty(sheet.Warnings)
}

func (s *EngineTestSuite) TestCalculateSheet_ExpertiseWithoutProficiencyWarns() {
	c := s.character("rogue", 1)
	c.Skills[rules.Stealth] = dnd5e.SkillProficiency{Expertise: true}

	sheet := s.engine.CalculateSheet(c)
	s.Len(sheet.Warnings, 1)
	s.Contains(sheet.Warnings[0], "stealth")
	s.Equal(4, sheet.Skills[rules.Stealth].Bonus, "dex 2 plus the expertise term")
}

func (s *EngineTestSuite) TestCalculateSheet_ExperienceProgress() {
	c := s.character("fighter", 2)
	c.XP = 900

	sheet := s.engine.CalculateSheet(c)
	s.Equal(3, sheet.XPLevel)
	s.True(sheet.LevelUpAvailable)

	c.XP = 300
	sheet = s.engine.CalculateSheet(c)
	s.False(sheet.LevelUpAvailable)
	s.Equal(600, sheet.XPToNextLevel)
}

func (s *EngineTestSuite) TestCalculateSheet_UnresolvedChoices() {
	c := s.character("warlock", 3)
	c.EldritchInvocations = []string{"pact-of-the-tome", "agonizing-blast", "retired-invocation"}
	c.Feats = []string{"homebrew-feat"}
	c.KnownSpells = []string{"eldritch-blast", "lost-spell"}

	sheet := s.engine.CalculateSheet(c)
	s.Len(sheet.Invocations, 2)
	s.Equal("tome", sheet.PactBoon)
	s.Equal([]string{"retired-invocation"}, sheet.Unresolved["invocations"])
	s.Equal([]string{"homebrew-feat"}, sheet.Unresolved["feats"])
	s.Equal([]string{"lost-spell"}, sheet.Unresolved["spells"])
	s.Empty(sheet.Feats)
}

func (s *EngineTestSuite) TestCalculateSheet_UnknownClassAndSpecies() {
	c := s.character("fighter", 1)
	c.ClassID = "artificer"
	c.SubclassID = "alchemist"
	c.SpeciesID = "warforged"

	sheet := s.engine.CalculateSheet(c)
	s.Equal([]string{"artificer"}, sheet.Unresolved["classes"])
	s.Equal([]string{"warforged"}, sheet.Unresolved["species"])
	s.Equal(30, sheet.Speed)
	s.Nil(sheet.Spellcasting)
}

func (s *EngineTestSuite) TestCalculateSheet_Superiority() {
	c := s.character("fighter", 7)
	c.SubclassID = "battle-master"

	sheet := s.engine.CalculateSheet(c)
	s.Require().NotNil(sheet.SuperiorityDice)
	s.Equal(5, sheet.SuperiorityDice.Count)
	s.Equal(reference.DieSize(8), sheet.SuperiorityDice.Size)

	c.SubclassID = "champion"
	s.Nil(s.engine.CalculateSheet(c).SuperiorityDice)
}

func (s *EngineTestSuite) TestCalculateSheet_Nil() {
	s.NotNil(s.engine.CalculateSheet(nil))
}
