package engine

import (
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
)

func (s *EngineTestSuite) TestLevelUp_FighterGetsASIAtFour() {
	result, ok := s.engine.LevelUp(s.character("fighter", 3))
	s.Require().True(ok)

	s.Equal(4, result.Character.Level)
	s.True(result.Choices.NeedsASI)
	s.Zero(result.Choices.NewSpellsToLearn)
	s.Equal(4, result.Character.HitDice.Total)
	s.Equal(10, result.Character.HitDice.Size)
}

func (s *EngineTestSuite) TestLevelUp_FighterExtraASILevels() {
	result, ok := s.engine.LevelUp(s.character("fighter", 5))
	s.Require().True(ok)
	s.True(result.Choices.NeedsASI, "fighters improve at 6 as well")

	result, ok = s.engine.LevelUp(s.character("wizard", 5))
	s.Require().True(ok)
	s.False(result.Choices.NeedsASI)
}

func (s *EngineTestSuite) TestLevelUp_PreparedCasterLearnsNothing() {
	result, ok := s.engine.LevelUp(s.character("wizard", 3))
	s.Require().True(ok)

	s.Zero(result.Choices.NewSpellsToLearn)
	s.Zero(result.Choices.MaxSpellLevel)
	s.Equal(dnd5e.SpellSlot{Total: 4}, result.Character.SpellSlots[0])
	s.Equal(dnd5e.SpellSlot{Total: 3}, result.Character.SpellSlots[1])
}

func (s *EngineTestSuite) TestLevelUp_KnownCasterLearns() {
	result, ok := s.engine.LevelUp(s.character("sorcerer", 3))
	s.Require().True(ok)

	s.Equal(1, result.Choices.NewSpellsToLearn)
	s.Equal(2, result.Choices.MaxSpellLevel)
	s.True(result.Choices.NeedsASI)
	s.Zero(result.Choices.NewMetamagic)
}

func (s *EngineTestSuite) TestLevelUp_SorcererMetamagicAtThree() {
	result, ok := s.engine.LevelUp(s.character("sorcerer", 2))
	s.Require().True(ok)
	s.Equal(2, result.Choices.NewMetamagic)

	ids := make([]string, 0, len(result.NewClassFeatures))
	for _, f := range result.NewClassFeatures {
		ids = append(ids, f.ID)
	}
	s.Contains(ids, "sorcerer-metamagic")
	s.Contains(result.Character.ClassFeatures, "sorcerer-metamagic")
}

func (s *EngineTestSuite) TestLevelUp_WarlockPactMagicAndInvocations() {
	result, ok := s.engine.LevelUp(s.character("warlock", 1))
	s.Require().True(ok)

	s.Equal(2, result.Choices.NewInvocations)
	s.Equal(1, result.Choices.NewSpellsToLearn)
	s.Equal(1, result.Choices.MaxSpellLevel)
	s.Require().NotNil(result.Character.PactMagic)
	s.Equal(dnd5e.PactMagic{SlotCount: 2, SlotLevel: 1}, *result.Character.PactMagic)
	s.Equal(dnd5e.SpellSlots{}, result.Character.SpellSlots, "warlocks have no regular slots")

	result, ok = s.engine.LevelUp(s.character("warlock", 4))
	s.Require().True(ok)
	s.Equal(3, result.Character.PactMagic.SlotLevel)
	s.Equal(3, result.Choices.MaxSpellLevel)

	result, _ = s.engine.LevelUp(s.character("warlock", 2))
	s.True(result.Choices.NeedsPactBoon)
	s.True(result.Choices.NeedsClassChoices())
	s.Zero(result.Choices.NewInvocations)

	result, _ = s.engine.LevelUp(s.character("warlock", 1))
	s.False(result.Choices.NeedsPactBoon)
}

func (s *EngineTestSuite) TestLevelUp_SubclassFeaturesAndChoice() {
	result, ok := s.engine.LevelUp(s.character("fighter", 2))
	s.Require().True(ok)
	s.True(result.Choices.NeedsSubclass)
	s.Empty(result.NewSubclassFeatures)

	bm := s.character("fighter", 6)
	bm.SubclassID = "battle-master"
	result, ok = s.engine.LevelUp(bm)
	s.Require().True(ok)
	s.False(result.Choices.NeedsSubclass)
	s.Equal(2, result.Choices.NewManeuvers)
	s.Require().Len(result.NewSubclassFeatures, 1)
	s.Equal("battle-master-know-your-enemy", result.NewSubclassFeatures[0].ID)

	champion := s.character("fighter", 6)
	result, ok = s.engine.LevelUp(champion)
	s.Require().True(ok)
	s.Zero(result.Choices.NewManeuvers)
}

func (s *EngineTestSuite) TestLevelUp_ClampsExpendedSlots() {
	c := s.character("paladin", 5)
	c.SpellSlots[1].Expended = 2
	c.SpellSlots[0].Expended = 3

	result, ok := s.engine.LevelUp(c)
	s.Require().True(ok)
	s.Equal(dnd5e.SpellSlot{Total: 4, Expended: 3}, result.Character.SpellSlots[0])
	s.Equal(dnd5e.SpellSlot{Total: 2, Expended: 2}, result.Character.SpellSlots[1])

	c = s.character("warlock", 3)
	c.PactMagic.Expended = 2
	result, _ = s.engine.LevelUp(c)
	s.Equal(2, result.Character.PactMagic.Expended)
}

func (s *EngineTestSuite) TestLevelUp_IsReferentiallyTransparent() {
	c := s.character("sorcerer", 3)
	before := c.Clone()

	first, ok := s.engine.LevelUp(c)
	s.Require().True(ok)
	second, ok := s.engine.LevelUp(c)
	s.Require().True(ok)

	s.Equal(first, second)
	s.Equal(before, c, "input is not modified")
	s.NotSame(first.Character, second.Character)
}

func (s *EngineTestSuite) TestLevelUp_NotApplicable() {
	_, ok := s.engine.LevelUp(s.character("fighter", 20))
	s.False(ok)

	unknown := s.character("fighter", 3)
	unknown.ClassID = "artificer"
	_, ok = s.engine.LevelUp(unknown)
	s.False(ok)

	zero := s.character("fighter", 1)
	zero.Level = 0
	_, ok = s.engine.LevelUp(zero)
	s.False(ok)

	_, ok = s.engine.LevelUp(nil)
	s.False(ok)
}

func (s *EngineTestSuite) TestLevelUp_HitPointsUntouched() {
	c := s.character("fighter", 3)
	result, _ := s.engine.LevelUp(c)
	s.Equal(c.MaxHP, result.Character.MaxHP)
	s.Equal(c.CurrentHP, result.Character.CurrentHP)
}
