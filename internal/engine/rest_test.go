package engine

import (
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

func (s *EngineTestSuite) TestShortRest() {
	c := s.character("fighter", 4)
	c.MaxHP, c.CurrentHP = 40, 10

	rested, err := s.engine.ShortRest(c, []int{6, 8})
	s.Require().NoError(err)
	s.Equal(10+7+9, rested.CurrentHP, "each die heals roll + con 1")
	s.Equal(2, rested.HitDice.Spent)
	s.Equal(10, c.CurrentHP, "input untouched")

	rested.CurrentHP = 39
	rested, err = s.engine.ShortRest(rested, []int{10})
	s.Require().NoError(err)
	s.Equal(40, rested.CurrentHP, "healing caps at max")

	_, err = s.engine.ShortRest(rested, []int{1, 1})
	s.True(errors.IsFailedPrecondition(err), "only one hit die left")

	_, err = s.engine.ShortRest(c, []int{11})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.engine.ShortRest(c, []int{0})
	s.True(errors.IsInvalidArgument(err))

	none, err := s.engine.ShortRest(c, nil)
	s.Require().NoError(err)
	s.Equal(c.CurrentHP, none.CurrentHP)
}

func (s *EngineTestSuite) TestShortRest_RecoversPactMagic() {
	c := s.character("warlock", 3)
	c.PactMagic.Expended = 2

	rested, err := s.engine.ShortRest(c, nil)
	s.Require().NoError(err)
	s.Zero(rested.PactMagic.Expended)
	s.Equal(2, c.PactMagic.Expended)
}

func (s *EngineTestSuite) TestLongRest() {
	c := s.character("wizard", 5)
	c.MaxHP, c.CurrentHP, c.TempHP = 30, 3, 5
	c.HitDice.Spent = 5
	c.SpellSlots[0].Expended = 4
	c.SpellSlots[2].Expended = 2

	rested := s.engine.LongRest(c)
	s.Equal(30, rested.CurrentHP)
	s.Zero(rested.TempHP)
	s.Equal(3, rested.HitDice.Spent, "regains half of 5, rounded down")
	for _, slot := range rested.SpellSlots {
		s.Zero(slot.Expended)
	}
	s.Equal(4, c.SpellSlots[0].Expended)

	first := s.character("fighter", 1)
	first.HitDice.Spent = 1
	s.Zero(s.engine.LongRest(first).HitDice.Spent, "at least one die is regained")

	s.Nil(s.engine.LongRest(nil))
}

func (s *EngineTestSuite) TestSpellSlots() {
	c := s.character("wizard", 3)

	used, err := s.engine.ExpendSpellSlot(c, SlotRef{Level: 2})
	s.Require().NoError(err)
	s.Equal(1, used.SpellSlots[1].Expended)
	s.Equal(1, used.SpellSlots[1].Available())
	s.Zero(c.SpellSlots[1].Expended)

	used, err = s.engine.ExpendSpellSlot(used, SlotRef{Level: 2})
	s.Require().NoError(err)
	_, err = s.engine.ExpendSpellSlot(used, SlotRef{Level: 2})
	s.True(errors.IsFailedPrecondition(err))
	s.Equal(2, errors.GetMeta(err)["level"])

	_, err = s.engine.ExpendSpellSlot(c, SlotRef{Level: 3})
	s.True(errors.IsFailedPrecondition(err), "no third level slots at wizard 3")

	_, err = s.engine.ExpendSpellSlot(c, SlotRef{Level: 0})
	s.True(errors.IsInvalidArgument(err))
	_, err = s.engine.ExpendSpellSlot(c, SlotRef{Level: 10})
	s.True(errors.IsInvalidArgument(err))

	recovered, err := s.engine.RecoverSpellSlot(used, SlotRef{Level: 2})
	s.Require().NoError(err)
	s.Equal(1, recovered.SpellSlots[1].Expended)

	_, err = s.engine.RecoverSpellSlot(c, SlotRef{Level: 1})
	s.True(errors.IsFailedPrecondition(err))
}

func (s *EngineTestSuite) TestPactSlots() {
	warlock := s.character("warlock", 3)

	used, err := s.engine.ExpendSpellSlot(warlock, SlotRef{Pact: true})
	s.Require().NoError(err)
	s.Equal(1, used.PactMagic.Expended)
	used, _ = s.engine.ExpendSpellSlot(used, SlotRef{Pact: true})

	_, err = s.engine.ExpendSpellSlot(used, SlotRef{Pact: true})
	s.True(errors.IsFailedPrecondition(err))

	_, err = s.engine.ExpendSpellSlot(s.character("wizard", 3), SlotRef{Pact: true})
	s.True(errors.IsFailedPrecondition(err))
}
