package engine

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/reference"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

type EngineTestSuite struct {
	suite.Suite
	tables *reference.Tables
	engine *engine
}

func (s *EngineTestSuite) SetupSuite() {
	s.tables = reference.MustLoad()
	e, err := New(&Config{Tables: s.tables})
	s.Require().NoError(err)
	s.engine = e.(*engine)
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

// character builds a plain character of class at level with slots filled in for that level
func (s *EngineTestSuite) character(classID string, level int) *dnd5e.Character {
	class, ok := s.tables.Classes.Get(classID)
	s.Require().True(ok, classID)

	c := &dnd5e.Character{
		ID:        "char-1",
		PlayerID:  "player-1",
		Name:      "Test",
		ClassID:   classID,
		SpeciesID: "human",
		Level:     level,
		AbilityScores: dnd5e.AbilityScores{
			Strength: 15, Dexterity: 14, Constitution: 13,
			Intelligence: 12, Wisdom: 10, Charisma: 16,
		},
		MaxHP:        class.HitDie * level,
		CurrentHP:    class.HitDie * level,
		HitDice:      dnd5e.HitDice{Size: class.HitDie, Total: level},
		Skills:       map[rules.Skill]dnd5e.SkillProficiency{},
		SavingThrows: map[rules.Ability]bool{},
	}
	if class.SubclassLevel <= level && len(class.Subclasses) > 0 {
		c.SubclassID = class.Subclasses[0].ID
	}
	applySlots(c, class, level)
	return c
}

func (s *EngineTestSuite) TestNew_RequiresTables() {
	_, err := New(&Config{})
	s.Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = New(nil)
	s.Error(err)
}
