package engine

import (
	"encoding/json"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

func (s *EngineTestSuite) TestWizard_FighterFlow() {
	c := s.character("fighter", 3)
	c.MaxHP, c.CurrentHP = 28, 20

	w, ok := s.engine.StartLevelUp(c)
	s.Require().True(ok)
	s.Equal(StepAwaitingHitPoints, w.Step)
	s.Equal(3, w.BaseLevel)
	s.Equal("char-1", w.CharacterID)

	w, err := s.engine.SubmitHitPoints(w, rules.AverageHitPointGain(10, 1))
	s.Require().NoError(err)
	s.Equal(StepAwaitingAbilityImprovement, w.Step)

	w, err = s.engine.SubmitAbilityImprovement(w, AbilityImprovement{
		Kind:      ImprovementTwoPoints,
		Abilities: []rules.Ability{rules.Constitution},
	})
	s.Require().NoError(err)
	s.Equal(StepReady, w.Step, "no class choices or spells for a fighter at 4")

	committed, err := s.engine.Commit(w)
	s.Require().NoError(err)
	s.Equal(4, committed.Level)
	s.Equal(15, committed.AbilityScores.Constitution)
	// 28 + 7 from the hit die, then +1 per level for the constitution modifier going from +1 to +2
	s.Equal(28+7+4, committed.MaxHP)
	s.Equal(20+7+4, committed.CurrentHP)

	s.Equal(3, c.Level, "the stored character is untouched until the caller persists the commit")
}

func (s *EngineTestSuite) TestWizard_StepOrderEnforced() {
	w, _ := s.engine.StartLevelUp(s.character("fighter", 3))

	_, err := s.engine.SubmitAbilityImprovement(w, AbilityImprovement{Kind: ImprovementDefer})
	s.Error(err)
	s.True(errors.IsFailedPrecondition(err))
	s.Equal("awaiting_hit_points", errors.GetMeta(err)["step"])

	_, err = s.engine.Commit(w)
	s.True(errors.IsFailedPrecondition(err))

	_, err = s.engine.SubmitSpells(w, nil)
	s.True(errors.IsFailedPrecondition(err))

	_, err = s.engine.SubmitHitPoints(nil, 5)
	s.True(errors.IsInvalidArgument(err))
}

func (s *EngineTestSuite) TestWizard_TransitionsReturnNewValues() {
	w, _ := s.engine.StartLevelUp(s.character("fighter", 3))

	next, err := s.engine.SubmitHitPoints(w, 6)
	s.Require().NoError(err)
	s.Equal(StepAwaitingHitPoints, w.Step)
	s.Zero(w.HitPointGain)
	s.Equal(6, next.HitPointGain)

	next.Result.Character.Name = "changed"
	s.Equal("Test", w.Result.Character.Name)
}

func (s *EngineTestSuite) TestWizard_HitPointBounds() {
	w, _ := s.engine.StartLevelUp(s.character("fighter", 3))

	_, err := s.engine.SubmitHitPoints(w, 0)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.engine.SubmitHitPoints(w, 12)
	s.True(errors.IsInvalidArgument(err), "d10 plus +1 constitution caps at 11")

	_, err = s.engine.SubmitHitPoints(w, 11)
	s.NoError(err)
}

func (s *EngineTestSuite) TestWizard_DeferAndClaimASI() {
	w, _ := s.engine.StartLevelUp(s.character("fighter", 3))
	w, _ = s.engine.SubmitHitPoints(w, 6)
	w, err := s.engine.SubmitAbilityImprovement(w, AbilityImprovement{Kind: ImprovementDefer})
	s.Require().NoError(err)

	committed, err := s.engine.Commit(w)
	s.Require().NoError(err)
	s.Equal(1, committed.PendingASI)
	s.Equal(15, committed.AbilityScores.Strength)

	claimed, err := s.engine.ClaimPendingASI(committed, AbilityImprovement{
		Kind:      ImprovementSplit,
		Abilities: []rules.Ability{rules.Strength, rules.Dexterity},
	})
	s.Require().NoError(err)
	s.Zero(claimed.PendingASI)
	s.Equal(16, claimed.AbilityScores.Strength)
	s.Equal(15, claimed.AbilityScores.Dexterity)

	_, err = s.engine.ClaimPendingASI(claimed, AbilityImprovement{Kind: ImprovementTwoPoints, Abilities: []rules.Ability{rules.Strength}})
	s.True(errors.IsFailedPrecondition(err))

	_, err = s.engine.ClaimPendingASI(committed, AbilityImprovement{Kind: ImprovementDefer})
	s.True(errors.IsInvalidArgument(err))
}

func (s *EngineTestSuite) TestWizard_ImprovementValidation() {
	w, _ := s.engine.StartLevelUp(s.character("fighter", 3))
	w, _ = s.engine.SubmitHitPoints(w, 6)

	bad := []AbilityImprovement{
		{Kind: ImprovementTwoPoints},
		{Kind: ImprovementSplit, Abilities: []rules.Ability{rules.Strength, rules.Strength}},
		{Kind: ImprovementSplit, Abilities: []rules.Ability{rules.Strength}},
		{Kind: ImprovementFeat},
		{Kind: ImprovementFeat, FeatID: "not-a-feat"},
		{Kind: ImprovementTwoPoints, Abilities: []rules.Ability{"luck"}},
		{Kind: "reroll"},
	}
	for _, imp := range bad {
		_, err := s.engine.SubmitAbilityImprovement(w, imp)
		s.True(errors.IsInvalidArgument(err), "%+v", imp)
	}
}

func (s *EngineTestSuite) TestWizard_FeatAppliesBonus() {
	c := s.character("fighter", 3)
	w, _ := s.engine.StartLevelUp(c)
	w, _ = s.engine.SubmitHitPoints(w, 6)
	w, err := s.engine.SubmitAbilityImprovement(w, AbilityImprovement{Kind: ImprovementFeat, FeatID: "athlete"})
	s.Require().NoError(err)

	committed, err := s.engine.Commit(w)
	s.Require().NoError(err)
	s.Equal([]string{"athlete"}, committed.Feats)
	s.Equal(16, committed.AbilityScores.Strength)

	c.Feats = []string{"athlete"}
	w, _ = s.engine.StartLevelUp(c)
	w, _ = s.engine.SubmitHitPoints(w, 6)
	_, err = s.engine.SubmitAbilityImprovement(w, AbilityImprovement{Kind: ImprovementFeat, FeatID: "athlete"})
	s.True(errors.IsInvalidArgument(err), "feat already taken")
}

func (s *EngineTestSuite) TestWizard_AbilityClampsAtTwenty() {
	c := s.character("fighter", 3)
	c.AbilityScores.Strength = 19
	w, _ := s.engine.StartLevelUp(c)
	w, _ = s.engine.SubmitHitPoints(w, 6)
	w, _ = s.engine.SubmitAbilityImprovement(w, AbilityImprovement{Kind: ImprovementTwoPoints, Abilities: []rules.Ability{rules.Strength}})

	committed, err := s.engine.Commit(w)
	s.Require().NoError(err)
	s.Equal(20, committed.AbilityScores.Strength)
}

func (s *EngineTestSuite) TestWizard_SorcererSpells() {
	c := s.character("sorcerer", 3)
	c.KnownSpells = []string{"fire-bolt", "magic-missile", "shield", "sleep", "misty-step"}

	w, _ := s.engine.StartLevelUp(c)
	w, _ = s.engine.SubmitHitPoints(w, 4)
	w, err := s.engine.SubmitAbilityImprovement(w, AbilityImprovement{Kind: ImprovementTwoPoints, Abilities: []rules.Ability{rules.Charisma}})
	s.Require().NoError(err)
	s.Equal(StepAwaitingSpells, w.Step)

	bad := [][]string{
		nil,
		{"shatter", "darkness"},
		{"fireball"},
		{"cure-wounds"},
		{"fire-bolt"},
		{"shield"},
		{"not-a-spell"},
	}
	for _, picks := range bad {
		_, err := s.engine.SubmitSpells(w, picks)
		s.True(errors.IsInvalidArgument(err), "%v", picks)
	}

	w, err = s.engine.SubmitSpells(w, []string{"scorching-ray"})
	s.Require().NoError(err)
	s.Equal(StepReady, w.Step)

	committed, err := s.engine.Commit(w)
	s.Require().NoError(err)
	s.Contains(committed.KnownSpells, "scorching-ray")
	s.Len(committed.KnownSpells, 6)
	s.Equal(18, committed.AbilityScores.Charisma)
}

func (s *EngineTestSuite) TestWizard_WarlockInvocations() {
	c := s.character("warlock", 1)
	c.KnownSpells = []string{"eldritch-blast", "hex", "hellish-rebuke"}

	w, _ := s.engine.StartLevelUp(c)
	w, err := s.engine.SubmitHitPoints(w, 5)
	s.Require().NoError(err)
	s.Equal(StepAwaitingClassChoices, w.Step)

	_, err = s.engine.SubmitClassChoices(w, ClassChoices{Invocations: []string{"armor-of-shadows"}})
	s.True(errors.IsInvalidArgument(err), "two invocations are due")

	_, err = s.engine.SubmitClassChoices(w, ClassChoices{Invocations: []string{"armor-of-shadows", "armor-of-shadows"}})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.engine.SubmitClassChoices(w, ClassChoices{Invocations: []string{"armor-of-shadows", "thirsting-blade"}})
	s.True(errors.IsInvalidArgument(err), "thirsting blade needs level 5 and pact of the blade")

	_, err = s.engine.SubmitClassChoices(w, ClassChoices{Invocations: []string{"armor-of-shadows", "pact-of-the-tome"}})
	s.True(errors.IsInvalidArgument(err), "pact boons are not regular invocations")

	_, err = s.engine.SubmitClassChoices(w, ClassChoices{
		PactBoon:    "pact-of-the-tome",
		Invocations: []string{"armor-of-shadows", "agonizing-blast"},
	})
	s.True(errors.IsInvalidArgument(err), "no pact boon choice at level 2")

	_, err = s.engine.SubmitClassChoices(w, ClassChoices{Invocations: []string{"armor-of-shadows", "gone"}})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.engine.SubmitClassChoices(w, ClassChoices{
		SubclassID:  "fiend",
		Invocations: []string{"armor-of-shadows", "agonizing-blast"},
	})
	s.True(errors.IsInvalidArgument(err), "no subclass choice at this level")

	w, err = s.engine.SubmitClassChoices(w, ClassChoices{Invocations: []string{"armor-of-shadows", "agonizing-blast"}})
	s.Require().NoError(err)
	s.Equal(StepAwaitingSpells, w.Step)

	w, err = s.engine.SubmitSpells(w, []string{"armor-of-agathys"})
	s.Require().NoError(err)

	committed, err := s.engine.Commit(w)
	s.Require().NoError(err)
	s.Equal([]string{"armor-of-shadows", "agonizing-blast"}, committed.EldritchInvocations)
	s.Equal(2, committed.PactMagic.SlotCount)
}

func (s *EngineTestSuite) TestWizard_WarlockPactBoon() {
	c := s.character("warlock", 2)
	c.EldritchInvocations = []string{"armor-of-shadows", "devils-sight"}
	c.KnownSpells = []string{"eldritch-blast", "hex", "hellish-rebuke"}

	w, ok := s.engine.StartLevelUp(c)
	s.Require().True(ok)
	s.True(w.Result.Choices.NeedsPactBoon)
	s.Zero(w.Result.Choices.NewInvocations)

	w, err := s.engine.SubmitHitPoints(w, 5)
	s.Require().NoError(err)
	s.Equal(StepAwaitingClassChoices, w.Step)

	_, err = s.engine.SubmitClassChoices(w, ClassChoices{})
	s.True(errors.IsInvalidArgument(err), "a pact boon is due")

	_, err = s.engine.SubmitClassChoices(w, ClassChoices{PactBoon: "agonizing-blast"})
	s.True(errors.IsInvalidArgument(err), "not a pact boon")

	_, err = s.engine.SubmitClassChoices(w, ClassChoices{PactBoon: "pact-of-the-tome", Invocations: []string{"mire-the-mind"}})
	s.True(errors.IsInvalidArgument(err), "the boon does not come with an extra invocation")

	w, err = s.engine.SubmitClassChoices(w, ClassChoices{PactBoon: "pact-of-the-tome"})
	s.Require().NoError(err)
	s.Equal(StepAwaitingSpells, w.Step)

	w, err = s.engine.SubmitSpells(w, []string{"armor-of-agathys"})
	s.Require().NoError(err)
	committed, err := s.engine.Commit(w)
	s.Require().NoError(err)
	s.Equal([]string{"armor-of-shadows", "devils-sight", "pact-of-the-tome"}, committed.EldritchInvocations)
	s.Equal("tome", s.engine.CalculateSheet(committed).PactBoon)

	next, ok := s.engine.StartLevelUp(committed)
	s.Require().True(ok)
	s.False(next.Result.Choices.NeedsPactBoon, "the boon is already held")
}

func (s *EngineTestSuite) TestWizard_PactBoonGatesSamePickInvocations() {
	c := s.character("warlock", 4)
	c.EldritchInvocations = []string{"armor-of-shadows", "devils-sight"}
	c.KnownSpells = []string{"eldritch-blast"}

	w, _ := s.engine.StartLevelUp(c)
	s.True(w.Result.Choices.NeedsPactBoon, "a missed boon is still owed")
	s.Equal(1, w.Result.Choices.NewInvocations)
	w, err := s.engine.SubmitHitPoints(w, 5)
	s.Require().NoError(err)

	_, err = s.engine.SubmitClassChoices(w, ClassChoices{
		PactBoon:    "pact-of-the-chain",
		Invocations: []string{"thirsting-blade"},
	})
	s.True(errors.IsInvalidArgument(err), "thirsting blade needs pact of the blade")

	_, err = s.engine.SubmitClassChoices(w, ClassChoices{
		PactBoon:    "pact-of-the-blade",
		Invocations: []string{"thirsting-blade"},
	})
	s.NoError(err)
}

func (s *EngineTestSuite) TestWizard_EldritchBlastPrerequisite() {
	c := s.character("warlock", 1)
	c.KnownSpells = []string{"hex", "hellish-rebuke"}

	w, _ := s.engine.StartLevelUp(c)
	w, _ = s.engine.SubmitHitPoints(w, 5)
	_, err := s.engine.SubmitClassChoices(w, ClassChoices{Invocations: []string{"armor-of-shadows", "agonizing-blast"}})
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "agonizing-blast")
}

func (s *EngineTestSuite) TestWizard_SinglePactBoon() {
	c := s.character("warlock", 4)
	c.EldritchInvocations = []string{"pact-of-the-chain", "armor-of-shadows"}
	c.KnownSpells = []string{"eldritch-blast"}

	w, _ := s.engine.StartLevelUp(c)
	s.Equal(1, w.Result.Choices.NewInvocations)
	w, _ = s.engine.SubmitHitPoints(w, 5)

	_, err := s.engine.SubmitClassChoices(w, ClassChoices{Invocations: []string{"pact-of-the-blade"}})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.engine.SubmitClassChoices(w, ClassChoices{Invocations: []string{"thirsting-blade"}})
	s.True(errors.IsInvalidArgument(err), "thirsting blade needs pact of the blade")

	_, err = s.engine.SubmitClassChoices(w, ClassChoices{Invocations: []string{"mire-the-mind"}})
	s.NoError(err)
}

func (s *EngineTestSuite) TestWizard_BattleMasterSubclassChoice() {
	c := s.character("fighter", 2)

	w, _ := s.engine.StartLevelUp(c)
	w, _ = s.engine.SubmitHitPoints(w, 6)
	s.Equal(StepAwaitingClassChoices, w.Step)

	_, err := s.engine.SubmitClassChoices(w, ClassChoices{})
	s.True(errors.IsInvalidArgument(err), "subclass is required")

	_, err = s.engine.SubmitClassChoices(w, ClassChoices{SubclassID: "evocation"})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.engine.SubmitClassChoices(w, ClassChoices{SubclassID: "battle-master", Maneuvers: []string{"parry"}})
	s.True(errors.IsInvalidArgument(err), "battle masters learn three maneuvers at 3")

	_, err = s.engine.SubmitClassChoices(w, ClassChoices{SubclassID: "champion", Maneuvers: []string{"parry"}})
	s.True(errors.IsInvalidArgument(err), "champions learn no maneuvers")

	w, err = s.engine.SubmitClassChoices(w, ClassChoices{
		SubclassID: "battle-master",
		Maneuvers:  []string{"parry", "riposte", "trip-attack"},
	})
	s.Require().NoError(err)
	s.Equal(StepReady, w.Step)
	s.Equal(3, w.Result.Choices.NewManeuvers)
	s.Len(w.Result.NewSubclassFeatures, 2)

	committed, err := s.engine.Commit(w)
	s.Require().NoError(err)
	s.Equal("battle-master", committed.SubclassID)
	s.Equal([]string{"parry", "riposte", "trip-attack"}, committed.BattleMasterManeuvers)
	s.Contains(committed.ClassFeatures, "battle-master-combat-superiority")
	s.Contains(committed.ClassFeatures, "fighter-martial-archetype")

	sheet := s.engine.CalculateSheet(committed)
	s.Require().NotNil(sheet.SuperiorityDice)
	s.Equal(4, sheet.SuperiorityDice.Count)
}

func (s *EngineTestSuite) TestWizard_SurvivesJSON() {
	c := s.character("sorcerer", 3)
	w, _ := s.engine.StartLevelUp(c)
	w, _ = s.engine.SubmitHitPoints(w, 4)

	data, err := json.Marshal(w)
	s.Require().NoError(err)

	var restored Wizard
	s.Require().NoError(json.Unmarshal(data, &restored))
	s.Equal(StepAwaitingAbilityImprovement, restored.Step)
	s.Equal(4, restored.HitPointGain)
	s.Equal(1, restored.Result.Choices.NewSpellsToLearn)

	_, err = s.engine.SubmitAbilityImprovement(&restored, AbilityImprovement{Kind: ImprovementDefer})
	s.NoError(err)
}
