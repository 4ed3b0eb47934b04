package engine

import (
	"slices"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

// Step is the current step of a level up wizard
type Step string

// Wizard steps, in order. Steps with nothing to choose are skipped.
const (
	StepAwaitingHitPoints          Step = "awaiting_hit_points"
	StepAwaitingAbilityImprovement Step = "awaiting_ability_improvement"
	StepAwaitingClassChoices       Step = "awaiting_class_choices"
	StepAwaitingSpells             Step = "awaiting_spells"
	StepReady                      Step = "ready"
)

var stepOrder = []Step{
	StepAwaitingHitPoints,
	StepAwaitingAbilityImprovement,
	StepAwaitingClassChoices,
	StepAwaitingSpells,
	StepReady,
}

// Wizard is a level up in progress. Transitions return a new value; dropping it cancels the level up.
type Wizard struct {
	CharacterID string        `json:"character_id"`
	BaseLevel   int           `json:"base_level"`
	Step        Step          `json:"step"`
	Result      LevelUpResult `json:"result"`

	HitPointGain       int                 `json:"hit_point_gain,omitempty"`
	AbilityImprovement *AbilityImprovement `json:"ability_improvement,omitempty"`
	ClassChoices       *ClassChoices       `json:"class_choices,omitempty"`
	Spells             []string            `json:"spells,omitempty"`
}

func (w *Wizard) clone() *Wizard {
	out := *w
	out.Result.Character = w.Result.Character.Clone()
	out.Result.NewClassFeatures = slices.Clone(w.Result.NewClassFeatures)
	out.Result.NewSubclassFeatures = slices.Clone(w.Result.NewSubclassFeatures)
	if w.AbilityImprovement != nil {
		imp := *w.AbilityImprovement
		imp.Abilities = slices.Clone(imp.Abilities)
		out.AbilityImprovement = &imp
	}
	if w.ClassChoices != nil {
		picks := cloneClassChoices(*w.ClassChoices)
		out.ClassChoices = &picks
	}
	out.Spells = slices.Clone(w.Spells)
	return &out
}

func cloneClassChoices(c ClassChoices) ClassChoices {
	c.Invocations = slices.Clone(c.Invocations)
	c.Maneuvers = slices.Clone(c.Maneuvers)
	c.Metamagic = slices.Clone(c.Metamagic)
	return c
}

// pending reports whether step has anything to choose
func (w *Wizard) pending(step Step) bool {
	switch step {
	case StepAwaitingHitPoints:
		return true
	case StepAwaitingAbilityImprovement:
		return w.Result.Choices.NeedsASI
	case StepAwaitingClassChoices:
		return w.Result.Choices.NeedsClassChoices()
	case StepAwaitingSpells:
		return w.Result.Choices.NewSpellsToLearn > 0
	default:
		return true
	}
}

// advance moves past the current step to the next one with something to choose
func (w *Wizard) advance() {
	i := slices.Index(stepOrder, w.Step)
	for _, step := range stepOrder[i+1:] {
		if w.pending(step) {
			w.Step = step
			return
		}
	}
	w.Step = StepReady
}

func (w *Wizard) expect(step Step) error {
	if w == nil {
		return errors.InvalidArgument("wizard is required")
	}
	if w.Result.Character == nil {
		return errors.InvalidArgument("wizard has no proposed character")
	}
	if w.Step != step {
		return errors.FailedPreconditionf("level up is at step %s, not %s", w.Step, step).
			WithMeta("step", string(w.Step))
	}
	return nil
}

// StartLevelUp opens a wizard for the next level of char
func (e *engine) StartLevelUp(char *dnd5e.Character) (*Wizard, bool) {
	result, ok := e.LevelUp(char)
	if !ok {
		return nil, false
	}
	return &Wizard{
		CharacterID: char.ID,
		BaseLevel:   char.Level,
		Step:        StepAwaitingHitPoints,
		Result:      *result,
	}, true
}

// SubmitHitPoints records the hit point gain. The gain is capped at the hit die plus the
// constitution modifier and must be at least 1.
func (e *engine) SubmitHitPoints(w *Wizard, gain int) (*Wizard, error) {
	if err := w.expect(StepAwaitingHitPoints); err != nil {
		return nil, err
	}
	char := w.Result.Character
	ceiling := max(1, char.HitDice.Size+char.AbilityScores.Modifier(rules.Constitution))
	if gain < 1 || gain > ceiling {
		return nil, errors.InvalidArgumentf("hit point gain must be between 1 and %d", ceiling)
	}

	next := w.clone()
	next.HitPointGain = gain
	next.advance()
	return next, nil
}

// SubmitAbilityImprovement records the ASI or feat choice
func (e *engine) SubmitAbilityImprovement(w *Wizard, imp AbilityImprovement) (*Wizard, error) {
	if err := w.expect(StepAwaitingAbilityImprovement); err != nil {
		return nil, err
	}
	if err := e.validateImprovement(w.Result.Character, imp, true); err != nil {
		return nil, err
	}

	next := w.clone()
	imp.Abilities = slices.Clone(imp.Abilities)
	next.AbilityImprovement = &imp
	next.advance()
	return next, nil
}

// SubmitClassChoices records subclass, pact boon, invocation, maneuver and metamagic picks
func (e *engine) SubmitClassChoices(w *Wizard, picks ClassChoices) (*Wizard, error) {
	if err := w.expect(StepAwaitingClassChoices); err != nil {
		return nil, err
	}
	r, err := e.validateClassPicks(w, picks)
	if err != nil {
		return nil, err
	}

	next := w.clone()
	picks = cloneClassChoices(picks)
	next.ClassChoices = &picks
	next.Result.Choices.NewManeuvers = r.maneuvers
	if r.subclass != nil {
		next.Result.NewSubclassFeatures = r.subclass.FeaturesAt(next.Result.Character.Level)
	}
	next.advance()
	return next, nil
}

// SubmitSpells records the newly learned spells
func (e *engine) SubmitSpells(w *Wizard, spellIDs []string) (*Wizard, error) {
	if err := w.expect(StepAwaitingSpells); err != nil {
		return nil, err
	}
	choices := w.Result.Choices
	if err := e.validateSpellPicks(w.Result.Character, spellIDs, choices.NewSpellsToLearn, choices.MaxSpellLevel); err != nil {
		return nil, err
	}

	next := w.clone()
	next.Spells = slices.Clone(spellIDs)
	next.advance()
	return next, nil
}

// Commit merges hit points and every choice into the proposed character. Only a Ready wizard commits.
func (e *engine) Commit(w *Wizard) (*dnd5e.Character, error) {
	if err := w.expect(StepReady); err != nil {
		return nil, err
	}

	c := w.Result.Character.Clone()
	c.MaxHP += w.HitPointGain
	c.CurrentHP += w.HitPointGain

	if w.AbilityImprovement != nil {
		e.applyImprovement(c, *w.AbilityImprovement)
	}

	if picks := w.ClassChoices; picks != nil {
		if picks.SubclassID != "" {
			c.SubclassID = picks.SubclassID
			if class, ok := e.tables.Classes.Get(c.ClassID); ok {
				if sub, ok := class.Subclass(picks.SubclassID); ok {
					for level := 1; level <= c.Level; level++ {
						c.ClassFeatures = appendFeatures(c.ClassFeatures, sub.FeaturesAt(level))
					}
				}
			}
		}
		if picks.PactBoon != "" {
			c.EldritchInvocations = append(c.EldritchInvocations, picks.PactBoon)
		}
		c.EldritchInvocations = append(c.EldritchInvocations, picks.Invocations...)
		c.BattleMasterManeuvers = append(c.BattleMasterManeuvers, picks.Maneuvers...)
		c.MetamagicOptions = append(c.MetamagicOptions, picks.Metamagic...)
	}

	c.KnownSpells = append(c.KnownSpells, w.Spells...)
	return c, nil
}
