package character

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-sheet/internal/dice"
	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	draftrepo "github.com/KirkDiggler/rpg-sheet/internal/repositories/levelup_draft"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
	"github.com/KirkDiggler/rpg-sheet/internal/services/character"
)

// StartLevelUp opens a level up wizard for the character's next level
func (o *Orchestrator) StartLevelUp(ctx context.Context, input *character.StartLevelUpInput) (*character.StartLevelUpOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputRequired)
	}

	char, err := o.loadCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	w, ok := o.engine.StartLevelUp(char)
	if !ok {
		return nil, errors.FailedPreconditionf("character %s at level %d cannot level up", char.ID, char.Level).
			WithMeta("level", char.Level)
	}

	levelUp, err := o.saveDraft(ctx, w)
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "level up started",
		"character_id", char.ID,
		"from_level", w.BaseLevel,
		"step", string(w.Step))

	return &character.StartLevelUpOutput{LevelUp: levelUp}, nil
}

// GetLevelUp returns the open level up
func (o *Orchestrator) GetLevelUp(ctx context.Context, input *character.GetLevelUpInput) (*character.GetLevelUpOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputRequired)
	}

	w, err := o.loadDraft(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	return &character.GetLevelUpOutput{LevelUp: &character.LevelUp{Wizard: w}}, nil
}

// SubmitHitPoints answers the hit point step by average, by a roll or with a manual value
func (o *Orchestrator) SubmitHitPoints(ctx context.Context, input *character.SubmitHitPointsInput) (*character.SubmitHitPointsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputRequired)
	}

	w, err := o.loadDraft(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	if w.Step != engine.StepAwaitingHitPoints {
		return nil, errors.FailedPreconditionf("level up is at step %s, not %s", w.Step, engine.StepAwaitingHitPoints).
			WithMeta("step", string(w.Step))
	}

	proposed := w.Result.Character
	hitDie := proposed.HitDice.Size
	conMod := proposed.AbilityScores.Modifier(rules.Constitution)

	var (
		gain int
		roll *dice.HitPointRoll
	)
	switch input.Method {
	case character.HitPointsAverage:
		gain = rules.AverageHitPointGain(hitDie, conMod)
	case character.HitPointsRoll:
		roll, err = o.dice.RollHitPoints(hitDie, conMod)
		if err != nil {
			return nil, errors.Wrap(err, "failed to roll hit points")
		}
		gain = roll.Gain
	case character.HitPointsManual:
		gain = input.Value
	default:
		return nil, errors.InvalidArgumentf("hit point method must be average, roll or manual, got %q", input.Method)
	}

	next, err := o.engine.SubmitHitPoints(w, gain)
	if err != nil {
		return nil, errors.Wrap(err, "failed to submit hit points")
	}

	levelUp, err := o.saveDraft(ctx, next)
	if err != nil {
		return nil, err
	}

	return &character.SubmitHitPointsOutput{LevelUp: levelUp, Gain: gain, Roll: roll}, nil
}

// SubmitAbilityImprovement answers the ability score improvement step
func (o *Orchestrator) SubmitAbilityImprovement(ctx context.Context, input *character.SubmitAbilityImprovementInput) (*character.SubmitAbilityImprovementOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputRequired)
	}

	levelUp, err := o.advanceDraft(ctx, input.CharacterID, func(w *engine.Wizard) (*engine.Wizard, error) {
		return o.engine.SubmitAbilityImprovement(w, input.Improvement)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to submit ability improvement")
	}

	return &character.SubmitAbilityImprovementOutput{LevelUp: levelUp}, nil
}

// SubmitClassChoices answers the subclass, invocation, maneuver and metamagic step
func (o *Orchestrator) SubmitClassChoices(ctx context.Context, input *character.SubmitClassChoicesInput) (*character.SubmitClassChoicesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputRequired)
	}

	levelUp, err := o.advanceDraft(ctx, input.CharacterID, func(w *engine.Wizard) (*engine.Wizard, error) {
		return o.engine.SubmitClassChoices(w, input.Choices)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to submit class choices")
	}

	return &character.SubmitClassChoicesOutput{LevelUp: levelUp}, nil
}

// SubmitSpells answers the new spells step
func (o *Orchestrator) SubmitSpells(ctx context.Context, input *character.SubmitSpellsInput) (*character.SubmitSpellsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputRequired)
	}

	levelUp, err := o.advanceDraft(ctx, input.CharacterID, func(w *engine.Wizard) (*engine.Wizard, error) {
		return o.engine.SubmitSpells(w, input.SpellIDs)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to submit spells")
	}

	return &character.SubmitSpellsOutput{LevelUp: levelUp}, nil
}

// CommitLevelUp writes a finished level up over the stored character.
// The stored character must be unchanged since the level up started.
func (o *Orchestrator) CommitLevelUp(ctx context.Context, input *character.CommitLevelUpInput) (*character.CommitLevelUpOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputRequired)
	}

	w, err := o.loadDraft(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	stored, err := o.loadCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	if stored.Level != w.BaseLevel {
		return nil, errors.FailedPreconditionf("level up started at level %d but the character is level %d",
			w.BaseLevel, stored.Level).
			WithMeta("base_level", w.BaseLevel).
			WithMeta("level", stored.Level)
	}
	if stored.Revision != w.Result.Character.Revision {
		return nil, errors.FailedPrecondition("character changed since the level up started").
			WithMeta("revision", stored.Revision).
			WithMeta("draft_revision", w.Result.Character.Revision)
	}

	committed, err := o.engine.Commit(w)
	if err != nil {
		return nil, errors.Wrap(err, "failed to commit level up")
	}

	updated, err := o.saveCharacter(ctx, committed)
	if err != nil {
		return nil, err
	}

	o.dropDraft(ctx, input.CharacterID)

	slog.InfoContext(ctx, "character leveled up",
		"character_id", updated.ID,
		"from_level", w.BaseLevel,
		"to_level", updated.Level)

	if err := o.publisher.CharacterLeveledUp(ctx, updated, w.BaseLevel); err != nil {
		slog.WarnContext(ctx, "failed to publish character leveled up",
			"character_id", updated.ID,
			"error", err)
	}

	return &character.CommitLevelUpOutput{
		Character: updated,
		Sheet:     o.engine.CalculateSheet(updated),
	}, nil
}

// CancelLevelUp drops the open level up; the character is not touched
func (o *Orchestrator) CancelLevelUp(ctx context.Context, input *character.CancelLevelUpInput) (*character.CancelLevelUpOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputRequired)
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDRequired)
	}

	if _, err := o.draftRepo.Delete(ctx, draftrepo.DeleteInput{CharacterID: input.CharacterID}); err != nil {
		return nil, errors.Wrapf(err, "failed to cancel level up for %s", input.CharacterID)
	}

	return &character.CancelLevelUpOutput{}, nil
}

// ClaimPendingASI spends one deferred improvement on the stored character
func (o *Orchestrator) ClaimPendingASI(ctx context.Context, input *character.ClaimPendingASIInput) (*character.ClaimPendingASIOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputRequired)
	}

	char, err := o.loadCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	next, err := o.engine.ClaimPendingASI(char, input.Improvement)
	if err != nil {
		return nil, errors.Wrap(err, "failed to claim ability improvement")
	}

	updated, err := o.saveCharacter(ctx, next)
	if err != nil {
		return nil, err
	}

	return &character.ClaimPendingASIOutput{Character: updated}, nil
}

func (o *Orchestrator) loadDraft(ctx context.Context, characterID string) (*engine.Wizard, error) {
	if characterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDRequired)
	}

	out, err := o.draftRepo.Get(ctx, draftrepo.GetInput{CharacterID: characterID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get level up for %s", characterID)
	}

	return out.Wizard, nil
}

func (o *Orchestrator) saveDraft(ctx context.Context, w *engine.Wizard) (*character.LevelUp, error) {
	out, err := o.draftRepo.Save(ctx, draftrepo.SaveInput{Wizard: w})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save level up for %s", w.CharacterID)
	}

	return &character.LevelUp{Wizard: w, ExpiresAt: out.ExpiresAt.Unix()}, nil
}

// advanceDraft loads the draft, applies one wizard step and stores the result
func (o *Orchestrator) advanceDraft(ctx context.Context, characterID string, step func(*engine.Wizard) (*engine.Wizard, error)) (*character.LevelUp, error) {
	w, err := o.loadDraft(ctx, characterID)
	if err != nil {
		return nil, err
	}

	next, err := step(w)
	if err != nil {
		return nil, err
	}

	return o.saveDraft(ctx, next)
}
