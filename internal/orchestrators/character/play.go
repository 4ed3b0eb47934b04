package character

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
	"github.com/KirkDiggler/rpg-sheet/internal/services/character"
)

// GetSheet derives the sheet for a stored character
func (o *Orchestrator) GetSheet(ctx context.Context, input *character.GetSheetInput) (*character.GetSheetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputRequired)
	}

	char, err := o.loadCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	sheet := o.engine.CalculateSheet(char)
	if len(sheet.Unresolved) > 0 {
		slog.DebugContext(ctx, "sheet has unresolved references",
			"character_id", char.ID,
			"unresolved", sheet.Unresolved)
	}

	return &character.GetSheetOutput{Sheet: sheet}, nil
}

// AddExperience awards experience points. The level itself only changes through a level up.
func (o *Orchestrator) AddExperience(ctx context.Context, input *character.AddExperienceInput) (*character.AddExperienceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputRequired)
	}
	if input.Amount <= 0 {
		return nil, errors.InvalidArgumentf("amount must be positive, got %d", input.Amount)
	}

	char, err := o.loadCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	next := char.Clone()
	next.XP += input.Amount

	updated, err := o.saveCharacter(ctx, next)
	if err != nil {
		return nil, err
	}

	return &character.AddExperienceOutput{
		Character:        updated,
		LevelUpAvailable: rules.LevelFromXP(updated.XP) > updated.Level,
	}, nil
}

// Rest applies a short or long rest
func (o *Orchestrator) Rest(ctx context.Context, input *character.RestInput) (*character.RestOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputRequired)
	}

	char, err := o.loadCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	var rolls []int
	switch input.Kind {
	case character.RestLong:
		if input.HitDice != 0 || len(input.HitDiceRolls) > 0 {
			return nil, errors.InvalidArgument("a long rest spends no hit dice")
		}
		char = o.engine.LongRest(char)
	case character.RestShort:
		switch {
		case input.HitDice != 0 && len(input.HitDiceRolls) > 0:
			return nil, errors.InvalidArgument("give either hit_dice or hit_dice_rolls, not both")
		case input.HitDice < 0:
			return nil, errors.InvalidArgumentf("hit_dice must not be negative, got %d", input.HitDice)
		case input.HitDice > char.HitDice.Remaining():
			return nil, errors.FailedPreconditionf("only %d hit dice remaining", char.HitDice.Remaining())
		case input.HitDice > 0:
			rolls, err = o.dice.RollHitDice(input.HitDice, char.HitDice.Size)
			if err != nil {
				return nil, errors.Wrap(err, "failed to roll hit dice")
			}
		default:
			rolls = input.HitDiceRolls
		}
		char, err = o.engine.ShortRest(char, rolls)
		if err != nil {
			return nil, errors.Wrap(err, "failed to apply short rest")
		}
	default:
		return nil, errors.InvalidArgumentf("rest kind must be %q or %q, got %q", character.RestShort, character.RestLong, input.Kind)
	}

	updated, err := o.saveCharacter(ctx, char)
	if err != nil {
		return nil, err
	}

	return &character.RestOutput{Character: updated, HitDiceRolls: rolls}, nil
}

// ExpendSlot spends one spell slot, or recovers one when Recover is set
func (o *Orchestrator) ExpendSlot(ctx context.Context, input *character.ExpendSlotInput) (*character.ExpendSlotOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputRequired)
	}

	char, err := o.loadCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	if input.Recover {
		char, err = o.engine.RecoverSpellSlot(char, input.Slot)
	} else {
		char, err = o.engine.ExpendSpellSlot(char, input.Slot)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to change spell slot")
	}

	updated, err := o.saveCharacter(ctx, char)
	if err != nil {
		return nil, err
	}

	return &character.ExpendSlotOutput{Character: updated}, nil
}
