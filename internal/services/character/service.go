// Package character defines the character sheet service interface
package character

//go:generate mockgen -destination=mock/mock_service.go -package=charactermock github.com/KirkDiggler/rpg-sheet/internal/services/character Service

import (
	"context"

	"github.com/KirkDiggler/rpg-sheet/internal/dice"
	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
)

// Service defines the character sheet operations.
// Level ups run through a stored wizard: StartLevelUp opens it, the Submit methods answer its
// steps in order and CommitLevelUp writes the new level. CancelLevelUp or expiry drops it and the
// character is left untouched.
type Service interface {
	// Character lifecycle
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error)
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)
	ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error)
	UpdateCharacter(ctx context.Context, input *UpdateCharacterInput) (*UpdateCharacterOutput, error)
	DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error)

	// Sheet and play
	GetSheet(ctx context.Context, input *GetSheetInput) (*GetSheetOutput, error)
	AddExperience(ctx context.Context, input *AddExperienceInput) (*AddExperienceOutput, error)
	Rest(ctx context.Context, input *RestInput) (*RestOutput, error)
	ExpendSlot(ctx context.Context, input *ExpendSlotInput) (*ExpendSlotOutput, error)

	// Level up wizard
	StartLevelUp(ctx context.Context, input *StartLevelUpInput) (*StartLevelUpOutput, error)
	GetLevelUp(ctx context.Context, input *GetLevelUpInput) (*GetLevelUpOutput, error)
	SubmitHitPoints(ctx context.Context, input *SubmitHitPointsInput) (*SubmitHitPointsOutput, error)
	SubmitAbilityImprovement(ctx context.Context, input *SubmitAbilityImprovementInput) (*SubmitAbilityImprovementOutput, error)
	SubmitClassChoices(ctx context.Context, input *SubmitClassChoicesInput) (*SubmitClassChoicesOutput, error)
	SubmitSpells(ctx context.Context, input *SubmitSpellsInput) (*SubmitSpellsOutput, error)
	CommitLevelUp(ctx context.Context, input *CommitLevelUpInput) (*CommitLevelUpOutput, error)
	CancelLevelUp(ctx context.Context, input *CancelLevelUpInput) (*CancelLevelUpOutput, error)

	// ClaimPendingASI spends an improvement deferred during an earlier level up
	ClaimPendingASI(ctx context.Context, input *ClaimPendingASIInput) (*ClaimPendingASIOutput, error)
}

// Character lifecycle types

// CreateCharacterInput defines the request for creating a level 1 character.
// The ID is assigned by the service; any ID in the request is ignored.
type CreateCharacterInput struct {
	engine.NewCharacterInput
}

// CreateCharacterOutput defines the response for creating a character
type CreateCharacterOutput struct {
	Character *dnd5e.Character `json:"character"`
	Sheet     *engine.Sheet    `json:"sheet"`
}

// GetCharacterInput defines the request for getting a character
type GetCharacterInput struct {
	CharacterID string `json:"character_id"`
}

// GetCharacterOutput defines the response for getting a character
type GetCharacterOutput struct {
	Character *dnd5e.Character `json:"character"`
}

// ListCharactersInput defines the request for listing characters
type ListCharactersInput struct {
	PlayerID string `json:"player_id,omitempty"` // Optional filter
}

// ListCharactersOutput defines the response for listing characters
type ListCharactersOutput struct {
	Characters []*dnd5e.Character `json:"characters"`
}

// UpdateCharacterInput defines the request for editing a character outside of leveling.
// Nil fields are left unchanged. Damage and Healing are applied after CurrentHP and TempHP.
type UpdateCharacterInput struct {
	CharacterID    string                 `json:"character_id"`
	Name           *string                `json:"name,omitempty"`
	CurrentHP      *int                   `json:"current_hp,omitempty"`
	TempHP         *int                   `json:"temp_hp,omitempty"`
	Damage         int                    `json:"damage,omitempty"`
	Healing        int                    `json:"healing,omitempty"`
	Equipment      *dnd5e.Equipment       `json:"equipment,omitempty"`
	Inventory      *[]dnd5e.InventoryItem `json:"inventory,omitempty"`
	Currency       *rules.Currency        `json:"currency,omitempty"`
	PreparedSpells *[]string              `json:"prepared_spells,omitempty"`
}

// UpdateCharacterOutput defines the response for updating a character
type UpdateCharacterOutput struct {
	Character *dnd5e.Character `json:"character"`
}

// DeleteCharacterInput defines the request for deleting a character
type DeleteCharacterInput struct {
	CharacterID string `json:"character_id"`
}

// DeleteCharacterOutput defines the response for deleting a character
type DeleteCharacterOutput struct{}

// Sheet and play types

// GetSheetInput defines the request for a character's derived sheet
type GetSheetInput struct {
	CharacterID string `json:"character_id"`
}

// GetSheetOutput defines the response for a character's derived sheet
type GetSheetOutput struct {
	Sheet *engine.Sheet `json:"sheet"`
}

// AddExperienceInput defines the request for awarding experience
type AddExperienceInput struct {
	CharacterID string `json:"character_id"`
	Amount      int    `json:"amount"`
}

// AddExperienceOutput defines the response for awarding experience
type AddExperienceOutput struct {
	Character        *dnd5e.Character `json:"character"`
	LevelUpAvailable bool             `json:"level_up_available"`
}

// RestKind is a short or long rest
type RestKind string

// Rest kinds
const (
	RestShort RestKind = "short"
	RestLong  RestKind = "long"
)

// RestInput defines the request for resting.
// A short rest spends hit dice: either HitDice dice rolled by the service or the given HitDiceRolls.
type RestInput struct {
	CharacterID  string   `json:"character_id"`
	Kind         RestKind `json:"kind"`
	HitDice      int      `json:"hit_dice,omitempty"`
	HitDiceRolls []int    `json:"hit_dice_rolls,omitempty"`
}

// RestOutput defines the response for resting
type RestOutput struct {
	Character    *dnd5e.Character `json:"character"`
	HitDiceRolls []int            `json:"hit_dice_rolls,omitempty"`
}

// ExpendSlotInput defines the request for spending or recovering one spell slot
type ExpendSlotInput struct {
	CharacterID string         `json:"character_id"`
	Slot        engine.SlotRef `json:"slot"`
	Recover     bool           `json:"recover,omitempty"`
}

// ExpendSlotOutput defines the response for a spell slot change
type ExpendSlotOutput struct {
	Character *dnd5e.Character `json:"character"`
}

// Level up types

// LevelUp is a stored level up wizard
type LevelUp struct {
	Wizard *engine.Wizard `json:"wizard"`
	// ExpiresAt is unix seconds; zero when the store did not report it
	ExpiresAt int64 `json:"expires_at,omitempty"`
}

// StartLevelUpInput defines the request for opening a level up. An open level up for the same
// character is replaced.
type StartLevelUpInput struct {
	CharacterID string `json:"character_id"`
}

// StartLevelUpOutput defines the response for opening a level up
type StartLevelUpOutput struct {
	LevelUp *LevelUp `json:"level_up"`
}

// GetLevelUpInput defines the request for reading an open level up
type GetLevelUpInput struct {
	CharacterID string `json:"character_id"`
}

// GetLevelUpOutput defines the response for reading an open level up
type GetLevelUpOutput struct {
	LevelUp *LevelUp `json:"level_up"`
}

// HitPointMethod is how the level up hit point gain is decided
type HitPointMethod string

// Hit point methods
const (
	HitPointsAverage HitPointMethod = "average"
	HitPointsRoll    HitPointMethod = "roll"
	HitPointsManual  HitPointMethod = "manual"
)

// SubmitHitPointsInput defines the request for the hit point step.
// Value is the gain for the manual method and ignored otherwise.
type SubmitHitPointsInput struct {
	CharacterID string         `json:"character_id"`
	Method      HitPointMethod `json:"method"`
	Value       int            `json:"value,omitempty"`
}

// SubmitHitPointsOutput defines the response for the hit point step
type SubmitHitPointsOutput struct {
	LevelUp *LevelUp           `json:"level_up"`
	Gain    int                `json:"gain"`
	Roll    *dice.HitPointRoll `json:"roll,omitempty"`
}

// SubmitAbilityImprovementInput defines the request for the ability score improvement step
type SubmitAbilityImprovementInput struct {
	CharacterID string                    `json:"character_id"`
	Improvement engine.AbilityImprovement `json:"improvement"`
}

// SubmitAbilityImprovementOutput defines the response for the ability score improvement step
type SubmitAbilityImprovementOutput struct {
	LevelUp *LevelUp `json:"level_up"`
}

// SubmitClassChoicesInput defines the request for the subclass and class option step
type SubmitClassChoicesInput struct {
	CharacterID string              `json:"character_id"`
	Choices     engine.ClassChoices `json:"choices"`
}

// SubmitClassChoicesOutput defines the response for the class option step
type SubmitClassChoicesOutput struct {
	LevelUp *LevelUp `json:"level_up"`
}

// SubmitSpellsInput defines the request for the new spells step
type SubmitSpellsInput struct {
	CharacterID string   `json:"character_id"`
	SpellIDs    []string `json:"spell_ids"`
}

// SubmitSpellsOutput defines the response for the new spells step
type SubmitSpellsOutput struct {
	LevelUp *LevelUp `json:"level_up"`
}

// CommitLevelUpInput defines the request for writing a finished level up
type CommitLevelUpInput struct {
	CharacterID string `json:"character_id"`
}

// CommitLevelUpOutput defines the response for a committed level up
type CommitLevelUpOutput struct {
	Character *dnd5e.Character `json:"character"`
	Sheet     *engine.Sheet    `json:"sheet"`
}

// CancelLevelUpInput defines the request for dropping an open level up
type CancelLevelUpInput struct {
	CharacterID string `json:"character_id"`
}

// CancelLevelUpOutput defines the response for dropping an open level up
type CancelLevelUpOutput struct{}

// ClaimPendingASIInput defines the request for spending a deferred improvement
type ClaimPendingASIInput struct {
	CharacterID string                    `json:"character_id"`
	Improvement engine.AbilityImprovement `json:"improvement"`
}

// ClaimPendingASIOutput defines the response for spending a deferred improvement
type ClaimPendingASIOutput struct {
	Character *dnd5e.Character `json:"character"`
}
