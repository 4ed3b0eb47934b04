// Package levelupdraft stores level up wizards between requests. A draft expires after its TTL;
// an expired or deleted draft leaves the character untouched.
package levelupdraft

//go:generate mockgen -destination=mock/mock_repository.go -package=levelupdraftmock github.com/KirkDiggler/rpg-sheet/internal/repositories/levelup_draft Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// DefaultTTL is how long an untouched draft lives
const DefaultTTL = 30 * time.Minute

// Repository defines the interface for level up draft persistence. There is at most one draft
// per character.
type Repository interface {
	// Save creates or replaces the character's draft and restarts its TTL
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Get retrieves the character's draft
	// Returns errors.InvalidArgument for empty/invalid IDs
	// Returns errors.NotFound if there is no live draft
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete removes the character's draft
	// Returns errors.InvalidArgument for empty/invalid IDs
	// Returns errors.NotFound if there is no live draft
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// SaveInput defines the input for saving a draft
type SaveInput struct {
	Wizard *engine.Wizard
}

// SaveOutput defines the output for saving a draft
type SaveOutput struct {
	ExpiresAt time.Time
}

// GetInput defines the input for getting a draft
type GetInput struct {
	CharacterID string
}

// GetOutput defines the output for getting a draft
type GetOutput struct {
	Wizard *engine.Wizard
}

// DeleteInput defines the input for deleting a draft
type DeleteInput struct {
	CharacterID string
}

// DeleteOutput defines the output for deleting a draft
type DeleteOutput struct{}

const (
	// Error messages
	errWizardNil        = "wizard cannot be nil"
	errCharacterIDEmpty = "character ID cannot be empty"
)

func validateSave(input SaveInput) error {
	if input.Wizard == nil {
		return errors.InvalidArgument(errWizardNil)
	}
	if input.Wizard.CharacterID == "" {
		return errors.InvalidArgument(errCharacterIDEmpty)
	}
	return nil
}
