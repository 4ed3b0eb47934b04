// Package character implements the character sheet orchestrator
package character

import (
	"context"
	"log/slog"
	"slices"

	"github.com/KirkDiggler/rpg-sheet/internal/dice"
	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/events"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-sheet/internal/reference"
	characterrepo "github.com/KirkDiggler/rpg-sheet/internal/repositories/character"
	draftrepo "github.com/KirkDiggler/rpg-sheet/internal/repositories/levelup_draft"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
	"github.com/KirkDiggler/rpg-sheet/internal/services/character"
)

// Config holds the dependencies for the character orchestrator
type Config struct {
	CharacterRepo characterrepo.Repository
	DraftRepo     draftrepo.Repository
	Engine        engine.Engine
	Tables        *reference.Tables
	Dice          dice.Roller
	IDGenerator   idgen.Generator
	// Publisher is optional; events are dropped when nil
	Publisher events.Publisher
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.DraftRepo == nil {
		vb.RequiredField("DraftRepo")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.Tables == nil {
		vb.RequiredField("Tables")
	}
	if c.Dice == nil {
		vb.RequiredField("Dice")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

// Orchestrator implements the character.Service interface
type Orchestrator struct {
	characterRepo characterrepo.Repository
	draftRepo     draftrepo.Repository
	engine        engine.Engine
	tables        *reference.Tables
	dice          dice.Roller
	idGenerator   idgen.Generator
	publisher     events.Publisher
}

// New creates a new character orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	publisher := cfg.Publisher
	if publisher == nil {
		publisher = events.Nop{}
	}

	return &Orchestrator{
		characterRepo: cfg.CharacterRepo,
		draftRepo:     cfg.DraftRepo,
		engine:        cfg.Engine,
		tables:        cfg.Tables,
		dice:          cfg.Dice,
		idGenerator:   cfg.IDGenerator,
		publisher:     publisher,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ character.Service = (*Orchestrator)(nil)

const (
	errInputRequired       = "input is required"
	errCharacterIDRequired = "character_id is required"
)

// CreateCharacter builds a level 1 character and stores it
func (o *Orchestrator) CreateCharacter(ctx context.Context, input *character.CreateCharacterInput) (*character.CreateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputRequired)
	}

	req := input.NewCharacterInput
	req.ID = o.idGenerator.Generate()

	char, err := o.engine.NewCharacter(&req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build character")
	}

	created, err := o.characterRepo.Create(ctx, characterrepo.CreateInput{Character: char})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create character")
	}

	slog.InfoContext(ctx, "character created",
		"character_id", created.Character.ID,
		"player_id", created.Character.PlayerID,
		"class_id", created.Character.ClassID)

	if err := o.publisher.CharacterCreated(ctx, created.Character); err != nil {
		slog.WarnContext(ctx, "failed to publish character created",
			"character_id", created.Character.ID,
			"error", err)
	}

	return &character.CreateCharacterOutput{
		Character: created.Character,
		Sheet:     o.engine.CalculateSheet(created.Character),
	}, nil
}

// GetCharacter retrieves a character by ID
func (o *Orchestrator) GetCharacter(ctx context.Context, input *character.GetCharacterInput) (*character.GetCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputRequired)
	}

	char, err := o.loadCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	return &character.GetCharacterOutput{Character: char}, nil
}

// ListCharacters lists a player's characters, or every character when no player is given
func (o *Orchestrator) ListCharacters(ctx context.Context, input *character.ListCharactersInput) (*character.ListCharactersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputRequired)
	}

	if input.PlayerID == "" {
		out, err := o.characterRepo.ListAll(ctx, characterrepo.ListAllInput{})
		if err != nil {
			return nil, errors.Wrap(err, "failed to list characters")
		}
		return &character.ListCharactersOutput{Characters: out.Characters}, nil
	}

	out, err := o.characterRepo.ListByPlayerID(ctx, characterrepo.ListByPlayerIDInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list characters for player %s", input.PlayerID)
	}

	return &character.ListCharactersOutput{Characters: out.Characters}, nil
}

// UpdateCharacter edits the fields a player changes in play
func (o *Orchestrator) UpdateCharacter(ctx context.Context, input *character.UpdateCharacterInput) (*character.UpdateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputRequired)
	}

	char, err := o.loadCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	if err := o.validateUpdate(char, input); err != nil {
		return nil, err
	}

	next := char.Clone()
	if input.Name != nil {
		next.Name = *input.Name
	}
	if input.CurrentHP != nil {
		next.CurrentHP = *input.CurrentHP
	}
	if input.TempHP != nil {
		next.TempHP = *input.TempHP
	}
	hp := next.HitPoints()
	hp = rules.ApplyDamage(hp, input.Damage)
	hp = rules.ApplyHealing(hp, input.Healing)
	next.SetHitPoints(hp)

	if input.Equipment != nil {
		next.Equipment = *input.Equipment
	}
	if input.Inventory != nil {
		next.Inventory = slices.Clone(*input.Inventory)
	}
	if input.Currency != nil {
		next.Currency = *input.Currency
	}
	if input.PreparedSpells != nil {
		next.PreparedSpells = slices.Clone(*input.PreparedSpells)
	}

	updated, err := o.saveCharacter(ctx, next)
	if err != nil {
		return nil, err
	}

	return &character.UpdateCharacterOutput{Character: updated}, nil
}

func (o *Orchestrator) validateUpdate(char *dnd5e.Character, input *character.UpdateCharacterInput) error {
	vb := errors.NewValidationBuilder()

	if input.Name != nil && *input.Name == "" {
		vb.Field("name", "must not be empty")
	}
	if input.CurrentHP != nil {
		errors.ValidateRange("current_hp", *input.CurrentHP, 0, char.MaxHP, vb)
	}
	if input.TempHP != nil && *input.TempHP < 0 {
		vb.Field("temp_hp", "must not be negative")
	}
	if input.Damage < 0 {
		vb.Field("damage", "must not be negative")
	}
	if input.Healing < 0 {
		vb.Field("healing", "must not be negative")
	}

	if eq := input.Equipment; eq != nil {
		if eq.ArmorID != "" {
			_, ok := o.tables.Armor.Get(eq.ArmorID)
			switch {
			case !ok:
				vb.Fieldf("equipment.armor_id", "unknown armor %q", eq.ArmorID)
			case eq.ArmorID == engine.ShieldArmorID:
				vb.Field("equipment.armor_id", "a shield is equipped with shield_equipped")
			}
		}
		if eq.ACOverride != nil && *eq.ACOverride < 0 {
			vb.Field("equipment.ac_override", "must not be negative")
		}
	}

	if input.Inventory != nil {
		for _, item := range *input.Inventory {
			if item.ItemID == "" {
				vb.RequiredField("inventory.item_id")
			}
			if item.Quantity < 0 || item.Weight < 0 {
				vb.Fieldf("inventory", "item %s has a negative quantity or weight", item.ItemID)
			}
		}
	}

	if c := input.Currency; c != nil && (c.PP < 0 || c.GP < 0 || c.EP < 0 || c.SP < 0 || c.CP < 0) {
		vb.Field("currency", "coin counts must not be negative")
	}

	if input.PreparedSpells != nil {
		seen := make(map[string]bool)
		for _, id := range *input.PreparedSpells {
			spell, ok := o.tables.Spells.Get(id)
			switch {
			case !ok:
				vb.Fieldf("prepared_spells", "unknown spell %q", id)
			case !spell.AvailableTo(char.ClassID):
				vb.Fieldf("prepared_spells", "%s is not on the %s spell list", id, char.ClassID)
			case seen[id]:
				vb.Fieldf("prepared_spells", "%s is listed twice", id)
			}
			seen[id] = true
		}
	}

	return vb.Build()
}

// DeleteCharacter deletes a character and any open level up
func (o *Orchestrator) DeleteCharacter(ctx context.Context, input *character.DeleteCharacterInput) (*character.DeleteCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputRequired)
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDRequired)
	}

	if _, err := o.characterRepo.Delete(ctx, characterrepo.DeleteInput{ID: input.CharacterID}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete character %s", input.CharacterID)
	}

	o.dropDraft(ctx, input.CharacterID)

	if err := o.publisher.CharacterDeleted(ctx, input.CharacterID); err != nil {
		slog.WarnContext(ctx, "failed to publish character deleted",
			"character_id", input.CharacterID,
			"error", err)
	}

	return &character.DeleteCharacterOutput{}, nil
}

func (o *Orchestrator) loadCharacter(ctx context.Context, characterID string) (*dnd5e.Character, error) {
	if characterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDRequired)
	}

	out, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: characterID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get character %s", characterID)
	}

	return out.Character, nil
}

func (o *Orchestrator) saveCharacter(ctx context.Context, char *dnd5e.Character) (*dnd5e.Character, error) {
	out, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: char})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update character %s", char.ID)
	}
	return out.Character, nil
}

// dropDraft removes a level up draft if there is one. Failures are logged only.
func (o *Orchestrator) dropDraft(ctx context.Context, characterID string) {
	_, err := o.draftRepo.Delete(ctx, draftrepo.DeleteInput{CharacterID: characterID})
	if err != nil && !errors.IsNotFound(err) {
		slog.ErrorContext(ctx, "failed to delete level up draft",
			"character_id", characterID,
			"error", err)
	}
}
