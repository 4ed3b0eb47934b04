// Package events publishes character lifecycle notifications on the rpg-toolkit event bus.
//
// Subscribers receive a toolkit event whose source is the character entity and whose context
// carries the keys below.
package events

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	tkevents "github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

//go:generate mockgen -destination=mock/mock_publisher.go -package=eventsmock github.com/KirkDiggler/rpg-sheet/internal/events Publisher

// Event types
const (
	CharacterCreated   = "sheet.character.created"
	CharacterLeveledUp = "sheet.character.leveled_up"
	CharacterDeleted   = "sheet.character.deleted"
)

// Context keys set on published events
const (
	KeyPlayerID  = "player_id"
	KeyClassID   = "class_id"
	KeyFromLevel = "from_level"
	KeyToLevel   = "to_level"
)

// EntityTypeCharacter is the core.Entity type of published sources
const EntityTypeCharacter = "character"

// Publisher announces character changes after they are stored
type Publisher interface {
	CharacterCreated(ctx context.Context, char *dnd5e.Character) error
	CharacterLeveledUp(ctx context.Context, char *dnd5e.Character, fromLevel int) error
	CharacterDeleted(ctx context.Context, characterID string) error
}

// CharacterEntity adapts a character id to core.Entity
type CharacterEntity struct {
	ID string
}

// GetID returns the character id
func (e *CharacterEntity) GetID() string { return e.ID }

// GetType returns "character"
func (e *CharacterEntity) GetType() string { return EntityTypeCharacter }

var _ core.Entity = (*CharacterEntity)(nil)

type busPublisher struct {
	bus tkevents.EventBus
}

// Config configures a bus Publisher
type Config struct {
	Bus tkevents.EventBus
}

// Validate checks the config
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Bus == nil {
		return errors.InvalidArgument("event bus is required")
	}
	return nil
}

// NewPublisher returns a Publisher backed by a toolkit event bus
func NewPublisher(cfg *Config) (Publisher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &busPublisher{bus: cfg.Bus}, nil
}

func (p *busPublisher) CharacterCreated(ctx context.Context, char *dnd5e.Character) error {
	if char == nil {
		return errors.InvalidArgument("character is required")
	}
	return p.publish(ctx, CharacterCreated, char.ID, map[string]any{
		KeyPlayerID: char.PlayerID,
		KeyClassID:  char.ClassID,
		KeyToLevel:  char.Level,
	})
}

func (p *busPublisher) CharacterLeveledUp(ctx context.Context, char *dnd5e.Character, fromLevel int) error {
	if char == nil {
		return errors.InvalidArgument("character is required")
	}
	return p.publish(ctx, CharacterLeveledUp, char.ID, map[string]any{
		KeyPlayerID:  char.PlayerID,
		KeyClassID:   char.ClassID,
		KeyFromLevel: fromLevel,
		KeyToLevel:   char.Level,
	})
}

func (p *busPublisher) CharacterDeleted(ctx context.Context, characterID string) error {
	return p.publish(ctx, CharacterDeleted, characterID, nil)
}

func (p *busPublisher) publish(ctx context.Context, eventType, characterID string, data map[string]any) error {
	event := tkevents.NewGameEvent(eventType, &CharacterEntity{ID: characterID}, nil)
	for k, v := range data {
		event.Context().Set(k, v)
	}

	if err := p.bus.Publish(ctx, event); err != nil {
		slog.ErrorContext(ctx, "failed to publish character event",
			"event_type", eventType,
			"character_id", characterID,
			"error", err.Error())
		return errors.Wrapf(err, "failed to publish %s", eventType)
	}

	slog.DebugContext(ctx, "published character event",
		"event_type", eventType,
		"character_id", characterID)
	return nil
}

// Nop discards every event
type Nop struct{}

// CharacterCreated does nothing
func (Nop) CharacterCreated(context.Context, *dnd5e.Character) error { return nil }

// CharacterLeveledUp does nothing
func (Nop) CharacterLeveledUp(context.Context, *dnd5e.Character, int) error { return nil }

// CharacterDeleted does nothing
func (Nop) CharacterDeleted(context.Context, string) error { return nil }
