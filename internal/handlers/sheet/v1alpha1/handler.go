// Package v1alpha1 handles the sheet gRPC service interface
package v1alpha1

import (
	"bytes"
	"context"
	"encoding/json"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/services/character"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	CharacterService character.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.CharacterService == nil {
		return errors.InvalidArgument("character service is required")
	}
	return nil
}

// Handler implements the sheet CharacterService
type Handler struct {
	characterService character.Service
}

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		characterService: cfg.CharacterService,
	}, nil
}

var _ CharacterServiceServer = (*Handler)(nil)

// call decodes req into the service input, runs fn and encodes its output.
// Errors leave as gRPC status errors.
func call[In, Out any](ctx context.Context, req *structpb.Struct, fn func(context.Context, *In) (*Out, error)) (*structpb.Struct, error) {
	in := new(In)
	if err := Decode(req, in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := fn(ctx, in)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp, err := Encode(out)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return resp, nil
}

// Encode converts a value to a Struct through its JSON form
func Encode(v any) (*structpb.Struct, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode message")
	}

	out := &structpb.Struct{}
	if err := protojson.Unmarshal(b, out); err != nil {
		return nil, errors.Wrap(err, "failed to encode message")
	}
	return out, nil
}

// Decode fills v from the JSON form of s. Unknown fields are rejected.
func Decode(s *structpb.Struct, v any) error {
	if s == nil {
		s = &structpb.Struct{}
	}

	b, err := protojson.Marshal(s)
	if err != nil {
		return errors.Wrap(err, "failed to decode message")
	}

	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed request")
	}
	return nil
}

// CreateCharacter creates a level 1 character
func (h *Handler) CreateCharacter(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return call(ctx, req, h.characterService.CreateCharacter)
}

// GetCharacter retrieves a character
func (h *Handler) GetCharacter(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return call(ctx, req, h.characterService.GetCharacter)
}

// ListCharacters lists characters
func (h *Handler) ListCharacters(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return call(ctx, req, h.characterService.ListCharacters)
}

// UpdateCharacter edits a character
func (h *Handler) UpdateCharacter(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return call(ctx, req, h.characterService.UpdateCharacter)
}

// DeleteCharacter deletes a character
func (h *Handler) DeleteCharacter(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return call(ctx, req, h.characterService.DeleteCharacter)
}

// GetSheet returns the derived sheet
func (h *Handler) GetSheet(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return call(ctx, req, h.characterService.GetSheet)
}

// AddExperience awards experience points
func (h *Handler) AddExperience(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return call(ctx, req, h.characterService.AddExperience)
}

// Rest applies a short or long rest
func (h *Handler) Rest(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return call(ctx, req, h.characterService.Rest)
}

// ExpendSlot spends or recovers a spell slot
func (h *Handler) ExpendSlot(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return call(ctx, req, h.characterService.ExpendSlot)
}

// StartLevelUp opens a level up
func (h *Handler) StartLevelUp(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return call(ctx, req, h.characterService.StartLevelUp)
}

// GetLevelUp returns the open level up
func (h *Handler) GetLevelUp(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return call(ctx, req, h.characterService.GetLevelUp)
}

// SubmitHitPoints answers the hit point step
func (h *Handler) SubmitHitPoints(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return call(ctx, req, h.characterService.SubmitHitPoints)
}

// SubmitAbilityImprovement answers the ability score improvement step
func (h *Handler) SubmitAbilityImprovement(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return call(ctx, req, h.characterService.SubmitAbilityImprovement)
}

// SubmitClassChoices answers the class option step
func (h *Handler) SubmitClassChoices(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return call(ctx, req, h.characterService.SubmitClassChoices)
}

// SubmitSpells answers the new spells step
func (h *Handler) SubmitSpells(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return call(ctx, req, h.characterService.SubmitSpells)
}

// CommitLevelUp writes a finished level up
func (h *Handler) CommitLevelUp(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return call(ctx, req, h.characterService.CommitLevelUp)
}

// CancelLevelUp drops the open level up
func (h *Handler) CancelLevelUp(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return call(ctx, req, h.characterService.CancelLevelUp)
}

// ClaimPendingASI spends a deferred ability score improvement
func (h *Handler) ClaimPendingASI(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return call(ctx, req, h.characterService.ClaimPendingASI)
}
