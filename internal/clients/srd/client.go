// Package srd fetches spell entries from the public D&D 5e SRD API and
// converts them into reference table entries
package srd

//go:generate mockgen -destination=mock/mock_client.go -package=srdmock github.com/KirkDiggler/rpg-sheet/internal/clients/srd Client

import (
	"context"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	"github.com/fadedpez/dnd5e-api/entities"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/reference"
)

const (
	DefaultBaseURL  = "https://www.dnd5eapi.co/api/2014/"
	DefaultTimeout  = 30 * time.Second
	DefaultCacheTTL = 24 * time.Hour
)

// Client looks up SRD spells
type Client interface {
	// GetSpell returns the SRD spell with the given index (e.g. "fire-bolt")
	GetSpell(ctx context.Context, index string) (*reference.Spell, error)

	// ListSpellIndexes returns the indexes of SRD spells, optionally filtered
	ListSpellIndexes(ctx context.Context, input *ListSpellsInput) ([]string, error)
}

// ListSpellsInput filters ListSpellIndexes. Zero values do not filter.
type ListSpellsInput struct {
	Level   *int
	ClassID string
}

// spellAPI is the part of dnd5e.Interface this package reads
type spellAPI interface {
	GetSpell(key string) (*entities.Spell, error)
	ListSpells(input *dnd5e.ListSpellsInput) ([]*entities.ReferenceItem, error)
}

type Config struct {
	BaseURL  string
	Timeout  time.Duration
	CacheTTL time.Duration

	// API replaces the HTTP client; used by tests
	API spellAPI
}

// Validate fills in defaults
func (cfg *Config) Validate() error {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = DefaultCacheTTL
	}

	vb := errors.NewValidationBuilder()
	if cfg.Timeout < 0 {
		vb.Field("timeout", "must not be negative")
	}
	if cfg.CacheTTL < 0 {
		vb.Field("cache_ttl", "must not be negative")
	}
	return vb.Build()
}

type client struct {
	api spellAPI
}

// New creates a cached SRD client
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	if cfg.API != nil {
		return &client{api: cfg.API}, nil
	}

	base, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client:  &http.Client{Timeout: cfg.Timeout},
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to create SRD API client")
	}

	return &client{api: dnd5e.NewCachedClient(base, cfg.CacheTTL)}, nil
}

func (c *client) GetSpell(ctx context.Context, index string) (*reference.Spell, error) {
	index = strings.TrimSpace(strings.ToLower(index))
	if index == "" {
		return nil, errors.InvalidArgument("spell index is required")
	}

	spell, err := c.api.GetSpell(index)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to fetch SRD spell "+index)
	}
	if spell == nil {
		return nil, errors.NotFoundf("SRD spell %s not found", index)
	}

	slog.DebugContext(ctx, "fetched SRD spell", "index", index, "level", spell.SpellLevel)

	return ToReferenceSpell(spell), nil
}

func (c *client) ListSpellIndexes(ctx context.Context, input *ListSpellsInput) ([]string, error) {
	var filter *dnd5e.ListSpellsInput
	if input != nil && (input.Level != nil || input.ClassID != "") {
		filter = &dnd5e.ListSpellsInput{Class: strings.ToLower(input.ClassID)}
		if input.Level != nil {
			level := *input.Level
			filter.Level = &level
		}
	}

	refs, err := c.api.ListSpells(filter)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to list SRD spells")
	}

	indexes := make([]string, 0, len(refs))
	for _, ref := range refs {
		if ref == nil || ref.Key == "" {
			continue
		}
		indexes = append(indexes, ref.Key)
	}
	sort.Strings(indexes)

	slog.DebugContext(ctx, "listed SRD spells", "count", len(indexes))

	return indexes, nil
}

// ToReferenceSpell converts an SRD spell into a spells table entry
func ToReferenceSpell(spell *entities.Spell) *reference.Spell {
	out := &reference.Spell{
		Ref:    reference.Ref{ID: spell.Key, Name: spell.Name},
		Level:  spell.SpellLevel,
		Ritual: spell.Ritual,
	}
	if spell.SpellSchool != nil {
		out.School = strings.ToLower(spell.SpellSchool.Key)
		if out.School == "" {
			out.School = strings.ToLower(spell.SpellSchool.Name)
		}
	}

	for _, class := range spell.SpellClasses {
		if class == nil {
			continue
		}
		id := class.Key
		if id == "" {
			id = strings.ToLower(class.Name)
		}
		out.Classes = append(out.Classes, id)
	}
	sort.Strings(out.Classes)

	out.Description = describe(spell)
	return out
}

func describe(spell *entities.Spell) string {
	var parts []string
	if spell.CastingTime != "" {
		parts = append(parts, "Casting Time: "+spell.CastingTime)
	}
	if spell.Range != "" {
		parts = append(parts, "Range: "+spell.Range)
	}
	if spell.Duration != "" {
		duration := spell.Duration
		if spell.Concentration && !strings.Contains(strings.ToLower(duration), "concentration") {
			duration = "Concentration, " + duration
		}
		parts = append(parts, "Duration: "+duration)
	}
	if spell.DC != nil && spell.DC.DCType != nil {
		parts = append(parts, spell.DC.DCType.Name+" save")
	}
	return strings.Join(parts, ". ")
}
