package engine

import (
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/reference"
)

type engine struct {
	tables *reference.Tables
}

// Config holds the engine dependencies
type Config struct {
	Tables *reference.Tables
}

// Validate checks the config
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config is required")
	}
	vb := errors.NewValidationBuilder()
	if cfg.Tables == nil {
		vb.RequiredField("Tables")
	}
	return vb.Build()
}

// New creates an engine over the given reference tables
func New(cfg *Config) (Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &engine{tables: cfg.Tables}, nil
}
