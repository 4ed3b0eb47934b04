package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	tkevents "github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-sheet/internal/config"
	"github.com/KirkDiggler/rpg-sheet/internal/dice"
	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/events"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/character"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-sheet/internal/redis"
	"github.com/KirkDiggler/rpg-sheet/internal/reference"
	characterrepo "github.com/KirkDiggler/rpg-sheet/internal/repositories/character"
	draftrepo "github.com/KirkDiggler/rpg-sheet/internal/repositories/levelup_draft"
)

// loadConfig reads defaults, SHEET_* env, the --config file and any flags
// bound to viper keys in flagKeys
func loadConfig(cmd *cobra.Command, flagKeys map[string]string) (*config.Config, error) {
	v := config.NewViper()
	for key, flag := range flagKeys {
		if f := cmd.Flags().Lookup(flag); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, errors.Wrapf(err, "failed to bind flag %s", flag)
			}
		}
	}
	return config.Load(v, configPath)
}

func newLogger(w io.Writer, cfg config.LoggingConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// storage is the opened backend; close releases it
type storage struct {
	characters characterrepo.Repository
	drafts     draftrepo.Repository
	close      func() error
}

func openStorage(ctx context.Context, cfg *config.Config) (*storage, error) {
	clk := clock.New()

	switch cfg.Storage.Backend {
	case config.BackendRedis:
		client, err := redis.NewClient(cfg.Storage.RedisAddr, nil)
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to create redis client")
		}
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to reach redis at "+cfg.Storage.RedisAddr)
		}

		characters, err := characterrepo.NewRedis(&characterrepo.RedisConfig{Client: client, Clock: clk})
		if err != nil {
			return nil, err
		}
		drafts, err := draftrepo.NewRedis(&draftrepo.RedisConfig{Client: client, Clock: clk, TTL: cfg.LevelUp.DraftTTL})
		if err != nil {
			return nil, err
		}
		return &storage{characters: characters, drafts: drafts, close: client.Close}, nil

	case config.BackendSQLite:
		characters, err := characterrepo.OpenSQLite(ctx, &characterrepo.SQLiteConfig{Path: cfg.Storage.SQLitePath, Clock: clk})
		if err != nil {
			return nil, err
		}
		// the sqlite backend keeps level up drafts in process
		drafts := draftrepo.NewInMemory(clk, cfg.LevelUp.DraftTTL)
		return &storage{characters: characters, drafts: drafts, close: characters.Close}, nil
	}

	return nil, errors.InvalidArgumentf("unknown storage backend %q", cfg.Storage.Backend)
}

func newEngine() (*reference.Tables, engine.Engine, error) {
	tables, err := reference.Load()
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to load reference tables")
	}

	eng, err := engine.New(&engine.Config{Tables: tables})
	if err != nil {
		return nil, nil, err
	}
	return tables, eng, nil
}

// newOrchestrator wires the character service on top of store
func newOrchestrator(store *storage) (*character.Orchestrator, error) {
	tables, eng, err := newEngine()
	if err != nil {
		return nil, err
	}

	bus := tkevents.NewBus()
	for _, eventType := range []string{events.CharacterCreated, events.CharacterLeveledUp, events.CharacterDeleted} {
		bus.SubscribeFunc(eventType, 0, func(ctx context.Context, e tkevents.Event) error {
			slog.InfoContext(ctx, "character event",
				"event_type", eventType,
				"character_id", e.Source().GetID())
			return nil
		})
	}
	publisher, err := events.NewPublisher(&events.Config{Bus: bus})
	if err != nil {
		return nil, err
	}

	orch, err := character.New(&character.Config{
		CharacterRepo: store.characters,
		DraftRepo:     store.drafts,
		Engine:        eng,
		Tables:        tables,
		Dice:          dice.New(nil),
		IDGenerator:   idgen.NewUUID("char"),
		Publisher:     publisher,
	})
	if err != nil {
		return nil, err
	}

	return orch, nil
}

func installLogger(cfg *config.Config) *slog.Logger {
	logger := newLogger(os.Stderr, cfg.Logging)
	slog.SetDefault(logger)
	return logger
}
