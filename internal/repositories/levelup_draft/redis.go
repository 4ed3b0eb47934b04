package levelupdraft

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-sheet/internal/redis"
)

const draftKeyPrefix = "levelup:"

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	ttl    time.Duration
}

// RedisConfig contains configuration for the Redis draft repository
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
	// TTL defaults to DefaultTTL when zero
	TTL time.Duration
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	if cfg.TTL < 0 {
		return errors.InvalidArgument("ttl cannot be negative")
	}
	return nil
}

// NewRedis creates a Redis-backed draft repository. Redis expires drafts on its own.
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	r := &redisRepository{client: cfg.Client, clock: cfg.Clock, ttl: cfg.TTL}
	if r.clock == nil {
		r.clock = clock.New()
	}
	if r.ttl == 0 {
		r.ttl = DefaultTTL
	}
	return r, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateSave(input); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Wizard)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal draft")
	}

	key := draftKeyPrefix + input.Wizard.CharacterID
	if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to save draft")
	}

	return &SaveOutput{ExpiresAt: r.clock.Now().Add(r.ttl)}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	result, err := r.client.Get(ctx, draftKeyPrefix+input.CharacterID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("no level up in progress for character %s", input.CharacterID)
		}
		return nil, errors.Wrapf(err, "failed to get draft")
	}

	var w engine.Wizard
	if err := json.Unmarshal([]byte(result), &w); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal draft")
	}

	return &GetOutput{Wizard: &w}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	n, err := r.client.Del(ctx, draftKeyPrefix+input.CharacterID).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete draft")
	}
	if n == 0 {
		return nil, errors.NotFoundf("no level up in progress for character %s", input.CharacterID)
	}

	return &DeleteOutput{}, nil
}
