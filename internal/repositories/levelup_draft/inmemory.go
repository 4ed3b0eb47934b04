package levelupdraft

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
)

type entry struct {
	data      []byte
	expiresAt time.Time
}

// InMemoryRepository implements Repository in process memory. It backs the SQLite deployment,
// where drafts do not outlive the server.
type InMemoryRepository struct {
	mu    sync.Mutex
	store map[string]entry
	clock clock.Clock
	ttl   time.Duration
}

// NewInMemory creates an in-memory draft repository. A nil clock uses the system clock and a zero
// ttl uses DefaultTTL.
func NewInMemory(c clock.Clock, ttl time.Duration) *InMemoryRepository {
	if c == nil {
		c = clock.New()
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &InMemoryRepository{
		store: make(map[string]entry),
		clock: c,
		ttl:   ttl,
	}
}

// Save stores a copy of the wizard
func (r *InMemoryRepository) Save(_ context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateSave(input); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Wizard)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal draft")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	expiresAt := r.clock.Now().Add(r.ttl)
	r.store[input.Wizard.CharacterID] = entry{data: data, expiresAt: expiresAt}
	return &SaveOutput{ExpiresAt: expiresAt}, nil
}

// Get returns a copy of the live draft
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.live(input.CharacterID)
	if !ok {
		return nil, errors.NotFoundf("no level up in progress for character %s", input.CharacterID)
	}

	var w engine.Wizard
	if err := json.Unmarshal(e.data, &w); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal draft")
	}
	return &GetOutput{Wizard: &w}, nil
}

// Delete removes the draft
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.live(input.CharacterID); !ok {
		return nil, errors.NotFoundf("no level up in progress for character %s", input.CharacterID)
	}
	delete(r.store, input.CharacterID)
	return &DeleteOutput{}, nil
}

// live returns the entry for id, dropping it if expired. Callers hold mu.
func (r *InMemoryRepository) live(id string) (entry, bool) {
	e, ok := r.store[id]
	if !ok {
		return entry{}, false
	}
	if !r.clock.Now().Before(e.expiresAt) {
		delete(r.store, id)
		return entry{}, false
	}
	return e, true
}

var _ Repository = (*InMemoryRepository)(nil)
