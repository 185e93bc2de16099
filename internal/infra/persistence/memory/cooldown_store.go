// Package memory provides in-process implementations of persistence
// interfaces for tests and single-node development setups.
package memory

import (
	"context"
	"sync"
	"time"

	"nearbite/internal/domain/entity"
	"nearbite/internal/domain/repository"

	"github.com/google/uuid"
)

type cooldownKey struct {
	visitorID  uuid.UUID
	locationID uuid.UUID
	channel    entity.Channel
}

// CooldownStore is an in-memory CooldownRepository. The mutex gives Claim the
// same atomicity the conditional upsert provides in Postgres.
type CooldownStore struct {
	mu     sync.Mutex
	states map[cooldownKey]time.Time
}

// NewCooldownStore creates an empty in-memory cooldown store.
func NewCooldownStore() *CooldownStore {
	return &CooldownStore{
		states: make(map[cooldownKey]time.Time),
	}
}

var _ repository.CooldownRepository = (*CooldownStore)(nil)

// LastSentAt retrieves the cooldown state for a triple, or (nil, nil) when no
// send has ever happened for it.
func (s *CooldownStore) LastSentAt(_ context.Context, visitorID, locationID uuid.UUID, channel entity.Channel) (*entity.CooldownState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lastSentAt, ok := s.states[cooldownKey{visitorID, locationID, channel}]
	if !ok {
		return nil, nil
	}

	return &entity.CooldownState{
		VisitorID:  visitorID,
		LocationID: locationID,
		Channel:    channel,
		LastSentAt: lastSentAt,
	}, nil
}

// Claim atomically records a send attempt, but only when the previous send is
// at least cooldown old or absent.
func (s *CooldownStore) Claim(_ context.Context, visitorID, locationID uuid.UUID, channel entity.Channel, now time.Time, cooldown time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := cooldownKey{visitorID, locationID, channel}
	if lastSentAt, ok := s.states[key]; ok {
		if now.Sub(lastSentAt) < cooldown {
			return false, nil
		}
	}

	s.states[key] = now

	return true, nil
}

// PruneBefore deletes cooldown entries whose last send predates the cutoff.
func (s *CooldownStore) PruneBefore(_ context.Context, cutoff time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var pruned int64
	for key, lastSentAt := range s.states {
		if lastSentAt.Before(cutoff) {
			delete(s.states, key)
			pruned++
		}
	}

	return pruned, nil
}
