// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"nearbite/internal/domain/entity"

	"github.com/google/uuid"
)

// CooldownRepository defines the interface for per-visitor send throttling state.
//
// Claim is the only write path the engine uses. It must be atomic with respect
// to concurrent claims for the same (visitor, location, channel) triple: when
// two evaluations race, exactly one wins the slot.
type CooldownRepository interface {
	// LastSentAt retrieves the cooldown state for a triple, or
	// (nil, nil) when no send has ever happened for it.
	LastSentAt(ctx context.Context, visitorID, locationID uuid.UUID, channel entity.Channel) (*entity.CooldownState, error)

	// Claim atomically records a send attempt at the given instant, but only
	// if the previous send is at least cooldown old (or absent). Returns true
	// when the slot was claimed, false when the cooldown is still active.
	Claim(ctx context.Context, visitorID, locationID uuid.UUID, channel entity.Channel, now time.Time, cooldown time.Duration) (bool, error)

	// PruneBefore deletes cooldown rows whose last send predates the cutoff.
	// Housekeeping only; the engine never requires pruning for correctness.
	PruneBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
