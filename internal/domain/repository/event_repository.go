// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"nearbite/internal/domain/entity"

	"github.com/google/uuid"
)

// EventRepository defines the interface for the append-only audit log.
type EventRepository interface {
	// AppendEvent persists a single audit event. Events are immutable once written.
	AppendEvent(ctx context.Context, event *entity.Event) error

	// FindEventsByLocation retrieves events for a location, newest first,
	// optionally filtered by event type (empty type means all).
	FindEventsByLocation(ctx context.Context, locationID uuid.UUID, eventType entity.EventType, limit, offset int) ([]*entity.Event, error)

	// CountSentByDay aggregates notification_sent events per calendar day per
	// channel over the given interval.
	CountSentByDay(ctx context.Context, locationID uuid.UUID, from, to time.Time) ([]*entity.DailySendStats, error)
}
