package usecase

import (
	"context"
	"time"

	"nearbite/internal/domain/entity"

	"github.com/google/uuid"
)

// EventUsecase defines the interface for audit log and analytics use cases
type EventUsecase interface {
	// ListEvents retrieves audit events for a location, newest first,
	// optionally filtered by event type (empty means all)
	ListEvents(ctx context.Context, userID, locationID uuid.UUID, eventType entity.EventType, limit, offset int) ([]*entity.Event, error)

	// GetDailySendStats aggregates notification_sent counts per day per
	// channel over the given interval
	GetDailySendStats(ctx context.Context, userID, locationID uuid.UUID, from, to time.Time) ([]*entity.DailySendStats, error)
}
